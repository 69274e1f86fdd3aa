// Package main provides the CLI entry point for gridcat.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gridcat/gridcat/pkg/gridcat"
	"github.com/gridcat/gridcat/pkg/gridcat/output"
)

var (
	outputPath string
	pretty     bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "gridcat <input.xlsx> [objects|arrays]",
		Short: "Extract the first worksheet of an xlsx file as JSON",
		Long: `gridcat decodes an xlsx container directly and prints its first worksheet
as JSON: header-keyed records by default, or the raw row matrix in arrays
mode.`,
		Args:         cobra.RangeArgs(1, 2),
		RunE:         run,
		SilenceUsage: true,
	}

	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	rootCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	inputPath := args[0]
	mode := ""
	if len(args) > 1 {
		mode = args[1]
	}

	if _, err := os.Stat(inputPath); os.IsNotExist(err) {
		return fmt.Errorf("file not found: %s", inputPath)
	}

	opts := gridcat.Options{Mode: gridcat.ParseMode(mode)}

	payload, err := gridcat.ExtractPayload(inputPath, opts)
	if err != nil {
		return fmt.Errorf("extraction failed: %w", err)
	}

	jsonData, err := output.ToJSON(payload, pretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}

	if outputPath != "" {
		if err := os.WriteFile(outputPath, jsonData, 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	}
	fmt.Println(string(jsonData))
	return nil
}
