package gridcat

import (
	"github.com/gridcat/gridcat/pkg/gridcat/models"
	"github.com/gridcat/gridcat/pkg/gridcat/parser"
)

// Extract parses the first worksheet of the xlsx container at path and
// returns the full row matrix. Missing shared-string and styles parts are
// normal; an unresolvable sheet relationship is fatal.
func Extract(path string) ([]models.Row, error) {
	c, err := parser.OpenContainer(path)
	if err != nil {
		return nil, err
	}
	defer c.Close()

	shared, err := parser.LoadSharedStrings(c)
	if err != nil {
		return nil, stageErr("shared strings", err)
	}
	dates, err := parser.LoadDateStyles(c)
	if err != nil {
		return nil, stageErr("styles", err)
	}
	sheetPath, err := parser.FirstSheetPath(c)
	if err != nil {
		return nil, stageErr("workbook", err)
	}
	rows, err := parser.ParseRows(c, sheetPath, shared, dates)
	if err != nil {
		return nil, stageErr("sheet", err)
	}
	return rows, nil
}

// Records projects a row matrix into header-keyed records, dropping rows
// that are blank throughout.
func Records(rows []models.Row) []models.Record {
	return parser.ProjectRecords(rows)
}

// ExtractPayload runs Extract and shapes the result per opts.Mode. The
// returned value is ready for JSON serialization.
func ExtractPayload(path string, opts Options) (any, error) {
	rows, err := Extract(path)
	if err != nil {
		return nil, err
	}
	if opts.Mode == ModeArrays {
		return rows, nil
	}
	return Records(rows), nil
}
