// Package parser decodes the OOXML parts of an xlsx container directly,
// without going through a spreadsheet engine.
package parser

import (
	"archive/zip"
	"errors"
	"fmt"
	"io"
)

// Entry names of the workbook parts this package reads.
const (
	workbookEntry      = "xl/workbook.xml"
	workbookRelsEntry  = "xl/_rels/workbook.xml.rels"
	sharedStringsEntry = "xl/sharedStrings.xml"
	stylesEntry        = "xl/styles.xml"
)

// ErrEntryNotFound indicates a requested entry does not exist in the
// container. Callers probing optional parts should use Has instead.
var ErrEntryNotFound = errors.New("entry not found in container")

// Container is a read-only view of an xlsx package as named entries.
type Container struct {
	rc      *zip.ReadCloser
	entries map[string]*zip.File
}

// OpenContainer opens the xlsx package at path.
func OpenContainer(path string) (*Container, error) {
	rc, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("open container %s: %w", path, err)
	}

	entries := make(map[string]*zip.File, len(rc.File))
	for _, f := range rc.File {
		entries[f.Name] = f
	}
	return &Container{rc: rc, entries: entries}, nil
}

// Has reports whether the named entry exists.
func (c *Container) Has(name string) bool {
	_, ok := c.entries[name]
	return ok
}

// Read returns the full contents of the named entry.
func (c *Container) Read(name string) ([]byte, error) {
	f, ok := c.entries[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrEntryNotFound, name)
	}
	r, err := f.Open()
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return io.ReadAll(r)
}

// Close releases the underlying archive.
func (c *Container) Close() error {
	return c.rc.Close()
}
