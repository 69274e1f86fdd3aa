package parser

import (
	"encoding/xml"
	"errors"
	"fmt"
	"strings"
)

// ErrSheetNotFound indicates the workbook's first sheet relationship could
// not be resolved to a worksheet part. Nothing can be parsed without it.
var ErrSheetNotFound = errors.New("sheet relationship not found")

type xmlWorkbook struct {
	Sheets []xmlSheet `xml:"sheets>sheet"`
}

type xmlSheet struct {
	Name string `xml:"name,attr"`
	RID  string `xml:"http://schemas.openxmlformats.org/officeDocument/2006/relationships id,attr"`
}

type xmlRelationships struct {
	Relationships []xmlRelationship `xml:"Relationship"`
}

type xmlRelationship struct {
	ID     string `xml:"Id,attr"`
	Target string `xml:"Target,attr"`
}

// FirstSheetPath resolves the container path of the workbook's first
// declared sheet: the sheet's relationship id is looked up in the workbook
// relationships part and the target normalized to a package-internal path.
func FirstSheetPath(c *Container) (string, error) {
	data, err := c.Read(workbookEntry)
	if err != nil {
		return "", err
	}
	var wb xmlWorkbook
	if err := xml.Unmarshal(data, &wb); err != nil {
		return "", fmt.Errorf("parse workbook: %w", err)
	}
	if len(wb.Sheets) == 0 {
		return "", fmt.Errorf("%w: workbook declares no sheets", ErrSheetNotFound)
	}
	relID := wb.Sheets[0].RID

	data, err = c.Read(workbookRelsEntry)
	if err != nil {
		return "", err
	}
	var rels xmlRelationships
	if err := xml.Unmarshal(data, &rels); err != nil {
		return "", fmt.Errorf("parse workbook relationships: %w", err)
	}

	for _, rel := range rels.Relationships {
		if rel.ID == relID && rel.Target != "" {
			return normalizeTarget(rel.Target), nil
		}
	}
	return "", fmt.Errorf("%w: %s", ErrSheetNotFound, relID)
}

// normalizeTarget maps a relationship target to an entry path. Absolute
// targets are package-rooted; relative ones resolve against xl/.
func normalizeTarget(target string) string {
	if strings.HasPrefix(target, "/") {
		return strings.TrimPrefix(target, "/")
	}
	if strings.HasPrefix(target, "xl/") {
		return target
	}
	return "xl/" + target
}
