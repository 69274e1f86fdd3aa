package parser

import (
	"encoding/xml"
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/gridcat/gridcat/pkg/gridcat/models"
)

// Spreadsheet serial dates count days from this epoch. It is 1899-12-30
// rather than 1899-12-31 because the format inherits the bogus 1900-02-29
// leap day; kept as-is for compatibility with spreadsheet-written values.
var serialEpoch = time.Date(1899, 12, 30, 0, 0, 0, 0, time.UTC)

type xmlWorksheet struct {
	SheetData xmlSheetData `xml:"sheetData"`
}

type xmlSheetData struct {
	Rows []xmlRow `xml:"row"`
}

type xmlRow struct {
	Cells []xmlCell `xml:"c"`
}

type xmlCell struct {
	Ref   string           `xml:"r,attr"`
	Type  string           `xml:"t,attr"`
	Style int              `xml:"s,attr"`
	Value *string          `xml:"v"`
	IS    *xmlInlineString `xml:"is"`
}

type xmlInlineString struct {
	T *string `xml:"t"`
}

// ParseRows decodes the worksheet entry at sheetPath into the row matrix.
// Each row is dense from column 0 to the highest column it references;
// a row with no cells comes out empty.
func ParseRows(c *Container, sheetPath string, shared []string, dates DateStyles) ([]models.Row, error) {
	data, err := c.Read(sheetPath)
	if err != nil {
		return nil, err
	}
	var ws xmlWorksheet
	if err := xml.Unmarshal(data, &ws); err != nil {
		return nil, fmt.Errorf("parse worksheet %s: %w", sheetPath, err)
	}

	rows := make([]models.Row, 0, len(ws.SheetData.Rows))
	for _, r := range ws.SheetData.Rows {
		cells := make(map[int]models.Value, len(r.Cells))
		maxCol := -1
		for _, cell := range r.Cells {
			col := columnIndex(cell.Ref)
			if col < 0 {
				continue
			}
			if col > maxCol {
				maxCol = col
			}
			cells[col] = cellValue(cell, shared, dates)
		}

		row := make(models.Row, maxCol+1)
		for col, v := range cells {
			row[col] = v
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// cellValue coerces one cell into its single representation. The checks are
// ordered; the first that applies wins:
//
//  1. inline string text, verbatim
//  2. no value node at all -> empty
//  3. declared type s -> shared string lookup (bad index -> empty)
//  4. declared type b -> true iff raw text is "1"
//  5. date-styled with non-empty numeric text -> ISO-8601 timestamp
//  6. numeric parse: integral -> int, fractional -> float
//  7. anything else stays raw text
func cellValue(cell xmlCell, shared []string, dates DateStyles) models.Value {
	if cell.IS != nil && cell.IS.T != nil {
		return models.String(*cell.IS.T)
	}
	if cell.Value == nil {
		return models.Empty()
	}
	raw := *cell.Value

	switch {
	case cell.Type == "s":
		return models.String(sharedLookup(shared, raw))
	case cell.Type == "b":
		return models.Bool(raw == "1")
	case dates[cell.Style] && raw != "":
		if serial, err := strconv.ParseFloat(raw, 64); err == nil {
			return models.Date(serialToISO(serial))
		}
	}

	number, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return models.String(raw)
	}
	if number == math.Trunc(number) && number >= math.MinInt64 && number < math.MaxInt64 {
		return models.Int(int64(number))
	}
	return models.Float(number)
}

// sharedLookup resolves a raw shared-string index. Unparseable or
// out-of-range indices degrade to the empty string.
func sharedLookup(shared []string, raw string) string {
	idx := 0
	if raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return ""
		}
		idx = n
	}
	if idx < 0 || idx >= len(shared) {
		return ""
	}
	return shared[idx]
}

// serialToISO converts a date serial to ISO-8601 text. Whole days select
// the calendar date, the fractional part is time of day, at microsecond
// resolution.
func serialToISO(serial float64) string {
	micros := math.Round(serial * 24 * 60 * 60 * 1e6)
	t := serialEpoch.Add(time.Duration(micros) * time.Microsecond)
	if t.Nanosecond() == 0 {
		return t.Format("2006-01-02T15:04:05")
	}
	return t.Format("2006-01-02T15:04:05.000000")
}
