package parser

import (
	"reflect"
	"testing"

	"github.com/gridcat/gridcat/pkg/gridcat/models"
)

const sheetEntry = "xl/worksheets/sheet1.xml"

func sheetContainer(t *testing.T, sheetData string) *Container {
	t.Helper()
	return openFixture(t, map[string]string{
		sheetEntry: `<worksheet xmlns="` + nsMain + `"><sheetData>` + sheetData + `</sheetData></worksheet>`,
	})
}

func TestParseRowsSparseColumns(t *testing.T) {
	c := sheetContainer(t, `<row r="1"><c r="B1"><v>5</v></c><c r="D1"><v>7</v></c></row>`)

	rows, err := ParseRows(c, sheetEntry, nil, nil)
	if err != nil {
		t.Fatalf("ParseRows failed: %v", err)
	}
	want := []models.Row{
		{models.Empty(), models.Int(5), models.Empty(), models.Int(7)},
	}
	if !reflect.DeepEqual(rows, want) {
		t.Errorf("ParseRows = %v, want %v", rows, want)
	}
}

func TestParseRowsEmptyRow(t *testing.T) {
	c := sheetContainer(t, `<row r="1"><c r="A1"><v>1</v></c></row><row r="2"/>`)

	rows, err := ParseRows(c, sheetEntry, nil, nil)
	if err != nil {
		t.Fatalf("ParseRows failed: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if len(rows[1]) != 0 {
		t.Errorf("cell-less row has length %d, want 0", len(rows[1]))
	}
}

func TestCellValueSharedStrings(t *testing.T) {
	shared := []string{"hello", "world"}

	tests := []struct {
		name string
		raw  string
		want models.Value
	}{
		{"in range", "1", models.String("world")},
		{"zero index", "0", models.String("hello")},
		{"out of range", "9", models.String("")},
		{"negative", "-1", models.String("")},
		{"empty raw defaults to index 0", "", models.String("hello")},
		{"unparseable index", "x", models.String("")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cell := xmlCell{Ref: "A1", Type: "s", Value: &tt.raw}
			if got := cellValue(cell, shared, nil); got != tt.want {
				t.Errorf("cellValue = %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestCellValueSharedStringWithoutTable(t *testing.T) {
	raw := "1"
	cell := xmlCell{Ref: "A1", Type: "s", Value: &raw}
	if got := cellValue(cell, nil, nil); got != models.String("") {
		t.Errorf("cellValue without table = %#v, want empty string", got)
	}
}

func TestCellValueBool(t *testing.T) {
	for raw, want := range map[string]bool{"1": true, "0": false, "TRUE": false} {
		r := raw
		cell := xmlCell{Ref: "A1", Type: "b", Value: &r}
		if got := cellValue(cell, nil, nil); got != models.Bool(want) {
			t.Errorf("cellValue(b %q) = %#v, want %v", raw, got, want)
		}
	}
}

func TestCellValueDates(t *testing.T) {
	dates := DateStyles{1: true}

	tests := []struct {
		raw  string
		want string
	}{
		{"1", "1899-12-31T00:00:00"},
		{"1.5", "1899-12-31T12:00:00"},
		// Serials at or above 61 line up with real calendar dates; the
		// phantom 1900 leap day keeps the smaller ones shifted.
		{"61", "1900-03-01T00:00:00"},
		{"45000.25", "2023-03-15T06:00:00"},
	}
	for _, tt := range tests {
		r := tt.raw
		cell := xmlCell{Ref: "A1", Style: 1, Value: &r}
		if got := cellValue(cell, nil, dates); got != models.Date(tt.want) {
			t.Errorf("cellValue(serial %s) = %#v, want %q", tt.raw, got, tt.want)
		}
	}
}

func TestCellValueDateStyleNonNumeric(t *testing.T) {
	raw := "n/a"
	cell := xmlCell{Ref: "A1", Style: 1, Value: &raw}
	if got := cellValue(cell, nil, DateStyles{1: true}); got != models.String("n/a") {
		t.Errorf("cellValue = %#v, want raw string fallback", got)
	}
}

func TestCellValueNumbers(t *testing.T) {
	tests := []struct {
		raw  string
		want models.Value
	}{
		{"30", models.Int(30)},
		{"-4", models.Int(-4)},
		{"2.0", models.Int(2)},
		{"2.5", models.Float(2.5)},
		{"1e3", models.Int(1000)},
		{"abc", models.String("abc")},
	}
	for _, tt := range tests {
		r := tt.raw
		cell := xmlCell{Ref: "A1", Value: &r}
		if got := cellValue(cell, nil, nil); got != tt.want {
			t.Errorf("cellValue(%q) = %#v, want %#v", tt.raw, got, tt.want)
		}
	}
}

func TestCellValueInlineString(t *testing.T) {
	inline := "inline text"
	shadow := "42"
	cell := xmlCell{Ref: "A1", Value: &shadow, IS: &xmlInlineString{T: &inline}}
	if got := cellValue(cell, nil, nil); got != models.String("inline text") {
		t.Errorf("cellValue inline = %#v, want the inline text", got)
	}
}

func TestCellValueNoValueNode(t *testing.T) {
	cell := xmlCell{Ref: "A1"}
	if got := cellValue(cell, nil, nil); got != models.Empty() {
		t.Errorf("cellValue = %#v, want empty", got)
	}
}

func TestParseRowsFullDecode(t *testing.T) {
	c := openFixture(t, map[string]string{
		sheetEntry: `<worksheet xmlns="` + nsMain + `"><sheetData>
			<row r="1"><c r="A1" t="s"><v>0</v></c><c r="B1" t="inlineStr"><is><t>note</t></is></c></row>
			<row r="2"><c r="A2" t="b"><v>1</v></c><c r="B2" s="2"><v>1</v></c></row>
		</sheetData></worksheet>`,
	})

	rows, err := ParseRows(c, sheetEntry, []string{"header"}, DateStyles{2: true})
	if err != nil {
		t.Fatalf("ParseRows failed: %v", err)
	}
	want := []models.Row{
		{models.String("header"), models.String("note")},
		{models.Bool(true), models.Date("1899-12-31T00:00:00")},
	}
	if !reflect.DeepEqual(rows, want) {
		t.Errorf("ParseRows = %v, want %v", rows, want)
	}
}

func TestParseRowsMalformedSheet(t *testing.T) {
	c := openFixture(t, map[string]string{
		sheetEntry: `<worksheet><sheetData><row`,
	})

	if _, err := ParseRows(c, sheetEntry, nil, nil); err == nil {
		t.Error("expected error for malformed worksheet XML")
	}
}
