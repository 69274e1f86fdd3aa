package parser

import (
	"encoding/xml"
	"strings"
)

// Built-in number format ids that always mean date or time: 14-22 are the
// date/datetime formats, 45-47 the elapsed-time formats. Custom codes live
// at id 164 and above.
var builtInDateFmtIDs = map[int]bool{
	14: true, 15: true, 16: true, 17: true, 18: true, 19: true,
	20: true, 21: true, 22: true, 45: true, 46: true, 47: true,
}

var dateCodeTokens = []string{"yy", "dd", "mm", "hh", "ss"}

// DateStyles is the set of cell style indices (positions in the cellXfs
// list) whose number format represents a date or time.
type DateStyles map[int]bool

type xmlStyleSheet struct {
	NumFmts []xmlNumFmt `xml:"numFmts>numFmt"`
	CellXfs []xmlXf     `xml:"cellXfs>xf"`
}

type xmlNumFmt struct {
	NumFmtID   int    `xml:"numFmtId,attr"`
	FormatCode string `xml:"formatCode,attr"`
}

type xmlXf struct {
	NumFmtID *int `xml:"numFmtId,attr"`
}

// LoadDateStyles classifies every cell format in the styles part. A missing
// styles part yields an empty set, so all cells read as non-dates.
//
// Custom codes are matched with a heuristic: a code is a date format when it
// contains one of yy/dd/mm/hh/ss and no literal "0". The zero check keeps
// decimal and percentage formats, whose codes share letters with date
// tokens, out of the set.
func LoadDateStyles(c *Container) (DateStyles, error) {
	styles := make(DateStyles)
	if !c.Has(stylesEntry) {
		return styles, nil
	}
	data, err := c.Read(stylesEntry)
	if err != nil {
		return nil, err
	}

	var sheet xmlStyleSheet
	if err := xml.Unmarshal(data, &sheet); err != nil {
		return nil, err
	}

	customCodes := make(map[int]string, len(sheet.NumFmts))
	for _, nf := range sheet.NumFmts {
		customCodes[nf.NumFmtID] = strings.ToLower(nf.FormatCode)
	}

	for idx, xf := range sheet.CellXfs {
		fmtID := 0
		if xf.NumFmtID != nil {
			fmtID = *xf.NumFmtID
		}
		if builtInDateFmtIDs[fmtID] {
			styles[idx] = true
			continue
		}
		if isDateCode(customCodes[fmtID]) {
			styles[idx] = true
		}
	}
	return styles, nil
}

func isDateCode(code string) bool {
	if code == "" || strings.Contains(code, "0") {
		return false
	}
	for _, token := range dateCodeTokens {
		if strings.Contains(code, token) {
			return true
		}
	}
	return false
}
