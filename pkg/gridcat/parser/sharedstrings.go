package parser

import (
	"bytes"
	"encoding/xml"
	"io"
	"strings"
)

// LoadSharedStrings parses the shared string table into an ordered list,
// positional index = string id. A missing sharedStrings part is normal for
// minimal workbooks and yields an empty table.
//
// A string item may be split into several text runs for rich formatting;
// every t element below an si contributes its text in document order, at
// whatever nesting depth it appears.
func LoadSharedStrings(c *Container) ([]string, error) {
	if !c.Has(sharedStringsEntry) {
		return nil, nil
	}
	data, err := c.Read(sharedStringsEntry)
	if err != nil {
		return nil, err
	}

	var (
		table   []string
		current *strings.Builder
	)
	dec := xml.NewDecoder(bytes.NewReader(data))
	for {
		token, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		switch t := token.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "si":
				current = &strings.Builder{}
			case "t":
				if current == nil {
					continue
				}
				text, err := elementText(dec)
				if err != nil {
					return nil, err
				}
				current.WriteString(text)
			}
		case xml.EndElement:
			if t.Name.Local == "si" && current != nil {
				table = append(table, current.String())
				current = nil
			}
		}
	}
	return table, nil
}

// elementText consumes the decoder up to the current element's end tag and
// returns the concatenated character data.
func elementText(dec *xml.Decoder) (string, error) {
	var text strings.Builder
	depth := 1
	for depth > 0 {
		token, err := dec.Token()
		if err != nil {
			return text.String(), err
		}
		switch t := token.(type) {
		case xml.CharData:
			text.Write(t)
		case xml.StartElement:
			depth++
		case xml.EndElement:
			depth--
		}
	}
	return text.String(), nil
}
