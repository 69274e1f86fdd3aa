// Package output serializes extraction payloads.
package output

import (
	"bytes"
	"encoding/json"
)

// ToJSON serializes the payload without HTML escaping, so text cells pass
// through byte-for-byte. The result carries no trailing newline.
func ToJSON(v any, pretty bool) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}
