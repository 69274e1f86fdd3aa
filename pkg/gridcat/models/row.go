package models

// Row is one worksheet row, dense from column 0 to the highest column the
// row references. Columns the source never mentions hold the empty value.
type Row []Value

// Record maps a non-empty header to the value in the same column of a data
// row.
type Record map[string]Value

// IsBlank reports whether every value in the record is blank. An empty
// record counts as blank.
func (r Record) IsBlank() bool {
	for _, v := range r {
		if !v.IsBlank() {
			return false
		}
	}
	return true
}
