package parser

import (
	"strings"

	"github.com/gridcat/gridcat/pkg/gridcat/models"
)

// ProjectRecords treats row 0 as headers and turns every following row into
// a header-keyed record. Columns under an empty header are skipped, and
// records whose every value is blank are dropped.
func ProjectRecords(rows []models.Row) []models.Record {
	records := []models.Record{}
	if len(rows) == 0 {
		return records
	}

	headers := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		headers[i] = strings.TrimSpace(h.String())
	}

	for _, row := range rows[1:] {
		record := models.Record{}
		for i, header := range headers {
			if header == "" {
				continue
			}
			value := models.Empty()
			if i < len(row) {
				value = row[i]
			}
			record[header] = value
		}
		if !record.IsBlank() {
			records = append(records, record)
		}
	}
	return records
}
