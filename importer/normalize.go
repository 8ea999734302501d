package importer

import (
	"strconv"
	"strings"

	"codes2json/palette"
)

// Normalize converts a raw row into a typed palette record. Field names and
// text values are trimmed. Numeric fields become integers, or null when the
// value is missing, empty or not a base-10 integer. A text field missing
// from a short row becomes null as well.
func Normalize(record Record) palette.Record {
	normalized := palette.Record{Fields: make([]palette.Field, 0, len(record.Headers))}
	for _, header := range record.Headers {
		name := strings.TrimSpace(header)
		raw, ok := record.Lookup(header)
		if !ok {
			normalized.Set(name, palette.Null())
			continue
		}

		value := strings.TrimSpace(raw)
		if palette.IsNumericField(name) {
			normalized.Set(name, parseInteger(value))
			continue
		}
		normalized.Set(name, palette.Text(value))
	}
	return normalized
}

func NormalizeAll(records []Record) []palette.Record {
	normalized := make([]palette.Record, len(records))
	for i, record := range records {
		normalized[i] = Normalize(record)
	}
	return normalized
}

func parseInteger(value string) palette.Value {
	if value == "" {
		return palette.Null()
	}
	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return palette.Null()
	}
	return palette.Integer(n)
}
