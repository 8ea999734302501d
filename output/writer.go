package output

import (
	"fmt"
	"path/filepath"
	"strings"

	"codes2json/palette"
)

type Writer interface {
	Write(path string, records []palette.Record) error
}

// Options configures the writer returned by WriterForFormat. Pretty and
// KeyField only apply to json output.
type Options struct {
	Pretty   bool
	KeyField string
}

func WriterForFormat(format string, options Options) (Writer, error) {
	switch normalizeFormat(format) {
	case "json":
		return &JSONWriter{Pretty: options.Pretty, KeyField: options.KeyField}, nil
	case "csv":
		return &CSVWriter{}, nil
	case "excel", "xlsx":
		return &ExcelWriter{}, nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s", format)
	}
}

// DetectFormat infers the output format from the file extension. Anything
// unknown is written as json.
func DetectFormat(path string) string {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	switch ext {
	case "csv":
		return "csv"
	case "xlsx", "xlsm", "xls":
		return "excel"
	default:
		return "json"
	}
}

func normalizeFormat(value string) string {
	return strings.TrimSpace(strings.ToLower(value))
}

// tableFromRecords flattens records into a header row and string cells.
// The header is the union of field names in first-seen order; null and
// missing fields become empty cells.
func tableFromRecords(records []palette.Record) ([]string, [][]string) {
	headers := make([]string, 0, 8)
	index := make(map[string]int)
	for _, record := range records {
		for _, field := range record.Fields {
			if _, ok := index[field.Name]; ok {
				continue
			}
			index[field.Name] = len(headers)
			headers = append(headers, field.Name)
		}
	}

	rows := make([][]string, len(records))
	for i, record := range records {
		row := make([]string, len(headers))
		for _, field := range record.Fields {
			row[index[field.Name]] = field.Value.String()
		}
		rows[i] = row
	}
	return headers, rows
}
