package importer

// Record is one raw source row. Headers keeps the header names exactly as
// read (untrimmed, duplicates removed, first position wins). A header whose
// column is missing in a short row has no entry in Values.
type Record struct {
	RowNumber int
	Headers   []string
	Values    map[string]string
}

// Lookup returns the raw value for header and whether the row carried it.
func (r Record) Lookup(header string) (string, bool) {
	value, ok := r.Values[header]
	return value, ok
}

// newRecord pairs a data row with the header row. Extra trailing columns are
// ignored. When a header name repeats, the later column wins, including when
// the later column is missing from the row.
func newRecord(rowNumber int, headers []string, row []string) Record {
	values := make(map[string]string, len(headers))
	for i, header := range headers {
		if i < len(row) {
			values[header] = row[i]
		} else {
			delete(values, header)
		}
	}

	return Record{
		RowNumber: rowNumber,
		Headers:   uniqueHeaders(headers),
		Values:    values,
	}
}

func uniqueHeaders(headers []string) []string {
	seen := make(map[string]struct{}, len(headers))
	unique := make([]string, 0, len(headers))
	for _, header := range headers {
		if _, ok := seen[header]; ok {
			continue
		}
		seen[header] = struct{}{}
		unique = append(unique, header)
	}
	return unique
}

func recordsFromRows(headers []string, rows [][]string, firstRowNumber int) []Record {
	records := make([]Record, 0, len(rows))
	for i, row := range rows {
		if isBlankRow(row) {
			continue
		}
		records = append(records, newRecord(firstRowNumber+i, headers, row))
	}
	return records
}

func isBlankRow(row []string) bool {
	return len(row) == 0
}
