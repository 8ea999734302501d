package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"codes2json/palette"
)

const (
	MapByName = "name"
	MapByHard = "hard"
)

// KeyFieldForMapBy resolves a --map-by choice to the record field used as
// mapping key. An empty choice selects list mode and returns "".
func KeyFieldForMapBy(mapBy string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(mapBy)) {
	case "":
		return "", nil
	case MapByName:
		return palette.FieldName, nil
	case MapByHard:
		return palette.FieldHard, nil
	default:
		return "", fmt.Errorf("unsupported map-by value %q (supported: %s, %s)", mapBy, MapByName, MapByHard)
	}
}

// Entry holds every record that shares one mapping key. A key seen once
// serializes as a single object, a repeated key as an array.
type Entry struct {
	Records []palette.Record
}

func (e Entry) MarshalJSON() ([]byte, error) {
	if len(e.Records) == 1 {
		return e.Records[0].MarshalJSON()
	}
	return marshalRecords(e.Records)
}

// Document is the assembled output: either the plain record list or a
// mapping keyed by KeyField in first-seen key order.
type Document struct {
	KeyField string

	list    []palette.Record
	keys    []string
	entries map[string]*Entry
}

func (d Document) IsMap() bool { return d.KeyField != "" }

// Len is the number of top-level JSON elements: records in list mode, keys
// in map mode.
func (d Document) Len() int {
	if d.IsMap() {
		return len(d.keys)
	}
	return len(d.list)
}

func (d Document) Keys() []string {
	return append([]string(nil), d.keys...)
}

func (d Document) Entry(key string) (Entry, bool) {
	entry, ok := d.entries[key]
	if !ok {
		return Entry{}, false
	}
	return *entry, true
}

// Records flattens the document in output order.
func (d Document) Records() []palette.Record {
	if !d.IsMap() {
		return d.list
	}
	records := make([]palette.Record, 0, len(d.keys))
	for _, key := range d.keys {
		records = append(records, d.entries[key].Records...)
	}
	return records
}

func (d Document) MarshalJSON() ([]byte, error) {
	if !d.IsMap() {
		return marshalRecords(d.list)
	}

	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range d.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		encodedKey, err := palette.MarshalString(key)
		if err != nil {
			return nil, err
		}
		buf.Write(encodedKey)
		buf.WriteByte(':')
		value, err := d.entries[key].MarshalJSON()
		if err != nil {
			return nil, err
		}
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Assemble builds the output document. With an empty keyField the records
// are returned unchanged. Otherwise records are grouped by the text of
// keyField; records where that field is missing, null or empty are dropped.
func Assemble(records []palette.Record, keyField string) Document {
	if keyField == "" {
		return Document{list: records}
	}

	doc := Document{
		KeyField: keyField,
		keys:     make([]string, 0, len(records)),
		entries:  make(map[string]*Entry, len(records)),
	}
	for _, record := range records {
		value, ok := record.Lookup(keyField)
		if !ok || value.IsNull() {
			continue
		}
		key := value.String()
		if key == "" {
			continue
		}

		if entry, exists := doc.entries[key]; exists {
			entry.Records = append(entry.Records, record)
			continue
		}
		doc.keys = append(doc.keys, key)
		doc.entries[key] = &Entry{Records: []palette.Record{record}}
	}
	return doc
}

func marshalRecords(records []palette.Record) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('[')
	for i, record := range records {
		if i > 0 {
			buf.WriteByte(',')
		}
		value, err := record.MarshalJSON()
		if err != nil {
			return nil, err
		}
		buf.Write(value)
	}
	buf.WriteByte(']')
	return buf.Bytes(), nil
}

// EncodeJSON renders v either indented by two spaces or compact. HTML
// characters and non-ASCII text are written literally. No trailing newline
// is emitted.
func EncodeJSON(v any, pretty bool) ([]byte, error) {
	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	if pretty {
		encoder.SetIndent("", "  ")
	}
	if err := encoder.Encode(v); err != nil {
		return nil, fmt.Errorf("encode json: %w", err)
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}
