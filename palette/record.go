// Package palette holds the normalized colour-code record shared by the
// importers, the assembler, the writers and the SQLite store.
package palette

import "bytes"

const (
	FieldName = "Color Name"
	FieldHard = "Hard"
	FieldR    = "R"
	FieldG    = "G"
	FieldB    = "B"
)

// NumericFields are coerced to integers during normalization.
var NumericFields = []string{FieldR, FieldG, FieldB}

func IsNumericField(name string) bool {
	for _, field := range NumericFields {
		if field == name {
			return true
		}
	}
	return false
}

type Field struct {
	Name  string
	Value Value
}

// Record is a normalized row. Fields keep the order of the source header.
type Record struct {
	Fields []Field
}

// Set replaces the value of an existing field in place or appends a new one.
func (r *Record) Set(name string, value Value) {
	for i := range r.Fields {
		if r.Fields[i].Name == name {
			r.Fields[i].Value = value
			return
		}
	}
	r.Fields = append(r.Fields, Field{Name: name, Value: value})
}

// Lookup returns the value stored under name. The second result is false
// when the record has no such field.
func (r Record) Lookup(name string) (Value, bool) {
	for _, field := range r.Fields {
		if field.Name == name {
			return field.Value, true
		}
	}
	return Null(), false
}

func (r Record) Get(name string) Value {
	value, _ := r.Lookup(name)
	return value
}

func (r Record) Names() []string {
	names := make([]string, len(r.Fields))
	for i, field := range r.Fields {
		names[i] = field.Name
	}
	return names
}

// Color returns the record's RGB triple when all three numeric fields hold
// integers in the 0-255 range.
func (r Record) Color() (RGB, bool) {
	var channels [3]int
	for i, name := range NumericFields {
		n, ok := r.Get(name).Int()
		if !ok || n < 0 || n > 255 {
			return RGB{}, false
		}
		channels[i] = int(n)
	}
	return RGB{R: channels[0], G: channels[1], B: channels[2]}, true
}

// DisplayName returns the text of the colour name field, or "" when missing.
func (r Record) DisplayName() string {
	name, _ := r.Get(FieldName).Text()
	return name
}

func (r Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, field := range r.Fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := MarshalString(field.Name)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		value, err := field.Value.MarshalJSON()
		if err != nil {
			return nil, err
		}
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
