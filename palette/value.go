package palette

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// Kind tags the concrete type held by a Value.
type Kind int

const (
	KindNull Kind = iota
	KindText
	KindInteger
)

func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindInteger:
		return "integer"
	default:
		return "null"
	}
}

// ParseKind is the inverse of Kind.String. Unknown names map to KindNull.
func ParseKind(name string) Kind {
	switch name {
	case "text":
		return KindText
	case "integer":
		return KindInteger
	default:
		return KindNull
	}
}

// Value is one normalized field value: text, integer or null.
type Value struct {
	kind Kind
	text string
	num  int64
}

func Null() Value { return Value{} }

func Text(s string) Value { return Value{kind: KindText, text: s} }

func Integer(n int64) Value { return Value{kind: KindInteger, num: n} }

func (v Value) Kind() Kind { return v.kind }

func (v Value) IsNull() bool { return v.kind == KindNull }

// Text returns the text payload and whether the value is text.
func (v Value) Text() (string, bool) {
	return v.text, v.kind == KindText
}

// Int returns the integer payload and whether the value is an integer.
func (v Value) Int() (int64, bool) {
	return v.num, v.kind == KindInteger
}

// String renders the value the way it appears as a mapping key: text as is,
// integers in base 10, null as the empty string.
func (v Value) String() string {
	switch v.kind {
	case KindText:
		return v.text
	case KindInteger:
		return strconv.FormatInt(v.num, 10)
	default:
		return ""
	}
}

func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindText:
		return MarshalString(v.text)
	case KindInteger:
		return strconv.AppendInt(nil, v.num, 10), nil
	default:
		return []byte("null"), nil
	}
}

// MarshalString encodes s as a JSON string without escaping HTML characters.
// Non-ASCII characters are kept literally.
func MarshalString(s string) ([]byte, error) {
	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(s); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}
