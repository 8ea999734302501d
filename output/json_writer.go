package output

import (
	"fmt"
	"os"

	"codes2json/palette"
)

// JSONWriter assembles records (list mode, or map mode when KeyField is
// set) and writes them as a JSON document.
type JSONWriter struct {
	Pretty   bool
	KeyField string
}

func (w *JSONWriter) Write(path string, records []palette.Record) error {
	return WriteDocument(path, Assemble(records, w.KeyField), w.Pretty)
}

func WriteDocument(path string, doc Document, pretty bool) error {
	content, err := EncodeJSON(doc, pretty)
	if err != nil {
		return err
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create json output %s: %w", path, err)
	}
	defer file.Close()

	if _, err := file.Write(content); err != nil {
		return fmt.Errorf("write json output %s: %w", path, err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("close json output %s: %w", path, err)
	}
	return nil
}
