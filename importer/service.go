package importer

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"codes2json/palette"
)

// ErrInputNotFound is returned before any parsing when the input path does
// not name an existing file.
var ErrInputNotFound = errors.New("input file not found")

type Result struct {
	SourceFile string
	Format     string
	RowsRead   int
	Records    []palette.Record
}

// Run reads one source file and normalizes every row. When format is empty
// it is inferred from the file extension.
func Run(path string, format string) (*Result, error) {
	if err := ensureInputExists(path); err != nil {
		return nil, err
	}

	sourceFormat := InferFormat(path, format)
	reader, err := ReaderForFormat(sourceFormat)
	if err != nil {
		return nil, err
	}

	records, err := reader.Read(path)
	if err != nil {
		return nil, err
	}

	return &Result{
		SourceFile: path,
		Format:     sourceFormat,
		RowsRead:   len(records),
		Records:    NormalizeAll(records),
	}, nil
}

func ensureInputExists(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrInputNotFound, path)
		}
		return fmt.Errorf("check input file %s: %w", path, err)
	}
	if info.IsDir() {
		return fmt.Errorf("%w: %s is a directory", ErrInputNotFound, path)
	}
	return nil
}

// InferFormat returns format when set, otherwise the format implied by the
// file extension. Unknown extensions are read as csv.
func InferFormat(path string, format string) string {
	if strings.TrimSpace(format) != "" {
		return normalizeFormat(format)
	}

	extension := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	switch extension {
	case "xlsx", "xlsm", "xls":
		return "excel"
	default:
		return "csv"
	}
}
