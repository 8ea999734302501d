package importer

import (
	"strings"
	"testing"
)

func TestReadCSV_QuotedFieldsAndEmbeddedNewlines(t *testing.T) {
	input := "Color Name,R,G,B,Note\n\"Red, bright\",255,0,0,\"line one\nline two\"\n\"Say \"\"hi\"\"\",1,2,3,\n"

	records, err := readCSV(strings.NewReader(input))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}

	if got, _ := records[0].Lookup("Color Name"); got != "Red, bright" {
		t.Fatalf("unexpected name: %q", got)
	}
	if got, _ := records[0].Lookup("Note"); got != "line one\nline two" {
		t.Fatalf("unexpected note: %q", got)
	}
	if got, _ := records[1].Lookup("Color Name"); got != `Say "hi"` {
		t.Fatalf("unexpected quoted name: %q", got)
	}
	if records[0].RowNumber != 2 || records[1].RowNumber != 4 {
		t.Fatalf("unexpected row numbers: %d, %d", records[0].RowNumber, records[1].RowNumber)
	}
}

func TestReadCSV_KeepsHeadersUntrimmed(t *testing.T) {
	records, err := readCSV(strings.NewReader(" Color Name , R \nRed,255\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	if records[0].Headers[0] != " Color Name " || records[0].Headers[1] != " R " {
		t.Fatalf("expected raw headers, got %q", records[0].Headers)
	}
}

func TestReadCSV_RaggedRows(t *testing.T) {
	records, err := readCSV(strings.NewReader("Color Name,R,G,B\nShort,1\nLong,1,2,3,4,5\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}

	short := records[0]
	if _, ok := short.Lookup("G"); ok {
		t.Fatalf("expected G to be absent in short row")
	}
	if got, ok := short.Lookup("R"); !ok || got != "1" {
		t.Fatalf("unexpected R in short row: %q %v", got, ok)
	}

	long := records[1]
	if len(long.Values) != 4 {
		t.Fatalf("expected extra columns to be dropped, got %v", long.Values)
	}
	if got, _ := long.Lookup("B"); got != "3" {
		t.Fatalf("unexpected B in long row: %q", got)
	}
}

func TestReadCSV_StripsByteOrderMarkAndSkipsBlankLines(t *testing.T) {
	records, err := readCSV(strings.NewReader("\ufeffColor Name,R\n\nRed,255\n\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	if got, ok := records[0].Lookup("Color Name"); !ok || got != "Red" {
		t.Fatalf("expected BOM-free header, got headers %q", records[0].Headers)
	}
}

func TestReadCSV_EmptyInput(t *testing.T) {
	records, err := readCSV(strings.NewReader(""))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 0 {
		t.Fatalf("expected no records, got %d", len(records))
	}
}

func TestReadCSV_DuplicateHeaderLaterColumnWins(t *testing.T) {
	records, err := readCSV(strings.NewReader("A,B,A\n1,2,3\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	record := records[0]
	if len(record.Headers) != 2 || record.Headers[0] != "A" || record.Headers[1] != "B" {
		t.Fatalf("unexpected headers: %q", record.Headers)
	}
	if got, _ := record.Lookup("A"); got != "3" {
		t.Fatalf("expected later column to win, got %q", got)
	}
}

func TestReadCSV_BareQuoteInUnquotedField(t *testing.T) {
	records, err := readCSV(strings.NewReader("Color Name,R\n5\" bead,1\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, _ := records[0].Lookup("Color Name"); got != `5" bead` {
		t.Fatalf("unexpected name: %q", got)
	}
}
