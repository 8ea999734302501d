package output

import (
	"path/filepath"
	"testing"

	"codes2json/palette"
)

func TestBuildGroupSummaries_AveragesCompleteColours(t *testing.T) {
	partial := palette.Record{Fields: []palette.Field{
		{Name: palette.FieldName, Value: palette.Text("Unknown")},
		{Name: palette.FieldR, Value: palette.Null()},
		{Name: palette.FieldHard, Value: palette.Text("true")},
	}}
	records := []palette.Record{
		colorRecord("Red", 255, 0, 0, "true"),
		colorRecord("Sky", 135, 206, 235, "false"),
		colorRecord("Crimson", 220, 20, 60, "true"),
		partial,
	}

	summaries := BuildGroupSummaries(Assemble(records, palette.FieldHard))
	if len(summaries) != 2 {
		t.Fatalf("expected 2 summaries, got %d", len(summaries))
	}

	hard := summaries[0]
	if hard.Key != "true" || hard.RecordCount != 3 || hard.ColorCount != 2 {
		t.Fatalf("unexpected summary: %+v", hard)
	}
	if hard.AverageHex != "#ee0a1e" {
		t.Fatalf("expected average #ee0a1e, got %s", hard.AverageHex)
	}
	if hard.FirstName != "Red" {
		t.Fatalf("expected first name Red, got %q", hard.FirstName)
	}

	soft := summaries[1]
	if soft.Key != "false" || soft.AverageHex != "#87ceeb" {
		t.Fatalf("unexpected summary: %+v", soft)
	}
}

func TestBuildGroupSummaries_NoColours(t *testing.T) {
	record := palette.Record{Fields: []palette.Field{{Name: palette.FieldHard, Value: palette.Text("x")}}}

	summaries := BuildGroupSummaries(Assemble([]palette.Record{record}, palette.FieldHard))
	if len(summaries) != 1 || summaries[0].AverageHex != "" || summaries[0].ColorCount != 0 {
		t.Fatalf("unexpected summaries: %+v", summaries)
	}
}

func TestWriteGroupSummaries_RejectsJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "groups.json")
	if err := WriteGroupSummaries(path, "json", nil); err == nil {
		t.Fatalf("expected error for json summary output")
	}
}
