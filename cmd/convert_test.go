package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"codes2json/config"
	"codes2json/importer"

	"github.com/spf13/cobra"
)

const sampleCSV = "Color Name,R,G,B,Hard\nRed,255,0,0,true\nCrimson,220,20,60,true\n"

func TestRunConversion_MapByHardGroupsDuplicates(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "codes.csv", sampleCSV)
	outputPath := filepath.Join(dir, "codes.json")

	summary, err := runConversion(config.ConvertOptions{Input: input, Output: outputPath, MapBy: "hard"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if summary.Records != 2 {
		t.Fatalf("expected 2 records, got %d", summary.Records)
	}
	if !strings.Contains(summary.String(), "map_by=hard") {
		t.Fatalf("unexpected summary: %s", summary)
	}

	content, err := os.ReadFile(outputPath)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	want := `{"true":[{"Color Name":"Red","R":255,"G":0,"B":0,"Hard":"true"},{"Color Name":"Crimson","R":220,"G":20,"B":60,"Hard":"true"}]}`
	if string(content) != want {
		t.Fatalf("unexpected output:\n%s\nwant:\n%s", content, want)
	}
}

func TestRunConversion_ListModePrettyKeepsEmptyNumericAsNull(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "codes.csv", "Color Name,R,G,B,Hard\n Blåbär ,,12,x, \n")
	outputPath := filepath.Join(dir, "codes.json")

	summary, err := runConversion(config.ConvertOptions{Input: input, Output: outputPath, Pretty: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if summary.String() != fmt.Sprintf("Wrote 1 records to %s (map_by=none)", outputPath) {
		t.Fatalf("unexpected summary: %s", summary)
	}

	content, err := os.ReadFile(outputPath)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	want := "[\n  {\n    \"Color Name\": \"Blåbär\",\n    \"R\": null,\n    \"G\": 12,\n    \"B\": null,\n    \"Hard\": \"\"\n  }\n]"
	if string(content) != want {
		t.Fatalf("unexpected output:\n%s\nwant:\n%s", content, want)
	}
}

func TestRunConversion_MissingInputWritesNothing(t *testing.T) {
	dir := t.TempDir()
	outputPath := filepath.Join(dir, "codes.json")

	_, err := runConversion(config.ConvertOptions{Input: filepath.Join(dir, "missing.csv"), Output: outputPath, Pretty: true})
	if !errors.Is(err, importer.ErrInputNotFound) {
		t.Fatalf("expected ErrInputNotFound, got %v", err)
	}
	if exitCode(err) != exitInputNotFound {
		t.Fatalf("expected exit code %d, got %d", exitInputNotFound, exitCode(err))
	}
	if _, statErr := os.Stat(outputPath); !os.IsNotExist(statErr) {
		t.Fatalf("expected no output file, stat error: %v", statErr)
	}
}

func TestRunConversion_RejectsUnknownMapBy(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "codes.csv", sampleCSV)

	_, err := runConversion(config.ConvertOptions{Input: input, Output: filepath.Join(dir, "out.json"), MapBy: "code"})
	if err == nil {
		t.Fatalf("expected error for unknown map-by")
	}
	if exitCode(err) != exitFailure {
		t.Fatalf("expected exit code %d, got %d", exitFailure, exitCode(err))
	}
}

func TestRunConversion_RoundTripKeepsEveryRecord(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "codes.csv", "Color Name,R,G,B,Hard\nRed,255,0,0,true\nRed,250,1,1,false\n,1,2,3,true\nSky,135,206,235,\n")
	outputPath := filepath.Join(dir, "codes.json")

	if _, err := runConversion(config.ConvertOptions{Input: input, Output: outputPath}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	content, err := os.ReadFile(outputPath)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	var decoded []map[string]any
	if err := json.Unmarshal(content, &decoded); err != nil {
		t.Fatalf("decode output: %v", err)
	}

	want := []map[string]any{
		{"Color Name": "Red", "R": 255.0, "G": 0.0, "B": 0.0, "Hard": "true"},
		{"Color Name": "Red", "R": 250.0, "G": 1.0, "B": 1.0, "Hard": "false"},
		{"Color Name": "", "R": 1.0, "G": 2.0, "B": 3.0, "Hard": "true"},
		{"Color Name": "Sky", "R": 135.0, "G": 206.0, "B": 235.0, "Hard": ""},
	}
	if !reflect.DeepEqual(decoded, want) {
		t.Fatalf("unexpected round trip:\n%v\nwant:\n%v", decoded, want)
	}
}

func TestConvertFlagsResolve(t *testing.T) {
	cfg := config.ConvertConfig{Input: "cfg.csv", Output: "cfg.json", Pretty: true, MapBy: "hard"}

	tests := []struct {
		name string
		args []string
		want config.ConvertOptions
	}{
		{
			name: "config values when no flags",
			want: config.ConvertOptions{Input: "cfg.csv", Output: "cfg.json", Pretty: true, MapBy: "hard"},
		},
		{
			name: "flags override config",
			args: []string{"-i", "in.csv", "-o", "out.json", "--no-pretty", "--map-by", "name"},
			want: config.ConvertOptions{Input: "in.csv", Output: "out.json", Pretty: false, MapBy: "name"},
		},
		{
			name: "explicit empty map-by selects list mode",
			args: []string{"--map-by", ""},
			want: config.ConvertOptions{Input: "cfg.csv", Output: "cfg.json", Pretty: true, MapBy: ""},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var flags convertFlags
			cmd := &cobra.Command{Use: "test"}
			flags.register(cmd)
			if err := cmd.ParseFlags(tt.args); err != nil {
				t.Fatalf("parse flags: %v", err)
			}

			got := flags.resolve(cmd, cfg)
			if got != tt.want {
				t.Fatalf("unexpected options: %+v, want %+v", got, tt.want)
			}
		})
	}
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}
