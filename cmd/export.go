package cmd

import (
	"fmt"
	"strings"

	"codes2json/config"
	"codes2json/output"
	"codes2json/storage"

	"github.com/spf13/cobra"
)

var (
	exportFormat   string
	exportMode     string
	exportOutput   string
	exportDBPath   string
	exportMapBy    string
	exportNoPretty bool
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the SQLite palette to JSON, CSV or Excel",
	Long: `Export the normalized palette records stored by "import".

Modes:
- records: export every stored record (json honours --map-by and --no-pretty)
- groups: export one row per --map-by key with record count and average colour (csv/excel)

Output format can be selected explicitly via --format or inferred from --output extension.`,
	Example: `
  # Export the palette as a JSON list
  codes2json export --db ./codes.db --output ./codes.json

  # Export keyed by colour name, compact
  codes2json export --db ./codes.db --output ./by-name.json --map-by name --no-pretty

  # Export to Excel
  codes2json export --db ./codes.db --output ./codes.xlsx

  # Summarize the Hard groups as CSV
  codes2json export --mode groups --map-by hard --db ./codes.db --output ./hard.csv
`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadAndValidate()
		if err != nil {
			return err
		}

		dbPath := cfg.Palette.DB
		if cmd.Flags().Changed("db") {
			dbPath = exportDBPath
		}
		pretty := cfg.Convert.Pretty
		if cmd.Flags().Changed("no-pretty") {
			pretty = !exportNoPretty
		}

		summary, err := runExport(exportRequest{
			DBPath: dbPath,
			Output: exportOutput,
			Format: exportFormat,
			Mode:   exportMode,
			MapBy:  exportMapBy,
			Pretty: pretty,
		})
		if err != nil {
			return err
		}
		fmt.Println(summary)
		return nil
	},
}

type exportRequest struct {
	DBPath string
	Output string
	Format string
	Mode   string
	MapBy  string
	Pretty bool
}

func runExport(request exportRequest) (string, error) {
	format := request.Format
	if strings.TrimSpace(format) == "" {
		format = output.DetectFormat(request.Output)
	}

	keyField, err := output.KeyFieldForMapBy(request.MapBy)
	if err != nil {
		return "", err
	}

	store, err := storage.OpenSQLite(request.DBPath)
	if err != nil {
		return "", err
	}
	defer store.Close()

	records, err := store.ListColors()
	if err != nil {
		return "", err
	}

	mode := strings.TrimSpace(strings.ToLower(request.Mode))
	switch mode {
	case "", "records":
		writer, writerErr := output.WriterForFormat(format, output.Options{Pretty: request.Pretty, KeyField: keyField})
		if writerErr != nil {
			return "", writerErr
		}
		if err := writer.Write(request.Output, records); err != nil {
			return "", err
		}
		return fmt.Sprintf("Export completed. Records: %d, Mode: records, Format: %s, File: %s", len(records), format, request.Output), nil
	case "groups":
		if keyField == "" {
			return "", fmt.Errorf("export mode groups requires --map-by (supported: %s, %s)", output.MapByName, output.MapByHard)
		}
		summaries := output.BuildGroupSummaries(output.Assemble(records, keyField))
		if err := output.WriteGroupSummaries(request.Output, format, summaries); err != nil {
			return "", err
		}
		return fmt.Sprintf("Export completed. Groups: %d, Mode: groups, Format: %s, File: %s", len(summaries), format, request.Output), nil
	default:
		return "", fmt.Errorf("unsupported export mode: %s (supported: records, groups)", request.Mode)
	}
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringVar(&exportMode, "mode", "records", "Export mode: records|groups")
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "", "Output format: json|csv|excel (optional, inferred from output extension)")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Output file path")
	exportCmd.Flags().StringVar(&exportDBPath, "db", config.DefaultDB, "Path to local SQLite palette database")
	exportCmd.Flags().StringVar(&exportMapBy, "map-by", "", "Group by 'Color Name' (name) or 'Hard' (hard)")
	exportCmd.Flags().BoolVar(&exportNoPretty, "no-pretty", false, "Write compact JSON without indentation")

	_ = exportCmd.MarkFlagRequired("output")
}
