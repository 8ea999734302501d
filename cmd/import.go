package cmd

import (
	"fmt"

	"codes2json/config"
	"codes2json/importer"
	"codes2json/storage"

	"github.com/spf13/cobra"
)

var (
	importInput  string
	importFormat string
	importDBPath string
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import a colour-code CSV/Excel file into a local SQLite palette",
	Long: `Read a source file, normalize every row the same way the conversion does, and store the records in SQLite.

Importing the same file again replaces the records previously imported from it.
When --format is omitted, the format is inferred from the input file extension.`,
	Example: `
  # Import the default codes.csv
  codes2json import --db ./codes.db

  # Import an Excel palette
  codes2json import -i palette.xlsx --db ./codes.db
`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadAndValidate()
		if err != nil {
			return err
		}

		input := cfg.Convert.Input
		if cmd.Flags().Changed("input") {
			input = importInput
		}
		format := cfg.Convert.Format
		if cmd.Flags().Changed("format") {
			format = importFormat
		}
		dbPath := cfg.Palette.DB
		if cmd.Flags().Changed("db") {
			dbPath = importDBPath
		}

		summary, err := runImport(input, format, dbPath)
		if err != nil {
			return err
		}
		fmt.Println(summary)
		return nil
	},
}

type importSummary struct {
	RowsRead    int
	RowsStored  int
	PaletteSize int
}

func (s importSummary) String() string {
	return fmt.Sprintf("Import completed. Rows read: %d, Rows stored: %d, Palette size: %d", s.RowsRead, s.RowsStored, s.PaletteSize)
}

func runImport(input, format, dbPath string) (importSummary, error) {
	result, err := importer.Run(input, format)
	if err != nil {
		return importSummary{}, err
	}

	store, err := storage.OpenSQLite(dbPath)
	if err != nil {
		return importSummary{}, err
	}
	defer store.Close()

	stored, err := store.ReplacePalette(result.SourceFile, result.Records)
	if err != nil {
		return importSummary{}, err
	}

	size, err := store.CountColors()
	if err != nil {
		return importSummary{}, err
	}

	return importSummary{RowsRead: result.RowsRead, RowsStored: stored, PaletteSize: size}, nil
}

func init() {
	rootCmd.AddCommand(importCmd)

	importCmd.Flags().StringVarP(&importInput, "input", "i", config.DefaultInput, "Input file path")
	importCmd.Flags().StringVarP(&importFormat, "format", "f", "", "Input format: csv|excel (optional, inferred from extension when omitted)")
	importCmd.Flags().StringVar(&importDBPath, "db", config.DefaultDB, "Path to local SQLite palette database")
}
