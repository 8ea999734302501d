package cmd

import (
	"fmt"
	"io"
	"os"

	"codes2json/config"
	"codes2json/importer"
	"codes2json/palette"
	"codes2json/storage"

	"github.com/spf13/cobra"
)

var (
	nearestInput  string
	nearestDBPath string
	nearestLimit  int
)

var nearestCmd = &cobra.Command{
	Use:   "nearest <hex>",
	Short: "List the palette colours closest to a hex colour",
	Long: `Rank palette records by a red-mean weighted RGB distance to the given colour.

The palette is read from --input (CSV/Excel) by default, or from the SQLite
palette when --db is given. Records without integer R, G and B are ignored.`,
	Example: `
  # Closest five colours from ./codes.csv
  codes2json nearest "#c81e3c"

  # Closest three colours from the imported palette
  codes2json nearest c81e3c --db ./codes.db -n 3
`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadAndValidate()
		if err != nil {
			return err
		}

		target, err := palette.ParseHex(args[0])
		if err != nil {
			return err
		}

		limit := cfg.Nearest.Limit
		if cmd.Flags().Changed("limit") {
			limit = nearestLimit
		}
		if limit < 1 {
			return fmt.Errorf("limit must be >= 1, got %d", limit)
		}

		var records []palette.Record
		if cmd.Flags().Changed("db") {
			records, err = loadPaletteFromDB(nearestDBPath)
		} else {
			input := cfg.Convert.Input
			if cmd.Flags().Changed("input") {
				input = nearestInput
			}
			records, err = loadPaletteFromFile(input, cfg.Convert.Format)
		}
		if err != nil {
			return err
		}

		printMatches(os.Stdout, target, palette.Nearest(target, records, limit))
		return nil
	},
}

func loadPaletteFromFile(path, format string) ([]palette.Record, error) {
	result, err := importer.Run(path, format)
	if err != nil {
		return nil, err
	}
	return result.Records, nil
}

func loadPaletteFromDB(path string) ([]palette.Record, error) {
	store, err := storage.OpenSQLite(path)
	if err != nil {
		return nil, err
	}
	defer store.Close()

	return store.ListColors()
}

func printMatches(w io.Writer, target palette.RGB, matches []palette.Match) {
	if len(matches) == 0 {
		fmt.Fprintf(w, "No palette colours with RGB values found for %s\n", target.Hex())
		return
	}

	fmt.Fprintf(w, "Closest colours to %s (brightness %.1f):\n", target.Hex(), palette.Brightness(target))
	for i, match := range matches {
		name := match.Record.DisplayName()
		if name == "" {
			name = "Unknown"
		}
		fmt.Fprintf(w, "%d. %s %s distance=%.1f\n", i+1, name, match.Color.Hex(), match.Distance)
	}
}

func init() {
	rootCmd.AddCommand(nearestCmd)

	nearestCmd.Flags().StringVarP(&nearestInput, "input", "i", config.DefaultInput, "Palette CSV/Excel path")
	nearestCmd.Flags().StringVar(&nearestDBPath, "db", "", "Read the palette from this SQLite database instead of --input")
	nearestCmd.Flags().IntVarP(&nearestLimit, "limit", "n", config.DefaultLimit, "Number of colours to list")
}
