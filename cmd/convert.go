package cmd

import (
	"fmt"

	"codes2json/config"
	"codes2json/importer"
	"codes2json/output"

	"github.com/spf13/cobra"
)

// convertFlags are the conversion flags of the root command. Flags left
// unset fall back to the config file.
type convertFlags struct {
	input    string
	output   string
	format   string
	mapBy    string
	noPretty bool
}

func (f *convertFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.input, "input", "i", config.DefaultInput, "Input CSV path")
	cmd.Flags().StringVarP(&f.output, "output", "o", config.DefaultOutput, "Output JSON path")
	cmd.Flags().StringVarP(&f.format, "format", "f", "", "Input format: csv|excel (optional, inferred from extension when omitted)")
	cmd.Flags().BoolVar(&f.noPretty, "no-pretty", false, "Write compact JSON without indentation")
	cmd.Flags().StringVar(&f.mapBy, "map-by", "", "Output a mapping keyed by 'Color Name' (name) or 'Hard' (hard) instead of a list")
}

func (f convertFlags) resolve(cmd *cobra.Command, cfg config.ConvertConfig) config.ConvertOptions {
	options := config.ConvertOptions{
		Input:  cfg.Input,
		Output: cfg.Output,
		Format: cfg.Format,
		Pretty: cfg.Pretty,
		MapBy:  cfg.MapBy,
	}

	flags := cmd.Flags()
	if flags.Changed("input") {
		options.Input = f.input
	}
	if flags.Changed("output") {
		options.Output = f.output
	}
	if flags.Changed("format") {
		options.Format = f.format
	}
	if flags.Changed("no-pretty") {
		options.Pretty = !f.noPretty
	}
	if flags.Changed("map-by") {
		options.MapBy = f.mapBy
	}
	return options
}

type conversionSummary struct {
	Records int
	Output  string
	MapBy   string
}

func (s conversionSummary) String() string {
	mapBy := s.MapBy
	if mapBy == "" {
		mapBy = "none"
	}
	return fmt.Sprintf("Wrote %d records to %s (map_by=%s)", s.Records, s.Output, mapBy)
}

// runConversion reads, normalizes, assembles and writes one file. The input
// is checked before anything is parsed or written.
func runConversion(options config.ConvertOptions) (conversionSummary, error) {
	if err := config.ValidateOptions(options); err != nil {
		return conversionSummary{}, err
	}

	keyField, err := output.KeyFieldForMapBy(options.MapBy)
	if err != nil {
		return conversionSummary{}, err
	}

	result, err := importer.Run(options.Input, options.Format)
	if err != nil {
		return conversionSummary{}, err
	}

	doc := output.Assemble(result.Records, keyField)
	if err := output.WriteDocument(options.Output, doc, options.Pretty); err != nil {
		return conversionSummary{}, err
	}

	return conversionSummary{
		Records: result.RowsRead,
		Output:  options.Output,
		MapBy:   options.MapBy,
	}, nil
}
