package cmd

import "github.com/spf13/cobra"

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the codes2json configuration file.",
	Long: `Create and display the codes2json configuration file.

The configuration provides defaults for command flags:
- convert.input / convert.output / convert.pretty / convert.map_by / convert.format
- palette.db
- nearest.limit

Flags given on the command line always win over configured values.`,
	Example: `
  # Create default config in $HOME/.codes2json.yaml
  codes2json config create

  # Show active config and source file
  codes2json config show
`,
}

func init() {
	rootCmd.AddCommand(configCmd)
}
