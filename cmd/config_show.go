package cmd

import (
	"fmt"

	"codes2json/config"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show active configuration values.",
	Long: `Display the currently loaded configuration and the resolved config file path.

This command validates the configuration before printing values. Built-in
defaults are shown when no config file is found.`,
	Example: `
  # Show active configuration
  codes2json config show
`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadAndValidate()
		if err != nil {
			fmt.Println("Invalid config:", err)
			return
		}

		if configPath := viper.ConfigFileUsed(); configPath != "" {
			fmt.Println("Config file loaded from:", configPath)
		} else {
			fmt.Println("No config file found, using defaults.")
		}
		fmt.Println("Configuration:")
		fmt.Printf("convert.input: %s\n", cfg.Convert.Input)
		fmt.Printf("convert.output: %s\n", cfg.Convert.Output)
		fmt.Printf("convert.pretty: %t\n", cfg.Convert.Pretty)
		fmt.Printf("convert.map_by: %s\n", cfg.Convert.MapBy)
		fmt.Printf("convert.format: %s\n", cfg.Convert.Format)
		fmt.Printf("palette.db: %s\n", cfg.Palette.DB)
		fmt.Printf("nearest.limit: %d\n", cfg.Nearest.Limit)
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
}
