/*
Copyright © 2025 riad@rsworld.eu

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"errors"
	"fmt"
	"os"

	"codes2json/config"
	"codes2json/importer"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	exitFailure       = 1
	exitInputNotFound = 2
)

var (
	cfgFile   string
	rootFlags convertFlags
)

// rootCmd converts the input CSV when called without a subcommand.
var rootCmd = &cobra.Command{
	Use:   "codes2json",
	Short: "Convert a CSV of colour codes to JSON.",
	Long: `
**********************************************
*              CODES 2 JSON                  *
**********************************************

Reads a CSV (or Excel) file of colour-code records, trims every field,
converts R, G and B to integers (null when empty or not a number) and writes
the records as JSON.

Without --map-by the output is a JSON array in input order. With --map-by the
output is an object keyed by "Color Name" (name) or "Hard" (hard). A key seen
once maps to a single object, a repeated key maps to an array of objects.
Rows without a value for the chosen key are left out of the mapping.
`,
	Example: `
  # Convert ./codes.csv to ./codes.json
  codes2json

  # Explicit input and output
  codes2json -i input.csv -o out.json

  # Object keyed by colour name, compact output
  codes2json --map-by name --no-pretty

  # Object keyed by the Hard column
  codes2json --map-by hard

  # Store the palette in SQLite and look up the closest colours
  codes2json import -i codes.csv --db ./codes.db
  codes2json nearest "#c81e3c" --db ./codes.db
`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadAndValidate()
		if err != nil {
			return err
		}

		options := rootFlags.resolve(cmd, cfg.Convert)
		summary, err := runConversion(options)
		if err != nil {
			return err
		}

		fmt.Println(summary)
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(exitCode(err))
	}
}

func exitCode(err error) int {
	if errors.Is(err, importer.ErrInputNotFound) {
		return exitInputNotFound
	}
	return exitFailure
}

func init() {
	cobra.OnInitialize(initConfig)

	config.SetDefaults()

	rootCmd.PersistentFlags().StringVar(&cfgFile, "configFile", "", "Config file override (default discovery: $HOME/.codes2json.yaml, then ./.codes2json.yaml)")

	rootFlags.register(rootCmd)
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".codes2json")
	}

	viper.AutomaticEnv()

	// The config file is optional; only an explicit --configFile must exist.
	if err := viper.ReadInConfig(); err != nil && cfgFile != "" {
		fmt.Fprintln(os.Stderr, "Could not read config file:", err)
	}
}
