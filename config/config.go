package config

import (
	"bytes"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

const (
	KeyConvertInput  = "convert.input"
	KeyConvertOutput = "convert.output"
	KeyConvertPretty = "convert.pretty"
	KeyConvertMapBy  = "convert.map_by"
	KeyConvertFormat = "convert.format"
	KeyPaletteDB     = "palette.db"
	KeyNearestLimit  = "nearest.limit"

	DefaultInput  = "codes.csv"
	DefaultOutput = "codes.json"
	DefaultDB     = "./codes.db"
	DefaultLimit  = 5
)

type Config struct {
	Convert ConvertConfig `mapstructure:"convert"`
	Palette PaletteConfig `mapstructure:"palette"`
	Nearest NearestConfig `mapstructure:"nearest"`
}

type ConvertConfig struct {
	Input  string `mapstructure:"input" validate:"required"`
	Output string `mapstructure:"output" validate:"required"`
	Pretty bool   `mapstructure:"pretty"`
	MapBy  string `mapstructure:"map_by" validate:"omitempty,oneof=name hard"`
	Format string `mapstructure:"format" validate:"omitempty,oneof=csv excel xlsx xlsm xls"`
}

type PaletteConfig struct {
	DB string `mapstructure:"db" validate:"required"`
}

type NearestConfig struct {
	Limit int `mapstructure:"limit" validate:"gte=1"`
}

// ConvertOptions is the fully resolved input of one conversion run.
type ConvertOptions struct {
	Input  string `validate:"required"`
	Output string `validate:"required"`
	Format string `validate:"omitempty,oneof=csv excel xlsx xlsm xls"`
	Pretty bool
	MapBy  string `validate:"omitempty,oneof=name hard"`
}

// SetDefaults sets default values if not provided
func SetDefaults() {
	setDefaults(viper.GetViper())
}

// LoadAndValidate loads config from Viper and validates it
func LoadAndValidate() (*Config, error) {
	return loadAndValidateFromViper(viper.GetViper())
}

// ValidateYAMLContent validates configuration from raw YAML content.
func ValidateYAMLContent(content []byte) (*Config, error) {
	local := viper.New()
	setDefaults(local)
	local.SetConfigType("yaml")
	if err := local.ReadConfig(bytes.NewReader(content)); err != nil {
		return nil, fmt.Errorf("read config content: %w", err)
	}
	return loadAndValidateFromViper(local)
}

// ValidateOptions checks resolved conversion options.
func ValidateOptions(options ConvertOptions) error {
	if err := validator.New().Struct(options); err != nil {
		return fmt.Errorf("invalid options: %w", err)
	}
	return nil
}

// ExampleYAML returns the default configuration template.
func ExampleYAML() string {
	return `# codes2json configuration
convert:
  input: "codes.csv"
  output: "codes.json"
  pretty: true
  # name | hard, empty for a plain list
  map_by: ""
  # csv | excel, empty to infer from the input extension
  format: ""

palette:
  db: "./codes.db"

nearest:
  limit: 5
`
}

func loadAndValidateFromViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(KeyConvertInput, DefaultInput)
	v.SetDefault(KeyConvertOutput, DefaultOutput)
	v.SetDefault(KeyConvertPretty, true)
	v.SetDefault(KeyConvertMapBy, "")
	v.SetDefault(KeyConvertFormat, "")
	v.SetDefault(KeyPaletteDB, DefaultDB)
	v.SetDefault(KeyNearestLimit, DefaultLimit)
}
