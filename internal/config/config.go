// Package config defines the configuration of finance-report and loads it from
// an optional YAML file, FINANCE_REPORT_* environment variables and command
// line flags.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/iwvelando/finance-report/pkg/constants"
	"github.com/iwvelando/finance-report/pkg/validation"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Configuration holds all configuration for finance-report.
type Configuration struct {
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging,omitempty"`
	Output  OutputConfig  `mapstructure:"output" yaml:"output,omitempty"`
	Input   InputConfig   `mapstructure:"input" yaml:"input,omitempty"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `mapstructure:"level" yaml:"level,omitempty"`           // debug, info, warn, error
	Format     string `mapstructure:"format" yaml:"format,omitempty"`         // json, console
	OutputFile string `mapstructure:"outputFile" yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds report output options
type OutputConfig struct {
	Format string `mapstructure:"format" yaml:"format,omitempty"` // markdown, html, json
	Pretty bool   `mapstructure:"pretty" yaml:"pretty,omitempty"` // indent JSON
	Path   string `mapstructure:"path" yaml:"path,omitempty"`     // empty writes to stdout
}

// InputConfig holds transaction loading options
type InputConfig struct {
	Format          string `mapstructure:"format" yaml:"format,omitempty"` // auto, json, csv
	DefaultCategory string `mapstructure:"defaultCategory" yaml:"defaultCategory,omitempty"`
}

// flagKeys maps command line flag names to configuration keys.
var flagKeys = map[string]string{
	"format":           "output.format",
	"pretty":           "output.pretty",
	"output":           "output.path",
	"input-format":     "input.format",
	"default-category": "input.defaultCategory",
	"log-level":        "logging.level",
	"log-format":       "logging.format",
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")
	v.SetDefault("logging.outputFile", "")
	v.SetDefault("output.format", constants.OutputFormatMarkdown)
	v.SetDefault("output.pretty", false)
	v.SetDefault("output.path", "")
	v.SetDefault("input.format", constants.InputFormatAuto)
	v.SetDefault("input.defaultCategory", "")
	return v
}

// LoadConfiguration builds the configuration. configPath may be empty, in which
// case only defaults, environment variables and flags apply. flags may be nil;
// when given, only flags the user actually set override other sources.
func LoadConfiguration(configPath string, flags *pflag.FlagSet) (*Configuration, error) {
	v := newViper()

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file, %s", err)
		}
	}

	if flags != nil {
		for name, key := range flagKeys {
			flag := flags.Lookup(name)
			if flag == nil {
				continue
			}
			if err := v.BindPFlag(key, flag); err != nil {
				return nil, fmt.Errorf("unable to bind flag %s: %w", name, err)
			}
		}
	}

	return decode(v)
}

// LoadConfigurationFromReader reads YAML configuration from r on top of the
// defaults and environment.
func LoadConfigurationFromReader(r io.Reader) (*Configuration, error) {
	v := newViper()
	if err := v.ReadConfig(r); err != nil {
		return nil, fmt.Errorf("error reading config data, %s", err)
	}
	return decode(v)
}

func decode(v *viper.Viper) (*Configuration, error) {
	var configuration Configuration
	if err := v.Unmarshal(&configuration); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}
	return &configuration, nil
}

// LoadEnvFiles loads KEY=VALUE pairs from the given .env files into the
// process environment without overriding variables that are already set.
// Missing files are skipped.
func LoadEnvFiles(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, path := range paths {
		if err := godotenv.Load(path); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("failed to load env file %s: %w", path, err)
		}
	}
	return nil
}

// ConfigPathFromEnv returns FINANCE_REPORT_CONFIG when set, otherwise the
// default config file if it exists, otherwise "".
func ConfigPathFromEnv() string {
	if path := os.Getenv(constants.EnvPrefix + "_CONFIG"); path != "" {
		return path
	}
	if _, err := os.Stat(constants.DefaultConfigFile); err == nil {
		return constants.DefaultConfigFile
	}
	return ""
}

// Validate checks values that would make a run fail.
func (c *Configuration) Validate() error {
	if err := validation.ValidateOutputFormat(c.Output.Format); err != nil {
		return err
	}
	if err := validation.ValidateInputFormat(c.Input.Format); err != nil {
		return err
	}
	return nil
}

// ValidateConfiguration returns warnings about settings that have no effect.
func (c *Configuration) ValidateConfiguration() []string {
	var warnings []string
	if c.Output.Pretty && c.Output.Format != constants.OutputFormatJSON {
		warnings = append(warnings,
			fmt.Sprintf("output.pretty only applies to json output, format is %s", c.Output.Format))
	}
	if strings.TrimSpace(c.Input.DefaultCategory) == "" && c.Input.DefaultCategory != "" {
		warnings = append(warnings, "input.defaultCategory is blank and will be ignored")
	}
	return warnings
}
