package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/baditaflorin/go_format_normalizer/internal/adapters/logger"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. NORMALIZE_LOG_LEVEL.
const EnvPrefix = "NORMALIZE"

// Keys shared by flags and environment variables.
const (
	KeyType         = "type"
	KeyInput        = "input"
	KeyInputFormat  = "input_format"
	KeyOutputFormat = "output_format"
	KeyLogLevel     = "log_level"
	KeyLogJSON      = "log_json"
	KeyRegion       = "region"
)

// Defaults.
const (
	DefaultLogLevel = "INFO"
	DefaultRegion   = "US"
)

// Config is one CLI invocation.
type Config struct {
	Type         string
	Input        string
	InputFormat  string
	OutputFormat string

	LogLevel logger.Level
	LogJSON  bool
	Region   string
}

// RegisterFlags declares the flags Load reads.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String(KeyType, "", "data type to normalize: phone, date or string (required)")
	fs.String(KeyInput, "", "raw value to normalize (required)")
	fs.String(KeyInputFormat, "", "format hint for parsing the input, e.g. MM/DD/YYYY, %m/%d/%Y or (###) ###-####")
	fs.String(KeyOutputFormat, "", "output format; defaults to digits for phone, %Y-%m-%d for date, lower for string")
	fs.String(KeyLogLevel, DefaultLogLevel, "log level: DEBUG, INFO, WARNING, ERROR or CRITICAL")
	fs.Bool(KeyLogJSON, false, "write log lines as JSON")
	fs.String(KeyRegion, DefaultRegion, "region assumed for phone numbers without a leading +")
}

// Load merges flags with NORMALIZE_* environment variables. A flag given on
// the command line wins over the environment, which wins over defaults.
func Load(fs *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	if err := v.BindPFlags(fs); err != nil {
		return nil, fmt.Errorf("binding flags: %w", err)
	}

	level, err := logger.ParseLevel(v.GetString(KeyLogLevel))
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Type:         v.GetString(KeyType),
		Input:        v.GetString(KeyInput),
		InputFormat:  v.GetString(KeyInputFormat),
		OutputFormat: v.GetString(KeyOutputFormat),
		LogLevel:     level,
		LogJSON:      v.GetBool(KeyLogJSON),
		Region:       strings.ToUpper(v.GetString(KeyRegion)),
	}
	if cfg.Region == "" {
		cfg.Region = DefaultRegion
	}

	if !inputGiven(v, fs) {
		return nil, errors.New("--input is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Type) == "" {
		return errors.New("--type is required")
	}
	return nil
}

// inputGiven reports whether --input or NORMALIZE_INPUT was supplied. An
// explicitly empty input is still an input.
func inputGiven(v *viper.Viper, fs *pflag.FlagSet) bool {
	if f := fs.Lookup(KeyInput); f != nil && f.Changed {
		return true
	}
	return v.GetString(KeyInput) != ""
}
