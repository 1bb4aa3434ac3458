// Package config provides centralized configuration for the calculator.
// It loads settings from environment variables with sensible defaults and
// validates everything up front to fail fast on misconfiguration.
//
// Command-line flags take precedence over these values; the environment
// only supplies lab-wide defaults (coverage factor, uncertainty target,
// table location) so technicians do not retype them per invocation.
package config

// Config holds all application configuration.
// All settings can be configured via environment variables.
type Config struct {
	Calc    CalcConfig
	Table   TableConfig
	Logging LoggingConfig
}

// CalcConfig holds default calculation parameters.
type CalcConfig struct {
	// CoverageK is the default coverage factor k (default: 2).
	CoverageK float64 `env:"COVERAGE_K" default:"2"`

	// RelUncertainty is the default target relative uncertainty
	// (default: 0.001, i.e. 0.1%).
	RelUncertainty float64 `env:"REL_UNCERTAINTY" envAlt:"TARGET_REL_UNCERTAINTY" default:"0.001"`

	// IncludeResolution controls whether the display division contributes
	// to the effective uncertainty by default (default: true).
	IncludeResolution bool `env:"INCLUDE_RESOLUTION" default:"true"`

	// TUR is the default target test uncertainty ratio for class
	// selection. Zero means no default; the flag must be given.
	TUR float64 `env:"TARGET_TUR"`
}

// TableConfig holds MPE table settings.
type TableConfig struct {
	// Path is the CSV table to load (MPE in mg). Empty means the
	// embedded demonstration table.
	Path string `env:"MPE_TABLE_PATH"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: debug, info, warn, error (default: info)
	Level string `env:"LOG_LEVEL" default:"info"`

	// Format is the log format: text or json (default: text)
	Format string `env:"LOG_FORMAT" default:"text"`
}
