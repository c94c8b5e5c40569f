package types

import "errors"

// Config holds the settings the rolodex CLI reads from config.yaml and
// its flags.
type Config struct {
	LogLevel  string `json:"log_level" yaml:"log_level" mapstructure:"log_level"`
	LogFormat string `json:"log_format" yaml:"log_format" mapstructure:"log_format"`
	Output    string `json:"output" yaml:"output" mapstructure:"output"`
}

// Supported log levels, log formats and output modes.
const (
	LogLevelDebug = "debug"
	LogLevelInfo  = "info"
	LogLevelWarn  = "warn"
	LogLevelError = "error"

	FormatText = "text"
	FormatJSON = "json"
)

// Config validation errors.
var (
	ErrLogLevelUnknown  = errors.New("unknown log level")
	ErrLogFormatUnknown = errors.New("unknown log format")
	ErrOutputUnknown    = errors.New("unknown output mode")
)

var knownLogLevels = map[string]bool{
	LogLevelDebug: true,
	LogLevelInfo:  true,
	LogLevelWarn:  true,
	LogLevelError: true,
}

var knownFormats = map[string]bool{
	FormatText: true,
	FormatJSON: true,
}

// DefaultConfig returns the values used when config.yaml sets nothing.
func DefaultConfig() Config {
	return Config{
		LogLevel:  LogLevelWarn,
		LogFormat: FormatText,
		Output:    FormatText,
	}
}

// Validate checks that every field holds a recognized value. Empty fields
// are accepted and mean the default.
func (c Config) Validate() error {
	if c.LogLevel != "" && !knownLogLevels[c.LogLevel] {
		return ErrLogLevelUnknown
	}
	if c.LogFormat != "" && !knownFormats[c.LogFormat] {
		return ErrLogFormatUnknown
	}
	if c.Output != "" && !knownFormats[c.Output] {
		return ErrOutputUnknown
	}
	return nil
}
