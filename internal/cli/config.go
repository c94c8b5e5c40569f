// Config loading for the rolodex CLI.
package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mesh-intelligence/rolodex/internal/logging"
	"github.com/mesh-intelligence/rolodex/internal/paths"
	"github.com/mesh-intelligence/rolodex/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"

	// Config keys.
	cfgKeyLogLevel  = "log.level"
	cfgKeyLogFormat = "log.format"
	cfgKeyOutput    = "output"

	envPrefix = "ROLODEX"
)

// loadConfig reads config.yaml from the resolved config directory using
// Viper, then applies ROLODEX_* environment variables and flags on top.
// A missing config.yaml is not an error.
func (s *session) loadConfig(cmd *cobra.Command) (types.Config, error) {
	configDir, err := paths.ResolveConfigDir(s.configDir)
	if err != nil {
		return types.Config{}, fmt.Errorf("resolve config dir: %w", err)
	}

	defaults := types.DefaultConfig()
	v := viper.New()
	v.SetDefault(cfgKeyLogLevel, defaults.LogLevel)
	v.SetDefault(cfgKeyLogFormat, defaults.LogFormat)
	v.SetDefault(cfgKeyOutput, defaults.Output)
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	flags := cmd.Root().PersistentFlags()
	if err := v.BindPFlag(cfgKeyLogLevel, flags.Lookup("log-level")); err != nil {
		return types.Config{}, err
	}
	if err := v.BindPFlag(cfgKeyLogFormat, flags.Lookup("log-format")); err != nil {
		return types.Config{}, err
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return types.Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := types.Config{
		LogLevel:  strings.ToLower(v.GetString(cfgKeyLogLevel)),
		LogFormat: strings.ToLower(v.GetString(cfgKeyLogFormat)),
		Output:    strings.ToLower(v.GetString(cfgKeyOutput)),
	}
	if s.jsonMode {
		cfg.Output = types.FormatJSON
	}
	if err := cfg.Validate(); err != nil {
		return types.Config{}, fmt.Errorf("%w: %w", errUsage, err)
	}
	return cfg, nil
}

// newLogger builds the CLI logger from a validated Config.
func newLogger(w io.Writer, cfg types.Config) *slog.Logger {
	return logging.New(w, logging.Options{Level: cfg.LogLevel, Format: cfg.LogFormat})
}
