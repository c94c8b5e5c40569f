package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/rolodex/internal/paths"
	"github.com/mesh-intelligence/rolodex/pkg/types"
)

// configFile mirrors the layout of config.yaml.
type configFile struct {
	Log struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
	} `yaml:"log"`
	Output string `yaml:"output"`
}

func newInitCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write a default config.yaml",
		Long:  "Create the configuration directory and a default config.yaml. An existing file is left untouched.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			configDir, err := paths.ResolveConfigDir(s.configDir)
			if err != nil {
				return fmt.Errorf("resolve config dir: %w", err)
			}
			path := paths.ConfigFile(configDir)

			created, err := writeConfigIfMissing(configDir, path)
			if err != nil {
				return err
			}
			if created {
				fmt.Fprintln(cmd.OutOrStdout(), "wrote", path)
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), "config already exists at", path)
			}
			return nil
		},
	}
}

// writeConfigIfMissing creates configDir and a default config.yaml inside
// it. It reports false without touching anything if the file exists.
func writeConfigIfMissing(configDir, path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return false, nil
	}
	if !os.IsNotExist(err) {
		return false, fmt.Errorf("stat config file: %w", err)
	}

	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return false, fmt.Errorf("create config directory: %w", err)
	}
	defaults := types.DefaultConfig()
	var cf configFile
	cf.Log.Level = defaults.LogLevel
	cf.Log.Format = defaults.LogFormat
	cf.Output = defaults.Output

	data, err := yaml.Marshal(&cf)
	if err != nil {
		return false, fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return false, fmt.Errorf("write config: %w", err)
	}
	return true, nil
}
