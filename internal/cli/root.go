// Package cli implements the rolodex command-line interface.
package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/rolodex/internal/script"
	"github.com/mesh-intelligence/rolodex/pkg/types"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// session holds global flag values and the state PersistentPreRunE
// derives from them. Each root command owns one.
type session struct {
	configDir string
	logLevel  string
	logFormat string
	jsonMode  bool

	cfg    types.Config
	logger *slog.Logger
}

// NewRootCmd creates the top-level "rolodex" command with global flags
// and all subcommands registered.
func NewRootCmd() *cobra.Command {
	s := &session{}

	root := &cobra.Command{
		Use:   "rolodex",
		Short: "An in-memory contact directory",
		Long: `Rolodex keeps named contact records with validated phone numbers.
Nothing is stored between runs: every command starts from an empty
directory and builds it from a script.`,
		// Do not print usage on errors returned by subcommands.
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Skip config loading for version command
			if cmd.Name() == "version" {
				return nil
			}
			return s.setup(cmd)
		},
	}

	root.PersistentFlags().StringVar(&s.configDir, "config-dir", "", "configuration directory (default: $XDG_CONFIG_HOME/rolodex)")
	root.PersistentFlags().StringVar(&s.logLevel, "log-level", "", "log level: debug, info, warn or error")
	root.PersistentFlags().StringVar(&s.logFormat, "log-format", "", "log format: text or json")
	root.PersistentFlags().BoolVar(&s.jsonMode, "json", false, "output as JSON")

	root.AddCommand(newVersionCmd())
	root.AddCommand(newInitCmd(s))
	root.AddCommand(newDemoCmd(s))
	root.AddCommand(newApplyCmd(s))
	root.AddCommand(newExportCmd(s))
	root.AddCommand(newOwnersCmd(s))

	return root
}

// Execute runs the root command and exits with the appropriate code.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	root := NewRootCmd()
	err := root.ExecuteContext(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
	}
	stop()
	os.Exit(exitCode(err))
}

// exitCode maps an error to the process exit code. Validation, lookup and
// script errors are the user's; anything else is a system error.
func exitCode(err error) int {
	switch {
	case err == nil:
		return exitSuccess
	case errors.Is(err, types.ErrInvalidFormat),
		errors.Is(err, types.ErrAlreadyExists),
		errors.Is(err, types.ErrNotFound),
		errors.Is(err, script.ErrUnknownOp),
		errors.Is(err, script.ErrMissingField),
		errors.Is(err, script.ErrEmptyScript),
		errors.Is(err, errUsage):
		return exitUserError
	default:
		return exitSysError
	}
}

// setup loads configuration and builds the logger for every subcommand.
func (s *session) setup(cmd *cobra.Command) error {
	cfg, err := s.loadConfig(cmd)
	if err != nil {
		return err
	}
	s.cfg = cfg
	s.logger = newLogger(cmd.ErrOrStderr(), cfg)
	s.logger.Debug("configuration loaded",
		"log_level", cfg.LogLevel, "log_format", cfg.LogFormat, "output", cfg.Output)
	return nil
}

// jsonOutput reports whether command output should be JSON.
func (s *session) jsonOutput() bool {
	return s.cfg.Output == types.FormatJSON
}

// log returns the session logger, or a discarding one before setup ran.
func (s *session) log() *slog.Logger {
	if s.logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return s.logger
}
