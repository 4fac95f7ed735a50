// Package commands implements the edfinfo command line.
package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/simonhull/edfmeta/internal/config"
	"github.com/simonhull/edfmeta/internal/logger"
)

// app carries state shared by every subcommand for a single invocation.
type app struct {
	// Global flags.
	cfgFile   string
	logLevel  string
	logFormat string

	cfg    config.Config
	log    *slog.Logger
	closer io.Closer
}

// Execute runs the edfinfo command line with os.Args.
// This is called by main.main().
func Execute(ctx context.Context) error {
	return NewRootCmd().ExecuteContext(ctx)
}

// NewRootCmd builds a fresh command tree. Tests use it to run commands in
// isolation.
func NewRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "edfinfo",
		Short: "edfinfo - inspect EDF recording headers",
		Long: `edfinfo decodes the fixed 256-byte header of European Data Format (EDF)
recordings and prints the patient, recording and timing information it holds.

Use "edfinfo [command] --help" for more information about a command.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if a.closer == nil {
				return nil
			}
			return a.closer.Close()
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default: ~/.config/edfinfo/config.toml)")
	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&a.logFormat, "log-format", "", "log format (text, json)")

	rootCmd.AddCommand(newHeaderCmd(a))
	rootCmd.AddCommand(newVersionCmd())

	rootCmd.CompletionOptions.DisableDefaultCmd = true

	return rootCmd
}

// setup loads the config file and builds the logger. Flags win over the file.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.cfgFile)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.LogLevel = a.logLevel
	}
	if flags.Changed("log-format") {
		cfg.LogFormat = a.logFormat
	}
	a.cfg = cfg

	switch {
	case strings.EqualFold(cfg.LogOutput, "stdout"):
		return fmt.Errorf("log output %q is reserved for command output; use stderr or a file", cfg.LogOutput)
	case strings.EqualFold(cfg.LogOutput, "stderr") || cfg.LogOutput == "":
		// through cobra so tests can capture it
		log, err := logger.NewWithWriter(cmd.ErrOrStderr(), cfg.LogLevel, cfg.LogFormat)
		if err != nil {
			return err
		}
		a.log = log
		return nil
	}

	log, closer, err := logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
		Output: cfg.LogOutput,
	})
	if err != nil {
		return err
	}
	a.log = log
	a.closer = closer
	return nil
}
