package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"slices"
	"strconv"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/povarna/advent-of-code-2021/internal/config"
	"github.com/povarna/advent-of-code-2021/internal/puzzle"
	"github.com/povarna/advent-of-code-2021/internal/report"
	"github.com/povarna/advent-of-code-2021/internal/setup"
	"github.com/povarna/advent-of-code-2021/internal/setup/logger"
	"github.com/spf13/cobra"
)

type app struct {
	configPath string
	logLevel   string
	format     string

	deps *setup.Dependencies
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "aoc",
		Short:         "Advent of Code 2021 solvers",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
	}

	root.PersistentFlags().StringVar(&a.configPath, "config", "", "Path to the YAML config (default $AOC_CONFIG_PATH or configs/aoc.yaml)")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "Log level: debug, info, warn, error")
	root.PersistentFlags().StringVar(&a.format, "format", "", "Output format. Supported formats: 'text', 'json'")

	root.AddCommand(newSolveCmd(a), newCheckCmd(a), newListCmd(a))

	return root
}

func (a *app) init(cmd *cobra.Command) error {
	envErr := godotenv.Load()

	cfg, err := a.loadConfig()
	if err != nil {
		return err
	}

	setup.ApplyEnv(cfg)
	if a.logLevel != "" {
		cfg.LogLevel = a.logLevel
	}
	if a.format != "" {
		cfg.Format = a.format
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	l := logger.New(cmd.ErrOrStderr(), cfg.LogLevel).
		With().
		Str("run_id", uuid.NewString()).
		Logger()

	if envErr != nil {
		l.Debug().Msg("No .env file found, using environment variables")
	}

	deps, err := setup.Wire(cfg, nil, &l)
	if err != nil {
		return fmt.Errorf("failed to wire dependencies: %w", err)
	}
	a.deps = deps

	return nil
}

// loadConfig falls back to the built-in defaults when no path was given and
// the default config file does not exist.
func (a *app) loadConfig() (*config.Config, error) {
	if a.configPath != "" {
		return config.LoadFile(a.configPath)
	}

	cfg, err := config.Load()
	if errors.Is(err, fs.ErrNotExist) && os.Getenv("AOC_CONFIG_PATH") == "" {
		return config.Default(), nil
	}
	return cfg, err
}

// selectDays maps command arguments to config entries. Without arguments it
// returns the configured days, or every registered day when none are
// configured.
func (a *app) selectDays(args []string) ([]config.Day, error) {
	cfg := a.deps.Config

	if len(args) == 0 {
		if len(cfg.Days) > 0 {
			return slices.Clone(cfg.Days), nil
		}
		days := []config.Day{}
		for _, day := range a.deps.Registry.Days() {
			days = append(days, cfg.Lookup(day))
		}
		return days, nil
	}

	days := make([]config.Day, 0, len(args))
	for _, arg := range args {
		day, err := strconv.Atoi(arg)
		if err != nil {
			return nil, fmt.Errorf("invalid day %q", arg)
		}
		if _, err := a.deps.Registry.Get(day); err != nil {
			return nil, err
		}
		days = append(days, cfg.Lookup(day))
	}
	return days, nil
}

// writeAnswers writes every answer and flushes the writer, so an
// unwritable output is reported instead of dropped.
func writeAnswers(writer *report.Writer, answers []puzzle.Answer) error {
	for _, answer := range answers {
		if err := writer.Write(answer); err != nil {
			return err
		}
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}
