package setup

import (
	"fmt"
	"os"

	aoc2021day01 "github.com/povarna/advent-of-code-2021/internal/aoc/2021/day01"
	aoc2021day02 "github.com/povarna/advent-of-code-2021/internal/aoc/2021/day02"
	aoc2021day03 "github.com/povarna/advent-of-code-2021/internal/aoc/2021/day03"
	"github.com/povarna/advent-of-code-2021/internal/config"
	"github.com/povarna/advent-of-code-2021/internal/input"
	"github.com/povarna/advent-of-code-2021/internal/puzzle"
	"github.com/povarna/advent-of-code-2021/internal/runner"
	"github.com/rs/zerolog"
)

type Dependencies struct {
	Config   *config.Config
	Registry *puzzle.Registry
	Loader   *input.FileLoader
	Runner   *runner.Runner
	Logger   *zerolog.Logger
}

// ApplyEnv lets AOC_* environment variables override the file config.
func ApplyEnv(cfg *config.Config) {
	cfg.LogLevel = getEnv("AOC_LOG_LEVEL", cfg.LogLevel)
	cfg.InputsDir = getEnv("AOC_INPUTS_DIR", cfg.InputsDir)
	cfg.Format = getEnv("AOC_FORMAT", cfg.Format)
}

func Solvers() []puzzle.Solver {
	return []puzzle.Solver{
		aoc2021day01.Solver{},
		aoc2021day02.Solver{},
		aoc2021day03.Solver{},
	}
}

func Wire(cfg *config.Config, source runner.LineSource, logger *zerolog.Logger) (*Dependencies, error) {
	registry, err := puzzle.NewRegistry(Solvers()...)
	if err != nil {
		return nil, fmt.Errorf("failed to register solvers: %w", err)
	}

	loader := input.NewFileLoader(cfg.InputsDir, logger)
	if source == nil {
		source = loader
	}

	return &Dependencies{
		Config:   cfg,
		Registry: registry,
		Loader:   loader,
		Runner:   runner.NewRunner(registry, source, logger),
		Logger:   logger,
	}, nil
}

func getEnv(key string, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		value = defaultValue
	}

	return value
}
