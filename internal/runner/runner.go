package runner

import (
	"context"
	"errors"
	"fmt"

	"github.com/povarna/advent-of-code-2021/internal/config"
	"github.com/povarna/advent-of-code-2021/internal/puzzle"
	"github.com/rs/zerolog"
)

var ErrCheckFailed = errors.New("sample check failed")

// LineSource returns the lines of a named puzzle input.
type LineSource interface {
	Lines(ctx context.Context, name string) ([]string, error)
}

type Runner struct {
	registry *puzzle.Registry
	source   LineSource
	logger   *zerolog.Logger
}

func NewRunner(registry *puzzle.Registry, source LineSource, logger *zerolog.Logger) *Runner {
	return &Runner{
		registry: registry,
		source:   source,
		logger:   logger,
	}
}

func (r *Runner) Solve(ctx context.Context, day int, inputName string) (puzzle.Answer, error) {
	solver, err := r.registry.Get(day)
	if err != nil {
		return puzzle.Answer{}, err
	}

	lines, err := r.source.Lines(ctx, inputName)
	if err != nil {
		return puzzle.Answer{}, err
	}

	r.logger.Debug().
		Int("day", day).
		Str("input", inputName).
		Int("lines", len(lines)).
		Msg("Solving")

	answer, err := puzzle.Solve(solver, lines)
	if err != nil {
		return puzzle.Answer{}, err
	}

	r.logger.Info().
		Int("day", day).
		Str("input", inputName).
		Int("part1", answer.Part1).
		Int("part2", answer.Part2).
		Msg("Solved")

	return answer, nil
}

// Check solves the sample input and compares both parts with the expected
// answers.
func (r *Runner) Check(ctx context.Context, day int, sample config.Sample) (puzzle.Answer, error) {
	answer, err := r.Solve(ctx, day, sample.Input)
	if err != nil {
		return answer, fmt.Errorf("day %02d sample: %w", day, err)
	}

	if answer.Part1 != sample.Part1 {
		return answer, fmt.Errorf("%w: day %02d part 1 got %d, want %d", ErrCheckFailed, day, answer.Part1, sample.Part1)
	}
	if answer.Part2 != sample.Part2 {
		return answer, fmt.Errorf("%w: day %02d part 2 got %d, want %d", ErrCheckFailed, day, answer.Part2, sample.Part2)
	}

	r.logger.Info().Int("day", day).Str("input", sample.Input).Msg("Sample check passed")

	return answer, nil
}

// SolveAll runs days in order. With checks enabled every day with a sample
// is verified before its real input is solved, and the first failure stops
// the run.
func (r *Runner) SolveAll(ctx context.Context, days []config.Day, withChecks bool) ([]puzzle.Answer, error) {
	answers := make([]puzzle.Answer, 0, len(days))

	for _, d := range days {
		if err := ctx.Err(); err != nil {
			return answers, err
		}

		if withChecks && d.Sample != nil {
			if _, err := r.Check(ctx, d.Day, *d.Sample); err != nil {
				return answers, err
			}
		}

		answer, err := r.Solve(ctx, d.Day, d.Input)
		if err != nil {
			return answers, err
		}
		answers = append(answers, answer)
	}

	return answers, nil
}

// CheckAll verifies every day that has a sample and skips the others.
func (r *Runner) CheckAll(ctx context.Context, days []config.Day) ([]puzzle.Answer, error) {
	answers := []puzzle.Answer{}

	for _, d := range days {
		if d.Sample == nil {
			r.logger.Warn().Int("day", d.Day).Msg("No sample configured, skipping check")
			continue
		}

		answer, err := r.Check(ctx, d.Day, *d.Sample)
		if err != nil {
			return answers, err
		}
		answers = append(answers, answer)
	}

	return answers, nil
}
