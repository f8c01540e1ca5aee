package puzzle

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSolver struct {
	day   int
	part1 func([]string) (int, error)
	part2 func([]string) (int, error)
}

func (s stubSolver) Day() int                          { return s.day }
func (s stubSolver) Title() string                     { return "stub" }
func (s stubSolver) Part1(lines []string) (int, error) { return s.part1(lines) }
func (s stubSolver) Part2(lines []string) (int, error) { return s.part2(lines) }

func count(lines []string) (int, error) { return len(lines), nil }

func TestSolve(t *testing.T) {
	s := stubSolver{day: 4, part1: count, part2: count}

	answer, err := Solve(s, []string{"a", "b"})
	require.NoError(t, err)
	assert.Equal(t, Answer{Day: 4, Title: "stub", Part1: 2, Part2: 2}, answer)
}

func TestSolve_WrapsPartErrors(t *testing.T) {
	boom := errors.New("boom")
	s := stubSolver{
		day:   7,
		part1: count,
		part2: func([]string) (int, error) { return 0, boom },
	}

	answer, err := Solve(s, nil)
	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "day 07 part 2")
	assert.Equal(t, 0, answer.Part1)
}

func TestRegistry(t *testing.T) {
	r, err := NewRegistry(
		stubSolver{day: 3, part1: count, part2: count},
		stubSolver{day: 1, part1: count, part2: count},
	)
	require.NoError(t, err)

	assert.Equal(t, []int{1, 3}, r.Days())

	s, err := r.Get(3)
	require.NoError(t, err)
	assert.Equal(t, 3, s.Day())

	_, err = r.Get(2)
	assert.ErrorIs(t, err, ErrUnknownDay)
}

func TestRegistry_Duplicate(t *testing.T) {
	_, err := NewRegistry(
		stubSolver{day: 1, part1: count, part2: count},
		stubSolver{day: 1, part1: count, part2: count},
	)
	assert.ErrorIs(t, err, ErrDuplicateDay)
}
