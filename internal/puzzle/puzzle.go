package puzzle

import (
	"errors"
	"fmt"
	"slices"
)

var (
	ErrUnknownDay   = errors.New("unknown day")
	ErrDuplicateDay = errors.New("duplicate day")
)

// Solver computes both answers of a single day from its raw input lines.
type Solver interface {
	Day() int
	Title() string
	Part1(lines []string) (int, error)
	Part2(lines []string) (int, error)
}

type Answer struct {
	Day   int    `json:"day"`
	Title string `json:"title"`
	Part1 int    `json:"part1"`
	Part2 int    `json:"part2"`
}

func Solve(s Solver, lines []string) (Answer, error) {
	answer := Answer{
		Day:   s.Day(),
		Title: s.Title(),
	}

	part1, err := s.Part1(lines)
	if err != nil {
		return answer, fmt.Errorf("day %02d part 1: %w", s.Day(), err)
	}
	answer.Part1 = part1

	part2, err := s.Part2(lines)
	if err != nil {
		return answer, fmt.Errorf("day %02d part 2: %w", s.Day(), err)
	}
	answer.Part2 = part2

	return answer, nil
}

type Registry struct {
	solvers map[int]Solver
}

func NewRegistry(solvers ...Solver) (*Registry, error) {
	r := &Registry{solvers: make(map[int]Solver, len(solvers))}
	for _, s := range solvers {
		if _, exists := r.solvers[s.Day()]; exists {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateDay, s.Day())
		}
		r.solvers[s.Day()] = s
	}
	return r, nil
}

func (r *Registry) Get(day int) (Solver, error) {
	s, ok := r.solvers[day]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownDay, day)
	}
	return s, nil
}

// Days returns the registered days in ascending order.
func (r *Registry) Days() []int {
	days := make([]int, 0, len(r.solvers))
	for day := range r.solvers {
		days = append(days, day)
	}
	slices.Sort(days)
	return days
}
