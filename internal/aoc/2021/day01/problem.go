package aoc2021day01

import (
	"fmt"

	"github.com/povarna/advent-of-code-2021/internal/utils"
)

const windowSize = 3

type Solver struct{}

func (Solver) Day() int { return 1 }

func (Solver) Title() string { return "Sonar Sweep" }

func (Solver) Part1(lines []string) (int, error) {
	measurements, err := ParseMeasurements(lines)
	if err != nil {
		return 0, err
	}
	return CountIncreases(measurements), nil
}

func (Solver) Part2(lines []string) (int, error) {
	measurements, err := ParseMeasurements(lines)
	if err != nil {
		return 0, err
	}
	return CountWindowedIncreases(measurements), nil
}

func ParseMeasurements(lines []string) ([]int, error) {
	measurements := make([]int, 0, len(lines))
	for i, line := range lines {
		n, err := utils.ToInt(line)
		if err != nil {
			return nil, fmt.Errorf("measurement %d: %w", i+1, err)
		}
		measurements = append(measurements, n)
	}
	return measurements, nil
}

// CountIncreases counts how many measurements are strictly larger than the
// previous one.
func CountIncreases(measurements []int) int {
	count := 0
	for i := 1; i < len(measurements); i++ {
		if measurements[i-1] < measurements[i] {
			count += 1
		}
	}

	return count
}

// SlidingSums returns the sum of every window of size consecutive
// measurements, advancing one measurement at a time. Incomplete windows at
// the end are dropped.
func SlidingSums(measurements []int, size int) []int {
	if size <= 0 || len(measurements) < size {
		return []int{}
	}

	sums := make([]int, 0, len(measurements)-size+1)
	for i := 0; i+size <= len(measurements); i++ {
		sums = append(sums, utils.Sum(measurements[i:i+size]))
	}
	return sums
}

func CountWindowedIncreases(measurements []int) int {
	return CountIncreases(SlidingSums(measurements, windowSize))
}
