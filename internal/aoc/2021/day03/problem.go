package aoc2021day03

import (
	"errors"
	"fmt"
	"math"
	"math/bits"
	"strconv"
)

var (
	ErrEmptyReport    = errors.New("empty diagnostic report")
	ErrRaggedReport   = errors.New("diagnostic rows have different lengths")
	ErrInvalidBit     = errors.New("diagnostic row contains a non binary digit")
	ErrUnableToNarrow = errors.New("unable to find single filtered value")
	ErrOverflow       = errors.New("rating product overflows int")
)

// BitCriteria picks the bit to keep at the given column of rows.
type BitCriteria func(index int, rows []string) byte

type Solver struct{}

func (Solver) Day() int { return 3 }

func (Solver) Title() string { return "Binary Diagnostic" }

func (Solver) Part1(lines []string) (int, error) {
	rows, err := ParseReport(lines)
	if err != nil {
		return 0, err
	}
	return PowerConsumption(rows)
}

func (Solver) Part2(lines []string) (int, error) {
	rows, err := ParseReport(lines)
	if err != nil {
		return 0, err
	}
	return LifeSupportRating(rows)
}

// ParseReport checks that lines form a usable report: at least one row,
// all rows of the same non-zero width, only '0' and '1'.
func ParseReport(lines []string) ([]string, error) {
	if len(lines) == 0 || len(lines[0]) == 0 {
		return nil, ErrEmptyReport
	}

	width := len(lines[0])
	for i, line := range lines {
		if len(line) != width {
			return nil, fmt.Errorf("%w: row %d has %d bits, want %d", ErrRaggedReport, i+1, len(line), width)
		}
		for j := range len(line) {
			if line[j] != '0' && line[j] != '1' {
				return nil, fmt.Errorf("%w: row %d column %d is %q", ErrInvalidBit, i+1, j, line[j])
			}
		}
	}
	return lines, nil
}

// MostCommonBit returns '1' when at least half of rows have a '1' at index.
// Ties resolve to '1'.
func MostCommonBit(index int, rows []string) byte {
	countOnes := 0
	for _, row := range rows {
		if row[index] == '1' {
			countOnes += 1
		}
	}

	if countOnes >= len(rows)-countOnes {
		return '1'
	}
	return '0'
}

// LeastCommonBit is the complement of MostCommonBit, so ties resolve to '0'.
func LeastCommonBit(index int, rows []string) byte {
	if MostCommonBit(index, rows) == '1' {
		return '0'
	}
	return '1'
}

// GammaRate builds the most common bit of every column. An empty report has
// no columns and yields an empty rate.
func GammaRate(rows []string) string {
	if len(rows) == 0 {
		return ""
	}

	width := len(rows[0])
	gamma := make([]byte, width)
	for i := range width {
		gamma[i] = MostCommonBit(i, rows)
	}
	return string(gamma)
}

// EpsilonRate is gamma with every bit flipped, restricted to gamma's width.
func EpsilonRate(gamma string) (string, error) {
	g, err := strconv.ParseUint(gamma, 2, 64)
	if err != nil {
		return "", err
	}

	width := len(gamma)
	mask := uint64(1)<<width - 1
	epsilon := ^g & mask

	return fmt.Sprintf("%0*b", width, epsilon), nil
}

func PowerConsumption(rows []string) (int, error) {
	if len(rows) == 0 {
		return 0, ErrEmptyReport
	}

	gamma := GammaRate(rows)
	epsilon, err := EpsilonRate(gamma)
	if err != nil {
		return 0, err
	}

	return multiplyBinary(gamma, epsilon)
}

// FilterRating keeps only the rows matching criteria, one column at a time,
// until a single row remains. The criteria bit is always computed over the
// rows still in play.
func FilterRating(rows []string, criteria BitCriteria) (string, error) {
	if len(rows) == 0 {
		return "", ErrEmptyReport
	}

	values := rows
	for i := 0; i < len(rows[0]); i++ {
		bit := criteria(i, values)
		values = filterRows(values, i, bit)

		switch len(values) {
		case 1:
			return values[0], nil
		case 0:
			return "", fmt.Errorf("%w: no row left at column %d", ErrUnableToNarrow, i)
		}
	}

	return "", fmt.Errorf("%w: %d rows left %v", ErrUnableToNarrow, len(values), values)
}

func OxygenGeneratorRating(rows []string) (string, error) {
	return FilterRating(rows, MostCommonBit)
}

func CO2ScrubberRating(rows []string) (string, error) {
	return FilterRating(rows, LeastCommonBit)
}

func LifeSupportRating(rows []string) (int, error) {
	oxygen, err := OxygenGeneratorRating(rows)
	if err != nil {
		return 0, fmt.Errorf("oxygen generator rating: %w", err)
	}

	co2, err := CO2ScrubberRating(rows)
	if err != nil {
		return 0, fmt.Errorf("CO2 scrubber rating: %w", err)
	}

	return multiplyBinary(oxygen, co2)
}

func filterRows(rows []string, index int, value byte) []string {
	filtered := []string{}
	for _, row := range rows {
		if row[index] == value {
			filtered = append(filtered, row)
		}
	}
	return filtered
}

func multiplyBinary(a, b string) (int, error) {
	x, err := strconv.ParseUint(a, 2, 64)
	if err != nil {
		return 0, err
	}
	y, err := strconv.ParseUint(b, 2, 64)
	if err != nil {
		return 0, err
	}

	hi, lo := bits.Mul64(x, y)
	if hi != 0 || lo > math.MaxInt {
		return 0, fmt.Errorf("%w: %s * %s", ErrOverflow, a, b)
	}
	return int(lo), nil
}
