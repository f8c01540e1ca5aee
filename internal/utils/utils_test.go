package utils

import (
	"errors"
	"testing"
)

func TestToInt(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected int
		wantErr  bool
	}{
		{name: "positive", input: "199", expected: 199},
		{name: "negative", input: "-12", expected: -12},
		{name: "surrounding spaces", input: " 42 ", expected: 42},
		{name: "empty", input: "", wantErr: true},
		{name: "letters", input: "forward", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result, err := ToInt(tc.input)
			if tc.wantErr {
				if !errors.Is(err, ErrNotANumber) {
					t.Errorf("ToInt(%q) error = %v, want ErrNotANumber", tc.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ToInt(%q) unexpected error: %v", tc.input, err)
			}
			if result != tc.expected {
				t.Errorf("ToInt(%q) = %d, want %d", tc.input, result, tc.expected)
			}
		})
	}
}

func TestSum(t *testing.T) {
	if got := Sum([]int{199, 200, 208}); got != 607 {
		t.Errorf("Sum = %d, want 607", got)
	}
	if got := Sum([]int64{}); got != 0 {
		t.Errorf("Sum of empty slice = %d, want 0", got)
	}
}
