package input

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func newTestLogger() *zerolog.Logger {
	logger := zerolog.Nop()
	return &logger
}

func TestReader_ValidFile(t *testing.T) {
	file := strings.NewReader("199\n200\n208\n")

	reader := NewReader(file, newTestLogger())
	lines, err := reader.ReadAll(context.Background())
	if err != nil {
		t.Fatalf("ReadAll unexpected error: %v", err)
	}

	if len(lines) != 3 {
		t.Errorf("Expected 3 lines. Got: %d", len(lines))
	}
	if lines[2].Text != "208" {
		t.Errorf("Expected last line 208. Got: %q", lines[2].Text)
	}
}

func TestReader_LineNumbers(t *testing.T) {
	inputFile := "forward 5\r\n\r\ndown 5\n   \nup 3"

	reader := NewReader(strings.NewReader(inputFile), newTestLogger())
	lines, err := reader.ReadAll(context.Background())
	if err != nil {
		t.Fatalf("ReadAll unexpected error: %v", err)
	}

	if len(lines) != 3 {
		t.Fatalf("Expected 3 lines. Got: %d", len(lines))
	}
	if lines[0].Number != 1 || lines[0].Text != "forward 5" {
		t.Errorf("first line should be line 1 \"forward 5\", got %d %q", lines[0].Number, lines[0].Text)
	}
	if lines[1].Number != 3 {
		t.Errorf("second line should be line 3, got %d", lines[1].Number)
	}
	if lines[2].Number != 5 {
		t.Errorf("third line should be line 5, got %d", lines[2].Number)
	}
}

func TestReader_ContextCancellation(t *testing.T) {
	var lines []string
	for i := 0; i < 100; i++ {
		lines = append(lines, "00100")
	}
	file := strings.NewReader(strings.Join(lines, "\n"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewReader(file, newTestLogger()).ReadAll(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestTexts(t *testing.T) {
	texts := Texts([]Line{{Number: 1, Text: "a"}, {Number: 4, Text: "b"}})
	if len(texts) != 2 || texts[0] != "a" || texts[1] != "b" {
		t.Errorf("Texts = %v, want [a b]", texts)
	}
}
