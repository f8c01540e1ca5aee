package input

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"
)

// Line is one non-blank input record with its 1-based position in the source.
type Line struct {
	Number int
	Text   string
}

type Reader struct {
	r      io.Reader
	logger *zerolog.Logger
}

func NewReader(r io.Reader, logger *zerolog.Logger) *Reader {
	return &Reader{
		r:      r,
		logger: logger,
	}
}

// ReadAll returns every non-blank line. Blank lines are skipped but still
// counted, so Number always matches the position in the file.
func (r *Reader) ReadAll(ctx context.Context) ([]Line, error) {
	scanner := bufio.NewScanner(r.r)
	lines := []Line{}
	lineNumber := 0

	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		lineNumber++
		text := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(text) == "" {
			continue
		}

		lines = append(lines, Line{Number: lineNumber, Text: text})
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read line %d: %w", lineNumber+1, err)
	}

	r.logger.Debug().
		Int("lines", lineNumber).
		Int("records", len(lines)).
		Msg("Input read")

	return lines, nil
}

func Texts(lines []Line) []string {
	texts := make([]string, len(lines))
	for i, l := range lines {
		texts[i] = l.Text
	}
	return texts
}
