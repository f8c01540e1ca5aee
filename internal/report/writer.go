package report

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/povarna/advent-of-code-2021/internal/puzzle"
	"github.com/rs/zerolog"
)

var ErrUnsupportedFormat = errors.New("unsupported format")

const (
	FormatText = "text"
	FormatJSON = "json"
)

type Writer struct {
	out     *bufio.Writer
	format  string
	encoder *json.Encoder
	written int
	logger  *zerolog.Logger
}

func NewWriter(w io.Writer, format string, logger *zerolog.Logger) (*Writer, error) {
	if format != FormatText && format != FormatJSON {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	out := bufio.NewWriter(w)
	return &Writer{
		out:     out,
		format:  format,
		encoder: json.NewEncoder(out),
		logger:  logger,
	}, nil
}

func (w *Writer) Write(answer puzzle.Answer) error {
	var err error
	switch w.format {
	case FormatJSON:
		err = w.encoder.Encode(answer)
	default:
		_, err = fmt.Fprintf(w.out, "Day %02d: %s\npart 1 answer: %d\npart 2 answer: %d\n",
			answer.Day, answer.Title, answer.Part1, answer.Part2)
	}
	if err != nil {
		return fmt.Errorf("failed to write day %02d: %w", answer.Day, err)
	}

	w.written++
	return nil
}

// Close flushes buffered output. The underlying writer is left open.
func (w *Writer) Close() error {
	w.logger.Debug().Int("answers", w.written).Str("format", w.format).Msg("Report flushed")
	return w.out.Flush()
}
