package input

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
)

// LinesFunc adapts a plain function to the Lines method used by the runner.
type LinesFunc func(ctx context.Context, name string) ([]string, error)

func (f LinesFunc) Lines(ctx context.Context, name string) ([]string, error) {
	return f(ctx, name)
}

// FileLoader resolves logical input names such as "Day01" or "Day01_test"
// to text files under a directory.
type FileLoader struct {
	dir    string
	logger *zerolog.Logger
}

func NewFileLoader(dir string, logger *zerolog.Logger) *FileLoader {
	return &FileLoader{
		dir:    dir,
		logger: logger,
	}
}

func (l *FileLoader) Path(name string) string {
	if strings.HasSuffix(name, ".txt") {
		return name
	}
	return filepath.Join(l.dir, name+".txt")
}

func (l *FileLoader) Lines(ctx context.Context, name string) ([]string, error) {
	path := l.Path(name)

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input %q: %w", name, err)
	}
	defer f.Close()

	l.logger.Debug().Str("name", name).Str("file", path).Msg("Reading input file")

	lines, err := NewReader(f, l.logger).ReadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read input %q: %w", name, err)
	}

	return Texts(lines), nil
}
