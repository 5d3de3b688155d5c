package report

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
)

// Renderable is anything that can write itself as HTML. The chart page from
// BuildChart satisfies it.
type Renderable interface {
	Render(w io.Writer) error
}

// Writer persists rendered analyses. The file implementation writes static
// HTML into the output directory; the noop implementation is used when no
// output is wanted (e.g. summary-only runs).
type Writer interface {
	WriteChart(symbol string, chart Renderable) (path string, err error)
	Close() error
}

// FileWriter writes one <SYMBOL>_analysis.html per symbol into a directory.
type FileWriter struct {
	dir string
}

// NewFileWriter creates the output directory if needed.
func NewFileWriter(dir string) (*FileWriter, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}
	return &FileWriter{dir: dir}, nil
}

func (w *FileWriter) WriteChart(symbol string, chart Renderable) (string, error) {
	path := filepath.Join(w.dir, fmt.Sprintf("%s_analysis.html", symbol))
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create report file: %w", err)
	}
	defer f.Close()

	if err := chart.Render(f); err != nil {
		return "", fmt.Errorf("render chart for %s: %w", symbol, err)
	}
	log.Printf("[INFO] wrote report: %s", path)
	return path, nil
}

func (w *FileWriter) Close() error { return nil }

// NoopWriter discards all reports.
type NoopWriter struct{}

func NewNoopWriter() *NoopWriter { return &NoopWriter{} }

func (n *NoopWriter) WriteChart(string, Renderable) (string, error) { return "", nil }
func (n *NoopWriter) Close() error                                  { return nil }
