package export

import (
	"bufio"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/riordanpawley/finboard/internal/domain"
)

// DefaultFilename is used when Download is called without a name
const DefaultFilename = "export.csv"

// Exporter writes CSV downloads into a directory
type Exporter struct {
	dir             string
	defaultFilename string
	logger          *slog.Logger
}

// NewExporter creates an exporter writing into dir. An empty defaultFilename
// falls back to DefaultFilename.
func NewExporter(dir, defaultFilename string, logger *slog.Logger) *Exporter {
	if defaultFilename == "" {
		defaultFilename = DefaultFilename
	}
	return &Exporter{
		dir:             dir,
		defaultFilename: defaultFilename,
		logger:          logger,
	}
}

// Dir returns the export directory
func (e *Exporter) Dir() string {
	return e.dir
}

// Download writes records to a CSV file in the export directory and returns
// its path. Empty input is a no-op and returns an empty path.
func (e *Exporter) Download(records []Record, filename string) (string, error) {
	if len(records) == 0 {
		e.logger.Debug("export skipped, no records")
		return "", nil
	}

	path := filepath.Join(e.dir, e.normalize(filename))
	e.logger.Debug("exporting csv", "path", path, "records", len(records))

	if err := os.MkdirAll(e.dir, 0o755); err != nil {
		return "", &domain.ExportError{Op: "mkdir", Path: e.dir, Err: err}
	}

	tmp, err := os.CreateTemp(e.dir, ".export-*.csv")
	if err != nil {
		return "", &domain.ExportError{Op: "create", Path: path, Err: err}
	}
	tmpName := tmp.Name()
	cleanup := func() { _ = os.Remove(tmpName) }

	bw := bufio.NewWriter(tmp)
	if err := WriteCSV(bw, records); err != nil {
		tmp.Close()
		cleanup()
		return "", &domain.ExportError{Op: "write", Path: path, Err: err}
	}
	if err := bw.Flush(); err != nil {
		tmp.Close()
		cleanup()
		return "", &domain.ExportError{Op: "write", Path: path, Err: err}
	}
	if err := tmp.Close(); err != nil {
		cleanup()
		return "", &domain.ExportError{Op: "close", Path: path, Err: err}
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		cleanup()
		return "", &domain.ExportError{Op: "chmod", Path: path, Err: err}
	}
	if err := os.Rename(tmpName, path); err != nil {
		cleanup()
		return "", &domain.ExportError{Op: "rename", Path: path, Err: err}
	}

	e.logger.Info("csv exported", "path", path, "records", len(records))
	return path, nil
}

// normalize keeps only the base name and makes sure it ends in .csv
func (e *Exporter) normalize(filename string) string {
	name := strings.TrimSpace(filename)
	if name == "" {
		name = e.defaultFilename
	}
	name = filepath.Base(name)
	if name == "." || name == string(filepath.Separator) || name == ".." {
		name = e.defaultFilename
	}
	if !strings.EqualFold(filepath.Ext(name), ".csv") {
		name += ".csv"
	}
	return name
}
