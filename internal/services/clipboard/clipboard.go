// Package clipboard copies text to the user's clipboard, falling back to the
// terminal's OSC52 escape sequence when no system clipboard is reachable.
package clipboard

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/atotto/clipboard"
	"github.com/aymanbagabas/go-osc52/v2"
)

// ErrUnsupported is returned by writers that cannot work on this system
var ErrUnsupported = errors.New("clipboard unsupported")

// Writer puts text on a clipboard
type Writer interface {
	WriteAll(text string) error
}

// SystemWriter uses the platform clipboard (pbcopy, xclip, wl-copy, ...)
type SystemWriter struct{}

// WriteAll implements Writer
func (SystemWriter) WriteAll(text string) error {
	if clipboard.Unsupported {
		return ErrUnsupported
	}
	return clipboard.WriteAll(text)
}

// OSC52Writer asks the terminal emulator to set the clipboard
type OSC52Writer struct {
	Out  io.Writer
	Tmux bool // wrap the sequence for tmux passthrough
}

// WriteAll implements Writer
func (w OSC52Writer) WriteAll(text string) error {
	if w.Out == nil {
		return ErrUnsupported
	}
	seq := osc52.New(text)
	if w.Tmux {
		seq = seq.Tmux()
	}
	_, err := seq.WriteTo(w.Out)
	return err
}

// Service copies text using the first writer that succeeds
type Service struct {
	writers []Writer
	logger  *slog.Logger
}

// NewService creates a clipboard service trying writers in order
func NewService(logger *slog.Logger, writers ...Writer) *Service {
	return &Service{
		writers: writers,
		logger:  logger,
	}
}

// Copy places text on the clipboard and reports whether it worked. Failures
// are logged, never returned.
func (s *Service) Copy(ctx context.Context, text string) bool {
	for i, w := range s.writers {
		if err := ctx.Err(); err != nil {
			s.logger.Warn("clipboard copy canceled", "error", err)
			return false
		}
		if err := w.WriteAll(text); err != nil {
			s.logger.Debug("clipboard writer failed", "writer", i, "error", err)
			continue
		}
		s.logger.Debug("copied to clipboard", "writer", i, "bytes", len(text))
		return true
	}

	s.logger.Warn("clipboard copy failed", "writers", len(s.writers))
	return false
}
