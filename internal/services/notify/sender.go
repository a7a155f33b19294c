package notify

import (
	"context"
	"fmt"
	"runtime"
	"strings"
)

// appleScriptEscaper escapes the only two characters special inside an
// AppleScript string literal
var appleScriptEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

func appleScriptString(s string) string {
	return `"` + appleScriptEscaper.Replace(s) + `"`
}

// Sender delivers desktop notifications
type Sender interface {
	Supported() bool
	Send(ctx context.Context, title, body string) error
}

// ExecSender shells out to the platform notifier: notify-send on Linux and
// osascript on macOS.
type ExecSender struct {
	runner CommandRunner
	goos   string
	icon   string
}

// NewExecSender creates a sender for the running OS
func NewExecSender(runner CommandRunner) *ExecSender {
	return &ExecSender{runner: runner, goos: runtime.GOOS}
}

// WithIcon sets the icon passed to notify-send
func (s *ExecSender) WithIcon(icon string) *ExecSender {
	s.icon = icon
	return s
}

func (s *ExecSender) binary() string {
	switch s.goos {
	case "linux", "freebsd", "openbsd", "netbsd":
		return "notify-send"
	case "darwin":
		return "osascript"
	default:
		return ""
	}
}

// Supported reports whether a notifier binary is available
func (s *ExecSender) Supported() bool {
	bin := s.binary()
	if bin == "" {
		return false
	}
	_, err := s.runner.LookPath(bin)
	return err == nil
}

// Send shows a notification with the given title and body
func (s *ExecSender) Send(ctx context.Context, title, body string) error {
	bin := s.binary()
	if bin == "" {
		return fmt.Errorf("notifications unsupported on %s", s.goos)
	}

	var args []string
	if bin == "osascript" {
		script := fmt.Sprintf("display notification %s with title %s",
			appleScriptString(body), appleScriptString(title))
		args = []string{"-e", script}
	} else {
		if s.icon != "" {
			args = append(args, "--icon", s.icon)
		}
		args = append(args, "--app-name", "finboard", title, body)
	}

	out, err := s.runner.Run(ctx, bin, args...)
	if err != nil {
		return fmt.Errorf("%s failed: %w: %s", bin, err, out)
	}
	return nil
}
