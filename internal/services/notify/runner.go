package notify

import (
	"context"
	"os/exec"
	"time"
)

// CommandRunner abstracts command execution for testing
type CommandRunner interface {
	Run(ctx context.Context, name string, args ...string) ([]byte, error)
	LookPath(name string) (string, error)
}

// ExecRunner runs real commands using os/exec
type ExecRunner struct{}

// Run executes a command with a 5-second timeout
func (r *ExecRunner) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	if _, hasDeadline := ctx.Deadline(); !hasDeadline {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, name, args...)
	return cmd.CombinedOutput()
}

// LookPath reports where the named binary lives
func (r *ExecRunner) LookPath(name string) (string, error) {
	return exec.LookPath(name)
}
