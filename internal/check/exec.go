package check

import (
	"context"
	"log/slog"
	"os/exec"
)

// CommandExecutor abstracts os/exec so subprocess-based checks can be tested
// without a real interpreter on the host.
type CommandExecutor interface {
	Run(ctx context.Context, name string, args ...string) (stdout, stderr []byte, err error)
}

// osExecutor is the real CommandExecutor backed by os/exec.
type osExecutor struct {
	logger *slog.Logger
}

func (e *osExecutor) Run(ctx context.Context, name string, args ...string) (stdout, stderr []byte, err error) {
	e.logger.Debug("running command", "name", name, "args", args)
	cmd := exec.CommandContext(ctx, name, args...)
	stdout, err = cmd.Output()
	if exitErr, ok := err.(*exec.ExitError); ok {
		stderr = exitErr.Stderr
	}
	if err != nil {
		e.logger.Debug("command failed", "name", name, "error", err)
	}
	return stdout, stderr, err
}
