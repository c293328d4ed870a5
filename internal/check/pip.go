package check

import (
	"context"
	"strings"

	"github.com/hazz-dev/envprep/internal/ui"
)

// pipCheck verifies the package manager by invoking it as a child process.
// A failed launch and a nonzero exit are both downgraded to a failed check;
// neither propagates.
type pipCheck struct {
	python   string
	executor CommandExecutor
	out      *ui.Printer
}

func newPipCheck(python string, executor CommandExecutor, out *ui.Printer) *pipCheck {
	return &pipCheck{python: python, executor: executor, out: out}
}

// NewPipCheckWithExecutor creates a pip check with a custom executor (for
// testing).
func NewPipCheckWithExecutor(python string, executor CommandExecutor, out *ui.Printer) Check {
	return newPipCheck(python, executor, out)
}

func (c *pipCheck) Name() string { return "pip" }

func (c *pipCheck) Run(ctx context.Context) Result {
	c.out.Header("Checking pip (Package Manager)")

	stdout, _, err := c.executor.Run(ctx, c.python, "-m", "pip", "--version")
	if err != nil {
		c.out.Error("pip is not installed or not working")
		c.out.Detail("Install pip: %s -m ensurepip --upgrade", c.python)
		return Result{Name: c.Name(), Severity: SeverityBlocking}
	}

	c.out.Line("%s", strings.TrimSpace(string(stdout)))
	c.out.Success("pip is installed and working!")
	return Result{Name: c.Name(), Passed: true, Severity: SeverityOK}
}
