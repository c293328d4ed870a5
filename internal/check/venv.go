package check

import (
	"context"
	"strings"

	"github.com/hazz-dev/envprep/internal/platform"
	"github.com/hazz-dev/envprep/internal/ui"
)

// venvProbe makes the target interpreter report its active prefix, its base
// installation prefix, and whether the legacy virtualenv marker is present.
const venvProbe = `import sys
print(sys.prefix)
print(getattr(sys, "base_prefix", sys.prefix))
print(int(hasattr(sys, "real_prefix")))`

const venvDirName = "chatterbox_env"

// venvCheck detects whether the interpreter runs inside an isolated
// environment. Not being isolated is a warning that still fails the gate.
type venvCheck struct {
	python   string
	executor CommandExecutor
	host     platform.Platform
	out      *ui.Printer
}

func newVenvCheck(python string, executor CommandExecutor, host platform.Platform, out *ui.Printer) *venvCheck {
	return &venvCheck{python: python, executor: executor, host: host, out: out}
}

// NewVenvCheckWithExecutor creates a virtual-environment check with a custom
// executor and platform (for testing).
func NewVenvCheckWithExecutor(python string, executor CommandExecutor, host platform.Platform, out *ui.Printer) Check {
	return newVenvCheck(python, executor, host, out)
}

func (c *venvCheck) Name() string { return "Virtual Environment" }

func (c *venvCheck) Run(ctx context.Context) Result {
	c.out.Header("Checking Virtual Environment")

	stdout, _, err := c.executor.Run(ctx, c.python, "-c", venvProbe)
	if err != nil {
		c.out.Warning("Could not determine environment isolation: %v", err)
		c.recommend()
		return Result{Name: c.Name(), Severity: SeverityWarning}
	}

	lines := strings.Split(strings.TrimSpace(string(stdout)), "\n")
	if len(lines) < 3 {
		c.out.Warning("Unexpected output from %s environment probe", c.python)
		c.recommend()
		return Result{Name: c.Name(), Severity: SeverityWarning}
	}
	prefix := strings.TrimSpace(lines[0])
	basePrefix := strings.TrimSpace(lines[1])
	legacyMarker := strings.TrimSpace(lines[2]) == "1"

	if prefix != basePrefix || legacyMarker {
		c.out.Success("You are in a virtual environment!")
		c.out.Detail("Environment: %s", prefix)
		return Result{Name: c.Name(), Passed: true, Severity: SeverityOK}
	}

	c.out.Warning("You are NOT in a virtual environment")
	c.recommend()
	return Result{Name: c.Name(), Severity: SeverityWarning}
}

func (c *venvCheck) recommend() {
	c.out.Line("")
	c.out.Line("Recommended: Create and activate a virtual environment first:")
	c.out.Line("")
	c.out.Line("  Option A (Conda):")
	c.out.Line("    conda create -n chatterbox python=3.11 -y")
	c.out.Line("    conda activate chatterbox")
	c.out.Line("")
	c.out.Line("  Option B (venv):")
	c.out.Line("    %s -m venv %s", c.python, venvDirName)
	c.out.Line("    %s", c.host.VenvActivateHint(venvDirName))
	c.out.Line("")
	c.out.Line("Then run this checker again.")
}
