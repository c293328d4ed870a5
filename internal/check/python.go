package check

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/hazz-dev/envprep/internal/ui"
)

// versionProbe makes the target interpreter report its own version triple and
// executable path, one per line.
const versionProbe = `import sys; print("%d.%d.%d" % sys.version_info[:3]); print(sys.executable)`

const pythonDownloadURL = "https://www.python.org/downloads/"

type pythonVersionCheck struct {
	python        string
	requiredMajor int
	minimumMinor  int
	executor      CommandExecutor
	out           *ui.Printer
}

func newPythonVersionCheck(python string, requiredMajor, minimumMinor int, executor CommandExecutor, out *ui.Printer) *pythonVersionCheck {
	return &pythonVersionCheck{
		python:        python,
		requiredMajor: requiredMajor,
		minimumMinor:  minimumMinor,
		executor:      executor,
		out:           out,
	}
}

// NewPythonVersionCheckWithExecutor creates a version check with a custom
// executor (for testing).
func NewPythonVersionCheckWithExecutor(python string, requiredMajor, minimumMinor int, executor CommandExecutor, out *ui.Printer) Check {
	return newPythonVersionCheck(python, requiredMajor, minimumMinor, executor, out)
}

func (c *pythonVersionCheck) Name() string { return "Python Version" }

func (c *pythonVersionCheck) Run(ctx context.Context) Result {
	c.out.Header("Checking Python Version")

	stdout, _, err := c.executor.Run(ctx, c.python, "-c", versionProbe)
	if err != nil {
		c.out.Error("Could not run %s: %v", c.python, err)
		c.remediation()
		return Result{Name: c.Name(), Severity: SeverityBlocking}
	}

	lines := strings.Split(strings.TrimSpace(string(stdout)), "\n")
	if len(lines) < 2 {
		c.out.Error("Unexpected output from %s version probe", c.python)
		c.remediation()
		return Result{Name: c.Name(), Severity: SeverityBlocking}
	}
	versionStr := strings.TrimSpace(lines[0])
	executable := strings.TrimSpace(lines[1])

	c.out.Line("Python version: %s", versionStr)
	c.out.Line("Python executable: %s", executable)

	major, minor, _, err := parseVersionTriple(versionStr)
	if err != nil {
		c.out.Error("Could not parse Python version %q: %v", versionStr, err)
		c.remediation()
		return Result{Name: c.Name(), Severity: SeverityBlocking}
	}

	if major == c.requiredMajor && minor >= c.minimumMinor {
		c.out.Success("Python %s is compatible!", versionStr)
		return Result{Name: c.Name(), Passed: true, Severity: SeverityOK}
	}

	c.out.Error("Python %s is not supported", versionStr)
	c.remediation()
	return Result{Name: c.Name(), Severity: SeverityBlocking}
}

func (c *pythonVersionCheck) remediation() {
	c.out.Detail("Please install Python %d.%d or newer", c.requiredMajor, c.minimumMinor)
	c.out.Detail("Download from: %s", pythonDownloadURL)
}

// parseVersionTriple parses a "major.minor.patch" version string. A missing
// patch component is tolerated.
func parseVersionTriple(s string) (major, minor, patch int, err error) {
	parts := strings.Split(s, ".")
	if len(parts) < 2 {
		return 0, 0, 0, fmt.Errorf("version %q does not have major.minor components", s)
	}
	major, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, 0, fmt.Errorf("parsing major version: %w", err)
	}
	minor, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, 0, fmt.Errorf("parsing minor version: %w", err)
	}
	if len(parts) > 2 {
		patch, err = strconv.Atoi(parts[2])
		if err != nil {
			return 0, 0, 0, fmt.Errorf("parsing patch version: %w", err)
		}
	}
	return major, minor, patch, nil
}
