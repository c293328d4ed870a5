package check

import (
	"context"

	"github.com/hazz-dev/envprep/internal/platform"
	"github.com/hazz-dev/envprep/internal/ui"
)

// systemInfoCheck dumps host identification details. It is informational and
// always passes.
type systemInfoCheck struct {
	host platform.Platform
	out  *ui.Printer
}

func newSystemInfoCheck(host platform.Platform, out *ui.Printer) *systemInfoCheck {
	return &systemInfoCheck{host: host, out: out}
}

// NewSystemInfoCheckWithPlatform creates a system-info check with a custom
// platform (for testing).
func NewSystemInfoCheckWithPlatform(host platform.Platform, out *ui.Printer) Check {
	return newSystemInfoCheck(host, out)
}

func (c *systemInfoCheck) Name() string { return "System Info" }

func (c *systemInfoCheck) Run(_ context.Context) Result {
	c.out.Header("System Information")

	info := c.host.Info()
	c.out.Line("Operating System: %s %s", info.OS, info.Release)
	c.out.Line("Platform: %s", info.Platform)
	c.out.Line("Architecture: %s", info.Machine)
	c.out.Line("Processor: %s", info.Processor)

	return Result{Name: c.Name(), Passed: true, Severity: SeverityInfo}
}
