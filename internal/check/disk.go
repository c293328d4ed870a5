package check

import (
	"context"
	"os"

	"github.com/hazz-dev/envprep/internal/platform"
	"github.com/hazz-dev/envprep/internal/ui"
)

const bytesPerGB = 1 << 30

// diskSpaceCheck reports free space on the working directory's volume. It is
// advisory only: low space and even a failed query still pass (fail-open).
type diskSpaceCheck struct {
	minFreeGB float64
	host      platform.Platform
	out       *ui.Printer
}

func newDiskSpaceCheck(minFreeGB float64, host platform.Platform, out *ui.Printer) *diskSpaceCheck {
	return &diskSpaceCheck{minFreeGB: minFreeGB, host: host, out: out}
}

// NewDiskSpaceCheckWithPlatform creates a disk-space check with a custom
// platform (for testing).
func NewDiskSpaceCheckWithPlatform(minFreeGB float64, host platform.Platform, out *ui.Printer) Check {
	return newDiskSpaceCheck(minFreeGB, host, out)
}

func (c *diskSpaceCheck) Name() string { return "Disk Space" }

func (c *diskSpaceCheck) Run(_ context.Context) Result {
	c.out.Header("Checking Disk Space")

	wd, err := os.Getwd()
	if err != nil {
		c.out.Warning("Could not check disk space: %v", err)
		return Result{Name: c.Name(), Passed: true, Severity: SeverityWarning}
	}

	free, err := c.host.FreeBytes(wd)
	if err != nil {
		c.out.Warning("Could not check disk space: %v", err)
		return Result{Name: c.Name(), Passed: true, Severity: SeverityWarning}
	}

	freeGB := float64(free) / bytesPerGB
	c.out.Line("Available disk space: %.2f GB", freeGB)

	if freeGB >= c.minFreeGB {
		c.out.Success("Sufficient disk space available")
		return Result{Name: c.Name(), Passed: true, Severity: SeverityOK}
	}

	c.out.Warning("Low disk space: %.2f GB", freeGB)
	c.out.Detail("Recommended: at least %.0f GB free for models and dependencies", c.minFreeGB)
	return Result{Name: c.Name(), Passed: true, Severity: SeverityWarning}
}
