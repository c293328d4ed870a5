// Package check implements the individual environment checks that decide
// whether the host is ready for the Chatterbox TTS setup flow. Each check is
// an independent, synchronous probe of the OS, filesystem, a child process,
// or the network; it prints its own diagnostics and returns a Result. No
// check lets an error escape its Run boundary.
package check

import (
	"context"
	"log/slog"

	"github.com/hazz-dev/envprep/internal/config"
	"github.com/hazz-dev/envprep/internal/platform"
	"github.com/hazz-dev/envprep/internal/ui"
)

// Check performs a single environment check.
type Check interface {
	// Name is the human-readable check name shown in the summary table.
	Name() string
	// Run executes the check, printing diagnostics as it goes. It never
	// returns an error; failures are expressed through the Result.
	Run(ctx context.Context) Result
}

// All returns the full check suite in its fixed execution order. The order
// is part of the output contract: results are displayed in the order the
// checks ran.
func All(cfg *config.Config, out *ui.Printer, host platform.Platform, logger *slog.Logger) []Check {
	if logger == nil {
		logger = slog.Default()
	}
	executor := &osExecutor{logger: logger}
	python := cfg.Python.Executable

	return []Check{
		newPythonVersionCheck(python, cfg.Python.RequiredMajor, cfg.Python.MinimumMinor, executor, out),
		newSystemInfoCheck(host, out),
		newPipCheck(python, executor, out),
		newVenvCheck(python, executor, host, out),
		newDiskSpaceCheck(cfg.Disk.MinFreeGB, host, out),
		newNetworkCheck(cfg.Network.Endpoint, cfg.Network.Timeout.Duration, out),
		newGPUCheck(python, executor, out),
	}
}
