package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/hazz-dev/envprep/internal/check"
	"github.com/hazz-dev/envprep/internal/config"
	"github.com/hazz-dev/envprep/internal/platform"
	"github.com/hazz-dev/envprep/internal/ui"
)

// checkTimeout bounds each individual check. Subprocess probes normally
// finish in well under a second; this only guards against a hung interpreter.
const checkTimeout = 30 * time.Second

func runChecks(out io.Writer, cfg *config.Config, noColor, verbose bool) error {
	// Debug telemetry goes to stderr so it never mixes into the report stream.
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	if verbose {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	printer := ui.New(out, noColor)
	checks := check.All(cfg, printer, platform.Host(), logger)
	return runSuite(printer, checks, logger)
}

// runSuite executes the checks strictly in order with no early exit,
// then prints the summary table and the closing message. A non-nil error
// means at least one gating check failed; main turns that into exit code 1.
func runSuite(p *ui.Printer, checks []check.Check, logger *slog.Logger) error {
	p.Banner(
		"CHATTERBOX TTS - ENVIRONMENT SETUP CHECKER",
		"Step 1 of 5: Verify Your System",
	)

	results := make([]check.Result, 0, len(checks))
	for _, c := range checks {
		ctx, cancel := context.WithTimeout(context.Background(), checkTimeout)
		start := time.Now()
		result := c.Run(ctx)
		cancel()
		logger.Debug("check finished",
			"name", result.Name,
			"passed", result.Passed,
			"severity", result.Severity.String(),
			"elapsed", time.Since(start),
		)
		results = append(results, result)
	}

	p.Header("SETUP CHECK SUMMARY")

	passed := 0
	for _, r := range results {
		switch {
		case !r.Passed:
			p.Error("FAIL - %s", r.Name)
		case r.Severity == check.SeverityWarning:
			p.Warning("PASS - %s", r.Name)
		default:
			p.Success("PASS - %s", r.Name)
		}
		if r.Passed {
			passed++
		}
	}

	p.Line("")
	p.Line("%d/%d checks passed", passed, len(results))
	p.Line("")
	p.Rule()

	if passed == len(results) {
		p.Success("All checks passed! You're ready for the next step.")
		p.Line("")
		p.Line("Next step: run the dependency installer:")
		p.Line("  python 2_install_dependencies.py")
		p.Rule()
		return nil
	}

	p.Warning("Some checks failed. Please fix the issues above.")
	p.Line("")
	p.Line("Tip: Make sure you're in a virtual environment!")
	p.Rule()
	return fmt.Errorf("%d of %d checks failed", len(results)-passed, len(results))
}
