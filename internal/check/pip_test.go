package check_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/hazz-dev/envprep/internal/check"
)

func TestPipCheck_Success(t *testing.T) {
	p, buf := testPrinter()
	c := check.NewPipCheckWithExecutor("python3", &mockExecutor{
		stdout: []byte("pip 24.0 from /opt/venv/lib/python3.11/site-packages/pip (python 3.11)\n"),
	}, p)

	result := c.Run(context.Background())
	if !result.Passed {
		t.Error("expected pip check to pass on zero exit status")
	}
	if !strings.Contains(buf.String(), "pip 24.0") {
		t.Errorf("expected captured version string in output, got:\n%s", buf.String())
	}
	if !strings.Contains(buf.String(), "pip is installed and working!") {
		t.Errorf("expected success line, got:\n%s", buf.String())
	}
}

func TestPipCheck_NonzeroExit(t *testing.T) {
	p, buf := testPrinter()
	c := check.NewPipCheckWithExecutor("python3", &mockExecutor{
		stderr: []byte("No module named pip\n"),
		err:    errors.New("exit status 1"),
	}, p)

	result := c.Run(context.Background())
	if result.Passed {
		t.Error("expected pip check to fail on nonzero exit status")
	}
	if result.Severity != check.SeverityBlocking {
		t.Errorf("expected blocking severity, got %v", result.Severity)
	}
	if !strings.Contains(buf.String(), "ensurepip") {
		t.Errorf("expected remediation instructions, got:\n%s", buf.String())
	}
}

func TestPipCheck_LaunchFailure(t *testing.T) {
	p, _ := testPrinter()
	c := check.NewPipCheckWithExecutor("python3", &mockExecutor{err: errLaunch}, p)

	result := c.Run(context.Background())
	if result.Passed {
		t.Error("expected pip check to fail when the interpreter cannot launch")
	}
}
