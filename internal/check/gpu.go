package check

import (
	"context"
	"strconv"
	"strings"

	"github.com/hazz-dev/envprep/internal/ui"
)

// gpuProbe asks PyTorch inside the target interpreter for CUDA devices. The
// first output line is "cuda <count>" or "cpu"; device lines follow as
// "<name>|<total memory bytes>".
const gpuProbe = `import torch
if torch.cuda.is_available():
    n = torch.cuda.device_count()
    print("cuda %d" % n)
    for i in range(n):
        p = torch.cuda.get_device_properties(i)
        print("%s|%d" % (torch.cuda.get_device_name(i), p.total_memory))
else:
    print("cpu")`

// gpuCheck detects CUDA accelerators through PyTorch. It is informational
// and always passes: PyTorch is installed by a later setup step, so its
// absence here is expected.
type gpuCheck struct {
	python   string
	executor CommandExecutor
	out      *ui.Printer
}

func newGPUCheck(python string, executor CommandExecutor, out *ui.Printer) *gpuCheck {
	return &gpuCheck{python: python, executor: executor, out: out}
}

// NewGPUCheckWithExecutor creates a GPU check with a custom executor (for
// testing).
func NewGPUCheckWithExecutor(python string, executor CommandExecutor, out *ui.Printer) Check {
	return newGPUCheck(python, executor, out)
}

func (c *gpuCheck) Name() string { return "GPU (Optional)" }

func (c *gpuCheck) Run(ctx context.Context) Result {
	c.out.Header("Checking GPU Availability (Optional)")

	c.out.Line("Attempting to detect CUDA-capable GPU...")
	c.out.Line("(This requires PyTorch, which is installed by the dependency step)")

	stdout, _, err := c.executor.Run(ctx, c.python, "-c", gpuProbe)
	if err != nil {
		c.out.Warning("PyTorch not installed yet")
		c.out.Detail("GPU detection will run after the dependency installation step")
		return Result{Name: c.Name(), Passed: true, Severity: SeverityInfo}
	}

	lines := strings.Split(strings.TrimSpace(string(stdout)), "\n")
	head := strings.Fields(lines[0])

	switch {
	case len(head) == 2 && head[0] == "cuda":
		count, convErr := strconv.Atoi(head[1])
		if convErr != nil {
			break
		}
		c.out.Success("CUDA GPU detected: %d device(s)", count)
		for i, line := range lines[1:] {
			name, memory, ok := parseDeviceLine(line)
			if !ok {
				continue
			}
			c.out.Detail("GPU %d: %s", i, name)
			c.out.Detail("Memory: %.2f GB", float64(memory)/bytesPerGB)
		}
		return Result{Name: c.Name(), Passed: true, Severity: SeverityOK}

	case len(head) == 1 && head[0] == "cpu":
		c.out.Warning("No CUDA GPU detected")
		c.out.Detail("TTS will run on CPU (slower but functional)")
		return Result{Name: c.Name(), Passed: true, Severity: SeverityWarning}
	}

	c.out.Warning("Unexpected output from GPU probe")
	return Result{Name: c.Name(), Passed: true, Severity: SeverityInfo}
}

// parseDeviceLine splits a "<name>|<bytes>" probe line.
func parseDeviceLine(line string) (name string, memory uint64, ok bool) {
	name, memStr, found := strings.Cut(strings.TrimSpace(line), "|")
	if !found {
		return "", 0, false
	}
	memory, err := strconv.ParseUint(memStr, 10, 64)
	if err != nil {
		return "", 0, false
	}
	return name, memory, true
}
