package check

import (
	"context"
	"net/http"
	"time"

	"github.com/hazz-dev/envprep/internal/ui"
)

// networkCheck verifies the public package index is reachable. Any error —
// timeout, DNS failure, connection refused — is one undifferentiated failure.
type networkCheck struct {
	endpoint string
	client   *http.Client
	out      *ui.Printer
}

func newNetworkCheck(endpoint string, timeout time.Duration, out *ui.Printer) *networkCheck {
	return &networkCheck{
		endpoint: endpoint,
		client:   &http.Client{Timeout: timeout},
		out:      out,
	}
}

// NewNetworkCheck creates a reachability check against endpoint with the
// given hard timeout.
func NewNetworkCheck(endpoint string, timeout time.Duration, out *ui.Printer) Check {
	return newNetworkCheck(endpoint, timeout, out)
}

func (c *networkCheck) Name() string { return "Internet" }

func (c *networkCheck) Run(ctx context.Context) Result {
	c.out.Header("Checking Internet Connection")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint, nil)
	if err != nil {
		c.fail()
		return Result{Name: c.Name(), Severity: SeverityBlocking}
	}

	resp, err := c.client.Do(req)
	if err != nil {
		c.fail()
		return Result{Name: c.Name(), Severity: SeverityBlocking}
	}
	resp.Body.Close()

	c.out.Success("Internet connection OK")
	return Result{Name: c.Name(), Passed: true, Severity: SeverityOK}
}

func (c *networkCheck) fail() {
	c.out.Error("No internet connection detected")
	c.out.Detail("Internet is required to download models and dependencies")
}
