package check_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/hazz-dev/envprep/internal/check"
)

func TestNetworkCheck_Reachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	p, buf := testPrinter()
	c := check.NewNetworkCheck(srv.URL, 5*time.Second, p)

	result := c.Run(context.Background())
	if !result.Passed {
		t.Error("expected pass when the request completes")
	}
	if !strings.Contains(buf.String(), "Internet connection OK") {
		t.Errorf("expected success line, got:\n%s", buf.String())
	}
}

func TestNetworkCheck_ConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	p, buf := testPrinter()
	c := check.NewNetworkCheck(url, 2*time.Second, p)

	result := c.Run(context.Background())
	if result.Passed {
		t.Error("expected failure when the endpoint is unreachable")
	}
	if !strings.Contains(buf.String(), "No internet connection detected") {
		t.Errorf("expected generic failure line, got:\n%s", buf.String())
	}
}

func TestNetworkCheck_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
	}))
	defer srv.Close()

	p, _ := testPrinter()
	c := check.NewNetworkCheck(srv.URL, 50*time.Millisecond, p)

	result := c.Run(context.Background())
	if result.Passed {
		t.Error("expected failure on timeout")
	}
	if result.Severity != check.SeverityBlocking {
		t.Errorf("expected blocking severity, got %v", result.Severity)
	}
}
