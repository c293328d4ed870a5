package platform_test

import (
	"strings"
	"testing"

	"github.com/hazz-dev/envprep/internal/platform"
)

func TestHostInfo(t *testing.T) {
	info := platform.Host().Info()

	if info.OS == "" {
		t.Error("expected a non-empty OS name")
	}
	if info.Machine == "" {
		t.Error("expected a non-empty machine architecture")
	}
	if !strings.Contains(info.Platform, info.OS) {
		t.Errorf("expected platform string %q to contain OS %q", info.Platform, info.OS)
	}
}

func TestHostFreeBytes(t *testing.T) {
	free, err := platform.Host().FreeBytes(t.TempDir())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if free == 0 {
		t.Error("expected nonzero free space on the test volume")
	}
}

func TestHostFreeBytes_MissingPath(t *testing.T) {
	if _, err := platform.Host().FreeBytes("/this/path/does/not/exist"); err == nil {
		t.Error("expected error for a nonexistent path")
	}
}

func TestVenvActivateHint(t *testing.T) {
	hint := platform.Host().VenvActivateHint("chatterbox_env")
	if !strings.Contains(hint, "chatterbox_env") {
		t.Errorf("expected hint to name the environment directory, got %q", hint)
	}
	if !strings.Contains(hint, "activate") {
		t.Errorf("expected hint to reference the activate script, got %q", hint)
	}
}
