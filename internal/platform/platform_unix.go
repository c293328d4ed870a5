//go:build !windows

package platform

import (
	"fmt"
	"runtime"

	"golang.org/x/sys/unix"
)

type unixPlatform struct{}

func host() Platform {
	return unixPlatform{}
}

func (unixPlatform) Info() Info {
	var uts unix.Utsname
	if err := unix.Uname(&uts); err != nil {
		// Uname should not fail on any supported system; fall back to the
		// toolchain's view of the host.
		return Info{
			OS:        runtime.GOOS,
			Platform:  runtime.GOOS + "-" + runtime.GOARCH,
			Machine:   runtime.GOARCH,
			Processor: runtime.GOARCH,
		}
	}

	sysname := utsString(uts.Sysname[:])
	release := utsString(uts.Release[:])
	machine := utsString(uts.Machine[:])

	return Info{
		OS:        sysname,
		Release:   release,
		Platform:  fmt.Sprintf("%s-%s-%s", sysname, release, machine),
		Machine:   machine,
		Processor: machine,
	}
}

func (unixPlatform) FreeBytes(path string) (uint64, error) {
	var stat unix.Statfs_t
	if err := unix.Statfs(path, &stat); err != nil {
		return 0, fmt.Errorf("statfs %s: %w", path, err)
	}
	return uint64(stat.Bavail) * uint64(stat.Bsize), nil
}

func (unixPlatform) VenvActivateHint(envDir string) string {
	return "source " + envDir + "/bin/activate"
}

// utsString converts a NUL-terminated utsname field to a string. Field array
// sizes differ across unix flavors, so it operates on a slice.
func utsString(b []byte) string {
	for i, c := range b {
		if c == 0 {
			return string(b[:i])
		}
	}
	return string(b)
}
