//go:build windows

package platform

import (
	"fmt"
	"os"
	"runtime"

	"golang.org/x/sys/windows"
)

type windowsPlatform struct{}

func host() Platform {
	return windowsPlatform{}
}

func (windowsPlatform) Info() Info {
	v := windows.RtlGetVersion()
	release := fmt.Sprintf("%d.%d.%d", v.MajorVersion, v.MinorVersion, v.BuildNumber)

	machine := os.Getenv("PROCESSOR_ARCHITECTURE")
	if machine == "" {
		machine = runtime.GOARCH
	}
	processor := os.Getenv("PROCESSOR_IDENTIFIER")
	if processor == "" {
		processor = machine
	}

	return Info{
		OS:        "Windows",
		Release:   release,
		Platform:  fmt.Sprintf("Windows-%s-%s", release, machine),
		Machine:   machine,
		Processor: processor,
	}
}

func (windowsPlatform) FreeBytes(path string) (uint64, error) {
	dir, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return 0, fmt.Errorf("encoding path %s: %w", path, err)
	}
	var free, total, totalFree uint64
	if err := windows.GetDiskFreeSpaceEx(dir, &free, &total, &totalFree); err != nil {
		return 0, fmt.Errorf("querying free space for %s: %w", path, err)
	}
	return free, nil
}

func (windowsPlatform) VenvActivateHint(envDir string) string {
	return envDir + `\Scripts\activate`
}
