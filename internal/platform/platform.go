// Package platform isolates the OS-family differences behind a single seam:
// free-space queries, host identification, and the virtual-environment
// activation command. Implementations are selected per GOOS at build time.
package platform

// Info describes the host for the system-information report.
type Info struct {
	OS        string // kernel/OS name, e.g. "Linux", "Windows"
	Release   string // kernel release or OS version
	Platform  string // full platform string, e.g. "Linux-6.8.0-x86_64"
	Machine   string // hardware architecture, e.g. "x86_64"
	Processor string // processor identifier; may equal Machine
}

// Platform is the OS-family abstraction used by the checks.
type Platform interface {
	// Info returns host identification details.
	Info() Info

	// FreeBytes returns the free disk space on the volume holding path.
	FreeBytes(path string) (uint64, error)

	// VenvActivateHint returns the shell command that activates a virtual
	// environment created in envDir on this OS family.
	VenvActivateHint(envDir string) string
}

// Host returns the Platform for the running operating system.
func Host() Platform {
	return host()
}
