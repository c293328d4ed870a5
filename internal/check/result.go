package check

// Severity classifies how a check's diagnostic output was rendered. It is
// independent of the pass/fail gate: an advisory check can warn and still
// pass, and the virtual-environment check warns while failing the gate.
type Severity int

const (
	// SeverityOK means the check reported success with no caveats.
	SeverityOK Severity = iota
	// SeverityInfo means the check is purely informational.
	SeverityInfo
	// SeverityWarning means the check printed an advisory warning.
	SeverityWarning
	// SeverityBlocking means the check failed and blocks the setup flow.
	SeverityBlocking
)

// String returns the string representation of a Severity.
func (s Severity) String() string {
	switch s {
	case SeverityOK:
		return "ok"
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityBlocking:
		return "blocking"
	default:
		return "unknown"
	}
}

// Result is the outcome of a single environment check. Passed drives the
// overall pass count and exit code; Severity only affects presentation.
type Result struct {
	Name     string
	Passed   bool
	Severity Severity
}
