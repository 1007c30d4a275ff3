// File: severity.go
// Title: Error Severity Levels
// Description: Severity levels let the logger pick the right level for an
//              error and let callers tell bad input from broken environments.
// Author: wosser1s
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial implementation

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow marks bad caller input: malformed base64, invalid UTF-8.
	SeverityLow Severity = iota

	// SeverityMedium is the default for errors without a more specific code.
	SeverityMedium

	// SeverityHigh marks failures of the environment: unreadable files,
	// broken configuration.
	SeverityHigh

	// SeverityCritical marks states the process cannot continue from.
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// Level returns the numeric level of the severity (0-3)
func (s Severity) Level() int {
	return int(s)
}

// ShouldAlert returns true if this severity level should trigger alerts
func (s Severity) ShouldAlert() bool {
	return s >= SeverityHigh
}

// GetSeverityFromCode determines the default severity for an error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeInternal:
		return SeverityCritical
	case CodeConfigError, CodeInvalidConfig:
		return SeverityHigh
	case CodeInvalidInput, CodeNotFound, CodeConversionFailed, CodeInvalidFormat,
		CodeInvalidLength, CodeParseError, CodeValidationFailed:
		return SeverityLow
	default:
		return SeverityMedium
	}
}
