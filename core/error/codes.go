// File: codes.go
// Title: Error Code Definitions
// Description: Standardized error codes used across the utils packages so
//              callers can branch on the kind of failure instead of on text.
// Author: wosser1s
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial set of codes for strings, navindex and config

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeNotFound     Code = "NOT_FOUND"
	CodeInvalidInput Code = "INVALID_INPUT"

	// Conversion and encoding
	CodeConversionFailed Code = "CONVERSION_FAILED"
	CodeInvalidFormat    Code = "INVALID_FORMAT"
	CodeInvalidLength    Code = "INVALID_LENGTH"
	CodeParseError       Code = "PARSE_ERROR"

	// Validation
	CodeValidationFailed Code = "VALIDATION_FAILED"

	// Configuration
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeInvalidConfig Code = "INVALID_CONFIG"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeNotFound, CodeInvalidInput,
		CodeConversionFailed, CodeInvalidFormat, CodeInvalidLength, CodeParseError,
		CodeValidationFailed,
		CodeConfigError, CodeInvalidConfig:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeConversionFailed, CodeInvalidFormat, CodeInvalidLength, CodeParseError:
		return "conversion"
	case CodeValidationFailed:
		return "validation"
	case CodeConfigError, CodeInvalidConfig:
		return "configuration"
	default:
		return "generic"
	}
}

// ExitCode maps the code to a process exit status for command line tools.
// Input problems exit with 2, everything else with 1.
func (c Code) ExitCode() int {
	switch c {
	case CodeInvalidInput, CodeInvalidFormat, CodeInvalidLength,
		CodeConversionFailed, CodeParseError, CodeValidationFailed:
		return 2
	default:
		return 1
	}
}
