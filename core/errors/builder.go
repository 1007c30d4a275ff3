// File: builder.go
// Title: Fluent Error Builder
// Description: Builds core errors with module and operation context and an
//              auto-derived code and message when the caller leaves them out.
// Author: wosser1s
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial implementation

package errors

import (
	"fmt"

	liberr "github.com/Wosser1sProductions/utils/core/error"
)

// ErrorBuilder provides a fluent interface for building standardized errors
type ErrorBuilder struct {
	module      string
	operation   string
	message     string
	cause       error
	details     map[string]interface{}
	severity    liberr.Severity
	severitySet bool
	code        liberr.Code
}

// NewErrorBuilder creates a new error builder for the specified module
func NewErrorBuilder(module string) *ErrorBuilder {
	return &ErrorBuilder{
		module:  module,
		details: make(map[string]interface{}),
	}
}

// Operation sets the operation name for the error
func (eb *ErrorBuilder) Operation(operation string) *ErrorBuilder {
	eb.operation = operation
	return eb
}

// Message sets the error message
func (eb *ErrorBuilder) Message(message string) *ErrorBuilder {
	eb.message = message
	return eb
}

// Messagef sets the error message with formatting
func (eb *ErrorBuilder) Messagef(format string, args ...interface{}) *ErrorBuilder {
	eb.message = fmt.Sprintf(format, args...)
	return eb
}

// Cause sets the underlying cause of the error
func (eb *ErrorBuilder) Cause(cause error) *ErrorBuilder {
	eb.cause = cause
	return eb
}

// Detail adds a detail key-value pair to the error
func (eb *ErrorBuilder) Detail(key string, value interface{}) *ErrorBuilder {
	eb.details[key] = value
	return eb
}

// Severity sets the error severity
func (eb *ErrorBuilder) Severity(severity liberr.Severity) *ErrorBuilder {
	eb.severity = severity
	eb.severitySet = true
	return eb
}

// Code sets the error code
func (eb *ErrorBuilder) Code(code liberr.Code) *ErrorBuilder {
	eb.code = code
	return eb
}

// Build creates the final error
func (eb *ErrorBuilder) Build() *liberr.Error {
	code := eb.code
	if code == "" {
		code = liberr.CodeUnknown
		if eb.cause != nil {
			code = liberr.GetCode(eb.cause)
		}
	}

	message := eb.message
	if message == "" {
		if eb.operation != "" {
			message = fmt.Sprintf("%s.%s failed", eb.module, eb.operation)
		} else {
			message = fmt.Sprintf("%s operation failed", eb.module)
		}
	}

	details := make(map[string]interface{}, len(eb.details)+2)
	for k, v := range eb.details {
		details[k] = v
	}
	details["module"] = eb.module
	if eb.operation != "" {
		details["operation"] = eb.operation
	}

	var err *liberr.Error
	if eb.cause != nil {
		err = liberr.Wrap(eb.cause, message).WithSeverity(liberr.SeverityMedium)
	} else {
		err = liberr.New(message)
	}

	err = err.WithCode(code).WithDetails(details)
	if eb.operation != "" {
		err = err.WithOperation(eb.module + "." + eb.operation)
	}
	if eb.severitySet {
		err = err.WithSeverity(eb.severity)
	}
	return err
}
