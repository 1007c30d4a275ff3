// File: modules.go
// Title: Module Error Constructors
// Description: One constructor per failure kind of the stringx, navindex and
//              config packages, plus extractors for the recorded context.
// Author: wosser1s
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial implementation

package errors

import (
	"errors"
	"fmt"

	liberr "github.com/Wosser1sProductions/utils/core/error"
)

// Module identifiers for error categorization
const (
	ModuleStringx  = "stringx"
	ModuleNavindex = "navindex"
	ModuleConfig   = "config"
	ModuleCLI      = "cli"
)

// Module-specific error codes
const (
	CodeStringxBase64Size      liberr.Code = "STRINGX_BASE64_INVALID_SIZE"
	CodeStringxBase64Padding   liberr.Code = "STRINGX_BASE64_INVALID_PADDING"
	CodeStringxBase64Character liberr.Code = "STRINGX_BASE64_INVALID_CHARACTER"
	CodeStringxEncoding        liberr.Code = "STRINGX_ENCODING_ERROR"

	CodeNavindexSyntax  liberr.Code = "NAVINDEX_SYNTAX"
	CodeNavindexInvalid liberr.Code = "NAVINDEX_INVALID"
)

// InvalidInput creates a standardized invalid input error
func InvalidInput(module, operation string, input interface{}, expected string) *liberr.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("invalid input for %s.%s: expected %s", module, operation, expected).
		Code(liberr.CodeInvalidInput).
		Detail("input", input).
		Detail("expected", expected).
		Severity(liberr.SeverityLow).
		Build()
}

// StringxEncoding reports a failed UTF-8/UTF-16 conversion. offset is the
// position of the offending byte or code unit.
func StringxEncoding(operation, reason string, offset int) *liberr.Error {
	return NewErrorBuilder(ModuleStringx).
		Operation(operation).
		Messagef("stringx.%s: %s at offset %d", operation, reason, offset).
		Code(CodeStringxEncoding).
		Detail("reason", reason).
		Detail("offset", offset).
		Severity(liberr.SeverityLow).
		Build()
}

// StringxBase64 reports a base64 decoding failure with one of the
// CodeStringxBase64* codes.
func StringxBase64(code liberr.Code, reason string, input string, offset int) *liberr.Error {
	return NewErrorBuilder(ModuleStringx).
		Operation("base64_decode").
		Messagef("stringx.base64_decode (%s)", reason).
		Code(code).
		Detail("reason", reason).
		Detail("length", len(input)).
		Detail("offset", offset).
		Severity(liberr.SeverityLow).
		Build()
}

// NavindexSyntax reports a navigation index that could not be parsed.
func NavindexSyntax(source, reason string, cause error) *liberr.Error {
	b := NewErrorBuilder(ModuleNavindex).
		Operation("parse").
		Messagef("navindex: %s: %s", source, reason).
		Code(CodeNavindexSyntax).
		Detail("source", source).
		Detail("reason", reason).
		Severity(liberr.SeverityLow)
	if cause != nil {
		b = b.Cause(cause)
	}
	return b.Build()
}

// NavindexInvalid reports a parsed index that failed validation.
func NavindexInvalid(source string, issues int) *liberr.Error {
	return NewErrorBuilder(ModuleNavindex).
		Operation("validate").
		Messagef("navindex: %s: %d malformed entries", source, issues).
		Code(CodeNavindexInvalid).
		Detail("source", source).
		Detail("issues", issues).
		Severity(liberr.SeverityLow).
		Build()
}

// ConfigFailed wraps a configuration failure for the given path.
func ConfigFailed(operation, path string, cause error) *liberr.Error {
	return NewErrorBuilder(ModuleConfig).
		Operation(operation).
		Message(fmt.Sprintf("config.%s failed for %s", operation, path)).
		Cause(cause).
		Code(liberr.CodeConfigError).
		Detail("path", path).
		Severity(liberr.SeverityHigh).
		Build()
}

// ConfigInvalid reports configured values that failed validation. The
// message of cause names the offending keys.
func ConfigInvalid(source string, cause error) *liberr.Error {
	return NewErrorBuilder(ModuleConfig).
		Operation("validate").
		Messagef("config: %s: %v", source, cause).
		Cause(cause).
		Code(liberr.CodeInvalidConfig).
		Detail("source", source).
		Severity(liberr.SeverityLow).
		Build()
}

// ExtractDetails extracts all details from a core error
func ExtractDetails(err error) map[string]interface{} {
	var e *liberr.Error
	if errors.As(err, &e) {
		return e.Details()
	}
	return nil
}

// ExtractModule extracts the module name from an error
func ExtractModule(err error) string {
	if module, ok := ExtractDetails(err)["module"].(string); ok {
		return module
	}
	return ""
}

// ExtractOperation extracts the operation name from an error
func ExtractOperation(err error) string {
	if operation, ok := ExtractDetails(err)["operation"].(string); ok {
		return operation
	}
	return ""
}

// IsModuleOperation checks if error is from specific module and operation
func IsModuleOperation(err error, module, operation string) bool {
	return ExtractModule(err) == module && ExtractOperation(err) == operation
}
