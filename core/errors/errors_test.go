// File: errors_test.go
// Title: Error Construction Tests
// Description: Tests for the builder and the module constructors.
// Author: wosser1s
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14

package errors

import (
	"errors"
	"fmt"
	"testing"

	liberr "github.com/Wosser1sProductions/utils/core/error"
)

func TestErrorBuilder(t *testing.T) {
	t.Run("basic error creation", func(t *testing.T) {
		err := NewErrorBuilder("testmodule").
			Operation("test_op").
			Message("test error").
			Detail("key", "value").
			Severity(liberr.SeverityHigh).
			Build()

		details := err.Details()
		if details["module"] != "testmodule" {
			t.Errorf("Expected module 'testmodule', got %v", details["module"])
		}
		if details["operation"] != "test_op" {
			t.Errorf("Expected operation 'test_op', got %v", details["operation"])
		}
		if details["key"] != "value" {
			t.Errorf("Expected detail key 'value', got %v", details["key"])
		}
		if err.Severity() != liberr.SeverityHigh {
			t.Errorf("Expected high severity, got %v", err.Severity())
		}
		if err.Operation() != "testmodule.test_op" {
			t.Errorf("Expected operation testmodule.test_op, got %q", err.Operation())
		}
	})

	t.Run("error with cause", func(t *testing.T) {
		cause := errors.New("underlying error")
		err := NewErrorBuilder("testmodule").
			Operation("test_op").
			Cause(cause).
			Build()

		if !errors.Is(err, cause) {
			t.Error("Expected error to wrap the cause")
		}
		if err.Error() != "testmodule.test_op failed: underlying error" {
			t.Errorf("unexpected message %q", err.Error())
		}
	})

	t.Run("code inherited from cause", func(t *testing.T) {
		cause := liberr.New("bad").WithCode(liberr.CodeParseError)
		err := NewErrorBuilder("m").Cause(cause).Build()
		if err.Code() != liberr.CodeParseError {
			t.Errorf("Code() = %v, want %v", err.Code(), liberr.CodeParseError)
		}
	})

	t.Run("auto-generated message without operation", func(t *testing.T) {
		err := NewErrorBuilder("m").Build()
		if err.Error() != "m operation failed" {
			t.Errorf("unexpected message %q", err.Error())
		}
	})
}

func TestInvalidInput(t *testing.T) {
	err := InvalidInput(ModuleCLI, "split", ",,", "single byte delimiter")

	if !liberr.HasCode(err, liberr.CodeInvalidInput) {
		t.Errorf("Code() = %v, want %v", err.Code(), liberr.CodeInvalidInput)
	}
	if err.Code().ExitCode() != 2 {
		t.Errorf("Code().ExitCode() = %d, want 2", err.Code().ExitCode())
	}
	if got := ExtractDetails(err)["module"]; got != ModuleCLI {
		t.Errorf("module detail = %v", got)
	}
	if !IsModuleOperation(err, ModuleCLI, "split") {
		t.Error("expected cli.split context")
	}
	if err.Severity() != liberr.SeverityLow {
		t.Errorf("Severity() = %v", err.Severity())
	}
}

func TestStringxBase64(t *testing.T) {
	err := StringxBase64(CodeStringxBase64Padding, "invalid padding", "QQ=A", 2)

	if err.Error() != "stringx.base64_decode (invalid padding)" {
		t.Errorf("Error() = %q", err.Error())
	}
	if !liberr.HasCode(err, CodeStringxBase64Padding) {
		t.Error("missing padding code")
	}
	if ExtractModule(err) != ModuleStringx || ExtractOperation(err) != "base64_decode" {
		t.Errorf("context = %q/%q", ExtractModule(err), ExtractOperation(err))
	}
	if v := ExtractDetails(err)["offset"]; v != 2 {
		t.Errorf("offset = %v", v)
	}
}

func TestStringxEncoding(t *testing.T) {
	err := StringxEncoding("to_wide", "invalid UTF-8", 4)
	if err.Code() != CodeStringxEncoding {
		t.Errorf("Code() = %v", err.Code())
	}
	if err.Error() != "stringx.to_wide: invalid UTF-8 at offset 4" {
		t.Errorf("Error() = %q", err.Error())
	}
}

func TestNavindexErrors(t *testing.T) {
	cause := errors.New("unexpected EOF")
	err := NavindexSyntax("a.js", "array literal", cause)
	if !errors.Is(err, cause) {
		t.Error("syntax error should wrap its cause")
	}
	if err.Code() != CodeNavindexSyntax {
		t.Errorf("Code() = %v", err.Code())
	}

	inv := NavindexInvalid("a.js", 3)
	if inv.Error() != "navindex: a.js: 3 malformed entries" {
		t.Errorf("Error() = %q", inv.Error())
	}
}

func TestConfigFailed(t *testing.T) {
	cause := fmt.Errorf("open: %w", errors.New("denied"))
	err := ConfigFailed("load", "/etc/utils.toml", cause)

	if err.Code() != liberr.CodeConfigError {
		t.Errorf("Code() = %v", err.Code())
	}
	if err.Severity() != liberr.SeverityHigh {
		t.Errorf("Severity() = %v", err.Severity())
	}
	if got := ExtractDetails(err)["path"]; got != "/etc/utils.toml" {
		t.Errorf("path = %v", got)
	}
}

func TestConfigInvalid(t *testing.T) {
	err := ConfigInvalid("strutils.toml", errors.New("split.delimiter: the length must be exactly 1."))

	if err.Code() != liberr.CodeInvalidConfig {
		t.Errorf("Code() = %v", err.Code())
	}
	if err.Severity() != liberr.SeverityLow {
		t.Errorf("Severity() = %v", err.Severity())
	}
	if !IsModuleOperation(err, ModuleConfig, "validate") {
		t.Errorf("module/operation = %q/%q", ExtractModule(err), ExtractOperation(err))
	}
}

func TestExtractFromPlainError(t *testing.T) {
	plain := errors.New("plain")
	if ExtractDetails(plain) != nil {
		t.Error("plain errors have no details")
	}
	if ExtractModule(plain) != "" || ExtractOperation(plain) != "" {
		t.Error("plain errors have no module context")
	}
}
