// File: error_test.go
// Title: Error Module Tests
// Description: Tests for error creation, wrapping, codes, severity and JSON output.
// Author: wosser1s
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial test implementation

package error

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	msg := "test error message"
	err := New(msg)

	if err.Error() != msg {
		t.Errorf("Error() = %q, want %q", err.Error(), msg)
	}

	if err.Code() != CodeUnknown {
		t.Errorf("Code() = %v, want %v", err.Code(), CodeUnknown)
	}

	if err.Severity() != SeverityMedium {
		t.Errorf("Severity() = %v, want %v", err.Severity(), SeverityMedium)
	}

	if err.Timestamp().IsZero() {
		t.Error("Timestamp() should not be zero")
	}

	if len(err.StackTrace()) == 0 {
		t.Error("StackTrace() should not be empty")
	}
}

func TestNewf(t *testing.T) {
	err := Newf("bad length %d", 7)
	if err.Error() != "bad length 7" {
		t.Errorf("Error() = %q", err.Error())
	}
	if len(err.StackTrace()) == 0 {
		t.Error("StackTrace() should not be empty")
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		message  string
		wantNil  bool
		wantMsg  string
		wantCode Code
	}{
		{
			name:    "wrap nil error",
			err:     nil,
			message: "wrapper",
			wantNil: true,
		},
		{
			name:     "wrap standard error",
			err:      errors.New("original"),
			message:  "wrapper",
			wantMsg:  "wrapper: original",
			wantCode: CodeUnknown,
		},
		{
			name:     "wrap coded error",
			err:      New("original").WithCode(CodeInvalidLength),
			message:  "wrapper",
			wantMsg:  "wrapper: original",
			wantCode: CodeInvalidLength,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Wrap(tt.err, tt.message)
			if tt.wantNil {
				if result != nil {
					t.Errorf("Wrap() = %v, want nil", result)
				}
				return
			}
			if result.Error() != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", result.Error(), tt.wantMsg)
			}
			if result.Code() != tt.wantCode {
				t.Errorf("Code() = %v, want %v", result.Code(), tt.wantCode)
			}
			if !errors.Is(result, tt.err) {
				t.Error("wrapped error should match its cause with errors.Is")
			}
		})
	}
}

func TestWrapInheritsDetails(t *testing.T) {
	inner := New("inner").WithCode(CodeConversionFailed).WithDetail("offset", 3)
	outer := Wrap(inner, "outer")

	v, ok := outer.Detail("offset")
	if !ok || v != 3 {
		t.Errorf("Detail(offset) = %v, %v; want 3, true", v, ok)
	}
	if outer.Severity() != SeverityLow {
		t.Errorf("Severity() = %v, want %v", outer.Severity(), SeverityLow)
	}
}

func TestWrapChainTruncated(t *testing.T) {
	var err error = errors.New("root")
	for i := 0; i < MaxErrorChainDepth+2; i++ {
		err = Wrap(err, fmt.Sprintf("level %d", i))
	}

	if !strings.Contains(err.Error(), "chain truncated") {
		t.Errorf("expected truncated chain, got %q", err.Error())
	}
	if chainDepth(err) > MaxErrorChainDepth+1 {
		t.Errorf("chain depth %d exceeds limit", chainDepth(err))
	}
}

func TestIs(t *testing.T) {
	sentinel := New("").WithCode(CodeInvalidLength)
	err := Wrap(New("size").WithCode(CodeInvalidLength), "decode")

	if !errors.Is(err, sentinel) {
		t.Error("errors.Is should match by code")
	}
	if errors.Is(err, New("").WithCode(CodeParseError)) {
		t.Error("errors.Is should not match a different code")
	}
	if errors.Is(New("a"), New("b")) {
		t.Error("unknown codes must not match each other")
	}
}

func TestWithCodeSetsSeverity(t *testing.T) {
	tests := []struct {
		code Code
		want Severity
	}{
		{CodeInvalidInput, SeverityLow},
		{CodeConfigError, SeverityHigh},
		{CodeInternal, SeverityCritical},
		{CodeUnknown, SeverityMedium},
	}

	for _, tt := range tests {
		t.Run(tt.code.String(), func(t *testing.T) {
			err := New("x").WithCode(tt.code)
			if err.Severity() != tt.want {
				t.Errorf("Severity() = %v, want %v", err.Severity(), tt.want)
			}
		})
	}

	explicit := New("x").WithSeverity(SeverityCritical).WithCode(CodeInvalidInput)
	if explicit.Severity() != SeverityCritical {
		t.Error("explicit severity must not be overridden by WithCode")
	}
}

func TestHasCodeAndGetCode(t *testing.T) {
	inner := New("inner").WithCode(CodeParseError)
	outer := Wrap(fmt.Errorf("ctx: %w", inner), "outer").WithCode(CodeConfigError)

	if !HasCode(outer, CodeConfigError) {
		t.Error("HasCode(outer, CONFIG_ERROR) = false")
	}
	if !HasCode(outer, CodeParseError) {
		t.Error("HasCode should search the whole chain")
	}
	if HasCode(errors.New("plain"), CodeParseError) {
		t.Error("HasCode on plain error should be false")
	}
	if GetCode(outer) != CodeConfigError {
		t.Errorf("GetCode() = %v", GetCode(outer))
	}
	if GetCode(errors.New("plain")) != CodeUnknown {
		t.Error("GetCode on plain error should be UNKNOWN")
	}
	if GetSeverity(errors.New("plain")) != SeverityMedium {
		t.Error("GetSeverity on plain error should be medium")
	}
}

func TestRootCause(t *testing.T) {
	root := errors.New("root")
	err := Wrap(Wrap(root, "mid"), "top")
	if err.RootCause() != root {
		t.Errorf("RootCause() = %v, want %v", err.RootCause(), root)
	}
}

func TestString(t *testing.T) {
	err := New("boom").
		WithCode(CodeInvalidFormat).
		WithOperation("stringx.Base64Decode").
		WithDetail("b", 2).
		WithDetail("a", 1)

	s := err.String()
	for _, want := range []string{"Error: boom", "Code: INVALID_FORMAT", "Operation: stringx.Base64Decode", "Details: {a=1, b=2}"} {
		if !strings.Contains(s, want) {
			t.Errorf("String() missing %q in:\n%s", want, s)
		}
	}
}

func TestMarshalJSON(t *testing.T) {
	err := Wrap(errors.New("cause"), "boom").
		WithCode(CodeInvalidLength).
		WithOperation("op").
		WithDetail("length", 7)

	data, jerr := json.Marshal(err)
	if jerr != nil {
		t.Fatalf("Marshal() error = %v", jerr)
	}

	var decoded map[string]interface{}
	if jerr := json.Unmarshal(data, &decoded); jerr != nil {
		t.Fatalf("Unmarshal() error = %v", jerr)
	}

	if decoded["code"] != "INVALID_LENGTH" {
		t.Errorf("code = %v", decoded["code"])
	}
	if decoded["cause"] != "cause" {
		t.Errorf("cause = %v", decoded["cause"])
	}
	if decoded["operation"] != "op" {
		t.Errorf("operation = %v", decoded["operation"])
	}
	if decoded["severity"] != "low" {
		t.Errorf("severity = %v", decoded["severity"])
	}
}

func TestCodeHelpers(t *testing.T) {
	if !CodeConversionFailed.IsValid() {
		t.Error("CONVERSION_FAILED should be valid")
	}
	if Code("NOPE").IsValid() {
		t.Error("unknown code should be invalid")
	}
	if CodeInvalidLength.Category() != "conversion" {
		t.Errorf("Category() = %q", CodeInvalidLength.Category())
	}
	if CodeConfigError.Category() != "configuration" {
		t.Errorf("Category() = %q", CodeConfigError.Category())
	}
	if CodeInvalidInput.ExitCode() != 2 || CodeConfigError.ExitCode() != 1 {
		t.Error("unexpected exit codes")
	}
}

func TestSeverityString(t *testing.T) {
	tests := []struct {
		s    Severity
		want string
	}{
		{SeverityLow, "low"},
		{SeverityMedium, "medium"},
		{SeverityHigh, "high"},
		{SeverityCritical, "critical"},
		{Severity(42), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.s.String(); got != tt.want {
			t.Errorf("Severity(%d).String() = %q, want %q", tt.s, got, tt.want)
		}
	}
	if SeverityMedium.ShouldAlert() || !SeverityHigh.ShouldAlert() {
		t.Error("ShouldAlert thresholds wrong")
	}
}
