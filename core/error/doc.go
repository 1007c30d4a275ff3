// Package error provides the structured error type shared by all utils packages.
//
// Package: error
// Title: Structured Errors for the utils Library
// Description: Errors carry a code, a severity, free-form details and the
//              operation that produced them. They wrap causes, unwrap with the
//              standard errors package and marshal to JSON for structured logs.
// Author: wosser1s
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial implementation
//
// Usage:
//
//	import liberr "github.com/Wosser1sProductions/utils/core/error"
//
//	err := liberr.New("base64 input has invalid size").
//		WithCode(liberr.CodeInvalidLength).
//		WithOperation("stringx.Base64Decode").
//		WithDetail("length", 7)
//
//	if liberr.HasCode(err, liberr.CodeInvalidLength) {
//		// handle size problems
//	}
//
// Two errors compare equal under errors.Is when both are *Error values with
// the same non-unknown code, so a bare code-carrying value can serve as a
// sentinel:
//
//	errors.Is(err, liberr.New("").WithCode(liberr.CodeInvalidLength))
package error
