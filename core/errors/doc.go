// Package errors is the error construction API used by the utils packages.
//
// Package: errors
// Title: Standard Error Construction for utils
// Description: Wraps the core error type with a fluent builder and one helper
//              per failure kind, so every package reports module, operation and
//              code the same way.
// Author: wosser1s
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial implementation
//
// Every error built here records "module" and "operation" details which can be
// read back with ExtractModule and ExtractOperation:
//
//	err := errors.StringxBase64(errors.CodeStringxBase64Padding, "invalid padding", "QQ=A", 2)
//	errors.ExtractModule(err)    // "stringx"
//	errors.ExtractOperation(err) // "base64_decode"
package errors
