// Package log provides the leveled, structured logger used by the utils tools.
//
// Package: log
// Title: Structured Logging for utils
// Description: Leveled logging with persistent context fields, a correlation
//              id per process run and four output formats (json, text, console,
//              logfmt). Core errors are logged with their code and details at a
//              level derived from their severity.
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
//	logger := log.NewWithConfig(log.Config{
//		Level:  log.LevelDebug,
//		Format: log.FormatLogfmt,
//		Output: os.Stderr,
//		Name:   "strutils",
//	})
//
//	logger.Info("decoded input", log.Int("bytes", n))
//
//	timer := logger.StartTimer("base64.encode")
//	defer timer.Stop()
//
// Loggers are immutable: every With* method returns a copy, so a derived
// logger can be handed to a goroutine without further locking.
package log
