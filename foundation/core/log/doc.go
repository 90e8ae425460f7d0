// Package log provides structured logging for strx.
//
// Package: log
// Title: strx Structured Logging
// Description: A small structured logger with levels, persistent fields and
//              pluggable formatters (JSON, text, coloured console, logfmt).
//              The diagnostics channel formats failures through it and the CLI
//              uses it for its own output.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-03-02
//
// Usage:
//
//	logger := log.NewWithConfig(log.Config{
//		Level:  log.LevelDebug,
//		Format: log.FormatConsole,
//		Output: os.Stderr,
//		Name:   "strx",
//	})
//	logger.Info("promoted to heap", log.Fields{"length": 33, "capacity": 34})
//
// Loggers are safe for concurrent use. With* methods return copies and never
// modify the receiver.
package log
