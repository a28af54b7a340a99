// Package log provides structured logging for the fnkit foundation and CLI.
//
// Package: log
// Title: fnkit Structured Logging
// Description: Leveled, structured logging with contextual fields, correlation
//              ids and four output formats (json, text, console, logfmt). Errors
//              built by the foundation error package are logged with their code,
//              severity and details, and the log level follows the severity.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with structured logging and error integration
// - 2026-10-16 v0.2.0: Console colors through lipgloss, sorted field output
//
// Usage:
//
//	logger := log.New().
//		WithLevel(log.LevelDebug).
//		WithFormat(log.FormatConsole).
//		WithField("command", "field get")
//
//	logger.Info("document loaded", log.Field("keys", 12))
//	logger.LogError(err)
package log
