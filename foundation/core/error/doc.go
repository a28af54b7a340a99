// Package error provides the structured error type used by all fnkit packages.
//
// Package: error
// Title: fnkit Error Handling
// Description: Errors carry a Code for programmatic branching, a Severity used
//              by the logger, free-form details and a captured stack trace.
//              They implement Unwrap and Is so they compose with the standard
//              errors package.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-16
//
// Usage:
//
//	import mdwerror "github.com/msto63/fnkit/foundation/core/error"
//
//	err := mdwerror.New("value is neither a record nor a map").
//		WithCode(mdwerror.CodeTypeKind).
//		WithDetail("type", "int")
//
//	if mdwerror.HasCode(err, mdwerror.CodeTypeKind) {
//		// handle
//	}
//
// Most packages do not build errors directly but go through the module
// helpers in foundation/core/errors.
package error
