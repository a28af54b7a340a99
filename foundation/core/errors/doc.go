// Package errors provides the standard error constructors for all fnkit
// foundation modules.
//
// Package: errors
// Title: Standard Error Handling API for fnkit Foundation
// Description: Common error patterns, standardized error codes and helpers
//              to build and inspect errors consistently across modules. Every
//              error produced here is a *mdwerror.Error carrying the module and
//              operation names in its details.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-16
//
// # Creating errors
//
//	err := errors.NewErrorBuilder(errors.ModuleFieldx).
//		Operation("set").
//		Code(errors.CodeTypeKind).
//		Detail("key", key).
//		Build()
//
//	err = errors.FieldxTypeKind("get", value)
//
// # Inspecting errors
//
//	if errors.IsModuleOperation(err, errors.ModuleFieldx, "get") {
//		...
//	}
package errors
