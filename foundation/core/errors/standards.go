// File: standards.go
// Title: Error Standards for fnkit Foundation
// Description: Module identifiers and error codes shared by the foundation
//              utility packages, plus helpers to inspect standardized errors.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation for error standardization
// - 2026-10-16 v0.2.0: Modules and codes for fieldx, fnx, stringx and tagx

package errors

import (
	"errors"

	mdwerror "github.com/msto63/fnkit/foundation/core/error"
)

// Module identifiers for error categorization
const (
	ModuleStringx = "stringx"
	ModuleTagx    = "tagx"
	ModuleFieldx  = "fieldx"
	ModuleFnx     = "fnx"
	ModuleConfig  = "config"
	ModuleCLI     = "cli"
	ModuleLog     = "log"
)

// Standardized error codes for all modules
const (
	CodeInvalidInput    = "INVALID_INPUT"
	CodeInvalidFormat   = "INVALID_FORMAT"
	CodeOutOfRange      = "OUT_OF_RANGE"
	CodeNotFound        = "NOT_FOUND"
	CodeOperationFailed = "OPERATION_FAILED"
	CodeTypeKind        = string(mdwerror.CodeTypeKind)

	CodeFieldxEmptyPath      = "FIELDX_EMPTY_PATH"
	CodeFieldxDecodeFailed   = "FIELDX_DECODE_FAILED"
	CodeFieldxEncodeFailed   = "FIELDX_ENCODE_FAILED"
	CodeFnxBadSignature      = "FNX_BAD_SIGNATURE"
	CodeFnxUnknownFunction   = "FNX_UNKNOWN_FUNCTION"
	CodeStringxInvalidRegexp = "STRINGX_INVALID_PATTERN"
)

// IsModuleError checks if an error belongs to a specific module
func IsModuleError(err error, module string) bool {
	return GetErrorModule(err) == module
}

// GetErrorModule extracts the module name from a standardized error
func GetErrorModule(err error) string {
	return detailString(err, "module")
}

// GetErrorOperation extracts the operation name from a standardized error
func GetErrorOperation(err error) string {
	return detailString(err, "operation")
}

// IsModuleOperation checks if error is from specific module and operation
func IsModuleOperation(err error, module, operation string) bool {
	return GetErrorModule(err) == module && GetErrorOperation(err) == operation
}

func detailString(err error, key string) string {
	var mdwErr *mdwerror.Error
	if !errors.As(err, &mdwErr) {
		return ""
	}
	if s, ok := mdwErr.Details()[key].(string); ok {
		return s
	}
	return ""
}
