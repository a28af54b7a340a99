// File: utils.go
// Title: Shared Error Handling Utilities
// Description: Fluent error builder and the standard constructors every
//              foundation module uses instead of fmt.Errorf or errors.New.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation of shared error utilities
// - 2025-07-26 v0.1.1: Enhanced OutOfRange function with "validation failed:" prefix
// - 2026-10-16 v0.2.0: Convenience constructors for fieldx, fnx and stringx

package errors

import (
	"fmt"
	"strings"

	mdwerror "github.com/msto63/fnkit/foundation/core/error"
)

// ErrorBuilder provides a fluent interface for building standardized errors
type ErrorBuilder struct {
	module    string
	operation string
	message   string
	cause     error
	details   map[string]interface{}
	severity  mdwerror.Severity
	code      string
}

// NewErrorBuilder creates a new error builder for the specified module
func NewErrorBuilder(module string) *ErrorBuilder {
	return &ErrorBuilder{
		module:   module,
		details:  make(map[string]interface{}),
		severity: mdwerror.SeverityMedium,
	}
}

// Operation sets the operation name for the error
func (eb *ErrorBuilder) Operation(operation string) *ErrorBuilder {
	eb.operation = operation
	return eb
}

// Message sets the error message
func (eb *ErrorBuilder) Message(message string) *ErrorBuilder {
	eb.message = message
	return eb
}

// Messagef sets the error message with formatting
func (eb *ErrorBuilder) Messagef(format string, args ...interface{}) *ErrorBuilder {
	eb.message = fmt.Sprintf(format, args...)
	return eb
}

// Cause sets the underlying cause of the error
func (eb *ErrorBuilder) Cause(cause error) *ErrorBuilder {
	eb.cause = cause
	return eb
}

// Detail adds a detail key-value pair to the error
func (eb *ErrorBuilder) Detail(key string, value interface{}) *ErrorBuilder {
	eb.details[key] = value
	return eb
}

// Severity sets the error severity
func (eb *ErrorBuilder) Severity(severity mdwerror.Severity) *ErrorBuilder {
	eb.severity = severity
	return eb
}

// Code sets the error code
func (eb *ErrorBuilder) Code(code string) *ErrorBuilder {
	eb.code = code
	return eb
}

// Build creates the final error
func (eb *ErrorBuilder) Build() *mdwerror.Error {
	if eb.code == "" {
		eb.code = CodeOperationFailed
	}

	if eb.message == "" {
		if eb.operation != "" {
			eb.message = fmt.Sprintf("%s.%s failed", eb.module, eb.operation)
		} else {
			eb.message = fmt.Sprintf("%s operation failed", eb.module)
		}
	}

	eb.details["module"] = eb.module
	if eb.operation != "" {
		eb.details["operation"] = eb.operation
	}

	var err *mdwerror.Error
	if eb.cause != nil {
		err = mdwerror.Wrap(eb.cause, eb.message)
	} else {
		err = mdwerror.New(eb.message)
	}

	if eb.operation != "" {
		err = err.WithOperation(eb.module + "." + eb.operation)
	}

	return err.
		WithCode(mdwerror.Code(eb.code)).
		WithDetails(eb.details).
		WithSeverity(eb.severity)
}

// InvalidInput creates a standardized invalid input error
func InvalidInput(module, operation string, input interface{}, expected string) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Message(fmt.Sprintf("invalid input for %s.%s", module, operation)).
		Code(CodeInvalidInput).
		Detail("input", input).
		Detail("expected", expected).
		Severity(mdwerror.SeverityLow).
		Build()
}

// InvalidFormat creates a standardized format error
func InvalidFormat(module string, input interface{}, expectedFormat string) *mdwerror.Error {
	return NewErrorBuilder(module).
		Message(fmt.Sprintf("invalid format in %s", module)).
		Code(CodeInvalidFormat).
		Detail("input", input).
		Detail("expected_format", expectedFormat).
		Severity(mdwerror.SeverityLow).
		Build()
}

// OperationFailed creates a standardized operation failure error
func OperationFailed(module, operation string, cause error) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Message(fmt.Sprintf("%s.%s operation failed", module, operation)).
		Cause(cause).
		Code(CodeOperationFailed).
		Severity(mdwerror.SeverityHigh).
		Build()
}

// OutOfRange creates a standardized out of range error
func OutOfRange(module, operation string, value, min, max interface{}) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Message(fmt.Sprintf("validation failed: value out of range in %s.%s", module, operation)).
		Code(CodeOutOfRange).
		Detail("value", value).
		Detail("min", min).
		Detail("max", max).
		Severity(mdwerror.SeverityMedium).
		Build()
}

// NotFound creates a standardized not found error
func NotFound(module, operation string, identifier interface{}) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Message(fmt.Sprintf("item not found in %s.%s", module, operation)).
		Code(CodeNotFound).
		Detail("identifier", identifier).
		Severity(mdwerror.SeverityMedium).
		Build()
}

// TypeKind creates the error returned when a value is neither a record nor a container
func TypeKind(module, operation string, value interface{}) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Message(fmt.Sprintf("%s.%s: not a record or map: %T", module, operation, value)).
		Code(CodeTypeKind).
		Detail("type", fmt.Sprintf("%T", value)).
		Severity(mdwerror.SeverityLow).
		Build()
}

// ExtractDetails extracts all details from a structured error
func ExtractDetails(err error) map[string]interface{} {
	if mdwErr, ok := err.(*mdwerror.Error); ok {
		return mdwErr.Details()
	}
	return nil
}

// fieldx convenience functions

func FieldxTypeKind(operation string, value interface{}) *mdwerror.Error {
	return TypeKind(ModuleFieldx, operation, value)
}

func FieldxEmptyPath(operation string) *mdwerror.Error {
	return NewErrorBuilder(ModuleFieldx).
		Operation(operation).
		Message("path must not be empty").
		Code(CodeFieldxEmptyPath).
		Severity(mdwerror.SeverityLow).
		Build()
}

func FieldxDecodeFailed(format string, cause error) *mdwerror.Error {
	return NewErrorBuilder(ModuleFieldx).
		Operation("decode_" + strings.ToLower(format)).
		Message(fmt.Sprintf("cannot decode %s document", format)).
		Cause(cause).
		Code(CodeFieldxDecodeFailed).
		Detail("format", format).
		Severity(mdwerror.SeverityMedium).
		Build()
}

func FieldxEncodeFailed(format string, cause error) *mdwerror.Error {
	return NewErrorBuilder(ModuleFieldx).
		Operation("encode_" + strings.ToLower(format)).
		Message(fmt.Sprintf("cannot encode %s document", format)).
		Cause(cause).
		Code(CodeFieldxEncodeFailed).
		Detail("format", format).
		Severity(mdwerror.SeverityMedium).
		Build()
}

// fnx convenience functions

func FnxBadSignature(operation string, fn interface{}, reason string) *mdwerror.Error {
	return NewErrorBuilder(ModuleFnx).
		Operation(operation).
		Message(fmt.Sprintf("cannot call %T: %s", fn, reason)).
		Code(CodeFnxBadSignature).
		Detail("type", fmt.Sprintf("%T", fn)).
		Detail("reason", reason).
		Severity(mdwerror.SeverityLow).
		Build()
}

func FnxUnknownFunction(name string) *mdwerror.Error {
	return NewErrorBuilder(ModuleFnx).
		Operation("call").
		Message(fmt.Sprintf("function %q is not registered", name)).
		Code(CodeFnxUnknownFunction).
		Detail("name", name).
		Severity(mdwerror.SeverityMedium).
		Build()
}

func StringxInvalidPattern(pattern string, cause error) *mdwerror.Error {
	return NewErrorBuilder(ModuleStringx).
		Operation("compile").
		Message(fmt.Sprintf("invalid pattern %q", pattern)).
		Cause(cause).
		Code(CodeStringxInvalidRegexp).
		Detail("pattern", pattern).
		Severity(mdwerror.SeverityLow).
		Build()
}
