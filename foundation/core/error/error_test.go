// File: error_test.go
// Title: Error Module Tests
// Description: Tests for error creation, wrapping, codes, severity and metadata.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with comprehensive test coverage
// - 2026-10-16 v0.2.0: Adjusted to the reduced code set

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

	trace := err.StackTrace()
	if len(trace) == 0 {
		t.Fatal("StackTrace() should not be empty")
	}
	if !strings.Contains(trace[0].Function, "TestNew") {
		t.Errorf("first frame = %q, want the caller of New", trace[0].Function)
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		message string
		wantNil bool
		wantMsg string
	}{
		{
			name:    "wrap nil error",
			err:     nil,
			message: "wrapper message",
			wantNil: true,
		},
		{
			name:    "wrap standard error",
			err:     errors.New("original error"),
			message: "wrapper message",
			wantMsg: "wrapper message: original error",
		},
		{
			name:    "wrap structured error",
			err:     New("original").WithCode(CodeTypeKind).WithDetail("key", "a"),
			message: "wrapper message",
			wantMsg: "wrapper message: original",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := Wrap(tt.err, tt.message)

			if tt.wantNil {
				if wrapped != nil {
					t.Errorf("Wrap() = %v, want nil", wrapped)
				}
				return
			}
			if wrapped.Error() != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", wrapped.Error(), tt.wantMsg)
			}

			if inner, ok := tt.err.(*Error); ok {
				if wrapped.Code() != inner.Code() {
					t.Errorf("Code() = %v, want %v", wrapped.Code(), inner.Code())
				}
				if wrapped.Details()["key"] != "a" {
					t.Errorf("details not inherited: %v", wrapped.Details())
				}
			}
		})
	}
}

func TestErrorChaining(t *testing.T) {
	original := errors.New("root cause")
	middle := Wrap(original, "middle layer")
	top := Wrap(middle, "top layer")

	expected := "top layer: middle layer: root cause"
	if top.Error() != expected {
		t.Errorf("Error() = %q, want %q", top.Error(), expected)
	}
	if !errors.Is(top, middle) {
		t.Error("errors.Is() should find middle layer")
	}
	if !errors.Is(top, original) {
		t.Error("errors.Is() should find original error")
	}
	if top.RootCause() != original {
		t.Errorf("RootCause() = %v, want %v", top.RootCause(), original)
	}
}

func TestIsByCode(t *testing.T) {
	sentinel := New("sentinel").WithCode(CodeTypeKind)
	err := fmt.Errorf("outer: %w", New("not a record").WithCode(CodeTypeKind))

	if !errors.Is(err, sentinel) {
		t.Error("errors.Is() should match errors with the same code")
	}
	if errors.Is(err, New("other").WithCode(CodeNotFound)) {
		t.Error("errors.Is() should not match a different code")
	}
	if errors.Is(New("a"), New("b")) {
		t.Error("errors without code must not match each other")
	}
}

func TestWithCode(t *testing.T) {
	tests := []struct {
		code     Code
		severity Severity
	}{
		{CodeTypeKind, SeverityLow},
		{CodeInvalidInput, SeverityLow},
		{CodeReadFailed, SeverityHigh},
		{CodeInternal, SeverityCritical},
		{CodeUnknown, SeverityMedium},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			err := New("test").WithCode(tt.code)
			if err.Code() != tt.code {
				t.Errorf("Code() = %v, want %v", err.Code(), tt.code)
			}
			if err.Severity() != tt.severity {
				t.Errorf("Severity() = %v, want %v", err.Severity(), tt.severity)
			}
		})
	}
}

func TestWithSeverityBeforeCode(t *testing.T) {
	err := New("test").WithSeverity(SeverityCritical).WithCode(CodeTypeKind)
	if err.Severity() != SeverityCritical {
		t.Errorf("Severity() = %v, explicit severity must survive WithCode", err.Severity())
	}
}

func TestDetailsAreCopied(t *testing.T) {
	err := New("test").WithDetails(map[string]interface{}{"a": 1, "b": "x"})

	details := err.Details()
	details["a"] = 99
	if err.Details()["a"] != 1 {
		t.Error("Details() must return a copy")
	}
}

func TestHasCodeAndGetCode(t *testing.T) {
	inner := New("inner").WithCode(CodeNotFound)
	outer := fmt.Errorf("context: %w", inner)

	if !HasCode(outer, CodeNotFound) {
		t.Error("HasCode() should search the chain")
	}
	if HasCode(outer, CodeTypeKind) {
		t.Error("HasCode() reported a code that is not present")
	}
	if GetCode(outer) != CodeNotFound {
		t.Errorf("GetCode() = %v, want %v", GetCode(outer), CodeNotFound)
	}
	if GetCode(errors.New("plain")) != CodeUnknown {
		t.Error("GetCode() of a foreign error should be CodeUnknown")
	}
	if GetSeverity(errors.New("plain")) != SeverityMedium {
		t.Error("GetSeverity() of a foreign error should be SeverityMedium")
	}
}

func TestMarshalJSON(t *testing.T) {
	err := Wrap(errors.New("cause"), "failed").
		WithCode(CodeInvalidInput).
		WithOperation("fieldx.set").
		WithDetail("key", "a")

	data, jerr := json.Marshal(err)
	if jerr != nil {
		t.Fatalf("json.Marshal() error = %v", jerr)
	}

	var decoded map[string]interface{}
	if jerr := json.Unmarshal(data, &decoded); jerr != nil {
		t.Fatalf("json.Unmarshal() error = %v", jerr)
	}
	if decoded["code"] != "INVALID_INPUT" {
		t.Errorf("code = %v", decoded["code"])
	}
	if decoded["operation"] != "fieldx.set" {
		t.Errorf("operation = %v", decoded["operation"])
	}
	if decoded["cause"] != "cause" {
		t.Errorf("cause = %v", decoded["cause"])
	}
}

func TestString(t *testing.T) {
	s := New("broken").WithCode(CodeTypeKind).WithDetail("b", 2).WithDetail("a", 1).String()

	for _, want := range []string{"Error: broken", "Code: TYPE_KIND", "Severity: low", "Details: {a=1, b=2}"} {
		if !strings.Contains(s, want) {
			t.Errorf("String() missing %q in\n%s", want, s)
		}
	}
}

func TestCodeCategory(t *testing.T) {
	tests := map[Code]string{
		CodeTypeKind:    "validation",
		CodeConfigError: "configuration",
		CodeReadFailed:  "io",
		CodeNotFound:    "lookup",
		CodeInternal:    "generic",
	}
	for code, want := range tests {
		if got := code.Category(); got != want {
			t.Errorf("%s.Category() = %q, want %q", code, got, want)
		}
		if !code.IsValid() {
			t.Errorf("%s.IsValid() = false", code)
		}
	}
	if Code("NOPE").IsValid() {
		t.Error("unknown code reported as valid")
	}
}
