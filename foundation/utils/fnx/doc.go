// File: doc.go
// Title: Package Documentation for fnx
// Description: Package fnx adapts functions: argument binding, one-shot
//              memoization, constants, identity and a registry of named
//              functions.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation

// Package fnx provides small function adapters.
//
// Func is the dynamic calling convention used throughout the package: a
// variadic function over interface{} values. Bind prepends and appends fixed
// arguments to every call, BindFunc lifts an arbitrary Go func into a Func
// through reflection, and Registry maps names to Funcs so callers can pick a
// function at runtime without compiling source text.
//
// Usage:
//
//	greet := fnx.Bind(func(args ...any) any {
//		return fmt.Sprint(args...)
//	}, []any{"!"}, []any{"hello "})
//	greet("world") // "hello world!"
//
//	load := fnx.Memoize(func() *Config { return readConfig() })
//	cfg := load() // readConfig runs once
//
// Memoize is safe for concurrent use. A Registry is safe for concurrent use.
package fnx
