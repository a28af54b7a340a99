// ============================================================================
// fnkit - Utility toolkit
// ============================================================================
//
// Package:     version
// Description: Central version management for the fnkit library and tool
// Author:      msto63
// Created:     2026-10-16
// License:     MIT
// ============================================================================

package version

import "fmt"

// Version constants for fnkit
const (
	// Library version
	Library = "0.1.0"

	// Tool version
	CLI = "0.1.0"
)

// Set at build time via -ldflags "-X github.com/msto63/fnkit/pkg/core/version.Commit=..."
var (
	Commit = "unknown"
	Date   = "unknown"
)

// ComponentVersion returns the version for a given component name
func ComponentVersion(name string) string {
	switch name {
	case "cli", "fnkit":
		return CLI
	default:
		return Library
	}
}

// String returns the version line printed by the tool
func String() string {
	return fmt.Sprintf("fnkit %s (library %s, commit %s, built %s)", CLI, Library, Commit, Date)
}
