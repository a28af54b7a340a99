// File: doc.go
// Title: Package Documentation for stringx
// Description: Package stringx complements the strings package with segment
//              handling, case conversion, word-boundary truncation, HTML
//              aware trimming, pattern extraction and multibyte padding.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core string utilities
// - 2025-01-26 v0.2.0: Enhanced documentation with comprehensive structure and examples
// - 2026-10-16 v0.3.0: Reworked around segments, patterns and padding

// Package stringx provides string helpers that the strings package lacks.
//
// Overview
//
// All functions are pure and safe for concurrent use. Lengths and positions
// that callers see (limits, widths, padding) are counted in runes, so
// multibyte text is never split inside a character. Delimiters are matched
// as plain substrings.
//
// The package is organized into functional groups:
//
//   - Predicates and small helpers: BeginsWith, EndsWith, Join, Indent (stringx.go)
//   - Segments: SegmentsFirst, SegmentsStripLast, SplitGetLast, ... (segments.go)
//   - Case conversion: Camelize, Dehyphenate, Decamelize, UcWords (case.go)
//   - Truncation: Truncate, Cut, TrimText, TrimHTMLText (trim.go)
//   - Patterns: Match, Extract, ExtractSegment, Search (pattern.go)
//   - Padding: PadString with AlignStart, AlignEnd and AlignBoth (pad.go)
//
// Usage Examples
//
// Path style segments:
//
//	stringx.SegmentsLast("a/b/c", "/", 1)      // "c"
//	stringx.SegmentsStripLast("a/b/c", "/", 1) // "a/b"
//	stringx.SplitGetFirst("a.b.c", ".", 2)     // []string{"a", "b"}
//
// Case conversion:
//
//	stringx.Camelize("my name", true)             // "MyName"
//	stringx.Dehyphenate("my-long-name", false, "-") // "myLongName"
//	stringx.Decamelize("myLongName", false, "_")  // "my_long_name"
//
// Padding counts runes, not bytes:
//
//	stringx.PadString("größe", 7, ".", stringx.AlignEnd) // "größe.."
//
// Error Handling
//
// Pattern helpers take compiled *regexp.Regexp values. Compile turns a
// pattern string into one and reports a STRINGX_INVALID_PATTERN error built
// by the foundation errors package when it does not parse.
package stringx
