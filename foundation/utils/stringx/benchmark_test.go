// File: benchmark_test.go
// Title: Performance Benchmarks for StringX Functions
// Description: Benchmarks for the text paths used in tight loops: padding,
//              segments, case conversion and HTML trimming.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-24 v0.1.0: Initial benchmark implementation
// - 2026-10-16 v0.3.0: Benchmarks for the reworked API

package stringx

import (
	"strings"
	"testing"
)

func BenchmarkPadString(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = PadString("größe", 40, "-=", AlignBoth)
	}
}

func BenchmarkSegmentsLast(b *testing.B) {
	path := strings.Repeat("segment/", 20) + "file.go"

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = SegmentsLast(path, "/", 3)
	}
}

func BenchmarkDecamelize(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = Decamelize("someRatherLongIdentifierName42", false, "_")
	}
}

func BenchmarkTrimHTMLText(b *testing.B) {
	text := strings.Repeat("<p>lorem <b>ipsum dolor</b> sit amet</p>", 10)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = TrimHTMLText(text, 150, "…")
	}
}
