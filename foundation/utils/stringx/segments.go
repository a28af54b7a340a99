// File: segments.go
// Title: Delimiter Segments
// Description: Take or drop the first or last N delimiter separated segments
//              of a string, as a string or as a slice.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation

package stringx

import "strings"

// nthIndex returns the byte offset of the count-th occurrence of delim,
// or -1 when there are fewer occurrences.
func nthIndex(str, delim string, count int) int {
	p := -len(delim)
	for i := 0; i < count; i++ {
		start := p + len(delim)
		idx := strings.Index(str[start:], delim)
		if idx < 0 {
			return -1
		}
		p = start + idx
	}
	return p
}

// nthLastIndex returns the byte offset of the count-th occurrence of delim
// counted from the end, or -1 when there are fewer occurrences.
func nthLastIndex(str, delim string, count int) int {
	end := len(str)
	p := -1
	for i := 0; i < count; i++ {
		p = strings.LastIndex(str[:end], delim)
		if p < 0 {
			return -1
		}
		end = p
	}
	return p
}

// SegmentsFirst returns the first count segments of str. When str has
// fewer than count delimiters it is returned unchanged.
//
//	SegmentsFirst("a/b/c", "/", 2) // "a/b"
func SegmentsFirst(str, delim string, count int) string {
	if count <= 0 {
		return ""
	}
	if delim == "" {
		return str
	}
	p := nthIndex(str, delim, count)
	if p < 0 {
		return str
	}
	return str[:p]
}

// SegmentsLast returns the last count segments of str. When str has fewer
// than count delimiters it is returned unchanged.
//
//	SegmentsLast("file.tar.gz", ".", 1) // "gz"
func SegmentsLast(str, delim string, count int) string {
	if count <= 0 {
		return ""
	}
	if delim == "" {
		return str
	}
	p := nthLastIndex(str, delim, count)
	if p < 0 {
		return str
	}
	return str[p+len(delim):]
}

// SegmentsStripFirst removes the first count segments of str. When str has
// fewer than count delimiters it is returned unchanged.
func SegmentsStripFirst(str, delim string, count int) string {
	if count <= 0 || delim == "" {
		return str
	}
	p := nthIndex(str, delim, count)
	if p < 0 {
		return str
	}
	return str[p+len(delim):]
}

// SegmentsStripLast removes the last count segments of str. When str has
// fewer than count delimiters it is returned unchanged.
//
//	SegmentsStripLast("a/b/c", "/", 1) // "a/b"
func SegmentsStripLast(str, delim string, count int) string {
	if count <= 0 || delim == "" {
		return str
	}
	p := nthLastIndex(str, delim, count)
	if p < 0 {
		return str
	}
	return str[:p]
}

func split(str, delim string) []string {
	if delim == "" {
		return []string{str}
	}
	return strings.Split(str, delim)
}

// SplitGetFirst returns up to count leading segments of str
func SplitGetFirst(str, delim string, count int) []string {
	if count <= 0 {
		return []string{}
	}
	if delim == "" {
		return []string{str}
	}
	parts := strings.SplitN(str, delim, count+1)
	if len(parts) > count {
		parts = parts[:count]
	}
	return parts
}

// SplitGetLast returns up to count trailing segments of str
func SplitGetLast(str, delim string, count int) []string {
	if count <= 0 {
		return []string{}
	}
	parts := split(str, delim)
	if len(parts) > count {
		parts = parts[len(parts)-count:]
	}
	return parts
}

// SplitStripFirst returns the segments of str without the first count ones
func SplitStripFirst(str, delim string, count int) []string {
	parts := split(str, delim)
	if count <= 0 {
		return parts
	}
	if count >= len(parts) {
		return []string{}
	}
	return parts[count:]
}

// SplitStripLast returns the segments of str without the last count ones
func SplitStripLast(str, delim string, count int) []string {
	parts := split(str, delim)
	if count <= 0 {
		return parts
	}
	if count >= len(parts) {
		return []string{}
	}
	return parts[:len(parts)-count]
}
