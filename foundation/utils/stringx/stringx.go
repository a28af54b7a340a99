// File: stringx.go
// Title: Core String Utility Functions
// Description: Prefix and suffix predicates, delimiter joins, pluralization,
//              indentation and JavaScript string literal encoding.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core utilities
// - 2026-10-16 v0.3.0: Replaced with predicates, Join, Indent and JS encoding

package stringx

import (
	"html"
	"strings"
	"unicode/utf8"
)

// BeginsWith reports whether str starts with prefix
func BeginsWith(str, prefix string) bool {
	return strings.HasPrefix(str, prefix)
}

// EndsWith reports whether str ends with suffix
func EndsWith(str, suffix string) bool {
	return strings.HasSuffix(str, suffix)
}

// Join concatenates s1 and s2 with delimiter between them. When either
// side is empty the other one is returned without the delimiter.
func Join(s1, s2, delimiter string) string {
	switch {
	case s1 == "":
		return s2
	case s2 == "":
		return s1
	default:
		return s1 + delimiter + s2
	}
}

// SimplePluralize returns thing with an "s" appended unless num is one
func SimplePluralize(num int, thing string) string {
	if num == 1 {
		return thing
	}
	return thing + "s"
}

// Indent prefixes every line of str with indent repeated level times. A
// trailing newline does not start a new line.
func Indent(str string, level int, indent string) string {
	if level <= 0 || indent == "" {
		return str
	}
	prefix := strings.Repeat(indent, level)

	var b strings.Builder
	b.Grow(len(str) + len(prefix)*(strings.Count(str, "\n")+1))

	atLineStart := true
	for i := 0; i < len(str); i++ {
		if atLineStart {
			b.WriteString(prefix)
			atLineStart = false
		}
		b.WriteByte(str[i])
		if str[i] == '\n' && i+1 < len(str) {
			atLineStart = true
		}
	}
	if str == "" {
		b.WriteString(prefix)
	}
	return b.String()
}

// EncodeJavaScriptString encloses str in delim so it can be written as a
// string literal into a script inside an HTML attribute. Newlines and
// occurrences of delim are backslash escaped, then HTML special characters
// are escaped. An empty delim means a double quote.
func EncodeJavaScriptString(str, delim string) string {
	if delim == "" {
		delim = `"`
	}
	s := strings.ReplaceAll(str, "\n", `\n`)
	s = strings.ReplaceAll(s, delim, `\`+delim)
	return delim + html.EscapeString(s) + delim
}

func ucfirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return strings.ToUpper(string(r)) + s[size:]
}

func lcfirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return strings.ToLower(string(r)) + s[size:]
}
