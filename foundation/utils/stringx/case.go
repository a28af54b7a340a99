// File: case.go
// Title: Case Conversion Functions
// Description: Conversions between space separated words, hyphenated
//              compounds and camelCase, plus per-word capitalization.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation of case conversions
// - 2026-10-16 v0.3.0: Camelize, Dehyphenate, Decamelize and word casing

package stringx

import (
	"strings"
	"unicode"
)

// ucwordsBy upper-cases the first rune of s and every rune following one of
// the delimiter runes.
func ucwordsBy(s string, isDelim func(rune) bool) string {
	var b strings.Builder
	b.Grow(len(s))

	upper := true
	for _, r := range s {
		if upper {
			r = unicode.ToUpper(r)
		}
		upper = isDelim(r)
		b.WriteRune(r)
	}
	return b.String()
}

// Camelize joins space separated words into camelCase, or PascalCase when
// ucfirst is set.
//
//	Camelize("my name", true) // "MyName"
func Camelize(name string, ucfirst bool) string {
	s := strings.ReplaceAll(ucwordsBy(name, unicode.IsSpace), " ", "")
	if ucfirst {
		return s
	}
	return lcfirst(s)
}

// Dehyphenate converts a compound joined by any rune of delim into
// camelCase, or PascalCase when ucfirst is set. An empty delim means "-".
//
//	Dehyphenate("my-long-name", false, "-") // "myLongName"
//	Dehyphenate("my_long_name", true, "_")  // "MyLongName"
func Dehyphenate(name string, ucfirst bool, delim string) string {
	if delim == "" {
		delim = "-"
	}
	isDelim := func(r rune) bool { return strings.ContainsRune(delim, r) }

	s := strings.Map(func(r rune) rune {
		if isDelim(r) {
			return -1
		}
		return r
	}, ucwordsBy(name, isDelim))

	if ucfirst {
		return s
	}
	return lcfirst(s)
}

// Decamelize splits a camelCase name before every upper-case letter and at
// the start of every digit run, then joins the words with delim. Words are
// capitalized when ucwords is set and lower-cased at their first rune
// otherwise.
//
//	Decamelize("myLongName", false, " ") // "my long name"
//	Decamelize("utf8Value", true, "_")   // "Utf_8_Value"
func Decamelize(name string, ucwords bool, delim string) string {
	words := splitCamel(name)
	for i, w := range words {
		if ucwords {
			words[i] = ucfirst(w)
		} else {
			words[i] = lcfirst(w)
		}
	}
	return strings.Join(words, delim)
}

func splitCamel(name string) []string {
	var (
		words []string
		start int
		prev  rune
	)
	for i, r := range name {
		if i > 0 && (unicode.IsUpper(r) || (unicode.IsDigit(r) && !unicode.IsDigit(prev))) {
			words = append(words, name[start:i])
			start = i
		}
		prev = r
	}
	return append(words, name[start:])
}

// LcWords lower-cases the first rune of every delim separated word. An
// empty delim means a single space.
func LcWords(str, delim string) string {
	return mapWords(str, delim, lcfirst)
}

// UcWords upper-cases the first rune of every delim separated word. An
// empty delim means a single space.
func UcWords(str, delim string) string {
	return mapWords(str, delim, ucfirst)
}

func mapWords(str, delim string, fn func(string) string) string {
	if delim == "" {
		delim = " "
	}
	words := strings.Split(str, delim)
	for i, w := range words {
		words[i] = fn(w)
	}
	return strings.Join(words, delim)
}
