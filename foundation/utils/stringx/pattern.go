// File: pattern.go
// Title: Pattern Helpers
// Description: Regular expression based matching, extraction, searching and
//              splitting built on the regexp package.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation

package stringx

import (
	"regexp"

	"github.com/msto63/fnkit/foundation/core/errors"
)

// Compile parses pattern into a regular expression
func Compile(pattern string) (*regexp.Regexp, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, errors.StringxInvalidPattern(pattern, err)
	}
	return re, nil
}

// Match returns the whole match of re in source followed by its capture
// groups, padded with emptyValue to at least groups+1 entries. Groups that
// did not take part in the match are reported as emptyValue too. Without a
// match the result holds groups+1 copies of emptyValue and ok is false.
func Match(source string, re *regexp.Regexp, groups int, emptyValue string) (result []string, ok bool) {
	if groups < 0 {
		groups = 0
	}

	loc := re.FindStringSubmatchIndex(source)
	if loc == nil {
		return fill(groups+1, emptyValue), false
	}

	n := len(loc) / 2
	if n < groups+1 {
		result = make([]string, 0, groups+1)
	} else {
		result = make([]string, 0, n)
	}
	for i := 0; i < n; i++ {
		if loc[2*i] < 0 {
			result = append(result, emptyValue)
			continue
		}
		result = append(result, source[loc[2*i]:loc[2*i+1]])
	}
	for len(result) < groups+1 {
		result = append(result, emptyValue)
	}
	return result, true
}

func fill(n int, v string) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = v
	}
	return out
}

// Extract removes every match of re from *source and returns the text of
// the last match, or of its first capture group when re has one. It
// returns "" and leaves *source alone when nothing matches.
func Extract(source *string, re *regexp.Regexp) string {
	matches := re.FindAllStringSubmatchIndex(*source, -1)
	if len(matches) == 0 {
		return ""
	}

	src := *source
	var (
		out  string
		rest = make([]byte, 0, len(src))
		last int
	)
	for _, m := range matches {
		rest = append(rest, src[last:m[0]]...)
		last = m[1]

		switch {
		case len(m) > 2 && m[2] >= 0:
			out = src[m[2]:m[3]]
		case len(m) > 2:
			out = ""
		default:
			out = src[m[0]:m[1]]
		}
	}
	rest = append(rest, src[last:]...)

	*source = string(rest)
	return out
}

// ExtractSegment splits source at the first match of delimiter into the
// text before it and the remainder after it. Empty pieces and empty matches
// are skipped, so a leading delimiter does not yield an empty first part.
// The result always has two entries; missing parts are "".
//
//	ExtractSegment("key: value: x", regexp.MustCompile(`:\s*`)) // ["key", "value: x"]
func ExtractSegment(source string, delimiter *regexp.Regexp) [2]string {
	var (
		out   [2]string
		found int
		pos   int
	)

	for _, m := range delimiter.FindAllStringIndex(source, -1) {
		if m[0] == m[1] || m[0] < pos {
			continue
		}
		piece := source[pos:m[0]]
		pos = m[1]
		if piece == "" {
			continue
		}
		out[found] = piece
		found++
		break
	}

	if rest := source[pos:]; rest != "" {
		out[found] = rest
	}
	return out
}

// Search returns the byte offset and text of the first match of re in str
// at or after byte offset from. The offset is -1 when nothing matches.
func Search(str string, re *regexp.Regexp, from int) (int, string) {
	if from < 0 {
		from = 0
	}
	if from > len(str) {
		return -1, ""
	}

	loc := re.FindStringIndex(str[from:])
	if loc == nil {
		return -1, ""
	}
	return from + loc[0], str[from+loc[0] : from+loc[1]]
}
