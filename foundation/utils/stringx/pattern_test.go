// File: pattern_test.go
// Title: Unit Tests for Pattern Helpers
// Description: Tests for Compile, Match, Extract, ExtractSegment and Search.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial test implementation

package stringx

import (
	"reflect"
	"regexp"
	"testing"

	mdwerror "github.com/msto63/fnkit/foundation/core/error"
	"github.com/msto63/fnkit/foundation/core/errors"
)

func TestCompile(t *testing.T) {
	if _, err := Compile(`\d+`); err != nil {
		t.Errorf("Compile(valid) error = %v", err)
	}

	_, err := Compile(`(unclosed`)
	if !mdwerror.HasCode(err, mdwerror.Code(errors.CodeStringxInvalidRegexp)) {
		t.Errorf("Compile(invalid) error = %v, want STRINGX_INVALID_PATTERN", err)
	}
	if !errors.IsModuleError(err, errors.ModuleStringx) {
		t.Errorf("Compile(invalid) module = %q", errors.GetErrorModule(err))
	}
}

func TestMatch(t *testing.T) {
	date := regexp.MustCompile(`(\d{4})-(\d{2})(?:-(\d{2}))?`)

	tests := []struct {
		name   string
		source string
		re     *regexp.Regexp
		groups int
		empty  string
		want   []string
		wantOK bool
	}{
		{"full match", "on 2024-05-17", date, 3, "", []string{"2024-05-17", "2024", "05", "17"}, true},
		{"optional group missing", "on 2024-05", date, 3, "?", []string{"2024-05", "2024", "05", "?"}, true},
		{"padded beyond groups", "x=1", regexp.MustCompile(`x=(\d)`), 3, "-", []string{"x=1", "1", "-", "-"}, true},
		{"no match", "nothing", date, 2, "", []string{"", "", ""}, false},
		{"no match no groups", "nothing", date, 0, "n/a", []string{"n/a"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Match(tt.source, tt.re, tt.groups, tt.empty)
			if ok != tt.wantOK || !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Match(%q) = %q, %v; want %q, %v", tt.source, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestExtract(t *testing.T) {
	tests := []struct {
		name     string
		source   string
		pattern  string
		want     string
		wantRest string
	}{
		{"whole match", "size: 10px", `\d+px`, "10px", "size: "},
		{"first group", "name=joe; age=3", `age=(\d+)`, "3", "name=joe; "},
		{"last of many", "a1 b2 c3", `[a-z](\d)`, "3", "  "},
		{"no match", "abc", `\d`, "", "abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := tt.source
			got := Extract(&src, regexp.MustCompile(tt.pattern))
			if got != tt.want || src != tt.wantRest {
				t.Errorf("Extract(%q) = %q, rest %q; want %q, rest %q", tt.source, got, src, tt.want, tt.wantRest)
			}
		})
	}
}

func TestExtractSegment(t *testing.T) {
	tests := []struct {
		name    string
		source  string
		pattern string
		want    [2]string
	}{
		{"split once", "key: value: x", `:\s*`, [2]string{"key", "value: x"}},
		{"leading delimiter skipped", "/a/b", `/`, [2]string{"a", "b"}},
		{"repeated delimiter", "a//b", `/`, [2]string{"a", "/b"}},
		{"no match", "abc", `,`, [2]string{"abc", ""}},
		{"trailing delimiter", "abc,", `,`, [2]string{"abc", ""}},
		{"empty source", "", `,`, [2]string{"", ""}},
		{"empty matches ignored", "ab", `x*`, [2]string{"ab", ""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractSegment(tt.source, regexp.MustCompile(tt.pattern)); got != tt.want {
				t.Errorf("ExtractSegment(%q, %q) = %q; want %q", tt.source, tt.pattern, got, tt.want)
			}
		})
	}
}

func TestSearch(t *testing.T) {
	re := regexp.MustCompile(`\d+`)

	tests := []struct {
		name      string
		str       string
		from      int
		wantPos   int
		wantMatch string
	}{
		{"from start", "ab12cd34", 0, 2, "12"},
		{"from offset", "ab12cd34", 4, 6, "34"},
		{"inside match", "ab12cd34", 3, 3, "2"},
		{"negative from", "ab12", -5, 2, "12"},
		{"past end", "ab12", 10, -1, ""},
		{"no match", "abcd", 0, -1, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos, match := Search(tt.str, re, tt.from)
			if pos != tt.wantPos || match != tt.wantMatch {
				t.Errorf("Search(%q, %d) = %d, %q; want %d, %q", tt.str, tt.from, pos, match, tt.wantPos, tt.wantMatch)
			}
		})
	}
}
