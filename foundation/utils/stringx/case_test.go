// File: case_test.go
// Title: Unit Tests for Case Conversion Functions
// Description: Tests for Camelize, Dehyphenate, Decamelize, LcWords and
//              UcWords including multibyte input.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-24 v0.1.0: Initial test implementation for case conversions
// - 2026-10-16 v0.3.0: Rewritten for the reworked conversions

package stringx

import "testing"

func TestCamelize(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		ucfirst bool
		want    string
	}{
		{"pascal", "my name", true, "MyName"},
		{"camel", "my name", false, "myName"},
		{"already capitalized", "My Long Name", false, "myLongName"},
		{"single word", "hello", true, "Hello"},
		{"empty", "", true, ""},
		{"unicode", "über alles", true, "ÜberAlles"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Camelize(tt.input, tt.ucfirst); got != tt.want {
				t.Errorf("Camelize(%q, %v) = %q; want %q", tt.input, tt.ucfirst, got, tt.want)
			}
		})
	}
}

func TestDehyphenate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		ucfirst bool
		delim   string
		want    string
	}{
		{"hyphen", "my-long-name", false, "-", "myLongName"},
		{"default delimiter", "my-long-name", false, "", "myLongName"},
		{"underscore", "my_long_name", true, "_", "MyLongName"},
		{"delimiter set", "my_long-name", false, "_-", "myLongName"},
		{"double delimiter", "a--b", false, "-", "aB"},
		{"no delimiter", "plain", true, "-", "Plain"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Dehyphenate(tt.input, tt.ucfirst, tt.delim); got != tt.want {
				t.Errorf("Dehyphenate(%q, %v, %q) = %q; want %q", tt.input, tt.ucfirst, tt.delim, got, tt.want)
			}
		})
	}
}

func TestDecamelize(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		ucwords bool
		delim   string
		want    string
	}{
		{"camel to words", "myLongName", false, " ", "my long name"},
		{"pascal to words", "MyLongName", false, " ", "my long name"},
		{"capitalized words", "myLongName", true, " ", "My Long Name"},
		{"snake", "myLongName", false, "_", "my_long_name"},
		{"digits", "utf8Value", true, "_", "Utf_8_Value"},
		{"digit run", "page123Count", false, "-", "page-123-count"},
		{"acronym", "parseURL", false, " ", "parse u r l"},
		{"empty", "", false, " ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Decamelize(tt.input, tt.ucwords, tt.delim); got != tt.want {
				t.Errorf("Decamelize(%q, %v, %q) = %q; want %q", tt.input, tt.ucwords, tt.delim, got, tt.want)
			}
		})
	}
}

func TestWordCasing(t *testing.T) {
	if got := LcWords("Hello Big World", ""); got != "hello big world" {
		t.Errorf("LcWords() = %q", got)
	}
	if got := LcWords("A-B-C", "-"); got != "a-b-c" {
		t.Errorf("LcWords(-) = %q", got)
	}
	if got := UcWords("hello  world", " "); got != "Hello  World" {
		t.Errorf("UcWords() = %q", got)
	}
}

func TestCamelRoundTrip(t *testing.T) {
	for _, name := range []string{"myLongName", "someValue", "x"} {
		if got := Camelize(Decamelize(name, false, " "), false); got != name {
			t.Errorf("Camelize(Decamelize(%q)) = %q", name, got)
		}
	}
}
