// File: tagx_test.go
// Title: Tagged String Tests
// Description: Tests for Len, Strip, Pad, Crop, Width, PadColumns and Render.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial test implementation

package tagx

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/msto63/fnkit/foundation/utils/stringx"
)

func TestLen(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"", 0},
		{"plain", 5},
		{"<b>x</b>", 1},
		{"<red>größe</red>", 5},
		{"<a href='x'>link</a> text", 9},
		{"a<br/>b", 2},
		{"1 < 2", 5},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := Len(tt.input); got != tt.want {
				t.Errorf("Len(%q) = %d; want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestLenWithoutTagsIsRuneCount(t *testing.T) {
	for _, s := range []string{"", "abc", "héllo wörld", "日本語"} {
		if Len(s) != len([]rune(s)) {
			t.Errorf("Len(%q) = %d; want %d", s, Len(s), len([]rune(s)))
		}
	}
}

func TestStrip(t *testing.T) {
	if got := Strip("<b>bold</b> and <i>it</i>"); got != "bold and it" {
		t.Errorf("Strip() = %q", got)
	}
}

func TestPad(t *testing.T) {
	tests := []struct {
		name  string
		input string
		width int
		align stringx.Align
		pad   string
		want  string
	}{
		{"end", "<b>x</b>", 3, stringx.AlignEnd, " ", "<b>x</b>  "},
		{"start", "<b>x</b>", 3, stringx.AlignStart, ".", "..<b>x</b>"},
		{"both", "<i>ab</i>", 6, stringx.AlignBoth, "*", "**<i>ab</i>**"},
		{"already wide", "<b>wide</b>", 2, stringx.AlignEnd, " ", "<b>wide</b>"},
		{"no tags", "ab", 4, stringx.AlignEnd, "-", "ab--"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Pad(tt.input, tt.width, tt.align, tt.pad)
			if got != tt.want {
				t.Errorf("Pad(%q, %d) = %q; want %q", tt.input, tt.width, got, tt.want)
			}
			if Len(got) < tt.width {
				t.Errorf("Pad(%q, %d) visible length %d", tt.input, tt.width, Len(got))
			}
		})
	}
}

func TestCrop(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		width  int
		marker string
		want   string
	}{
		{"fits", "<b>bold</b>", 4, "…", "<b>bold</b>"},
		{"plain text", "abcdef", 4, "", "abcd"},
		{"plain text with marker", "abcdef", 4, "..", "ab.."},
		{"trailing text", "<b>bold</b> text", 6, "…", "<b>bold</b> …"},
		{"inside tag", "<b>bold text</b>", 4, "", "<b>bold</b>"},
		{"nested", "<r><b>abcdef</b></r>", 3, "~", "<r><b>ab~</b></r>"},
		{"closed before cut", "<r>ab</r><g>cdef</g>", 3, "", "<r>ab</r><g>c</g>"},
		{"tag with attributes", "<a href='x'>linktext</a>", 4, "", "<a href='x'>link</a>"},
		{"self closing", "a<br/>bcdef", 3, "", "a<br/>bc"},
		{"marker wider than space", "<b>abcdef</b>", 2, "...", "<b>...</b>"},
		{"zero width", "<b>abc</b>", 0, "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Crop(tt.input, tt.width, tt.marker); got != tt.want {
				t.Errorf("Crop(%q, %d, %q) = %q; want %q", tt.input, tt.width, tt.marker, got, tt.want)
			}
		})
	}
}

func TestCropProperties(t *testing.T) {
	inputs := []string{
		"<red>error</red>: <b>file <i>not</i> found</b>",
		"<g>ok</g> plain tail text",
		"no tags at all in this one",
		"<x><y><z>deep</z></y></x>",
	}

	for _, s := range inputs {
		if got := Crop(s, Len(s), "…"); got != s {
			t.Errorf("Crop(%q, Len) = %q; want unchanged", s, got)
		}

		for width := 1; width < Len(s); width++ {
			got := Crop(s, width, "…")
			if Len(got) > width {
				t.Errorf("Crop(%q, %d) = %q has visible length %d", s, width, got, Len(got))
			}
			if !balanced(got) {
				t.Errorf("Crop(%q, %d) = %q leaves tags open", s, width, got)
			}
		}
	}
}

// balanced reports whether every opening tag in s is closed
func balanced(s string) bool {
	depth := 0
	for _, m := range tag.FindAllStringSubmatch(s, -1) {
		switch name := m[1]; {
		case strings.HasPrefix(name, "/"):
			depth--
		case strings.HasSuffix(name, "/"):
		default:
			depth++
		}
		if depth < 0 {
			return false
		}
	}
	return depth == 0
}

func TestWidth(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"abc", 3},
		{"<b>日本</b>", 4},
		{"<red>größe</red>", 5},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := Width(tt.input); got != tt.want {
				t.Errorf("Width(%q) = %d; want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestPadColumns(t *testing.T) {
	got := PadColumns("<b>日本</b>", 6, stringx.AlignEnd, " ")
	if want := "<b>日本</b>  "; got != want {
		t.Errorf("PadColumns() = %q; want %q", got, want)
	}
	if Width(got) != 6 {
		t.Errorf("PadColumns() width = %d; want 6", Width(got))
	}
}

func TestRender(t *testing.T) {
	upper := lipgloss.NewStyle().Transform(strings.ToUpper)
	styles := Styles{"up": upper}
	defaults := DefaultStyles()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"no tags", "plain text", "plain text"},
		{"custom style", "a<up>b</up>c", "a" + upper.Render("b") + "c"},
		{"unknown tags dropped", "<nope>x</nope>y", plain().Render("x") + "y"},
		{"builtin color", "<red>x</red>", defaults["red"].Render("x")},
		{"case insensitive", "<RED>x</RED>", defaults["red"].Render("x")},
		{"nested inherits", "<bold><red>x</red></bold>", defaults["red"].Inherit(defaults["bold"]).Render("x")},
		{"unknown inside known", "<up><z>b</z></up>", upper.Render("b")},
		{"self closing removed", "a<br/>b", "ab"},
		{"stray closing tag", "a</b>b", "ab"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Render(tt.input, styles); got != tt.want {
				t.Errorf("Render(%q) = %q; want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestRenderOverridesDefaults(t *testing.T) {
	shout := lipgloss.NewStyle().Transform(func(s string) string { return s + "!" })
	if got := Render("<red>x</red>", Styles{"red": shout}); got != shout.Render("x") {
		t.Errorf("Render() = %q; want override applied", got)
	}
}

func BenchmarkCrop(b *testing.B) {
	s := strings.Repeat("<red>error</red>: <b>file <i>not</i> found</b> ", 5)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Crop(s, 40, "…")
	}
}
