// File: render.go
// Title: Styled Rendering of Tagged Strings
// Description: Converts tagged text into ANSI styled terminal output using
//              lipgloss styles looked up by tag name.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation

package tagx

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Styles maps tag names to the style applied to the enclosed text
type Styles map[string]lipgloss.Style

// DefaultStyles returns the built-in color and attribute styles
func DefaultStyles() Styles {
	base := plain()
	return Styles{
		"red":       base.Foreground(lipgloss.Color("1")),
		"green":     base.Foreground(lipgloss.Color("2")),
		"yellow":    base.Foreground(lipgloss.Color("3")),
		"blue":      base.Foreground(lipgloss.Color("4")),
		"magenta":   base.Foreground(lipgloss.Color("5")),
		"cyan":      base.Foreground(lipgloss.Color("6")),
		"white":     base.Foreground(lipgloss.Color("7")),
		"gray":      base.Foreground(lipgloss.Color("8")),
		"bold":      base.Bold(true),
		"italic":    base.Italic(true),
		"underline": base.Underline(true),
		"faint":     base.Faint(true),
	}
}

// Render replaces the markup in s with terminal styling. Text inside a tag
// named in styles, or in DefaultStyles, gets that style on top of the styles
// of the enclosing tags. Other tags are removed without styling their text.
// Whether escape codes are emitted depends on the color profile lipgloss
// detects for the output.
func Render(s string, styles Styles) string {
	lookup := DefaultStyles()
	for name, style := range styles {
		lookup[name] = style
	}

	var (
		out   strings.Builder
		stack []lipgloss.Style
		rest  = s
	)

	write := func(text string) {
		if text == "" {
			return
		}
		if len(stack) == 0 {
			out.WriteString(text)
			return
		}
		out.WriteString(stack[len(stack)-1].Render(text))
	}

	for rest != "" {
		loc := tag.FindStringSubmatchIndex(rest)
		if loc == nil {
			write(rest)
			break
		}

		write(rest[:loc[0]])
		name := strings.TrimSpace(rest[loc[2]:loc[3]])
		rest = rest[loc[1]:]

		switch {
		case strings.HasPrefix(name, "/"):
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
		case strings.HasSuffix(name, "/"):
		default:
			stack = append(stack, nested(lookup, stack, strings.ToLower(tagName(name))))
		}
	}
	return out.String()
}

// plain is the style of untagged text; tabs are left alone
func plain() lipgloss.Style {
	return lipgloss.NewStyle().TabWidth(lipgloss.NoTabConversion)
}

// nested returns the style for name combined with the innermost open style.
// Unknown names repeat the innermost style so their closing tag pops cleanly.
func nested(lookup Styles, stack []lipgloss.Style, name string) lipgloss.Style {
	parent := plain()
	if len(stack) > 0 {
		parent = stack[len(stack)-1]
	}

	style, ok := lookup[name]
	if !ok {
		return parent
	}
	return style.Inherit(parent)
}
