// File: tagx.go
// Title: Tag-Aware Length, Padding and Cropping
// Description: Visible length, padding and cropping of tagged strings. Tags
//              are zero width and cropping closes every tag left open.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation

package tagx

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/msto63/fnkit/foundation/utils/stringx"
)

var (
	markup = regexp.MustCompile(`<[^>]*>`)
	tag    = regexp.MustCompile(`<(.*?)>`)
)

// Strip returns s without its markup
func Strip(s string) string {
	return markup.ReplaceAllString(s, "")
}

// Len returns the number of runes of s outside of markup
func Len(s string) int {
	return utf8.RuneCountInString(Strip(s))
}

// Pad pads s with pad until its visible length is width
//
//	Pad("<b>x</b>", 3, stringx.AlignEnd, " ") // "<b>x</b>  "
func Pad(s string, width int, align stringx.Align, pad string) string {
	overhead := utf8.RuneCountInString(s) - Len(s)
	return stringx.PadString(s, width+overhead, pad, align)
}

// Crop shortens s to a visible length of width, ending the kept text with
// marker. Text is cut inside the segment that reaches width so that the kept
// runes plus marker fill width exactly; when the marker does not fit nothing
// of that segment is kept. Every tag open at the cut is closed, innermost
// first. Self-closing tags (<br/>) are kept but never closed. s is returned
// unchanged when it already fits.
//
//	Crop("<b>bold</b> text", 6, "…") // "<b>bold</b> …"
func Crop(s string, width int, marker string) string {
	if Len(s) <= width {
		return s
	}

	var (
		out     strings.Builder
		open    []string
		visible int
		rest    = s
	)
	markLen := utf8.RuneCountInString(marker)

	cut := func(seg string) {
		keep := width - visible - markLen
		out.WriteString(headRunes(seg, keep))
		out.WriteString(marker)
	}

	for rest != "" {
		loc := tag.FindStringSubmatchIndex(rest)
		if loc == nil {
			cut(rest)
			break
		}

		seg, raw, name := rest[:loc[0]], rest[loc[0]:loc[1]], rest[loc[2]:loc[3]]
		rest = rest[loc[1]:]

		segLen := utf8.RuneCountInString(seg)
		if visible+segLen >= width {
			cut(seg)
			break
		}
		visible += segLen
		out.WriteString(seg)

		switch {
		case strings.HasPrefix(name, "/"):
			if len(open) > 0 {
				open = open[:len(open)-1]
			}
		case strings.HasSuffix(name, "/"):
		default:
			open = append(open, tagName(name))
		}
		out.WriteString(raw)
	}

	for i := len(open) - 1; i >= 0; i-- {
		out.WriteString("</" + open[i] + ">")
	}
	return out.String()
}

// tagName returns the name of an opening tag without its attributes
func tagName(inner string) string {
	if i := strings.IndexByte(inner, ' '); i >= 0 {
		return inner[:i]
	}
	return inner
}

func headRunes(s string, n int) string {
	if n <= 0 {
		return ""
	}
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}
