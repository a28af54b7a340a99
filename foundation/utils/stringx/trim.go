// File: trim.go
// Title: Text Truncation
// Description: Word-boundary truncation of plain and HTML text, and middle
//              elision of long strings.
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
	"strings"
	"unicode/utf8"
)

var (
	markupPattern  = regexp.MustCompile(`<[^>]*>`)
	htmlTagPattern = regexp.MustCompile(`<.*?>`)
)

// StripTags removes everything that looks like markup (<...>) from text
func StripTags(text string) string {
	return markupPattern.ReplaceAllString(text, "")
}

// headRunes returns the first n runes of s
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

// tailRunes returns the last n runes of s
func tailRunes(s string, n int) string {
	if n <= 0 {
		return ""
	}
	pos := len(s)
	for i := 0; i < n && pos > 0; i++ {
		_, size := utf8.DecodeLastRuneInString(s[:pos])
		pos -= size
	}
	return s[pos:]
}

// Truncate shortens text longer than limit runes. Markup is removed, the
// text is cut to limit runes and then back to the last space, and ending is
// appended. A cut that contains no space is kept as is.
//
//	Truncate("The quick brown fox", 12, "...") // "The quick..."
func Truncate(text string, limit int, ending string) string {
	if utf8.RuneCountInString(text) <= limit {
		return text
	}
	cut := headRunes(StripTags(text), limit)
	if i := strings.LastIndexByte(cut, ' '); i >= 0 {
		cut = cut[:i]
	}
	return cut + ending
}

// Cut limits text to about limit runes by replacing its middle with more.
// The head is extended to the next space so the first words stay whole and
// the tail shrinks by the same amount.
func Cut(text string, limit int, more string) string {
	n := utf8.RuneCountInString(text)
	if n <= limit {
		return text
	}

	chars := (limit - utf8.RuneCountInString(more)) / 2
	if chars < 0 {
		chars = 0
	}

	extra := 0
	head := headRunes(text, chars)
	if i := strings.IndexByte(text[len(head):], ' '); i >= 0 {
		extra = utf8.RuneCountInString(text[len(head):len(head)+i]) + 1
	}

	return headRunes(text, chars+extra) + more + tailRunes(text, chars-extra)
}

// TrimText shortens text longer than maxSize runes to its whole words within
// the limit and appends marker.
//
//	TrimText("one two three", 9, " (...)") // "one two (...)"
func TrimText(text string, maxSize int, marker string) string {
	if utf8.RuneCountInString(text) <= maxSize {
		return text
	}
	return dropLastWord(headRunes(text, maxSize)) + marker
}

func dropLastWord(s string) string {
	if i := strings.LastIndexByte(s, ' '); i >= 0 {
		return s[:i]
	}
	return ""
}

// TrimHTMLText is TrimText for HTML fragments. A tag cut in half at the end
// is dropped, and every tag left open by the cut is closed again, innermost
// first.
//
//	TrimHTMLText("<p>one <b>two three</b></p>", 16, "…") // "<p>one <b>two…</b></p>"
func TrimHTMLText(text string, maxSize int, marker string) string {
	if utf8.RuneCountInString(text) <= maxSize {
		return text
	}

	text = headRunes(text, maxSize)
	if lt := strings.LastIndexByte(text, '<'); lt >= 0 && strings.LastIndexByte(text, '>') < lt {
		text = text[:lt]
	}
	text = dropLastWord(text) + marker

	var open []string
	for _, tag := range htmlTagPattern.FindAllString(text, -1) {
		inner := tag[1 : len(tag)-1]
		switch {
		case strings.HasPrefix(inner, "/"):
			if len(open) > 0 {
				open = open[:len(open)-1]
			}
		case strings.HasSuffix(inner, "/"):
		default:
			open = append(open, strings.TrimSpace(inner))
		}
	}

	var b strings.Builder
	b.WriteString(text)
	for i := len(open) - 1; i >= 0; i-- {
		name := open[i]
		if sp := strings.IndexByte(name, ' '); sp > 0 {
			name = name[:sp]
		}
		b.WriteString("</" + name + ">")
	}
	return b.String()
}
