// File: pad.go
// Title: Multibyte Padding
// Description: Rune-counting padding with a multi-character pad string on
//              either or both sides.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation

package stringx

import (
	"strings"
	"unicode/utf8"

	"github.com/msto63/fnkit/foundation/core/errors"
)

// Align selects the side or sides of a string that receive padding
type Align int

const (
	// AlignEnd pads after the text
	AlignEnd Align = iota
	// AlignStart pads before the text
	AlignStart
	// AlignBoth splits the padding, the extra rune going after the text
	AlignBoth
)

// String returns the name used for the alignment in flags and config files
func (a Align) String() string {
	switch a {
	case AlignStart:
		return "start"
	case AlignBoth:
		return "both"
	default:
		return "end"
	}
}

// ParseAlign converts "start", "end" or "both" (also "left", "right",
// "center") into an Align
func ParseAlign(s string) (Align, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "end", "right", "":
		return AlignEnd, nil
	case "start", "left":
		return AlignStart, nil
	case "both", "center":
		return AlignBoth, nil
	default:
		return AlignEnd, errors.InvalidInput(errors.ModuleStringx, "parse_align", s, "start, end or both")
	}
}

// padRunes returns the first n runes of pad repeated as often as needed
func padRunes(pad string, padLen, n int) string {
	if n <= 0 {
		return ""
	}
	return headRunes(strings.Repeat(pad, (n+padLen-1)/padLen), n)
}

// padTail returns the last n runes of pad repeated as often as needed, so a
// partial repetition is cut from the front
func padTail(pad string, padLen, n int) string {
	if n <= 0 {
		return ""
	}
	return tailRunes(strings.Repeat(pad, (n+padLen-1)/padLen), n)
}

// PadString pads str with pad until it is length runes long. The pad string
// is repeated. Padding on one side drops the runes of a partial repetition
// from its front, padding on both sides cuts each half at its far end. str
// is returned unchanged when it is already long enough or pad is empty.
//
//	PadString("7", 3, "0", AlignStart)  // "007"
//	PadString("ab", 5, "-=", AlignEnd)  // "ab=-="
//	PadString("ab", 7, "-=", AlignBoth) // "-=ab-=-"
func PadString(str string, length int, pad string, align Align) string {
	strLen := utf8.RuneCountInString(str)
	padLen := utf8.RuneCountInString(pad)
	if padLen == 0 || length <= strLen {
		return str
	}

	diff := length - strLen
	switch align {
	case AlignStart:
		return padTail(pad, padLen, diff) + str
	case AlignBoth:
		left := diff / 2
		return padRunes(pad, padLen, left) + str + padRunes(pad, padLen, diff-left)
	default:
		return str + padTail(pad, padLen, diff)
	}
}
