// File: width.go
// Title: Terminal Column Width
// Description: Display width of tagged strings in terminal cells, counting
//              east asian wide runes as two columns.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation

package tagx

import (
	"unicode/utf8"

	"github.com/mattn/go-runewidth"

	"github.com/msto63/fnkit/foundation/utils/stringx"
)

// Width returns the number of terminal columns the visible text of s takes
func Width(s string) int {
	return runewidth.StringWidth(Strip(s))
}

// PadColumns pads s with pad until its visible text fills width terminal
// columns. Pad runes are assumed to be one column wide.
func PadColumns(s string, width int, align stringx.Align, pad string) string {
	return stringx.PadString(s, width+(utf8.RuneCountInString(s)-Width(s)), pad, align)
}
