// File: doc.go
// Title: Package Documentation for tagx
// Description: Package tagx measures, pads, crops and renders text that
//              carries inline <name>...</name> markup.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation

// Package tagx handles tagged strings: text with inline markup such as
// "<red>error</red>: <b>file</b> not found", as used for colored terminal
// output.
//
// Tags count as zero width. Len and Width report the visible size, Pad
// pads to a visible width and Crop shortens to a visible width while
// closing every tag it cut through. Tags are not validated; Crop rebuilds
// closing tags from the names it saw opened.
//
// Render turns tagged text into styled terminal output with lipgloss. The
// color names red, green, yellow, blue, magenta, cyan, white and gray and
// the attributes bold, italic, underline and faint are built in; callers can
// add or override styles by name.
//
//	line := "<green>ok</green> " + name
//	fmt.Println(tagx.Render(tagx.Pad(line, 20, stringx.AlignEnd, "."), nil))
package tagx
