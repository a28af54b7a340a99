// File: segments_test.go
// Title: Unit Tests for Delimiter Segments
// Description: Tests for the Segments* and Split* families.
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
	"testing"
)

func TestSegments(t *testing.T) {
	tests := []struct {
		name  string
		fn    func(string, string, int) string
		str   string
		delim string
		count int
		want  string
	}{
		{"first 1", SegmentsFirst, "a/b/c", "/", 1, "a"},
		{"first 2", SegmentsFirst, "a/b/c", "/", 2, "a/b"},
		{"first too many", SegmentsFirst, "a/b/c", "/", 3, "a/b/c"},
		{"first zero", SegmentsFirst, "a/b/c", "/", 0, ""},
		{"first multi-char delimiter", SegmentsFirst, "a::b::c", "::", 2, "a::b"},

		{"last 1", SegmentsLast, "a/b/c", "/", 1, "c"},
		{"last 2", SegmentsLast, "a/b/c", "/", 2, "b/c"},
		{"last extension", SegmentsLast, "file.tar.gz", ".", 1, "gz"},
		{"last no delimiter", SegmentsLast, "abc", "/", 1, "abc"},
		{"last multi-char delimiter", SegmentsLast, "a::b::c", "::", 1, "c"},

		{"strip first 1", SegmentsStripFirst, "a/b/c", "/", 1, "b/c"},
		{"strip first 2", SegmentsStripFirst, "a/b/c", "/", 2, "c"},
		{"strip first too many", SegmentsStripFirst, "a/b/c", "/", 5, "a/b/c"},
		{"strip first leading delimiter", SegmentsStripFirst, "/a/b", "/", 1, "a/b"},

		{"strip last 1", SegmentsStripLast, "a/b/c", "/", 1, "a/b"},
		{"strip last 2", SegmentsStripLast, "a/b/c", "/", 2, "a"},
		{"strip last extension", SegmentsStripLast, "file.tar.gz", ".", 2, "file"},
		{"strip last zero", SegmentsStripLast, "a/b", "/", 0, "a/b"},
		{"strip last empty delimiter", SegmentsStripLast, "a/b", "", 1, "a/b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.fn(tt.str, tt.delim, tt.count); got != tt.want {
				t.Errorf("(%q, %q, %d) = %q; want %q", tt.str, tt.delim, tt.count, got, tt.want)
			}
		})
	}
}

func TestSplitSegments(t *testing.T) {
	tests := []struct {
		name  string
		fn    func(string, string, int) []string
		str   string
		count int
		want  []string
	}{
		{"get first", SplitGetFirst, "a.b.c", 2, []string{"a", "b"}},
		{"get first all", SplitGetFirst, "a.b.c", 5, []string{"a", "b", "c"}},
		{"get first zero", SplitGetFirst, "a.b.c", 0, []string{}},

		{"get last", SplitGetLast, "a.b.c", 2, []string{"b", "c"}},
		{"get last all", SplitGetLast, "a.b.c", 9, []string{"a", "b", "c"}},

		{"strip first", SplitStripFirst, "a.b.c", 1, []string{"b", "c"}},
		{"strip first all", SplitStripFirst, "a.b.c", 3, []string{}},
		{"strip first zero", SplitStripFirst, "a.b.c", 0, []string{"a", "b", "c"}},

		{"strip last", SplitStripLast, "a.b.c", 1, []string{"a", "b"}},
		{"strip last all", SplitStripLast, "a.b.c", 4, []string{}},
		{"strip last no delimiter", SplitStripLast, "abc", 1, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.fn(tt.str, ".", tt.count); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("(%q, %d) = %q; want %q", tt.str, tt.count, got, tt.want)
			}
		})
	}
}

func TestSegmentsMatchSplit(t *testing.T) {
	str := "usr/local/share/doc"
	for count := 1; count <= 3; count++ {
		first := SplitGetFirst(str, "/", count)
		if got := SegmentsFirst(str, "/", count); got != joinAll(first, "/") {
			t.Errorf("SegmentsFirst(%d) = %q; want %q", count, got, joinAll(first, "/"))
		}
		last := SplitGetLast(str, "/", count)
		if got := SegmentsLast(str, "/", count); got != joinAll(last, "/") {
			t.Errorf("SegmentsLast(%d) = %q; want %q", count, got, joinAll(last, "/"))
		}
		kept := SplitStripLast(str, "/", count)
		if got := SegmentsStripLast(str, "/", count); got != joinAll(kept, "/") {
			t.Errorf("SegmentsStripLast(%d) = %q; want %q", count, got, joinAll(kept, "/"))
		}
	}
}

func joinAll(parts []string, delim string) string {
	out := ""
	for _, p := range parts {
		out = Join(out, p, delim)
	}
	return out
}
