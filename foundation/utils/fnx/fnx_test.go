// File: fnx_test.go
// Title: Function Adapter Tests
// Description: Tests for Bind, BindFunc, Memoize, Constant, Identity and the
//              named function registry.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial test implementation

package fnx

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	mdwerror "github.com/msto63/fnkit/foundation/core/error"
	mdwerrors "github.com/msto63/fnkit/foundation/core/errors"
)

func collect(args ...any) any {
	return args
}

func TestBind(t *testing.T) {
	tests := []struct {
		name    string
		append  []any
		prepend []any
		call    []any
		want    []any
	}{
		{"forward", nil, nil, []any{1, 2}, []any{1, 2}},
		{"append", []any{"z"}, nil, []any{1}, []any{1, "z"}},
		{"prepend", nil, []any{"a"}, []any{1}, []any{"a", 1}},
		{"both", []any{"z"}, []any{"a", "b"}, []any{1, 2}, []any{"a", "b", 1, 2, "z"}},
		{"no call args", []any{"z"}, []any{"a"}, nil, []any{"a", "z"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Bind(collect, tt.append, tt.prepend)(tt.call...)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Bind() call = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBindCopiesBoundArgs(t *testing.T) {
	pre := []any{"a"}
	f := Bind(collect, nil, pre)
	pre[0] = "changed"

	if got := f(1); !reflect.DeepEqual(got, []any{"a", 1}) {
		t.Errorf("bound args changed after Bind: %v", got)
	}
}

func TestBindFunc(t *testing.T) {
	tests := []struct {
		name    string
		fn      any
		append  []any
		prepend []any
		call    []any
		want    any
	}{
		{
			name: "typed func",
			fn:   strings.Repeat,
			call: []any{"ab", 3},
			want: "ababab",
		},
		{
			name:    "prepend to typed func",
			fn:      strings.HasPrefix,
			prepend: []any{"foobar"},
			call:    []any{"foo"},
			want:    true,
		},
		{
			name: "numeric conversion",
			fn:   func(a int64, b float64) float64 { return float64(a) + b },
			call: []any{2, float32(0.5)},
			want: 2.5,
		},
		{
			name: "nil becomes zero value",
			fn:   func(s []string) int { return len(s) },
			call: []any{nil},
			want: 0,
		},
		{
			name:   "variadic",
			fn:     func(sep string, parts ...string) string { return strings.Join(parts, sep) },
			append: []any{"c"},
			call:   []any{"-", "a", "b"},
			want:   "a-b-c",
		},
		{
			name: "no results",
			fn:   func() {},
			want: nil,
		},
		{
			name: "multiple results",
			fn:   func() (int, string) { return 1, "x" },
			want: []any{1, "x"},
		},
		{
			name: "dynamic func",
			fn:   collect,
			call: []any{1},
			want: []any{1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := BindFunc(tt.fn, tt.append, tt.prepend)
			if err != nil {
				t.Fatalf("BindFunc() error = %v", err)
			}
			if got := f(tt.call...); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("call = %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestBindFuncRejectsNonFunctions(t *testing.T) {
	var nilFunc func()

	for _, fn := range []any{nil, 42, "strings.Repeat", nilFunc} {
		t.Run(fmt.Sprintf("%T", fn), func(t *testing.T) {
			_, err := BindFunc(fn, nil, nil)
			if !mdwerror.HasCode(err, mdwerror.Code(mdwerrors.CodeFnxBadSignature)) {
				t.Errorf("BindFunc(%v) error = %v, want FNX_BAD_SIGNATURE", fn, err)
			}
		})
	}
}

func TestBindFuncPanicsOnBadArguments(t *testing.T) {
	f, err := BindFunc(strings.ToUpper, nil, nil)
	if err != nil {
		t.Fatalf("BindFunc() error = %v", err)
	}

	tests := []struct {
		name string
		args []any
	}{
		{"too few", nil},
		{"too many", []any{"a", "b"}},
		{"wrong type", []any{42}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				p := recover()
				err, ok := p.(*mdwerror.Error)
				if !ok || err.Code() != mdwerror.Code(mdwerrors.CodeFnxBadSignature) {
					t.Errorf("panic = %v, want FNX_BAD_SIGNATURE error", p)
				}
			}()
			f(tt.args...)
		})
	}
}

func TestMemoize(t *testing.T) {
	calls := 0
	f := Memoize(func() int {
		calls++
		return 0
	})

	for i := 0; i < 3; i++ {
		if got := f(); got != 0 {
			t.Errorf("call %d = %d, want 0", i, got)
		}
	}
	if calls != 1 {
		t.Errorf("underlying function called %d times, want 1", calls)
	}
}

func TestMemoizeConcurrent(t *testing.T) {
	var calls int32
	f := Memoize(func() string {
		atomic.AddInt32(&calls, 1)
		return "value"
	})

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if got := f(); got != "value" {
				t.Errorf("f() = %q", got)
			}
		}()
	}
	wg.Wait()

	if calls != 1 {
		t.Errorf("underlying function called %d times, want 1", calls)
	}
}

func TestConstantAndIdentity(t *testing.T) {
	c := Constant([]int{1, 2})
	if got := c(); !reflect.DeepEqual(got, []int{1, 2}) {
		t.Errorf("Constant() = %v", got)
	}

	id := Identity[string]()
	if got := id("same"); got != "same" {
		t.Errorf("Identity() = %q", got)
	}
}

func TestRegistry(t *testing.T) {
	r := NewRegistry()

	if err := r.Register("join", func(args ...any) any { return fmt.Sprint(args...) }); err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if err := r.RegisterFunc("upper", strings.ToUpper); err != nil {
		t.Fatalf("RegisterFunc() error = %v", err)
	}
	if err := r.RegisterFunc("fails", func() (int, error) { return 0, errors.New("nope") }); err != nil {
		t.Fatalf("RegisterFunc() error = %v", err)
	}

	if got := r.Names(); !reflect.DeepEqual(got, []string{"fails", "join", "upper"}) {
		t.Errorf("Names() = %v", got)
	}

	t.Run("call", func(t *testing.T) {
		got, err := r.Call("upper", "abc")
		if err != nil || got != "ABC" {
			t.Errorf("Call(upper) = %v, %v", got, err)
		}
	})

	t.Run("unknown", func(t *testing.T) {
		_, err := r.Call("missing")
		if !mdwerror.HasCode(err, mdwerror.Code(mdwerrors.CodeFnxUnknownFunction)) {
			t.Errorf("Call(missing) error = %v", err)
		}
	})

	t.Run("bad arguments", func(t *testing.T) {
		_, err := r.Call("upper", 1, 2)
		if !mdwerror.HasCode(err, mdwerror.Code(mdwerrors.CodeFnxBadSignature)) {
			t.Errorf("Call(upper, 1, 2) error = %v", err)
		}
	})

	t.Run("error result", func(t *testing.T) {
		_, err := r.Call("fails")
		if err == nil || err.Error() != "nope" {
			t.Errorf("Call(fails) error = %v, want nope", err)
		}
	})

	t.Run("invalid registration", func(t *testing.T) {
		if err := r.Register("", collect); err == nil {
			t.Error("Register with empty name should fail")
		}
		if err := r.Register("nil", nil); err == nil {
			t.Error("Register with nil func should fail")
		}
	})
}
