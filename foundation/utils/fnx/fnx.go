// File: fnx.go
// Title: Function Adapters
// Description: Argument binding, reflective binding of arbitrary funcs,
//              one-shot memoization, constants and identity.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation

package fnx

import (
	"fmt"
	"reflect"
	"sync"

	mdwerrors "github.com/msto63/fnkit/foundation/core/errors"
)

// Func is a function taking and returning dynamic values
type Func func(args ...any) any

// Bind returns a Func that calls fn with prependArgs, then the call
// arguments, then appendArgs. With no bound arguments the call arguments are
// forwarded unchanged.
func Bind(fn Func, appendArgs, prependArgs []any) Func {
	if len(appendArgs) == 0 && len(prependArgs) == 0 {
		return func(args ...any) any {
			return fn(args...)
		}
	}

	pre := append([]any(nil), prependArgs...)
	post := append([]any(nil), appendArgs...)

	return func(args ...any) any {
		all := make([]any, 0, len(pre)+len(args)+len(post))
		all = append(all, pre...)
		all = append(all, args...)
		all = append(all, post...)
		return fn(all...)
	}
}

// BindFunc is Bind for an arbitrary Go func. fn is called through
// reflection: nil arguments become zero values and arguments are converted
// to the parameter type where Go allows it. A func without results yields
// nil, a single result is returned as is and several results come back as a
// []any.
//
// The returned Func panics with a *mdwerror.Error (code FNX_BAD_SIGNATURE)
// when called with arguments fn cannot accept. Registry.Call turns that
// panic into an error.
func BindFunc(fn any, appendArgs, prependArgs []any) (Func, error) {
	switch f := fn.(type) {
	case nil:
		return nil, mdwerrors.FnxBadSignature("bind", fn, "nil function")
	case Func:
		return Bind(f, appendArgs, prependArgs), nil
	case func(...any) any:
		return Bind(f, appendArgs, prependArgs), nil
	}

	v := reflect.ValueOf(fn)
	if v.Kind() != reflect.Func {
		return nil, mdwerrors.FnxBadSignature("bind", fn, "not a function")
	}
	if v.IsNil() {
		return nil, mdwerrors.FnxBadSignature("bind", fn, "nil function")
	}

	return Bind(reflectFunc(fn, v), appendArgs, prependArgs), nil
}

func reflectFunc(fn any, v reflect.Value) Func {
	t := v.Type()

	return func(args ...any) any {
		in, reason := callArgs(t, args)
		if reason != "" {
			panic(mdwerrors.FnxBadSignature("call", fn, reason))
		}

		out := v.Call(in)
		switch len(out) {
		case 0:
			return nil
		case 1:
			return out[0].Interface()
		default:
			results := make([]any, len(out))
			for i, o := range out {
				results[i] = o.Interface()
			}
			return results
		}
	}
}

func callArgs(t reflect.Type, args []any) ([]reflect.Value, string) {
	fixed := t.NumIn()
	if t.IsVariadic() {
		fixed--
		if len(args) < fixed {
			return nil, fmt.Sprintf("want at least %d arguments, got %d", fixed, len(args))
		}
	} else if len(args) != fixed {
		return nil, fmt.Sprintf("want %d arguments, got %d", fixed, len(args))
	}

	in := make([]reflect.Value, len(args))
	for i, arg := range args {
		var pt reflect.Type
		if i < fixed {
			pt = t.In(i)
		} else {
			pt = t.In(fixed).Elem()
		}

		val, ok := convertArg(arg, pt)
		if !ok {
			return nil, fmt.Sprintf("argument %d: cannot use %T as %s", i, arg, pt)
		}
		in[i] = val
	}
	return in, ""
}

func convertArg(arg any, pt reflect.Type) (reflect.Value, bool) {
	if arg == nil {
		return reflect.Zero(pt), true
	}

	av := reflect.ValueOf(arg)
	switch {
	case av.Type().AssignableTo(pt):
		return av, true
	case av.Type().ConvertibleTo(pt) && sameFamily(av.Kind(), pt.Kind()):
		return av.Convert(pt), true
	default:
		return reflect.Value{}, false
	}
}

// sameFamily rejects conversions Go allows but callers never mean, such as
// int to string.
func sameFamily(a, b reflect.Kind) bool {
	return kindFamily(a) == kindFamily(b)
}

func kindFamily(k reflect.Kind) int {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return 1
	case reflect.String:
		return 2
	default:
		return 3 + int(k)
	}
}

// Memoize returns a function that calls fn on first use and returns the
// cached result afterwards. Zero results are cached as well.
func Memoize[T any](fn func() T) func() T {
	var (
		once   sync.Once
		result T
	)
	return func() T {
		once.Do(func() {
			result = fn()
		})
		return result
	}
}

// Constant returns a function that always returns v
func Constant[T any](v T) func() T {
	return func() T {
		return v
	}
}

// Identity returns a function that returns its argument
func Identity[T any]() func(T) T {
	return func(v T) T {
		return v
	}
}
