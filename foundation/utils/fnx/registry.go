// File: registry.go
// Title: Named Function Registry
// Description: A concurrency safe table of named Funcs that callers select
//              and invoke at runtime.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation

package fnx

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	mdwerror "github.com/msto63/fnkit/foundation/core/error"
	mdwerrors "github.com/msto63/fnkit/foundation/core/errors"
)

// Registry maps names to functions
type Registry struct {
	mu    sync.RWMutex
	funcs map[string]Func
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{funcs: make(map[string]Func)}
}

// Register stores fn under name, replacing any previous entry
func (r *Registry) Register(name string, fn Func) error {
	if name == "" {
		return mdwerrors.InvalidInput(mdwerrors.ModuleFnx, "register", name, "non-empty name")
	}
	if fn == nil {
		return mdwerrors.FnxBadSignature("register", fn, "nil function")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.funcs[name] = fn
	return nil
}

// RegisterFunc stores an arbitrary Go func under name, see BindFunc
func (r *Registry) RegisterFunc(name string, fn any) error {
	f, err := BindFunc(fn, nil, nil)
	if err != nil {
		return err
	}
	return r.Register(name, f)
}

// Lookup returns the function registered under name
func (r *Registry) Lookup(name string) (Func, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	fn, ok := r.funcs[name]
	return fn, ok
}

// Names returns the registered names in lexical order
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.funcs))
	for name := range r.funcs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Call invokes the function registered under name. A missing name yields a
// FNX_UNKNOWN_FUNCTION error. Panics raised by the function are returned as
// errors. A non-nil error result, or a non-nil error as the last of several
// results, becomes the error result.
func (r *Registry) Call(name string, args ...any) (result any, err error) {
	fn, ok := r.Lookup(name)
	if !ok {
		return nil, mdwerrors.FnxUnknownFunction(name)
	}

	defer func() {
		if p := recover(); p != nil {
			err = panicError(name, p)
			result = nil
		}
	}()

	result = fn(args...)
	switch v := result.(type) {
	case error:
		return nil, v
	case []any:
		if n := len(v); n > 0 {
			if e, ok := v[n-1].(error); ok {
				return nil, e
			}
		}
	}
	return result, nil
}

func panicError(name string, p any) error {
	var mdwErr *mdwerror.Error
	if e, ok := p.(error); ok {
		if errors.As(e, &mdwErr) {
			return mdwErr
		}
		return mdwerrors.OperationFailed(mdwerrors.ModuleFnx, "call", e).WithDetail("name", name)
	}
	return mdwerrors.OperationFailed(mdwerrors.ModuleFnx, "call", fmt.Errorf("panic: %v", p)).
		WithDetail("name", name)
}
