// File: path.go
// Title: Dotted Path Traversal
// Description: Read, write and delete nested fields addressed by dotted
//              paths such as "server.tls.cert". Writes create the missing
//              containers along the path.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation

package fieldx

import (
	"strings"

	mdwerrors "github.com/msto63/fnkit/foundation/core/errors"
)

// SplitPath splits a dotted path into its keys. The empty path has no keys.
func SplitPath(path string) []string {
	if path == "" {
		return nil
	}
	return strings.Split(path, ".")
}

// GetAt returns the value at path, or nil as soon as a value on the way is
// nil, absent or not a record. The empty path returns target.
//
//	fieldx.GetAt(doc, "server.port")
func GetAt(target any, path string) any {
	cur := target
	for _, key := range SplitPath(path) {
		v, err := Get(cur, key)
		if err != nil || isNil(v) {
			return nil
		}
		cur = v
	}
	return cur
}

// Ref addresses a slot by the root it lives in and the keys leading to it
type Ref struct {
	Root  any
	Keys  []string
	Assoc bool
}

// Path returns the dotted path of the slot
func (r Ref) Path() string {
	return strings.Join(r.Keys, ".")
}

// Get returns the current value of the slot, nil when it is absent
func (r Ref) Get() any {
	cur := r.Root
	for _, key := range r.Keys {
		rec, err := asRecord(cur, "ref_get")
		if err != nil {
			return nil
		}
		v, ok := child(rec, key)
		if !ok || isNil(v) {
			return nil
		}
		cur = v
	}
	return cur
}

// Set stores v in the slot, creating missing containers on the way
func (r Ref) Set(v any) error {
	return upsert(r.Root, r.Keys, v, r.Assoc, "ref_set")
}

// GetRefAt returns a Ref to the slot at path. Missing or nil containers
// before the last key are created: Maps by default, plain maps with assoc
// set. The last key itself is not created.
func GetRefAt(target any, path string, assoc bool) (Ref, error) {
	keys := SplitPath(path)
	ref := Ref{Root: target, Keys: keys, Assoc: assoc}
	if len(keys) == 0 {
		return ref, nil
	}

	parent, err := walk(target, keys[:len(keys)-1], assoc, "get_ref_at")
	if err != nil {
		return Ref{}, err
	}
	if _, err := asRecord(parent, "get_ref_at"); err != nil {
		return Ref{}, err
	}
	return ref, nil
}

// SetAt stores value at path, creating missing containers on the way the
// same way GetRefAt does. The empty path is rejected because the root
// cannot be replaced.
//
//	fieldx.SetAt(doc, "server.tls.cert", "/etc/cert.pem", false)
func SetAt(target any, path string, value any, assoc bool) error {
	return upsert(target, SplitPath(path), value, assoc, "set_at")
}

// DeleteAt removes the field at path. The parent must resolve to a record:
// a missing, nil or scalar parent fails with TYPE_KIND. Missing containers
// are never created.
func DeleteAt(target any, path string) error {
	keys := SplitPath(path)
	if len(keys) == 0 {
		return mdwerrors.FieldxEmptyPath("delete_at")
	}

	cur := target
	for _, key := range keys[:len(keys)-1] {
		rec, err := asRecord(cur, "delete_at")
		if err != nil {
			return err
		}
		v, ok := child(rec, key)
		if !ok || isNil(v) {
			return mdwerrors.FieldxTypeKind("delete_at", nil)
		}
		cur = v
	}

	rec, err := asRecord(cur, "delete_at")
	if err != nil {
		return err
	}
	return rec.DeleteField(keys[len(keys)-1])
}

func upsert(root any, keys []string, value any, assoc bool, operation string) error {
	if len(keys) == 0 {
		return mdwerrors.FieldxEmptyPath(operation)
	}

	parent, err := walk(root, keys[:len(keys)-1], assoc, operation)
	if err != nil {
		return err
	}
	rec, err := asRecord(parent, operation)
	if err != nil {
		return err
	}
	return rec.SetField(keys[len(keys)-1], value)
}

// walk descends along keys, creating every missing or nil container
func walk(root any, keys []string, assoc bool, operation string) (any, error) {
	cur := root
	for _, key := range keys {
		rec, err := asRecord(cur, operation)
		if err != nil {
			return nil, err
		}

		v, ok := child(rec, key)
		if ok && !isNil(v) {
			cur = v
			continue
		}

		if cur, err = create(rec, key, assoc); err != nil {
			return nil, err
		}
	}
	return cur, nil
}

func create(rec Record, key string, assoc bool) (any, error) {
	if a, ok := rec.(allocator); ok {
		return a.alloc(key, assoc)
	}
	fresh := newContainer(assoc)
	if err := rec.SetField(key, fresh); err != nil {
		return nil, err
	}
	return fresh, nil
}

// child returns the value stored under key. Struct-valued fields are
// returned as pointers so that writes through them reach the parent.
func child(rec Record, key string) (any, bool) {
	if s, ok := rec.(*Struct); ok {
		if p, ok := s.addr(key); ok {
			return p, true
		}
	}
	return rec.Field(key)
}
