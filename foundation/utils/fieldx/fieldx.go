// File: fieldx.go
// Title: Uniform Field Access
// Description: Has, Get, Set, Delete, GetOrCreate and ExtractFields over
//              Records, string-keyed Go maps and Go structs.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation

package fieldx

// Has reports whether target has a field named key
func Has(target any, key string) (bool, error) {
	rec, err := asRecord(target, "has")
	if err != nil {
		return false, err
	}
	return rec.HasField(key), nil
}

// Get returns the field named key, or the first def value (nil if none is
// given) when target has no such field
//
//	v, _ := fieldx.Get(m, "port", 8080)
func Get(target any, key string, def ...any) (any, error) {
	rec, err := asRecord(target, "get")
	if err != nil {
		return nil, err
	}
	if v, ok := rec.Field(key); ok {
		return v, nil
	}
	if len(def) > 0 {
		return def[0], nil
	}
	return nil, nil
}

// Set stores value in the field named key. Maps and Records are changed in
// place; structs must be passed by pointer.
func Set(target any, key string, value any) error {
	rec, err := asRecord(target, "set")
	if err != nil {
		return err
	}
	return rec.SetField(key, value)
}

// Delete removes the field named key. On structs the field is reset to its
// zero value.
func Delete(target any, key string) error {
	rec, err := asRecord(target, "delete")
	if err != nil {
		return err
	}
	return rec.DeleteField(key)
}

// GetOrCreate returns the field named key, storing def first when it is
// absent. With createRecord set a new record is stored instead of def, and a
// field holding nil is replaced too. The record matches the slot type: an
// empty Map for untyped slots, a new value for typed struct or map slots.
// The returned value shares storage with target whenever it is a Map, a Go
// map or a pointer.
func GetOrCreate(target any, key string, def any, createRecord bool) (any, error) {
	rec, err := asRecord(target, "get_or_create")
	if err != nil {
		return nil, err
	}
	v, ok := rec.Field(key)
	if ok && !(createRecord && isNil(v)) {
		return v, nil
	}

	if createRecord {
		return create(rec, key, false)
	}
	if err := rec.SetField(key, def); err != nil {
		return nil, err
	}
	v, _ = rec.Field(key)
	return v, nil
}

// ExtractFields copies the fields of target named in keys into a new Map,
// in the order of keys. Absent keys are left out. A nil target yields an
// empty Map.
//
//	fieldx.ExtractFields(fieldx.MapOf("a", 1, "b", 2, "c", 3), []string{"a", "c"})
//	// {"a": 1, "c": 3}
func ExtractFields(target any, keys []string) (*Map, error) {
	out := NewMap()
	if isNil(target) {
		return out, nil
	}

	rec, err := asRecord(target, "extract_fields")
	if err != nil {
		return nil, err
	}
	for _, k := range keys {
		if out.Has(k) {
			continue
		}
		if v, ok := rec.Field(k); ok {
			out.Set(k, v)
		}
	}
	return out, nil
}

// Fields returns the field names of target: insertion order for Maps, field
// order for structs and sorted keys for Go maps
func Fields(target any) ([]string, error) {
	rec, err := asRecord(target, "fields")
	if err != nil {
		return nil, err
	}
	return rec.FieldNames(), nil
}

// IsRecord reports whether v can be used as a target
func IsRecord(v any) bool {
	_, err := asRecord(v, "is_record")
	return err == nil
}
