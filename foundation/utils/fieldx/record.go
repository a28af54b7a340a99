// File: record.go
// Title: Record Capability and Adapters
// Description: The Record interface plus its adapters for Go structs and
//              string-keyed Go maps, resolved through reflection.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation

package fieldx

import (
	"reflect"
	"sort"
	"strings"
	"sync"

	mdwerrors "github.com/msto63/fnkit/foundation/core/errors"
)

// Record is a value with named fields that can be read, written and removed
type Record interface {
	HasField(name string) bool
	Field(name string) (any, bool)
	SetField(name string, value any) error
	DeleteField(name string) error
	FieldNames() []string
}

// Struct exposes the exported fields of a Go struct as a Record. A field is
// named by its `field` tag, then its `json` tag, then its Go name. Fields
// tagged "-" are hidden.
//
// Go structs cannot gain or lose fields: setting an unknown field fails and
// deleting a field resets it to its zero value. A Struct built from a struct
// value instead of a pointer is read only.
type Struct struct {
	v      reflect.Value
	fields []structField
	index  map[string]int
}

type structField struct {
	name string
	path []int
}

type structLayout struct {
	fields []structField
	index  map[string]int
}

var layouts sync.Map // reflect.Type -> *structLayout

// NewStruct wraps v, which must be a struct or a non-nil pointer to one
func NewStruct(v any) (*Struct, error) {
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer && !rv.IsNil() {
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return nil, mdwerrors.FieldxTypeKind("new_struct", v)
	}
	return newStruct(rv), nil
}

func newStruct(rv reflect.Value) *Struct {
	layout := layoutOf(rv.Type())
	return &Struct{v: rv, fields: layout.fields, index: layout.index}
}

func layoutOf(t reflect.Type) *structLayout {
	if cached, ok := layouts.Load(t); ok {
		return cached.(*structLayout)
	}

	layout := &structLayout{index: make(map[string]int)}
	for _, f := range reflect.VisibleFields(t) {
		if !f.IsExported() || (f.Anonymous && indirect(f.Type).Kind() == reflect.Struct) {
			continue
		}
		name := fieldName(f)
		if name == "" {
			continue
		}
		if _, dup := layout.index[name]; dup {
			continue
		}
		layout.index[name] = len(layout.fields)
		layout.fields = append(layout.fields, structField{name: name, path: f.Index})
	}

	actual, _ := layouts.LoadOrStore(t, layout)
	return actual.(*structLayout)
}

func fieldName(f reflect.StructField) string {
	for _, key := range []string{"field", "json"} {
		tag, ok := f.Tag.Lookup(key)
		if !ok {
			continue
		}
		name, _, _ := strings.Cut(tag, ",")
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return f.Name
}

func indirect(t reflect.Type) reflect.Type {
	if t.Kind() == reflect.Pointer {
		return t.Elem()
	}
	return t
}

// slot returns the field value, walking embedded pointers. With alloc set,
// nil embedded pointers are allocated on the way.
func (s *Struct) slot(name string, alloc bool) (reflect.Value, bool) {
	i, ok := s.index[name]
	if !ok {
		return reflect.Value{}, false
	}

	v := s.v
	for depth, x := range s.fields[i].path {
		if depth > 0 && v.Kind() == reflect.Pointer {
			if v.IsNil() {
				if !alloc || !v.CanSet() {
					return reflect.Value{}, false
				}
				v.Set(reflect.New(v.Type().Elem()))
			}
			v = v.Elem()
		}
		v = v.Field(x)
	}
	return v, true
}

// HasField implements Record
func (s *Struct) HasField(name string) bool {
	_, ok := s.index[name]
	return ok
}

// Field implements Record. A field behind a nil embedded pointer reads as nil.
func (s *Struct) Field(name string) (any, bool) {
	if !s.HasField(name) {
		return nil, false
	}
	v, ok := s.slot(name, false)
	if !ok {
		return nil, true
	}
	return v.Interface(), true
}

// SetField implements Record. The value must be assignable to the field, or
// convertible within the numeric or string kinds.
func (s *Struct) SetField(name string, value any) error {
	if !s.v.CanSet() {
		return mdwerrors.FieldxTypeKind("set", s.v.Interface())
	}
	if !s.HasField(name) {
		return mdwerrors.NotFound(mdwerrors.ModuleFieldx, "set", name)
	}
	v, _ := s.slot(name, true)
	return assign(v, value, "set")
}

// DeleteField implements Record by resetting the field to its zero value.
// Unknown fields are ignored.
func (s *Struct) DeleteField(name string) error {
	if !s.v.CanSet() {
		return mdwerrors.FieldxTypeKind("delete", s.v.Interface())
	}
	v, ok := s.slot(name, false)
	if !ok {
		return nil
	}
	v.Set(reflect.Zero(v.Type()))
	return nil
}

// FieldNames implements Record
func (s *Struct) FieldNames() []string {
	names := make([]string, len(s.fields))
	for i, f := range s.fields {
		names[i] = f.name
	}
	return names
}

// Value returns the wrapped struct
func (s *Struct) Value() any {
	return s.v.Interface()
}

// addr returns a pointer to a struct-valued field so that nested writes
// reach the parent
func (s *Struct) addr(name string) (any, bool) {
	v, ok := s.slot(name, false)
	if !ok || v.Kind() != reflect.Struct || !v.CanAddr() {
		return nil, false
	}
	return v.Addr().Interface(), true
}

// alloc stores a fresh container in a field and returns it
func (s *Struct) alloc(name string, assoc bool) (any, error) {
	if !s.v.CanSet() {
		return nil, mdwerrors.FieldxTypeKind("set", s.v.Interface())
	}
	if !s.HasField(name) {
		return nil, mdwerrors.NotFound(mdwerrors.ModuleFieldx, "set", name)
	}
	v, _ := s.slot(name, true)
	fresh, ok := container(v.Type(), assoc)
	if !ok {
		return nil, mdwerrors.FieldxTypeKind("set", v.Interface())
	}
	v.Set(fresh)
	return fresh.Interface(), nil
}

// mapRecord adapts a Go map with string keys
type mapRecord struct {
	v reflect.Value
}

func (m mapRecord) key(name string) reflect.Value {
	return reflect.ValueOf(name).Convert(m.v.Type().Key())
}

func (m mapRecord) HasField(name string) bool {
	return m.v.MapIndex(m.key(name)).IsValid()
}

func (m mapRecord) Field(name string) (any, bool) {
	v := m.v.MapIndex(m.key(name))
	if !v.IsValid() {
		return nil, false
	}
	return v.Interface(), true
}

func (m mapRecord) SetField(name string, value any) error {
	if m.v.IsNil() {
		return mdwerrors.FieldxTypeKind("set", m.v.Interface())
	}
	elem := reflect.New(m.v.Type().Elem()).Elem()
	if err := assign(elem, value, "set"); err != nil {
		return err
	}
	m.v.SetMapIndex(m.key(name), elem)
	return nil
}

func (m mapRecord) DeleteField(name string) error {
	if m.v.IsNil() {
		return nil
	}
	m.v.SetMapIndex(m.key(name), reflect.Value{})
	return nil
}

func (m mapRecord) FieldNames() []string {
	names := make([]string, 0, m.v.Len())
	for _, k := range m.v.MapKeys() {
		names = append(names, k.String())
	}
	sort.Strings(names)
	return names
}

func (m mapRecord) alloc(name string, assoc bool) (any, error) {
	if m.v.IsNil() {
		return nil, mdwerrors.FieldxTypeKind("set", m.v.Interface())
	}
	fresh, ok := container(m.v.Type().Elem(), assoc)
	if !ok {
		return nil, mdwerrors.FieldxTypeKind("set", reflect.Zero(m.v.Type().Elem()).Interface())
	}
	m.v.SetMapIndex(m.key(name), fresh)
	return fresh.Interface(), nil
}

// allocator is implemented by records whose slots have a static type, so a
// synthesized container must match that type
type allocator interface {
	alloc(name string, assoc bool) (any, error)
}

// asRecord resolves target to a Record or fails with TYPE_KIND
func asRecord(target any, operation string) (Record, error) {
	if isNil(target) {
		return nil, mdwerrors.FieldxTypeKind(operation, target)
	}
	if rec, ok := target.(Record); ok {
		return rec, nil
	}

	rv := reflect.ValueOf(target)
	switch rv.Kind() {
	case reflect.Map:
		if rv.Type().Key().Kind() == reflect.String {
			return mapRecord{v: rv}, nil
		}
	case reflect.Pointer:
		if rv.Elem().Kind() == reflect.Struct {
			return newStruct(rv.Elem()), nil
		}
	case reflect.Struct:
		return newStruct(rv), nil
	}
	return nil, mdwerrors.FieldxTypeKind(operation, target)
}

// newContainer is the container synthesized for a missing path segment
func newContainer(assoc bool) any {
	if assoc {
		return map[string]any{}
	}
	return NewMap()
}

// container builds an empty container of type t: a fresh Map or plain map
// for interface slots, a new struct for pointer-to-struct slots and a new map
// for string-keyed map slots
func container(t reflect.Type, assoc bool) (reflect.Value, bool) {
	switch {
	case t.Kind() == reflect.Interface:
		fresh := reflect.ValueOf(newContainer(assoc))
		if !fresh.Type().AssignableTo(t) {
			return reflect.Value{}, false
		}
		return fresh, true
	case t.Kind() == reflect.Pointer && t.Elem().Kind() == reflect.Struct:
		return reflect.New(t.Elem()), true
	case t.Kind() == reflect.Map && t.Key().Kind() == reflect.String:
		return reflect.MakeMap(t), true
	}
	return reflect.Value{}, false
}

// assign stores value in dst. nil stores the zero value.
func assign(dst reflect.Value, value any, operation string) error {
	if value == nil {
		dst.Set(reflect.Zero(dst.Type()))
		return nil
	}

	src := reflect.ValueOf(value)
	switch {
	case src.Type().AssignableTo(dst.Type()):
		dst.Set(src)
	case sameFamily(src.Kind(), dst.Kind()) && src.Type().ConvertibleTo(dst.Type()):
		dst.Set(src.Convert(dst.Type()))
	default:
		return mdwerrors.InvalidInput(mdwerrors.ModuleFieldx, operation, value, dst.Type().String())
	}
	return nil
}

func sameFamily(a, b reflect.Kind) bool {
	return family(a) != "" && family(a) == family(b)
}

func family(k reflect.Kind) string {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return "number"
	case reflect.String:
		return "string"
	}
	return ""
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Interface, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}
