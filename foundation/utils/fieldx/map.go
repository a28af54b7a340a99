// File: map.go
// Title: Ordered String-Keyed Map
// Description: Map keeps string keys in insertion order and serves as the
//              default record type for documents and synthesized containers.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation

package fieldx

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"
)

// Map is a string-keyed map that remembers the order in which keys were
// first set. Setting an existing key keeps its position. The zero value is
// an empty map ready to use.
type Map struct {
	keys   []string
	values map[string]any
}

// NewMap returns an empty Map
func NewMap() *Map {
	return &Map{values: make(map[string]any)}
}

// MapOf builds a Map from alternating keys and values. It panics when the
// number of arguments is odd or a key is not a string.
//
//	m := fieldx.MapOf("a", 1, "b", 2)
func MapOf(kv ...any) *Map {
	if len(kv)%2 != 0 {
		panic("fieldx.MapOf: odd number of arguments")
	}
	m := NewMap()
	for i := 0; i < len(kv); i += 2 {
		key, ok := kv[i].(string)
		if !ok {
			panic(fmt.Sprintf("fieldx.MapOf: key %v is %T, not string", kv[i], kv[i]))
		}
		m.Set(key, kv[i+1])
	}
	return m
}

// Len returns the number of entries
func (m *Map) Len() int {
	if m == nil {
		return 0
	}
	return len(m.keys)
}

// Has reports whether key is present
func (m *Map) Has(key string) bool {
	if m == nil {
		return false
	}
	_, ok := m.values[key]
	return ok
}

// Get returns the value stored under key
func (m *Map) Get(key string) (any, bool) {
	if m == nil {
		return nil, false
	}
	v, ok := m.values[key]
	return v, ok
}

// Set stores value under key. New keys are appended to the key order.
func (m *Map) Set(key string, value any) {
	if m.values == nil {
		m.values = make(map[string]any)
	}
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
}

// Delete removes key. Missing keys are ignored.
func (m *Map) Delete(key string) {
	if !m.Has(key) {
		return
	}
	delete(m.values, key)
	for i, k := range m.keys {
		if k == key {
			m.keys = append(m.keys[:i], m.keys[i+1:]...)
			break
		}
	}
}

// Keys returns the keys in insertion order
func (m *Map) Keys() []string {
	keys := make([]string, m.Len())
	if m != nil {
		copy(keys, m.keys)
	}
	return keys
}

// Values returns the values in key order
func (m *Map) Values() []any {
	values := make([]any, 0, m.Len())
	for _, k := range m.Keys() {
		values = append(values, m.values[k])
	}
	return values
}

// Range calls fn for every entry in key order until fn returns false
func (m *Map) Range(fn func(key string, value any) bool) {
	for _, k := range m.Keys() {
		if !fn(k, m.values[k]) {
			return
		}
	}
}

// Clone returns a copy of m. Nested Maps and []any values are copied as
// well, everything else is shared.
func (m *Map) Clone() *Map {
	if m == nil {
		return nil
	}
	out := &Map{
		keys:   append([]string(nil), m.keys...),
		values: make(map[string]any, len(m.values)),
	}
	for k, v := range m.values {
		out.values[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch t := v.(type) {
	case *Map:
		return t.Clone()
	case []any:
		list := make([]any, len(t))
		for i, item := range t {
			list[i] = cloneValue(item)
		}
		return list
	default:
		return v
	}
}

// ToStdMap converts m into a plain map, recursing into nested Maps and
// []any values. Key order is lost.
func (m *Map) ToStdMap() map[string]any {
	if m == nil {
		return nil
	}
	out := make(map[string]any, len(m.values))
	for k, v := range m.values {
		out[k] = toStd(v)
	}
	return out
}

func toStd(v any) any {
	switch t := v.(type) {
	case *Map:
		return t.ToStdMap()
	case []any:
		list := make([]any, len(t))
		for i, item := range t {
			list[i] = toStd(item)
		}
		return list
	default:
		return v
	}
}

// FromStdMap converts a plain map into a Map with sorted keys, recursing
// into nested maps and []any values
func FromStdMap(src map[string]any) *Map {
	if src == nil {
		return nil
	}
	keys := make([]string, 0, len(src))
	for k := range src {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	m := NewMap()
	for _, k := range keys {
		m.Set(k, fromStd(src[k]))
	}
	return m
}

func fromStd(v any) any {
	switch t := v.(type) {
	case map[string]any:
		return FromStdMap(t)
	case []any:
		list := make([]any, len(t))
		for i, item := range t {
			list[i] = fromStd(item)
		}
		return list
	default:
		return v
	}
}

// HasField implements Record
func (m *Map) HasField(name string) bool { return m.Has(name) }

// Field implements Record
func (m *Map) Field(name string) (any, bool) { return m.Get(name) }

// SetField implements Record
func (m *Map) SetField(name string, value any) error {
	m.Set(name, value)
	return nil
}

// DeleteField implements Record
func (m *Map) DeleteField(name string) error {
	m.Delete(name)
	return nil
}

// FieldNames implements Record
func (m *Map) FieldNames() []string { return m.Keys() }

// MarshalJSON writes the entries as a JSON object in key order
func (m *Map) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range m.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(m.values[k])
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads a JSON object keeping the order of its keys. Nested
// objects become Maps.
func (m *Map) UnmarshalJSON(data []byte) error {
	v, err := decodeJSON(data)
	if err != nil {
		return err
	}
	decoded, ok := v.(*Map)
	if !ok {
		return fmt.Errorf("fieldx: cannot unmarshal %T into Map", v)
	}
	*m = *decoded
	return nil
}

// MarshalYAML writes the entries as a YAML mapping in key order
func (m *Map) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, k := range m.keys {
		var key, value yaml.Node
		if err := key.Encode(k); err != nil {
			return nil, err
		}
		if err := value.Encode(m.values[k]); err != nil {
			return nil, err
		}
		node.Content = append(node.Content, &key, &value)
	}
	return node, nil
}

// UnmarshalYAML reads a YAML mapping keeping the order of its keys
func (m *Map) UnmarshalYAML(node *yaml.Node) error {
	v, err := fromYAMLNode(node)
	if err != nil {
		return err
	}
	decoded, ok := v.(*Map)
	if !ok {
		return fmt.Errorf("fieldx: cannot unmarshal %T into Map", v)
	}
	*m = *decoded
	return nil
}
