// File: codec.go
// Title: Document Codec
// Description: Decodes JSON, YAML and TOML documents into trees of Maps,
//              []any and scalars that keep the key order of the source, and
//              encodes such trees back.
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
	"io"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	mdwerrors "github.com/msto63/fnkit/foundation/core/errors"
)

// Format names a document encoding
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// ParseFormat parses a format name. "yml" is accepted for YAML.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "toml":
		return FormatTOML, nil
	}
	return "", mdwerrors.InvalidFormat(mdwerrors.ModuleFieldx, s, "json, yaml or toml")
}

// FormatOf returns the format matching the extension of path
func FormatOf(path string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return "", mdwerrors.InvalidFormat(mdwerrors.ModuleFieldx, path, "file extension .json, .yaml, .yml or .toml")
	}
	return ParseFormat(ext)
}

// Decode parses data in the given format
func Decode(data []byte, format Format) (any, error) {
	switch format {
	case FormatJSON:
		return DecodeJSON(data)
	case FormatYAML:
		return DecodeYAML(data)
	case FormatTOML:
		return DecodeTOML(data)
	}
	return nil, mdwerrors.InvalidFormat(mdwerrors.ModuleFieldx, string(format), "json, yaml or toml")
}

// Encode writes v in the given format
func Encode(v any, format Format) ([]byte, error) {
	switch format {
	case FormatJSON:
		return EncodeJSON(v)
	case FormatYAML:
		return EncodeYAML(v)
	case FormatTOML:
		return EncodeTOML(v)
	}
	return nil, mdwerrors.InvalidFormat(mdwerrors.ModuleFieldx, string(format), "json, yaml or toml")
}

// DecodeFile reads and decodes the file at path, picking the format from
// its extension
func DecodeFile(path string) (any, Format, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, "", err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", mdwerrors.OperationFailed(mdwerrors.ModuleFieldx, "decode_file", err)
	}
	v, err := Decode(data, format)
	if err != nil {
		return nil, "", err
	}
	return v, format, nil
}

// DecodeJSON parses a JSON document. Objects become Maps, arrays []any,
// integral numbers int64 and other numbers float64.
func DecodeJSON(data []byte) (any, error) {
	v, err := decodeJSON(data)
	if err != nil {
		return nil, mdwerrors.FieldxDecodeFailed("JSON", err)
	}
	return v, nil
}

func decodeJSON(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	v, err := decodeJSONValue(dec)
	if err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("unexpected data after top-level value")
	}
	return v, nil
}

func decodeJSONValue(dec *json.Decoder) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}

	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			m := NewMap()
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return nil, err
				}
				key, ok := keyTok.(string)
				if !ok {
					return nil, fmt.Errorf("object key %v is not a string", keyTok)
				}
				v, err := decodeJSONValue(dec)
				if err != nil {
					return nil, err
				}
				m.Set(key, v)
			}
			_, err := dec.Token()
			return m, err
		case '[':
			list := []any{}
			for dec.More() {
				v, err := decodeJSONValue(dec)
				if err != nil {
					return nil, err
				}
				list = append(list, v)
			}
			_, err := dec.Token()
			return list, err
		}
		return nil, fmt.Errorf("unexpected delimiter %q", t)
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return i, nil
		}
		return t.Float64()
	default:
		return t, nil
	}
}

// EncodeJSON writes v as indented JSON followed by a newline
func EncodeJSON(v any) ([]byte, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, mdwerrors.FieldxEncodeFailed("JSON", err)
	}
	return append(data, '\n'), nil
}

// DecodeYAML parses a YAML document. Mappings become Maps, sequences []any
// and integers int64. An empty document decodes to nil.
func DecodeYAML(data []byte) (any, error) {
	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, mdwerrors.FieldxDecodeFailed("YAML", err)
	}
	v, err := fromYAMLNode(&node)
	if err != nil {
		return nil, mdwerrors.FieldxDecodeFailed("YAML", err)
	}
	return v, nil
}

func fromYAMLNode(node *yaml.Node) (any, error) {
	switch node.Kind {
	case 0:
		return nil, nil
	case yaml.DocumentNode:
		if len(node.Content) == 0 {
			return nil, nil
		}
		return fromYAMLNode(node.Content[0])
	case yaml.AliasNode:
		return fromYAMLNode(node.Alias)
	case yaml.MappingNode:
		m := NewMap()
		for i := 0; i+1 < len(node.Content); i += 2 {
			keyNode, valueNode := node.Content[i], node.Content[i+1]
			if keyNode.Kind != yaml.ScalarNode {
				return nil, fmt.Errorf("line %d: mapping key is not a scalar", keyNode.Line)
			}
			v, err := fromYAMLNode(valueNode)
			if err != nil {
				return nil, err
			}
			m.Set(keyNode.Value, v)
		}
		return m, nil
	case yaml.SequenceNode:
		list := make([]any, 0, len(node.Content))
		for _, item := range node.Content {
			v, err := fromYAMLNode(item)
			if err != nil {
				return nil, err
			}
			list = append(list, v)
		}
		return list, nil
	}

	var v any
	if err := node.Decode(&v); err != nil {
		return nil, err
	}
	if i, ok := v.(int); ok {
		return int64(i), nil
	}
	return v, nil
}

// EncodeYAML writes v as YAML. Maps keep their key order.
func EncodeYAML(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return nil, mdwerrors.FieldxEncodeFailed("YAML", err)
	}
	if err := enc.Close(); err != nil {
		return nil, mdwerrors.FieldxEncodeFailed("YAML", err)
	}
	return buf.Bytes(), nil
}

// DecodeTOML parses a TOML document into a Map whose keys follow the order
// in which they appear in the source
func DecodeTOML(data []byte) (any, error) {
	var raw map[string]any
	meta, err := toml.Decode(string(data), &raw)
	if err != nil {
		return nil, mdwerrors.FieldxDecodeFailed("TOML", err)
	}

	order := make(map[string]int)
	for i, key := range meta.Keys() {
		path := keyPath(key)
		if _, seen := order[path]; !seen {
			order[path] = i
		}
	}
	return fromTOML(raw, nil, order), nil
}

func keyPath(parts []string) string {
	return strings.Join(parts, "\x00")
}

func fromTOML(v any, path []string, order map[string]int) any {
	switch t := v.(type) {
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		position := func(k string) int {
			if i, ok := order[keyPath(append(path[:len(path):len(path)], k))]; ok {
				return i
			}
			return math.MaxInt
		}
		sort.SliceStable(keys, func(i, j int) bool {
			pi, pj := position(keys[i]), position(keys[j])
			if pi != pj {
				return pi < pj
			}
			return keys[i] < keys[j]
		})

		m := NewMap()
		for _, k := range keys {
			m.Set(k, fromTOML(t[k], append(path[:len(path):len(path)], k), order))
		}
		return m
	case []map[string]any:
		list := make([]any, len(t))
		for i, item := range t {
			list[i] = fromTOML(item, path, order)
		}
		return list
	case []any:
		list := make([]any, len(t))
		for i, item := range t {
			list[i] = fromTOML(item, path, order)
		}
		return list
	default:
		return v
	}
}

// EncodeTOML writes v as TOML. The top-level value must be a table; Maps
// are written with sorted keys.
func EncodeTOML(v any) ([]byte, error) {
	switch t := v.(type) {
	case *Map:
		v = t.ToStdMap()
	case map[string]any:
		v = toStd(FromStdMap(t))
	case nil, []any:
		return nil, mdwerrors.FieldxEncodeFailed("TOML", fmt.Errorf("top-level value must be a table, got %T", v))
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(v); err != nil {
		return nil, mdwerrors.FieldxEncodeFailed("TOML", err)
	}
	return buf.Bytes(), nil
}
