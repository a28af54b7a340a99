// File: doc.go
// Title: Package Documentation for fieldx
// Description: Package fieldx gives uniform field access over ordered maps,
//              Go maps and Go structs, with dotted path traversal and an
//              order preserving document codec.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation

// Package fieldx reads and writes named fields without caring whether the
// value holding them is a map or a struct.
//
// Targets:
//
//   - any Record, most commonly *Map, an ordered string-keyed map
//   - Go maps with string keys, adapted through reflection
//   - pointers to structs, whose exported fields are named by their `field`
//     tag, their `json` tag or their Go name
//
// Struct values (not pointers) can be read but not written. Any other target
// fails with an error carrying code TYPE_KIND. Absent keys are never errors:
// Get falls back to its default and GetAt to nil.
//
// Paths:
//
//	doc := fieldx.NewMap()
//	fieldx.SetAt(doc, "server.tls.cert", "/etc/cert.pem", false)
//	fieldx.GetAt(doc, "server.tls.cert") // "/etc/cert.pem"
//	fieldx.DeleteAt(doc, "server.tls")
//
// SetAt and GetRefAt create the containers missing along a path: a *Map by
// default, a map[string]any when assoc is set, or a value of the field type
// when the slot is statically typed (a struct pointer field, a typed map).
//
// Documents:
//
// DecodeJSON, DecodeYAML and DecodeTOML turn documents into trees of *Map,
// []any and scalars that keep the key order of the source, so a decoded
// document can be edited with the path functions and written back with the
// matching Encode function.
package fieldx
