// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Document field names stamped onto every journal write.
const (
	FieldID        = "id"
	FieldCreatedAt = "createdAt"
	FieldUserID    = "userId"
	FieldIsAdmin   = "isAdmin"
)

// Document is a JSON-compatible mapping from field name to value as stored in
// the remote document database and mirrored into the local cache.
//
// Values are limited to what encoding/json produces: string, float64, bool,
// nil, map[string]any and []any.
type Document map[string]any

// Clone returns a shallow copy of d. Nested maps and slices are shared.
func (d Document) Clone() Document {
	if d == nil {
		return nil
	}

	out := make(Document, len(d))
	for k, v := range d {
		out[k] = v
	}
	return out
}

// ID returns the "id" annotation added to documents listed from a collection.
func (d Document) ID() string {
	id, _ := d[FieldID].(string)
	return id
}

// String returns the string value stored under field, or "" if the field is
// missing or not a string.
func (d Document) String(field string) string {
	s, _ := d[field].(string)
	return s
}

// Bool returns the boolean value stored under field. Missing or non-boolean
// values are reported as false.
func (d Document) Bool(field string) bool {
	b, _ := d[field].(bool)
	return b
}

// IdentifiedDocument is a document returned by a collection listing together
// with its remote identifier.
type IdentifiedDocument struct {
	ID   string   `json:"id"`
	Data Document `json:"data"`
}

// Annotated merges the identifier into a copy of the document body under the
// "id" field, the shape callers receive from collection reads.
func (d IdentifiedDocument) Annotated() Document {
	out := make(Document, len(d.Data)+1)
	out[FieldID] = d.ID
	for k, v := range d.Data {
		out[k] = v
	}
	return out
}
