// Copyright 2026 the original author or authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package model

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Structural keys of a Document.
const (
	KeyID       = "id"
	KeyType     = "type"
	KeyVisible  = "visible"
	KeyCreated  = "created"
	KeyPos      = "pos"
	KeyNodeRefs = "node_refs"
	KeyAddress  = "address"
)

// Fields is a map that remembers the order in which its keys were first
// set.  Setting an existing key replaces the value in place.
type Fields struct {
	keys   []string
	values map[string]any
}

// NewFields creates an empty Fields.
func NewFields() *Fields {
	return &Fields{values: make(map[string]any)}
}

// Set stores the value under key.
func (f *Fields) Set(key string, value any) {
	if _, ok := f.values[key]; !ok {
		f.keys = append(f.keys, key)
	}

	f.values[key] = value
}

// Get returns the value stored under key.
func (f *Fields) Get(key string) (any, bool) {
	v, ok := f.values[key]

	return v, ok
}

// String returns the value stored under key if it is a string.
func (f *Fields) String(key string) (string, bool) {
	v, ok := f.values[key].(string)

	return v, ok
}

// Keys returns the keys in insertion order.
func (f *Fields) Keys() []string {
	keys := make([]string, len(f.keys))
	copy(keys, f.keys)

	return keys
}

// Len returns the number of keys.
func (f *Fields) Len() int {
	return len(f.keys)
}

// MarshalJSON writes the fields as a JSON object in insertion order.
func (f *Fields) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteByte('{')

	for i, k := range f.keys {
		if i > 0 {
			buf.WriteByte(',')
		}

		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}

		vb, err := json.Marshal(f.values[k])
		if err != nil {
			return nil, fmt.Errorf("cannot marshal field %q: %w", k, err)
		}

		buf.Write(kb)
		buf.WriteByte(':')
		buf.Write(vb)
	}

	buf.WriteByte('}')

	return buf.Bytes(), nil
}

// Position is a [latitude, longitude] pair.
type Position [2]Degrees

// Lat returns the latitude.
func (p Position) Lat() Degrees { return p[0] }

// Lon returns the longitude.
func (p Position) Lon() Degrees { return p[1] }

// Document is the structured form of an accepted record.
type Document struct {
	Fields
}

// NewDocument creates an empty Document.
func NewDocument() *Document {
	return &Document{Fields: *NewFields()}
}

// Created returns the nested created block, if any.
func (d *Document) Created() *Fields {
	f, _ := d.values[KeyCreated].(*Fields)

	return f
}

// Address returns the nested address object, if any.
func (d *Document) Address() *Fields {
	f, _ := d.values[KeyAddress].(*Fields)

	return f
}

// EnsureAddress returns the nested address object, creating it when it is
// missing or when a scalar value is stored under the address key.
func (d *Document) EnsureAddress() *Fields {
	if a := d.Address(); a != nil {
		return a
	}

	a := NewFields()
	d.Set(KeyAddress, a)

	return a
}

// Position returns the position of a node document.
func (d *Document) Position() (Position, bool) {
	p, ok := d.values[KeyPos].(Position)

	return p, ok
}

// NodeRefs returns the node references of a way document.
func (d *Document) NodeRefs() ([]string, bool) {
	refs, ok := d.values[KeyNodeRefs].([]string)

	return refs, ok
}
