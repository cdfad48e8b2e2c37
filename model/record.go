// Copyright 2017-26 the original author or authors.
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

// Package model contains the records read from OpenStreetMap extracts and
// the documents shaped from them.
package model

//go:generate stringer -type=ElementType -linecomment

// Attribute names shared by every OSM element.
const (
	AttrID        = "id"
	AttrVisible   = "visible"
	AttrVersion   = "version"
	AttrChangeset = "changeset"
	AttrTimestamp = "timestamp"
	AttrUser      = "user"
	AttrUID       = "uid"
	AttrLat       = "lat"
	AttrLon       = "lon"
)

// ElementType is an enumeration of OSM element types.
type ElementType int32

const (
	// NODE denotes a node element.
	NODE ElementType = iota // node

	// WAY denotes a way element.
	WAY // way

	// RELATION denotes a relation element.
	RELATION // relation
)

// ParseElementType maps an OSM element name onto its ElementType.
func ParseElementType(name string) (ElementType, bool) {
	switch name {
	case "node":
		return NODE, true
	case "way":
		return WAY, true
	case "relation":
		return RELATION, true
	default:
		return 0, false
	}
}

// Tag is a key/value pair attached to a record.
type Tag struct {
	Key   string
	Value string
}

// Record is a single OSM element as read from an extract.  Attribute values
// are kept verbatim; a record is not mutated once it has been read.
type Record struct {
	Type     ElementType
	Attrs    map[string]string
	Tags     []Tag
	NodeRefs []string
}

// Attr returns the attribute value and whether it was present.
func (r *Record) Attr(name string) (string, bool) {
	v, ok := r.Attrs[name]

	return v, ok
}

// Lookup returns the value of the first tag with the given key.
func (r *Record) Lookup(key string) (string, bool) {
	return LookupTag(r.Tags, key)
}

// LookupTag returns the value of the first tag in tags with the given key.
func LookupTag(tags []Tag, key string) (string, bool) {
	for _, t := range tags {
		if t.Key == key {
			return t.Value, true
		}
	}

	return "", false
}
