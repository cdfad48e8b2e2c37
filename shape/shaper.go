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

// Package shape turns accepted OSM records into documents.
package shape

import (
	"errors"
	"fmt"

	"m4o.io/osmshape/model"
)

const addrPrefix = "addr"

// ErrMalformedNumericField is returned when a node coordinate is not a
// floating point number.
var ErrMalformedNumericField = errors.New("malformed numeric field")

// createdAttrs are copied, in order, into the created block.
var createdAttrs = []string{
	model.AttrVersion,
	model.AttrChangeset,
	model.AttrTimestamp,
	model.AttrUser,
	model.AttrUID,
}

// Shaper converts the records of one locality into documents.  A Shaper
// holds no state between records.
type Shaper struct {
	locality string
	cfg      shaperOptions
}

// NewShaper returns a new shaper, configured with options, that accepts the
// records belonging to locality.
func NewShaper(locality string, opts ...Option) *Shaper {
	cfg := defaultShaperConfig()

	for _, opt := range opts {
		opt(&cfg)
	}

	return &Shaper{locality: locality, cfg: cfg}
}

// Locality returns the target locality.
func (s *Shaper) Locality() string {
	return s.locality
}

// Accepts reports whether the record is a node or way that is reliable and
// belongs to the locality.
func (s *Shaper) Accepts(rec *model.Record) bool {
	if rec.Type != model.NODE && rec.Type != model.WAY {
		return false
	}

	return s.cfg.reliable(rec) && s.cfg.belongs(rec, s.locality)
}

// Shape returns the document of an accepted record, or nil when the record
// is not accepted.  A node whose coordinates cannot be parsed yields an
// error wrapping ErrMalformedNumericField and no document.
func (s *Shaper) Shape(rec *model.Record) (*model.Document, error) {
	if !s.Accepts(rec) {
		return nil, nil
	}

	doc := model.NewDocument()

	if id, ok := rec.Attr(model.AttrID); ok {
		doc.Set(model.KeyID, id)
	}

	doc.Set(model.KeyType, rec.Type.String())

	if visible, ok := rec.Attr(model.AttrVisible); ok {
		doc.Set(model.KeyVisible, visible)
	}

	created := model.NewFields()
	for _, attr := range createdAttrs {
		if v, ok := rec.Attr(attr); ok {
			created.Set(attr, v)
		}
	}

	doc.Set(model.KeyCreated, created)

	switch rec.Type {
	case model.NODE:
		pos, err := position(rec)
		if err != nil {
			return nil, err
		}

		doc.Set(model.KeyPos, pos)
	case model.WAY:
		refs := make([]string, len(rec.NodeRefs))
		copy(refs, rec.NodeRefs)
		doc.Set(model.KeyNodeRefs, refs)
	}

	for _, tag := range rec.Tags {
		s.shapeTag(doc, rec, tag)
	}

	return doc, nil
}

func (s *Shaper) shapeTag(doc *model.Document, rec *model.Record, tag model.Tag) {
	class, prefix, suffix := ClassifyKey(tag.Key)

	switch class {
	case KeySimple:
		doc.Set(tag.Key, tag.Value)
	case KeyNamespaced:
		switch {
		case prefix != addrPrefix:
			doc.Set(prefix+"_"+suffix, tag.Value)
		case suffix == "street":
			// the first addr:street of the record wins
			if st, ok := s.cfg.normalizer.Street(rec.Tags); ok {
				doc.EnsureAddress().Set(suffix, st)
			}
		default:
			doc.EnsureAddress().Set(suffix, tag.Value)
		}
	case KeyIrregular, KeyUnsupported:
		// dropped
	}
}

func position(rec *model.Record) (model.Position, error) {
	lat, err := coordinate(rec, model.AttrLat)
	if err != nil {
		return model.Position{}, err
	}

	lon, err := coordinate(rec, model.AttrLon)
	if err != nil {
		return model.Position{}, err
	}

	return model.Position{lat, lon}, nil
}

func coordinate(rec *model.Record, attr string) (model.Degrees, error) {
	id, _ := rec.Attr(model.AttrID)

	v, ok := rec.Attr(attr)
	if !ok {
		return 0, fmt.Errorf("%w: node %s has no %s", ErrMalformedNumericField, id, attr)
	}

	d, err := model.ParseDegrees(v)
	if err != nil {
		return 0, fmt.Errorf("%w: node %s %s %q: %w", ErrMalformedNumericField, id, attr, v, err)
	}

	return d, nil
}
