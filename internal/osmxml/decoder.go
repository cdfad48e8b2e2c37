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

// Package osmxml streams the elements of an OpenStreetMap XML document.
package osmxml

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"

	"m4o.io/osmshape/model"
)

const (
	elemTag = "tag"
	elemNd  = "nd"

	attrKey   = "k"
	attrValue = "v"
	attrRef   = "ref"
)

var ErrMalformedElement = errors.New("malformed OSM element")

// Decoder reads nodes, ways and relations, in document order, off an OSM
// XML stream.  Any other element is skipped.
type Decoder struct {
	dec *xml.Decoder
}

// NewDecoder returns a new decoder that reads from r.
func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{dec: xml.NewDecoder(r)}
}

// Decode returns the next record.  The end of the document is reported by
// an io.EOF error.
func (d *Decoder) Decode() (*model.Record, error) {
	var (
		current *model.Record
		name    string
	)

	for {
		tok, err := d.dec.Token()
		if err != nil {
			if errors.Is(err, io.EOF) && current != nil {
				return nil, fmt.Errorf("%w: unterminated %s", ErrMalformedElement, name)
			}

			if errors.Is(err, io.EOF) {
				return nil, io.EOF
			}

			return nil, fmt.Errorf("error reading OSM XML: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if current == nil {
				if et, ok := model.ParseElementType(t.Name.Local); ok {
					current = &model.Record{Type: et, Attrs: attrs(t.Attr)}
					name = t.Name.Local
				}

				continue
			}

			if err := appendChild(current, t); err != nil {
				return nil, err
			}
		case xml.EndElement:
			if current != nil && t.Name.Local == name {
				return current, nil
			}
		}
	}
}

func appendChild(rec *model.Record, t xml.StartElement) error {
	switch t.Name.Local {
	case elemTag:
		a := attrs(t.Attr)

		k, ok := a[attrKey]
		if !ok {
			return fmt.Errorf("%w: tag without key in %s %s", ErrMalformedElement, rec.Type, rec.Attrs[model.AttrID])
		}

		rec.Tags = append(rec.Tags, model.Tag{Key: k, Value: a[attrValue]})
	case elemNd:
		ref, ok := attrs(t.Attr)[attrRef]
		if !ok {
			return fmt.Errorf("%w: nd without ref in %s %s", ErrMalformedElement, rec.Type, rec.Attrs[model.AttrID])
		}

		rec.NodeRefs = append(rec.NodeRefs, ref)
	}

	return nil
}

func attrs(xa []xml.Attr) map[string]string {
	m := make(map[string]string, len(xa))
	for _, a := range xa {
		m[a.Name.Local] = a.Value
	}

	return m
}
