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

package shape_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"m4o.io/osmshape/model"
	"m4o.io/osmshape/shape"
	"m4o.io/osmshape/street"
)

func node(lat, lon string, tags ...model.Tag) *model.Record {
	return &model.Record{
		Type: model.NODE,
		Attrs: map[string]string{
			"id":        "1001",
			"version":   "3",
			"changeset": "12345",
			"timestamp": "2015-06-01T10:00:00Z",
			"user":      "mapper",
			"uid":       "77",
			"lat":       lat,
			"lon":       lon,
		},
		Tags: tags,
	}
}

func TestShapeNode(t *testing.T) {
	s := shape.NewShaper("vigo")

	doc, err := s.Shape(node("42.1", "-8.7",
		model.Tag{Key: "addr:street", Value: "Calle Real"},
		model.Tag{Key: "addr:city", Value: "vigo"},
	))
	require.NoError(t, err)
	require.NotNil(t, doc)

	st, ok := doc.Address().String("street")
	assert.True(t, ok)
	assert.Equal(t, "rua real", st)

	pos, ok := doc.Position()
	assert.True(t, ok)
	assert.Equal(t, model.Position{42.1, -8.7}, pos)

	b, err := json.Marshal(doc)
	require.NoError(t, err)
	assert.Equal(t, `{"id":"1001","type":"node","created":{"version":"3","changeset":"12345",`+
		`"timestamp":"2015-06-01T10:00:00Z","user":"mapper","uid":"77"},"pos":[42.1,-8.7],`+
		`"address":{"street":"rua real","city":"vigo"}}`, string(b))
}

func TestShapeTagKeys(t *testing.T) {
	s := shape.NewShaper("vigo")

	doc, err := s.Shape(node("42.1", "-8.7",
		model.Tag{Key: "addr:city", Value: "Vigo"},
		model.Tag{Key: "addr:postcode", Value: "36201"},
		model.Tag{Key: "building:levels", Value: "4"},
		model.Tag{Key: "amenity", Value: "cafe"},
		model.Tag{Key: "a=b", Value: "dropped"},
		model.Tag{Key: "FIXME", Value: "dropped"},
		model.Tag{Key: "is_in:city:part", Value: "dropped"},
		model.Tag{Key: "amenity", Value: "bar"},
	))
	require.NoError(t, err)
	require.NotNil(t, doc)

	postcode, _ := doc.Address().String("postcode")
	assert.Equal(t, "36201", postcode)

	levels, _ := doc.String("building_levels")
	assert.Equal(t, "4", levels)

	amenity, _ := doc.String("amenity")
	assert.Equal(t, "bar", amenity)

	assert.Equal(t, []string{"id", "type", "created", "pos", "address", "building_levels", "amenity"}, doc.Keys())
	assert.Equal(t, []string{"city", "postcode"}, doc.Address().Keys())
}

func TestShapeFirstStreetWins(t *testing.T) {
	s := shape.NewShaper("vigo")

	doc, err := s.Shape(node("42.1", "-8.7",
		model.Tag{Key: "addr:city", Value: "vigo"},
		model.Tag{Key: "addr:street", Value: "Avda. Castelao"},
		model.Tag{Key: "addr:street", Value: "Calle Real"},
	))
	require.NoError(t, err)

	st, _ := doc.Address().String("street")
	assert.Equal(t, "avenida. castelao", st)
}

func TestShapeWay(t *testing.T) {
	s := shape.NewShaper("vigo")

	way := &model.Record{
		Type:     model.WAY,
		Attrs:    map[string]string{"id": "55", "visible": "true"},
		Tags:     []model.Tag{{Key: "is_in:municipality", Value: "Vigo"}, {Key: "highway", Value: "residential"}},
		NodeRefs: []string{"0012", "7", "0012"},
	}

	doc, err := s.Shape(way)
	require.NoError(t, err)
	require.NotNil(t, doc)

	refs, ok := doc.NodeRefs()
	assert.True(t, ok)
	assert.Equal(t, []string{"0012", "7", "0012"}, refs)

	_, ok = doc.Position()
	assert.False(t, ok)

	visible, _ := doc.String("visible")
	assert.Equal(t, "true", visible)

	assert.Equal(t, 0, doc.Created().Len())
	assert.Nil(t, doc.Address())

	muni, _ := doc.String("is_in_municipality")
	assert.Equal(t, "Vigo", muni)
}

func TestShapeRejects(t *testing.T) {
	s := shape.NewShaper("vigo")

	testCases := []struct {
		name string
		rec  *model.Record
	}{
		{"fixme only", node("42.1", "-8.7", model.Tag{Key: "fixme", Value: "position"})},
		{"other city", node("42.1", "-8.7", model.Tag{Key: "addr:city", Value: "Redondela"})},
		{"no tags", node("42.1", "-8.7")},
		{"relation", &model.Record{Type: model.RELATION, Tags: []model.Tag{{Key: "addr:city", Value: "vigo"}}}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			doc, err := s.Shape(tc.rec)

			assert.NoError(t, err)
			assert.Nil(t, doc)
			assert.False(t, s.Accepts(tc.rec))
		})
	}
}

func TestShapeMalformedCoordinates(t *testing.T) {
	s := shape.NewShaper("vigo")
	city := model.Tag{Key: "addr:city", Value: "vigo"}

	doc, err := s.Shape(node("forty-two", "-8.7", city))
	assert.ErrorIs(t, err, shape.ErrMalformedNumericField)
	assert.Nil(t, doc)

	rec := node("42.1", "-8.7", city)
	delete(rec.Attrs, "lon")

	doc, err = s.Shape(rec)
	assert.ErrorIs(t, err, shape.ErrMalformedNumericField)
	assert.Nil(t, doc)

	for _, lat := range []string{"NaN", "Inf", "-Inf", "+Infinity", "0x1p-2"} {
		doc, err = s.Shape(node(lat, "-8.7", city))
		assert.ErrorIs(t, err, shape.ErrMalformedNumericField, lat)
		assert.Nil(t, doc, lat)

		doc, err = s.Shape(node("42.1", lat, city))
		assert.ErrorIs(t, err, shape.ErrMalformedNumericField, lat)
		assert.Nil(t, doc, lat)
	}
}

func TestShapeWithOptions(t *testing.T) {
	vocab, err := street.NewVocabulary([]string{"street"}, map[string]string{"st": "street"}, "street")
	require.NoError(t, err)

	var seen string

	s := shape.NewShaper("springfield",
		shape.WithReliability(func(*model.Record) bool { return true }),
		shape.WithLocalityPredicate(func(_ *model.Record, locality string) bool {
			seen = locality
			return true
		}),
		shape.WithVocabulary(vocab),
	)

	doc, err := s.Shape(node("1", "2", model.Tag{Key: "addr:street", Value: "St Evergreen"}))
	require.NoError(t, err)

	st, _ := doc.Address().String("street")
	assert.Equal(t, "street evergreen", st)
	assert.Equal(t, "springfield", seen)
	assert.Equal(t, "springfield", s.Locality())
}
