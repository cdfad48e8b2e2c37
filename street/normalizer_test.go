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

package street_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"m4o.io/osmshape/model"
	"m4o.io/osmshape/street"
)

func TestNormalize(t *testing.T) {
	n := street.NewNormalizer(street.DefaultVocabulary())

	testCases := []struct {
		raw      string
		expected string
	}{
		{"Calle Real", "rua real"},
		{"  Rúa do Príncipe ", "rua do principe"},
		{"Avda. de Madrid", "avenida. de madrid"},
		{"Ctra. Ctra vella", "estrada. ctra vella"},
		{"Travesía de Vigo", "rua travesia de vigo"},
		{"C/ Real", "rua c/ real"},
		{"C/Alcalde Gregorio Espino", "rua c/alcalde gregorio espino"},
		{"Calleja/Callejón do Rego", "rua calleja/callejon do rego"},
		{"Praza/Patio da Fonte", "praza/patio da fonte"},
		{"Camiño do Monte", "camiño do monte"},
		{"ÁREA Portuaria", "area portuaria"},
		{"Calle Sáenz Peña", "rua saenz peña"},
		{"", "rua "},
		{"...", "rua ..."},
	}

	for _, tc := range testCases {
		t.Run(tc.raw, func(t *testing.T) {
			assert.Equal(t, tc.expected, n.Normalize(tc.raw))
		})
	}
}

func TestNormalizeCanonicalIsUnchanged(t *testing.T) {
	vocab := street.DefaultVocabulary()
	n := street.NewNormalizer(vocab)

	for _, tok := range vocab.Tokens() {
		name := tok + " nombre"
		assert.Equal(t, name, n.Normalize(name))
	}
}

func TestNormalizeMappedStartsWithCanonical(t *testing.T) {
	vocab := street.DefaultVocabulary()
	n := street.NewNormalizer(vocab)

	for from, to := range vocab.Mapping() {
		if street.Fold(strings.ToLower(from)) != from {
			continue
		}

		assert.True(t, strings.HasPrefix(n.Normalize(from+" nombre"), to), from)
	}
}

func TestNormalizeMappingKeysAreVerbatim(t *testing.T) {
	vocab, err := street.NewVocabulary([]string{"rua"}, map[string]string{"Calle": "rua", "travesía": "rua"}, "rua")
	require.NoError(t, err)

	n := street.NewNormalizer(vocab)

	assert.Equal(t, "rua calle real", n.Normalize("Calle Real"))
	assert.Equal(t, "rua travesia nova", n.Normalize("Travesía Nova"))
	assert.Equal(t, map[string]string{"Calle": "rua", "travesía": "rua"}, vocab.Mapping())
}

func TestNormalizeUnknownGetsDefaultPrefix(t *testing.T) {
	n := street.NewNormalizer(street.DefaultVocabulary())

	for _, u := range []string{"travesía", "rúa.nova", "ronda", "Subida"} {
		name := u + " nombre"
		assert.Equal(t, "rua "+street.Fold(strings.ToLower(name)), n.Normalize(name))
	}
}

func TestNormalizeFoldsAccents(t *testing.T) {
	n := street.NewNormalizer(street.DefaultVocabulary())

	for _, raw := range []string{"Rúa Ánimas", "Calle Éxito", "Praza Íñigo", "Óscar Úbeda"} {
		assert.NotContains(t, n.Normalize(raw), "á")
		assert.NotContains(t, n.Normalize(raw), "é")
		assert.NotContains(t, n.Normalize(raw), "í")
		assert.NotContains(t, n.Normalize(raw), "ó")
		assert.NotContains(t, n.Normalize(raw), "ú")
	}
}

func TestNormalizeIsIdempotent(t *testing.T) {
	n := street.NewNormalizer(street.DefaultVocabulary())

	for _, raw := range []string{"Calle Real", "Avda. García Barbón", "Ronda de Don Bosco", "Praza de España"} {
		once := n.Normalize(raw)
		assert.Equal(t, once, n.Normalize(once), raw)
	}
}

func TestNormalizeWithAlternateVocabulary(t *testing.T) {
	vocab, err := street.NewVocabulary([]string{"street", "avenue"}, map[string]string{"st": "street"}, "street")
	assert.NoError(t, err)

	n := street.NewNormalizer(vocab)

	assert.Equal(t, "street main", n.Normalize("St Main"))
	assert.Equal(t, "avenue of the americas", n.Normalize("Avenue of the Americas"))
	assert.Equal(t, "street broadway", n.Normalize("Broadway"))
}

func TestStreet(t *testing.T) {
	n := street.NewNormalizer(street.DefaultVocabulary())

	tags := []model.Tag{
		{Key: "name", Value: "Bar"},
		{Key: "addr:street", Value: "Calle Real"},
		{Key: "addr:street", Value: "Avda. Castelao"},
	}

	s, ok := n.Street(tags)
	assert.True(t, ok)
	assert.Equal(t, "rua real", s)

	_, ok = n.Street(tags[:1])
	assert.False(t, ok)
}
