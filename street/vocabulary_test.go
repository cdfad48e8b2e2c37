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

	"m4o.io/osmshape/street"
)

func TestDefaultVocabulary(t *testing.T) {
	v := street.DefaultVocabulary()

	assert.True(t, v.IsCanonical("rua"))
	assert.True(t, v.IsCanonical("camiño"))
	assert.False(t, v.IsCanonical("calle"))
	assert.Equal(t, "rua", v.Default())
	assert.Len(t, v.Tokens(), 10)

	c, ok := v.Canonical("ctra")
	assert.True(t, ok)
	assert.Equal(t, "estrada", c)

	c, ok = v.Canonical("calleja/callejon")
	assert.True(t, ok)
	assert.Equal(t, "caleixon", c)
}

func TestVocabularyIsImmutable(t *testing.T) {
	v := street.DefaultVocabulary()

	m := v.Mapping()
	m["calle"] = "avenida"

	tokens := v.Tokens()
	tokens[0] = "calle"

	c, _ := v.Canonical("calle")
	assert.Equal(t, "rua", c)
	assert.False(t, v.IsCanonical("calle"))
}

func TestNewVocabularyRejectsNonCanonicalDefault(t *testing.T) {
	_, err := street.NewVocabulary([]string{"rua"}, nil, "calle")
	assert.ErrorIs(t, err, street.ErrInvalidVocabulary)

	_, err = street.NewVocabulary([]string{"rua", ""}, nil, "rua")
	assert.ErrorIs(t, err, street.ErrInvalidVocabulary)

	_, err = street.NewVocabulary([]string{"rua"}, map[string]string{"calle": ""}, "rua")
	assert.ErrorIs(t, err, street.ErrInvalidVocabulary)
}

func TestLoadVocabulary(t *testing.T) {
	v, err := street.LoadVocabulary(strings.NewReader(`
canonical: [street, avenue]
mapping:
  St: street
  Ave: avenue
`))
	require.NoError(t, err)

	assert.Equal(t, []string{"street", "avenue"}, v.Tokens())
	assert.Equal(t, map[string]string{"St": "street", "Ave": "avenue"}, v.Mapping())
	assert.False(t, v.IsCanonical("rua"))

	_, err = street.LoadVocabulary(strings.NewReader("canonical: [street]\n"))
	assert.ErrorIs(t, err, street.ErrInvalidVocabulary)

	_, err = street.LoadVocabulary(strings.NewReader("canonical: [rua]\nunknown: 1\n"))
	assert.ErrorIs(t, err, street.ErrInvalidVocabulary)
}
