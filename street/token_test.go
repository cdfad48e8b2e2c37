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

package street

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStreetType(t *testing.T) {
	testCases := []struct {
		name     string
		expected string
		found    bool
	}{
		{"rua do principe", "rua", true},
		{"Calle Real", "Calle", true},
		{"avda. de madrid", "avda", true},
		{"avda.", "avda", true},
		{"c/ real", "c", true},
		{"c/alcalde gregorio espino", "c/alcalde", true},
		{"praza/patio da fonte", "praza/patio", true},
		{"camiño do monte", "camiño", true},
		{"14 de abril", "14", true},
		{"real", "real", true},
		{"san_roque 3", "san_roque", true},
		{" leading space", "", false},
		{"...", "", false},
		{"", "", false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			actual, found := StreetType(tc.name)

			assert.Equal(t, tc.found, found)
			assert.Equal(t, tc.expected, actual)
		})
	}
}

func TestFold(t *testing.T) {
	assert.Equal(t, "aeiou", Fold("áéíóú"))
	assert.Equal(t, "peña ÁÉ àü", Fold("peña ÁÉ àü"))
}

func TestWordBoundary(t *testing.T) {
	assert.True(t, wordBoundary("ab", 0))
	assert.True(t, wordBoundary("ab", 2))
	assert.False(t, wordBoundary("ab", 1))
	assert.False(t, wordBoundary("a. b", 2))
	assert.True(t, wordBoundary("ñ.", 2))
}
