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
	"strings"

	"m4o.io/osmshape/model"
)

// KeyStreet is the tag holding the street of an address.
const KeyStreet = "addr:street"

// Normalizer maps raw street names onto their canonical form.
type Normalizer struct {
	vocab *Vocabulary
}

// NewNormalizer creates a Normalizer over the vocabulary.
func NewNormalizer(vocab *Vocabulary) *Normalizer {
	return &Normalizer{vocab: vocab}
}

// Normalize lowercases, trims and folds the name, then resolves its leading
// street type:
//
//   - a canonical type leaves the name as is;
//   - a mapped type has its first occurrence in the name replaced by the
//     canonical type, which is not necessarily the leading one;
//   - an unknown type, or no type at all, gets the default type prefixed.
func (n *Normalizer) Normalize(raw string) string {
	folded := Fold(strings.TrimSpace(strings.ToLower(raw)))

	if t, ok := StreetType(folded); ok {
		if n.vocab.IsCanonical(t) {
			return folded
		}

		if c, ok := n.vocab.Canonical(t); ok {
			return strings.Replace(folded, t, c, 1)
		}
	}

	return n.vocab.Default() + " " + folded
}

// Street normalizes the first addr:street tag found in tags.
func (n *Normalizer) Street(tags []model.Tag) (string, bool) {
	raw, ok := model.LookupTag(tags, KeyStreet)
	if !ok {
		return "", false
	}

	return n.Normalize(raw), true
}
