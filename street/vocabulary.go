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

// Package street normalizes and audits street names against a controlled
// vocabulary of street types.
package street

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultStreetType is the street type prefixed to names whose type is
// unknown.
const DefaultStreetType = "rua"

var ErrInvalidVocabulary = errors.New("invalid street vocabulary")

// Vocabulary is an immutable set of canonical street types together with a
// table mapping known non-canonical types onto canonical ones.
type Vocabulary struct {
	canonical map[string]struct{}
	tokens    []string
	mapping   map[string]string
	fallback  string
}

// NewVocabulary builds a Vocabulary.  The fallback type is prefixed to names
// whose type is neither canonical nor mapped; it must be canonical itself.
//
// Canonical types are stored lowercased and folded, the form in which the
// Normalizer looks them up.  Mapping keys are stored as given, so a key with
// capitals or accents never matches a normalized name.
func NewVocabulary(canonical []string, mapping map[string]string, fallback string) (*Vocabulary, error) {
	fallback = foldKey(fallback)

	v := &Vocabulary{
		canonical: make(map[string]struct{}, len(canonical)),
		tokens:    make([]string, 0, len(canonical)),
		mapping:   make(map[string]string, len(mapping)),
		fallback:  fallback,
	}

	for _, t := range canonical {
		t = foldKey(t)
		if t == "" {
			return nil, fmt.Errorf("%w: empty canonical street type", ErrInvalidVocabulary)
		}

		if _, ok := v.canonical[t]; ok {
			continue
		}

		v.canonical[t] = struct{}{}
		v.tokens = append(v.tokens, t)
	}

	for from, to := range mapping {
		if strings.TrimSpace(from) == "" || to == "" {
			return nil, fmt.Errorf("%w: empty mapping %q -> %q", ErrInvalidVocabulary, from, to)
		}

		v.mapping[from] = to
	}

	if _, ok := v.canonical[fallback]; !ok {
		return nil, fmt.Errorf("%w: default street type %q is not canonical", ErrInvalidVocabulary, fallback)
	}

	return v, nil
}

// DefaultVocabulary returns the Galician street types used for Vigo.
func DefaultVocabulary() *Vocabulary {
	v, err := NewVocabulary(
		[]string{"rua", "avenida", "camiño", "praza", "lugar", "estrada", "caleixon", "poligono", "area", "paseo"},
		map[string]string{
			"avda":             "avenida",
			"calle":            "rua",
			"cl":               "rua",
			"carretera":        "estrada",
			"ctra":             "estrada",
			"calleja/callejón": "caleixon",
			"plaza":            "praza",
			"praza/patio":      "praza/patio",
			"C/Alcalde":        "rua alcalde",
		},
		DefaultStreetType,
	)
	if err != nil {
		panic(err)
	}

	return v
}

// IsCanonical reports whether the street type belongs to the vocabulary.
func (v *Vocabulary) IsCanonical(streetType string) bool {
	_, ok := v.canonical[streetType]

	return ok
}

// Canonical returns the canonical replacement of a known non-canonical
// street type.
func (v *Vocabulary) Canonical(streetType string) (string, bool) {
	c, ok := v.mapping[streetType]

	return c, ok
}

// Default returns the street type used for unknown types.
func (v *Vocabulary) Default() string {
	return v.fallback
}

// Tokens returns the canonical street types in declaration order.
func (v *Vocabulary) Tokens() []string {
	tokens := make([]string, len(v.tokens))
	copy(tokens, v.tokens)

	return tokens
}

// Mapping returns a copy of the mapping table.
func (v *Vocabulary) Mapping() map[string]string {
	m := make(map[string]string, len(v.mapping))
	for k, c := range v.mapping {
		m[k] = c
	}

	return m
}

func foldKey(s string) string {
	return Fold(strings.ToLower(strings.TrimSpace(s)))
}

// vocabularyFile is the YAML layout of a vocabulary file:
//
//	canonical: [rua, avenida, praza]
//	mapping:
//	  avda: avenida
//	default: rua
type vocabularyFile struct {
	Canonical []string          `yaml:"canonical"`
	Mapping   map[string]string `yaml:"mapping"`
	Default   string            `yaml:"default"`
}

// LoadVocabulary reads a YAML vocabulary.  A missing default falls back to
// DefaultStreetType.
func LoadVocabulary(r io.Reader) (*Vocabulary, error) {
	var f vocabularyFile

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidVocabulary, err)
	}

	if f.Default == "" {
		f.Default = DefaultStreetType
	}

	return NewVocabulary(f.Canonical, f.Mapping, f.Default)
}
