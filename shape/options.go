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

package shape

import (
	"m4o.io/osmshape/filter"
	"m4o.io/osmshape/street"
)

// shaperOptions provides optional configuration parameters for Shaper construction.
type shaperOptions struct {
	reliable   filter.Reliability // decides whether a record can be trusted
	belongs    filter.Locality    // decides whether a record is in the locality
	normalizer *street.Normalizer // normalizes addr:street values
}

// Option configures how we set up the shaper.
type Option func(*shaperOptions)

// WithReliability lets you replace the reliability predicate.
func WithReliability(p filter.Reliability) Option {
	return func(o *shaperOptions) {
		o.reliable = p
	}
}

// WithLocalityPredicate lets you replace the locality predicate.
func WithLocalityPredicate(p filter.Locality) Option {
	return func(o *shaperOptions) {
		o.belongs = p
	}
}

// WithNormalizer lets you set the street normalizer.
func WithNormalizer(n *street.Normalizer) Option {
	return func(o *shaperOptions) {
		o.normalizer = n
	}
}

// WithVocabulary normalizes streets against the vocabulary.
func WithVocabulary(v *street.Vocabulary) Option {
	return WithNormalizer(street.NewNormalizer(v))
}

// defaultShaperConfig provides a default configuration for shapers.
func defaultShaperConfig() shaperOptions {
	return shaperOptions{
		reliable:   filter.IsReliable,
		belongs:    filter.BelongsTo,
		normalizer: street.NewNormalizer(street.DefaultVocabulary()),
	}
}
