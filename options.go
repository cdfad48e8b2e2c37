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

package osmshape

import (
	"runtime"

	"m4o.io/osmshape/filter"
	"m4o.io/osmshape/street"
)

// DefaultLocality is the city documents are kept for unless told otherwise.
const DefaultLocality = "vigo"

// DefaultNCpu provides the default number of CPUs used to read PBF input.
func DefaultNCpu() int {
	return max(runtime.GOMAXPROCS(-1)-1, 1)
}

// options provides optional configuration parameters for Processor and
// Source construction.
type options struct {
	locality      string
	vocabulary    *street.Vocabulary
	reliable      filter.Reliability
	belongs       filter.Locality
	skipMalformed bool
	nCPU          int
}

// Option configures how we set up the processor and its source.
type Option func(*options)

// WithLocality sets the city whose records are kept.
func WithLocality(locality string) Option {
	return func(o *options) {
		o.locality = locality
	}
}

// WithVocabulary sets the street-type vocabulary used by the normalizer and
// the auditor.
func WithVocabulary(v *street.Vocabulary) Option {
	return func(o *options) {
		if v != nil {
			o.vocabulary = v
		}
	}
}

// WithReliability replaces the reliability predicate.
func WithReliability(p filter.Reliability) Option {
	return func(o *options) {
		o.reliable = p
	}
}

// WithLocalityPredicate replaces the locality predicate.
func WithLocalityPredicate(p filter.Locality) Option {
	return func(o *options) {
		o.belongs = p
	}
}

// WithSkipMalformed chooses between skipping records that cannot be shaped
// and aborting the run on the first one.
func WithSkipMalformed(skip bool) Option {
	return func(o *options) {
		o.skipMalformed = skip
	}
}

// WithNCpus sets the number of goroutines unpacking PBF blobs.
func WithNCpus(n int) Option {
	return func(o *options) {
		o.nCPU = max(n, 1)
	}
}

func defaultConfig() options {
	return options{
		locality:   DefaultLocality,
		vocabulary: street.DefaultVocabulary(),
		reliable:   filter.IsReliable,
		belongs:    filter.BelongsTo,
		nCPU:       DefaultNCpu(),
	}
}

func newConfig(opts []Option) options {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
