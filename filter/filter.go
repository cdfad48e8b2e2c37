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

// Package filter provides the record predicates used to select the records
// that get shaped.
package filter

import (
	"strings"

	"m4o.io/osmshape/model"
)

// KeyFixme marks a record whose data is known to need fixing.
const KeyFixme = "fixme"

// LocalityKeys are the tags naming the locality a record belongs to.
var LocalityKeys = []string{"addr:city", "is_in:city", "is_in:municipality"}

// Reliability decides whether a record can be trusted.
type Reliability func(rec *model.Record) bool

// Locality decides whether a record belongs to the named locality.
type Locality func(rec *model.Record, locality string) bool

var (
	_ Reliability = IsReliable
	_ Locality    = BelongsTo
)

// IsReliable reports whether the record has at least one tag other than
// fixme.  A record without tags is not reliable.
func IsReliable(rec *model.Record) bool {
	for _, t := range rec.Tags {
		if t.Key != KeyFixme {
			return true
		}
	}

	return false
}

// BelongsTo reports whether any locality tag of the record equals the
// locality, ignoring case.
func BelongsTo(rec *model.Record, locality string) bool {
	for _, t := range rec.Tags {
		if !isLocalityKey(t.Key) {
			continue
		}

		if strings.EqualFold(t.Value, locality) {
			return true
		}
	}

	return false
}

func isLocalityKey(key string) bool {
	for _, k := range LocalityKeys {
		if k == key {
			return true
		}
	}

	return false
}
