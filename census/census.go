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

// Package census gathers the statistics used to pick a locality and judge
// the quality of an extract before shaping it.
package census

import (
	"strings"

	"m4o.io/osmshape/filter"
	"m4o.io/osmshape/model"
)

const keyCity = "addr:city"

// Census counts, over nodes and ways, the city names of reliable records and
// the fixme annotations.  A Census is not safe for concurrent use.
type Census struct {
	CityNames       map[string]int `json:"city_names" yaml:"city_names"`
	FixmeValues     map[string]int `json:"fixme_values" yaml:"fixme_values"`
	FixmeRecords    int64          `json:"fixme_records" yaml:"fixme_records"`
	ReliableRecords int64          `json:"reliable_records" yaml:"reliable_records"`
}

// New creates an empty Census.
func New() *Census {
	return &Census{
		CityNames:   make(map[string]int),
		FixmeValues: make(map[string]int),
	}
}

// Observe adds the record to the census.  Relations are ignored.
func (c *Census) Observe(rec *model.Record) {
	if rec.Type != model.NODE && rec.Type != model.WAY {
		return
	}

	var fixme bool

	for _, t := range rec.Tags {
		if t.Key == filter.KeyFixme {
			fixme = true
			c.FixmeValues[strings.TrimSpace(strings.ToLower(t.Value))]++
		}
	}

	if fixme {
		c.FixmeRecords++
	} else {
		c.ReliableRecords++
	}

	if !filter.IsReliable(rec) {
		return
	}

	for _, t := range rec.Tags {
		if t.Key == keyCity {
			c.CityNames[t.Value]++
		}
	}
}
