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
	"encoding/json"

	"m4o.io/osmshape/model"
)

// Auditor collects the street names whose leading type is not canonical,
// grouped by that type.  Names are audited raw, without lowercasing or
// folding.  An Auditor is not safe for concurrent use.
type Auditor struct {
	vocab *Vocabulary
	types []string
	names map[string][]string
	seen  map[string]map[string]struct{}
}

// NewAuditor creates an empty Auditor over the vocabulary.
func NewAuditor(vocab *Vocabulary) *Auditor {
	return &Auditor{
		vocab: vocab,
		names: make(map[string][]string),
		seen:  make(map[string]map[string]struct{}),
	}
}

// Audit audits every addr:street tag in tags.
func (a *Auditor) Audit(tags []model.Tag) {
	for _, t := range tags {
		if t.Key == KeyStreet {
			a.AuditStreet(t.Value)
		}
	}
}

// AuditStreet audits a single street name and reports whether it was added
// to the report.
func (a *Auditor) AuditStreet(name string) bool {
	t, ok := StreetType(name)
	if !ok || a.vocab.IsCanonical(t) {
		return false
	}

	seen, ok := a.seen[t]
	if !ok {
		seen = make(map[string]struct{})
		a.seen[t] = seen
		a.types = append(a.types, t)
	}

	if _, ok := seen[name]; ok {
		return false
	}

	seen[name] = struct{}{}
	a.names[t] = append(a.names[t], name)

	return true
}

// Report returns a snapshot of what has been audited so far.
func (a *Auditor) Report() Report {
	r := Report{
		types: make([]string, len(a.types)),
		names: make(map[string][]string, len(a.names)),
	}

	copy(r.types, a.types)

	for t, names := range a.names {
		r.names[t] = append([]string(nil), names...)
	}

	return r
}

// Report maps unexpected street types onto the distinct names they prefix.
// Types and names are kept in the order they were first encountered.
type Report struct {
	types []string
	names map[string][]string
}

// Types returns the unexpected street types.
func (r Report) Types() []string {
	return append([]string(nil), r.types...)
}

// Names returns the street names prefixed by the street type.
func (r Report) Names(streetType string) []string {
	return append([]string(nil), r.names[streetType]...)
}

// Len returns the number of unexpected street types.
func (r Report) Len() int {
	return len(r.types)
}

// Map returns the report as a plain map.
func (r Report) Map() map[string][]string {
	m := make(map[string][]string, len(r.names))
	for t, names := range r.names {
		m[t] = append([]string(nil), names...)
	}

	return m
}

func (r Report) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.Map())
}

func (r Report) MarshalYAML() (interface{}, error) {
	return r.Map(), nil
}
