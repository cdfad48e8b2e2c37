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

package filter_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"m4o.io/osmshape/filter"
	"m4o.io/osmshape/model"
)

func record(tags ...model.Tag) *model.Record {
	return &model.Record{Type: model.NODE, Tags: tags}
}

func TestIsReliable(t *testing.T) {
	assert.False(t, filter.IsReliable(record()))
	assert.False(t, filter.IsReliable(record(model.Tag{Key: "fixme", Value: "check"})))
	assert.True(t, filter.IsReliable(record(model.Tag{Key: "fixme", Value: "check"}, model.Tag{Key: "name", Value: "x"})))
	assert.True(t, filter.IsReliable(record(model.Tag{Key: "FIXME", Value: "check"})))
}

func TestBelongsTo(t *testing.T) {
	testCases := []struct {
		name     string
		tag      model.Tag
		expected bool
	}{
		{"addr:city", model.Tag{Key: "addr:city", Value: "Vigo"}, true},
		{"is_in:city", model.Tag{Key: "is_in:city", Value: "VIGO"}, true},
		{"is_in:municipality", model.Tag{Key: "is_in:municipality", Value: "vigo"}, true},
		{"other city", model.Tag{Key: "addr:city", Value: "Redondela"}, false},
		{"other key", model.Tag{Key: "name", Value: "Vigo"}, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, filter.BelongsTo(record(tc.tag), "vigo"))
		})
	}
}
