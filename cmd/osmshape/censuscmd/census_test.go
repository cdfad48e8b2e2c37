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

package censuscmd

import (
	"bytes"
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"m4o.io/osmshape/census"
	"m4o.io/osmshape/cmd/osmshape/cli"
)

func censusFixture(t *testing.T) *census.Census {
	t.Helper()

	f, err := os.Open("../../../testdata/vigo.osm")
	require.NoError(t, err)

	defer f.Close()

	c, err := runCensus(context.Background(), f, nil)
	require.NoError(t, err)

	return c
}

func TestRunCensus(t *testing.T) {
	c := censusFixture(t)

	assert.Equal(t, map[string]int{"Vigo": 2, "Redondela": 1, "vigo": 1}, c.CityNames)
	assert.Equal(t, map[string]int{"position?": 1}, c.FixmeValues)
	assert.Equal(t, int64(5), c.ReliableRecords)
	assert.Equal(t, int64(1), c.FixmeRecords)
}

func TestRanked(t *testing.T) {
	m := map[string]int{"b": 2, "a": 2, "c": 5, "d": 1}

	assert.Equal(t, []count{{"c", 5}, {"a", 2}, {"b", 2}, {"d", 1}}, ranked(m, 0))
	assert.Equal(t, []count{{"c", 5}, {"a", 2}}, ranked(m, 2))
}

func TestRenderText(t *testing.T) {
	var buf bytes.Buffer

	saved := out

	defer func() { out = saved }()

	out = &buf

	c := census.New()
	c.CityNames["Vigo"] = 12345
	c.CityNames["Redondela"] = 3
	c.FixmeValues["continue"] = 2
	c.ReliableRecords = 1234567
	c.FixmeRecords = 2

	renderTxt(c, 1)

	assert.Equal(t, `ReliableRecords: 1,234,567
FixmeRecords: 2
CityNames:
    Vigo: 12,345
FixmeValues:
    continue: 2
`, buf.String())
}

func TestRenderJSON(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, cli.Encode(&buf, cli.JSON, censusFixture(t)))

	assert.JSONEq(t, `{
		"city_names": {"Vigo": 2, "Redondela": 1, "vigo": 1},
		"fixme_values": {"position?": 1},
		"fixme_records": 1,
		"reliable_records": 5
	}`, buf.String())
}
