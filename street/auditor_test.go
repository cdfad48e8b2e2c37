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

package street_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"m4o.io/osmshape/model"
	"m4o.io/osmshape/street"
)

func TestAuditReportsOnlyUnexpectedTypes(t *testing.T) {
	a := street.NewAuditor(street.DefaultVocabulary())

	a.Audit([]model.Tag{
		{Key: "addr:street", Value: "rua do Porto"},
		{Key: "addr:street", Value: "Calle Real"},
	})

	r := a.Report()

	assert.Equal(t, 1, r.Len())
	assert.Equal(t, []string{"Calle"}, r.Types())
	assert.Equal(t, []string{"Calle Real"}, r.Names("Calle"))
}

func TestAuditIsRawAndDeduplicates(t *testing.T) {
	a := street.NewAuditor(street.DefaultVocabulary())

	assert.True(t, a.AuditStreet("Rúa Nova"))
	assert.False(t, a.AuditStreet("Rúa Nova"))
	assert.True(t, a.AuditStreet("Rúa Vella"))
	assert.True(t, a.AuditStreet("Avda. Castelao"))
	assert.False(t, a.AuditStreet("avenida Castelao"))
	assert.False(t, a.AuditStreet(" leading space"))

	a.Audit([]model.Tag{{Key: "name", Value: "Calle Ignorada"}})

	r := a.Report()

	assert.Equal(t, []string{"Rúa", "Avda"}, r.Types())
	assert.Equal(t, []string{"Rúa Nova", "Rúa Vella"}, r.Names("Rúa"))
	assert.Equal(t, []string{"Avda. Castelao"}, r.Names("Avda"))
	assert.Empty(t, r.Names("Calle"))
}

func TestReportIsSnapshot(t *testing.T) {
	a := street.NewAuditor(street.DefaultVocabulary())
	a.AuditStreet("Calle Real")

	r := a.Report()
	a.AuditStreet("Calle Nova")

	assert.Equal(t, []string{"Calle Real"}, r.Names("Calle"))
	assert.Equal(t, []string{"Calle Real", "Calle Nova"}, a.Report().Names("Calle"))
}

func TestReportMarshal(t *testing.T) {
	a := street.NewAuditor(street.DefaultVocabulary())
	a.AuditStreet("Travesía Nova")
	a.AuditStreet("Calle Real")

	b, err := json.Marshal(a.Report())
	require.NoError(t, err)
	assert.JSONEq(t, `{"Calle":["Calle Real"],"Travesía":["Travesía Nova"]}`, string(b))

	y, err := yaml.Marshal(a.Report())
	require.NoError(t, err)
	assert.Equal(t, "Calle:\n    - Calle Real\nTravesía:\n    - Travesía Nova\n", string(y))
}
