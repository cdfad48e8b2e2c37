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

package auditcmd

import (
	"bytes"
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"m4o.io/osmshape"
	"m4o.io/osmshape/cmd/osmshape/cli"
	"m4o.io/osmshape/street"
)

func auditFixture(t *testing.T) street.Report {
	t.Helper()

	f, err := os.Open("../../../testdata/vigo.osm")
	require.NoError(t, err)

	defer f.Close()

	report, err := runAudit(context.Background(), f, []osmshape.Option{osmshape.WithSkipMalformed(true)})
	require.NoError(t, err)

	return report
}

func capture(t *testing.T) *bytes.Buffer {
	t.Helper()

	buf := &bytes.Buffer{}
	saved := out
	out = buf

	t.Cleanup(func() { out = saved })

	return buf
}

func TestRunAudit(t *testing.T) {
	report := auditFixture(t)

	assert.Equal(t, []string{"Calle", "Avda", "Travesía"}, report.Types())
	assert.Equal(t, []string{"Avda. de Madrid"}, report.Names("Avda"))
}

func TestRenderText(t *testing.T) {
	buf := capture(t)

	renderTxt(auditFixture(t))

	assert.Equal(t, `Calle (1)
    Calle Real
Avda (1)
    Avda. de Madrid
Travesía (1)
    Travesía Nova
`, buf.String())
}

func TestRenderYAML(t *testing.T) {
	buf := capture(t)

	require.NoError(t, cli.Encode(out, cli.YAML, auditFixture(t)))

	assert.Equal(t, `Avda:
  - Avda. de Madrid
Calle:
  - Calle Real
Travesía:
  - Travesía Nova
`, buf.String())
}

func TestRenderJSON(t *testing.T) {
	buf := capture(t)

	require.NoError(t, cli.Encode(out, cli.JSON, auditFixture(t)))

	assert.JSONEq(t,
		`{"Avda":["Avda. de Madrid"],"Calle":["Calle Real"],"Travesía":["Travesía Nova"]}`,
		buf.String())
}
