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

package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// Render is the output encoding of a report.
type Render int

const (
	Text Render = iota
	JSON
	YAML
)

// AddRenderFlags registers the --json and --yaml flags.
func AddRenderFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.BoolP("json", "j", false, "format the report in JSON")
	flags.BoolP("yaml", "y", false, "format the report in YAML")
	cmd.MarkFlagsMutuallyExclusive("json", "yaml")
}

// RenderFlag returns the encoding selected by AddRenderFlags.
func RenderFlag(cmd *cobra.Command) (Render, error) {
	flags := cmd.Flags()

	jsonfmt, err := flags.GetBool("json")
	if err != nil {
		return Text, err
	}

	yamlfmt, err := flags.GetBool("yaml")
	if err != nil {
		return Text, err
	}

	switch {
	case jsonfmt:
		return JSON, nil
	case yamlfmt:
		return YAML, nil
	default:
		return Text, nil
	}
}

// Encode writes v as JSON or YAML.
func Encode(out io.Writer, r Render, v any) error {
	switch r {
	case JSON:
		b, err := json.Marshal(v)
		if err != nil {
			return err
		}

		_, err = fmt.Fprintln(out, string(b))

		return err
	case YAML:
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)

		if err := enc.Encode(v); err != nil {
			return err
		}

		return enc.Close()
	default:
		return fmt.Errorf("no encoder for render %d", r)
	}
}
