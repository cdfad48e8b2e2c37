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

// Package auditcmd implements the audit sub-command.
package auditcmd

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"

	humanize "github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"m4o.io/osmshape"
	"m4o.io/osmshape/cmd/osmshape/cli"
	"m4o.io/osmshape/street"
)

var out io.Writer = os.Stdout

func init() {
	cli.RootCmd.AddCommand(auditCmd)
	cli.AddRenderFlags(auditCmd)
}

var auditCmd = &cobra.Command{
	Use:   "audit [<OSM file>]",
	Short: "List the street types of the city that are not in the vocabulary",
	Long: "List, for every leading street type of the city's addr:street values " +
		"that is not in the vocabulary, the distinct street names it starts",
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		opts, err := cli.Options(cmd)
		if err != nil {
			log.Fatal(err)
		}

		render, err := cli.RenderFlag(cmd)
		if err != nil {
			log.Fatal(err)
		}

		in, _, err := cli.OpenInput(cmd, args)
		if err != nil {
			log.Fatal(err)
		}

		report, err := runAudit(cmd.Context(), in, opts)

		if cerr := in.Close(); cerr != nil && err == nil {
			err = cerr
		}

		if err != nil {
			log.Fatal(err)
		}

		if render == cli.Text {
			renderTxt(report)
		} else if err := cli.Encode(out, render, report); err != nil {
			log.Fatal(err)
		}
	},
}

func runAudit(ctx context.Context, in io.Reader, opts []osmshape.Option) (street.Report, error) {
	p, err := cli.Scan(ctx, in, opts)
	if p == nil {
		return street.Report{}, err
	}

	return p.Report(), err
}

func renderTxt(report street.Report) {
	for _, t := range report.Types() {
		names := report.Names(t)

		fmt.Fprintf(out, "%s (%s)\n", t, humanize.Comma(int64(len(names))))

		for _, name := range names {
			fmt.Fprintf(out, "    %s\n", name)
		}
	}
}
