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

// Package censuscmd implements the census sub-command.
package censuscmd

import (
	"cmp"
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"slices"

	humanize "github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"m4o.io/osmshape"
	"m4o.io/osmshape/census"
	"m4o.io/osmshape/cmd/osmshape/cli"
)

var out io.Writer = os.Stdout

func init() {
	cli.RootCmd.AddCommand(censusCmd)
	cli.AddRenderFlags(censusCmd)
	censusCmd.Flags().IntP("top", "t", 0, "only list the most frequent values (0 lists all)")
}

var censusCmd = &cobra.Command{
	Use:   "census [<OSM file>]",
	Short: "Count the city names and fixme notes of an OSM file",
	Long: "Count the addr:city values of reliable nodes and ways and the fixme " +
		"notes that make the other ones unreliable",
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

		top, err := cmd.Flags().GetInt("top")
		if err != nil {
			log.Fatal(err)
		}

		in, _, err := cli.OpenInput(cmd, args)
		if err != nil {
			log.Fatal(err)
		}

		c, err := runCensus(cmd.Context(), in, opts)

		if cerr := in.Close(); cerr != nil && err == nil {
			err = cerr
		}

		if err != nil {
			log.Fatal(err)
		}

		if render == cli.Text {
			renderTxt(c, top)
		} else if err := cli.Encode(out, render, c); err != nil {
			log.Fatal(err)
		}
	},
}

// runCensus scans the whole input.  Malformed records only matter to the
// shaper, so they never stop a census.
func runCensus(ctx context.Context, in io.Reader, opts []osmshape.Option) (*census.Census, error) {
	opts = append(opts, osmshape.WithSkipMalformed(true))

	p, err := cli.Scan(ctx, in, opts)
	if err != nil {
		return nil, err
	}

	return p.Census(), nil
}

type count struct {
	value string
	n     int
}

// ranked orders the counts by decreasing frequency, then by value.
func ranked(m map[string]int, top int) []count {
	counts := make([]count, 0, len(m))
	for v, n := range m {
		counts = append(counts, count{value: v, n: n})
	}

	slices.SortFunc(counts, func(a, b count) int {
		if c := cmp.Compare(b.n, a.n); c != 0 {
			return c
		}

		return cmp.Compare(a.value, b.value)
	})

	if top > 0 && top < len(counts) {
		counts = counts[:top]
	}

	return counts
}

func renderTxt(c *census.Census, top int) {
	fmt.Fprintf(out, "ReliableRecords: %s\n", humanize.Comma(c.ReliableRecords))
	fmt.Fprintf(out, "FixmeRecords: %s\n", humanize.Comma(c.FixmeRecords))

	fmt.Fprintln(out, "CityNames:")

	for _, cnt := range ranked(c.CityNames, top) {
		fmt.Fprintf(out, "    %s: %s\n", cnt.value, humanize.Comma(int64(cnt.n)))
	}

	fmt.Fprintln(out, "FixmeValues:")

	for _, cnt := range ranked(c.FixmeValues, top) {
		fmt.Fprintf(out, "    %s: %s\n", cnt.value, humanize.Comma(int64(cnt.n)))
	}
}
