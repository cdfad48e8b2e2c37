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

// Package shapecmd implements the shape sub-command.
package shapecmd

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	humanize "github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"m4o.io/osmshape"
	"m4o.io/osmshape/cmd/osmshape/cli"
	"m4o.io/osmshape/internal/codec"
)

const (
	stdout     = "-"
	jsonExt    = ".json"
	outputPerm = 0o644
)

var summary io.Writer = os.Stderr

func init() {
	cli.RootCmd.AddCommand(shapeCmd)

	flags := shapeCmd.Flags()
	flags.StringP("output", "o", "", "output file, - for stdout (default <input>.json)")
	flags.BoolP("pretty", "p", false, "indent the JSON documents")
	flags.StringP("compression", "z", "", "output compression: none, gzip, xz, zstd or lz4 (default from the output name)")
}

var shapeCmd = &cobra.Command{
	Use:   "shape [<OSM file>]",
	Short: "Write one JSON document per reliable node or way of the city",
	Long: "Write one JSON document per reliable node or way of the city, with " +
		"street names normalized against the street-type vocabulary",
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		opts, err := cli.Options(cmd)
		if err != nil {
			log.Fatal(err)
		}

		flags := cmd.Flags()

		output, err := flags.GetString("output")
		if err != nil {
			log.Fatal(err)
		}

		compression, err := flags.GetString("compression")
		if err != nil {
			log.Fatal(err)
		}

		pretty, err := flags.GetBool("pretty")
		if err != nil {
			log.Fatal(err)
		}

		in, name, err := cli.OpenInput(cmd, args)
		if err != nil {
			log.Fatal(err)
		}

		path, c, err := outputTarget(name, output, compression)
		if err != nil {
			log.Fatal(err)
		}

		stats, err := runShape(cmd.Context(), in, func() (io.WriteCloser, error) { return create(path) }, c, pretty, opts)

		if cerr := in.Close(); cerr != nil && err == nil {
			err = cerr
		}

		if err != nil {
			log.Fatal(err)
		}

		renderStats(stats, path)
	},
}

// outputTarget picks the output path and compression.  An explicit
// compression wins over the one implied by the output name.
func outputTarget(input, output, compression string) (string, codec.Compression, error) {
	if output == "" {
		if input == "" {
			output = stdout
		} else {
			output = defaultOutput(input)
		}
	}

	c, _ := codec.FromPath(output)
	if output == stdout {
		c = codec.NONE
	}

	if compression != "" {
		var err error

		if c, err = codec.ParseCompression(compression); err != nil {
			return "", codec.NONE, err
		}
	}

	return output, c, nil
}

// defaultOutput names the output after the input, dropping any compression
// and OSM extension: vigo.osm.bz2 becomes vigo.json.
func defaultOutput(input string) string {
	_, base := codec.FromPath(input)

	for _, ext := range []string{".pbf", ".osm"} {
		base = strings.TrimSuffix(base, ext)
	}

	return base + jsonExt
}

func create(path string) (io.WriteCloser, error) {
	if path == stdout {
		return nopCloser{os.Stdout}, nil
	}

	return os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, outputPerm)
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }

// runShape writes the documents of in to the output returned by open, which
// is only called once the input has been recognised.
func runShape(
	ctx context.Context,
	in io.Reader,
	open func() (io.WriteCloser, error),
	c codec.Compression,
	pretty bool,
	opts []osmshape.Option,
) (_ osmshape.Stats, err error) {
	if ctx == nil {
		ctx = context.Background()
	}

	src, err := osmshape.Open(in, opts...)
	if err != nil {
		return osmshape.Stats{}, err
	}

	defer src.Close()

	records, err := src.Records(ctx)
	if err != nil {
		return osmshape.Stats{}, err
	}

	out, err := open()
	if err != nil {
		return osmshape.Stats{}, err
	}

	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	w, err := codec.NewWriter(out, c)
	if err != nil {
		return osmshape.Stats{}, err
	}

	p := osmshape.NewProcessor(opts...)
	err = p.Process(ctx, records, osmshape.NewDocumentWriter(w, pretty).Write)

	if cerr := w.Close(); cerr != nil && err == nil {
		err = fmt.Errorf("unable to flush output: %w", cerr)
	}

	return p.Stats(), err
}

func renderStats(stats osmshape.Stats, path string) {
	if path == stdout {
		path = "stdout"
	}

	fmt.Fprintf(summary, "Records: %s\n", humanize.Comma(stats.Records))
	fmt.Fprintf(summary, "Accepted: %s\n", humanize.Comma(stats.Accepted))
	fmt.Fprintf(summary, "Malformed: %s\n", humanize.Comma(stats.Malformed))
	fmt.Fprintf(summary, "Documents: %s written to %s\n", humanize.Comma(stats.Emitted), path)

	if !stats.BoundingBox.IsEmpty() {
		fmt.Fprintf(summary, "BoundingBox: %s\n", stats.BoundingBox)
		fmt.Fprintf(summary, "Diagonal: %s km\n", humanize.FtoaWithDigits(stats.BoundingBox.DiagonalKm(), 3))
	}
}
