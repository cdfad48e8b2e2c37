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

package osmshape

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/destel/rill"

	"m4o.io/osmshape/internal/codec"
	"m4o.io/osmshape/internal/osmpbf"
	"m4o.io/osmshape/internal/osmxml"
	"m4o.io/osmshape/model"
)

// Source is an OSM stream whose compression and encoding have been
// recognised.
type Source struct {
	Format      Format
	Compression codec.Compression

	rc  io.ReadCloser
	br  *bufio.Reader
	cfg options
}

// Open recognises the compression and the encoding of r.  Closing the
// source does not close r.
func Open(r io.Reader, opts ...Option) (*Source, error) {
	cfg := newConfig(opts)

	rc, c, err := codec.OpenReader(r)
	if err != nil {
		return nil, err
	}

	br := bufio.NewReader(rc)

	f, err := sniffFormat(br)
	if err != nil {
		_ = rc.Close()

		return nil, fmt.Errorf("cannot open %v stream: %w", c, err)
	}

	return &Source{Format: f, Compression: c, rc: rc, br: br, cfg: cfg}, nil
}

// Records streams the records of the source in encounter order.  The first
// read error ends the stream.
func (s *Source) Records(ctx context.Context) (<-chan rill.Try[*model.Record], error) {
	switch s.Format {
	case PBF:
		d, err := osmpbf.NewDecoder(s.br, osmpbf.WithNCpus(s.cfg.nCPU))
		if err != nil {
			return nil, err
		}

		slog.Debug("reading pbf", "program", d.Header().WritingProgram, "source", d.Header().Source)

		return d.Records(ctx), nil
	case XML:
		return generateXML(ctx, osmxml.NewDecoder(s.br)), nil
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownFormat, s.Format)
	}
}

// Close releases the decompressor.
func (s *Source) Close() error {
	return s.rc.Close()
}

func generateXML(ctx context.Context, d *osmxml.Decoder) <-chan rill.Try[*model.Record] {
	ch := make(chan rill.Try[*model.Record])

	go func() {
		defer close(ch)

		for {
			rec, err := d.Decode()
			if errors.Is(err, io.EOF) {
				return
			}

			if err != nil {
				slog.Error("unable to decode element", "error", err)
			}

			select {
			case <-ctx.Done():
				return
			case ch <- rill.Wrap(rec, err):
			}

			if err != nil {
				return
			}
		}
	}()

	return ch
}
