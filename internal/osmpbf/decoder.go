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

// Package osmpbf streams the elements of an OpenStreetMap PBF file as
// records.
package osmpbf

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/destel/rill"

	"m4o.io/osmshape/internal/core"
	"m4o.io/osmshape/model"
)

// Decoder reads the records of a PBF stream.
type Decoder struct {
	rdr    io.Reader
	header Header
	cfg    decoderOptions
}

// NewDecoder returns a new decoder, configured with opts, that reads from
// rdr.  The OSMHeader blob is read and checked before returning.
func NewDecoder(rdr io.Reader, opts ...Option) (*Decoder, error) {
	cfg := defaultDecoderConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	b, err := readBlob(rdr)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty stream", ErrMissingHeader)
		}

		return nil, err
	}

	if b.typ != blobTypeHeader {
		return nil, fmt.Errorf("%w: got %q", ErrMissingHeader, b.typ)
	}

	buf := core.NewPooledBuffer()
	defer buf.Close()

	unpacked, err := unpack(buf, b)
	if err != nil {
		return nil, err
	}

	h, err := parseHeaderBlock(unpacked)
	if err != nil {
		return nil, err
	}

	return &Decoder{rdr: rdr, header: h, cfg: cfg}, nil
}

// Header returns the file header.
func (d *Decoder) Header() Header {
	return d.header
}

// Records streams the records of the file in file order.  The first error
// ends the stream.  Cancelling ctx stops reading; the channel is closed once
// the pipeline has drained.
func (d *Decoder) Records(ctx context.Context) <-chan rill.Try[*model.Record] {
	blobs := d.generate(ctx)
	blocks := rill.OrderedMap(blobs, d.cfg.nCPU, decodeBlob)

	return flatten(ctx, blocks, d.cfg.bufferSize)
}

// generate reads the remaining blobs.
func (d *Decoder) generate(ctx context.Context) <-chan rill.Try[*blob] {
	ch := make(chan rill.Try[*blob])

	go func() {
		defer close(ch)

		for {
			b, err := readBlob(d.rdr)
			if errors.Is(err, io.EOF) {
				return
			}

			if err != nil {
				slog.Error("unable to read blob", "error", err)
			}

			select {
			case <-ctx.Done():
				return
			case ch <- rill.Wrap(b, err):
			}

			if err != nil {
				return
			}
		}
	}()

	return ch
}

func decodeBlob(b *blob) ([]*model.Record, error) {
	switch b.typ {
	case blobTypeData:
	case blobTypeHeader:
		return nil, fmt.Errorf("%w: unexpected second header", ErrMissingHeader)
	default:
		// unknown blob types are skipped by readers
		slog.Debug("skipping blob", "type", b.typ)

		return nil, nil
	}

	buf := core.NewPooledBuffer()
	defer buf.Close()

	unpacked, err := unpack(buf, b)
	if err != nil {
		slog.Error("unable to unpack blob", "error", err)

		return nil, err
	}

	records, err := parsePrimitiveBlock(unpacked)
	if err != nil {
		slog.Error("unable to parse block", "error", err)

		return nil, err
	}

	return records, nil
}

// flatten forwards every record of every block, stopping after the first
// error.  The input is drained so upstream goroutines can exit.
func flatten(
	ctx context.Context,
	in <-chan rill.Try[[]*model.Record],
	size int,
) <-chan rill.Try[*model.Record] {
	out := make(chan rill.Try[*model.Record], size)

	go func() {
		defer close(out)
		defer rill.DrainNB(in)

		for block := range in {
			if block.Error != nil {
				select {
				case <-ctx.Done():
				case out <- rill.Try[*model.Record]{Error: block.Error}:
				}

				return
			}

			for _, rec := range block.Value {
				select {
				case <-ctx.Done():
					return
				case out <- rill.Try[*model.Record]{Value: rec}:
				}
			}
		}
	}()

	return out
}
