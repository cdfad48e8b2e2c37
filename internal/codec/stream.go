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

package codec

import (
	"bufio"
	"compress/bzip2"
	"fmt"
	"io"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4"
	"github.com/ulikunitz/xz"
)

type readCloser struct {
	io.Reader
	close func() error
}

func (rc readCloser) Close() error {
	return rc.close()
}

type nopCloserWriter struct {
	io.Writer
}

func (w nopCloserWriter) Close() error {
	return nil
}

func nopClose() error {
	return nil
}

// NewReader decompresses r.  Closing the returned reader does not close r.
func NewReader(r io.Reader, c Compression) (io.ReadCloser, error) {
	switch c {
	case NONE:
		return io.NopCloser(r), nil
	case GZIP:
		zr, err := gzip.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("cannot open gzip stream: %w", err)
		}

		return zr, nil
	case BZIP2:
		return readCloser{Reader: bzip2.NewReader(r), close: nopClose}, nil
	case XZ:
		xr, err := xz.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("cannot open xz stream: %w", err)
		}

		return readCloser{Reader: xr, close: nopClose}, nil
	case ZSTD:
		zr, err := zstd.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("cannot open zstd stream: %w", err)
		}

		return readCloser{Reader: zr, close: func() error {
			zr.Close()

			return nil
		}}, nil
	case LZ4:
		return readCloser{Reader: lz4.NewReader(r), close: nopClose}, nil
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownCompressionType, c)
	}
}

// NewWriter compresses into w.  Closing the returned writer flushes the
// compressed stream but does not close w.
func NewWriter(w io.Writer, c Compression) (io.WriteCloser, error) {
	switch c {
	case NONE:
		return nopCloserWriter{w}, nil
	case GZIP:
		return gzip.NewWriter(w), nil
	case BZIP2:
		return nil, fmt.Errorf("%w: cannot write %v", ErrUnsupported, c)
	case XZ:
		xw, err := xz.NewWriter(w)
		if err != nil {
			return nil, fmt.Errorf("cannot create xz stream: %w", err)
		}

		return xw, nil
	case ZSTD:
		zw, err := zstd.NewWriter(w)
		if err != nil {
			return nil, fmt.Errorf("cannot create zstd stream: %w", err)
		}

		return zw, nil
	case LZ4:
		return lz4.NewWriter(w), nil
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownCompressionType, c)
	}
}

// OpenReader recognises the compression of r from its content and returns
// the decompressed stream.
func OpenReader(r io.Reader) (io.ReadCloser, Compression, error) {
	br := bufio.NewReader(r)
	c := Sniff(br)

	rc, err := NewReader(br, c)
	if err != nil {
		return nil, c, err
	}

	return rc, c, nil
}
