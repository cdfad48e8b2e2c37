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

package osmpbf

import (
	"bytes"
	"compress/bzip2"
	"errors"
	"fmt"
	"io"

	"github.com/klauspost/compress/zlib"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4"
	"github.com/ulikunitz/xz/lzma"

	"m4o.io/osmshape/internal/core"
)

var ErrUnknownCompressionType = errors.New("unknown blob compression type")

// unpack uncompresses the blob into buf.
//
// This method is not "buried" within the readBlob function so that decompression
// of blobs can be performed concurrently.
func unpack(buf *core.PooledBuffer, b *blob) ([]byte, error) {
	var factory func(data []byte) (io.Reader, error)

	switch b.kind {
	case raw:
		return b.data, nil
	case zlibData:
		factory = func(data []byte) (io.Reader, error) {
			return zlib.NewReader(bytes.NewReader(data))
		}
	case lzmaData:
		factory = func(data []byte) (io.Reader, error) {
			return lzma.NewReader(bytes.NewReader(data))
		}
	case bzip2Data:
		factory = func(data []byte) (io.Reader, error) {
			return bzip2.NewReader(bytes.NewReader(data)), nil
		}
	case lz4Data:
		factory = func(data []byte) (io.Reader, error) {
			return lz4.NewReader(bytes.NewReader(data)), nil
		}
	case zstdData:
		factory = func(data []byte) (io.Reader, error) {
			d, err := zstd.NewReader(bytes.NewReader(data), zstd.WithDecoderConcurrency(1))
			if err != nil {
				return nil, err
			}

			return d.IOReadCloser(), nil
		}
	default:
		return nil, ErrUnknownCompressionType
	}

	rawBufferSize := int(b.rawSize + bytes.MinRead)
	if rawBufferSize > buf.Cap() {
		buf.Grow(rawBufferSize)
	}

	rdr, err := factory(b.data)
	if err != nil {
		return nil, fmt.Errorf("unpacker factory error: %w", err)
	}

	if c, ok := rdr.(io.Closer); ok {
		defer c.Close()
	}

	if n, err := buf.ReadFrom(rdr); err != nil {
		return nil, fmt.Errorf("unpacker read error: %w", err)
	} else if n != int64(b.rawSize) {
		return nil, fmt.Errorf("raw blob data size %d but expected %d", n, b.rawSize)
	}

	return buf.Bytes(), nil
}
