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
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"m4o.io/osmshape/internal/core"
)

const (
	blobTypeHeader = "OSMHeader"
	blobTypeData   = "OSMData"

	// maxBlobHeaderSize and maxBlobSize are the limits set by the format.
	maxBlobHeaderSize = 64 * 1024
	maxBlobSize       = 32 * 1024 * 1024
)

var ErrBlobTooLarge = errors.New("blob exceeds maximum size")

// blob is a file block: its type and its possibly compressed payload.
type blob struct {
	typ     string
	rawSize int32
	data    []byte
	kind    compression
}

// compression is the payload encoding of a blob.
type compression int

const (
	raw compression = iota
	zlibData
	lzmaData
	bzip2Data
	lz4Data
	zstdData
)

// readBlob reads a PBF blob from the rdr.
func readBlob(rdr io.Reader) (*blob, error) {
	buf := core.NewPooledBuffer()
	defer buf.Close()

	var size uint32

	if err := binary.Read(rdr, binary.BigEndian, &size); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, io.EOF
		}

		return nil, fmt.Errorf("error reading blob header size: %w", err)
	}

	if size > maxBlobHeaderSize {
		return nil, fmt.Errorf("%w: header of %d bytes", ErrBlobTooLarge, size)
	}

	if _, err := io.CopyN(buf, rdr, int64(size)); err != nil {
		return nil, fmt.Errorf("error reading blob header: %w", truncated(err))
	}

	b := &blob{}

	var dataSize int64

	err := scan(buf.Bytes(), func(f field) error {
		switch f.num {
		case 1:
			b.typ = string(f.bytes)
		case 3:
			dataSize = int64(int32(f.varint))
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("error unmarshalling blob header: %w", err)
	}

	if dataSize < 0 || dataSize > maxBlobSize {
		return nil, fmt.Errorf("%w: blob of %d bytes", ErrBlobTooLarge, dataSize)
	}

	buf.Reset()

	if _, err := io.CopyN(buf, rdr, dataSize); err != nil {
		return nil, fmt.Errorf("error reading blob: %w", truncated(err))
	}

	err = scan(buf.Bytes(), func(f field) error {
		switch f.num {
		case 1:
			b.kind, b.data = raw, clone(f.bytes)
		case 2:
			b.rawSize = int32(f.varint)
		case 3:
			b.kind, b.data = zlibData, clone(f.bytes)
		case 4:
			b.kind, b.data = lzmaData, clone(f.bytes)
		case 5:
			b.kind, b.data = bzip2Data, clone(f.bytes)
		case 6:
			b.kind, b.data = lz4Data, clone(f.bytes)
		case 7:
			b.kind, b.data = zstdData, clone(f.bytes)
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("error unmarshalling blob: %w", err)
	}

	return b, nil
}

// truncated reports a short read inside a blob as io.ErrUnexpectedEOF so it
// cannot be mistaken for the end of the stream.
func truncated(err error) error {
	if errors.Is(err, io.EOF) {
		return io.ErrUnexpectedEOF
	}

	return err
}

// clone copies bytes out of the pooled buffer they were read into.
func clone(b []byte) []byte {
	return append([]byte(nil), b...)
}
