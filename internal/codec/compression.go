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

// Package codec wraps input and output streams with the compression
// commonly applied to OSM extracts and their derived documents.
package codec

//go:generate stringer -type=Compression -linecomment

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// Compression is an enumeration of stream compression algorithms.
type Compression int

const (
	NONE  Compression = iota // none
	GZIP                     // gzip
	BZIP2                    // bzip2
	XZ                       // xz
	ZSTD                     // zstd
	LZ4                      // lz4
)

var (
	ErrUnknownCompressionType = errors.New("unknown compression type")
	ErrUnsupported            = errors.New("unsupported compression direction")
)

var extensions = map[string]Compression{
	".gz":  GZIP,
	".bz2": BZIP2,
	".xz":  XZ,
	".zst": ZSTD,
	".lz4": LZ4,
}

var magics = []struct {
	magic []byte
	c     Compression
}{
	{[]byte{0x1f, 0x8b}, GZIP},
	{[]byte("BZh"), BZIP2},
	{[]byte{0xfd, '7', 'z', 'X', 'Z', 0x00}, XZ},
	{[]byte{0x28, 0xb5, 0x2f, 0xfd}, ZSTD},
	{[]byte{0x04, 0x22, 0x4d, 0x18}, LZ4},
}

// ParseCompression converts the name of an algorithm into a Compression.
func ParseCompression(name string) (Compression, error) {
	for c := NONE; c <= LZ4; c++ {
		if strings.EqualFold(c.String(), name) {
			return c, nil
		}
	}

	return NONE, fmt.Errorf("%w: %q", ErrUnknownCompressionType, name)
}

// FromPath returns the compression implied by the extension of path along
// with the path stripped of that extension.
func FromPath(path string) (Compression, string) {
	ext := strings.ToLower(filepath.Ext(path))
	if c, ok := extensions[ext]; ok {
		return c, path[:len(path)-len(ext)]
	}

	return NONE, path
}

// Extension returns the file extension of the compression.
func (c Compression) Extension() string {
	for ext, e := range extensions {
		if e == c {
			return ext
		}
	}

	return ""
}

// Sniff peeks at the head of the stream to recognise a compressed format.
func Sniff(br *bufio.Reader) Compression {
	head, _ := br.Peek(8)

	for _, m := range magics {
		if bytes.HasPrefix(head, m.magic) {
			return m.c
		}
	}

	return NONE
}
