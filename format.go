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

//go:generate stringer -type=Format -linecomment

import (
	"bufio"
	"bytes"
	"errors"
)

// Format is an enumeration of OSM file encodings.
type Format int

const (
	XML Format = iota // xml
	PBF               // pbf
)

var ErrUnknownFormat = errors.New("unrecognised OSM format")

const (
	sniffSize = 64
	utf8BOM   = "\xef\xbb\xbf"
	pbfMarker = "OSMHeader"
)

// sniffFormat peeks at the head of an uncompressed stream.  XML starts with
// markup, PBF with a length prefixed OSMHeader blob header.
func sniffFormat(br *bufio.Reader) (Format, error) {
	head, _ := br.Peek(sniffSize)

	trimmed := bytes.TrimLeft(bytes.TrimPrefix(head, []byte(utf8BOM)), " \t\r\n")
	if bytes.HasPrefix(trimmed, []byte("<")) {
		return XML, nil
	}

	if bytes.Contains(head, []byte(pbfMarker)) {
		return PBF, nil
	}

	return XML, ErrUnknownFormat
}
