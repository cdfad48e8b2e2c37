// Copyright 2026 the original author or authors.
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
	"fmt"

	"golang.org/x/exp/constraints"
	"google.golang.org/protobuf/encoding/protowire"
)

// field is a single decoded protobuf field.  Only varint and length
// delimited fields are surfaced; others are skipped.
type field struct {
	num    protowire.Number
	typ    protowire.Type
	varint uint64
	bytes  []byte
}

// scan calls fn for every field of the protobuf message in b.
func scan(b []byte, fn func(f field) error) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return fmt.Errorf("bad field tag: %w", protowire.ParseError(n))
		}

		b = b[n:]
		f := field{num: num, typ: typ}

		switch typ {
		case protowire.VarintType:
			f.varint, n = protowire.ConsumeVarint(b)
		case protowire.BytesType:
			f.bytes, n = protowire.ConsumeBytes(b)
		default:
			n = protowire.ConsumeFieldValue(num, typ, b)
		}

		if n < 0 {
			return fmt.Errorf("bad field %d: %w", num, protowire.ParseError(n))
		}

		b = b[n:]

		if typ != protowire.VarintType && typ != protowire.BytesType {
			continue
		}

		if err := fn(f); err != nil {
			return err
		}
	}

	return nil
}

// varints appends the values of a repeated varint field, packed or not.
func (f field) varints(dst []uint64) ([]uint64, error) {
	if f.typ == protowire.VarintType {
		return append(dst, f.varint), nil
	}

	b := f.bytes
	for len(b) > 0 {
		v, n := protowire.ConsumeVarint(b)
		if n < 0 {
			return nil, fmt.Errorf("bad packed field %d: %w", f.num, protowire.ParseError(n))
		}

		dst = append(dst, v)
		b = b[n:]
	}

	return dst, nil
}

func (f field) sint64s(dst []int64) ([]int64, error) {
	vs, err := f.varints(nil)
	if err != nil {
		return nil, err
	}

	for _, v := range vs {
		dst = append(dst, protowire.DecodeZigZag(v))
	}

	return dst, nil
}

func (f field) int64s(dst []int64) ([]int64, error) {
	vs, err := f.varints(nil)
	if err != nil {
		return nil, err
	}

	for _, v := range vs {
		dst = append(dst, int64(v))
	}

	return dst, nil
}

func (f field) sint64() int64 {
	return protowire.DecodeZigZag(f.varint)
}

// undelta replaces delta coded values by their running sum.
func undelta[T constraints.Integer](vs []T) []T {
	var acc T
	for i, v := range vs {
		acc += v
		vs[i] = acc
	}

	return vs
}
