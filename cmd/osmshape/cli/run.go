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

package cli

import (
	"context"
	"io"

	"m4o.io/osmshape"
	"m4o.io/osmshape/model"
)

// Scan runs a processor over in, discarding the documents, and returns it
// for its diagnostics.
func Scan(ctx context.Context, in io.Reader, opts []osmshape.Option) (*osmshape.Processor, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	src, err := osmshape.Open(in, opts...)
	if err != nil {
		return nil, err
	}

	defer src.Close()

	records, err := src.Records(ctx)
	if err != nil {
		return nil, err
	}

	p := osmshape.NewProcessor(opts...)
	if err := p.Process(ctx, records, func(*model.Document) error { return nil }); err != nil {
		return p, err
	}

	return p, nil
}
