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
	"runtime"
)

// DefaultBufferSize is the default length of the record channel.
const DefaultBufferSize = 1024

// DefaultNCpu provides the default number of CPUs used to unpack blobs.
func DefaultNCpu() int {
	return max(runtime.GOMAXPROCS(-1)-1, 1)
}

type decoderOptions struct {
	bufferSize int // length of the record channel
	nCPU       int // goroutines unpacking blobs
}

// Option configures how we set up the decoder.
type Option func(*decoderOptions)

// WithBufferSize sets the length of the record channel.
func WithBufferSize(s int) Option {
	return func(o *decoderOptions) {
		o.bufferSize = max(s, 0)
	}
}

// WithNCpus sets the number of goroutines unpacking blobs.  Records are
// delivered in file order whatever the value.
func WithNCpus(n int) Option {
	return func(o *decoderOptions) {
		o.nCPU = max(n, 1)
	}
}

func defaultDecoderConfig() decoderOptions {
	return decoderOptions{
		bufferSize: DefaultBufferSize,
		nCPU:       DefaultNCpu(),
	}
}
