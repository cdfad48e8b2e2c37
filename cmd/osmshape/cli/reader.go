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
	"os"

	"github.com/spf13/pflag"
)

// fileValue is a pflag.Value that opens the named file when the flag is set.
type fileValue struct {
	value    **os.File
	typename string
}

// NewReaderValue creates a flag value that opens a file for reading into p.
// "-" selects stdin.
func NewReaderValue(def *os.File, p **os.File, typename string) pflag.Value {
	*p = def

	return &fileValue{value: p, typename: typename}
}

func (v *fileValue) Set(name string) error {
	if name == "-" {
		*v.value = os.Stdin

		return nil
	}

	f, err := os.Open(name)
	if err != nil {
		return err
	}

	if *v.value != nil && *v.value != os.Stdin {
		_ = (*v.value).Close()
	}

	*v.value = f

	return nil
}

func (v *fileValue) Type() string {
	return v.typename
}

func (v *fileValue) String() string {
	if *v.value == nil {
		return ""
	}

	return (*v.value).Name()
}
