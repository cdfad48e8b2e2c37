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
	"fmt"
	"io"
	"os"
	"path/filepath"

	pb "gopkg.in/cheggaaa/pb.v1"
)

const barWidth = 79

// progressBar is an io.ReadCloser over an input file that reports the bytes
// read on stderr.  Closing it closes the file and clears the progress line.
type progressBar struct {
	f   *os.File
	r   io.Reader
	bar *pb.ProgressBar
}

// WrapInputFile starts a progress bar sized to f and returns a reader that
// advances it.  Stdin is returned as is since its size is unknown.
func WrapInputFile(f *os.File) (io.ReadCloser, error) {
	if f == os.Stdin {
		return os.Stdin, nil
	}

	fi, err := f.Stat()
	if err != nil {
		return nil, err
	}

	bar := pb.New64(fi.Size()).
		SetUnits(pb.U_BYTES_DEC).
		SetWidth(barWidth).
		Prefix(filepath.Base(f.Name()) + " ")
	bar.Output = os.Stderr
	bar.Start()

	return progressBar{f: f, r: bar.NewProxyReader(f), bar: bar}, nil
}

func (p progressBar) Read(b []byte) (int, error) {
	return p.r.Read(b)
}

// Close finishes the bar without printing a newline and closes the file.
func (p progressBar) Close() error {
	p.bar.Output = nil
	p.bar.NotPrint = true
	p.bar.Finish()

	fmt.Fprint(os.Stderr, "\033[2K\r") // clear status bar

	return p.f.Close()
}
