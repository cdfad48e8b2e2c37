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

import (
	"encoding/json"
	"io"

	"m4o.io/osmshape/model"
)

const indent = "  "

// DocumentWriter writes documents as JSON, one per line or indented.
type DocumentWriter struct {
	enc *json.Encoder
}

// NewDocumentWriter returns a writer emitting to w.
func NewDocumentWriter(w io.Writer, pretty bool) *DocumentWriter {
	enc := json.NewEncoder(w)
	if pretty {
		enc.SetIndent("", indent)
	}

	return &DocumentWriter{enc: enc}
}

// Write encodes one document.  It has the signature of an Emitter.
func (dw *DocumentWriter) Write(doc *model.Document) error {
	return dw.enc.Encode(doc)
}
