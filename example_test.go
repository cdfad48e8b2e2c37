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

package osmshape_test

import (
	"context"
	"fmt"
	"log"
	"os"

	"m4o.io/osmshape"
	"m4o.io/osmshape/model"
)

func Example() {
	in, err := os.Open("testdata/vigo.osm")
	if err != nil {
		log.Fatal(err)
	}
	defer in.Close()

	opts := []osmshape.Option{osmshape.WithLocality("vigo"), osmshape.WithSkipMalformed(true)}

	src, err := osmshape.Open(in, opts...)
	if err != nil {
		log.Fatal(err)
	}
	defer src.Close()

	records, err := src.Records(context.Background())
	if err != nil {
		log.Fatal(err)
	}

	p := osmshape.NewProcessor(opts...)

	err = p.Process(context.Background(), records, func(doc *model.Document) error {
		id, _ := doc.String(model.KeyID)
		street, _ := doc.Address().String("street")
		fmt.Printf("%s: %s\n", id, street)

		return nil
	})
	if err != nil {
		log.Fatal(err)
	}

	stats := p.Stats()
	fmt.Printf("Records: %d, Documents: %d, Malformed: %d\n", stats.Records, stats.Emitted, stats.Malformed)
	// Output:
	// 1: rua real
	// 10: avenida. de madrid
	// 5: rua travesia nova
	// Records: 7, Documents: 3, Malformed: 1
}
