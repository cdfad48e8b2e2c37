// Copyright 2017-26 the original author or authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package osmpbf

import (
	"errors"
	"fmt"
	"slices"

	"m4o.io/osmshape/model"
)

// Features a reader must understand before decoding the data.
const (
	FeatureOsmSchema    = "OsmSchema-V0.6"
	FeatureDenseNodes   = "DenseNodes"
	FeatureHistoricInfo = "HistoricalInformation"
	bboxGranularity     = 1
)

var (
	ErrUnsupportedFeature = errors.New("unsupported required feature")
	ErrMissingHeader      = errors.New("expected OSMHeader blob")
)

var supportedFeatures = []string{FeatureOsmSchema, FeatureDenseNodes, FeatureHistoricInfo}

// Header is the content of the OSMHeader blob that starts every file.
type Header struct {
	BoundingBox      *model.BoundingBox
	RequiredFeatures []string
	OptionalFeatures []string
	WritingProgram   string
	Source           string
}

func parseHeaderBlock(buf []byte) (Header, error) {
	var h Header

	err := scan(buf, func(f field) error {
		switch f.num {
		case 1:
			bbox, err := parseHeaderBBox(f.bytes)
			if err != nil {
				return err
			}

			h.BoundingBox = bbox
		case 4:
			h.RequiredFeatures = append(h.RequiredFeatures, string(f.bytes))
		case 5:
			h.OptionalFeatures = append(h.OptionalFeatures, string(f.bytes))
		case 16:
			h.WritingProgram = string(f.bytes)
		case 17:
			h.Source = string(f.bytes)
		}

		return nil
	})
	if err != nil {
		return Header{}, fmt.Errorf("unable to unmarshal header block: %w", err)
	}

	for _, feature := range h.RequiredFeatures {
		if !slices.Contains(supportedFeatures, feature) {
			return Header{}, fmt.Errorf("%w: %s", ErrUnsupportedFeature, feature)
		}
	}

	return h, nil
}

// parseHeaderBBox reads a HeaderBBox, whose coordinates are in nanodegrees.
func parseHeaderBBox(buf []byte) (*model.BoundingBox, error) {
	bbox := &model.BoundingBox{}

	err := scan(buf, func(f field) error {
		d := model.ToDegrees(0, bboxGranularity, f.sint64())

		switch f.num {
		case 1:
			bbox.Left = d
		case 2:
			bbox.Right = d
		case 3:
			bbox.Top = d
		case 4:
			bbox.Bottom = d
		}

		return nil
	})

	return bbox, err
}
