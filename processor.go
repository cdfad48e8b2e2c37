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

// Package osmshape turns an OpenStreetMap extract into one document per
// reliable node or way of a locality, with normalized street names.
package osmshape

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/destel/rill"

	"m4o.io/osmshape/census"
	"m4o.io/osmshape/model"
	"m4o.io/osmshape/shape"
	"m4o.io/osmshape/street"
)

// Emitter receives the documents of a run, in record order.
type Emitter func(doc *model.Document) error

// Stats summarises a run.
type Stats struct {
	Records     int64              `json:"records"     yaml:"records"`
	Accepted    int64              `json:"accepted"    yaml:"accepted"`
	Emitted     int64              `json:"emitted"     yaml:"emitted"`
	Malformed   int64              `json:"malformed"   yaml:"malformed"`
	BoundingBox *model.BoundingBox `json:"boundingBox" yaml:"boundingBox"`
}

// Processor folds a stream of records into documents while auditing street
// names and taking a census of the records it sees.
type Processor struct {
	cfg     options
	shaper  *shape.Shaper
	auditor *street.Auditor
	census  *census.Census
	stats   Stats
}

// NewProcessor returns a new processor configured with opts.
func NewProcessor(opts ...Option) *Processor {
	cfg := newConfig(opts)

	return &Processor{
		cfg: cfg,
		shaper: shape.NewShaper(cfg.locality,
			shape.WithVocabulary(cfg.vocabulary),
			shape.WithReliability(cfg.reliable),
			shape.WithLocalityPredicate(cfg.belongs)),
		auditor: street.NewAuditor(cfg.vocabulary),
		census:  census.New(),
		stats:   Stats{BoundingBox: model.InitialBoundingBox()},
	}
}

// Process consumes records one at a time, in order, passing every document
// to emit.  The first read, shaping or emit error stops the run; a malformed
// record is skipped instead when the processor was built with
// WithSkipMalformed(true).  Whatever was accumulated before an error or a
// cancellation is a prefix of what a full run would produce.
func (p *Processor) Process(ctx context.Context, records <-chan rill.Try[*model.Record], emit Emitter) error {
	err := rill.ForEach(records, 1, func(rec *model.Record) error {
		if err := ctx.Err(); err != nil {
			return err
		}

		return p.process(rec, emit)
	})
	if err != nil {
		return err
	}

	return ctx.Err()
}

func (p *Processor) process(rec *model.Record, emit Emitter) error {
	p.stats.Records++
	p.census.Observe(rec)

	if !p.shaper.Accepts(rec) {
		return nil
	}

	p.stats.Accepted++
	p.auditor.Audit(rec.Tags)

	doc, err := p.shaper.Shape(rec)
	if err != nil {
		id, _ := rec.Attr(model.AttrID)

		if p.cfg.skipMalformed && errors.Is(err, shape.ErrMalformedNumericField) {
			p.stats.Malformed++
			slog.Warn("skipping malformed record", "type", rec.Type, "id", id, "error", err)

			return nil
		}

		return fmt.Errorf("unable to shape %v %s: %w", rec.Type, id, err)
	}

	if pos, ok := doc.Position(); ok {
		p.stats.BoundingBox.ExpandWithLatLng(pos.Lat(), pos.Lon())
	}

	if err := emit(doc); err != nil {
		return fmt.Errorf("unable to emit document: %w", err)
	}

	p.stats.Emitted++

	return nil
}

// Locality returns the city whose records are kept.
func (p *Processor) Locality() string {
	return p.shaper.Locality()
}

// Stats returns a copy of the run statistics.
func (p *Processor) Stats() Stats {
	s := p.stats
	bbox := *p.stats.BoundingBox
	s.BoundingBox = &bbox

	return s
}

// Report returns the street types found outside the vocabulary.
func (p *Processor) Report() street.Report {
	return p.auditor.Report()
}

// Census returns the diagnostics gathered over every node and way.
func (p *Processor) Census() *census.Census {
	return p.census
}
