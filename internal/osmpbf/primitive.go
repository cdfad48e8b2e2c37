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
	"errors"
	"fmt"
	"strconv"
	"time"

	"m4o.io/osmshape/model"
)

const (
	defaultGranularity     = 100
	defaultDateGranularity = 1000
)

var ErrBadStringIndex = errors.New("string table index out of range")

type blockContext struct {
	strings         []string
	granularity     int32
	latOffset       int64
	lonOffset       int64
	dateGranularity int32
}

// parsePrimitiveBlock decodes the nodes, ways and relations of a block, in
// the order they are stored.
func parsePrimitiveBlock(buf []byte) ([]*model.Record, error) {
	c := &blockContext{
		granularity:     defaultGranularity,
		dateGranularity: defaultDateGranularity,
	}

	var groups [][]byte

	err := scan(buf, func(f field) error {
		switch f.num {
		case 1:
			return scan(f.bytes, func(s field) error {
				if s.num == 1 {
					c.strings = append(c.strings, string(s.bytes))
				}

				return nil
			})
		case 2:
			groups = append(groups, f.bytes)
		case 17:
			c.granularity = int32(f.varint)
		case 18:
			c.dateGranularity = int32(f.varint)
		case 19:
			c.latOffset = int64(f.varint)
		case 20:
			c.lonOffset = int64(f.varint)
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("unable to unmarshal primitive block: %w", err)
	}

	records := make([]*model.Record, 0)

	for _, g := range groups {
		err := scan(g, func(f field) error {
			var (
				decoded []*model.Record
				err     error
			)

			switch f.num {
			case 1:
				decoded, err = c.decodeNode(f.bytes)
			case 2:
				decoded, err = c.decodeDenseNodes(f.bytes)
			case 3:
				decoded, err = c.decodeWay(f.bytes)
			case 4:
				decoded, err = c.decodeRelation(f.bytes)
			}

			records = append(records, decoded...)

			return err
		})
		if err != nil {
			return nil, fmt.Errorf("unable to decode primitive group: %w", err)
		}
	}

	return records, nil
}

func (c *blockContext) string(i int64) (string, error) {
	if i < 0 || i >= int64(len(c.strings)) {
		return "", fmt.Errorf("%w: %d", ErrBadStringIndex, i)
	}

	return c.strings[i], nil
}

func (c *blockContext) decodeTags(keys, vals []int64) ([]model.Tag, error) {
	if len(keys) != len(vals) {
		return nil, fmt.Errorf("%d tag keys but %d values", len(keys), len(vals))
	}

	tags := make([]model.Tag, 0, len(keys))

	for i := range keys {
		k, err := c.string(keys[i])
		if err != nil {
			return nil, err
		}

		v, err := c.string(vals[i])
		if err != nil {
			return nil, err
		}

		tags = append(tags, model.Tag{Key: k, Value: v})
	}

	return tags, nil
}

// element holds the fields shared by nodes, ways and relations.
type element struct {
	id   int64
	keys []int64
	vals []int64
	info []byte
}

func (e *element) collect(f field, sintID bool) (bool, error) {
	var err error

	switch f.num {
	case 1:
		if sintID {
			e.id = f.sint64()
		} else {
			e.id = int64(f.varint)
		}
	case 2:
		e.keys, err = f.int64s(e.keys)
	case 3:
		e.vals, err = f.int64s(e.vals)
	case 4:
		e.info = f.bytes
	default:
		return false, nil
	}

	return true, err
}

func (c *blockContext) newRecord(et model.ElementType, e *element) (*model.Record, error) {
	tags, err := c.decodeTags(e.keys, e.vals)
	if err != nil {
		return nil, err
	}

	rec := &model.Record{
		Type:  et,
		Attrs: map[string]string{model.AttrID: strconv.FormatInt(e.id, 10)},
		Tags:  tags,
	}

	if e.info != nil {
		if err := c.decodeInfo(rec, e.info); err != nil {
			return nil, err
		}
	}

	return rec, nil
}

func (c *blockContext) decodeNode(b []byte) ([]*model.Record, error) {
	var (
		e        element
		lat, lon int64
	)

	err := scan(b, func(f field) error {
		if ok, err := e.collect(f, true); ok || err != nil {
			return err
		}

		switch f.num {
		case 8:
			lat = f.sint64()
		case 9:
			lon = f.sint64()
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	rec, err := c.newRecord(model.NODE, &e)
	if err != nil {
		return nil, err
	}

	c.setPosition(rec, lat, lon)

	return []*model.Record{rec}, nil
}

func (c *blockContext) decodeDenseNodes(b []byte) ([]*model.Record, error) {
	var (
		ids, lats, lons, keyVals []int64
		denseInfo                []byte
	)

	err := scan(b, func(f field) error {
		var err error

		switch f.num {
		case 1:
			ids, err = f.sint64s(ids)
		case 5:
			denseInfo = f.bytes
		case 8:
			lats, err = f.sint64s(lats)
		case 9:
			lons, err = f.sint64s(lons)
		case 10:
			keyVals, err = f.int64s(keyVals)
		}

		return err
	})
	if err != nil {
		return nil, err
	}

	if len(lats) != len(ids) || len(lons) != len(ids) {
		return nil, fmt.Errorf("dense nodes: %d ids, %d lats, %d lons", len(ids), len(lats), len(lons))
	}

	undelta(ids)
	undelta(lats)
	undelta(lons)

	dic, err := c.newDenseInfoContext(denseInfo, len(ids))
	if err != nil {
		return nil, err
	}

	records := make([]*model.Record, len(ids))

	var kv int

	for i := range ids {
		rec := &model.Record{
			Type:  model.NODE,
			Attrs: map[string]string{model.AttrID: strconv.FormatInt(ids[i], 10)},
		}

		for kv < len(keyVals) && keyVals[kv] != 0 {
			if kv+1 >= len(keyVals) {
				return nil, errors.New("dense nodes: dangling tag key")
			}

			k, err := c.string(keyVals[kv])
			if err != nil {
				return nil, err
			}

			v, err := c.string(keyVals[kv+1])
			if err != nil {
				return nil, err
			}

			rec.Tags = append(rec.Tags, model.Tag{Key: k, Value: v})
			kv += 2
		}

		kv++ // skip the 0 delimiter

		if err := dic.decodeInfo(c, rec, i); err != nil {
			return nil, err
		}

		c.setPosition(rec, lats[i], lons[i])
		records[i] = rec
	}

	return records, nil
}

func (c *blockContext) decodeWay(b []byte) ([]*model.Record, error) {
	var (
		e    element
		refs []int64
	)

	err := scan(b, func(f field) error {
		if ok, err := e.collect(f, false); ok || err != nil {
			return err
		}

		if f.num == 8 {
			var err error
			refs, err = f.sint64s(refs)

			return err
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	rec, err := c.newRecord(model.WAY, &e)
	if err != nil {
		return nil, err
	}

	undelta(refs)

	rec.NodeRefs = make([]string, len(refs))
	for i, ref := range refs {
		rec.NodeRefs[i] = strconv.FormatInt(ref, 10)
	}

	return []*model.Record{rec}, nil
}

func (c *blockContext) decodeRelation(b []byte) ([]*model.Record, error) {
	var e element

	err := scan(b, func(f field) error {
		_, err := e.collect(f, false)

		return err
	})
	if err != nil {
		return nil, err
	}

	rec, err := c.newRecord(model.RELATION, &e)
	if err != nil {
		return nil, err
	}

	return []*model.Record{rec}, nil
}

func (c *blockContext) setPosition(rec *model.Record, lat, lon int64) {
	rec.Attrs[model.AttrLat] = model.ToDegrees(c.latOffset, c.granularity, lat).Decimal()
	rec.Attrs[model.AttrLon] = model.ToDegrees(c.lonOffset, c.granularity, lon).Decimal()
}

func (c *blockContext) decodeInfo(rec *model.Record, b []byte) error {
	return scan(b, func(f field) error {
		switch f.num {
		case 1:
			rec.Attrs[model.AttrVersion] = strconv.FormatInt(int64(int32(f.varint)), 10)
		case 2:
			rec.Attrs[model.AttrTimestamp] = c.timestamp(int64(f.varint))
		case 3:
			rec.Attrs[model.AttrChangeset] = strconv.FormatInt(int64(f.varint), 10)
		case 4:
			rec.Attrs[model.AttrUID] = strconv.FormatInt(int64(int32(f.varint)), 10)
		case 5:
			user, err := c.string(int64(uint32(f.varint)))
			if err != nil {
				return err
			}

			rec.Attrs[model.AttrUser] = user
		case 6:
			rec.Attrs[model.AttrVisible] = strconv.FormatBool(f.varint != 0)
		}

		return nil
	})
}

// timestamp converts a timestamp in units of the date granularity into the
// form used by OSM XML.
func (c *blockContext) timestamp(ts int64) string {
	return time.UnixMilli(ts * int64(c.dateGranularity)).UTC().Format(time.RFC3339)
}

type denseInfoContext struct {
	versions   []int64
	timestamps []int64
	changesets []int64
	uids       []int64
	userSids   []int64
	visible    []uint64
}

func (c *blockContext) newDenseInfoContext(b []byte, n int) (*denseInfoContext, error) {
	dic := &denseInfoContext{}
	if b == nil {
		return dic, nil
	}

	err := scan(b, func(f field) error {
		var err error

		switch f.num {
		case 1:
			dic.versions, err = f.int64s(dic.versions)
		case 2:
			dic.timestamps, err = f.sint64s(dic.timestamps)
		case 3:
			dic.changesets, err = f.sint64s(dic.changesets)
		case 4:
			dic.uids, err = f.sint64s(dic.uids)
		case 5:
			dic.userSids, err = f.sint64s(dic.userSids)
		case 6:
			dic.visible, err = f.varints(dic.visible)
		}

		return err
	})
	if err != nil {
		return nil, err
	}

	for _, column := range [][]int64{dic.versions, dic.timestamps, dic.changesets, dic.uids, dic.userSids} {
		if len(column) != 0 && len(column) != n {
			return nil, fmt.Errorf("dense info: column of %d values for %d nodes", len(column), n)
		}
	}

	if len(dic.visible) != 0 && len(dic.visible) != n {
		return nil, fmt.Errorf("dense info: %d visibilities for %d nodes", len(dic.visible), n)
	}

	undelta(dic.timestamps)
	undelta(dic.changesets)
	undelta(dic.uids)
	undelta(dic.userSids)

	return dic, nil
}

func (dic *denseInfoContext) decodeInfo(c *blockContext, rec *model.Record, i int) error {
	if len(dic.versions) != 0 {
		rec.Attrs[model.AttrVersion] = strconv.FormatInt(int64(int32(dic.versions[i])), 10)
	}

	if len(dic.timestamps) != 0 {
		rec.Attrs[model.AttrTimestamp] = c.timestamp(dic.timestamps[i])
	}

	if len(dic.changesets) != 0 {
		rec.Attrs[model.AttrChangeset] = strconv.FormatInt(dic.changesets[i], 10)
	}

	if len(dic.uids) != 0 {
		rec.Attrs[model.AttrUID] = strconv.FormatInt(dic.uids[i], 10)
	}

	if len(dic.userSids) != 0 {
		user, err := c.string(dic.userSids[i])
		if err != nil {
			return err
		}

		rec.Attrs[model.AttrUser] = user
	}

	if len(dic.visible) != 0 {
		rec.Attrs[model.AttrVisible] = strconv.FormatBool(dic.visible[i] != 0)
	}

	return nil
}
