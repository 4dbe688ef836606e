/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package store

import (
	"encoding/binary"
	"math"
	"strings"

	"github.com/dgraph-io/badger/v4"
	"github.com/pkg/errors"

	"github.com/hypermodeinc/spatial/types"
	"github.com/hypermodeinc/spatial/x"
)

// Kind tells how the points of a stored sequence form a geometry.
type Kind byte

const (
	KindPoint Kind = iota
	KindPolyline
	KindPolygon
)

func (k Kind) String() string {
	switch k {
	case KindPoint:
		return "point"
	case KindPolyline:
		return "polyline"
	case KindPolygon:
		return "polygon"
	}
	return "unknown"
}

// ParseKind accepts the names printed by Kind.String.
func ParseKind(s string) (Kind, error) {
	for _, k := range []Kind{KindPoint, KindPolyline, KindPolygon} {
		if strings.EqualFold(s, k.String()) {
			return k, nil
		}
	}
	return 0, errors.Errorf("unknown sequence kind %q", s)
}

type header struct {
	crs  types.CRS
	kind Kind
	dim  int
	n    int
}

func (h header) encode() []byte {
	buf := make([]byte, 2, 2+2*binary.MaxVarintLen64)
	buf[0] = byte(h.crs)
	buf[1] = byte(h.kind)
	buf = binary.AppendUvarint(buf, uint64(h.dim))
	return binary.AppendUvarint(buf, uint64(h.n))
}

func decodeHeader(b []byte) (header, error) {
	if len(b) < 4 {
		return header{}, errors.Errorf("header of %d bytes is too short", len(b))
	}
	h := header{crs: types.CRS(b[0]), kind: Kind(b[1])}
	dim, sz := binary.Uvarint(b[2:])
	if sz <= 0 {
		return header{}, errors.New("corrupt dimension in header")
	}
	n, sz2 := binary.Uvarint(b[2+sz:])
	if sz2 <= 0 {
		return header{}, errors.New("corrupt length in header")
	}
	h.dim, h.n = int(dim), int(n)
	if !h.crs.Valid() {
		return header{}, errors.Wrapf(types.ErrUnknownCRS, "tag %d in header", b[0])
	}
	return h, nil
}

func encodePoint(p types.Point) []byte {
	buf := make([]byte, 8*p.Dim())
	for i := 0; i < p.Dim(); i++ {
		binary.LittleEndian.PutUint64(buf[8*i:], math.Float64bits(p.Coord(i)))
	}
	return buf
}

func decodePoint(crs types.CRS, b []byte) (types.Point, error) {
	if len(b) == 0 || len(b)%8 != 0 {
		return types.Point{}, errors.Errorf("point value of %d bytes", len(b))
	}
	coords := make([]float64, len(b)/8)
	for i := range coords {
		coords[i] = math.Float64frombits(binary.LittleEndian.Uint64(b[8*i:]))
	}
	return types.NewPoint(crs, coords...)
}

// Sequence is a stored point sequence. Points are read from badger on demand,
// through the store's cache, so a traversal only touches the points it visits.
// It implements types.Sequence.
type Sequence struct {
	s    *Store
	name string
	h    header
}

var _ types.Sequence = (*Sequence)(nil)

func (q *Sequence) Name() string { return q.name }
func (q *Sequence) Kind() Kind { return q.h.kind }
func (q *Sequence) CRS() types.CRS { return q.h.crs }
func (q *Sequence) Dim() int { return q.h.dim }
func (q *Sequence) Len() int { return q.h.n }

// PointAt reads the i-th point.
func (q *Sequence) PointAt(i int) (types.Point, error) {
	if i < 0 || i >= q.h.n {
		return types.Point{}, errors.Errorf("index %d out of range [0, %d) in %q", i, q.h.n, q.name)
	}
	key := x.PointKey(q.name, uint32(i))
	if p, ok := q.s.cache.Get(string(key)); ok {
		return p, nil
	}
	var p types.Point
	err := q.s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			var err error
			p, err = decodePoint(q.h.crs, val)
			return err
		})
	})
	if err != nil {
		return types.Point{}, errors.Wrapf(err, "reading point %d of %q", i, q.name)
	}
	q.s.cache.Set(string(key), p, 1)
	return p, nil
}

// Geometry materializes the sequence as the geometry its kind names.
func (q *Sequence) Geometry() (types.Geometry, error) {
	switch q.h.kind {
	case KindPoint:
		return q.PointAt(0)
	case KindPolyline:
		return types.PolylineFromSequence(q)
	case KindPolygon:
		return types.PolygonFromSequence(q)
	}
	return nil, errors.Errorf("sequence %q has unknown kind %d", q.name, q.h.kind)
}

// Traverse starts a directional traversal of the sequence. Polygons are
// walked as rings.
func (q *Sequence) Traverse(start, hint types.Point) (*types.Traversal, error) {
	return types.NewTraversal(q, q.h.kind == KindPolygon, start, hint)
}
