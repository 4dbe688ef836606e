/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package store

import (
	"sort"

	"github.com/dgraph-io/badger/v4"
	"github.com/dgraph-io/badger/v4/options"
	"github.com/dgraph-io/ristretto/v2"
	"github.com/golang/glog"
	"github.com/pkg/errors"

	"github.com/hypermodeinc/spatial/geo"
	"github.com/hypermodeinc/spatial/types"
	"github.com/hypermodeinc/spatial/x"
)

// ErrNotFound is returned for sequence names that are not stored.
var ErrNotFound = errors.New("sequence not found")

// Store keeps named point sequences in badger, one key per point, and indexes
// WGS84 sequences by the tokens of their S2 cell cover.
type Store struct {
	db    *badger.DB
	cache *ristretto.Cache[string, types.Point]
}

// Options configures Open.
type Options struct {
	// Dir is the badger directory. An empty Dir keeps everything in memory.
	Dir string
	// CacheSize is the number of decoded points kept in memory.
	CacheSize int64
}

// Open opens (or creates) a store.
func Open(opt Options) (*Store, error) {
	bopt := badger.DefaultOptions(opt.Dir).
		WithLogger(&x.ToGlog{}).
		WithCompression(options.None).
		WithSyncWrites(false)
	if opt.Dir == "" {
		bopt = bopt.WithInMemory(true)
	}
	db, err := badger.Open(bopt)
	if err != nil {
		return nil, errors.Wrapf(err, "while opening store at %q", opt.Dir)
	}
	size := opt.CacheSize
	if size <= 0 {
		size = 1 << 16
	}
	cache, err := ristretto.NewCache(&ristretto.Config[string, types.Point]{
		NumCounters: 10 * size,
		MaxCost:     size,
		BufferItems: 64,
	})
	if err != nil {
		db.Close()
		return nil, errors.Wrap(err, "while creating point cache")
	}
	return &Store{db: db, cache: cache}, nil
}

// Close flushes and closes the store.
func (s *Store) Close() error {
	s.cache.Close()
	return s.db.Close()
}

// Put stores seq under name, replacing any sequence already stored there.
// Points need one for KindPoint, two for KindPolyline and three for
// KindPolygon (the ring is closed on read).
func (s *Store) Put(name string, kind Kind, seq types.Sequence) error {
	h := header{crs: seq.CRS(), kind: kind, dim: seq.Dim(), n: seq.Len()}
	pts := make([]types.Point, 0, h.n)
	for i := 0; i < h.n; i++ {
		p, err := seq.PointAt(i)
		if err != nil {
			return errors.Wrapf(err, "reading point %d", i)
		}
		if err := types.CheckCRS(seq, p); err != nil {
			return errors.Wrapf(err, "point %d", i)
		}
		pts = append(pts, p)
	}
	g, err := build(kind, pts)
	if err != nil {
		return errors.Wrapf(err, "storing %q", name)
	}
	var terms []string
	if h.crs == types.WGS84 {
		cu, err := geo.Cover(g)
		if err != nil {
			return errors.Wrapf(err, "indexing %q", name)
		}
		terms = geo.Tokens(geo.WithParents(cu), "")
	}

	if err := s.Delete(name); err != nil && !errors.Is(err, ErrNotFound) {
		return err
	}
	wb := s.db.NewWriteBatch()
	defer wb.Cancel()
	if err := wb.Set(x.HeaderKey(name), h.encode()); err != nil {
		return err
	}
	for i, p := range pts {
		if err := wb.Set(x.PointKey(name, uint32(i)), encodePoint(p)); err != nil {
			return err
		}
	}
	for _, t := range terms {
		if err := wb.Set(x.IndexKey(t, name), nil); err != nil {
			return err
		}
	}
	if err := wb.Flush(); err != nil {
		return errors.Wrapf(err, "while writing %q", name)
	}
	glog.V(2).Infof("Stored %s %q: %d points, %d index terms", kind, name, len(pts), len(terms))
	return nil
}

func build(kind Kind, pts []types.Point) (types.Geometry, error) {
	switch kind {
	case KindPoint:
		if len(pts) != 1 {
			return nil, errors.Wrapf(types.ErrTooFewPoints, "a point sequence holds one point, got %d", len(pts))
		}
		return pts[0], nil
	case KindPolyline:
		return types.NewPolyline(pts...)
	case KindPolygon:
		return types.NewSimplePolygon(pts...)
	}
	return nil, errors.Errorf("unknown sequence kind %d", kind)
}

// Sequence returns the stored sequence called name.
func (s *Store) Sequence(name string) (*Sequence, error) {
	var h header
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(x.HeaderKey(name))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			var err error
			h, err = decodeHeader(val)
			return err
		})
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, errors.Wrapf(ErrNotFound, "%q", name)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "reading header of %q", name)
	}
	return &Sequence{s: s, name: name, h: h}, nil
}

// Delete removes the sequence called name with its points and index terms.
func (s *Store) Delete(name string) error {
	seq, err := s.Sequence(name)
	if err != nil {
		return err
	}
	var terms []string
	if seq.CRS() == types.WGS84 {
		g, err := seq.Geometry()
		if err != nil {
			return err
		}
		cu, err := geo.Cover(g)
		if err != nil {
			return err
		}
		terms = geo.Tokens(geo.WithParents(cu), "")
	}

	wb := s.db.NewWriteBatch()
	defer wb.Cancel()
	if err := wb.Delete(x.HeaderKey(name)); err != nil {
		return err
	}
	for i := 0; i < seq.Len(); i++ {
		key := x.PointKey(name, uint32(i))
		if err := wb.Delete(key); err != nil {
			return err
		}
		s.cache.Del(string(key))
	}
	for _, t := range terms {
		if err := wb.Delete(x.IndexKey(t, name)); err != nil {
			return err
		}
	}
	return errors.Wrapf(wb.Flush(), "while deleting %q", name)
}

// Names lists every stored sequence in name order.
func (s *Store) Names() ([]string, error) {
	var names []string
	err := s.db.View(func(txn *badger.Txn) error {
		itr := txn.NewIterator(badger.IteratorOptions{Prefix: x.HeaderPrefix()})
		defer itr.Close()
		for itr.Rewind(); itr.Valid(); itr.Next() {
			pk := x.Parse(itr.Item().Key())
			if pk == nil || !pk.IsHeader() {
				continue
			}
			names = append(names, pk.Name)
		}
		return nil
	})
	sort.Strings(names)
	return names, err
}
