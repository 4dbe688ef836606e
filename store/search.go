/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package store

import (
	"runtime"
	"sort"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/golang/geo/s2"
	"github.com/golang/glog"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/hypermodeinc/spatial/geo"
	"github.com/hypermodeinc/spatial/types"
	"github.com/hypermodeinc/spatial/x"
)

// Search returns the names of the stored sequences whose geometry matches f,
// in name order. WGS84 queries only look at sequences sharing an index term
// with the query; Cartesian queries scan every sequence. Candidates are read
// and matched concurrently.
func (s *Store) Search(f *geo.Filter) ([]string, error) {
	defer x.RecordLatency("search", time.Now())
	names, err := s.candidates(f)
	if err != nil {
		return nil, err
	}
	matched := make([]bool, len(names))
	var eg errgroup.Group
	eg.SetLimit(runtime.GOMAXPROCS(0))
	for i, name := range names {
		eg.Go(func() error {
			ok, err := s.matches(f, name)
			matched[i] = ok
			return err
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	var out []string
	for i, name := range names {
		if matched[i] {
			out = append(out, name)
		}
	}
	glog.V(2).Infof("%s search: %d candidates, %d matches", f.Type, len(names), len(out))
	return out, nil
}

func (s *Store) matches(f *geo.Filter, name string) (bool, error) {
	seq, err := s.Sequence(name)
	if err != nil {
		return false, err
	}
	if seq.CRS() != f.Geometry.CRS() {
		return false, nil
	}
	g, err := seq.Geometry()
	if err != nil {
		return false, err
	}
	ok, err := f.Matches(g)
	return ok, errors.Wrapf(err, "matching %q", name)
}

func (s *Store) candidates(f *geo.Filter) ([]string, error) {
	if f.Geometry.CRS() != types.WGS84 {
		return s.Names()
	}
	var cu s2.CellUnion
	var err error
	if f.Type == geo.QueryTypeNear {
		cu, err = geo.CoverCap(f.Geometry.(types.Point), f.MaxDistance)
	} else {
		cu, err = geo.Cover(f.Geometry)
	}
	if err != nil {
		return nil, err
	}
	terms := geo.Tokens(geo.WithParents(cu), "")

	found := make(map[string]struct{})
	err = s.db.View(func(txn *badger.Txn) error {
		for _, t := range terms {
			itr := txn.NewIterator(badger.IteratorOptions{Prefix: x.IndexPrefix(t)})
			for itr.Rewind(); itr.Valid(); itr.Next() {
				if pk := x.Parse(itr.Item().Key()); pk != nil && pk.IsIndex() {
					found[pk.Name] = struct{}{}
				}
			}
			itr.Close()
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(found))
	for n := range found {
		names = append(names, n)
	}
	sort.Strings(names)
	return names, nil
}
