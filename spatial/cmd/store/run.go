/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package store

import (
	"io"

	"github.com/golang/glog"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/hypermodeinc/spatial/geo"
	"github.com/hypermodeinc/spatial/spatial/cmd/input"
	"github.com/hypermodeinc/spatial/store"
	"github.com/hypermodeinc/spatial/types"
	"github.com/hypermodeinc/spatial/x"
)

// Store is the sub-command invoked when running "spatial store".
var Store x.SubCommand

func init() {
	flagInit()

	Store.Cmd = &cobra.Command{
		Use:         "store",
		Short:       "Manage point sequences kept on disk",
		Annotations: map[string]string{"group": "store"},
	}
	Store.Cmd.AddCommand(subcmds...)
	Store.EnvPrefix = "SPATIAL_STORE"
}

func open() (*store.Store, error) {
	return store.Open(store.Options{Dir: storeOpt.Dir, CacheSize: storeOpt.CacheSize})
}

func crs() (types.CRS, error) {
	return types.ParseCRS(storeOpt.CRS)
}

func runPut(w io.Writer) error {
	c, err := crs()
	if err != nil {
		return err
	}
	kind, err := store.ParseKind(storeOpt.Kind)
	if err != nil {
		return err
	}
	pts, err := geo.ParsePoints(c, storeOpt.WKT)
	if err != nil {
		return err
	}
	// Rings are stored open.
	if kind == store.KindPolygon && len(pts) > 1 && pts[0].Equal(pts[len(pts)-1]) {
		pts = pts[:len(pts)-1]
	}
	s, err := open()
	if err != nil {
		return err
	}
	defer s.Close()
	if err := s.Put(storeOpt.Name, kind, types.PointList(pts)); err != nil {
		return err
	}
	return input.Println(w, storeOpt.Name)
}

func runGet(w io.Writer) error {
	s, err := open()
	if err != nil {
		return err
	}
	defer s.Close()
	seq, err := s.Sequence(storeOpt.Name)
	if err != nil {
		return err
	}
	g, err := seq.Geometry()
	if err != nil {
		return err
	}
	return input.Println(w, g)
}

func runDelete(w io.Writer) error {
	s, err := open()
	if err != nil {
		return err
	}
	defer s.Close()
	if err := s.Delete(storeOpt.Name); err != nil {
		return err
	}
	return input.Println(w, storeOpt.Name)
}

func runList(w io.Writer) error {
	s, err := open()
	if err != nil {
		return err
	}
	defer s.Close()
	names, err := s.Names()
	if err != nil {
		return err
	}
	for _, n := range names {
		if err := input.Println(w, n); err != nil {
			return err
		}
	}
	return nil
}

func runSearch(w io.Writer) error {
	c, err := crs()
	if err != nil {
		return err
	}
	qt, err := geo.ParseQueryType(storeOpt.Query)
	if err != nil {
		return err
	}
	g, err := geo.ParseWKT(c, storeOpt.WKT)
	if err != nil {
		return err
	}
	f, err := geo.NewFilter(qt, g, storeOpt.MaxDistance)
	if err != nil {
		return errors.Wrap(err, "building filter")
	}
	s, err := open()
	if err != nil {
		return err
	}
	defer s.Close()
	names, err := s.Search(f)
	if err != nil {
		return err
	}
	glog.V(2).Infof("Search %s in %s matched %d sequences", qt, storeOpt.Dir, len(names))
	for _, n := range names {
		if err := input.Println(w, n); err != nil {
			return err
		}
	}
	return nil
}
