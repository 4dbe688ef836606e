/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package x

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHeaderKey(t *testing.T) {
	for i := 0; i < 100; i++ {
		name := fmt.Sprintf("seq:%d", i)
		p := Parse(HeaderKey(name))
		require.NotNil(t, p)
		require.True(t, p.IsHeader())
		require.Equal(t, name, p.Name)
		require.True(t, bytes.HasPrefix(HeaderKey(name), HeaderPrefix()))
	}
}

func TestPointKey(t *testing.T) {
	var i uint32
	for i = 0; i < 1001; i++ {
		name := fmt.Sprintf("seq:%d", i%7)
		key := PointKey(name, i)
		p := Parse(key)
		require.NotNil(t, p)
		require.True(t, p.IsPoint())
		require.Equal(t, name, p.Name)
		require.Equal(t, i, p.Index)
		require.True(t, bytes.HasPrefix(key, PointPrefix(name)))
	}
	// Points of one sequence sort by index.
	require.Equal(t, -1, bytes.Compare(PointKey("a", 255), PointKey("a", 256)))
	require.False(t, bytes.HasPrefix(PointKey("ab", 0), PointPrefix("a")))
}

func TestIndexKey(t *testing.T) {
	key := IndexKey("808fb9f81", "seq:1")
	p := Parse(key)
	require.NotNil(t, p)
	require.True(t, p.IsIndex())
	require.Equal(t, "808fb9f81", p.Term)
	require.Equal(t, "seq:1", p.Name)
	require.True(t, bytes.HasPrefix(key, IndexPrefix("808fb9f81")))
	require.False(t, bytes.HasPrefix(key, IndexPrefix("808fb9f8")))
}

func TestParseGarbage(t *testing.T) {
	require.Nil(t, Parse(nil))
	require.Nil(t, Parse([]byte{0x07, 0, 1, 'a'}))
	require.Nil(t, Parse([]byte{bytePoint, 0, 9, 'a'}))
	require.Nil(t, Parse([]byte{bytePoint, 0, 1, 'a', 0, 0}))
}
