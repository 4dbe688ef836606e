/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package x

import (
	"encoding/binary"
	"math"
)

const (
	byteHeader = byte(0x00)
	bytePoint  = byte(0x01)
	byteIndex  = byte(0x02)
)

func writeAttr(buf []byte, attr string) []byte {
	AssertTrue(len(attr) < math.MaxUint16)
	binary.BigEndian.PutUint16(buf[:2], uint16(len(attr)))

	rest := buf[2:]
	AssertTrue(len(attr) == copy(rest, attr))

	return rest[len(attr):]
}

// HeaderKey returns the key holding the CRS, kind, dimension and length of the
// sequence called name.
func HeaderKey(name string) []byte {
	buf := make([]byte, 1+2+len(name))
	buf[0] = byteHeader
	writeAttr(buf[1:], name)
	return buf
}

// HeaderPrefix returns the prefix shared by all header keys.
func HeaderPrefix() []byte {
	return []byte{byteHeader}
}

// PointKey returns the key of the i-th point of the sequence called name.
// Points of one sequence sort by index.
func PointKey(name string, i uint32) []byte {
	buf := make([]byte, 1+2+len(name)+4)
	buf[0] = bytePoint
	rest := writeAttr(buf[1:], name)
	binary.BigEndian.PutUint32(rest, i)
	return buf
}

// PointPrefix returns the prefix of every point key of the sequence called name.
func PointPrefix(name string) []byte {
	buf := make([]byte, 1+2+len(name))
	buf[0] = bytePoint
	writeAttr(buf[1:], name)
	return buf
}

// IndexKey returns the key recording that the sequence called name is indexed
// under term.
func IndexKey(term, name string) []byte {
	buf := make([]byte, 1+2+len(term)+len(name))
	buf[0] = byteIndex
	rest := writeAttr(buf[1:], term)
	AssertTrue(len(name) == copy(rest, name))
	return buf
}

// IndexPrefix returns the prefix of every index key for term.
func IndexPrefix(term string) []byte {
	buf := make([]byte, 1+2+len(term))
	buf[0] = byteIndex
	writeAttr(buf[1:], term)
	return buf
}

type ParsedKey struct {
	byteType byte
	// Name is the sequence the key belongs to.
	Name  string
	Index uint32
	Term  string
}

func (p ParsedKey) IsHeader() bool {
	return p.byteType == byteHeader
}

func (p ParsedKey) IsPoint() bool {
	return p.byteType == bytePoint
}

func (p ParsedKey) IsIndex() bool {
	return p.byteType == byteIndex
}

// Parse decodes a key built by this package. It returns nil for anything else.
func Parse(key []byte) *ParsedKey {
	if len(key) < 3 {
		return nil
	}
	p := &ParsedKey{byteType: key[0]}
	sz := int(binary.BigEndian.Uint16(key[1:3]))
	k := key[3:]
	if len(k) < sz {
		return nil
	}
	attr, k := string(k[:sz]), k[sz:]

	switch p.byteType {
	case byteHeader:
		p.Name = attr
	case bytePoint:
		if len(k) != 4 {
			return nil
		}
		p.Name = attr
		p.Index = binary.BigEndian.Uint32(k)
	case byteIndex:
		p.Term = attr
		p.Name = string(k)
	default:
		return nil
	}
	return p
}
