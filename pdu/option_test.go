/* libtins-go - a packet crafting and interpretation library
 *
 * Copyright (C) 2026 Adrian Costin.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package pdu_test

import (
	"net"
	"testing"

	"github.com/adriancostin6/libtins/pdu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptionStoreAddAndSearch(t *testing.T) {
	var store pdu.OptionStore
	assert.Equal(t, 0, store.WireSize())
	assert.Equal(t, 0, store.Count())

	assert.True(t, store.Add(1, []byte{0xff, 0xff, 0xff, 0x00}))
	assert.Equal(t, 6, store.WireSize())
	assert.Equal(t, 1, store.Count())

	opt, ok := store.Search(1)
	require.True(t, ok)
	assert.Equal(t, uint8(1), opt.Tag())
	assert.Equal(t, 4, opt.DataSize())
	assert.Equal(t, []byte{0xff, 0xff, 0xff, 0x00}, opt.Value())

	_, ok = store.Search(2)
	assert.False(t, ok)
}

func TestOptionStoreOwnsValues(t *testing.T) {
	var store pdu.OptionStore
	value := []byte{0x01, 0x02}
	assert.True(t, store.Add(7, value))
	value[0] = 0xaa

	opt, ok := store.Search(7)
	require.True(t, ok)
	assert.Equal(t, []byte{0x01, 0x02}, opt.Value())
}

func TestOptionStoreOrderPreserved(t *testing.T) {
	var store pdu.OptionStore
	assert.True(t, store.Add(30, []byte{0x0a}))
	assert.True(t, store.Add(10, []byte{0x0b}))
	assert.True(t, store.Add(20, []byte{0x0c}))

	buf := make([]byte, store.WireSize())
	require.NoError(t, store.Write(buf))
	assert.Equal(t, []byte{30, 1, 0x0a, 10, 1, 0x0b, 20, 1, 0x0c}, buf)
}

func TestOptionStoreSizeLimit(t *testing.T) {
	var store pdu.OptionStore
	store.SetSizeLimit(10)
	assert.True(t, store.Add(1, []byte{0x01, 0x02, 0x03, 0x04}))
	assert.Equal(t, 6, store.WireSize())

	// 2+3 more bytes would exceed the 10-byte limit
	assert.False(t, store.Add(2, []byte{0x01, 0x02, 0x03}))
	assert.Equal(t, 6, store.WireSize())
	assert.Equal(t, 1, store.Count())

	assert.True(t, store.Add(2, []byte{0x01, 0x02}))
	assert.Equal(t, 10, store.WireSize())
}

func TestOptionStoreParse(t *testing.T) {
	var store pdu.OptionStore
	v := pdu.NewView([]byte{53, 1, 0x02, 51, 2, 0x0e, 0x10, 255, 0xde, 0xad})
	require.NoError(t, store.Parse(v, 255))
	assert.Equal(t, 2, store.Count())
	assert.Equal(t, 7, store.WireSize())
	// bytes past the terminator are left for the caller
	assert.Equal(t, 2, v.Remaining())

	opt, ok := store.Search(51)
	require.True(t, ok)
	assert.Equal(t, []byte{0x0e, 0x10}, opt.Value())
}

func TestOptionStoreParseTruncatedValue(t *testing.T) {
	var store pdu.OptionStore
	v := pdu.NewView([]byte{53, 4, 0x01, 0x02})
	assert.ErrorIs(t, store.Parse(v, 255), pdu.ErrMalformedOption)
}

func TestOptionStoreParseMissingTerminator(t *testing.T) {
	var store pdu.OptionStore
	v := pdu.NewView([]byte{53, 1, 0x02})
	assert.ErrorIs(t, store.Parse(v, 255), pdu.ErrMalformedOption)
}

func TestOptionStoreDeepCopy(t *testing.T) {
	var store pdu.OptionStore
	assert.True(t, store.Add(12, []byte("host")))

	clone := store.DeepCopy()
	opt, ok := clone.Search(12)
	require.True(t, ok)
	opt.Value()[0] = 'X'

	original, ok := store.Search(12)
	require.True(t, ok)
	assert.Equal(t, []byte("host"), original.Value())
}

func TestScalarOptionRoundTrip(t *testing.T) {
	var store pdu.OptionStore
	assert.True(t, pdu.AddScalarOption(&store, 51, uint32(86400)))

	opt, ok := store.Search(51)
	require.True(t, ok)
	// network byte order on the wire
	assert.Equal(t, []byte{0x00, 0x01, 0x51, 0x80}, opt.Value())

	seconds, ok := pdu.SearchScalarOption[uint32](&store, 51)
	assert.True(t, ok)
	assert.Equal(t, uint32(86400), seconds)
}

func TestScalarOptionWidthGuard(t *testing.T) {
	var store pdu.OptionStore
	assert.True(t, store.Add(51, []byte{0x01, 0x02}))

	// a two-byte record is not a uint32
	_, ok := pdu.SearchScalarOption[uint32](&store, 51)
	assert.False(t, ok)

	seconds, ok := pdu.SearchScalarOption[uint16](&store, 51)
	assert.True(t, ok)
	assert.Equal(t, uint16(0x0102), seconds)
}

func TestIPv4ListOption(t *testing.T) {
	var store pdu.OptionStore
	before := store.WireSize()
	assert.True(t, pdu.AddIPv4ListOption(&store, 3, []net.IP{
		net.IPv4(1, 2, 3, 4),
		net.IPv4(5, 6, 7, 8),
	}))
	assert.Equal(t, 2+8, store.WireSize()-before)

	addrs, ok := pdu.SearchIPv4ListOption(&store, 3)
	require.True(t, ok)
	require.Len(t, addrs, 2)
	assert.Equal(t, net.IPv4(1, 2, 3, 4).To4(), addrs[0])
	assert.Equal(t, net.IPv4(5, 6, 7, 8).To4(), addrs[1])

	opt, ok := store.Search(3)
	require.True(t, ok)
	assert.Equal(t, []byte{1, 2, 3, 4, 5, 6, 7, 8}, opt.Value())
}

func TestIPv4ListOptionLengthGuard(t *testing.T) {
	var store pdu.OptionStore
	assert.True(t, store.Add(3, []byte{1, 2, 3, 4, 5}))
	_, ok := pdu.SearchIPv4ListOption(&store, 3)
	assert.False(t, ok)
}

func TestIPv4OptionRejectsNonIPv4(t *testing.T) {
	var store pdu.OptionStore
	assert.False(t, pdu.AddIPv4Option(&store, 54, net.ParseIP("2001:db8::1")))
	assert.Equal(t, 0, store.Count())
}

func TestStringOption(t *testing.T) {
	var store pdu.OptionStore
	assert.True(t, pdu.AddStringOption(&store, 15, "example.org"))

	name, ok := pdu.SearchStringOption(&store, 15)
	assert.True(t, ok)
	assert.Equal(t, "example.org", name)

	opt, ok := store.Search(15)
	require.True(t, ok)
	// no terminator stored, the length field is authoritative
	assert.Equal(t, len("example.org"), opt.DataSize())
}

func TestOptionValueTooLong(t *testing.T) {
	var store pdu.OptionStore
	assert.False(t, store.Add(43, make([]byte, 256)))
	assert.True(t, store.Add(43, make([]byte, 255)))
}
