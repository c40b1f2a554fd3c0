/* libtins-go - a packet crafting and interpretation library
 *
 * Copyright (C) 2026 Adrian Costin.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package pdu_test

import (
	"encoding/binary"
	"errors"
	"testing"

	"github.com/adriancostin6/libtins/pdu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const envelopeKind pdu.Kind = 100

// envelope is a minimal layer with a payload-length field, used to check that
// serialization threads the remaining total size and the parent reference
// down the chain.
type envelope struct {
	pdu.Base
	marker    byte
	sawTotal  int
	sawParent pdu.PDU
}

func (e *envelope) Kind() pdu.Kind {
	return envelopeKind
}

func (e *envelope) HeaderSize() int {
	return 3
}

func (e *envelope) Size() int {
	return e.HeaderSize() + e.InnerSize()
}

func (e *envelope) Clone() pdu.PDU {
	clone := &envelope{marker: e.marker}
	clone.SetInnerPDU(e.CloneInner())
	return clone
}

func (e *envelope) WriteHeader(buf []byte, totalSize int, parent pdu.PDU) error {
	if len(buf) < e.HeaderSize() {
		return pdu.ErrOutOfBounds
	}
	e.sawTotal = totalSize
	e.sawParent = parent
	buf[0] = e.marker
	binary.BigEndian.PutUint16(buf[1:3], uint16(totalSize))
	return nil
}

func TestSerializeThreadsSizeAndParent(t *testing.T) {
	inner := &envelope{marker: 0xbb}
	inner.SetInnerPDU(pdu.NewRawPDU([]byte{0x01, 0x02, 0x03, 0x04}))
	outer := &envelope{marker: 0xaa}
	outer.SetInnerPDU(inner)

	assert.Equal(t, 10, outer.Size())
	wire, err := pdu.Serialize(outer)
	require.NoError(t, err)
	assert.Equal(t, []byte{0xaa, 0x00, 0x0a, 0xbb, 0x00, 0x07, 0x01, 0x02, 0x03, 0x04}, wire)

	assert.Equal(t, 10, outer.sawTotal)
	assert.Nil(t, outer.sawParent)
	assert.Equal(t, 7, inner.sawTotal)
	assert.Same(t, outer, inner.sawParent)
}

func TestSerializeIsIdempotent(t *testing.T) {
	outer := &envelope{marker: 0x42}
	outer.SetInnerPDU(pdu.NewRawPDU([]byte{0xde, 0xad}))

	first, err := pdu.Serialize(outer)
	require.NoError(t, err)
	second, err := pdu.Serialize(outer)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestRawPDUOwnsPayload(t *testing.T) {
	payload := []byte{0x01, 0x02, 0x03}
	raw := pdu.NewRawPDU(payload)
	payload[0] = 0xff
	assert.Equal(t, []byte{0x01, 0x02, 0x03}, raw.Payload())
	assert.Equal(t, 3, raw.HeaderSize())
	assert.Equal(t, 3, raw.Size())

	wire, err := pdu.Serialize(raw)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x01, 0x02, 0x03}, wire)
}

func TestRawPDUClone(t *testing.T) {
	raw := pdu.NewRawPDU([]byte{0x01, 0x02})
	clone, ok := raw.Clone().(*pdu.RawPDU)
	require.True(t, ok)
	clone.Payload()[0] = 0xff
	assert.Equal(t, []byte{0x01, 0x02}, raw.Payload())
}

func TestFind(t *testing.T) {
	inner := &envelope{marker: 0x02}
	inner.SetInnerPDU(pdu.NewRawPDU([]byte{0xff}))
	outer := &envelope{marker: 0x01}
	outer.SetInnerPDU(inner)

	found, ok := pdu.Find[*envelope](outer)
	require.True(t, ok)
	assert.Equal(t, byte(0x01), found.marker)

	raw, ok := pdu.Find[*pdu.RawPDU](outer)
	require.True(t, ok)
	assert.Equal(t, []byte{0xff}, raw.Payload())

	layer := pdu.FindKind(outer, pdu.Raw)
	require.NotNil(t, layer)
	assert.Equal(t, pdu.Raw, layer.Kind())
	assert.Nil(t, pdu.FindKind(outer, pdu.DHCP))
}

func TestRegistryDemux(t *testing.T) {
	registry := pdu.NewRegistry()
	registry.Register(7, func(buf []byte) (pdu.PDU, error) {
		return &envelope{marker: buf[0]}, nil
	})

	p, err := registry.DecodePayload(7, []byte{0x55})
	require.NoError(t, err)
	env, ok := p.(*envelope)
	require.True(t, ok)
	assert.Equal(t, byte(0x55), env.marker)

	// unregistered keys fall back to an opaque raw payload
	p, err = registry.DecodePayload(8, []byte{0x55})
	require.NoError(t, err)
	_, ok = p.(*pdu.RawPDU)
	assert.True(t, ok)
}

func TestRegistryPropagatesConstructorError(t *testing.T) {
	expected := errors.New("truncated")
	registry := pdu.NewRegistry()
	registry.Register(7, func(buf []byte) (pdu.PDU, error) {
		return nil, expected
	})

	_, err := registry.DecodePayload(7, nil)
	assert.ErrorIs(t, err, expected)
}

func TestNilRegistryYieldsRaw(t *testing.T) {
	var registry *pdu.Registry
	p, err := registry.DecodePayload(2, []byte{0x01})
	require.NoError(t, err)
	_, ok := p.(*pdu.RawPDU)
	assert.True(t, ok)
}

func TestParseError(t *testing.T) {
	err := pdu.NewParseError("DHCP", "options", pdu.ErrMalformedOption)
	assert.ErrorIs(t, err, pdu.ErrMalformedOption)
	assert.Contains(t, err.Error(), "DHCP")
	assert.Contains(t, err.Error(), "options")
}
