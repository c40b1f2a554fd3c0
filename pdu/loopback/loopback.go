/* libtins-go - a packet crafting and interpretation library
 *
 * Copyright (C) 2026 Adrian Costin.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

// Package loopback implements the null link-layer framing used on loopback
// interfaces: a four-byte address family word followed by the payload of
// whatever protocol the family names.
package loopback

import (
	"encoding/binary"

	"github.com/adriancostin6/libtins/pdu"
)

// Address families carried in the loopback header.
const (
	FamilyIPv4 uint32 = 2
	FamilyIPv6 uint32 = 30
)

const headerLen = 4

// Loopback is the null link-layer framing PDU. The family word doubles as the
// demultiplexing key for the payload.
//
// Captures store the family word in the byte order of the capturing host; this
// implementation fixes it as little-endian on the wire, by far the most common
// encoding in circulating capture files.
type Loopback struct {
	pdu.Base
	family uint32
}

// New creates an empty Loopback frame.
func New() *Loopback {
	return new(Loopback)
}

// NewWithPayload creates a Loopback frame with the specified family owning the
// specified payload PDU.
func NewWithPayload(family uint32, inner pdu.PDU) *Loopback {
	l := &Loopback{family: family}
	l.SetInnerPDU(inner)
	return l
}

// Parse constructs a Loopback frame from raw bytes, decoding the payload via
// the registry under the frame's family. A nil registry decodes every payload
// as a RawPDU.
func Parse(buf []byte, registry *pdu.Registry) (*Loopback, error) {
	v := pdu.NewView(buf)
	word, err := v.ReadBytes(headerLen)
	if err != nil {
		return nil, pdu.NewParseError("Loopback", "family", err)
	}
	l := &Loopback{family: binary.LittleEndian.Uint32(word)}
	if v.Remaining() > 0 {
		payload, _ := v.ReadBytes(v.Remaining())
		inner, err := registry.DecodePayload(l.family, payload)
		if err != nil {
			return nil, err
		}
		l.SetInnerPDU(inner)
	}
	return l, nil
}

// Family returns the address family word.
func (l *Loopback) Family() uint32 {
	return l.family
}

// SetFamily sets the address family word.
func (l *Loopback) SetFamily(family uint32) {
	l.family = family
}

// Kind returns the protocol discriminant of this layer.
func (l *Loopback) Kind() pdu.Kind {
	return pdu.Loopback
}

// HeaderSize returns the serialized size of the loopback header.
func (l *Loopback) HeaderSize() int {
	return headerLen
}

// Size returns the serialized size of this layer plus its inner chain.
func (l *Loopback) Size() int {
	return l.HeaderSize() + l.InnerSize()
}

// Clone deep-copies this layer and its inner chain.
func (l *Loopback) Clone() pdu.PDU {
	clone := &Loopback{family: l.family}
	clone.SetInnerPDU(l.CloneInner())
	return clone
}

// WriteHeader serializes the family word into the front of buf.
func (l *Loopback) WriteHeader(buf []byte, totalSize int, parent pdu.PDU) error {
	if len(buf) < headerLen {
		return pdu.ErrOutOfBounds
	}
	binary.LittleEndian.PutUint32(buf, l.family)
	return nil
}
