/* libtins-go - a packet crafting and interpretation library
 *
 * Copyright (C) 2026 Adrian Costin.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package pdu

import "golang.org/x/exp/slices"

// RawPDU retains a payload that no registered protocol decoded. Parsing never
// fails merely because an inner protocol is unrecognized; the bytes end up
// here uninterpreted.
type RawPDU struct {
	Base
	payload []byte
}

// NewRawPDU creates a RawPDU owning a copy of the specified payload.
func NewRawPDU(payload []byte) *RawPDU {
	return &RawPDU{payload: slices.Clone(payload)}
}

// Payload returns the retained bytes.
func (r *RawPDU) Payload() []byte {
	return r.payload
}

// Kind returns the protocol discriminant of this layer.
func (r *RawPDU) Kind() Kind {
	return Raw
}

// HeaderSize returns the size of the retained payload.
func (r *RawPDU) HeaderSize() int {
	return len(r.payload)
}

// Size returns the serialized size of this layer plus its inner chain.
func (r *RawPDU) Size() int {
	return r.HeaderSize() + r.InnerSize()
}

// Clone deep-copies this layer and its inner chain.
func (r *RawPDU) Clone() PDU {
	clone := NewRawPDU(r.payload)
	clone.SetInnerPDU(r.CloneInner())
	return clone
}

// WriteHeader copies the retained payload into the front of buf.
func (r *RawPDU) WriteHeader(buf []byte, totalSize int, parent PDU) error {
	if len(buf) < len(r.payload) {
		return ErrOutOfBounds
	}
	copy(buf, r.payload)
	return nil
}
