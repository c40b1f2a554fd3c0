/* libtins-go - a packet crafting and interpretation library
 *
 * Copyright (C) 2026 Adrian Costin.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package pdu

import "encoding/binary"

// View is a bounds-checked cursor over a contiguous byte buffer. Every read
// checks the remaining length and fails with ErrOutOfBounds instead of reading
// past the end. All PDU and option parsing goes through a View.
type View struct {
	buf []byte
	pos int
}

// NewView creates a View over the specified buffer. The View does not copy the
// buffer, so callers must copy anything they retain past the buffer's lifetime.
func NewView(buf []byte) *View {
	return &View{buf: buf}
}

// Remaining returns the number of unread bytes.
func (v *View) Remaining() int {
	return len(v.buf) - v.pos
}

// ReadBytes consumes and returns the next n bytes.
func (v *View) ReadBytes(n int) ([]byte, error) {
	if n < 0 || n > v.Remaining() {
		return nil, ErrOutOfBounds
	}
	out := v.buf[v.pos : v.pos+n]
	v.pos += n
	return out, nil
}

// ReadUint8 consumes a single byte.
func (v *View) ReadUint8() (uint8, error) {
	b, err := v.ReadBytes(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

// ReadUint16 consumes a big-endian 16-bit value.
func (v *View) ReadUint16() (uint16, error) {
	b, err := v.ReadBytes(2)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(b), nil
}

// ReadUint32 consumes a big-endian 32-bit value.
func (v *View) ReadUint32() (uint32, error) {
	b, err := v.ReadBytes(4)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(b), nil
}

// Skip advances the cursor past n bytes without returning them.
func (v *View) Skip(n int) error {
	_, err := v.ReadBytes(n)
	return err
}

// Peek returns n bytes starting at the specified offset past the cursor
// without advancing it.
func (v *View) Peek(offset int, n int) ([]byte, error) {
	if offset < 0 || n < 0 || offset+n > v.Remaining() {
		return nil, ErrOutOfBounds
	}
	return v.buf[v.pos+offset : v.pos+offset+n], nil
}
