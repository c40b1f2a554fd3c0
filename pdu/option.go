/* libtins-go - a packet crafting and interpretation library
 *
 * Copyright (C) 2026 Adrian Costin.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package pdu

import (
	"math"
	"net"

	"golang.org/x/exp/slices"
)

// Option is a single tag-length-value record. The value is an owned copy,
// never shared between records, and its stored length is always exactly
// len(value).
type Option struct {
	tag   uint8
	value []byte
}

// NewOption creates an Option owning a copy of the specified value.
func NewOption(tag uint8, value []byte) Option {
	return Option{tag: tag, value: slices.Clone(value)}
}

// Tag returns the option's tag.
func (o Option) Tag() uint8 {
	return o.tag
}

// Value returns the option's value bytes.
func (o Option) Value() []byte {
	return o.value
}

// DataSize returns the length of the option's value, the number the one-byte
// length field carries on the wire.
func (o Option) DataSize() int {
	return len(o.value)
}

// OptionStore is an ordered sequence of TLV option records attached to one
// PDU layer. Insertion order is preserved verbatim on serialization, since
// option order can be protocol-significant. The store maintains a running
// wire-size accumulator, two bytes of tag and length per record plus the
// value lengths, so size queries are O(1).
//
// Search misses are reported through the boolean return, never as an error.
type OptionStore struct {
	options []Option
	size    int
	limit   int
}

// SetSizeLimit sets the maximum wire size the store may grow to through Add.
// The owning codec derives it from the protocol's maximum total size. A limit
// of 0 means unlimited.
func (s *OptionStore) SetSizeLimit(limit int) {
	s.limit = limit
}

// Add appends a record owning a copy of value. It returns false, leaving the
// store untouched, if the value cannot fit the one-byte length field or if
// the record would push the store past its size limit.
func (s *OptionStore) Add(tag uint8, value []byte) bool {
	if len(value) > math.MaxUint8 {
		return false
	}
	recordSize := 2 + len(value)
	if s.limit > 0 && s.size+recordSize > s.limit {
		return false
	}
	s.options = append(s.options, NewOption(tag, value))
	s.size += recordSize
	return true
}

// Search returns the first record with the specified tag in insertion order.
func (s *OptionStore) Search(tag uint8) (*Option, bool) {
	for i := range s.options {
		if s.options[i].tag == tag {
			return &s.options[i], true
		}
	}
	return nil, false
}

// Count returns the number of records.
func (s *OptionStore) Count() int {
	return len(s.options)
}

// WireSize returns the serialized size of all records, excluding any
// terminator the owning codec appends.
func (s *OptionStore) WireSize() int {
	return s.size
}

// Options returns the records in insertion order.
func (s *OptionStore) Options() []Option {
	return s.options
}

// Clear removes every record.
func (s *OptionStore) Clear() {
	s.options = nil
	s.size = 0
}

// DeepCopy copies the store including every record's value buffer, so the
// copy shares nothing with the original.
func (s *OptionStore) DeepCopy() OptionStore {
	out := OptionStore{size: s.size, limit: s.limit}
	out.options = make([]Option, 0, len(s.options))
	for _, opt := range s.options {
		out.options = append(out.options, NewOption(opt.tag, opt.value))
	}
	return out
}

// Write serializes the records in insertion order as tag, length, value.
// The buffer must hold at least WireSize bytes.
func (s *OptionStore) Write(buf []byte) error {
	if len(buf) < s.size {
		return ErrOutOfBounds
	}
	pos := 0
	for _, opt := range s.options {
		buf[pos] = opt.tag
		buf[pos+1] = uint8(len(opt.value))
		copy(buf[pos+2:], opt.value)
		pos += 2 + len(opt.value)
	}
	return nil
}

// Parse consumes TLV records from the view until the terminator tag. Each
// record is one tag byte, one length byte, then length value bytes. A record
// whose declared length exceeds the remaining bytes fails with
// ErrMalformedOption, as does a buffer that ends before the terminator. Bytes
// past the terminator are left unread for the caller.
func (s *OptionStore) Parse(v *View, terminator uint8) error {
	for {
		tag, err := v.ReadUint8()
		if err != nil {
			return ErrMalformedOption
		}
		if tag == terminator {
			return nil
		}
		length, err := v.ReadUint8()
		if err != nil {
			return ErrMalformedOption
		}
		value, err := v.ReadBytes(int(length))
		if err != nil {
			return ErrMalformedOption
		}
		s.options = append(s.options, NewOption(tag, value))
		s.size += 2 + int(length)
	}
}

// scalarValue is the set of integer types the scalar option codecs accept,
// each with a fixed wire width.
type scalarValue interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

func scalarWidth[T scalarValue]() int {
	switch max := uint64(^T(0)); {
	case max <= math.MaxUint8:
		return 1
	case max <= math.MaxUint16:
		return 2
	case max <= math.MaxUint32:
		return 4
	default:
		return 8
	}
}

// AddScalarOption appends a record encoding value big-endian at its natural
// width. Multi-byte scalars always use network byte order on the wire,
// independent of the host's.
func AddScalarOption[T scalarValue](s *OptionStore, tag uint8, value T) bool {
	width := scalarWidth[T]()
	buf := make([]byte, width)
	v := uint64(value)
	for i := width - 1; i >= 0; i-- {
		buf[i] = byte(v)
		v >>= 8
	}
	return s.Add(tag, buf)
}

// SearchScalarOption decodes the first record with the specified tag as a
// big-endian scalar of T's width. A record whose stored length differs from
// that width counts as absent, so callers can probe safely.
func SearchScalarOption[T scalarValue](s *OptionStore, tag uint8) (T, bool) {
	opt, ok := s.Search(tag)
	if !ok || opt.DataSize() != scalarWidth[T]() {
		return 0, false
	}
	var v uint64
	for _, b := range opt.Value() {
		v = v<<8 | uint64(b)
	}
	return T(v), true
}

// AddIPv4Option appends a record holding one IPv4 address.
func AddIPv4Option(s *OptionStore, tag uint8, addr net.IP) bool {
	v4 := addr.To4()
	if v4 == nil {
		return false
	}
	return s.Add(tag, v4)
}

// SearchIPv4Option decodes the first record with the specified tag as a
// single IPv4 address. Any other stored length counts as absent.
func SearchIPv4Option(s *OptionStore, tag uint8) (net.IP, bool) {
	opt, ok := s.Search(tag)
	if !ok || opt.DataSize() != net.IPv4len {
		return nil, false
	}
	return net.IP(slices.Clone(opt.Value())), true
}

// AddIPv4ListOption appends a record packing the addresses back to back with
// no delimiter. It fails if any address is not IPv4.
func AddIPv4ListOption(s *OptionStore, tag uint8, addrs []net.IP) bool {
	value := make([]byte, 0, len(addrs)*net.IPv4len)
	for _, addr := range addrs {
		v4 := addr.To4()
		if v4 == nil {
			return false
		}
		value = append(value, v4...)
	}
	return s.Add(tag, value)
}

// SearchIPv4ListOption decodes the first record with the specified tag as a
// packed IPv4 address list. A stored length that is not a multiple of the
// address width counts as absent.
func SearchIPv4ListOption(s *OptionStore, tag uint8) ([]net.IP, bool) {
	opt, ok := s.Search(tag)
	if !ok || opt.DataSize()%net.IPv4len != 0 {
		return nil, false
	}
	value := opt.Value()
	addrs := make([]net.IP, 0, len(value)/net.IPv4len)
	for pos := 0; pos < len(value); pos += net.IPv4len {
		addrs = append(addrs, net.IP(slices.Clone(value[pos:pos+net.IPv4len])))
	}
	return addrs, true
}

// AddStringOption appends a record holding the string's bytes verbatim, with
// no terminator of its own; the length field is authoritative.
func AddStringOption(s *OptionStore, tag uint8, value string) bool {
	return s.Add(tag, []byte(value))
}

// SearchStringOption decodes the first record with the specified tag as a
// string.
func SearchStringOption(s *OptionStore, tag uint8) (string, bool) {
	opt, ok := s.Search(tag)
	if !ok {
		return "", false
	}
	return string(opt.Value()), true
}
