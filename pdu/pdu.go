/* libtins-go - a packet crafting and interpretation library
 *
 * Copyright (C) 2026 Adrian Costin.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package pdu

// Kind identifies the protocol of a PDU layer.
type Kind int

// Known PDU kinds.
const (
	Raw Kind = iota
	Loopback
	DHCP
)

func (k Kind) String() string {
	switch k {
	case Raw:
		return "Raw"
	case Loopback:
		return "Loopback"
	case DHCP:
		return "DHCP"
	default:
		return "Unknown"
	}
}

// PDU is one protocol layer of a packet. A PDU owns at most one inner PDU
// holding its payload, forming a chain with single ownership and no cycles.
type PDU interface {
	// Kind returns the protocol discriminant of this layer.
	Kind() Kind

	// HeaderSize returns the serialized size of this layer alone, excluding
	// any inner PDU.
	HeaderSize() int

	// Size returns the serialized size of this layer plus its whole inner
	// chain.
	Size() int

	// InnerPDU returns the owned payload PDU, or nil.
	InnerPDU() PDU

	// SetInnerPDU replaces the owned payload PDU.
	SetInnerPDU(inner PDU)

	// Clone deep-copies this layer and its whole inner chain. The clone
	// shares no buffers with the original.
	Clone() PDU

	// WriteHeader serializes this layer's header into the front of buf, which
	// spans the remainder of the chain. totalSize is the serialized size of
	// this layer plus everything after it; layers whose header fields encode a
	// payload length derive them from it. parent is the enclosing layer, or
	// nil at the top of the chain, for fields that depend on the enclosing
	// protocol.
	WriteHeader(buf []byte, totalSize int, parent PDU) error
}

// Base holds the owned inner PDU for concrete layers to embed.
type Base struct {
	inner PDU
}

// InnerPDU returns the owned payload PDU, or nil.
func (b *Base) InnerPDU() PDU {
	return b.inner
}

// SetInnerPDU replaces the owned payload PDU.
func (b *Base) SetInnerPDU(inner PDU) {
	b.inner = inner
}

// InnerSize returns the serialized size of the inner chain, or 0 if there is
// none.
func (b *Base) InnerSize() int {
	if b.inner == nil {
		return 0
	}
	return b.inner.Size()
}

// CloneInner deep-copies the inner chain, or returns nil if there is none.
func (b *Base) CloneInner() PDU {
	if b.inner == nil {
		return nil
	}
	return b.inner.Clone()
}

// Serialize encodes the whole chain starting at p into a freshly allocated
// buffer of exactly p.Size() bytes. It is a pure function of the chain's
// state: repeated calls yield identical bytes.
func Serialize(p PDU) ([]byte, error) {
	buf := make([]byte, p.Size())
	if err := writeChain(p, buf, len(buf), nil); err != nil {
		return nil, err
	}
	return buf, nil
}

func writeChain(p PDU, buf []byte, totalSize int, parent PDU) error {
	if err := p.WriteHeader(buf, totalSize, parent); err != nil {
		return err
	}
	inner := p.InnerPDU()
	if inner == nil {
		return nil
	}
	headerSize := p.HeaderSize()
	return writeChain(inner, buf[headerSize:], totalSize-headerSize, p)
}

// Find returns the first layer of the requested concrete type, scanning the
// chain front to back.
func Find[T PDU](p PDU) (T, bool) {
	for layer := p; layer != nil; layer = layer.InnerPDU() {
		if match, ok := layer.(T); ok {
			return match, true
		}
	}
	var none T
	return none, false
}

// FindKind returns the first layer with the specified discriminant, scanning
// the chain front to back, or nil if the chain has none.
func FindKind(p PDU, kind Kind) PDU {
	for layer := p; layer != nil; layer = layer.InnerPDU() {
		if layer.Kind() == kind {
			return layer
		}
	}
	return nil
}
