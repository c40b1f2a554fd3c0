/* libtins-go - a packet crafting and interpretation library
 *
 * Copyright (C) 2026 Adrian Costin.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package pdu

// Constructor builds one protocol's PDU from a raw byte buffer, recursively
// constructing any inner PDUs it finds.
type Constructor func(buf []byte) (PDU, error)

// Registry maps demultiplexing keys (an address family, an ethertype) to the
// Constructor of the corresponding next-layer protocol. Layers that carry a
// demultiplexing key take an explicit Registry when parsing, so tests can
// substitute their own mappings; there is no process-wide table.
type Registry struct {
	constructors map[uint32]Constructor
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{constructors: make(map[uint32]Constructor)}
}

// Register maps the specified demultiplexing key to a Constructor, replacing
// any previous mapping for that key.
func (r *Registry) Register(key uint32, constructor Constructor) {
	r.constructors[key] = constructor
}

// DecodePayload constructs the inner PDU for the specified demultiplexing key.
// Keys with no registered Constructor (including every key of a nil Registry)
// yield a RawPDU retaining the payload uninterpreted. An error from a
// registered Constructor propagates: the protocol was recognized but the
// payload could not be decoded.
func (r *Registry) DecodePayload(key uint32, buf []byte) (PDU, error) {
	if r != nil {
		if constructor, ok := r.constructors[key]; ok {
			return constructor(buf)
		}
	}
	return NewRawPDU(buf), nil
}
