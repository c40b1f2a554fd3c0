/* libtins-go - a packet crafting and interpretation library
 *
 * Copyright (C) 2026 Adrian Costin.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package pdu

import (
	"errors"
	"fmt"
)

// Decoding errors.
var (
	ErrOutOfBounds      = errors.New("read exceeds remaining buffer size")
	ErrMalformedOption  = errors.New("option exceeds remaining buffer size")
	ErrCapacityExceeded = errors.New("option exceeds maximum header size")
)

// ParseError reports which layer and which field of that layer could not be
// decoded. It wraps one of the sentinel decoding errors, so callers may match
// with errors.Is.
type ParseError struct {
	Layer string
	Field string
	Err   error
}

// NewParseError creates a ParseError for the specified layer and field.
func NewParseError(layer string, field string, err error) *ParseError {
	return &ParseError{Layer: layer, Field: field, Err: err}
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: unable to decode %s: %v", e.Layer, e.Field, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
