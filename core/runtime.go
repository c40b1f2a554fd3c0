/* libtins-go - a packet crafting and interpretation library
 *
 * Copyright (C) 2026 Adrian Costin.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package core

// Version of libtins-go.
var Version string

// BuildTime contains the timestamp of when this version was built.
var BuildTime string
