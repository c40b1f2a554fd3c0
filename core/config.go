/* libtins-go - a packet crafting and interpretation library
 *
 * Copyright (C) 2026 Adrian Costin.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package core

import (
	"math"

	"github.com/pelletier/go-toml"
)

var config *toml.Tree

// LoadConfig loads the configuration from the specified TOML file. Missing
// configuration keys fall back to the defaults passed to the accessors, so
// running without a configuration file is also fine.
func LoadConfig(file string) error {
	var err error
	config, err = toml.LoadFile(file)
	return err
}

// GetConfigStringDefault returns the string configuration value at the specified key or the specified default value if it does not exist.
func GetConfigStringDefault(key string, def string) string {
	if config == nil {
		return def
	}
	valRaw := config.Get(key)
	if valRaw == nil {
		return def
	}
	if val, ok := valRaw.(string); ok {
		return val
	}
	return def
}

// GetConfigIntDefault returns the integer configuration value at the specified key or the specified default value if it does not exist.
func GetConfigIntDefault(key string, def int) int {
	if config == nil {
		return def
	}
	valRaw := config.Get(key)
	if valRaw == nil {
		return def
	}
	if val, ok := valRaw.(int64); ok && val >= math.MinInt32 && val <= math.MaxInt32 {
		return int(val)
	}
	return def
}

// GetConfigBoolDefault returns the boolean configuration value at the specified key or the specified default value if it does not exist.
func GetConfigBoolDefault(key string, def bool) bool {
	if config == nil {
		return def
	}
	valRaw := config.Get(key)
	if valRaw == nil {
		return def
	}
	if val, ok := valRaw.(bool); ok {
		return val
	}
	return def
}
