// Copyright 2025 The Keisan Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config // import "keisan.io/keisan/config"

// A Config holds information about the configuration of the system.
// The zero value of a Config holds the default values for all settings.
type Config struct {
	prompt    string
	precision int64
	maxDigits int
	debug     map[string]bool
	// Bases: 0 means base 10.
	inputBase  int
	outputBase int
}

// DefaultPrecision is the precision, in bits after the binary point,
// at which expressions are evaluated when none is set.
const DefaultPrecision = 1024

// DefaultMaxDigits caps the number of fractional digits printed for a
// float whose exact rendering does not terminate sooner.
const DefaultMaxDigits = 500

func (c *Config) Precision() int64 {
	if c == nil || c.precision == 0 {
		return DefaultPrecision
	}
	return c.precision
}

func (c *Config) SetPrecision(prec int64) {
	c.precision = prec
}

func (c *Config) MaxDigits() int {
	if c == nil || c.maxDigits == 0 {
		return DefaultMaxDigits
	}
	return c.maxDigits
}

func (c *Config) SetMaxDigits(digits int) {
	c.maxDigits = digits
}

func (c *Config) Debug(s string) bool {
	if c == nil {
		return false
	}
	return c.debug[s]
}

func (c *Config) SetDebug(s string, state bool) {
	if c.debug == nil {
		c.debug = make(map[string]bool)
	}
	c.debug[s] = state
}

func (c *Config) Prompt() string {
	if c == nil {
		return ""
	}
	return c.prompt
}

func (c *Config) SetPrompt(prompt string) {
	c.prompt = prompt
}

func (c *Config) Base() (int, int) {
	if c == nil {
		return 0, 0
	}
	return c.inputBase, c.outputBase
}

func (c *Config) InputBase() int {
	if c == nil {
		return 0
	}
	return c.inputBase
}

func (c *Config) OutputBase() int {
	if c == nil {
		return 0
	}
	return c.outputBase
}

func (c *Config) SetBase(inputBase, outputBase int) {
	c.inputBase = inputBase
	c.outputBase = outputBase
}
