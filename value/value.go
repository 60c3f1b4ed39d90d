// Copyright 2025 The Keisan Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package value implements the arbitrary-precision numeric tower:
// unsigned integers (Nat), signed integers (Int), exact rationals
// (Rat), binary floats (Float), and lazy computable reals (Real).
package value // import "keisan.io/keisan/value"

import (
	"fmt"

	"keisan.io/keisan/config"
)

var conf *config.Config

// SetConfig sets the configuration used by the value package for
// printing and evaluation limits. It must not be called concurrently
// with evaluation.
func SetConfig(c *config.Config) {
	conf = c
}

// Error is the type of the panic raised by operations in this package
// when arithmetic fails. Callers at the outermost level recover it.
type Error string

func (err Error) Error() string {
	return string(err)
}

// Errorf panics with a formatted Error.
func Errorf(format string, args ...interface{}) {
	panic(Error(fmt.Sprintf(format, args...)))
}

// digitVal returns the value of the ASCII digit c in bases up to 36,
// or -1 if c is not a digit.
func digitVal(c byte) int {
	switch {
	case '0' <= c && c <= '9':
		return int(c - '0')
	case 'a' <= c && c <= 'z':
		return int(c-'a') + 10
	case 'A' <= c && c <= 'Z':
		return int(c-'A') + 10
	}
	return -1
}

// digitChar returns the character for digit d in bases up to 36.
func digitChar(d int, upper bool) byte {
	if d < 10 {
		return byte('0' + d)
	}
	if upper {
		return byte('A' + d - 10)
	}
	return byte('a' + d - 10)
}

func checkBase(base int) {
	if base < 2 || base > 36 {
		Errorf("illegal base %d", base)
	}
}
