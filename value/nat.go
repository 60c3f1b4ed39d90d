// Copyright 2025 The Keisan Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value

import "math/bits"

// A Nat is an unsigned integer: a little-endian slice of 64-bit limbs
// with no high zero limb. The value is Σ z[i]·2^(64i); nil is zero.
//
// Operations follow the destination convention of math/big's nat: the
// receiver provides storage for the result, which is returned, so hot
// loops can reuse buffers: z = z.Add(x, y). Unless noted otherwise the
// receiver may alias an operand.
type Nat []uint64

// NewNat returns a Nat with the value of x.
func NewNat(x uint64) Nat {
	if x == 0 {
		return nil
	}
	return Nat{x}
}

// natOne is shared read-only storage; never written through.
var natOne = Nat{1}

// grow returns a slice of length n, reusing z's storage if it is big
// enough. The contents are unspecified.
func (z Nat) grow(n int) Nat {
	if cap(z) >= n {
		return z[:n]
	}
	return make(Nat, n)
}

// trim strips high zero limbs, restoring the representation invariant.
func (z Nat) trim() Nat {
	for len(z) > 0 && z[len(z)-1] == 0 {
		z = z[:len(z)-1]
	}
	return z
}

func (z Nat) IsZero() bool {
	return len(z) == 0
}

func (z Nat) IsOne() bool {
	return len(z) == 1 && z[0] == 1
}

// Uint64 returns the value of z and whether it fits in a uint64.
func (z Nat) Uint64() (uint64, bool) {
	switch len(z) {
	case 0:
		return 0, true
	case 1:
		return z[0], true
	}
	return 0, false
}

// Set sets z to x.
func (z Nat) Set(x Nat) Nat {
	z = z.grow(len(x))
	copy(z, x)
	return z
}

// SetUint64 sets z to x.
func (z Nat) SetUint64(x uint64) Nat {
	if x == 0 {
		return z[:0]
	}
	z = z.grow(1)
	z[0] = x
	return z
}

// Cmp compares z and x and returns -1, 0, or +1.
func (z Nat) Cmp(x Nat) int {
	if len(z) != len(x) {
		if len(z) < len(x) {
			return -1
		}
		return 1
	}
	for i := len(z) - 1; i >= 0; i-- {
		if z[i] != x[i] {
			if z[i] < x[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// Add sets z to x + y.
func (z Nat) Add(x, y Nat) Nat {
	if len(x) < len(y) {
		x, y = y, x
	}
	z = z.grow(len(x) + 1)
	var c uint64
	for i := 0; i < len(y); i++ {
		z[i], c = bits.Add64(x[i], y[i], c)
	}
	for i := len(y); i < len(x); i++ {
		z[i], c = bits.Add64(x[i], 0, c)
	}
	z[len(x)] = c
	return z.trim()
}

// addWord sets z to x + w.
func (z Nat) addWord(x Nat, w uint64) Nat {
	if len(x) == 0 {
		return z.SetUint64(w)
	}
	z = z.grow(len(x) + 1)
	c := w
	for i := 0; i < len(x); i++ {
		z[i], c = bits.Add64(x[i], c, 0)
	}
	z[len(x)] = c
	return z.trim()
}

// Sub sets z to x - y. It panics if the result would be negative.
func (z Nat) Sub(x, y Nat) Nat {
	z, ok := z.CheckedSub(x, y)
	if !ok {
		Errorf("negative result from unsigned subtraction")
	}
	return z
}

// CheckedSub sets z to x - y and reports whether the subtraction was
// possible (x >= y). On failure z's contents are unspecified.
func (z Nat) CheckedSub(x, y Nat) (Nat, bool) {
	if len(y) > len(x) {
		return z, false
	}
	z = z.grow(len(x))
	var b uint64
	for i := 0; i < len(y); i++ {
		z[i], b = bits.Sub64(x[i], y[i], b)
	}
	for i := len(y); i < len(x); i++ {
		z[i], b = bits.Sub64(x[i], 0, b)
	}
	if b != 0 {
		return z, false
	}
	return z.trim(), true
}

// Mul sets z to x * y. The product is accumulated in a buffer of
// length len(x)+len(y) and then trimmed. z must not alias x or y.
func (z Nat) Mul(x, y Nat) Nat {
	if len(x) == 0 || len(y) == 0 {
		return z[:0]
	}
	z = z.grow(len(x) + len(y))
	clear(z)
	for i, a := range x {
		var c uint64
		for j, b := range y {
			hi, lo := bits.Mul64(a, b)
			lo, c0 := bits.Add64(lo, z[i+j], 0)
			lo, c1 := bits.Add64(lo, c, 0)
			z[i+j] = lo
			// hi + c0 + c1 cannot overflow:
			// u64·u64 + u64 + u64 fits in two limbs.
			c = hi + c0 + c1
		}
		z[i+len(y)] = c
	}
	return z.trim()
}

// mulWord sets z to x * w. z must not alias x.
func (z Nat) mulWord(x Nat, w uint64) Nat {
	if len(x) == 0 || w == 0 {
		return z[:0]
	}
	z = z.grow(len(x) + 1)
	var c uint64
	for i, a := range x {
		hi, lo := bits.Mul64(a, w)
		lo, c0 := bits.Add64(lo, c, 0)
		z[i] = lo
		c = hi + c0
	}
	z[len(x)] = c
	return z.trim()
}
