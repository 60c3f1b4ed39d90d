// Copyright 2025 The Keisan Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value

import "math/bits"

// Lsh sets z to x << s. It panics if s is negative.
func (z Nat) Lsh(x Nat, s int64) Nat {
	if s < 0 {
		Errorf("shift by negative amount %d", s)
	}
	if len(x) == 0 {
		return z[:0]
	}
	limbs, sb := int(s/64), uint(s%64)
	n := len(x) + limbs
	z = z.grow(n + 1)
	if sb == 0 {
		z[n] = 0
		copy(z[limbs:n], x)
	} else {
		z[n] = x[len(x)-1] >> (64 - sb)
		for i := len(x) - 1; i > 0; i-- {
			z[limbs+i] = x[i]<<sb | x[i-1]>>(64-sb)
		}
		z[limbs] = x[0] << sb
	}
	for i := 0; i < limbs; i++ {
		z[i] = 0
	}
	return z.trim()
}

// Rsh sets z to x >> s. It panics if s is negative.
func (z Nat) Rsh(x Nat, s int64) Nat {
	if s < 0 {
		Errorf("shift by negative amount %d", s)
	}
	limbs, sb := int(s/64), uint(s%64)
	if limbs >= len(x) {
		return z[:0]
	}
	n := len(x) - limbs
	z = z.grow(n)
	if sb == 0 {
		copy(z, x[limbs:])
	} else {
		for i := 0; i < n-1; i++ {
			z[i] = x[limbs+i]>>sb | x[limbs+i+1]<<(64-sb)
		}
		z[n-1] = x[len(x)-1] >> sb
	}
	return z.trim()
}

// And sets z to x & y, truncated to the shorter operand.
func (z Nat) And(x, y Nat) Nat {
	if len(x) > len(y) {
		x, y = y, x
	}
	z = z.grow(len(x))
	for i := range z {
		z[i] = x[i] & y[i]
	}
	return z.trim()
}

// Or sets z to x | y, extended to the longer operand.
func (z Nat) Or(x, y Nat) Nat {
	if len(x) > len(y) {
		x, y = y, x
	}
	z = z.grow(len(y))
	for i := range x {
		z[i] = x[i] | y[i]
	}
	copy(z[len(x):], y[len(x):])
	return z
}

// Xor sets z to x ^ y, extended to the longer operand.
func (z Nat) Xor(x, y Nat) Nat {
	if len(x) > len(y) {
		x, y = y, x
	}
	z = z.grow(len(y))
	for i := range x {
		z[i] = x[i] ^ y[i]
	}
	copy(z[len(x):], y[len(x):])
	return z.trim()
}

// Not sets z to x with every limb inverted.
func (z Nat) Not(x Nat) Nat {
	z = z.grow(len(x))
	for i := range z {
		z[i] = ^x[i]
	}
	return z.trim()
}

// Bit returns the bit of z at index i, counting from the least
// significant bit.
func (z Nat) Bit(i int64) uint {
	if i < 0 {
		Errorf("negative bit index %d", i)
	}
	limb := i / 64
	if limb >= int64(len(z)) {
		return 0
	}
	return uint(z[limb]>>(i%64)) & 1
}

// TrailingZeros returns the number of trailing zero bits of z.
// TrailingZeros of zero is zero.
func (z Nat) TrailingZeros() int64 {
	var n int64
	for _, limb := range z {
		if limb == 0 {
			n += 64
			continue
		}
		return n + int64(bits.TrailingZeros64(limb))
	}
	return 0
}

// TrailingOnes returns the number of trailing one bits of z.
func (z Nat) TrailingOnes() int64 {
	var n int64
	for _, limb := range z {
		if limb == ^uint64(0) {
			n += 64
			continue
		}
		return n + int64(bits.TrailingZeros64(^limb))
	}
	return n
}

// LeadingZeros returns the number of leading zero bits of z's top
// limb. LeadingZeros of zero is zero.
func (z Nat) LeadingZeros() int64 {
	if len(z) == 0 {
		return 0
	}
	return int64(bits.LeadingZeros64(z[len(z)-1]))
}

// LeadingOnes returns the number of leading one bits of z.
func (z Nat) LeadingOnes() int64 {
	var n int64
	for i := len(z) - 1; i >= 0; i-- {
		if z[i] == ^uint64(0) {
			n += 64
			continue
		}
		return n + int64(bits.LeadingZeros64(^z[i]))
	}
	return n
}

// OnesCount returns the number of one bits of z.
func (z Nat) OnesCount() int64 {
	var n int64
	for _, limb := range z {
		n += int64(bits.OnesCount64(limb))
	}
	return n
}

// ZerosCount returns the number of zero bits of z's limbs.
func (z Nat) ZerosCount() int64 {
	var n int64
	for _, limb := range z {
		n += int64(64 - bits.OnesCount64(limb))
	}
	return n
}

// Log2 returns ⌊log₂ z⌋. It panics if z is zero.
func (z Nat) Log2() int64 {
	if len(z) == 0 {
		Errorf("log of zero")
	}
	return int64(bits.Len64(z[len(z)-1])-1) + 64*int64(len(z)-1)
}

// Log2Exact returns log₂ z and true if z is a power of two, and
// 0 and false otherwise.
func (z Nat) Log2Exact() (int64, bool) {
	if len(z) == 0 {
		return 0, false
	}
	hi := z[len(z)-1]
	if bits.OnesCount64(hi) != 1 {
		return 0, false
	}
	for _, limb := range z[:len(z)-1] {
		if limb != 0 {
			return 0, false
		}
	}
	return int64(bits.TrailingZeros64(hi)) + 64*int64(len(z)-1), true
}
