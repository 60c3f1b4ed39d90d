// Copyright 2025 The Keisan Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value

// Precision here means bits after the binary point: rounding to prec
// leaves an absolute error below 2^-prec.

// Round rounds z in place so that its least significant bit has
// weight 2^-prec, rounding half up on the highest discarded bit.
func (z *Float) Round(prec int64) *Float {
	if z.IsZero() {
		return z
	}
	newLSB := negExp(prec)
	if newLSB <= z.exp {
		return z
	}
	shift := subExp(newLSB, z.exp)
	up := z.mant.abs.Bit(shift-1) == 1
	z.mant.abs = z.mant.abs.Rsh(z.mant.abs, shift)
	if up {
		z.mant.abs = z.mant.abs.addWord(z.mant.abs, 1)
	}
	z.exp = newLSB
	return z.norm()
}

// FloorPrec rounds z in place toward -∞ at precision prec.
func (z *Float) FloorPrec(prec int64) *Float {
	return z.directedRound(prec, z.mant.neg)
}

// CeilPrec rounds z in place toward +∞ at precision prec.
func (z *Float) CeilPrec(prec int64) *Float {
	return z.directedRound(prec, !z.mant.neg)
}

// directedRound discards the low bits and, if any were set and the
// rounding direction points away from zero, adds one ULP.
func (z *Float) directedRound(prec int64, away bool) *Float {
	if z.IsZero() {
		return z
	}
	newLSB := negExp(prec)
	if newLSB <= z.exp {
		return z
	}
	shift := subExp(newLSB, z.exp)
	frac := lowBitsNonzero(z.mant.abs, shift)
	z.mant.abs = z.mant.abs.Rsh(z.mant.abs, shift)
	if frac && away {
		z.mant.abs = z.mant.abs.addWord(z.mant.abs, 1)
	}
	z.exp = newLSB
	return z.norm()
}

// Trunc rounds z in place toward zero: floor for non-negative values,
// ceil for negative ones.
func (z *Float) Trunc() *Float {
	if z.mant.neg {
		return z.CeilPrec(0)
	}
	return z.FloorPrec(0)
}

// Floor rounds z in place to an integer, toward -∞.
func (z *Float) Floor() *Float {
	return z.FloorPrec(0)
}

// Ceil rounds z in place to an integer, toward +∞.
func (z *Float) Ceil() *Float {
	return z.CeilPrec(0)
}

// RoundInt returns z rounded to the nearest integer.
func (z *Float) RoundInt() *Int {
	f := new(Float).Set(z)
	f.Round(0)
	return f.intVal()
}

// FloorInt returns ⌊z⌋.
func (z *Float) FloorInt() *Int {
	f := new(Float).Set(z)
	f.Floor()
	return f.intVal()
}

// CeilInt returns ⌈z⌉.
func (z *Float) CeilInt() *Int {
	f := new(Float).Set(z)
	f.Ceil()
	return f.intVal()
}

// TruncInt returns z truncated toward zero.
func (z *Float) TruncInt() *Int {
	f := new(Float).Set(z)
	f.Trunc()
	return f.intVal()
}

// intVal converts an integral Float (exp >= 0) to an Int.
func (z *Float) intVal() *Int {
	i := new(Int)
	i.abs = Nat(nil).Lsh(z.mant.abs, z.exp)
	i.neg = z.mant.neg
	return i.norm()
}

// truncFract splits z into its integer part, truncated toward zero,
// and the magnitude of the remaining fraction.
func (z *Float) truncFract() (*Int, *Float) {
	w := new(Float).Set(z)
	w.Trunc()
	f := new(Float).Sub(z, w)
	f.mant.neg = false
	return w.intVal(), f
}

// lowBitsNonzero reports whether any of the n low bits of x are set.
func lowBitsNonzero(x Nat, n int64) bool {
	limbs, rem := n/64, uint(n%64)
	for i := 0; int64(i) < limbs && i < len(x); i++ {
		if x[i] != 0 {
			return true
		}
	}
	if rem > 0 && limbs < int64(len(x)) {
		if x[limbs]<<(64-rem) != 0 {
			return true
		}
	}
	return false
}
