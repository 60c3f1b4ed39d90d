// Copyright 2025 The Keisan Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value

// Pi returns π with absolute error less than 2^-prec, by the
// Gauss–Legendre iteration:
//
//	a₀ = 1, b₀ = 1/√2, s₀ = 1/4
//	aₙ₊₁ = (aₙ+bₙ)/2, bₙ₊₁ = √(aₙ·bₙ), cₙ = aₙ-aₙ₊₁, sₙ₊₁ = sₙ - 2ⁿ·cₙ²
//
// π is bracketed by aₙ₊₁²/sₙ₊₁ from below and aₙ²/sₙ₊₁ from above;
// the loop stops when the bracket is tight enough.
func Pi(prec int64) *Float {
	pp := prec
	if pp < 1 {
		pp = 1
	}
	wp := addExp(2*(pp+2), 16)

	a := floatOne()
	b := InvSqrt2(wp)
	s := new(Float).SetMantExp(intOne, -2)
	for n := int64(0); ; n++ {
		if n > 1000 {
			Errorf("pi did not converge after %d iterations", n)
		}
		an := new(Float).AddPrec(a, b, wp)
		an.exp = subExp(an.exp, 1)
		prod := new(Float).MulPrec(a, b, wp)
		bn := new(Float).Sqrt(prod, wp)

		c := new(Float).Sub(a, an)
		c.MulPrec(c, c, wp)
		if !c.IsZero() {
			c.exp = addExp(c.exp, n)
		}
		s.SubPrec(s, c, wp)

		lower := new(Float).Quo(new(Float).MulPrec(an, an, wp), s, wp)
		upper := new(Float).Quo(new(Float).MulPrec(a, a, wp), s, wp)
		a, b = an, bn

		d := new(Float).Sub(upper, lower)
		d.Abs(d)
		if d.IsZero() || addExp(d.Log2(), 1) < negExp(pp+2) {
			lower.Round(prec)
			return lower
		}
	}
}
