// Copyright 2025 The Keisan Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value

// Recip sets z to 1/x with absolute error less than 2^-prec, by
// Newton–Raphson iteration seeded from an exact integer division at a
// 64-bit margin. It panics if x is zero.
func (z *Float) Recip(x *Float, prec int64) *Float {
	if x.IsZero() {
		Errorf("division by zero")
	}
	if x.mant.abs.IsOne() {
		// A power of two inverts exactly.
		e := negExp(x.exp)
		z.mant.Set(&x.mant)
		z.exp = e
		return z
	}

	// Seed: ⌊2^k / |m|⌋ · 2^(-e-k), k = ⌊log₂|m|⌋ + 64, giving
	// roughly 64 correct bits.
	shift := x.mant.abs.Log2() + 64
	num := Nat(nil).Lsh(natOne, shift)
	q := Nat(nil).Div(num, x.mant.abs)
	est := new(Float)
	est.mant.SetNat(q, x.mant.neg)
	est.exp = subExp(negExp(x.exp), shift)
	est.norm()

	one := floatOne()
	two := floatTwo()
	xlog := x.Log2()
	residual := new(Float).Mul(x, est)
	residual.Sub(one, residual)
	if residual.IsZero() {
		est.Round(prec)
		return z.Set(est)
	}
	logEps := addExp(residual.Log2(), 1)
	if logEps >= 0 {
		Errorf("bad estimate for reciprocal")
	}

	// The error squares each step; size the working precision by the
	// number of steps ahead of us and by the magnitude of x. A small x
	// has a large reciprocal, so the products x·est near one need
	// -log₂|x| extra bits to reach the stop test.
	stop := subExp(subExp(xlog, prec), 1)
	steps := int64(0)
	for cp := logEps; cp > stop && steps < 128; cp *= 2 {
		steps++
	}
	mag := xlog
	if mag < 0 {
		mag = negExp(mag)
	}
	wp := addExp(addExp(prec, mag), steps+16)
	if wp < prec+16 {
		wp = prec + 16
	}

	for i := int64(0); logEps > stop; i++ {
		if i > steps+8 {
			Errorf("reciprocal of %s did not converge after %d iterations", x, i)
		}
		// est = est · (2 - x·est)
		prod := new(Float).MulPrec(x, est, wp)
		diff := new(Float).SubPrec(two, prod, wp)
		est.MulPrec(est, diff, wp)

		residual.Mul(x, est)
		residual.Sub(one, residual)
		if residual.IsZero() {
			break
		}
		logEps = addExp(residual.Log2(), 1)
	}
	est.Round(prec)
	return z.Set(est)
}

// Quo sets z to x/y with absolute error less than 2^-prec: the
// reciprocal of y at prec + log₂|x| + 1, multiplied at prec + 1.
func (z *Float) Quo(x, y *Float, prec int64) *Float {
	if y.IsZero() {
		Errorf("division by zero")
	}
	if x.IsZero() {
		return z.setZero()
	}
	r := new(Float).Recip(y, addExp(prec, addExp(x.Log2(), 1)))
	return z.MulPrec(x, r, addExp(prec, 1))
}

// IntDiv returns the integer quotient of x and y, truncated toward
// zero, by aligning the operand exponents and dividing the mantissas.
func IntDiv(x, y *Float) *Int {
	xa, ya := alignInts(x, y)
	q, _ := new(Int).QuoRem(xa, ya, new(Int))
	return q
}

// FloorDiv returns ⌊x/y⌋ by aligning the operand exponents and
// floor-dividing the mantissas.
func FloorDiv(x, y *Float) *Int {
	xa, ya := alignInts(x, y)
	q, _ := new(Int).DivModFloor(xa, ya, new(Int))
	return q
}

// alignInts scales x and y to a common exponent and returns the
// resulting integer mantissas.
func alignInts(x, y *Float) (*Int, *Int) {
	if y.IsZero() {
		Errorf("division by zero")
	}
	e := min(x.exp, y.exp)
	xa, ya := new(Int), new(Int)
	xa.abs = Nat(nil).Lsh(x.mant.abs, subExp(x.exp, e))
	xa.neg = x.mant.neg
	ya.abs = Nat(nil).Lsh(y.mant.abs, subExp(y.exp, e))
	ya.neg = y.mant.neg
	return xa.norm(), ya.norm()
}

// PowPrec sets z to x^pow with absolute error less than 2^-prec, by
// repeated squaring at prec + 16 working bits; negative powers go
// through the reciprocal. 0^0 is 1; a negative power of zero panics.
func (z *Float) PowPrec(x *Float, pow, prec int64) *Float {
	if pow == 0 {
		return z.SetInt64(1)
	}
	if x.IsZero() {
		if pow < 0 {
			Errorf("division by zero")
		}
		return z.setZero()
	}
	if x.IsOne() {
		return z.SetInt64(1)
	}

	wp := addExp(prec, 16)
	neg := pow < 0
	k := uint64(pow)
	if neg {
		k = -k
	}
	res := floatOne()
	p := new(Float).Set(x)
	for k != 0 {
		if k&1 == 1 {
			res.MulPrec(res, p, wp)
		}
		k >>= 1
		if k != 0 {
			p.MulPrec(p, p, wp)
		}
	}
	if neg {
		res.Recip(res, wp)
	}
	res.Round(prec)
	return z.Set(res)
}
