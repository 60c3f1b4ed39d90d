// Copyright 2025 The Keisan Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value

// Sqrt sets z to the square root of x, with absolute error less than
// 2^-prec, using Newton's method.
func (z *Float) Sqrt(x *Float, prec int64) *Float {
	if x.Sign() < 0 {
		Errorf("square root of negative number")
	}
	if x.IsZero() {
		return z.setZero()
	}
	if x.IsOne() {
		return z.SetInt64(1)
	}

	// Each iteration computes est = (est + x/est)/2; the step
	// est - x/est shrinks quadratically. The seed halves the
	// exponent, bounding the root from the correct side.
	wp := addExp(prec, 16)
	est := sqrtEstimate(x)
	for i := 0; ; i++ {
		if i > 1000 {
			Errorf("sqrt of %s did not converge after %d iterations", x, i)
		}
		q := new(Float).Quo(x, est, wp)
		step := new(Float).Sub(est, q)
		est.Add(est, q)
		est.exp = subExp(est.exp, 1)
		est.Round(wp)
		if step.IsZero() || step.Log2() <= negExp(prec) {
			break
		}
	}
	est.Round(prec)
	return z.Set(est)
}

// sqrtEstimate builds a first approximation of √x whose exponent is
// half of x's effective exponent.
func sqrtEstimate(x *Float) *Float {
	shift := x.mant.abs.Log2()
	if (x.exp+shift)%2 != 0 {
		shift++
	}
	n := addExp(x.exp, shift) / 2
	a := new(Float).SetMantExp(intOne, subExp(n, 1))
	b := new(Float).SetMantExp(&x.mant, subExp(n, shift+1))
	return a.Add(a, b)
}

// Sqrt2 returns √2 with absolute error less than 2^-prec.
func Sqrt2(prec int64) *Float {
	return new(Float).Sqrt(floatTwo(), prec)
}

// InvSqrt2 returns 1/√2 with absolute error less than 2^-prec.
func InvSqrt2(prec int64) *Float {
	return new(Float).Sqrt(floatHalf(), prec)
}
