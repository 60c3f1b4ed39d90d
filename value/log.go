// Copyright 2025 The Keisan Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value

// Ln sets z to the natural logarithm of x with absolute error less
// than 2^-prec, using the arithmetic–geometric mean: for large
// arguments ln x ≈ π / (2·AGM(1, 4/x)). The argument is forced large
// by a power-of-two shift, paid back as shift·ln 2.
func (z *Float) Ln(x *Float, prec int64) *Float {
	if x.Sign() <= 0 {
		Errorf("log of non-positive value")
	}
	if x.IsOne() {
		return z.setZero()
	}
	pp := prec
	if pp < 1 {
		pp = 1
	}
	wp := addExp(2*(pp+2), 16)

	// The identity's error term decays with the magnitude of the
	// argument; shift until it is below the precision target.
	t := pp/2 + ilog2int64(pp+8) + 5
	var shift int64
	if l := x.Log2(); l < t {
		shift = subExp(t, l)
	}
	big := new(Float).Lsh(x, shift)

	agm := agm1(new(Float).Quo(floatFour(), big, wp), wp)
	den := new(Float).Lsh(agm, 1)
	res := new(Float).Quo(Pi(wp), den, wp)
	if shift > 0 {
		back := new(Float).MulPrec(NewFloat(shift), Ln2(wp), wp)
		res.SubPrec(res, back, wp)
	}
	res.Round(prec)
	return z.Set(res)
}

// agm1 iterates the arithmetic–geometric mean of 1 and b at wp
// working bits until successive arithmetic means agree to wp.
func agm1(b *Float, wp int64) *Float {
	a := floatOne()
	for i := 0; ; i++ {
		if i > 1000 {
			Errorf("agm did not converge after %d iterations", i)
		}
		an := new(Float).AddPrec(a, b, wp)
		an.exp = subExp(an.exp, 1)
		prod := new(Float).MulPrec(a, b, wp)
		b = new(Float).Sqrt(prod, wp)
		d := new(Float).Sub(an, a)
		a = an
		if d.IsZero() || addExp(d.Log2(), 1) <= negExp(wp) {
			return a
		}
	}
}

// Ln2 returns ln 2 with absolute error less than 2^-prec, by the
// series ln 2 = Σ 1/(k·2^k). The tail after k = prec is below
// 2^-(prec+1), so the truncation is covered by the final rounding.
func Ln2(prec int64) *Float {
	pp := prec
	if pp < 8 {
		pp = 8
	}
	wp := addExp(pp, ilog2int64(pp)+16)
	sum := new(Float)
	term := new(Float)
	k := new(Float)
	for i := int64(1); i <= pp; i++ {
		term.Recip(k.SetInt64(i), wp)
		term.exp = subExp(term.exp, i)
		sum.AddPrec(sum, term, wp)
	}
	sum.Round(prec)
	return sum
}

// ilog2int64 returns ⌊log₂ v⌋ for v ≥ 1.
func ilog2int64(v int64) int64 {
	if v < 1 {
		Errorf("log of non-positive value")
	}
	n := int64(0)
	for v > 1 {
		v >>= 1
		n++
	}
	return n
}
