// Copyright 2025 The Keisan Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value

// A Float is a binary floating-point number mant·2^exp with an
// arbitrary-precision mantissa and a bounded exponent. The mantissa of
// a non-zero Float is odd, so every dyadic rational has exactly one
// representation; zero is mant 0, exp 0. Exponent overflow panics.
type Float struct {
	mant Int
	exp  int64
}

// NewFloat returns a Float with the value of x.
func NewFloat(x int64) *Float {
	return new(Float).SetInt64(x)
}

// addExp returns a+b, panicking on overflow.
func addExp(a, b int64) int64 {
	c := a + b
	if (b > 0 && c < a) || (b < 0 && c > a) {
		Errorf("exponent overflow")
	}
	return c
}

// subExp returns a-b, panicking on overflow.
func subExp(a, b int64) int64 {
	c := a - b
	if (b < 0 && c < a) || (b > 0 && c > a) {
		Errorf("exponent overflow")
	}
	return c
}

// negExp returns -e, panicking on overflow.
func negExp(e int64) int64 {
	return subExp(0, e)
}

// norm re-establishes the invariant: a zero mantissa forces a zero
// exponent; otherwise trailing zero bits move into the exponent.
func (z *Float) norm() *Float {
	if z.mant.IsZero() {
		z.mant.neg = false
		z.exp = 0
		return z
	}
	tz := z.mant.abs.TrailingZeros()
	if tz > 0 {
		z.mant.abs = z.mant.abs.Rsh(z.mant.abs, tz)
		z.exp = addExp(z.exp, tz)
	}
	return z
}

func (z *Float) IsZero() bool {
	return z.mant.IsZero()
}

func (z *Float) IsOne() bool {
	return z.exp == 0 && !z.mant.neg && z.mant.abs.IsOne()
}

// Sign returns -1, 0, or +1.
func (z *Float) Sign() int {
	return z.mant.Sign()
}

// Mant returns z's mantissa. The result shares z's storage.
func (z *Float) Mant() *Int {
	return &z.mant
}

// Exp returns z's exponent.
func (z *Float) Exp() int64 {
	return z.exp
}

// Set sets z to x.
func (z *Float) Set(x *Float) *Float {
	if z != x {
		z.mant.Set(&x.mant)
		z.exp = x.exp
	}
	return z
}

func (z *Float) setZero() *Float {
	z.mant.SetInt64(0)
	z.exp = 0
	return z
}

// SetInt64 sets z to x.
func (z *Float) SetInt64(x int64) *Float {
	z.mant.SetInt64(x)
	z.exp = 0
	return z.norm()
}

// SetInt sets z to x.
func (z *Float) SetInt(x *Int) *Float {
	z.mant.Set(x)
	z.exp = 0
	return z.norm()
}

// SetNat sets z to x.
func (z *Float) SetNat(x Nat) *Float {
	z.mant.SetNat(x, false)
	z.exp = 0
	return z.norm()
}

// SetMantExp sets z to mant·2^exp.
func (z *Float) SetMantExp(mant *Int, exp int64) *Float {
	z.mant.Set(mant)
	z.exp = exp
	return z.norm()
}

// Neg sets z to -x.
func (z *Float) Neg(x *Float) *Float {
	z.Set(x)
	z.mant.Neg(&z.mant)
	return z
}

// Abs sets z to |x|.
func (z *Float) Abs(x *Float) *Float {
	z.Set(x)
	z.mant.neg = false
	return z
}

// Lsh sets z to x·2^s.
func (z *Float) Lsh(x *Float, s int64) *Float {
	z.Set(x)
	if !z.IsZero() {
		z.exp = addExp(z.exp, s)
	}
	return z
}

// Rsh sets z to x·2^-s.
func (z *Float) Rsh(x *Float, s int64) *Float {
	z.Set(x)
	if !z.IsZero() {
		z.exp = subExp(z.exp, s)
	}
	return z
}

// Log2 returns ⌊log₂|z|⌋. It panics if z is zero.
func (z *Float) Log2() int64 {
	return addExp(z.mant.abs.Log2(), z.exp)
}

// Log2Exact returns log₂|z| and true if z is a power of two, and
// 0 and false otherwise.
func (z *Float) Log2Exact() (int64, bool) {
	if z.IsZero() || !z.mant.abs.IsOne() {
		return 0, false
	}
	return z.exp, true
}

// Add sets z to x + y, exactly: the operand with the larger exponent
// is aligned down to the other's exponent and the mantissas added.
func (z *Float) Add(x, y *Float) *Float {
	if x.IsZero() {
		return z.Set(y)
	}
	if y.IsZero() {
		return z.Set(x)
	}
	if x.exp < y.exp {
		x, y = y, x
	}
	d := subExp(x.exp, y.exp)
	var m Int
	m.abs = Nat(nil).Lsh(x.mant.abs, d)
	m.neg = x.mant.neg
	e := y.exp
	z.mant.Add(&m, &y.mant)
	z.exp = e
	return z.norm()
}

// AddPrec sets z to x + y rounded to prec.
func (z *Float) AddPrec(x, y *Float, prec int64) *Float {
	return z.Add(x, y).Round(prec)
}

// Sub sets z to x - y, exactly.
func (z *Float) Sub(x, y *Float) *Float {
	var ny Float
	ny.Neg(y)
	return z.Add(x, &ny)
}

// SubPrec sets z to x - y rounded to prec.
func (z *Float) SubPrec(x, y *Float, prec int64) *Float {
	return z.Sub(x, y).Round(prec)
}

// Mul sets z to x · y, exactly: mantissas multiply, exponents add.
func (z *Float) Mul(x, y *Float) *Float {
	if x.IsZero() || y.IsZero() {
		return z.setZero()
	}
	e := addExp(x.exp, y.exp)
	z.mant.Mul(&x.mant, &y.mant)
	z.exp = e
	return z.norm()
}

// MulPrec sets z to x · y rounded to prec.
func (z *Float) MulPrec(x, y *Float, prec int64) *Float {
	return z.Mul(x, y).Round(prec)
}

// Cmp compares z and x and returns -1, 0, or +1.
func (z *Float) Cmp(x *Float) int {
	zs, xs := z.Sign(), x.Sign()
	switch {
	case zs < xs:
		return -1
	case zs > xs:
		return 1
	case zs == 0:
		return 0
	}
	c := cmpAbsNonZero(z, x)
	if zs < 0 {
		return -c
	}
	return c
}

// CmpAbs compares |z| and |x|.
func (z *Float) CmpAbs(x *Float) int {
	switch {
	case z.IsZero() && x.IsZero():
		return 0
	case z.IsZero():
		return -1
	case x.IsZero():
		return 1
	}
	return cmpAbsNonZero(z, x)
}

// cmpAbsNonZero compares magnitudes by weight ⌊log₂⌋ + exponent
// first, aligning mantissas only on a tie.
func cmpAbsNonZero(a, b *Float) int {
	aw := addExp(a.exp, a.mant.abs.Log2())
	bw := addExp(b.exp, b.mant.abs.Log2())
	switch {
	case aw < bw:
		return -1
	case aw > bw:
		return 1
	}
	switch {
	case a.exp == b.exp:
		return a.mant.abs.Cmp(b.mant.abs)
	case a.exp < b.exp:
		bm := Nat(nil).Lsh(b.mant.abs, subExp(b.exp, a.exp))
		return a.mant.abs.Cmp(bm)
	}
	am := Nat(nil).Lsh(a.mant.abs, subExp(a.exp, b.exp))
	return am.Cmp(b.mant.abs)
}

// Shared small constants, freshly allocated so callers may mutate.

func floatOne() *Float {
	return new(Float).SetInt64(1)
}

func floatTwo() *Float {
	return new(Float).SetInt64(2)
}

func floatFour() *Float {
	return new(Float).SetInt64(4)
}

func floatHalf() *Float {
	return new(Float).SetMantExp(intOne, -1)
}
