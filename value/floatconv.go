// Copyright 2025 The Keisan Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value

import (
	"math"
	"strings"
)

// SetFloat64 sets z to the value of f. NaN and ±∞ are rejected.
func (z *Float) SetFloat64(f float64) error {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return errNotFinite
	}
	if f == 0 {
		z.setZero()
		return nil
	}
	b := math.Float64bits(f)
	neg := b>>63 == 1
	exp := int64(b >> 52 & 0x7ff)
	frac := b & (1<<52 - 1)
	if exp == 0 {
		// Subnormal: no implicit leading bit.
		z.mant.SetNat(Nat{frac}, neg)
		z.exp = -1074
	} else {
		z.mant.SetNat(Nat{frac | 1<<52}, neg)
		z.exp = exp - 1023 - 52
	}
	z.norm()
	return nil
}

// SetFloat32 sets z to the value of f. NaN and ±∞ are rejected.
func (z *Float) SetFloat32(f float32) error {
	if f != f || f > math.MaxFloat32 || f < -math.MaxFloat32 {
		return errNotFinite
	}
	if f == 0 {
		z.setZero()
		return nil
	}
	b := math.Float32bits(f)
	neg := b>>31 == 1
	exp := int64(b >> 23 & 0xff)
	frac := uint64(b & (1<<23 - 1))
	if exp == 0 {
		z.mant.SetNat(Nat{frac}, neg)
		z.exp = -149
	} else {
		z.mant.SetNat(Nat{frac | 1<<23}, neg)
		z.exp = exp - 127 - 23
	}
	z.norm()
	return nil
}

// Float64 returns z as a float64, saturating to ±∞ beyond the IEEE
// range, flushing to zero below it, and producing subnormal encodings
// in between. Excess mantissa bits are truncated.
func (z *Float) Float64() float64 {
	if z.IsZero() {
		return 0
	}
	var sign uint64
	if z.mant.neg {
		sign = 1 << 63
	}
	l := z.Log2()
	switch {
	case l > 1023:
		return math.Float64frombits(sign | 0x7ff<<52) // ±Inf
	case l >= -1022:
		frac := topBits(z.mant.abs, 53)
		biased := uint64(l + 1023)
		return math.Float64frombits(sign | biased<<52 | frac&^(1<<52))
	case l < -1075:
		return math.Float64frombits(sign) // ±0
	}
	// Subnormal range: encode trunc(|z|·2^1074) directly.
	sh := addExp(z.exp, 1074)
	var fr Nat
	if sh >= 0 {
		fr = Nat(nil).Lsh(z.mant.abs, sh)
	} else {
		fr = Nat(nil).Rsh(z.mant.abs, negExp(sh))
	}
	v, _ := fr.Uint64()
	return math.Float64frombits(sign | v)
}

// Float32 is the 32-bit analogue of Float64.
func (z *Float) Float32() float32 {
	if z.IsZero() {
		return 0
	}
	var sign uint32
	if z.mant.neg {
		sign = 1 << 31
	}
	l := z.Log2()
	switch {
	case l > 127:
		return math.Float32frombits(sign | 0xff<<23)
	case l >= -126:
		frac := uint32(topBits(z.mant.abs, 24))
		biased := uint32(l + 127)
		return math.Float32frombits(sign | biased<<23 | frac&^(1<<23))
	case l < -150:
		return math.Float32frombits(sign)
	}
	sh := addExp(z.exp, 149)
	var fr Nat
	if sh >= 0 {
		fr = Nat(nil).Lsh(z.mant.abs, sh)
	} else {
		fr = Nat(nil).Rsh(z.mant.abs, negExp(sh))
	}
	v, _ := fr.Uint64()
	return math.Float32frombits(sign | uint32(v))
}

// topBits returns the top n bits of x, left-padded with zeros if x is
// shorter. x must be non-zero; n must be at most 64.
func topBits(x Nat, n int64) uint64 {
	mlen := x.Log2() + 1
	if mlen <= n {
		v, _ := x.Uint64()
		return v << (n - mlen)
	}
	t := Nat(nil).Rsh(x, mlen-n)
	v, _ := t.Uint64()
	return v
}

// Rational returns z as an exact rational.
func (z *Float) Rational() *Rat {
	r := new(Rat)
	if z.exp >= 0 {
		r.num.abs = Nat(nil).Lsh(z.mant.abs, z.exp)
		r.num.neg = z.mant.neg
		r.num.norm()
		r.den = r.den.SetUint64(1)
		return r
	}
	r.num.Set(&z.mant)
	r.den = r.den.Lsh(natOne, negExp(z.exp))
	return r
}

// Float returns z as a Float with absolute error less than 2^-prec.
func (z *Rat) Float(prec int64) *Float {
	n := new(Float).SetInt(&z.num)
	if n.IsZero() {
		return n
	}
	d := new(Float).SetNat(z.denom())
	return new(Float).Quo(n, d, prec)
}

// ParseFloat parses s in the given base (2..36), with an optional
// sign and at most one point. The parse precision defaults from the
// number of fractional digits.
func ParseFloat(s string, base int) (*Float, error) {
	checkBase(base)
	_, frac, _ := strings.Cut(s, ".")
	prec := (int64(len(frac)) + 16) * (ilog2int64(int64(base)) + 1)
	return ParseFloatPrec(s, base, prec)
}

// ParseFloatPrec parses s in the given base, rounded so the absolute
// error is less than 2^-prec.
func ParseFloatPrec(s string, base int, prec int64) (*Float, error) {
	checkBase(base)
	if len(s) == 0 {
		return nil, errEmpty
	}
	neg := false
	switch s[0] {
	case '-':
		neg = true
		s = s[1:]
	case '+':
		s = s[1:]
	}
	whole, frac, hasDot := strings.Cut(s, ".")
	if whole == "" && (!hasDot || frac == "") {
		return nil, errEmpty
	}
	if whole == "" {
		whole = "0"
	}
	wholeN, err := parseDigits(whole, base)
	if err != nil {
		return nil, err
	}
	f := new(Float).SetNat(wholeN)
	if hasDot && frac != "" {
		fracN, err := parseDigits(frac, base)
		if err != nil {
			return nil, err
		}
		if !fracN.IsZero() {
			num := new(Float).SetNat(fracN)
			den := new(Float).SetNat(Nat(nil).Pow(NewNat(uint64(base)), uint64(len(frac))))
			part := new(Float).Quo(num, den, addExp(prec, 16))
			f.AddPrec(f, part, addExp(prec, 16))
		}
	}
	f.Round(prec)
	if neg {
		f.Neg(f)
	}
	return f, nil
}

// Text renders z in the given base (2..36): the integer part, then
// fractional digits peeled off by repeated multiplication by the
// base. Rendering stops when the fraction becomes exactly zero or
// after maxDigits digits.
func (z *Float) Text(base int, upper bool, maxDigits int) string {
	checkBase(base)
	var sb strings.Builder
	if z.mant.neg {
		sb.WriteByte('-')
	}
	whole, frac := z.truncFract()
	sb.WriteString(whole.abs.Text(base, upper))
	if frac.IsZero() {
		return sb.String()
	}
	sb.WriteByte('.')
	for i := 0; i < maxDigits && !frac.IsZero(); i++ {
		frac.mant.abs = Nat(nil).mulWord(frac.mant.abs, uint64(base))
		frac.norm()
		d, next := frac.truncFract()
		dv, _ := d.abs.Uint64()
		sb.WriteByte(digitChar(int(dv), upper))
		frac = next
	}
	return sb.String()
}

// String renders z in the configured output base (decimal when none
// is set), honoring the configured digit cap.
func (z *Float) String() string {
	base := conf.OutputBase()
	if base == 0 {
		base = 10
	}
	return z.Text(base, false, conf.MaxDigits())
}
