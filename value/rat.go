// Copyright 2025 The Keisan Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value

import "strings"

// A Rat is an exact rational: a signed numerator over an unsigned,
// non-zero denominator. Rationals are not kept in lowest terms;
// Reduce does that explicitly. The zero value is 0/1.
type Rat struct {
	num Int
	den Nat
}

// NewRat returns the rational num/den. It panics if den is zero.
func NewRat(num *Int, den Nat) *Rat {
	if den.IsZero() {
		Errorf("zero denominator")
	}
	z := new(Rat)
	z.num.Set(num)
	z.den = z.den.Set(den)
	return z
}

// denom returns z's denominator, mapping the zero value's nil to one.
func (z *Rat) denom() Nat {
	if len(z.den) == 0 {
		return natOne
	}
	return z.den
}

// Num returns z's numerator. The result shares z's storage.
func (z *Rat) Num() *Int {
	return &z.num
}

// Denom returns z's denominator. The result shares z's storage.
func (z *Rat) Denom() Nat {
	return z.denom()
}

// SetInt sets z to x/1.
func (z *Rat) SetInt(x *Int) *Rat {
	z.num.Set(x)
	z.den = z.den.SetUint64(1)
	return z
}

// SetInt64 sets z to x/1.
func (z *Rat) SetInt64(x int64) *Rat {
	z.num.SetInt64(x)
	z.den = z.den.SetUint64(1)
	return z
}

// Set sets z to x.
func (z *Rat) Set(x *Rat) *Rat {
	if z != x {
		z.num.Set(&x.num)
		z.den = z.den.Set(x.denom())
	}
	return z
}

func (z *Rat) IsZero() bool {
	return z.num.IsZero()
}

// Sign returns -1, 0, or +1.
func (z *Rat) Sign() int {
	return z.num.Sign()
}

// Neg sets z to -x.
func (z *Rat) Neg(x *Rat) *Rat {
	z.Set(x)
	z.num.Neg(&z.num)
	return z
}

// Abs sets z to |x|.
func (z *Rat) Abs(x *Rat) *Rat {
	z.Set(x)
	z.num.Abs(&z.num)
	return z
}

// Add sets z to x + y: a/b + c/d = (a·d + c·b) / (b·d).
func (z *Rat) Add(x, y *Rat) *Rat {
	var ad, cb Int
	ad.Mul(&x.num, new(Int).SetNat(y.denom(), false))
	cb.Mul(&y.num, new(Int).SetNat(x.denom(), false))
	den := Nat(nil).Mul(x.denom(), y.denom())
	z.num.Add(&ad, &cb)
	z.den = den
	return z
}

// Sub sets z to x - y.
func (z *Rat) Sub(x, y *Rat) *Rat {
	var ny Rat
	ny.Neg(y)
	return z.Add(x, &ny)
}

// Mul sets z to x · y: a/b · c/d = (a·c) / (b·d).
func (z *Rat) Mul(x, y *Rat) *Rat {
	den := Nat(nil).Mul(x.denom(), y.denom())
	z.num.Mul(&x.num, &y.num)
	z.den = den
	return z
}

// Quo sets z to x / y: (a/b) ÷ (c/d) = (a·|d|) / (b·|c|), with the
// sign adjusted by the sign of c. It panics if y is zero.
func (z *Rat) Quo(x, y *Rat) *Rat {
	if y.IsZero() {
		Errorf("division by zero")
	}
	neg := x.num.neg != y.num.neg
	num := Nat(nil).Mul(x.num.abs, y.denom())
	den := Nat(nil).Mul(x.denom(), y.num.abs)
	z.num.SetNat(num, neg)
	z.den = den
	return z
}

// Reduce divides numerator and denominator by their GCD.
func (z *Rat) Reduce() *Rat {
	if z.num.IsZero() {
		z.den = z.den.SetUint64(1)
		return z
	}
	g := Nat(nil).GCD(z.num.abs, z.denom())
	if g.IsOne() {
		z.den = z.den.Set(z.denom())
		return z
	}
	z.num.abs = Nat(nil).Div(z.num.abs, g)
	z.den = Nat(nil).Div(z.denom(), g)
	return z
}

// Floor returns ⌊z⌋.
func (z *Rat) Floor() *Int {
	q, r := z.quoRem()
	if !r.IsZero() && z.num.neg {
		q.Sub(q, intOne)
	}
	return q
}

// Ceil returns ⌈z⌉.
func (z *Rat) Ceil() *Int {
	q, r := z.quoRem()
	if !r.IsZero() && !z.num.neg {
		q.Add(q, intOne)
	}
	return q
}

// Round returns z rounded to the nearest integer, half away from
// zero: the doubled remainder magnitude is compared to the
// denominator.
func (z *Rat) Round() *Int {
	q, r := z.quoRem()
	if r.IsZero() {
		return q
	}
	r2 := Nat(nil).Lsh(r.abs, 1)
	if r2.Cmp(z.denom()) >= 0 {
		neg := z.num.neg
		q.abs = q.abs.addWord(q.abs, 1)
		q.neg = neg
		q.norm()
	}
	return q
}

func (z *Rat) quoRem() (*Int, *Int) {
	den := new(Int).SetNat(z.denom(), false)
	return new(Int).QuoRem(&z.num, den, new(Int))
}

// Cmp compares z and x by cross-multiplication and returns -1, 0, or
// +1. Unreduced representatives of the same value compare equal.
func (z *Rat) Cmp(x *Rat) int {
	var l, r Int
	l.Mul(&z.num, new(Int).SetNat(x.denom(), false))
	r.Mul(&x.num, new(Int).SetNat(z.denom(), false))
	return l.Cmp(&r)
}

// ParseRat parses s as "num" or "num/den" in the given base.
func ParseRat(s string, base int) (*Rat, error) {
	numStr, denStr, ok := strings.Cut(s, "/")
	num, err := ParseInt(numStr, base)
	if err != nil {
		return nil, err
	}
	den := natOne
	if ok {
		den, err = ParseNat(denStr, base)
		if err != nil {
			return nil, err
		}
		if den.IsZero() {
			return nil, errZeroDen
		}
	}
	z := new(Rat)
	z.num = *num
	z.den = Nat(nil).Set(den)
	return z, nil
}

// Text renders z as "num/den" in the given base.
func (z *Rat) Text(base int, upper bool) string {
	return z.num.Text(base, upper) + "/" + z.denom().Text(base, upper)
}

func (z *Rat) String() string {
	return z.Text(10, false)
}
