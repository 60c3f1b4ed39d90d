// Copyright 2025 The Keisan Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value

// Pow sets z to x**k by repeated squaring.
func (z Nat) Pow(x Nat, k uint64) Nat {
	z = z.SetUint64(1)
	p := Nat(nil).Set(x)
	var tmp Nat
	for k != 0 {
		if k&1 == 1 {
			tmp = tmp.Mul(z, p)
			z, tmp = tmp, z
		}
		k >>= 1
		if k != 0 {
			tmp = tmp.Mul(p, p)
			p, tmp = tmp, p
		}
	}
	return z
}

// GCD sets z to the greatest common divisor of x and y, by the
// Euclidean recurrence with rotating scratch buffers.
func (z Nat) GCD(x, y Nat) Nat {
	a := Nat(nil).Set(x)
	b := Nat(nil).Set(y)
	var q, r Nat
	for !b.IsZero() {
		q, r = DivRem(q, r, a, b)
		a, b, r = b, r, a
	}
	return z.Set(a)
}

// LCM sets z to the least common multiple of x and y.
func (z Nat) LCM(x, y Nat) Nat {
	if len(x) == 0 || len(y) == 0 {
		return z[:0]
	}
	g := Nat(nil).GCD(x, y)
	p := Nat(nil).Mul(x, y)
	return z.Div(p, g)
}

// Factorial sets z to n!. It panics if n does not fit in one limb.
func (z Nat) Factorial(n Nat) Nat {
	if len(n) > 1 {
		Errorf("factorial argument too large")
	}
	z = z.SetUint64(1)
	if len(n) == 0 {
		return z
	}
	var tmp Nat
	for i := uint64(1); i <= n[0]; i++ {
		tmp = tmp.mulWord(z, i)
		z, tmp = tmp, z
	}
	return z
}
