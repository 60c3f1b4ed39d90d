// Copyright 2025 The Keisan Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value

// An Int is a signed integer in sign-magnitude form. The zero value is
// zero. Zero is always non-negative.
type Int struct {
	neg bool
	abs Nat
}

// Read-only shared value; never written through.
var intOne = &Int{abs: Nat{1}}

// NewInt returns an Int with the value of x.
func NewInt(x int64) *Int {
	return new(Int).SetInt64(x)
}

// norm re-establishes the canonical zero.
func (z *Int) norm() *Int {
	if len(z.abs) == 0 {
		z.neg = false
	}
	return z
}

func (z *Int) IsZero() bool {
	return len(z.abs) == 0
}

// Sign returns -1, 0, or +1.
func (z *Int) Sign() int {
	switch {
	case len(z.abs) == 0:
		return 0
	case z.neg:
		return -1
	}
	return 1
}

// Set sets z to x.
func (z *Int) Set(x *Int) *Int {
	if z != x {
		z.neg = x.neg
		z.abs = z.abs.Set(x.abs)
	}
	return z
}

// SetInt64 sets z to x.
func (z *Int) SetInt64(x int64) *Int {
	u := uint64(x)
	if x < 0 {
		u = -u
	}
	z.neg = x < 0
	z.abs = z.abs.SetUint64(u)
	return z.norm()
}

// SetUint64 sets z to x.
func (z *Int) SetUint64(x uint64) *Int {
	z.neg = false
	z.abs = z.abs.SetUint64(x)
	return z
}

// SetNat sets z to the magnitude x with the given sign.
func (z *Int) SetNat(x Nat, neg bool) *Int {
	z.neg = neg
	z.abs = z.abs.Set(x)
	return z.norm()
}

// Mag returns z's magnitude. The result shares z's storage.
func (z *Int) Mag() Nat {
	return z.abs
}

// Int64 returns the value of z and whether it fits in an int64.
func (z *Int) Int64() (int64, bool) {
	u, ok := z.abs.Uint64()
	if !ok {
		return 0, false
	}
	if z.neg {
		if u > 1<<63 {
			return 0, false
		}
		return -int64(u), true
	}
	if u > 1<<63-1 {
		return 0, false
	}
	return int64(u), true
}

// Uint64 returns the value of z and whether it fits in a uint64.
// Negative values do not fit.
func (z *Int) Uint64() (uint64, bool) {
	if z.neg {
		return 0, false
	}
	return z.abs.Uint64()
}

// Neg sets z to -x.
func (z *Int) Neg(x *Int) *Int {
	z.Set(x)
	z.neg = !z.neg
	return z.norm()
}

// Abs sets z to |x|.
func (z *Int) Abs(x *Int) *Int {
	z.Set(x)
	z.neg = false
	return z
}

// Add sets z to x + y.
func (z *Int) Add(x, y *Int) *Int {
	if x.neg == y.neg {
		z.abs = z.abs.Add(x.abs, y.abs)
		z.neg = x.neg
		return z.norm()
	}
	// Different signs: subtract the smaller magnitude from the
	// larger; the sign is the sign of the larger.
	if x.abs.Cmp(y.abs) >= 0 {
		neg := x.neg
		z.abs = z.abs.Sub(x.abs, y.abs)
		z.neg = neg
	} else {
		neg := y.neg
		z.abs = z.abs.Sub(y.abs, x.abs)
		z.neg = neg
	}
	return z.norm()
}

// Sub sets z to x - y.
func (z *Int) Sub(x, y *Int) *Int {
	yn := !y.neg
	if x.neg == yn {
		z.abs = z.abs.Add(x.abs, y.abs)
		z.neg = x.neg
		return z.norm()
	}
	if x.abs.Cmp(y.abs) >= 0 {
		neg := x.neg
		z.abs = z.abs.Sub(x.abs, y.abs)
		z.neg = neg
	} else {
		z.abs = z.abs.Sub(y.abs, x.abs)
		z.neg = yn
	}
	return z.norm()
}

// Mul sets z to x * y.
func (z *Int) Mul(x, y *Int) *Int {
	neg := x.neg != y.neg
	if z == x || z == y {
		z.abs = Nat(nil).Mul(x.abs, y.abs)
	} else {
		z.abs = z.abs.Mul(x.abs, y.abs)
	}
	z.neg = neg
	return z.norm()
}

// QuoRem sets z to the quotient x/y truncated toward zero and r to the
// matching remainder, whose sign follows the dividend. It panics if y
// is zero.
func (z *Int) QuoRem(x, y, r *Int) (*Int, *Int) {
	xneg, yneg := x.neg, y.neg
	qbuf, rbuf := z.abs, r.abs
	if z == x || z == y {
		qbuf = nil
	}
	if r == x || r == y {
		rbuf = nil
	}
	z.abs, r.abs = DivRem(qbuf, rbuf, x.abs, y.abs)
	z.neg = xneg != yneg
	r.neg = xneg
	z.norm()
	r.norm()
	return z, r
}

// DivModFloor sets z to the floor quotient x/y and m to the matching
// remainder. When the truncated remainder is non-zero and the exact
// quotient is negative, the quotient is decremented and the divisor
// added to the remainder.
func (z *Int) DivModFloor(x, y, m *Int) (*Int, *Int) {
	xneg, yneg := x.neg, y.neg
	yv := new(Int).Set(y)
	z, m = z.QuoRem(x, y, m)
	if !m.IsZero() && xneg != yneg {
		z.Sub(z, intOne)
		m.Add(m, yv)
	}
	return z, m
}

// Cmp compares z and x and returns -1, 0, or +1.
func (z *Int) Cmp(x *Int) int {
	switch {
	case z.neg && !x.neg:
		return -1
	case !z.neg && x.neg:
		return 1
	case z.neg:
		return x.abs.Cmp(z.abs)
	}
	return z.abs.Cmp(x.abs)
}

// CmpAbs compares the magnitudes of z and x.
func (z *Int) CmpAbs(x *Int) int {
	return z.abs.Cmp(x.abs)
}

// ParseInt parses s as a signed integer in the given base (2..36),
// with an optional leading sign.
func ParseInt(s string, base int) (*Int, error) {
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
	abs, err := parseDigits(s, base)
	if err != nil {
		return nil, err
	}
	return new(Int).SetNat(abs, neg), nil
}

// Text renders z in the given base (2..36).
func (z *Int) Text(base int, upper bool) string {
	if z.neg {
		return "-" + z.abs.Text(base, upper)
	}
	return z.abs.Text(base, upper)
}

func (z *Int) String() string {
	return z.Text(10, false)
}
