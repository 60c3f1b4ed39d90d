// Copyright 2025 The Keisan Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value

import "errors"

// A Real is a lazy computable real: a function from a requested
// precision p to a Float approximation within 2^-p of the true value.
// Reals are cheap to copy and composed Reals share their operands, so
// a common subexpression can be evaluated at different precisions
// independently. Evaluation is deterministic and never memoized.
type Real struct {
	eval func(prec int64) *Float
}

// ErrUncertain reports that an operand was too close to zero to
// distinguish at the given tolerance. The operation returns the
// original operand as a recovery value alongside it.
var ErrUncertain = errors.New("uncertain near zero")

// NewReal builds a Real from an evaluation function. The function
// must return a fresh Float within 2^-prec of the value for every
// requested prec.
func NewReal(eval func(prec int64) *Float) Real {
	return Real{eval}
}

// Eval evaluates r at the given precision. The zero Real is zero.
func (r Real) Eval(prec int64) *Float {
	if r.eval == nil {
		return new(Float)
	}
	return r.eval(prec)
}

// RealFromFloat returns the exact Real with the value of x.
func RealFromFloat(x *Float) Real {
	f := new(Float).Set(x)
	return Real{func(int64) *Float {
		return new(Float).Set(f)
	}}
}

// RealFromInt returns the exact Real with the value of x.
func RealFromInt(x *Int) Real {
	return RealFromFloat(new(Float).SetInt(x))
}

// RealFromInt64 returns the exact Real with the value of x.
func RealFromInt64(x int64) Real {
	return RealFromFloat(NewFloat(x))
}

// RealFromRat returns the Real with the value of x, approximated on
// demand by precision-controlled division.
func RealFromRat(x *Rat) Real {
	r := new(Rat).Set(x)
	return Real{func(prec int64) *Float {
		return r.Float(prec)
	}}
}

// RealFromFloat64 returns the exact Real with the value of f,
// rejecting NaN and ±∞.
func RealFromFloat64(f float64) (Real, error) {
	x := new(Float)
	if err := x.SetFloat64(f); err != nil {
		return Real{}, err
	}
	return RealFromFloat(x), nil
}

// RealFromString returns the Real denoted by the decimal string s.
// The string is validated now; each evaluation re-parses it at the
// demanded precision, so no accuracy is fixed in advance.
func RealFromString(s string) (Real, error) {
	t := s
	if len(t) > 0 && (t[0] == '-' || t[0] == '+') {
		t = t[1:]
	}
	digits, dot := 0, false
	for i := 0; i < len(t); i++ {
		switch {
		case '0' <= t[i] && t[i] <= '9':
			digits++
		case t[i] == '.':
			if dot {
				return Real{}, errDigit
			}
			dot = true
		default:
			return Real{}, errDigit
		}
	}
	if digits == 0 {
		return Real{}, errEmpty
	}
	return Real{func(prec int64) *Float {
		f, err := ParseFloatPrec(s, 10, prec)
		if err != nil {
			Errorf("internal error: %s", err)
		}
		return f
	}}, nil
}

// Neg returns -x.
func (x Real) Neg() Real {
	return Real{func(prec int64) *Float {
		f := x.Eval(prec)
		return f.Neg(f)
	}}
}

// Abs returns |x|.
func (x Real) Abs() Real {
	return Real{func(prec int64) *Float {
		f := x.Eval(prec)
		return f.Abs(f)
	}}
}

// Add returns x + y: both operands are evaluated two guard bits past
// the request and the sum rounded there.
func (x Real) Add(y Real) Real {
	return Real{func(prec int64) *Float {
		p := addExp(prec, 2)
		a := x.Eval(p)
		b := y.Eval(p)
		return a.AddPrec(a, b, p)
	}}
}

// Sub returns x - y.
func (x Real) Sub(y Real) Real {
	return Real{func(prec int64) *Float {
		p := addExp(prec, 2)
		a := x.Eval(p)
		b := y.Eval(p)
		return a.SubPrec(a, b, p)
	}}
}

// Mul returns x · y. The operand magnitudes are probed at precision
// zero once, up front; each evaluation then budgets every operand by
// the other's magnitude so the product error stays below 2^-prec.
func (x Real) Mul(y Real) Real {
	aLog := probeLog2(x)
	bLog := probeLog2(y)
	return Real{func(prec int64) *Float {
		p := addExp(prec, 1)
		ap := addExp(p, bLog+3)
		bp := addExp(p, aLog+3)
		if bp < -bLog {
			bp = -bLog
		}
		a := x.Eval(ap)
		b := y.Eval(bp)
		return a.MulPrec(a, b, p)
	}}
}

// Quo returns x / y. The divisor is probed at tolerance tol; if its
// magnitude is not clearly above 2^-tol the division is refused with
// ErrUncertain and x itself is returned as the recovery value.
// Otherwise the probe's lower bound sizes the operand budgets so the
// quotient error is bounded.
func (x Real) Quo(y Real, tol int64) (Real, error) {
	d := y.Eval(tol)
	tau := new(Float).SetMantExp(intOne, negExp(tol))
	if d.CmpAbs(tau) <= 0 {
		return x, ErrUncertain
	}
	lb := new(Float)
	if d.Sign() < 0 {
		lb.Add(d, tau)
	} else {
		lb.Sub(d, tau)
	}
	lbLog := lb.Log2()
	nLog := probeLog2(x)
	return Real{func(prec int64) *Float {
		p := addExp(prec, 1)
		np := addExp(subExp(p, lbLog), 3)
		dp := addExp(subExp(addExp(p, nLog), 2*lbLog), 3)
		n := x.Eval(np)
		dd := y.Eval(dp)
		return n.Quo(n, dd, p)
	}}, nil
}

// Sqrt returns √x. The operand is evaluated at twice the guarded
// precision and its magnitude taken, so probe noise below the
// tolerance cannot push a true zero negative.
func (x Real) Sqrt() Real {
	return Real{func(prec int64) *Float {
		p := addExp(prec, 1)
		v := x.Eval(addExp(p, p))
		v.Abs(v)
		return v.Sqrt(v, p)
	}}
}

// Ln returns ln x. The operand is probed at tolerance tol; if it is
// not clearly above 2^-tol the logarithm is refused with ErrUncertain
// and x itself returned as the recovery value.
func (x Real) Ln(tol int64) (Real, error) {
	v := x.Eval(tol)
	tau := new(Float).SetMantExp(intOne, negExp(tol))
	if v.Cmp(tau) <= 0 {
		return x, ErrUncertain
	}
	return Real{func(prec int64) *Float {
		p := addExp(prec, 1)
		xp := p
		if xp < 64 {
			xp = 64
		}
		f := x.Eval(addExp(xp, tol))
		return f.Ln(f, p)
	}}, nil
}

// RealPi returns π as a Real.
func RealPi() Real {
	return Real{func(prec int64) *Float {
		return Pi(prec)
	}}
}

// RealLn2 returns ln 2 as a Real.
func RealLn2() Real {
	return Real{func(prec int64) *Float {
		return Ln2(prec)
	}}
}

// RealSqrt2 returns √2 as a Real.
func RealSqrt2() Real {
	return Real{func(prec int64) *Float {
		return Sqrt2(prec)
	}}
}

// RealInvSqrt2 returns 1/√2 as a Real.
func RealInvSqrt2() Real {
	return Real{func(prec int64) *Float {
		return InvSqrt2(prec)
	}}
}

// probeLog2 evaluates r at precision zero and returns the magnitude
// of the probe, with zero probes mapping to zero.
func probeLog2(r Real) int64 {
	f := r.Eval(0)
	if f.IsZero() {
		return 0
	}
	return f.Log2()
}
