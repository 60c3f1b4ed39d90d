// Copyright 2025 The Keisan Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value

import (
	"math"
	"testing"
)

func floatFromF64(t *testing.T, f float64) *Float {
	t.Helper()
	z := new(Float)
	if err := z.SetFloat64(f); err != nil {
		t.Fatalf("SetFloat64(%g): %v", f, err)
	}
	return z
}

func floatFromString(t *testing.T, s string) *Float {
	t.Helper()
	f, err := ParseFloat(s, 10)
	if err != nil {
		t.Fatalf("ParseFloat(%q): %v", s, err)
	}
	return f
}

// ratAbsBelow reports whether |x - y| < 2^-prec, computed exactly in
// rationals.
func ratAbsBelow(x *Float, y *Rat, prec int64) bool {
	delta := new(Rat).Sub(x.Rational(), y)
	delta.Abs(delta)
	eps := NewRat(NewInt(1), Nat(nil).Lsh(natOne, prec))
	return delta.Cmp(eps) < 0
}

func TestFloatNormalize(t *testing.T) {
	f := new(Float).SetMantExp(NewInt(8), 0)
	if m, _ := f.Mant().Int64(); m != 1 || f.Exp() != 3 {
		t.Errorf("8 normalized to %d·2^%d, want 1·2^3", m, f.Exp())
	}
	cases := []int64{1, 3, 6, 12, 100, -40, 4096}
	for _, v := range cases {
		f := NewFloat(v)
		if f.Mant().Mag().Bit(0) != 1 {
			t.Errorf("mantissa of %d is even: %s·2^%d", v, f.Mant(), f.Exp())
		}
	}
	z := NewFloat(0)
	if !z.IsZero() || z.Exp() != 0 {
		t.Error("zero is not canonical")
	}
}

func TestFloatAddSub(t *testing.T) {
	five, three := NewFloat(5), NewFloat(3)
	if got := new(Float).Add(five, three); got.Cmp(NewFloat(8)) != 0 {
		t.Errorf("5 + 3 = %s", got)
	}
	if got := new(Float).Sub(five, three); got.Cmp(NewFloat(2)) != 0 {
		t.Errorf("5 - 3 = %s", got)
	}
	if got := new(Float).Sub(three, five); got.Cmp(NewFloat(-2)) != 0 {
		t.Errorf("3 - 5 = %s", got)
	}
	// Different exponents: 5·2^2 + 3·2^1 = 26.
	a := new(Float).Lsh(five, 2)
	b := new(Float).Lsh(three, 1)
	if got := new(Float).Add(a, b); got.Cmp(NewFloat(26)) != 0 {
		t.Errorf("20 + 6 = %s", got)
	}
	// Adding zero is the identity.
	zero := new(Float)
	if got := new(Float).Add(five, zero); got.Cmp(five) != 0 {
		t.Errorf("5 + 0 = %s", got)
	}
	if got := new(Float).Sub(zero, five); got.Cmp(NewFloat(-5)) != 0 {
		t.Errorf("0 - 5 = %s", got)
	}
}

func TestFloatMul(t *testing.T) {
	if got := new(Float).Mul(NewFloat(5), NewFloat(3)); got.Cmp(NewFloat(15)) != 0 {
		t.Errorf("5 * 3 = %s", got)
	}
	c := floatFromF64(t, 2.5)
	d := floatFromF64(t, 1.5)
	if got := new(Float).Mul(c, d); got.Cmp(floatFromF64(t, 3.75)) != 0 {
		t.Errorf("2.5 * 1.5 = %s", got)
	}
	// Multiplying by one is the identity.
	if got := new(Float).Mul(c, floatOne()); got.Cmp(c) != 0 {
		t.Errorf("2.5 * 1 = %s", got)
	}
	if got := new(Float).Mul(c, new(Float)); !got.IsZero() {
		t.Errorf("2.5 * 0 = %s", got)
	}
}

func TestFloatRound(t *testing.T) {
	cases := []struct {
		in   float64
		prec int64
		want float64
	}{
		{1.5, 0, 2},
		{2.25, 1, 2.5},
		{-1.5, 0, -2},
		{-2.25, 1, -2.5},
		{3.125, 2, 3.25},
		{0.3125, 1, 0.5},
	}
	for _, c := range cases {
		f := floatFromF64(t, c.in)
		f.Round(c.prec)
		if f.Cmp(floatFromF64(t, c.want)) != 0 {
			t.Errorf("round(%v, %d) = %s, want %v", c.in, c.prec, f, c.want)
		}
		// Rounding twice equals rounding once.
		g := new(Float).Set(f)
		g.Round(c.prec)
		if g.Cmp(f) != 0 {
			t.Errorf("round(%v, %d) is not idempotent", c.in, c.prec)
		}
	}
}

func TestFloatFloorCeilPrec(t *testing.T) {
	cases := []struct {
		in          float64
		prec        int64
		floor, ceil float64
	}{
		{1.75, 0, 1, 2},
		{2.25, 1, 2, 2.5},
		{-1.75, 0, -2, -1},
		{-2.25, 1, -2.5, -2},
		{1.25, 0, 1, 2},
		{-1.25, 0, -2, -1},
		{2, 0, 2, 2},
	}
	for _, c := range cases {
		f := floatFromF64(t, c.in)
		f.FloorPrec(c.prec)
		if f.Cmp(floatFromF64(t, c.floor)) != 0 {
			t.Errorf("floor(%v, %d) = %s, want %v", c.in, c.prec, f, c.floor)
		}
		g := floatFromF64(t, c.in)
		g.CeilPrec(c.prec)
		if g.Cmp(floatFromF64(t, c.ceil)) != 0 {
			t.Errorf("ceil(%v, %d) = %s, want %v", c.in, c.prec, g, c.ceil)
		}
	}
}

func TestFloatTruncInt(t *testing.T) {
	cases := []struct {
		in                        float64
		round, floor, ceil, trunc string
	}{
		{1.5, "2", "1", "2", "1"},
		{-1.5, "-2", "-2", "-1", "-1"},
		{2.75, "3", "2", "3", "2"},
		{-0.25, "0", "-1", "0", "0"},
		{3, "3", "3", "3", "3"},
	}
	for _, c := range cases {
		f := floatFromF64(t, c.in)
		if got := f.RoundInt().String(); got != c.round {
			t.Errorf("roundInt(%v) = %s, want %s", c.in, got, c.round)
		}
		if got := f.FloorInt().String(); got != c.floor {
			t.Errorf("floorInt(%v) = %s, want %s", c.in, got, c.floor)
		}
		if got := f.CeilInt().String(); got != c.ceil {
			t.Errorf("ceilInt(%v) = %s, want %s", c.in, got, c.ceil)
		}
		if got := f.TruncInt().String(); got != c.trunc {
			t.Errorf("truncInt(%v) = %s, want %s", c.in, got, c.trunc)
		}
	}
}

func TestFloatCmp(t *testing.T) {
	order := []*Float{
		NewFloat(-1024),
		floatFromF64(t, -1.5),
		floatFromF64(t, -0.5),
		new(Float),
		floatFromF64(t, 0.5),
		floatOne(),
		floatFromF64(t, 1.5),
		NewFloat(2),
		NewFloat(1024),
	}
	for i, a := range order {
		for j, b := range order {
			want := 0
			if i < j {
				want = -1
			} else if i > j {
				want = 1
			}
			if got := a.Cmp(b); got != want {
				t.Errorf("cmp(%s, %s) = %d, want %d", a, b, got, want)
			}
		}
	}
}

func TestFloatIEEERoundTrip(t *testing.T) {
	cases := []float64{
		0, 1, -1, 0.5, -0.5, 2, 0.125, 3.141592653589793,
		1e300, 1e-300, -123.456, 5e-324, math.SmallestNonzeroFloat64,
		2.2250738585072014e-308,
	}
	for _, c := range cases {
		f := floatFromF64(t, c)
		if got := f.Float64(); got != c {
			t.Errorf("Float64 round trip of %g = %g", c, got)
		}
	}
	if err := new(Float).SetFloat64(math.NaN()); err == nil {
		t.Error("NaN accepted")
	}
	if err := new(Float).SetFloat64(math.Inf(1)); err == nil {
		t.Error("+Inf accepted")
	}
	if err := new(Float).SetFloat64(math.Inf(-1)); err == nil {
		t.Error("-Inf accepted")
	}
}

func TestFloatIEEESaturate(t *testing.T) {
	huge := new(Float).SetMantExp(NewInt(1), 2000)
	if !math.IsInf(huge.Float64(), 1) {
		t.Error("2^2000 did not saturate to +Inf")
	}
	if !math.IsInf(new(Float).Neg(huge).Float64(), -1) {
		t.Error("-2^2000 did not saturate to -Inf")
	}
	tiny := new(Float).SetMantExp(NewInt(1), -1200)
	if got := tiny.Float64(); got != 0 {
		t.Errorf("2^-1200 = %g, want flush to zero", got)
	}
	// A value in the subnormal range encodes as a subnormal.
	sub := new(Float).SetMantExp(NewInt(1), -1074)
	if got := sub.Float64(); got != math.SmallestNonzeroFloat64 {
		t.Errorf("2^-1074 = %g, want smallest subnormal", got)
	}
}

func TestFloatIEEE32(t *testing.T) {
	cases := []float32{0, 1, -1, 0.5, 1.5, -2.25, math.SmallestNonzeroFloat32}
	for _, c := range cases {
		z := new(Float)
		if err := z.SetFloat32(c); err != nil {
			t.Fatalf("SetFloat32(%g): %v", c, err)
		}
		if got := z.Float32(); got != c {
			t.Errorf("Float32 round trip of %g = %g", c, got)
		}
	}
	if err := new(Float).SetFloat32(float32(math.Inf(1))); err == nil {
		t.Error("+Inf accepted")
	}
	huge := new(Float).SetMantExp(NewInt(1), 300)
	if !math.IsInf(float64(huge.Float32()), 1) {
		t.Error("2^300 did not saturate to +Inf")
	}
}

func TestFloatStringRoundTrip(t *testing.T) {
	cases := []string{
		"0", "1", "-1", "42", "0.5", "-0.5", "0.25", "2.75",
		"-0.125", "4096", "96.4453125", "0.0009765625",
	}
	for _, c := range cases {
		f := floatFromString(t, c)
		if got := f.Text(10, false, 100); got != c {
			t.Errorf("render(parse(%q)) = %q", c, got)
		}
	}
}

func TestFloatParse(t *testing.T) {
	// Dyadic inputs parse exactly.
	if f := floatFromString(t, "0.125"); f.Cmp(floatFromF64(t, 0.125)) != 0 {
		t.Errorf("0.125 parsed to %s", f)
	}
	if f := floatFromString(t, "-4546454"); f.Cmp(NewFloat(-4546454)) != 0 {
		t.Errorf("-4546454 parsed to %s", f)
	}
	// Non-dyadic inputs land within the requested precision.
	fifth, err := ParseFloatPrec("0.2", 10, 128)
	if err != nil {
		t.Fatal(err)
	}
	exact := NewRat(NewInt(1), NewNat(5))
	if !ratAbsBelow(fifth, exact, 128) {
		t.Errorf("0.2 parsed to %s, not within 2^-128", fifth)
	}
	// Bad inputs.
	for _, bad := range []string{"", ".", "1.2.3", "1x", "--1", "12a"} {
		if _, err := ParseFloat(bad, 10); err == nil {
			t.Errorf("ParseFloat(%q) succeeded", bad)
		}
	}
}

func TestFloatRecip(t *testing.T) {
	// A power of two inverts exactly.
	if got := new(Float).Recip(NewFloat(4), 64); got.Cmp(floatFromF64(t, 0.25)) != 0 {
		t.Errorf("1/4 = %s", got)
	}
	for _, v := range []int64{3, -5, 7, 1000, 999999937, -999983} {
		got := new(Float).Recip(NewFloat(v), 256)
		want := new(Rat).Quo(new(Rat).SetInt64(1), new(Rat).SetInt64(v))
		if !ratAbsBelow(got, want, 256) {
			t.Errorf("recip(%d) = %s, not within 2^-256", v, got)
		}
	}
}

func TestFloatRecipZeroPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("reciprocal of zero did not panic")
		}
	}()
	new(Float).Recip(new(Float), 64)
}

func TestFloatQuo(t *testing.T) {
	// Exact when the divisor is a power of two.
	if got := new(Float).Quo(NewFloat(16), NewFloat(4), 64); got.Cmp(NewFloat(4)) != 0 {
		t.Errorf("16/4 = %s", got)
	}
	cases := []struct {
		n, d int64
	}{
		{10, 3}, {-15, 7}, {-20, -3}, {1000, 7}, {1, 999983},
	}
	for _, c := range cases {
		got := new(Float).Quo(NewFloat(c.n), NewFloat(c.d), 512)
		want := new(Rat).Quo(new(Rat).SetInt64(c.n), new(Rat).SetInt64(c.d))
		if !ratAbsBelow(got, want, 512) {
			t.Errorf("%d/%d = %s, not within 2^-512", c.n, c.d, got)
		}
	}
}

func TestFloatQuoByZeroPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("division by zero did not panic")
		}
	}()
	new(Float).Quo(NewFloat(1), new(Float), 64)
}

func TestFloatIntFloorDiv(t *testing.T) {
	sevenHalf := floatFromF64(t, 7.5)
	two := NewFloat(2)
	if got := IntDiv(sevenHalf, two).String(); got != "3" {
		t.Errorf("intdiv(7.5, 2) = %s, want 3", got)
	}
	neg := floatFromF64(t, -7.5)
	if got := IntDiv(neg, two).String(); got != "-3" {
		t.Errorf("intdiv(-7.5, 2) = %s, want -3", got)
	}
	if got := FloorDiv(neg, two).String(); got != "-4" {
		t.Errorf("floordiv(-7.5, 2) = %s, want -4", got)
	}
	if got := FloorDiv(sevenHalf, two).String(); got != "3" {
		t.Errorf("floordiv(7.5, 2) = %s, want 3", got)
	}
}

func TestFloatPow(t *testing.T) {
	if got := new(Float).PowPrec(NewFloat(2), 10, 64); got.Cmp(NewFloat(1024)) != 0 {
		t.Errorf("2^10 = %s", got)
	}
	if got := new(Float).PowPrec(NewFloat(3), 3, 64); got.Cmp(NewFloat(27)) != 0 {
		t.Errorf("3^3 = %s", got)
	}
	if got := new(Float).PowPrec(NewFloat(2), -2, 64); got.Cmp(floatFromF64(t, 0.25)) != 0 {
		t.Errorf("2^-2 = %s", got)
	}
	if got := new(Float).PowPrec(NewFloat(0), 0, 64); !got.IsOne() {
		t.Errorf("0^0 = %s, want 1", got)
	}
	got := new(Float).PowPrec(NewFloat(3), -1, 256)
	if !ratAbsBelow(got, NewRat(NewInt(1), NewNat(3)), 256) {
		t.Errorf("3^-1 = %s, not within 2^-256", got)
	}
}

func TestFloatRational(t *testing.T) {
	f := floatFromF64(t, -2.75)
	r := f.Rational()
	r.Reduce()
	if got := r.String(); got != "-11/4" {
		t.Errorf("-2.75 as rational = %s, want -11/4", got)
	}
	i := NewFloat(48)
	if got := i.Rational().Reduce().String(); got != "48/1" {
		t.Errorf("48 as rational = %s, want 48/1", got)
	}
}
