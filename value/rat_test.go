// Copyright 2025 The Keisan Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value

import "testing"

func ratFromString(t *testing.T, s string) *Rat {
	t.Helper()
	r, err := ParseRat(s, 10)
	if err != nil {
		t.Fatalf("ParseRat(%q): %v", s, err)
	}
	return r
}

func TestRatArith(t *testing.T) {
	cases := []struct {
		a, op, b, want string // want is the reduced rendering
	}{
		{"1/2", "+", "1/3", "5/6"},
		{"1/2", "-", "1/3", "1/6"},
		{"1/2", "*", "1/3", "1/6"},
		{"1/2", "/", "1/3", "3/2"},
		{"-1/2", "+", "1/2", "0/1"},
		{"-2/3", "*", "-3/2", "1/1"},
		{"5", "+", "1/2", "11/2"},
		{"-7/4", "/", "-7/4", "1/1"},
		{"1/2", "/", "-1/3", "-3/2"},
	}
	for _, c := range cases {
		a := ratFromString(t, c.a)
		b := ratFromString(t, c.b)
		z := new(Rat)
		switch c.op {
		case "+":
			z.Add(a, b)
		case "-":
			z.Sub(a, b)
		case "*":
			z.Mul(a, b)
		case "/":
			z.Quo(a, b)
		}
		z.Reduce()
		if got := z.String(); got != c.want {
			t.Errorf("%s %s %s = %s, want %s", c.a, c.op, c.b, got, c.want)
		}
	}
}

func TestRatReduce(t *testing.T) {
	r := ratFromString(t, "4/6")
	r.Reduce()
	if got := r.String(); got != "2/3" {
		t.Errorf("reduce(4/6) = %s, want 2/3", got)
	}
	// Reduce is idempotent.
	r.Reduce()
	if got := r.String(); got != "2/3" {
		t.Errorf("reduce twice = %s, want 2/3", got)
	}
	g := Nat(nil).GCD(r.Num().Mag(), r.Denom())
	if !g.IsOne() {
		t.Errorf("gcd after reduce = %s, want 1", g)
	}
	n := ratFromString(t, "-15/25")
	n.Reduce()
	if got := n.String(); got != "-3/5" {
		t.Errorf("reduce(-15/25) = %s, want -3/5", got)
	}
}

func TestRatZeroDenominator(t *testing.T) {
	if _, err := ParseRat("1/0", 10); err == nil {
		t.Error("zero denominator accepted")
	}
	defer func() {
		if recover() == nil {
			t.Error("NewRat with zero denominator did not panic")
		}
	}()
	NewRat(NewInt(1), nil)
}

func TestRatRounding(t *testing.T) {
	cases := []struct {
		r                  string
		floor, ceil, round string
	}{
		{"2/1", "2", "2", "2"},
		{"5/2", "2", "3", "3"},
		{"-5/2", "-3", "-2", "-3"},
		{"7/3", "2", "3", "2"},
		{"-7/3", "-3", "-2", "-2"},
		{"1/2", "0", "1", "1"},
		{"-1/2", "-1", "0", "-1"},
		{"1/3", "0", "1", "0"},
		{"-1/3", "-1", "0", "0"},
	}
	for _, c := range cases {
		r := ratFromString(t, c.r)
		if got := r.Floor().String(); got != c.floor {
			t.Errorf("floor(%s) = %s, want %s", c.r, got, c.floor)
		}
		if got := r.Ceil().String(); got != c.ceil {
			t.Errorf("ceil(%s) = %s, want %s", c.r, got, c.ceil)
		}
		if got := r.Round().String(); got != c.round {
			t.Errorf("round(%s) = %s, want %s", c.r, got, c.round)
		}
	}
}

func TestRatCmpUnreduced(t *testing.T) {
	a := ratFromString(t, "2/4")
	b := ratFromString(t, "1/2")
	if a.Cmp(b) != 0 {
		t.Error("2/4 != 1/2")
	}
	c := ratFromString(t, "-2/4")
	if c.Cmp(b) != -1 {
		t.Error("-2/4 not below 1/2")
	}
	if b.Cmp(c) != 1 {
		t.Error("1/2 not above -2/4")
	}
}

func TestRatFloat(t *testing.T) {
	// 1/2 is dyadic and converts exactly.
	half := ratFromString(t, "1/2").Float(64)
	if half.Cmp(floatHalf()) != 0 {
		t.Errorf("1/2 as float = %s", half)
	}
	// 1/3 is not: check |float - 1/3| < 2^-128 exactly, in rationals.
	third := ratFromString(t, "1/3")
	f := third.Float(128)
	delta := new(Rat).Sub(f.Rational(), third)
	delta.Abs(delta)
	eps := NewRat(NewInt(1), Nat(nil).Lsh(natOne, 128))
	if delta.Cmp(eps) >= 0 {
		t.Errorf("|float(1/3) - 1/3| = %s, want below 2^-128", delta)
	}
}
