// Copyright 2025 The Keisan Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value

import "testing"

func intFromString(t *testing.T, s string) *Int {
	t.Helper()
	i, err := ParseInt(s, 10)
	if err != nil {
		t.Fatalf("ParseInt(%q): %v", s, err)
	}
	return i
}

func TestIntAddSub(t *testing.T) {
	cases := []struct {
		a, b, sum, diff string
	}{
		{"0", "0", "0", "0"},
		{"5", "3", "8", "2"},
		{"3", "5", "8", "-2"},
		{"-5", "3", "-2", "-8"},
		{"5", "-3", "2", "8"},
		{"-5", "-3", "-8", "-2"},
		{"18446744073709551615", "1", "18446744073709551616", "18446744073709551614"},
		{"-18446744073709551616", "18446744073709551616", "0", "-36893488147419103232"},
	}
	for _, c := range cases {
		a := intFromString(t, c.a)
		b := intFromString(t, c.b)
		if got := new(Int).Add(a, b).String(); got != c.sum {
			t.Errorf("%s + %s = %s, want %s", c.a, c.b, got, c.sum)
		}
		if got := new(Int).Sub(a, b).String(); got != c.diff {
			t.Errorf("%s - %s = %s, want %s", c.a, c.b, got, c.diff)
		}
	}
}

func TestIntNegCanonicalZero(t *testing.T) {
	z := new(Int).Neg(NewInt(0))
	if z.Sign() != 0 || z.neg {
		t.Error("negated zero is not canonical")
	}
	if got := new(Int).Neg(NewInt(-7)).String(); got != "7" {
		t.Errorf("-(-7) = %s", got)
	}
}

func TestIntMul(t *testing.T) {
	cases := []struct {
		a, b, prod string
	}{
		{"0", "-5", "0"},
		{"3", "4", "12"},
		{"-3", "4", "-12"},
		{"3", "-4", "-12"},
		{"-3", "-4", "12"},
	}
	for _, c := range cases {
		a := intFromString(t, c.a)
		b := intFromString(t, c.b)
		if got := new(Int).Mul(a, b).String(); got != c.prod {
			t.Errorf("%s * %s = %s, want %s", c.a, c.b, got, c.prod)
		}
	}
}

func TestIntQuoRem(t *testing.T) {
	// Truncated division: the quotient sign is the XOR of the
	// operand signs, the remainder follows the dividend.
	cases := []struct {
		x, y, q, r string
	}{
		{"7", "2", "3", "1"},
		{"-7", "2", "-3", "-1"},
		{"7", "-2", "-3", "1"},
		{"-7", "-2", "3", "-1"},
		{"6", "2", "3", "0"},
		{"1", "2", "0", "1"},
		{"-1", "2", "0", "-1"},
	}
	for _, c := range cases {
		x := intFromString(t, c.x)
		y := intFromString(t, c.y)
		q, r := new(Int).QuoRem(x, y, new(Int))
		if q.String() != c.q || r.String() != c.r {
			t.Errorf("%s quorem %s = %s, %s; want %s, %s", c.x, c.y, q, r, c.q, c.r)
		}
	}
}

func TestIntDivModFloor(t *testing.T) {
	cases := []struct {
		x, y, q, r string
	}{
		{"7", "2", "3", "1"},
		{"-7", "2", "-4", "1"},
		{"7", "-2", "-4", "-1"},
		{"-7", "-2", "3", "-1"},
		{"-1", "2", "-1", "1"},
		{"-6", "2", "-3", "0"},
	}
	for _, c := range cases {
		x := intFromString(t, c.x)
		y := intFromString(t, c.y)
		q, r := new(Int).DivModFloor(x, y, new(Int))
		if q.String() != c.q || r.String() != c.r {
			t.Errorf("%s divmod %s = %s, %s; want %s, %s", c.x, c.y, q, r, c.q, c.r)
		}
	}
}

func TestIntCmp(t *testing.T) {
	order := []string{"-100", "-2", "-1", "0", "1", "2", "100"}
	for i, a := range order {
		for j, b := range order {
			want := 0
			if i < j {
				want = -1
			} else if i > j {
				want = 1
			}
			if got := intFromString(t, a).Cmp(intFromString(t, b)); got != want {
				t.Errorf("cmp(%s, %s) = %d, want %d", a, b, got, want)
			}
		}
	}
}

func TestIntInt64(t *testing.T) {
	cases := []struct {
		s  string
		v  int64
		ok bool
	}{
		{"0", 0, true},
		{"42", 42, true},
		{"-42", -42, true},
		{"9223372036854775807", 1<<63 - 1, true},
		{"-9223372036854775808", -1 << 63, true},
		{"9223372036854775808", 0, false},
		{"-9223372036854775809", 0, false},
	}
	for _, c := range cases {
		v, ok := intFromString(t, c.s).Int64()
		if v != c.v || ok != c.ok {
			t.Errorf("Int64(%s) = %d, %v; want %d, %v", c.s, v, ok, c.v, c.ok)
		}
	}
	if _, ok := NewInt(-1).Uint64(); ok {
		t.Error("negative value fit in a uint64")
	}
}

func TestIntSetInt64MinMax(t *testing.T) {
	m := NewInt(-1 << 63)
	if got := m.String(); got != "-9223372036854775808" {
		t.Errorf("min int64 = %s", got)
	}
	if got := NewInt(1<<63 - 1).String(); got != "9223372036854775807" {
		t.Errorf("max int64 = %s", got)
	}
}
