// Copyright 2025 The Keisan Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value

import (
	"encoding/binary"
	"errors"
)

var (
	errEmpty     = errors.New("empty number")
	errDigit     = errors.New("invalid digit")
	errSign      = errors.New("invalid sign")
	errZeroDen   = errors.New("zero denominator")
	errNotFinite = errors.New("not a finite number")
)

// ParseNat parses s as an unsigned integer in the given base (2..36).
// A leading '+' is accepted; a leading '-' is an error.
func ParseNat(s string, base int) (Nat, error) {
	checkBase(base)
	if len(s) == 0 {
		return nil, errEmpty
	}
	if s[0] == '-' {
		return nil, errSign
	}
	if s[0] == '+' {
		s = s[1:]
	}
	return parseDigits(s, base)
}

// parseDigits accumulates the digits of s least-significant first,
// maintaining a running power of the base.
func parseDigits(s string, base int) (Nat, error) {
	if len(s) == 0 {
		return nil, errEmpty
	}
	var z Nat
	power := Nat(nil).SetUint64(1)
	var tmp, next Nat
	for i := len(s) - 1; i >= 0; i-- {
		d := digitVal(s[i])
		if d < 0 || d >= base {
			return nil, errDigit
		}
		tmp = tmp.mulWord(power, uint64(d))
		z = z.Add(z, tmp)
		next = next.mulWord(power, uint64(base))
		power, next = next, power
	}
	return z, nil
}

// Text renders z in the given base (2..36) by repeated division.
// Digits above 9 use a-z, or A-Z if upper is set.
func (z Nat) Text(base int, upper bool) string {
	checkBase(base)
	if len(z) == 0 {
		return "0"
	}
	n := Nat(nil).Set(z)
	radix := NewNat(uint64(base))
	var q, r Nat
	var buf []byte
	for !n.IsZero() {
		q, r = DivRem(q, r, n, radix)
		d, _ := r.Uint64()
		buf = append(buf, digitChar(int(d), upper))
		n, q = q, n
	}
	for i, j := 0, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}
	return string(buf)
}

func (z Nat) String() string {
	return z.Text(10, false)
}

// SetBytesLE sets z from a little-endian byte sequence, padding to a
// multiple of 8 bytes and reinterpreting it as a limb sequence.
func (z Nat) SetBytesLE(b []byte) Nat {
	z = z.grow((len(b) + 7) / 8)
	var last [8]byte
	for i := range z {
		chunk := b[8*i:]
		if len(chunk) >= 8 {
			z[i] = binary.LittleEndian.Uint64(chunk)
		} else {
			clear(last[:])
			copy(last[:], chunk)
			z[i] = binary.LittleEndian.Uint64(last[:])
		}
	}
	return z.trim()
}

// BytesLE returns z's limbs as a little-endian byte sequence.
func (z Nat) BytesLE() []byte {
	b := make([]byte, 8*len(z))
	for i, limb := range z {
		binary.LittleEndian.PutUint64(b[8*i:], limb)
	}
	return b
}
