// Copyright 2025 The Keisan Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value

import "math/bits"

// Long division, Knuth's Algorithm D. The divisor is scaled so its top
// limb has the high bit set; the per-digit trial quotient from the top
// two limbs of the working numerator is then an overestimate by at
// most two and is corrected against the recomputed product.

// DivRem sets q to ⌊n/d⌋ and r to n mod d, reusing the storage of q
// and r, and returns them. It panics if d is zero. q and r must not
// alias each other, n, or d.
func DivRem(q, r, n, d Nat) (Nat, Nat) {
	if len(d) == 0 {
		Errorf("division by zero")
	}
	if n.Cmp(d) < 0 {
		return q[:0], r.Set(n)
	}
	if d.IsOne() {
		return q.Set(n), r[:0]
	}
	shift := int64(bits.LeadingZeros64(d[len(d)-1]))
	if shift != 0 {
		n = Nat(nil).Lsh(n, shift)
		d = Nat(nil).Lsh(d, shift)
	}
	q, r = divRemNormalized(q, r, n, d)
	r = r.Rsh(r, shift)
	return q, r
}

// Div sets z to ⌊x/y⌋.
func (z Nat) Div(x, y Nat) Nat {
	z, _ = DivRem(z, nil, x, y)
	return z
}

// Mod sets z to x mod y.
func (z Nat) Mod(x, y Nat) Nat {
	_, z = DivRem(nil, z, x, y)
	return z
}

// divRemNormalized divides n by d, both already scaled so that d's top
// limb has its high bit set and len(n) >= len(d).
func divRemNormalized(q, r, n, d Nat) (Nat, Nat) {
	steps := len(n) - len(d)
	// Working numerator: the top len(d) limbs of n plus a leading
	// zero, so each step divides a (len(d)+1)-limb numerator.
	inter := make(Nat, 0, len(d)+1)
	inter = append(inter, n[steps:]...)
	inter = append(inter, 0)
	var tmp Nat
	q = q.grow(steps + 1)
	var qhat uint64
	qhat, r, tmp = divStep(inter, d, r, tmp)
	q[steps] = qhat
	for i := steps - 1; i >= 0; i-- {
		// The remainder becomes the new numerator; bring down
		// the next limb of n below it.
		inter = inter[:0]
		inter = append(inter, n[i])
		inter = append(inter, r...)
		for len(inter) < len(d)+1 {
			inter = append(inter, 0)
		}
		qhat, r, tmp = divStep(inter, d, r, tmp)
		q[i] = qhat
	}
	return q.trim(), r
}

// divStep divides the (len(d)+1)-limb numerator inter by d, returning
// the one-limb quotient and setting r to the remainder. tmp is scratch
// for the trial product. Preconditions: d is normalized, inter < d·2^64.
func divStep(inter, d, r, tmp Nat) (uint64, Nat, Nat) {
	if len(inter) != len(d)+1 {
		Errorf("internal error: division step numerator has %d limbs, want %d", len(inter), len(d)+1)
	}
	dHi := d[len(d)-1]
	if dHi>>63 == 0 {
		Errorf("internal error: unnormalized divisor in division step")
	}
	nHi := inter[len(inter)-1]
	nLo := inter[len(inter)-2]
	var qhat uint64
	if nHi >= dHi {
		// The two-limb trial would not fit in one limb; the true
		// quotient digit is at most 2^64-1, so clamp there.
		qhat = ^uint64(0)
	} else {
		qhat, _ = bits.Div64(nHi, nLo, dHi)
	}
	nv := inter.trim()
	for {
		tmp = tmp.mulWord(d, qhat)
		if tmp.Cmp(nv) <= 0 {
			break
		}
		qhat--
	}
	r = r.Sub(nv, tmp)
	return qhat, r, tmp
}
