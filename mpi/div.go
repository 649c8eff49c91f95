// Copyright (c) 2015-2020 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package mpi

import "math/bits"

// shlMag returns x << n (n in [0, 31]) as a new magnitude slice, possibly
// one digit longer than x.
func shlMag(x []uint32, n uint) []uint32 {
	if n == 0 {
		out := make([]uint32, len(x))
		copy(out, x)
		return out
	}
	out := make([]uint32, len(x)+1)
	var carry uint32
	for i, d := range x {
		out[i] = (d << n) | carry
		carry = d >> (digitBits - n)
	}
	out[len(x)] = carry
	return out
}

// shrMag returns x >> n (n in [0, 31]) as a new magnitude slice the same
// length as x.
func shrMag(x []uint32, n uint) []uint32 {
	out := make([]uint32, len(x))
	if n == 0 {
		copy(out, x)
		return out
	}
	var carry uint32
	for i := len(x) - 1; i >= 0; i-- {
		out[i] = (x[i] >> n) | carry
		carry = x[i] << (digitBits - n)
	}
	return out
}

// quoRemMag divides the unsigned magnitude u by v using Knuth's Algorithm D
// (TAOCP vol 2, §4.3.1) after left-shift normalization of the divisor so
// its top bit is set, per spec.md §4.1. It returns the quotient and
// remainder magnitudes. v must be non-zero.
func quoRemMag(u, v []uint32) (q, r []uint32) {
	// Strip leading zero digits from both operands first.
	u = trim(u)
	v = trim(v)

	if cmpAbs(u, v) < 0 {
		return []uint32{0}, append([]uint32(nil), u...)
	}
	if len(v) == 1 {
		qq, rr := divModSmall(u, v[0])
		return qq, []uint32{rr}
	}

	n := len(v)
	m := len(u) - n

	// Normalize: shift both operands left so v's top digit has its high
	// bit set. This bounds the per-digit quotient estimate error to at
	// most 2, which is what lets the trial-correction loop below only
	// ever need up to two decrements.
	shift := uint(bits.LeadingZeros32(v[n-1]))
	vn := shlMag(v, shift)
	vn = vn[:n] // shlMag may have appended a now-unused zero digit

	un := shlMag(u, shift)
	if len(un) < m+n+1 {
		grown := make([]uint32, m+n+1)
		copy(grown, un)
		un = grown
	}

	q = make([]uint32, m+1)

	for j := m; j >= 0; j-- {
		// Estimate qhat from the top two digits of the remaining
		// dividend divided by the divisor's top digit.
		num := (uint64(un[j+n]) << digitBits) | uint64(un[j+n-1])
		var qhat, rhat uint64
		if un[j+n] >= vn[n-1] {
			qhat = 0xFFFFFFFF
			rhat = num - uint64(vn[n-1])*qhat
		} else {
			qhat = num / uint64(vn[n-1])
			rhat = num % uint64(vn[n-1])
		}
		for rhat <= 0xFFFFFFFF && qhat*uint64(vn[n-2]) > (rhat<<digitBits)+uint64(un[j+n-2]) {
			qhat--
			rhat += uint64(vn[n-1])
		}

		// Multiply and subtract: un[j..j+n] -= qhat*vn.
		var borrow int64
		var carry uint64
		for i := 0; i < n; i++ {
			p := qhat * uint64(vn[i])
			carry += p
			sub := int64(un[j+i]) - int64(uint32(carry)) - borrow
			if sub < 0 {
				sub += 1 << digitBits
				borrow = 1
			} else {
				borrow = 0
			}
			un[j+i] = uint32(sub)
			carry >>= digitBits
		}
		sub := int64(un[j+n]) - int64(carry) - borrow
		if sub < 0 {
			sub += 1 << digitBits
			borrow = 1
		} else {
			borrow = 0
		}
		un[j+n] = uint32(sub)

		if borrow != 0 {
			// qhat was one too large; add vn back once and
			// decrement qhat.
			qhat--
			var c uint64
			for i := 0; i < n; i++ {
				s := uint64(un[j+i]) + uint64(vn[i]) + c
				un[j+i] = uint32(s)
				c = s >> digitBits
			}
			un[j+n] += uint32(c)
		}
		q[j] = uint32(qhat)
	}

	rem := shrMag(un[:n], shift)
	return trim(q), trim(rem)
}

// divModSmall divides u by the single digit d, returning quotient and
// remainder.
func divModSmall(u []uint32, d uint32) ([]uint32, uint32) {
	q := make([]uint32, len(u))
	var rem uint64
	for i := len(u) - 1; i >= 0; i-- {
		cur := (rem << digitBits) | uint64(u[i])
		q[i] = uint32(cur / uint64(d))
		rem = cur % uint64(d)
	}
	return trim(q), uint32(rem)
}

func trim(x []uint32) []uint32 {
	n := len(x)
	for n > 1 && x[n-1] == 0 {
		n--
	}
	return x[:n]
}

// QuoRem sets z = x / y (truncated toward zero) and r = x % y (with the
// sign of x), returning (z, r). It reports ErrDivideByZero if y is zero.
func (z *Int) QuoRem(x, y, r *Int) (*Int, *Int, error) {
	if y.Zero() {
		return z, r, newError(ErrDivideByZero, "mpi: division by zero")
	}
	q, rem := quoRemMag(x.digits, y.digits)
	rNeg := x.neg
	if len(rem) == 1 && rem[0] == 0 {
		rNeg = false
	}
	z.digits = q
	z.neg = x.neg != y.neg
	z.clamp()
	r.digits = rem
	r.neg = rNeg
	r.clamp()
	return z, r, nil
}

// Mod sets z = x mod m, sign-corrected so that 0 <= z < |m| for m > 0, per
// spec.md §4.1. It reports ErrNegativeModulus if m is not strictly
// positive.
func (z *Int) Mod(x, m *Int) error {
	if m.Zero() || m.neg {
		return newError(ErrNegativeModulus, "mpi: modulus must be positive")
	}
	q := New()
	_, _, err := q.QuoRem(x, m, z)
	if err != nil {
		return err
	}
	if z.neg {
		z.Add(z, m)
	}
	return nil
}

// Div sets z = x / y truncated toward zero and reports ErrDivideByZero if y
// is zero.
func (z *Int) Div(x, y *Int) error {
	r := New()
	_, _, err := z.QuoRem(x, y, r)
	return err
}
