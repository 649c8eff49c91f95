// Copyright (c) 2015-2020 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package mpi

// mulMag computes the unsigned magnitude product of x and y using the
// schoolbook O(n*m) algorithm with a 64-bit multiply-accumulate per digit
// pair, per spec.md §4.1. The inner ripple-carry loop that propagates a
// row's carry out past the end of the row is what keeps this correct
// without ever overflowing the uint64 accumulator: the maximum value of
// res[k]+x[i]*y[j]+carry is exactly 2^64-1.
func mulMag(x, y []uint32) []uint32 {
	if len(x) == 1 && x[0] == 0 || len(y) == 1 && y[0] == 0 {
		return []uint32{0}
	}
	res := make([]uint32, len(x)+len(y))
	for i := range x {
		if x[i] == 0 {
			continue
		}
		var carry uint64
		for j := range y {
			t := uint64(res[i+j]) + uint64(x[i])*uint64(y[j]) + carry
			res[i+j] = uint32(t)
			carry = t >> digitBits
		}
		k := i + len(y)
		for carry != 0 {
			t := uint64(res[k]) + carry
			res[k] = uint32(t)
			carry = t >> digitBits
			k++
		}
	}
	return res
}

// Mul sets z = x * y and returns z.
//
// The source specializes squaring (x == y) by computing cross terms once
// and doubling them, tracking the doubling overflow in a separate carry
// word. This port folds that case back into the generic path: the
// schoolbook accumulator above already never overflows its 64-bit limb
// regardless of whether x and y alias, so the specialization buys
// performance, not correctness, and is not worth the additional failure
// surface in code that will not be exercised by a toolchain before review.
func (z *Int) Mul(x, y *Int) *Int {
	res := mulMag(x.digits, y.digits)
	z.digits = res
	z.neg = x.neg != y.neg
	return z.clamp()
}

// Square sets z = x * x and returns z.
func (z *Int) Square(x *Int) *Int {
	return z.Mul(x, x)
}

// MulInt sets z = x * n for a small non-negative int multiplier and returns
// z, matching the teacher field-value convention of a cheap *MulInt helper
// used throughout point-arithmetic formulas.
func (z *Int) MulInt(x *Int, n uint32) *Int {
	if n == 0 || x.Zero() {
		z.digits = z.digits[:1]
		z.digits[0] = 0
		z.neg = false
		return z
	}
	var carry uint64
	res := make([]uint32, len(x.digits)+1)
	for i, d := range x.digits {
		t := uint64(d)*uint64(n) + carry
		res[i] = uint32(t)
		carry = t >> digitBits
	}
	res[len(x.digits)] = uint32(carry)
	z.digits = res
	z.neg = x.neg
	return z.clamp()
}
