// Copyright (c) 2015-2020 The Decred developers
// Copyright 2013-2014 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package mpi implements a variable-precision signed integer, modeled on a
// classic signed-magnitude bignum library: a sign bit plus a little-endian
// slice of 32-bit digits. Digit 0 is the least significant digit.
//
// Every mutating method returns the receiver so that calls can be chained,
// the way the teacher package chains field-value operations
// (Set().Add().Mul()...). Aliasing a destination with an operand is always
// safe; operations that would otherwise read-after-write take an internal
// copy first.
package mpi

import "math/bits"

// digitBits is the width of a single digit in the little-endian magnitude.
const digitBits = 32

// Int is a variable-precision signed integer in sign-magnitude form.
//
// Invariants (spec.md §3):
//  1. len(digits) >= 1.
//  2. The top digit is non-zero unless the value is zero.
//  3. Zero always has len(digits)==1, digits[0]==0, neg==false.
//  4. Digits beyond the logical length are not retained; cap may exceed len
//     (the Go slice already gives us the allocated/used distinction spec.md
//     describes, so there is no separate "allocated" field).
type Int struct {
	neg    bool
	digits []uint32
}

// New returns a new zero-valued Int.
func New() *Int {
	return &Int{digits: []uint32{0}}
}

// NewWithCapacity returns a new zero-valued Int with room for at least
// nDigits digits without reallocating, mirroring the source's precision-hint
// constructor.
func NewWithCapacity(nDigits int) *Int {
	if nDigits < 1 {
		nDigits = 1
	}
	z := &Int{digits: make([]uint32, 1, nDigits)}
	return z
}

// clamp strips leading (high-order) zero digits and normalizes the zero
// value to non-negative, per invariant 2 and 3.
func (z *Int) clamp() *Int {
	n := len(z.digits)
	for n > 1 && z.digits[n-1] == 0 {
		n--
	}
	z.digits = z.digits[:n]
	if n == 1 && z.digits[0] == 0 {
		z.neg = false
	}
	return z
}

// grow ensures z.digits has at least n digits, zero-extending as needed.
func (z *Int) grow(n int) {
	if len(z.digits) >= n {
		return
	}
	if cap(z.digits) >= n {
		old := len(z.digits)
		z.digits = z.digits[:n]
		for i := old; i < n; i++ {
			z.digits[i] = 0
		}
		return
	}
	nd := make([]uint32, n)
	copy(nd, z.digits)
	z.digits = nd
}

// Clone returns a deep, independent copy of z.
func (z *Int) Clone() *Int {
	d := make([]uint32, len(z.digits))
	copy(d, z.digits)
	return &Int{neg: z.neg, digits: d}
}

// Set assigns the value of x to z and returns z.
func (z *Int) Set(x *Int) *Int {
	if z == x {
		return z
	}
	z.grow(len(x.digits))
	z.digits = z.digits[:len(x.digits)]
	copy(z.digits, x.digits)
	z.neg = x.neg
	return z.clamp()
}

// SetInt64 sets z to the value of x.
func (z *Int) SetInt64(x int64) *Int {
	neg := x < 0
	u := uint64(x)
	if neg {
		u = uint64(-x)
	}
	return z.setUint64(u, neg)
}

// SetUint64 sets z to the value of x, which is always treated as
// non-negative.
func (z *Int) SetUint64(x uint64) *Int {
	return z.setUint64(x, false)
}

func (z *Int) setUint64(x uint64, neg bool) *Int {
	z.digits = z.digits[:0]
	z.digits = append(z.digits, uint32(x), uint32(x>>32))
	z.neg = neg
	return z.clamp()
}

// SetInt is a small convenience used throughout the curve code, equivalent
// to SetInt64 but named the way the teacher's FieldVal.SetInt is.
func (z *Int) SetInt(x int) *Int {
	return z.SetInt64(int64(x))
}

// Zero reports whether z is the zero value.
func (z *Int) Zero() bool {
	return len(z.digits) == 1 && z.digits[0] == 0
}

// IsZero reports whether z is the zero value. Alias of Zero kept for
// readability at call sites that mirror spec.md wording.
func (z *Int) IsZero() bool { return z.Zero() }

// IsNeg reports whether z is strictly negative.
func (z *Int) IsNeg() bool {
	return z.neg && !z.Zero()
}

// IsOdd reports whether z is odd.
func (z *Int) IsOdd() bool {
	return z.digits[0]&1 == 1
}

// IsEven reports whether z is even.
func (z *Int) IsEven() bool {
	return !z.IsOdd()
}

// Sign returns -1, 0 or 1 depending on whether z is negative, zero or
// positive.
func (z *Int) Sign() int {
	if z.Zero() {
		return 0
	}
	if z.neg {
		return -1
	}
	return 1
}

// Neg sets z to -x and returns z.
func (z *Int) Neg(x *Int) *Int {
	z.Set(x)
	if !z.Zero() {
		z.neg = !z.neg
	}
	return z
}

// Abs sets z to |x| and returns z.
func (z *Int) Abs(x *Int) *Int {
	z.Set(x)
	z.neg = false
	return z
}

// cmpAbs compares the magnitudes of x and y, ignoring sign. Returns -1, 0, 1.
func cmpAbs(x, y []uint32) int {
	if len(x) != len(y) {
		if len(x) < len(y) {
			return -1
		}
		return 1
	}
	for i := len(x) - 1; i >= 0; i-- {
		if x[i] != y[i] {
			if x[i] < y[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// Cmp compares z and x, returning -1, 0 or +1 as z <, ==, > x.
func (z *Int) Cmp(x *Int) int {
	switch {
	case z.neg && !x.neg && !(z.Zero() && x.Zero()):
		return -1
	case !z.neg && x.neg && !(z.Zero() && x.Zero()):
		return 1
	}
	c := cmpAbs(z.digits, x.digits)
	if z.neg && !z.Zero() {
		return -c
	}
	return c
}

// CmpAbs compares |z| and |x|.
func (z *Int) CmpAbs(x *Int) int {
	return cmpAbs(z.digits, x.digits)
}

// Equals reports whether z and x hold the same value.
func (z *Int) Equals(x *Int) bool {
	return z.Cmp(x) == 0
}

// usedDigits returns the number of used digits (spec.md's "used").
func (z *Int) usedDigits() int {
	return len(z.digits)
}

// CountBits returns index-of-highest-set-bit + 1, i.e. 0 for zero.
func (z *Int) CountBits() int {
	n := len(z.digits)
	for n > 0 && z.digits[n-1] == 0 {
		n--
	}
	if n == 0 {
		return 0
	}
	return (n-1)*digitBits + (digitBits - bits.LeadingZeros32(z.digits[n-1]))
}

// ByteLen returns the number of bytes needed to hold the unsigned magnitude
// of z.
func (z *Int) ByteLen() int {
	return (z.CountBits() + 7) / 8
}

// Zeroize overwrites the backing digit storage with zeros before release,
// per spec.md §5's zeroization requirement for handles carrying secret
// material. Go cannot guarantee an optimizer barrier the way a volatile
// write in C can, but writing through a loop that also observably resets
// the logical value keeps the zeroing from being dead-code-eliminated.
func (z *Int) Zeroize() {
	for i := range z.digits {
		z.digits[i] = 0
	}
	z.digits = z.digits[:1]
	z.neg = false
}

// String returns the base-10 representation of z.
func (z *Int) String() string {
	s, _ := z.ToRadix(10)
	return s
}
