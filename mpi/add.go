// Copyright (c) 2015-2020 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package mpi

// addMag computes the unsigned magnitude sum x + y into dst and returns it.
func addMag(dst, x, y []uint32) []uint32 {
	if len(x) < len(y) {
		x, y = y, x
	}
	dst = dst[:0]
	var carry uint64
	for i := 0; i < len(y); i++ {
		s := uint64(x[i]) + uint64(y[i]) + carry
		dst = append(dst, uint32(s))
		carry = s >> digitBits
	}
	for i := len(y); i < len(x); i++ {
		s := uint64(x[i]) + carry
		dst = append(dst, uint32(s))
		carry = s >> digitBits
	}
	if carry != 0 {
		dst = append(dst, uint32(carry))
	}
	return dst
}

// subMag computes the unsigned magnitude difference x - y into dst, where
// callers must guarantee x >= y, and returns it.
func subMag(dst, x, y []uint32) []uint32 {
	dst = dst[:0]
	var borrow uint64
	for i := 0; i < len(y); i++ {
		d := uint64(x[i]) - uint64(y[i]) - borrow
		dst = append(dst, uint32(d))
		borrow = (d >> 63) & 1
	}
	for i := len(y); i < len(x); i++ {
		d := uint64(x[i]) - borrow
		dst = append(dst, uint32(d))
		borrow = (d >> 63) & 1
	}
	return dst
}

// Add sets z = x + y and returns z. Destination aliasing with x or y is
// safe.
func (z *Int) Add(x, y *Int) *Int {
	if x.neg == y.neg {
		z.digits = addMag(z.digits, x.digits, y.digits)
		z.neg = x.neg
		return z.clamp()
	}
	// Opposite signs: subtract the smaller magnitude from the larger and
	// take the sign of the larger.
	switch cmpAbs(x.digits, y.digits) {
	case 0:
		z.digits = z.digits[:1]
		z.digits[0] = 0
		z.neg = false
	case 1:
		z.digits = subMag(z.digits, x.digits, y.digits)
		z.neg = x.neg
	default:
		z.digits = subMag(z.digits, y.digits, x.digits)
		z.neg = y.neg
	}
	return z.clamp()
}

// Sub sets z = x - y and returns z.
func (z *Int) Sub(x, y *Int) *Int {
	negY := New().Neg(y)
	return z.Add(x, negY)
}

// AddInt64 sets z = x + n and returns z.
func (z *Int) AddInt64(x *Int, n int64) *Int {
	return z.Add(x, New().SetInt64(n))
}

// SubInt64 sets z = x - n and returns z.
func (z *Int) SubInt64(x *Int, n int64) *Int {
	return z.Sub(x, New().SetInt64(n))
}
