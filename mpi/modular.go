// Copyright (c) 2015-2020 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package mpi

// AddMod sets z = (x + y) mod m, returning ErrNegativeModulus if m isn't
// strictly positive and nil otherwise.
func (z *Int) AddMod(x, y, m *Int) error {
	t := New().Add(x, y)
	return z.Mod(t, m)
}

// SubMod sets z = (x - y) mod m, returning Mod's error.
func (z *Int) SubMod(x, y, m *Int) error {
	t := New().Sub(x, y)
	return z.Mod(t, m)
}

// MulMod sets z = (x * y) mod m, returning Mod's error.
func (z *Int) MulMod(x, y, m *Int) error {
	t := New().Mul(x, y)
	return z.Mod(t, m)
}

// SqrMod sets z = (x * x) mod m, returning Mod's error.
func (z *Int) SqrMod(x, m *Int) error {
	t := New().Square(x)
	return z.Mod(t, m)
}

// barrettMu precomputes mu = floor(b^(2k) / m) for Barrett reduction, where
// b = 2^32 and k = used digits of m, per spec.md §4.1.
func barrettMu(m *Int) *Int {
	k := m.usedDigits()
	b2k := New()
	b2k.digits = make([]uint32, 2*k+1)
	b2k.digits[2*k] = 1
	mu := New()
	mu.Div(b2k, m)
	return mu
}

// barrettReduce reduces x modulo m using the precomputed Barrett reciprocal
// mu, where k = used digits of m. x must be non-negative and less than
// b^(2k).
func barrettReduce(x, m, mu *Int, k int) *Int {
	// q1 = x >> (32*(k-1)); q2 = q1*mu; q3 = q2 >> (32*(k+1))
	q1 := New()
	q1.digits = rshDigits(x.digits, k-1)
	q2 := New().Mul(q1, mu)
	q3 := New()
	q3.digits = rshDigits(q2.digits, k+1)

	// r1 = x mod b^(k+1); r2 = (q3*m) mod b^(k+1); r = r1 - r2
	r1 := New()
	r1.digits = lowDigits(x.digits, k+1)
	r2t := New().Mul(q3, m)
	r2 := New()
	r2.digits = lowDigits(r2t.digits, k+1)

	r := New().Sub(r1, r2)
	if r.neg {
		wrap := New()
		wrap.digits = make([]uint32, k+2)
		wrap.digits[k+1] = 1
		r.Add(r, wrap)
	}
	for r.Cmp(m) >= 0 {
		r.Sub(r, m)
	}
	return r.clamp()
}

func rshDigits(x []uint32, n int) []uint32 {
	if n <= 0 {
		out := make([]uint32, len(x))
		copy(out, x)
		return trim(out)
	}
	if n >= len(x) {
		return []uint32{0}
	}
	out := make([]uint32, len(x)-n)
	copy(out, x[n:])
	return trim(out)
}

func lowDigits(x []uint32, n int) []uint32 {
	if n >= len(x) {
		out := make([]uint32, len(x))
		copy(out, x)
		return trim(out)
	}
	out := make([]uint32, n)
	copy(out, x[:n])
	return trim(out)
}

// ExpMod sets z = x^e mod m using left-to-right binary exponentiation with
// Barrett reduction at each step, per spec.md §4.1. It reports
// ErrNegativeModulus if m isn't strictly positive and ErrBadArgument if e is
// negative (negative exponents are not supported; invert first).
func (z *Int) ExpMod(x, e, m *Int) error {
	if m.Zero() || m.neg {
		return newError(ErrNegativeModulus, "mpi: modulus must be positive")
	}
	if e.neg {
		return newError(ErrBadArgument, "mpi: negative exponent not supported")
	}

	k := m.usedDigits()
	mu := barrettMu(m)

	base := New()
	if err := base.Mod(x, m); err != nil {
		return err
	}
	result := New().SetInt(1)
	if m.Cmp(New().SetInt(1)) == 0 {
		z.Set(New())
		return nil
	}

	nbits := e.CountBits()
	for i := nbits - 1; i >= 0; i-- {
		result = barrettReduce(New().Mul(result, result), m, mu, k)
		if e.Bit(i) == 1 {
			result = barrettReduce(New().Mul(result, base), m, mu, k)
		}
	}
	z.Set(result)
	return nil
}

// gcdExtended computes gcd(x, y) together with Bezout coefficients a and b
// such that a*x + b*y = gcd (the gcd may come out negative for negative
// inputs; callers take its magnitude). InvMod uses a as the modular inverse
// of x when y is the modulus.
//
// It uses the extended Euclidean algorithm rather than the binary (Stein)
// variant; see DESIGN.md decision #5.
func gcdExtended(x, y *Int) (gcd, a, b *Int) {
	// Classic extended Euclidean algorithm over signed mpi.Int; simpler to
	// get right than binary GCD while producing the same Bezout triple the
	// source exposes, and is still O(log(min(x,y))) iterations of full
	// division versus O(bits) bit-shifts, a fine trade for a library whose
	// modulus sizes top out in the low thousands of bits.
	oldR, r := x.Clone(), y.Clone()
	oldS, s := New().SetInt(1), New()
	oldT, t := New(), New().SetInt(1)

	for !r.Zero() {
		q := New()
		rem := New()
		q.QuoRem(oldR, r, rem)
		oldR, r = r, rem

		tmp := New().Sub(oldS, New().Mul(q, s))
		oldS, s = s, tmp

		tmp2 := New().Sub(oldT, New().Mul(q, t))
		oldT, t = t, tmp2
	}
	return oldR, oldS, oldT
}

// GCD sets z = gcd(|x|, |y|) and returns z.
func (z *Int) GCD(x, y *Int) *Int {
	g, _, _ := gcdExtended(x, y)
	g.neg = false
	z.Set(g)
	return z
}

// InvMod sets z = x^-1 mod m and returns z. It reports ErrUndefined if
// gcd(x, m) != 1, matching spec.md's "no inverse" failure mode.
func (z *Int) InvMod(x, m *Int) error {
	if m.Zero() || m.neg {
		return newError(ErrNegativeModulus, "mpi: modulus must be positive")
	}
	g, a, _ := gcdExtended(x, m)
	if g.CmpAbs(New().SetInt(1)) != 0 {
		return newError(ErrUndefined, "mpi: no modular inverse exists")
	}
	return z.Mod(a, m)
}
