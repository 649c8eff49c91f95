// Copyright (c) 2015-2020 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package primes

import (
	"github.com/cryptokit/core/mpi"
	"github.com/cryptokit/core/prng"
)

// defaultRSAModulus is the exponent PuTTY's sshprime.c (and this source's
// adaptation of it) use to sieve candidates against when the caller
// doesn't name a modulus/residue pair, matching primes.h's "If modulus is
// not a small prime uses 37".
const defaultRSAModulus = 37

// RandomBignum generates a bignum of EXACTLY nbits bits (top bit always
// set), matching the source's random_bignum(). g must not be nil.
func RandomBignum(nbits int, g prng.Generator) *mpi.Int {
	buf := make([]byte, (nbits+7)/8)
	prng.Bits(g, buf, nbits)
	return mpi.New().SetBytes(buf)
}

// InventFirstbits invents a pair of values suitable for use as the
// `firstbits` argument to QualityPrime, such that their product is at
// least 2, matching sshprime.c's invent_firstbits() (quoted verbatim in
// primes.h): this keeps two nbits/2-sized random factors from multiplying
// out to one bit short of the requested total size about 39% of the time.
func InventFirstbits(g prng.Generator) (one, two uint32) {
	for {
		one = g.Uint32()%0xFFFF + 1
		two = (0x10000 / one) + 1
		if one*two >= 2 {
			return one, two
		}
	}
}

// QualityPrime generates a prime of nbits bits satisfying (prime % modulus)
// != residue (used to speed up RSA key use by pre-excluding candidates
// that would make e invertible mod (p-1) awkward), optionally forcing the
// top 16 bits of the candidate via firstbits and folding in an external
// factor via `factor` -- the DSA use case named in primes.h, where the
// generated prime is 1 + k*factor for a random nbits-bit k, so it is
// congruent to 1 modulo `factor` and wider than nbits bits.
//
// A modulus that is <= 0 or not a small prime falls back to 37, matching
// the source's "if modulus is not a small prime uses 37".
func QualityPrime(nbits int, modulus, residue int, factor *mpi.Int, firstbits uint32, g prng.Generator) *mpi.Int {
	if g == nil {
		g = defaultGenerator()
	}
	if modulus <= 0 || !IsSmallPrime(modulus) {
		modulus = defaultRSAModulus
	}

	for {
		candidate := randomCandidate(nbits, firstbits, factor, g)
		if modulus > 0 {
			m := mpi.New().SetInt(modulus)
			rem := mpi.New()
			rem.Mod(candidate, m)
			if rem.Cmp(mpi.New().SetInt(residue)) == 0 {
				continue
			}
		}
		if IsPrime(candidate, g) {
			return candidate
		}
	}
}

// randomCandidate builds one candidate for QualityPrime: a random nbits-bit
// odd value, optionally pinning its top bits to firstbits, optionally built
// as 1 + k*factor for a DSA-style subgroup prime.
func randomCandidate(nbits int, firstbits uint32, factor *mpi.Int, g prng.Generator) *mpi.Int {
	if factor != nil && !factor.Zero() {
		// DSA style: candidate = 1 + k*factor, with k an nbits-bit random
		// value, so candidate is always == 1 (mod factor).
		k := RandomBignum(nbits, g)
		cand := mpi.New().Mul(k, factor)
		cand.Add(cand, mpi.New().SetInt(1))
		return cand
	}

	cand := RandomBignum(nbits, g)
	if firstbits != 0 && nbits > 16 {
		// Overwrite the candidate's top 16 bits (held in its two
		// highest-order bytes once rendered big-endian) with firstbits,
		// leaving the top bit forced on by RandomBignum/Bits untouched.
		buf := cand.CopyBytesExact((nbits + 7) / 8)
		buf[0] = byte(firstbits >> 8)
		buf[1] = byte(firstbits)
		buf[0] |= 0x80 // keep the top bit set so the total width doesn't shrink
		cand = mpi.New().SetBytes(buf)
	}
	cand.SetBit(0, 1) // force odd
	return cand
}

// GeneratePrime generates a prime of nbits bits with no special
// properties, matching the source's generate_prime(): for nbits <= 16 it
// returns a small prime close to 2^nbits rather than running the full
// sieve/Miller-Rabin machinery.
func GeneratePrime(nbits int, g prng.Generator) *mpi.Int {
	if nbits <= 16 {
		target := 1 << uint(nbits-1)
		return mpi.New().SetInt(ClosestSmallPrime(target))
	}
	return QualityPrime(nbits, 0, 1, nil, 0, g)
}

// NextPrime returns the next prime >= number (which is modified into the
// result, matching the source's in-place next_prime() semantics of
// returning the new value through the same handle).
func NextPrime(number *mpi.Int, g prng.Generator) *mpi.Int {
	if g == nil {
		g = defaultGenerator()
	}
	cand := number.Clone()
	if cand.IsEven() {
		cand.Add(cand, mpi.New().SetInt(1))
	}
	for !IsPrime(cand, g) {
		cand.Add(cand, mpi.New().SetInt(2))
	}
	number.Set(cand)
	return number
}
