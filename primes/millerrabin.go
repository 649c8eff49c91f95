// Copyright (c) 2015-2020 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package primes

import (
	"github.com/cryptokit/core/mpi"
	"github.com/cryptokit/core/prng"
)

// MillerRabinRounds is the fixed witness-round count used by IsPrime
// (spec.md §9's Open Question: "how many Miller-Rabin rounds are enough").
// 64 rounds bound the false-positive probability at 4^-64, comfortably
// below anything a key-generation workload needs to worry about.
const MillerRabinRounds = 64

// defaultGenerator builds a Generator for IsPrime/NextPrime/QualityPrime
// callers that pass a nil prng.Generator: an OSEntropy source, whose refill
// falls back to UnpredictableEntropy if the OS call fails. There is no
// Xorshift128 fallback.
func defaultGenerator() prng.Generator {
	g := prng.NewOSEntropy()
	var probe [1]byte
	g.Bytes(probe[:])
	return g
}

// IsPrime runs a trial-division pass against the small-prime table followed
// by MillerRabinRounds rounds of the Miller-Rabin test, matching spec.md
// §4.3's is_prime(). A nil g draws witnesses from OS entropy.
func IsPrime(p *mpi.Int, g prng.Generator) bool {
	if p.Cmp(mpi.New().SetInt(2)) < 0 {
		return false
	}
	if p.Cmp(mpi.New().SetInt(BiggestSmallPrime)) <= 0 {
		return isPrimeSmall(p)
	}
	if p.IsEven() {
		return false
	}

	// Trial-divide by the small-prime table first; this rejects the vast
	// majority of composites cheaply before paying for modular
	// exponentiation.
	for i := 0; i < NumSmallPrimes; i++ {
		sp := mpi.New().SetInt(SmallPrime(i))
		if sp.Cmp(p) >= 0 {
			break
		}
		rem := mpi.New()
		if err := rem.Mod(p, sp); err != nil {
			return false
		}
		if rem.Zero() {
			return false
		}
	}

	if g == nil {
		g = defaultGenerator()
	}

	return millerRabin(p, g, MillerRabinRounds)
}

func isPrimeSmall(p *mpi.Int) bool {
	v := 0
	bytes := p.Bytes()
	for _, b := range bytes {
		v = v<<8 | int(b)
	}
	return IsSmallPrime(v)
}

// millerRabin runs `rounds` Miller-Rabin witness tests against odd p > 3.
func millerRabin(p *mpi.Int, g prng.Generator, rounds int) bool {
	one := mpi.New().SetInt(1)
	two := mpi.New().SetInt(2)
	pMinus1 := mpi.New().Sub(p, one)

	// Write p-1 = d * 2^s with d odd.
	d := pMinus1.Clone()
	s := 0
	for d.IsEven() {
		d = mpi.New().Rsh(d, 1)
		s++
	}

	pMinus4 := mpi.New().Sub(p, mpi.New().SetInt(4))

	for round := 0; round < rounds; round++ {
		a := randomInRange(g, pMinus4) // a in [0, p-4]
		a.Add(a, two)                  // a in [2, p-2]

		x := mpi.New()
		if err := x.ExpMod(a, d, p); err != nil {
			return false
		}
		if x.Equals(one) || x.Equals(pMinus1) {
			continue
		}

		witness := true
		for i := 0; i < s-1; i++ {
			x.SqrMod(x, p)
			if x.Equals(pMinus1) {
				witness = false
				break
			}
		}
		if witness {
			return false
		}
	}
	return true
}

// randomInRange returns a uniform value in [0, bound] using rejection
// sampling against the smallest power-of-two mask covering bound, the
// standard way to avoid modulo bias when bound isn't a power of two.
func randomInRange(g prng.Generator, bound *mpi.Int) *mpi.Int {
	if bound.Zero() {
		return mpi.New()
	}
	nbits := bound.CountBits()
	nbytes := (nbits + 7) / 8
	topMask := byte(0xff)
	if extra := nbytes*8 - nbits; extra > 0 {
		topMask = 0xff >> uint(extra)
	}

	buf := make([]byte, nbytes)
	for {
		g.Bytes(buf)
		buf[0] &= topMask
		v := mpi.New().SetBytes(buf)
		if v.Cmp(bound) <= 0 {
			return v
		}
	}
}
