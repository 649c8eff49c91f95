// Copyright (c) 2015-2020 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package rsa implements the RSA key lifecycle named in spec.md §4.7:
// key generation over two quality-sieved primes, PKCS#1 v1.5 block
// encoding, blinded private-key exponentiation, and DigestInfo-wrapped
// signing/verification, grounded on original_source/rsa/rsa.c.
package rsa

import (
	"github.com/cryptokit/core/mpi"
	"github.com/cryptokit/core/prng"
	"github.com/cryptokit/core/primes"
)

// Predefined public exponents for GenerateKey, matching RSA_EXP_PUTTY and
// RSA_EXP_CERT in rsa.h.
const (
	ExpPutty = 37
	ExpCert  = 65537
)

// Bit-size bounds for GenerateKey, matching RSA_MIN_BITS/RSA_MAX_BITS.
const (
	MinBits = 64
	MaxBits = 32768
)

// Key holds an RSA modulus and public exponent, plus the optional private
// material: the private exponent (used by the blinded private-key
// operation), the two primes, and q's inverse mod p (both checked by
// VerifyKeys).
type Key struct {
	Bits     int
	Bytes    int
	Modulus  *mpi.Int
	Exponent *mpi.Int

	PrivateExponent *mpi.Int
	P, Q            *mpi.Int
	IQMP            *mpi.Int
}

// HasPrivate reports whether k carries a private exponent.
func (k *Key) HasPrivate() bool { return k.PrivateExponent != nil }

// MaxData is the largest plaintext GenerateKey's key can carry through
// Encode, matching rsa_max_data(): PKCS#1 v1.5 always reserves 11 bytes
// for its minimum padding overhead.
func (k *Key) MaxData() int { return k.Bytes - 11 }

// GenerateKey builds a new key pair of the given total modulus size,
// matching rsa_generate_keys: it draws two quality-sieved primes of
// bits/2 each (neither congruent to 1 mod the exponent), orders them
// p > q, and derives the private exponent and the CRT coefficient iqmp.
// exponent is the public exponent to use; pass 0 to draw a random small
// prime no smaller than ExpPutty, matching the source's "if 0 use a
// random value" behavior.
func GenerateKey(bits int, exponent int, g prng.Generator) (*Key, error) {
	if bits < MinBits || bits > MaxBits {
		return nil, newError(ErrBitsOutOfRange, "requested key size is out of range")
	}

	if exponent == 0 {
		exponent = primes.RandomSmallPrime(g)
		if exponent < ExpPutty {
			exponent = ExpPutty
		}
	} else if !primes.IsSmallPrime(exponent) {
		return nil, newError(ErrNotPrime, "public exponent is not a small prime")
	}

	pFirst, qFirst := primes.InventFirstbits(g)

	e := mpi.New().SetInt64(int64(exponent))

	p := primes.QualityPrime(bits/2, exponent, 1, nil, pFirst, g)
	q := primes.QualityPrime(bits/2, exponent, 1, nil, qFirst, g)
	if p.Cmp(q) < 0 {
		p, q = q, p
	}

	modulus := mpi.New().Mul(p, q)
	keyBits := modulus.CountBits()
	keyBytes := (keyBits + 7) / 8

	pMinus1 := mpi.New().SubInt64(p, 1)
	qMinus1 := mpi.New().SubInt64(q, 1)
	phiN := mpi.New().Mul(pMinus1, qMinus1)

	d := mpi.New()
	if err := d.InvMod(e, phiN); err != nil {
		return nil, err
	}

	iqmp := mpi.New()
	if err := iqmp.InvMod(q, p); err != nil {
		return nil, err
	}

	key := &Key{
		Bits:            keyBits,
		Bytes:           keyBytes,
		Modulus:         modulus,
		Exponent:        e,
		PrivateExponent: d,
		P:               p,
		Q:               q,
		IQMP:            iqmp,
	}

	// rsa_generate_keys aborts and lets the caller retry when the freshly
	// drawn primes fail rsa_verify_keys, rather than handing back a key
	// that only passed the individual InvMod calls.
	if !key.VerifyKeys() {
		return nil, newError(ErrBadParams, "generated key failed internal consistency verification")
	}

	return key, nil
}

// FromComponents builds a key from an already-known modulus and exponent,
// with an optional private exponent, matching rsa_from_bytes's "public
// only if priv is absent" behavior.
func FromComponents(bits int, modulus, exponent, priv *mpi.Int) *Key {
	bytes := (bits + 7) / 8
	return &Key{
		Bits:            bits,
		Bytes:           bytes,
		Modulus:         modulus,
		Exponent:        exponent,
		PrivateExponent: priv,
	}
}

// VerifyKeys checks the internal consistency of a private key: that p > q,
// that p*q equals the modulus, that e*d is congruent with 1 mod (p-1) and
// mod (q-1), and that iqmp is indeed q's inverse mod p, matching
// rsa_verify_keys.
func (k *Key) VerifyKeys() bool {
	if !k.HasPrivate() || k.P == nil || k.Q == nil {
		return k.HasPrivate()
	}
	if k.P.Cmp(k.Q) <= 0 {
		return false
	}
	product := mpi.New().Mul(k.P, k.Q)
	if product.Cmp(k.Modulus) != 0 {
		return false
	}

	one := mpi.New().SetInt64(1)

	pMinus1 := mpi.New().SubInt64(k.P, 1)
	ed := mpi.New()
	if err := ed.MulMod(k.Exponent, k.PrivateExponent, pMinus1); err != nil || ed.Cmp(one) != 0 {
		return false
	}

	qMinus1 := mpi.New().SubInt64(k.Q, 1)
	if err := ed.MulMod(k.Exponent, k.PrivateExponent, qMinus1); err != nil || ed.Cmp(one) != 0 {
		return false
	}

	if k.IQMP == nil {
		return true
	}
	check := mpi.New()
	if err := check.MulMod(k.IQMP, k.Q, k.P); err != nil {
		return false
	}
	return check.Cmp(one) == 0
}
