// Copyright (c) 2015-2020 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ecdsa implements the ECC key lifecycle named in spec.md §4.6:
// key generation, deterministic-nonce ECDSA signing (used, per the
// original's own design, for the "EdDSA" curves too -- see the Open
// Question log in DESIGN.md), verification, ECDH, and the signature
// algorithm registry, generalized from the teacher's secp256k1-only
// PrivateKey/PublicKey/Signature types to the full curve.Curve registry.
package ecdsa

import (
	"github.com/cryptokit/core/curve"
	"github.com/cryptokit/core/mpi"
	"github.com/cryptokit/core/prng"
	"github.com/cryptokit/core/xdh"
)

// Key references a curve descriptor plus an optional private scalar and a
// mandatory public point, matching spec.md §3's "ECC key" data model. A key
// "has private" iff Private is non-nil.
type Key struct {
	Curve   *curve.Curve
	Private *mpi.Int
	Public  *curve.Point
}

// HasPrivate reports whether k carries a private scalar.
func (k *Key) HasPrivate() bool { return k.Private != nil }

// reverse returns a reversed copy of buf, used to convert between this
// package's big-endian mpi.Int convention and the little-endian byte
// layout RFC 7748 (and this port's xdh package) uses for X25519/X448.
func reverse(buf []byte) []byte {
	out := make([]byte, len(buf))
	for i, b := range buf {
		out[len(buf)-1-i] = b
	}
	return out
}

func scalarToLE(c *curve.Curve, d *mpi.Int) []byte {
	return reverse(d.CopyBytesExact(c.Bytes))
}

func leToScalar(buf []byte) *mpi.Int {
	return mpi.New().SetBytes(reverse(buf))
}

// montgomeryLadder runs the curve's X25519/X448 ladder for scalar d over
// point p, matching ecc_point_mult's is_curve25519/is_curve448 dispatch.
func montgomeryLadder(c *curve.Curve, d *mpi.Int, p *curve.Point) (*curve.Point, error) {
	kb := scalarToLE(c, d)
	ub := scalarToLE(c, p.X)
	var outLE []byte
	var err error
	if c == curve.X25519 {
		outLE, err = xdh.X25519(kb, ub)
	} else {
		outLE, err = xdh.X448(kb, ub)
	}
	if err != nil {
		return nil, err
	}
	return &curve.Point{X: leToScalar(outLE), Y: mpi.New()}, nil
}

// scalarMult computes d*p on c, dispatching to the Montgomery ladder for
// X25519/X448 and to the generic affine double-and-add otherwise, matching
// ecc_point_mult's curve-family dispatch.
func scalarMult(c *curve.Curve, d *mpi.Int, p *curve.Point) (*curve.Point, error) {
	if c.Montgomery {
		return montgomeryLadder(c, d, p)
	}
	return curve.ScalarMult(c, p, d), nil
}

func scalarBaseMult(c *curve.Curve, d *mpi.Int) (*curve.Point, error) {
	return scalarMult(c, d, c.Generator())
}

// DerivePublic computes the public point d*G for a private scalar d on c,
// exported for serialization formats (PKCS#8/SEC1) that need to recompute
// or cross-check a public key from a decoded private scalar.
func DerivePublic(c *curve.Curve, d *mpi.Int) (*curve.Point, error) {
	return scalarBaseMult(c, d)
}

// GenerateKey draws a random private scalar on c using g and derives the
// matching public point, matching ecc_generate_keys/ecc_gen_keys: a random
// scalar in the curve's order, public = scalar*G, with cofactor clamping
// applied by the Montgomery ladder itself for X25519/X448 (see spec.md
// §4.6, "Montgomery curves apply clamping before multiplication").
func GenerateKey(c *curve.Curve, g prng.Generator) (*Key, error) {
	buf := make([]byte, c.Bytes)
	prng.BytesNoZeros(g, buf)
	d := mpi.New().SetBytes(buf)
	d.SetBit(c.Bits-1, 1)
	if err := d.Mod(d, c.N); err != nil {
		return nil, err
	}

	pub, err := scalarBaseMult(c, d)
	if err != nil {
		return nil, err
	}
	return &Key{Curve: c, Private: d, Public: pub}, nil
}
