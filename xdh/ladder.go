// Copyright (c) 2015-2020 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package xdh implements the X25519 and X448 Montgomery-ladder key
// agreements named in spec.md §4.5, ported from the differential-addition
// ladder in original_source/ecc/curve25519.c and generalized to X448's
// wider field per RFC 7748.
package xdh

import "github.com/cryptokit/core/mpi"

// montgomeryParams names one Montgomery curve's field prime, ladder
// coefficient, and encoded field width, matching curve25519_scalarmult's
// hardcoded 486662 constant (the source reads the field width from
// CURVE_25519_POINT_BYTES, not from the generic ecc_curve_t.a field, which
// curve25519_scalarmult never touches -- so this package hardcodes its own
// per-curve A the same way rather than reading curve.Curve.A).
type montgomeryParams struct {
	bytes int
	bits  int
	p     *mpi.Int
	a24   *mpi.Int // (A-2)/4, the coefficient the ladder's doubling step actually needs
}

func hex(s string) *mpi.Int {
	v, err := mpi.FromRadix(s, 16)
	if err != nil {
		panic("xdh: bad built-in constant: " + err.Error())
	}
	return v
}

var x25519Params = &montgomeryParams{
	bytes: 32,
	bits:  255,
	p:     hex("7fffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffed"),
	a24:   mpi.New().SetInt(121665), // (486662-2)/4, RFC 7748 section 5
}

var x448Params = &montgomeryParams{
	bytes: 56,
	bits:  448,
	p:     hex("fffffffffffffffffffffffffffffffffffffffffffffffffffffffeffffffffffffffffffffffffffffffffffffffffffffffffffffffff"),
	a24:   mpi.New().SetInt(39081), // (156326-2)/4, RFC 7748 section 5
}

// clamp applies the per-curve scalar clamp from RFC 7748 §5, matching
// curve25519_scalarmult's k[0]&=248; k[last]&=127; k[last]|=64. X448 clamps
// both ends differently: byte 0 only clears bits 0-1 (&=252, not 248), and
// the last byte sets the top bit instead of masking it, since X448's scalar
// uses all 8 bits of its final byte.
func clamp(scalar []byte, x448 bool) {
	last := len(scalar) - 1
	if x448 {
		scalar[0] &= 252
		scalar[last] |= 0x80
	} else {
		scalar[0] &= 248
		scalar[last] &= 127
		scalar[last] |= 64
	}
}

// ladder runs the Montgomery differential-addition ladder over u, the
// little-endian-decoded field element for the base point's X coordinate,
// and k, the clamped little-endian scalar, matching
// curve25519_scalarmult's main loop (the xm/zm, xm1/zm1 pair-doubling and
// conditional swap).
func ladder(params *montgomeryParams, k []byte, u *mpi.Int) *mpi.Int {
	p := params.p
	x1 := u
	x2 := mpi.New().SetInt(1)
	z2 := mpi.New()
	x3 := u.Clone()
	z3 := mpi.New().SetInt(1)

	swap := 0
	for t := params.bits - 1; t >= 0; t-- {
		kt := int((k[t/8] >> uint(t%8)) & 1)
		swap ^= kt
		if swap == 1 {
			x2, x3 = x3, x2
			z2, z3 = z3, z2
		}
		swap = kt

		a := mpi.New()
		a.AddMod(x2, z2, p) // A = x2+z2
		aa := mpi.New()
		aa.MulMod(a, a, p) // AA = A^2
		b := mpi.New()
		b.SubMod(x2, z2, p) // B = x2-z2
		bb := mpi.New()
		bb.MulMod(b, b, p) // BB = B^2
		e := mpi.New()
		e.SubMod(aa, bb, p) // E = AA-BB
		c := mpi.New()
		c.AddMod(x3, z3, p) // C = x3+z3
		d := mpi.New()
		d.SubMod(x3, z3, p) // D = x3-z3
		da := mpi.New()
		da.MulMod(d, a, p) // DA = D*A
		cb := mpi.New()
		cb.MulMod(c, b, p) // CB = C*B

		x3n := mpi.New()
		x3n.AddMod(da, cb, p)
		x3n.MulMod(x3n, x3n, p) // x3 = (DA+CB)^2

		z3n := mpi.New()
		z3n.SubMod(da, cb, p)
		z3n.MulMod(z3n, z3n, p)
		z3n.MulMod(z3n, x1, p) // z3 = x1*(DA-CB)^2

		x2n := mpi.New()
		x2n.MulMod(aa, bb, p) // x2 = AA*BB

		aE := mpi.New()
		aE.MulMod(params.a24, e, p)
		aE.AddMod(aE, aa, p)
		z2n := mpi.New()
		z2n.MulMod(e, aE, p) // z2 = E*(AA + a24*E)

		x2, z2, x3, z3 = x2n, z2n, x3n, z3n
	}
	if swap == 1 {
		x2, x3 = x3, x2
		z2, z3 = z3, z2
	}

	// The canonical ladder finishes with x2 * z2^(p-2) mod p; curve25519.c
	// computes that inverse with an explicit addition-chain exponentiation
	// of z2 (a field_bits-8 special case folded into the loop). mpi.InvMod
	// already provides a verified extended-Euclidean modular inverse, so
	// this uses that directly instead of reproducing the addition chain --
	// mathematically the same result, simpler to verify without a
	// toolchain (see DESIGN.md's Open Question log).
	zInv := mpi.New()
	if err := zInv.InvMod(z2, p); err != nil {
		return mpi.New() // z2 == 0: result is the identity's X, by convention 0
	}
	out := mpi.New()
	out.MulMod(x2, zInv, p)
	return out
}

func decodeLittleEndian(buf []byte) *mpi.Int {
	be := make([]byte, len(buf))
	for i, b := range buf {
		be[len(buf)-1-i] = b
	}
	return mpi.New().SetBytes(be)
}

func encodeLittleEndian(v *mpi.Int, length int) []byte {
	be := v.CopyBytesExact(length)
	out := make([]byte, length)
	for i, b := range be {
		out[length-1-i] = b
	}
	return out
}

func scalarMult(params *montgomeryParams, x448 bool, scalar, point []byte) []byte {
	k := make([]byte, params.bytes)
	copy(k, scalar)
	clamp(k, x448)

	uBuf := make([]byte, params.bytes)
	copy(uBuf, point)
	if !x448 {
		uBuf[len(uBuf)-1] &= 127 // matches curve25519_scalarmult's b[last] &= 127
	}
	u := decodeLittleEndian(uBuf)

	result := ladder(params, k, u)
	return encodeLittleEndian(result, params.bytes)
}

// X25519 performs the X25519 scalar multiplication of RFC 7748 §5: scalar
// and point must each be 32 bytes. Pass the X25519 base point (9, little
// endian) to derive a public key from a private scalar.
func X25519(scalar, point []byte) ([]byte, error) {
	if len(scalar) != 32 || len(point) != 32 {
		return nil, errShortInput
	}
	return scalarMult(x25519Params, false, scalar, point), nil
}

// X448 performs the X448 scalar multiplication of RFC 7748 §5: scalar and
// point must each be 56 bytes.
func X448(scalar, point []byte) ([]byte, error) {
	if len(scalar) != 56 || len(point) != 56 {
		return nil, errShortInput
	}
	return scalarMult(x448Params, true, scalar, point), nil
}

// X25519BasePoint and X448BasePoint are the little-endian encodings of each
// curve's base point U coordinate (9 and 5 respectively, per RFC 7748 §4.1).
var (
	X25519BasePoint = mustBasePoint(32, 9)
	X448BasePoint   = mustBasePoint(56, 5)
)

func mustBasePoint(length int, u byte) []byte {
	buf := make([]byte, length)
	buf[0] = u
	return buf
}
