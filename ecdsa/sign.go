// Copyright (c) 2015-2020 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ecdsa

import (
	"crypto"
	"hash"

	"github.com/cryptokit/core/curve"
	"github.com/cryptokit/core/mpi"
)

// Signature is a pair of MPIs (r, s), matching spec.md §3's ECDSA signature
// data model.
type Signature struct {
	R *mpi.Int
	S *mpi.Int
}

const minHashSize = 16

// deterministicNonce derives k from the private key and message digest
// using the HKDF-like construction of spec.md §4.6 / ecdsa_sign_hash's
// "Simon Tatham" scheme: d1 = H(tag || priv), k = H(d1 || hash). The
// result is reduced to the curve's order by makeOrder below, exactly as
// ecc_make_order is applied unconditionally after this branch in the
// source -- whether k came from this derivation or was supplied verbatim.
func deterministicNonce(c *curve.Curve, newHash func() hash.Hash, priv *mpi.Int, digest []byte) *mpi.Int {
	const tag = "Simons's deterministic k generator"

	h := newHash()
	h.Write([]byte(tag))
	h.Write(priv.CopyBytesExact(c.Bytes))
	d1 := h.Sum(nil)

	h2 := newHash()
	h2.Write(d1)
	h2.Write(digest)
	kBytes := h2.Sum(nil)

	return mpi.New().SetBytes(kBytes)
}

// makeOrder reduces bn to the curve's order and, for curves with a
// cofactor greater than one, clears the low bits of the result so it is a
// multiple of the cofactor -- matching ecc_make_order exactly.
func makeOrder(c *curve.Curve, bn *mpi.Int) error {
	if err := bn.Mod(bn, c.N); err != nil {
		return err
	}
	if c.H > 1 {
		mask := uint(c.H - 1)
		for i := 0; mask != 0; i++ {
			if mask&1 == 1 {
				bn.SetBit(i, 0)
			}
			mask >>= 1
		}
	}
	return nil
}

func truncateHash(c *curve.Curve, digest []byte) *mpi.Int {
	n := len(digest)
	if n > c.Bytes {
		n = c.Bytes
	}
	return mpi.New().SetBytes(digest[:n])
}

// Sign produces a deterministic ECDSA signature over digest using key's
// private scalar, following spec.md §4.6's three-step construction: this
// is the same routine used for both ECDSA and this module's "EdDSA"
// curves, per the unification note in SPEC_FULL.md §4.6.
func Sign(key *Key, newHash func() hash.Hash, digest []byte) (*Signature, error) {
	if !key.HasPrivate() {
		return nil, newError(ErrNoPrivateKey, "ecdsa: key has no private scalar")
	}
	if len(digest) < minHashSize {
		return nil, newError(ErrHashTooShort, "ecdsa: digest shorter than minimum")
	}
	c := key.Curve

	k := deterministicNonce(c, newHash, key.Private, digest)

	r, err := sign(c, k, key.Private, digest)
	if err != nil {
		return nil, err
	}
	return r, nil
}

// SignWithNonce signs digest using an explicit nonce k instead of deriving
// one deterministically, matching ecdsa_sign_hash's "if key->k is given,
// use it verbatim" branch -- used for reproducing fixed test vectors.
func SignWithNonce(key *Key, k *mpi.Int, digest []byte) (*Signature, error) {
	if !key.HasPrivate() {
		return nil, newError(ErrNoPrivateKey, "ecdsa: key has no private scalar")
	}
	return sign(key.Curve, k, key.Private, digest)
}

func sign(c *curve.Curve, k, priv *mpi.Int, digest []byte) (*Signature, error) {
	k = k.Clone()
	if err := makeOrder(c, k); err != nil {
		return nil, err
	}

	R, err := scalarBaseMult(c, k)
	if err != nil {
		return nil, err
	}

	r := mpi.New()
	if err := r.Mod(R.X, c.N); err != nil {
		return nil, err
	}
	if r.Zero() {
		return nil, newError(ErrZeroR, "ecdsa: r is zero, retry with a new nonce")
	}

	kInv := mpi.New()
	if err := kInv.InvMod(k, c.N); err != nil {
		return nil, err
	}

	e := truncateHash(c, digest)

	privR := mpi.New()
	if err := privR.MulMod(priv, r, c.N); err != nil {
		return nil, err
	}
	sum := mpi.New()
	if err := sum.AddMod(e, privR, c.N); err != nil {
		return nil, err
	}
	s := mpi.New()
	if err := s.MulMod(kInv, sum, c.N); err != nil {
		return nil, err
	}
	if s.Zero() {
		return nil, newError(ErrZeroS, "ecdsa: s is zero, retry with a new nonce")
	}

	return &Signature{R: r, S: s}, nil
}

// Verify reports whether sig is a valid signature over digest for key's
// public point, matching ecdsa_verify_hash. Unlike the source's
// ecdsa_verify_sign wrapper (which always returns 0 regardless of the
// inner result, a bug spec.md's Open Questions call out), this propagates
// the real boolean -- see DESIGN.md decision #2.
func Verify(key *Key, digest []byte, sig *Signature) (bool, error) {
	if len(digest) < minHashSize {
		return false, newError(ErrHashTooShort, "ecdsa: digest shorter than minimum")
	}
	c := key.Curve

	if sig.R.Zero() || sig.S.Zero() {
		return false, nil
	}

	w := mpi.New()
	if err := w.InvMod(sig.S, c.N); err != nil {
		return false, nil
	}

	e := truncateHash(c, digest)
	u1 := mpi.New()
	if err := u1.MulMod(e, w, c.N); err != nil {
		return false, err
	}
	u2 := mpi.New()
	if err := u2.MulMod(sig.R, w, c.N); err != nil {
		return false, err
	}

	p1, err := scalarBaseMult(c, u1)
	if err != nil {
		return false, err
	}
	p2, err := scalarMult(c, u2, key.Public)
	if err != nil {
		return false, err
	}

	sum := curve.Add(c, p1, p2)
	if sum.IsInfinity() {
		return false, nil
	}

	v := mpi.New()
	if err := v.Mod(sum.X, c.N); err != nil {
		return false, err
	}
	return v.Cmp(sig.R) == 0, nil
}

// HashFunc adapts a crypto.Hash constant to the hash.Hash-factory shape
// Sign/Verify expect, for callers that already carry a crypto.Hash.
func HashFunc(h crypto.Hash) func() hash.Hash {
	return h.New
}
