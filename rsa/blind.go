// Copyright (c) 2015-2020 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rsa

import (
	"crypto/sha512"
	"encoding/binary"

	"github.com/cryptokit/core/mpi"
)

// blindingStream produces an endless sequence of pseudo-random bytes
// derived only from the private exponent and the input being operated on,
// matching rsa_blind's deterministic substitute for a system RNG: it
// never needs its own entropy pool, so private-key operations stay
// reproducible given the same key and input.
type blindingStream struct {
	priv  []byte
	input []byte
	seq   uint32
	block []byte
	used  int
}

func newBlindingStream(priv, input *mpi.Int) *blindingStream {
	return &blindingStream{
		priv:  priv.Bytes(),
		input: input.Bytes(),
		block: make([]byte, sha512.Size),
		used:  sha512.Size,
	}
}

func (b *blindingStream) nextByte() byte {
	if b.used >= len(b.block) {
		var seqBuf [4]byte
		binary.BigEndian.PutUint32(seqBuf[:], b.seq)
		b.seq++

		h := sha512.New()
		h.Write([]byte("Putty's RSA deterministic blinding"))
		h.Write(seqBuf[:])
		h.Write(b.priv)
		d1 := h.Sum(nil)

		h2 := sha512.New()
		h2.Write(d1)
		h2.Write(b.input)
		b.block = h2.Sum(nil)
		b.used = 0
	}
	out := b.block[b.used]
	b.used++
	return out
}

// randomBlindingFactor draws a value uniformly from [1, modulus-1] using
// blindingStream as the bit source, matching rsa_blind's "set bits from
// the top down, retry if out of range" loop -- this avoids the modular
// bias a plain reduction would introduce.
func randomBlindingFactor(modulus *mpi.Int, stream *blindingStream) *mpi.Int {
	bits := modulus.CountBits()
	one := mpi.New().SetInt64(1)

	for {
		r := modulus.Clone()
		byteVal := byte(0)
		bitsLeft := 0
		for i := bits - 1; i >= 0; i-- {
			if bitsLeft <= 0 {
				byteVal = stream.nextByte()
				bitsLeft = 8
			}
			bit := uint(byteVal & 1)
			byteVal >>= 1
			bitsLeft--
			r.SetBit(i, bit)
		}
		if r.Cmp(one) >= 0 && r.Cmp(modulus) < 0 {
			return r
		}
	}
}

// blind performs the private-key RSA operation input^d mod n without
// exposing input's timing to a direct exponentiation, matching rsa_blind:
// it masks input by a random y before exponentiating and unmasks the
// result using y^e precomputed with the cheap public exponentiation.
func blind(key *Key, input *mpi.Int) (*mpi.Int, error) {
	stream := newBlindingStream(key.PrivateExponent, input)
	y := randomBlindingFactor(key.Modulus, stream)

	yInv := mpi.New()
	if err := yInv.InvMod(y, key.Modulus); err != nil {
		return nil, err
	}

	yToE := mpi.New()
	if err := yToE.ExpMod(y, key.Exponent, key.Modulus); err != nil {
		return nil, err
	}

	masked := mpi.New()
	if err := masked.MulMod(input, yToE, key.Modulus); err != nil {
		return nil, err
	}

	decrypted := mpi.New()
	if err := decrypted.ExpMod(masked, key.PrivateExponent, key.Modulus); err != nil {
		return nil, err
	}

	result := mpi.New()
	if err := result.MulMod(decrypted, yInv, key.Modulus); err != nil {
		return nil, err
	}
	return result, nil
}
