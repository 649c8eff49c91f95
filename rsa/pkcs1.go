// Copyright (c) 2015-2020 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rsa

import (
	"github.com/cryptokit/core/mpi"
	"github.com/cryptokit/core/prng"
)

// Padding selects the PKCS#1 v1.5 padding style, matching RSA_PAD_ZEROES,
// RSA_PAD_ONES, and RSA_PAD_RANDOM from rsa.h.
type Padding int

const (
	PadZeroes Padding = iota
	PadOnes
	PadRandom
)

// Encode raw-RSA-encodes data under key, producing a block the size of
// key.Bytes, matching rsa_encode: the block is laid out as
// 00 || pad-type || padding-bytes || 00 || data, then raised to the
// chosen exponent. Encoding with the private key (public == false) uses
// blinding; encoding with the public key does not need it since the
// public exponent reveals nothing about the private one.
func Encode(key *Key, data []byte, public bool, pad Padding, g prng.Generator) ([]byte, error) {
	if len(data) > key.MaxData() {
		return nil, newError(ErrTooLarge, "data does not fit with required padding")
	}

	block := make([]byte, key.Bytes)
	padLen := key.Bytes - len(data)
	copy(block[padLen:], data)

	block[0] = 0
	block[1] = byte(pad)
	padLen -= 3

	switch pad {
	case PadZeroes:
		for i := 0; i < padLen; i++ {
			block[2+i] = 0
		}
	case PadOnes:
		for i := 0; i < padLen; i++ {
			block[2+i] = 0xff
		}
	case PadRandom:
		if g == nil {
			return nil, newError(ErrBadParams, "random padding requested without a generator")
		}
		prng.BytesNoZeros(g, block[2:2+padLen])
	default:
		return nil, newError(ErrBadParams, "unknown padding type")
	}
	block[2+padLen] = 0

	res := mpi.New().SetBytes(block)
	if err := rsaOp(key, res, public); err != nil {
		return nil, err
	}
	return res.CopyBytesExact(key.Bytes), nil
}

// Decode reverses Encode, recovering the original data from a key.Bytes
// block, matching rsa_decode: it applies the inverse exponent, then
// strips the 00 || pad-type || padding || 00 header, validating that the
// padding bytes match the expected style.
func Decode(key *Key, block []byte, public bool, pad Padding) ([]byte, error) {
	if len(block) != key.Bytes {
		return nil, newError(ErrWrongSize, "block size does not match key size")
	}

	res := mpi.New().SetBytes(block)
	if err := rsaOp(key, res, public); err != nil {
		return nil, err
	}

	decoded := res.CopyBytesExact(key.Bytes)
	if decoded[0] != 0 || Padding(decoded[1]) != pad {
		return nil, newError(ErrPadding, "padding header does not match expected type")
	}

	ptr := decoded[2:]
	switch pad {
	case PadZeroes:
		for len(ptr) > 0 && ptr[0] == 0 {
			ptr = ptr[1:]
		}
	case PadOnes:
		for len(ptr) > 1 && ptr[0] == 0xff {
			ptr = ptr[1:]
		}
		if ptr[0] != 0 {
			return nil, newError(ErrPadding, "padding terminator missing")
		}
		ptr = ptr[1:]
	case PadRandom:
		for len(ptr) > 1 && ptr[0] != 0 {
			ptr = ptr[1:]
		}
		if ptr[0] != 0 {
			return nil, newError(ErrPadding, "padding terminator missing")
		}
		ptr = ptr[1:]
	default:
		return nil, newError(ErrBadParams, "unknown padding type")
	}

	return ptr, nil
}

// rsaOp raises res to the public exponent in place if public is true,
// otherwise performs the blinded private-key operation, matching the
// `public ? mp_exptmod(...) : rsa_blind(...)` branch shared by rsa_encode
// and rsa_decode.
func rsaOp(key *Key, res *mpi.Int, public bool) error {
	if public {
		return res.ExpMod(res, key.Exponent, key.Modulus)
	}
	if !key.HasPrivate() {
		return newError(ErrNoPrivateKey, "private-key operation requires a private exponent")
	}
	blinded, err := blind(key, res)
	if err != nil {
		return err
	}
	res.Set(blinded)
	return nil
}
