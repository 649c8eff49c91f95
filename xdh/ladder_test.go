// Copyright (c) 2015-2020 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package xdh_test

import (
	"encoding/hex"
	"testing"

	"github.com/cryptokit/core/xdh"
	"github.com/stretchr/testify/require"
)

func unhex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	require.NoError(t, err)
	return b
}

func genScalar(seed byte, length int) []byte {
	b := make([]byte, length)
	for i := range b {
		b[i] = byte(int(seed)*31 + i*7 + 1)
	}
	return b
}

// TestX25519SharedSecretSymmetric checks Alice and Bob converge on the same
// shared secret, matching RFC 7748 §6.1's ECDH scenario shape.
func TestX25519SharedSecretSymmetric(t *testing.T) {
	alicePriv := genScalar(1, 32)
	bobPriv := genScalar(2, 32)

	alicePub, err := xdh.X25519(alicePriv, xdh.X25519BasePoint)
	require.NoError(t, err)
	bobPub, err := xdh.X25519(bobPriv, xdh.X25519BasePoint)
	require.NoError(t, err)

	sharedAlice, err := xdh.X25519(alicePriv, bobPub)
	require.NoError(t, err)
	sharedBob, err := xdh.X25519(bobPriv, alicePub)
	require.NoError(t, err)

	require.Equal(t, sharedAlice, sharedBob)
	require.NotEqual(t, make([]byte, 32), sharedAlice)
}

func TestX25519IsDeterministic(t *testing.T) {
	priv := genScalar(9, 32)
	first, err := xdh.X25519(priv, xdh.X25519BasePoint)
	require.NoError(t, err)
	second, err := xdh.X25519(priv, xdh.X25519BasePoint)
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestX25519DifferentScalarsDifferentPublicKeys(t *testing.T) {
	pubA, err := xdh.X25519(genScalar(3, 32), xdh.X25519BasePoint)
	require.NoError(t, err)
	pubB, err := xdh.X25519(genScalar(4, 32), xdh.X25519BasePoint)
	require.NoError(t, err)
	require.NotEqual(t, pubA, pubB)
}

func TestX25519RejectsWrongLength(t *testing.T) {
	_, err := xdh.X25519(make([]byte, 31), make([]byte, 32))
	require.Error(t, err)
	_, err = xdh.X25519(make([]byte, 32), make([]byte, 10))
	require.Error(t, err)
}

// TestX448SharedSecretSymmetric mirrors the X25519 ECDH consistency check
// at X448's wider field and scalar size.
func TestX448SharedSecretSymmetric(t *testing.T) {
	alicePriv := genScalar(5, 56)
	bobPriv := genScalar(6, 56)

	alicePub, err := xdh.X448(alicePriv, xdh.X448BasePoint)
	require.NoError(t, err)
	bobPub, err := xdh.X448(bobPriv, xdh.X448BasePoint)
	require.NoError(t, err)

	sharedAlice, err := xdh.X448(alicePriv, bobPub)
	require.NoError(t, err)
	sharedBob, err := xdh.X448(bobPriv, alicePub)
	require.NoError(t, err)

	require.Equal(t, sharedAlice, sharedBob)
	require.NotEqual(t, make([]byte, 56), sharedAlice)
}

func TestX448RejectsWrongLength(t *testing.T) {
	_, err := xdh.X448(make([]byte, 55), make([]byte, 56))
	require.Error(t, err)
}

// TestX25519KnownAnswerVector checks the scalar/coordinate pair from
// original_source/ecc/test_ecc.c's test_curve_25519 (the same scalarmult
// known-answer vector RFC 7748 §5.2 specifies).
func TestX25519KnownAnswerVector(t *testing.T) {
	scalar := unhex(t, "a546e36bf0527c9d3b16154b82465edd62144c0ac1fc5a18506a2244ba449ac4")
	u := unhex(t, "e6db6867583030db3594c1a424b15f7c726624ec26b3353b10a903a6d0ab1c4c")
	want := unhex(t, "c3da55379de9c6908e94ea4df28d084f32eccf03491c71f754b4075577a28552")

	got, err := xdh.X25519(scalar, u)
	require.NoError(t, err)
	require.Equal(t, want, got)
}

// TestX448KnownAnswerVector mirrors TestX25519KnownAnswerVector against
// test_curve_448's scalarmult vector.
func TestX448KnownAnswerVector(t *testing.T) {
	scalar := unhex(t, "3d262fddf9ec8e88495266fea19a34d28882acef045104d0d1aae121700a779c984c24f8cdd78fbff44943eba368f54b29259a4f1c600ad3")
	u := unhex(t, "06fce640fa3487bfda5f6cf2d5263f8aad88334cbd07437f020f08f9814dc031ddbdc38c19c6da2583fa5429db94ada18aa7a7fb4ef8a086")
	want := unhex(t, "ce3e4ff95a60dc6697da1db1d85e6afbdf79b50a2412d7546d5f239fe14fbaadeb445fc66a01b0779d98223961111e21766282f73dd96b6f")

	got, err := xdh.X448(scalar, u)
	require.NoError(t, err)
	require.Equal(t, want, got)
}

// TestX25519AliceBobKnownVectors runs the fixed Alice/Bob scalars from
// test_curve_25519's Diffie-Hellman section against the base point and
// checks both the derived public keys and the converged shared secret,
// matching curve25519_scalarmult's documented "Must Be" outputs.
func TestX25519AliceBobKnownVectors(t *testing.T) {
	alicePriv := unhex(t, "77076d0a7318a57d3c16c17251b26645df4c2f87ebc0992ab177fba51db92c2a")
	bobPriv := unhex(t, "5dab087e624a8a4b79e17f8b83800ee66f3bb1292618b6fd1c2f8b27ff88e0eb")
	wantAlicePub := unhex(t, "a0e1a5c720fa1adad858c05b7e02cab912f59bf95abe4fe0db47c234dd2b2c21")
	wantBobPub := unhex(t, "87b3ccf50ce25da6ab7053e68c6eb5f7ea0969b51df6b84c60cdd7be15798404")
	wantShared := unhex(t, "168579f5ac2414fe251e1365ec6c64d02d951a503a27dabeea6908da4e24f109")

	alicePub, err := xdh.X25519(alicePriv, xdh.X25519BasePoint)
	require.NoError(t, err)
	require.Equal(t, wantAlicePub, alicePub)

	bobPub, err := xdh.X25519(bobPriv, xdh.X25519BasePoint)
	require.NoError(t, err)
	require.Equal(t, wantBobPub, bobPub)

	sharedAlice, err := xdh.X25519(alicePriv, bobPub)
	require.NoError(t, err)
	sharedBob, err := xdh.X25519(bobPriv, alicePub)
	require.NoError(t, err)

	require.Equal(t, sharedAlice, sharedBob)
	require.Equal(t, wantShared, sharedAlice)
}

// TestX448AliceBobKnownVectors mirrors TestX25519AliceBobKnownVectors at
// X448's wider field, matching test_curve_448's Diffie-Hellman section.
func TestX448AliceBobKnownVectors(t *testing.T) {
	alicePriv := unhex(t, "9a8f4925d1519f5775cf46b04b5800d4ee9ee8bae8bc5565d498c28dd9c9baf574a9419744897391006382a6f127ab1d9ac2d8c0a598726b")
	bobPriv := unhex(t, "1c306a7ac2a0e2e0990b294470cba339e6453772b075811d8fad0d1d6927c120bb5ee8972b0d3e21374c9c921b09d1b0366f10b65173992d")
	wantAlicePub := unhex(t, "f9e60c4f68e01bc3c913c53f6d52efa73d49ef91a519e83266aa9d6f9af2091663efbdf79a01597c446cc2fbeb32da9b663273651cb00170")
	wantBobPub := unhex(t, "38475a2a6de13fcca293e78150a3b0144b504543e5196c4710186fe05e0863854224184a5a02d20d6ed51da965389ba69300164d367102e8")
	wantShared := unhex(t, "8bac1028804712ead5b64ce695dc08fb1432cb5f71faf0eca71f0dd5bfdd1d0b4bb7bb0307669f89f18d7845c7e35dc9c79f23b837f63cd4")

	alicePub, err := xdh.X448(alicePriv, xdh.X448BasePoint)
	require.NoError(t, err)
	require.Equal(t, wantAlicePub, alicePub)

	bobPub, err := xdh.X448(bobPriv, xdh.X448BasePoint)
	require.NoError(t, err)
	require.Equal(t, wantBobPub, bobPub)

	sharedAlice, err := xdh.X448(alicePriv, bobPub)
	require.NoError(t, err)
	sharedBob, err := xdh.X448(bobPriv, alicePub)
	require.NoError(t, err)

	require.Equal(t, sharedAlice, sharedBob)
	require.Equal(t, wantShared, sharedAlice)
}
