// Copyright (c) 2015-2020 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ecdsa_test

import (
	"crypto/sha256"
	"testing"

	"github.com/cryptokit/core/curve"
	"github.com/cryptokit/core/ecdsa"
	"github.com/cryptokit/core/mpi"
	"github.com/cryptokit/core/prng"
	"github.com/stretchr/testify/require"
)

func digestFor(msg string) []byte {
	sum := sha256.Sum256([]byte(msg))
	return sum[:]
}

func TestGenerateKeyPublicIsOnCurve(t *testing.T) {
	for _, c := range []*curve.Curve{curve.SECP256R1, curve.SECP256K1, curve.BrainpoolP256R1} {
		g := prng.NewMersenneTwister(1)
		key, err := ecdsa.GenerateKey(c, g)
		require.NoError(t, err)
		require.True(t, key.HasPrivate())
		require.True(t, curve.OnCurve(c, key.Public))
		require.False(t, key.Public.IsInfinity())
	}
}

func TestSignVerifyRoundTrip(t *testing.T) {
	for _, c := range []*curve.Curve{curve.SECP256R1, curve.SECP256K1} {
		g := prng.NewMersenneTwister(42)
		key, err := ecdsa.GenerateKey(c, g)
		require.NoError(t, err)

		digest := digestFor("hello world")
		sig, err := ecdsa.Sign(key, sha256.New, digest)
		require.NoError(t, err)
		require.False(t, sig.R.Zero())
		require.False(t, sig.S.Zero())

		ok, err := ecdsa.Verify(key, digest, sig)
		require.NoError(t, err)
		require.True(t, ok)
	}
}

func TestSignIsDeterministic(t *testing.T) {
	c := curve.SECP256R1
	g := prng.NewMersenneTwister(7)
	key, err := ecdsa.GenerateKey(c, g)
	require.NoError(t, err)

	digest := digestFor("deterministic nonce")
	sig1, err := ecdsa.Sign(key, sha256.New, digest)
	require.NoError(t, err)
	sig2, err := ecdsa.Sign(key, sha256.New, digest)
	require.NoError(t, err)

	require.Equal(t, 0, sig1.R.Cmp(sig2.R))
	require.Equal(t, 0, sig1.S.Cmp(sig2.S))
}

func TestVerifyRejectsTamperedDigest(t *testing.T) {
	c := curve.SECP256R1
	g := prng.NewMersenneTwister(3)
	key, err := ecdsa.GenerateKey(c, g)
	require.NoError(t, err)

	digest := digestFor("original message")
	sig, err := ecdsa.Sign(key, sha256.New, digest)
	require.NoError(t, err)

	tampered := digestFor("tampered message")
	ok, err := ecdsa.Verify(key, tampered, sig)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestVerifyRejectsWrongKey(t *testing.T) {
	c := curve.SECP256R1
	key1, err := ecdsa.GenerateKey(c, prng.NewMersenneTwister(11))
	require.NoError(t, err)
	key2, err := ecdsa.GenerateKey(c, prng.NewMersenneTwister(12))
	require.NoError(t, err)

	digest := digestFor("message")
	sig, err := ecdsa.Sign(key1, sha256.New, digest)
	require.NoError(t, err)

	ok, err := ecdsa.Verify(key2, digest, sig)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestECDHSharedSecretSymmetric(t *testing.T) {
	c := curve.SECP256R1
	alice, err := ecdsa.GenerateKey(c, prng.NewMersenneTwister(21))
	require.NoError(t, err)
	bob, err := ecdsa.GenerateKey(c, prng.NewMersenneTwister(22))
	require.NoError(t, err)

	secretA, err := ecdsa.ECDH(alice, bob.Public)
	require.NoError(t, err)
	secretB, err := ecdsa.ECDH(bob, alice.Public)
	require.NoError(t, err)

	require.Equal(t, secretA, secretB)
}

func TestMontgomeryKeyGenAndECDH(t *testing.T) {
	alice, err := ecdsa.GenerateKey(curve.X25519, prng.NewMersenneTwister(31))
	require.NoError(t, err)
	bob, err := ecdsa.GenerateKey(curve.X25519, prng.NewMersenneTwister(32))
	require.NoError(t, err)

	secretA, err := ecdsa.ECDH(alice, bob.Public)
	require.NoError(t, err)
	secretB, err := ecdsa.ECDH(bob, alice.Public)
	require.NoError(t, err)

	require.Equal(t, secretA, secretB)
}

func TestRegistryLookups(t *testing.T) {
	e, ok := ecdsa.ByName("ecdsaWithSHA256")
	require.True(t, ok)
	require.Equal(t, ecdsa.ECDSAWithSHA256, e.Alg)

	e, ok = ecdsa.ByOID("1.3.101.112")
	require.True(t, ok)
	require.Equal(t, ecdsa.EdDSA25519, e.Alg)

	e, ok = ecdsa.ByDEROID([]byte{0x06, 0x03, 0x2b, 0x65, 0x71})
	require.True(t, ok)
	require.Equal(t, ecdsa.EdDSA448, e.Alg)

	_, ok = ecdsa.ByName("not-a-real-algorithm")
	require.False(t, ok)
}

func TestSignWithNonceMatchesVerify(t *testing.T) {
	c := curve.SECP256R1
	key, err := ecdsa.GenerateKey(c, prng.NewMersenneTwister(55))
	require.NoError(t, err)

	digest := digestFor("fixed nonce vector")
	k := mpi.New().SetBytes(digestFor("some fixed nonce seed"))
	sig, err := ecdsa.SignWithNonce(key, k, digest)
	require.NoError(t, err)

	ok, err := ecdsa.Verify(key, digest, sig)
	require.NoError(t, err)
	require.True(t, ok)
}
