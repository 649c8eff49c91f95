// Copyright (c) 2015-2020 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package prng_test

import (
	"testing"

	"github.com/cryptokit/core/prng"
	"github.com/stretchr/testify/require"
)

func generators(seed uint32) map[string]prng.Generator {
	return map[string]prng.Generator{
		"Mother":          prng.NewMother(seed),
		"MersenneTwister": prng.NewMersenneTwister(seed),
		"Xorshift128":     prng.NewXorshift128(seed),
	}
}

func TestDeterministicWithSameSeed(t *testing.T) {
	for name, ctor := range map[string]func(uint32) prng.Generator{
		"Mother":          func(s uint32) prng.Generator { return prng.NewMother(s) },
		"MersenneTwister": func(s uint32) prng.Generator { return prng.NewMersenneTwister(s) },
		"Xorshift128":     func(s uint32) prng.Generator { return prng.NewXorshift128(s) },
	} {
		a := ctor(1234)
		b := ctor(1234)
		for i := 0; i < 100; i++ {
			require.Equalf(t, a.Uint32(), b.Uint32(), "%s: iteration %d diverged", name, i)
		}
	}
}

func TestDifferentSeedsDiverge(t *testing.T) {
	for name, gens := range map[string][2]prng.Generator{
		"Mother":          {prng.NewMother(1), prng.NewMother(2)},
		"MersenneTwister": {prng.NewMersenneTwister(1), prng.NewMersenneTwister(2)},
		"Xorshift128":     {prng.NewXorshift128(1), prng.NewXorshift128(2)},
	} {
		same := true
		for i := 0; i < 8; i++ {
			if gens[0].Uint32() != gens[1].Uint32() {
				same = false
				break
			}
		}
		require.Falsef(t, same, "%s: two different seeds produced the same 8 words", name)
	}
}

func TestBytesConsistentWithUint32(t *testing.T) {
	for name, g := range generators(42) {
		var buf [4]byte
		g.Bytes(buf[:])
		want := uint32(buf[0]) | uint32(buf[1])<<8 | uint32(buf[2])<<16 | uint32(buf[3])<<24

		g2 := generators(42)[name]
		got := g2.Uint32()
		require.Equalf(t, want, got, "%s: Bytes/Uint32 disagree on word assembly order", name)
	}
}

func TestBitsSetsTopBitAndMasksExcess(t *testing.T) {
	g := prng.NewXorshift128(7)
	buf := make([]byte, 2)
	prng.Bits(g, buf, 12)
	// 12 bits in a 2-byte buffer leaves the top 4 bits of byte 0 unused;
	// Bits must zero them and force the highest used bit (bit 3) to 1.
	require.Equal(t, byte(0x08), buf[0]&0xf8)
}

func TestBytesNoZerosHasNoZeroBytes(t *testing.T) {
	g := prng.NewMother(99)
	buf := make([]byte, 256)
	prng.BytesNoZeros(g, buf)
	for i, b := range buf {
		require.NotZerof(t, b, "byte %d was zero", i)
	}
}

func TestUnpredictableEntropyVariesAndHasLength(t *testing.T) {
	a := prng.UnpredictableEntropy(32)
	b := prng.UnpredictableEntropy(32)
	require.Len(t, a, 32)
	require.Len(t, b, 32)
	require.NotEqual(t, a, b)
}

func TestTLSPRFDeterministic(t *testing.T) {
	secret := []byte("test secret value")
	seed := []byte("test seed value")
	var out1, out2 [48]byte
	prng.TLSPRF(prng.TLSPRFSHA256, secret, "master secret", seed, nil, out1[:])
	prng.TLSPRF(prng.TLSPRFSHA256, secret, "master secret", seed, nil, out2[:])
	require.Equal(t, out1, out2)
}

func TestTLSPRFVariantsDiffer(t *testing.T) {
	secret := []byte("test secret value")
	seed := []byte("test seed value")
	var sha256out, sha384out [48]byte
	prng.TLSPRF(prng.TLSPRFSHA256, secret, "label", seed, nil, sha256out[:])
	prng.TLSPRF(prng.TLSPRFSHA384, secret, "label", seed, nil, sha384out[:])
	require.NotEqual(t, sha256out, sha384out)
}

func TestOSEntropyProducesRequestedLength(t *testing.T) {
	o := prng.NewOSEntropy()
	buf := make([]byte, 1000) // spans the 512-byte internal refill buffer
	o.Bytes(buf)
	allZero := true
	for _, b := range buf {
		if b != 0 {
			allZero = false
			break
		}
	}
	require.False(t, allZero)
}
