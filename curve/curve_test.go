// Copyright (c) 2015-2020 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package curve_test

import (
	"testing"

	"github.com/cryptokit/core/curve"
	"github.com/cryptokit/core/mpi"
	"github.com/stretchr/testify/require"
)

func TestRegistryLookup(t *testing.T) {
	require.Same(t, curve.SECP256K1, curve.ByName("secp256k1"))
	require.Same(t, curve.SECP256K1, curve.ByName("ANSIP256K1"))
	require.Same(t, curve.SECP256R1, curve.ByOID("1.2.840.10045.3.1.7"))
	require.Same(t, curve.BrainpoolP256R1, curve.ByName("brainpoolP256r1"))
	require.Nil(t, curve.ByName("not-a-curve"))
	require.GreaterOrEqual(t, len(curve.All()), 14)
}

func TestGeneratorsAreOnCurve(t *testing.T) {
	for _, c := range curve.All() {
		g := c.Generator()
		require.Truef(t, curve.OnCurve(c, g), "%s generator not on curve", c.Name)
	}
}

func TestDoubleMatchesAdd(t *testing.T) {
	for _, c := range []*curve.Curve{curve.SECP192R1, curve.SECP256R1, curve.SECP256K1, curve.BrainpoolP256R1} {
		g := c.Generator()
		doubled := curve.Double(c, g)
		added := curve.Add(c, g, g)
		require.Truef(t, doubled.Equal(added), "%s: 2G via Double != G+G", c.Name)
		require.Truef(t, curve.OnCurve(c, doubled), "%s: 2G not on curve", c.Name)
	}
}

func TestScalarMultMatchesRepeatedAdd(t *testing.T) {
	c := curve.SECP256R1
	g := c.Generator()
	sum := curve.Infinity()
	for i := 0; i < 5; i++ {
		sum = curve.Add(c, sum, g)
	}
	got := curve.ScalarMult(c, g, mpi.New().SetInt(5))
	require.True(t, got.Equal(sum))
}

func TestIdentityIsNeutral(t *testing.T) {
	c := curve.SECP256K1
	g := c.Generator()
	inf := curve.Infinity()
	require.True(t, curve.Add(c, g, inf).Equal(g))
	require.True(t, curve.Add(c, inf, g).Equal(g))
	require.True(t, curve.ScalarMult(c, g, mpi.New()).IsInfinity())
}

func TestAddOppositePointsYieldsInfinity(t *testing.T) {
	c := curve.SECP256K1
	g := c.Generator()
	neg := curve.Negate(c, g)
	require.Truef(t, curve.OnCurve(c, neg), "negated generator not on curve")
	sum := curve.Add(c, g, neg)
	require.True(t, sum.IsInfinity())
}

func TestMarshalUnmarshalRoundTrip(t *testing.T) {
	for _, compressed := range []bool{true, false} {
		for _, c := range []*curve.Curve{curve.SECP256K1, curve.SECP256R1, curve.BrainpoolP384R1} {
			g := c.Generator()
			enc := curve.Marshal(c, g, compressed)
			require.Equal(t, curve.EncodedSize(c, compressed), len(enc))
			got, err := curve.Unmarshal(c, enc)
			require.NoError(t, err)
			require.Truef(t, got.Equal(g), "%s compressed=%v round trip mismatch", c.Name, compressed)
		}
	}
}

func TestMarshalMontgomeryIsBareX(t *testing.T) {
	c := curve.X25519
	g := c.Generator()
	enc := curve.Marshal(c, g, true)
	require.Equal(t, c.Bytes, len(enc))
	got, err := curve.Unmarshal(c, enc)
	require.NoError(t, err)
	require.Equal(t, 0, got.X.Cmp(g.X))
}

func TestUnmarshalRejectsBadTypeByte(t *testing.T) {
	_, err := curve.Unmarshal(curve.SECP256K1, []byte{0x05, 0x00})
	require.Error(t, err)
}
