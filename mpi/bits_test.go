// Copyright (c) 2015-2020 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package mpi_test

import (
	"testing"

	"github.com/cryptokit/core/mpi"
	"github.com/stretchr/testify/require"
)

func TestLshRshRoundTrip(t *testing.T) {
	a := mustParse(t, "123456789012345678901234567890", 10)
	for _, n := range []uint{0, 1, 5, 31, 32, 33, 64, 100} {
		shifted := mpi.New().Lsh(a, n)
		back := mpi.New().Rsh(shifted, n)
		require.Truef(t, back.Equals(a), "shift %d: got %s want %s", n, back, a)
	}
}

func TestExp2(t *testing.T) {
	for n := 0; n < 130; n++ {
		got := mpi.New().Exp2(n)
		require.Equal(t, uint(1), got.Bit(n), "bit %d of 2^%d", n, n)
		require.Equal(t, n+1, got.CountBits())
	}
}

func TestBitSetAndGet(t *testing.T) {
	z := mpi.New()
	z.SetBit(5, 1)
	z.SetBit(70, 1)
	require.Equal(t, uint(1), z.Bit(5))
	require.Equal(t, uint(1), z.Bit(70))
	require.Equal(t, uint(0), z.Bit(6))

	z.SetBit(5, 0)
	require.Equal(t, uint(0), z.Bit(5))
}

func TestBitwiseOperators(t *testing.T) {
	a := mustParse(t, "12", 10) // 1100
	b := mustParse(t, "10", 10) // 1010

	require.True(t, mpi.New().And(a, b).Equals(mustParse(t, "8", 10)))  // 1000
	require.True(t, mpi.New().Or(a, b).Equals(mustParse(t, "14", 10)))  // 1110
	require.True(t, mpi.New().Xor(a, b).Equals(mustParse(t, "6", 10)))  // 0110
}

func TestNotInvolution(t *testing.T) {
	a := mustParse(t, "12345", 10)
	back := mpi.New().Not(mpi.New().Not(a))
	require.True(t, back.Equals(a))
}
