// Copyright (c) 2015-2020 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package mpi_test

import (
	"testing"

	"github.com/cryptokit/core/mpi"
	"github.com/stretchr/testify/require"
)

func TestMulModDistributesOverMod(t *testing.T) {
	m := mustParse(t, "97", 10)
	a := mustParse(t, "123456789", 10)
	b := mustParse(t, "987654321", 10)

	lhs := mpi.New()
	require.NoError(t, lhs.MulMod(a, b, m))

	amod, bmod := mpi.New(), mpi.New()
	require.NoError(t, amod.Mod(a, m))
	require.NoError(t, bmod.Mod(b, m))
	rhs := mpi.New()
	require.NoError(t, rhs.MulMod(amod, bmod, m))

	require.True(t, lhs.Equals(rhs))
}

func TestExpModKnownVectors(t *testing.T) {
	tests := []struct {
		x, e, m, want string
	}{
		{"4", "13", "497", "445"},
		{"2", "10", "1000", "24"},
		{"0", "5", "7", "0"},
	}
	for _, tt := range tests {
		x := mustParse(t, tt.x, 10)
		e := mustParse(t, tt.e, 10)
		m := mustParse(t, tt.m, 10)
		want := mustParse(t, tt.want, 10)

		got := mpi.New()
		require.NoError(t, got.ExpMod(x, e, m))
		require.Truef(t, got.Equals(want), "%s^%s mod %s: got %s want %s", tt.x, tt.e, tt.m, got, want)
	}
}

func TestExpModRejectsNegativeModulus(t *testing.T) {
	z := mpi.New()
	err := z.ExpMod(mustParse(t, "2", 10), mustParse(t, "3", 10), mustParse(t, "-5", 10))
	require.Error(t, err)
}

func TestInvModRoundTrip(t *testing.T) {
	m := mustParse(t, "26", 10)
	for _, s := range []string{"1", "3", "7", "11", "17", "25"} {
		a := mustParse(t, s, 10)
		inv := mpi.New()
		require.NoErrorf(t, inv.InvMod(a, m), "invmod(%s, 26)", s)

		prod := mpi.New()
		require.NoError(t, prod.MulMod(a, inv, m))
		require.Truef(t, prod.Equals(mustParse(t, "1", 10)), "a=%s inv=%s prod=%s", s, inv, prod)
	}
}

func TestInvModUndefinedWhenNotCoprime(t *testing.T) {
	err := mpi.New().InvMod(mustParse(t, "4", 10), mustParse(t, "8", 10))
	require.Error(t, err)
	var mpiErr mpi.Error
	require.ErrorAs(t, err, &mpiErr)
	require.Equal(t, mpi.ErrUndefined, mpiErr.Kind())
}

func TestGCD(t *testing.T) {
	tests := []struct{ x, y, want string }{
		{"48", "18", "6"},
		{"-48", "18", "6"},
		{"0", "5", "5"},
		{"17", "13", "1"},
	}
	for _, tt := range tests {
		got := mpi.New().GCD(mustParse(t, tt.x, 10), mustParse(t, tt.y, 10))
		require.Truef(t, got.Equals(mustParse(t, tt.want, 10)), "gcd(%s,%s)=%s want %s", tt.x, tt.y, got, tt.want)
	}
}
