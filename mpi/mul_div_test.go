// Copyright (c) 2015-2020 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package mpi_test

import (
	"testing"

	"github.com/cryptokit/core/mpi"
	"github.com/stretchr/testify/require"
)

func TestMulBasic(t *testing.T) {
	a := mustParse(t, "123456789012345678901234567890", 10)
	b := mustParse(t, "987654321098765432109876543210", 10)
	got := mpi.New().Mul(a, b)
	want := mustParse(t, "121932631137021795226185032733622923332237463801111263526900", 10)
	require.True(t, got.Equals(want), "got %s want %s", got, want)
}

func TestMulByZeroAndSign(t *testing.T) {
	a := mustParse(t, "-42", 10)
	b := mustParse(t, "0", 10)
	require.True(t, mpi.New().Mul(a, b).Zero())

	c := mustParse(t, "7", 10)
	got := mpi.New().Mul(a, c)
	require.Equal(t, -1, got.Sign())
}

func TestSquareMatchesMul(t *testing.T) {
	a := mustParse(t, "340282366920938463463374607431768211455", 10)
	require.True(t, mpi.New().Square(a).Equals(mpi.New().Mul(a, a)))
}

func TestQuoRemIdentity(t *testing.T) {
	tests := []struct{ x, y string }{
		{"1000000000000000000000000000001", "7"},
		{"-17", "5"},
		{"17", "-5"},
		{"-17", "-5"},
		{"0", "123456789"},
		{"340282366920938463463374607431768211456", "340282366920938463463374607431768211455"},
	}
	for _, tt := range tests {
		x := mustParse(t, tt.x, 10)
		y := mustParse(t, tt.y, 10)
		q, r := mpi.New(), mpi.New()
		_, _, err := q.QuoRem(x, y, r)
		require.NoError(t, err)

		back := mpi.New().Add(mpi.New().Mul(q, y), r)
		require.Truef(t, back.Equals(x), "x=%s y=%s q=%s r=%s recombined=%s", tt.x, tt.y, q, r, back)
	}
}

func TestModRangeInvariant(t *testing.T) {
	m := mustParse(t, "1000000007", 10)
	for _, s := range []string{"-999999999999", "0", "5", "1000000007", "999999999999999999999"} {
		x := mustParse(t, s, 10)
		z := mpi.New()
		require.NoError(t, z.Mod(x, m))
		require.True(t, z.Sign() >= 0)
		require.Equal(t, -1, z.Cmp(m))
	}
}

func TestDivideByZero(t *testing.T) {
	z := mpi.New()
	err := z.Div(mustParse(t, "1", 10), mustParse(t, "0", 10))
	require.Error(t, err)
	var mpiErr mpi.Error
	require.ErrorAs(t, err, &mpiErr)
	require.Equal(t, mpi.ErrDivideByZero, mpiErr.Kind())
}
