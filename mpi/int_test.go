// Copyright (c) 2015-2020 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package mpi_test

import (
	"testing"

	"github.com/cryptokit/core/mpi"
	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, s string, radix int) *mpi.Int {
	t.Helper()
	v, err := mpi.FromRadix(s, radix)
	require.NoErrorf(t, err, "parsing %q base %d", s, radix)
	return v
}

func TestAddSubRoundTrip(t *testing.T) {
	tests := []struct {
		a, b string
	}{
		{"0", "0"},
		{"1", "1"},
		{"123456789012345678901234567890", "2"},
		{"-5", "10"},
		{"340282366920938463463374607431768211456", "1"}, // 2^128
	}
	for _, tt := range tests {
		a := mustParse(t, tt.a, 10)
		b := mustParse(t, tt.b, 10)
		sum := mpi.New().Add(a, b)
		back := mpi.New().Sub(sum, b)
		if !back.Equals(a) {
			t.Fatalf("a+b-b != a for a=%s b=%s: got %s\n%s", tt.a, tt.b, back, spew.Sdump(back))
		}
	}
}

func TestCmpAndSign(t *testing.T) {
	a := mustParse(t, "100", 10)
	b := mustParse(t, "-100", 10)
	require.Equal(t, 1, a.Cmp(b))
	require.Equal(t, -1, b.Cmp(a))
	require.Equal(t, 0, a.Cmp(mustParse(t, "100", 10)))
	require.Equal(t, 1, a.Sign())
	require.Equal(t, -1, b.Sign())
	require.Equal(t, 0, mpi.New().Sign())
}

func TestZeroNormalization(t *testing.T) {
	z := mpi.New().Sub(mustParse(t, "5", 10), mustParse(t, "5", 10))
	require.True(t, z.Zero())
	require.False(t, z.IsNeg())
}

func TestCountBits(t *testing.T) {
	require.Equal(t, 0, mpi.New().CountBits())
	require.Equal(t, 1, mustParse(t, "1", 10).CountBits())
	require.Equal(t, 8, mustParse(t, "ff", 16).CountBits())
	require.Equal(t, 9, mustParse(t, "100", 16).CountBits())
}
