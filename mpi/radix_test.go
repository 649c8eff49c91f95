// Copyright (c) 2015-2020 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package mpi_test

import (
	"testing"

	"github.com/cryptokit/core/mpi"
	"github.com/stretchr/testify/require"
)

func TestRadixRoundTrip(t *testing.T) {
	values := []string{"0", "1", "-1", "255", "-255", "123456789012345678901234567890"}
	for _, v := range values {
		for _, radix := range []int{2, 8, 10, 16, 36, 64} {
			a := mustParse(t, v, 10)
			s, err := a.ToRadix(radix)
			require.NoError(t, err)
			back, err := mpi.FromRadix(s, radix)
			require.NoErrorf(t, err, "radix %d roundtrip of %s -> %q", radix, v, s)
			require.Truef(t, back.Equals(a), "radix %d: %s -> %q -> %s", radix, v, s, back)
		}
	}
}

func TestFromRadixStopsAtFirstNonDigit(t *testing.T) {
	v, err := mpi.FromRadix("123abcxyz", 16)
	require.NoError(t, err)
	want := mustParse(t, "123abc", 16)
	require.True(t, v.Equals(want))
}

func TestFromRadixRejectsBadRadix(t *testing.T) {
	_, err := mpi.FromRadix("10", 1)
	require.Error(t, err)
	_, err = mpi.FromRadix("10", 65)
	require.Error(t, err)
}

func TestFromRadixRejectsEmpty(t *testing.T) {
	_, err := mpi.FromRadix("   ", 10)
	require.Error(t, err)
}

func TestToRadixZero(t *testing.T) {
	s, err := mpi.New().ToRadix(16)
	require.NoError(t, err)
	require.Equal(t, "0", s)
}
