// Copyright (c) 2015-2020 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package mpi_test

import (
	"testing"

	"github.com/cryptokit/core/mpi"
	"github.com/stretchr/testify/require"
)

func TestBytesRoundTrip(t *testing.T) {
	for _, v := range []string{"0", "1", "255", "256", "123456789012345678901234567890"} {
		a := mustParse(t, v, 10)
		buf := a.Bytes()
		back := mpi.New().SetBytes(buf)
		require.Truef(t, back.Equals(a), "%s -> %x -> %s", v, buf, back)
	}
}

func TestCopyBytesExactPadsAndTruncates(t *testing.T) {
	a := mustParse(t, "255", 10)
	padded := a.CopyBytesExact(4)
	require.Equal(t, []byte{0x00, 0x00, 0x00, 0xff}, padded)

	truncated := a.CopyBytesExact(1)
	require.Equal(t, []byte{0xff}, truncated)
}

func TestSignedBytesRoundTrip(t *testing.T) {
	for _, v := range []string{"0", "5", "-5", "123456789", "-123456789"} {
		a := mustParse(t, v, 10)
		buf := a.SignedBytes()
		back, err := mpi.New().SetSignedBytes(buf)
		require.NoError(t, err)
		require.Truef(t, back.Equals(a), "%s -> %x -> %s", v, buf, back)
	}
}

func TestSetSignedBytesRejectsEmpty(t *testing.T) {
	_, err := mpi.New().SetSignedBytes(nil)
	require.Error(t, err)
}

func TestSetSignedBytesRejectsBadSignByte(t *testing.T) {
	_, err := mpi.New().SetSignedBytes([]byte{2, 1})
	require.Error(t, err)
}
