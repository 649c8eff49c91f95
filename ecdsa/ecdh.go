// Copyright (c) 2015 The btcsuite developers
// Copyright (c) 2015-2023 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ecdsa

import "github.com/cryptokit/core/curve"

// ECDH computes the shared secret for local's private scalar and remote's
// public point, matching spec.md §4.6: "Local draws d; sends public dG.
// Shared = d * peer_public; the x-coordinate is the output." RFC 5903 §9
// recommends hashing the result before use as a symmetric key; that step
// is left to the caller.
func ECDH(local *Key, remote *curve.Point) ([]byte, error) {
	if !local.HasPrivate() {
		return nil, newError(ErrNoPrivateKey, "ecdsa: local key has no private scalar")
	}
	c := local.Curve

	shared, err := scalarMult(c, local.Private, remote)
	if err != nil {
		return nil, err
	}
	return shared.X.CopyBytesExact(c.Bytes), nil
}
