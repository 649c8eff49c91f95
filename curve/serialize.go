// Copyright (c) 2015-2020 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package curve

import (
	"fmt"

	"github.com/cryptokit/core/mpi"
)

// EncodedSize returns the byte length of p's SEC1 encoding on c, matching
// ecc_curve_pub_size: Montgomery curves (X25519/X448) are always a bare
// X coordinate with no type byte; compressed Weierstrass points are a type
// byte plus X; uncompressed adds Y.
func EncodedSize(c *Curve, compressed bool) int {
	if c.Montgomery {
		return c.Bytes
	}
	if compressed {
		return 1 + c.Bytes
	}
	return 1 + 2*c.Bytes
}

// Marshal encodes p in SEC1 format (0x04 uncompressed, 0x02/0x03 compressed
// by the parity of Y), matching ecc_point_to_bytes. Montgomery curves write
// only the X coordinate, with no type byte.
func Marshal(c *Curve, p *Point, compressed bool) []byte {
	if c.Montgomery {
		return p.X.CopyBytesExact(c.Bytes)
	}

	out := make([]byte, 0, EncodedSize(c, compressed))
	if compressed {
		if p.Y.IsOdd() {
			out = append(out, 0x03)
		} else {
			out = append(out, 0x02)
		}
	} else {
		out = append(out, 0x04)
	}
	out = append(out, p.X.CopyBytesExact(c.Bytes)...)
	if !compressed {
		out = append(out, p.Y.CopyBytesExact(c.Bytes)...)
	}
	return out
}

// Unmarshal decodes a SEC1-encoded point on c, matching
// ecc_point_from_bytes. Montgomery curves expect a bare c.Bytes-length X
// coordinate; Weierstrass curves expect a leading 0x02/0x03/0x04 type byte,
// recovering Y via calcY for the compressed forms.
func Unmarshal(c *Curve, data []byte) (*Point, error) {
	if c.Montgomery {
		if len(data) < c.Bytes {
			return nil, fmt.Errorf("curve: short encoded point for %s", c.Name)
		}
		return &Point{X: mpi.New().SetBytes(data[:c.Bytes]), Y: mpi.New()}, nil
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("curve: empty encoded point")
	}

	var compressed, xOdd bool
	switch data[0] {
	case 0x04:
	case 0x03:
		xOdd = true
		compressed = true
	case 0x02:
		compressed = true
	default:
		return nil, fmt.Errorf("curve: unrecognized point type byte 0x%02x", data[0])
	}

	need := EncodedSize(c, compressed)
	if len(data) < need {
		return nil, fmt.Errorf("curve: short encoded point for %s", c.Name)
	}

	x := mpi.New().SetBytes(data[1 : 1+c.Bytes])
	var y *mpi.Int
	if compressed {
		y = calcY(c, x, xOdd)
	} else {
		y = mpi.New().SetBytes(data[1+c.Bytes : 1+2*c.Bytes])
	}
	return &Point{X: x, Y: y}, nil
}
