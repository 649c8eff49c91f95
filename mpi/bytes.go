// Copyright (c) 2015-2020 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package mpi

// SetBytes interprets buf as an unsigned big-endian magnitude and sets z to
// it, per spec.md §4.1's set_bytes.
func (z *Int) SetBytes(buf []byte) *Int {
	n := len(buf)
	digits := make([]uint32, (n+3)/4)
	for i := 0; i < n; i++ {
		// buf is big-endian; digit 0 is the least-significant word, so we
		// walk buf from the end.
		b := buf[n-1-i]
		digits[i/4] |= uint32(b) << uint((i%4)*8)
	}
	z.digits = digits
	z.neg = false
	return z.clamp()
}

// Bytes returns the unsigned big-endian encoding of |z| with no leading
// zero bytes (the empty slice for zero is avoided: zero encodes as a
// single 0x00 byte, matching the byte_count semantics used elsewhere in
// this package).
func (z *Int) Bytes() []byte {
	nbytes := z.ByteLen()
	if nbytes == 0 {
		return []byte{0}
	}
	out := make([]byte, nbytes)
	for i := 0; i < nbytes; i++ {
		w := i / 4
		var d uint32
		if w < len(z.digits) {
			d = z.digits[w]
		}
		out[nbytes-1-i] = byte(d >> uint((i%4)*8))
	}
	return out
}

// CopyBytesExact returns the unsigned big-endian encoding of |z| left-padded
// with zeros, or left-truncated, to be exactly length bytes long, per
// spec.md's copy_exact_bytes.
func (z *Int) CopyBytesExact(length int) []byte {
	raw := z.Bytes()
	out := make([]byte, length)
	if len(raw) >= length {
		copy(out, raw[len(raw)-length:])
		return out
	}
	copy(out[length-len(raw):], raw)
	return out
}

// SetSignedBytes interprets buf as a sign-byte-prefixed big-endian encoding
// (a single 0x00 or 0x01 byte followed by the unsigned magnitude) and sets
// z to it.
func (z *Int) SetSignedBytes(buf []byte) (*Int, error) {
	if len(buf) == 0 {
		return nil, newError(ErrBadArgument, "mpi: empty signed byte buffer")
	}
	signByte := buf[0]
	z.SetBytes(buf[1:])
	switch signByte {
	case 0:
		z.neg = false
	case 1:
		z.neg = !z.Zero()
	default:
		return nil, newError(ErrBadArgument, "mpi: invalid sign byte")
	}
	return z, nil
}

// SignedBytes returns a one-byte sign prefix (0 for non-negative, 1 for
// negative) followed by the unsigned big-endian magnitude of z.
func (z *Int) SignedBytes() []byte {
	sign := byte(0)
	if z.neg {
		sign = 1
	}
	return append([]byte{sign}, z.Bytes()...)
}
