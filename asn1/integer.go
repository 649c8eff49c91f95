// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2015-2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package asn1

import "github.com/cryptokit/core/mpi"

// WriteInteger appends a DER INTEGER encoding n, matching signature.go's
// canonical-trim logic for R/S: a leading 0x00 is prepended only when the
// most significant byte would otherwise be read as a negative two's
// complement value.
func WriteInteger(dst []byte, n *mpi.Int) []byte {
	content := canonicalInteger(n.Bytes())
	return WriteElement(dst, TagInteger, content)
}

// canonicalInteger strips superfluous leading zero bytes from a
// big-endian unsigned value, keeping at most one -- and only when needed
// to stop the high bit of the next byte from being read as a sign bit --
// matching the canonR/canonS trimming loop in signature.go's Serialize.
func canonicalInteger(buf []byte) []byte {
	if len(buf) == 0 {
		return []byte{0}
	}
	if buf[0]&0x80 != 0 {
		out := make([]byte, len(buf)+1)
		copy(out[1:], buf)
		return out
	}
	for len(buf) > 1 && buf[0] == 0x00 && buf[1]&0x80 == 0 {
		buf = buf[1:]
	}
	return buf
}

// ReadInteger parses an INTEGER element's content into an mpi.Int,
// matching ParseDERSignature's rBytes/sBytes leading-zero-strip-then-set
// logic, generalized to arbitrary-length DER integers (RSA moduli and
// exponents routinely exceed 32 bytes).
func ReadInteger(el Element) (*mpi.Int, error) {
	if el.Tag != TagInteger {
		return nil, newError(ErrWrongTag, "element is not an INTEGER")
	}
	buf := el.Content
	if len(buf) == 0 {
		return nil, newError(ErrNegativeInteger, "integer has no content bytes")
	}
	if buf[0]&0x80 != 0 {
		return nil, newError(ErrNegativeInteger, "negative integers are not supported")
	}
	for len(buf) > 1 && buf[0] == 0x00 {
		buf = buf[1:]
	}
	return mpi.New().SetBytes(buf), nil
}
