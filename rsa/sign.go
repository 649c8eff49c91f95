// Copyright (c) 2015-2020 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rsa

import "bytes"

const (
	asn1Seq   = 0x30
	asn1Null  = 0x05
	asn1Bytes = 0x04
)

// digestInfo builds the DigestInfo structure a signature encrypts, a
// fixed, two-level ASN.1 SEQUENCE:
//
//	SEQUENCE {
//	    SEQUENCE { OID algorithm, NULL }
//	    OCTET STRING hash
//	}
//
// matching the hand-assembled byte layout in rsa_sign -- this package
// builds it directly rather than through a general ASN.1 writer, the same
// way the source does for this one fixed shape. oidElement is a complete
// DER OID element (tag, length, content), e.g. an AlgEntry.DEROID value.
func digestInfo(oidElement []byte, hash []byte) []byte {
	algSeqLen := len(oidElement) + 2 // OID element + NULL tag/length
	total := 2 + algSeqLen + 2 + len(hash)

	out := make([]byte, 0, total)
	out = append(out, asn1Seq, byte(total-2))
	out = append(out, asn1Seq, byte(algSeqLen))
	out = append(out, oidElement...)
	out = append(out, asn1Null, 0)
	out = append(out, asn1Bytes, byte(len(hash)))
	out = append(out, hash...)
	return out
}

// Sign produces a PKCS#1 v1.5 signature over a precomputed hash using
// key's private exponent, matching rsa_sign: the DigestInfo block is
// padded with RSA_PAD_ONES (PKCS#1 block type 1) and raised to the
// private exponent through the blinding path.
func Sign(key *Key, alg Alg, hash []byte) ([]byte, error) {
	if !key.HasPrivate() {
		return nil, newError(ErrNoPrivateKey, "signing requires a private exponent")
	}
	entry, ok := ByAlg(alg)
	if !ok {
		return nil, newError(ErrUnknownHash, "unrecognized signature algorithm")
	}

	info := digestInfo(entry.DEROID, hash)
	if len(info) > key.MaxData() {
		return nil, newError(ErrSignatureSize, "digest info does not fit in one block")
	}

	return Encode(key, info, false, PadOnes, nil)
}

// Verify decrypts a PKCS#1 v1.5 signature with key's public exponent and
// reports whether the recovered DigestInfo equals the one built from alg
// and hash, matching rsa_read_sign followed by the comparison that
// rsa_check_sign folds in. A mismatch returns false with a nil error; a
// signature that fails to decode returns the decoding error.
func Verify(key *Key, alg Alg, hash []byte, signature []byte) (bool, error) {
	entry, ok := ByAlg(alg)
	if !ok {
		return false, newError(ErrUnknownHash, "unrecognized signature algorithm")
	}

	info, err := Decode(key, signature, true, PadOnes)
	if err != nil {
		return false, err
	}

	want := digestInfo(entry.DEROID, hash)
	return bytes.Equal(info, want), nil
}
