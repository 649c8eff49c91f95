// Copyright (c) 2015-2020 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rsa

import "crypto"

// Alg identifies a signature scheme: a hash algorithm plus the OID arc it
// is registered under, matching alg_firma[] in rsa.c. Several Algs share
// the same underlying hash because RSA signatures have accreted more than
// one OID per hash over the decades (the "digest", "WithRSAEncryption",
// and legacy "WithRSA"/"WithRSASignature" arcs).
type Alg int

const (
	MD2WithRSADigest Alg = iota
	MD4WithRSADigest
	MD5WithRSADigest
	SHA1WithRSADigest
	SHA224WithRSADigest
	SHA256WithRSADigest
	SHA384WithRSADigest
	SHA512WithRSADigest
	MD2WithRSAEncryption
	MD4WithRSAEncryption
	MD5WithRSAEncryption
	SHA1WithRSAEncryption
	SHA224WithRSAEncryption
	SHA256WithRSAEncryption
	SHA384WithRSAEncryption
	SHA512WithRSAEncryption
	MD4WithRSA
	MD5WithRSA
	MD2WithRSASignature
	MD5WithRSASignature
	SHA1WithRSASignature
)

// AlgEntry is one row of the signature algorithm registry.
type AlgEntry struct {
	Alg    Alg
	Hash   crypto.Hash
	OID    string
	Name   string
	DEROID []byte
}

var registry = []AlgEntry{
	{MD2WithRSADigest, crypto.MD2, "1.2.840.113549.2.2", "md2Digest",
		[]byte{0x06, 0x08, 0x2a, 0x86, 0x48, 0x86, 0xf7, 0x0d, 0x02, 0x02}},
	{MD4WithRSADigest, crypto.MD4, "1.2.840.113549.2.4", "md4Digest",
		[]byte{0x06, 0x08, 0x2a, 0x86, 0x48, 0x86, 0xf7, 0x0d, 0x02, 0x04}},
	{MD5WithRSADigest, crypto.MD5, "1.2.840.113549.2.5", "md5Digest",
		[]byte{0x06, 0x08, 0x2a, 0x86, 0x48, 0x86, 0xf7, 0x0d, 0x02, 0x05}},
	{SHA1WithRSADigest, crypto.SHA1, "1.3.14.3.2.26", "sha1Digest",
		[]byte{0x06, 0x05, 0x2b, 0x0e, 0x03, 0x02, 0x1a}},

	{SHA224WithRSADigest, crypto.SHA224, "2.16.840.1.101.3.4.2.4", "sha224Digest",
		[]byte{0x06, 0x09, 0x60, 0x86, 0x48, 0x01, 0x65, 0x03, 0x04, 0x02, 0x04}},
	{SHA256WithRSADigest, crypto.SHA256, "2.16.840.1.101.3.4.2.1", "sha256Digest",
		[]byte{0x06, 0x09, 0x60, 0x86, 0x48, 0x01, 0x65, 0x03, 0x04, 0x02, 0x01}},
	{SHA384WithRSADigest, crypto.SHA384, "2.16.840.1.101.3.4.2.2", "sha384Digest",
		[]byte{0x06, 0x09, 0x60, 0x86, 0x48, 0x01, 0x65, 0x03, 0x04, 0x02, 0x02}},
	{SHA512WithRSADigest, crypto.SHA512, "2.16.840.1.101.3.4.2.3", "sha512Digest",
		[]byte{0x06, 0x09, 0x60, 0x86, 0x48, 0x01, 0x65, 0x03, 0x04, 0x02, 0x03}},

	{MD2WithRSAEncryption, crypto.MD2, "1.2.840.113549.1.1.2", "md2WithRSAEncryption",
		[]byte{0x06, 0x09, 0x2a, 0x86, 0x48, 0x86, 0xf7, 0x0d, 0x01, 0x01, 0x02}},
	{MD4WithRSAEncryption, crypto.MD4, "1.2.840.113549.1.1.3", "md4WithRSAEncryption",
		[]byte{0x06, 0x09, 0x2a, 0x86, 0x48, 0x86, 0xf7, 0x0d, 0x01, 0x01, 0x03}},
	{MD5WithRSAEncryption, crypto.MD5, "1.2.840.113549.1.1.4", "md5WithRSAEncryption",
		[]byte{0x06, 0x09, 0x2a, 0x86, 0x48, 0x86, 0xf7, 0x0d, 0x01, 0x01, 0x04}},
	{SHA1WithRSAEncryption, crypto.SHA1, "1.2.840.113549.1.1.5", "sha1WithRSAEncryption",
		[]byte{0x06, 0x09, 0x2a, 0x86, 0x48, 0x86, 0xf7, 0x0d, 0x01, 0x01, 0x05}},

	{SHA224WithRSAEncryption, crypto.SHA224, "1.2.840.113549.1.1.14", "sha224WithRSAEncryption",
		[]byte{0x06, 0x09, 0x2a, 0x86, 0x48, 0x86, 0xf7, 0x0d, 0x01, 0x01, 0x0e}},
	{SHA256WithRSAEncryption, crypto.SHA256, "1.2.840.113549.1.1.11", "sha256WithRSAEncryption",
		[]byte{0x06, 0x09, 0x2a, 0x86, 0x48, 0x86, 0xf7, 0x0d, 0x01, 0x01, 0x0b}},
	{SHA384WithRSAEncryption, crypto.SHA384, "1.2.840.113549.1.1.12", "sha384WithRSAEncryption",
		[]byte{0x06, 0x09, 0x2a, 0x86, 0x48, 0x86, 0xf7, 0x0d, 0x01, 0x01, 0x0c}},
	{SHA512WithRSAEncryption, crypto.SHA512, "1.2.840.113549.1.1.13", "sha512WithRSAEncryption",
		[]byte{0x06, 0x09, 0x2a, 0x86, 0x48, 0x86, 0xf7, 0x0d, 0x01, 0x01, 0x0d}},

	{MD4WithRSA, crypto.MD4, "1.3.14.3.2.2", "md4WithRSA",
		[]byte{0x06, 0x05, 0x2b, 0x0e, 0x03, 0x02, 0x02}},
	{MD5WithRSA, crypto.MD5, "1.3.14.3.2.3", "md5WithRSA",
		[]byte{0x06, 0x05, 0x2b, 0x0e, 0x03, 0x02, 0x03}},

	{MD2WithRSASignature, crypto.MD2, "1.3.14.3.2.24", "md2WithRSASignature",
		[]byte{0x06, 0x05, 0x2b, 0x0e, 0x03, 0x02, 0x18}},
	{MD5WithRSASignature, crypto.MD5, "1.3.14.3.2.25", "md5WithRSASignature",
		[]byte{0x06, 0x05, 0x2b, 0x0e, 0x03, 0x02, 0x19}},
	{SHA1WithRSASignature, crypto.SHA1, "1.3.14.3.2.29", "sha1WithRSASignature",
		[]byte{0x06, 0x05, 0x2b, 0x0e, 0x03, 0x02, 0x1d}},
}

// ByAlg returns the registry entry for alg, or false if unknown.
func ByAlg(alg Alg) (AlgEntry, bool) {
	for _, e := range registry {
		if e.Alg == alg {
			return e, true
		}
	}
	return AlgEntry{}, false
}

// ByName returns the registry entry with the given display name, matching
// rsa_sign_alg_from_name.
func ByName(name string) (AlgEntry, bool) {
	for _, e := range registry {
		if e.Name == name {
			return e, true
		}
	}
	return AlgEntry{}, false
}

// ByOID returns the registry entry with the given dotted OID, matching
// rsa_sign_algorithm.
func ByOID(oid string) (AlgEntry, bool) {
	for _, e := range registry {
		if e.OID == oid {
			return e, true
		}
	}
	return AlgEntry{}, false
}

// ByDEROID returns the registry entry whose DER-encoded OID bytes match
// der, matching rsa_sign_algorithm_asn1.
func ByDEROID(der []byte) (AlgEntry, bool) {
	for _, e := range registry {
		if len(der) == len(e.DEROID) {
			match := true
			for i := range der {
				if der[i] != e.DEROID[i] {
					match = false
					break
				}
			}
			if match {
				return e, true
			}
		}
	}
	return AlgEntry{}, false
}
