// Copyright (c) 2015-2020 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package pem

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/des"
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"hash"

	"github.com/cryptokit/core/asn1"
	"golang.org/x/crypto/pbkdf2"
)

// PBES1/PBKDF2/PBES2 OIDs, transcribed from pkcs5_lst in pem.c.
const (
	oidPBEMD2DES  = "1.2.840.113549.1.5.1"
	oidPBEMD5DES  = "1.2.840.113549.1.5.3"
	oidPBESHA1DES = "1.2.840.113549.1.5.10"
	oidPBKDF2     = "1.2.840.113549.1.5.12"
	oidPBES2      = "1.2.840.113549.1.5.13"

	oidHMACSHA1   = "1.2.840.113549.2.7"
	oidHMACSHA224 = "1.2.840.113549.2.8"
	oidHMACSHA256 = "1.2.840.113549.2.9"
	oidHMACSHA384 = "1.2.840.113549.2.10"
	oidHMACSHA512 = "1.2.840.113549.2.11"

	oidAES128CBC  = "2.16.840.1.101.3.4.1.2"
	oidAES192CBC  = "2.16.840.1.101.3.4.1.22"
	oidAES256CBC  = "2.16.840.1.101.3.4.1.42"
	oidDESEDE3CBC = "1.2.840.113549.3.7"
	oidDESCBC     = "1.3.14.3.2.7"
)

type schemeCipher struct {
	OID      string
	KeyLen   int
	IVLen    int
	NewBlock func(key []byte) (cipher.Block, error)
}

var pbes2Ciphers = []schemeCipher{
	{oidAES128CBC, 16, 16, aes.NewCipher},
	{oidAES192CBC, 24, 16, aes.NewCipher},
	{oidAES256CBC, 32, 16, aes.NewCipher},
	{oidDESEDE3CBC, 24, 8, des.NewTripleDESCipher},
	{oidDESCBC, 8, 8, des.NewCipher},
}

func findSchemeCipher(oid string) (schemeCipher, bool) {
	for _, c := range pbes2Ciphers {
		if c.OID == oid {
			return c, true
		}
	}
	return schemeCipher{}, false
}

func prfHash(oid string) func() hash.Hash {
	switch oid {
	case oidHMACSHA224:
		return sha256.New224
	case oidHMACSHA256:
		return sha256.New
	case oidHMACSHA384:
		return sha512.New384
	case oidHMACSHA512:
		return sha512.New
	default:
		return sha1.New
	}
}

// smallInt converts a DER INTEGER already known to fit in a machine int
// (iteration counts, key lengths) into one, matching asn1_to_uint's use in
// pem_decode_pkcs8.
func smallInt(el asn1.Element) (int, error) {
	n, err := asn1.ReadInteger(el)
	if err != nil {
		return 0, err
	}
	v := 0
	for _, b := range n.Bytes() {
		v = v<<8 | int(b)
	}
	return v, nil
}

// DecryptPKCS8 decrypts the EncryptedPrivateKeyInfo DER structure data
// (the body of an "ENCRYPTED PRIVATE KEY" PEM block) into its plain
// PrivateKeyInfo bytes, matching pem_decode_pkcs8. Both PBES1 (the
// MD2/MD5/SHA1-with-DES-CBC family, per RFC 2898 §6.2 -- this port derives
// key and IV from the PBKDF1 output per the RFC rather than mirroring
// pem_decode_pkcs8's literal DES-ECB/wrong-offset call, see DESIGN.md) and
// PBES2 (PBKDF2 plus an AES-CBC or DES-CBC encryption scheme, which
// pem_decode_pkcs8 parses but never actually decrypts -- completed here)
// are supported. pbeWithMD2AndDES-CBC is recognized but rejected, since no
// MD2 implementation is wired into this module.
func DecryptPKCS8(data []byte, password string) ([]byte, error) {
	el, _, err := asn1.ReadElement(data)
	if err != nil {
		return nil, err
	}
	if el.Tag != asn1.TagSequence {
		return nil, newError(ErrBadASN1, "EncryptedPrivateKeyInfo must be a SEQUENCE")
	}
	seq, err := asn1.ReadSequence(el.Content)
	if err != nil {
		return nil, err
	}
	if len(seq) != 2 {
		return nil, newError(ErrBadASN1, "EncryptedPrivateKeyInfo must have two fields")
	}

	algSeq, err := asn1.Expect(seq, 0, asn1.TagSequence)
	if err != nil {
		return nil, err
	}
	encEl, err := asn1.Expect(seq, 1, asn1.TagOctetString)
	if err != nil {
		return nil, err
	}
	encBytes, err := asn1.ReadOctetString(encEl)
	if err != nil {
		return nil, err
	}

	algChildren, err := asn1.ReadSequence(algSeq.Content)
	if err != nil || len(algChildren) < 1 {
		return nil, newError(ErrBadASN1, "malformed AlgorithmIdentifier")
	}
	oid, err := asn1.ReadOID(algChildren[0])
	if err != nil {
		return nil, err
	}

	switch oid {
	case oidPBEMD2DES, oidPBEMD5DES, oidPBESHA1DES:
		return decryptPBES1(oid, algChildren, encBytes, password)
	case oidPBES2:
		return decryptPBES2(algChildren, encBytes, password)
	default:
		return nil, newError(ErrUnsupportedPBE, "unrecognized PBE algorithm "+oid)
	}
}

func decryptPBES1(oid string, algChildren []asn1.Element, encBytes []byte, password string) ([]byte, error) {
	if oid == oidPBEMD2DES {
		return nil, newError(ErrUnsupportedPBE, "pbeWithMD2AndDES-CBC is not supported")
	}

	params, err := asn1.Expect(algChildren, 1, asn1.TagSequence)
	if err != nil {
		return nil, err
	}
	pp, err := asn1.ReadSequence(params.Content)
	if err != nil || len(pp) != 2 {
		return nil, newError(ErrBadASN1, "malformed PBEParameter")
	}
	saltEl, err := asn1.Expect(pp, 0, asn1.TagOctetString)
	if err != nil {
		return nil, err
	}
	salt, err := asn1.ReadOctetString(saltEl)
	if err != nil {
		return nil, err
	}
	iterEl, err := asn1.Expect(pp, 1, asn1.TagInteger)
	if err != nil {
		return nil, err
	}
	iterations, err := smallInt(iterEl)
	if err != nil || iterations < 1 {
		return nil, newError(ErrBadASN1, "malformed iteration count")
	}

	var newHash func() hash.Hash
	if oid == oidPBEMD5DES {
		newHash = md5.New
	} else {
		newHash = sha1.New
	}

	h := newHash()
	h.Write([]byte(password))
	h.Write(salt)
	dk := h.Sum(nil)
	for i := 1; i < iterations; i++ {
		h = newHash()
		h.Write(dk)
		dk = h.Sum(nil)
	}
	if len(dk) < 16 {
		return nil, newError(ErrBadASN1, "PBKDF1 output too short")
	}

	key, iv := dk[:8], dk[8:16]
	blk, err := des.NewCipher(key)
	if err != nil {
		return nil, err
	}
	if len(encBytes)%blk.BlockSize() != 0 {
		return nil, newError(ErrBadASN1, "ciphertext is not a multiple of the block size")
	}

	out := make([]byte, len(encBytes))
	cipher.NewCBCDecrypter(blk, iv).CryptBlocks(out, encBytes)
	return pkcs7Unpad(out, blk.BlockSize())
}

func decryptPBES2(algChildren []asn1.Element, encBytes []byte, password string) ([]byte, error) {
	params, err := asn1.Expect(algChildren, 1, asn1.TagSequence)
	if err != nil {
		return nil, err
	}
	pp, err := asn1.ReadSequence(params.Content)
	if err != nil || len(pp) != 2 {
		return nil, newError(ErrBadASN1, "malformed PBES2-params")
	}
	kdfSeq, err := asn1.Expect(pp, 0, asn1.TagSequence)
	if err != nil {
		return nil, err
	}
	encSeq, err := asn1.Expect(pp, 1, asn1.TagSequence)
	if err != nil {
		return nil, err
	}

	kdfChildren, err := asn1.ReadSequence(kdfSeq.Content)
	if err != nil || len(kdfChildren) < 2 {
		return nil, newError(ErrBadASN1, "malformed keyDerivationFunc")
	}
	kdfOID, err := asn1.ReadOID(kdfChildren[0])
	if err != nil {
		return nil, err
	}
	if kdfOID != oidPBKDF2 {
		return nil, newError(ErrUnsupportedPBE, "PBES2 keyDerivationFunc must be PBKDF2")
	}

	kdfParamsEl, err := asn1.Expect(kdfChildren, 1, asn1.TagSequence)
	if err != nil {
		return nil, err
	}
	kp, err := asn1.ReadSequence(kdfParamsEl.Content)
	if err != nil || len(kp) < 2 {
		return nil, newError(ErrBadASN1, "malformed PBKDF2-params")
	}
	saltEl, err := asn1.Expect(kp, 0, asn1.TagOctetString)
	if err != nil {
		return nil, err
	}
	salt, err := asn1.ReadOctetString(saltEl)
	if err != nil {
		return nil, err
	}
	iterEl, err := asn1.Expect(kp, 1, asn1.TagInteger)
	if err != nil {
		return nil, err
	}
	iterations, err := smallInt(iterEl)
	if err != nil || iterations < 1 {
		return nil, newError(ErrBadASN1, "malformed iteration count")
	}

	var keyLenOverride int
	prfOID := oidHMACSHA1
	for _, el := range kp[2:] {
		switch el.Tag {
		case asn1.TagInteger:
			n, err := smallInt(el)
			if err == nil {
				keyLenOverride = n
			}
		case asn1.TagSequence:
			children, err := asn1.ReadSequence(el.Content)
			if err == nil && len(children) > 0 {
				if o, err := asn1.ReadOID(children[0]); err == nil {
					prfOID = o
				}
			}
		}
	}

	encChildren, err := asn1.ReadSequence(encSeq.Content)
	if err != nil || len(encChildren) < 2 {
		return nil, newError(ErrBadASN1, "malformed encryptionScheme")
	}
	encOID, err := asn1.ReadOID(encChildren[0])
	if err != nil {
		return nil, err
	}
	entry, ok := findSchemeCipher(encOID)
	if !ok {
		return nil, newError(ErrUnknownCipher, "unrecognized PBES2 encryptionScheme "+encOID)
	}
	ivEl, err := asn1.Expect(encChildren, 1, asn1.TagOctetString)
	if err != nil {
		return nil, err
	}
	iv, err := asn1.ReadOctetString(ivEl)
	if err != nil || len(iv) != entry.IVLen {
		return nil, newError(ErrBadIV, "malformed or wrong-length IV")
	}

	keyLen := entry.KeyLen
	if keyLenOverride > 0 {
		keyLen = keyLenOverride
	}
	key := pbkdf2.Key([]byte(password), salt, iterations, keyLen, prfHash(prfOID))

	blk, err := entry.NewBlock(key)
	if err != nil {
		return nil, err
	}
	if len(encBytes)%blk.BlockSize() != 0 {
		return nil, newError(ErrBadASN1, "ciphertext is not a multiple of the block size")
	}

	out := make([]byte, len(encBytes))
	cipher.NewCBCDecrypter(blk, iv).CryptBlocks(out, encBytes)
	return pkcs7Unpad(out, blk.BlockSize())
}
