// Copyright (c) 2015-2020 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package pem

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/des"
	"crypto/md5"
	"crypto/rand"
	"encoding/hex"
	"io"
	"strings"
)

type legacyCipher struct {
	Name     string
	KeyLen   int
	IVLen    int
	NewBlock func(key []byte) (cipher.Block, error)
}

// legacyCiphers lists the DEK-Info algorithm names pem.c's cipher_alg_from_name
// recognizes for the crypt path: AES-CBC at all three key sizes, plus the
// legacy DES-CBC/DES-EDE3-CBC pair OpenSSL still emits.
var legacyCiphers = []legacyCipher{
	{"AES-128-CBC", 16, 16, aes.NewCipher},
	{"AES-192-CBC", 24, 16, aes.NewCipher},
	{"AES-256-CBC", 32, 16, aes.NewCipher},
	{"DES-CBC", 8, 8, des.NewCipher},
	{"DES-EDE3-CBC", 24, 8, des.NewTripleDESCipher},
}

func findLegacyCipher(name string) (legacyCipher, bool) {
	for _, c := range legacyCiphers {
		if c.Name == name {
			return c, true
		}
	}
	return legacyCipher{}, false
}

// legacyKeyIV derives a key of keyLen bytes from password and the first 8
// bytes of iv via two rounds of MD5, matching pem_decode_element's
// keyiv[0:16] = MD5(password||iv[0:8]) and keyiv[16:32] =
// MD5(keyiv[0:16]||password||iv[0:8]).
func legacyKeyIV(password string, iv []byte, keyLen int) []byte {
	salt := iv
	if len(salt) > 8 {
		salt = salt[:8]
	}

	h1 := md5.New()
	h1.Write([]byte(password))
	h1.Write(salt)
	k1 := h1.Sum(nil)
	if keyLen <= len(k1) {
		return k1[:keyLen]
	}

	h2 := md5.New()
	h2.Write(k1)
	h2.Write([]byte(password))
	h2.Write(salt)
	k2 := h2.Sum(nil)

	full := append(k1, k2...)
	return full[:keyLen]
}

func pkcs7Pad(data []byte, blockSize int) []byte {
	pad := blockSize - len(data)%blockSize
	out := make([]byte, len(data)+pad)
	copy(out, data)
	for i := len(data); i < len(out); i++ {
		out[i] = byte(pad)
	}
	return out
}

func pkcs7Unpad(data []byte, blockSize int) ([]byte, error) {
	if len(data) == 0 || len(data)%blockSize != 0 {
		return nil, newError(ErrBadHeader, "ciphertext is not a multiple of the block size")
	}
	pad := int(data[len(data)-1])
	if pad == 0 || pad > blockSize || pad > len(data) {
		return nil, newError(ErrBadHeader, "invalid padding")
	}
	for _, b := range data[len(data)-pad:] {
		if int(b) != pad {
			return nil, newError(ErrBadHeader, "invalid padding")
		}
	}
	return data[:len(data)-pad], nil
}

// DecryptLegacy reverses the legacy "Proc-Type: 4,ENCRYPTED" / "DEK-Info:
// <alg>,<hex-iv>" scheme, matching pem_decode_element's crypt branch: the
// DEK-Info header names the cipher and carries its IV in hex, the key is
// derived from password via legacyKeyIV, and the body is CBC-decrypted and
// unpadded.
func DecryptLegacy(block *Block, password string) ([]byte, error) {
	if password == "" {
		return nil, newError(ErrMissingPassword, "a password is required to decrypt this element")
	}

	dekInfo, ok := block.Header("DEK-Info")
	if !ok {
		return nil, newError(ErrBadHeader, "missing DEK-Info header")
	}
	parts := strings.SplitN(dekInfo, ",", 2)
	if len(parts) != 2 {
		return nil, newError(ErrBadHeader, "malformed DEK-Info header")
	}

	algName := strings.TrimSpace(parts[0])
	entry, ok := findLegacyCipher(algName)
	if !ok {
		return nil, newError(ErrUnknownCipher, "unrecognized DEK-Info cipher "+algName)
	}

	iv, err := hex.DecodeString(strings.TrimSpace(parts[1]))
	if err != nil || len(iv) != entry.IVLen {
		return nil, newError(ErrBadIV, "malformed or wrong-length IV")
	}

	key := legacyKeyIV(password, iv, entry.KeyLen)
	blk, err := entry.NewBlock(key)
	if err != nil {
		return nil, newError(ErrUnknownCipher, err.Error())
	}
	if len(block.Bytes)%blk.BlockSize() != 0 {
		return nil, newError(ErrBadHeader, "ciphertext is not a multiple of the block size")
	}

	out := make([]byte, len(block.Bytes))
	cipher.NewCBCDecrypter(blk, iv).CryptBlocks(out, block.Bytes)
	return pkcs7Unpad(out, blk.BlockSize())
}

// EncryptLegacyPEM encodes data as a legacy DEK-Info-encrypted PEM element,
// the write-side counterpart of DecryptLegacy, matching pem_encode_data and
// pem_save_element. Only the AES-CBC family is supported: any other name,
// including DES-CBC and DES-EDE3-CBC (which remain decrypt-only), is
// rejected with ErrUnknownCipher.
func EncryptLegacyPEM(label string, data []byte, password string, algName string) ([]byte, error) {
	entry, ok := findLegacyCipher(algName)
	if !ok || !strings.HasPrefix(entry.Name, "AES-") {
		return nil, newError(ErrUnknownCipher, "EncryptLegacyPEM only supports the AES-CBC family")
	}

	iv := make([]byte, entry.IVLen)
	if _, err := io.ReadFull(rand.Reader, iv); err != nil {
		return nil, err
	}

	key := legacyKeyIV(password, iv, entry.KeyLen)
	blk, err := entry.NewBlock(key)
	if err != nil {
		return nil, err
	}

	padded := pkcs7Pad(data, blk.BlockSize())
	out := make([]byte, len(padded))
	cipher.NewCBCEncrypter(blk, iv).CryptBlocks(out, padded)

	headers := []Header{
		{Key: "Proc-Type", Value: "4,ENCRYPTED"},
		{Key: "DEK-Info", Value: entry.Name + "," + strings.ToUpper(hex.EncodeToString(iv))},
	}
	return Encode(label, headers, out), nil
}
