// Copyright (c) 2015-2020 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package asn1

// WriteNull appends a DER NULL element, matching the `05 00` pair the
// AlgorithmIdentifier of an RSA/ECDSA signature OID is always followed by.
func WriteNull(dst []byte) []byte {
	return WriteElement(dst, TagNull, nil)
}

// WriteOctetString appends a DER OCTET STRING wrapping data.
func WriteOctetString(dst []byte, data []byte) []byte {
	return WriteElement(dst, TagOctetString, data)
}

// ReadOctetString returns an OCTET STRING element's raw bytes.
func ReadOctetString(el Element) ([]byte, error) {
	if el.Tag != TagOctetString {
		return nil, newError(ErrWrongTag, "element is not an OCTET STRING")
	}
	return el.Content, nil
}

// WriteBitString appends a DER BIT STRING wrapping data with zero unused
// trailing bits, the form used for public-key material (SubjectPublicKeyInfo
// and the raw encoded curve point it carries).
func WriteBitString(dst []byte, data []byte) []byte {
	content := make([]byte, 1+len(data))
	content[0] = 0
	copy(content[1:], data)
	return WriteElement(dst, TagBitString, content)
}

// ReadBitString returns a BIT STRING element's payload, stripping the
// leading unused-bits-count byte. Only the all-bytes-used case (count 0)
// is supported -- the only form ECC/RSA key material produces.
func ReadBitString(el Element) ([]byte, error) {
	if el.Tag != TagBitString {
		return nil, newError(ErrWrongTag, "element is not a BIT STRING")
	}
	if len(el.Content) == 0 {
		return nil, newError(ErrTruncated, "BIT STRING has no content bytes")
	}
	if el.Content[0] != 0 {
		return nil, newError(ErrUnknownLength, "BIT STRING with unused trailing bits is not supported")
	}
	return el.Content[1:], nil
}

// WriteContext appends a context-specific constructed tag (e.g. the
// [0] EXPLICIT wrapper PKCS#8's optional attributes/parameters use),
// wrapping the concatenation of children.
func WriteContext(dst []byte, tag byte, children ...[]byte) []byte {
	var body []byte
	for _, c := range children {
		body = append(body, c...)
	}
	return WriteElement(dst, tag, body)
}
