// Copyright (c) 2015-2020 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package pem

import (
	"github.com/cryptokit/core/asn1"
	"github.com/cryptokit/core/curve"
	"github.com/cryptokit/core/ecdsa"
	"github.com/cryptokit/core/mpi"
	"github.com/cryptokit/core/rsa"
)

const (
	oidRSAEncryption = "1.2.840.113549.1.1.1"
	oidECPublicKey   = "1.2.840.10045.2.1"
)

// EncodeRSAPrivateKeyDER encodes key as a bare PKCS#1 RSAPrivateKey
// SEQUENCE, the body of a "RSA PRIVATE KEY" PEM block.
func EncodeRSAPrivateKeyDER(key *rsa.Key) ([]byte, error) {
	if !key.HasPrivate() {
		return nil, newError(ErrKeyMismatch, "RSAPrivateKey requires a private exponent")
	}

	pMinus1 := mpi.New().SubInt64(key.P, 1)
	qMinus1 := mpi.New().SubInt64(key.Q, 1)
	dP, dQ := mpi.New(), mpi.New()
	if err := dP.Mod(key.PrivateExponent, pMinus1); err != nil {
		return nil, err
	}
	if err := dQ.Mod(key.PrivateExponent, qMinus1); err != nil {
		return nil, err
	}

	var version, modulus, exponent, priv, p, q, exp1, exp2, coeff []byte
	version = asn1.WriteInteger(version, mpi.New().SetInt64(0))
	modulus = asn1.WriteInteger(modulus, key.Modulus)
	exponent = asn1.WriteInteger(exponent, key.Exponent)
	priv = asn1.WriteInteger(priv, key.PrivateExponent)
	p = asn1.WriteInteger(p, key.P)
	q = asn1.WriteInteger(q, key.Q)
	exp1 = asn1.WriteInteger(exp1, dP)
	exp2 = asn1.WriteInteger(exp2, dQ)
	coeff = asn1.WriteInteger(coeff, key.IQMP)

	var out []byte
	out = asn1.WriteSequence(out, version, modulus, exponent, priv, p, q, exp1, exp2, coeff)
	return out, nil
}

// DecodeRSAPrivateKeyDER parses a bare PKCS#1 RSAPrivateKey SEQUENCE.
func DecodeRSAPrivateKeyDER(der []byte) (*rsa.Key, error) {
	el, _, err := asn1.ReadElement(der)
	if err != nil {
		return nil, err
	}
	seq, err := asn1.ReadSequence(el.Content)
	if err != nil {
		return nil, err
	}
	if len(seq) < 9 {
		return nil, newError(ErrBadASN1, "RSAPrivateKey must have at least 9 fields")
	}

	modulus, err := asn1.ReadInteger(seq[1])
	if err != nil {
		return nil, err
	}
	exponent, err := asn1.ReadInteger(seq[2])
	if err != nil {
		return nil, err
	}
	priv, err := asn1.ReadInteger(seq[3])
	if err != nil {
		return nil, err
	}
	p, err := asn1.ReadInteger(seq[4])
	if err != nil {
		return nil, err
	}
	q, err := asn1.ReadInteger(seq[5])
	if err != nil {
		return nil, err
	}
	coeff, err := asn1.ReadInteger(seq[8])
	if err != nil {
		return nil, err
	}

	key := rsa.FromComponents(modulus.CountBits(), modulus, exponent, priv)
	key.P, key.Q, key.IQMP = p, q, coeff
	if !key.VerifyKeys() {
		return nil, newError(ErrKeyMismatch, "RSAPrivateKey fields are not internally consistent")
	}
	return key, nil
}

// rsaPublicKeyDER encodes the bare RSAPublicKey SEQUENCE { modulus,
// publicExponent } that sits inside a SubjectPublicKeyInfo BIT STRING.
func rsaPublicKeyDER(key *rsa.Key) []byte {
	var modulus, exponent []byte
	modulus = asn1.WriteInteger(modulus, key.Modulus)
	exponent = asn1.WriteInteger(exponent, key.Exponent)
	var out []byte
	return asn1.WriteSequence(out, modulus, exponent)
}

func decodeRSAPublicKeyDER(der []byte) (*rsa.Key, error) {
	el, _, err := asn1.ReadElement(der)
	if err != nil {
		return nil, err
	}
	seq, err := asn1.ReadSequence(el.Content)
	if err != nil || len(seq) != 2 {
		return nil, newError(ErrBadASN1, "RSAPublicKey must have two fields")
	}
	modulus, err := asn1.ReadInteger(seq[0])
	if err != nil {
		return nil, err
	}
	exponent, err := asn1.ReadInteger(seq[1])
	if err != nil {
		return nil, err
	}
	return rsa.FromComponents(modulus.CountBits(), modulus, exponent, nil), nil
}

// encodePoint serializes a curve point, using SEC1's uncompressed 04||X||Y
// form for Weierstrass curves and RFC 7748's raw little-endian u-coordinate
// for the Montgomery curves.
func encodePoint(c *curve.Curve, p *curve.Point) []byte {
	if c.Montgomery {
		return scalarToLE(c, p.X)
	}
	out := make([]byte, 1+2*c.Bytes)
	out[0] = 0x04
	copy(out[1:1+c.Bytes], p.X.CopyBytesExact(c.Bytes))
	copy(out[1+c.Bytes:], p.Y.CopyBytesExact(c.Bytes))
	return out
}

func decodePoint(c *curve.Curve, buf []byte) (*curve.Point, error) {
	if c.Montgomery {
		if len(buf) != c.Bytes {
			return nil, newError(ErrBadASN1, "wrong-length Montgomery public key")
		}
		return &curve.Point{X: leToScalarPub(buf), Y: mpi.New()}, nil
	}
	if len(buf) != 1+2*c.Bytes || buf[0] != 0x04 {
		return nil, newError(ErrBadASN1, "only uncompressed EC points are supported")
	}
	x := mpi.New().SetBytes(buf[1 : 1+c.Bytes])
	y := mpi.New().SetBytes(buf[1+c.Bytes:])
	return &curve.Point{X: x, Y: y}, nil
}

// scalarToLE and leToScalarPub mirror ecdsa's unexported big-endian <->
// little-endian helpers for the Montgomery curves' byte convention.
func scalarToLE(c *curve.Curve, n *mpi.Int) []byte {
	buf := n.CopyBytesExact(c.Bytes)
	out := make([]byte, len(buf))
	for i, b := range buf {
		out[len(buf)-1-i] = b
	}
	return out
}

func leToScalarPub(buf []byte) *mpi.Int {
	out := make([]byte, len(buf))
	for i, b := range buf {
		out[len(buf)-1-i] = b
	}
	return mpi.New().SetBytes(out)
}

// EncodeSubjectPublicKeyInfo encodes an RSA or ECC public key (key must be
// *rsa.Key or *ecdsa.Key) as a PKCS#8/X.509 SubjectPublicKeyInfo SEQUENCE,
// the body of a "PUBLIC KEY" PEM block.
func EncodeSubjectPublicKeyInfo(key interface{}) ([]byte, error) {
	var alg, bits []byte
	switch k := key.(type) {
	case *rsa.Key:
		var oid, null []byte
		oid = asn1.WriteOID(oid, oidRSAEncryption)
		null = asn1.WriteNull(null)
		alg = asn1.WriteSequence(alg, oid, null)
		bits = asn1.WriteBitString(bits, rsaPublicKeyDER(k))
	case *ecdsa.Key:
		var oid, params []byte
		oid = asn1.WriteOID(oid, oidECPublicKey)
		params = asn1.WriteOID(params, k.Curve.OID)
		alg = asn1.WriteSequence(alg, oid, params)
		bits = asn1.WriteBitString(bits, encodePoint(k.Curve, k.Public))
	default:
		return nil, newError(ErrKeyMismatch, "unsupported public key type")
	}

	var out []byte
	return asn1.WriteSequence(out, alg, bits), nil
}

// DecodeSubjectPublicKeyInfo parses a SubjectPublicKeyInfo SEQUENCE,
// returning a *rsa.Key or *ecdsa.Key depending on the algorithm OID.
func DecodeSubjectPublicKeyInfo(der []byte) (interface{}, error) {
	el, _, err := asn1.ReadElement(der)
	if err != nil {
		return nil, err
	}
	seq, err := asn1.ReadSequence(el.Content)
	if err != nil || len(seq) != 2 {
		return nil, newError(ErrBadASN1, "SubjectPublicKeyInfo must have two fields")
	}
	algSeq, err := asn1.Expect(seq, 0, asn1.TagSequence)
	if err != nil {
		return nil, err
	}
	bitsEl, err := asn1.Expect(seq, 1, asn1.TagBitString)
	if err != nil {
		return nil, err
	}
	keyBytes, err := asn1.ReadBitString(bitsEl)
	if err != nil {
		return nil, err
	}

	algChildren, err := asn1.ReadSequence(algSeq.Content)
	if err != nil || len(algChildren) < 2 {
		return nil, newError(ErrBadASN1, "malformed AlgorithmIdentifier")
	}
	oid, err := asn1.ReadOID(algChildren[0])
	if err != nil {
		return nil, err
	}

	switch oid {
	case oidRSAEncryption:
		return decodeRSAPublicKeyDER(keyBytes)
	case oidECPublicKey:
		curveOID, err := asn1.ReadOID(algChildren[1])
		if err != nil {
			return nil, err
		}
		c := curve.ByOID(curveOID)
		if c == nil {
			return nil, newError(ErrBadASN1, "unrecognized curve OID "+curveOID)
		}
		p, err := decodePoint(c, keyBytes)
		if err != nil {
			return nil, err
		}
		return &ecdsa.Key{Curve: c, Public: p}, nil
	default:
		return nil, newError(ErrUnsupportedPBE, "unrecognized public key algorithm "+oid)
	}
}

// EncodeECPrivateKeyDER encodes key as a SEC1 ECPrivateKey SEQUENCE (the
// body of an "EC PRIVATE KEY" PEM block), including the optional [1]
// publicKey field. Montgomery curves use RFC 8410's simpler
// CurvePrivateKey shape instead, since SEC1 only describes Weierstrass
// curves.
func EncodeECPrivateKeyDER(key *ecdsa.Key) ([]byte, error) {
	if !key.HasPrivate() {
		return nil, newError(ErrKeyMismatch, "EC private key requires a private scalar")
	}
	if key.Curve.Montgomery {
		var inner []byte
		inner = asn1.WriteOctetString(inner, scalarToLE(key.Curve, key.Private))
		return inner, nil
	}

	var version, privKey, pub []byte
	version = asn1.WriteInteger(version, mpi.New().SetInt64(1))
	privKey = asn1.WriteOctetString(privKey, key.Private.CopyBytesExact(key.Curve.Bytes))
	pub = asn1.WriteContext(pub, asn1.TagContext1, asn1.WriteBitString(nil, encodePoint(key.Curve, key.Public)))

	var out []byte
	return asn1.WriteSequence(out, version, privKey, pub), nil
}

// DecodeECPrivateKeyDER parses a SEC1 ECPrivateKey SEQUENCE for the given
// curve (known from the enclosing PKCS#8 AlgorithmIdentifier, or passed
// explicitly for a bare "EC PRIVATE KEY" block), re-deriving the public
// point from the private scalar and cross-checking it against any
// embedded [1] publicKey field, matching rsa_verify_keys's spirit of
// catching a corrupted or mismatched key file.
func DecodeECPrivateKeyDER(der []byte, c *curve.Curve) (*ecdsa.Key, error) {
	el, _, err := asn1.ReadElement(der)
	if err != nil {
		return nil, err
	}
	seq, err := asn1.ReadSequence(el.Content)
	if err != nil || len(seq) < 2 {
		return nil, newError(ErrBadASN1, "ECPrivateKey must have at least two fields")
	}
	privEl, err := asn1.Expect(seq, 1, asn1.TagOctetString)
	if err != nil {
		return nil, err
	}
	privBytes, err := asn1.ReadOctetString(privEl)
	if err != nil {
		return nil, err
	}

	d := mpi.New().SetBytes(privBytes)
	pub, err := ecdsa.DerivePublic(c, d)
	if err != nil {
		return nil, err
	}

	for _, el := range seq[2:] {
		if el.Tag != asn1.TagContext1 {
			continue
		}
		inner, _, err := asn1.ReadElement(el.Content)
		if err != nil || inner.Tag != asn1.TagBitString {
			continue
		}
		embedded, err := asn1.ReadBitString(inner)
		if err != nil {
			continue
		}
		got, err := decodePoint(c, embedded)
		if err != nil {
			continue
		}
		if !got.Equal(pub) {
			return nil, newError(ErrKeyMismatch, "embedded public key does not match the private scalar")
		}
	}

	return &ecdsa.Key{Curve: c, Private: d, Public: pub}, nil
}

// decodeCurvePrivateKeyDER parses RFC 8410's CurvePrivateKey shape (a bare
// OCTET STRING wrapping the raw little-endian scalar) used for X25519/X448
// inside PKCS#8, and re-derives the public point.
func decodeCurvePrivateKeyDER(der []byte, c *curve.Curve) (*ecdsa.Key, error) {
	el, _, err := asn1.ReadElement(der)
	if err != nil {
		return nil, err
	}
	raw, err := asn1.ReadOctetString(el)
	if err != nil {
		return nil, err
	}
	d := leToScalarPub(raw)
	pub, err := ecdsa.DerivePublic(c, d)
	if err != nil {
		return nil, err
	}
	return &ecdsa.Key{Curve: c, Private: d, Public: pub}, nil
}

// EncodePKCS8PrivateKey wraps key (*rsa.Key or *ecdsa.Key) in a PKCS#8
// PrivateKeyInfo SEQUENCE, the body of a "PRIVATE KEY" PEM block.
func EncodePKCS8PrivateKey(key interface{}) ([]byte, error) {
	var alg, privDER []byte
	var err error

	switch k := key.(type) {
	case *rsa.Key:
		var oid, null []byte
		oid = asn1.WriteOID(oid, oidRSAEncryption)
		null = asn1.WriteNull(null)
		alg = asn1.WriteSequence(alg, oid, null)
		privDER, err = EncodeRSAPrivateKeyDER(k)
		if err != nil {
			return nil, err
		}
	case *ecdsa.Key:
		if k.Curve.Montgomery {
			var oid []byte
			oid = asn1.WriteOID(oid, k.Curve.OID)
			alg = asn1.WriteSequence(alg, oid)
		} else {
			var oid, params []byte
			oid = asn1.WriteOID(oid, oidECPublicKey)
			params = asn1.WriteOID(params, k.Curve.OID)
			alg = asn1.WriteSequence(alg, oid, params)
		}
		privDER, err = EncodeECPrivateKeyDER(k)
		if err != nil {
			return nil, err
		}
	default:
		return nil, newError(ErrKeyMismatch, "unsupported private key type")
	}

	var version, privKey []byte
	version = asn1.WriteInteger(version, mpi.New().SetInt64(0))
	privKey = asn1.WriteOctetString(privKey, privDER)

	var out []byte
	return asn1.WriteSequence(out, version, alg, privKey), nil
}

// DecodePKCS8PrivateKey parses a PrivateKeyInfo SEQUENCE (optionally
// decrypted first via DecryptPKCS8), returning a *rsa.Key or *ecdsa.Key.
func DecodePKCS8PrivateKey(der []byte) (interface{}, error) {
	el, _, err := asn1.ReadElement(der)
	if err != nil {
		return nil, err
	}
	seq, err := asn1.ReadSequence(el.Content)
	if err != nil || len(seq) < 3 {
		return nil, newError(ErrBadASN1, "PrivateKeyInfo must have at least 3 fields")
	}
	algSeq, err := asn1.Expect(seq, 1, asn1.TagSequence)
	if err != nil {
		return nil, err
	}
	privEl, err := asn1.Expect(seq, 2, asn1.TagOctetString)
	if err != nil {
		return nil, err
	}
	privDER, err := asn1.ReadOctetString(privEl)
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
	case oidRSAEncryption:
		return DecodeRSAPrivateKeyDER(privDER)
	case oidECPublicKey:
		if len(algChildren) < 2 {
			return nil, newError(ErrBadASN1, "EC PrivateKeyInfo missing namedCurve parameter")
		}
		curveOID, err := asn1.ReadOID(algChildren[1])
		if err != nil {
			return nil, err
		}
		c := curve.ByOID(curveOID)
		if c == nil {
			return nil, newError(ErrBadASN1, "unrecognized curve OID "+curveOID)
		}
		return DecodeECPrivateKeyDER(privDER, c)
	default:
		if c := curve.ByOID(oid); c != nil && c.Montgomery {
			return decodeCurvePrivateKeyDER(privDER, c)
		}
		return nil, newError(ErrUnsupportedPBE, "unrecognized private key algorithm "+oid)
	}
}
