// Copyright (c) 2015-2020 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package prng

import (
	"crypto/hmac"
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"hash"
)

// TLSPRFKind selects which of the three TLS pseudo-random functions
// TLSPRF computes, matching the source's RAND_TLS_MD5_SHA1 /
// RAND_TLS_SHA256 / RAND_TLS_SHA384.
type TLSPRFKind int

// TLS-PRF variants, per RFC 4346 §5 and RFC 5246 §5.
const (
	TLSPRFMD5SHA1 TLSPRFKind = iota
	TLSPRFSHA256
	TLSPRFSHA384
)

// pHash implements P_hash(secret, seed) from RFC 5246 §5: HMAC-iterate the
// secret over an ever-growing chain A(i) = HMAC(secret, A(i-1)), XOR-ing or
// copying each HMAC(secret, A(i) || seed) block into the output, matching
// the source's p_hash().
func pHash(newHash func() hash.Hash, secret, seed []byte, xorInto bool, out []byte) {
	mac := hmac.New(newHash, secret)
	mac.Write(seed)
	a := mac.Sum(nil)

	remain := len(out)
	dst := 0
	for remain > 0 {
		mac = hmac.New(newHash, secret)
		mac.Write(a)
		mac.Write(seed)
		ai := mac.Sum(nil)

		n := remain
		if n > len(ai) {
			n = len(ai)
		}
		if xorInto {
			for i := 0; i < n; i++ {
				out[dst+i] ^= ai[i]
			}
		} else {
			copy(out[dst:dst+n], ai[:n])
		}
		dst += n
		remain -= n

		mac = hmac.New(newHash, secret)
		mac.Write(a)
		a = mac.Sum(nil)
	}
}

// TLSPRF generates data exactly the way TLS's PRF does, per RFC 4346/5246
// §5, so the same construction can be reused outside of a TLS handshake
// (spec.md §4.2 calls this out explicitly: "mostly this is a way to let the
// standard TLS-PRF be used from other applications").
func TLSPRF(kind TLSPRFKind, secret []byte, label string, seed1, seed2 []byte, out []byte) {
	fullSeed := append([]byte(label), seed1...)
	if seed2 != nil {
		fullSeed = append(fullSeed, seed2...)
	}

	switch kind {
	case TLSPRFMD5SHA1:
		// P_HASH() of TLS v1.0/v1.1 is P_MD5(secret1) XOR P_SHA1(secret2),
		// where the secret is split into two overlapping halves.
		half := (len(secret) + 1) / 2
		secret1 := secret[:half]
		secret2 := secret[len(secret)-half:]

		pHash(md5.New, secret1, fullSeed, false, out)
		pHash(sha1.New, secret2, fullSeed, true, out)
	case TLSPRFSHA384:
		pHash(sha512.New384, secret, fullSeed, false, out)
	case TLSPRFSHA256:
		fallthrough
	default:
		pHash(sha256.New, secret, fullSeed, false, out)
	}
}

// TLSPRFGenerator is a Generator backed by TLSPRF, seeded the way the
// source's RAND_TLS_* contexts are: four 32-bit words drawn from a
// freshly-seeded Mother generator become the PRF's secret/seed material,
// refreshed on every call.
type TLSPRFGenerator struct {
	kind       TLSPRFKind
	x, y, z, w uint32
}

// NewTLSPRFGenerator creates a TLSPRFGenerator seeded with seed (0 meaning
// "use an unpredictable seed").
func NewTLSPRFGenerator(kind TLSPRFKind, seed uint32) *TLSPRFGenerator {
	if seed == 0 {
		seed = UnpredictableSeed()
	}
	m := NewMother(seed)
	return &TLSPRFGenerator{
		kind: kind,
		x:    m.Uint32(),
		y:    m.Uint32(),
		z:    m.Uint32(),
		w:    m.Uint32(),
	}
}

// Name implements Generator.
func (g *TLSPRFGenerator) Name() string {
	switch g.kind {
	case TLSPRFMD5SHA1:
		return "TLS-PRF(MD5-SHA1)"
	case TLSPRFSHA384:
		return "TLS-PRF(SHA384)"
	default:
		return "TLS-PRF(SHA256)"
	}
}

// Bytes implements Generator. It advances an internal Xorshift128 step to
// build fresh secret/seed halves for every call, matching the source's
// tls_rand8().
func (g *TLSPRFGenerator) Bytes(buf []byte) {
	tmp := g.x ^ (g.x << 11)
	g.x = g.y
	g.y = g.z
	g.z = g.w
	g.w = g.w ^ (g.w >> 19) ^ tmp ^ (tmp >> 8)

	var secret, seed [8]byte
	putUint64BE(secret[:], uint64(g.x)<<32|uint64(g.y))
	putUint64BE(seed[:], uint64(g.w)<<32|uint64(g.z))

	TLSPRF(g.kind, secret[:], "tls-prf-entropy", seed[:], nil, buf)
}

// Uint32 implements Generator.
func (g *TLSPRFGenerator) Uint32() uint32 {
	var tmp [4]byte
	g.Bytes(tmp[:])
	return uint32(tmp[0])<<24 | uint32(tmp[1])<<16 | uint32(tmp[2])<<8 | uint32(tmp[3])
}

func putUint64BE(buf []byte, v uint64) {
	for i := 7; i >= 0; i-- {
		buf[i] = byte(v)
		v >>= 8
	}
}
