// Copyright (c) 2015-2020 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package prng implements the generator-abstraction framework named in
// spec.md §4.2: a small Generator interface plus a handful of concrete
// generators (Mother, Mersenne Twister, Xorshift128, an OS-entropy source
// and a TLS P_hash-style PRF) that all satisfy it, so call sites can swap
// generators without caring which one is behind the interface.
package prng

import "encoding/binary"

// Generator produces pseudo-random (or true-random) 32-bit words and byte
// streams. Every concrete generator in this package satisfies it.
type Generator interface {
	// Name identifies the generator, mirroring the source's rand_name().
	Name() string

	// Uint32 returns the next 32-bit word.
	Uint32() uint32

	// Bytes fills buf with random bytes, assembled from successive Uint32
	// calls in little-endian byte order, matching the source's
	// *_bytes() helpers.
	Bytes(buf []byte)
}

// fillFromUint32LE fills buf using successive calls to next(), consuming
// each returned word least-significant-byte first, exactly as the source's
// mother_bytes/mersenne_twister_bytes/xorshift128_bytes loops do.
func fillFromUint32LE(buf []byte, next func() uint32) {
	i := 0
	for i < len(buf) {
		var tmp [4]byte
		binary.LittleEndian.PutUint32(tmp[:], next())
		n := copy(buf[i:], tmp[:])
		i += n
	}
}

// Uint64 returns a 64-bit random value assembled big-endian from one
// 8-byte Bytes call, matching the source's rand_u64().
func Uint64(g Generator) uint64 {
	var buf [8]byte
	g.Bytes(buf[:])
	return binary.BigEndian.Uint64(buf[:])
}

// Bits fills buf with the given number of random bits, big-endian, with the
// top bit of the set always 1, matching the source's rand_bits(). The
// caller-supplied buf must be (bits+7)/8 bytes long.
func Bits(g Generator, buf []byte, bits int) {
	if bits <= 0 || len(buf) == 0 {
		return
	}
	g.Bytes(buf)
	cnt := len(buf)*8 - bits
	buf[0] |= 0x80 >> uint(cnt)
	buf[0] &= 0xff >> uint(cnt)
}

// ByteNonZero returns a single random byte in [1,254], matching the source's
// rand_byte() (never 0x00 nor 0xff).
func ByteNonZero(g Generator) byte {
	for {
		v := g.Uint32()
		for shift := 0; shift < 4; shift++ {
			b := byte(v >> uint(shift*8))
			if b != 0 && b != 0xff {
				return b
			}
		}
	}
}

// BytesNoZeros fills buf with random bytes none of which are zero, matching
// the source's rand_bytes_no_zeros(): generate the block, then regenerate
// any zero byte one at a time until it's non-zero.
func BytesNoZeros(g Generator, buf []byte) {
	g.Bytes(buf)
	for i := range buf {
		for buf[i] == 0 {
			var one [1]byte
			g.Bytes(one[:])
			buf[i] = one[0]
		}
	}
}
