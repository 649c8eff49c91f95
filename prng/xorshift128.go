// Copyright (c) 2015-2020 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package prng

// Xorshift128 implements George Marsaglia's original 32-bit Xorshift128
// generator, periodicity 2^128.
type Xorshift128 struct {
	x, y, z, w uint32
}

// NewXorshift128 creates a generator seeded with seed (0 meaning "use an
// unpredictable seed"). The source seeds Xorshift128's four state words
// from four successive outputs of a freshly-seeded Mother generator; this
// port does the same.
func NewXorshift128(seed uint32) *Xorshift128 {
	if seed == 0 {
		seed = UnpredictableSeed()
	}
	m := NewMother(seed)
	return &Xorshift128{
		x: m.Uint32(),
		y: m.Uint32(),
		z: m.Uint32(),
		w: m.Uint32(),
	}
}

// Name implements Generator.
func (g *Xorshift128) Name() string { return "XorShift128" }

// Uint32 implements Generator.
func (g *Xorshift128) Uint32() uint32 {
	tmp := g.x ^ (g.x << 11)

	g.x = g.y
	g.y = g.z
	g.z = g.w

	g.w = g.w ^ (g.w >> 19) ^ tmp ^ (tmp >> 8)

	return g.w
}

// Bytes implements Generator.
func (g *Xorshift128) Bytes(buf []byte) {
	fillFromUint32LE(buf, g.Uint32)
}
