// Copyright (c) 2015-2020 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package prng

// Mother implements George Marsaglia's "Mother of all random number
// generators", a multiply-with-carry generator with periodicity near 2^250.
type Mother struct {
	top [10]uint16
	bot [10]uint16
}

var motherTopLinear = [8]uint16{1941, 1860, 1812, 1776, 1492, 1215, 1066, 12013}
var motherBotLinear = [8]uint16{1111, 2222, 3333, 4444, 5555, 6666, 7777, 9272}

// NewMother creates a Mother generator seeded with seed. A zero seed is
// replaced with an unpredictable one, matching the source's "0 means use an
// unpredictable seed" convention.
func NewMother(seed uint32) *Mother {
	if seed == 0 {
		seed = UnpredictableSeed()
	}
	m := &Mother{}

	dn := seed & 0x7FFFFFFF
	sn := uint16(seed & 0xFFFF)
	for t := 0; t < 9; t++ {
		dn >>= 16
		tn := uint32(30903) * uint32(sn)
		tn += dn
		sn = uint16(tn & 0xFFFF)
		m.top[t] = sn
		dn = tn
	}
	for t := 0; t < 9; t++ {
		dn >>= 16
		tn := uint32(30903) * uint32(sn)
		tn += dn
		sn = uint16(tn & 0xFFFF)
		m.bot[t] = sn
		dn = tn
	}
	m.top[0] &= 0x7FFF
	m.bot[0] &= 0x7FFF
	return m
}

// Name implements Generator.
func (m *Mother) Name() string { return "Mother" }

// Uint32 implements Generator.
func (m *Mother) Uint32() uint32 {
	top := uint32(m.top[0])
	bot := uint32(m.bot[0])

	copy(m.top[2:10], m.top[1:9])
	copy(m.bot[2:10], m.bot[1:9])

	for i, t := 0, 2; t < 10; t, i = t+1, i+1 {
		top += uint32(motherTopLinear[i]) * uint32(m.top[t])
		bot += uint32(motherBotLinear[i]) * uint32(m.bot[t])
	}

	m.top[0] = uint16(top >> 16)
	m.bot[0] = uint16(bot >> 16)
	m.top[1] = uint16(top & 0xFFFF)
	m.bot[1] = uint16(bot & 0xFFFF)

	return ((top & 0xFFFF) << 16) | (bot & 0xFFFF)
}

// Bytes implements Generator.
func (m *Mother) Bytes(buf []byte) {
	fillFromUint32LE(buf, m.Uint32)
}
