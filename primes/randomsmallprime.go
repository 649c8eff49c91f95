// Copyright (c) 2015-2020 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package primes

import "github.com/cryptokit/core/prng"

// RandomSmallPrime returns a random prime in [3, 65537] drawn from g,
// matching the source's random_small_prime(). A nil g falls back to an
// unpredictable, non-cryptographic seed, the same fallback the source uses
// when no random context is supplied.
func RandomSmallPrime(g prng.Generator) int {
	if g == nil {
		g = prng.NewXorshift128(prng.UnpredictableSeed())
	}
	return SmallPrime(int(g.Uint32() % NumSmallPrimes))
}
