// Copyright (c) 2015-2020 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package primes implements the small-prime table, Miller-Rabin primality
// test, and RSA/DSA-style prime constructors named in spec.md §4.3, ported
// from the PuTTY-derived sshprime.c logic the source adapted in
// primes/primes.h.
package primes

// NumSmallPrimes is the count of primes the table holds: every prime in
// [3, 65535] (the last is 65521). BiggestSmallPrime (65537) is a sentinel
// one step beyond the table's real upper bound, not a table entry -- see
// smallPrimeTable below.
const NumSmallPrimes = 6541

// SmallestSmallPrime and BiggestSmallPrime bound the small-prime table,
// matching the source's constants of the same name (spec.md deliberately
// excludes 2: "not useful for the intended uses we want these functions to
// be used for").
const (
	SmallestSmallPrime = 3
	BiggestSmallPrime  = 65537
)

// smallPrimeTable holds all primes in [3, 65535] in ascending order (6541
// of them, the last being 65521), computed once at init time by a sieve of
// Eratosthenes rather than hand-transcribed, per the same "compute, don't
// transcribe" approach used for mpi's radix log table. BiggestSmallPrime
// (65537) is deliberately NOT in the table -- it is a sentinel clamp value
// returned when a position or search falls past the table's range,
// matching the source's own doc comment ("pos ... is 0 to
// NUM_SMALL_PRIMES-1 (3 - 65521)").
var smallPrimeTable [NumSmallPrimes]int

func init() {
	const limit = 65535
	sieve := make([]bool, limit+1)
	n := 0
	for i := 2; i <= limit; i++ {
		if sieve[i] {
			continue
		}
		if i >= SmallestSmallPrime {
			smallPrimeTable[n] = i
			n++
		}
		for j := i * i; j <= limit && j > 0; j += i {
			sieve[j] = true
		}
	}
	if n != NumSmallPrimes {
		panic("primes: sieve produced an unexpected count of small primes")
	}
}

// SmallPrime returns the prime at position pos (0-based) in the table,
// matching the source's small_prime(): a negative pos returns the first
// entry (3) and a pos past the end returns the BiggestSmallPrime sentinel
// (65537) rather than erroring, since pos is always caller-controlled, not
// untrusted input.
func SmallPrime(pos int) int {
	if pos < 0 {
		return smallPrimeTable[0]
	}
	if pos >= NumSmallPrimes {
		return BiggestSmallPrime
	}
	return smallPrimeTable[pos]
}

// IsSmallPrime reports whether prime is a prime in [2, 65537], matching the
// source's is_small_prime() (2 is accepted here even though the table
// starts at 3; 65537 is accepted even though it is a sentinel, not a
// stored table entry).
func IsSmallPrime(prime int) bool {
	if prime == 2 || prime == BiggestSmallPrime {
		return true
	}
	if prime < SmallestSmallPrime || prime > BiggestSmallPrime {
		return false
	}
	lo, hi := 0, NumSmallPrimes-1
	for lo <= hi {
		mid := (lo + hi) / 2
		switch {
		case smallPrimeTable[mid] == prime:
			return true
		case smallPrimeTable[mid] < prime:
			lo = mid + 1
		default:
			hi = mid - 1
		}
	}
	return false
}

// ClosestSmallPrime returns the small prime closest to number (ties broken
// toward the lower prime, matching the source's examples: 8192 -> 8191).
// Values below 3 clamp to 3; values above 65537 clamp to 65537.
func ClosestSmallPrime(number int) int {
	if number < SmallestSmallPrime {
		return SmallestSmallPrime
	}
	if number > BiggestSmallPrime {
		return BiggestSmallPrime
	}
	tableMax := smallPrimeTable[NumSmallPrimes-1]
	if number > tableMax {
		// Only BiggestSmallPrime itself (65537) can land here, since the
		// table's last real entry is 65521 and number <= BiggestSmallPrime
		// was just checked above.
		if BiggestSmallPrime-number < number-tableMax {
			return BiggestSmallPrime
		}
		return tableMax
	}
	lo, hi := 0, NumSmallPrimes-1
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if smallPrimeTable[mid] <= number {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	below := smallPrimeTable[lo]
	if below == number || lo == NumSmallPrimes-1 {
		return below
	}
	above := smallPrimeTable[lo+1]
	if above-number < number-below {
		return above
	}
	return below
}

// NextSmallPrime returns the smallest table prime >= number, matching the
// source's next_small_prime() examples (next_small_prime(8192) == 8209).
func NextSmallPrime(number int) int {
	if number <= SmallestSmallPrime {
		return SmallestSmallPrime
	}
	if number > BiggestSmallPrime {
		return BiggestSmallPrime
	}
	if number > smallPrimeTable[NumSmallPrimes-1] {
		// Only BiggestSmallPrime itself (65537) can land here: the table's
		// last real entry is 65521 and number <= BiggestSmallPrime was just
		// checked above.
		return BiggestSmallPrime
	}
	lo, hi := 0, NumSmallPrimes-1
	for lo < hi {
		mid := (lo + hi) / 2
		if smallPrimeTable[mid] < number {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return smallPrimeTable[lo]
}
