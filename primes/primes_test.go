// Copyright (c) 2015-2020 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package primes_test

import (
	"testing"

	"github.com/cryptokit/core/mpi"
	"github.com/cryptokit/core/primes"
	"github.com/cryptokit/core/prng"
	"github.com/stretchr/testify/require"
)

func TestSmallPrimeTableBounds(t *testing.T) {
	require.Equal(t, primes.SmallestSmallPrime, primes.SmallPrime(0))
	require.Equal(t, primes.BiggestSmallPrime, primes.SmallPrime(primes.NumSmallPrimes-1))
	require.Equal(t, primes.SmallestSmallPrime, primes.SmallPrime(-5))
	require.Equal(t, primes.BiggestSmallPrime, primes.SmallPrime(primes.NumSmallPrimes+100))
}

func TestSmallPrimeTableIsSortedAndPrime(t *testing.T) {
	prev := 0
	for i := 0; i < primes.NumSmallPrimes; i++ {
		p := primes.SmallPrime(i)
		require.Greater(t, p, prev)
		require.True(t, primes.IsSmallPrime(p), "table entry %d not flagged prime", p)
		prev = p
	}
}

func TestIsSmallPrimeKnownValues(t *testing.T) {
	for _, p := range []int{2, 3, 5, 7, 11, 97, 65521, 65537} {
		require.Truef(t, primes.IsSmallPrime(p), "%d should be prime", p)
	}
	for _, p := range []int{0, 1, 4, 9, 15, 65535, 65536, -3} {
		require.Falsef(t, primes.IsSmallPrime(p), "%d should not be prime", p)
	}
}

func TestClosestSmallPrimeExamples(t *testing.T) {
	require.Equal(t, 3, primes.ClosestSmallPrime(-1))
	require.Equal(t, 4093, primes.ClosestSmallPrime(4096))
	require.Equal(t, 8191, primes.ClosestSmallPrime(8191))
	require.Equal(t, 8191, primes.ClosestSmallPrime(8192))
	require.Equal(t, 65537, primes.ClosestSmallPrime(65537))
	require.Equal(t, 65537, primes.ClosestSmallPrime(84096))
}

func TestNextSmallPrimeExamples(t *testing.T) {
	require.Equal(t, 3, primes.NextSmallPrime(-1))
	require.Equal(t, 4099, primes.NextSmallPrime(4096))
	require.Equal(t, 8209, primes.NextSmallPrime(8191+1))
	require.Equal(t, 8209, primes.NextSmallPrime(8192))
	require.Equal(t, 65537, primes.NextSmallPrime(65537))
	require.Equal(t, 65537, primes.NextSmallPrime(84096))
}

func TestIsPrimeKnownSmallComposites(t *testing.T) {
	g := prng.NewXorshift128(12345)
	for _, n := range []int64{4, 6, 9, 15, 21, 25, 100, 561, 1105, 1729, 2465, 2821, 6601} {
		// 561, 1105, 1729, 2465, 2821, 6601 are Carmichael numbers: strong
		// pseudoprimes to every base coprime with them for Fermat's test,
		// the classic case Miller-Rabin (not Fermat) must still reject.
		v := mpi.New().SetInt64(n)
		require.Falsef(t, primes.IsPrime(v, g), "%d should not be prime", n)
	}
}

func TestIsPrimeKnownPrimes(t *testing.T) {
	g := prng.NewXorshift128(54321)
	for _, n := range []int64{2, 3, 5, 7, 11, 97, 104729, 982451653} {
		v := mpi.New().SetInt64(n)
		require.Truef(t, primes.IsPrime(v, g), "%d should be prime", n)
	}
}

func TestIsPrimeBigPi(t *testing.T) {
	// The value right after pi * 10^3009, used by the source's own test
	// suite: pi * 10^3009 + 2813 is documented there as the next prime.
	piTimes3009, err := mpi.FromRadix(piDigits, 10)
	require.NoError(t, err)
	candidate := mpi.New().AddInt64(piTimes3009, 2813)

	g := prng.NewXorshift128(1)
	require.True(t, primes.IsPrime(candidate, g))
}

func TestNextPrimeAdvancesPastComposite(t *testing.T) {
	g := prng.NewXorshift128(777)
	n := mpi.New().SetInt64(100)
	got := primes.NextPrime(n, g)
	require.True(t, got.Cmp(mpi.New().SetInt64(100)) >= 0)
	require.True(t, primes.IsPrime(got, g))
	require.Equal(t, int64(101), mustInt64(t, got))
}

func TestQualityPrimeProducesPrimeOfRequestedSize(t *testing.T) {
	g := prng.NewXorshift128(31337)
	p := primes.QualityPrime(128, 0, 1, nil, 0, g)
	require.True(t, primes.IsPrime(p, g))
	require.GreaterOrEqual(t, p.CountBits(), 120)
	require.LessOrEqual(t, p.CountBits(), 128)
}

func TestInventFirstbitsProductAtLeastTwo(t *testing.T) {
	g := prng.NewXorshift128(9)
	for i := 0; i < 20; i++ {
		one, two := primes.InventFirstbits(g)
		require.GreaterOrEqual(t, uint64(one)*uint64(two), uint64(2))
	}
}

func mustInt64(t *testing.T, v *mpi.Int) int64 {
	t.Helper()
	s, err := v.ToRadix(10)
	require.NoError(t, err)
	var n int64
	neg := false
	i := 0
	if s[0] == '-' {
		neg = true
		i = 1
	}
	for ; i < len(s); i++ {
		n = n*10 + int64(s[i]-'0')
	}
	if neg {
		n = -n
	}
	return n
}

const piDigits = "314159265358979323846264338327950288419716939937510582097494459230781640628620899862803482534211706798214808651328230664" +
	"709384460955058223172535940812848111745028410270193852110555964462294895493038196442881097566593344612847564823378678316" +
	"527120190914564856692346034861045432664821339360726024914127372458700660631558817488152092096282925409171536436789259036" +
	"001133053054882046652138414695194151160943305727036575959195309218611738193261179310511854807446237996274956735188575272" +
	"489122793818301194912983367336244065664308602139494639522473719070217986094370277053921717629317675238467481846766940513" +
	"200056812714526356082778577134275778960917363717872146844090122495343014654958537105079227968925892354201995611212902196" +
	"086403441815981362977477130996051870721134999999837297804995105973173281609631859502445945534690830264252230825334468503" +
	"526193118817101000313783875288658753320838142061717766914730359825349042875546873115956286388235378759375195778185778053" +
	"217122680661300192787661119590921642019893809525720106548586327886593615338182796823030195203530185296899577362259941389" +
	"124972177528347913151557485724245415069595082953311686172785588907509838175463746493931925506040092770167113900984882401" +
	"285836160356370766010471018194295559619894676783744944825537977472684710404753464620804668425906949129331367702898915210" +
	"475216205696602405803815019351125338243003558764024749647326391419927260426992279678235478163600934172164121992458631503" +
	"028618297455570674983850549458858692699569092721079750930295532116534498720275596023648066549911988183479775356636980742" +
	"654252786255181841757467289097777279380008164706001614524919217321721477235014144197356854816136115735255213347574184946" +
	"843852332390739414333454776241686251898356948556209921922218427255025425688767179049460165346680498862723279178608578438" +
	"382796797668145410095388378636095068006422512520511739298489608412848862694560424196528502221066118630674427862203919494" +
	"504712371378696095636437191728746776465757396241389086583264599581339047802759009946576407895126946839835259570982582262" +
	"052248940772671947826848260147699090264013639443745530506820349625245174939965143142980919065925093722169646151570985838" +
	"741059788595977297549893016175392846813826868386894277415599185592524595395943104997252468084598727364469584865383673622" +
	"262609912460805124388439045124413654976278079771569143599770012961608944169486855584840635342207222582848864815845602850" +
	"601684273945226746767889525213852254995466672782398645659611635488623057745649803559363456817432411251507606947945109659" +
	"609402522887971089314566913686722874894056010150330861792868092087476091782493858900971490967598526136554978189312978482" +
	"168299894872265880485756401427047755513237964145152374623436454285844479526586782105114135473573952311342716610213596953" +
	"623144295248493718711014576540359027993440374200731057853906219838744780847848968332144571386875194350643021845319104848" +
	"100537061468067491927819119793995206141966342875444064374512371819217999839101591956181467514269123974894090718649423196" +
	"1567945208"
