// Copyright (c) 2015-2020 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package curve implements the named prime-field elliptic curve registry and
// affine point arithmetic described in spec.md §4.4, generalized from the
// teacher's secp256k1-only Jacobian implementation to every curve named in
// original_source/ecc/curves.c (NIST, SEC, and Brainpool Weierstrass curves,
// plus the Montgomery-family X25519/X448 registry entries the xdh package
// consumes).
package curve

import "github.com/cryptokit/core/mpi"

// Curve holds one named curve's domain parameters: the field prime P, the
// Weierstrass coefficients A and B (y^2 = x^3 + A*x + B mod P), the
// generator G, its order N, and the cofactor H, matching the fields of the
// source's ecc_curve_t.
type Curve struct {
	Name       string
	Aliases    []string
	OID        string
	Bits       int
	Bytes      int
	P          *mpi.Int
	A          *mpi.Int
	B          *mpi.Int
	N          *mpi.Int
	Gx         *mpi.Int
	Gy         *mpi.Int
	H          int
	Montgomery bool // X25519/X448: scalar multiplication goes through xdh, not ScalarMult
}

func hex(s string) *mpi.Int {
	v, err := mpi.FromRadix(s, 16)
	if err != nil {
		panic("curve: bad built-in constant: " + err.Error())
	}
	return v
}

// Generator returns the curve's base point G.
func (c *Curve) Generator() *Point {
	return &Point{X: c.Gx.Clone(), Y: c.Gy.Clone()}
}

var registry []*Curve

func register(c *Curve) *Curve {
	registry = append(registry, c)
	return c
}

// Named curve constants, parameters transcribed from the digit tables in
// original_source/ecc/curves.c (SEC2/FIPS186-3/Brainpool/RFC-7748 domain
// parameters).
var (
	SECP192K1 = register(&Curve{
		Name: "secp192k1", Aliases: []string{"ansip192k1"}, OID: "1.3.132.0.31",
		Bits: 192, Bytes: 24,
		P: hex("fffffffffffffffffffffffffffffffffffffffeffffee37"),
		A: hex("0"), B: hex("3"),
		N:  hex("fffffffffffffffffffffffe26f2fc170f69466a74defd8d"),
		Gx: hex("db4ff10ec057e9ae26b07d0280b7f4341da5d1b1eae06c7d"),
		Gy: hex("9b2f2f6d9c5628a7844163d015be86344082aa88d95e2f9d"),
		H:  1,
	})
	SECP192R1 = register(&Curve{
		Name: "secp192r1", Aliases: []string{"prime192v1", "nistp192", "P-192"}, OID: "1.2.840.10045.3.1.1",
		Bits: 192, Bytes: 24,
		P: hex("fffffffffffffffffffffffffffffffeffffffffffffffff"),
		A: hex("fffffffffffffffffffffffffffffffefffffffffffffffc"),
		B: hex("64210519e59c80e70fa7e9ab72243049feb8deecc146b9b1"),
		N: hex("ffffffffffffffffffffffff99def836146bc9b1b4d22831"),
		Gx: hex("188da80eb03090f67cbf20eb43a18800f4ff0afd82ff1012"),
		Gy: hex("7192b95ffc8da78631011ed6b24cdd573f977a11e794811"),
		H:  1,
	})
	SECP256R1 = register(&Curve{
		Name: "secp256r1", Aliases: []string{"prime256v1", "nistp256", "P-256"}, OID: "1.2.840.10045.3.1.7",
		Bits: 256, Bytes: 32,
		P: hex("ffffffff00000001000000000000000000000000ffffffffffffffffffffffff"),
		A: hex("ffffffff00000001000000000000000000000000fffffffffffffffffffffffc"),
		B: hex("5ac635d8aa3a93e7b3ebbd55769886bc651d06b0cc53b0f63bce3c3e27d2604b"),
		N: hex("ffffffff00000000ffffffffffffffffbce6faada7179e84f3b9cac2fc632551"),
		Gx: hex("6b17d1f2e12c4247f8bce6e563a440f277037d812deb33a0f4a13945d898c296"),
		Gy: hex("4fe342e2fe1a7f9b8ee7eb4a7c0f9e162bce33576b315ececbb6406837bf51f5"),
		H:  1,
	})
	SECP256K1 = register(&Curve{
		Name: "secp256k1", Aliases: []string{"ansip256k1"}, OID: "1.3.132.0.10",
		Bits: 256, Bytes: 32,
		P: hex("fffffffffffffffffffffffffffffffffffffffffffffffffffffffefffffc2f"),
		A: hex("0"), B: hex("7"),
		N:  hex("fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364141"),
		Gx: hex("79be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798"),
		Gy: hex("483ada7726a3c4655da4fbfc0e1108a8fd17b448a68554199c47d08ffb10d4b8"),
		H:  1,
	})
	SECP384R1 = register(&Curve{
		Name: "secp384r1", Aliases: []string{"prime384v1", "nistp384", "P-384"}, OID: "1.3.132.0.34",
		Bits: 384, Bytes: 48,
		P: hex("fffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffeffffffff0000000000000000ffffffff"),
		A: hex("fffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffeffffffff0000000000000000fffffffc"),
		B: hex("b3312fa7e23ee7e4988e056be3f82d19181d9c6efe8141120314088f5013875ac656398d8a2ed19d2a85c8edd3ec2aef"),
		N: hex("ffffffffffffffffffffffffffffffffffffffffffffffffc7634d81f4372ddf581a0db248b0a77aecec196accc52973"),
		Gx: hex("aa87ca22be8b05378eb1c71ef320ad746e1d3b628ba79b9859f741e082542a385502f25dbf55296c3a545e3872760ab7"),
		Gy: hex("3617de4a96262c6f5d9e98bf9292dc29f8f41dbd289a147ce9da3113b5f0b8c00a60b1ce1d7e819d7a431d7c90ea0e5f"),
		H:  1,
	})
	SECP521R1 = register(&Curve{
		Name: "secp521r1", Aliases: []string{"prime521v1", "nistp521", "P-521"}, OID: "1.3.132.0.35",
		Bits: 521, Bytes: 66,
		P: hex("1ffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff"),
		A: hex("1fffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffc"),
		B: hex("51953eb9618e1c9a1f929a21a0b68540eea2da725b99b315f3b8b489918ef109e156193951ec7e937b1652c0bd3bb1bf073573df883d2c34f1ef451fd46b503f00"),
		N: hex("1fffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffa51868783bf2f966b7fcc0148f709a5d03bb5c9b8899c47aebb6fb71e91386409"),
		Gx: hex("c6858e06b70404e9cd9e3ecb662395b4429c648139053fb521f828af606b4d3dbaa14b5e77efe75928fe1dc127a2ffa8de3348b3c1856a429bf97e7e31c2e5bd66"),
		Gy: hex("11839296a789a3bc0045c8a5fb42c7d1bd998f54449579b446817afbd17273e662c97ee72995ef42640c550b9013fad0761353c7086a272c24088be94769fd16650"),
		H:  1,
	})
	BrainpoolP192R1 = register(&Curve{
		Name: "brainpoolP192r1", OID: "1.3.36.3.3.2.8.1.1.3",
		Bits: 192, Bytes: 24,
		P: hex("c302f41d932a36cda7a3463093d18db78fce476de1a86297"),
		A: hex("6a91174076b1e0e19c39c031fe8685c1cae040e5c69a28ef"),
		B: hex("469a28ef7c28cca3dc721d044f4496bcca7ef4146fbf25c9"),
		N: hex("c302f41d932a36cda7a3462f9e9e916b5be8f1029ac4acc1"),
		Gx: hex("c0a0647eaab6a48753b033c56cb0f0900a2f5c4853375fd6"),
		Gy: hex("14b690866abd5bb88b5f4828c1490002e6773fa2fa299b8f"),
		H:  1,
	})
	BrainpoolP224R1 = register(&Curve{
		Name: "brainpoolP224r1", OID: "1.3.36.3.3.2.8.1.1.5",
		Bits: 224, Bytes: 28,
		P: hex("d7c134aa264366862a18302575d1d787b09f075797da89f57ec8c0ff"),
		A: hex("68a5e62ca9ce6c1c299803a6c1530b514e182ad8b0042a59cad29f43"),
		B: hex("2580f63ccfe44138870713b1a92369e33e2135d266dbb372386c400b"),
		N: hex("d7c134aa264366862a18302575d0fb98d116bc4b6ddebca3a5a7939f"),
		Gx: hex("d9029ad2c7e5cf4340823b2a87dc68c9e4ce3174c1e6efdee12c07d"),
		Gy: hex("58aa56f772c0726f24c6b89e4ecdac24354b9e99caa3f6d3761402cd"),
		H:  1,
	})
	BrainpoolP256R1 = register(&Curve{
		Name: "brainpoolP256r1", OID: "1.3.36.3.3.2.8.1.1.7",
		Bits: 256, Bytes: 32,
		P: hex("a9fb57dba1eea9bc3e660a909d838d726e3bf623d52620282013481d1f6e5377"),
		A: hex("7d5a0975fc2c3057eef67530417affe7fb8055c126dc5c6ce94a4b44f330b5d9"),
		B: hex("26dc5c6ce94a4b44f330b5d9bbd77cbf958416295cf7e1ce6bccdc18ff8c07b6"),
		N: hex("a9fb57dba1eea9bc3e660a909d838d718c397aa3b561a6f7901e0e82974856a7"),
		Gx: hex("8bd2aeb9cb7e57cb2c4b482ffc81b7afb9de27e1e3bd23c23a4453bd9ace3262"),
		Gy: hex("547ef835c3dac4fd97f8461a14611dc9c27745132ded8e545c1d54c72f046997"),
		H:  1,
	})
	BrainpoolP320R1 = register(&Curve{
		Name: "brainpoolP320r1", OID: "1.3.36.3.3.2.8.1.1.9",
		Bits: 320, Bytes: 40,
		P: hex("d35e472036bc4fb7e13c785ed201e065f98fcfa6f6f40def4f92b9ec7893ec28fcd412b1f1b32e27"),
		A: hex("3ee30b568fbab0f883ccebd46d3f3bb8a2a73513f5eb79da66190eb085ffa9f492f375a97d860eb4"),
		B: hex("520883949dfdbc42d3ad198640688a6fe13f41349554b49acc31dccd884539816f5eb4ac8fb1f1a6"),
		N: hex("d35e472036bc4fb7e13c785ed201e065f98fcfa5b68f12a32d482ec7ee8658e98691555b44c59311"),
		Gx: hex("43bd7e9afb53d8b85289bcc48ee5bfe6f20137d10a087eb6e7871e2a10a599c710af8d0d39e20611"),
		Gy: hex("14fdd05545ec1cc8ab4093247f77275e0743ffed117182eaa9c77877aaac6ac7d35245d1692e8ee1"),
		H:  1,
	})
	BrainpoolP384R1 = register(&Curve{
		Name: "brainpoolP384r1", OID: "1.3.36.3.3.2.8.1.1.11",
		Bits: 384, Bytes: 48,
		P: hex("8cb91e82a3386d280f5d6f7e50e641df152f7109ed5456b412b1da197fb71123acd3a729901d1a71874700133107ec53"),
		A: hex("7bc382c63d8c150c3c72080ace05afa0c2bea28e4fb22787139165efba91f90f8aa5814a503ad4eb04a8c7dd22ce2826"),
		B: hex("4a8c7dd22ce28268b39b55416f0447c2fb77de107dcd2a62e880ea53eeb62d57cb4390295dbc9943ab78696fa504c11"),
		N: hex("8cb91e82a3386d280f5d6f7e50e641df152f7109ed5456b31f166e6cac0425a7cf3ab6af6b7fc3103b883202e9046565"),
		Gx: hex("1d1c64f068cf45ffa2a63a81b7c13f6b8847a3e77ef14fe3db7fcafe0cbd10e8e826e03436d646aaef87b2e247d4af1e"),
		Gy: hex("8abe1d7520f9c2a45cb1eb8e95cfd55262b70b29feec5864e19c054ff99129280e4646217791811142820341263c5315"),
		H:  1,
	})
	BrainpoolP512R1 = register(&Curve{
		Name: "brainpoolP512r1", OID: "1.3.36.3.3.2.8.1.1.13",
		Bits: 512, Bytes: 64,
		P: hex("aadd9db8dbe9c48b3fd4e6ae33c9fc07cb308db3b3c9d20ed6639cca703308717d4d9b009bc66842aecda12ae6a380e62881ff2f2d82c68528aa6056583a48f3"),
		A: hex("7830a3318b603b89e2327145ac234cc594cbdd8d3df91610a83441caea9863bc2ded5d5aa8253aa10a2ef1c98b9ac8b57f1117a72bf2c7b9e7c1ac4d77fc94ca"),
		B: hex("3df91610a83441caea9863bc2ded5d5aa8253aa10a2ef1c98b9ac8b57f1117a72bf2c7b9e7c1ac4d77fc94cadc083e67984050b75ebae5dd2809bd638016f723"),
		N: hex("aadd9db8dbe9c48b3fd4e6ae33c9fc07cb308db3b3c9d20ed6639cca70330870553e5c414ca92619418661197fac10471db1d381085ddaddb58796829ca90069"),
		Gx: hex("81aee4bdd82ed9645a21322e9c4c6a9385ed9f70b5d916c1b43b62eef4d0098eff3b1f78e2d0d48d50d1687b93b97d5f7c6d5047406a5e688b352209bcb9f822"),
		Gy: hex("7dde385d566332ecc0eabfa9cf7822fdf209f70024a57b1aa000c55b881f8111b2dcde494a5f485e5bca4bd88a2763aed1ca2b2fa8f0540678cd1e0f3ad80892"),
		H:  1,
	})

	// X25519 and X448 are registered for curve-lookup/OID/ASN.1 uniformity
	// (ByName/ByOID, pem key shapes) even though scalar multiplication
	// on them always goes through the xdh package's Montgomery ladder, not
	// this package's ScalarMult -- matching the source's own note that it
	// manages these curves homogeneously with the Weierstrass ones even
	// though their Y coordinate is never used.
	X25519 = register(&Curve{
		Name: "x25519", OID: "1.3.101.110",
		Bits: 256, Bytes: 32, Montgomery: true,
		P: hex("7fffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffed"),
		A: hex("76d06"), B: hex("1"),
		N:  hex("1000000000000000000000000000000014def9dea2f79cd65812631a5cf5d3ed"),
		Gx: hex("9"), Gy: hex("20ae19a1b8a086b4e01edd2c7748d14c923d4d7e6d7c61b229e9c5a27eced3d9"),
		H: 8,
	})
	X448 = register(&Curve{
		Name: "x448", OID: "1.3.101.111",
		Bits: 448, Bytes: 56, Montgomery: true,
		P: hex("fffffffffffffffffffffffffffffffffffffffffffffffffffffffeffffffffffffffffffffffffffffffffffffffffffffffffffffffff"),
		A: hex("98a9"), B: hex("0"),
		N:  hex("3fffffffffffffffffffffffffffffffffffffffffffffffffffffff7cca23e9c44edb49aed63690216cc2728dc58f552378c292ab5844f3"),
		Gx: hex("5"), Gy: hex("7d235d1295f5b1f66c98ab6e58326fcecbae5d34f55545d060f75dc28df3f6edb8027e2346430d211312c4b150677af76fd7223d457b5b1a"),
		H: 4,
	})
)

// ByName returns a registered curve by its canonical name or any alias,
// matching ecc_get_named_curve's case-insensitive alias search.
func ByName(name string) *Curve {
	for _, c := range registry {
		if equalFold(c.Name, name) {
			return c
		}
		for _, a := range c.Aliases {
			if equalFold(a, name) {
				return c
			}
		}
	}
	return nil
}

// ByOID returns a registered curve by its dotted OID string, matching
// ecc_get_curve_from_oid.
func ByOID(oid string) *Curve {
	for _, c := range registry {
		if c.OID == oid {
			return c
		}
	}
	return nil
}

// All returns every registered curve, in registration order.
func All() []*Curve {
	out := make([]*Curve, len(registry))
	copy(out, registry)
	return out
}

func equalFold(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := 0; i < len(a); i++ {
		ca, cb := a[i], b[i]
		if 'A' <= ca && ca <= 'Z' {
			ca += 'a' - 'A'
		}
		if 'A' <= cb && cb <= 'Z' {
			cb += 'a' - 'A'
		}
		if ca != cb {
			return false
		}
	}
	return true
}
