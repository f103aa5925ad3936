// Package keccak implements the Keccak permutation family and the hashes built
// on it.
//
// The layers compose bottom-up: Keccak-p[b, n] (NewPermutation) over a
// double-buffered byte state, the pad10*1 rule, the sponge construction
// (NewSponge), Keccak[c] (KeccakC), and finally fixed-output and
// extendable-output digests that differ only in capacity and
// domain-separation suffix (NewFixedDigest, NewXOF).
//
// Keccak-256 uses no suffix and is what Ethereum calls keccak256. SHA-3 (FIPS
// 202) appends the bits 01, SHAKE appends 1111. Go's crypto/sha3 only exposes
// the FIPS variants; the Keccak* instances here cover the pre-standard ones.
//
// The digest instances are safe for concurrent use: each call takes a sponge
// from a pool, so calls do not queue behind one another.
//
// The state is processed a byte at a time, so widths with sub-byte lanes
// (25, 50 and 100 bits) are not supported, and nothing here is constant time.
package keccak

// Original Keccak, no domain suffix.
var (
	Keccak224 = MustFixedDigest(KeccakC, 448, 0, 0)
	Keccak256 = MustFixedDigest(KeccakC, 512, 0, 0)
	Keccak384 = MustFixedDigest(KeccakC, 768, 0, 0)
	Keccak512 = MustFixedDigest(KeccakC, 1024, 0, 0)
)

// SHA-3, suffix 01.
var (
	SHA3Sum224 = MustFixedDigest(KeccakC, 448, 0b10, 2)
	SHA3Sum256 = MustFixedDigest(KeccakC, 512, 0b10, 2)
	SHA3Sum384 = MustFixedDigest(KeccakC, 768, 0b10, 2)
	SHA3Sum512 = MustFixedDigest(KeccakC, 1024, 0b10, 2)
)

// SHAKE, suffix 1111.
var (
	ShakeSum128 = MustXOF(KeccakC, 256, 0b1111, 4)
	ShakeSum256 = MustXOF(KeccakC, 512, 0b1111, 4)
)

// Sum256 computes the Keccak-256 hash of data.
func Sum256(data []byte) [32]byte {
	return [32]byte(Keccak256(data))
}
