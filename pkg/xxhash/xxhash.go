// Package xxhash provides single-shot XXH64 hashing of fixed 8-byte
// inputs such as machine integers.
//
// Forked from github.com/pierrec/xxHash and reduced to the short-input
// path since integer keys never fill a 32-byte stripe.
package xxhash

const (
	prime64_1 = 11400714785074694791
	prime64_2 = 14029467366897019727
	prime64_3 = 1609587929392839161
	prime64_4 = 9650029242287828579
	prime64_5 = 2870177450012600261
)

// Sum8 returns the XXH64 hash of the 8 bytes of input using seed.
// The result equals hashing input[:] with any streaming XXH64 implementation.
func Sum8(seed uint64, input [8]byte) uint64 {
	h64 := seed + prime64_5 + 8
	h64 ^= rol31(u64(input[:])*prime64_2) * prime64_1
	h64 = rol27(h64)*prime64_1 + prime64_4
	return avalanche(h64)
}

// Uint64 returns the XXH64 hash of u encoded in little endian byte order.
func Uint64(seed, u uint64) uint64 {
	return Sum8(seed, [8]byte{
		byte(u), byte(u >> 8), byte(u >> 16), byte(u >> 24),
		byte(u >> 32), byte(u >> 40), byte(u >> 48), byte(u >> 56),
	})
}

func avalanche(h64 uint64) uint64 {
	h64 ^= h64 >> 33
	h64 *= prime64_2
	h64 ^= h64 >> 29
	h64 *= prime64_3
	h64 ^= h64 >> 32
	return h64
}

func u64(buf []byte) uint64 {
	// go compiler recognizes this pattern
	// and optimizes it on little endian platforms
	return uint64(buf[0]) |
		uint64(buf[1])<<8 |
		uint64(buf[2])<<16 |
		uint64(buf[3])<<24 |
		uint64(buf[4])<<32 |
		uint64(buf[5])<<40 |
		uint64(buf[6])<<48 |
		uint64(buf[7])<<56
}

func rol27(u uint64) uint64 { return u<<27 | u>>37 }
func rol31(u uint64) uint64 { return u<<31 | u>>33 }
