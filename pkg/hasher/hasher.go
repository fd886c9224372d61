// Package hasher provides the hash functions a dict uses to place keys
// into buckets. Any custom hasher can be provided to a dict during
// initialization. By default, XXH3 from github.com/zeebo/xxh3 is used
// for string keys, XXH64 for integer keys and hash/maphash for all
// other comparable keys.
package hasher

import (
	"errors"
	"fmt"
	"hash/maphash"

	"github.com/dchest/siphash"
	"github.com/graph-guard/chaindict/pkg/xxhash"
	"github.com/zeebo/xxh3"
	"golang.org/x/exp/constraints"
)

// Hasher hashes keys to 64-bit hash values.
// Equal keys must produce equal hashes.
type Hasher[K any] interface{ Hash(K) uint64 }

// Func adapts an ordinary function to the Hasher interface.
type Func[K any] func(K) uint64

// Hash returns f(k).
func (f Func[K]) Hash(k K) uint64 { return f(k) }

// XXH3 can be used to provide custom seeds during initialization.
type XXH3[K ~string] struct {
	Seed uint64
}

// Hash hashes k to a 64-bit hash value.
func (h *XXH3[K]) Hash(k K) uint64 {
	return xxh3.HashSeed([]byte(k), h.Seed)
}

// SipHash is the keyed SipHash-2-4 function Redis uses for its dicts.
type SipHash[K ~string] struct {
	K0, K1 uint64
}

// Hash hashes k to a 64-bit hash value.
func (h *SipHash[K]) Hash(k K) uint64 {
	return siphash.Hash(h.K0, h.K1, []byte(k))
}

// Integer hashes the little endian representation of an integer key
// with XXH64.
type Integer[K constraints.Integer] struct {
	Seed uint64
}

// Hash hashes k to a 64-bit hash value.
func (h *Integer[K]) Hash(k K) uint64 {
	return xxhash.Uint64(h.Seed, uint64(k))
}

// Comparable hashes any comparable key with hash/maphash.
// It panics if k is, or contains, an interface value holding
// an incomparable dynamic type.
type Comparable[K comparable] struct {
	seed maphash.Seed
}

// NewComparable creates a Comparable hasher with a random seed.
func NewComparable[K comparable]() *Comparable[K] {
	return &Comparable[K]{seed: maphash.MakeSeed()}
}

// Hash hashes k to a 64-bit hash value.
func (h *Comparable[K]) Hash(k K) uint64 {
	return maphash.Comparable(h.seed, k)
}

// Names accepted by ByName.
const (
	NameDefault = "default"
	NameXXH3    = "xxh3"
	NameSipHash = "siphash"
	NameMapHash = "maphash"
)

var ErrUnsupportedKey = errors.New("unsupported key type")

// Default returns the default hasher for K.
func Default[K comparable]() Hasher[K] {
	return withSeed[K](0)
}

// ByName returns the hasher called name seeded with seed.
// xxh3 and siphash require string keys. maphash ignores seed
// since hash/maphash seeds can only be generated randomly.
func ByName[K comparable](name string, seed uint64) (Hasher[K], error) {
	var zeroKey K
	switch name {
	case NameDefault, "":
		return withSeed[K](seed), nil
	case NameXXH3:
		if _, ok := any(zeroKey).(string); ok {
			return any(&XXH3[string]{Seed: seed}).(Hasher[K]), nil
		}
	case NameSipHash:
		if _, ok := any(zeroKey).(string); ok {
			return any(&SipHash[string]{K0: seed, K1: seed}).(Hasher[K]), nil
		}
	case NameMapHash:
		return NewComparable[K](), nil
	default:
		return nil, fmt.Errorf("unknown hasher %q", name)
	}
	return nil, fmt.Errorf("hasher %s: %w %T", name, ErrUnsupportedKey, zeroKey)
}

// Valid returns true if name is accepted by ByName for some key type.
func Valid(name string) bool {
	switch name {
	case NameDefault, "", NameXXH3, NameSipHash, NameMapHash:
		return true
	}
	return false
}

func withSeed[K comparable](seed uint64) Hasher[K] {
	var zeroKey K
	var h any
	switch any(zeroKey).(type) {
	case string:
		h = &XXH3[string]{Seed: seed}
	case int:
		h = &Integer[int]{Seed: seed}
	case int8:
		h = &Integer[int8]{Seed: seed}
	case int16:
		h = &Integer[int16]{Seed: seed}
	case int32:
		h = &Integer[int32]{Seed: seed}
	case int64:
		h = &Integer[int64]{Seed: seed}
	case uint:
		h = &Integer[uint]{Seed: seed}
	case uint8:
		h = &Integer[uint8]{Seed: seed}
	case uint16:
		h = &Integer[uint16]{Seed: seed}
	case uint32:
		h = &Integer[uint32]{Seed: seed}
	case uint64:
		h = &Integer[uint64]{Seed: seed}
	case uintptr:
		h = &Integer[uintptr]{Seed: seed}
	default:
		return NewComparable[K]()
	}
	return h.(Hasher[K])
}
