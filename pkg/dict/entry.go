package dict

import "github.com/graph-guard/chaindict/pkg/hasher"

// Entry is a key-value pair stored in a bucket together
// with the hash of its key.
type Entry[K comparable, V any] struct {
	Key   K
	Hash  uint64
	Value V
}

// NewEntry creates an entry hashing key with h.
// Panics raised by h propagate to the caller.
func NewEntry[K comparable, V any](
	key K,
	value V,
	h hasher.Hasher[K],
) Entry[K, V] {
	return newEntry(key, h.Hash(key), value)
}

func newEntry[K comparable, V any](key K, hash uint64, value V) Entry[K, V] {
	return Entry[K, V]{Key: key, Hash: hash, Value: value}
}

// Equal returns true if both the hashes and the keys of e and o are equal.
// Values are ignored.
func (e Entry[K, V]) Equal(o Entry[K, V]) bool {
	return e.Hash == o.Hash && e.Key == o.Key
}
