package dict

import "iter"

// Keys returns an iterator over all keys in bucket order
// and insertion order within each bucket.
// Mutating d during iteration has unspecified effects.
func (d *Dict[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for _, b := range d.buckets {
			for i := range b {
				if !yield(b[i].Key) {
					return
				}
			}
		}
	}
}

// Values returns an iterator over all values in the order of Keys.
func (d *Dict[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, b := range d.buckets {
			for i := range b {
				if !yield(b[i].Value) {
					return
				}
			}
		}
	}
}

// All returns an iterator over all key-value pairs in the order of Keys.
func (d *Dict[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, b := range d.buckets {
			for i := range b {
				if !yield(b[i].Key, b[i].Value) {
					return
				}
			}
		}
	}
}

// Visit calls fn for every stored key-value pair.
// Returns immediately if fn returns true.
func (d *Dict[K, V]) Visit(fn func(key K, value V) (stop bool)) {
	for k, v := range d.All() {
		if fn(k, v) {
			return
		}
	}
}

// VisitAll calls fn for every stored key-value pair.
func (d *Dict[K, V]) VisitAll(fn func(key K, value V)) {
	for k, v := range d.All() {
		fn(k, v)
	}
}
