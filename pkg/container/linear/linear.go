// package linear provides a container.Mapper implementation
// backed by a slice and linear search for benchmark reference.
// It behaves like a dict with a single bucket that never resizes.
package linear

type pair[K comparable, V any] struct {
	Key   K
	Value V
}

type Linear[K comparable, V any] struct {
	d []pair[K, V]
}

func New[K comparable, V any](capacity int) *Linear[K, V] {
	return &Linear[K, V]{
		d: make([]pair[K, V], 0, capacity),
	}
}

func (m *Linear[K, V]) Set(key K, value V) {
	for i := range m.d {
		if m.d[i].Key == key {
			m.d[i].Value = value
			return
		}
	}
	m.d = append(m.d, pair[K, V]{
		Key:   key,
		Value: value,
	})
}

func (m *Linear[K, V]) Lookup(key K) (v V, ok bool) {
	for i := range m.d {
		if m.d[i].Key == key {
			return m.d[i].Value, true
		}
	}
	return v, false
}

func (m *Linear[K, V]) Clear() {
	m.d = m.d[:0]
}

func (m *Linear[K, V]) Len() int {
	return len(m.d)
}

func (m *Linear[K, V]) Visit(fn func(K, V) bool) {
	for i := range m.d {
		if fn(m.d[i].Key, m.d[i].Value) {
			break
		}
	}
}
