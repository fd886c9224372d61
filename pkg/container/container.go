// Package container defines the interface shared by dict.Dict
// and the reference maps it is benchmarked against.
package container

// Mapper is a mutable key-value container.
type Mapper[K comparable, V any] interface {
	Set(K, V)
	Lookup(K) (v V, ok bool)
	Clear()
	Len() int

	// Visit calls fn for every pair and returns once fn returns true.
	Visit(fn func(K, V) (stop bool))
}
