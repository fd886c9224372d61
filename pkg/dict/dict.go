// Package dict provides a hash table using separate chaining.
// Keys are placed into one of capacity buckets by their hash modulo
// capacity and each bucket is scanned linearly. The bucket array is
// doubled and every entry re-inserted as soon as a Set finds the
// number of stored entries per bucket above the load factor.
// A Dict never shrinks.
//
// A Dict is not safe for concurrent use.
package dict

import (
	"fmt"
	"iter"
	"reflect"
	"slices"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/graph-guard/chaindict/pkg/hasher"
	"github.com/graph-guard/chaindict/pkg/math"
	"github.com/graph-guard/chaindict/pkg/statistics"
	plog "github.com/phuslu/log"
)

const (
	DefaultCapacity   = 8
	DefaultLoadFactor = 2.0 / 3.0
)

// Dict maps keys to values.
type Dict[K comparable, V any] struct {
	capacity   int
	size       int
	loadFactor float64
	buckets    [][]Entry[K, V]
	hasher     hasher.Hasher[K]
	log        *plog.Logger
	stats      statistics.Counters
}

// Source is a readable key-value source accepted by Update.
type Source[K comparable, V any] interface {
	Keys() iter.Seq[K]
	Get(K) (V, error)
}

// New creates an empty dict with capacity buckets that resizes once
// the number of entries per bucket exceeds loadFactor.
// Neither capacity nor loadFactor is validated, a capacity below 1
// makes every keyed operation panic.
// hasher.Default is used if h is nil.
func New[K comparable, V any](
	capacity int,
	loadFactor float64,
	h hasher.Hasher[K],
) *Dict[K, V] {
	if h == nil {
		h = hasher.Default[K]()
	}
	return &Dict[K, V]{
		capacity:   capacity,
		loadFactor: loadFactor,
		buckets:    makeBuckets[K, V](capacity),
		hasher:     h,
	}
}

// NewDefault creates an empty dict with DefaultCapacity,
// DefaultLoadFactor and the default hasher.
func NewDefault[K comparable, V any]() *Dict[K, V] {
	return New[K, V](DefaultCapacity, DefaultLoadFactor, nil)
}

// SetLogger makes d log resizes to l at debug level.
// Logging is disabled if l is nil.
func (d *Dict[K, V]) SetLogger(l *plog.Logger) {
	d.log = l
}

func makeBuckets[K comparable, V any](capacity int) [][]Entry[K, V] {
	if capacity < 0 {
		capacity = 0
	}
	return make([][]Entry[K, V], capacity)
}

// Set associates key with value overwriting any existing association.
//
// The load factor is checked before key is looked up, hence a Set
// overwriting an existing key may still trigger a resize.
func (d *Dict[K, V]) Set(key K, value V) {
	d.stats.Set(d.set(key, value))
}

func (d *Dict[K, V]) set(key K, value V) (inserted bool) {
	if math.Ratio(d.size, d.capacity) > d.loadFactor {
		d.resize()
	}

	hash := d.hasher.Hash(key)
	b := &d.buckets[d.index(hash)]
	for i := range *b {
		if (*b)[i].Key == key {
			(*b)[i].Value = value
			return false
		}
	}

	*b = append(*b, newEntry(key, hash, value))
	d.size++
	return true
}

// Get returns the value associated with key.
// Returns ErrorKeyNotFound if key doesn't exist.
func (d *Dict[K, V]) Get(key K) (value V, err error) {
	if e := d.find(key); e != nil {
		return e.Value, nil
	}
	return value, &ErrorKeyNotFound[K]{Key: key}
}

// GetOr returns the value associated with key,
// otherwise returns def.
func (d *Dict[K, V]) GetOr(key K, def V) V {
	if v, err := d.Get(key); err == nil {
		return v
	}
	return def
}

// Lookup returns (value, true) if key exists,
// otherwise returns (zeroValue, false).
func (d *Dict[K, V]) Lookup(key K) (value V, ok bool) {
	if e := d.find(key); e != nil {
		return e.Value, true
	}
	return value, false
}

// Contains returns true if key exists.
func (d *Dict[K, V]) Contains(key K) bool {
	return d.find(key) != nil
}

func (d *Dict[K, V]) find(key K) *Entry[K, V] {
	e := d.entry(key)
	d.stats.Lookup(e != nil)
	return e
}

// entry is find without statistics.
func (d *Dict[K, V]) entry(key K) *Entry[K, V] {
	b := d.buckets[d.index(d.hasher.Hash(key))]
	for i := range b {
		if b[i].Key == key {
			return &b[i]
		}
	}
	return nil
}

// Delete removes key.
// Returns ErrorKeyNotFound if key doesn't exist.
func (d *Dict[K, V]) Delete(key K) error {
	if _, ok := d.remove(key); !ok {
		return &ErrorKeyNotFound[K]{Key: key}
	}
	return nil
}

// Pop removes key and returns the value that was associated with it.
// Returns ErrorKeyNotFound if key doesn't exist.
func (d *Dict[K, V]) Pop(key K) (value V, err error) {
	if e, ok := d.remove(key); ok {
		return e.Value, nil
	}
	return value, &ErrorKeyNotFound[K]{Key: key}
}

// PopOr removes key and returns the value that was associated with it.
// If key doesn't exist def is returned, unless def is a nil pointer,
// interface, map, slice, channel or function, which counts as
// no default at all and makes PopOr return ErrorKeyNotFound.
func (d *Dict[K, V]) PopOr(key K, def V) (value V, err error) {
	if e, ok := d.remove(key); ok {
		return e.Value, nil
	}
	if isNil(def) {
		return value, &ErrorKeyNotFound[K]{Key: key}
	}
	return def, nil
}

func (d *Dict[K, V]) remove(key K) (e Entry[K, V], ok bool) {
	i := d.index(d.hasher.Hash(key))
	b := d.buckets[i]
	for j := range b {
		if b[j].Key == key {
			e = b[j]
			d.buckets[i] = slices.Delete(b, j, j+1)
			d.size--
			d.stats.Delete()
			return e, true
		}
	}
	return e, false
}

func isNil[V any](v V) bool {
	r := reflect.ValueOf(&v).Elem()
	switch r.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice,
		reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return r.IsNil()
	}
	return false
}

// Clear removes all entries. The capacity is preserved.
func (d *Dict[K, V]) Clear() {
	d.buckets, d.size = makeBuckets[K, V](d.capacity), 0
}

// Update sets every key-value pair read from src in
// the iteration order of src. Pairs set before src fails
// remain set.
func (d *Dict[K, V]) Update(src Source[K, V]) error {
	for k := range src.Keys() {
		v, err := src.Get(k)
		if err != nil {
			return fmt.Errorf("reading key '%v': %w", k, err)
		}
		d.Set(k, v)
	}
	return nil
}

// Len returns the number of stored key-value pairs.
func (d *Dict[K, V]) Len() int {
	return d.size
}

// Capacity returns the current number of buckets.
func (d *Dict[K, V]) Capacity() int {
	return d.capacity
}

// LoadFactor returns the load factor d was created with.
func (d *Dict[K, V]) LoadFactor() float64 {
	return d.loadFactor
}

// Equal returns true if d and o hold the same associations.
// Values are compared using cmp.Equal including unexported fields,
// capacity and hasher are ignored. Statistics of neither dict change.
func (d *Dict[K, V]) Equal(o *Dict[K, V]) bool {
	if d.size != o.size {
		return false
	}
	for k, v := range d.All() {
		e := o.entry(k)
		if e == nil || !cmp.Equal(v, e.Value, exportAll) {
			return false
		}
	}
	return true
}

var exportAll = cmp.Exporter(func(reflect.Type) bool { return true })

func (d *Dict[K, V]) index(hash uint64) int {
	return int(hash % uint64(d.capacity))
}

// resize doubles the capacity and re-inserts all entries
// in bucket order through the regular insertion path.
func (d *Dict[K, V]) resize() {
	start := time.Now()
	old, oldCapacity := d.buckets, d.capacity

	d.capacity *= 2
	d.buckets, d.size = makeBuckets[K, V](d.capacity), 0
	for _, b := range old {
		for i := range b {
			d.set(b[i].Key, b[i].Value)
		}
	}

	took := time.Since(start)
	d.stats.Resize(d.size, took)
	if d.log != nil {
		d.log.Debug().
			Int("capacity_old", oldCapacity).
			Int("capacity", d.capacity).
			Int("size", d.size).
			Dur("took", took).
			Msg("resized")
	}
}
