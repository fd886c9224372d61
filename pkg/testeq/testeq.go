// Package testeq reports differences between expected and actual
// key-value contents through a testing.TB-like writer.
package testeq

import (
	"iter"
	"maps"
	"slices"

	"golang.org/x/exp/constraints"
)

// Writer is implemented by *testing.T and *testing.B.
type Writer interface {
	Helper()
	Errorf(fmt string, v ...any)
}

// Maps reports every key that is missing in actual, unexpected in actual
// or mapped to a value check rejects. Keys are reported in ascending order.
func Maps[K constraints.Ordered, V any](
	writer Writer,
	title string,
	expected, actual map[K]V,
	check func(expected, actual V) (errMsg string),
	stringify func(V) string,
) (ok bool) {
	writer.Helper()
	ok = true

	for _, k := range slices.Sorted(maps.Keys(expected)) {
		ev := expected[k]
		av, found := actual[k]
		if !found {
			writer.Errorf(
				"missing %s %v (%s)",
				title, k, stringify(ev),
			)
			ok = false
			continue
		}
		if msg := check(ev, av); msg != "" {
			writer.Errorf(
				"mismatching %s %v: %s",
				title, k, msg,
			)
			ok = false
		}
	}

	for _, k := range slices.Sorted(maps.Keys(actual)) {
		if _, found := expected[k]; !found {
			writer.Errorf(
				"unexpected %s %v (%s)",
				title, k, stringify(actual[k]),
			)
			ok = false
		}
	}

	return ok
}

// Seq2 is like Maps but reads actual from an iterator and additionally
// reports every key the iterator yields more than once.
func Seq2[K constraints.Ordered, V any](
	writer Writer,
	title string,
	expected map[K]V,
	actual iter.Seq2[K, V],
	check func(expected, actual V) (errMsg string),
	stringify func(V) string,
) (ok bool) {
	writer.Helper()
	ok = true

	m := make(map[K]V, len(expected))
	for k, v := range actual {
		if _, found := m[k]; found {
			writer.Errorf(
				"duplicate %s %v (%s)",
				title, k, stringify(v),
			)
			ok = false
			continue
		}
		m[k] = v
	}

	return Maps(writer, title, expected, m, check, stringify) && ok
}
