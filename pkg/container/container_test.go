package container_test

import (
	"strconv"
	"testing"

	"github.com/graph-guard/chaindict/pkg/container"
	"github.com/graph-guard/chaindict/pkg/container/gomap"
	"github.com/graph-guard/chaindict/pkg/container/linear"
	"github.com/graph-guard/chaindict/pkg/dict"
	"github.com/stretchr/testify/require"
)

var implementations = []struct {
	Name string
	Make func(capacity int) container.Mapper[string, int]
}{
	{"gomap", func(capacity int) container.Mapper[string, int] {
		return gomap.New[string, int](capacity)
	}},
	{"linear", func(capacity int) container.Mapper[string, int] {
		return linear.New[string, int](capacity)
	}},
	{"dict", func(capacity int) container.Mapper[string, int] {
		if capacity < 1 {
			capacity = dict.DefaultCapacity
		}
		return dict.New[string, int](capacity, dict.DefaultLoadFactor, nil)
	}},
}

func forEachImplT(
	t *testing.T,
	fn func(*testing.T, container.Mapper[string, int]),
) {
	for _, impl := range implementations {
		t.Run(impl.Name, func(t *testing.T) {
			fn(t, impl.Make(0))
		})
	}
}

func TestClear(t *testing.T) {
	forEachImplT(t, func(t *testing.T, m container.Mapper[string, int]) {
		numKeys := 5
		for i := 0; i < numKeys; i++ {
			m.Set(strconv.Itoa(i), i)
		}
		require.Equal(t, numKeys, m.Len())

		m.Clear()

		require.Zero(t, m.Len())
		for i := 0; i < numKeys; i++ {
			v, ok := m.Lookup(strconv.Itoa(i))
			require.Zero(t, v)
			require.False(t, ok)
		}
	})
}

func TestSet(t *testing.T) {
	forEachImplT(t, func(t *testing.T, m container.Mapper[string, int]) {
		m.Set("a", -1)
		m.Set("b", 0)
		m.Set("c", 1)
		Expect(t, m, map[string]int{
			"a": -1,
			"b": 0,
			"c": 1,
		})
		m.Set("a", 2)
		m.Set("b", 3)
		m.Set("c", 4)
		Expect(t, m, map[string]int{
			"a": 2,
			"b": 3,
			"c": 4,
		})
	})
}

func TestLookup(t *testing.T) {
	forEachImplT(t, func(t *testing.T, m container.Mapper[string, int]) {
		for i := 0; i < 100; i++ {
			m.Set(strconv.Itoa(i), i)
		}
		for i := 0; i < 100; i++ {
			v, ok := m.Lookup(strconv.Itoa(i))
			require.True(t, ok)
			require.Equal(t, i, v)
		}
		v, ok := m.Lookup("nonexistent")
		require.False(t, ok)
		require.Zero(t, v)
	})
}

func TestVisitStop(t *testing.T) {
	forEachImplT(t, func(t *testing.T, m container.Mapper[string, int]) {
		m.Set("a", 1)
		m.Set("b", 2)
		m.Set("c", 3)
		calls := 0
		m.Visit(func(string, int) bool {
			calls++
			return true
		})
		require.Equal(t, 1, calls)
	})
}

func Expect(
	t *testing.T,
	m container.Mapper[string, int],
	expect map[string]int,
) {
	t.Helper()
	require.Equal(t, len(expect), m.Len())
	actual := make(map[string]int, m.Len())
	m.Visit(func(k string, v int) bool {
		actual[k] = v
		return false
	})
	require.Equal(t, expect, actual)
}
