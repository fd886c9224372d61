package hasher_test

import (
	"errors"
	"testing"

	"github.com/dchest/siphash"
	"github.com/graph-guard/chaindict/pkg/hasher"
	"github.com/graph-guard/chaindict/pkg/xxhash"
	"github.com/stretchr/testify/require"
	"github.com/zeebo/xxh3"
)

type point struct{ X, Y int }

type label string

func TestDefault(t *testing.T) {
	t.Run("string", func(t *testing.T) {
		h := hasher.Default[string]()
		require.IsType(t, &hasher.XXH3[string]{}, h)
		require.Equal(t, xxh3.HashSeed([]byte("key"), 0), h.Hash("key"))
	})
	t.Run("int", func(t *testing.T) {
		h := hasher.Default[int]()
		require.IsType(t, &hasher.Integer[int]{}, h)
		require.Equal(t, xxhash.Uint64(0, 42), h.Hash(42))
	})
	t.Run("uint8", func(t *testing.T) {
		h := hasher.Default[uint8]()
		require.Equal(t, xxhash.Uint64(0, 7), h.Hash(7))
	})
	t.Run("struct", func(t *testing.T) {
		h := hasher.Default[point]()
		require.IsType(t, &hasher.Comparable[point]{}, h)
		require.Equal(t, h.Hash(point{1, 2}), h.Hash(point{1, 2}))
	})
	t.Run("named_string", func(t *testing.T) {
		h := hasher.Default[label]()
		require.IsType(t, &hasher.Comparable[label]{}, h)
		require.Equal(t, h.Hash("a"), h.Hash(label("a")))
	})
}

func TestComparableUnhashable(t *testing.T) {
	h := hasher.NewComparable[any]()
	require.Panics(t, func() { h.Hash([]int{1}) })
}

func TestByName(t *testing.T) {
	for _, td := range []struct {
		name   string
		expect hasher.Hasher[string]
	}{
		{hasher.NameDefault, &hasher.XXH3[string]{Seed: 9}},
		{"", &hasher.XXH3[string]{Seed: 9}},
		{hasher.NameXXH3, &hasher.XXH3[string]{Seed: 9}},
		{hasher.NameSipHash, &hasher.SipHash[string]{K0: 9, K1: 9}},
	} {
		t.Run(td.name, func(t *testing.T) {
			h, err := hasher.ByName[string](td.name, 9)
			require.NoError(t, err)
			require.Equal(t, td.expect, h)
		})
	}

	t.Run("maphash", func(t *testing.T) {
		h, err := hasher.ByName[int](hasher.NameMapHash, 9)
		require.NoError(t, err)
		require.IsType(t, &hasher.Comparable[int]{}, h)
	})

	t.Run("unsupported_key", func(t *testing.T) {
		h, err := hasher.ByName[int](hasher.NameSipHash, 0)
		require.Nil(t, h)
		require.True(t, errors.Is(err, hasher.ErrUnsupportedKey))
	})

	t.Run("unknown", func(t *testing.T) {
		h, err := hasher.ByName[string]("md5", 0)
		require.Nil(t, h)
		require.Error(t, err)
		require.False(t, hasher.Valid("md5"))
	})
}

func TestSipHash(t *testing.T) {
	h := &hasher.SipHash[string]{K0: 1, K1: 2}
	require.Equal(t, siphash.Hash(1, 2, []byte("key")), h.Hash("key"))
}

func TestFunc(t *testing.T) {
	h := hasher.Func[string](func(s string) uint64 { return uint64(len(s)) })
	require.Equal(t, uint64(3), h.Hash("abc"))
}
