package xxhash_test

import (
	"testing"

	"github.com/graph-guard/chaindict/pkg/xxhash"

	"github.com/pierrec/xxHash/xxHash64"
)

var GI uint64

func BenchmarkOriginal(b *testing.B) {
	in := []byte("bazzfuzz")
	h := xxHash64.New(0)
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		_, _ = h.Write(in)
		GI = h.Sum64()
		h.Reset()
	}
}

func BenchmarkCustom(b *testing.B) {
	for n := 0; n < b.N; n++ {
		GI = xxhash.Uint64(0, uint64(n))
	}
}
