package dict

import (
	"github.com/graph-guard/chaindict/pkg/math"
	"github.com/graph-guard/chaindict/pkg/statistics"
)

// Stats is a snapshot of the bucket layout and operation counters.
type Stats struct {
	Capacity     int
	Size         int
	Load         float64
	EmptyBuckets int
	LongestChain int
	Counters     statistics.Counters
}

// Stats returns a snapshot of d's layout and counters.
func (d *Dict[K, V]) Stats() Stats {
	s := Stats{
		Capacity: d.capacity,
		Size:     d.size,
		Load:     math.Ratio(d.size, d.capacity),
		Counters: d.stats,
	}
	for _, b := range d.buckets {
		if len(b) == 0 {
			s.EmptyBuckets++
		}
		s.LongestChain = math.Max(s.LongestChain, len(b))
	}
	return s
}

// ResetStats zeroes the operation counters.
func (d *Dict[K, V]) ResetStats() {
	d.stats.Reset()
}
