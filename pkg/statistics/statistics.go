// Package statistics provides operation counters for a dict.
// Counters are not synchronized, just like the dict owning them.
package statistics

import "time"

type Counters struct {
	inserts           int64
	overwrites        int64
	lookups           int64
	misses            int64
	deletes           int64
	resizes           int64
	rehashedEntries   int64
	highestResizeTime int64
	averageResizeTime int64
}

// Set records a Set call that either inserted a new entry
// or overwrote an existing one.
func (s *Counters) Set(inserted bool) {
	if inserted {
		s.inserts++
		return
	}
	s.overwrites++
}

// Lookup records a lookup by key.
func (s *Counters) Lookup(found bool) {
	s.lookups++
	if !found {
		s.misses++
	}
}

// Delete records a removal of an entry.
func (s *Counters) Delete() { s.deletes++ }

// Resize records a resize that rehashed entries and took resizeTime.
func (s *Counters) Resize(entries int, resizeTime time.Duration) {
	s.resizes++
	s.rehashedEntries += int64(entries)

	// Highest resize time
	if int64(resizeTime) > s.highestResizeTime {
		s.highestResizeTime = int64(resizeTime)
	}

	// Average resize time
	s.averageResizeTime += (int64(resizeTime) - s.averageResizeTime) / s.resizes
}

// Reset zeroes all counters.
func (s *Counters) Reset() { *s = Counters{} }

func (s Counters) GetInserts() int64 { return s.inserts }

func (s Counters) GetOverwrites() int64 { return s.overwrites }

func (s Counters) GetLookups() int64 { return s.lookups }

func (s Counters) GetMisses() int64 { return s.misses }

func (s Counters) GetDeletes() int64 { return s.deletes }

func (s Counters) GetResizes() int64 { return s.resizes }

// GetRehashedEntries returns the total number of entries
// re-inserted by all resizes.
func (s Counters) GetRehashedEntries() int64 { return s.rehashedEntries }

func (s Counters) GetHighestResizeTime() time.Duration {
	return time.Duration(s.highestResizeTime)
}

func (s Counters) GetAverageResizeTime() time.Duration {
	return time.Duration(s.averageResizeTime)
}
