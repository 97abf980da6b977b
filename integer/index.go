package integer

import (
	"github.com/fernandosanchezjr/gosampling/source"
)

// Index hands out positions in [0, count) without replacement, one partial
// Fisher-Yates step per call. Once every position has been returned the
// next call starts a new round.
type Index struct {
	Count     int
	Remaining int
	Indexes   []int
}

func NewIndex(count int) *Index {
	indexes := make([]int, count)
	for i := range indexes {
		indexes[i] = i
	}
	return &Index{Count: count, Remaining: count, Indexes: indexes}
}

// Next panics when the index is empty.
func (idx *Index) Next(src source.Source) int {
	if idx.Count == 0 {
		panic("integer: next on empty index")
	}
	if idx.Remaining == 0 {
		idx.Reset()
	}
	// count > 0, so the range is always valid
	pick, _ := Next(src, 0, idx.Remaining)
	last := idx.Remaining - 1
	idx.Indexes[pick], idx.Indexes[last] = idx.Indexes[last], idx.Indexes[pick]
	idx.Remaining = last
	return idx.Indexes[last]
}

func (idx *Index) Reset() {
	idx.Remaining = idx.Count
}

// Remove drops the given positions for all later rounds and starts a new
// round.
func (idx *Index) Remove(positions ...int) {
	removed := make(map[int]bool, len(positions))
	for _, position := range positions {
		removed[position] = true
	}
	kept := idx.Indexes[:0]
	for _, value := range idx.Indexes {
		if !removed[value] {
			kept = append(kept, value)
		}
	}
	idx.Indexes = kept
	idx.Count = len(kept)
	idx.Reset()
}
