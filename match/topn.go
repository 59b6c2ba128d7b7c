package match

import (
	"container/heap"
	"sort"
)

// Compile time check to ensure topN satisfies the heap interface.
var _ heap.Interface = (*topN)(nil)

// topCandidate pairs a record with its library iteration sequence number.
// The sequence breaks score ties deterministically: first seen wins.
type topCandidate struct {
	record Record
	seq    int
}

// topN keeps the n highest-scoring candidates seen so far.
// It is a min-heap on (score asc, seq desc), so the weakest candidate — the
// lowest score, latest seen on ties — sits at the root and is evicted first.
type topN struct {
	limit int
	items []topCandidate
}

func newTopN(limit int) *topN {
	return &topN{limit: limit, items: make([]topCandidate, 0, limit+1)}
}

// Len returns the number of candidates currently held.
func (t *topN) Len() int { return len(t.items) }

// Less reports whether the element with index i should sort before the element with index j.
func (t *topN) Less(i, j int) bool {
	if t.items[i].record.Score != t.items[j].record.Score {
		return t.items[i].record.Score < t.items[j].record.Score
	}
	return t.items[i].seq > t.items[j].seq
}

// Swap swaps the elements with indexes i and j.
func (t *topN) Swap(i, j int) {
	t.items[i], t.items[j] = t.items[j], t.items[i]
}

// Push adds x to the heap.
func (t *topN) Push(x any) {
	item, _ := x.(topCandidate)
	t.items = append(t.items, item)
}

// Pop removes and returns the weakest candidate.
func (t *topN) Pop() any {
	old := t.items
	n := len(old)
	item := old[n-1]
	t.items = old[:n-1]
	return item
}

// Offer considers a candidate, keeping only the strongest limit entries.
func (t *topN) Offer(r Record, seq int) {
	heap.Push(t, topCandidate{record: r, seq: seq})
	if len(t.items) > t.limit {
		heap.Pop(t)
	}
}

// Records returns the held candidates sorted by score descending, ties in
// library iteration order.
func (t *topN) Records() []Record {
	sorted := make([]topCandidate, len(t.items))
	copy(sorted, t.items)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].record.Score != sorted[j].record.Score {
			return sorted[i].record.Score > sorted[j].record.Score
		}
		return sorted[i].seq < sorted[j].seq
	})

	out := make([]Record, len(sorted))
	for i, c := range sorted {
		out[i] = c.record
	}
	return out
}
