package accumulator

import (
	"sort"
	"sync"

	"morphembed/internal/domain"
)

// entry holds the running state for one morpheme: the element-wise sum
// of every added vector and the number of additions.
type entry struct {
	sum   []float64
	count int
}

// Table maps morpheme keys to running mean accumulators. Accumulators
// are created lazily on first add and never removed.
type Table struct {
	mu      sync.RWMutex
	entries map[domain.MorphemeKey]*entry
}

// Row is one line of the final listing: a morpheme key, its mean vector,
// and how many vectors contributed to it.
type Row struct {
	Key   domain.MorphemeKey
	Mean  []float64
	Count int
}

// New creates an empty table.
func New() *Table {
	return &Table{entries: make(map[domain.MorphemeKey]*entry)}
}

// Add folds vector into the accumulator for key, creating it on first
// use. A vector longer than the stored sum widens the sum with zero
// padding; all vectors share the embedder's fixed dimension in normal
// operation, so widening is purely defensive.
func (t *Table) Add(key domain.MorphemeKey, vector []float64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	e, ok := t.entries[key]
	if !ok {
		e = &entry{sum: make([]float64, len(vector))}
		t.entries[key] = e
	}
	if len(e.sum) < len(vector) {
		widened := make([]float64, len(vector))
		copy(widened, e.sum)
		e.sum = widened
	}
	for i, v := range vector {
		e.sum[i] += v
	}
	e.count++
}

// Mean returns the current mean vector for key and whether the key
// exists. A zero-count accumulator (unreachable through Add) yields a
// zero vector of the stored dimension.
func (t *Table) Mean(key domain.MorphemeKey) ([]float64, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	e, ok := t.entries[key]
	if !ok {
		return nil, false
	}
	return e.mean(), true
}

// Len returns the number of distinct morpheme keys seen so far.
func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.entries)
}

// Rows lists every (key, mean, count) sorted by key: kind first
// (prefix < root < suffix), then text. The order is total, so repeated
// runs over the same input produce identical listings.
func (t *Table) Rows() []Row {
	t.mu.RLock()
	defer t.mu.RUnlock()
	rows := make([]Row, 0, len(t.entries))
	for key, e := range t.entries {
		rows = append(rows, Row{Key: key, Mean: e.mean(), Count: e.count})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Key.Less(rows[j].Key) })
	return rows
}

// Merge folds other into t: per key, element-wise sum of sums and sum of
// counts. The operation is associative and commutative, so independently
// built tables can be combined in any order.
func (t *Table) Merge(other *Table) {
	other.mu.RLock()
	defer other.mu.RUnlock()
	t.mu.Lock()
	defer t.mu.Unlock()
	for key, oe := range other.entries {
		e, ok := t.entries[key]
		if !ok {
			e = &entry{sum: make([]float64, len(oe.sum))}
			t.entries[key] = e
		}
		if len(e.sum) < len(oe.sum) {
			widened := make([]float64, len(oe.sum))
			copy(widened, e.sum)
			e.sum = widened
		}
		for i, v := range oe.sum {
			e.sum[i] += v
		}
		e.count += oe.count
	}
}

func (e *entry) mean() []float64 {
	out := make([]float64, len(e.sum))
	if e.count == 0 {
		return out
	}
	scale := float64(e.count)
	for i, v := range e.sum {
		out[i] = v / scale
	}
	return out
}
