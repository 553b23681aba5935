package cycles

import "sort"

// LengthBucket summarizes the cycles of one length.
type LengthBucket struct {
	// Length is the cycle length the bucket covers.
	Length int

	// Count is how many distinct cycles have this length.
	Count int

	// States is Length * Count, the number of states covered.
	States uint64

	// Share is States as a fraction of the full state space.
	Share float64
}

// Lengths returns the distinct cycle lengths in ascending order.
func (r *Result) Lengths() []int {
	lengths := make([]int, 0, len(r.ByLength))
	for l := range r.ByLength {
		lengths = append(lengths, l)
	}
	sort.Ints(lengths)
	return lengths
}

// Distribution returns one bucket per distinct cycle length, ascending.
// Summing States over all buckets gives CyclicStates; it equals TotalStates
// exactly when the transition function is a bijection (no tails).
func (r *Result) Distribution() []LengthBucket {
	buckets := make([]LengthBucket, 0, len(r.ByLength))
	for _, l := range r.Lengths() {
		count := len(r.ByLength[l])
		states := uint64(l) * uint64(count)
		buckets = append(buckets, LengthBucket{
			Length: l,
			Count:  count,
			States: states,
			Share:  float64(states) / float64(r.TotalStates),
		})
	}
	return buckets
}
