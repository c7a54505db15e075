package domain_test

// deterministicRNG returns values from a pre-set sequence.
type deterministicRNG struct {
	values []int
	idx    int
}

func (r *deterministicRNG) Intn(n int) int {
	v := r.values[r.idx%len(r.values)] % n
	r.idx++
	return v
}

// countingRNG cycles through [0, n) so every index is drawn in turn.
type countingRNG struct{ next int }

func (r *countingRNG) Intn(n int) int {
	v := r.next % n
	r.next++
	return v
}
