package labs

// Energy computes the LABS energy of a sequence: the sum over all shifts
// k in [1, N-1] of the squared aperiodic autocorrelation
//
//	C_k = sum_{i=0}^{N-k-1} s[i]*s[i+k]
//
// The result is an exact non-negative integer, invariant under a global
// sign flip and under reversal. A single-element sequence has energy 0.
func Energy(s Sequence) (int, error) {
	if err := s.Validate(); err != nil {
		return 0, err
	}
	return energy(s), nil
}

// energy is the unchecked O(N²) evaluation used by the search loops once
// a sequence has been validated.
func energy(s Sequence) int {
	n := len(s)
	total := 0
	for k := 1; k < n; k++ {
		c := 0
		for i := 0; i < n-k; i++ {
			c += int(s[i]) * int(s[i+k])
		}
		total += c * c
	}
	return total
}
