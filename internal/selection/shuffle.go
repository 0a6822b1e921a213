package selection

import "math/rand"

// Shuffle returns a copy of in reordered by an unbiased Fisher-Yates
// pass: every permutation of the input is equally likely. The input
// slice is never touched.
func Shuffle[T any](r *rand.Rand, in []T) []T {
	out := make([]T, len(in))
	copy(out, in)
	for i := len(out) - 1; i > 0; i-- {
		j := r.Intn(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}
