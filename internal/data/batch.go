package data

import "math/rand"

// Batches splits the indices [0, n) into consecutive mini-batches of size.
//
// size <= 0 or size >= n yields a single full batch in natural order.
// Otherwise indices are shuffled with rng first (nil means the package-level
// source); the last batch may be short.
func Batches(n, size int, rng *rand.Rand) [][]int {
	if n <= 0 {
		return nil
	}
	if size <= 0 || size >= n {
		all := make([]int, n)
		for i := range all {
			all[i] = i
		}
		return [][]int{all}
	}

	var idx []int
	if rng != nil {
		idx = rng.Perm(n)
	} else {
		idx = rand.Perm(n)
	}

	batches := make([][]int, 0, (n+size-1)/size)
	for start := 0; start < n; start += size {
		batches = append(batches, idx[start:min(start+size, n)])
	}
	return batches
}
