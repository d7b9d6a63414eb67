// Package combin enumerates k-element index subsets in lexicographic order.
//
// The batch planner uses Combinations(n, 2) to list every unordered
// start/goal pair over {agent} ∪ targets. The order is fixed:
//
//	Combinations(4, 2) → 0 1, 0 2, 0 3, 1 2, 1 3, 2 3
//
// so pair 0 always joins index 0 with index 1.
package combin

import (
	"errors"
	"fmt"
)

// ErrBadArgs indicates a negative n or k.
var ErrBadArgs = errors.New("combin: n and k must be non-negative")

// Count returns the binomial coefficient C(n, k); 0 if k > n or either is negative.
func Count(n, k int) int {
	if n < 0 || k < 0 || k > n {
		return 0
	}
	if k > n-k {
		k = n - k
	}
	c := 1
	for i := 1; i <= k; i++ {
		c = c * (n - k + i) / i
	}

	return c
}

// Combinations returns every k-subset of {0..n-1} in lexicographic order,
// flattened: the result has k·C(n,k) entries and subset i occupies
// [i*k, (i+1)*k). k > n yields an empty slice; k == 0 yields one empty subset
// and therefore an empty slice as well.
//
// Complexity: O(k·C(n,k)).
func Combinations(n, k int) ([]int, error) {
	if n < 0 || k < 0 {
		return nil, fmt.Errorf("%w: n=%d k=%d", ErrBadArgs, n, k)
	}
	total := Count(n, k)
	out := make([]int, 0, k*total)
	if k == 0 || k > n {
		return out, nil
	}

	idx := make([]int, k)
	for i := range idx {
		idx[i] = i
	}
	for {
		out = append(out, idx...)

		// Advance the rightmost index that still has room.
		i := k - 1
		for i >= 0 && idx[i] == n-k+i {
			i--
		}
		if i < 0 {
			return out, nil
		}
		idx[i]++
		for j := i + 1; j < k; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
}

// Pairs is Combinations(n, 2) reshaped into [][2]int.
func Pairs(n int) ([][2]int, error) {
	flat, err := Combinations(n, 2)
	if err != nil {
		return nil, err
	}
	pairs := make([][2]int, len(flat)/2)
	for i := range pairs {
		pairs[i] = [2]int{flat[2*i], flat[2*i+1]}
	}

	return pairs, nil
}
