package tour

import "math"

// Plan computes a visiting order over cost. See the package documentation.
//
// Errors: ErrTooSmall, ErrNonSquare, ErrNegativeCost, ErrDisconnected.
func Plan(cost [][]float64, opts Options) (Route, error) {
	n := len(cost)
	if n == 0 {
		return Route{}, ErrTooSmall
	}
	for _, row := range cost {
		if len(row) != n {
			return Route{}, ErrNonSquare
		}
		for _, x := range row {
			if math.IsNaN(x) || x < 0 {
				return Route{}, ErrNegativeCost
			}
		}
	}

	// 1) Split targets by reachability from the agent.
	var (
		visit       []int
		unreachable []int
	)
	for t := 1; t < n; t++ {
		if math.IsInf(cost[0][t], 1) {
			unreachable = append(unreachable, t)
		} else {
			visit = append(visit, t)
		}
	}

	// 2) Seed, then improve.
	order, err := nearestNeighbour(cost, visit)
	if err != nil {
		return Route{}, err
	}
	twoOpt(cost, order, opts)

	return Route{Order: order, Cost: Cost(cost, order), Unreachable: unreachable}, nil
}

// Cost sums cost[order[i-1]][order[i]] along an open route.
func Cost(cost [][]float64, order []int) float64 {
	sum := 0.0
	for i := 1; i < len(order); i++ {
		sum += cost[order[i-1]][order[i]]
	}

	return round1e9(sum)
}

// nearestNeighbour builds an open route from 0 over visit, always moving to
// the cheapest unvisited target (lower index on ties).
func nearestNeighbour(cost [][]float64, visit []int) ([]int, error) {
	order := make([]int, 1, len(visit)+1)
	used := make([]bool, len(visit))
	cur := 0
	for range visit {
		best, bestCost := -1, math.Inf(1)
		for j, t := range visit {
			if !used[j] && cost[cur][t] < bestCost {
				best, bestCost = j, cost[cur][t]
			}
		}
		if best < 0 {
			return nil, ErrDisconnected
		}
		used[best] = true
		cur = visit[best]
		order = append(order, cur)
	}

	return order, nil
}

// twoOpt applies first-improvement 2-opt to an open route in place. The
// first element stays fixed; the last edge may be dropped by reversing a
// suffix, since an open route has no closing edge.
//
// For cut indices 1 ≤ i < k ≤ n−1, with a=T[i−1], b=T[i], c=T[k] and
// d=T[k+1] (absent when k is last), reversing T[i..k] changes the length by
// w(a,c) + w(b,d) − w(a,b) − w(c,d).
func twoOpt(cost [][]float64, order []int, opts Options) {
	if opts.MaxIters < 0 {
		return
	}
	n := len(order)
	eps := math.Max(opts.Eps, 0)
	accepted := 0
	for {
		improved := false
		for i := 1; i < n-1 && !improved; i++ {
			for k := i + 1; k < n; k++ {
				a, b, c := order[i-1], order[i], order[k]
				delta := cost[a][c] - cost[a][b]
				if k+1 < n {
					d := order[k+1]
					delta += cost[b][d] - cost[c][d]
				}
				if math.IsNaN(delta) || delta >= -eps {
					continue
				}
				reverse(order, i, k)
				accepted++
				improved = true
				break
			}
		}
		if !improved || (opts.MaxIters > 0 && accepted >= opts.MaxIters) {
			return
		}
	}
}

func reverse(s []int, i, k int) {
	for ; i < k; i, k = i+1, k-1 {
		s[i], s[k] = s[k], s[i]
	}
}

// round1e9 stabilizes accumulated float sums for comparisons.
func round1e9(x float64) float64 {
	if math.IsInf(x, 0) || math.IsNaN(x) {
		return x
	}

	return math.Round(x*1e9) / 1e9
}
