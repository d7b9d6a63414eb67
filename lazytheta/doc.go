// Package lazytheta implements Lazy Theta*, an any-angle shortest-path search
// over a grid.Adaptor.
//
// Theta* differs from A* in that a node's parent need not be a grid
// neighbor: when the grandparent can see a successor, the successor is
// attached straight to it, which yields taut, non-stair-stepped paths.
// The lazy variant assumes that visibility holds while generating
// successors and verifies it only when a node is popped for expansion;
// if the ray is blocked the node falls back to its best expanded neighbor
// and is pushed again instead of being closed. Raycasts therefore run once
// per expanded node instead of once per generated neighbor.
//
// Heuristic weight:
//
//	f = g + Weight·h, with h the Euclidean distance to the goal.
//	The Euclidean heuristic is admissible, but Lazy Theta* is not optimal
//	even at Weight = 1: parents are restricted to the visible ancestors the
//	expansion order happens to produce. Weight = 1 is therefore not a lower
//	bound on cost, and a greedy weight occasionally returns a slightly
//	cheaper path than Weight = 1 on the same query. Larger weights expand
//	far fewer nodes. DefaultWeight (100) is the production setting; see
//	BenchmarkSearch_Weight1 and BenchmarkSearch_WeightDefault.
//
// Open set policy:
//
//	Lazy decrease-key. Improving a node pushes a new entry; a popped entry is
//	dropped when its node is closed or when its recorded g no longer matches
//	the node (stale).
//
// Tie-break:
//
//	Entries with equal f are ordered by lower h (TieLowerH, default) and then
//	by lower NodeID. TieLowerID skips the h comparison. The order is total,
//	so a search is fully deterministic for a given grid and options.
//
// Reuse:
//
//	A Searcher owns its node table and open set. After a search it must be
//	reset with GenerateNodes before the next one; Search returns
//	ErrDirtyState otherwise. Searchers are not safe for concurrent use;
//	concurrent callers build one Searcher (and grid.Adaptor) each over a
//	shared *grid.Grid.
//
// Complexity:
//
//   - Time:  O(N log N) heap operations plus one O(W+H) raycast per expansion.
//   - Space: O(N) node table, N = width×height.
package lazytheta
