// Package tour orders an agent's visits to its targets.
//
// Plan takes the symmetric pairwise cost table produced by a batch run
// (index 0 = agent, 1..n = targets; +Inf = no path) and returns an open
// route that starts at the agent and visits every reachable target once.
//
// The route is built in two steps:
//
//   - nearest-neighbour seed, ties to the lower index;
//   - first-improvement open 2-opt (segment reversal), accepting a move
//     only when it shortens the route by more than Options.Eps.
//
// Targets the agent cannot reach are returned in Route.Unreachable and
// never appear in Route.Order. Reachability on a grid is an equivalence,
// so every pair of reachable targets has a finite cost as well.
//
// Complexity: O(n²) for the seed, O(n²) per 2-opt pass.
package tour
