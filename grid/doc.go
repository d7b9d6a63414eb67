// Package grid treats a flat, row-major obstacle map as an 8-connected
// search space for any-angle path planning.
//
// What:
//
//   - Grid wraps an immutable []int of width×height cells (x fastest).
//     Value 0 is free space; any non-zero value (canonically 255) is a wall.
//   - Adaptor translates between (x,y) positions and linear NodeIDs,
//     enumerates neighbors with movement costs, casts line-of-sight rays
//     and evaluates the Euclidean heuristic.
//   - Labels groups free cells into 8-connected components so callers can
//     reject unreachable queries without exploring.
//
// Policies:
//
//   - Diagonal moves cost √2, orthogonal moves cost 1.
//   - A diagonal move (and a ray crossing exactly through a cell corner) is
//     rejected only when BOTH orthogonal cells beside it are walls.
//   - Out-of-range coordinates are reported with ErrOutOfBounds; nothing is
//     ever read outside the cell slice.
//
// Concurrency:
//
//   - *Grid is read-only after New and may be shared by any number of goroutines.
//   - *Adaptor keeps a reusable neighbor buffer and must stay owned by one goroutine.
//
// Complexity:
//
//   - PosToID, IDToPos, Heuristic: O(1).
//   - Neighbors: O(1) (at most 8 entries).
//   - LineOfSight: O(|dx| + |dy|).
//   - Components: O(W×H), Memory: O(W×H).
package grid
