// Package anyangle finds any-angle paths on 2D occupancy grids and plans
// batches of them in parallel.
//
// What is in the box?
//
//	grid      – immutable obstacle grid, id/position conversion, 8-connected
//	            neighbors, supercover line of sight, component labels
//	lazytheta – Lazy Theta* search with heuristic weight and reusable state
//	combin    – deterministic k-subsets (all index pairs of a point set)
//	batch     – every pair over {agent} ∪ targets on a sequential, arena or
//	            dynamically scheduled backend, with identical results
//	host      – flat integer entry points for an embedding runtime that
//	            holds a global execution lock
//	tour      – visiting order over a batch cost table
//
// Conventions:
//
//   - Cells are row-major with x fastest; 0 is free, anything else a wall.
//   - Diagonal moves and rays may pass a corner next to one wall but never
//     squeeze between two.
//   - Unreachable is a result, not an error: nil path, cost +Inf.
//   - Errors are package sentinels, compared with errors.Is.
//
// Quick start:
//
//	g, _ := grid.New(cells, width, height)
//	res, _ := lazytheta.FindPath(g, grid.Pos{X: 1, Y: 1}, grid.Pos{X: 68, Y: 18})
//
//	rep, _ := batch.Run(ctx, g, agent, targets, batch.WithBackend(batch.Dynamic{}))
//	route, _ := tour.Plan(rep.CostMatrix(), tour.DefaultOptions())
package anyangle
