// Package host exposes the search to an embedding runtime through flat
// integer encodings: positions are [x, y], grids are row-major cell slices,
// paths come back as x0,y0,x1,y1,... and unreachable pairs as an empty path
// with cost +Inf.
//
// The three batch entry points differ only in execution strategy:
//
//	FindPathMany        – sequential, keeps the host lock
//	FindPathManyArena   – fixed-size arena, releases the host lock
//	FindPathManyDynamic – dynamic schedule, releases the host lock
//
// A Boundary carries the host's execution lock (for example the mutex that
// serializes calls from an interpreter) and the batch options to apply.
package host
