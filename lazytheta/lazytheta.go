package lazytheta

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/anyangle/grid"
)

// none marks a node without parent.
const none grid.NodeID = -1

type status uint8

const (
	unvisited status = iota
	open
	closed
)

// node is the per-search state of one cell.
//
// parent is the node the path is attached to (possibly far away, any-angle).
// pred is the node whose expansion produced the current g; it is always a
// closed grid neighbor, so parent == pred needs no visibility check.
type node struct {
	g      float64
	parent grid.NodeID
	pred   grid.NodeID
	status status
}

// Searcher runs Lazy Theta* over one grid.Adaptor. It owns its node table
// and open set and must not be shared between goroutines.
type Searcher struct {
	adaptor *grid.Adaptor
	options Options
	nodes   []node
	pq      openSet
	goal    grid.NodeID
	dirty   bool
	stats   Stats
}

// New allocates a Searcher with a fresh node table over adaptor.
// Panics with ErrNilAdaptor if adaptor is nil.
//
// Complexity: O(N) time and memory, N = width×height.
func New(adaptor *grid.Adaptor, opts ...Option) *Searcher {
	if adaptor == nil {
		panic(ErrNilAdaptor.Error())
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	s := &Searcher{
		adaptor: adaptor,
		options: cfg,
		nodes:   make([]node, adaptor.Size()),
		pq:      openSet{lowerH: cfg.TieBreak == TieLowerH},
	}
	s.GenerateNodes()

	return s
}

// Options returns the effective configuration.
func (s *Searcher) Options() Options { return s.options }

// GenerateNodes resets every node to {g=+Inf, parent=none, unvisited} and
// empties the open set, so the Searcher can run another query on the same
// grid without reallocating.
//
// Complexity: O(N).
func (s *Searcher) GenerateNodes() {
	inf := math.Inf(1)
	for i := range s.nodes {
		s.nodes[i] = node{g: inf, parent: none, pred: none, status: unvisited}
	}
	s.pq.reset()
	s.stats = Stats{}
	s.dirty = false
}

// SearchPos is Search on positions. Out-of-range positions yield
// grid.ErrOutOfBounds.
func (s *Searcher) SearchPos(start, goal grid.Pos) (Result, error) {
	sid, err := s.adaptor.PosToID(start)
	if err != nil {
		return Result{}, fmt.Errorf("lazytheta: start: %w", err)
	}
	gid, err := s.adaptor.PosToID(goal)
	if err != nil {
		return Result{}, fmt.Errorf("lazytheta: goal: %w", err)
	}

	return s.Search(sid, gid)
}

// Search finds a path from start to goal.
//
// Behavior:
//  1. Invalid ids → grid.ErrOutOfBounds; a used Searcher → ErrDirtyState.
//  2. A wall at start or goal, or endpoints in different components
//     (when Labels are configured) → Unreachable() without exploring.
//  3. start == goal → Path [start], Cost 0.
//  4. Otherwise Lazy Theta*; an exhausted open set → Unreachable().
//
// The returned Cost equals the sum of Euclidean segment lengths along Path.
func (s *Searcher) Search(start, goal grid.NodeID) (Result, error) {
	if !s.adaptor.Valid(start) {
		_, err := s.adaptor.IDToPos(start)
		return Result{}, fmt.Errorf("lazytheta: start: %w", err)
	}
	if !s.adaptor.Valid(goal) {
		_, err := s.adaptor.IDToPos(goal)
		return Result{}, fmt.Errorf("lazytheta: goal: %w", err)
	}
	if s.dirty {
		return Result{}, ErrDirtyState
	}
	s.dirty = true
	s.goal = goal

	res := s.run(start, goal)
	s.options.Logger.Debug("lazytheta: search finished",
		"start", int(start), "goal", int(goal),
		"found", res.Found, "cost", res.Cost,
		"expanded", res.Stats.Expanded, "reopened", res.Stats.Reopened,
		"los_checks", res.Stats.LOSChecks)

	return res, nil
}

// run executes the search on validated ids.
func (s *Searcher) run(start, goal grid.NodeID) Result {
	if !s.adaptor.Passable(start) || !s.adaptor.Passable(goal) {
		return Unreachable()
	}
	if start == goal {
		s.nodes[start] = node{g: 0, parent: start, pred: start, status: closed}
		return Result{Path: []grid.Pos{s.pos(start)}, Cost: 0, Found: true}
	}
	if lb := s.options.Labels; lb != nil && !lb.Connected(start, goal) {
		return Unreachable()
	}

	// 1) Seed the open set with the start node, attached to itself.
	s.nodes[start] = node{g: 0, parent: start, pred: start, status: open}
	s.push(start)

	// 2) Main loop: pop, verify lazily, close, expand.
	for s.pq.Len() > 0 {
		e := heap.Pop(&s.pq).(*entry)
		id := e.id
		n := &s.nodes[id]

		// Drop stale duplicates.
		if n.status == closed || e.g != n.g {
			continue
		}

		// Lazy verification: the parent was assumed visible at generation time.
		if n.parent != n.pred {
			s.stats.LOSChecks++
			if !s.adaptor.LineOfSight(id, n.parent) {
				s.repair(id)
				s.push(id)
				s.stats.Reopened++
				continue
			}
		}

		if id == goal {
			res := Result{Path: s.reconstruct(start, goal), Cost: n.g, Found: true}
			res.Stats = s.stats
			return res
		}

		n.status = closed
		s.stats.Expanded++
		s.expand(id)
	}

	// 3) Open set exhausted.
	res := Unreachable()
	res.Stats = s.stats

	return res
}

// expand generates the successors of cur. Each one is tentatively attached
// to cur's parent (any-angle shortcut) when that is no longer than going
// through cur, without checking visibility yet.
func (s *Searcher) expand(cur grid.NodeID) {
	c := s.nodes[cur]
	gp := c.parent
	gpG := s.nodes[gp].g

	for _, nb := range s.adaptor.Neighbors(cur) {
		m := &s.nodes[nb.ID]
		if m.status == closed {
			continue
		}
		viaCur := c.g + nb.Cost
		viaGP := gpG + s.adaptor.Heuristic(gp, nb.ID)

		parent, g := cur, viaCur
		if viaGP <= viaCur {
			parent, g = gp, viaGP
		}
		if g < m.g {
			m.g = g
			m.parent = parent
			m.pred = cur
			m.status = open
			s.push(nb.ID)
		}
	}
}

// repair re-attaches id to the closed grid neighbor giving the lowest
// g(m) + cost(m, id). The neighbor that generated id is always a candidate,
// so a route always exists.
func (s *Searcher) repair(id grid.NodeID) {
	n := &s.nodes[id]
	best, bestG := n.pred, math.Inf(1)
	for _, nb := range s.adaptor.Neighbors(id) {
		m := s.nodes[nb.ID]
		if m.status != closed {
			continue
		}
		if g := m.g + nb.Cost; g < bestG || (g == bestG && nb.ID < best) {
			best, bestG = nb.ID, g
		}
	}
	n.parent = best
	n.pred = best
	n.g = bestG
}

// push inserts id with its current g into the open set.
func (s *Searcher) push(id grid.NodeID) {
	g := s.nodes[id].g
	h := s.adaptor.Heuristic(id, s.goal)
	heap.Push(&s.pq, &entry{id: id, g: g, h: h, f: g + s.options.Weight*h})
}

// reconstruct follows parent links from goal back to start and returns the
// positions in start→goal order.
func (s *Searcher) reconstruct(start, goal grid.NodeID) []grid.Pos {
	var rev []grid.Pos
	at := goal
	for steps := 0; steps <= len(s.nodes); steps++ {
		rev = append(rev, s.pos(at))
		if at == start {
			break
		}
		at = s.nodes[at].parent
	}
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}

	return rev
}

func (s *Searcher) pos(id grid.NodeID) grid.Pos {
	p, _ := s.adaptor.IDToPos(id)
	return p
}

// FindPath runs a single query on g with a fresh Adaptor and Searcher.
func FindPath(g *grid.Grid, start, goal grid.Pos, opts ...Option) (Result, error) {
	return New(grid.NewAdaptor(g), opts...).SearchPos(start, goal)
}
