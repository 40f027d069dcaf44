// SPDX-License-Identifier: MIT

package dfs

import (
	"fmt"
	"slices"
	"sort"
)

// frame is one level of the explicit DFS stack.
type frame struct {
	vertex   int
	via      int // parent edge, NoEdge for the root
	depth    int
	incident []int
	next     int // index into incident of the next edge to try
}

// search holds the state of one BackEdgeCycles run.
type search struct {
	g      Multigraph
	opts   Options
	parent map[int]int // visited vertex -> parent edge of the current tree
	stack  []frame
	seen   map[string]struct{}
	cycles [][]int
}

// BackEdgeCycles runs a DFS from each root not reached by an earlier tree and
// returns every cycle closed by a back edge, as sorted edge id lists.
//
// Returns (nil, nil) when no cycle exists.
func BackEdgeCycles(g Multigraph, roots []int, opts ...Option) ([][]int, error) {
	// 1) Validate input and resolve options
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	s := &search{g: g, opts: o, seen: make(map[string]struct{})}
	reached := make(map[int]struct{})

	// 2) One tree per unreached root; parent links are per tree
	for _, root := range roots {
		if _, ok := reached[root]; ok {
			continue
		}
		s.parent = make(map[int]int)
		if err := s.run(root); err != nil {
			return nil, fmt.Errorf("dfs: BackEdgeCycles: %w", err)
		}
		for v := range s.parent {
			reached[v] = struct{}{}
		}
	}

	// 3) Deterministic output order
	sort.Slice(s.cycles, func(i, j int) bool {
		return JoinSig(s.cycles[i]) < JoinSig(s.cycles[j])
	})

	return s.cycles, nil
}

// run performs the iterative DFS of one tree; it follows the same edge order
// as the recursive formulation.
func (s *search) run(root int) error {
	s.enter(root, NoEdge, 0)
	for len(s.stack) > 0 {
		top := &s.stack[len(s.stack)-1]
		if top.next >= len(top.incident) {
			s.stack = s.stack[:len(s.stack)-1]
			continue
		}
		e := top.incident[top.next]
		top.next++
		if e < 0 {
			return fmt.Errorf("vertex %d: edge %d: %w", top.vertex, e, ErrBadEdge)
		}
		if e == top.via {
			continue // never walk back along the tree edge
		}
		s.enter(other(s.g, e, top.vertex), e, top.depth+1)
	}

	return nil
}

// enter handles arriving at v over edge via: a visited v closes a cycle,
// otherwise v is pushed unless it lies beyond MaxDepth.
func (s *search) enter(v, via, depth int) {
	if _, ok := s.parent[v]; ok {
		s.record(v, via)
		return
	}
	if s.opts.MaxDepth >= 0 && depth >= s.opts.MaxDepth {
		return
	}
	s.parent[v] = via
	s.stack = append(s.stack, frame{vertex: v, via: via, depth: depth, incident: s.g.Incident(v)})
}

// record rebuilds the cycle closed by back edge via arriving at visited vertex to.
func (s *search) record(to, via int) {
	// 1) Parent chain from `to` up to the root
	pos := make(map[int]int)
	var chain []int
	for v := to; ; {
		pos[v] = len(chain)
		pe := s.parent[v]
		if pe == NoEdge {
			break
		}
		chain = append(chain, pe)
		v = other(s.g, pe, v)
	}

	// 2) Walk up from the other end until the chain is met
	var loop []int
	for v := other(s.g, via, to); ; {
		if i, ok := pos[v]; ok {
			loop = append(loop, chain[:i]...)
			break
		}
		pe, ok := s.parent[v]
		if !ok || pe == NoEdge {
			return // no common ancestor
		}
		loop = append(loop, pe)
		v = other(s.g, pe, v)
	}
	loop = append(loop, via)

	// 3) Canonical form and dedup
	slices.Sort(loop)
	loop = slices.Compact(loop)
	sig := JoinSig(loop)
	if _, dup := s.seen[sig]; dup {
		return
	}
	s.seen[sig] = struct{}{}
	s.cycles = append(s.cycles, loop)
}

// other returns the endpoint of e opposite v (v itself for a self-loop).
func other(g Multigraph, e, v int) int {
	a, b := g.Endpoints(e)
	if a == v {
		return b
	}

	return a
}
