package lib

import "sort"

// SubsetSearch is a resumable enumerator over subsets of at most k
// candidate edges whose union covers a required vertex set (the
// "connector"). Construct one with NewSubsetSearch, pull the first result
// with setInitSubset, and subsequent ones with setNextSubset until it
// reports no more.
//
// The search explores combinations depth-first in the order edges are
// given (SubsetSearch itself sorts them, descending by how many required
// vertices each covers), preferring to include earlier edges -- so the
// first solution found is the lexicographically-first by index.
// setNextSubset resumes by popping the most recently included edge and continuing the
// search past it, which is the textbook definition of "next" for a
// depth-first combination enumerator.
type SubsetSearch struct {
	h *Hypergraph

	edges  []EdgeID // candidates, sorted descending by coverage, inside-first ties
	inComp []bool   // parallel to edges
	cover  [][]int  // parallel to edges: indices into required this edge covers

	covWeights []int // suffix sum of per-edge coverage counts
	k          int
	required   []VertexID
	covered    []bool // parallel to required

	chosen []int // indices into edges, ascending
}

// NewSubsetSearch builds a search for up to k candidates drawn from
// candidates that together cover required. inside reports, for each
// candidate edge, whether it lies inside the current component (as
// opposed to being an outer-boundary edge) -- at least one inside edge
// must appear in any accepted subset.
func NewSubsetSearch(h *Hypergraph, required []VertexID, candidates []EdgeID, inside func(EdgeID) bool, k int) *SubsetSearch {
	s := &SubsetSearch{
		h:        h,
		k:        k,
		required: append([]VertexID(nil), required...),
	}

	type cand struct {
		e      EdgeID
		cover  []int
		inside bool
	}
	cands := make([]cand, len(candidates))
	for i, e := range candidates {
		var cov []int
		for ri, v := range required {
			if containsVertex(h.edge(e).incident, int(v)) {
				cov = append(cov, ri)
			}
		}
		cands[i] = cand{e: e, cover: cov, inside: inside(e)}
	}
	sort.SliceStable(cands, func(i, j int) bool {
		if len(cands[i].cover) != len(cands[j].cover) {
			return len(cands[i].cover) > len(cands[j].cover)
		}
		if cands[i].inside != cands[j].inside {
			return cands[i].inside
		}
		return false
	})

	s.edges = make([]EdgeID, len(cands))
	s.inComp = make([]bool, len(cands))
	s.cover = make([][]int, len(cands))
	for i, c := range cands {
		s.edges[i] = c.e
		s.inComp[i] = c.inside
		s.cover[i] = c.cover
	}

	s.covWeights = make([]int, len(s.edges)+1)
	for i := len(s.edges) - 1; i >= 0; i-- {
		s.covWeights[i] = s.covWeights[i+1] + len(s.cover[i])
	}

	return s
}

// setInitSubset returns the first valid separator subset, or ok=false if
// none exists with at most k edges.
func setInitSubset(s *SubsetSearch) ([]EdgeID, bool) {
	s.chosen = s.chosen[:0]
	s.covered = make([]bool, len(s.required))
	if !s.descend(0) {
		return nil, false
	}
	return s.materialize(), true
}

// setNextSubset resumes the search after the previous result (from
// setInitSubset or a prior setNextSubset) and returns the next valid
// subset in depth-first order, or ok=false when the search is exhausted.
// Resuming can require unwinding more than one previously chosen edge: if
// popping the last-chosen edge and resuming past it finds nothing, the
// next-to-last is popped too, and so on, mirroring descend's own
// recursive backtracking one frame at a time.
func setNextSubset(s *SubsetSearch) ([]EdgeID, bool) {
	for len(s.chosen) > 0 {
		last := s.chosen[len(s.chosen)-1]
		s.chosen = s.chosen[:len(s.chosen)-1]
		s.recomputeCovered()
		if s.descend(last + 1) {
			return s.materialize(), true
		}
	}
	return nil, false
}

func (s *SubsetSearch) materialize() []EdgeID {
	out := make([]EdgeID, len(s.chosen))
	for i, idx := range s.chosen {
		out[i] = s.edges[idx]
	}
	return out
}

func (s *SubsetSearch) countUncovered() int {
	n := 0
	for _, c := range s.covered {
		if !c {
			n++
		}
	}
	return n
}

func (s *SubsetSearch) hasInsideChosen() bool {
	for _, idx := range s.chosen {
		if s.inComp[idx] {
			return true
		}
	}
	return false
}

func (s *SubsetSearch) include(pos int) {
	s.chosen = append(s.chosen, pos)
	for _, ri := range s.cover[pos] {
		s.covered[ri] = true
	}
}

func (s *SubsetSearch) recomputeCovered() {
	for i := range s.covered {
		s.covered[i] = false
	}
	for _, pos := range s.chosen {
		for _, ri := range s.cover[pos] {
			s.covered[ri] = true
		}
	}
}

// descend is coverNodes: depth-first search from position pos in s.edges,
// with s.chosen/s.covered already reflecting every decision made at
// positions < pos. It returns true (leaving s.chosen set to the answer)
// the moment a selection covers every required vertex and contains at
// least one inside edge.
func (s *SubsetSearch) descend(pos int) bool {
	if s.countUncovered() == 0 && s.hasInsideChosen() {
		return true
	}
	if pos >= len(s.edges) || len(s.chosen) >= s.k {
		return false
	}

	if uncovered := s.countUncovered(); uncovered > 0 {
		window := s.k - len(s.chosen)
		hi := pos + window
		var bound int
		if hi >= len(s.covWeights) {
			bound = s.covWeights[pos]
		} else {
			bound = s.covWeights[pos] - s.covWeights[hi]
		}
		if bound < uncovered || bound == 0 {
			return false
		}
	}

	saved := append([]bool(nil), s.covered...)
	s.include(pos)
	if s.descend(pos + 1) {
		return true
	}
	s.chosen = s.chosen[:len(s.chosen)-1]
	s.covered = saved

	return s.descend(pos + 1)
}
