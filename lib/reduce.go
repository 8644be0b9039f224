package lib

// Reduce drops any edge whose vertex set is contained in another edge's,
// recording the subsumed edge's id on the surviving edge's coveredIDs.
// With finalOnly set, only the edge with the highest current index may act
// as a keeper -- used by callers that want a single canonical "last edge"
// standing in for a run of duplicates/subsets, rather than letting an
// earlier edge absorb a later one.
//
// The removal loop mirrors a quirk in the array-based original: once edge
// j is found to be subsumed by edge i, the loop retries at the same i with
// j held at its current position rather than advancing to j+1. Here edges
// are only flagged dead, never shifted, so the retried slot j holds the
// edge just removed; it is skipped and the sweep of i goes on at j+1.
func (h *Hypergraph) Reduce(finalOnly bool) {
	alive := make([]bool, len(h.es))
	for i := range alive {
		alive[i] = true
	}
	sets := make([]*compSet, len(h.es))
	for i := range h.es {
		sets[i] = compSetOf(h.es[i].incident...)
	}

	for i := 0; i < len(h.es); i++ {
		if !alive[i] {
			continue
		}
		for j := i + 1; j < len(h.es); j++ {
			if !alive[j] {
				continue
			}
			if finalOnly {
				if subsetOf(sets[i], sets[j]) {
					h.subsume(EdgeID(j), EdgeID(i))
					alive[i] = false
					break
				}
				continue
			}
			switch {
			case subsetOf(sets[j], sets[i]):
				h.subsume(EdgeID(i), EdgeID(j))
				alive[j] = false
				j-- // restart comparisons at the same i, revisiting slot j
			case subsetOf(sets[i], sets[j]):
				h.subsume(EdgeID(j), EdgeID(i))
				alive[i] = false
				j = len(h.es) // end the sweep of j, i is gone
			}
		}
	}

	h.compactDeadEdges(alive)
}

// subsetOf reports whether every id in a also occurs in b.
func subsetOf(a, b *compSet) bool {
	for _, x := range a.items {
		if !b.contains(x) {
			return false
		}
	}
	return true
}

// subsume records that keeper now stands in for dead, along with every edge
// dead already stood in for. Incidences are removed later, by
// compactDeadEdges.
func (h *Hypergraph) subsume(keeper, dead EdgeID) {
	h.es[keeper].coveredIDs = append(h.es[keeper].coveredIDs, int(dead))
	h.es[keeper].coveredIDs = append(h.es[keeper].coveredIDs, h.es[dead].coveredIDs...)
}

// compactDeadEdges removes every edge marked !alive from the vertex
// incidence lists; the edge row itself is left in the arena (ids remain
// stable) but its own incident slice is cleared so it is no longer
// mistaken for a live edge by any code iterating incidences.
func (h *Hypergraph) compactDeadEdges(alive []bool) {
	for vi := range h.vs {
		kept := h.vs[vi].incident[:0]
		for _, e := range h.vs[vi].incident {
			if alive[e] {
				kept = append(kept, e)
			}
		}
		h.vs[vi].incident = kept
	}
	for ei, ok := range alive {
		if !ok {
			h.es[ei].incident = nil
		}
	}
}

// LiveEdges returns the ids of edges that have not been subsumed by Reduce
// (or that were never reduced at all).
func (h *Hypergraph) LiveEdges() []EdgeID {
	var out []EdgeID
	for i := range h.es {
		if h.es[i].incident != nil {
			out = append(out, EdgeID(i))
		}
	}
	return out
}
