package lib

// Covers reports whether every vertex in nodes occurs in at least one edge
// of edges. Cover must not be called unless this holds; doing so anyway is
// a hard error, since no heuristic can complete a cover that does not
// exist.
func (h *Hypergraph) Covers(nodes []VertexID, edges []EdgeID) bool {
	for _, v := range nodes {
		found := false
		for _, e := range edges {
			if containsVertex(h.edge(e).incident, int(v)) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func containsVertex(incident []int, v int) bool {
	for _, x := range incident {
		if x == v {
			return true
		}
	}
	return false
}

// Cover returns a minimal-known-cardinality subset of edges covering every
// vertex in nodes. It runs four heuristic variants (deterministic and
// randomized versions of two different greedy strategies) and keeps the
// smallest result. Cover panics if !Covers(nodes, edges); that is a
// programmer error, not a normal failure.
//
// Cover uses the vertex label field as scratch (0 open, -1 covered) for
// the duration of the call; callers must not rely on label values
// surviving a Cover call.
func (h *Hypergraph) Cover(nodes []VertexID, edges []EdgeID) []EdgeID {
	if !h.Covers(nodes, edges) {
		panic("lib: Cover called with a vertex set that cannot be covered by the candidate edges")
	}
	if len(nodes) == 0 {
		return nil
	}

	variants := [][]EdgeID{
		h.coverVar1(nodes, edges, false),
		h.coverVar1(nodes, edges, true),
		h.coverVar2(nodes, edges, false),
		h.coverVar2(nodes, edges, true),
	}

	best := variants[0]
	for _, v := range variants[1:] {
		if len(v) < len(best) {
			best = v
		}
	}
	return best
}

// coverVar1 is the unweighted greedy variant: seed with every edge that
// uniquely covers some required vertex, then repeatedly pick the edge
// covering the most still-uncovered required vertices.
func (h *Hypergraph) coverVar1(nodes []VertexID, edges []EdgeID, random bool) []EdgeID {
	for _, v := range nodes {
		h.SetVertexLabel(v, 0)
	}

	var chosen []EdgeID
	chosenSet := make(map[EdgeID]bool)

	for _, v := range nodes {
		var only EdgeID
		count := 0
		for _, e := range edges {
			if containsVertex(h.edge(e).incident, int(v)) {
				count++
				only = e
			}
		}
		if count == 1 && !chosenSet[only] {
			chosen = append(chosen, only)
			chosenSet[only] = true
			h.markCovered(only, nodes)
		}
	}

	for h.anyUncovered(nodes) {
		next := h.bestCoveringEdge(nodes, edges, chosenSet, random)
		chosen = append(chosen, next)
		chosenSet[next] = true
		h.markCovered(next, nodes)
	}
	return chosen
}

func (h *Hypergraph) markCovered(e EdgeID, nodes []VertexID) {
	for _, v := range nodes {
		if h.VertexLabel(v) == 0 && containsVertex(h.edge(e).incident, int(v)) {
			h.SetVertexLabel(v, -1)
		}
	}
}

func (h *Hypergraph) anyUncovered(nodes []VertexID) bool {
	for _, v := range nodes {
		if h.VertexLabel(v) == 0 {
			return true
		}
	}
	return false
}

func (h *Hypergraph) bestCoveringEdge(nodes []VertexID, edges []EdgeID, chosen map[EdgeID]bool, random bool) EdgeID {
	best := EdgeID(-1)
	bestCount := -1
	var ties []EdgeID
	for _, e := range edges {
		if chosen[e] {
			continue
		}
		count := 0
		for _, v := range nodes {
			if h.VertexLabel(v) == 0 && containsVertex(h.edge(e).incident, int(v)) {
				count++
			}
		}
		switch {
		case count > bestCount:
			best, bestCount = e, count
			ties = []EdgeID{e}
		case count == bestCount:
			ties = append(ties, e)
		}
	}
	if random {
		return ties[h.rng.Intn(len(ties))]
	}
	return lowestID(ties)
}

func lowestID(ids []EdgeID) EdgeID {
	best := ids[0]
	for _, id := range ids[1:] {
		if id < best {
			best = id
		}
	}
	return best
}

// coverVar2 is the weighted greedy variant. Each required vertex's weight
// is 1 - (#candidate edges containing it)/|edges|, favouring vertices that
// are hard to cover; each candidate edge's weight is the sum of its
// still-uncovered required vertices' weights.
func (h *Hypergraph) coverVar2(nodes []VertexID, edges []EdgeID, random bool) []EdgeID {
	for _, v := range nodes {
		h.SetVertexLabel(v, 0)
	}

	vWeight := make(map[VertexID]float64, len(nodes))
	for _, v := range nodes {
		n := 0
		for _, e := range edges {
			if containsVertex(h.edge(e).incident, int(v)) {
				n++
			}
		}
		vWeight[v] = 1 - float64(n)/float64(len(edges))
	}

	var chosen []EdgeID
	chosenSet := make(map[EdgeID]bool)

	for h.anyUncovered(nodes) {
		best := EdgeID(-1)
		bestW := -1.0
		var ties []EdgeID
		for _, e := range edges {
			if chosenSet[e] {
				continue
			}
			w := 0.0
			for _, v := range nodes {
				if h.VertexLabel(v) == 0 && containsVertex(h.edge(e).incident, int(v)) {
					w += vWeight[v]
				}
			}
			switch {
			case w > bestW:
				best, bestW = e, w
				ties = []EdgeID{e}
			case w == bestW:
				ties = append(ties, e)
			}
		}
		if random {
			best = ties[h.rng.Intn(len(ties))]
		} else {
			best = lowestID(ties)
		}
		chosen = append(chosen, best)
		chosenSet[best] = true
		h.markCovered(best, nodes)
	}
	return chosen
}
