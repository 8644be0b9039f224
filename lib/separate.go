package lib

import "github.com/spakin/disjoint"

// separatedComponent represents one connected piece produced by separate: its
// edges and the vertices it shares with the separator that produced it
// (its connector).
type separatedComponent struct {
	edges     []EdgeID
	connector []VertexID
	starter   EdgeID // the edge collectReachEdges started from; a stable identity for memoization
}

// markSeparator labels every edge in sep with -1 and every vertex
// touched by those edges with -1; every other edge and vertex is reset to
// 0. This is the labeling contract collectReachEdges and separate expect
// on entry.
func (h *Hypergraph) markSeparator(sep []EdgeID) {
	h.ResetEdgeLabels(0)
	h.ResetVertexLabels(0)
	for _, e := range sep {
		h.SetEdgeLabel(e, -1)
	}
	for _, e := range sep {
		for _, v := range h.EdgeVertices(e) {
			h.SetVertexLabel(v, -1)
		}
	}
}

// collectReachEdges grows one connected component by BFS from start
// through vertices labeled 0 (interior), recording every vertex labeled
// -1 encountered at the frontier as a connector vertex. Traversed edges
// and vertices are relabeled to compID (a positive id) so separate can
// both detect "already visited" and report which component a vertex
// belongs to.
func (h *Hypergraph) collectReachEdges(start EdgeID, compID int) (edges []EdgeID, connector []VertexID) {
	h.SetEdgeLabel(start, compID)
	queue := []EdgeID{start}
	conn := newCompSet(8)

	for len(queue) > 0 {
		e := queue[0]
		queue = queue[1:]
		edges = append(edges, e)

		for _, v := range h.EdgeVertices(e) {
			switch h.VertexLabel(v) {
			case -1:
				conn.add(int(v))
			case 0:
				h.SetVertexLabel(v, compID)
				for _, ve := range h.VertexEdges(v) {
					if h.EdgeLabel(ve) == 0 {
						h.SetEdgeLabel(ve, compID)
						queue = append(queue, ve)
					}
				}
			}
		}
	}

	for _, id := range conn.items {
		connector = append(connector, VertexID(id))
	}
	return edges, connector
}

// separate repeatedly seeds a new component from the first still-unlabeled
// edge in edges, until every edge has been assigned to some component (or
// is part of the separator itself, label -1). Callers must have called
// markSeparator first.
func (h *Hypergraph) separate(edges []EdgeID) []separatedComponent {
	var comps []separatedComponent
	compID := 1
	for _, e := range edges {
		if h.EdgeLabel(e) != 0 {
			continue
		}
		compEdges, connector := h.collectReachEdges(e, compID)
		comps = append(comps, separatedComponent{edges: compEdges, connector: connector, starter: e})
		compID++
	}
	return comps
}

// GetComponentsFast is the union-find fast path for component separation,
// benchmarked against the BFS-based separate/collectReachEdges in the
// teacher package this engine descends from. It is not used by the
// decomposition engine itself -- decomp relies on collectReachEdges for
// its starter-edge identity and label side effects -- but is exposed for
// callers that only need component membership, not starters or
// connectors, and want the faster amortized cost of union-find over
// repeated BFS on dense instances.
func (h *Hypergraph) GetComponentsFast(sep []EdgeID, elements map[VertexID]*disjoint.Element) [][]EdgeID {
	h.markSeparator(sep)

	for v := range h.vs {
		if _, ok := elements[VertexID(v)]; !ok {
			elements[VertexID(v)] = disjoint.NewElement()
		}
	}

	remaining := make([]EdgeID, 0, len(h.es))
	for e := range h.es {
		if h.EdgeLabel(EdgeID(e)) != -1 {
			remaining = append(remaining, EdgeID(e))
		}
	}

	for _, e := range remaining {
		verts := h.EdgeVertices(e)
		first := VertexID(noID)
		for _, v := range verts {
			if h.VertexLabel(v) == -1 {
				continue // separator-touched vertex, not part of any single component's spine
			}
			if first == noID {
				first = v
				continue
			}
			disjoint.Union(elements[first], elements[v])
		}
	}

	groups := make(map[*disjoint.Element][]EdgeID)
	var order []*disjoint.Element
	for _, e := range remaining {
		verts := h.EdgeVertices(e)
		var root *disjoint.Element
		for _, v := range verts {
			if h.VertexLabel(v) != -1 {
				root = elements[v].Find()
				break
			}
		}
		if root == nil {
			// every vertex is separator-touched: the edge is a component of its own
			root = disjoint.NewElement()
		}
		if _, ok := groups[root]; !ok {
			order = append(order, root)
		}
		groups[root] = append(groups[root], e)
	}

	out := make([][]EdgeID, 0, len(order))
	for _, root := range order {
		out = append(out, groups[root])
	}
	return out
}

// divideCompEdges partitions compEdges into inner edges (touching no
// boundary vertex) and boundary edges (touching at least one). Boundary
// edges are ordered so that edges belonging to the current component
// (inComp true) come first, followed by edges from outside it; within the
// "outside" run, an edge whose boundary-vertex footprint is a subset of
// another outside edge's footprint is dropped -- it would behave
// identically as a separator candidate, so keeping both is redundant.
func divideCompEdges(h *Hypergraph, compEdges []EdgeID, inComp map[EdgeID]bool, boundary []VertexID) (inner, boundaryEdges []EdgeID) {
	boundarySet := make(map[VertexID]bool, len(boundary))
	for _, v := range boundary {
		boundarySet[v] = true
	}

	footprint := func(e EdgeID) *compSet {
		fp := newCompSet(len(boundary))
		for _, v := range h.EdgeVertices(e) {
			if boundarySet[v] {
				fp.add(int(v))
			}
		}
		return fp
	}

	var insideB, outsideB []EdgeID
	for _, e := range compEdges {
		fp := footprint(e)
		if fp.len() == 0 {
			inner = append(inner, e)
			continue
		}
		if inComp[e] {
			insideB = append(insideB, e)
		} else {
			outsideB = append(outsideB, e)
		}
	}

	keep := make([]bool, len(outsideB))
	for i := range keep {
		keep[i] = true
	}
	fps := make([]*compSet, len(outsideB))
	for i, e := range outsideB {
		fps[i] = footprint(e)
	}
	for i := range outsideB {
		if !keep[i] {
			continue
		}
		for j := range outsideB {
			if i == j || !keep[j] {
				continue
			}
			if subsetOf(fps[j], fps[i]) {
				keep[j] = false
			}
		}
	}
	var filteredOutside []EdgeID
	for i, e := range outsideB {
		if keep[i] {
			filteredOutside = append(filteredOutside, e)
		}
	}

	boundaryEdges = append(boundaryEdges, insideB...)
	boundaryEdges = append(boundaryEdges, filteredOutside...)
	return inner, boundaryEdges
}

// isSplitSep reports whether the separator that produced childConnectors
// actually divides connector across more than one component -- i.e.
// whether at least two distinct components each retain part of it.
// A separator that funnels the whole connector into a single child
// component achieves nothing and should be rejected by the caller.
func isSplitSep(connector []VertexID, childConnectors [][]VertexID) bool {
	touched := 0
	for _, cc := range childConnectors {
		set := make(map[VertexID]bool, len(cc))
		for _, v := range cc {
			set[v] = true
		}
		for _, v := range connector {
			if set[v] {
				touched++
				break
			}
		}
	}
	return touched > 1
}
