package lib

import (
	"fmt"
	"math/rand"
)

// Hypergraph owns a set of vertices and hyperedges and exposes the
// accessors, label resets, and structural operations the decomposition
// engine drives everything else through. It never destroys a vertex or
// edge until the whole Hypergraph is discarded.
type Hypergraph struct {
	vs []component // vertex-side arena
	es []component // edge-side arena

	rng *rand.Rand
}

// NewHypergraph builds an empty Hypergraph whose randomized tie-breaks
// (MIW/MF/MCS ordering, set-cover's randomized variants) draw from a
// single deterministic source seeded with seed.
func NewHypergraph(seed int64) *Hypergraph {
	return &Hypergraph{rng: rand.New(rand.NewSource(seed))}
}

// AddVertex appends a new vertex and returns its id.
func (h *Hypergraph) AddVertex(name string) VertexID {
	id := len(h.vs)
	h.vs = append(h.vs, component{id: id, name: name})
	return VertexID(id)
}

// AddEdge appends a new hyperedge spanning vertices and returns its id.
// Incidences are recorded on both sides; neighbour lists are left stale
// until UpdateNeighbourhood is called.
func (h *Hypergraph) AddEdge(name string, vertices []VertexID) EdgeID {
	id := len(h.es)
	incident := make([]int, len(vertices))
	for i, v := range vertices {
		incident[i] = int(v)
		h.vs[v].incident = append(h.vs[v].incident, id)
	}
	h.es = append(h.es, component{id: id, name: name, incident: incident})
	return EdgeID(id)
}

// NumVertices returns the number of vertices currently in the vertex-side
// arena (post-dual-flip this counts whatever currently occupies that
// side).
func (h *Hypergraph) NumVertices() int { return len(h.vs) }

// NumEdges returns the number of edges in the edge-side arena.
func (h *Hypergraph) NumEdges() int { return len(h.es) }

func (h *Hypergraph) vertex(id VertexID) *component {
	if int(id) < 0 || int(id) >= len(h.vs) {
		panic(fmt.Sprintf("lib: vertex id %d out of range [0,%d)", id, len(h.vs)))
	}
	return &h.vs[id]
}

func (h *Hypergraph) edge(id EdgeID) *component {
	if int(id) < 0 || int(id) >= len(h.es) {
		panic(fmt.Sprintf("lib: edge id %d out of range [0,%d)", id, len(h.es)))
	}
	return &h.es[id]
}

// VertexName returns the display name of a vertex.
func (h *Hypergraph) VertexName(id VertexID) string { return h.vertex(id).name }

// EdgeName returns the display name of an edge.
func (h *Hypergraph) EdgeName(id EdgeID) string { return h.edge(id).name }

// VertexLabel returns a vertex's current scratch label.
func (h *Hypergraph) VertexLabel(id VertexID) int { return h.vertex(id).label }

// SetVertexLabel overwrites a vertex's scratch label.
func (h *Hypergraph) SetVertexLabel(id VertexID, val int) { h.vertex(id).label = val }

// EdgeLabel returns an edge's current scratch label.
func (h *Hypergraph) EdgeLabel(id EdgeID) int { return h.edge(id).label }

// SetEdgeLabel overwrites an edge's scratch label.
func (h *Hypergraph) SetEdgeLabel(id EdgeID, val int) { h.edge(id).label = val }

// EdgeWeight returns an edge's weight (carries MCS pre-order position).
func (h *Hypergraph) EdgeWeight(id EdgeID) int { return h.edge(id).weight }

// SetEdgeWeight overwrites an edge's weight.
func (h *Hypergraph) SetEdgeWeight(id EdgeID, val int) { h.edge(id).weight = val }

// EdgeVertices returns the vertices incident to an edge, in insertion order.
func (h *Hypergraph) EdgeVertices(id EdgeID) []VertexID {
	inc := h.edge(id).incident
	out := make([]VertexID, len(inc))
	for i, v := range inc {
		out[i] = VertexID(v)
	}
	return out
}

// VertexEdges returns the edges incident to a vertex, in insertion order.
func (h *Hypergraph) VertexEdges(id VertexID) []EdgeID {
	inc := h.vertex(id).incident
	out := make([]EdgeID, len(inc))
	for i, e := range inc {
		out[i] = EdgeID(e)
	}
	return out
}

// EdgeNeighbours returns the edges sharing a vertex with e.
func (h *Hypergraph) EdgeNeighbours(e EdgeID) []EdgeID {
	nb := h.edge(e).neighbours
	out := make([]EdgeID, len(nb))
	for i, x := range nb {
		out[i] = EdgeID(x)
	}
	return out
}

// VertexNeighbours returns the vertices sharing an edge with v.
func (h *Hypergraph) VertexNeighbours(v VertexID) []VertexID {
	nb := h.vertex(v).neighbours
	out := make([]VertexID, len(nb))
	for i, x := range nb {
		out[i] = VertexID(x)
	}
	return out
}

// EdgeCoveredIDs returns the ids of edges that e has subsumed via Reduce.
func (h *Hypergraph) EdgeCoveredIDs(e EdgeID) []EdgeID {
	cov := h.edge(e).coveredIDs
	out := make([]EdgeID, len(cov))
	for i, x := range cov {
		out[i] = EdgeID(x)
	}
	return out
}

// CoverEdgeNames expands e and every edge it has covered into display
// names, used by the GML writer.
func (h *Hypergraph) CoverEdgeNames(e EdgeID) []string {
	names := []string{h.EdgeName(e)}
	for _, c := range h.edge(e).coveredIDs {
		names = append(names, h.es[c].name)
	}
	return names
}

// ResetVertexLabels sets every vertex's label to val.
func (h *Hypergraph) ResetVertexLabels(val int) {
	for i := range h.vs {
		h.vs[i].label = val
	}
}

// ResetEdgeLabels sets every edge's label to val.
func (h *Hypergraph) ResetEdgeLabels(val int) {
	for i := range h.es {
		h.es[i].label = val
	}
}

// MakeDual swaps the roles of vertices and edges: what was the vertex-side
// arena becomes the edge-side arena and vice versa. Used once, to run MCS
// on the dual so that the result can be read back as an edge ordering.
func (h *Hypergraph) MakeDual() {
	h.vs, h.es = h.es, h.vs
}

// IsConnected reports whether the hypergraph is connected, checked via DFS
// over the edge-neighbour adjacency (two edges adjacent iff they share a
// vertex). An edgeless hypergraph is trivially connected.
func (h *Hypergraph) IsConnected() bool {
	if len(h.es) == 0 {
		return true
	}
	seen := make([]bool, len(h.es))
	stack := []int{0}
	seen[0] = true
	count := 1
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, nb := range h.es[cur].neighbours {
			if !seen[nb] {
				seen[nb] = true
				count++
				stack = append(stack, nb)
			}
		}
	}
	return count == len(h.es)
}

// UpdateNeighbourhood recomputes edge-neighbour and vertex-neighbour lists
// from the current incidences. Must be called after AddEdge/AddVertex
// calls and after any structural edit (Reduce) before IsConnected,
// collectReachEdges, or any ordering heuristic is trusted.
func (h *Hypergraph) UpdateNeighbourhood() {
	for i := range h.vs {
		h.vs[i].neighbours = h.vs[i].neighbours[:0]
	}
	for i := range h.es {
		h.es[i].neighbours = h.es[i].neighbours[:0]
	}

	seenV := make(map[[2]int]bool)
	seenE := make(map[[2]int]bool)

	for vi := range h.vs {
		inc := h.vs[vi].incident
		for a := 0; a < len(inc); a++ {
			for b := a + 1; b < len(inc); b++ {
				key := orderedPair(inc[a], inc[b])
				if !seenE[key] {
					seenE[key] = true
					h.es[inc[a]].neighbours = append(h.es[inc[a]].neighbours, inc[b])
					h.es[inc[b]].neighbours = append(h.es[inc[b]].neighbours, inc[a])
				}
			}
		}
	}
	for ei := range h.es {
		inc := h.es[ei].incident
		for a := 0; a < len(inc); a++ {
			for b := a + 1; b < len(inc); b++ {
				key := orderedPair(inc[a], inc[b])
				if !seenV[key] {
					seenV[key] = true
					h.vs[inc[a]].neighbours = append(h.vs[inc[a]].neighbours, inc[b])
					h.vs[inc[b]].neighbours = append(h.vs[inc[b]].neighbours, inc[a])
				}
			}
		}
	}
}

func orderedPair(a, b int) [2]int {
	if a < b {
		return [2]int{a, b}
	}
	return [2]int{b, a}
}

// UpdateCompSizes truncates each component's incidence slice at the first
// id marked noID, dropping the tail. This mirrors the C-array convention of
// the original store, where removal nulled a slot rather than shifting the
// array; it is run after Reduce blanks out subsumed edges' incidences.
func (h *Hypergraph) UpdateCompSizes() {
	for i := range h.vs {
		h.vs[i].incident = truncateAtSentinel(h.vs[i].incident)
	}
	for i := range h.es {
		h.es[i].incident = truncateAtSentinel(h.es[i].incident)
	}
}

func truncateAtSentinel(s []int) []int {
	for i, v := range s {
		if v == noID {
			return s[:i]
		}
	}
	return s
}

// vertexSet returns the distinct vertices incident to any of edges.
func (h *Hypergraph) vertexSet(edges []EdgeID) *compSet {
	set := newCompSet(4 * len(edges))
	for _, e := range edges {
		for _, v := range h.edge(e).incident {
			set.add(v)
		}
	}
	return set
}
