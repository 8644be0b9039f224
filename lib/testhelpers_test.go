package lib

// buildHypergraph is a small test helper: it builds a Hypergraph from a
// vertex name list and an ordered list of (edge name, vertex names)
// pairs, wiring neighbours before returning so callers never have to
// remember to.
func buildHypergraph(t interface {
	Helper()
}, seed int64, vertexNames []string, edges []struct {
	name  string
	verts []string
}) (*Hypergraph, map[string]VertexID, map[string]EdgeID) {
	t.Helper()
	h := NewHypergraph(seed)
	vids := make(map[string]VertexID, len(vertexNames))
	for _, name := range vertexNames {
		vids[name] = h.AddVertex(name)
	}
	eids := make(map[string]EdgeID, len(edges))
	for _, e := range edges {
		vs := make([]VertexID, len(e.verts))
		for i, vn := range e.verts {
			vs[i] = vids[vn]
		}
		eids[e.name] = h.AddEdge(e.name, vs)
	}
	h.UpdateNeighbourhood()
	return h, vids, eids
}

func edgeSpec(name string, verts ...string) struct {
	name  string
	verts []string
} {
	return struct {
		name  string
		verts []string
	}{name: name, verts: verts}
}
