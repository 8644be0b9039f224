package lib

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/spakin/disjoint"
	"github.com/stretchr/testify/require"
)

// buildClique returns a hypergraph of n vertices with every 2-subset as an
// edge, used to exercise the union-find fast path on a dense instance the
// way the benchmark fixtures in the BalancedGo corpus do for
// GetComponents_fast.
func buildClique(n int) *Hypergraph {
	h := NewHypergraph(42)
	verts := make([]VertexID, n)
	for i := 0; i < n; i++ {
		verts[i] = h.AddVertex(fmt.Sprintf("v%d", i))
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			h.AddEdge(fmt.Sprintf("e%d_%d", i, j), []VertexID{verts[i], verts[j]})
		}
	}
	h.UpdateNeighbourhood()
	return h
}

func TestGetComponentsFastMatchesBFS(t *testing.T) {
	h := buildClique(6)
	edges := h.LiveEdges()

	var sep []EdgeID
	perm := rand.New(rand.NewSource(7)).Perm(len(edges))
	for _, i := range perm[:2] {
		sep = append(sep, edges[i])
	}

	h.markSeparator(sep)
	bfsComps := h.separate(edges)

	h.markSeparator(sep)
	elements := make(map[VertexID]*disjoint.Element, h.NumVertices())
	fastComps := h.GetComponentsFast(sep, elements)

	var bfsEdgeCount, fastEdgeCount int
	for _, c := range bfsComps {
		bfsEdgeCount += len(c.edges)
	}
	for _, c := range fastComps {
		fastEdgeCount += len(c)
	}
	require.Equal(t, bfsEdgeCount, fastEdgeCount, "BFS and union-find partitions must cover the same number of edges")
	require.Equal(t, len(bfsComps), len(fastComps), "BFS and union-find must find the same number of components")
}
