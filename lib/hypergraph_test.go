package lib

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHypergraphBasicAccessors(t *testing.T) {
	h, v, e := buildHypergraph(t, 1,
		[]string{"a", "b", "c"},
		[]struct {
			name  string
			verts []string
		}{
			edgeSpec("ab", "a", "b"),
			edgeSpec("bc", "b", "c"),
		},
	)

	require.Equal(t, 3, h.NumVertices())
	require.Equal(t, 2, h.NumEdges())
	require.ElementsMatch(t, []VertexID{v["a"], v["b"]}, h.EdgeVertices(e["ab"]))
	require.Contains(t, h.VertexEdges(v["b"]), e["ab"])
	require.Contains(t, h.VertexEdges(v["b"]), e["bc"])
}

func TestHypergraphOutOfRangeIsFatal(t *testing.T) {
	h, _, _ := buildHypergraph(t, 1, []string{"a"}, nil)
	require.Panics(t, func() { h.vertex(VertexID(5)) })
	require.Panics(t, func() { h.edge(EdgeID(0)) })
}

func TestIsConnected(t *testing.T) {
	connected, _, _ := buildHypergraph(t, 1,
		[]string{"a", "b", "c"},
		[]struct {
			name  string
			verts []string
		}{edgeSpec("ab", "a", "b"), edgeSpec("bc", "b", "c")},
	)
	require.True(t, connected.IsConnected())

	// S5: two disjoint triangles.
	disconnected, _, _ := buildHypergraph(t, 1,
		[]string{"a", "b", "c", "x", "y", "z"},
		[]struct {
			name  string
			verts []string
		}{
			edgeSpec("ab", "a", "b"), edgeSpec("bc", "b", "c"), edgeSpec("ac", "a", "c"),
			edgeSpec("xy", "x", "y"), edgeSpec("yz", "y", "z"), edgeSpec("xz", "x", "z"),
		},
	)
	require.False(t, disconnected.IsConnected())
}

func TestMakeDualIsInvolution(t *testing.T) {
	h, _, _ := buildHypergraph(t, 1,
		[]string{"a", "b", "c"},
		[]struct {
			name  string
			verts []string
		}{edgeSpec("ab", "a", "b"), edgeSpec("bc", "b", "c")},
	)
	nv, ne := h.NumVertices(), h.NumEdges()
	h.MakeDual()
	require.Equal(t, ne, h.NumVertices())
	require.Equal(t, nv, h.NumEdges())
	h.MakeDual()
	require.Equal(t, nv, h.NumVertices())
	require.Equal(t, ne, h.NumEdges())
}

// S4: a dual-reducible instance. reduce must drop {a,b,c} and record its
// id under {a,b,c,d}.
func TestReduceDropsSubsumedEdge(t *testing.T) {
	h, _, e := buildHypergraph(t, 1,
		[]string{"a", "b", "c", "d"},
		[]struct {
			name  string
			verts []string
		}{
			edgeSpec("abc", "a", "b", "c"),
			edgeSpec("abcd", "a", "b", "c", "d"),
		},
	)
	h.Reduce(false)

	live := h.LiveEdges()
	require.Equal(t, []EdgeID{e["abcd"]}, live)
	require.Equal(t, []EdgeID{e["abc"]}, h.EdgeCoveredIDs(e["abcd"]))
}

// TestReduceIndexRetreat pins the documented quirk: once edge j is found
// subsumed by edge i, the loop re-examines the same slot j after removal
// rather than advancing past it. With three edges where both edge 1 and
// edge 2 are subsets of edge 0, the retreat must not stop the sweep of i
// early: both must be caught in that single sweep.
func TestReduceIndexRetreat(t *testing.T) {
	h, _, e := buildHypergraph(t, 1,
		[]string{"a", "b", "c"},
		[]struct {
			name  string
			verts []string
		}{
			edgeSpec("abc", "a", "b", "c"),
			edgeSpec("a", "a"),
			edgeSpec("b", "b"),
		},
	)
	h.Reduce(false)

	live := h.LiveEdges()
	require.Equal(t, []EdgeID{e["abc"]}, live)
	require.ElementsMatch(t, []EdgeID{e["a"], e["b"]}, h.EdgeCoveredIDs(e["abc"]))
}

func TestUpdateCompSizesIdempotentAfterReduce(t *testing.T) {
	h, _, _ := buildHypergraph(t, 1,
		[]string{"a", "b", "c", "d"},
		[]struct {
			name  string
			verts []string
		}{
			edgeSpec("abc", "a", "b", "c"),
			edgeSpec("abcd", "a", "b", "c", "d"),
		},
	)
	h.Reduce(false)
	h.UpdateCompSizes()
	h.UpdateNeighbourhood()
	first := snapshotNeighbours(h)

	h.UpdateCompSizes()
	h.UpdateNeighbourhood()
	second := snapshotNeighbours(h)

	require.Equal(t, first, second)
}

func snapshotNeighbours(h *Hypergraph) [][]int {
	out := make([][]int, len(h.vs))
	for i := range h.vs {
		out[i] = append([]int(nil), h.vs[i].neighbours...)
	}
	return out
}

func TestResetLabels(t *testing.T) {
	h, v, e := buildHypergraph(t, 1, []string{"a"}, []struct {
		name  string
		verts []string
	}{edgeSpec("a", "a")})
	h.SetVertexLabel(v["a"], 7)
	h.SetEdgeLabel(e["a"], 9)
	h.ResetVertexLabels(0)
	h.ResetEdgeLabels(-1)
	require.Equal(t, 0, h.VertexLabel(v["a"]))
	require.Equal(t, -1, h.EdgeLabel(e["a"]))
}
