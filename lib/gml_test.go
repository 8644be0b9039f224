package lib

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWriteGMLProducesWellFormedOutput(t *testing.T) {
	h, _, e := buildHypergraph(t, 1,
		[]string{"a", "b", "c"},
		[]struct {
			name  string
			verts []string
		}{edgeSpec("ab", "a", "b"), edgeSpec("bc", "b", "c")},
	)
	root := &HTNode{Chi: []VertexID{0, 1, 2}, Lambda: []EdgeID{e["ab"], e["bc"]}}

	var buf strings.Builder
	require.NoError(t, WriteGML(&buf, root, h))

	out := buf.String()
	require.True(t, strings.HasPrefix(out, "graph ["))
	require.True(t, strings.HasSuffix(out, "]\n"))
	require.Contains(t, out, "node [")
	require.Contains(t, out, "ab")
	require.Contains(t, out, "bc")
}

func TestWriteGMLEmitsOneEdgeBlockPerParentLink(t *testing.T) {
	h, _, e := buildHypergraph(t, 1,
		[]string{"a", "b", "c"},
		[]struct {
			name  string
			verts []string
		}{edgeSpec("ab", "a", "b"), edgeSpec("bc", "b", "c")},
	)
	root := &HTNode{Chi: []VertexID{0, 1}, Lambda: []EdgeID{e["ab"]}}
	child := &HTNode{Chi: []VertexID{1, 2}, Lambda: []EdgeID{e["bc"]}}
	root.InsChild(child)

	var buf strings.Builder
	require.NoError(t, WriteGML(&buf, root, h))

	require.Equal(t, 1, strings.Count(buf.String(), "edge ["))
	require.Equal(t, 2, strings.Count(buf.String(), "node ["))
}
