package lib

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// A path c-a-b-d: separating on the middle edge (a,b) should split the rest
// into two components, each reporting the one separator vertex it touches
// as its connector.
func TestSeparateSplitsIntoComponents(t *testing.T) {
	h, v, e := buildHypergraph(t, 1,
		[]string{"a", "b", "c", "d"},
		[]struct {
			name  string
			verts []string
		}{
			edgeSpec("sep", "a", "b"),
			edgeSpec("ac", "a", "c"),
			edgeSpec("bd", "b", "d"),
		},
	)
	_ = v
	sep := []EdgeID{e["sep"]}
	h.markSeparator(sep)

	comps := h.separate([]EdgeID{e["sep"], e["ac"], e["bd"]})
	require.Len(t, comps, 2)

	var allEdges []EdgeID
	for _, c := range comps {
		allEdges = append(allEdges, c.edges...)
		require.Len(t, c.connector, 1)
	}
	require.ElementsMatch(t, []EdgeID{e["ac"], e["bd"]}, allEdges)
}

func TestDivideCompEdgesPartitionsInnerAndBoundary(t *testing.T) {
	h, v, e := buildHypergraph(t, 1,
		[]string{"a", "b", "c"},
		[]struct {
			name  string
			verts []string
		}{
			edgeSpec("inner", "c"),
			edgeSpec("boundary", "a", "c"),
		},
	)
	inComp := map[EdgeID]bool{e["inner"]: true, e["boundary"]: true}
	inner, boundary := divideCompEdges(h, []EdgeID{e["inner"], e["boundary"]}, inComp, []VertexID{v["a"]})
	require.Equal(t, []EdgeID{e["inner"]}, inner)
	require.Equal(t, []EdgeID{e["boundary"]}, boundary)
}

func TestIsSplitSep(t *testing.T) {
	connector := []VertexID{1, 2}
	split := isSplitSep(connector, [][]VertexID{{1}, {2}})
	require.True(t, split)

	notSplit := isSplitSep(connector, [][]VertexID{{1, 2}})
	require.False(t, notSplit)
}
