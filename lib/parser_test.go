package lib

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseHypergraphBasic(t *testing.T) {
	h, err := ParseHypergraph("e1(a,b,c), e2(c,d)", 1)
	require.NoError(t, err)
	require.Equal(t, 4, h.NumVertices())
	require.Equal(t, 2, h.NumEdges())

	require.Equal(t, "e1", h.EdgeName(0))
	require.Equal(t, "e2", h.EdgeName(1))

	var names []string
	for _, v := range h.EdgeVertices(0) {
		names = append(names, h.VertexName(v))
	}
	require.ElementsMatch(t, []string{"a", "b", "c"}, names)
}

func TestParseHypergraphSharesVertexAcrossEdges(t *testing.T) {
	h, err := ParseHypergraph("e1(a,b), e2(b,c)", 1)
	require.NoError(t, err)
	require.Equal(t, 3, h.NumVertices())

	bInE1 := h.EdgeVertices(0)
	bInE2 := h.EdgeVertices(1)
	shared := false
	for _, v1 := range bInE1 {
		for _, v2 := range bInE2 {
			if v1 == v2 {
				shared = true
			}
		}
	}
	require.True(t, shared, "vertex b must be the same id in both edges")
}

func TestParseHypergraphRejectsMalformedInput(t *testing.T) {
	_, err := ParseHypergraph("e1(a,b", 1)
	require.Error(t, err)
}

func TestParseHypergraphAllowsNumericNames(t *testing.T) {
	h, err := ParseHypergraph("e1(1,2,3)", 1)
	require.NoError(t, err)
	require.Equal(t, 3, h.NumVertices())
}
