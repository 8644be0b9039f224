package lib

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMarshalUnmarshalResolveRoundTrip(t *testing.T) {
	h, _, _ := buildHypergraph(t, 1,
		[]string{"a", "b", "c"},
		[]struct {
			name  string
			verts []string
		}{edgeSpec("ab", "a", "b"), edgeSpec("bc", "b", "c"), edgeSpec("ac", "a", "c")},
	)
	root := h.BuildHypertree(2)
	require.NotNil(t, root)
	wantWidth := GetHTreeWidth(root)

	data, err := MarshalDecomp(root, h)
	require.NoError(t, err)

	dto, err := UnmarshalDecomp(data)
	require.NoError(t, err)

	rebuilt := ResolveDTO(dto, h)

	require.Equal(t, wantWidth, GetHTreeWidth(rebuilt))
	require.Empty(t, CheckCond1AsErr(rebuilt, h))
	require.Empty(t, CheckCond3AsErr(rebuilt, h))
}

// CheckCond1AsErr and CheckCond3AsErr adapt the witness-returning checkers
// to a plain "violation description or empty string" shape for assertions
// in this file.
func CheckCond1AsErr(root *HTNode, h *Hypergraph) string {
	if _, bad := CheckCond1(root, h); bad {
		return "edge coverage violated"
	}
	return ""
}

func CheckCond3AsErr(root *HTNode, h *Hypergraph) string {
	if _, bad := CheckCond3(root, h); bad {
		return "chi <= lambda-vertices violated"
	}
	return ""
}

func TestResolveDTOPanicsOnUnknownName(t *testing.T) {
	h, _, _ := buildHypergraph(t, 1, []string{"a", "b"}, []struct {
		name  string
		verts []string
	}{edgeSpec("ab", "a", "b")})

	dto := &DecompDTO{Lambda: []string{"nonexistent"}}
	require.Panics(t, func() { ResolveDTO(dto, h) })
}
