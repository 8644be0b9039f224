package lib

import (
	jsoniter "github.com/json-iterator/go"
)

var jsonAPI = jsoniter.ConfigCompatibleWithStandardLibrary

// DecompDTO is the wire representation of a hypertree used by
// MarshalDecomp/UnmarshalDecomp: edges and vertices are carried by name
// rather than by the arena id of whichever Hypergraph produced them, so a
// dump can be read back against any Hypergraph built from the same
// source.
type DecompDTO struct {
	Lambda   []string     `json:"lambda"`
	Chi      []string     `json:"chi"`
	Cut      bool         `json:"cut,omitempty"`
	Children []*DecompDTO `json:"children,omitempty"`
}

func toDTO(n *HTNode, h *Hypergraph) *DecompDTO {
	dto := &DecompDTO{Cut: n.Cut}
	for _, e := range n.Lambda {
		dto.Lambda = append(dto.Lambda, h.EdgeName(e))
	}
	for _, v := range n.Chi {
		dto.Chi = append(dto.Chi, h.VertexName(v))
	}
	for _, c := range n.Children {
		dto.Children = append(dto.Children, toDTO(c, h))
	}
	return dto
}

// MarshalDecomp renders a hypertree as JSON, naming edges and vertices
// instead of embedding arena ids.
func MarshalDecomp(root *HTNode, h *Hypergraph) ([]byte, error) {
	return jsonAPI.Marshal(toDTO(root, h))
}

// UnmarshalDecomp parses the JSON produced by MarshalDecomp back into a
// DecompDTO tree. Use ResolveDTO to re-attach it to a Hypergraph's ids.
func UnmarshalDecomp(data []byte) (*DecompDTO, error) {
	var dto DecompDTO
	if err := jsonAPI.Unmarshal(data, &dto); err != nil {
		return nil, err
	}
	return &dto, nil
}

// ResolveDTO rebuilds an HTNode tree from dto, resolving names against h.
// It panics if dto names a vertex or edge h does not have -- the same
// out-of-range-is-fatal contract the rest of the store uses.
func ResolveDTO(dto *DecompDTO, h *Hypergraph) *HTNode {
	nameToVertex := make(map[string]VertexID, h.NumVertices())
	for v := 0; v < h.NumVertices(); v++ {
		nameToVertex[h.VertexName(VertexID(v))] = VertexID(v)
	}
	nameToEdge := make(map[string]EdgeID, h.NumEdges())
	for e := 0; e < h.NumEdges(); e++ {
		nameToEdge[h.EdgeName(EdgeID(e))] = EdgeID(e)
	}

	var build func(d *DecompDTO) *HTNode
	build = func(d *DecompDTO) *HTNode {
		n := &HTNode{Cut: d.Cut}
		for _, name := range d.Lambda {
			id, ok := nameToEdge[name]
			if !ok {
				panic("lib: ResolveDTO: unknown edge name " + name)
			}
			n.Lambda = append(n.Lambda, id)
		}
		for _, name := range d.Chi {
			id, ok := nameToVertex[name]
			if !ok {
				panic("lib: ResolveDTO: unknown vertex name " + name)
			}
			n.Chi = append(n.Chi, id)
		}
		for _, cd := range d.Children {
			c := build(cd)
			c.Parent = n
			n.Children = append(n.Children, c)
		}
		return n
	}
	return build(dto)
}
