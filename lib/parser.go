package lib

import "github.com/alecthomas/participle"

// parseEdge and parseGraph describe the hyperbench hypergraph text format
// (see http://hyperbench.dbai.tuwien.ac.at/downloads/manual.pdf, 1.3): a
// comma-separated list of named atoms, each followed by a parenthesized
// list of variable names or numbers.
type parseEdge struct {
	Name     string   `(Int)? @Ident`
	Vertices []string `"(" ( @(Ident|Int)  ","? )* ")"`
}

type parseGraph struct {
	Edges []parseEdge `( @@ ","?)*`
}

var hgParser = participle.MustBuild(&parseGraph{}, participle.UseLookahead(1))

// ParseHypergraph builds a Hypergraph from hyperbench-format source text,
// using seed for its randomized tie-breaks. Edges get ids in the order they
// appear; vertices get ids in order of first occurrence in any edge's vertex
// list. Edge names and vertex names are separate namespaces.
func ParseHypergraph(src string, seed int64) (*Hypergraph, error) {
	var pg parseGraph
	if err := hgParser.ParseString(src, &pg); err != nil {
		return nil, err
	}

	h := NewHypergraph(seed)
	byName := make(map[string]VertexID)

	vertexFor := func(name string) VertexID {
		if id, ok := byName[name]; ok {
			return id
		}
		id := h.AddVertex(name)
		byName[name] = id
		return id
	}

	for _, pe := range pg.Edges {
		vertices := make([]VertexID, len(pe.Vertices))
		for i, vn := range pe.Vertices {
			vertices[i] = vertexFor(vn)
		}
		h.AddEdge(pe.Name, vertices)
	}

	h.UpdateNeighbourhood()
	return h, nil
}
