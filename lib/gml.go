package lib

import (
	"fmt"
	"io"
	"strings"
)

// WriteGML serializes root to the GML format consumed by the usual
// hypertree visualizers: one node block per hypertree node (labeled with
// both its lambda edge names and chi vertex names) and one edge block per
// parent-child link. Labels are assigned fresh via SetIDLabels so the
// output is deterministic regardless of what the engine left in
// HTNode.Label.
func WriteGML(w io.Writer, root *HTNode, h *Hypergraph) error {
	SetIDLabels(root)

	if _, err := fmt.Fprintln(w, "graph ["); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, "\tdirected 1"); err != nil {
		return err
	}

	for _, n := range CollectNodes(root) {
		if err := writeGMLNode(w, n, h); err != nil {
			return err
		}
	}
	for _, n := range CollectNodes(root) {
		if n.Parent == nil {
			continue
		}
		if err := writeGMLEdge(w, n); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintln(w, "]")
	return err
}

func writeGMLNode(w io.Writer, n *HTNode, h *Hypergraph) error {
	var lambdaNames []string
	for _, e := range n.Lambda {
		lambdaNames = append(lambdaNames, h.CoverEdgeNames(e)...)
	}
	var chiNames []string
	for _, v := range n.Chi {
		chiNames = append(chiNames, h.VertexName(v))
	}

	label := fmt.Sprintf("%s | %s", strings.Join(lambdaNames, ","), strings.Join(chiNames, ","))

	_, err := fmt.Fprintf(w, "\tnode [ id %d label \"%s\" vgj [ labelPosition \"in\" shape \"Rectangle\" ] ]\n", n.Label, label)
	return err
}

func writeGMLEdge(w io.Writer, n *HTNode) error {
	_, err := fmt.Fprintf(w, "\tedge [ source %d target %d ]\n", n.Parent.Label, n.Label)
	return err
}
