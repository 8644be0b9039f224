package lib

// This file holds the hypertree structural operations: tree surgery
// (InsChild, RemChild, SetRoot, Shrink), the chi/lambda assignment passes
// (SetChi, SetLambda, ResetLambda, ElimCovEdges, ReduceLambda), and the
// four condition checks used to validate a decomposition independently of
// how it was built.

// InsChild attaches child under n.
func (n *HTNode) InsChild(child *HTNode) {
	child.Parent = n
	n.Children = append(n.Children, child)
}

// RemChild detaches child from n, if present.
func (n *HTNode) RemChild(child *HTNode) {
	for i, c := range n.Children {
		if c == child {
			n.Children = append(n.Children[:i], n.Children[i+1:]...)
			child.Parent = nil
			return
		}
	}
}

// SetRoot re-roots the tree at n by inverting the parent pointers along
// the path from n to the current root.
func (n *HTNode) SetRoot() {
	var path []*HTNode
	for cur := n; cur != nil; cur = cur.Parent {
		path = append(path, cur)
	}
	for i := 0; i < len(path)-1; i++ {
		child := path[i]
		parent := path[i+1]
		parent.RemChild(child)
		child.Children = append(child.Children, parent)
		parent.Parent = child
	}
	n.Parent = nil
}

// Shrink merges n with any child whose chi is a superset of n's chi,
// absorbing the child's chi, its lambda (unioned in if lambdaUnion,
// otherwise n's lambda is replaced by the child's), and promoting the
// child's own children in its place.
// Children promoted this way are re-examined in the same pass, matching
// the source's behavior of visiting newly-attached children before
// advancing.
func (n *HTNode) Shrink(lambdaUnion bool) {
	i := 0
	for i < len(n.Children) {
		c := n.Children[i]
		if isVertexSuperset(c.Chi, n.Chi) {
			n.Chi = unionVertexIDs(n.Chi, c.Chi)
			if lambdaUnion {
				n.Lambda = unionEdgeIDs(n.Lambda, c.Lambda)
			} else {
				n.Lambda = append([]EdgeID(nil), c.Lambda...)
			}

			promoted := append([]*HTNode(nil), c.Children...)
			for _, gc := range promoted {
				gc.Parent = n
			}
			rest := append([]*HTNode(nil), n.Children[i+1:]...)
			n.Children = append(n.Children[:i], append(promoted, rest...)...)
			continue // re-examine slot i: it now holds a promoted child (or the next sibling)
		}
		c.Shrink(lambdaUnion)
		i++
	}
}

func isVertexSuperset(a, b []VertexID) bool {
	set := make(map[VertexID]bool, len(a))
	for _, v := range a {
		set[v] = true
	}
	for _, v := range b {
		if !set[v] {
			return false
		}
	}
	return true
}

func unionEdgeIDs(a, b []EdgeID) []EdgeID {
	set := newCompSet(len(a) + len(b))
	for _, e := range a {
		set.add(int(e))
	}
	for _, e := range b {
		set.add(int(e))
	}
	out := make([]EdgeID, set.len())
	for i, id := range set.items {
		out[i] = EdgeID(id)
	}
	return out
}

// SwapChiLambda exchanges the chi and lambda labels of n and every node in
// its subtree, reinterpreting vertex ids as edge ids and vice versa (valid
// precisely because both are arena indices of the same underlying
// integer type). Applying it twice is the identity.
func (n *HTNode) SwapChiLambda() {
	newLambda := make([]EdgeID, len(n.Chi))
	for i, v := range n.Chi {
		newLambda[i] = EdgeID(v)
	}
	newChi := make([]VertexID, len(n.Lambda))
	for i, e := range n.Lambda {
		newChi[i] = VertexID(e)
	}
	n.Chi, n.Lambda = newChi, newLambda
	for _, c := range n.Children {
		c.SwapChiLambda()
	}
}

// CollectNodes returns every node of the subtree rooted at n, in preorder.
func CollectNodes(n *HTNode) []*HTNode {
	out := []*HTNode{n}
	for _, c := range n.Children {
		out = append(out, CollectNodes(c)...)
	}
	return out
}

// SetIDLabels assigns each node's Label its preorder index, starting at
// 0. The resulting sequence is strictly increasing in preorder, which is
// what GML output relies on for stable node identifiers.
func SetIDLabels(root *HTNode) {
	next := 0
	var walk func(n *HTNode)
	walk = func(n *HTNode) {
		n.Label = next
		next++
		for _, c := range n.Children {
			walk(c)
		}
	}
	walk(root)
}

// ElimCovEdges runs set-cover on (chi, lambda) at every node to drop any
// lambda edge that is not needed to cover chi.
func ElimCovEdges(root *HTNode, h *Hypergraph) {
	root.Lambda = h.Cover(root.Chi, root.Lambda)
	for _, c := range root.Children {
		ElimCovEdges(c, h)
	}
}

// ReduceLambdaTopDown and ReduceLambdaBottomUp run reduceOne over the tree
// in the two traversal orders the source applies it in; each drops lambda
// edges whose vertices are already covered by the node's surviving edges,
// unless the edge is the sole carrier of a vertex shared with the parent
// or a child (removing it would break condition 3 at the shared vertex).
func ReduceLambdaTopDown(root *HTNode, h *Hypergraph) {
	root.reduceOne(h)
	for _, c := range root.Children {
		ReduceLambdaTopDown(c, h)
	}
}

// ReduceLambdaBottomUp reduces children first, then the node itself.
func ReduceLambdaBottomUp(root *HTNode, h *Hypergraph) {
	for _, c := range root.Children {
		ReduceLambdaBottomUp(c, h)
	}
	root.reduceOne(h)
}

func (n *HTNode) reduceOne(h *Hypergraph) {
	shared := n.sharedWithNeighbours()

	var kept []EdgeID
	for i, e := range n.Lambda {
		rest := make([]EdgeID, 0, len(n.Lambda)-1)
		rest = append(rest, kept...)
		rest = append(rest, n.Lambda[i+1:]...)

		evs := h.EdgeVertices(e)
		if subsumedByUnion(h, evs, rest) && !soleCarrierOfShared(h, e, evs, n.Lambda, shared) {
			continue
		}
		kept = append(kept, e)
	}
	if len(kept) > 0 {
		n.Lambda = kept
	}
}

func (n *HTNode) sharedWithNeighbours() map[VertexID]bool {
	shared := make(map[VertexID]bool)
	mark := func(chi []VertexID) {
		for _, v := range chi {
			shared[v] = true
		}
	}
	if n.Parent != nil {
		mark(n.Parent.Chi)
	}
	for _, c := range n.Children {
		mark(c.Chi)
	}
	return shared
}

func subsumedByUnion(h *Hypergraph, vs []VertexID, edges []EdgeID) bool {
	covered := make(map[VertexID]bool)
	for _, e := range edges {
		for _, v := range h.EdgeVertices(e) {
			covered[v] = true
		}
	}
	for _, v := range vs {
		if !covered[v] {
			return false
		}
	}
	return true
}

func soleCarrierOfShared(h *Hypergraph, e EdgeID, evs []VertexID, lambda []EdgeID, shared map[VertexID]bool) bool {
	for _, v := range evs {
		if !shared[v] {
			continue
		}
		count := 0
		for _, other := range lambda {
			if containsVertex(h.edge(other).incident, int(v)) {
				count++
			}
		}
		if count == 1 {
			return true
		}
	}
	return false
}

// SetChi assigns each hypergraph edge to exactly one covering node in the
// tree -- in strict mode the first node (preorder) whose lambda contains
// it, otherwise the node with the smallest lambda among those that
// contain it -- unions the edge's vertices into that node's chi, and
// finally patches chi bottom-up so that any vertex appearing in two or
// more child subtrees also appears in their common parent's chi
// (condition 2). This uses every live edge's label field as a scratch
// edge->node-index map for the duration of the call; callers must not
// hold label state they care about across it.
func SetChi(root *HTNode, h *Hypergraph, strict bool) {
	nodes := CollectNodes(root)
	h.ResetEdgeLabels(noID)

	for idx, n := range nodes {
		for _, e := range n.Lambda {
			cur := h.EdgeLabel(e)
			switch {
			case cur == noID:
				h.SetEdgeLabel(e, idx)
			case !strict && len(n.Lambda) < len(nodes[cur].Lambda):
				h.SetEdgeLabel(e, idx)
			}
		}
	}

	for _, e := range h.LiveEdges() {
		idx := h.EdgeLabel(e)
		if idx == noID {
			continue
		}
		nodes[idx].Chi = unionVertexIDs(nodes[idx].Chi, h.EdgeVertices(e))
	}

	patchChiForConnectivity(root)
}

// patchChiForConnectivity implements the condition-2 repair: a vertex
// touched by two or more of a node's child subtrees must also be in that
// node's own chi, otherwise the set of nodes containing it would be
// disconnected through this node.
func patchChiForConnectivity(n *HTNode) map[VertexID]bool {
	touchCount := make(map[VertexID]int)
	for _, c := range n.Children {
		below := patchChiForConnectivity(c)
		seen := make(map[VertexID]bool, len(below))
		for v := range below {
			seen[v] = true
		}
		for v := range seen {
			touchCount[v]++
		}
	}
	for v, cnt := range touchCount {
		if cnt >= 2 && !containsVertexID(n.Chi, v) {
			n.Chi = append(n.Chi, v)
		}
	}

	below := make(map[VertexID]bool)
	for v := range touchCount {
		below[v] = true
	}
	for _, v := range n.Chi {
		below[v] = true
	}
	return below
}

func containsVertexID(vs []VertexID, target VertexID) bool {
	for _, v := range vs {
		if v == target {
			return true
		}
	}
	return false
}

// SetLambda assigns every node's lambda via set-cover of its chi against
// the full live edge set of h.
func SetLambda(root *HTNode, h *Hypergraph) {
	edges := h.LiveEdges()
	var walk func(n *HTNode)
	walk = func(n *HTNode) {
		if len(n.Chi) > 0 {
			n.Lambda = h.Cover(n.Chi, edges)
		} else {
			n.Lambda = nil
		}
		for _, c := range n.Children {
			walk(c)
		}
	}
	walk(root)
}

// ResetLambda clears every node's lambda and recomputes it via SetLambda.
func ResetLambda(root *HTNode, h *Hypergraph) {
	var clear func(n *HTNode)
	clear = func(n *HTNode) {
		n.Lambda = nil
		for _, c := range n.Children {
			clear(c)
		}
	}
	clear(root)
	SetLambda(root, h)
}

// GetHTreeWidth returns max |lambda(p)| over the whole tree.
func GetHTreeWidth(root *HTNode) int {
	max := 0
	for _, n := range CollectNodes(root) {
		if len(n.Lambda) > max {
			max = len(n.Lambda)
		}
	}
	return max
}

// GetTreeWidth returns max |chi(p)| - 1 over the whole tree.
func GetTreeWidth(root *HTNode) int {
	max := 0
	for _, n := range CollectNodes(root) {
		if len(n.Chi)-1 > max {
			max = len(n.Chi) - 1
		}
	}
	return max
}

// CheckCond1 verifies edge coverage: every edge's vertices must be a
// subset of some node's chi. It returns the first uncovered edge found.
func CheckCond1(root *HTNode, h *Hypergraph) (EdgeID, bool) {
	nodes := CollectNodes(root)
	for _, e := range h.LiveEdges() {
		evs := h.EdgeVertices(e)
		covered := false
		for _, n := range nodes {
			if isVertexSuperset(n.Chi, evs) {
				covered = true
				break
			}
		}
		if !covered {
			return e, true
		}
	}
	return 0, false
}

// CheckCond2 verifies chi-connectedness: for every vertex, the set of
// nodes whose chi contains it must induce a connected subtree. It returns
// the first vertex found violating this.
func CheckCond2(root *HTNode, h *Hypergraph) (VertexID, bool) {
	nodes := CollectNodes(root)
	for v := 0; v < h.NumVertices(); v++ {
		vid := VertexID(v)
		var holders []*HTNode
		for _, n := range nodes {
			if containsVertexID(n.Chi, vid) {
				holders = append(holders, n)
			}
		}
		if len(holders) <= 1 {
			continue
		}
		if !inducesConnectedSubtree(holders) {
			return vid, true
		}
	}
	return 0, false
}

func inducesConnectedSubtree(holders []*HTNode) bool {
	set := make(map[*HTNode]bool, len(holders))
	for _, n := range holders {
		set[n] = true
	}
	seen := make(map[*HTNode]bool)
	stack := []*HTNode{holders[0]}
	seen[holders[0]] = true
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if cur.Parent != nil && set[cur.Parent] && !seen[cur.Parent] {
			seen[cur.Parent] = true
			stack = append(stack, cur.Parent)
		}
		for _, c := range cur.Children {
			if set[c] && !seen[c] {
				seen[c] = true
				stack = append(stack, c)
			}
		}
	}
	return len(seen) == len(holders)
}

// CheckCond3 verifies chi(p) <= vertices(lambda(p)) for every node. It
// returns the first offending node.
func CheckCond3(root *HTNode, h *Hypergraph) (*HTNode, bool) {
	for _, n := range CollectNodes(root) {
		lv := verticesOf(n.Lambda, h)
		if !isVertexSuperset(lv, n.Chi) {
			return n, true
		}
	}
	return nil, false
}

// CheckCond4 verifies descendant containment: the vertices of a node's
// lambda edges, intersected with the chi of its subtree, must lie
// entirely within the node's own chi. It returns the first offending
// node.
func CheckCond4(root *HTNode, h *Hypergraph) (*HTNode, bool) {
	for _, n := range CollectNodes(root) {
		lv := verticesOf(n.Lambda, h)
		subChi := make(map[VertexID]bool)
		for _, d := range CollectNodes(n) {
			for _, v := range d.Chi {
				subChi[v] = true
			}
		}
		for _, v := range lv {
			if subChi[v] && !containsVertexID(n.Chi, v) {
				return n, true
			}
		}
	}
	return nil, false
}
