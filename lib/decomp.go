package lib

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// HTNode is one node of a hypertree: chi and lambda labels, parent/child
// links, a scratch label, and a cut flag. A node with Cut set is a
// placeholder emitted by the memoized fast path of decomp; its Chi holds the
// component's connector and vertices and its Lambda is empty, since its
// subtree has not been materialized yet and must be replaced via
// expandHTree before the tree is considered complete.
type HTNode struct {
	Chi      []VertexID
	Lambda   []EdgeID
	Parent   *HTNode
	Children []*HTNode
	Label    int
	Cut      bool

	cutEdges     []EdgeID
	cutConnector []VertexID
}

// Width returns |Lambda(p)| for this node alone.
func (n *HTNode) Width() int { return len(n.Lambda) }

// cacheEntry is the memoization record for one separator: which component
// starter edges have already been proven decomposable below it, and which
// have been proven not to be.
type cacheEntry struct {
	okStarters   []EdgeID
	failStarters []EdgeID
}

// decomposer holds the state private to a single BuildHypertree call: the
// hypergraph being decomposed, the width bound, and the separator
// memoization cache. Its lifetime is exactly that call; nothing here
// survives or is shared across calls.
type decomposer struct {
	h     *Hypergraph
	k     int
	cache map[string]*cacheEntry
}

// BuildHypertree is the engine's entry point. It pre-orders the edges by
// running MCS on the dual hypergraph (so the search visits well-connected
// edges first) and stores each edge's position in that order as its
// weight, then searches for a hypertree decomposition of width at most k.
// It returns nil iff no such decomposition exists. k <= 0 is a
// programmer error and panics immediately, matching the reference
// implementation's fatal check.
func (h *Hypergraph) BuildHypertree(k int) *HTNode {
	if k <= 0 {
		panic("lib: BuildHypertree requires k >= 1")
	}

	h.MakeDual()
	order := h.OrderMCS()
	h.MakeDual()
	for pos, id := range order {
		h.SetEdgeWeight(EdgeID(id), pos)
	}

	d := &decomposer{h: h, k: k, cache: make(map[string]*cacheEntry)}

	edges := h.LiveEdges()
	if len(edges) == 0 {
		return nil
	}

	h.ResetVertexLabels(0)
	h.ResetEdgeLabels(0)

	root := d.decomp(edges, nil, 0)
	if root == nil {
		return nil
	}
	d.expandHTree(root)
	return root
}

// decomp is the det-k-decomp recursion. Given edges spanning a subgraph
// and the connector vertices any returned root's chi must contain, it
// either returns a valid width-<=k decomposition rooted there, or nil.
// Every recursive call it makes strictly shrinks the edge set, which is
// asserted as an invariant.
func (d *decomposer) decomp(edges []EdgeID, connector []VertexID, depth int) *HTNode {
	if len(edges) <= d.k {
		return d.leaf(edges, connector, depth)
	}
	if len(connector) == 0 && len(edges) > 1 && ceilDiv(len(edges), 2) <= d.k {
		return d.trivialSplit(edges, depth)
	}

	inComp := make(map[EdgeID]bool, len(edges))
	for _, e := range edges {
		inComp[e] = true
	}
	inner, boundary := divideCompEdges(d.h, edges, inComp, connector)

	search := NewSubsetSearch(d.h, connector, boundary, func(e EdgeID) bool { return inComp[e] }, d.k)
	subset, ok := setInitSubset(search)
	if len(connector) == 0 {
		// Nothing to cover: the empty subset is the initial cover, and
		// tryCandidate extends it by one edge.
		subset, ok = nil, true
	}
	for ok {
		if node := d.tryCandidate(subset, inner, boundary, inComp, edges, connector, depth); node != nil {
			return node
		}
		subset, ok = setNextSubset(search)
	}
	return nil
}

// tryCandidate handles step 3a-3f for one initial covering subset: if it
// doesn't yet contain an inner edge and there's room for one more, it
// tries appending each additional candidate in turn; otherwise it attempts
// the subset as-is.
func (d *decomposer) tryCandidate(subset, inner, boundary []EdgeID, inComp map[EdgeID]bool, edges []EdgeID, connector []VertexID, depth int) *HTNode {
	if !containsAny(subset, inner) && len(subset) < d.k {
		additional := append([]EdgeID(nil), inner...)
		chosenSet := make(map[EdgeID]bool, len(subset))
		for _, e := range subset {
			chosenSet[e] = true
		}
		for _, e := range boundary {
			if inComp[e] && !chosenSet[e] {
				additional = append(additional, e)
			}
		}
		for _, a := range additional {
			sep := append(append([]EdgeID(nil), subset...), a)
			if node := d.attemptSeparator(sep, edges, connector, depth); node != nil {
				return node
			}
		}
		return nil
	}
	return d.attemptSeparator(subset, edges, connector, depth)
}

func containsAny(haystack, needles []EdgeID) bool {
	set := make(map[EdgeID]bool, len(needles))
	for _, n := range needles {
		set[n] = true
	}
	for _, h := range haystack {
		if set[h] {
			return true
		}
	}
	return false
}

// attemptSeparator marks sep as the tentative separator, looks it up (or
// seeds it) in the memoization cache, separates the remaining edges into
// components, and recurses into each. It returns the resulting hypertree
// node, or nil if any component fails.
func (d *decomposer) attemptSeparator(sep, edges []EdgeID, connector []VertexID, depth int) *HTNode {
	d.h.markSeparator(sep)

	key := cacheKey(sep)
	entry, ok := d.cache[key]
	if !ok {
		entry = &cacheEntry{}
		d.cache[key] = entry
	}

	comps := d.h.separate(edges)

	for _, c := range comps {
		if containsEdgeID(entry.failStarters, c.starter) {
			return nil
		}
	}

	if len(connector) > 0 && len(comps) > 1 {
		var childConns [][]VertexID
		for _, c := range comps {
			childConns = append(childConns, c.connector)
		}
		if !isSplitSep(connector, childConns) {
			return nil
		}
	}

	var children []*HTNode
	for _, c := range comps {
		if len(c.edges) >= len(edges) {
			panic("lib: det-k-decomp monotonicity violated: component is not strictly smaller than its parent")
		}
		if containsEdgeID(entry.okStarters, c.starter) {
			cut := &HTNode{
				Chi:          chiFor(c.connector, c.edges, d.h),
				Label:        depth + 1,
				Cut:          true,
				cutEdges:     c.edges,
				cutConnector: c.connector,
			}
			children = append(children, cut)
			continue
		}
		child := d.decomp(c.edges, c.connector, depth+1)
		if child == nil {
			entry.failStarters = append(entry.failStarters, c.starter)
			return nil
		}
		entry.okStarters = append(entry.okStarters, c.starter)
		children = append(children, child)
	}

	node := &HTNode{
		Chi:      chiFor(connector, sep, d.h),
		Lambda:   append([]EdgeID(nil), sep...),
		Children: children,
		Label:    depth,
	}
	for _, c := range children {
		c.Parent = node
	}
	return node
}

// leaf builds the base-case node for |edges| <= k: lambda is exactly
// edges, chi is their full vertex closure together with the connector.
func (d *decomposer) leaf(edges []EdgeID, connector []VertexID, depth int) *HTNode {
	return &HTNode{
		Chi:    chiFor(connector, edges, d.h),
		Lambda: append([]EdgeID(nil), edges...),
		Label:  depth,
	}
}

// trivialSplit handles the empty-connector, ceil(|edges|/2) <= k base
// case: split edges into two halves and connect them through whatever
// vertices they share, so chi-connectedness holds without any separator
// search.
func (d *decomposer) trivialSplit(edges []EdgeID, depth int) *HTNode {
	half := (len(edges) + 1) / 2
	a, b := edges[:half], edges[half:]

	shared := intersectVertices(verticesOf(a, d.h), verticesOf(b, d.h))

	root := &HTNode{Chi: unionVertexIDs(verticesOf(a, d.h), shared), Lambda: append([]EdgeID(nil), a...), Label: depth}
	child := &HTNode{Chi: unionVertexIDs(verticesOf(b, d.h), shared), Lambda: append([]EdgeID(nil), b...), Label: depth + 1, Parent: root}
	root.Children = []*HTNode{child}
	return root
}

// expandHTree walks the tree and replaces every cut node with the full
// sub-decomposition that memoization proved exists but never materialized.
func (d *decomposer) expandHTree(node *HTNode) {
	for i, c := range node.Children {
		if c.Cut {
			sub := d.decomp(c.cutEdges, c.cutConnector, c.Label)
			if sub == nil {
				panic("lib: cut node could not be re-expanded: memoization recorded a decomposition that does not actually exist")
			}
			sub.Parent = node
			node.Children[i] = sub
			d.expandHTree(sub)
		} else {
			d.expandHTree(c)
		}
	}
}

func chiFor(connector []VertexID, edges []EdgeID, h *Hypergraph) []VertexID {
	set := newCompSet(len(connector) + 4*len(edges))
	for _, v := range connector {
		set.add(int(v))
	}
	for _, e := range edges {
		for _, v := range h.EdgeVertices(e) {
			set.add(int(v))
		}
	}
	out := make([]VertexID, set.len())
	for i, id := range set.items {
		out[i] = VertexID(id)
	}
	return out
}

func verticesOf(edges []EdgeID, h *Hypergraph) []VertexID {
	return chiFor(nil, edges, h)
}

func intersectVertices(a, b []VertexID) []VertexID {
	bs := make(map[VertexID]bool, len(b))
	for _, v := range b {
		bs[v] = true
	}
	var out []VertexID
	for _, v := range a {
		if bs[v] {
			out = append(out, v)
		}
	}
	return out
}

func unionVertexIDs(a, b []VertexID) []VertexID {
	set := newCompSet(len(a) + len(b))
	for _, v := range a {
		set.add(int(v))
	}
	for _, v := range b {
		set.add(int(v))
	}
	out := make([]VertexID, set.len())
	for i, id := range set.items {
		out[i] = VertexID(id)
	}
	return out
}

func containsEdgeID(list []EdgeID, id EdgeID) bool {
	for _, x := range list {
		if x == id {
			return true
		}
	}
	return false
}

func ceilDiv(n, d int) int {
	return (n + d - 1) / d
}

// cacheKey canonicalizes a separator as a sorted, comma-joined tuple of
// edge ids -- an explicit, content-addressable replacement for the
// original implementation's implicit "whatever edges are currently
// labeled -1" key.
func cacheKey(sep []EdgeID) string {
	ids := make([]int, len(sep))
	for i, e := range sep {
		ids[i] = int(e)
	}
	sort.Ints(ids)
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(id)
	}
	return strings.Join(parts, ",")
}

func (n *HTNode) String() string {
	return fmt.Sprintf("HTNode{lambda=%v chi=%v cut=%v children=%d}", n.Lambda, n.Chi, n.Cut, len(n.Children))
}
