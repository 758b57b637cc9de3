package libacset

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/emirpasic/gods/trees/redblacktree"

	"github.com/acset-systems/goacset/goacset"
)

type nodeState int32

const (
	nodeFresh nodeState = iota
	nodeRefined
	nodeLeaf
	nodeBranching
	nodeDone
)

// childKey identifies the edge from a node to the child obtained by
// individualizing one element of the splitting cell.
type childKey struct {
	Table int32
	Elem  int32 // one-based element index
}

// SearchNode is one node of the partition search tree.
type SearchNode struct {
	Path      []childKey // individualizations from the root down to this node
	Init      Coloring   // coloring used to enter this node
	Saturated Coloring   // equitable coloring after refinement
	Indicator uint64     // hash of Saturated
	Children  []*SearchNode

	state nodeState
}

// SearchTree owns all state of one automorphism search: the node registry,
// the discovered leaves, the skip set and the best indicator sequence.
// Each Autos or CanonicalIso call builds and runs its own tree; Autos returns
// it to the caller.
type SearchTree struct {
	g    *ACSet // the (pseudo) structure under search; read-only
	opts goacset.SearchOpts

	Root    *SearchNode
	History []goacset.Event

	nodes  *redblacktree.Tree // encoded path -> *SearchNode
	leaves []*SearchNode      // discrete leaves, discovery order
	skip   *redblacktree.Tree // encoded paths flagged by auto-prune
	best   []uint64           // lexicographically max indicator sequence seen at a leaf
}

func pathComparator(a, b interface{}) int {
	return bytes.Compare(a.([]byte), b.([]byte))
}

func newSearchTree(g *ACSet, opts goacset.SearchOpts) *SearchTree {
	return &SearchTree{
		g:     g,
		opts:  opts,
		nodes: redblacktree.NewWith(pathComparator),
		skip:  redblacktree.NewWith(pathComparator),
	}
}

// Leaves returns the discrete leaves in discovery order.
func (st *SearchTree) Leaves() []*SearchNode {
	return st.leaves
}

// NumNodes returns the number of expanded tree nodes.
func (st *SearchTree) NumNodes() int {
	return st.nodes.Size()
}

func pathKeyBytes(path []childKey) []byte {
	key := make([]byte, 0, 8*len(path))
	for _, ck := range path {
		key = appendI32(key, ck.Table)
		key = appendI32(key, ck.Elem)
	}
	return key
}

func pathString(path []childKey) string {
	var b strings.Builder
	for pi, ck := range path {
		if pi > 0 {
			b.WriteByte('/')
		}
		fmt.Fprintf(&b, "%d.%d", ck.Table, ck.Elem)
	}
	return b.String()
}

func (st *SearchTree) node(path []childKey) *SearchNode {
	v, found := st.nodes.Get(pathKeyBytes(path))
	if !found {
		panic("search tree: missing node for path " + pathString(path))
	}
	return v.(*SearchNode)
}

func (st *SearchTree) skipped(path []childKey) bool {
	_, found := st.skip.Get(pathKeyBytes(path))
	return found
}

func (st *SearchTree) event(kind goacset.EventKind, path []childKey, table, elem int32) {
	if !st.opts.History {
		return
	}
	st.History = append(st.History, goacset.Event{
		Kind:  kind,
		Path:  pathString(path),
		Table: table,
		Elem:  elem,
	})
}

// run expands the whole tree from a uniform root coloring.
func (st *SearchTree) run() {
	st.Root = &SearchNode{Init: NewUniformColoring(st.g)}
	st.nodes.Put(pathKeyBytes(nil), st.Root)
	st.step(st.Root, nil)
}

// step refines, classifies and (for branching nodes) individualizes.
// indPrefix is the indicator sequence of the node's ancestors.
func (st *SearchTree) step(n *SearchNode, indPrefix []uint64) {
	st.event(goacset.EvStartIter, n.Path, -1, -1)

	n.Saturated = Refine(st.g, n.Init)
	n.Indicator = n.Saturated.Indicator()
	n.state = nodeRefined

	curInds := append(append([]uint64{}, indPrefix...), n.Indicator)

	// Order-prune: a path strictly dominated by the best indicator sequence
	// cannot reach the canonical (max) leaf.
	if st.opts.OrderPrune && st.best != nil && indLess(curInds, st.best) {
		st.event(goacset.EvOrderPrune, n.Path, -1, -1)
		n.state = nodeDone
		st.event(goacset.EvReturn, n.Path, -1, -1)
		return
	}

	table, _, cell := st.splittingCell(n.Saturated)
	if cell == nil {
		st.addLeaf(n, curInds)
		n.state = nodeDone
		st.event(goacset.EvReturn, n.Path, -1, -1)
		return
	}

	n.state = nodeBranching
	var visited []int32

	for _, x := range cell {
		if st.skipped(n.Path) {
			st.event(goacset.EvFlagSkip, n.Path, table, x)
			continue
		}

		if st.opts.OrbitPrune && len(visited) > 0 && st.orbitPruned(n, table, x, visited) {
			st.event(goacset.EvOrbitPrune, n.Path, table, x)
			continue
		}

		childC := n.Saturated.Clone()
		childC[table][x-1] = childC.NumColors(table) + 1

		child := &SearchNode{
			Path: append(append([]childKey{}, n.Path...), childKey{Table: table, Elem: x}),
			Init: childC,
		}
		n.Children = append(n.Children, child)
		st.nodes.Put(pathKeyBytes(child.Path), child)
		st.event(goacset.EvNewChild, child.Path, table, x)

		st.step(child, curInds)
		visited = append(visited, x)
	}

	n.state = nodeDone
	st.event(goacset.EvReturn, n.Path, -1, -1)
}

// splittingCell picks the cell to individualize: among color classes of size
// >= 2, the smallest, ties broken by first table in schema order then lowest
// color value.  Returns nil members when the coloring is discrete.
func (st *SearchTree) splittingCell(C Coloring) (table, color int32, members []int32) {
	bestSize := int32(-1)
	table, color = -1, -1

	for ti := range C {
		k := C.NumColors(int32(ti))
		counts := make([]int32, k)
		for _, c := range C[ti] {
			counts[c-1]++
		}
		for c := int32(1); c <= k; c++ {
			sz := counts[c-1]
			if sz < 2 {
				continue
			}
			if bestSize < 0 || sz < bestSize {
				bestSize = sz
				table = int32(ti)
				color = c
			}
		}
	}

	if bestSize < 0 {
		return -1, -1, nil
	}
	for i, c := range C[table] {
		if c == color {
			members = append(members, int32(i+1))
		}
	}
	return table, color, members
}

// addLeaf registers a discrete leaf, updates the best indicator sequence and
// runs the auto-prune tactic against previously found leaves.
func (st *SearchTree) addLeaf(n *SearchNode, curInds []uint64) {
	n.state = nodeLeaf
	st.leaves = append(st.leaves, n)
	st.event(goacset.EvAddLeaf, n.Path, -1, -1)

	if st.best == nil || indLess(st.best, curInds) {
		st.best = append([]uint64{}, curInds...)
	}

	if !st.opts.AutoPrune || len(st.leaves) < 2 {
		return
	}

	sigma := n.Saturated.ToPerm()
	sigmaInv := Invert(sigma)

	for _, p := range st.leaves {
		if p == n {
			continue
		}
		gamma := Compose(p.Saturated.ToPerm(), sigmaInv)

		i := commonLen(p.Path, n.Path)
		if i >= len(p.Path) || i >= len(n.Path) {
			continue // one leaf path is a prefix of the other; nothing to map
		}
		a := st.node(p.Path[:i])
		b := st.node(p.Path[:i+1])
		c := st.node(n.Path[:i+1])

		if !a.Saturated.Permuted(gamma).equal(a.Saturated) {
			continue
		}
		if !b.Saturated.Permuted(gamma).equal(c.Saturated) {
			continue
		}
		if !IsAutomorphism(st.g, gamma) {
			continue
		}

		// gamma maps the subtree at b onto the one at c; everything at or
		// below c that remains is redundant.
		for j := i + 1; j <= len(n.Path); j++ {
			st.skip.Put(pathKeyBytes(n.Path[:j]), nil)
			st.event(goacset.EvFlagSkip, n.Path[:j], -1, -1)
		}
		st.event(goacset.EvAutoPrune, n.Path, -1, -1)
		break
	}
}

// orbitPruned reports whether x lies in the orbit of an already-visited
// sibling under the automorphisms witnessed by leaf pairs below n.
func (st *SearchTree) orbitPruned(n *SearchNode, table, x int32, visited []int32) bool {
	gens := st.siblingAutos(n, table)
	if len(gens) == 0 {
		return false
	}
	orb := orbitOf(x, int32(len(n.Saturated[table])), gens)
	for _, y := range visited {
		if orb[y-1] {
			return true
		}
	}
	return false
}

// siblingAutos collects, for every pair of discrete leaves below n whose
// composed relabelings fix the structure, the automorphism restricted to the
// splitting table.
func (st *SearchTree) siblingAutos(n *SearchNode, table int32) [][]int32 {
	prefix := pathKeyBytes(n.Path)

	var below []*SearchNode
	for _, l := range st.leaves {
		if bytes.HasPrefix(pathKeyBytes(l.Path), prefix) {
			below = append(below, l)
		}
	}

	var gens [][]int32
	for ii, li := range below {
		for ji, lj := range below {
			if ii == ji {
				continue
			}
			gamma := Compose(li.Saturated.ToPerm(), Invert(lj.Saturated.ToPerm()))
			if !IsAutomorphism(st.g, gamma) {
				continue
			}
			gens = append(gens, gamma[table])
		}
	}
	return gens
}

// orbitOf runs a generator-by-generator BFS from x.
func orbitOf(x, n int32, gens [][]int32) []bool {
	orb := make([]bool, n)
	orb[x-1] = true
	queue := []int32{x}
	for len(queue) > 0 {
		e := queue[0]
		queue = queue[1:]
		for _, gen := range gens {
			img := gen[e-1]
			if !orb[img-1] {
				orb[img-1] = true
				queue = append(queue, img)
			}
		}
	}
	return orb
}

// commonLen returns the length of the longest shared path prefix.
// When one path is a prefix of the other, that shared length is returned.
func commonLen(a, b []childKey) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return i
		}
	}
	return n
}

// indLess compares indicator sequences lexicographically over their shared
// length; a strict prefix is not less than its extension.
func indLess(a, b []uint64) bool {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return false
}
