package grammar

import (
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/stacks/arraystack"
)

// DefaultMaxDepth is the default maximum depth of expansion trees.
const DefaultMaxDepth = 30

// NodeID addresses a node of a tree.
type NodeID int

// NoNode is an invalid node ID.
const NoNode NodeID = -1

type ruleNode struct {
	elem      *Element
	parent    NodeID
	children  []NodeID
	depth     int
	expanded  bool
	recursive bool
}

// Tree is an expansion tree for a rule. Nodes are kept in an arena, with the
// root at index 0. A tree is mutated by expanding one node at a time and is
// not safe for concurrent use.
type Tree struct {
	g        *Grammar
	nodes    []ruleNode
	maxDepth int
}

// NewTree creates a tree with a single node for a parser rule. Nodes at depth
// maxDepth or deeper will not be expanded (root has depth 0). If maxDepth is
// not positive, DefaultMaxDepth is used.
func (g *Grammar) NewTree(rule string, maxDepth int) (*Tree, error) {
	root, err := g.FindRule(rule)
	if err != nil {
		return nil, err
	}
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	t := &Tree{g: g, maxDepth: maxDepth}
	t.nodes = append(t.nodes, ruleNode{elem: root, parent: NoNode})
	return t, nil
}

// Grammar returns the grammar a tree has been created from.
func (t *Tree) Grammar() *Grammar {
	return t.g
}

// Root returns the root node of a tree.
func (t *Tree) Root() NodeID {
	return 0
}

// Size returns the number of nodes of a tree.
func (t *Tree) Size() int {
	return len(t.nodes)
}

// MaxDepth returns the depth bound of a tree.
func (t *Tree) MaxDepth() int {
	return t.maxDepth
}

func (t *Tree) node(id NodeID) *ruleNode {
	if id < 0 || int(id) >= len(t.nodes) {
		panic("grammar: node ID out of range")
	}
	return &t.nodes[id]
}

// Element returns the grammar element of a node.
func (t *Tree) Element(id NodeID) *Element {
	return t.node(id).elem
}

// Name returns the name of the element of a node.
func (t *Tree) Name(id NodeID) string {
	return t.node(id).elem.Name()
}

// Parent returns the parent of a node, or NoNode for the root.
func (t *Tree) Parent(id NodeID) NodeID {
	return t.node(id).parent
}

// Children returns the children of a node, from left to right.
func (t *Tree) Children(id NodeID) []NodeID {
	ch := t.node(id).children
	children := make([]NodeID, len(ch))
	copy(children, ch)
	return children
}

// Depth returns the distance of a node from the root.
func (t *Tree) Depth(id NodeID) int {
	return t.node(id).depth
}

// IsLeaf is true for nodes without children.
func (t *Tree) IsLeaf(id NodeID) bool {
	return len(t.node(id).children) == 0
}

// IsTerminal is true for nodes of terminal elements.
func (t *Tree) IsTerminal(id NodeID) bool {
	return t.node(id).elem.IsTerminal()
}

// IsExpanded is true for nodes which have been expanded.
func (t *Tree) IsExpanded(id NodeID) bool {
	return t.node(id).expanded
}

// HasElements is true if expanding a node would yield at least one child.
func (t *Tree) HasElements(id NodeID) bool {
	return len(t.g.ElementsOf(t.node(id).elem)) > 0
}

// IsRecursive is true if an ancestor of a node has the identical name.
func (t *Tree) IsRecursive(id NodeID) bool {
	n := t.node(id)
	if n.recursive {
		return true
	}
	name := n.elem.Name()
	for p := n.parent; p != NoNode; p = t.nodes[p].parent {
		if t.nodes[p].elem.Name() == name {
			return true
		}
	}
	return false
}

// IsFrozen is true for nodes which will never be expanded, either because they
// are recursive or because they are at the maximum depth.
func (t *Tree) IsFrozen(id NodeID) bool {
	return t.node(id).depth >= t.maxDepth || t.IsRecursive(id)
}

// ExpandOneLevel attaches the elements of a node's rule or block as children
// of the node. Terminals, nodes which have already been expanded and frozen
// nodes are left untouched. ExpandOneLevel returns true if children have been
// attached.
func (t *Tree) ExpandOneLevel(id NodeID) bool {
	n := t.node(id)
	if n.expanded || n.elem.IsTerminal() {
		return false
	}
	if t.IsRecursive(id) {
		n.recursive = true
		tracer().Debugf("node %d: recursive reference to %s", id, n.elem.Name())
		return false
	}
	if n.depth >= t.maxDepth {
		tracer().Debugf("node %d: maximum depth %d reached", id, t.maxDepth)
		return false
	}
	elems := t.g.ElementsOf(n.elem)
	n.expanded = true
	depth := n.depth + 1
	for _, e := range elems {
		t.nodes = append(t.nodes, ruleNode{elem: e, parent: id, depth: depth})
		child := NodeID(len(t.nodes) - 1)
		t.nodes[id].children = append(t.nodes[id].children, child) // n may be stale after append
	}
	tracer().Debugf("expanded node %d (%s) with %d children", id, t.nodes[id].elem.Name(), len(elems))
	return len(elems) > 0
}

// Walk visits the nodes of a tree in pre-order, from left to right.
// If f returns false, the children of the node are skipped.
func (t *Tree) Walk(f func(id NodeID) bool) {
	stack := arraystack.New()
	stack.Push(t.Root())
	for !stack.Empty() {
		v, _ := stack.Pop()
		id := v.(NodeID)
		if !f(id) {
			continue
		}
		ch := t.nodes[id].children
		for i := len(ch) - 1; i >= 0; i-- {
			stack.Push(ch[i])
		}
	}
}

// Leaves returns the leaves of a tree in pre-order.
func (t *Tree) Leaves() []NodeID {
	var leaves []NodeID
	t.Walk(func(id NodeID) bool {
		if t.IsLeaf(id) {
			leaves = append(leaves, id)
		}
		return true
	})
	return leaves
}

// Symbols returns the sorted names of all rule references below the root.
// Terminals and blocks are not included.
func (t *Tree) Symbols() []string {
	set := treeset.NewWithStringComparator()
	t.Walk(func(id NodeID) bool {
		if id != t.Root() && t.nodes[id].elem.Kind() == RuleRef {
			set.Add(t.nodes[id].elem.Name())
		}
		return true
	})
	symbols := make([]string, 0, set.Size())
	for _, v := range set.Values() {
		symbols = append(symbols, v.(string))
	}
	return symbols
}
