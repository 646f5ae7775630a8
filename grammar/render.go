package grammar

import (
	"strings"

	"github.com/cnf/structhash"
	"github.com/pterm/pterm"
)

// Render returns a textual dump of a tree, one line per node in pre-order.
// Lines are indented by tree depth and carry the repetition of a node, if any:
//
//    row
//    ├── field
//    └── (','field) *
//        ├── ','
//        └── field
//
func Render(t *Tree) string {
	var b strings.Builder
	var render func(id NodeID, prefix string, last bool)
	render = func(id NodeID, prefix string, last bool) {
		n := &t.nodes[id]
		if id != t.Root() {
			b.WriteString(prefix)
			if last {
				b.WriteString("└── ")
				prefix += "    "
			} else {
				b.WriteString("├── ")
				prefix += "│   "
			}
		}
		b.WriteString(label(n.elem))
		b.WriteByte('\n')
		for i, ch := range n.children {
			render(ch, prefix, i == len(n.children)-1)
		}
	}
	render(t.Root(), "", true)
	return b.String()
}

func label(e *Element) string {
	if rep := e.Repetition().String(); rep != "" {
		return e.Name() + " " + rep
	}
	return e.Name()
}

// LeveledList converts a tree into a list of items for pterm's tree printer.
//
//    root := pterm.NewTreeFromLeveledList(grammar.LeveledList(tree))
//    pterm.DefaultTree.WithRoot(root).Render()
//
func LeveledList(t *Tree) pterm.LeveledList {
	var ll pterm.LeveledList
	t.Walk(func(id NodeID) bool {
		ll = append(ll, pterm.LeveledListItem{Level: t.nodes[id].depth, Text: label(t.nodes[id].elem)})
		return true
	})
	return ll
}

// shape is the hashable structure of a tree node.
type shape struct {
	Name       string
	Kind       int
	Repetition int
	Children   []shape
}

func (t *Tree) shapeOf(id NodeID) shape {
	n := &t.nodes[id]
	s := shape{Name: n.elem.Name(), Kind: int(n.elem.Kind()), Repetition: int(n.elem.Repetition())}
	for _, ch := range n.children {
		s.Children = append(s.Children, t.shapeOf(ch))
	}
	return s
}

// Fingerprint returns a hash of the structure of a tree. Trees of identical
// shape, with nodes of identical names in identical order, have identical
// fingerprints.
func Fingerprint(t *Tree) (string, error) {
	return structhash.Hash(t.shapeOf(t.Root()), 1)
}
