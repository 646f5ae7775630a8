package grammar

import (
	"fmt"

	"github.com/npillmayer/gramorpher"
	"github.com/npillmayer/gramorpher/syntax"
)

// Kind is the tag of an element.
type Kind int8

// Kinds of grammar elements.
const (
	Terminal Kind = iota
	RuleRef
	Block
	Labeled
	Action
)

func (k Kind) String() string {
	switch k {
	case Terminal:
		return "Terminal"
	case RuleRef:
		return "RuleRef"
	case Block:
		return "Block"
	case Labeled:
		return "Labeled"
	case Action:
		return "Action"
	}
	return "?"
}

// Element is a typed grammar element. The kind of an element is fixed at
// construction time.
type Element struct {
	kind         Kind
	name         string
	rep          gramorpher.Repetition
	alternatives [][]*syntax.Element // Block only
	inner        *Element            // Labeled only
}

// Kind returns the tag of an element.
func (e *Element) Kind() Kind {
	return e.kind
}

// Name returns the grammar text of an element, without its EBNF suffix.
// For rule references this is the name of the referenced rule.
func (e *Element) Name() string {
	return e.name
}

// Repetition returns the repetition of an element.
func (e *Element) Repetition() gramorpher.Repetition {
	return e.rep
}

// IsTerminal is true for terminal elements.
func (e *Element) IsTerminal() bool {
	return e.kind == Terminal
}

// Inner returns the wrapped element of a labeled element, and nil otherwise.
func (e *Element) Inner() *Element {
	return e.inner
}

func (e *Element) String() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%s%s(%s)", e.name, e.rep, e.kind)
}

// --- Construction ----------------------------------------------------------

func ruleElement(name string) *Element {
	return &Element{kind: RuleRef, name: name}
}

// makeElement creates a grammar element from a syntax element descriptor.
// It returns nil for descriptors which do not contribute to expansion.
func (g *Grammar) makeElement(d *syntax.Element) *Element {
	if d == nil {
		return nil
	}
	rep := d.Repetition()
	switch d.Kind {
	case syntax.Terminal:
		return &Element{kind: Terminal, name: d.Name, rep: rep}
	case syntax.RuleReference:
		if !g.isParserRule(d.Name) {
			tracer().Debugf("dropping reference to unknown rule %s", d.Name)
			return nil
		}
		return &Element{kind: RuleRef, name: d.Name, rep: rep}
	case syntax.Block:
		return &Element{kind: Block, name: d.Text, rep: rep, alternatives: d.Alternatives}
	case syntax.Labeled:
		inner := g.makeElement(d.Inner)
		if inner == nil {
			return nil
		}
		if inner.rep == gramorpher.NoRepetition {
			inner.rep = rep // x=ID* carries the suffix on the label
		}
		return &Element{kind: Labeled, name: d.Text, rep: inner.rep, inner: inner}
	}
	return nil // actions
}
