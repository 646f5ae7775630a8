package grammar

import (
	"fmt"

	"github.com/npillmayer/gramorpher"
	"github.com/npillmayer/gramorpher/syntax"
)

// Source is a read-only source of grammar syntax. It is implemented by
// syntax.Grammar.
type Source interface {
	ListRules() []string
	RuleAlternatives(name string) ([][]*syntax.Element, error)
}

// lexerSource is implemented by sources which know about lexer rules.
type lexerSource interface {
	Rule(name string) (*syntax.Rule, bool)
}

// Grammar resolves rule names to elements.
type Grammar struct {
	src   Source
	rules map[string]bool // index of parser rules
	order []string
}

// New creates a grammar from a syntax source. Only parser rules are indexed;
// lexer rules are treated as terminals when referenced.
func New(src Source) *Grammar {
	g := &Grammar{src: src, rules: make(map[string]bool)}
	for _, name := range src.ListRules() {
		if !g.rules[name] {
			g.order = append(g.order, name)
		}
		g.rules[name] = true
	}
	tracer().Debugf("grammar with %d parser rules", len(g.order))
	return g
}

// Rules returns the names of all parser rules, in declaration order.
func (g *Grammar) Rules() []string {
	rules := make([]string, len(g.order))
	copy(rules, g.order)
	return rules
}

func (g *Grammar) isParserRule(name string) bool {
	return g.rules[name]
}

// FindRule looks up a parser rule by name. If no parser rule of that name
// exists, an error wrapping gramorpher.ErrRuleNotFound is returned.
func (g *Grammar) FindRule(name string) (*Element, error) {
	if !g.isParserRule(name) {
		return nil, fmt.Errorf("%w: %s", gramorpher.ErrRuleNotFound, name)
	}
	return ruleElement(name), nil
}

// Lexer returns true if name is a lexer rule of the grammar's source.
func (g *Grammar) Lexer(name string) bool {
	if ls, ok := g.src.(lexerSource); ok {
		r, found := ls.Rule(name)
		return found && r.Lexer
	}
	return false
}

// Literal returns the unquoted string literal a lexer rule matches, if the
// rule matches exactly one literal, e.g. "SEMI : ';' ;".
func (g *Grammar) Literal(token string) (string, bool) {
	if ls, ok := g.src.(lexerSource); ok {
		if r, found := ls.Rule(token); found && r.Lexer && r.Literal != "" {
			return syntax.Unquote(r.Literal), true
		}
	}
	return "", false
}

// ElementsOf flattens the alternatives of a rule or block into a single list
// of elements. Elements of every alternative are appended in sequence, from
// left to right.
//
// Actions contribute nothing, labeled elements forward to their inner element
// and references to unknown rules are dropped. Terminals and actions have no
// elements.
func (g *Grammar) ElementsOf(e *Element) []*Element {
	var alts [][]*syntax.Element
	switch e.kind {
	case RuleRef:
		var err error
		if alts, err = g.src.RuleAlternatives(e.name); err != nil {
			tracer().Errorf("rule %s: %v", e.name, err)
			return nil
		}
	case Block:
		alts = e.alternatives
	case Labeled:
		return g.ElementsOf(e.inner)
	default:
		return nil
	}
	var elems []*Element
	for _, alt := range alts {
		for _, d := range alt {
			elem := g.makeElement(d)
			if elem == nil {
				continue
			}
			if elem.kind == Labeled {
				elem = elem.inner
			}
			elems = append(elems, elem)
		}
	}
	return elems
}
