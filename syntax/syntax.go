package syntax

import (
	"fmt"
	"strings"

	"github.com/npillmayer/gramorpher"
)

// Kind is the discriminant for element descriptors.
type Kind int8

// Kinds of element descriptors.
const (
	Terminal Kind = iota
	RuleReference
	Labeled
	Action
	Block
)

func (k Kind) String() string {
	switch k {
	case Terminal:
		return "terminal"
	case RuleReference:
		return "ruleref"
	case Labeled:
		return "labeled"
	case Action:
		return "action"
	case Block:
		return "block"
	}
	return "?"
}

// Element is a descriptor for an element of a grammar alternative.
type Element struct {
	Kind         Kind
	Text         string       // grammar text of the element, without suffix and whitespace
	Name         string       // terminal text, referenced rule or label
	Inner        *Element     // labeled elements only
	Alternatives [][]*Element // blocks only
	Suffix       string       // EBNF suffix, if any
	Span         gramorpher.Span
}

// Repetition returns the repetition of an element, derived from its EBNF suffix.
func (e *Element) Repetition() gramorpher.Repetition {
	return gramorpher.RepetitionFromSuffix(e.Suffix)
}

func (e *Element) String() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%s%s[%s]", e.Text, e.Suffix, e.Kind)
}

// Rule is a grammar rule. Alternatives are recorded for parser rules only.
type Rule struct {
	Name         string
	Lexer        bool         // lexer rules are referenced as terminals
	Fragment     bool         // lexer fragment rule
	Literal      string       // lexer rules matching a single string literal only
	Alternatives [][]*Element // one list of elements per alternative
	Span         gramorpher.Span
}

// Type is the kind of grammar, as declared in a grammar header.
type Type int8

// Grammar types.
const (
	Combined Type = iota
	ParserGrammar
	LexerGrammar
)

// Grammar is a read-only collection of rules.
type Grammar struct {
	Name       string
	Type       Type
	rules      []*Rule // parser rules in declaration order
	lexerRules []*Rule
	index      map[string]*Rule
}

// NewGrammar creates an empty grammar.
func NewGrammar(name string, typ Type) *Grammar {
	return &Grammar{
		Name:  name,
		Type:  typ,
		index: make(map[string]*Rule),
	}
}

// AddRule adds a rule to a grammar. Rule names have to be unique.
func (g *Grammar) AddRule(r *Rule) error {
	if r == nil || r.Name == "" {
		return fmt.Errorf("rule without a name")
	}
	if _, exists := g.index[r.Name]; exists {
		return fmt.Errorf("rule %q already defined", r.Name)
	}
	g.index[r.Name] = r
	if r.Lexer {
		g.lexerRules = append(g.lexerRules, r)
	} else {
		g.rules = append(g.rules, r)
	}
	tracer().Debugf("grammar %s: added rule %s", g.Name, r.Name)
	return nil
}

// ListRules returns the names of all parser rules, in declaration order.
func (g *Grammar) ListRules() []string {
	names := make([]string, len(g.rules))
	for i, r := range g.rules {
		names[i] = r.Name
	}
	return names
}

// LexerRules returns the names of all lexer rules, in declaration order.
func (g *Grammar) LexerRules() []string {
	names := make([]string, len(g.lexerRules))
	for i, r := range g.lexerRules {
		names[i] = r.Name
	}
	return names
}

// Rule finds a rule by name. Lexer rules are found, too.
func (g *Grammar) Rule(name string) (*Rule, bool) {
	r, ok := g.index[name]
	return r, ok
}

// IsParserRule returns true if name denotes a parser rule.
func (g *Grammar) IsParserRule(name string) bool {
	r, ok := g.index[name]
	return ok && !r.Lexer
}

// RuleAlternatives returns the alternatives of a parser rule.
// If no parser rule of this name exists, an error wrapping
// gramorpher.ErrRuleNotFound is returned.
func (g *Grammar) RuleAlternatives(name string) ([][]*Element, error) {
	r, ok := g.index[name]
	if !ok || r.Lexer {
		return nil, fmt.Errorf("%w: %s (grammar %s)", gramorpher.ErrRuleNotFound, name, g.Name)
	}
	return r.Alternatives, nil
}

// Dump is a debugging helper, tracing all rules at debug level.
func (g *Grammar) Dump() {
	tracer().Debugf("--- grammar %s -----------", g.Name)
	for _, r := range g.rules {
		tracer().Debugf("%s : %s ;", r.Name, AlternativesText(r.Alternatives))
	}
	for _, r := range g.lexerRules {
		tracer().Debugf("%s : … ;", r.Name)
	}
	tracer().Debugf("-------------------------")
}

// AlternativesText joins alternatives the way they appear in grammar text,
// with a single blank between elements.
func AlternativesText(alts [][]*Element) string {
	var b strings.Builder
	for i, alt := range alts {
		if i > 0 {
			b.WriteString(" | ")
		}
		for j, e := range alt {
			if j > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(e.Text)
			b.WriteString(e.Suffix)
		}
	}
	return b.String()
}
