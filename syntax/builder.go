package syntax

import (
	"strings"
)

// GrammarBuilder is a builder type for grammars, mainly intended for tests.
// Every call of LHS starts a new alternative for a rule; alternatives of
// the same rule are collected in the order they are built.
//
//    b := NewGrammarBuilder("G")
//    b.LHS("expr").N("expr").T("'+'").N("expr").End()   // expr : expr '+' expr
//    b.LHS("expr").T("NUMBER").End()                    //      | NUMBER ;
//    b.Lexer("NUMBER")
//
type GrammarBuilder struct {
	g     *Grammar
	rules map[string]*Rule
	order []string
	lexer []string
}

// NewGrammarBuilder gets a new grammar builder, given the name of the grammar to build.
func NewGrammarBuilder(name string) *GrammarBuilder {
	return &GrammarBuilder{
		g:     NewGrammar(name, Combined),
		rules: make(map[string]*Rule),
	}
}

// AltBuilder builds one alternative of a rule.
type AltBuilder struct {
	b     *GrammarBuilder
	rule  *Rule
	elems []*Element
}

// LHS starts a new alternative for rule name.
func (b *GrammarBuilder) LHS(name string) *AltBuilder {
	r, ok := b.rules[name]
	if !ok {
		r = &Rule{Name: name}
		b.rules[name] = r
		b.order = append(b.order, name)
	}
	return &AltBuilder{b: b, rule: r}
}

// Lexer declares lexer rules.
func (b *GrammarBuilder) Lexer(names ...string) *GrammarBuilder {
	b.lexer = append(b.lexer, names...)
	return b
}

// Grammar returns the grammar built so far.
func (b *GrammarBuilder) Grammar() *Grammar {
	g := NewGrammar(b.g.Name, b.g.Type)
	for _, name := range b.order {
		if err := g.AddRule(b.rules[name]); err != nil {
			tracer().Errorf("%v", err)
		}
	}
	for _, name := range b.lexer {
		if err := g.AddRule(&Rule{Name: name, Lexer: true}); err != nil {
			tracer().Errorf("%v", err)
		}
	}
	return g
}

// T appends a terminal.
func (ab *AltBuilder) T(text string) *AltBuilder {
	ab.elems = append(ab.elems, T(text))
	return ab
}

// N appends a rule reference.
func (ab *AltBuilder) N(name string) *AltBuilder {
	ab.elems = append(ab.elems, N(name))
	return ab
}

// E appends an arbitrary element.
func (ab *AltBuilder) E(e *Element) *AltBuilder {
	ab.elems = append(ab.elems, e)
	return ab
}

// Action appends an action.
func (ab *AltBuilder) Action(code string) *AltBuilder {
	ab.elems = append(ab.elems, &Element{Kind: Action, Text: code, Name: code})
	return ab
}

// Block appends a block with a suffix ("", "?", "*", "+").
func (ab *AltBuilder) Block(suffix string, alts ...[]*Element) *AltBuilder {
	ab.elems = append(ab.elems, B(suffix, alts...))
	return ab
}

// End closes the alternative. An alternative without elements is an epsilon-alternative.
func (ab *AltBuilder) End() *Rule {
	ab.rule.Alternatives = append(ab.rule.Alternatives, ab.elems)
	return ab.rule
}

// Epsilon adds an empty alternative.
func (ab *AltBuilder) Epsilon() *Rule {
	ab.elems = nil
	return ab.End()
}

// --- Element constructors --------------------------------------------------

// T creates a terminal element descriptor.
func T(text string) *Element {
	return &Element{Kind: Terminal, Text: text, Name: text}
}

// N creates a rule reference element descriptor.
func N(name string) *Element {
	return &Element{Kind: RuleReference, Text: name, Name: name}
}

// L creates a labeled element descriptor, wrapping inner.
func L(label string, op string, inner *Element) *Element {
	return &Element{Kind: Labeled, Text: label + op + inner.Text + inner.Suffix, Name: label, Inner: inner}
}

// Seq is a helper for creating one alternative of a block.
func Seq(elems ...*Element) []*Element {
	return elems
}

// B creates a block element descriptor.
func B(suffix string, alts ...[]*Element) *Element {
	return &Element{
		Kind:         Block,
		Text:         BlockText(alts),
		Alternatives: alts,
		Suffix:       suffix,
	}
}

// BlockText creates the grammar text for a block, without whitespace,
// e.g. "(','field)".
func BlockText(alts [][]*Element) string {
	var b strings.Builder
	b.WriteByte('(')
	for i, alt := range alts {
		if i > 0 {
			b.WriteByte('|')
		}
		for _, e := range alt {
			b.WriteString(e.Text)
			b.WriteString(e.Suffix)
		}
	}
	b.WriteByte(')')
	return b.String()
}

// WithSuffix sets the suffix of an element and returns it.
func (e *Element) WithSuffix(suffix string) *Element {
	e.Suffix = suffix
	return e
}
