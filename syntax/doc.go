/*
Package syntax holds the syntax of a grammar, as it has been read from grammar
source text: rules, their alternatives and, for each alternative, its ordered
list of element descriptors.

A syntax.Grammar is read-only for its clients. It answers two questions:

    g.ListRules()              // names of all parser rules, in declaration order
    g.RuleAlternatives(name)   // alternatives of a parser rule, as lists of elements

Element descriptors are one of

    Terminal        a literal ('select') or a lexer token reference (ID)
    RuleReference   a reference to another parser rule
    Labeled         a named binding (x=ID, xs+=expr) around a terminal, rule or block
    Action          an embedded code block or semantic predicate
    Block           a parenthesized sub-expression with alternatives of its own

Grammars are usually produced by package g4, which reads ANTLR v4 grammar
files. For tests, grammars may be created with a builder object:

    b := syntax.NewGrammarBuilder("CSV")
    b.LHS("row").N("field").Block("*", syntax.Seq(syntax.T("','"), syntax.N("field"))).End()
    b.LHS("field").T("TEXT").End()
    b.LHS("field").T("STRING").End()
    b.Lexer("TEXT", "STRING")
    g := b.Grammar()

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package syntax

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'gramorpher.syntax'.
func tracer() tracing.Trace {
	return tracing.Select("gramorpher.syntax")
}
