/*
Package grammar models the rules of a grammar as trees of typed elements.

A rule is expanded on demand, one level at a time. Clients start with a rule
found by name and repeatedly attach the elements of a node's rule (or block)
as children of that node:

    g := grammar.New(src)                   // src is a syntax.Grammar, usually read by package g4
    tree, err := g.NewTree("row", 30)       // tree with a single node for rule 'row'
    tree.ExpandOneLevel(tree.Root())        // attach field and (','field)* as children

Elements

Grammar elements are one of

    Terminal   a string literal or a lexer token reference; never expanded
    RuleRef    a reference to a parser rule
    Block      a parenthesized sub-expression, carrying alternatives of its own
    Labeled    a named binding; transparent for expansion
    Action     an embedded action; contributes nothing

Every element carries a repetition, read from its EBNF suffix, and a name,
which is the literal grammar text it corresponds to. Leaves of a tree are
looked up in a symbol provider by their name.

All alternatives of a rule or block are flattened into one list of elements.
A tree therefore models a single, somewhat arbitrary path through the grammar:
the union of all alternatives, in declaration order.

Trees

Trees are arenas of nodes, addressed by NodeID. Each node refers to its parent
by index. A node is never expanded if one of its ancestors has the identical
name (it is frozen as a recursive leaf), nor beyond the maximum depth of a tree.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package grammar

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'gramorpher.grammar'.
func tracer() tracing.Trace {
	return tracing.Select("gramorpher.grammar")
}
