/*
Package g4 reads grammar files in ANTLR v4 notation.

Reading a grammar results in a syntax.Grammar, holding all parser rules with
their alternatives and the names of all lexer rules:

    g, err := g4.ParseFile("UnQL.g4")
    if err != nil {
        // errors.Is(err, gramorpher.ErrGrammarLoad) holds
    }
    for _, name := range g.ListRules() { … }

The reader understands combined, parser and lexer grammars. It does not check
a grammar for correctness beyond its structure: references to undefined rules,
for example, are not reported. Constructs without relevance for generating
sentences are read and dropped: prequels (options, tokens, channels, import,
named actions), rule arguments, return values, locals, exception handlers,
element options and alternative labels. Lexer rules are recorded by name
only, as they will be referenced as terminals.

Element labels (x=ID, xs+=expr) are kept as labeled elements, embedded code
and semantic predicates are kept as actions. Negated sets (~X), character
ranges ('a'..'z') and the wildcard (.) are treated as terminals.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package g4

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'gramorpher.syntax'.
func tracer() tracing.Trace {
	return tracing.Select("gramorpher.syntax")
}
