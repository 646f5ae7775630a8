/*
Package generator generates sentences of a grammar, bound to the values of a
corpus.

Generation proceeds in two steps. First, a rule is expanded into a tree until
every leaf of the tree is resolvable: it is either a terminal, or the corpus
knows a value for it. This is a fixpoint loop, expanding exactly one node per
iteration: the first unresolved leaf in pre-order which has not yet been
expanded and which would yield children. If no such leaf exists, generation
fails with gramorpher.ErrGenerationExhausted.

    gen := generator.New(g, corpus)
    tree, err := gen.Generate("insert_stmt")

Leaves which refer to one of their ancestors are frozen by the recursion guard
and will not contribute to a sentence.

Second, the leaves of a tree are bound to the values of a corpus case,
yielding a sentence:

    sentence, err := generator.Instantiate(tree, corpus.Cases()[0])

Configuration

Defaults for the maximum expansion depth and the iteration ceiling are read
from global configuration properties 'generator-max-depth' and
'generator-max-iterations'. Setting 'panic-on-generation-exhausted' will
panic instead of returning ErrGenerationExhausted, for post-mortem debugging.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package generator

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'gramorpher.generator'.
func tracer() tracing.Trace {
	return tracing.Select("gramorpher.generator")
}
