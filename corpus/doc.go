/*
Package corpus loads named symbol values from tab-delimited tables.

The first row of a table holds symbol names, each subsequent row is a test
case, binding every symbol to a concrete value:

    ID	K_VALUE
    world	VALUE
    gopher	value

Tables like this are written by pairwise (combinatorial) test-case tools,
e.g. PICT. A corpus acts as the symbol provider for the generator: a leaf of
an expansion tree is resolvable if its name is a symbol of the corpus.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package corpus

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'gramorpher.corpus'.
func tracer() tracing.Trace {
	return tracing.Select("gramorpher.corpus")
}
