/*
Package gramorpher is a grammar-based metamorphic test-data generator.

Given a context-free grammar (in ANTLR v4 notation) and a corpus of named
symbol values, gramorpher expands a grammar rule into a parse-tree skeleton,
level by level, until every leaf of the skeleton is either a terminal or a
symbol the corpus knows a value for. Substituting corpus values at the leaves
then yields concrete sentences of the grammar. A typical corpus is the output
of a pairwise (combinatorial) test-case tool like PICT.

Package structure is as follows:

■ syntax: Package syntax holds the read-only syntax of a grammar, i.e. rules,
alternatives and element descriptors. Sub-package g4 reads ANTLR v4 grammar files.

■ grammar: Package grammar models rules as trees of typed elements and expands
them one level at a time, guarding against recursive rule definitions.

■ generator: Package generator drives the expansion of a rule until it is
fully resolvable against a corpus, and instantiates sentences from it.

■ corpus: Package corpus loads symbol values from tab-delimited tables.

■ scanner: Package scanner provides tokenizers for reading grammar text.

The base package contains data types which are used throughout all the other packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package gramorpher
