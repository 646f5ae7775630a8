/*
Command gramorpher generates test sentences from ANTLR v4 grammars.

Usage:

    gramorpher rules    <grammar.g4>
    gramorpher print    <grammar.g4> <rule> [--levels n]
    gramorpher generate <grammar.g4> <rule> --corpus <cases.pict> [--tree] [--fingerprint]
    gramorpher repl     <grammar.g4> [--corpus <cases.pict>]

The corpus is a tab-delimited table, as written by pairwise test-case tools
like PICT. Global flags --max-depth and --max-iterations bound the expansion
of rules, --trace sets the trace level [Debug|Info|Error]. Settings may be
read from a YAML file given with --config:

    trace: Info
    max-depth: 30
    max-iterations: 10000
    corpus: testdata/corpuses/UnQL.pict

Flags given on the command line take precedence over the config file.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package main

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'gramorpher.cli'.
func tracer() tracing.Trace {
	return tracing.Select("gramorpher.cli")
}
