package generator

import (
	"fmt"

	"github.com/npillmayer/gramorpher"
	"github.com/npillmayer/gramorpher/grammar"
	"github.com/npillmayer/schuko/gconf"
)

// DefaultMaxIterations is the default iteration ceiling of the fixpoint loop.
const DefaultMaxIterations = 10000

// Generator expands grammar rules until they are resolvable against a symbol
// provider. A generator keeps no state between calls to Generate.
type Generator struct {
	g             *grammar.Grammar
	symbols       gramorpher.SymbolProvider
	maxDepth      int
	maxIterations int
}

// Option configures a generator.
type Option func(gen *Generator)

// MaxDepth sets the maximum depth of expansion trees.
func MaxDepth(n int) Option {
	return func(gen *Generator) {
		if n > 0 {
			gen.maxDepth = n
		}
	}
}

// MaxIterations sets the iteration ceiling of the fixpoint loop.
func MaxIterations(n int) Option {
	return func(gen *Generator) {
		if n > 0 {
			gen.maxIterations = n
		}
	}
}

// New creates a generator for a grammar, resolving leaves against symbols.
func New(g *grammar.Grammar, symbols gramorpher.SymbolProvider, opts ...Option) *Generator {
	gen := &Generator{
		g:             g,
		symbols:       symbols,
		maxDepth:      configInt("generator-max-depth", grammar.DefaultMaxDepth),
		maxIterations: configInt("generator-max-iterations", DefaultMaxIterations),
	}
	for _, opt := range opts {
		opt(gen)
	}
	return gen
}

func configInt(key string, dflt int) int {
	if n := gconf.GetInt(key); n > 0 {
		return n
	}
	return dflt
}

// Grammar returns the grammar of a generator.
func (gen *Generator) Grammar() *grammar.Grammar {
	return gen.g
}

// Generate expands a rule until every leaf of the resulting tree is resolved.
// It fails with gramorpher.ErrRuleNotFound for unknown rules and with
// gramorpher.ErrGenerationExhausted if unresolved leaves remain which cannot
// be expanded any further.
func (gen *Generator) Generate(rule string) (*grammar.Tree, error) {
	tree, err := gen.g.NewTree(rule, gen.maxDepth)
	if err != nil {
		return nil, err
	}
	for iteration := 0; ; iteration++ {
		next, resolved := gen.nextExpandable(tree)
		if resolved {
			tracer().Infof("rule %s resolved after %d expansions, %d nodes", rule, iteration, tree.Size())
			return tree, nil
		}
		if next == grammar.NoNode {
			return nil, exhausted(rule, tree, "no expandable leaf left")
		}
		if iteration >= gen.maxIterations {
			return nil, exhausted(rule, tree, fmt.Sprintf("no resolution after %d iterations", iteration))
		}
		tracer().Debugf("expanding node %d (%s)", next, tree.Name(next))
		tree.ExpandOneLevel(next)
	}
}

// nextExpandable walks the leaves of a tree in pre-order. It returns the
// first unresolved leaf which is expandable, and whether all leaves are resolved.
func (gen *Generator) nextExpandable(tree *grammar.Tree) (grammar.NodeID, bool) {
	next := grammar.NoNode
	resolved := true
	tree.Walk(func(id grammar.NodeID) bool {
		if !tree.IsLeaf(id) || gen.IsResolved(tree, id) {
			return true
		}
		resolved = false
		if next == grammar.NoNode && !tree.IsExpanded(id) && !tree.IsFrozen(id) && tree.HasElements(id) {
			next = id
		}
		return true
	})
	return next, resolved
}

// IsResolved is true for leaves which are terminals, which are known to the
// symbol provider, or which are frozen by the recursion guard.
func (gen *Generator) IsResolved(tree *grammar.Tree, id grammar.NodeID) bool {
	if !tree.IsLeaf(id) {
		return false
	}
	return tree.IsTerminal(id) || gen.symbols.HasSymbol(tree.Name(id)) || tree.IsRecursive(id)
}

func exhausted(rule string, tree *grammar.Tree, msg string) error {
	tracer().Errorf("rule %s: %s", rule, msg)
	if gconf.GetBool("panic-on-generation-exhausted") {
		panic(`Generation is exhausted.

Configuration flag panic-on-generation-exhausted is set to true. It is aimed at
helping to debug a grammar or corpus. If you did not expect this to panic,
please unset panic-on-generation-exhausted to its default (false).

` + msg + "\n" + grammar.Render(tree))
	}
	return fmt.Errorf("%w: rule %s: %s", gramorpher.ErrGenerationExhausted, rule, msg)
}
