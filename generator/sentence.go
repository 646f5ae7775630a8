package generator

import (
	"fmt"
	"strings"

	"github.com/npillmayer/gramorpher"
	"github.com/npillmayer/gramorpher/corpus"
	"github.com/npillmayer/gramorpher/grammar"
	"github.com/npillmayer/gramorpher/syntax"
)

// Values binds symbol names to values.
type Values map[string]string

// Value is part of the gramorpher.ValueProvider interface.
func (v Values) Value(name string) (string, bool) {
	s, ok := v[name]
	return s, ok
}

// Instantiate binds the leaves of a tree to concrete values and returns the
// resulting sentence, with values separated by a single blank.
//
// Values are taken from values, if present. Otherwise string literals stand
// for their unquoted text and token references for the literal of their lexer
// rule (if it matches a single literal). Recursive leaves without a value are
// omitted. Every other leaf without a value is an error.
func Instantiate(tree *grammar.Tree, values gramorpher.ValueProvider) (string, error) {
	var parts []string
	for _, id := range tree.Leaves() {
		v, err := valueOf(tree, id, values)
		if err != nil {
			return "", err
		}
		if v != "" {
			parts = append(parts, v)
		}
	}
	return strings.Join(parts, " "), nil
}

func valueOf(tree *grammar.Tree, id grammar.NodeID, values gramorpher.ValueProvider) (string, error) {
	name := tree.Name(id)
	if v, ok := values.Value(name); ok {
		return v, nil
	}
	if tree.IsTerminal(id) {
		if isLiteral(name) {
			return syntax.Unquote(name), nil
		}
		if lit, ok := tree.Grammar().Literal(name); ok {
			return lit, nil
		}
	} else if tree.IsRecursive(id) {
		return "", nil
	}
	return "", fmt.Errorf("no value for symbol %s", name)
}

// isLiteral is true for string literals, but not for ranges like 'a'..'z'.
func isLiteral(name string) bool {
	return strings.HasPrefix(name, "'") && strings.HasSuffix(name, "'") &&
		!strings.Contains(name, "'..'")
}

// Sentences generates a tree for a rule and instantiates it once for every
// case of a corpus.
func (gen *Generator) Sentences(rule string, c *corpus.Corpus) ([]string, error) {
	tree, err := gen.Generate(rule)
	if err != nil {
		return nil, err
	}
	sentences := make([]string, 0, len(c.Cases()))
	for i, cs := range c.Cases() {
		s, err := Instantiate(tree, cs)
		if err != nil {
			return nil, fmt.Errorf("case %d: %w", i+1, err)
		}
		sentences = append(sentences, s)
	}
	return sentences, nil
}
