package gramorpher

import "fmt"

// --- A general purpose interface for tokens --------------------------------

// TokType is a category type for a Token. We do not define any constants here, as
// it is up to applications to define them.
type TokType int

// Tokens represent input tokens. They are produced by a scanner and
// reflect terminals of the grammar notation being read.
//
// An example would be a token for a rule reference within a grammar file:
//
//    TokType = RuleRef     // identifier for this kind of tokens (application specific)
//    Lexeme  = "select"    // lexeme how it appeared in the input stream
//    Span    = 67…73       // occured from position 67 in the input stream
//
type Token interface {
	TokType() TokType
	Lexeme() string
	Value() interface{}
	Span() Span
}

// --- Spans ------------------------------------------------------------

// Span is a small type for capturing a length of input token run. A span
// denotes a start position and the position just behind the end.
type Span [2]uint64 // (x…y)

// From returns the start value of a span.
func (s Span) From() uint64 {
	return s[0]
}

// To returns the end value of a span.
func (s Span) To() uint64 {
	return s[1]
}

// Len returns the length of (x…y)
func (s Span) Len() uint64 {
	return s[1] - s[0]
}

func (s Span) IsNull() bool {
	return s == Span{}
}

func (s Span) String() string {
	return fmt.Sprintf("(%d…%d)", s[0], s[1])
}

// --- Repetition ------------------------------------------------------------

// Repetition is the EBNF suffix of a grammar element.
type Repetition int8

// Repetitions an element may carry. Non-greedy suffixes (`*?`, `+?`, `??`)
// map to their greedy counterparts.
const (
	NoRepetition Repetition = iota
	Optional                // ?
	Star                    // *
	Plus                    // +
)

// RepetitionFromSuffix reads a repetition from an EBNF suffix.
func RepetitionFromSuffix(suffix string) Repetition {
	if suffix == "" {
		return NoRepetition
	}
	switch suffix[0] {
	case '?':
		return Optional
	case '*':
		return Star
	case '+':
		return Plus
	}
	return NoRepetition
}

func (r Repetition) String() string {
	switch r {
	case Optional:
		return "?"
	case Star:
		return "*"
	case Plus:
		return "+"
	}
	return ""
}

// --- Symbols ---------------------------------------------------------------

// SymbolProvider is an external source of concrete values for named symbols.
// The generator uses it to decide whether a leaf of an expansion tree is resolvable.
type SymbolProvider interface {
	HasSymbol(name string) bool
	HasSymbols(names []string) bool
}

// ValueProvider binds symbol names to concrete values, usually one case of a corpus.
// Absent names are reported as not found, not as an error.
type ValueProvider interface {
	Value(name string) (string, bool)
}
