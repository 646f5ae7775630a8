package gramorpher

import "errors"

// Error kinds. Packages wrap these with context, clients check for them
// using errors.Is.
var (
	// ErrRuleNotFound flags a rule name absent from the grammar.
	ErrRuleNotFound = errors.New("rule not found")

	// ErrGenerationExhausted flags an expansion which cannot make further
	// progress while leaves remain unresolved.
	ErrGenerationExhausted = errors.New("generation exhausted")

	// ErrGrammarLoad flags malformed or unreadable grammar source.
	ErrGrammarLoad = errors.New("cannot load grammar")

	// ErrCorpusLoad flags malformed or unreadable corpus source.
	ErrCorpusLoad = errors.New("cannot load corpus")
)
