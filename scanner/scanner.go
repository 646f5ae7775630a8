/*
Package scanner defines an interface for scanners reading grammar text.

A default scanner implementation is provided as an adapter for lexmachine,
living in sub-package `lexmach`.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package scanner

import (
	"fmt"
	"text/scanner"

	"github.com/npillmayer/gramorpher"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'gramorpher.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("gramorpher.scanner")
}

// EOF is identical to text/scanner.EOF.
const EOF = scanner.EOF

// Tokenizer is a scanner interface.
type Tokenizer interface {
	NextToken() gramorpher.Token
	SetErrorHandler(func(error))
}

// --- Default tokens --------------------------------------------------------

// DefaultToken is a very unsophisticated token type, used as default for
// the LexMachine scanner.
type DefaultToken struct {
	kind   gramorpher.TokType
	lexeme string
	Val    interface{}
	span   gramorpher.Span
}

// MakeDefaultToken creates a token from its parts.
func MakeDefaultToken(typ gramorpher.TokType, lexeme string, span gramorpher.Span) DefaultToken {
	return DefaultToken{
		kind:   typ,
		lexeme: lexeme,
		span:   span,
	}
}

func (t DefaultToken) TokType() gramorpher.TokType {
	return t.kind
}

func (t DefaultToken) Value() interface{} {
	return t.Val
}

func (t DefaultToken) Lexeme() string {
	return t.lexeme
}

func (t DefaultToken) Span() gramorpher.Span {
	return t.span
}

func (t DefaultToken) String() string {
	return fmt.Sprintf("<%d|%q%s>", t.kind, t.lexeme, t.span)
}

// LogError is the default error reporting function for scanners.
func LogError(e error) {
	tracer().Errorf("scanner error: %v", e)
}

// Lexeme is a helper function to receive a string from a token.
func Lexeme(token interface{}) string {
	switch t := token.(type) {
	case string:
		return t
	case []byte:
		return string(t)
	case gramorpher.Token:
		return t.Lexeme()
	default:
		return fmt.Sprintf("%v", t)
	}
}
