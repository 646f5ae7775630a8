package g4

import (
	"fmt"
	"sync"

	"github.com/npillmayer/gramorpher/scanner/lexmach"
	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// Token types for ANTLR grammar text. Literals use the token types following
// these.
const (
	tokString = iota + 1
	tokTokenRef
	tokRuleRef
	tokAction
	tokArgument
	firstLiteral
)

// The tokens representing literal lexemes
var literals = []string{":", "::", ";", "|", "(", ")", "?", "*", "+", "+=", "=",
	"#", "~", ".", "..", "->", ",", "<", ">", "@", "!", "$"}

// tokenIds will be set in initTokens()
var tokenIds map[string]int // A map from the token names to their token types

var initOnce sync.Once // monitors one-time initialization

func initTokens() {
	initOnce.Do(func() {
		tokenIds = make(map[string]int)
		tokenIds["STRING"] = tokString
		tokenIds["TOKEN_REF"] = tokTokenRef
		tokenIds["RULE_REF"] = tokRuleRef
		tokenIds["ACTION"] = tokAction
		tokenIds["ARGUMENT"] = tokArgument
		for i, lit := range literals {
			tokenIds[lit] = firstLiteral + i
		}
	})
}

func tokenID(lit string) int {
	id, ok := tokenIds[lit]
	if !ok {
		panic(fmt.Errorf("unknown token: %s", lit))
	}
	return id
}

var lexer *lexmach.LMAdapter
var lexerErr error
var lexerOnce sync.Once // monitors one-time creation of the lexer

// Lexer returns a lexmachine lexer for ANTLR grammar text.
func Lexer() (*lexmach.LMAdapter, error) {
	lexerOnce.Do(func() {
		initTokens()
		init := func(lexer *lexmachine.Lexer) {
			lexer.Add([]byte(`//[^\n]*`), lexmach.Skip)
			lexer.Add([]byte(`/\*([^*]|\r|\n|(\*+([^*/]|\r|\n)))*\*+/`), lexmach.Skip)
			lexer.Add([]byte(`'([^'\\\n]|\\.)*'`), lexmach.MakeToken("STRING", tokString))
			lexer.Add([]byte(`[A-Z][a-zA-Z0-9_]*`), lexmach.MakeToken("TOKEN_REF", tokTokenRef))
			lexer.Add([]byte(`[a-z][a-zA-Z0-9_]*`), lexmach.MakeToken("RULE_REF", tokRuleRef))
			lexer.Add([]byte(`\[`), scanArgument)
			lexer.Add([]byte(`\{`), scanAction)
			lexer.Add([]byte(`( |\t|\n|\r)+`), lexmach.Skip)
		}
		lexer, lexerErr = lexmach.NewLMAdapter(init, literals, tokenIds)
	})
	return lexer, lexerErr
}

// scanAction consumes an action block with nested braces. Regular expressions
// cannot match balanced braces, therefore we move the text cursor ourselves.
// Braces inside string or character literals of the target language do not
// count. Should an apostrophe in the action code spoil that, we fall back to
// counting every brace.
func scanAction(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
	end, ok := balanced(s.Text, m.TC, '{', '}', true)
	if !ok {
		if end, ok = balanced(s.Text, m.TC, '{', '}', false); !ok {
			return nil, fmt.Errorf("unterminated action block starting at offset %d", m.TC)
		}
	}
	return bracketToken(s, m, tokAction, end), nil
}

// scanArgument consumes rule arguments, return values and locals, which may
// contain nested brackets, as in r[int[] xs]. Lexer char sets share the
// bracket syntax and may hold a single '[', as in [[\]]. If brackets do not
// balance, the argument ends at the first unescaped ']'.
func scanArgument(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
	end, ok := balanced(s.Text, m.TC, '[', ']', false)
	if !ok {
		if end, ok = flat(s.Text, m.TC, ']'); !ok {
			return nil, fmt.Errorf("unterminated argument starting at offset %d", m.TC)
		}
	}
	return bracketToken(s, m, tokArgument, end), nil
}

// balanced returns the offset behind the delimiter closing the one at text[start].
// If quoted is set, runs enclosed in '"' or '\'' are skipped.
func balanced(text []byte, start int, opening, closing byte, quoted bool) (int, bool) {
	depth := 0
	for tc := start; tc < len(text); tc++ {
		switch c := text[tc]; {
		case c == '\\':
			tc++
		case c == opening:
			depth++
		case c == closing:
			if depth--; depth == 0 {
				return tc + 1, true
			}
		case quoted && (c == '"' || c == '\''):
			end, ok := flat(text, tc, c)
			if !ok {
				return 0, false
			}
			tc = end - 1
		}
	}
	return 0, false
}

// flat returns the offset behind the first unescaped closing after text[start].
func flat(text []byte, start int, closing byte) (int, bool) {
	for tc := start + 1; tc < len(text); tc++ {
		switch text[tc] {
		case '\\':
			tc++
		case closing:
			return tc + 1, true
		}
	}
	return 0, false
}

func bracketToken(s *lexmachine.Scanner, m *machines.Match, typ int, end int) *lexmachine.Token {
	s.TC = end
	lexeme := s.Text[m.TC:end]
	endLine, endCol := m.StartLine, m.StartColumn
	for _, c := range lexeme[1:] {
		if c == '\n' {
			endLine++
			endCol = 0
		}
		endCol++
	}
	return &lexmachine.Token{
		Type:        typ,
		Value:       string(lexeme),
		Lexeme:      lexeme,
		TC:          m.TC,
		StartLine:   m.StartLine,
		StartColumn: m.StartColumn,
		EndLine:     endLine,
		EndColumn:   endCol,
	}
}
