package lexmach

import (
	"testing"

	"github.com/npillmayer/gramorpher/scanner"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/timtadh/lexmachine"
)

var inputStrings = []string{
	"r",
	"r : ID ;",
	"row : field (',' field)* ;",
	`x+=ID // commented `,
	"a|b|c",
}

var tokenCounts = []int{1, 4, 9, 3, 5}

func TestLM(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gramorpher.scanner")
	defer teardown()
	//
	initTokens()
	init := func(lexer *lexmachine.Lexer) {
		lexer.Add([]byte(`//[^\n]*\n?`), Skip)
		lexer.Add([]byte(`'[^']*'`), MakeToken("STRING", tokenIds["STRING"]))
		lexer.Add([]byte(`[A-Z][a-zA-Z0-9_]*`), MakeToken("TOKEN", tokenIds["TOKEN"]))
		lexer.Add([]byte(`[a-z][a-zA-Z0-9_]*`), MakeToken("RULE", tokenIds["RULE"]))
		lexer.Add([]byte(`( |\t|\n|\r)+`), Skip)
	}
	LM, err := NewLMAdapter(init, literals, tokenIds)
	if err != nil {
		t.Fatal(err)
	}
	for i, input := range inputStrings {
		t.Logf("------+-----------------+--------")
		sc, err := LM.Scanner(input)
		if err != nil {
			t.Fatal(err)
		}
		sc.SetErrorHandler(func(e error) {
			t.Error(e)
		})
		token := sc.NextToken()
		count := 0
		for token.TokType() != scanner.EOF {
			t.Logf(" %4d | %15s | @%5d", token.TokType(), token.Lexeme(), token.Span().From())
			token = sc.NextToken()
			count++
		}
		if count != tokenCounts[i] {
			t.Errorf("Expected token count for #%d to be %d, is %d", i, tokenCounts[i], count)
		}
	}
	t.Logf("------+-----------------+--------")
}

func TestSpans(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gramorpher.scanner")
	defer teardown()
	//
	initTokens()
	init := func(lexer *lexmachine.Lexer) {
		lexer.Add([]byte(`[a-z]+`), MakeToken("RULE", tokenIds["RULE"]))
		lexer.Add([]byte(` +`), Skip)
	}
	LM, err := NewLMAdapter(init, literals, tokenIds)
	if err != nil {
		t.Fatal(err)
	}
	sc, _ := LM.Scanner("ab  cde")
	tok := sc.NextToken()
	if tok.Span().From() != 0 || tok.Span().To() != 2 {
		t.Errorf("expected first token at (0…2), is %s", tok.Span())
	}
	tok = sc.NextToken()
	if tok.Lexeme() != "cde" || tok.Span().From() != 4 || tok.Span().To() != 7 {
		t.Errorf("expected second token 'cde' at (4…7), is %q at %s", tok.Lexeme(), tok.Span())
	}
	if tok = sc.NextToken(); tok.TokType() != scanner.EOF {
		t.Errorf("expected EOF, have %q", tok.Lexeme())
	}
}

func TestUnconsumedInput(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gramorpher.scanner")
	defer teardown()
	//
	initTokens()
	init := func(lexer *lexmachine.Lexer) {
		lexer.Add([]byte(`[a-z]+`), MakeToken("RULE", tokenIds["RULE"]))
		lexer.Add([]byte(` +`), Skip)
	}
	LM, err := NewLMAdapter(init, literals, tokenIds)
	if err != nil {
		t.Fatal(err)
	}
	sc, _ := LM.Scanner("ab %d%s cd") // reported by the default error handler
	for _, lexeme := range []string{"ab", "d", "s", "cd"} {
		if tok := sc.NextToken(); tok.Lexeme() != lexeme {
			t.Errorf("expected %q, have %q", lexeme, tok.Lexeme())
		}
	}
	if tok := sc.NextToken(); tok.TokType() != scanner.EOF {
		t.Errorf("expected EOF, have %q", tok.Lexeme())
	}
}

var literals []string       // The tokens representing literal strings
var tokens []string         // All of the tokens (including literals)
var tokenIds map[string]int // A map from the token names to their int ids

func initTokens() {
	literals = []string{
		":",
		";",
		"|",
		"(",
		")",
		"*",
		"+",
		"+=",
		",",
	}
	tokens = []string{
		"STRING",
		"TOKEN",
		"RULE",
	}
	tokens = append(tokens, literals...)
	tokenIds = make(map[string]int)
	for i, tok := range tokens {
		tokenIds[tok] = i + 10
	}
}
