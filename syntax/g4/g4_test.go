package g4

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/npillmayer/gramorpher"
	"github.com/npillmayer/gramorpher/syntax"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func grammarFile(name string) string {
	return filepath.Join("..", "..", "testdata", "grammars", name)
}

func TestLexerTokens(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gramorpher.syntax")
	defer teardown()
	//
	lex, err := Lexer()
	if err != nil {
		t.Fatal(err)
	}
	scan, err := lex.Scanner(`r : x+=ID { nested { action } } ',' /* comment */ [arg] ;`)
	if err != nil {
		t.Fatal(err)
	}
	initTokens()
	expected := []int{tokRuleRef, tokenID(":"), tokRuleRef, tokenID("+="), tokTokenRef,
		tokAction, tokString, tokArgument, tokenID(";")}
	for i, typ := range expected {
		tok := scan.NextToken()
		if int(tok.TokType()) != typ {
			t.Errorf("token #%d: expected type %d, have %d (%q)", i, typ, tok.TokType(), tok.Lexeme())
		}
	}
}

func TestHello(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gramorpher.syntax")
	defer teardown()
	//
	g, err := ParseFile(grammarFile("Hello.g4"))
	if err != nil {
		t.Fatal(err)
	}
	if g.Name != "Hello" || g.Type != syntax.Combined {
		t.Errorf("expected combined grammar Hello, have %s", g.Name)
	}
	if rules := g.ListRules(); len(rules) != 1 || rules[0] != "r" {
		t.Errorf("expected parser rules [r], have %v", rules)
	}
	if lex := g.LexerRules(); len(lex) != 2 {
		t.Errorf("expected lexer rules [ID WS], have %v", lex)
	}
	alts, err := g.RuleAlternatives("r")
	if err != nil {
		t.Fatal(err)
	}
	if len(alts) != 1 || len(alts[0]) != 2 {
		t.Fatalf("expected 1 alternative with 2 elements, have %v", alts)
	}
	if e := alts[0][0]; e.Kind != syntax.Terminal || e.Name != "'hello'" {
		t.Errorf("expected terminal 'hello', have %v", e)
	}
	if e := alts[0][1]; e.Kind != syntax.Terminal || e.Name != "ID" {
		t.Errorf("expected terminal ID, have %v", e)
	}
}

func TestCSV(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gramorpher.syntax")
	defer teardown()
	//
	g, err := ParseFile(grammarFile("CSV.g4"))
	if err != nil {
		t.Fatal(err)
	}
	row, err := g.RuleAlternatives("row")
	if err != nil {
		t.Fatal(err)
	}
	if len(row) != 1 || len(row[0]) != 4 {
		t.Fatalf("expected row to have 4 elements, have %s", syntax.AlternativesText(row))
	}
	block := row[0][1]
	if block.Kind != syntax.Block || block.Text != "(','field)" {
		t.Errorf("expected block (','field), have %v", block)
	}
	if block.Repetition() != gramorpher.Star {
		t.Errorf("expected block to repeat with '*', have %q", block.Suffix)
	}
	if len(block.Alternatives) != 1 || len(block.Alternatives[0]) != 2 {
		t.Errorf("expected block with one alternative of 2 elements")
	}
	if cr := row[0][2]; cr.Name != `'\r'` || cr.Repetition() != gramorpher.Optional {
		t.Errorf(`expected optional '\r', have %v`, cr)
	}
	field, _ := g.RuleAlternatives("field")
	if len(field) != 3 || len(field[2]) != 0 {
		t.Errorf("expected 3 alternatives for field, last one empty; have %s",
			syntax.AlternativesText(field))
	}
}

func TestExprLabels(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gramorpher.syntax")
	defer teardown()
	//
	g, err := ParseFile(grammarFile("Expr.g4"))
	if err != nil {
		t.Fatal(err)
	}
	if rules := g.ListRules(); len(rules) != 3 {
		t.Errorf("expected parser rules [prog stat expr], have %v", rules)
	}
	expr, _ := g.RuleAlternatives("expr")
	if len(expr) != 5 {
		t.Fatalf("expected 5 alternatives for expr, have %d", len(expr))
	}
	op := expr[0][1]
	if op.Kind != syntax.Labeled || op.Name != "op" || op.Text != "op=('*'|'/')" {
		t.Errorf("expected labeled element op=('*'|'/'), have %v", op)
	}
	if op.Inner == nil || op.Inner.Kind != syntax.Block || len(op.Inner.Alternatives) != 2 {
		t.Errorf("expected labeled block with 2 alternatives, have %v", op.Inner)
	}
	if e := expr[0][0]; e.Kind != syntax.RuleReference || e.Name != "expr" {
		t.Errorf("expected reference to expr, have %v", e)
	}
}

func TestUnQL(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gramorpher.syntax")
	defer teardown()
	//
	g, err := ParseFile(grammarFile("UnQL.g4"))
	if err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"insert_stmt", "select_stmt", "update_stmt", "delete_stmt"} {
		if !g.IsParserRule(name) {
			t.Errorf("expected parser rule %s", name)
		}
	}
	if r, ok := g.Rule("K_NULL"); !ok || !r.Lexer {
		t.Errorf("expected K_NULL to be declared as a token")
	}
	if r, ok := g.Rule("SCOL"); !ok || r.Literal != "';'" {
		t.Errorf("expected SCOL to match literal ';', have %v", r)
	}
	if r, ok := g.Rule("K_INSERT"); !ok || r.Literal != "" {
		t.Errorf("expected K_INSERT without a literal")
	}
	if r, ok := g.Rule("DIGIT"); !ok || !r.Fragment {
		t.Errorf("expected DIGIT to be a fragment")
	}
	insert, _ := g.RuleAlternatives("insert_stmt")
	if text := syntax.AlternativesText(insert); text != "K_INSERT K_INTO collection_name K_VALUE data_value" {
		t.Errorf("unexpected insert_stmt: %s", text)
	}
	errRule, _ := g.RuleAlternatives("error")
	if len(errRule[0]) != 2 || errRule[0][1].Kind != syntax.Action {
		t.Errorf("expected action in rule error, have %s", syntax.AlternativesText(errRule))
	}
}

func TestTokensDeclaredBeforeDefinition(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gramorpher.syntax")
	defer teardown()
	//
	g, err := Parse("T", "grammar T; tokens { A, B } s : A B ; A : 'a' ;")
	if err != nil {
		t.Fatal(err)
	}
	if r, ok := g.Rule("A"); !ok || r.Literal != "'a'" {
		t.Errorf("expected A to match literal 'a', have %v", r)
	}
	if len(g.LexerRules()) != 2 {
		t.Errorf("expected 2 lexer rules, have %v", g.LexerRules())
	}
}

func TestQuotedActionsAndNestedArguments(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gramorpher.syntax")
	defer teardown()
	//
	g, err := Parse("T", `grammar T; @members { String s = "}"; } r : 'a' ;`)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := g.Rule("r"); !ok {
		t.Errorf("expected rule r after @members action")
	}
	g, err = Parse("T", `grammar T; r[int[] xs] returns [int[][] ys] : 'a' { f('}'); } ; s : r ;`)
	if err != nil {
		t.Fatal(err)
	}
	alts, err := g.RuleAlternatives("r")
	if err != nil {
		t.Fatal(err)
	}
	if len(alts) != 1 || len(alts[0]) != 2 {
		t.Fatalf("expected r : 'a' {…}, have %s", syntax.AlternativesText(alts))
	}
	if action := alts[0][1]; action.Kind != syntax.Action || action.Name != "{ f('}'); }" {
		t.Errorf("expected action { f('}'); }, have %q", action.Name)
	}
	if _, ok := g.Rule("s"); !ok {
		t.Errorf("expected rule s after rule with nested arguments")
	}
}

func TestCharSets(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gramorpher.syntax")
	defer teardown()
	//
	lex, err := Lexer()
	if err != nil {
		t.Fatal(err)
	}
	for input, lexeme := range map[string]string{
		`~[,\n\r"]+`: `[,\n\r"]`,
		`[[\]] ;`:    `[[\]]`,
		`[a-z[] ;`:   `[a-z[]`,
	} {
		scan, err := lex.Scanner(input)
		if err != nil {
			t.Fatal(err)
		}
		tok := scan.NextToken()
		if int(tok.TokType()) == tokenID("~") {
			tok = scan.NextToken()
		}
		if int(tok.TokType()) != tokArgument || tok.Lexeme() != lexeme {
			t.Errorf("expected char set %s, have %q", lexeme, tok.Lexeme())
		}
	}
}

func TestMalformed(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gramorpher.syntax")
	defer teardown()
	//
	inputs := []string{
		"r : 'a' ;",
		"grammar X; r : 'a' ( ;",
		"grammar X; r : 'a'",
		"grammar X; r : 'a' ; r : 'b' ;",
		"grammar X; r : { unterminated ;",
		"grammar X; r[int xs : 'a' ;",
	}
	for _, input := range inputs {
		_, err := Parse("malformed", input)
		if err == nil {
			t.Errorf("expected error for %q", input)
			continue
		}
		if !errors.Is(err, gramorpher.ErrGrammarLoad) {
			t.Errorf("expected ErrGrammarLoad, have %v", err)
		}
	}
	if _, err := ParseFile(grammarFile("does-not-exist.g4")); !errors.Is(err, gramorpher.ErrGrammarLoad) {
		t.Errorf("expected ErrGrammarLoad for missing file, have %v", err)
	}
}
