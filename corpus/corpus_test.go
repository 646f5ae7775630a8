package corpus

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/npillmayer/gramorpher"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestParseString(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gramorpher.corpus")
	defer teardown()
	//
	c, err := ParseString("ID\tNUMBER\nworld\t1\ngopher\t2\n")
	if err != nil {
		t.Fatal(err)
	}
	if names := c.Names(); len(names) != 2 || names[0] != "ID" || names[1] != "NUMBER" {
		t.Errorf("expected names [ID NUMBER], have %v", names)
	}
	if !c.HasSymbol("ID") || c.HasSymbol("STRING") {
		t.Errorf("expected ID to be a symbol, and STRING not to be")
	}
	if !c.HasSymbols([]string{"ID", "NUMBER"}) || c.HasSymbols([]string{"ID", "STRING"}) {
		t.Errorf("expected HasSymbols to require all of the names")
	}
	cases := c.Cases()
	if len(cases) != 2 {
		t.Fatalf("expected 2 cases, have %d", len(cases))
	}
	if v, ok := cases[1].Value("ID"); !ok || v != "gopher" {
		t.Errorf("expected ID=gopher in case 2, have %q", v)
	}
	if _, ok := cases[0].Value("STRING"); ok {
		t.Errorf("expected absent symbol not to be found")
	}
	if sym := c.Symbol("NUMBER"); sym == nil || sym.Column != 1 || len(sym.Values) != 2 {
		t.Errorf("unexpected symbol NUMBER: %v", sym)
	}
}

func TestParseFile(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gramorpher.corpus")
	defer teardown()
	//
	c, err := ParseFile(filepath.Join("..", "testdata", "corpuses", "UnQL.pict"))
	if err != nil {
		t.Fatal(err)
	}
	if !c.HasSymbols([]string{"K_INSERT", "K_INTO", "K_VALUE", "collection_name", "data_value"}) {
		t.Errorf("expected all insert_stmt symbols, have %v", c.Names())
	}
	if v, _ := c.Cases()[0].Value("data_value"); v != `{"name": "alice"}` {
		t.Errorf("expected value with bare quotes, have %q", v)
	}
}

func TestHeaderOnly(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gramorpher.corpus")
	defer teardown()
	//
	c, err := ParseString("field\n")
	if err != nil {
		t.Fatal(err)
	}
	if !c.HasSymbol("field") || len(c.Cases()) != 0 {
		t.Errorf("expected symbol field without cases")
	}
}

func TestCorpusLoadErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gramorpher.corpus")
	defer teardown()
	//
	inputs := []string{
		"",
		"a\tb\n1\n",
		"a\ta\n1\t2\n",
		"a\t\tb\n1\t2\t3\n",
	}
	for _, input := range inputs {
		if _, err := ParseString(input); !errors.Is(err, gramorpher.ErrCorpusLoad) {
			t.Errorf("expected ErrCorpusLoad for %q, have %v", input, err)
		}
	}
	if _, err := ParseFile("does-not-exist.pict"); !errors.Is(err, gramorpher.ErrCorpusLoad) {
		t.Errorf("expected ErrCorpusLoad for missing file, have %v", err)
	}
}

func TestSymbolTable(t *testing.T) {
	symtab := NewSymbolTable()
	sym, _ := symtab.DefineSymbol("ID", 0)
	if sym == nil || symtab.ResolveSymbol("ID") != sym {
		t.Error("cannot find stored symbol in table")
	}
	if _, old := symtab.DefineSymbol("ID", 1); old != sym {
		t.Error("symbol should have been replaced")
	}
	if s, _ := symtab.DefineSymbol("", 2); s != nil {
		t.Error("symbols must have a name")
	}
	n := 0
	symtab.Each(func(string, *Symbol) { n++ })
	if n != 1 || symtab.Size() != 1 {
		t.Errorf("expected 1 symbol, have %d", n)
	}
}
