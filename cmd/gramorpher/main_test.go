package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/npillmayer/gramorpher"
	"github.com/npillmayer/schuko/gconf"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func grammarFile(name string) string {
	return filepath.Join("..", "..", "testdata", "grammars", name+".g4")
}

func corpusFile(name string) string {
	return filepath.Join("..", "..", "testdata", "corpuses", name+".pict")
}

func testSettings() settings {
	return settings{trace: "Error", maxDepth: 30, maxIterations: 10000}
}

func TestRules(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gramorpher.cli")
	defer teardown()
	//
	var out bytes.Buffer
	require.NoError(t, runRules(&out, grammarFile("Expr")))
	assert.Equal(t, "prog\nstat\nexpr\n", out.String())

	err := runRules(&out, grammarFile("does-not-exist"))
	assert.True(t, errors.Is(err, gramorpher.ErrGrammarLoad))
}

func TestGenerate(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gramorpher.cli")
	defer teardown()
	//
	s := testSettings()
	s.corpus = corpusFile("Hello")
	var out bytes.Buffer
	require.NoError(t, runGenerate(&out, grammarFile("Hello"), "r", s))
	assert.Equal(t, "hello world\nhello gopher\n", out.String())

	err := runGenerate(&out, grammarFile("Hello"), "nonexistent", s)
	assert.True(t, errors.Is(err, gramorpher.ErrRuleNotFound))

	s.corpus = ""
	err = runGenerate(&out, grammarFile("Hello"), "r", s)
	assert.True(t, errors.Is(err, gramorpher.ErrCorpusLoad), "missing corpus is a corpus load error")
}

func TestPrintLevels(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gramorpher.cli")
	defer teardown()
	//
	g, err := loadGrammar(grammarFile("CSV"))
	require.NoError(t, err)
	tree, err := expandLevels(g, "row", 2, 30)
	require.NoError(t, err)
	var out bytes.Buffer
	require.NoError(t, writeTree(&out, tree))
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 9)
	assert.Equal(t, "row", lines[0])
	assert.Equal(t, "├── field", lines[1])
	assert.Equal(t, "│   ├── TEXT", lines[2])
}

func TestREPLEval(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gramorpher.cli")
	defer teardown()
	//
	s := testSettings()
	s.corpus = corpusFile("UnQL")
	intp, err := newIntp(grammarFile("UnQL"), s)
	require.NoError(t, err)

	var out bytes.Buffer
	quit, err := intp.Eval("insert_stmt", &out)
	require.NoError(t, err)
	assert.False(t, quit)
	assert.Contains(t, out.String(), "└── data_value")
	assert.Contains(t, out.String(), "insert into logs value {}")

	out.Reset()
	_, err = intp.Eval(":rules", &out)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out.String(), "parse\nerror\n"))

	_, err = intp.Eval(":print", &out)
	assert.Error(t, err)
	_, err = intp.Eval(":unknown", &out)
	assert.Error(t, err)
	_, err = intp.Eval("no_such_rule", &out)
	assert.True(t, errors.Is(err, gramorpher.ErrRuleNotFound))

	quit, err = intp.Eval(":quit", &out)
	require.NoError(t, err)
	assert.True(t, quit)
}

func TestREPLWithoutCorpus(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gramorpher.cli")
	defer teardown()
	//
	intp, err := newIntp(grammarFile("Hello"), testSettings())
	require.NoError(t, err)
	var out bytes.Buffer
	_, err = intp.Eval("r", &out)
	require.NoError(t, err)
	assert.Equal(t, "r\n├── 'hello'\n└── ID\n", out.String())
}

func TestConfig(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gramorpher.cli")
	defer teardown()
	//
	path := filepath.Join(t.TempDir(), "gramorpher.yaml")
	yml := "trace: Debug\nmax-depth: 12\nmax-iterations: 99\ncorpus: cases.pict\npanic-on-exhausted: true\n"
	require.NoError(t, os.WriteFile(path, []byte(yml), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, &Config{Trace: "Debug", MaxDepth: 12, MaxIterations: 99, Corpus: "cases.pict",
		PanicOnExhausted: true}, cfg)
	defer gconf.Initialize(&Config{})

	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().String("trace", "Error", "")
	cmd.Flags().Int("max-depth", 30, "")
	require.NoError(t, cmd.Flags().Set("max-depth", "5"))
	s := settings{configFile: path, trace: "Error", maxDepth: 5, maxIterations: 10000}
	require.NoError(t, applyConfig(cmd, &s))
	assert.Equal(t, "Debug", s.trace)
	assert.Equal(t, 5, s.maxDepth, "flags set on the command line take precedence")
	assert.Equal(t, 99, s.maxIterations)
	assert.Equal(t, "cases.pict", s.corpus)
	assert.Equal(t, 12, gconf.GetInt("generator-max-depth"))
	assert.Equal(t, 99, gconf.GetInt("generator-max-iterations"))
	assert.True(t, gconf.GetBool("panic-on-generation-exhausted"))
	assert.False(t, gconf.IsSet("no-such-key"))

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
