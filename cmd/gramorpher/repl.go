package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/gramorpher"
	"github.com/npillmayer/gramorpher/corpus"
	"github.com/npillmayer/gramorpher/generator"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var replCmd = &cobra.Command{
	Use:   "repl <grammar.g4>",
	Short: "Explore the rules of a grammar interactively",
	Long: `Repl reads rule names and prints their expansion and, if a corpus is given,
the sentences generated from it. Other commands are

    :rules               list parser rules
    :print rule [n]      print rule expanded to n levels
    :quit                leave the REPL (or <ctrl>D)`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		intp, err := newIntp(args[0], opts)
		if err != nil {
			return err
		}
		repl, err := readline.New("gramorpher> ")
		if err != nil {
			return err
		}
		defer repl.Close()
		pterm.Info.Println("Welcome to gramorpher")
		tracer().Infof("Quit with <ctrl>D")
		intp.REPL(repl, cmd.OutOrStdout())
		return nil
	},
}

func init() {
	replCmd.Flags().StringVar(&opts.corpus, "corpus", "", "Tab-delimited corpus file")
	rootCmd.AddCommand(replCmd)
}

// noSymbols is a symbol provider for sessions without a corpus.
type noSymbols struct{}

func (noSymbols) HasSymbol(string) bool    { return false }
func (noSymbols) HasSymbols([]string) bool { return false }

// Intp is our interpreter object.
type Intp struct {
	settings settings
	gen      *generator.Generator
	corpus   *corpus.Corpus // may be nil
}

func newIntp(grammarFile string, s settings) (*Intp, error) {
	g, err := loadGrammar(grammarFile)
	if err != nil {
		return nil, err
	}
	intp := &Intp{settings: s}
	var symbols gramorpher.SymbolProvider = noSymbols{}
	if s.corpus != "" {
		if intp.corpus, err = corpus.ParseFile(s.corpus); err != nil {
			return nil, err
		}
		symbols = intp.corpus
	}
	intp.gen = generator.New(g, symbols, generator.MaxDepth(s.maxDepth),
		generator.MaxIterations(s.maxIterations))
	return intp, nil
}

// REPL starts interactive mode.
func (intp *Intp) REPL(repl *readline.Instance, out io.Writer) {
	for {
		line, err := repl.Readline()
		if err != nil { // io.EOF
			break
		}
		quit, err := intp.Eval(line, out)
		if err != nil {
			pterm.Error.Println(err.Error())
			continue
		}
		if quit {
			break
		}
	}
	fmt.Fprintln(out, "Good bye!")
}

// Eval evaluates a single line of input.
func (intp *Intp) Eval(line string, out io.Writer) (bool, error) {
	args := strings.Fields(line)
	if len(args) == 0 {
		return false, nil
	}
	switch args[0] {
	case ":quit", ":q":
		return true, nil
	case ":rules":
		for _, rule := range intp.gen.Grammar().Rules() {
			fmt.Fprintln(out, rule)
		}
		return false, nil
	case ":print":
		if len(args) < 2 {
			return false, fmt.Errorf("usage: :print rule [levels]")
		}
		levels := 1
		if len(args) > 2 {
			n, err := strconv.Atoi(args[2])
			if err != nil {
				return false, fmt.Errorf("levels must be a number: %v", err)
			}
			levels = n
		}
		tree, err := expandLevels(intp.gen.Grammar(), args[1], levels, intp.settings.maxDepth)
		if err != nil {
			return false, err
		}
		return false, writeTree(out, tree)
	}
	if strings.HasPrefix(args[0], ":") {
		return false, fmt.Errorf("unknown command %s", args[0])
	}
	return false, intp.generate(args[0], out)
}

func (intp *Intp) generate(rule string, out io.Writer) error {
	tree, err := intp.gen.Generate(rule)
	if err != nil {
		return err
	}
	if err = writeTree(out, tree); err != nil {
		return err
	}
	if intp.corpus == nil {
		return nil
	}
	sentences, err := intp.gen.Sentences(rule, intp.corpus)
	if err != nil {
		return err
	}
	for _, sentence := range sentences {
		fmt.Fprintln(out, sentence)
	}
	return nil
}
