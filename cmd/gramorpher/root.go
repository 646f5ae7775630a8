package main

import (
	"fmt"
	"os"

	"github.com/npillmayer/gramorpher"
	"github.com/npillmayer/gramorpher/corpus"
	"github.com/npillmayer/gramorpher/generator"
	"github.com/npillmayer/gramorpher/grammar"
	"github.com/npillmayer/gramorpher/syntax/g4"
	"github.com/npillmayer/schuko/gconf"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// settings collects global flags, possibly overridden by a config file.
type settings struct {
	trace         string
	configFile    string
	maxDepth      int
	maxIterations int
	corpus        string
}

var opts settings

var traceKeys = []string{
	"gramorpher.cli",
	"gramorpher.grammar",
	"gramorpher.generator",
	"gramorpher.corpus",
	"gramorpher.syntax",
	"gramorpher.scanner",
}

var rootCmd = &cobra.Command{
	Use:   "gramorpher",
	Short: "Gramorpher generates test sentences from grammars",
	Long: `Gramorpher expands rules of an ANTLR v4 grammar until every leaf is resolvable
against a corpus of symbol values, and instantiates sentences from the expansion.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := applyConfig(cmd, &opts); err != nil {
			return err
		}
		initDisplay()
		initTracing(opts.trace)
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&opts.trace, "trace", "Error", "Trace level [Debug|Info|Error]")
	rootCmd.PersistentFlags().StringVar(&opts.configFile, "config", "", "YAML config file")
	rootCmd.PersistentFlags().IntVar(&opts.maxDepth, "max-depth", grammar.DefaultMaxDepth, "Maximum depth of rule expansion")
	rootCmd.PersistentFlags().IntVar(&opts.maxIterations, "max-iterations", generator.DefaultMaxIterations, "Maximum number of expansion steps")
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
}

// applyConfig reads the config file, if any, and makes it the global
// configuration. Flags set on the command line win.
func applyConfig(cmd *cobra.Command, s *settings) error {
	if s.configFile == "" {
		return nil
	}
	cfg, err := LoadConfig(s.configFile)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if cfg.Trace != "" && !flags.Changed("trace") {
		s.trace = cfg.Trace
	}
	if cfg.MaxDepth > 0 && !flags.Changed("max-depth") {
		s.maxDepth = cfg.MaxDepth
	}
	if cfg.MaxIterations > 0 && !flags.Changed("max-iterations") {
		s.maxIterations = cfg.MaxIterations
	}
	if cfg.Corpus != "" && !flags.Changed("corpus") {
		s.corpus = cfg.Corpus
	}
	gconf.Initialize(cfg)
	return nil
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

func initTracing(level string) {
	gtrace.SyntaxTracer = gologadapter.New()
	l := tracing.TraceLevelFromString(level)
	for _, key := range traceKeys {
		tracing.Select(key).SetTraceLevel(l)
	}
	tracer().Infof("Trace level is %s", level)
}

// --- Helpers shared by sub-commands ----------------------------------------

func loadGrammar(path string) (*grammar.Grammar, error) {
	src, err := g4.ParseFile(path)
	if err != nil {
		return nil, err
	}
	src.Dump() // only visible in debug mode
	return grammar.New(src), nil
}

func loadCorpus(path string) (*corpus.Corpus, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: no corpus given, use --corpus", gramorpher.ErrCorpusLoad)
	}
	return corpus.ParseFile(path)
}

func newGenerator(g *grammar.Grammar, c *corpus.Corpus, s settings) *generator.Generator {
	return generator.New(g, c, generator.MaxDepth(s.maxDepth), generator.MaxIterations(s.maxIterations))
}

func printTree(tree *grammar.Tree) {
	root := pterm.NewTreeFromLeveledList(grammar.LeveledList(tree))
	pterm.DefaultTree.WithRoot(root).Render()
}
