package main

import (
	"fmt"
	"io"

	"github.com/npillmayer/gramorpher/generator"
	"github.com/npillmayer/gramorpher/grammar"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var (
	showTree        bool
	showFingerprint bool
)

var generateCmd = &cobra.Command{
	Use:   "generate <grammar.g4> <rule>",
	Short: "Generate one sentence of a rule per corpus case",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGenerate(cmd.OutOrStdout(), args[0], args[1], opts)
	},
}

func init() {
	generateCmd.Flags().StringVar(&opts.corpus, "corpus", "", "Tab-delimited corpus file")
	generateCmd.Flags().BoolVar(&showTree, "tree", false, "Print the expanded rule")
	generateCmd.Flags().BoolVar(&showFingerprint, "fingerprint", false, "Print a structural hash of the expanded rule")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(out io.Writer, grammarFile, rule string, s settings) error {
	g, err := loadGrammar(grammarFile)
	if err != nil {
		return err
	}
	c, err := loadCorpus(s.corpus)
	if err != nil {
		return err
	}
	gen := newGenerator(g, c, s)
	tree, err := gen.Generate(rule)
	if err != nil {
		return err
	}
	if showTree {
		printTree(tree)
	}
	if showFingerprint {
		f, err := grammar.Fingerprint(tree)
		if err != nil {
			return err
		}
		pterm.Info.Println("fingerprint " + f)
	}
	for i, cs := range c.Cases() {
		sentence, err := generator.Instantiate(tree, cs)
		if err != nil {
			return fmt.Errorf("case %d: %w", i+1, err)
		}
		fmt.Fprintln(out, sentence)
	}
	return nil
}
