package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

var rulesCmd = &cobra.Command{
	Use:   "rules <grammar.g4>",
	Short: "List the parser rules of a grammar",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRules(cmd.OutOrStdout(), args[0])
	},
}

func init() {
	rootCmd.AddCommand(rulesCmd)
}

func runRules(out io.Writer, grammarFile string) error {
	g, err := loadGrammar(grammarFile)
	if err != nil {
		return err
	}
	for _, rule := range g.Rules() {
		fmt.Fprintln(out, rule)
	}
	return nil
}
