package main

import (
	"fmt"
	"io"

	"github.com/npillmayer/gramorpher/grammar"
	"github.com/spf13/cobra"
)

var printLevels int

var printCmd = &cobra.Command{
	Use:   "print <grammar.g4> <rule>",
	Short: "Print a rule, expanded to a number of levels",
	Long: `Print expands every node of a rule's tree, level by level, without consulting
a corpus. Expansion stops at recursive references and at the maximum depth.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := loadGrammar(args[0])
		if err != nil {
			return err
		}
		tree, err := expandLevels(g, args[1], printLevels, opts.maxDepth)
		if err != nil {
			return err
		}
		return writeTree(cmd.OutOrStdout(), tree)
	},
}

func init() {
	printCmd.Flags().IntVar(&printLevels, "levels", 1, "Number of levels to expand")
	rootCmd.AddCommand(printCmd)
}

// expandLevels expands all nodes of a tree, breadth first, for a number of levels.
func expandLevels(g *grammar.Grammar, rule string, levels, maxDepth int) (*grammar.Tree, error) {
	tree, err := g.NewTree(rule, maxDepth)
	if err != nil {
		return nil, err
	}
	frontier := []grammar.NodeID{tree.Root()}
	for level := 0; level < levels && len(frontier) > 0; level++ {
		var next []grammar.NodeID
		for _, id := range frontier {
			if tree.ExpandOneLevel(id) {
				next = append(next, tree.Children(id)...)
			}
		}
		frontier = next
	}
	return tree, nil
}

func writeTree(out io.Writer, tree *grammar.Tree) error {
	_, err := fmt.Fprint(out, grammar.Render(tree))
	return err
}
