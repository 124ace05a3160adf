package main

import (
	"fmt"

	"github.com/joshuapare/sigkit/trie"
	"github.com/joshuapare/sigkit/txn"
	"github.com/spf13/cobra"
	"github.com/xlab/treeprint"
)

func init() {
	rootCmd.AddCommand(newTreeCmd())
}

func newTreeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tree <file>",
		Short: "Render the signature index structure for a transaction batch",
		Long: `The tree command indexes the input batch and renders the resulting trie:
one branch per occupied slot, labeled with the routing symbol, down to the
stored leaves.

The input is CSV with rows of the form timestamp,from,to[,amount].

Example:
  sigctl tree transactions.csv`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTree(args[0])
		},
	}
}

func runTree(path string) error {
	ix, err := buildIndex(path)
	if err != nil {
		return err
	}

	root := treeprint.NewWithRoot(fmt.Sprintf("index (%d entries)", ix.Len()))

	// parents[L] is the rendered branch for the node at level L along the
	// current DFS path; Structure reports slots in DFS order, so the parent
	// of every reported slot is already rendered.
	parents := make([]treeprint.Tree, 1, 40)
	parents[0] = root
	ix.Structure(func(info trie.SlotInfo, key txn.Transaction, value int) bool {
		switch info.Kind {
		case trie.SlotLeaf:
			parents[info.Level].AddNode(fmt.Sprintf("%c  %s = %d", info.Symbol, key.Signature(), value))
		case trie.SlotBranch:
			sub := parents[info.Level].AddBranch(fmt.Sprintf("%c  (%d entries)", info.Symbol, info.Entries))
			parents = append(parents[:info.Level+1], sub)
		}
		return true
	})

	printInfo("%s", root.String())
	return nil
}
