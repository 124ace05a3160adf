package main

import (
	"github.com/joshuapare/sigkit/trie"
	"github.com/joshuapare/sigkit/txn"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newStatsCmd())
}

func newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats <file>",
		Short: "Index a transaction batch and report index statistics",
		Long: `The stats command signs every transaction in the input file, inserts it
into a fresh signature index keyed by signature with the amount column as the
value, and reports the resulting structure: entry count, node count, deepest
level, and conflicts recorded for duplicate inserts.

The input is CSV with rows of the form timestamp,from,to[,amount].

Example:
  sigctl stats transactions.csv
  sigctl stats transactions.csv --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStats(args[0])
		},
	}
}

func runStats(path string) error {
	ix, err := buildIndex(path)
	if err != nil {
		return err
	}

	st := ix.Stats()
	log.Info("indexed batch", "entries", st.Entries, "nodes", st.Nodes)

	if jsonOut {
		return printJSON(map[string]int{
			"entries":   st.Entries,
			"nodes":     st.Nodes,
			"max_level": st.MaxLevel,
			"conflicts": st.Conflicts,
		})
	}
	printInfo("Entries:   %d\n", st.Entries)
	printInfo("Nodes:     %d\n", st.Nodes)
	printInfo("Max level: %d\n", st.MaxLevel)
	printInfo("Conflicts: %d\n", st.Conflicts)
	return nil
}

// buildIndex loads a record batch and indexes it by signature. Duplicate
// transactions with differing amounts are recorded as conflicts by the
// index, not treated as load errors.
func buildIndex(path string) (*trie.Index[txn.Transaction, int], error) {
	recs, err := loadRecords(path)
	if err != nil {
		return nil, err
	}
	printVerbose("Loaded %d transactions\n", len(recs))

	ix := trie.New[txn.Transaction, int]()
	for _, rec := range recs {
		if err := ix.Set(rec.Tx, rec.Amount); err != nil {
			return nil, err
		}
	}
	return ix, nil
}
