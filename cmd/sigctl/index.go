package main

import (
	"errors"
	"strconv"

	"github.com/joshuapare/sigkit/trie"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "index",
		Short: "Run index operations over a transaction batch",
		Long: `The index command loads a transaction batch into an in-memory signature
index and runs one operation against it. The index lives for the duration of
the command; put and del do not persist their changes.

The batch is CSV with rows of the form timestamp,from,to[,amount], and
individual transactions are given as timestamp:from:to triples.`,
	}
	cmd.AddCommand(newIndexPutCmd(), newIndexGetCmd(), newIndexDelCmd(), newIndexListCmd())
	rootCmd.AddCommand(cmd)
}

func newIndexPutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "put <file> <timestamp:from:to> <amount>",
		Short: "Insert a transaction into the loaded index",
		Long: `The put command inserts one transaction into the loaded index. A repeat
insert with the stored amount is a no-op; a repeat insert with a different
amount keeps the stored amount and records a conflict.

Example:
  sigctl index put transactions.csv 424242:alice:bob 10`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runIndexPut(args[0], args[1], args[2])
		},
	}
}

func newIndexGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <file> <timestamp:from:to>",
		Short: "Look up a transaction in the loaded index",
		Long: `The get command looks a transaction up by signature and prints the stored
amount.

Example:
  sigctl index get transactions.csv 424242:alice:bob
  sigctl index get transactions.csv 424242:alice:bob --json`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runIndexGet(args[0], args[1])
		},
	}
}

func newIndexDelCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "del <file> <timestamp:from:to>",
		Short: "Delete a transaction from the loaded index",
		Long: `The del command removes one transaction from the loaded index and reports
the remaining entry count.

Example:
  sigctl index del transactions.csv 424242:alice:bob`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runIndexDel(args[0], args[1])
		},
	}
}

func newIndexListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list <file>",
		Short: "List the loaded index in traversal order",
		Long: `The list command prints every stored entry in the index's deterministic
traversal order, one signature and amount per line.

Example:
  sigctl index list transactions.csv
  sigctl index list transactions.csv --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runIndexList(args[0])
		},
	}
}

func runIndexPut(path, arg, amountArg string) error {
	ix, err := buildIndex(path)
	if err != nil {
		return err
	}
	t, err := parseTriple(arg)
	if err != nil {
		return err
	}
	amount, err := strconv.Atoi(amountArg)
	if err != nil {
		return err
	}

	before := ix.Len()
	conflictsBefore := ix.TotalConflicts()
	if err := ix.Set(t, amount); err != nil {
		return err
	}
	log.Info("put", "signature", t.Signature(), "amount", amount)

	switch {
	case ix.Len() > before:
		printInfo("stored %s = %d\n", t.Signature(), amount)
	case ix.TotalConflicts() > conflictsBefore:
		stored, err := ix.Get(t)
		if err != nil {
			return err
		}
		printInfo("conflict: %s keeps %d\n", t.Signature(), stored)
	default:
		printInfo("unchanged: %s = %d\n", t.Signature(), amount)
	}
	return nil
}

func runIndexGet(path, arg string) error {
	ix, err := buildIndex(path)
	if err != nil {
		return err
	}
	t, err := parseTriple(arg)
	if err != nil {
		return err
	}

	amount, err := ix.Get(t)
	if errors.Is(err, trie.ErrNotFound) {
		return errors.New("transaction not found in index")
	}
	if err != nil {
		return err
	}

	if jsonOut {
		return printJSON(map[string]any{
			"signature": t.Signature(),
			"amount":    amount,
		})
	}
	printInfo("%s = %d\n", t.Signature(), amount)
	return nil
}

func runIndexDel(path, arg string) error {
	ix, err := buildIndex(path)
	if err != nil {
		return err
	}
	t, err := parseTriple(arg)
	if err != nil {
		return err
	}

	err = ix.Delete(t)
	if errors.Is(err, trie.ErrNotFound) {
		return errors.New("transaction not found in index")
	}
	if err != nil {
		return err
	}
	log.Info("del", "signature", t.Signature(), "remaining", ix.Len())

	printInfo("deleted %s, %d entries remain\n", t.Signature(), ix.Len())
	return nil
}

type listEntry struct {
	Timestamp int64  `json:"timestamp"`
	From      string `json:"from"`
	To        string `json:"to"`
	Signature string `json:"signature"`
	Amount    int    `json:"amount"`
}

func runIndexList(path string) error {
	ix, err := buildIndex(path)
	if err != nil {
		return err
	}

	entries := ix.Entries()
	if jsonOut {
		out := make([]listEntry, 0, len(entries))
		for _, e := range entries {
			out = append(out, listEntry{
				Timestamp: e.Key.Timestamp,
				From:      e.Key.From,
				To:        e.Key.To,
				Signature: e.Key.Signature(),
				Amount:    e.Value,
			})
		}
		return printJSON(out)
	}

	for _, e := range entries {
		printInfo("%s  %d %s -> %s  = %d\n", e.Key.Signature(), e.Key.Timestamp, e.Key.From, e.Key.To, e.Value)
	}
	printVerbose("%d entries\n", len(entries))
	return nil
}
