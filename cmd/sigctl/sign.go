package main

import (
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newSignCmd())
}

func newSignCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sign <timestamp:from:to>...",
		Short: "Derive signatures for transactions",
		Long: `The sign command derives the deterministic signature for each transaction
given as a timestamp:from:to triple.

Example:
  sigctl sign 424242:alice:bob
  sigctl sign 100:bob:dave 120:dave:frank --json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSign(args)
		},
	}
}

type signResult struct {
	Timestamp int64  `json:"timestamp"`
	From      string `json:"from"`
	To        string `json:"to"`
	Signature string `json:"signature"`
}

func runSign(args []string) error {
	results := make([]signResult, 0, len(args))
	for _, arg := range args {
		t, err := parseTriple(arg)
		if err != nil {
			return err
		}
		log.Debug("signed transaction", "timestamp", t.Timestamp, "signature", t.Signature())
		results = append(results, signResult{
			Timestamp: t.Timestamp,
			From:      t.From,
			To:        t.To,
			Signature: t.Signature(),
		})
	}

	if jsonOut {
		return printJSON(results)
	}
	for _, r := range results {
		printInfo("%d %s -> %s  %s\n", r.Timestamp, r.From, r.To, r.Signature)
	}
	return nil
}
