package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/joshuapare/sigkit/txn"
)

// record is one parsed input row: a signed transaction plus the amount the
// caller wants indexed under it.
type record struct {
	Tx     txn.Transaction
	Amount int
}

// loadRecords reads transactions from a CSV file with rows of the form
//
//	timestamp,from,to[,amount]
//
// and returns them signed. Pass "-" to read from stdin. The amount column
// defaults to 0 when absent.
func loadRecords(path string) ([]record, error) {
	var src io.Reader = os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open input: %w", err)
		}
		defer f.Close()
		src = f
	}

	r := csv.NewReader(src)
	r.FieldsPerRecord = -1 // amount column is optional
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse input: %w", err)
	}

	out := make([]record, 0, len(rows))
	for i, row := range rows {
		if len(row) < 3 || len(row) > 4 {
			return nil, fmt.Errorf("row %d: expected timestamp,from,to[,amount], got %d fields", i+1, len(row))
		}
		ts, err := strconv.ParseInt(row[0], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: bad timestamp %q: %w", i+1, row[0], err)
		}
		rec := record{Tx: txn.New(ts, row[1], row[2]).Signed()}
		if len(row) == 4 {
			amount, err := strconv.Atoi(row[3])
			if err != nil {
				return nil, fmt.Errorf("row %d: bad amount %q: %w", i+1, row[3], err)
			}
			rec.Amount = amount
		}
		out = append(out, rec)
	}
	return out, nil
}

// parseTriple parses a timestamp:from:to argument into a signed transaction.
func parseTriple(arg string) (txn.Transaction, error) {
	parts := strings.SplitN(arg, ":", 3)
	if len(parts) != 3 {
		return txn.Transaction{}, fmt.Errorf("bad transaction %q: expected timestamp:from:to", arg)
	}
	ts, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return txn.Transaction{}, fmt.Errorf("bad timestamp %q: %w", parts[0], err)
	}
	return txn.New(ts, parts[1], parts[2]).Signed(), nil
}

// transactions extracts the signed transactions from a record batch.
func transactions(recs []record) []txn.Transaction {
	txs := make([]txn.Transaction, len(recs))
	for i, r := range recs {
		txs[i] = r.Tx
	}
	return txs
}
