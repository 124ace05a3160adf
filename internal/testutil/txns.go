// Package testutil provides shared fixtures for sigkit tests: stub keys with
// hand-picked signatures and helpers for building signed transactions.
package testutil

import "github.com/joshuapare/sigkit/txn"

// StubTx is a minimal index key with a hand-picked signature, for tests that
// need to steer keys into specific slots instead of relying on derived
// signatures. It is a comparable value type, so two stubs with the same
// signature are the same key.
type StubTx struct {
	Sig string
}

// Signature returns the stub's signature.
func (s StubTx) Signature() string {
	return s.Sig
}

// Stubs builds one StubTx per signature, in order.
func Stubs(sigs ...string) []StubTx {
	out := make([]StubTx, len(sigs))
	for i, s := range sigs {
		out[i] = StubTx{Sig: s}
	}
	return out
}

// Signed builds a transaction and derives its signature in one step.
func Signed(ts int64, from, to string) txn.Transaction {
	return txn.New(ts, from, to).Signed()
}

// SignedBatch builds n signed transactions between the same two parties with
// consecutive timestamps starting at base. Signatures are deterministic, so
// tests get a stable, collision-realistic key population.
func SignedBatch(base int64, n int, from, to string) []txn.Transaction {
	out := make([]txn.Transaction, n)
	for i := range out {
		out[i] = Signed(base+int64(i), from, to)
	}
	return out
}
