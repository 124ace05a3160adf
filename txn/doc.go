// Package txn defines the transaction record and its deterministic signature
// derivation.
//
// A transaction is a timestamped transfer between two named parties. Its
// signature is a 36-character sequence over the lowercase-letters-and-digits
// alphabet, derived from the transaction fields with a polynomial rolling
// hash. Derivation is deterministic: the same fields always produce the same
// signature, which is what lets the signature index detect duplicate
// processing of the same transaction.
//
// Transactions are comparable value types, so a signed transaction can be
// used directly as a trie key.
package txn
