// Package trie implements the signature index: a character-indexed
// associative trie mapping fixed-alphabet signature keys to values.
//
// # Overview
//
// The index stores (key, value) pairs keyed by a signature, a fixed-alphabet
// character sequence exposed by the key. Each level of the trie inspects one
// character of the signature and routes the entry into one of A slots, where
// A is the alphabet size. A slot holds exactly one of three things:
//
//   - nothing (empty)
//   - a single stored (key, value) pair (leaf)
//   - a nested node one level deeper (branch)
//
// A branch is only ever created when two differing keys collide at the same
// slot, and it never survives with fewer than two reachable entries: deleting
// down to one survivor collapses the branch (through any chain of singleton
// descendants) back to a direct leaf at the parent slot.
//
// # Key Types
//
//   - Index: the public container owning the level-0 node
//   - Entry: one stored (key, value) pair, as yielded by traversal
//   - Alphabet: the ordered symbol set and its O(1) slot mapping
//   - Stats: structural metrics for diagnostics and tooling
//
// # Conflict semantics
//
// Re-inserting a key that is already stored does not overwrite. If the value
// is identical the call is a no-op; if it differs, the node holding the leaf
// records a conflict and the originally stored value is retained. Conflicts
// are counted, never raised as errors. Structural failures (absent keys,
// signatures too short for the probed depth, symbols outside the alphabet)
// are always surfaced as errors.
//
// # Usage
//
//	ix := trie.New[Tx, int]()
//	if err := ix.Set(tx, 10); err != nil { ... }
//	v, err := ix.Get(tx)
//	err = ix.Delete(tx)
//	for _, e := range ix.Entries() { ... }
//
// The index assumes a single logical owner. No internal locking is provided;
// callers exposing an index to multiple goroutines must serialize all
// operations themselves.
package trie
