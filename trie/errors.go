package trie

import "errors"

var (
	// ErrNotFound indicates the requested key is not stored in the index.
	ErrNotFound = errors.New("trie: key not found")

	// ErrKeyTooShort indicates a key's signature is not long enough for the
	// level being probed. This is a caller contract violation, not a lookup miss.
	ErrKeyTooShort = errors.New("trie: signature too short for level")

	// ErrInvalidSymbol indicates a signature character falls outside the
	// configured alphabet.
	ErrInvalidSymbol = errors.New("trie: symbol outside alphabet")

	// ErrDuplicateSymbol indicates an alphabet was declared with a repeated symbol.
	ErrDuplicateSymbol = errors.New("trie: duplicate symbol in alphabet")

	// ErrEmptyAlphabet indicates an alphabet was declared with no symbols.
	ErrEmptyAlphabet = errors.New("trie: empty alphabet")
)
