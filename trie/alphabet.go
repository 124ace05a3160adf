package trie

import "fmt"

// DefaultSymbols is the symbol set used by transaction signatures:
// lowercase letters followed by digits, 36 symbols total.
const DefaultSymbols = "abcdefghijklmnopqrstuvwxyz0123456789"

// Alphabet maps symbols to slot indexes over a fixed, ordered symbol set.
// The mapping is precomputed at construction, so Index is a table lookup.
// An Alphabet is immutable after construction and safe for concurrent reads.
type Alphabet struct {
	symbols string
	lookup  [256]int16 // -1 for bytes outside the alphabet
}

// DefaultAlphabet is the alphabet used by New. It covers DefaultSymbols.
var DefaultAlphabet = MustAlphabet(DefaultSymbols)

// NewAlphabet builds an Alphabet over the given ordered symbol set.
// The set must be non-empty and free of duplicates.
func NewAlphabet(symbols string) (*Alphabet, error) {
	if len(symbols) == 0 {
		return nil, ErrEmptyAlphabet
	}
	a := &Alphabet{symbols: symbols}
	for i := range a.lookup {
		a.lookup[i] = -1
	}
	for i := 0; i < len(symbols); i++ {
		c := symbols[i]
		if a.lookup[c] != -1 {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateSymbol, c)
		}
		a.lookup[c] = int16(i)
	}
	return a, nil
}

// MustAlphabet is NewAlphabet that panics on error, for package-level
// alphabet declarations.
func MustAlphabet(symbols string) *Alphabet {
	a, err := NewAlphabet(symbols)
	if err != nil {
		panic(err)
	}
	return a
}

// Len returns the alphabet cardinality, which is also the slot count of
// every node in an index using this alphabet.
func (a *Alphabet) Len() int {
	return len(a.symbols)
}

// Index returns the slot index of the given symbol.
// Returns ErrInvalidSymbol if the symbol is not in the alphabet.
func (a *Alphabet) Index(c byte) (int, error) {
	i := a.lookup[c]
	if i < 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidSymbol, c)
	}
	return int(i), nil
}

// Symbol returns the symbol at the given slot index.
// The index must be in [0, Len()).
func (a *Alphabet) Symbol(i int) byte {
	return a.symbols[i]
}
