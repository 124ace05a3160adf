package fraud

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrNoTransactions indicates an analysis was invoked with no input.
	ErrNoTransactions = errors.New("fraud: no transactions")

	// ErrUnsigned indicates a transaction without a derived signature.
	ErrUnsigned = errors.New("fraud: transaction is not signed")

	// ErrSignatureLength indicates the input mixes signature lengths; block
	// analysis requires a uniform length.
	ErrSignatureLength = errors.New("fraud: mixed signature lengths")
)

// Signed is the constraint for analysis inputs: anything exposing a
// signature. Both txn.Transaction and test stubs satisfy it.
type Signed interface {
	Signature() string
}

// BlockVerdict is the result of a DetectByBlocks analysis.
type BlockVerdict struct {
	// BlockSize is the block size with the highest suspicion score. Ties go
	// to the smaller size.
	BlockSize int

	// Score is the suspicion score at that size: the product of the group
	// sizes after grouping signatures by their sorted block decomposition.
	Score int
}

// DetectByBlocks scores every block size from 1 to the signature length.
// For a given size, each signature is cut into blocks of that size (plus a
// leftover tail), the blocks are sorted, and signatures with identical
// sorted decompositions fall into one group; the score is the product of
// group sizes. A high score means many signatures are block permutations of
// each other.
//
// All signatures must be present and of equal length.
func DetectByBlocks[T Signed](txs []T) (BlockVerdict, error) {
	if len(txs) == 0 {
		return BlockVerdict{}, ErrNoTransactions
	}
	sigLen := len(txs[0].Signature())
	for _, t := range txs {
		sig := t.Signature()
		if sig == "" {
			return BlockVerdict{}, ErrUnsigned
		}
		if len(sig) != sigLen {
			return BlockVerdict{}, fmt.Errorf("%w: %d and %d", ErrSignatureLength, sigLen, len(sig))
		}
	}

	best := BlockVerdict{BlockSize: 1}
	for blockSize := 1; blockSize <= sigLen; blockSize++ {
		groups := make(map[string]int, len(txs))
		for _, t := range txs {
			groups[blockKey(t.Signature(), blockSize)]++
		}
		score := 1
		for _, size := range groups {
			score *= size
		}
		if score > best.Score {
			best = BlockVerdict{BlockSize: blockSize, Score: score}
		}
	}
	return best, nil
}

// blockKey decomposes a signature into sorted blocks of the given size and
// joins them into a grouping key. The tail shorter than one block is kept
// verbatim after a "::" marker, so leftovers only group with identical
// leftovers.
func blockKey(sig string, blockSize int) string {
	whole := len(sig) - len(sig)%blockSize
	blocks := make([]string, 0, whole/blockSize)
	for pos := 0; pos < whole; pos += blockSize {
		blocks = append(blocks, sig[pos:pos+blockSize])
	}
	sort.Strings(blocks)

	var b strings.Builder
	b.Grow(len(sig) + len(blocks) + 2)
	for _, blk := range blocks {
		b.WriteString(blk)
		b.WriteByte('|')
	}
	b.WriteString("::")
	b.WriteString(sig[whole:])
	return b.String()
}
