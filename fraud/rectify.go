package fraud

import (
	"errors"
	"fmt"
)

var (
	// ErrNoScorers indicates Rectify was invoked with no candidate functions.
	ErrNoScorers = errors.New("fraud: no scorers")

	// ErrNegativeScore indicates a scorer produced a negative value, which
	// cannot index a hash table slot.
	ErrNegativeScore = errors.New("fraud: scorer produced a negative value")
)

// Scorer maps a transaction to a non-negative hash table slot.
type Scorer[T any] func(T) int

// Rectify evaluates each scorer by inserting every transaction's score into
// a simulated linear-probing hash table sized to the maximum score plus one,
// and measuring the maximum probe chain length (mpcl) that results. It
// returns the index of the scorer with the smallest mpcl, and that mpcl.
// Ties go to the earlier scorer.
//
// When there are more transactions than table slots the table cannot avoid
// full-cycle probing, and the mpcl is the table size itself.
func Rectify[T any](txs []T, scorers []Scorer[T]) (best int, mpcl int, err error) {
	if len(txs) == 0 {
		return 0, 0, ErrNoTransactions
	}
	if len(scorers) == 0 {
		return 0, 0, ErrNoScorers
	}

	best = -1
	for i, fn := range scorers {
		values := make([]int, len(txs))
		maxValue := 0
		for j, t := range txs {
			v := fn(t)
			if v < 0 {
				return 0, 0, fmt.Errorf("%w: scorer %d returned %d", ErrNegativeScore, i, v)
			}
			values[j] = v
			if v > maxValue {
				maxValue = v
			}
		}
		m := probeChainLength(values, maxValue+1)
		if best == -1 || m < mpcl {
			best, mpcl = i, m
		}
	}
	return best, mpcl, nil
}

// probeChainLength computes the maximum probe chain length of inserting the
// given slot values into a linear-probing table of the given size.
//
// Rather than simulating individual insertions, it sweeps a histogram of the
// values twice around the table carrying unplaced items forward: each slot
// absorbs one carried item, and every item still carried after that extends
// the current probe chain. The sweep stops once a chain ends past the first
// full cycle, since no later slot can start a longer chain.
func probeChainLength(values []int, tableSize int) int {
	// More items than slots: the table overflows and probing degenerates to
	// a full cycle.
	if len(values) > tableSize {
		return tableSize
	}

	hist := make([]int, tableSize)
	for _, v := range values {
		hist[v]++
	}

	carry := 0
	distance := 0
	mpcl := 0
	for step := 0; step < tableSize*2; step++ {
		carry += hist[step%tableSize]
		if carry == 0 {
			continue
		}
		carry--
		if carry == 0 {
			distance = 0
			if step >= tableSize {
				break
			}
		} else {
			distance++
			if distance > mpcl {
				mpcl = distance
			}
		}
	}
	return mpcl
}
