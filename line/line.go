// Package line implements the processing line: an ordered signing pipeline
// built around one critical transaction.
//
// Transactions added to the line are partitioned by timestamp relative to the
// critical transaction: earlier-or-equal arrivals queue up in FIFO order,
// later arrivals stack up in LIFO order. Draining the line yields the queue,
// then the critical transaction, then the stack, signing each transaction on
// the way out if it has not been signed already.
//
// A line locks against further adds once draining starts and unlocks when
// the drain is exhausted. Only one drain may be in flight at a time.
package line

import (
	"errors"

	"github.com/joshuapare/sigkit/txn"
)

// ErrLocked indicates an add or a second drain was attempted while a drain
// is in flight.
var ErrLocked = errors.New("line: drain already in progress")

// Line partitions transactions around a critical transaction and yields them
// in processing order. Not safe for concurrent use.
type Line struct {
	critical txn.Transaction
	before   []txn.Transaction // FIFO: at or before the critical timestamp
	after    []txn.Transaction // LIFO: after the critical timestamp
	locked   bool
}

// New builds a processing line around the given critical transaction.
func New(critical txn.Transaction) *Line {
	return &Line{critical: critical}
}

// Add places a transaction on the line. Transactions at or before the
// critical timestamp join the queue; later ones go on the stack.
// Returns ErrLocked if a drain is in flight.
func (l *Line) Add(t txn.Transaction) error {
	if l.locked {
		return ErrLocked
	}
	if t.Timestamp <= l.critical.Timestamp {
		l.before = append(l.before, t)
	} else {
		l.after = append(l.after, t)
	}
	return nil
}

// Drain starts consuming the line. The line is locked until the returned
// iterator is exhausted. Returns ErrLocked if a drain is already in flight.
func (l *Line) Drain() (*Iter, error) {
	if l.locked {
		return nil, ErrLocked
	}
	l.locked = true
	return &Iter{line: l}, nil
}

// Iter drain stages, in yield order.
const (
	stageBefore = iota
	stageCritical
	stageAfter
)

// Iter yields the line's transactions in processing order, signing unsigned
// transactions as they are served. Obtain one with Line.Drain.
type Iter struct {
	line  *Line
	stage int
}

// Next serves the next transaction. The second return is false once the line
// is exhausted, at which point the line unlocks.
func (it *Iter) Next() (txn.Transaction, bool) {
	l := it.line
	if it.stage == stageBefore {
		if len(l.before) > 0 {
			t := l.before[0]
			l.before = l.before[1:]
			return signed(t), true
		}
		it.stage = stageCritical
	}
	if it.stage == stageCritical {
		it.stage = stageAfter
		return signed(l.critical), true
	}
	if len(l.after) > 0 {
		t := l.after[len(l.after)-1]
		l.after = l.after[:len(l.after)-1]
		return signed(t), true
	}
	l.locked = false
	return txn.Transaction{}, false
}

func signed(t txn.Transaction) txn.Transaction {
	if t.Signature() == "" {
		return t.Signed()
	}
	return t
}
