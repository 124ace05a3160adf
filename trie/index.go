package trie

import "fmt"

// Index is a signature index: an associative trie from signature-keyed
// entries to values. The zero value is not usable; construct with New or
// NewWithAlphabet.
//
// The index is single-owner: no operation is safe to call concurrently with
// a mutation. See the package documentation for the conflict contract.
type Index[K Keyed, V comparable] struct {
	alpha *Alphabet
	root  *node[K, V]
}

// New creates an empty index over DefaultAlphabet.
func New[K Keyed, V comparable]() *Index[K, V] {
	return NewWithAlphabet[K, V](DefaultAlphabet)
}

// NewWithAlphabet creates an empty index over the given alphabet.
// Every signature character of every key passed to the index must belong
// to this alphabet.
func NewWithAlphabet[K Keyed, V comparable](a *Alphabet) *Index[K, V] {
	return &Index[K, V]{
		alpha: a,
		root:  newNode[K, V](a, 0),
	}
}

// Alphabet returns the alphabet the index routes on.
func (ix *Index[K, V]) Alphabet() *Alphabet {
	return ix.alpha
}

// Len returns the number of stored entries, O(1).
func (ix *Index[K, V]) Len() int {
	return ix.root.entries
}

// Conflicts returns the conflict counter of the root node: duplicate-key,
// different-value inserts observed at leaves hanging directly off level 0.
// Counters of nested nodes are not aggregated; use TotalConflicts for the
// whole-structure tally.
func (ix *Index[K, V]) Conflicts() int {
	return ix.root.conflicts
}

// TotalConflicts walks the structure and sums the conflict counters of every
// live node. Conflicts recorded on nodes that have since collapsed away are
// not part of the sum. O(number of nodes).
func (ix *Index[K, V]) TotalConflicts() int {
	total := 0
	stack := []*node[K, V]{ix.root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		total += n.conflicts
		for i := range n.slots {
			if n.slots[i].kind == slotBranch {
				stack = append(stack, n.slots[i].child)
			}
		}
	}
	return total
}

// Set inserts (key, value). Duplicate inserts never overwrite: a same-key,
// same-value insert is a no-op, and a same-key, different-value insert only
// bumps the conflict counter of the node holding the leaf, keeping the
// stored value. When a differing key lands on an occupied slot, the leaf is
// pushed down into a fresh branch chain until the two signatures diverge.
//
// Returns ErrKeyTooShort if either the new key's signature or, during a
// push-down, the resident key's signature runs out before the probed level;
// in that case the structure is left unchanged. Returns ErrInvalidSymbol for
// signature characters outside the alphabet.
func (ix *Index[K, V]) Set(key K, value V) error {
	sig := key.Signature()
	path := make([]*node[K, V], 0, 16)
	n := ix.root
	for {
		if n.level >= len(sig) {
			return fmt.Errorf("%w: signature %q at level %d", ErrKeyTooShort, sig, n.level)
		}
		idx, err := ix.alpha.Index(sig[n.level])
		if err != nil {
			return err
		}
		path = append(path, n)
		s := &n.slots[idx]
		switch s.kind {
		case slotEmpty:
			*s = slot[K, V]{kind: slotLeaf, key: key, value: value}
			for _, p := range path {
				p.entries++
			}
			return nil

		case slotLeaf:
			if s.key == key {
				if s.value != value {
					n.conflicts++
				}
				return nil
			}
			child, err := ix.diverge(n.level+1, s.key, s.value, key, value)
			if err != nil {
				return err
			}
			*s = slot[K, V]{kind: slotBranch, child: child}
			for _, p := range path {
				p.entries++
			}
			return nil

		case slotBranch:
			n = s.child

		default:
			panic("trie: corrupt slot kind")
		}
	}
}

// diverge builds the branch chain created when two differing keys collide at
// a slot. The chain is built detached and only returned once both keys have
// found a home, so a precondition failure partway down leaves the index
// untouched. Both entries live under every chain node, so each node carries
// an entry count of 2.
func (ix *Index[K, V]) diverge(level int, resident K, residentValue V, key K, value V) (*node[K, V], error) {
	rsig := resident.Signature()
	sig := key.Signature()

	top := newNode[K, V](ix.alpha, level)
	cur := top
	for {
		if cur.level >= len(rsig) {
			return nil, fmt.Errorf("%w: signature %q at level %d", ErrKeyTooShort, rsig, cur.level)
		}
		if cur.level >= len(sig) {
			return nil, fmt.Errorf("%w: signature %q at level %d", ErrKeyTooShort, sig, cur.level)
		}
		ri, err := ix.alpha.Index(rsig[cur.level])
		if err != nil {
			return nil, err
		}
		ki, err := ix.alpha.Index(sig[cur.level])
		if err != nil {
			return nil, err
		}
		cur.entries = 2
		if ri != ki {
			cur.slots[ri] = slot[K, V]{kind: slotLeaf, key: resident, value: residentValue}
			cur.slots[ki] = slot[K, V]{kind: slotLeaf, key: key, value: value}
			return top, nil
		}
		next := newNode[K, V](ix.alpha, cur.level+1)
		cur.slots[ki] = slot[K, V]{kind: slotBranch, child: next}
		cur = next
	}
}

// Get returns the value stored for key, or ErrNotFound.
func (ix *Index[K, V]) Get(key K) (V, error) {
	var zero V
	sig := key.Signature()
	n := ix.root
	for {
		if n.level >= len(sig) {
			return zero, fmt.Errorf("%w: signature %q at level %d", ErrKeyTooShort, sig, n.level)
		}
		idx, err := ix.alpha.Index(sig[n.level])
		if err != nil {
			return zero, err
		}
		s := &n.slots[idx]
		switch s.kind {
		case slotEmpty:
			return zero, ErrNotFound
		case slotLeaf:
			if s.key == key {
				return s.value, nil
			}
			return zero, ErrNotFound
		case slotBranch:
			n = s.child
		default:
			panic("trie: corrupt slot kind")
		}
	}
}

// Delete removes the entry stored for key, or returns ErrNotFound.
//
// Removal restores canonical form on the way back up: a branch left with no
// entries empties its parent slot, and a branch left with exactly one entry
// is replaced by its sole surviving leaf, flattening through any chain of
// singleton descendants.
func (ix *Index[K, V]) Delete(key K) error {
	type step struct {
		n   *node[K, V]
		idx int
	}
	sig := key.Signature()
	steps := make([]step, 0, 16)
	n := ix.root
	for {
		if n.level >= len(sig) {
			return fmt.Errorf("%w: signature %q at level %d", ErrKeyTooShort, sig, n.level)
		}
		idx, err := ix.alpha.Index(sig[n.level])
		if err != nil {
			return err
		}
		s := &n.slots[idx]
		switch s.kind {
		case slotEmpty:
			return ErrNotFound

		case slotLeaf:
			if s.key != key {
				return ErrNotFound
			}
			*s = slot[K, V]{}
			n.entries--
			// Unwind the recorded branch path: every ancestor loses one
			// entry, and a child down to 0 or 1 survivors is compacted.
			for i := len(steps) - 1; i >= 0; i-- {
				p := steps[i].n
				ps := &p.slots[steps[i].idx]
				p.entries--
				switch ps.child.entries {
				case 0:
					*ps = slot[K, V]{}
				case 1:
					k, v := collapse(ps.child)
					*ps = slot[K, V]{kind: slotLeaf, key: k, value: v}
				}
			}
			return nil

		case slotBranch:
			steps = append(steps, step{n, idx})
			n = s.child

		default:
			panic("trie: corrupt slot kind")
		}
	}
}
