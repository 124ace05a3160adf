package trie

// Entry is one stored (key, value) pair as yielded by traversal.
type Entry[K Keyed, V comparable] struct {
	Key   K
	Value V
}

// frame is one position in the iterative depth-first traversal: a node and
// the next slot to visit in it.
type frame[K Keyed, V comparable] struct {
	n    *node[K, V]
	next int
}

// initialStackCapacity pre-sizes traversal stacks. Depth is bounded by
// signature length (36 for transaction signatures), so 64 avoids
// reallocation for any realistic index.
const initialStackCapacity = 64

// Walk visits every stored entry in depth-first, alphabet order: at each
// level slots are visited in symbol order, descending into branches before
// advancing. The order is deterministic and independent of insertion order.
// Returning false from fn stops the walk early.
//
// The traversal is iterative with an explicit stack, so signature length
// never translates into call-stack depth. Walk observes the live structure;
// it must not run concurrently with mutation.
func (ix *Index[K, V]) Walk(fn func(key K, value V) bool) {
	stack := make([]frame[K, V], 0, initialStackCapacity)
	stack = append(stack, frame[K, V]{n: ix.root})
	for len(stack) > 0 {
		f := &stack[len(stack)-1]
		if f.next >= len(f.n.slots) {
			stack = stack[:len(stack)-1]
			continue
		}
		s := &f.n.slots[f.next]
		f.next++
		switch s.kind {
		case slotEmpty:
			// skip
		case slotLeaf:
			if !fn(s.key, s.value) {
				return
			}
		case slotBranch:
			stack = append(stack, frame[K, V]{n: s.child})
		default:
			panic("trie: corrupt slot kind")
		}
	}
}

// Entries materializes a full traversal into a fresh slice of exactly Len()
// entries, in Walk order. Each call starts an independent traversal; the
// returned slice is the caller's to keep.
func (ix *Index[K, V]) Entries() []Entry[K, V] {
	out := make([]Entry[K, V], 0, ix.root.entries)
	ix.Walk(func(k K, v V) bool {
		out = append(out, Entry[K, V]{Key: k, Value: v})
		return true
	})
	return out
}
