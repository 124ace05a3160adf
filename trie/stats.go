package trie

// SlotKind classifies an occupied slot for structural inspection.
type SlotKind uint8

const (
	// SlotLeaf marks a slot holding a stored (key, value) pair directly.
	SlotLeaf SlotKind = iota + 1
	// SlotBranch marks a slot holding a nested node.
	SlotBranch
)

// SlotInfo describes one occupied slot encountered during a Structure walk.
type SlotInfo struct {
	Level   int      // level of the node holding the slot
	Symbol  byte     // alphabet symbol the slot is indexed by
	Kind    SlotKind // leaf or branch (empty slots are not reported)
	Entries int      // entries reachable through the slot (1 for a leaf)
}

// Structure walks every occupied slot in depth-first, alphabet order and
// reports it to fn, descending into a branch immediately after reporting it.
// For leaf slots the stored key and value are passed along; for branch slots
// key and value are zero. Returning false stops the walk.
//
// Structure exists for diagnostics, tree rendering, and tests that need to
// assert on canonical form rather than on lookup results.
func (ix *Index[K, V]) Structure(fn func(info SlotInfo, key K, value V) bool) {
	var zeroK K
	var zeroV V
	stack := make([]frame[K, V], 0, initialStackCapacity)
	stack = append(stack, frame[K, V]{n: ix.root})
	for len(stack) > 0 {
		f := &stack[len(stack)-1]
		if f.next >= len(f.n.slots) {
			stack = stack[:len(stack)-1]
			continue
		}
		s := &f.n.slots[f.next]
		sym := ix.alpha.Symbol(f.next)
		level := f.n.level
		f.next++
		switch s.kind {
		case slotEmpty:
			// skip
		case slotLeaf:
			info := SlotInfo{Level: level, Symbol: sym, Kind: SlotLeaf, Entries: 1}
			if !fn(info, s.key, s.value) {
				return
			}
		case slotBranch:
			info := SlotInfo{Level: level, Symbol: sym, Kind: SlotBranch, Entries: s.child.entries}
			if !fn(info, zeroK, zeroV) {
				return
			}
			stack = append(stack, frame[K, V]{n: s.child})
		default:
			panic("trie: corrupt slot kind")
		}
	}
}

// Stats reports structural metrics for the whole index.
type Stats struct {
	Entries   int // stored pairs
	Nodes     int // live nodes, including the root
	MaxLevel  int // deepest live node level (0 for a root-only index)
	Conflicts int // conflict counters summed over all live nodes
}

// Stats walks the structure and returns its metrics. O(number of nodes).
func (ix *Index[K, V]) Stats() Stats {
	st := Stats{Entries: ix.root.entries}
	stack := []*node[K, V]{ix.root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		st.Nodes++
		st.Conflicts += n.conflicts
		if n.level > st.MaxLevel {
			st.MaxLevel = n.level
		}
		for i := range n.slots {
			if n.slots[i].kind == slotBranch {
				stack = append(stack, n.slots[i].child)
			}
		}
	}
	return st
}
