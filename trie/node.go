package trie

// Keyed is the constraint for index keys: a comparable type exposing the
// fixed-alphabet signature the trie routes on. Two keys are the same entry
// exactly when they compare equal with ==.
type Keyed interface {
	comparable
	Signature() string
}

// slotKind tags the three legal states of a slot. Any other tag value is a
// corruption and the accessors panic on it rather than continue.
type slotKind uint8

const (
	slotEmpty slotKind = iota
	slotLeaf
	slotBranch
)

// slot is one alphabet-indexed cell of a node. The kind tag selects which
// fields are meaningful: key/value for a leaf, child for a branch, neither
// for an empty slot.
type slot[K Keyed, V comparable] struct {
	kind  slotKind
	key   K
	value V
	child *node[K, V]
}

// node is one level of the index. A node at level d routes on character d of
// each signature. entries counts the pairs reachable under this node.
// conflicts counts duplicate-key/different-value inserts observed at this
// node's own leaves; it does not aggregate counters of descendant nodes,
// and it is discarded with the node when a singleton branch collapses.
type node[K Keyed, V comparable] struct {
	slots     []slot[K, V]
	level     int
	entries   int
	conflicts int
}

func newNode[K Keyed, V comparable](a *Alphabet, level int) *node[K, V] {
	return &node[K, V]{
		slots: make([]slot[K, V], a.Len()),
		level: level,
	}
}

// singleSlot returns the unique occupied slot of a singleton node.
// Panics if the node holds no occupied slot, since callers only reach here
// for nodes known to hold exactly one entry.
func (n *node[K, V]) singleSlot() *slot[K, V] {
	for i := range n.slots {
		if n.slots[i].kind != slotEmpty {
			return &n.slots[i]
		}
	}
	panic("trie: collapse on node with no occupied slot")
}

// collapse resolves a node known to hold exactly one entry down to its sole
// surviving leaf, flattening through any chain of singleton descendants.
// The walk is bounded by the signature length of the surviving key.
func collapse[K Keyed, V comparable](n *node[K, V]) (key K, value V) {
	for {
		s := n.singleSlot()
		switch s.kind {
		case slotLeaf:
			return s.key, s.value
		case slotBranch:
			n = s.child
		default:
			panic("trie: corrupt slot kind")
		}
	}
}
