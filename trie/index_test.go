package trie

import (
	"errors"
	"fmt"
	"math/rand"
	"testing"
)

// sigKey is a bare signature key for exercising the index without the
// transaction machinery.
type sigKey string

func (k sigKey) Signature() string { return string(k) }

func TestIndex_SetGet(t *testing.T) {
	ix := New[sigKey, int]()

	keys := []sigKey{"abc123", "0bbzzz", "abcxyz", "abc124"}
	for i, k := range keys {
		if err := ix.Set(k, (i+1)*10); err != nil {
			t.Fatalf("Set(%q) failed: %v", k, err)
		}
	}

	if ix.Len() != len(keys) {
		t.Fatalf("Len() = %d, want %d", ix.Len(), len(keys))
	}
	for i, k := range keys {
		v, err := ix.Get(k)
		if err != nil {
			t.Fatalf("Get(%q) failed: %v", k, err)
		}
		if v != (i+1)*10 {
			t.Errorf("Get(%q) = %d, want %d", k, v, (i+1)*10)
		}
	}
}

func TestIndex_GetAbsent(t *testing.T) {
	ix := New[sigKey, int]()
	if err := ix.Set(sigKey("abc123"), 1); err != nil {
		t.Fatal(err)
	}

	// Empty slot.
	if _, err := ix.Get(sigKey("zzz999")); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound for empty slot, got %v", err)
	}
	// Occupied slot, different key.
	if _, err := ix.Get(sigKey("airtight")); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound for mismatched leaf, got %v", err)
	}
}

func TestIndex_ReinsertSameValueIsNoop(t *testing.T) {
	ix := New[sigKey, int]()
	k := sigKey("xy")

	for i := 0; i < 2; i++ {
		if err := ix.Set(k, 5); err != nil {
			t.Fatalf("Set #%d failed: %v", i+1, err)
		}
	}

	if ix.Len() != 1 {
		t.Errorf("Len() = %d, want 1", ix.Len())
	}
	if ix.Conflicts() != 0 {
		t.Errorf("Conflicts() = %d, want 0", ix.Conflicts())
	}
	if v, _ := ix.Get(k); v != 5 {
		t.Errorf("Get = %d, want 5", v)
	}
}

func TestIndex_ConflictKeepsStoredValue(t *testing.T) {
	ix := New[sigKey, int]()
	k := sigKey("xy")

	if err := ix.Set(k, 5); err != nil {
		t.Fatal(err)
	}
	if err := ix.Set(k, 9); err != nil {
		t.Fatalf("conflicting Set must not error, got %v", err)
	}

	v, err := ix.Get(k)
	if err != nil {
		t.Fatal(err)
	}
	if v != 5 {
		t.Errorf("Get = %d, want original value 5", v)
	}
	if ix.Len() != 1 {
		t.Errorf("Len() = %d, want 1", ix.Len())
	}
	if ix.Conflicts() != 1 {
		t.Errorf("Conflicts() = %d, want 1", ix.Conflicts())
	}
}

// Conflicts are recorded at the node holding the leaf, not rolled up to the
// root. Push two keys a level down and conflict on one of them: the root
// counter stays zero and the deep counter carries the conflict.
func TestIndex_ConflictCounterIsNodeLocal(t *testing.T) {
	ix := New[sigKey, int]()

	if err := ix.Set(sigKey("aa"), 1); err != nil {
		t.Fatal(err)
	}
	if err := ix.Set(sigKey("ab"), 2); err != nil {
		t.Fatal(err)
	}
	if err := ix.Set(sigKey("ab"), 99); err != nil {
		t.Fatal(err)
	}

	if ix.Conflicts() != 0 {
		t.Errorf("root Conflicts() = %d, want 0 (conflict happened a level down)", ix.Conflicts())
	}
	if ix.TotalConflicts() != 1 {
		t.Errorf("TotalConflicts() = %d, want 1", ix.TotalConflicts())
	}

	idxA, _ := ix.alpha.Index('a')
	s := &ix.root.slots[idxA]
	if s.kind != slotBranch {
		t.Fatalf("slot 'a' kind = %d, want branch", s.kind)
	}
	if s.child.conflicts != 1 {
		t.Errorf("child conflicts = %d, want 1", s.child.conflicts)
	}
	if v, _ := ix.Get(sigKey("ab")); v != 2 {
		t.Errorf("Get(ab) = %d, want 2", v)
	}
}

// The two-key example over the alphabet {a, b}: "aa" and "ab" share 'a' at
// level 0, branch at level 1, and deleting "ab" collapses the branch back to
// a direct leaf under the root slot.
func TestIndex_CollapseToDirectLeaf(t *testing.T) {
	ix := NewWithAlphabet[sigKey, int](MustAlphabet("ab"))

	if err := ix.Set(sigKey("aa"), 1); err != nil {
		t.Fatal(err)
	}
	if err := ix.Set(sigKey("ab"), 2); err != nil {
		t.Fatal(err)
	}
	if ix.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", ix.Len())
	}

	// Before the delete, slot 'a' must be a branch with both entries.
	if s := &ix.root.slots[0]; s.kind != slotBranch || s.child.entries != 2 {
		t.Fatalf("slot 'a' = kind %d entries %d, want branch with 2", s.kind, s.child.entries)
	}

	if err := ix.Delete(sigKey("ab")); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	if ix.Len() != 1 {
		t.Errorf("Len() = %d, want 1", ix.Len())
	}
	s := &ix.root.slots[0]
	if s.kind != slotLeaf {
		t.Fatalf("slot 'a' kind = %d, want direct leaf after collapse", s.kind)
	}
	if s.key != sigKey("aa") || s.value != 1 {
		t.Errorf("collapsed leaf = (%q, %d), want (aa, 1)", s.key, s.value)
	}
}

// Deleting one of two keys that diverge only at a deep level must flatten
// the whole chain of now-singleton branches, not just the last one.
func TestIndex_CollapseFlattensSingletonChain(t *testing.T) {
	ix := New[sigKey, int]()

	// Diverge at level 4.
	if err := ix.Set(sigKey("aaaaa"), 1); err != nil {
		t.Fatal(err)
	}
	if err := ix.Set(sigKey("aaaab"), 2); err != nil {
		t.Fatal(err)
	}

	idxA, _ := ix.alpha.Index('a')
	s := &ix.root.slots[idxA]
	if s.kind != slotBranch {
		t.Fatalf("expected branch at root slot 'a'")
	}

	if err := ix.Delete(sigKey("aaaab")); err != nil {
		t.Fatal(err)
	}

	// The survivor must sit directly in the root slot, no intermediate
	// singleton branches left.
	s = &ix.root.slots[idxA]
	if s.kind != slotLeaf {
		t.Fatalf("slot 'a' kind = %d, want leaf after chain collapse", s.kind)
	}
	if s.key != sigKey("aaaaa") {
		t.Errorf("surviving key = %q, want aaaaa", s.key)
	}
	if ix.Len() != 1 {
		t.Errorf("Len() = %d, want 1", ix.Len())
	}
}

func TestIndex_DeleteLastEntryEmptiesSlot(t *testing.T) {
	ix := New[sigKey, int]()

	if err := ix.Set(sigKey("aaaa"), 1); err != nil {
		t.Fatal(err)
	}
	if err := ix.Set(sigKey("aaab"), 2); err != nil {
		t.Fatal(err)
	}
	if err := ix.Delete(sigKey("aaaa")); err != nil {
		t.Fatal(err)
	}
	if err := ix.Delete(sigKey("aaab")); err != nil {
		t.Fatal(err)
	}

	if ix.Len() != 0 {
		t.Errorf("Len() = %d, want 0", ix.Len())
	}
	idxA, _ := ix.alpha.Index('a')
	if s := &ix.root.slots[idxA]; s.kind != slotEmpty {
		t.Errorf("slot 'a' kind = %d, want empty", s.kind)
	}
}

// A delete that leaves a branch with two or more survivors must not collapse it.
func TestIndex_NoCollapseWithMultipleSurvivors(t *testing.T) {
	ix := New[sigKey, int]()

	for i, k := range []sigKey{"abca", "abcb", "abcc"} {
		if err := ix.Set(k, i+1); err != nil {
			t.Fatal(err)
		}
	}
	if err := ix.Delete(sigKey("abcc")); err != nil {
		t.Fatal(err)
	}

	idxA, _ := ix.alpha.Index('a')
	if s := &ix.root.slots[idxA]; s.kind != slotBranch {
		t.Fatalf("slot 'a' kind = %d, want branch (two survivors remain)", s.kind)
	}
	if v, _ := ix.Get(sigKey("abca")); v != 1 {
		t.Errorf("Get(abca) = %d, want 1", v)
	}
	if v, _ := ix.Get(sigKey("abcb")); v != 2 {
		t.Errorf("Get(abcb) = %d, want 2", v)
	}
}

func TestIndex_DeleteAbsent(t *testing.T) {
	ix := New[sigKey, int]()
	if err := ix.Set(sigKey("abc"), 1); err != nil {
		t.Fatal(err)
	}

	if err := ix.Delete(sigKey("xyz")); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound for empty slot, got %v", err)
	}
	if err := ix.Delete(sigKey("a00")); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound for mismatched leaf, got %v", err)
	}
	if ix.Len() != 1 {
		t.Errorf("Len() = %d, want 1 (failed deletes must not change counters)", ix.Len())
	}
}

func TestIndex_KeyTooShort(t *testing.T) {
	ix := New[sigKey, int]()

	if err := ix.Set(sigKey(""), 1); !errors.Is(err, ErrKeyTooShort) {
		t.Errorf("expected ErrKeyTooShort for empty signature, got %v", err)
	}

	// "a" fits at level 0. A colliding "ab" needs both keys to reach level 1,
	// which "a" cannot; the failed insert must leave the structure unchanged.
	if err := ix.Set(sigKey("a"), 1); err != nil {
		t.Fatal(err)
	}
	if err := ix.Set(sigKey("ab"), 2); !errors.Is(err, ErrKeyTooShort) {
		t.Errorf("expected ErrKeyTooShort for push-down past resident key, got %v", err)
	}

	if ix.Len() != 1 {
		t.Errorf("Len() = %d, want 1", ix.Len())
	}
	idxA, _ := ix.alpha.Index('a')
	if s := &ix.root.slots[idxA]; s.kind != slotLeaf || s.key != sigKey("a") {
		t.Errorf("failed insert disturbed the resident leaf")
	}
	if _, err := ix.Get(sigKey("ab")); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound for never-inserted key, got %v", err)
	}
}

func TestIndex_InvalidSymbol(t *testing.T) {
	ix := New[sigKey, int]()
	if err := ix.Set(sigKey("AB!"), 1); !errors.Is(err, ErrInvalidSymbol) {
		t.Errorf("expected ErrInvalidSymbol, got %v", err)
	}
	if ix.Len() != 0 {
		t.Errorf("Len() = %d, want 0", ix.Len())
	}
}

func TestIndex_EntriesOrderIsInsertionIndependent(t *testing.T) {
	keys := []sigKey{"zz9", "abc", "ab0", "9aa", "abd", "zza"}

	build := func(order []sigKey) []Entry[sigKey, int] {
		ix := New[sigKey, int]()
		for _, k := range order {
			if err := ix.Set(k, 1); err != nil {
				t.Fatal(err)
			}
		}
		return ix.Entries()
	}

	want := build(keys)
	if len(want) != len(keys) {
		t.Fatalf("Entries() yielded %d pairs, want %d", len(want), len(keys))
	}

	// Alphabet order at each level: letters before digits.
	wantOrder := []sigKey{"abc", "abd", "ab0", "zza", "zz9", "9aa"}
	for i, e := range want {
		if e.Key != wantOrder[i] {
			t.Fatalf("Entries()[%d] = %q, want %q (full order %v)", i, e.Key, wantOrder[i], want)
		}
	}

	for trial := 0; trial < 10; trial++ {
		shuffled := append([]sigKey(nil), keys...)
		rand.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })
		got := build(shuffled)
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("traversal order depends on insertion order: got %v, want %v", got, want)
			}
		}
	}
}

func TestIndex_EntriesCountMatchesLen(t *testing.T) {
	ix := New[sigKey, int]()
	n := 0
	for i := 0; i < 200; i++ {
		key := sigKey(fmt.Sprintf("%04d", i))
		if err := ix.Set(key, i); err != nil {
			t.Fatal(err)
		}
		n++
	}
	if ix.Len() != n {
		t.Fatalf("Len() = %d, want %d", ix.Len(), n)
	}
	if got := len(ix.Entries()); got != n {
		t.Fatalf("Entries() yielded %d pairs, want %d", got, n)
	}
}

func TestIndex_WalkEarlyStop(t *testing.T) {
	ix := New[sigKey, int]()
	for _, k := range []sigKey{"aa", "bb", "cc", "dd"} {
		if err := ix.Set(k, 1); err != nil {
			t.Fatal(err)
		}
	}

	seen := 0
	ix.Walk(func(k sigKey, v int) bool {
		seen++
		return seen < 2
	})
	if seen != 2 {
		t.Errorf("walk visited %d entries after early stop, want 2", seen)
	}
}

func TestIndex_EachCallIsFreshTraversal(t *testing.T) {
	ix := New[sigKey, int]()
	for _, k := range []sigKey{"aa", "bb"} {
		if err := ix.Set(k, 1); err != nil {
			t.Fatal(err)
		}
	}

	first := ix.Entries()
	second := ix.Entries()
	if len(first) != 2 || len(second) != 2 {
		t.Fatalf("traversals yielded %d and %d pairs, want 2 and 2", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("independent traversals disagree at %d: %v vs %v", i, first[i], second[i])
		}
	}
}
