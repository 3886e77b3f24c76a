package container

import (
	"errors"
	"testing"

	"github.com/npillmayer/iteratable"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestSetAddRemove(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "iteratable.container")
	defer teardown()
	//
	S := NewSet[int]()
	if !S.Empty() {
		t.Errorf("new set should be empty, isn't")
	}
	S.Add(1, 2, 3)
	if S.Length() != 3 {
		t.Errorf("expected set of length 3, have %d", S.Length())
	}
	S.Remove(2)
	if S.Length() != 2 || S.Contains(2) {
		t.Errorf("expected {1, 3} after removal, have %s", S)
	}
	S.Remove(99) // absent values are silently ignored
	if S.Length() != 2 {
		t.Errorf("removing an absent value changed the set: %s", S)
	}
}

func TestSetAddIdempotent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "iteratable.container")
	defer teardown()
	//
	S := NewSet[string]()
	S.Add("a")
	S.Add("a")
	if S.Length() != 1 {
		t.Errorf("re-adding a present value increased length to %d", S.Length())
	}
	T := SetOf("a")
	if !S.Equals(T) {
		t.Errorf("add(a);add(a) differs from add(a): %s vs %s", S, T)
	}
}

func TestSetIterationOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "iteratable.container")
	defer teardown()
	//
	S := SetOf(7, 3, 9, 1)
	want := []int{7, 3, 9, 1}
	have := S.Values()
	for i, v := range want {
		if have[i] != v {
			t.Fatalf("iteration order should be insertion order, have %v", have)
		}
	}
	S.Remove(3) // removal must not reorder survivors
	want = []int{7, 9, 1}
	have = S.Values()
	for i, v := range want {
		if have[i] != v {
			t.Fatalf("removal reordered survivors: %v", have)
		}
	}
}

func TestSetDuplicate(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "iteratable.container")
	defer teardown()
	//
	S := SetOf(1, 2, 3)
	D := S.Duplicate()
	if !S.Equals(D) {
		t.Errorf("duplicate is not structurally equal: %s vs %s", S, D)
	}
	D.Add(4)
	if S.Contains(4) {
		t.Errorf("duplicate shares backend state with the original")
	}
	cu := S.Begin() // a cursor of S is a foreign handle to D
	if _, err := D.RemoveAt(cu); !errors.Is(err, iteratable.ErrForeignHandle) {
		t.Errorf("expected ErrForeignHandle from foreign cursor, got %v", err)
	}
}

func TestSetEquals(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "iteratable.container")
	defer teardown()
	//
	S := SetOf(1, 2, 3)
	T := SetOf(3, 1, 2) // different insertion order
	if !S.Equals(T) {
		t.Errorf("equality should ignore iteration order: %s vs %s", S, T)
	}
	T.Add(4)
	if S.Equals(T) {
		t.Errorf("sets of different length compare equal: %s vs %s", S, T)
	}
}

func TestSetIntersect(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "iteratable.container")
	defer teardown()
	//
	S := SetOf(0, 1, 2, 3, 4, 5)
	S.Intersect(0, 2, 4, 6, 8)
	if !S.Equals(SetOf(0, 2, 4)) {
		t.Errorf("expected {0, 2, 4}, have %s", S)
	}
}

func TestSetIntersectAll(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "iteratable.container")
	defer teardown()
	//
	S := SetOf(0, 1, 2, 3, 4, 5)
	T := SetOf(8, 6, 4, 2, 0) // iteration orders differ
	S.IntersectAll(T)
	if !S.Equals(SetOf(0, 2, 4)) {
		t.Errorf("expected {0, 2, 4}, have %s", S)
	}
}

func TestSetSelfAggregation(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "iteratable.container")
	defer teardown()
	//
	S := SetOf(1, 2, 3)
	S.AddAll(S) // must be a well-defined no-op
	if S.Length() != 3 {
		t.Errorf("self-add changed the set: %s", S)
	}
	S.IntersectAll(S) // must be a well-defined no-op
	if S.Length() != 3 {
		t.Errorf("self-intersection changed the set: %s", S)
	}
	S.RemoveAll(S) // removing a set from itself clears it
	if !S.Empty() {
		t.Errorf("self-removal should clear the set, have %s", S)
	}
}

func TestSetAddAll(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "iteratable.container")
	defer teardown()
	//
	S := SetOf(1, 2)
	S.AddAll(SetOf(2, 3, 4))
	if !S.Equals(SetOf(1, 2, 3, 4)) {
		t.Errorf("expected {1, 2, 3, 4}, have %s", S)
	}
}

func TestSetPurge(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "iteratable.container")
	defer teardown()
	//
	S := SetOf(0, 1, 2, 3, 4)
	S.Purge(func(int) (bool, bool) { return false, false })
	if S.Length() != 5 {
		t.Errorf("purge without removals changed the set: %s", S)
	}
	S.Purge(func(n int) (bool, bool) { return n%2 == 1, false })
	if !S.Equals(SetOf(0, 2, 4)) {
		t.Errorf("expected {0, 2, 4} after purging odds, have %s", S)
	}
	S.Purge(func(int) (bool, bool) { return true, false })
	if !S.Empty() {
		t.Errorf("purge-all left elements: %s", S)
	}
}

func TestSetPurgeHalt(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "iteratable.container")
	defer teardown()
	//
	S := SetOf(0, 1, 2, 3, 4)
	visited := 0
	S.Purge(func(n int) (bool, bool) {
		visited++
		return true, n == 2 // stop after dropping 2
	})
	if visited != 3 {
		t.Errorf("expected 3 visits before halt, have %d", visited)
	}
	if !S.Equals(SetOf(3, 4)) {
		t.Errorf("expected {3, 4} after halted purge, have %s", S)
	}
}

func TestSetRemoveAtCursor(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "iteratable.container")
	defer teardown()
	//
	S := SetOf(1, 2, 3, 4, 5)
	cu := S.Find(3)
	next, err := S.RemoveAt(cu)
	if err != nil {
		t.Fatalf("remove at cursor failed: %v", err)
	}
	if !S.Equals(SetOf(1, 2, 4, 5)) {
		t.Errorf("expected {1, 2, 4, 5}, have %s", S)
	}
	if v, _ := next.Value(); v != 4 {
		t.Errorf("returned cursor should reference 4, references %v", v)
	}
}

func TestSetRemoveAtEnd(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "iteratable.container")
	defer teardown()
	//
	S := SetOf(1)
	cu := S.Begin()
	next, err := S.RemoveAt(cu)
	if err != nil {
		t.Fatalf("remove at cursor failed: %v", err)
	}
	if !next.Exhausted() {
		t.Errorf("cursor past the last element should be exhausted")
	}
	if _, err = S.RemoveAt(next); !errors.Is(err, iteratable.ErrEmptyAccess) {
		t.Errorf("expected ErrEmptyAccess from exhausted cursor, got %v", err)
	}
}

func TestSetSlice(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "iteratable.container")
	defer teardown()
	//
	S := SetOf(1, 2, 3, 4, 5)
	if _, err := S.Slice(S.Begin(), S.Find(4)); err != nil {
		t.Errorf("slicing from begin should succeed, got %v", err)
	}
	if _, err := S.Slice(S.Find(2), S.End()); err != nil {
		t.Errorf("slicing up to end should succeed, got %v", err)
	}
	_, err := S.Slice(S.Find(2), S.Find(4)) // two interior cursors
	if !errors.Is(err, iteratable.ErrInvalidRange) {
		t.Errorf("expected ErrInvalidRange for interior cursors, got %v", err)
	}
}

func TestSetRemoveRange(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "iteratable.container")
	defer teardown()
	//
	S := SetOf(1, 2, 3, 4, 5)
	r, err := S.Slice(S.Begin(), S.Find(4))
	if err != nil {
		t.Fatalf("slice failed: %v", err)
	}
	if err = S.RemoveRange(r); err != nil {
		t.Fatalf("remove range failed: %v", err)
	}
	if !S.Equals(SetOf(4, 5)) {
		t.Errorf("expected {4, 5} after prefix removal, have %s", S)
	}
	if err = S.RemoveRange(S.All()); err != nil {
		t.Fatalf("remove all failed: %v", err)
	}
	if !S.Empty() {
		t.Errorf("removing the all-range left elements: %s", S)
	}
}

func TestSetGetAndTake(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "iteratable.container")
	defer teardown()
	//
	S := SetOf(7, 3, 9)
	v, err := S.Get()
	if err != nil || v != 7 {
		t.Errorf("get should peek first element 7, have %v (%v)", v, err)
	}
	if S.Length() != 3 {
		t.Errorf("get must not remove, length is %d", S.Length())
	}
	v, err = S.Take()
	if err != nil || v != 7 {
		t.Errorf("take should remove first element 7, have %v (%v)", v, err)
	}
	if S.Length() != 2 || S.Contains(7) {
		t.Errorf("expected {3, 9} after take, have %s", S)
	}
	S.Clear()
	if _, err = S.Get(); !errors.Is(err, iteratable.ErrEmptyAccess) {
		t.Errorf("expected ErrEmptyAccess from empty get, got %v", err)
	}
	if _, err = S.Take(); !errors.Is(err, iteratable.ErrEmptyAccess) {
		t.Errorf("expected ErrEmptyAccess from empty take, got %v", err)
	}
}

func TestSetAsIterator(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "iteratable.container")
	defer teardown()
	//
	S := SetOf(1, 2, 3)
	if S.Count() != 3 {
		t.Errorf("set should report an exact count, have %d", S.Count())
	}
	sum := 0
	seq := S.Seq()
	for v, ok := seq.First(); ok; v, ok = seq.Next() {
		sum += v
	}
	if sum != 6 {
		t.Errorf("expected traversal sum 6, have %d", sum)
	}
	seq = S.Seq() // traversal is restartable
	if v, ok := seq.First(); !ok || v != 1 {
		t.Errorf("fresh sequence should restart at 1, have %v", v)
	}
}

func TestSetRemoveAllSnapshot(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "iteratable.container")
	defer teardown()
	//
	S := SetOf(0, 1, 2, 3, 4)
	snapshot := S.Values()[:2] // remove the first two via a snapshot
	S.RemoveAll(&sliceIterator[int]{values: snapshot})
	if !S.Equals(SetOf(2, 3, 4)) {
		t.Errorf("expected {2, 3, 4}, have %s", S)
	}
}
