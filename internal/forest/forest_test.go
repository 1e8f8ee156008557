package forest

import (
	"testing"

	"github.com/phoenix-tui/flexlayout/style"
)

func TestNewLeafAndNodeAdjacency(t *testing.T) {
	f := NewWithCapacity(4)
	leaf := f.NewLeaf(style.New(), nil)
	root := f.NewNode(style.New(), []NodeID{leaf})

	if got := f.Children(root); len(got) != 1 || got[0] != leaf {
		t.Fatalf("Children(root) = %v, want [%v]", got, leaf)
	}
	if got := f.Parents(leaf); len(got) != 1 || got[0] != root {
		t.Fatalf("Parents(leaf) = %v, want [%v]", got, root)
	}
}

func TestAddChildMarksParentDirty(t *testing.T) {
	f := NewWithCapacity(4)
	root := f.NewNode(style.New(), nil)
	f.ClearDirty(root)

	child := f.NewLeaf(style.New(), nil)
	f.AddChild(root, child)

	if !f.IsDirty(root) {
		t.Fatal("AddChild should mark the parent dirty")
	}
}

// TestDirtyPropagatesThroughAncestors exercises a three-level tree:
// grandparent -> parent -> child. Dirtying child must mark parent and
// grandparent dirty too, via the iterative work-stack in MarkDirty.
func TestDirtyPropagatesThroughAncestors(t *testing.T) {
	f := NewWithCapacity(4)
	child := f.NewLeaf(style.New(), nil)
	parent := f.NewNode(style.New(), []NodeID{child})
	grandparent := f.NewNode(style.New(), []NodeID{parent})

	f.ClearDirty(child)
	f.ClearDirty(parent)
	f.ClearDirty(grandparent)

	f.MarkDirty(child)

	if !f.IsDirty(child) {
		t.Error("child should be dirty")
	}
	if !f.IsDirty(parent) {
		t.Error("parent should be dirty after child was marked dirty")
	}
	if !f.IsDirty(grandparent) {
		t.Error("grandparent should be dirty after child was marked dirty")
	}
}

func TestRemoveChildAtIndexDetachesBothDirections(t *testing.T) {
	f := NewWithCapacity(4)
	child := f.NewLeaf(style.New(), nil)
	root := f.NewNode(style.New(), []NodeID{child})

	got := f.RemoveChildAtIndex(root, 0)
	if got != child {
		t.Fatalf("RemoveChildAtIndex returned %v, want %v", got, child)
	}
	if len(f.Children(root)) != 0 {
		t.Fatalf("root should have no children left, got %v", f.Children(root))
	}
	if len(f.Parents(child)) != 0 {
		t.Fatalf("child should have no parents left, got %v", f.Parents(child))
	}
}

func TestRemoveChildCheckedReportsMissingEdge(t *testing.T) {
	f := NewWithCapacity(4)
	a := f.NewLeaf(style.New(), nil)
	b := f.NewLeaf(style.New(), nil)
	root := f.NewNode(style.New(), []NodeID{a})

	if f.RemoveChild(root, b) {
		t.Fatal("RemoveChild should report false for an edge that does not exist")
	}
	if !f.RemoveChild(root, a) {
		t.Fatal("RemoveChild should report true for an edge that exists")
	}
}

func TestAddChildThenRemoveChildAtIndexRoundTrips(t *testing.T) {
	f := NewWithCapacity(4)
	root := f.NewNode(style.New(), nil)
	child := f.NewLeaf(style.New(), nil)

	f.AddChild(root, child)
	if len(f.Children(root)) != 1 {
		t.Fatalf("Children(root) after AddChild = %v, want length 1", f.Children(root))
	}

	back := f.RemoveChildAtIndex(root, 0)
	if back != child {
		t.Fatalf("RemoveChildAtIndex = %v, want %v", back, child)
	}
	if len(f.Children(root)) != 0 {
		t.Fatalf("Children(root) after remove = %v, want empty", f.Children(root))
	}
}

// TestSwapRemoveRepairsAdjacency builds nodes 0,1,2,3 with edges 0->1,
// 0->2, 2->3, then removes node 1 (not the last slot). Node 3 (the last
// slot) moves into slot 1; every reference to the old id 3 must now read
// id 1, and id 1's old edges must be gone.
func TestSwapRemoveRepairsAdjacency(t *testing.T) {
	f := NewWithCapacity(4)
	n0 := f.NewNode(style.New(), nil)
	n1 := f.NewLeaf(style.New(), nil)
	n2 := f.NewNode(style.New(), nil)
	n3 := f.NewLeaf(style.New(), nil)
	f.AddChild(n0, n1)
	f.AddChild(n0, n2)
	f.AddChild(n2, n3)

	moved, ok := f.SwapRemove(n1)
	if !ok || moved != n3 {
		t.Fatalf("SwapRemove(n1) = (%v, %v), want (%v, true)", moved, ok, n3)
	}
	if f.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", f.Len())
	}

	// n3's data (a leaf with parent n2) now lives at slot n1.
	if f.Kind(n1) != KindLeaf {
		t.Fatalf("slot %v should now hold the moved leaf", n1)
	}
	if got := f.Parents(n1); len(got) != 1 || got[0] != n2 {
		t.Fatalf("Parents(moved slot) = %v, want [%v]", got, n2)
	}
	if got := f.Children(n2); len(got) != 1 || got[0] != n1 {
		t.Fatalf("Children(n2) after move = %v, want [%v] (rewritten from n3)", got, n1)
	}

	// n0's remaining child is n2; the removed n1 edge is gone.
	if got := f.Children(n0); len(got) != 1 || got[0] != n2 {
		t.Fatalf("Children(n0) = %v, want [%v]", got, n2)
	}
}

func TestSwapRemoveLastSlotNeedsNoRewrite(t *testing.T) {
	f := NewWithCapacity(2)
	a := f.NewLeaf(style.New(), nil)
	b := f.NewLeaf(style.New(), nil)

	_, ok := f.SwapRemove(b)
	if ok {
		t.Fatal("removing the last slot should report ok=false (nothing moved)")
	}
	if f.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", f.Len())
	}
	if !f.Valid(a) {
		t.Fatal("remaining node should still be valid")
	}
}

func TestSetCacheStoresCountersIndependentlyOfPos(t *testing.T) {
	f := NewWithCapacity(1)
	id := f.NewNode(style.New(), nil)

	f.SetCache(id, 12, 340.5)
	elCount, far := f.CacheCounters(id)
	if elCount != 12 || far != 340.5 {
		t.Fatalf("CacheCounters = (%d, %v), want (12, 340.5)", elCount, far)
	}

	// SetPos must never be touched by SetCache — the two serve unrelated
	// host bookkeeping needs and must not be conflated.
	if x, y, bottom, right := f.Pos(id); x != 0 || y != 0 || bottom != 0 || right != 0 {
		t.Fatalf("Pos after SetCache = (%v,%v,%v,%v), want all zero", x, y, bottom, right)
	}
	f.SetPos(id, 1, 2, 3, 4)
	x, y, bottom, right := f.Pos(id)
	if x != 1 || y != 2 || bottom != 3 || right != 4 {
		t.Fatalf("Pos = (%v,%v,%v,%v), want (1,2,3,4)", x, y, bottom, right)
	}
}

func TestSetOffsetClampsAtZero(t *testing.T) {
	f := NewWithCapacity(1)
	id := f.NewScrollView(style.New(), nil)

	f.SetOffset(id, -5)
	if got := f.ScrollOffset(id); got != 0 {
		t.Fatalf("ScrollOffset after negative delta past zero = %v, want 0", got)
	}

	f.SetOffset(id, 10)
	f.SetOffset(id, -3)
	if got := f.ScrollOffset(id); got != 7 {
		t.Fatalf("ScrollOffset = %v, want 7", got)
	}
}

func TestClearInvalidatesAllNodes(t *testing.T) {
	f := NewWithCapacity(2)
	id := f.NewLeaf(style.New(), nil)
	f.Clear()

	if f.Valid(id) {
		t.Fatal("node id should be invalid after Clear")
	}
	if f.Len() != 0 {
		t.Fatalf("Len() after Clear = %d, want 0", f.Len())
	}
}
