// Package flexlayout is a flexbox layout engine: a node forest, a CSS
// flexbox-shaped style model (package style), and the algorithm that
// turns one into resolved geometry. It deliberately stops at geometry —
// drawing, input handling, and text shaping are left to the host.
//
// Tree is the only exported entry point. It owns a node arena
// internally (internal/forest) and delegates layout computation to
// internal/algorithm; neither package has any other public surface.
package flexlayout

import (
	"github.com/phoenix-tui/flexlayout/geom"
	"github.com/phoenix-tui/flexlayout/internal/algorithm"
	"github.com/phoenix-tui/flexlayout/internal/forest"
	"github.com/phoenix-tui/flexlayout/style"
)

// NodeID identifies a node within a Tree. It is only meaningful with the
// Tree that issued it, and becomes invalid after a SwapRemove or Clear
// that the caller does not account for — see Tree.SwapRemove.
type NodeID = forest.NodeID

// MeasureFunc is the host-supplied content measurement callback attached
// to a leaf node. See "Measurement callback contract" below.
type MeasureFunc = forest.MeasureFunc

// Layout is the geometry ComputeLayout resolves for a node: its size,
// its location relative to its parent's content-box origin, and its
// original child order (used by a renderer that wants paint order to
// follow document order rather than layout order).
type Layout = forest.Layout

// Tree is the engine façade: a node arena plus the re-entrancy guard a
// host's measure callback must respect. The zero value is not usable —
// construct one with NewTree or NewTreeWithCapacity.
type Tree struct {
	forest    *forest.Forest
	computing bool
}

// NewTree returns an empty Tree.
func NewTree() *Tree {
	return NewTreeWithCapacity(0)
}

// NewTreeWithCapacity returns an empty Tree preallocated for capacity
// nodes, avoiding reallocation when the approximate final size is known.
func NewTreeWithCapacity(capacity int) *Tree {
	return &Tree{forest: forest.NewWithCapacity(capacity)}
}

func (t *Tree) guardMutation() {
	if t.computing {
		panic("flexlayout: Tree mutated from within ComputeLayout or a measure callback")
	}
}

// NewLeaf creates a childless node whose content size comes from measure
// (which may be nil for a leaf whose Size is always explicit).
func (t *Tree) NewLeaf(s style.Style, measure MeasureFunc) NodeID {
	t.guardMutation()
	return t.forest.NewLeaf(s, measure)
}

// NewNode creates a flex container with the given initial children.
func (t *Tree) NewNode(s style.Style, children []NodeID) NodeID {
	t.guardMutation()
	return t.forest.NewNode(s, children)
}

// NewScrollView creates a flex container whose children are additionally
// offset by its accumulated scroll position — see SetOffset.
func (t *Tree) NewScrollView(s style.Style, children []NodeID) NodeID {
	t.guardMutation()
	return t.forest.NewScrollView(s, children)
}

// AddChild appends child to parent's child list and marks parent dirty.
func (t *Tree) AddChild(parent, child NodeID) {
	t.guardMutation()
	t.forest.AddChild(parent, child)
}

// RemoveChild detaches child from parent if present, reporting whether it
// was found. See RemoveChildAtIndex for the unchecked, index-based form.
func (t *Tree) RemoveChild(parent, child NodeID) bool {
	t.guardMutation()
	return t.forest.RemoveChild(parent, child)
}

// RemoveChildAtIndex detaches the child at index from parent's child
// list and returns it. It panics if index is out of range — see
// internal/forest for why this primitive is unchecked while RemoveChild
// is not.
func (t *Tree) RemoveChildAtIndex(parent NodeID, index int) NodeID {
	t.guardMutation()
	return t.forest.RemoveChildAtIndex(parent, index)
}

// SwapRemove deletes id, filling its slot with the forest's last node
// (if id was not already the last). It returns the id that used to
// address that last node, so the caller can rewrite any external
// references it was holding to it, and true — or (0, false) if id was
// already the last slot and nothing moved.
func (t *Tree) SwapRemove(id NodeID) (NodeID, bool) {
	t.guardMutation()
	return t.forest.SwapRemove(id)
}

// Clear empties the Tree. Every NodeID issued before this call becomes
// invalid.
func (t *Tree) Clear() {
	t.guardMutation()
	t.forest.Clear()
}

// SetStyle replaces id's style and marks id (and its ancestors) dirty.
func (t *Tree) SetStyle(id NodeID, s style.Style) {
	t.guardMutation()
	t.forest.SetStyle(id, s)
}

// MarkDirty forces id and its ancestors to recompute on the next
// ComputeLayout call, even if their resolved inputs have not changed —
// useful when a leaf's measure callback's external inputs changed
// without any Tree mutation (e.g. the host's font changed).
func (t *Tree) MarkDirty(id NodeID) {
	t.guardMutation()
	t.forest.MarkDirty(id)
}

// SetOffset adjusts id's accumulated scroll offset by delta, clamped to
// never go negative. id must have been created with NewScrollView for
// this to affect layout, and the offset reaches its children's locations
// only the next time id is laid out; SetOffset does not mark id dirty.
func (t *Tree) SetOffset(id NodeID, delta float32) {
	t.guardMutation()
	t.forest.SetOffset(id, delta)
}

// SetPos stores a host-assigned translation/clip rect on id. The
// algorithm never reads it; it exists so a rendering client can stash
// scroll-clip extents alongside a node without touching its Layout.
func (t *Tree) SetPos(id NodeID, x, y, bottom, right float32) {
	t.guardMutation()
	t.forest.SetPos(id, x, y, bottom, right)
}

// SetCache stores host bookkeeping about a scrollable node's content
// extent: how many elements it has laid out, and the far edge of the
// farthest one.
func (t *Tree) SetCache(id NodeID, elCount uint32, farestElement float32) {
	t.guardMutation()
	t.forest.SetCache(id, elCount, farestElement)
}

// ComputeLayout resolves root's size against available and lays out its
// entire subtree, writing every reachable node's Layout. Measure
// callbacks may run during the call; mutating the Tree from within one
// panics (see the re-entrancy guard on every other method).
//
// A *MeasureError is returned if any measure callback in root's subtree
// returns an error. Layouts already written for nodes laid out before the
// failing callback ran are kept; they are not rolled back.
func (t *Tree) ComputeLayout(root NodeID, available geom.Size[geom.Number]) error {
	t.guardMutation()
	t.computing = true
	defer func() { t.computing = false }()
	return algorithm.ComputeLayout(t.forest, root, available)
}

// RoundLayout rounds every Layout in root's subtree to integer pixel
// boundaries without introducing gaps between adjacent siblings — call
// it once after ComputeLayout, before reading Layout for rendering.
func (t *Tree) RoundLayout(root NodeID) {
	t.guardMutation()
	algorithm.RoundLayout(t.forest, root)
}

// Layout returns id's most recently computed layout result.
func (t *Tree) Layout(id NodeID) Layout {
	return t.forest.Layout(id)
}

// Children returns a copy of id's ordered child list.
func (t *Tree) Children(id NodeID) []NodeID {
	return t.forest.Children(id)
}

// Parents returns a copy of id's parent list (more than one if id has
// been attached under multiple containers).
func (t *Tree) Parents(id NodeID) []NodeID {
	return t.forest.Parents(id)
}

// Len returns the number of live nodes in the Tree.
func (t *Tree) Len() int {
	return t.forest.Len()
}

// MeasureError is returned from ComputeLayout when a measure callback
// fails; it wraps the callback's error and names the node it came from.
type MeasureError = algorithm.MeasureError
