package forest

import (
	"github.com/phoenix-tui/flexlayout/style"
)

// Forest is the node arena: three parallel sequences indexed by NodeID,
// with children/parents stored as index slices rather than pointers. It
// enforces the adjacency and dirty-propagation invariants; it does not
// run the layout algorithm (see internal/algorithm), only stores its
// inputs and outputs.
type Forest struct {
	nodes    []node
	children [][]NodeID
	parents  [][]NodeID
}

// NewWithCapacity preallocates storage for capacity nodes.
func NewWithCapacity(capacity int) *Forest {
	return &Forest{
		nodes:    make([]node, 0, capacity),
		children: make([][]NodeID, 0, capacity),
		parents:  make([][]NodeID, 0, capacity),
	}
}

// Len returns the number of live nodes.
func (f *Forest) Len() int {
	return len(f.nodes)
}

// Valid reports whether id currently addresses a live node.
func (f *Forest) Valid(id NodeID) bool {
	return id >= 0 && int(id) < len(f.nodes)
}

// NewLeaf creates a childless node carrying a measure callback.
func (f *Forest) NewLeaf(s style.Style, measure MeasureFunc) NodeID {
	id := NodeID(len(f.nodes))
	f.nodes = append(f.nodes, newNode(KindLeaf, s, measure))
	f.children = append(f.children, nil)
	f.parents = append(f.parents, nil)
	return id
}

// NewNode creates a container node with the given initial children.
func (f *Forest) NewNode(s style.Style, children []NodeID) NodeID {
	id := NodeID(len(f.nodes))
	for _, c := range children {
		f.parents[c] = append(f.parents[c], id)
	}
	f.nodes = append(f.nodes, newNode(KindNode, s, nil))
	f.children = append(f.children, append([]NodeID(nil), children...))
	f.parents = append(f.parents, nil)
	return id
}

// NewScrollView creates a container node whose accumulated scroll offset
// (see SetOffset) is applied to its children's locations when it is laid
// out.
func (f *Forest) NewScrollView(s style.Style, children []NodeID) NodeID {
	id := NodeID(len(f.nodes))
	for _, c := range children {
		f.parents[c] = append(f.parents[c], id)
	}
	f.nodes = append(f.nodes, newNode(KindScrollView, s, nil))
	f.children = append(f.children, append([]NodeID(nil), children...))
	f.parents = append(f.parents, nil)
	return id
}

// AddChild appends child to node's child list and marks node dirty.
func (f *Forest) AddChild(parent, child NodeID) {
	f.parents[child] = append(f.parents[child], parent)
	f.children[parent] = append(f.children[parent], child)
	f.MarkDirty(parent)
}

// RemoveChildAtIndex detaches the child at index from node's child list,
// marks node dirty, and returns the detached child id. Panics if index is
// out of range; an unchecked primitive for a caller that already knows
// the index and wants to skip RemoveChild's linear scan.
func (f *Forest) RemoveChildAtIndex(parent NodeID, index int) NodeID {
	child := f.children[parent][index]
	f.children[parent] = append(f.children[parent][:index], f.children[parent][index+1:]...)
	f.parents[child] = removeFirst(f.parents[child], parent)
	f.MarkDirty(parent)
	return child
}

// RemoveChild is the checked counterpart to RemoveChildAtIndex: it looks up
// child's index under parent and removes it, reporting false instead of
// panicking when the edge does not exist.
func (f *Forest) RemoveChild(parent, child NodeID) bool {
	for i, c := range f.children[parent] {
		if c == child {
			f.RemoveChildAtIndex(parent, i)
			return true
		}
	}
	return false
}

func removeFirst(ids []NodeID, target NodeID) []NodeID {
	for i, id := range ids {
		if id == target {
			return append(ids[:i], ids[i+1:]...)
		}
	}
	return ids
}

// Clear empties the forest. Every previously issued NodeID becomes invalid.
func (f *Forest) Clear() {
	f.nodes = f.nodes[:0]
	f.children = f.children[:0]
	f.parents = f.parents[:0]
}

// SwapRemove removes node, moving the last slot into its place. It
// returns the id that used to be the last slot (so the caller can
// rewrite external references to it) and true, or (0, false) if the
// removed node was already the last slot.
//
// Complexity is O(node.children + node.parents + last.children +
// last.parents).
func (f *Forest) SwapRemove(id NodeID) (NodeID, bool) {
	last := NodeID(len(f.nodes) - 1)

	// Detach `id` as a parent from all of its children, and as a child from
	// all of its parents, before the slot is reused.
	for _, child := range f.children[id] {
		f.parents[child] = removeAll(f.parents[child], id)
	}
	for _, parent := range f.parents[id] {
		f.children[parent] = removeAll(f.children[parent], id)
	}

	if id == last {
		f.nodes = f.nodes[:last]
		f.children = f.children[:last]
		f.parents = f.parents[:last]
		return 0, false
	}

	// Move the last slot's data into id's slot.
	f.nodes[id] = f.nodes[last]
	f.children[id] = f.children[last]
	f.parents[id] = f.parents[last]

	// Repair adjacency: every child of the moved node must point back at
	// `id` instead of `last`; every parent of the moved node must point
	// its own children entry at `id` instead of `last`.
	for _, child := range f.children[id] {
		for i, p := range f.parents[child] {
			if p == last {
				f.parents[child][i] = id
			}
		}
	}
	for _, parent := range f.parents[id] {
		for i, c := range f.children[parent] {
			if c == last {
				f.children[parent][i] = id
			}
		}
	}

	f.nodes = f.nodes[:last]
	f.children = f.children[:last]
	f.parents = f.parents[:last]
	return last, true
}

func removeAll(ids []NodeID, target NodeID) []NodeID {
	out := ids[:0]
	for _, id := range ids {
		if id != target {
			out = append(out, id)
		}
	}
	return out
}

// MarkDirty sets node and every transitive parent dirty, invalidating their
// layout caches. Implemented with an explicit work stack rather than
// recursion, to avoid stack exhaustion on deep trees.
func (f *Forest) MarkDirty(id NodeID) {
	stack := []NodeID{id}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		f.nodes[n].isDirty = true
		f.nodes[n].cache.Valid = false
		stack = append(stack, f.parents[n]...)
	}
}

// IsDirty reports whether id is currently dirty.
func (f *Forest) IsDirty(id NodeID) bool {
	return f.nodes[id].isDirty
}

// ClearDirty clears id's dirty bit. Called by the algorithm once it has
// written a fresh Layout for id.
func (f *Forest) ClearDirty(id NodeID) {
	f.nodes[id].isDirty = false
}

// Style returns id's current style.
func (f *Forest) Style(id NodeID) style.Style {
	return f.nodes[id].style
}

// SetStyle replaces id's style and marks it dirty.
func (f *Forest) SetStyle(id NodeID, s style.Style) {
	f.nodes[id].style = s
	f.MarkDirty(id)
}

// Measure returns id's measure callback, or nil if none was attached.
func (f *Forest) Measure(id NodeID) MeasureFunc {
	return f.nodes[id].measure
}

// Kind returns id's node kind.
func (f *Forest) Kind(id NodeID) Kind {
	return f.nodes[id].kind
}

// IsScrollView reports whether id applies its scroll offset to children.
func (f *Forest) IsScrollView(id NodeID) bool {
	return f.nodes[id].scrollView
}

// ScrollOffset returns id's accumulated scroll offset.
func (f *Forest) ScrollOffset(id NodeID) float32 {
	return f.nodes[id].offset
}

// SetOffset adds delta to id's scroll offset accumulator, clamped to
// [0, +inf). It does not mark id dirty and does not move any child: the
// accumulated offset is subtracted from children's locations only when
// the algorithm lays id out, so a ComputeLayout whose inputs are unchanged
// reuses the cached result and leaves the children where they were.
func (f *Forest) SetOffset(id NodeID, delta float32) {
	f.nodes[id].offset += delta
	if f.nodes[id].offset < 0 {
		f.nodes[id].offset = 0
	}
}

// SetPos records a host-assigned translation/clip rect on id. It is purely
// advisory storage for the host; the algorithm does not consult it.
func (f *Forest) SetPos(id NodeID, x, y, bottom, right float32) {
	n := &f.nodes[id]
	n.x, n.y, n.bottom, n.right = x, y, bottom, right
}

// Pos returns the host-assigned translation/clip rect set by SetPos.
func (f *Forest) Pos(id NodeID) (x, y, bottom, right float32) {
	n := &f.nodes[id]
	return n.x, n.y, n.bottom, n.right
}

// SetCache writes the host-bookkeeping scrollable-extent counters,
// independently of SetPos's translation/clip rect — the two must never
// be conflated, since they serve unrelated host bookkeeping needs.
func (f *Forest) SetCache(id NodeID, elCount uint32, farestElement float32) {
	n := &f.nodes[id]
	n.cacheElCount = elCount
	n.cacheFarestElement = farestElement
}

// CacheCounters returns the host-bookkeeping counters written by SetCache.
func (f *Forest) CacheCounters(id NodeID) (elCount uint32, farestElement float32) {
	n := &f.nodes[id]
	return n.cacheElCount, n.cacheFarestElement
}

// Layout returns id's most recently computed layout result.
func (f *Forest) Layout(id NodeID) Layout {
	return f.nodes[id].layout
}

// SetLayout writes id's layout result and clears its dirty bit.
func (f *Forest) SetLayout(id NodeID, l Layout) {
	f.nodes[id].layout = l
	f.nodes[id].isDirty = false
}

// LayoutCache returns id's memoized cache entry (Cache.Valid is false if
// there is none).
func (f *Forest) LayoutCache(id NodeID) Cache {
	return f.nodes[id].cache
}

// SetLayoutCache stores a layout cache entry for id.
func (f *Forest) SetLayoutCache(id NodeID, c Cache) {
	f.nodes[id].cache = c
}

// Children returns a copy of id's ordered child list.
func (f *Forest) Children(id NodeID) []NodeID {
	return append([]NodeID(nil), f.children[id]...)
}

// ChildrenRef returns id's child list without copying; callers within this
// package may read it but must not retain or mutate it across a mutating
// call.
func (f *Forest) ChildrenRef(id NodeID) []NodeID {
	return f.children[id]
}

// Parents returns a copy of id's parent list.
func (f *Forest) Parents(id NodeID) []NodeID {
	return append([]NodeID(nil), f.parents[id]...)
}
