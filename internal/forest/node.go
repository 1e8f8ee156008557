// Package forest implements the node arena: a flat, index-addressed
// store of style + layout-result + adjacency data.
// It is internal because the forest's raw NodeID space is only meaningful
// together with the invariants the flexlayout.Tree façade enforces around
// it (dirty propagation on mutation, re-entrancy guarding during layout);
// nothing outside this module should construct or index a Forest directly.
package forest

import (
	"github.com/phoenix-tui/flexlayout/geom"
	"github.com/phoenix-tui/flexlayout/style"
)

// NodeID indexes into a Forest. It is only stable across calls other than
// SwapRemove and Clear — see Forest.SwapRemove.
type NodeID int

// Kind discriminates the three ways a node can be constructed, preferring
// a tagged variant over a subclass hierarchy. The algorithm branches on it
// only to choose leaf measurement (KindLeaf) over container layout; whether
// a measure func is present and whether scroll-view offsetting applies are
// read from their own fields.
type Kind uint8

const (
	KindNode Kind = iota
	KindLeaf
	KindScrollView
)

// MeasureFunc is the leaf content measurement contract: given the
// constraints available on each axis, return a concrete content size or an
// error.
type MeasureFunc func(constraints geom.Size[geom.Number]) (geom.Size[float32], error)

// Layout is the resolved geometry written back into a node once
// ComputeLayout completes.
type Layout struct {
	Order    uint32
	Size     geom.Size[float32]
	Location geom.Point[float32]
}

// Cache memoizes one layout computation keyed on the inputs that can
// invalidate it. A cache hit requires all three key fields to match
// exactly and the node's dirty bit to be clear.
type Cache struct {
	Valid         bool
	NodeSize      geom.Size[geom.Number]
	ParentSize    geom.Size[geom.Number]
	PerformLayout bool
	Layout        Layout
}

// node is the per-slot record held by Forest.nodes. Exported accessors live
// on Forest, not on node, so the arena remains the single point of mutation
// and can keep dirty-propagation and adjacency invariants coupled to every
// write.
type node struct {
	kind    Kind
	style   style.Style
	measure MeasureFunc

	layout  Layout
	cache   Cache
	isDirty bool

	// scrollView mirrors kind == KindScrollView, kept as a separate bool
	// rather than re-deriving it from kind on every offset application,
	// since it is checked once per container per layout pass.
	scrollView bool

	// x, y, bottom, right are a host-assigned translation/clip rect applied
	// on top of computed layout — see Forest.SetPos. The algorithm never
	// reads these; they exist purely for a rendering client to stash
	// scroll-clip extents alongside a node without touching Layout.
	x, y, bottom, right float32

	// offset is the scroll-view accumulator applied to item placement
	// when scrollView is true.
	offset float32

	// cacheElCount/cacheFarestElement are host bookkeeping for scrollable
	// content extent; the algorithm never reads them, only Forest.SetCache
	// writes them.
	cacheElCount       uint32
	cacheFarestElement float32
}

func newNode(kind Kind, s style.Style, measure MeasureFunc) node {
	return node{
		kind:       kind,
		style:      s,
		measure:    measure,
		isDirty:    true,
		scrollView: kind == KindScrollView,
	}
}
