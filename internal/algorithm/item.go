package algorithm

import (
	"github.com/phoenix-tui/flexlayout/geom"
	"github.com/phoenix-tui/flexlayout/internal/forest"
	"github.com/phoenix-tui/flexlayout/style"
)

// item is one flex item's working state for a single computeContainer call.
// It is rebuilt from scratch every call; nothing here is cached across
// layout passes (the Forest-level Cache is what avoids redundant work
// across repeated ComputeLayout calls with unchanged inputs).
type item struct {
	id    forest.NodeID
	style style.Style
	order uint32 // original position among this container's non-display:none children (flex and absolute share one counter; see computeContainer)

	margin  edges
	padding edges
	border  edges

	// flexBasis is the Phase 3 flex base size, main-axis content-box.
	flexBasis float32
	// hypotheticalMain is flexBasis clamped by min/max main (Phase 3).
	hypotheticalMain float32
	// outerHypotheticalMain adds main-axis margin to hypotheticalMain.
	outerHypotheticalMain float32

	// targetMain is the item's main size after Phase 5 grow/shrink
	// resolution; starts equal to hypotheticalMain.
	targetMain float32
	frozen     bool

	// crossSize is the item's resolved cross-axis content-box size
	// (Phase 6); outerCross adds cross-axis margin.
	crossSize  float32
	outerCross float32

	// mainPos/crossPos are the item's content-box-relative offsets within
	// the container, set in Phase 7 and Phase 6 respectively, before
	// padding/border of the container itself is added back in by the
	// caller.
	mainPos, crossPos float32
}

// minMaxMain resolves this item's main-axis min/max against the
// container's inner main size (for percentage resolution).
func (it *item) minMaxMain(horizontalMain bool, innerMain geom.Number) (geom.Number, geom.Number) {
	minD, maxD := axisDimensions(it.style.MinSize, it.style.MaxSize, horizontalMain)
	return minD.ResolveAgainst(innerMain), maxD.ResolveAgainst(innerMain)
}

// minMaxCross resolves this item's cross-axis min/max against the
// container's inner cross size.
func (it *item) minMaxCross(horizontalMain bool, innerCross geom.Number) (geom.Number, geom.Number) {
	minD, maxD := axisDimensions(it.style.MinSize, it.style.MaxSize, !horizontalMain)
	return minD.ResolveAgainst(innerCross), maxD.ResolveAgainst(innerCross)
}

func axisDimensions(minSize, maxSize geom.Size[style.Dimension], horizontal bool) (style.Dimension, style.Dimension) {
	if horizontal {
		return minSize.Width, maxSize.Width
	}
	return minSize.Height, maxSize.Height
}

func sizeAxis(s geom.Size[style.Dimension], horizontal bool) style.Dimension {
	if horizontal {
		return s.Width
	}
	return s.Height
}
