package algorithm

import (
	"math"

	"github.com/phoenix-tui/flexlayout/geom"
	"github.com/phoenix-tui/flexlayout/internal/forest"
)

// RoundLayout rounds every resolved Layout in root's subtree to integer
// pixel boundaries without introducing gaps between adjacent siblings: a
// pre-order walk that rounds each node's absolute edges to the nearest
// pixel and derives its rounded size from the difference between its
// rounded far edge and its rounded near edge, rather than rounding width
// and height directly. This is what prevents independently-rounded
// adjacent items from leaving (or overlapping by) a one-pixel gap: two
// items whose shared edge rounds to the same pixel always produce
// touching rounded boxes.
func RoundLayout(f *forest.Forest, id forest.NodeID) {
	roundSubtree(f, id, 0, 0)
}

func roundSubtree(f *forest.Forest, id forest.NodeID, parentAbsLeft, parentAbsTop float32) {
	l := f.Layout(id)
	absLeft := parentAbsLeft + l.Location.X
	absTop := parentAbsTop + l.Location.Y

	roundedLeft := roundHalfUp(absLeft)
	roundedTop := roundHalfUp(absTop)
	roundedWidth := roundHalfUp(absLeft+l.Size.Width) - roundedLeft
	roundedHeight := roundHalfUp(absTop+l.Size.Height) - roundedTop

	l.Location = geom.Point[float32]{
		X: roundedLeft - roundHalfUp(parentAbsLeft),
		Y: roundedTop - roundHalfUp(parentAbsTop),
	}
	l.Size = geom.Size[float32]{Width: roundedWidth, Height: roundedHeight}
	f.SetLayout(id, l)

	for _, c := range f.ChildrenRef(id) {
		roundSubtree(f, c, absLeft, absTop)
	}
}

func roundHalfUp(v float32) float32 {
	return float32(math.Floor(float64(v) + 0.5))
}
