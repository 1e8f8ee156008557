// Package algorithm implements the flexbox layout core: per-container
// main/cross axis resolution, wrapping, growing,
// shrinking, min/max clamping, justify/align, absolute positioning, and
// scroll-view offset application. It operates on an *forest.Forest by
// NodeID and writes results back with Forest.SetLayout; it has no public
// surface of its own, reached only through flexlayout.Tree.ComputeLayout.
package algorithm

import (
	"github.com/phoenix-tui/flexlayout/geom"
	"github.com/phoenix-tui/flexlayout/style"
)

// edges is a resolved (always-defined) four-sided inset, used once margin,
// padding, or border has been resolved against a containing block.
type edges struct {
	start, end, top, bottom float32
}

func (e edges) horizontal() float32 { return e.start + e.end }
func (e edges) vertical() float32   { return e.top + e.bottom }

// resolveEdges resolves a geom.Rect[style.Dimension] (margin/padding/border)
// against a reference size for each axis. Undefined/Auto resolves to 0 —
// margin/padding/border never "fall back" to the available space the way a
// Size dimension does.
func resolveEdges(r geom.Rect[style.Dimension], refWidth, refHeight geom.Number) edges {
	return edges{
		start:  dimOrZero(r.Start, refWidth),
		end:    dimOrZero(r.End, refWidth),
		top:    dimOrZero(r.Top, refHeight),
		bottom: dimOrZero(r.Bottom, refHeight),
	}
}

func dimOrZero(d style.Dimension, ref geom.Number) float32 {
	return d.ResolveAgainst(ref).OrElse(0)
}

// resolveSizeAxis resolves a single style.Dimension size constraint against
// the containing block's corresponding axis.
func resolveSizeAxis(d style.Dimension, parentAxis geom.Number) geom.Number {
	return d.ResolveAgainst(parentAxis)
}

// clampNumber clamps value (possibly undefined) between resolved min/max
// Dimensions. An undefined bound does not constrain.
func clampNumber(value geom.Number, min, max style.Dimension, parentAxis geom.Number) geom.Number {
	return value.Clamp(min.ResolveAgainst(parentAxis), max.ResolveAgainst(parentAxis))
}

// clampFloat clamps a concrete float between resolved min/max Dimensions.
func clampFloat(value float32, min, max style.Dimension, parentAxis geom.Number) float32 {
	lo := min.ResolveAgainst(parentAxis)
	hi := max.ResolveAgainst(parentAxis)
	if v, ok := lo.Value(); ok && value < v {
		value = v
	}
	if v, ok := hi.Value(); ok && value > v {
		value = v
	}
	return value
}

// availableMinusMargin subtracts a resolved margin total from an available
// space component, never going below zero.
func availableMinusMargin(avail geom.Number, margin float32) geom.Number {
	if v, ok := avail.Value(); ok {
		r := v - margin
		if r < 0 {
			r = 0
		}
		return geom.Defined(r)
	}
	return geom.Undefined
}
