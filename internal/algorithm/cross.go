package algorithm

import (
	"github.com/phoenix-tui/flexlayout/geom"
	"github.com/phoenix-tui/flexlayout/internal/forest"
	"github.com/phoenix-tui/flexlayout/style"
)

// resolveCrossSizes resolves each item's cross size: its own Size if
// set, else stretches to the
// line (align-items/align-self stretch, the default), else is measured
// from content with the main axis now fixed to its resolved target size.
// A line's cross size is the largest outer cross size among its items,
// except for the single-line case, which fills the container's cross
// size exactly when that size is definite.
func resolveCrossSizes(f *forest.Forest, lines []*flexLine, horizontalMain bool, innerMain, innerCross geom.Number, alignItems style.Align) error {
	singleLine := len(lines) == 1
	for _, ln := range lines {
		var maxOuterCross float32
		for _, it := range ln.items {
			align := it.style.ResolvedAlignSelf(alignItems)
			crossDim := sizeAxis(it.style.Size, !horizontalMain)
			resolved := crossDim.ResolveAgainst(innerCross)
			minD, maxD := it.minMaxCross(horizontalMain, innerCross)

			if !resolved.IsDefined() && align == style.AlignStretch && singleLine {
				if v, ok := innerCross.Value(); ok {
					resolved = geom.Defined(v - crossMarginSum(it.margin, horizontalMain))
				}
			}

			if !resolved.IsDefined() {
				available := geom.SizeFromMainCross[geom.Number](horizontalMain, geom.Defined(it.targetMain), geom.Undefined)
				parentSize := geom.SizeFromMainCross[geom.Number](horizontalMain, innerMain, innerCross)
				size, err := computeNode(f, it.id, available, parentSize)
				if err != nil {
					return err
				}
				_, cross := size.MainCross(horizontalMain)
				resolved = geom.Defined(cross)
			}

			resolved = resolved.Clamp(minD, maxD)
			it.crossSize = resolved.OrElse(0)
			it.outerCross = it.crossSize + crossMarginSum(it.margin, horizontalMain)
			if it.outerCross > maxOuterCross {
				maxOuterCross = it.outerCross
			}
		}

		if singleLine {
			if v, ok := innerCross.Value(); ok {
				ln.crossSize = v
			} else {
				ln.crossSize = maxOuterCross
			}
		} else {
			ln.crossSize = maxOuterCross
		}

		for _, it := range ln.items {
			if it.style.ResolvedAlignSelf(alignItems) != style.AlignStretch ||
				sizeAxis(it.style.Size, !horizontalMain).ResolveAgainst(innerCross).IsDefined() {
				continue
			}
			minD, maxD := it.minMaxCross(horizontalMain, innerCross)
			stretched := geom.Defined(ln.crossSize - crossMarginSum(it.margin, horizontalMain)).Clamp(minD, maxD)
			it.crossSize = stretched.OrElse(0)
			it.outerCross = it.crossSize + crossMarginSum(it.margin, horizontalMain)
		}
	}
	return nil
}

// positionCrossAxis sets each item's crossPos (relative to its own
// line's start, before the line's own crossOffset is added) according to
// its resolved align-self: flex-start sits at the line's leading edge,
// baseline is treated as flex-start (no font-metric baseline tracking),
// flex-end sits at the trailing edge. stretch behaves as flex-start when
// it actually filled the line (free == 0) but centers an item whose
// cross size could not stretch (an explicit, non-auto cross dimension
// smaller than the line) — matching the item's own resolved cross size
// rather than pinning it, same as center.
func positionCrossAxis(lines []*flexLine, horizontalMain bool, alignItems style.Align) {
	for _, ln := range lines {
		for _, it := range ln.items {
			align := it.style.ResolvedAlignSelf(alignItems)
			startMargin := crossStartMargin(it.margin, horizontalMain)
			endMargin := crossEndMargin(it.margin, horizontalMain)
			free := ln.crossSize - it.crossSize - startMargin - endMargin
			if free < 0 {
				free = 0
			}
			switch align {
			case style.AlignFlexEnd:
				it.crossPos = startMargin + free
			case style.AlignCenter, style.AlignStretch:
				it.crossPos = startMargin + free/2
			default:
				it.crossPos = startMargin
			}
		}
	}
}

func crossStartMargin(e edges, horizontalMain bool) float32 {
	if horizontalMain {
		return e.top
	}
	return e.start
}

func crossEndMargin(e edges, horizontalMain bool) float32 {
	if horizontalMain {
		return e.bottom
	}
	return e.end
}

// distributeAlignContent distributes leftover cross-axis space among
// lines: align-content distributes it the
// same way justify-content distributes leftover main-axis space among
// items, plus a stretch mode that grows every line instead of spacing
// them. A single line ignores align-content entirely (it already fills
// innerCross via resolveCrossSizes).
func distributeAlignContent(lines []*flexLine, innerCross float32, align style.Align, wrapReverse bool) {
	if len(lines) <= 1 {
		if len(lines) == 1 {
			lines[0].crossOffset = 0
		}
		return
	}

	var used float32
	for _, ln := range lines {
		used += ln.crossSize
	}
	free := innerCross - used
	if free < 0 {
		free = 0
	}
	n := len(lines)

	if align == style.AlignStretch && free > 0 {
		extra := free / float32(n)
		for _, ln := range lines {
			ln.crossSize += extra
		}
		free = 0
	}

	var pos, gap float32
	switch align {
	case style.AlignFlexEnd:
		pos = free
	case style.AlignCenter:
		pos = free / 2
	case style.AlignSpaceBetween:
		if n > 1 {
			gap = free / float32(n-1)
		}
	case style.AlignSpaceAround:
		gap = free / float32(n)
		pos = gap / 2
	default:
		pos = 0
	}

	for _, ln := range lines {
		ln.crossOffset = pos
		pos += ln.crossSize + gap
	}
}
