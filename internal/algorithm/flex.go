package algorithm

import (
	"github.com/phoenix-tui/flexlayout/geom"
	"github.com/phoenix-tui/flexlayout/internal/forest"
)

func mainMarginSum(e edges, horizontalMain bool) float32 {
	if horizontalMain {
		return e.horizontal()
	}
	return e.vertical()
}

func crossMarginSum(e edges, horizontalMain bool) float32 {
	if horizontalMain {
		return e.vertical()
	}
	return e.horizontal()
}

// resolveFlexBasis resolves an item's flex base size: its own flex-basis
// if set, else its main-axis Size, else its content
// size measured with the main axis unconstrained and the cross axis fixed
// to whatever is already known (a recursive, content-sizing call into
// computeNode for container items).
func resolveFlexBasis(f *forest.Forest, it *item, horizontalMain bool, innerMain, innerCross geom.Number) error {
	basisDim := it.style.FlexBasis
	if basisDim.IsAuto() {
		basisDim = sizeAxis(it.style.Size, horizontalMain)
	}
	basis := basisDim.ResolveAgainst(innerMain)

	if !basis.IsDefined() {
		crossDim := sizeAxis(it.style.Size, !horizontalMain)
		cross := crossDim.ResolveAgainst(innerCross)
		if !cross.IsDefined() {
			cross = innerCross
		}
		available := geom.SizeFromMainCross[geom.Number](horizontalMain, geom.Undefined, cross)
		parentSize := geom.SizeFromMainCross[geom.Number](horizontalMain, innerMain, innerCross)
		size, err := computeNode(f, it.id, available, parentSize)
		if err != nil {
			return err
		}
		main, _ := size.MainCross(horizontalMain)
		basis = geom.Defined(main)
	}

	minD, maxD := it.minMaxMain(horizontalMain, innerMain)
	hypothetical := basis.Clamp(minD, maxD)

	it.flexBasis = basis.OrElse(0)
	it.hypotheticalMain = hypothetical.OrElse(0)
	it.outerHypotheticalMain = it.hypotheticalMain + mainMarginSum(it.margin, horizontalMain)
	it.targetMain = it.hypotheticalMain
	return nil
}

// resolveFlexibleLengths runs the freeze/redistribute loop that grows
// items to fill, or shrinks them to fit,
// the line's main-axis free space, honoring flex-grow, flex-shrink
// (scaled by flex basis), and each item's min/max main clamp.
func resolveFlexibleLengths(ln *flexLine, horizontalMain bool, innerMain float32) {
	for _, it := range ln.items {
		it.targetMain = it.hypotheticalMain
		it.frozen = false
	}

	var used float32
	for _, it := range ln.items {
		used += it.outerHypotheticalMain
	}
	freeSpace := innerMain - used
	growing := freeSpace > 0

	for _, it := range ln.items {
		factor := it.style.FlexShrink
		if growing {
			factor = it.style.FlexGrow
		}
		if factor == 0 {
			it.frozen = true
		}
	}

	const maxIterations = 16
	for iter := 0; iter < maxIterations; iter++ {
		allFrozen := true
		for _, it := range ln.items {
			if !it.frozen {
				allFrozen = false
				break
			}
		}
		if allFrozen {
			break
		}

		var usedNow, sumGrow, sumScaledShrink float32
		for _, it := range ln.items {
			if it.frozen {
				usedNow += it.targetMain + mainMarginSum(it.margin, horizontalMain)
				continue
			}
			usedNow += it.hypotheticalMain + mainMarginSum(it.margin, horizontalMain)
			sumGrow += it.style.FlexGrow
			sumScaledShrink += it.style.FlexShrink * it.flexBasis
		}
		remaining := innerMain - usedNow

		if (growing && (remaining <= 0 || sumGrow == 0)) || (!growing && (remaining >= 0 || sumScaledShrink == 0)) {
			for _, it := range ln.items {
				if !it.frozen {
					it.targetMain = it.hypotheticalMain
					it.frozen = true
				}
			}
			break
		}

		violated := false
		for _, it := range ln.items {
			if it.frozen {
				continue
			}
			var delta float32
			if growing {
				delta = remaining * (it.style.FlexGrow / sumGrow)
			} else {
				delta = remaining * (it.style.FlexShrink * it.flexBasis / sumScaledShrink)
			}
			proposed := it.hypotheticalMain + delta
			minD, maxD := it.minMaxMain(horizontalMain, geom.Defined(innerMain))
			clamped := geom.Defined(proposed).Clamp(minD, maxD).OrElse(proposed)
			it.targetMain = clamped
			if clamped != proposed {
				it.frozen = true
				violated = true
			}
		}
		if !violated {
			break
		}
	}

	for _, it := range ln.items {
		it.outerHypotheticalMain = it.targetMain + mainMarginSum(it.margin, horizontalMain)
	}
}
