package algorithm

import (
	"github.com/phoenix-tui/flexlayout/style"
)

// justifyLine places items end to end along the main axis, with
// justify-content distributing any leftover
// space as leading space, trailing space, or inter-item gaps. reversed
// (row-reverse/column-reverse) walks the line back to front while still
// measuring free space the same way.
func justifyLine(ln *flexLine, horizontalMain bool, containerMain float32, justify style.Justify, reversed bool) {
	items := ln.items
	n := len(items)
	if n == 0 {
		return
	}

	var used float32
	for _, it := range items {
		used += it.targetMain + mainMarginSum(it.margin, horizontalMain)
	}
	free := containerMain - used
	if free < 0 {
		free = 0
	}

	var pos, gap float32
	switch justify {
	case style.JustifyFlexEnd:
		pos = free
	case style.JustifyCenter:
		pos = free / 2
	case style.JustifySpaceBetween:
		if n > 1 {
			gap = free / float32(n-1)
		}
	case style.JustifySpaceAround:
		gap = free / float32(n)
		pos = gap / 2
	case style.JustifySpaceEvenly:
		gap = free / float32(n+1)
		pos = gap
	default:
		pos = 0
	}

	order := items
	if reversed {
		order = make([]*item, n)
		for i, it := range items {
			order[n-1-i] = it
		}
	}

	for _, it := range order {
		pos += mainStartMargin(it.margin, horizontalMain)
		it.mainPos = pos
		pos += it.targetMain + mainEndMargin(it.margin, horizontalMain) + gap
	}
}

func mainStartMargin(e edges, horizontalMain bool) float32 {
	if horizontalMain {
		return e.start
	}
	return e.top
}

func mainEndMargin(e edges, horizontalMain bool) float32 {
	if horizontalMain {
		return e.end
	}
	return e.bottom
}
