package algorithm

import (
	"fmt"

	"github.com/phoenix-tui/flexlayout/geom"
	"github.com/phoenix-tui/flexlayout/internal/forest"
	"github.com/phoenix-tui/flexlayout/style"
)

// MeasureError wraps the error returned by a host measure callback.
// Layouts already written during the same pass, before the callback
// failed, are not rolled back.
type MeasureError struct {
	Node forest.NodeID
	Err  error
}

func (e *MeasureError) Error() string {
	return fmt.Sprintf("flexlayout: measure callback for node %d: %v", e.Node, e.Err)
}

func (e *MeasureError) Unwrap() error { return e.Err }

// ComputeLayout resolves id's own box against available, lays out its
// entire subtree, and writes every reachable node's Layout into f.
func ComputeLayout(f *forest.Forest, id forest.NodeID, available geom.Size[geom.Number]) error {
	size, err := computeNode(f, id, available, available)
	if err != nil {
		return err
	}
	f.SetLayout(id, forest.Layout{Order: 0, Size: size, Location: geom.Point[float32]{}})
	return nil
}

// computeNode resolves id's outer (border-box) size and, for containers,
// recursively lays out and positions its descendants. It does not write
// id's own Layout — the caller (either ComputeLayout for the root, or the
// container computing id as one of its items) owns id's Location and does
// that after computeNode returns.
func computeNode(f *forest.Forest, id forest.NodeID, available, parentSize geom.Size[geom.Number]) (geom.Size[float32], error) {
	if cache := f.LayoutCache(id); cache.Valid && !f.IsDirty(id) &&
		numSizeEqual(cache.NodeSize, available) && numSizeEqual(cache.ParentSize, parentSize) {
		return cache.Layout.Size, nil
	}

	var (
		size geom.Size[float32]
		err  error
	)
	switch f.Kind(id) {
	case forest.KindLeaf:
		size, err = measureLeaf(f, id, available, parentSize)
	default:
		size, err = computeContainer(f, id, available, parentSize)
	}
	if err != nil {
		return geom.Size[float32]{}, err
	}

	f.SetLayoutCache(id, forest.Cache{
		Valid:         true,
		NodeSize:      available,
		ParentSize:    parentSize,
		PerformLayout: true,
		Layout:        forest.Layout{Size: size},
	})
	f.ClearDirty(id)
	return size, nil
}

func numSizeEqual(a, b geom.Size[geom.Number]) bool {
	return numEqual(a.Width, b.Width) && numEqual(a.Height, b.Height)
}

func numEqual(a, b geom.Number) bool {
	av, aok := a.Value()
	bv, bok := b.Value()
	if aok != bok {
		return false
	}
	if !aok {
		return true
	}
	return av == bv
}

// measureLeaf resolves a leaf's border-box size: explicit style.Size wins
// outright; otherwise the available space (less margin) is used, as
// computeContainer does for a container; on an axis where neither is
// defined the measure callback (if any) supplies the content size; a leaf
// with none of these is zero on that axis.
func measureLeaf(f *forest.Forest, id forest.NodeID, available, parentSize geom.Size[geom.Number]) (geom.Size[float32], error) {
	st := f.Style(id)
	margin := resolveEdges(st.Margin, parentSize.Width, parentSize.Height)
	padding := resolveEdges(st.Padding, parentSize.Width, parentSize.Height)
	border := resolveEdges(st.Border, parentSize.Width, parentSize.Height)

	outerAvailable := geom.Size[geom.Number]{
		Width:  availableMinusMargin(available.Width, margin.horizontal()),
		Height: availableMinusMargin(available.Height, margin.vertical()),
	}

	width := resolveSizeAxis(st.Size.Width, parentSize.Width)
	height := resolveSizeAxis(st.Size.Height, parentSize.Height)
	width = clampNumber(width, st.MinSize.Width, st.MaxSize.Width, parentSize.Width)
	height = clampNumber(height, st.MinSize.Height, st.MaxSize.Height, parentSize.Height)
	applyAspectRatio(st.AspectRatio, &width, &height)
	if !width.IsDefined() {
		width = clampNumber(outerAvailable.Width, st.MinSize.Width, st.MaxSize.Width, parentSize.Width)
	}
	if !height.IsDefined() {
		height = clampNumber(outerAvailable.Height, st.MinSize.Height, st.MaxSize.Height, parentSize.Height)
	}

	if (!width.IsDefined() || !height.IsDefined()) && f.Measure(id) != nil {
		contentBoxAvailable := geom.Size[geom.Number]{
			Width:  subtractInsets(outerAvailable.Width, padding.horizontal()+border.horizontal()),
			Height: subtractInsets(outerAvailable.Height, padding.vertical()+border.vertical()),
		}
		if width.IsDefined() {
			contentBoxAvailable.Width = subtractInsets(width, padding.horizontal()+border.horizontal())
		}
		if height.IsDefined() {
			contentBoxAvailable.Height = subtractInsets(height, padding.vertical()+border.vertical())
		}
		measured, err := f.Measure(id)(contentBoxAvailable)
		if err != nil {
			return geom.Size[float32]{}, &MeasureError{Node: id, Err: err}
		}
		if !width.IsDefined() {
			width = geom.Defined(measured.Width + padding.horizontal() + border.horizontal())
			width = geom.Defined(clampFloat(width.OrElse(0), st.MinSize.Width, st.MaxSize.Width, parentSize.Width))
		}
		if !height.IsDefined() {
			height = geom.Defined(measured.Height + padding.vertical() + border.vertical())
			height = geom.Defined(clampFloat(height.OrElse(0), st.MinSize.Height, st.MaxSize.Height, parentSize.Height))
		}
	}

	return geom.Size[float32]{
		Width:  width.OrElse(0),
		Height: height.OrElse(0),
	}, nil
}

func subtractInsets(v geom.Number, insets float32) geom.Number {
	if x, ok := v.Value(); ok {
		r := x - insets
		if r < 0 {
			r = 0
		}
		return geom.Defined(r)
	}
	return geom.Undefined
}

func applyAspectRatio(ratio geom.Number, width, height *geom.Number) {
	r, ok := ratio.Value()
	if !ok || r == 0 {
		return
	}
	w, wok := width.Value()
	h, hok := height.Value()
	switch {
	case wok && !hok:
		*height = geom.Defined(w / r)
	case hok && !wok:
		*width = geom.Defined(h * r)
	}
}

// computeContainer resolves a single flex container's own size and lays
// out everything beneath it: basis resolution, line wrapping, flexible
// length distribution, cross-axis sizing and alignment, main-axis
// placement, absolute items, and recursion into each child's own subtree.
func computeContainer(f *forest.Forest, id forest.NodeID, available, parentSize geom.Size[geom.Number]) (geom.Size[float32], error) {
	st := f.Style(id)
	horizontalMain := st.FlexDirection.IsHorizontal()

	margin := resolveEdges(st.Margin, parentSize.Width, parentSize.Height)
	padding := resolveEdges(st.Padding, parentSize.Width, parentSize.Height)
	border := resolveEdges(st.Border, parentSize.Width, parentSize.Height)
	paddingBorder := edges{
		start:  padding.start + border.start,
		end:    padding.end + border.end,
		top:    padding.top + border.top,
		bottom: padding.bottom + border.bottom,
	}

	// Phase 1 — the container's own border-box size.
	outerAvailable := geom.Size[geom.Number]{
		Width:  availableMinusMargin(available.Width, margin.horizontal()),
		Height: availableMinusMargin(available.Height, margin.vertical()),
	}
	widthN := resolveSizeAxis(st.Size.Width, parentSize.Width)
	heightN := resolveSizeAxis(st.Size.Height, parentSize.Height)
	if !widthN.IsDefined() {
		widthN = outerAvailable.Width
	}
	if !heightN.IsDefined() {
		heightN = outerAvailable.Height
	}
	widthN = clampNumber(widthN, st.MinSize.Width, st.MaxSize.Width, parentSize.Width)
	heightN = clampNumber(heightN, st.MinSize.Height, st.MaxSize.Height, parentSize.Height)

	innerWidth := subtractInsets(widthN, paddingBorder.horizontal())
	innerHeight := subtractInsets(heightN, paddingBorder.vertical())

	// Phase 2 — split children into flex items and absolute items. Each
	// kept child (flex or absolute) gets the next slot in a single
	// document-order counter, so Order stays a child's original index
	// among all non-display:none siblings regardless of which list it
	// ends up in.
	children := f.ChildrenRef(id)
	var flexItems []*item
	var absoluteItems []forest.NodeID
	var absoluteOrders []uint32
	order := uint32(0)
	for _, c := range children {
		cs := f.Style(c)
		if cs.IsNone() {
			continue
		}
		if cs.IsAbsolute() {
			absoluteItems = append(absoluteItems, c)
			absoluteOrders = append(absoluteOrders, order)
			order++
			continue
		}
		it := &item{id: c, style: cs, order: order}
		order++
		it.margin = resolveEdges(cs.Margin, innerWidth, innerHeight)
		it.padding = resolveEdges(cs.Padding, innerWidth, innerHeight)
		it.border = resolveEdges(cs.Border, innerWidth, innerHeight)
		flexItems = append(flexItems, it)
	}

	innerMain, innerCross := sizeMainCross(horizontalMain, innerWidth, innerHeight)

	// Phase 3 — flex base size and hypothetical main size.
	for _, it := range flexItems {
		if err := resolveFlexBasis(f, it, horizontalMain, innerMain, innerCross); err != nil {
			return geom.Size[float32]{}, err
		}
	}

	// Phase 4 — collect into flex lines.
	lines := collectLines(flexItems, st.FlexWrap, innerMain)

	// If the container is content-sized on the main axis, there is no
	// free space to distribute: size the axis to the widest/tallest line.
	if !numAxisDefined(horizontalMain, innerWidth, innerHeight) {
		var maxLine float32
		for _, ln := range lines {
			total := lineOuterMainTotal(ln)
			if total > maxLine {
				maxLine = total
			}
		}
		innerMain = geom.Defined(maxLine)
		if horizontalMain {
			innerWidth = innerMain
		} else {
			innerHeight = innerMain
		}

		// The container's own min/max on this axis still applies to a
		// content-derived size (min/max always win over a resolved size,
		// auto-derived or not) — re-clamp the border-box
		// value and recompute the inner size from the clamped result.
		if horizontalMain {
			widthN = clampNumber(innerMain.AddFloat(paddingBorder.horizontal()), st.MinSize.Width, st.MaxSize.Width, parentSize.Width)
			innerWidth = subtractInsets(widthN, paddingBorder.horizontal())
			innerMain = innerWidth
		} else {
			heightN = clampNumber(innerMain.AddFloat(paddingBorder.vertical()), st.MinSize.Height, st.MaxSize.Height, parentSize.Height)
			innerHeight = subtractInsets(heightN, paddingBorder.vertical())
			innerMain = innerHeight
		}
	}

	// Phase 5 — resolve flexible lengths per line.
	innerMainFloat := innerMain.OrElse(0)
	for _, ln := range lines {
		resolveFlexibleLengths(ln, horizontalMain, innerMainFloat)
	}

	// Phase 6 — cross-axis sizing (items, then lines, then align-content).
	if err := resolveCrossSizes(f, lines, horizontalMain, innerMain, innerCross, st.AlignItems); err != nil {
		return geom.Size[float32]{}, err
	}
	if !numAxisDefined(!horizontalMain, innerWidth, innerHeight) {
		var total float32
		for _, ln := range lines {
			total += ln.crossSize
		}
		innerCross = geom.Defined(total)
		if horizontalMain {
			innerHeight = innerCross
		} else {
			innerWidth = innerCross
		}

		if horizontalMain {
			heightN = clampNumber(innerCross.AddFloat(paddingBorder.vertical()), st.MinSize.Height, st.MaxSize.Height, parentSize.Height)
			innerHeight = subtractInsets(heightN, paddingBorder.vertical())
			innerCross = innerHeight
		} else {
			widthN = clampNumber(innerCross.AddFloat(paddingBorder.horizontal()), st.MinSize.Width, st.MaxSize.Width, parentSize.Width)
			innerWidth = subtractInsets(widthN, paddingBorder.horizontal())
			innerCross = innerWidth
		}
	}
	positionCrossAxis(lines, horizontalMain, st.AlignItems)
	distributeAlignContent(lines, innerCross.OrElse(0), st.AlignContent, st.FlexWrap == style.WrapReverse)

	// Phase 7 — main-axis placement within each line.
	for _, ln := range lines {
		justifyLine(ln, horizontalMain, innerMainFloat, st.JustifyContent, st.FlexDirection.IsReversed())
	}

	// Phase 9/10 — recurse into each flex item with its resolved content
	// box as the new available space, then write its Layout.
	scrollOffset := float32(0)
	if f.IsScrollView(id) {
		scrollOffset = f.ScrollOffset(id)
	}
	var containerSize geom.Size[float32]
	if !widthN.IsDefined() {
		containerSize.Width = innerWidth.OrElse(0) + paddingBorder.horizontal()
	} else {
		containerSize.Width = widthN.OrElse(0)
	}
	if !heightN.IsDefined() {
		containerSize.Height = innerHeight.OrElse(0) + paddingBorder.vertical()
	} else {
		containerSize.Height = heightN.OrElse(0)
	}

	for _, ln := range lines {
		for _, it := range ln.items {
			mainPos, crossPos := it.mainPos, it.crossPos+ln.crossOffset
			x, y := axisToXY(horizontalMain, mainPos, crossPos)
			x += paddingBorder.start
			y += paddingBorder.top
			if f.IsScrollView(id) {
				if horizontalMain {
					y -= scrollOffset
				} else {
					x -= scrollOffset
				}
			}

			childAvailable := geom.Size[geom.Number]{
				Width:  geom.Defined(widthFor(horizontalMain, it.targetMain, it.crossSize)),
				Height: geom.Defined(heightFor(horizontalMain, it.targetMain, it.crossSize)),
			}
			childParentSize := geom.Size[geom.Number]{Width: innerWidth, Height: innerHeight}
			childSize, err := computeNode(f, it.id, childAvailable, childParentSize)
			if err != nil {
				return geom.Size[float32]{}, err
			}
			f.SetLayout(it.id, forest.Layout{
				Order:    it.order,
				Size:     childSize,
				Location: geom.Point[float32]{X: x, Y: y},
			})
		}
	}

	// Phase 8 — absolute items, positioned against the container's inner
	// box, independent of flex flow.
	for i, c := range absoluteItems {
		if err := layoutAbsoluteItem(f, c, absoluteOrders[i], containerSize, paddingBorder); err != nil {
			return geom.Size[float32]{}, err
		}
	}

	return containerSize, nil
}

func sizeMainCross(horizontalMain bool, width, height geom.Number) (main, cross geom.Number) {
	if horizontalMain {
		return width, height
	}
	return height, width
}

func numAxisDefined(horizontalMain bool, width, height geom.Number) bool {
	if horizontalMain {
		return width.IsDefined()
	}
	return height.IsDefined()
}

func widthFor(horizontalMain bool, main, cross float32) float32 {
	if horizontalMain {
		return main
	}
	return cross
}

func heightFor(horizontalMain bool, main, cross float32) float32 {
	if horizontalMain {
		return cross
	}
	return main
}

func axisToXY(horizontalMain bool, main, cross float32) (x, y float32) {
	if horizontalMain {
		return main, cross
	}
	return cross, main
}

func lineOuterMainTotal(ln *flexLine) float32 {
	var total float32
	for _, it := range ln.items {
		total += it.outerHypotheticalMain
	}
	return total
}
