package algorithm

import (
	"github.com/phoenix-tui/flexlayout/geom"
	"github.com/phoenix-tui/flexlayout/internal/forest"
	"github.com/phoenix-tui/flexlayout/style"
)

type insetEdges struct {
	start, end, top, bottom geom.Number
}

func resolveInsetEdges(r geom.Rect[style.Dimension], refWidth, refHeight geom.Number) insetEdges {
	return insetEdges{
		start:  r.Start.ResolveAgainst(refWidth),
		end:    r.End.ResolveAgainst(refWidth),
		top:    r.Top.ResolveAgainst(refHeight),
		bottom: r.Bottom.ResolveAgainst(refHeight),
	}
}

// layoutAbsoluteItem sizes an absolutely positioned item like any other
// node (style size, else content), then places it against its containing
// block's content-box edges (inside the container's padding and border)
// using whichever of its start/end and top/bottom insets are set. An item
// with neither inset on an axis keeps the container's content-box origin
// on that axis — no static-position flow
// reconstruction is attempted.
func layoutAbsoluteItem(f *forest.Forest, id forest.NodeID, order uint32, containerSize geom.Size[float32], paddingBorder edges) error {
	st := f.Style(id)
	containingWidth := geom.Defined(containerSize.Width)
	containingHeight := geom.Defined(containerSize.Height)

	insets := resolveInsetEdges(st.Position, containingWidth, containingHeight)
	margin := resolveEdges(st.Margin, containingWidth, containingHeight)

	width := resolveSizeAxis(st.Size.Width, containingWidth)
	height := resolveSizeAxis(st.Size.Height, containingHeight)

	if !width.IsDefined() {
		if l, lok := insets.start.Value(); lok {
			if r, rok := insets.end.Value(); rok {
				width = geom.Defined(containerSize.Width - l - r - margin.horizontal())
			}
		}
	}
	if !height.IsDefined() {
		if t, tok := insets.top.Value(); tok {
			if b, bok := insets.bottom.Value(); bok {
				height = geom.Defined(containerSize.Height - t - b - margin.vertical())
			}
		}
	}
	width = clampNumber(width, st.MinSize.Width, st.MaxSize.Width, containingWidth)
	height = clampNumber(height, st.MinSize.Height, st.MaxSize.Height, containingHeight)

	available := geom.Size[geom.Number]{Width: width, Height: height}
	parentSize := geom.Size[geom.Number]{Width: containingWidth, Height: containingHeight}
	size, err := computeNode(f, id, available, parentSize)
	if err != nil {
		return err
	}

	x := paddingBorder.start + margin.start
	if sv, ok := insets.start.Value(); ok {
		x = paddingBorder.start + sv + margin.start
	} else if ev, ok := insets.end.Value(); ok {
		x = containerSize.Width - paddingBorder.end - ev - size.Width - margin.end
	}

	y := paddingBorder.top + margin.top
	if tv, ok := insets.top.Value(); ok {
		y = paddingBorder.top + tv + margin.top
	} else if bv, ok := insets.bottom.Value(); ok {
		y = containerSize.Height - paddingBorder.bottom - bv - size.Height - margin.bottom
	}

	f.SetLayout(id, forest.Layout{Order: order, Size: size, Location: geom.Point[float32]{X: x, Y: y}})
	return nil
}
