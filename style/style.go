package style

import "github.com/phoenix-tui/flexlayout/geom"

// Style is the full set of layout-affecting properties a node can carry.
// It is an immutable value object: every With* method returns a modified
// copy, so a Style can be built once with a fluent chain and then shared
// freely across nodes without aliasing surprises.
//
// The zero value is usable but is not the default Style: it has display
// flex, position relative, ltr, row direction, no wrap, flex-start
// justify and flex-grow 0, but also flex-shrink 0, AlignAuto in every
// align field, and every Dimension at the Go zero value, which is
// Undefined, not Auto (see dimension.go). New returns the defaults:
// flex-shrink 1, align-items stretch, and Auto for FlexBasis, Size,
// MinSize, MaxSize and Position.
type Style struct {
	Display       Display
	PositionType  PositionType
	Direction     Direction
	FlexDirection FlexDirection
	FlexWrap      FlexWrap
	JustifyContent Justify
	AlignItems    Align
	AlignSelf     Align
	AlignContent  Align

	FlexGrow   float32
	FlexShrink float32
	FlexBasis  Dimension

	Size    geom.Size[Dimension]
	MinSize geom.Size[Dimension]
	MaxSize geom.Size[Dimension]

	Margin   geom.Rect[Dimension]
	Padding  geom.Rect[Dimension]
	Border   geom.Rect[Dimension]
	Position geom.Rect[Dimension]

	AspectRatio geom.Number
}

// New returns the default Style: a flex item/container with shrink-only
// flexibility (grow 0, shrink 1), auto sizing on every axis, and
// stretch-by-inheritance alignment.
func New() Style {
	return Style{
		FlexShrink: 1,
		FlexBasis:  AutoDimension,
		AlignSelf:  AlignAuto,
		AlignItems: AlignStretch,
		Size:       geom.Size[Dimension]{Width: AutoDimension, Height: AutoDimension},
		MinSize:    geom.Size[Dimension]{Width: AutoDimension, Height: AutoDimension},
		MaxSize:    geom.Size[Dimension]{Width: AutoDimension, Height: AutoDimension},
		Margin:     geom.Uniform(Points(0)),
		Padding:    geom.Uniform(Points(0)),
		Border:     geom.Uniform(Points(0)),
		Position:   geom.Uniform(AutoDimension),
	}
}

// WithDisplay returns a copy with Display set.
func (s Style) WithDisplay(d Display) Style { s.Display = d; return s }

// WithPositionType returns a copy with PositionType set.
func (s Style) WithPositionType(p PositionType) Style { s.PositionType = p; return s }

// WithDirection returns a copy with Direction set.
func (s Style) WithDirection(d Direction) Style { s.Direction = d; return s }

// WithFlexDirection returns a copy with FlexDirection set.
func (s Style) WithFlexDirection(d FlexDirection) Style { s.FlexDirection = d; return s }

// WithFlexWrap returns a copy with FlexWrap set.
func (s Style) WithFlexWrap(w FlexWrap) Style { s.FlexWrap = w; return s }

// WithJustifyContent returns a copy with JustifyContent set.
func (s Style) WithJustifyContent(j Justify) Style { s.JustifyContent = j; return s }

// WithAlignItems returns a copy with AlignItems set.
func (s Style) WithAlignItems(a Align) Style { s.AlignItems = a; return s }

// WithAlignSelf returns a copy with AlignSelf set.
func (s Style) WithAlignSelf(a Align) Style { s.AlignSelf = a; return s }

// WithAlignContent returns a copy with AlignContent set.
func (s Style) WithAlignContent(a Align) Style { s.AlignContent = a; return s }

// WithFlexGrow returns a copy with FlexGrow set.
func (s Style) WithFlexGrow(v float32) Style { s.FlexGrow = v; return s }

// WithFlexShrink returns a copy with FlexShrink set.
func (s Style) WithFlexShrink(v float32) Style { s.FlexShrink = v; return s }

// WithFlexBasis returns a copy with FlexBasis set.
func (s Style) WithFlexBasis(d Dimension) Style { s.FlexBasis = d; return s }

// WithSize returns a copy with Size set.
func (s Style) WithSize(sz geom.Size[Dimension]) Style { s.Size = sz; return s }

// WithWidth returns a copy with Size.Width set.
func (s Style) WithWidth(d Dimension) Style { s.Size.Width = d; return s }

// WithHeight returns a copy with Size.Height set.
func (s Style) WithHeight(d Dimension) Style { s.Size.Height = d; return s }

// WithMinSize returns a copy with MinSize set.
func (s Style) WithMinSize(sz geom.Size[Dimension]) Style { s.MinSize = sz; return s }

// WithMaxSize returns a copy with MaxSize set.
func (s Style) WithMaxSize(sz geom.Size[Dimension]) Style { s.MaxSize = sz; return s }

// WithMargin returns a copy with Margin set.
func (s Style) WithMargin(r geom.Rect[Dimension]) Style { s.Margin = r; return s }

// WithPadding returns a copy with Padding set.
func (s Style) WithPadding(r geom.Rect[Dimension]) Style { s.Padding = r; return s }

// WithBorder returns a copy with Border set.
func (s Style) WithBorder(r geom.Rect[Dimension]) Style { s.Border = r; return s }

// WithPosition returns a copy with the absolute-positioning inset Rect set.
func (s Style) WithPosition(r geom.Rect[Dimension]) Style { s.Position = r; return s }

// WithAspectRatio returns a copy with AspectRatio set.
func (s Style) WithAspectRatio(n geom.Number) Style { s.AspectRatio = n; return s }

// ResolvedAlignSelf returns AlignSelf, substituting the parent's AlignItems
// whenever AlignSelf is AlignAuto, its "inherit from the parent" value.
func (s Style) ResolvedAlignSelf(parentAlignItems Align) Align {
	if s.AlignSelf == AlignAuto {
		return parentAlignItems
	}
	return s.AlignSelf
}

// IsFlexItem reports whether this node participates in normal flex flow:
// displayed, and position:relative.
func (s Style) IsFlexItem() bool {
	return s.Display != DisplayNone && s.PositionType != PositionAbsolute
}

// IsAbsolute reports whether this node is taken out of flex flow.
func (s Style) IsAbsolute() bool {
	return s.Display != DisplayNone && s.PositionType == PositionAbsolute
}

// IsNone reports whether this node is excluded from layout entirely.
func (s Style) IsNone() bool {
	return s.Display == DisplayNone
}
