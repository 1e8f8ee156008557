package style

// Display controls whether a node participates in flex flow at all.
type Display uint8

const (
	// DisplayFlex lays the node out as a flex item/container (default).
	DisplayFlex Display = iota
	// DisplayNone removes the node from its parent's layout entirely, as
	// if it were not a child at all — it still occupies a forest slot and
	// can be dirtied, but Phase 2 never adds it to either the flex-item
	// or absolute-item list.
	DisplayNone
)

// PositionType controls whether a node flows with its siblings or is taken
// out of flow and positioned against its containing block's insets.
type PositionType uint8

const (
	// PositionRelative is normal flex flow (default).
	PositionRelative PositionType = iota
	// PositionAbsolute removes the node from flex flow; it is resolved in
	// Phase 8 against its Position inset rect instead.
	PositionAbsolute
)

// Direction names which physical side "inline start" maps to. The layout
// algorithm does not read it: Start is laid out on the left under either
// value.
type Direction uint8

const (
	// DirectionLTR is left-to-right (default): start == left.
	DirectionLTR Direction = iota
	// DirectionRTL is right-to-left: start == right.
	DirectionRTL
)

// FlexDirection chooses the main axis and its traversal order.
type FlexDirection uint8

const (
	// FlexRow lays out children left-to-right (default). Main axis: width.
	FlexRow FlexDirection = iota
	// FlexRowReverse lays out children right-to-left. Main axis: width.
	FlexRowReverse
	// FlexColumn lays out children top-to-bottom. Main axis: height.
	FlexColumn
	// FlexColumnReverse lays out children bottom-to-top. Main axis: height.
	FlexColumnReverse
)

// IsHorizontal reports whether the main axis is width (row / row-reverse).
func (d FlexDirection) IsHorizontal() bool {
	return d == FlexRow || d == FlexRowReverse
}

// IsReversed reports whether items are traversed back-to-front along the
// main axis (row-reverse / column-reverse).
func (d FlexDirection) IsReversed() bool {
	return d == FlexRowReverse || d == FlexColumnReverse
}

// FlexWrap controls whether overflowing items wrap onto new flex lines.
type FlexWrap uint8

const (
	// NoWrap packs every item onto a single line (default), allowing
	// main-axis overflow rather than wrapping.
	NoWrap FlexWrap = iota
	// Wrap starts a new line whenever the next item would overflow the
	// container's inner main size.
	Wrap
	// WrapReverse behaves like Wrap but stacks lines in reverse order
	// along the cross axis.
	WrapReverse
)

// Justify controls how a line's items are distributed along the main axis.
type Justify uint8

const (
	// JustifyFlexStart packs items at the main-axis start (default).
	JustifyFlexStart Justify = iota
	JustifyFlexEnd
	JustifyCenter
	JustifySpaceBetween
	JustifySpaceAround
	JustifySpaceEvenly
)

// Align is the shared enum for align-items, align-self, and align-content.
// Not every value is meaningful for every field; the algorithm only
// interprets the values relevant to where it is used. AlignContent's zero
// value, which New keeps, is AlignAuto, and align-content handles it like
// AlignFlexStart.
type Align uint8

const (
	// AlignAuto means "inherit align-items from the parent container"
	// for align-self, where ResolvedAlignSelf replaces it before the
	// algorithm branches on it. As an align-content value it is laid out
	// like AlignFlexStart.
	AlignAuto Align = iota
	AlignFlexStart
	AlignFlexEnd
	AlignCenter
	AlignBaseline
	// AlignStretch is the default for align-items/align-self.
	AlignStretch
	AlignSpaceBetween
	AlignSpaceAround
)
