// Package style provides the layout vocabulary a node is configured with:
// the box-model dimensions, directions, and alignment enums the flexbox
// algorithm in internal/algorithm consumes. It has no dependency on the
// node forest — a Style is pure data, constructed and compared by value.
package style

import "github.com/phoenix-tui/flexlayout/geom"

// dimensionKind discriminates the four Dimension variants.
type dimensionKind uint8

const (
	dimUndefined dimensionKind = iota
	dimAuto
	dimPoints
	dimPercent
)

// Dimension is a CSS-flavored length: a fixed number of points, a
// percentage of the containing block, or one of two "no value" states
// (Auto and Undefined, kept distinct because flex-basis resolution treats
// "the user wrote auto" differently from "this field was never set": only
// an Auto flex-basis falls back to the main-axis Size. ResolveAgainst
// itself maps both to Undefined).
type Dimension struct {
	kind  dimensionKind
	value float32
}

// Auto is the zero value is NOT Auto — Go's zero value for Dimension is
// Undefined, matching "this Style field wasn't set". AutoDimension is the
// explicit auto length.
var AutoDimension = Dimension{kind: dimAuto}

// UndefinedDimension is the explicit "no length" state; also the zero value.
var UndefinedDimension = Dimension{kind: dimUndefined}

// Points returns a fixed-length Dimension of v points.
func Points(v float32) Dimension {
	return Dimension{kind: dimPoints, value: v}
}

// Percent returns a Dimension that resolves to a percentage of the
// containing block's corresponding dimension. r is a ratio (0.5 == 50%).
func Percent(r float32) Dimension {
	return Dimension{kind: dimPercent, value: r}
}

// IsAuto reports whether this Dimension is the Auto variant.
func (d Dimension) IsAuto() bool { return d.kind == dimAuto }

// IsUndefined reports whether this Dimension is the Undefined variant.
func (d Dimension) IsUndefined() bool { return d.kind == dimUndefined }

// IsPoints reports whether this Dimension is a fixed length.
func (d Dimension) IsPoints() bool { return d.kind == dimPoints }

// IsPercent reports whether this Dimension is a percentage.
func (d Dimension) IsPercent() bool { return d.kind == dimPercent }

// ResolveAgainst resolves the Dimension against a containing-block
// measurement that may itself be undefined:
//
//	Points(v)   -> Defined(v)
//	Percent(r)  -> Defined(parent*r) if parent defined, else Undefined
//	Auto        -> Undefined
//	Undefined   -> Undefined
func (d Dimension) ResolveAgainst(parent geom.Number) geom.Number {
	switch d.kind {
	case dimPoints:
		return geom.Defined(d.value)
	case dimPercent:
		if v, ok := parent.Value(); ok {
			return geom.Defined(v * d.value)
		}
		return geom.Undefined
	default:
		return geom.Undefined
	}
}

// String returns a debug representation.
func (d Dimension) String() string {
	switch d.kind {
	case dimAuto:
		return "auto"
	case dimPoints:
		return formatPoints(d.value)
	case dimPercent:
		return formatPercent(d.value)
	default:
		return "undefined"
	}
}

func formatPoints(v float32) string {
	return ftoa(v) + "pt"
}

func formatPercent(r float32) string {
	return ftoa(r*100) + "%"
}
