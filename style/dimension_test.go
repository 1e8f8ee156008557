package style

import (
	"testing"

	"github.com/phoenix-tui/flexlayout/geom"
)

func TestDimensionResolveAgainst(t *testing.T) {
	cases := []struct {
		name   string
		dim    Dimension
		parent geom.Number
		want   geom.Number
	}{
		{"points ignores parent", Points(10), geom.Undefined, geom.Defined(10)},
		{"percent against defined parent", Percent(0.5), geom.Defined(200), geom.Defined(100)},
		{"percent against undefined parent", Percent(0.5), geom.Undefined, geom.Undefined},
		{"auto is always undefined", AutoDimension, geom.Defined(200), geom.Undefined},
		{"undefined is always undefined", UndefinedDimension, geom.Defined(200), geom.Undefined},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := c.dim.ResolveAgainst(c.parent)
			gv, gok := got.Value()
			wv, wok := c.want.Value()
			if gok != wok || (gok && gv != wv) {
				t.Fatalf("ResolveAgainst = %v, want %v", got, c.want)
			}
		})
	}
}

func TestDimensionZeroValueIsUndefinedNotAuto(t *testing.T) {
	var d Dimension
	if !d.IsUndefined() {
		t.Fatalf("zero value Dimension should be Undefined, got %v", d)
	}
	if d.IsAuto() {
		t.Fatalf("zero value Dimension must not report IsAuto")
	}
}

func TestDimensionPredicates(t *testing.T) {
	if !Points(1).IsPoints() {
		t.Fatal("Points(1).IsPoints() should be true")
	}
	if !Percent(1).IsPercent() {
		t.Fatal("Percent(1).IsPercent() should be true")
	}
	if !AutoDimension.IsAuto() {
		t.Fatal("AutoDimension.IsAuto() should be true")
	}
}

func TestDimensionString(t *testing.T) {
	if got := Points(4).String(); got != "4pt" {
		t.Fatalf("Points(4).String() = %q, want 4pt", got)
	}
	if got := Percent(0.5).String(); got != "50%" {
		t.Fatalf("Percent(0.5).String() = %q, want 50%%", got)
	}
	if got := AutoDimension.String(); got != "auto" {
		t.Fatalf("AutoDimension.String() = %q, want auto", got)
	}
}
