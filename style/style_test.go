package style

import "testing"

func TestNewDefaults(t *testing.T) {
	s := New()

	if s.FlexShrink != 1 {
		t.Fatalf("default FlexShrink = %v, want 1", s.FlexShrink)
	}
	if s.FlexGrow != 0 {
		t.Fatalf("default FlexGrow = %v, want 0", s.FlexGrow)
	}
	if !s.FlexBasis.IsAuto() {
		t.Fatalf("default FlexBasis = %v, want auto", s.FlexBasis)
	}
	if s.AlignSelf != AlignAuto {
		t.Fatalf("default AlignSelf = %v, want AlignAuto", s.AlignSelf)
	}
	if s.AlignItems != AlignStretch {
		t.Fatalf("default AlignItems = %v, want AlignStretch", s.AlignItems)
	}
	if !s.Size.Width.IsAuto() || !s.Size.Height.IsAuto() {
		t.Fatalf("default Size = %+v, want both axes auto", s.Size)
	}
}

func TestWithBuildersDoNotMutateReceiver(t *testing.T) {
	base := New()
	grown := base.WithFlexGrow(2)

	if base.FlexGrow != 0 {
		t.Fatalf("WithFlexGrow mutated the receiver: base.FlexGrow = %v", base.FlexGrow)
	}
	if grown.FlexGrow != 2 {
		t.Fatalf("grown.FlexGrow = %v, want 2", grown.FlexGrow)
	}
}

func TestResolvedAlignSelf(t *testing.T) {
	auto := New()
	if got := auto.ResolvedAlignSelf(AlignCenter); got != AlignCenter {
		t.Fatalf("ResolvedAlignSelf(center) on auto = %v, want AlignCenter", got)
	}

	explicit := New().WithAlignSelf(AlignFlexEnd)
	if got := explicit.ResolvedAlignSelf(AlignCenter); got != AlignFlexEnd {
		t.Fatalf("ResolvedAlignSelf should not override an explicit AlignSelf, got %v", got)
	}
}

func TestDisplayAndPositionPredicates(t *testing.T) {
	flexItem := New()
	if !flexItem.IsFlexItem() || flexItem.IsAbsolute() || flexItem.IsNone() {
		t.Fatalf("default style should be a plain flex item: %+v", flexItem)
	}

	absolute := New().WithPositionType(PositionAbsolute)
	if !absolute.IsAbsolute() || absolute.IsFlexItem() {
		t.Fatalf("PositionAbsolute style should report IsAbsolute, not IsFlexItem: %+v", absolute)
	}

	none := New().WithDisplay(DisplayNone)
	if !none.IsNone() || none.IsFlexItem() || none.IsAbsolute() {
		t.Fatalf("DisplayNone style should report IsNone only: %+v", none)
	}
}
