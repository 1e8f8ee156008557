package geom

import "testing"

func TestSizeMainCrossRoundTrip(t *testing.T) {
	s := NewSize(10, 20)

	main, cross := s.MainCross(true)
	if main != 10 || cross != 20 {
		t.Fatalf("MainCross(horizontal) = (%v, %v), want (10, 20)", main, cross)
	}

	main, cross = s.MainCross(false)
	if main != 20 || cross != 10 {
		t.Fatalf("MainCross(vertical) = (%v, %v), want (20, 10)", main, cross)
	}

	if got := SizeFromMainCross(false, main, cross); got != s {
		t.Fatalf("SizeFromMainCross(false, 20, 10) = %+v, want %+v", got, s)
	}
}

func TestSizeMap(t *testing.T) {
	s := NewSize(2, 3)
	doubled := s.Map(func(v int) int { return v * 2 })
	if doubled.Width != 4 || doubled.Height != 6 {
		t.Fatalf("Map doubling = %+v, want {4 6}", doubled)
	}
}

func TestSizeUndefined(t *testing.T) {
	s := SizeUndefined()
	if s.Width.IsDefined() || s.Height.IsDefined() {
		t.Fatalf("SizeUndefined() = %+v, want both axes undefined", s)
	}
}
