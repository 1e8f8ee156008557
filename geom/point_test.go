package geom

import "testing"

func TestZeroPoint(t *testing.T) {
	p := Zero[float32]()
	if p.X != 0 || p.Y != 0 {
		t.Fatalf("Zero[float32]() = %+v, want {0 0}", p)
	}

	np := Zero[Number]()
	if np.X.IsDefined() || np.Y.IsDefined() {
		t.Fatalf("Zero[Number]() = %+v, want both axes undefined", np)
	}
}

func TestNewPoint(t *testing.T) {
	p := NewPoint(3, 4)
	if p.X != 3 || p.Y != 4 {
		t.Fatalf("NewPoint(3, 4) = %+v, want {3 4}", p)
	}
}
