package geom

import "testing"

func TestNumberArithmeticAbsorbsUndefined(t *testing.T) {
	if got := Defined(3).Add(Undefined); got.IsDefined() {
		t.Fatalf("Add with undefined operand should stay undefined, got %v", got)
	}
	if got := Defined(3).Sub(Undefined); got.IsDefined() {
		t.Fatalf("Sub with undefined operand should stay undefined, got %v", got)
	}
	if got := Undefined.Mul(2); got.IsDefined() {
		t.Fatalf("Mul on undefined should stay undefined, got %v", got)
	}
	if got := Defined(2).Add(Defined(3)); got.OrElse(-1) != 5 {
		t.Fatalf("Add(2,3) = %v, want 5", got)
	}
}

func TestNumberMinMaxDoNotAbsorbUndefined(t *testing.T) {
	if got := Defined(4).Max(Undefined); got.OrElse(-1) != 4 {
		t.Fatalf("Max(4, undefined) = %v, want 4", got)
	}
	if got := Undefined.Max(Defined(4)); got.OrElse(-1) != 4 {
		t.Fatalf("Max(undefined, 4) = %v, want 4", got)
	}
	if got := Defined(4).Min(Defined(9)); got.OrElse(-1) != 4 {
		t.Fatalf("Min(4, 9) = %v, want 4", got)
	}
}

func TestNumberClamp(t *testing.T) {
	if got := Undefined.Clamp(Defined(0), Defined(10)); got.IsDefined() {
		t.Fatalf("Clamp on undefined value should stay undefined, got %v", got)
	}
	if got := Defined(15).Clamp(Defined(0), Defined(10)); got.OrElse(-1) != 10 {
		t.Fatalf("Clamp(15, 0, 10) = %v, want 10", got)
	}
	if got := Defined(-5).Clamp(Defined(0), Defined(10)); got.OrElse(-1) != 0 {
		t.Fatalf("Clamp(-5, 0, 10) = %v, want 0", got)
	}
	if got := Defined(5).Clamp(Undefined, Undefined); got.OrElse(-1) != 5 {
		t.Fatalf("Clamp with undefined bounds should be a no-op, got %v", got)
	}
}

func TestNumberOrElse(t *testing.T) {
	if got := Undefined.OrElse(7); got != 7 {
		t.Fatalf("Undefined.OrElse(7) = %v, want 7", got)
	}
	if got := Defined(3).OrElse(7); got != 3 {
		t.Fatalf("Defined(3).OrElse(7) = %v, want 3", got)
	}
}
