package textmeasure_test

import (
	"testing"

	"github.com/phoenix-tui/flexlayout/geom"
	"github.com/phoenix-tui/flexlayout/textmeasure"
)

func TestStringWidth(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{"empty", "", 0},
		{"ascii", "Hello", 5},
		{"ascii with space", "Hello World", 11},
		{"chinese", "中文", 4},
		{"combining acute", "Café", 4},
		{"mixed", "Hello 中文", 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := textmeasure.StringWidth(tt.input); got != tt.want {
				t.Errorf("StringWidth(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestTextIgnoresConstraints(t *testing.T) {
	measure := textmeasure.Text("Hello World")

	size, err := measure(geom.Size[geom.Number]{Width: geom.Defined(1), Height: geom.Defined(1)})
	if err != nil {
		t.Fatalf("measure: %v", err)
	}
	if size.Width != 11 || size.Height != 1 {
		t.Fatalf("size = %+v, want {11 1}", size)
	}
}

func TestTextWrappedPacksWordsToWidth(t *testing.T) {
	measure := textmeasure.TextWrapped("the quick brown fox")

	size, err := measure(geom.Size[geom.Number]{Width: geom.Defined(10), Height: geom.Undefined})
	if err != nil {
		t.Fatalf("measure: %v", err)
	}
	// "the quick" (9) / "brown fox" (9) — two lines, widest is 9.
	if size.Width != 9 || size.Height != 2 {
		t.Fatalf("size = %+v, want {9 2}", size)
	}
}

func TestTextWrappedWithUndefinedWidthBehavesLikeText(t *testing.T) {
	measure := textmeasure.TextWrapped("no wrapping here")

	size, err := measure(geom.Size[geom.Number]{Width: geom.Undefined, Height: geom.Undefined})
	if err != nil {
		t.Fatalf("measure: %v", err)
	}
	if size.Width != float32(textmeasure.StringWidth("no wrapping here")) || size.Height != 1 {
		t.Fatalf("size = %+v, want unwrapped single line", size)
	}
}

func TestTextWrappedMultipleParagraphs(t *testing.T) {
	measure := textmeasure.TextWrapped("line one\nline two")

	size, err := measure(geom.Size[geom.Number]{Width: geom.Defined(100), Height: geom.Undefined})
	if err != nil {
		t.Fatalf("measure: %v", err)
	}
	if size.Height != 2 {
		t.Fatalf("height = %v, want 2 (one per explicit newline)", size.Height)
	}
}
