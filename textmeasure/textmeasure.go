// Package textmeasure provides ready-to-use flexlayout.MeasureFunc
// implementations for plain-text leaves, Unicode-width aware the way a
// terminal renderer needs: wide East Asian and emoji glyphs count as two
// cells, combining marks count as zero — getting right what a naive
// len(s) or range-over-rune count gets wrong.
//
// Neither function here is special-cased by the layout engine — they are
// ordinary MeasureFunc values a host may use for the common "leaf is a
// string" case, or ignore entirely in favor of its own measurement.
package textmeasure

import (
	"strings"
	"unicode"

	"github.com/rivo/uniseg"
	"github.com/unilibs/uniwidth"

	"github.com/phoenix-tui/flexlayout"
	"github.com/phoenix-tui/flexlayout/geom"
)

// StringWidth returns s's visual width in terminal cells: combining
// marks and zero-width joiners count as 0, ASCII counts as 1, and wide
// East Asian and most emoji runes count as 2.
//
// Most input never needs grapheme segmentation, so the common case goes
// straight through uniwidth's O(1)/O(log n) rune tables. Only a string
// containing a ZWJ, a variation selector, an emoji skin-tone modifier, or
// a combining mark falls back to uniseg clustering, since those are the
// cases where a rune-by-rune sum gives the wrong answer.
func StringWidth(s string) int {
	if s == "" {
		return 0
	}
	if !hasComplexUnicode(s) {
		return uniwidth.StringWidth(s)
	}

	width := 0
	gr := uniseg.NewGraphemes(s)
	for gr.Next() {
		width += clusterWidth(gr.Str())
	}
	return width
}

// hasComplexUnicode reports whether s contains a rune that can only be
// width-measured correctly by grouping it into its grapheme cluster
// first: a joiner, a presentation selector, an emoji modifier, or a
// combining mark.
func hasComplexUnicode(s string) bool {
	for _, r := range s {
		if r == 0x200D {
			return true
		}
		if r >= 0xFE00 && r <= 0xFE0F {
			return true
		}
		if r >= 0x1F3FB && r <= 0x1F3FF {
			return true
		}
		if unicode.In(r, unicode.Mn, unicode.Me, unicode.Mc) {
			return true
		}
	}
	return false
}

// clusterWidth returns a single grapheme cluster's visual width. A
// multi-rune cluster (emoji + modifier, a ZWJ sequence, base + combining
// mark) takes the width of its first rune, since the remaining runes by
// definition do not add columns — except when the second rune is a
// variation selector, which can flip a character between text and emoji
// presentation and so must be resolved through uniwidth.StringWidth on the
// whole cluster.
func clusterWidth(cluster string) int {
	runes := []rune(cluster)
	if len(runes) == 0 {
		return 0
	}
	if len(runes) == 1 {
		return uniwidth.RuneWidth(runes[0])
	}
	if runes[1] == 0xFE0E || runes[1] == 0xFE0F {
		return uniwidth.StringWidth(cluster)
	}
	return uniwidth.RuneWidth(runes[0])
}

// Text returns a MeasureFunc that reports content's natural size —
// its StringWidth and a single line of height 1 — ignoring the
// constraint entirely. Suitable for a label that should never wrap.
func Text(content string) flexlayout.MeasureFunc {
	width := float32(StringWidth(content))
	return func(geom.Size[geom.Number]) (geom.Size[float32], error) {
		return geom.Size[float32]{Width: width, Height: 1}, nil
	}
}

// TextWrapped returns a MeasureFunc that greedily wraps content at word
// boundaries to fit the constraint's width (when defined), then reports
// the size of the resulting block: the widest wrapped line, and one row
// per line. With an undefined or non-positive width constraint it does not
// wrap: the width is StringWidth of the whole content and the height is
// its number of newline-separated lines, so it matches Text only for
// single-line content.
func TextWrapped(content string) flexlayout.MeasureFunc {
	return func(constraints geom.Size[geom.Number]) (geom.Size[float32], error) {
		limit, ok := constraints.Width.Value()
		if !ok || limit <= 0 {
			width := float32(StringWidth(content))
			lines := float32(countLines(content))
			if lines < 1 {
				lines = 1
			}
			return geom.Size[float32]{Width: width, Height: lines}, nil
		}

		lines := wrap(content, int(limit))
		var maxWidth int
		for _, ln := range lines {
			if w := StringWidth(ln); w > maxWidth {
				maxWidth = w
			}
		}
		return geom.Size[float32]{Width: float32(maxWidth), Height: float32(len(lines))}, nil
	}
}

func countLines(s string) int {
	return strings.Count(s, "\n") + 1
}

// wrap greedily packs whitespace-separated words into lines no wider
// than limit cells, measuring each word with StringWidth so a multi-rune
// emoji or combining sequence is never split mid-cluster.
func wrap(content string, limit int) []string {
	var lines []string
	for _, paragraph := range strings.Split(content, "\n") {
		words := strings.Fields(paragraph)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}

		var cur strings.Builder
		curWidth := 0
		for _, word := range words {
			wordWidth := StringWidth(word)
			if cur.Len() == 0 {
				cur.WriteString(word)
				curWidth = wordWidth
				continue
			}
			if curWidth+1+wordWidth > limit {
				lines = append(lines, cur.String())
				cur.Reset()
				cur.WriteString(word)
				curWidth = wordWidth
				continue
			}
			cur.WriteByte(' ')
			cur.WriteString(word)
			curWidth += 1 + wordWidth
		}
		lines = append(lines, cur.String())
	}
	return lines
}
