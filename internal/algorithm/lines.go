package algorithm

import (
	"github.com/phoenix-tui/flexlayout/geom"
	"github.com/phoenix-tui/flexlayout/style"
)

// flexLine is one wrapped row (or column) of flex items. crossSize and
// crossOffset are filled in once cross-axis sizing runs.
type flexLine struct {
	items       []*item
	crossSize   float32
	crossOffset float32
}

// collectLines packs items into lines. With NoWrap every item goes on
// a single line regardless of overflow. Otherwise items are placed
// greedily until the next item would overflow innerMain, at which point a
// new line starts — a line always gets at least one item even if that
// item alone overflows. WrapReverse then reverses line order (not item
// order within a line).
func collectLines(items []*item, wrap style.FlexWrap, innerMain geom.Number) []*flexLine {
	if wrap == style.NoWrap || len(items) == 0 {
		return []*flexLine{{items: items}}
	}

	limit, hasLimit := innerMain.Value()
	var lines []*flexLine
	cur := &flexLine{}
	var curMain float32
	for _, it := range items {
		if hasLimit && len(cur.items) > 0 && curMain+it.outerHypotheticalMain > limit {
			lines = append(lines, cur)
			cur = &flexLine{}
			curMain = 0
		}
		cur.items = append(cur.items, it)
		curMain += it.outerHypotheticalMain
	}
	lines = append(lines, cur)

	if wrap == style.WrapReverse {
		for i, j := 0, len(lines)-1; i < j; i, j = i+1, j-1 {
			lines[i], lines[j] = lines[j], lines[i]
		}
	}
	return lines
}
