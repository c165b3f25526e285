package typeset

// HBox packs nodes into a horizontal list box of the given target width.
// Boxes contribute their natural width; glue contributes its natural
// space plus a ratio solved against the leftover (or shortfall) space at
// whichever stretch/shrink order dominates; kerns contribute their fixed
// space. The box's height is the tallest child height once each child's
// cross-axis ShiftAmount is applied, and its depth the deepest child
// depth under the opposite sign.
func HBox(nodes List, target float64) *Box {
	var width, height, depth float64
	var stretch, shrink FlexTotals
	for _, n := range nodes {
		switch v := n.(type) {
		case *Box:
			width += v.Width
			if h := v.Height + v.ShiftAmount; h > height {
				height = h
			}
			if d := v.Depth - v.ShiftAmount; d > depth {
				depth = d
			}
		case *Glue:
			width += v.Space
			accumulateFlex(&stretch, &shrink, v)
		case *Kern:
			width += v.Space
		}
	}
	ratio, order := solveRatio(target-width, stretch, shrink)
	return &Box{
		Kind:      BoxList,
		ListKind:  ListHBox,
		Width:     target,
		Height:    height,
		Depth:     depth,
		Children:  nodes,
		GlueRatio: ratio,
		GlueOrder: order,
	}
}

// VBox packs nodes into a vertical list box of the given target height.
// Boxes contribute height+depth; glue and kerns contribute vertically the
// same way they do horizontally in HBox. Width is the widest child width
// once each child's cross-axis ShiftAmount is applied; depth is left at
// zero, matching the invariant that only the height axis is solved
// against the target.
func VBox(nodes List, target float64) *Box {
	var height, width float64
	var stretch, shrink FlexTotals
	for _, n := range nodes {
		switch v := n.(type) {
		case *Box:
			height += v.Height + v.Depth
			if w := v.Width + v.ShiftAmount; w > width {
				width = w
			}
		case *Glue:
			height += v.Space
			accumulateFlex(&stretch, &shrink, v)
		case *Kern:
			height += v.Space
		}
	}
	ratio, order := solveRatio(target-height, stretch, shrink)
	return &Box{
		Kind:      BoxList,
		ListKind:  ListVBox,
		Width:     width,
		Height:    target,
		Children:  nodes,
		GlueRatio: ratio,
		GlueOrder: order,
	}
}

// NaturalHeight returns the height VBox would give nodes if its target
// exactly matched the natural sum, i.e. the height at which every glue's
// ratio settles to zero. Callers that already have an assembled vertical
// list (a sequence of glue and line boxes, not yet wrapped in a root box)
// use this to synthesize a zero-ratio root for the layout reader.
func NaturalHeight(nodes List) float64 {
	var height float64
	for _, n := range nodes {
		switch v := n.(type) {
		case *Box:
			height += v.Height + v.Depth
		case *Glue:
			height += v.Space
		case *Kern:
			height += v.Space
		}
	}
	return height
}
