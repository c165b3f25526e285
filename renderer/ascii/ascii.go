// Package ascii renders a typeset vertical list to a monospace text grid
// for terminal or log inspection, using github.com/rivo/uniseg to measure
// grapheme-cluster width the same way bufbuild-protocompile measures
// terminal columns when rendering diagnostics.
package ascii

import (
	"io"
	"strings"

	"github.com/rivo/uniseg"

	"github.com/ByLCY/typeset/typeset"
)

// Renderer paints a vertical list onto a monospace grid. ColScale and
// RowScale convert typeset length units to terminal columns/rows; a
// scale of 1 means one point maps to one column or row.
type Renderer struct {
	Out        io.Writer
	ColScale   float64
	RowScale   float64
	CharLookup func(font int, code rune) string
}

// NewRenderer returns a Renderer with a 1-point-per-column,
// 1-point-per-row scale and a lookup that renders every char box as "#".
func NewRenderer(out io.Writer) *Renderer {
	return &Renderer{
		Out:      out,
		ColScale: 1,
		RowScale: 1,
		CharLookup: func(font int, code rune) string {
			return "#"
		},
	}
}

// Render paints vlist onto a text grid sized to the list's natural
// extent and writes it to r.Out, one line per row, top to bottom.
func (r *Renderer) Render(vlist typeset.List) error {
	if len(vlist) == 0 {
		return nil
	}
	root := typeset.VBox(vlist, typeset.NaturalHeight(vlist))
	rows := int(root.Height*r.RowScale) + 1
	cols := int(root.Width*r.ColScale) + 1
	if cols < 1 {
		cols = 1
	}
	grid := make([][]rune, rows)
	for i := range grid {
		grid[i] = make([]rune, cols)
		for j := range grid[i] {
			grid[i][j] = ' '
		}
	}

	typeset.ReadFull(root, func(b *typeset.Box, pos typeset.Pos) {
		if b.Kind != typeset.BoxChar && b.Kind != typeset.BoxRule {
			return
		}
		row := int(pos.Y * r.RowScale)
		col := int(pos.X * r.ColScale)
		if row < 0 || row >= rows || col < 0 || col >= cols {
			return
		}
		glyph := "#"
		if b.Kind == typeset.BoxChar {
			glyph = r.CharLookup(b.Font, b.Code)
		}
		width := uniseg.StringWidth(glyph)
		if width < 1 {
			width = 1
		}
		for k, g := range []rune(glyph) {
			if col+k < cols {
				grid[row][col+k] = g
			}
		}
	})

	var sb strings.Builder
	for _, row := range grid {
		sb.WriteString(strings.TrimRight(string(row), " "))
		sb.WriteByte('\n')
	}
	_, err := io.WriteString(r.Out, sb.String())
	return err
}
