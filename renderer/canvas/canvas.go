// Package canvas renders a typeset vertical list to PDF bytes using
// github.com/tdewolff/canvas and its renderers/pdf backend, the teacher's
// PDF stack. Where the teacher's canvas renderer paints shaped glyphs and
// images from a page-description document, this renderer paints boxes:
// every visited leaf becomes a filled rectangle at the layout reader's
// absolute position, a debug/visualization view of the box tree rather
// than a glyph shaper (shaping stays out of scope).
package canvas

import (
	"bytes"
	"fmt"
	"image/color"

	tdcanvas "github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers/pdf"

	"github.com/ByLCY/typeset/typeset"
)

// Renderer paints a vertical list into a single-page PDF, one filled
// rectangle per visited box.
type Renderer struct {
	// PageWidth/PageHeight bound the canvas; if zero, they are derived
	// from the vertical list's natural extent.
	PageWidth, PageHeight float64

	RuleColor   color.RGBA
	CharColor   color.RGBA
	StrokeColor color.RGBA

	// buf receives the rendered PDF bytes after Render returns nil.
	buf bytes.Buffer
}

// NewRenderer returns a Renderer with the teacher's muted default palette.
func NewRenderer() *Renderer {
	return &Renderer{
		RuleColor:   color.RGBA{20, 20, 20, 255},
		CharColor:   color.RGBA{30, 30, 160, 200},
		StrokeColor: color.RGBA{80, 80, 80, 255},
	}
}

// Bytes returns the PDF produced by the most recent successful Render call.
func (r *Renderer) Bytes() []byte { return r.buf.Bytes() }

// Render paints vlist into a PDF page and stores the result, retrievable
// via Bytes.
func (r *Renderer) Render(vlist typeset.List) error {
	if len(vlist) == 0 {
		return fmt.Errorf("canvas: empty vertical list")
	}
	root := typeset.VBox(vlist, typeset.NaturalHeight(vlist))

	width, height := r.PageWidth, r.PageHeight
	if width == 0 {
		width = root.Width
	}
	if height == 0 {
		height = root.Height
	}
	if width <= 0 || height <= 0 {
		return fmt.Errorf("canvas: degenerate page size %vx%v", width, height)
	}

	r.buf.Reset()
	writer := pdf.New(&r.buf, width, height, nil)
	c := tdcanvas.New(width, height)
	ctx := tdcanvas.NewContext(c)
	ctx.SetCoordSystem(tdcanvas.CartesianIV)

	typeset.ReadFull(root, func(b *typeset.Box, pos typeset.Pos) {
		if b.Kind != typeset.BoxRule && b.Kind != typeset.BoxChar {
			return
		}
		fill := r.RuleColor
		if b.Kind == typeset.BoxChar {
			fill = r.CharColor
		}
		ctx.SetFillColor(fill)
		ctx.SetStrokeColor(r.StrokeColor)
		ctx.SetStrokeWidth(0.2)
		ctx.DrawPath(pos.X, pos.Y-b.Depth, tdcanvas.Rectangle(b.Width, b.Height+b.Depth))
	})

	c.RenderTo(writer)
	if err := writer.Close(); err != nil {
		return fmt.Errorf("canvas: writing pdf: %w", err)
	}
	return nil
}
