// Package metrics defines the font/metric provider collaborator the
// typeset core depends on but never implements: a lookup from a
// (font, code point) pair to advance width, height, depth and italic
// correction. Monospace is a trivial deterministic implementation used
// to exercise the node model and the CLI without a real font-shaping
// stack.
package metrics

// Provider looks up the metrics for a single code point in a given font.
// Implementations must be referentially transparent: the same (font,
// code point) pair always yields the same metrics.
type Provider interface {
	Metrics(font int, code rune) (width, height, depth, italicCorrection float64)
}

// Monospace is a Provider that gives every code point the same advance
// width, height and depth regardless of font index, useful for demos and
// tests that need plausible Char boxes without a font engine.
type Monospace struct {
	Width, Height, Depth float64
}

// NewMonospace returns a Monospace provider with sensible demo defaults
// scaled to advance in the given point size.
func NewMonospace(pointSize float64) Monospace {
	return Monospace{
		Width:  pointSize * 0.6,
		Height: pointSize * 0.7,
		Depth:  pointSize * 0.2,
	}
}

// Metrics implements Provider.
func (m Monospace) Metrics(font int, code rune) (width, height, depth, italicCorrection float64) {
	if code == ' ' {
		return m.Width, 0, 0, 0
	}
	return m.Width, m.Height, m.Depth, 0
}
