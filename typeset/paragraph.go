package typeset

import "math"

// ParshapeEntry gives the indent and available length for one line of a
// paragraph shaped by an explicit per-line list rather than a uniform
// hsize/hangindent rule. The last entry applies to every line beyond the
// list's length.
type ParshapeEntry struct {
	Indent, Length float64
}

// Paragraph holds both a paragraph's layout configuration and the
// optimizer that turns a horizontal node list into lines under that
// configuration. Defaults returned by NewParagraph mirror TeX's
// plain-format values.
type Paragraph struct {
	HSize         float64
	Tolerance     float64
	LinePenalty   int
	AdjDemerits   int
	LeftSkip      Glue
	RightSkip     Glue
	ParFillSkip   Glue
	BaselineSkip  Glue
	LineSkip      Glue
	LineSkipLimit float64
	PrevDepth     float64
	HangIndent    float64
	HangAfter     int
	Parshape      []ParshapeEntry
}

// NewParagraph returns a Paragraph with TeX plain-format defaults: a
// 345pt measure, tolerance 200, a 12pt baselineskip, a 1pt lineskip and
// an infinitely stretchable parfillskip so the last line never reports
// as underfull.
func NewParagraph() *Paragraph {
	return &Paragraph{
		HSize:        345,
		Tolerance:    200,
		LinePenalty:  10,
		AdjDemerits:  10000,
		ParFillSkip:  Glue{Stretch: 1, StretchOrder: Fil},
		BaselineSkip: Glue{Space: 12},
		LineSkip:     Glue{Space: 1},
		HangAfter:    1,
	}
}

func (p *Paragraph) parshapeIndex(line int) int {
	if line >= len(p.Parshape) {
		return len(p.Parshape) - 1
	}
	return line
}

func (p *Paragraph) hangindentAppliesToLine(line int) bool {
	if p.HangAfter < 0 {
		return line < -p.HangAfter
	}
	return line >= p.HangAfter
}

// linelength returns the available line length for the given zero-based
// line number, honoring Parshape first, then HangIndent/HangAfter, then
// falling back to HSize.
func (p *Paragraph) linelength(line int) float64 {
	if len(p.Parshape) > 0 {
		return p.Parshape[p.parshapeIndex(line)].Length
	}
	if p.HangIndent != 0 && p.hangindentAppliesToLine(line) {
		return p.HSize - math.Abs(p.HangIndent)
	}
	return p.HSize
}

// Prepare appends the standard paragraph terminator to hlist in place:
// any trailing glue is dropped, then an infinite forbidden-break
// penalty, the parfillskip glue, and a forced final penalty are added so
// the paragraph always ends in a forced break. Whether a feasible
// breakpoint chain reaches that break is still decided by Create.
func (p *Paragraph) Prepare(hlist *List) {
	if len(*hlist) == 0 {
		return
	}
	if _, ok := (*hlist)[len(*hlist)-1].(*Glue); ok {
		*hlist = (*hlist)[:len(*hlist)-1]
	}
	pf := p.ParFillSkip
	*hlist = append(*hlist, &Penalty{Value: InfPenalty}, &pf, &Penalty{Value: -InfPenalty})
}

// createLine packs the nodes between begin and end (exclusive) into an
// hbox for the given zero-based line number, applying leftskip/rightskip
// and whichever of parshape/hangindent widens the target width for that
// line. This is the corrected behavior for the historical parshape
// indent bug: the per-line indent is added to the target width, not
// silently dropped.
func (p *Paragraph) createLine(line int, hlist List, begin, end int) *Box {
	content := hlist[begin:end]
	ls := p.LeftSkip
	rs := p.RightSkip

	switch {
	case len(p.Parshape) > 0:
		entry := p.Parshape[p.parshapeIndex(line)]
		nodes := make(List, 0, len(content)+3)
		nodes = append(nodes, &Kern{Space: entry.Indent}, &ls)
		nodes = append(nodes, content...)
		nodes = append(nodes, &rs)
		return HBox(nodes, p.linelength(line)+entry.Indent)

	case p.HangIndent != 0 && p.hangindentAppliesToLine(line):
		nodes := make(List, 0, len(content)+3)
		if p.HangIndent > 0 {
			nodes = append(nodes, &Kern{Space: p.HangIndent})
		}
		nodes = append(nodes, &ls)
		nodes = append(nodes, content...)
		nodes = append(nodes, &rs)
		if p.HangIndent < 0 {
			nodes = append(nodes, &Kern{Space: -p.HangIndent})
		}
		return HBox(nodes, p.linelength(line)+math.Abs(p.HangIndent))

	default:
		nodes := make(List, 0, len(content)+2)
		nodes = append(nodes, &ls)
		nodes = append(nodes, content...)
		nodes = append(nodes, &rs)
		return HBox(nodes, p.linelength(line))
	}
}

func consumeDiscardable(hlist List, pos int) int {
	for pos < len(hlist) && IsDiscardable(hlist[pos]) {
		pos++
	}
	return pos
}

// Create runs the full paragraph optimization: it computes the optimal
// breakpoint chain by dynamic programming, then assembles each resulting
// line into an hbox and stacks them into a vertical list via PushBack,
// threading PrevDepth across lines. hlist must already have been
// finished with Prepare. Returns ErrCannotTypeset if no breakpoint chain
// stays within tolerance all the way to the terminal penalty.
func (p *Paragraph) Create(hlist List) (List, error) {
	if err := validate(hlist); err != nil {
		return nil, err
	}
	if len(hlist) == 0 {
		return nil, nil
	}
	breakpoints, err := p.computeBreakpoints(hlist)
	if err != nil {
		return nil, err
	}
	var result List
	pos := breakpoints[0].Position
	for i := 1; i < len(breakpoints); i++ {
		bp := breakpoints[i]
		line := p.createLine(bp.Line-1, hlist, pos, bp.Position)
		PushBack(&result, line, &p.PrevDepth, p.BaselineSkip, p.LineSkip, p.LineSkipLimit)
		pos = bp.Position
		if i < len(breakpoints)-1 {
			pos = consumeDiscardable(hlist, pos)
		}
	}
	return result, nil
}
