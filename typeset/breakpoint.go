package typeset

import "math"

// FitnessClass buckets a line's glue ratio into one of four visual
// tightness bands, used to penalize adjacent lines whose fitness differs
// by more than one class.
type FitnessClass int

const (
	FitnessTight FitnessClass = iota
	FitnessDecent
	FitnessLoose
	FitnessVeryLoose
)

func (f FitnessClass) String() string {
	switch f {
	case FitnessTight:
		return "tight"
	case FitnessDecent:
		return "decent"
	case FitnessLoose:
		return "loose"
	default:
		return "very-loose"
	}
}

func classifyFitness(ratio float64) FitnessClass {
	switch {
	case ratio < -0.5:
		return FitnessTight
	case ratio <= 0.5:
		return FitnessDecent
	case ratio <= 1:
		return FitnessLoose
	default:
		return FitnessVeryLoose
	}
}

func compatibleFitness(a, b FitnessClass) bool {
	d := int(a) - int(b)
	if d < 0 {
		d = -d
	}
	return d <= 1
}

// computeBadness maps a glue ratio to a badness in [0, 10000], growing
// with the cube of the ratio's magnitude and capped at 10000.
func computeBadness(ratio float64) int {
	b := 100 * math.Pow(math.Abs(ratio), 3)
	if b > 10000 {
		b = 10000
	}
	return int(b)
}

// computeDemerits combines a line's own cost (linepenalty+badness,
// squared) with the cost of the break itself: a positive finite penalty
// adds its square, a negative finite penalty (an encouraged break)
// subtracts its square, and a forced or forbidden penalty contributes
// nothing extra.
func computeDemerits(linepenalty, badness, penalty int) int {
	base := (linepenalty + badness) * (linepenalty + badness)
	switch {
	case penalty >= 0 && penalty < InfPenalty:
		return base + penalty*penalty
	case penalty < 0 && penalty > -InfPenalty:
		return base - penalty*penalty
	default:
		return base
	}
}

// Totals is a running snapshot of accumulated width, stretch and shrink
// along a horizontal list up to some position.
type Totals struct {
	Width   float64
	Stretch FlexTotals
	Shrink  FlexTotals
}

// Breakpoint is one node in the DP chain: a feasible place to end a line,
// with the minimal accumulated demerits of any path reaching it and a
// back-pointer to the breakpoint that starts its line.
type Breakpoint struct {
	Position int
	Demerits int
	Line     int
	Fitness  FitnessClass
	Totals   Totals
	Previous *Breakpoint
}

func skipFlex(g Glue) (stretch, shrink FlexTotals) {
	stretch = stretch.AddAt(g.StretchOrder, g.Stretch)
	shrink = shrink.AddAt(g.ShrinkOrder, g.Shrink)
	return
}

// computeGlueRatio computes the glue ratio needed to fit the material
// between breakpoint a and the current running totals sum into the line
// length for a's line, accounting for leftskip/rightskip.
func (p *Paragraph) computeGlueRatio(sum Totals, a *Breakpoint) float64 {
	leftStretch, leftShrink := skipFlex(p.LeftSkip)
	rightStretch, rightShrink := skipFlex(p.RightSkip)
	width := sum.Width - a.Totals.Width - p.LeftSkip.Space - p.RightSkip.Space
	lineLength := p.linelength(a.Line)
	switch {
	case width < lineLength:
		diff := sum.Stretch.Sub(a.Totals.Stretch).Add(leftStretch).Add(rightStretch)
		order := diff.Order()
		if order != Normal {
			return 0
		}
		if diff.Normal > 0 {
			return (lineLength - width) / diff.Normal
		}
		return infRatio
	case width > lineLength:
		diff := sum.Shrink.Sub(a.Totals.Shrink).Add(leftShrink).Add(rightShrink)
		order := diff.Order()
		if order != Normal {
			return 0
		}
		if diff.Normal > 0 {
			return (lineLength - width) / diff.Normal
		}
		return infRatio
	default:
		return 0
	}
}

type candidate struct {
	active   *Breakpoint
	demerits int
	has      bool
}

// tryBreak scans every active breakpoint grouped by line, deactivating
// those whose ratio has fallen below -1 or that are examined at a forced
// break, and for each surviving line-group produces up to four new
// breakpoints (one per fitness class) rooted at pos, keeping only the
// least-demerit predecessor per class.
func (p *Paragraph) tryBreak(active []*Breakpoint, hlist List, pos int, sum Totals, node Node) []*Breakpoint {
	forced := isForcedBreak(node)
	result := make([]*Breakpoint, 0, len(active)+4)
	i := 0
	for i < len(active) {
		line := active[i].Line
		var candidates [4]candidate
		j := i
		for j < len(active) && active[j].Line == line {
			a := active[j]
			ratio := p.computeGlueRatio(sum, a)
			if ratio >= -1 && !forced {
				result = append(result, a)
			}
			if ratio >= -1 && ratio <= p.Tolerance {
				badness := computeBadness(ratio)
				penaltyValue := 0
				if pn, ok := node.(*Penalty); ok {
					penaltyValue = pn.Value
				}
				fc := classifyFitness(ratio)
				d := computeDemerits(p.LinePenalty, badness, penaltyValue)
				if !compatibleFitness(fc, a.Fitness) {
					d += p.AdjDemerits
				}
				d += a.Demerits
				if !candidates[fc].has || d < candidates[fc].demerits {
					candidates[fc] = candidate{active: a, demerits: d, has: true}
				}
			}
			j++
		}
		localSum := squeezeDiscardables(sum, hlist, pos)
		for fc := 0; fc < 4; fc++ {
			c := candidates[fc]
			if !c.has {
				continue
			}
			result = append(result, &Breakpoint{
				Position: pos,
				Demerits: c.demerits,
				Line:     c.active.Line + 1,
				Fitness:  FitnessClass(fc),
				Totals:   localSum,
				Previous: c.active,
			})
		}
		i = j
	}
	return result
}

// squeezeDiscardables extends sum through any glue/kern starting at
// position from itself (so a glue break consumes its own glue), stopping
// at the first box or at a forced break other than the one at from.
func squeezeDiscardables(sum Totals, hlist List, from int) Totals {
	for i := from; i < len(hlist); i++ {
		switch v := hlist[i].(type) {
		case *Glue:
			sum.Width += v.Space
			accumulateTotals(&sum, v)
		case *Kern:
			sum.Width += v.Space
		case *Box:
			return sum
		case *Penalty:
			if i != from && v.Value <= -InfPenalty {
				return sum
			}
		}
	}
	return sum
}

func accumulateTotals(sum *Totals, g *Glue) {
	accumulateFlex(&sum.Stretch, &sum.Shrink, g)
}

func (p *Paragraph) computeFeasibleBreakpoints(hlist List) []*Breakpoint {
	active := []*Breakpoint{{Position: 0}}
	var sum Totals
	prevWasBox := false
	for i, n := range hlist {
		switch v := n.(type) {
		case *Box:
			sum.Width += v.Width
			prevWasBox = true
			continue
		case *Glue:
			if prevWasBox {
				active = p.tryBreak(active, hlist, i, sum, n)
			}
			sum.Width += v.Space
			accumulateTotals(&sum, v)
		case *Kern:
			sum.Width += v.Space
		case *Penalty:
			if !isForbiddenBreak(v) {
				active = p.tryBreak(active, hlist, i, sum, n)
			}
		}
		prevWasBox = false
	}
	return active
}

func (p *Paragraph) computeBreakpoints(hlist List) ([]*Breakpoint, error) {
	active := p.computeFeasibleBreakpoints(hlist)
	if len(active) == 0 {
		return nil, ErrCannotTypeset
	}
	best := active[0]
	for _, a := range active[1:] {
		if a.Demerits < best.Demerits {
			best = a
		}
	}
	var chain []*Breakpoint
	for b := best; b != nil; b = b.Previous {
		chain = append(chain, b)
	}
	for i, j := 0, len(chain)-1; i < j; i, j = i+1, j-1 {
		chain[i], chain[j] = chain[j], chain[i]
	}
	return chain, nil
}
