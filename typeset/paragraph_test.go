package typeset

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// wordsToHList builds a minimal horizontal list of fixed-width word boxes
// separated by interword glue, the shape most paragraph tests in this
// file start from.
func wordsToHList(widths []float64, space Glue) List {
	var hlist List
	for i, w := range widths {
		if i > 0 {
			g := space
			hlist = append(hlist, &g)
		}
		hlist = append(hlist, NewRule(w, 10, 0))
	}
	return hlist
}

func TestParagraphCreateProducesMultipleLines(t *testing.T) {
	p := NewParagraph()
	p.HSize = 40
	space := Glue{Space: 5, Stretch: 2, Shrink: 2}
	hlist := wordsToHList([]float64{10, 10, 10, 10, 10, 10}, space)
	p.Prepare(&hlist)

	vlist, err := p.Create(hlist)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	lineCount := 0
	for _, n := range vlist {
		if b, ok := n.(*Box); ok && b.Kind == BoxList {
			lineCount++
			if b.Width != p.HSize {
				t.Errorf("line width %v, want %v", b.Width, p.HSize)
			}
		}
	}
	if lineCount < 2 {
		t.Fatalf("expected multiple lines, got %d", lineCount)
	}
}

func TestParagraphInfeasibleWithoutStretchOrShrink(t *testing.T) {
	p := NewParagraph()
	p.HSize = 20
	p.Tolerance = 200
	// A single word wider than hsize, with no stretch or shrink anywhere,
	// can never be brought within tolerance at any breakpoint.
	space := Glue{Space: 5}
	hlist := wordsToHList([]float64{50}, space)
	p.Prepare(&hlist)

	_, err := p.Create(hlist)
	if !errors.Is(err, ErrCannotTypeset) {
		t.Fatalf("expected ErrCannotTypeset, got %v", err)
	}
}

func TestParagraphEmptyHlistProducesEmptyVlist(t *testing.T) {
	p := NewParagraph()
	var hlist List
	p.Prepare(&hlist)
	vlist, err := p.Create(hlist)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(vlist) != 0 {
		t.Fatalf("expected empty vlist, got %d nodes", len(vlist))
	}
}

func TestParagraphMalformedInputRejected(t *testing.T) {
	p := NewParagraph()
	hlist := List{NewRule(1, 1, 1), nil}
	if _, err := p.Create(hlist); !errors.Is(err, ErrMalformedInput) {
		t.Fatalf("expected ErrMalformedInput, got %v", err)
	}
}

func TestLinelengthHonorsParshapeThenHangindentThenHsize(t *testing.T) {
	p := NewParagraph()
	p.HSize = 100
	p.HangIndent = 20
	p.HangAfter = 1
	if got := p.linelength(0); got != 100 {
		t.Errorf("line 0 should be unaffected by hangindent, got %v", got)
	}
	if got := p.linelength(1); got != 80 {
		t.Errorf("line 1 should be narrowed by hangindent, got %v", got)
	}

	p.Parshape = []ParshapeEntry{{Indent: 5, Length: 50}, {Indent: 0, Length: 90}}
	if got := p.linelength(0); got != 50 {
		t.Errorf("parshape should override hangindent on line 0, got %v", got)
	}
	if got := p.linelength(5); got != 90 {
		t.Errorf("lines past the parshape list should use its last entry, got %v", got)
	}
}

func TestCreateLineWidensTargetByParshapeIndent(t *testing.T) {
	p := NewParagraph()
	p.Parshape = []ParshapeEntry{{Indent: 15, Length: 60}}
	hlist := List{NewRule(20, 0, 0)}
	line := p.createLine(0, hlist, 0, 1)
	if line.Width != 75 {
		t.Fatalf("expected target width 60+15=75 per the corrected parshape indent behavior, got %v", line.Width)
	}
}

func TestComputeGlueRatioSubtractsLeftskipAndRightskip(t *testing.T) {
	p := NewParagraph()
	p.HSize = 100
	p.LeftSkip = Glue{Space: 10}
	p.RightSkip = Glue{Space: 5}

	a := &Breakpoint{Line: 0}
	sum := Totals{Width: 50, Stretch: FlexTotals{Normal: 65}}

	// Material width net of leftskip/rightskip is 50-10-5=35, short of the
	// 100pt line length by 65, which the 65pt of Normal stretch takes up
	// exactly: ratio should be 1. If leftskip/rightskip were added instead
	// of subtracted, the shortfall would be only 35 and the ratio ~0.538.
	if got := p.computeGlueRatio(sum, a); math.Abs(got-1) > 1e-9 {
		t.Errorf("computeGlueRatio = %v, want 1 (leftskip/rightskip must be subtracted from width)", got)
	}
}

func TestComputeBreakpointsChainIsOrderedByLine(t *testing.T) {
	p := NewParagraph()
	p.HSize = 30
	space := Glue{Space: 5, Stretch: 2, Shrink: 2}
	hlist := wordsToHList([]float64{10, 10, 10, 10}, space)
	p.Prepare(&hlist)

	chain, err := p.computeBreakpoints(hlist)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff(0, chain[0].Line); diff != "" {
		t.Errorf("first breakpoint should be line 0 (mismatch: %s)", diff)
	}
	for i := 1; i < len(chain); i++ {
		if chain[i].Line != chain[i-1].Line+1 {
			t.Errorf("breakpoint chain lines not strictly increasing by 1 at index %d", i)
		}
		if chain[i].Position <= chain[i-1].Position {
			t.Errorf("breakpoint chain positions not strictly increasing at index %d", i)
		}
	}
}

func TestFitnessAndBadnessPureFunctions(t *testing.T) {
	if got := classifyFitness(0); got != FitnessDecent {
		t.Errorf("ratio 0 should be decent, got %v", got)
	}
	if got := classifyFitness(-1); got != FitnessTight {
		t.Errorf("ratio -1 should be tight, got %v", got)
	}
	if got := computeBadness(0); got != 0 {
		t.Errorf("ratio 0 should have badness 0, got %v", got)
	}
	if got := computeBadness(100); got != 10000 {
		t.Errorf("large ratio should cap badness at 10000, got %v", got)
	}
	if !compatibleFitness(FitnessDecent, FitnessLoose) {
		t.Errorf("adjacent fitness classes should be compatible")
	}
	if compatibleFitness(FitnessTight, FitnessVeryLoose) {
		t.Errorf("classes two apart should be incompatible")
	}
}

func TestParagraphResultIgnoresChildrenInComparison(t *testing.T) {
	// Sanity check that go-cmp is wired for structural comparisons the
	// way the corpus uses it: two independently built line boxes with the
	// same content should compare structurally equal ignoring their
	// Children node lists.
	p := NewParagraph()
	p.HSize = 40
	hlist := List{NewRule(10, 0, 0)}
	a := p.createLine(0, hlist, 0, 1)
	b := p.createLine(0, hlist, 0, 1)
	if diff := cmp.Diff(a, b, cmpopts.IgnoreFields(Box{}, "Children")); diff != "" {
		t.Errorf("expected structurally equal lines (mismatch: %s)", diff)
	}
}
