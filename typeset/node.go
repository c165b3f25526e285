package typeset

// GlueOrder is the stretch/shrink order of a glue component: Normal is a
// finite dimension, Fil/Fill/Filll are successively "more infinite" and
// dominate any lower order entirely when a target width is being solved.
type GlueOrder int

const (
	Normal GlueOrder = iota
	Fil
	Fill
	Filll
)

func (o GlueOrder) String() string {
	switch o {
	case Fil:
		return "fil"
	case Fill:
		return "fill"
	case Filll:
		return "filll"
	default:
		return "normal"
	}
}

// InfPenalty is the magnitude at and beyond which a penalty is treated as
// forced (<= -InfPenalty) or forbidden (>= +InfPenalty).
const InfPenalty = 10000

// BoxKind distinguishes the three kinds of leaf/container content a Box
// can hold.
type BoxKind int

const (
	BoxRule BoxKind = iota
	BoxChar
	BoxList
)

// ListKind distinguishes horizontal from vertical container boxes.
type ListKind int

const (
	ListHBox ListKind = iota
	ListVBox
)

// Node is the closed sum type of the four node kinds a horizontal or
// vertical list is built from: Box, Glue, Kern and Penalty. The
// unexported marker method keeps the set closed to this package.
type Node interface {
	isNode()
}

// Box is a rectangle with width, height and depth. Depending on Kind it
// is either a solid Rule, a single Char (glyph placeholder, no shaping),
// or a ListBox containing further Nodes assembled by HBox or VBox.
type Box struct {
	Width, Height, Depth float64
	Kind                 BoxKind

	// Char fields, valid when Kind == BoxChar.
	Font             int
	Code             rune
	ItalicCorrection float64

	// ListBox fields, valid when Kind == BoxList.
	ListKind    ListKind
	Children    []Node
	ShiftAmount float64
	GlueRatio   float64
	GlueOrder   GlueOrder
}

func (*Box) isNode() {}

// NewRule builds a solid rectangle leaf box.
func NewRule(width, height, depth float64) *Box {
	return &Box{Kind: BoxRule, Width: width, Height: height, Depth: depth}
}

// NewChar builds a single-glyph leaf box; shaping and glyph lookup are
// the caller's responsibility, this only carries pre-measured metrics.
func NewChar(font int, code rune, width, height, depth, italicCorrection float64) *Box {
	return &Box{Kind: BoxChar, Font: font, Code: code, Width: width, Height: height, Depth: depth, ItalicCorrection: italicCorrection}
}

// Glue is a flexible space: Space is its natural size, Stretch/Shrink
// its flexibility at the given orders.
type Glue struct {
	Space        float64
	Stretch      float64
	StretchOrder GlueOrder
	Shrink       float64
	ShrinkOrder  GlueOrder
}

func (*Glue) isNode() {}

// Kern is a fixed, non-flexible space.
type Kern struct {
	Space float64
}

func (*Kern) isNode() {}

// Penalty carries a cost for breaking at this point. Values at or below
// -InfPenalty force a break; values at or above +InfPenalty forbid one.
type Penalty struct {
	Value int
}

func (*Penalty) isNode() {}

// List is a horizontal or vertical node sequence.
type List []Node

// IsDiscardable reports whether n is one of the three node kinds that
// may be silently skipped when squeezing past a chosen breakpoint: Glue,
// Kern and Penalty. Boxes are never discardable.
func IsDiscardable(n Node) bool {
	switch n.(type) {
	case *Glue, *Kern, *Penalty:
		return true
	default:
		return false
	}
}

func isForcedBreak(n Node) bool {
	p, ok := n.(*Penalty)
	return ok && p.Value <= -InfPenalty
}

func isForbiddenBreak(n Node) bool {
	p, ok := n.(*Penalty)
	return ok && p.Value >= InfPenalty
}

// validate reports ErrMalformedInput for a nil entry anywhere in the list.
func validate(list List) error {
	for _, n := range list {
		if n == nil {
			return ErrMalformedInput
		}
	}
	return nil
}
