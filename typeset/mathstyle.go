package typeset

// MathStyle is one of TeX's eight math layout styles: display, text and
// script/scriptscript, each with a cramped variant.
type MathStyle int

const (
	StyleD MathStyle = iota
	StyleDPrime
	StyleT
	StyleTPrime
	StyleS
	StyleSPrime
	StyleSS
	StyleSSPrime
)

func (s MathStyle) String() string {
	return [...]string{"D", "D'", "T", "T'", "S", "S'", "SS", "SS'"}[s]
}

// Size returns 0 for display, 1 for text, 2 for script, 3 for scriptscript.
func (s MathStyle) Size() int {
	return int(s) / 2
}

// IsCramped reports whether s is one of the primed (cramped) styles.
func (s MathStyle) IsCramped() bool {
	return int(s)%2 == 1
}

// IsTight reports whether s is script or scriptscript sized.
func (s MathStyle) IsTight() bool {
	return s >= StyleS
}

// Cramped returns the cramped variant of s (s itself if already cramped).
func (s MathStyle) Cramped() MathStyle {
	return transitionTable[s][transCramp]
}

type transition int

const (
	transSup transition = iota
	transSub
	transNum
	transDen
	transCramp
	transText
)

// transitionTable[style][transition] gives the resulting style, following
// the classical TeX rules: superscripts and subscripts go to script size
// from display or text and to scriptscript from smaller sizes, numerators
// and denominators step down one size (stopping at scriptscript),
// subscripts and denominators are always cramped, and scriptscript is the
// smallest size any of these four transitions reaches.
var transitionTable = [8][6]MathStyle{
	/* D    */ {StyleS, StyleSPrime, StyleT, StyleTPrime, StyleDPrime, StyleD},
	/* D'   */ {StyleSPrime, StyleSPrime, StyleTPrime, StyleTPrime, StyleDPrime, StyleDPrime},
	/* T    */ {StyleS, StyleSPrime, StyleS, StyleSPrime, StyleTPrime, StyleT},
	/* T'   */ {StyleSPrime, StyleSPrime, StyleSPrime, StyleSPrime, StyleTPrime, StyleTPrime},
	/* S    */ {StyleSS, StyleSSPrime, StyleSS, StyleSSPrime, StyleSPrime, StyleT},
	/* S'   */ {StyleSSPrime, StyleSSPrime, StyleSSPrime, StyleSSPrime, StyleSPrime, StyleTPrime},
	/* SS   */ {StyleSS, StyleSSPrime, StyleSS, StyleSSPrime, StyleSSPrime, StyleT},
	/* SS'  */ {StyleSSPrime, StyleSSPrime, StyleSSPrime, StyleSSPrime, StyleSSPrime, StyleTPrime},
}

// Sup returns the style for a superscript nested in s.
func (s MathStyle) Sup() MathStyle { return transitionTable[s][transSup] }

// Sub returns the style for a subscript nested in s.
func (s MathStyle) Sub() MathStyle { return transitionTable[s][transSub] }

// Numerator returns the style for a fraction numerator nested in s.
func (s MathStyle) Numerator() MathStyle { return transitionTable[s][transNum] }

// Denominator returns the style for a fraction denominator nested in s.
func (s MathStyle) Denominator() MathStyle { return transitionTable[s][transDen] }

// TextStyle returns the "\textstyle"-equivalent for s: display and text
// styles are returned unchanged, and script and scriptscript styles map to
// the text style with s's own crampedness carried through.
func (s MathStyle) TextStyle() MathStyle { return transitionTable[s][transText] }
