// Package unitlang parses the small textual notations a host uses to
// describe typeset.Dimen, typeset.Glue, typeset.Kern and
// typeset.ParshapeEntry values, plus bracketed option lists, resolving
// physical units against a caller-supplied typeset.UnitSystem. It never
// reaches into the optimizer itself: a malformed literal only ever
// produces a UnitParseError or OptionsParseError, never a typeset error.
package unitlang

import (
	"fmt"
	"strconv"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/ByLCY/typeset/typeset"
)

// UnitParseError reports a failure to parse a Dimen, Glue, Kern or
// Parshape literal.
type UnitParseError struct {
	Input string
	Err   error
}

func (e *UnitParseError) Error() string {
	return fmt.Sprintf("unitlang: cannot parse %q: %v", e.Input, e.Err)
}

func (e *UnitParseError) Unwrap() error { return e.Err }

var dimenLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Whitespace", Pattern: `[ \t\r\n]+`},
	{Name: "Number", Pattern: `[+-]?(?:\d+\.\d+|\.\d+|\d+)(?:filll|fill|fil|pt|em|ex|pc|in|cm|mm|bp|dd|cc|sp)?`},
	{Name: "Ident", Pattern: `[A-Za-z]+`},
	{Name: "Symbol", Pattern: `[,:()=]`},
})

var unitSuffixes = map[string]typeset.Unit{
	"pt": typeset.UnitPT, "em": typeset.UnitEm, "ex": typeset.UnitEx,
	"pc": typeset.UnitPC, "in": typeset.UnitIN, "cm": typeset.UnitCM,
	"mm": typeset.UnitMM, "bp": typeset.UnitBP, "dd": typeset.UnitDD,
	"cc": typeset.UnitCC, "sp": typeset.UnitSP,
	"fil": typeset.UnitFil, "fill": typeset.UnitFill, "filll": typeset.UnitFilll,
}

// dimenLiteral is the raw grammar atom: a signed decimal followed by an
// optional unit suffix, with no unit meaning points.
type dimenLiteral struct {
	Raw string `parser:"@Number"`
}

func (d dimenLiteral) toDimen() (typeset.Dimen, error) {
	raw := d.Raw
	// Find the longest matching unit suffix, longest first so "filll"
	// isn't mistaken for "fil" plus leftover text.
	for _, suffix := range []string{"filll", "fill", "fil", "pt", "em", "ex", "pc", "in", "cm", "mm", "bp", "dd", "cc", "sp"} {
		if len(raw) > len(suffix) && raw[len(raw)-len(suffix):] == suffix {
			value, err := strconv.ParseFloat(raw[:len(raw)-len(suffix)], 64)
			if err != nil {
				return typeset.Dimen{}, err
			}
			return typeset.Dimen{Value: value, Unit: unitSuffixes[suffix]}, nil
		}
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return typeset.Dimen{}, err
	}
	return typeset.Dimen{Value: value, Unit: typeset.UnitPT}, nil
}

// glueGrammar is TeX's "<dimen> plus <dimen> minus <dimen>" notation with
// both flex terms optional.
type glueGrammar struct {
	Space dimenLiteral  `parser:"@@"`
	Plus  *dimenLiteral `parser:"( 'plus' @@ )?"`
	Minus *dimenLiteral `parser:"( 'minus' @@ )?"`
}

var (
	dimenParser = participle.MustBuild[dimenLiteral](
		participle.Lexer(dimenLexer),
		participle.Elide("Whitespace"),
	)
	glueParser = participle.MustBuild[glueGrammar](
		participle.Lexer(dimenLexer),
		participle.Elide("Whitespace"),
	)
	parshapeParser = participle.MustBuild[parshapeGrammar](
		participle.Lexer(dimenLexer),
		participle.Elide("Whitespace"),
	)
)

// ParseDimen parses a single dimen literal such as "12.5pt" or "2fil"
// and resolves it to canonical points against u. Infinite-order dimens
// (fil/fill/filll) are returned unresolved as their raw magnitude.
func ParseDimen(input string, u typeset.UnitSystem) (float64, error) {
	d, err := parseDimenValue(input)
	if err != nil {
		return 0, err
	}
	return d.Resolve(u), nil
}

// FormatDimen renders d in the canonical textual form ParseDimenValue
// accepts back, e.g. Dimen{Value: 12.5, Unit: UnitPT} formats as "12.5pt".
func FormatDimen(d typeset.Dimen) string {
	return d.String()
}

// ParseDimenValue parses a single dimen literal into its tagged Dimen
// form, preserving the unit rather than resolving it against a
// UnitSystem. Use ParseDimen when only the resolved magnitude matters.
func ParseDimenValue(input string) (typeset.Dimen, error) {
	return parseDimenValue(input)
}

func parseDimenValue(input string) (typeset.Dimen, error) {
	lit, err := dimenParser.ParseString("", input)
	if err != nil {
		return typeset.Dimen{}, &UnitParseError{Input: input, Err: err}
	}
	d, err := lit.toDimen()
	if err != nil {
		return typeset.Dimen{}, &UnitParseError{Input: input, Err: err}
	}
	return d, nil
}

// ParseGlue parses TeX-style glue notation, "<dimen> [plus <dimen>]
// [minus <dimen>]", resolving finite components against u and carrying
// infinite-order components through as raw magnitudes.
func ParseGlue(input string, u typeset.UnitSystem) (typeset.Glue, error) {
	g, err := glueParser.ParseString("", input)
	if err != nil {
		return typeset.Glue{}, &UnitParseError{Input: input, Err: err}
	}
	space, err := g.Space.toDimen()
	if err != nil {
		return typeset.Glue{}, &UnitParseError{Input: input, Err: err}
	}
	out := typeset.Glue{Space: space.Resolve(u)}
	if g.Plus != nil {
		d, err := g.Plus.toDimen()
		if err != nil {
			return typeset.Glue{}, &UnitParseError{Input: input, Err: err}
		}
		out.StretchOrder = d.Unit.Order()
		out.Stretch = d.Resolve(u)
	}
	if g.Minus != nil {
		d, err := g.Minus.toDimen()
		if err != nil {
			return typeset.Glue{}, &UnitParseError{Input: input, Err: err}
		}
		out.ShrinkOrder = d.Unit.Order()
		out.Shrink = d.Resolve(u)
	}
	return out, nil
}

// ParseKern parses a plain dimen literal as a fixed-space kern.
func ParseKern(input string, u typeset.UnitSystem) (typeset.Kern, error) {
	v, err := ParseDimen(input, u)
	if err != nil {
		return typeset.Kern{}, err
	}
	return typeset.Kern{Space: v}, nil
}

// parshapeGrammar is TeX's "\parshape" assignment notation: an equals
// sign, a line count, then that many "indent length" dimen pairs.
type parshapeGrammar struct {
	Count string         `parser:"'=' @Number"`
	Pairs []dimenLiteral `parser:"@@*"`
}

// ParseParshape parses TeX \parshape notation, "=N indent1 length1 ...
// indentN lengthN", such as "=1 1pt 10em" or "=0" for an empty parshape,
// into ParshapeEntry values resolved against u.
func ParseParshape(input string, u typeset.UnitSystem) ([]typeset.ParshapeEntry, error) {
	g, err := parshapeParser.ParseString("", input)
	if err != nil {
		return nil, &UnitParseError{Input: input, Err: err}
	}
	count, err := strconv.Atoi(g.Count)
	if err != nil {
		return nil, &UnitParseError{Input: input, Err: err}
	}
	if len(g.Pairs) != 2*count {
		return nil, &UnitParseError{Input: input, Err: fmt.Errorf("parshape declares %d line(s) but has %d dimen(s)", count, len(g.Pairs))}
	}
	entries := make([]typeset.ParshapeEntry, 0, count)
	for i := 0; i < len(g.Pairs); i += 2 {
		indent, err := g.Pairs[i].toDimen()
		if err != nil {
			return nil, &UnitParseError{Input: input, Err: err}
		}
		length, err := g.Pairs[i+1].toDimen()
		if err != nil {
			return nil, &UnitParseError{Input: input, Err: err}
		}
		entries = append(entries, typeset.ParshapeEntry{
			Indent: indent.Resolve(u),
			Length: length.Resolve(u),
		})
	}
	return entries, nil
}
