package unitlang

import (
	"testing"

	"github.com/ByLCY/typeset/typeset"
)

func TestParseDimenPhysicalUnits(t *testing.T) {
	u := typeset.DefaultUnitSystem(1, 10, 5)
	got, err := ParseDimen("12.5pt", u)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 12.5 {
		t.Errorf("got %v, want 12.5", got)
	}

	got, err = ParseDimen("2em", u)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 20 {
		t.Errorf("got %v, want 20", got)
	}
}

func TestParseDimenNegativeAndBareNumberDefaultsToPoints(t *testing.T) {
	u := typeset.DefaultUnitSystem(1, 10, 5)
	got, err := ParseDimen("-3", u)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != -3 {
		t.Errorf("got %v, want -3", got)
	}
}

func TestParseDimenMalformedReturnsUnitParseError(t *testing.T) {
	u := typeset.DefaultUnitSystem(1, 10, 5)
	if _, err := ParseDimen("not-a-dimen", u); err == nil {
		t.Fatal("expected an error")
	} else if _, ok := err.(*UnitParseError); !ok {
		t.Fatalf("expected *UnitParseError, got %T", err)
	}
}

func TestParseGlueWithInfiniteStretch(t *testing.T) {
	u := typeset.DefaultUnitSystem(1, 10, 5)
	g, err := ParseGlue("5pt plus 1fil minus 2pt", u)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if g.Space != 5 {
		t.Errorf("space = %v, want 5", g.Space)
	}
	if g.StretchOrder != typeset.Fil || g.Stretch != 1 {
		t.Errorf("stretch = %v at order %v, want 1 at Fil", g.Stretch, g.StretchOrder)
	}
	if g.Shrink != 2 || g.ShrinkOrder != typeset.Normal {
		t.Errorf("shrink = %v at order %v, want 2 at Normal", g.Shrink, g.ShrinkOrder)
	}
}

func TestParseGlueSpaceOnly(t *testing.T) {
	u := typeset.DefaultUnitSystem(1, 10, 5)
	g, err := ParseGlue("3pt", u)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if g.Space != 3 || g.Stretch != 0 || g.Shrink != 0 {
		t.Errorf("expected a rigid 3pt glue, got %+v", g)
	}
}

func TestParseParshapeRoundTrip(t *testing.T) {
	u := typeset.DefaultUnitSystem(1, 2, 5)
	entries, err := ParseParshape("=1 1pt 10em", u)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []typeset.ParshapeEntry{{Indent: 1, Length: 20}}
	if len(entries) != len(want) {
		t.Fatalf("got %d entries, want %d", len(entries), len(want))
	}
	for i := range want {
		if entries[i] != want[i] {
			t.Errorf("entry %d = %+v, want %+v", i, entries[i], want[i])
		}
	}
}

func TestParseParshapeEmpty(t *testing.T) {
	u := typeset.DefaultUnitSystem(1, 2, 5)
	entries, err := ParseParshape("=0", u)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("got %d entries, want 0", len(entries))
	}
}

func TestParseParshapeMultipleLines(t *testing.T) {
	u := typeset.DefaultUnitSystem(1, 2, 5)
	entries, err := ParseParshape("=2 10pt 325pt 0pt 345pt", u)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []typeset.ParshapeEntry{{Indent: 10, Length: 325}, {Indent: 0, Length: 345}}
	if len(entries) != len(want) {
		t.Fatalf("got %d entries, want %d", len(entries), len(want))
	}
	for i := range want {
		if entries[i] != want[i] {
			t.Errorf("entry %d = %+v, want %+v", i, entries[i], want[i])
		}
	}
}

func TestParseParshapeCountMismatch(t *testing.T) {
	u := typeset.DefaultUnitSystem(1, 2, 5)
	if _, err := ParseParshape("=1 1pt", u); err == nil {
		t.Fatal("expected an error for a dimen count that disagrees with the declared line count")
	}
}

func TestParseDimenAcceptsExplicitPlusSign(t *testing.T) {
	u := typeset.DefaultUnitSystem(1, 10, 5)
	got, err := ParseDimen("+20pt", u)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 20 {
		t.Errorf("got %v, want 20", got)
	}
}

func TestParseKern(t *testing.T) {
	u := typeset.DefaultUnitSystem(1, 10, 5)
	k, err := ParseKern("4pt", u)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if k.Space != 4 {
		t.Errorf("got %v, want 4", k.Space)
	}
}

func TestParseKernLeadingDotDecimal(t *testing.T) {
	u := typeset.DefaultUnitSystem(1, 10, 5)
	k, err := ParseKern("-.125pt ", u)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if k.Space != -0.125 {
		t.Errorf("got %v, want -0.125", k.Space)
	}
}

func TestFormatDimenRoundTripsThroughParse(t *testing.T) {
	cases := []typeset.Dimen{
		{Value: 12.5, Unit: typeset.UnitPT},
		{Value: -0.125, Unit: typeset.UnitPT},
		{Value: 2, Unit: typeset.UnitFil},
	}
	for _, want := range cases {
		text := FormatDimen(want)
		got, err := ParseDimenValue(text)
		if err != nil {
			t.Fatalf("ParseDimenValue(%q) failed: %v", text, err)
		}
		if got != want {
			t.Errorf("round trip through %q: got %+v, want %+v", text, got, want)
		}
	}
}
