package typeset

import "strconv"

// Unit tags the physical or infinite-order meaning of a Dimen's Value.
// The physical units resolve to a canonical point scale via a
// UnitSystem; the three fil units carry no physical meaning and resolve
// to themselves as pure stretch/shrink magnitudes.
type Unit int

const (
	UnitPT Unit = iota
	UnitEm
	UnitEx
	UnitPC
	UnitIN
	UnitCM
	UnitMM
	UnitBP
	UnitDD
	UnitCC
	UnitSP
	UnitFil
	UnitFill
	UnitFilll
)

// IsInfinite reports whether u is one of the fil/fill/filll orders.
func (u Unit) IsInfinite() bool {
	return u == UnitFil || u == UnitFill || u == UnitFilll
}

// Order maps an infinite unit to its GlueOrder; physical units map to
// Normal.
func (u Unit) Order() GlueOrder {
	switch u {
	case UnitFil:
		return Fil
	case UnitFill:
		return Fill
	case UnitFilll:
		return Filll
	default:
		return Normal
	}
}

// String returns the canonical textual suffix for u, as accepted by
// unitlang's dimen grammar.
func (u Unit) String() string {
	switch u {
	case UnitPT:
		return "pt"
	case UnitEm:
		return "em"
	case UnitEx:
		return "ex"
	case UnitPC:
		return "pc"
	case UnitIN:
		return "in"
	case UnitCM:
		return "cm"
	case UnitMM:
		return "mm"
	case UnitBP:
		return "bp"
	case UnitDD:
		return "dd"
	case UnitCC:
		return "cc"
	case UnitSP:
		return "sp"
	case UnitFil:
		return "fil"
	case UnitFill:
		return "fill"
	case UnitFilll:
		return "filll"
	default:
		return ""
	}
}

// Dimen is a scalar length tagged with a unit: either a physical
// magnitude awaiting resolution against a UnitSystem, or an infinite-order
// stretch/shrink magnitude that resolves to itself.
type Dimen struct {
	Value float64
	Unit  Unit
}

// IsFinite reports whether d carries a physical (non-infinite) unit.
func (d Dimen) IsFinite() bool {
	return !d.Unit.IsInfinite()
}

// String returns d's canonical textual form, "<value><unit>" (e.g.
// "12.5pt", "-0.125pt", "2fil"), the form unitlang's dimen grammar
// accepts back.
func (d Dimen) String() string {
	return strconv.FormatFloat(d.Value, 'g', -1, 64) + d.Unit.String()
}

// UnitSystem supplies the conversion factors, in canonical points, for
// every physical unit a Dimen can carry. Em and Ex are font-relative and
// must be supplied by the caller; the rest follow the standard TeX
// physical ratios.
type UnitSystem struct {
	PT, Em, Ex, PC, IN, CM, MM, BP, DD, CC, SP float64
}

// DefaultUnitSystem returns the standard TeX physical unit ratios scaled
// by ptScale canonical points per point, with Em and Ex supplied by the
// caller (typically derived from a font's design size).
func DefaultUnitSystem(ptScale, em, ex float64) UnitSystem {
	pt := ptScale
	in := pt * 72.27
	return UnitSystem{
		PT: pt,
		Em: em,
		Ex: ex,
		PC: pt * 12,
		IN: in,
		CM: in / 2.54,
		MM: in / 25.4,
		BP: in / 72,
		DD: pt * 1238 / 1157,
		CC: pt * 1238 / 1157 * 12,
		SP: pt / 65536,
	}
}

// Resolve converts a finite Dimen to canonical points using u. Calling
// Resolve on an infinite Dimen returns d.Value unchanged: infinite
// magnitudes are dimensionless multipliers of an order, not physical
// lengths.
func (d Dimen) Resolve(u UnitSystem) float64 {
	switch d.Unit {
	case UnitPT:
		return d.Value * u.PT
	case UnitEm:
		return d.Value * u.Em
	case UnitEx:
		return d.Value * u.Ex
	case UnitPC:
		return d.Value * u.PC
	case UnitIN:
		return d.Value * u.IN
	case UnitCM:
		return d.Value * u.CM
	case UnitMM:
		return d.Value * u.MM
	case UnitBP:
		return d.Value * u.BP
	case UnitDD:
		return d.Value * u.DD
	case UnitCC:
		return d.Value * u.CC
	case UnitSP:
		return d.Value * u.SP
	default:
		return d.Value
	}
}
