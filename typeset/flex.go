package typeset

// FlexTotals buckets accumulated stretch or shrink by order. Only the
// highest non-zero order is ever significant when solving a glue ratio:
// a single fil of flex absorbs any amount of finite (Normal) slack.
type FlexTotals struct {
	Normal, Fil, Fill, Filll float64
}

// AddAt adds v into the bucket for order o and returns the result.
func (f FlexTotals) AddAt(o GlueOrder, v float64) FlexTotals {
	switch o {
	case Fil:
		f.Fil += v
	case Fill:
		f.Fill += v
	case Filll:
		f.Filll += v
	default:
		f.Normal += v
	}
	return f
}

// Add returns the component-wise sum of f and o.
func (f FlexTotals) Add(o FlexTotals) FlexTotals {
	return FlexTotals{f.Normal + o.Normal, f.Fil + o.Fil, f.Fill + o.Fill, f.Filll + o.Filll}
}

// Sub returns the component-wise difference f - o.
func (f FlexTotals) Sub(o FlexTotals) FlexTotals {
	return FlexTotals{f.Normal - o.Normal, f.Fil - o.Fil, f.Fill - o.Fill, f.Filll - o.Filll}
}

// Order returns the highest order with a non-zero component, or Normal
// if all components are zero.
func (f FlexTotals) Order() GlueOrder {
	switch {
	case f.Filll != 0:
		return Filll
	case f.Fill != 0:
		return Fill
	case f.Fil != 0:
		return Fil
	default:
		return Normal
	}
}

// AtOrder returns the component at order o.
func (f FlexTotals) AtOrder(o GlueOrder) float64 {
	switch o {
	case Fil:
		return f.Fil
	case Fill:
		return f.Fill
	case Filll:
		return f.Filll
	default:
		return f.Normal
	}
}

// infRatio is the sentinel glue ratio signalling "unviable": a Normal-order
// target that cannot be reached because the available flex at that order
// is zero. It mirrors a very large finite badness rather than true
// infinity, matching how a forced break's ratio is compared against a
// tolerance elsewhere.
const infRatio = float64(InfPenalty)

// solveRatio computes the glue ratio and effective order needed to close
// a gap of delta using the given stretch (delta > 0) or shrink (delta < 0)
// totals. If the effective order is not Normal, the infinite flex absorbs
// the entire gap and the ratio is reported as 0 (no perceptible stretch).
func solveRatio(delta float64, stretch, shrink FlexTotals) (float64, GlueOrder) {
	switch {
	case delta > 0:
		order := stretch.Order()
		if order != Normal {
			return 0, order
		}
		if mag := stretch.Normal; mag > 0 {
			return delta / mag, Normal
		}
		return infRatio, Normal
	case delta < 0:
		order := shrink.Order()
		if order != Normal {
			return 0, order
		}
		if mag := shrink.Normal; mag > 0 {
			return delta / mag, Normal
		}
		return infRatio, Normal
	default:
		return 0, Normal
	}
}

// flexContribution is the amount a single glue's rendered size deviates
// from its natural space once a containing box has settled on ratio at
// order: it only fires when this glue's own stretch or shrink order
// matches the box's effective order, exactly like the box-level ratio
// only ever draws from a single order.
func flexContribution(g *Glue, ratio float64, order GlueOrder) float64 {
	switch {
	case ratio < 0 && order == g.ShrinkOrder:
		return ratio * g.Shrink
	case ratio >= 0 && order == g.StretchOrder:
		return ratio * g.Stretch
	default:
		return 0
	}
}

func accumulateFlex(stretch, shrink *FlexTotals, g *Glue) {
	*stretch = stretch.AddAt(g.StretchOrder, g.Stretch)
	*shrink = shrink.AddAt(g.ShrinkOrder, g.Shrink)
}
