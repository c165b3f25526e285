package typeset

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHBoxExactWidthInvariant(t *testing.T) {
	nodes := List{
		NewRule(10, 5, 1),
		&Glue{Space: 2, Stretch: 4, Shrink: 2},
		NewRule(10, 8, 2),
	}
	box := HBox(nodes, 30)
	require.Equal(t, 30.0, box.Width, "hbox width must equal the target, not the natural width")
	require.Equal(t, 8.0, box.Height, "hbox height is the tallest child")
	require.Equal(t, 2.0, box.Depth, "hbox depth is the deepest child")
}

func TestHBoxNaturalWidthGivesZeroRatio(t *testing.T) {
	nodes := List{NewRule(10, 0, 0), &Glue{Space: 5, Stretch: 1, Shrink: 1}, NewRule(10, 0, 0)}
	box := HBox(nodes, 25)
	require.Equal(t, 0.0, box.GlueRatio)
}

func TestHBoxShiftAmountAffectsHeightAndDepthOppositely(t *testing.T) {
	raised := NewRule(1, 4, 4)
	raised.ShiftAmount = 2
	box := HBox(List{raised}, 1)
	require.Equal(t, 6.0, box.Height, "raising a box should increase effective height")
	require.Equal(t, 2.0, box.Depth, "raising a box should decrease effective depth")
}

func TestVBoxHeightIsTargetAndWidthIsWidestChild(t *testing.T) {
	nodes := List{NewRule(3, 4, 1), &Kern{Space: 2}, NewRule(5, 3, 2)}
	box := VBox(nodes, 100)
	require.Equal(t, 100.0, box.Height)
	require.Equal(t, 5.0, box.Width, "vbox width is the widest child")
}

func TestNaturalHeightGivesZeroRatioVBox(t *testing.T) {
	nodes := List{NewRule(3, 4, 1), &Kern{Space: 2}, NewRule(5, 3, 2)}
	box := VBox(nodes, NaturalHeight(nodes))
	require.Equal(t, 0.0, box.GlueRatio)
}
