package engine

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestCorrelateSigns checks known relationships in the fixture:
// expenditure rises with the row id, life expectancy with it, the
// mortality columns against it.
func TestCorrelateSigns(t *testing.T) {
	table := testTable()
	view := DatasetView{0, 1, 2, 3}

	cells := Correlate(table, view)
	require.Len(t, cells, int(numIndicators))
	for _, row := range cells {
		require.Len(t, row, int(numIndicators))
	}

	require.InDelta(t, 1.0, cells[Expenditure][Expenditure], 1e-9)
	require.InDelta(t, 1.0, cells[Expenditure][LifeExpect], 1e-9)
	require.InDelta(t, -1.0, cells[Expenditure][InfantMortality], 1e-9)
	// Symmetry
	require.Equal(t, cells[LifeExpect][Expenditure], cells[Expenditure][LifeExpect])
}

// TestCorrelateSkipsMissing verifies rows with a NaN on either side of
// a pair are excluded from that pair only.
func TestCorrelateSkipsMissing(t *testing.T) {
	table := testTable()
	table.Values[LifeExpect][1] = math.NaN()
	view := DatasetView{0, 1, 2, 3}

	cells := Correlate(table, view)
	// Still perfectly linear over the three complete rows.
	require.InDelta(t, 1.0, cells[Expenditure][LifeExpect], 1e-9)
	// The untouched pair keeps all four rows.
	require.InDelta(t, -1.0, cells[Expenditure][InfantMortality], 1e-9)
}

// TestCorrelateDegenerate verifies zero-variance and too-few-rows pairs
// produce 0, never NaN.
func TestCorrelateDegenerate(t *testing.T) {
	table := testTable()
	for r := range table.Values[Undernourishment] {
		table.Values[Undernourishment][r] = 7.0 // constant column
	}

	cells := Correlate(table, DatasetView{0, 1, 2, 3})
	require.Zero(t, cells[Expenditure][Undernourishment])
	require.Zero(t, cells[Undernourishment][Undernourishment])

	single := Correlate(table, DatasetView{0})
	for _, row := range single {
		for _, c := range row {
			require.Zero(t, c)
			require.False(t, math.IsNaN(c))
		}
	}
}
