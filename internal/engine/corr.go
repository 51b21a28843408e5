package engine

import "math"

// Correlate computes the Pearson coefficient matrix over the indicator
// columns of the given rows. Each pair is computed over the rows where
// both cells are present; a pair with fewer than two complete
// observations, or with zero variance on either side, gets 0 (the cell
// has no defined coefficient, and 0 keeps the matrix JSON-encodable).
//
// Callers gate on len(view) > 1; below that the summary view shows the
// need-more-data signal instead of a matrix.
func Correlate(t *Table, view DatasetView) [][]float64 {
	n := int(numIndicators)
	cells := make([][]float64, n)
	for i := range cells {
		cells[i] = make([]float64, n)
	}
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			c := pearson(t.Values[i], t.Values[j], view)
			cells[i][j] = c
			cells[j][i] = c
		}
	}
	return cells
}

func pearson(xs, ys []float64, view DatasetView) float64 {
	var n float64
	var sumX, sumY float64
	for _, r := range view {
		x, y := xs[r], ys[r]
		if math.IsNaN(x) || math.IsNaN(y) {
			continue
		}
		n++
		sumX += x
		sumY += y
	}
	if n < 2 {
		return 0
	}
	meanX, meanY := sumX/n, sumY/n

	var cov, varX, varY float64
	for _, r := range view {
		x, y := xs[r], ys[r]
		if math.IsNaN(x) || math.IsNaN(y) {
			continue
		}
		dx, dy := x-meanX, y-meanY
		cov += dx * dy
		varX += dx * dx
		varY += dy * dy
	}
	if varX == 0 || varY == 0 {
		return 0
	}
	return cov / math.Sqrt(varX*varY)
}

// CorrelationColumns returns the matrix axis labels in cell order.
func CorrelationColumns() []string {
	cols := make([]string, numIndicators)
	for i := range cols {
		cols[i] = Indicator(i).String()
	}
	return cols
}
