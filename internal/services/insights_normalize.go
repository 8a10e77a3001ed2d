package services

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Matrix column indices, matching insights.FeatureNames order.
const (
	colCompletion = iota
	colEngagement
	colRecency
	colVolume
	colCostEff
	featureCount
)

// buildFeatureMatrix assembles the (N, 5) matrix of unrounded feature
// values for the subscribed cohort.
func buildFeatureMatrix(vectors []featureVector) *mat.Dense {
	n := len(vectors)
	if n == 0 {
		return nil
	}

	data := make([]float64, 0, n*featureCount)
	for _, v := range vectors {
		data = append(data, v.row()...)
	}
	return mat.NewDense(n, featureCount, data)
}

// normalizeMatrix min-max scales each column into [0, 1].
//
// A zero-variance column carries no ranking signal, so it becomes all
// zeros rather than dividing by zero. With a single row there is
// nothing to compare against: the already-bounded rate columns are
// clamped to [0, 1] as-is and the unbounded volume and cost-efficiency
// columns are forced to zero.
func normalizeMatrix(m *mat.Dense) *mat.Dense {
	if m == nil {
		return nil
	}
	rows, cols := m.Dims()

	if rows == 1 {
		out := mat.DenseCopyOf(m)
		out.Set(0, colVolume, 0)
		out.Set(0, colCostEff, 0)
		for j := 0; j < cols; j++ {
			out.Set(0, j, clamp01(out.At(0, j)))
		}
		return out
	}

	out := mat.NewDense(rows, cols, nil)
	col := make([]float64, rows)
	for j := 0; j < cols; j++ {
		mat.Col(col, j, m)
		lo, hi := floats.Min(col), floats.Max(col)
		span := hi - lo
		for i := 0; i < rows; i++ {
			if span == 0 {
				out.Set(i, j, 0)
			} else {
				out.Set(i, j, (col[i]-lo)/span)
			}
		}
	}
	return out
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
