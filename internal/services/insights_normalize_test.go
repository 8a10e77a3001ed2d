package services

import (
	"testing"

	"gonum.org/v1/gonum/mat"
)

func TestNormalizeMatrix_Nil(t *testing.T) {
	if buildFeatureMatrix(nil) != nil {
		t.Error("buildFeatureMatrix(nil) should be nil")
	}
	if normalizeMatrix(nil) != nil {
		t.Error("normalizeMatrix(nil) should be nil")
	}
}

func TestNormalizeMatrix_SingleRow(t *testing.T) {
	vectors := []featureVector{
		{completion: 0.5, engagement: 1.5, recency: -0.2, volume: 42, costEff: 3.1},
	}

	out := normalizeMatrix(buildFeatureMatrix(vectors))

	want := []float64{0.5, 1.0, 0, 0, 0}
	for j, w := range want {
		if got := out.At(0, j); got != w {
			t.Errorf("column %d = %v, want %v", j, got, w)
		}
	}
}

func TestNormalizeMatrix_MinMaxScaling(t *testing.T) {
	vectors := []featureVector{
		{completion: 0, engagement: 0.5, recency: 0, volume: 5, costEff: 0},
		{completion: 0.5, engagement: 0.5, recency: 0.25, volume: 10, costEff: 2},
		{completion: 1.0, engagement: 0.5, recency: 1.0, volume: 25, costEff: 4},
	}

	out := normalizeMatrix(buildFeatureMatrix(vectors))

	// Min row scales to 0, max row to 1
	for j := 0; j < featureCount; j++ {
		if j == colEngagement {
			continue
		}
		if got := out.At(0, j); got != 0 {
			t.Errorf("min row column %d = %v, want 0", j, got)
		}
		if got := out.At(2, j); got != 1 {
			t.Errorf("max row column %d = %v, want 1", j, got)
		}
	}

	if got := out.At(1, colCompletion); got != 0.5 {
		t.Errorf("mid completion = %v, want 0.5", got)
	}
	if got := out.At(1, colVolume); got != 0.25 {
		t.Errorf("mid volume = %v, want 0.25", got)
	}

	// Zero-variance engagement column collapses to 0 for every row
	for i := 0; i < 3; i++ {
		if got := out.At(i, colEngagement); got != 0 {
			t.Errorf("zero-variance column row %d = %v, want 0", i, got)
		}
	}
}

func TestNormalizeMatrix_DoesNotMutateInput(t *testing.T) {
	vectors := []featureVector{
		{completion: 0.2, volume: 5},
		{completion: 0.8, volume: 10},
	}
	in := buildFeatureMatrix(vectors)
	before := mat.DenseCopyOf(in)

	normalizeMatrix(in)

	if !mat.Equal(in, before) {
		t.Error("normalizeMatrix mutated its input")
	}
}
