//go:build !integration

package recommender

import (
	"math"
	"testing"
)

func TestCosineMatrixSymmetric(t *testing.T) {
	matrix := [][]float64{
		{5, 0, 3, 0},
		{4, 0, 2, 0},
		{0, 5, 0, 4},
	}

	sim := CosineMatrix(matrix)

	for i := range sim {
		for j := range sim[i] {
			if sim[i][j] != sim[j][i] {
				t.Errorf("sim[%d][%d]=%v != sim[%d][%d]=%v", i, j, sim[i][j], j, i, sim[j][i])
			}
		}
	}
}

func TestCosineMatrixKnownValues(t *testing.T) {
	matrix := [][]float64{
		{5, 0, 3, 0},
		{4, 0, 2, 0},
		{0, 5, 0, 4},
	}

	sim := CosineMatrix(matrix)

	// rows 0 and 1 overlap on both rated seats:
	// dot = 5*4 + 3*2 = 26, |r0| = sqrt(34), |r1| = sqrt(20)
	want01 := 26 / (math.Sqrt(34) * math.Sqrt(20))
	if math.Abs(sim[0][1]-want01) > 1e-12 {
		t.Errorf("sim[0][1] = %v, want %v", sim[0][1], want01)
	}

	// rows 0 and 2 share no rated seat
	if sim[0][2] != 0 {
		t.Errorf("sim[0][2] = %v, want 0 (disjoint ratings)", sim[0][2])
	}

	// non-zero rows are fully similar to themselves
	for i := range matrix {
		if math.Abs(sim[i][i]-1) > 1e-12 {
			t.Errorf("sim[%d][%d] = %v, want 1", i, i, sim[i][i])
		}
	}
}

func TestCosineMatrixZeroRowConvention(t *testing.T) {
	// A user with no interactions has an undefined cosine; the defined
	// fallback is 0 everywhere, including self-similarity.
	matrix := [][]float64{
		{5, 1},
		{0, 0},
	}

	sim := CosineMatrix(matrix)

	if sim[1][1] != 0 {
		t.Errorf("zero-row self similarity = %v, want 0", sim[1][1])
	}
	if sim[0][1] != 0 || sim[1][0] != 0 {
		t.Errorf("zero-row cross similarity = %v/%v, want 0", sim[0][1], sim[1][0])
	}
}
