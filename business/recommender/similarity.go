package recommender

import "math"

// CosineMatrix computes pairwise cosine similarity between every pair of
// matrix rows. The result is symmetric by construction. A row with no
// interactions has an undefined cosine, so it gets similarity 0 against
// every row, itself included.
func CosineMatrix(matrix [][]float64) [][]float64 {
	n := len(matrix)

	sim := make([][]float64, n)
	for i := range sim {
		sim[i] = make([]float64, n)
	}

	norms := make([]float64, n)
	for i, row := range matrix {
		norms[i] = norm(row)
	}

	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			if norms[i] == 0 || norms[j] == 0 {
				continue
			}
			s := dot(matrix[i], matrix[j]) / (norms[i] * norms[j])
			sim[i][j] = s
			sim[j][i] = s
		}
	}

	return sim
}

func dot(a, b []float64) float64 {
	sum := 0.0
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum
}

func norm(a []float64) float64 {
	return math.Sqrt(dot(a, a))
}
