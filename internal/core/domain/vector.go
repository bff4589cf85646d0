package domain

import (
	"fmt"
	"math"
)

// CosineSimilarity returns the cosine of the angle between a and b,
// a score in [-1, 1] where 1 means identical direction.
//
// Vectors must share the same dimension and must not have zero norm.
// Both conditions are validation failures rather than NaN/Inf results:
// mixing embedding models is unsupported, and the embedding client must
// never produce a degenerate vector.
func CosineSimilarity(a, b []float32) (float64, error) {
	if len(a) == 0 || len(b) == 0 {
		return 0, fmt.Errorf("%w: empty embedding vector", ErrInvalidInput)
	}
	if len(a) != len(b) {
		return 0, fmt.Errorf("%w: embedding dimension mismatch (%d vs %d)", ErrInvalidInput, len(a), len(b))
	}

	var dot, normA, normB float64
	for i := range a {
		x, y := float64(a[i]), float64(b[i])
		dot += x * y
		normA += x * x
		normB += y * y
	}

	if normA == 0 || normB == 0 {
		return 0, fmt.Errorf("%w: zero-norm embedding vector", ErrInvalidInput)
	}

	return dot / (math.Sqrt(normA) * math.Sqrt(normB)), nil
}
