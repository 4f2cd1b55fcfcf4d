package similarity

import (
	"math"
	"testing"
)

func TestCosine(t *testing.T) {
	if got := Cosine([]float64{1, 0}, []float64{1, 0}); math.Abs(got-1) > 1e-12 {
		t.Fatalf("identical vectors: expected 1, got %v", got)
	}
	if got := Cosine([]float64{1, 0}, []float64{0, 1}); got != 0 {
		t.Fatalf("orthogonal vectors: expected 0, got %v", got)
	}
	if got := Cosine([]float64{1, 0}, []float64{-1, 0}); math.Abs(got+1) > 1e-12 {
		t.Fatalf("opposite vectors: expected -1, got %v", got)
	}
	if got := Cosine([]float64{1, 2}, []float64{1, 2, 3}); got != 0 {
		t.Fatalf("length mismatch: expected 0, got %v", got)
	}
	if got := Cosine([]float64{0, 0}, []float64{1, 2}); got != 0 {
		t.Fatalf("zero norm: expected 0, got %v", got)
	}
}

func TestCosineSparse(t *testing.T) {
	a := map[string]float64{"go": 1, "redis": 1}
	if got := CosineSparse(a, a); math.Abs(got-1) > 1e-12 {
		t.Fatalf("identical sparse vectors: expected 1, got %v", got)
	}
	b := map[string]float64{"python": 1, "django": 1}
	if got := CosineSparse(a, b); got != 0 {
		t.Fatalf("disjoint sparse vectors: expected 0, got %v", got)
	}
	if got := CosineSparse(nil, a); got != 0 {
		t.Fatalf("nil vector: expected 0, got %v", got)
	}

	// Scaling one vector must not change the similarity.
	scaled := map[string]float64{"go": 3, "redis": 3}
	if got := CosineSparse(a, scaled); math.Abs(got-1) > 1e-12 {
		t.Fatalf("scaled sparse vectors: expected 1, got %v", got)
	}
}
