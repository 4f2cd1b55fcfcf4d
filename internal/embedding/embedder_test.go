package embedding

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"
)

type stubEmbedder struct{}

func (stubEmbedder) Embed(context.Context, string) ([]float64, error) {
	return []float64{1, 0}, nil
}

func TestMemoProvider_LoadsOnce(t *testing.T) {
	calls := 0
	p := NewMemoProvider(func(context.Context) (Embedder, error) {
		calls++
		return stubEmbedder{}, nil
	}, time.Second)

	for i := 0; i < 3; i++ {
		e, err := p.Embedder(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if e == nil {
			t.Fatalf("expected embedder")
		}
	}
	if calls != 1 {
		t.Fatalf("expected a single load, got %d", calls)
	}
}

func TestMemoProvider_RetriesAfterFailure(t *testing.T) {
	calls := 0
	loadErr := errors.New("model load failed")
	p := NewMemoProvider(func(context.Context) (Embedder, error) {
		calls++
		if calls == 1 {
			return nil, loadErr
		}
		return stubEmbedder{}, nil
	}, time.Second)

	if _, err := p.Embedder(context.Background()); !errors.Is(err, loadErr) {
		t.Fatalf("expected load error, got %v", err)
	}
	if _, err := p.Embedder(context.Background()); err != nil {
		t.Fatalf("expected recovery on retry, got %v", err)
	}
	if calls != 2 {
		t.Fatalf("expected 2 loads, got %d", calls)
	}
}

func TestMemoProvider_AppliesLoadTimeout(t *testing.T) {
	p := NewMemoProvider(func(ctx context.Context) (Embedder, error) {
		if _, ok := ctx.Deadline(); !ok {
			t.Fatalf("expected a deadline on the load context")
		}
		return stubEmbedder{}, nil
	}, time.Second)

	if _, err := p.Embedder(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestL2Normalize(t *testing.T) {
	vec := l2Normalize([]float64{3, 4})
	var sum float64
	for _, v := range vec {
		sum += v * v
	}
	if math.Abs(sum-1) > 1e-12 {
		t.Fatalf("expected unit norm, got %v", sum)
	}

	zero := l2Normalize([]float64{0, 0})
	if zero[0] != 0 || zero[1] != 0 {
		t.Fatalf("zero vector must stay zero")
	}
}
