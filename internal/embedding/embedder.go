package embedding

import (
	"context"
	"errors"
	"sync"
	"time"
)

// Embedder turns text into a fixed-length dense vector.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float64, error)
}

// Provider hands out the process-wide embedder. The default implementation
// memoizes a single successful load; callers inject stubs in tests.
type Provider interface {
	Embedder(ctx context.Context) (Embedder, error)
}

var errNilLoader = errors.New("nil embedder loader")

// MemoProvider lazily constructs an Embedder exactly once. A failed load is
// surfaced to the caller and retried on the next request; a successful load is
// cached for the process lifetime and safe for concurrent use afterward.
type MemoProvider struct {
	mu          sync.Mutex
	load        func(ctx context.Context) (Embedder, error)
	loadTimeout time.Duration
	embedder    Embedder
}

func NewMemoProvider(load func(ctx context.Context) (Embedder, error), loadTimeout time.Duration) *MemoProvider {
	return &MemoProvider{load: load, loadTimeout: loadTimeout}
}

func (p *MemoProvider) Embedder(ctx context.Context) (Embedder, error) {
	if p == nil || p.load == nil {
		return nil, errNilLoader
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.embedder != nil {
		return p.embedder, nil
	}

	if p.loadTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.loadTimeout)
		defer cancel()
	}

	e, err := p.load(ctx)
	if err != nil {
		return nil, err
	}
	p.embedder = e
	return e, nil
}
