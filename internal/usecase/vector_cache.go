package usecase

import (
	"context"
	"fmt"
	"math"
	"time"

	"talent-match/internal/domain/job"
)

// VectorCache stores job embedding vectors between requests. Implementations
// may be unavailable; callers treat every miss or error as a cache bypass.
type VectorCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
}

// JobVectorCacheKey keys a job's embedding by id and last update so an edited
// posting never serves a stale vector.
func JobVectorCacheKey(j job.Posting) string {
	return fmt.Sprintf("embed:job:%s:%d", j.ID, j.UpdatedAt.Unix())
}

func roundTo(v float64, places int) float64 {
	pow := math.Pow(10, float64(places))
	return math.Round(v*pow) / pow
}
