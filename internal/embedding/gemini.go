package embedding

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"talent-match/internal/config"

	"google.golang.org/genai"
)

// GeminiEmbedder produces sentence embeddings through the Gemini embedding
// API. Vectors are truncated to the configured dimensionality and
// re-normalized to unit length.
type GeminiEmbedder struct {
	client    *genai.Client
	model     string
	dimension int32
}

func NewGeminiEmbedder(ctx context.Context, cfg config.EmbeddingConfig) (*GeminiEmbedder, error) {
	apiKey := strings.TrimSpace(cfg.GeminiAPIKey)
	if apiKey == "" {
		return nil, errors.New("gemini api key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	model := strings.TrimSpace(cfg.Model)
	if model == "" {
		model = "gemini-embedding-001"
	}
	dim := cfg.Dimension
	if dim <= 0 {
		dim = 384
	}

	return &GeminiEmbedder{client: client, model: model, dimension: int32(dim)}, nil
}

func (e *GeminiEmbedder) Embed(ctx context.Context, text string) ([]float64, error) {
	if e == nil || e.client == nil {
		return nil, errors.New("gemini embedder is not initialized")
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, errors.New("text must not be empty")
	}

	resp, err := e.client.Models.EmbedContent(ctx, e.model, genai.Text(text), &genai.EmbedContentConfig{
		OutputDimensionality: genai.Ptr(e.dimension),
	})
	if err != nil {
		return nil, fmt.Errorf("embed content: %w", err)
	}
	if len(resp.Embeddings) == 0 || len(resp.Embeddings[0].Values) == 0 {
		return nil, errors.New("gemini api returned empty embedding")
	}

	values := resp.Embeddings[0].Values
	vec := make([]float64, len(values))
	for i, v := range values {
		vec[i] = float64(v)
	}
	return l2Normalize(vec), nil
}

// NewGeminiProvider wires the Gemini backend behind the memoizing provider so
// the client is constructed at most once per process.
func NewGeminiProvider(cfg config.EmbeddingConfig) *MemoProvider {
	return NewMemoProvider(func(ctx context.Context) (Embedder, error) {
		return NewGeminiEmbedder(ctx, cfg)
	}, cfg.LoadTimeout)
}

func l2Normalize(vec []float64) []float64 {
	var sum float64
	for _, v := range vec {
		sum += v * v
	}
	if sum == 0 {
		return vec
	}
	norm := math.Sqrt(sum)
	for i := range vec {
		vec[i] /= norm
	}
	return vec
}
