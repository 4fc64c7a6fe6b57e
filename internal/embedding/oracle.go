// Package embedding provides the semantic similarity oracle used by the
// scorer. The oracle is an optional capability: every consumer must keep
// working (keyword-only) when it reports unavailable.
package embedding

import "context"

// Oracle computes semantic similarity between free texts. The boolean
// return is false when the capability is unavailable (no API key, model
// failed to load, request failed); callers treat that as a signal to fall
// back to keyword-only scoring, never as an error.
type Oracle interface {
	// Similarity returns a relatedness score in [0, 1] for two texts.
	Similarity(ctx context.Context, a, b string) (float64, bool)
	// SimilarityBatch returns one score per candidate text against the query.
	SimilarityBatch(ctx context.Context, query string, texts []string) ([]float64, bool)
}

// Unavailable is an Oracle that always reports unavailable. It is the
// default when no embedding backend is configured and is what the scorer
// test suite runs against.
type Unavailable struct{}

// Similarity always reports unavailable.
func (Unavailable) Similarity(_ context.Context, _, _ string) (float64, bool) {
	return 0, false
}

// SimilarityBatch always reports unavailable.
func (Unavailable) SimilarityBatch(_ context.Context, _ string, _ []string) ([]float64, bool) {
	return nil, false
}
