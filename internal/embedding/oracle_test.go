package embedding

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnavailable_Similarity(t *testing.T) {
	var o Unavailable

	sim, ok := o.Similarity(context.Background(), "backend engineer", "software engineer")
	assert.False(t, ok)
	assert.Equal(t, 0.0, sim)
}

func TestUnavailable_SimilarityBatch(t *testing.T) {
	var o Unavailable

	sims, ok := o.SimilarityBatch(context.Background(), "query", []string{"a", "b"})
	assert.False(t, ok)
	assert.Nil(t, sims)
}

func TestGeminiOracle_NoAPIKeyIsUnavailable(t *testing.T) {
	o := NewGeminiOracle("", "")
	defer func() { _ = o.Close() }()

	_, ok := o.Similarity(context.Background(), "a", "b")
	assert.False(t, ok)

	_, ok = o.SimilarityBatch(context.Background(), "a", []string{"b"})
	assert.False(t, ok)
}

func TestGeminiOracle_EmptyInputsAreUnavailable(t *testing.T) {
	o := NewGeminiOracle("some-key", "")
	defer func() { _ = o.Close() }()

	_, ok := o.Similarity(context.Background(), "", "b")
	assert.False(t, ok)

	_, ok = o.SimilarityBatch(context.Background(), "a", nil)
	assert.False(t, ok)
}

func TestCosineSimilarity_IdenticalVectors(t *testing.T) {
	sim := cosineSimilarity([]float32{1, 2, 3}, []float32{1, 2, 3})
	assert.InDelta(t, 1.0, sim, 0.0001)
}

func TestCosineSimilarity_OrthogonalVectors(t *testing.T) {
	sim := cosineSimilarity([]float32{1, 0}, []float32{0, 1})
	assert.InDelta(t, 0.0, sim, 0.0001)
}

func TestCosineSimilarity_OppositeVectorsClampToZero(t *testing.T) {
	sim := cosineSimilarity([]float32{1, 0}, []float32{-1, 0})
	assert.Equal(t, 0.0, sim)
}

func TestCosineSimilarity_DegenerateInputs(t *testing.T) {
	assert.Equal(t, 0.0, cosineSimilarity(nil, nil))
	assert.Equal(t, 0.0, cosineSimilarity([]float32{1}, []float32{1, 2}))
	assert.Equal(t, 0.0, cosineSimilarity([]float32{0, 0}, []float32{1, 2}))
}
