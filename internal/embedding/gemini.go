package embedding

import (
	"context"
	"log"
	"math"
	"sync"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// DefaultEmbeddingModel is the Gemini embedding model used when none is configured.
const DefaultEmbeddingModel = "text-embedding-004"

// GeminiOracle implements Oracle over the Gemini embedding API. The client
// is initialized lazily on first use; any initialization or request failure
// makes the call report unavailable rather than surfacing an error.
type GeminiOracle struct {
	apiKey    string
	modelName string

	mu     sync.Mutex
	client *genai.Client
	failed bool
}

// NewGeminiOracle creates a GeminiOracle. An empty API key yields an oracle
// that is permanently unavailable.
func NewGeminiOracle(apiKey, modelName string) *GeminiOracle {
	if modelName == "" {
		modelName = DefaultEmbeddingModel
	}
	return &GeminiOracle{apiKey: apiKey, modelName: modelName}
}

// Similarity embeds both texts and returns their cosine similarity.
func (o *GeminiOracle) Similarity(ctx context.Context, a, b string) (float64, bool) {
	if a == "" || b == "" {
		return 0, false
	}
	vecs, err := o.embed(ctx, []string{a, b})
	if err != nil || len(vecs) != 2 {
		return 0, false
	}
	return cosineSimilarity(vecs[0], vecs[1]), true
}

// SimilarityBatch embeds the query plus all candidates in one API call and
// returns the cosine similarity of each candidate against the query.
func (o *GeminiOracle) SimilarityBatch(ctx context.Context, query string, texts []string) ([]float64, bool) {
	if query == "" || len(texts) == 0 {
		return nil, false
	}
	vecs, err := o.embed(ctx, append([]string{query}, texts...))
	if err != nil || len(vecs) != len(texts)+1 {
		return nil, false
	}

	sims := make([]float64, len(texts))
	for i, vec := range vecs[1:] {
		sims[i] = cosineSimilarity(vecs[0], vec)
	}
	return sims, true
}

// Close releases the underlying client, if one was ever created.
func (o *GeminiOracle) Close() error {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.client == nil {
		return nil
	}
	err := o.client.Close()
	o.client = nil
	return err
}

// embed returns one embedding vector per input text.
func (o *GeminiOracle) embed(ctx context.Context, texts []string) ([][]float32, error) {
	client, err := o.getClient(ctx)
	if err != nil {
		return nil, err
	}

	model := client.EmbeddingModel(o.modelName)
	batch := model.NewBatch()
	for _, text := range texts {
		batch = batch.AddContent(genai.Text(text))
	}

	resp, err := model.BatchEmbedContents(ctx, batch)
	if err != nil {
		return nil, err
	}

	vecs := make([][]float32, 0, len(resp.Embeddings))
	for _, emb := range resp.Embeddings {
		vecs = append(vecs, emb.Values)
	}
	return vecs, nil
}

// getClient lazily initializes the genai client. A failed initialization is
// remembered so the oracle degrades to unavailable instead of retrying on
// every scoring call.
func (o *GeminiOracle) getClient(ctx context.Context) (*genai.Client, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.client != nil {
		return o.client, nil
	}
	if o.failed || o.apiKey == "" {
		return nil, errUnavailable
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(o.apiKey))
	if err != nil {
		o.failed = true
		log.Printf("embedding: failed to initialize Gemini client, falling back to keyword-only scoring: %v", err)
		return nil, err
	}

	o.client = client
	return client, nil
}

// errUnavailable is a sentinel for a permanently unavailable backend.
var errUnavailable = &unavailableError{}

type unavailableError struct{}

func (*unavailableError) Error() string { return "embedding backend unavailable" }

// cosineSimilarity computes the cosine similarity of two vectors, clamped
// to [0, 1]. Mismatched or empty vectors score 0.
func cosineSimilarity(a, b []float32) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0
	}

	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}

	sim := dot / (math.Sqrt(normA) * math.Sqrt(normB))
	return math.Min(1, math.Max(0, sim))
}
