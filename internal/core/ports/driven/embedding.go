package driven

import "context"

// EmbeddingService generates vector embeddings from text.
//
// The provider is treated as a black box: request is free-form text,
// response is a fixed-length float vector. Any provider-imposed text size
// limits are the caller's responsibility.
//
// The core issues embedding calls sequentially, one chunk at a time, to
// bound provider load and keep insertion order deterministic. Retries and
// throttling belong to the adapter layer (see the retry decorator), not to
// the core.
//
// Implementations may include:
//   - OpenAI (text-embedding-3-small, text-embedding-3-large)
//   - Ollama (nomic-embed-text, all-minilm)
//   - Local models via inference servers
type EmbeddingService interface {
	// Embed generates a vector embedding for the given text.
	Embed(ctx context.Context, text string) ([]float32, error)

	// Dimensions returns the embedding vector size (e.g., 384, 768, 1536).
	// All embeddings across the store must share one dimension; mixing
	// embedding models is unsupported.
	Dimensions() int

	// ModelName returns the name of the embedding model being used.
	ModelName() string

	// Ping validates the service is reachable by making a lightweight
	// test request. Used at startup to fail fast on misconfiguration.
	Ping(ctx context.Context) error

	// Close releases resources.
	Close() error
}
