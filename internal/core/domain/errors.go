package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input: an empty query,
	// a chunk without an embedding, or mismatched embedding dimensions.
	ErrInvalidInput = errors.New("invalid input")

	// ErrProvider indicates the embedding provider call failed
	// (network, auth, rate limit). Not retried by the core; the retry
	// decorator around the embedding adapter owns retries.
	ErrProvider = errors.New("embedding provider error")

	// ErrEmbeddingUnavailable indicates no embedding service is configured.
	// Ingestion and semantic search are disabled without one.
	ErrEmbeddingUnavailable = errors.New("embedding service unavailable")

	// ErrCorruptSnapshot indicates the persisted index blob could not be
	// decoded or carries an unsupported schema version.
	ErrCorruptSnapshot = errors.New("corrupt index snapshot")
)
