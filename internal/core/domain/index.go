package domain

import (
	"fmt"
	"sync"
)

// DocumentIndex is the in-memory collection of indexed chunks.
//
// It is an explicit owned container passed to the services that operate on
// it, not package-level state. The index is a flat ordered sequence:
// insertion order is the only implicit ordering and serves as the tie-break
// for equal similarity scores.
//
// The index performs no I/O. Persistence is a separate step invoked by the
// store service after each mutation.
//
// Execution is single-threaded today (one logical task, sequential embedding
// calls), but operations are mutex-guarded so that a future parallel
// embedding pipeline cannot interleave partial writes.
type DocumentIndex struct {
	mu     sync.RWMutex
	chunks []DocumentChunk
}

// NewDocumentIndex creates an empty document index.
func NewDocumentIndex() *DocumentIndex {
	return &DocumentIndex{}
}

// Add appends one already-embedded chunk, preserving insertion order.
// A chunk without an embedding is rejected: embedding assignment must
// happen before insertion, never after.
func (x *DocumentIndex) Add(chunk DocumentChunk) error {
	if len(chunk.Embedding) == 0 {
		return fmt.Errorf("%w: chunk %q has no embedding", ErrInvalidInput, chunk.ID)
	}
	if chunk.Metadata.RepoURL == "" {
		return fmt.Errorf("%w: chunk %q has no repository URL", ErrInvalidInput, chunk.ID)
	}
	if !chunk.Metadata.Type.Valid() {
		return fmt.Errorf("%w: chunk %q has unknown artifact type %q", ErrInvalidInput, chunk.ID, chunk.Metadata.Type)
	}

	x.mu.Lock()
	defer x.mu.Unlock()
	x.chunks = append(x.chunks, chunk)
	return nil
}

// RemoveRepository removes exactly the chunks whose metadata repository URL
// equals repoURL. The relative order of the remaining chunks is preserved.
// Removing an unknown repository is a no-op.
func (x *DocumentIndex) RemoveRepository(repoURL string) int {
	x.mu.Lock()
	defer x.mu.Unlock()

	kept := x.chunks[:0]
	removed := 0
	for _, chunk := range x.chunks {
		if chunk.Metadata.RepoURL == repoURL {
			removed++
			continue
		}
		kept = append(kept, chunk)
	}
	// Zero the tail so removed chunks (and their embeddings) can be collected.
	for i := len(kept); i < len(x.chunks); i++ {
		x.chunks[i] = DocumentChunk{}
	}
	x.chunks = kept
	return removed
}

// Clear empties the index entirely.
func (x *DocumentIndex) Clear() {
	x.mu.Lock()
	defer x.mu.Unlock()
	x.chunks = nil
}

// Count returns the number of indexed chunks.
func (x *DocumentIndex) Count() int {
	x.mu.RLock()
	defer x.mu.RUnlock()
	return len(x.chunks)
}

// Chunks returns a copy of the chunk sequence in insertion order.
// The copy shares embedding slices with the index; callers must treat
// chunks as read-only.
func (x *DocumentIndex) Chunks() []DocumentChunk {
	x.mu.RLock()
	defer x.mu.RUnlock()
	out := make([]DocumentChunk, len(x.chunks))
	copy(out, x.chunks)
	return out
}

// Replace swaps the entire chunk sequence. Used when loading a persisted
// snapshot at startup.
func (x *DocumentIndex) Replace(chunks []DocumentChunk) {
	x.mu.Lock()
	defer x.mu.Unlock()
	x.chunks = chunks
}

// Repositories returns the distinct repository URLs present in the index
// mapped to their chunk counts.
func (x *DocumentIndex) Repositories() map[string]int {
	x.mu.RLock()
	defer x.mu.RUnlock()
	counts := make(map[string]int)
	for _, chunk := range x.chunks {
		counts[chunk.Metadata.RepoURL]++
	}
	return counts
}
