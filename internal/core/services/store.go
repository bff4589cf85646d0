package services

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/repolens-labs/repolens-cli/internal/core/domain"
	"github.com/repolens-labs/repolens-cli/internal/core/ports/driven"
	"github.com/repolens-labs/repolens-cli/internal/core/ports/driving"
	"github.com/repolens-labs/repolens-cli/internal/logger"
	"github.com/repolens-labs/repolens-cli/internal/normaliser"
)

// Ensure StoreService implements the interface.
var _ driving.DocumentStoreService = (*StoreService)(nil)

// Chunker splits artifact text into bounded, sentence-aligned segments.
type Chunker interface {
	ChunkAll(text string) []string
}

// StoreService is the semantic document store: it orchestrates chunking,
// embedding, indexing, similarity search, and snapshot persistence over an
// explicit owned DocumentIndex.
type StoreService struct {
	index    *domain.DocumentIndex
	chunker  Chunker
	embedder driven.EmbeddingService
	blobs    driven.BlobStore
}

// NewStoreService creates a store service. The embedder may be nil, in which
// case ingestion and search report domain.ErrEmbeddingUnavailable.
func NewStoreService(
	index *domain.DocumentIndex,
	chunker Chunker,
	embedder driven.EmbeddingService,
	blobs driven.BlobStore,
) *StoreService {
	return &StoreService{
		index:    index,
		chunker:  chunker,
		embedder: embedder,
		blobs:    blobs,
	}
}

// ProcessRepository replaces all indexed content for artifacts.URL.
//
// Existing chunks for the repository are removed first (replace-all, not an
// incremental diff), then each present artifact is chunked and embedded
// sequentially, one provider call in flight at a time, so insertion order is
// deterministic. The index is persisted exactly once before returning.
//
// Failure semantics: an embedding failure aborts the remaining artifacts but
// does not roll back chunks already inserted by this call; the snapshot is
// still written so the durable blob never diverges from memory.
func (s *StoreService) ProcessRepository(ctx context.Context, artifacts domain.RepositoryArtifacts) error {
	if strings.TrimSpace(artifacts.URL) == "" {
		return fmt.Errorf("%w: repository URL is required", domain.ErrInvalidInput)
	}
	if s.embedder == nil {
		return domain.ErrEmbeddingUnavailable
	}

	logger.Section("Repository Ingestion")
	logger.Debug("Repository: %s", artifacts.URL)

	removed := s.index.RemoveRepository(artifacts.URL)
	logger.Debug("Removed %d existing chunks", removed)

	ingestErr := s.ingestArtifacts(ctx, artifacts)
	if ingestErr != nil {
		logger.Warn("Ingestion aborted: %v", ingestErr)
	}

	if err := s.persist(ctx); err != nil {
		if ingestErr != nil {
			return ingestErr
		}
		return err
	}
	return ingestErr
}

// ingestArtifacts indexes every present artifact in the spec'd order:
// readme, critical analysis, file explanations (sorted by path for
// determinism), then the chat transcript as a single blob.
func (s *StoreService) ingestArtifacts(ctx context.Context, artifacts domain.RepositoryArtifacts) error {
	if artifacts.Readme != "" {
		// READMEs are markdown; strip formatting so chunks embed as prose.
		readme := normaliser.StripMarkdown(artifacts.Readme)
		if err := s.addArtifact(ctx, artifacts.URL, domain.ArtifactReadme, "", readme); err != nil {
			return err
		}
	}

	if artifacts.CriticalAnalysis != "" {
		if err := s.addArtifact(ctx, artifacts.URL, domain.ArtifactCriticalAnalysis, "", artifacts.CriticalAnalysis); err != nil {
			return err
		}
	}

	paths := make([]string, 0, len(artifacts.FileExplanations))
	for path := range artifacts.FileExplanations {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	for _, path := range paths {
		explanation := artifacts.FileExplanations[path]
		if explanation == "" {
			continue
		}
		if err := s.addArtifact(ctx, artifacts.URL, domain.ArtifactFileExplanation, path, explanation); err != nil {
			return err
		}
	}

	if transcript := formatTranscript(artifacts.ChatMessages); transcript != "" {
		if err := s.addArtifact(ctx, artifacts.URL, domain.ArtifactChatMessage, "", transcript); err != nil {
			return err
		}
	}

	return nil
}

// addArtifact chunks text and embeds each chunk before inserting it; a chunk
// never enters the index without its embedding.
func (s *StoreService) addArtifact(ctx context.Context, repoURL string, artifactType domain.ArtifactType, path, text string) error {
	chunks := s.chunker.ChunkAll(text)
	logger.Debug("Artifact %s: %d chunks", artifactType, len(chunks))

	for _, content := range chunks {
		embedding, err := s.embedder.Embed(ctx, content)
		if err != nil {
			return fmt.Errorf("embed %s chunk: %w", artifactType, err)
		}

		chunk := domain.DocumentChunk{
			ID:      uuid.New().String(),
			Content: content,
			Metadata: domain.ChunkMetadata{
				RepoURL: repoURL,
				Type:    artifactType,
				Path:    path,
			},
			Embedding: embedding,
		}
		if err := s.index.Add(chunk); err != nil {
			return err
		}
	}
	return nil
}

// formatTranscript concatenates chat messages as "<role>: <content>" lines
// in original order. Messages are indexed as one blob so that exchanges
// spanning several short turns stay within a single chunk.
func formatTranscript(messages []domain.ChatMessage) string {
	if len(messages) == 0 {
		return ""
	}
	lines := make([]string, len(messages))
	for i, msg := range messages {
		lines[i] = msg.Role + ": " + msg.Content
	}
	return strings.Join(lines, "\n")
}

// RemoveRepository removes every chunk belonging to repoURL and persists.
func (s *StoreService) RemoveRepository(ctx context.Context, repoURL string) error {
	if strings.TrimSpace(repoURL) == "" {
		return fmt.Errorf("%w: repository URL is required", domain.ErrInvalidInput)
	}

	removed := s.index.RemoveRepository(repoURL)
	logger.Debug("Removed %d chunks for %s", removed, repoURL)

	return s.persist(ctx)
}

// Search embeds the query once and ranks every indexed chunk by cosine
// similarity, descending. Equal scores keep insertion order (stable sort).
// Fewer than limit indexed chunks returns all of them.
func (s *StoreService) Search(ctx context.Context, query string, limit int) ([]domain.SearchResult, error) {
	if s.embedder == nil {
		return nil, domain.ErrEmbeddingUnavailable
	}
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("%w: empty query", domain.ErrInvalidInput)
	}
	if limit <= 0 {
		limit = domain.DefaultSearchLimit
	}

	logger.Section("Similarity Search")
	logger.Debug("Query: %q, limit: %d", query, limit)

	queryEmbedding, err := s.embedder.Embed(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("embed query: %w", err)
	}

	chunks := s.index.Chunks()
	results := make([]domain.SearchResult, 0, len(chunks))
	for _, chunk := range chunks {
		score, err := domain.CosineSimilarity(queryEmbedding, chunk.Embedding)
		if err != nil {
			// Dimension mismatch or degenerate vector: fail fast rather
			// than silently mis-rank.
			return nil, fmt.Errorf("score chunk %s: %w", chunk.ID, err)
		}
		results = append(results, domain.SearchResult{
			Content:  chunk.Content,
			Metadata: chunk.Metadata,
			Score:    score,
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	if len(results) > limit {
		results = results[:limit]
	}
	logger.Debug("Returning %d results", len(results))
	return results, nil
}

// DocumentCount returns the number of indexed chunks.
func (s *StoreService) DocumentCount() int {
	return s.index.Count()
}

// Repositories returns the distinct indexed repository URLs with chunk counts.
func (s *StoreService) Repositories() map[string]int {
	return s.index.Repositories()
}

// Clear empties the index entirely and persists the empty state.
func (s *StoreService) Clear(ctx context.Context) error {
	s.index.Clear()
	return s.persist(ctx)
}

// Ping verifies the embedding provider is reachable.
func (s *StoreService) Ping(ctx context.Context) error {
	if s.embedder == nil {
		return domain.ErrEmbeddingUnavailable
	}
	return s.embedder.Ping(ctx)
}
