package driving

import (
	"context"

	"github.com/repolens-labs/repolens-cli/internal/core/domain"
)

// DocumentStoreService is the semantic document store: ingestion of
// repository artifacts, similarity search over the indexed chunks, and
// repository-scoped lifecycle management.
type DocumentStoreService interface {
	// Load restores the persisted index snapshot. Called once at startup;
	// a missing snapshot yields an empty index.
	Load(ctx context.Context) error

	// ProcessRepository replaces all indexed content for the repository
	// identified by artifacts.URL with freshly chunked and embedded
	// versions of the provided artifacts, then persists the index.
	ProcessRepository(ctx context.Context, artifacts domain.RepositoryArtifacts) error

	// RemoveRepository removes every chunk belonging to repoURL and
	// persists the index. Removing an unknown repository is a no-op.
	RemoveRepository(ctx context.Context, repoURL string) error

	// Search embeds the query once and returns up to limit chunks ranked
	// by descending cosine similarity; ties keep insertion order.
	Search(ctx context.Context, query string, limit int) ([]domain.SearchResult, error)

	// DocumentCount returns the number of indexed chunks.
	DocumentCount() int

	// Repositories returns the distinct indexed repository URLs with
	// their chunk counts.
	Repositories() map[string]int

	// Clear empties the index entirely and persists the empty state.
	Clear(ctx context.Context) error
}
