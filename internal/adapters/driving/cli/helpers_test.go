package cli

import (
	"context"

	"github.com/repolens-labs/repolens-cli/internal/core/domain"
	"github.com/repolens-labs/repolens-cli/internal/core/ports/driving"
)

// mockStoreService is a configurable test double for the document store.
type mockStoreService struct {
	loadErr    error
	processErr error
	removeErr  error
	searchErr  error
	clearErr   error

	processed []domain.RepositoryArtifacts
	removed   []string
	cleared   bool

	results []domain.SearchResult
	count   int
	repos   map[string]int
}

var _ driving.DocumentStoreService = (*mockStoreService)(nil)

func (m *mockStoreService) Load(_ context.Context) error { return m.loadErr }

func (m *mockStoreService) ProcessRepository(_ context.Context, artifacts domain.RepositoryArtifacts) error {
	if m.processErr != nil {
		return m.processErr
	}
	m.processed = append(m.processed, artifacts)
	return nil
}

func (m *mockStoreService) RemoveRepository(_ context.Context, repoURL string) error {
	if m.removeErr != nil {
		return m.removeErr
	}
	m.removed = append(m.removed, repoURL)
	return nil
}

func (m *mockStoreService) Search(_ context.Context, _ string, _ int) ([]domain.SearchResult, error) {
	if m.searchErr != nil {
		return nil, m.searchErr
	}
	return m.results, nil
}

func (m *mockStoreService) DocumentCount() int { return m.count }

func (m *mockStoreService) Repositories() map[string]int { return m.repos }

func (m *mockStoreService) Clear(_ context.Context) error {
	if m.clearErr != nil {
		return m.clearErr
	}
	m.cleared = true
	return nil
}

// setupTestService installs a mock store and returns it with a cleanup func.
func setupTestService() (*mockStoreService, func()) {
	old := storeService
	mock := &mockStoreService{}
	storeService = mock
	return mock, func() {
		storeService = old
	}
}
