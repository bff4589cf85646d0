package cli

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/repolens-labs/repolens-cli/internal/core/domain"
)

func TestSearchCmd_Use(t *testing.T) {
	assert.Equal(t, "search [query]", searchCmd.Use)
}

func TestSearchCmd_HasLimitFlag(t *testing.T) {
	flag := searchCmd.Flags().Lookup("limit")
	require.NotNil(t, flag, "limit flag should exist")
	assert.Equal(t, "n", flag.Shorthand)
	assert.Equal(t, "5", flag.DefValue)
}

func TestSearchCmd_RequiresExactlyOneArg(t *testing.T) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"search"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 1 arg(s)")
}

func TestSearchCmd_PrintsRankedResults(t *testing.T) {
	mock, cleanup := setupTestService()
	defer cleanup()
	mock.results = []domain.SearchResult{
		{
			Content: "The scheduler uses a worker pool.",
			Metadata: domain.ChunkMetadata{
				RepoURL: "https://github.com/acme/widgets",
				Type:    domain.ArtifactReadme,
			},
			Score: 0.92,
		},
		{
			Content: "Connection pooling is configured in db.go.",
			Metadata: domain.ChunkMetadata{
				RepoURL: "https://github.com/acme/widgets",
				Type:    domain.ArtifactFileExplanation,
				Path:    "internal/db.go",
			},
			Score: 0.71,
		},
	}

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"search", "worker pool"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Results:")
	assert.Contains(t, buf.String(), "0.92")
	assert.Contains(t, buf.String(), "The scheduler uses a worker pool.")
	assert.Contains(t, buf.String(), "Path: internal/db.go")
}

func TestSearchCmd_JSONOutput(t *testing.T) {
	mock, cleanup := setupTestService()
	defer cleanup()
	mock.results = []domain.SearchResult{
		{
			Content: "chunk text",
			Metadata: domain.ChunkMetadata{
				RepoURL: "https://github.com/acme/widgets",
				Type:    domain.ArtifactReadme,
			},
			Score: 0.5,
		},
	}

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"search", "--json", "query"})
	defer func() {
		rootCmd.SetArgs(nil)
		searchJSON = false
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), `"content"`)
	assert.Contains(t, buf.String(), `"repoUrl"`)
	assert.Contains(t, buf.String(), `"score"`)
}

func TestSearchCmd_EmptyResults(t *testing.T) {
	_, cleanup := setupTestService()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"search", "nothing matches"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "No results found")
}

func TestSearchCmd_ServiceNotConfigured(t *testing.T) {
	old := storeService
	storeService = nil
	defer func() {
		storeService = old
	}()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"search", "query"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "document store not configured")
}

func TestSearchCmd_ServiceError(t *testing.T) {
	mock, cleanup := setupTestService()
	defer cleanup()
	mock.searchErr = errors.New("provider unavailable")

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"search", "query"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "search failed")
}

func TestSnippet_TruncatesLongContent(t *testing.T) {
	long := make([]byte, 300)
	for i := range long {
		long[i] = 'a'
	}

	got := snippet(string(long))

	assert.Len(t, got, 163)
	assert.Contains(t, got, "...")
}

func TestSnippet_KeepsShortContent(t *testing.T) {
	assert.Equal(t, "short text", snippet("short text"))
}
