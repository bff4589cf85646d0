package main

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"

	blobfile "github.com/repolens-labs/repolens-cli/internal/adapters/driven/blob/file"
	blobsqlite "github.com/repolens-labs/repolens-cli/internal/adapters/driven/blob/sqlite"
	configfile "github.com/repolens-labs/repolens-cli/internal/adapters/driven/config/file"
	"github.com/repolens-labs/repolens-cli/internal/adapters/driven/embedding/ollama"
	"github.com/repolens-labs/repolens-cli/internal/adapters/driven/embedding/openai"
	"github.com/repolens-labs/repolens-cli/internal/adapters/driven/embedding/retry"
	"github.com/repolens-labs/repolens-cli/internal/adapters/driving/cli"
	"github.com/repolens-labs/repolens-cli/internal/chunker"
	"github.com/repolens-labs/repolens-cli/internal/core/domain"
	"github.com/repolens-labs/repolens-cli/internal/core/ports/driven"
	"github.com/repolens-labs/repolens-cli/internal/core/ports/driving"
	"github.com/repolens-labs/repolens-cli/internal/core/services"
)

func main() {
	// Local .env overrides for development; absence is not an error.
	_ = godotenv.Load()

	cli.SetStoreBuilder(buildStoreService)

	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// buildStoreService wires the document store from configuration.
func buildStoreService(configDir string) (driving.DocumentStoreService, error) {
	cfg, err := configfile.Load(configDir)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	embedder, err := buildEmbedder(cfg)
	if err != nil {
		return nil, err
	}

	blobs, err := buildBlobStore(cfg)
	if err != nil {
		return nil, err
	}

	chk := chunker.New(chunker.WithMaxChunkSize(cfg.Chunker.MaxChunkSize))
	index := domain.NewDocumentIndex()

	return services.NewStoreService(index, chk, embedder, blobs), nil
}

func buildEmbedder(cfg *configfile.Config) (driven.EmbeddingService, error) {
	var (
		inner driven.EmbeddingService
		err   error
	)

	timeout := time.Duration(cfg.Embedding.TimeoutSeconds) * time.Second

	switch cfg.Embedding.Provider {
	case "openai":
		inner, err = openai.NewEmbeddingService(openai.Config{
			APIKey:  cfg.APIKey(),
			BaseURL: cfg.Embedding.BaseURL,
			Model:   cfg.Embedding.Model,
			Timeout: timeout,
		})
		if err != nil {
			return nil, err
		}
	case "ollama":
		inner = ollama.NewEmbeddingService(ollama.Config{
			BaseURL: cfg.Embedding.BaseURL,
			Model:   cfg.Embedding.Model,
			Timeout: timeout,
		})
	default:
		return nil, fmt.Errorf("unknown embedding provider %q", cfg.Embedding.Provider)
	}

	return retry.Wrap(inner, retry.Config{
		MaxAttempts: cfg.Embedding.MaxRetries,
	}), nil
}

func buildBlobStore(cfg *configfile.Config) (driven.BlobStore, error) {
	switch cfg.Storage.Backend {
	case "sqlite":
		return blobsqlite.NewStore(cfg.Storage.DataDir)
	case "file":
		return blobfile.NewStore(cfg.Storage.DataDir)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}
}
