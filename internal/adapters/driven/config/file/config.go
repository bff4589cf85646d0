// Package file provides TOML-based configuration for the RepoLens CLI.
// Settings live in a single config.toml in the repolens config directory;
// missing fields fall back to defaults so a fresh install works without
// any configuration.
package file

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Default configuration values.
const (
	DefaultProvider     = "ollama"
	DefaultStorage      = "file"
	DefaultMaxChunkSize = 500
	DefaultConfigFile   = "config.toml"
)

// EmbeddingConfig holds embedding provider settings.
type EmbeddingConfig struct {
	// Provider selects the embedding backend: "ollama" or "openai".
	Provider string `toml:"provider"`

	// Model is the embedding model name. Empty uses the provider default.
	Model string `toml:"model,omitempty"`

	// BaseURL overrides the provider API base URL.
	BaseURL string `toml:"base_url,omitempty"`

	// APIKeyEnv names the environment variable holding the API key.
	// Default: OPENAI_API_KEY. The key itself is never written to disk.
	APIKeyEnv string `toml:"api_key_env,omitempty"`

	// TimeoutSeconds is the per-request timeout. Zero uses the provider default.
	TimeoutSeconds int `toml:"timeout_seconds,omitempty"`

	// MaxRetries is the number of attempts per embedding call.
	MaxRetries int `toml:"max_retries,omitempty"`
}

// ChunkerConfig holds text chunking settings.
type ChunkerConfig struct {
	// MaxChunkSize is the chunk size ceiling in characters.
	MaxChunkSize int `toml:"max_chunk_size"`
}

// StorageConfig holds snapshot persistence settings.
type StorageConfig struct {
	// Backend selects the blob store: "file" or "sqlite".
	Backend string `toml:"backend"`

	// DataDir is the directory for persisted snapshots.
	// Empty defaults to ~/.repolens/data.
	DataDir string `toml:"data_dir,omitempty"`
}

// Config is the full RepoLens configuration.
type Config struct {
	Embedding EmbeddingConfig `toml:"embedding"`
	Chunker   ChunkerConfig   `toml:"chunker"`
	Storage   StorageConfig   `toml:"storage"`

	path string `toml:"-"`
}

// Default returns a configuration with all defaults applied.
func Default() *Config {
	return &Config{
		Embedding: EmbeddingConfig{
			Provider:  DefaultProvider,
			APIKeyEnv: "OPENAI_API_KEY",
		},
		Chunker: ChunkerConfig{
			MaxChunkSize: DefaultMaxChunkSize,
		},
		Storage: StorageConfig{
			Backend: DefaultStorage,
		},
	}
}

// Load reads configuration from configDir/config.toml. A missing file
// yields the defaults. If configDir is empty, defaults to ~/.repolens.
func Load(configDir string) (*Config, error) {
	if configDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		configDir = filepath.Join(home, ".repolens")
	}

	cfg := Default()
	cfg.path = filepath.Join(configDir, DefaultConfigFile)

	data, err := os.ReadFile(cfg.path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	cfg.applyDefaults()
	return cfg, nil
}

// Save writes the configuration to disk with restricted permissions.
func (c *Config) Save() error {
	if err := os.MkdirAll(filepath.Dir(c.path), 0700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	if err := os.WriteFile(c.path, data, 0600); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Path returns the configuration file path.
func (c *Config) Path() string {
	return c.path
}

// APIKey resolves the provider API key from the configured environment
// variable. Returns empty if unset.
func (c *Config) APIKey() string {
	env := c.Embedding.APIKeyEnv
	if env == "" {
		env = "OPENAI_API_KEY"
	}
	return os.Getenv(env)
}

// Validate checks that configured values fall within supported ranges.
func (c *Config) Validate() error {
	switch c.Embedding.Provider {
	case "ollama", "openai":
	default:
		return fmt.Errorf("unknown embedding provider %q (expected ollama or openai)", c.Embedding.Provider)
	}

	switch c.Storage.Backend {
	case "file", "sqlite":
	default:
		return fmt.Errorf("unknown storage backend %q (expected file or sqlite)", c.Storage.Backend)
	}

	if c.Chunker.MaxChunkSize <= 0 {
		return fmt.Errorf("chunker max_chunk_size must be positive, got %d", c.Chunker.MaxChunkSize)
	}
	return nil
}

// applyDefaults fills zero-valued fields after a partial TOML file loads.
func (c *Config) applyDefaults() {
	if c.Embedding.Provider == "" {
		c.Embedding.Provider = DefaultProvider
	}
	if c.Embedding.APIKeyEnv == "" {
		c.Embedding.APIKeyEnv = "OPENAI_API_KEY"
	}
	if c.Chunker.MaxChunkSize == 0 {
		c.Chunker.MaxChunkSize = DefaultMaxChunkSize
	}
	if c.Storage.Backend == "" {
		c.Storage.Backend = DefaultStorage
	}
}
