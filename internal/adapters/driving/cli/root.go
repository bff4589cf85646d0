// Package cli provides the cobra command tree for the RepoLens CLI.
// Commands talk to the core exclusively through driving ports; service
// wiring happens in main and is injected via the Set* functions.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/repolens-labs/repolens-cli/internal/core/ports/driving"
	"github.com/repolens-labs/repolens-cli/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

// storeService is the document store used by all commands.
var storeService driving.DocumentStoreService

// storeBuilder lazily constructs the store service once flags are parsed.
// Set by main; nil in tests, which inject storeService directly.
var storeBuilder func(configDir string) (driving.DocumentStoreService, error)

var (
	verboseFlag bool
	configDir   string
)

var rootCmd = &cobra.Command{
	Use:   "repolens",
	Short: "Semantic search over repository analysis documents",
	Long: `RepoLens indexes textual artifacts produced by repository analysis
(READMEs, per-file explanations, critical analyses, chat transcripts)
and answers natural-language queries with the most relevant passages.

Documents are chunked, embedded via a configurable provider, and ranked
by cosine similarity. The index persists across runs.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		logger.SetVerbose(verboseFlag)

		// version and help need no service, so skip wiring for them.
		switch cmd.Name() {
		case "version", "help", "completion":
			return nil
		}

		if storeService == nil && storeBuilder != nil {
			svc, err := storeBuilder(configDir)
			if err != nil {
				return fmt.Errorf("initialising document store: %w", err)
			}
			storeService = svc

			if err := storeService.Load(cmd.Context()); err != nil {
				return fmt.Errorf("loading index: %w", err)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&configDir, "config", "", "config directory (default ~/.repolens)")
}

// SetStoreService injects the document store used by commands.
func SetStoreService(svc driving.DocumentStoreService) {
	storeService = svc
}

// SetStoreBuilder injects the factory that builds the store service
// after persistent flags are parsed.
func SetStoreBuilder(build func(configDir string) (driving.DocumentStoreService, error)) {
	storeBuilder = build
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
