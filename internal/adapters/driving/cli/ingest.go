package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/repolens-labs/repolens-cli/internal/core/domain"
)

var ingestCmd = &cobra.Command{
	Use:   "ingest [artifacts.json]",
	Short: "Index a repository's analysis artifacts",
	Long: `Reads a JSON artifacts file and indexes its contents for search.
Any previously indexed content for the same repository URL is replaced.

The artifacts file has the shape:

  {
    "url": "https://github.com/owner/repo",
    "readme": "...",
    "criticalAnalysis": "...",
    "fileExplanations": {"src/main.go": "..."},
    "chatMessages": [{"role": "user", "content": "..."}]
  }`,
	Args: cobra.ExactArgs(1),
	RunE: runIngest,
}

func init() {
	rootCmd.AddCommand(ingestCmd)
}

func runIngest(cmd *cobra.Command, args []string) error {
	if storeService == nil {
		return errors.New("document store not configured")
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading artifacts file: %w", err)
	}

	var artifacts domain.RepositoryArtifacts
	if err := json.Unmarshal(data, &artifacts); err != nil {
		return fmt.Errorf("parsing artifacts file: %w", err)
	}

	if err := storeService.ProcessRepository(cmd.Context(), artifacts); err != nil {
		return fmt.Errorf("ingest failed: %w", err)
	}

	cmd.Printf("Indexed %s (%d chunks total)\n", artifacts.URL, storeService.DocumentCount())
	return nil
}
