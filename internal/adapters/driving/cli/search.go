package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/repolens-labs/repolens-cli/internal/core/domain"
)

var (
	searchLimit int
	searchJSON  bool
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search indexed documents",
	Long: `Searches all indexed document chunks by semantic similarity.
The query is embedded once and results are ranked by cosine similarity.`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().IntVarP(&searchLimit, "limit", "n", domain.DefaultSearchLimit, "maximum number of results")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output results as JSON")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	query := args[0]

	if storeService == nil {
		return errors.New("document store not configured")
	}

	results, err := storeService.Search(cmd.Context(), query, searchLimit)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if searchJSON {
		return outputSearchJSON(cmd, results)
	}

	return outputSearchTable(cmd, results)
}

func outputSearchJSON(cmd *cobra.Command, results []domain.SearchResult) error {
	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputSearchTable(cmd *cobra.Command, results []domain.SearchResult) error {
	if len(results) == 0 {
		cmd.Println("No results found.")
		return nil
	}

	cmd.Println("Results:")
	cmd.Println()
	for i := range results {
		cmd.Printf("  [%d] %s / %s (%.2f)\n", i+1,
			results[i].Metadata.RepoURL, results[i].Metadata.Type, results[i].Score)
		if results[i].Metadata.Path != "" {
			cmd.Printf("      Path: %s\n", results[i].Metadata.Path)
		}
		cmd.Printf("      %s\n", snippet(results[i].Content))
		cmd.Println()
	}

	return nil
}

// snippet truncates content to a single display line.
func snippet(content string) string {
	const maxLen = 160
	if len(content) <= maxLen {
		return content
	}
	return content[:maxLen] + "..."
}
