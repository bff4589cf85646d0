package cli

import (
	"errors"
	"sort"

	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show indexed repositories and chunk counts",
	Args:  cobra.NoArgs,
	RunE:  runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, _ []string) error {
	if storeService == nil {
		return errors.New("document store not configured")
	}

	repos := storeService.Repositories()
	if len(repos) == 0 {
		cmd.Println("Index is empty.")
		return nil
	}

	urls := make([]string, 0, len(repos))
	for url := range repos {
		urls = append(urls, url)
	}
	sort.Strings(urls)

	cmd.Printf("Indexed repositories (%d):\n", len(urls))
	for _, url := range urls {
		cmd.Printf("  %s: %d chunks\n", url, repos[url])
	}
	cmd.Printf("Total: %d chunks\n", storeService.DocumentCount())
	return nil
}
