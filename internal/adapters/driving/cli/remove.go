package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var removeCmd = &cobra.Command{
	Use:   "remove [repo-url]",
	Short: "Remove a repository's indexed content",
	Long: `Removes every indexed chunk belonging to the given repository URL.
Removing a repository that was never indexed is a no-op.`,
	Args: cobra.ExactArgs(1),
	RunE: runRemove,
}

func init() {
	rootCmd.AddCommand(removeCmd)
}

func runRemove(cmd *cobra.Command, args []string) error {
	if storeService == nil {
		return errors.New("document store not configured")
	}

	repoURL := args[0]
	if err := storeService.RemoveRepository(cmd.Context(), repoURL); err != nil {
		return fmt.Errorf("remove failed: %w", err)
	}

	cmd.Printf("Removed %s (%d chunks remain)\n", repoURL, storeService.DocumentCount())
	return nil
}
