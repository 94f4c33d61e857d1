package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var purgeMin int64

var purgeCmd = &cobra.Command{
	Use:   "purge",
	Short: "Drop rare tokens from the vocabulary",
	Long: "Removes every token whose total occurrence count across all categories is below --min, " +
		"from both the per-category counters and the vocabulary. Example counts are untouched.",
	RunE: runPurge,
}

func init() {
	purgeCmd.Flags().Int64Var(&purgeMin, "min", 2, "Minimum total occurrences a token needs to survive")
}

func runPurge(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	purged, err := a.Classifier().PurgeLessThan(purgeMin)
	if err != nil {
		return err
	}
	fmt.Printf("%s✓ purged %d tokens%s (below %d total occurrences)\n",
		colorGreen, len(purged), colorReset, purgeMin)
	return nil
}

var deleteCategoryCmd = &cobra.Command{
	Use:   "delete-category <category>",
	Short: "Delete a category's registry entry",
	Long: "Removes the category from the registry. Its token occurrence counters are left orphaned; " +
		"run untrain with the original examples instead when counts should be reversed.",
	Args: cobra.ExactArgs(1),
	RunE: runDeleteCategory,
}

func runDeleteCategory(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	if err := a.Classifier().DeleteCategory(args[0]); err != nil {
		return err
	}
	fmt.Printf("%s✓ deleted%s %s\n", colorGreen, colorReset, args[0])
	return nil
}
