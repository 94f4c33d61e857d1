package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show classifier statistics",
	RunE:  runStats,
}

func runStats(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	s, err := a.Stats()
	if err != nil {
		return err
	}

	fmt.Printf("%s⚡ tally stats%s\n", colorBold, colorReset)
	fmt.Printf("  Vocabulary:  %d tokens\n", s.VocabularyTokens)
	fmt.Printf("  Examples:    %d\n", s.TotalExamples)
	fmt.Printf("  Categories:  %d\n", len(s.Categories))
	for _, c := range s.Categories {
		fmt.Printf("    %s%-20s%s %d examples, %d token occurrences\n",
			colorCyan, c.Name, colorReset, c.Examples, c.Tokens)
	}
	return nil
}

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List known categories with example counts",
	RunE:  runCategories,
}

func runCategories(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	s, err := a.Stats()
	if err != nil {
		return err
	}
	if len(s.Categories) == 0 {
		fmt.Println("no categories trained")
		return nil
	}
	for _, c := range s.Categories {
		fmt.Printf("%s%-20s%s %d\n", colorCyan, c.Name, colorReset, c.Examples)
	}
	return nil
}
