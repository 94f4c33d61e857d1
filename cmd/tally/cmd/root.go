package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// ANSI color codes for terminal output.
const (
	colorReset  = "\033[0m"
	colorBold   = "\033[1m"
	colorCyan   = "\033[36m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorGray   = "\033[90m"
)

var rootCmd = &cobra.Command{
	Use:   "tally",
	Short: "tally — online Naive Bayes classifier",
	Long:  "Incremental training, untraining and classification of token sets, backed by an embedded counter store.",
}

// projectRoot returns the project root (cwd by default).
func projectRoot() string {
	dir, err := os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	return dir
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(trainCmd)
	rootCmd.AddCommand(untrainCmd)
	rootCmd.AddCommand(classifyCmd)
	rootCmd.AddCommand(categoriesCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(purgeCmd)
	rootCmd.AddCommand(deleteCategoryCmd)
	rootCmd.AddCommand(ingestCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(wipeCmd)
	rootCmd.AddCommand(configCmd)
}
