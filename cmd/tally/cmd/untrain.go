package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var untrainCmd = &cobra.Command{
	Use:   "untrain <category> [text...]",
	Short: "Reverse one training example of a category",
	Long: "Tokenizes the input text and removes its counts from <category>. " +
		"Tokens never trained for the category are skipped silently; removing the last example deletes the category.",
	Args: cobra.MinimumNArgs(1),
	RunE: runUntrain,
}

func runUntrain(cmd *cobra.Command, args []string) error {
	category := args[0]
	text, err := readText(args[1:])
	if err != nil {
		return err
	}

	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	if err := a.UntrainText(text, category); err != nil {
		return err
	}
	fmt.Printf("%s✓ untrained%s %s\n", colorGreen, colorReset, category)
	return nil
}
