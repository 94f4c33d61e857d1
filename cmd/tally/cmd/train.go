package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var trainCmd = &cobra.Command{
	Use:   "train <category> [text...]",
	Short: "Train one example of a category",
	Long:  "Tokenizes the input text and records it as one training example of <category>. Reads stdin when no text arguments are given.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runTrain,
}

func runTrain(cmd *cobra.Command, args []string) error {
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

	if err := a.TrainText(text, category); err != nil {
		return err
	}
	fmt.Printf("%s✓ trained%s %s\n", colorGreen, colorReset, category)
	return nil
}
