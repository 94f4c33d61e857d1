package cmd

import (
	"errors"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/corey/tally/internal/domain/classifier"
)

var classifyCmd = &cobra.Command{
	Use:   "classify [text...]",
	Short: "Classify text against the trained categories",
	Long:  "Tokenizes the input text and prints the posterior probability for every known category, best match first. Reads stdin when no text arguments are given.",
	RunE:  runClassify,
}

func runClassify(cmd *cobra.Command, args []string) error {
	text, err := readText(args)
	if err != nil {
		return err
	}

	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	result, err := a.ClassifyText(text)
	if errors.Is(err, classifier.ErrNotTrained) {
		return fmt.Errorf("nothing trained yet — run: tally train <category> <text>")
	}
	if err != nil {
		return err
	}

	best, _ := result.Best()
	probs := result.Probabilities()
	names := make([]string, 0, len(probs))
	for name := range probs {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if probs[names[i]] != probs[names[j]] {
			return probs[names[i]] > probs[names[j]]
		}
		return names[i] < names[j]
	})

	fmt.Printf("%s⚡ %s%s\n", colorBold, best, colorReset)
	for _, name := range names {
		marker := " "
		if name == best {
			marker = "▸"
		}
		fmt.Printf("  %s %s%-20s%s %.4f\n", marker, colorCyan, name, colorReset, probs[name])
	}
	return nil
}
