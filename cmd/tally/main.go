// tally is an online Naive Bayes classifier over a persistent counter store.
// Train it with labeled text, query it for a probability distribution over
// the categories it has seen.
package main

import (
	"os"

	"github.com/corey/tally/cmd/tally/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
