package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	fsw "github.com/corey/tally/internal/adapters/fsnotify"
)

var ingestCmd = &cobra.Command{
	Use:   "ingest <corpus-dir>",
	Short: "Train from a labeled corpus directory",
	Long:  "Walks <corpus-dir>/<category>/... and trains each file as one example of its category directory.",
	Args:  cobra.ExactArgs(1),
	RunE:  runIngest,
}

func runIngest(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	trained, err := a.Ingest(args[0])
	if err != nil {
		return err
	}
	fmt.Printf("%s✓ trained %d examples%s from %s\n", colorGreen, trained, colorReset, args[0])
	return nil
}

var watchCmd = &cobra.Command{
	Use:   "watch <corpus-dir>",
	Short: "Watch a corpus directory and retrain on change",
	Long: "Ingests <corpus-dir>, then watches it: changed files are untrained from their previous " +
		"content and retrained; deleted files are untrained. Runs until interrupted.",
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func runWatch(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	w, err := fsw.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Stop()

	trained, err := a.Watch(args[0], w)
	if err != nil {
		return err
	}
	fmt.Printf("%s⚡ watching%s %s (%d examples ingested, ctrl-c to stop)\n",
		colorBold, colorReset, args[0], trained)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	<-sig
	fmt.Println("\nstopped")
	return nil
}
