package cmd

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/corey/tally/internal/adapters/bbolt"
	"github.com/corey/tally/internal/app"
)

var wipeForce bool

var wipeCmd = &cobra.Command{
	Use:   "wipe",
	Short: "Clear all classifier data for this project",
	Long:  "Deletes every counter stored under the project's namespace prefix.",
	RunE:  runWipe,
}

func init() {
	wipeCmd.Flags().BoolVar(&wipeForce, "force", false, "Skip confirmation prompt")
}

func runWipe(cmd *cobra.Command, args []string) error {
	root := projectRoot()

	if !wipeForce {
		fmt.Printf("⚠ This will delete all tally data for %s. Continue? [y/N] ", filepath.Base(root))
		reader := bufio.NewReader(os.Stdin)
		answer, _ := reader.ReadString('\n')
		answer = strings.TrimSpace(strings.ToLower(answer))
		if answer != "y" && answer != "yes" {
			fmt.Println("cancelled")
			return nil
		}
	}

	cfg, err := app.LoadConfig(root)
	if err != nil {
		return err
	}
	paths := app.NewPaths(root)
	dbPath := cfg.DBPath
	if dbPath == "" {
		dbPath = paths.DB
	}
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		fmt.Println("nothing to wipe")
		return nil
	}

	store, err := bbolt.NewStore(dbPath, cfg.Prefix)
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.Wipe(); err != nil {
		return err
	}
	fmt.Printf("%s✓ wiped%s prefix %q in %s\n", colorGreen, colorReset, cfg.Prefix, dbPath)
	return nil
}
