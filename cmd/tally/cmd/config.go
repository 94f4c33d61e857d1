package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/corey/tally/internal/app"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show effective configuration",
	Long:  "Shows the project root, DB path, namespace prefix and classifier options after applying .tally/config.yml.",
	RunE:  runConfig,
}

func runConfig(cmd *cobra.Command, args []string) error {
	root := projectRoot()
	cfg, err := app.LoadConfig(root)
	if err != nil {
		return err
	}
	paths := app.NewPaths(root)
	dbPath := cfg.DBPath
	if dbPath == "" {
		dbPath = paths.DB
	}

	configState := fmt.Sprintf("%sdefaults%s", colorGray, colorReset)
	if _, err := os.Stat(paths.Config); err == nil {
		configState = paths.Config
	}

	fmt.Printf("%s⚡ tally config%s\n", colorBold, colorReset)
	fmt.Printf("  Root:           %s\n", root)
	fmt.Printf("  DB:             %s\n", dbPath)
	fmt.Printf("  Prefix:         %s\n", cfg.Prefix)
	fmt.Printf("  Config:         %s\n", configState)
	fmt.Printf("  Binarized:      %v\n", cfg.Binarized)
	fmt.Printf("  UniformPriors:  %v\n", cfg.UniformPriors)
	fmt.Printf("  SmoothingK:     %g\n", cfg.SmoothingK)
	fmt.Printf("  SizeTransform:  %s\n", cfg.SizeTransform)
	return nil
}
