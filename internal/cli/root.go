// Package cli implements the command-line interface.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/marginnotes/margin/internal/config"
	"github.com/marginnotes/margin/internal/ui"
)

var (
	// Global flags
	notesDirFlag string
	configPath   string

	// Resolved values
	resolvedNotesDir string
	cfg              *config.Config
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "mgn",
	Short: "Margin - annotate the markdown you read",
	Long: `Margin is a markdown reader's annotation engine: highlight spans, bookmark
blocks, and tag what matters. Annotations live next to your documents as
plain JSON, keyed to the document's content so you know when the text has
moved out from under them. A tag co-occurrence graph ties your reading
together across documents.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		switch cmd.Name() {
		case "version", "completion", "help":
			return nil
		}

		var err error
		if configPath != "" {
			cfg, err = config.LoadFrom(configPath)
		} else {
			cfg, err = config.Load()
		}
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		ui.ConfigureTheme(cfg.UI.Accent)
		ui.ConfigureMarkdownCodeTheme(cfg.UI.CodeTheme)

		if notesDirFlag != "" {
			resolvedNotesDir = notesDirFlag
		} else {
			resolvedNotesDir, err = cfg.ResolveNotesDir()
			if err != nil {
				return fmt.Errorf("failed to resolve notes directory: %w", err)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "output as JSON")
	rootCmd.PersistentFlags().StringVar(&notesDirFlag, "notes-dir", "", "directory for annotation records")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")
	rootCmd.SilenceUsage = true
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}
