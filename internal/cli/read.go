package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/marginnotes/margin/internal/source"
	"github.com/marginnotes/margin/internal/ui"
)

var readCmd = &cobra.Command{
	Use:   "read <file>",
	Short: "Render a document in the terminal",
	Long: `Renders a markdown document for terminal reading and prints annotation
markers alongside it. Opening for reading reconciles the annotation record
like 'mgn open' does.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := openDocument(args[0])
		if err != nil {
			if errors.Is(err, source.ErrUnreadable) {
				return handleError(ErrDocUnreadable, err, "Check that the file exists and is readable")
			}
			return handleError(ErrStoreError, err, "")
		}

		rendered, err := ui.RenderMarkdown(doc.Text, ui.TermWidth())
		if err != nil {
			return handleError(ErrInternal, err, "")
		}
		fmt.Print(rendered)

		if len(doc.Notes.Highlights) > 0 || len(doc.Notes.Bookmarks) > 0 {
			fmt.Println(ui.Muted.Render("---"))
			for _, h := range doc.Notes.Highlights {
				fmt.Printf("%s %s\n",
					ui.HighlightStyle(h.Color).Render("▌"),
					h.HighlightedText)
			}
			for _, b := range doc.Notes.Bookmarks {
				fmt.Printf("%s block %d\n", ui.SymbolBookmark, b.BlockIndex)
			}
		}
		if doc.Stale {
			fmt.Println(ui.Warning("annotations predate the current content"))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(readCmd)
}
