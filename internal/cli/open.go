package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/marginnotes/margin/internal/source"
	"github.com/marginnotes/margin/internal/ui"
)

var openRehash bool

var openCmd = &cobra.Command{
	Use:   "open <file>",
	Short: "Open a document and reconcile its annotations",
	Long: `Opens a markdown document, creating its annotation record on first open.

If the document's content changed since annotations were made, a stale
warning is printed; annotations are kept as-is. Pass --rehash to accept the
current content as the new baseline.

Examples:
  mgn open notes.md
  mgn open notes.md --rehash
  mgn open notes.md --json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := openDocument(args[0])
		if err != nil {
			if errors.Is(err, source.ErrUnreadable) {
				return handleError(ErrDocUnreadable, err, "Check that the file exists and is readable")
			}
			return handleError(ErrStoreError, err, "")
		}

		if openRehash && doc.Stale {
			if err := doc.Rehash(); err != nil {
				return handleError(ErrStoreError, err, "")
			}
		}

		if isJSONOutput() {
			blocks := make([]map[string]interface{}, len(doc.Blocks))
			for i, b := range doc.Blocks {
				blocks[i] = map[string]interface{}{
					"index": i,
					"kind":  b.Kind.String(),
					"text":  b.Content.Text,
				}
			}
			outputSuccessWithWarnings(map[string]interface{}{
				"uri":        doc.URI,
				"name":       doc.Name,
				"stale":      doc.Stale,
				"blocks":     blocks,
				"highlights": doc.Notes.Highlights,
				"bookmarks":  doc.Notes.Bookmarks,
			}, staleWarnings(doc.Stale), &Meta{Count: len(doc.Blocks)})
			return nil
		}

		fmt.Printf("%s %s\n", ui.Bold.Render(doc.Name), ui.Muted.Render(doc.URI))
		fmt.Printf("  %s, %s, %s\n",
			ui.Count(len(doc.Blocks), "block"),
			ui.Count(len(doc.Notes.Highlights), "highlight"),
			ui.Count(len(doc.Notes.Bookmarks), "bookmark"))
		if doc.Stale {
			fmt.Println(ui.Warning("content changed since annotations were made (run with --rehash to accept)"))
		}
		return nil
	},
}

func init() {
	openCmd.Flags().BoolVar(&openRehash, "rehash", false, "accept current content as the annotated baseline")
	rootCmd.AddCommand(openCmd)
}
