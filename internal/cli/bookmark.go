package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/marginnotes/margin/internal/source"
	"github.com/marginnotes/margin/internal/ui"
)

var bmBlock int

var bookmarkCmd = &cobra.Command{
	Use:   "bookmark",
	Short: "Manage bookmarks on a document",
}

var bookmarkToggleCmd = &cobra.Command{
	Use:   "toggle <file>",
	Short: "Toggle the bookmark on a block",
	Long: `Toggles the bookmark on a block: removes every bookmark on that block if
any exist, otherwise adds one.

Examples:
  mgn bookmark toggle notes.md --block 3`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := openDocument(args[0])
		if err != nil {
			if errors.Is(err, source.ErrUnreadable) {
				return handleError(ErrDocUnreadable, err, "")
			}
			return handleError(ErrStoreError, err, "")
		}

		if _, ok := doc.Block(bmBlock); !ok {
			return handleError(ErrInvalidInput,
				fmt.Errorf("block index %d out of range (document has %d blocks)", bmBlock, len(doc.Blocks)), "")
		}

		if err := doc.ToggleBookmark(bmBlock); err != nil {
			return handleError(ErrStoreError, err, "")
		}

		marked := doc.Notes.Bookmarked(bmBlock)
		if isJSONOutput() {
			outputSuccess(map[string]interface{}{"blockIndex": bmBlock, "bookmarked": marked}, nil)
			return nil
		}
		if marked {
			fmt.Println(ui.Successf("bookmarked block %d", bmBlock))
		} else {
			fmt.Println(ui.Successf("removed bookmark on block %d", bmBlock))
		}
		return nil
	},
}

var bookmarkListCmd = &cobra.Command{
	Use:   "list <file>",
	Short: "List a document's bookmarks",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := openDocument(args[0])
		if err != nil {
			if errors.Is(err, source.ErrUnreadable) {
				return handleError(ErrDocUnreadable, err, "")
			}
			return handleError(ErrStoreError, err, "")
		}

		if isJSONOutput() {
			outputSuccess(doc.Notes.Bookmarks, &Meta{Count: len(doc.Notes.Bookmarks)})
			return nil
		}
		if len(doc.Notes.Bookmarks) == 0 {
			fmt.Println("No bookmarks.")
			return nil
		}
		for _, b := range doc.Notes.Bookmarks {
			preview := ""
			if block, ok := doc.Block(b.BlockIndex); ok {
				preview = block.Content.Text
				if len([]rune(preview)) > 60 {
					preview = string([]rune(preview)[:60]) + "…"
				}
			}
			fmt.Printf("%s block %d  %s\n", ui.SymbolBookmark, b.BlockIndex, ui.Muted.Render(preview))
		}
		return nil
	},
}

func init() {
	bookmarkToggleCmd.Flags().IntVar(&bmBlock, "block", 0, "block index")
	_ = bookmarkToggleCmd.MarkFlagRequired("block")
	bookmarkCmd.AddCommand(bookmarkToggleCmd)
	bookmarkCmd.AddCommand(bookmarkListCmd)
	rootCmd.AddCommand(bookmarkCmd)
}
