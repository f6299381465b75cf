package cli

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/marginnotes/margin/internal/ui"
)

var recentsCmd = &cobra.Command{
	Use:   "recents",
	Short: "List annotated documents by recency",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore()
		if err != nil {
			return handleError(ErrStoreError, err, "")
		}

		entries := s.LoadIndex().ByRecency()
		if isJSONOutput() {
			outputSuccess(entries, &Meta{Count: len(entries)})
			return nil
		}
		if len(entries) == 0 {
			fmt.Println("No documents yet. Open one with 'mgn open <file>'.")
			return nil
		}
		for _, e := range entries {
			opened := time.UnixMilli(e.LastOpened).Format("2006-01-02 15:04")
			fmt.Printf("%s  %s  %s\n",
				ui.Accent.Render(fmt.Sprintf("%-30s", e.Name)),
				ui.Muted.Render(opened),
				ui.Muted.Render(fmt.Sprintf("%s, %s",
					ui.Count(e.HighlightCount, "highlight"),
					ui.Count(e.BookmarkCount, "bookmark"))))
		}
		return nil
	},
}

var forgetCmd = &cobra.Command{
	Use:   "forget <file>",
	Short: "Remove a document from recents",
	Long: `Removes a document from the recents list. Its annotation record stays on
disk and comes back if the document is opened again.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		uri, err := documentURI(args[0])
		if err != nil {
			return handleError(ErrInvalidInput, err, "")
		}
		s, err := openStore()
		if err != nil {
			return handleError(ErrStoreError, err, "")
		}
		if err := s.Forget(uri); err != nil {
			return handleError(ErrStoreError, err, "")
		}
		if isJSONOutput() {
			outputSuccess(map[string]string{"forgotten": uri}, nil)
			return nil
		}
		fmt.Println(ui.Successf("removed %s from recents", uri))
		return nil
	},
}

var moveCmd = &cobra.Command{
	Use:   "move <old-file> <new-file>",
	Short: "Re-key annotations after a document was renamed or moved",
	Long: `Points a document's annotations at its new location. The new file must
already exist at the new path; annotations and the catalog entry follow it.

Examples:
  mgn move drafts/old.md articles/new.md`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		oldURI, err := documentURI(args[0])
		if err != nil {
			return handleError(ErrInvalidInput, err, "")
		}
		newURI, err := documentURI(args[1])
		if err != nil {
			return handleError(ErrInvalidInput, err, "")
		}
		s, err := openStore()
		if err != nil {
			return handleError(ErrStoreError, err, "")
		}
		if err := s.Move(oldURI, newURI, filepath.Base(newURI)); err != nil {
			return handleError(ErrNotFound, err, "Run 'mgn recents' to see tracked documents")
		}
		if isJSONOutput() {
			outputSuccess(map[string]string{"from": oldURI, "to": newURI}, nil)
			return nil
		}
		fmt.Println(ui.Successf("moved annotations to %s", newURI))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(recentsCmd)
	rootCmd.AddCommand(forgetCmd)
	rootCmd.AddCommand(moveCmd)
}
