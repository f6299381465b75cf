package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/marginnotes/margin/internal/search"
	"github.com/marginnotes/margin/internal/ui"
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search highlights across all documents",
	Long: `Searches highlight text, comments, and tags across every annotated
document, using the derived search index. Run 'mgn reindex' first if results
look out of date.

Examples:
  mgn search "force-directed"
  mgn search urgent --json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore()
		if err != nil {
			return handleError(ErrStoreError, err, "")
		}
		db, err := search.Open(s.Dir())
		if err != nil {
			return handleError(ErrSearchError, err, "Run 'mgn reindex' to rebuild the search index")
		}
		defer db.Close()

		// Rebuild lazily if the index is empty; the JSON records are always
		// the source of truth.
		if n, err := db.Count(); err == nil && n == 0 {
			if err := db.Rebuild(s); err != nil {
				return handleError(ErrSearchError, err, "")
			}
		}

		hits, err := db.Search(args[0])
		if err != nil {
			return handleError(ErrSearchError, err, "")
		}

		if isJSONOutput() {
			outputSuccess(hits, &Meta{Count: len(hits)})
			return nil
		}
		if len(hits) == 0 {
			fmt.Println("No matching highlights.")
			return nil
		}
		for _, h := range hits {
			fmt.Printf("%s %s %s\n",
				ui.Accent.Render(h.FileName),
				ui.Muted.Render(fmt.Sprintf("block %d", h.BlockIndex)),
				h.Text)
			if h.Comment != "" {
				fmt.Printf("    %s\n", ui.Muted.Render(h.Comment))
			}
		}
		return nil
	},
}

var reindexCmd = &cobra.Command{
	Use:   "reindex",
	Short: "Rebuild the search index from annotation records",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore()
		if err != nil {
			return handleError(ErrStoreError, err, "")
		}
		db, err := search.Open(s.Dir())
		if err != nil {
			return handleError(ErrSearchError, err, "")
		}
		defer db.Close()

		if err := db.Rebuild(s); err != nil {
			return handleError(ErrSearchError, err, "")
		}
		n, err := db.Count()
		if err != nil {
			return handleError(ErrSearchError, err, "")
		}
		if isJSONOutput() {
			outputSuccess(map[string]int{"indexed": n}, nil)
			return nil
		}
		fmt.Println(ui.Successf("indexed %s", ui.Count(n, "highlight")))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(reindexCmd)
}
