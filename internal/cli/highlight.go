package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/marginnotes/margin/internal/notes"
	"github.com/marginnotes/margin/internal/source"
	"github.com/marginnotes/margin/internal/ui"
)

var (
	hlBlock   int
	hlStart   int
	hlEnd     int
	hlColor   string
	hlComment string
	hlTags    []string
)

var highlightCmd = &cobra.Command{
	Use:   "highlight",
	Short: "Manage highlights on a document",
}

var highlightAddCmd = &cobra.Command{
	Use:   "add <file>",
	Short: "Highlight a span of a block's text",
	Long: `Adds a highlight over a span of a block's flattened text.

Offsets are codepoint offsets into the block text, half-open [start,end).
Out-of-range offsets are clamped. Overlapping highlights are allowed.

Examples:
  mgn highlight add notes.md --block 0 --start 5 --end 9
  mgn highlight add notes.md --block 2 --start 0 --end 12 --color green --tags urgent,todo
  mgn highlight add notes.md --block 1 --start 3 --end 20 --comment "follow up"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		color := notes.ColorYellow
		if hlColor == "" && cfg != nil && cfg.DefaultColor != "" {
			hlColor = cfg.DefaultColor
		}
		if hlColor != "" {
			var err error
			color, err = notes.ParseColor(hlColor)
			if err != nil {
				return handleError(ErrInvalidInput, err, "Valid colors: yellow, green, blue, pink, orange")
			}
		}

		doc, err := openDocument(args[0])
		if err != nil {
			if errors.Is(err, source.ErrUnreadable) {
				return handleError(ErrDocUnreadable, err, "")
			}
			return handleError(ErrStoreError, err, "")
		}

		block, ok := doc.Block(hlBlock)
		if !ok {
			return handleError(ErrInvalidInput,
				fmt.Errorf("block index %d out of range (document has %d blocks)", hlBlock, len(doc.Blocks)), "")
		}

		h := notes.NewHighlight(hlBlock, hlStart, hlEnd, block.Content.Text, color, hlComment, hlTags)
		if err := doc.AddHighlight(h); err != nil {
			return handleError(ErrStoreError, err, "")
		}

		if isJSONOutput() {
			outputSuccessWithWarnings(h, staleWarnings(doc.Stale), nil)
			return nil
		}
		fmt.Println(ui.Successf("highlighted %q", h.HighlightedText))
		fmt.Println(ui.Hint("id: " + h.ID))
		if doc.Stale {
			fmt.Println(ui.Warning("document content is stale; offsets may not match what you see"))
		}
		return nil
	},
}

var highlightUpdateCmd = &cobra.Command{
	Use:   "update <file> <highlight-id>",
	Short: "Update a highlight's color, comment, or tags",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := openDocument(args[0])
		if err != nil {
			if errors.Is(err, source.ErrUnreadable) {
				return handleError(ErrDocUnreadable, err, "")
			}
			return handleError(ErrStoreError, err, "")
		}

		h, ok := doc.Notes.FindHighlight(args[1])
		if !ok {
			return handleError(ErrNotFound,
				fmt.Errorf("no highlight with id %s", args[1]),
				"Run 'mgn highlight list' to see highlight ids")
		}

		if cmd.Flags().Changed("color") {
			color, err := notes.ParseColor(hlColor)
			if err != nil {
				return handleError(ErrInvalidInput, err, "Valid colors: yellow, green, blue, pink, orange")
			}
			h.Color = color
		}
		if cmd.Flags().Changed("comment") {
			h.Comment = hlComment
		}
		if cmd.Flags().Changed("tags") {
			h.Tags = notes.NormalizeTags(hlTags)
		}

		if err := doc.UpdateHighlight(h); err != nil {
			return handleError(ErrStoreError, err, "")
		}
		if isJSONOutput() {
			outputSuccess(h, nil)
			return nil
		}
		fmt.Println(ui.Successf("updated highlight %s", h.ID))
		return nil
	},
}

var highlightDeleteCmd = &cobra.Command{
	Use:   "delete <file> <highlight-id>",
	Short: "Delete a highlight",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := openDocument(args[0])
		if err != nil {
			if errors.Is(err, source.ErrUnreadable) {
				return handleError(ErrDocUnreadable, err, "")
			}
			return handleError(ErrStoreError, err, "")
		}

		if _, ok := doc.Notes.FindHighlight(args[1]); !ok {
			return handleError(ErrNotFound,
				fmt.Errorf("no highlight with id %s", args[1]), "")
		}
		if err := doc.DeleteHighlight(args[1]); err != nil {
			return handleError(ErrStoreError, err, "")
		}
		if isJSONOutput() {
			outputSuccess(map[string]string{"deleted": args[1]}, nil)
			return nil
		}
		fmt.Println(ui.Successf("deleted highlight %s", args[1]))
		return nil
	},
}

var highlightListCmd = &cobra.Command{
	Use:   "list <file>",
	Short: "List a document's highlights",
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
			outputSuccessWithWarnings(doc.Notes.Highlights, staleWarnings(doc.Stale), &Meta{Count: len(doc.Notes.Highlights)})
			return nil
		}

		if len(doc.Notes.Highlights) == 0 {
			fmt.Println("No highlights.")
			return nil
		}
		for _, h := range doc.Notes.Highlights {
			style := ui.HighlightStyle(h.Color)
			fmt.Printf("%s %s %s\n",
				ui.Muted.Render(fmt.Sprintf("[%d:%d-%d]", h.BlockIndex, h.StartOffset, h.EndOffset)),
				style.Render(h.HighlightedText),
				ui.Hint(h.ID))
			if h.Comment != "" {
				fmt.Printf("    %s\n", h.Comment)
			}
			if len(h.Tags) > 0 {
				fmt.Print("    ")
				for i, t := range h.Tags {
					if i > 0 {
						fmt.Print(" ")
					}
					fmt.Print(ui.Tag(t))
				}
				fmt.Println()
			}
		}
		if doc.Stale {
			fmt.Println(ui.Warning("document content changed since these were made"))
		}
		return nil
	},
}

func init() {
	for _, c := range []*cobra.Command{highlightAddCmd, highlightUpdateCmd} {
		c.Flags().StringVar(&hlColor, "color", "", "highlight color (yellow, green, blue, pink, orange)")
		c.Flags().StringVar(&hlComment, "comment", "", "comment attached to the highlight")
		c.Flags().StringSliceVar(&hlTags, "tags", nil, "comma-separated tags")
	}
	highlightAddCmd.Flags().IntVar(&hlBlock, "block", 0, "block index")
	highlightAddCmd.Flags().IntVar(&hlStart, "start", 0, "start offset (codepoints, inclusive)")
	highlightAddCmd.Flags().IntVar(&hlEnd, "end", 0, "end offset (codepoints, exclusive)")
	_ = highlightAddCmd.MarkFlagRequired("block")
	_ = highlightAddCmd.MarkFlagRequired("start")
	_ = highlightAddCmd.MarkFlagRequired("end")

	highlightCmd.AddCommand(highlightAddCmd)
	highlightCmd.AddCommand(highlightUpdateCmd)
	highlightCmd.AddCommand(highlightDeleteCmd)
	highlightCmd.AddCommand(highlightListCmd)
	rootCmd.AddCommand(highlightCmd)
}
