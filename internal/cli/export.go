package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gosimple/slug"
	"github.com/spf13/cobra"

	"github.com/marginnotes/margin/internal/notes"
	"github.com/marginnotes/margin/internal/source"
	"github.com/marginnotes/margin/internal/ui"
)

var exportOut string

var exportCmd = &cobra.Command{
	Use:   "export <file>",
	Short: "Export a document's annotations as markdown",
	Long: `Writes a document's highlights and bookmarks to a standalone markdown
file, named after the document.

Examples:
  mgn export notes.md
  mgn export notes.md --out ~/exports`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := openDocument(args[0])
		if err != nil {
			if errors.Is(err, source.ErrUnreadable) {
				return handleError(ErrDocUnreadable, err, "")
			}
			return handleError(ErrStoreError, err, "")
		}

		outDir := exportOut
		if outDir == "" {
			outDir = "."
		}
		outPath := filepath.Join(outDir, slug.Make(doc.Name)+"-annotations.md")

		content := renderExport(doc.Name, doc.URI, doc.Notes)
		if err := os.WriteFile(outPath, []byte(content), 0o644); err != nil {
			return handleError(ErrStoreError, fmt.Errorf("write export: %w", err), "")
		}

		if isJSONOutput() {
			outputSuccess(map[string]string{"path": outPath}, nil)
			return nil
		}
		fmt.Println(ui.Successf("exported to %s", outPath))
		return nil
	},
}

func renderExport(name, uri string, n notes.FileNotes) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# Annotations: %s\n\n", name)
	fmt.Fprintf(&sb, "Source: %s\n", uri)

	if len(n.Highlights) > 0 {
		sb.WriteString("\n## Highlights\n\n")
		for _, h := range n.Highlights {
			fmt.Fprintf(&sb, "> %s\n", h.HighlightedText)
			fmt.Fprintf(&sb, "> — block %d, %s, %s\n",
				h.BlockIndex,
				strings.ToLower(string(h.Color)),
				time.UnixMilli(h.CreatedAt).Format("2006-01-02"))
			if h.Comment != "" {
				fmt.Fprintf(&sb, "\n%s\n", h.Comment)
			}
			if len(h.Tags) > 0 {
				fmt.Fprintf(&sb, "\nTags: %s\n", strings.Join(h.Tags, ", "))
			}
			sb.WriteString("\n")
		}
	}

	if len(n.Bookmarks) > 0 {
		sb.WriteString("\n## Bookmarks\n\n")
		for _, b := range n.Bookmarks {
			if b.Label != "" {
				fmt.Fprintf(&sb, "- block %d: %s\n", b.BlockIndex, b.Label)
			} else {
				fmt.Fprintf(&sb, "- block %d\n", b.BlockIndex)
			}
		}
	}
	return sb.String()
}

func init() {
	exportCmd.Flags().StringVar(&exportOut, "out", "", "output directory (default current directory)")
	rootCmd.AddCommand(exportCmd)
}
