package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/marginnotes/margin/internal/graph"
	"github.com/marginnotes/margin/internal/store"
	"github.com/marginnotes/margin/internal/ui"
)

var (
	graphLayout bool
	graphSteps  int
)

var graphCmd = &cobra.Command{
	Use:   "graph",
	Short: "Show the tag co-occurrence graph",
	Long: `Builds the tag graph across all annotated documents: a node per tag, an
edge per pair of tags that co-occur on a highlight, weighted by how often.

Pass --layout to also run the force-directed layout and print coordinates
(positions vary run to run; the structure does not).

Examples:
  mgn graph
  mgn graph --layout --json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore()
		if err != nil {
			return handleError(ErrStoreError, err, "")
		}

		data := buildGraph(s)

		var positions []graph.NodePos
		if graphLayout {
			positions = graph.Run(data, graphSteps, nil)
		}

		if isJSONOutput() {
			out := map[string]interface{}{
				"nodes": data.Nodes,
				"edges": data.Edges,
			}
			if graphLayout {
				coords := make([]map[string]interface{}, len(positions))
				for i, p := range positions {
					coords[i] = map[string]interface{}{
						"tag": data.Nodes[i].Tag,
						"x":   p.X,
						"y":   p.Y,
					}
				}
				out["layout"] = coords
			}
			outputSuccess(out, &Meta{Count: len(data.Nodes)})
			return nil
		}

		if len(data.Nodes) == 0 {
			fmt.Println("No tagged highlights yet.")
			return nil
		}
		fmt.Printf("Tags (%d), co-occurrences (%d):\n\n", len(data.Nodes), len(data.Edges))
		for i, n := range data.Nodes {
			line := fmt.Sprintf("  %s %s", ui.Tag(n.Tag), ui.Muted.Render(ui.Count(n.Count, "highlight")))
			if graphLayout {
				line += ui.Muted.Render(fmt.Sprintf("  (%.0f, %.0f)", positions[i].X, positions[i].Y))
			}
			fmt.Println(line)
		}
		if len(data.Edges) > 0 {
			fmt.Println()
			for _, e := range data.Edges {
				fmt.Printf("  %s — %s %s\n", ui.Tag(e.Tag1), ui.Tag(e.Tag2),
					ui.Muted.Render(fmt.Sprintf("×%d", e.Weight)))
			}
		}
		return nil
	},
}

// buildGraph aggregates every loadable annotation record in the store.
// Unloadable records are skipped, matching the store's corrupt-record policy.
func buildGraph(s *store.Store) graph.Data {
	var docs []graph.DocNotes
	for _, entry := range s.LoadIndex().Files {
		n, ok := s.LoadNotes(entry.NotesFileName)
		if !ok {
			continue
		}
		docs = append(docs, graph.DocNotes{Entry: entry, Notes: n})
	}
	return graph.Build(docs)
}

var tagsCmd = &cobra.Command{
	Use:   "tags",
	Short: "List the tag vocabulary",
	Long: `Lists every tag ever used, with its current highlight count. Tags whose
last highlight was removed stay in the vocabulary with a count of zero.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore()
		if err != nil {
			return handleError(ErrStoreError, err, "")
		}

		counts := map[string]int{}
		for _, n := range buildGraph(s).Nodes {
			counts[n.Tag] = n.Count
		}

		vocab := s.LoadIndex().Tags
		if isJSONOutput() {
			type tagCount struct {
				Name  string `json:"name"`
				Count int    `json:"count"`
			}
			items := make([]tagCount, len(vocab))
			for i, t := range vocab {
				items[i] = tagCount{Name: t.Name, Count: counts[t.Name]}
			}
			outputSuccess(items, &Meta{Count: len(items)})
			return nil
		}
		if len(vocab) == 0 {
			fmt.Println("No tags yet.")
			return nil
		}
		for _, t := range vocab {
			fmt.Printf("  %-24s %s\n", ui.Tag(t.Name), ui.Muted.Render(ui.Count(counts[t.Name], "highlight")))
		}
		return nil
	},
}

func init() {
	graphCmd.Flags().BoolVar(&graphLayout, "layout", false, "run the force-directed layout and print coordinates")
	graphCmd.Flags().IntVar(&graphSteps, "steps", graph.DefaultSteps, "number of layout simulation steps")
	rootCmd.AddCommand(graphCmd)
	rootCmd.AddCommand(tagsCmd)
}
