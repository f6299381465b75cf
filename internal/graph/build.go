// Package graph derives the tag co-occurrence graph from annotation records
// and lays it out for display. The graph is a recomputed-on-demand view: it
// has no persisted identity, so tags whose last highlight was deleted simply
// never appear, unlike the append-only catalog vocabulary.
package graph

import (
	"sort"

	"github.com/marginnotes/margin/internal/catalog"
	"github.com/marginnotes/margin/internal/notes"
)

// Ref points back at one highlight contributing to a tag node.
type Ref struct {
	URI         string `json:"uri"`
	FileName    string `json:"fileName"`
	BlockIndex  int    `json:"blockIndex"`
	Text        string `json:"text"`
	HighlightID string `json:"highlightId"`
}

// Node is one distinct tag with every highlight that carries it.
type Node struct {
	Tag   string `json:"tag"`
	Count int    `json:"count"`
	Refs  []Ref  `json:"refs"`
}

// Edge records how many highlights carry both tags. Pairs are canonical:
// Tag1 < Tag2, so an unordered pair appears exactly once.
type Edge struct {
	Tag1   string `json:"tag1"`
	Tag2   string `json:"tag2"`
	Weight int    `json:"weight"`
}

// Data is the derived tag graph.
type Data struct {
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
}

// DocNotes pairs a catalog entry with its annotation record for aggregation.
type DocNotes struct {
	Entry catalog.FileEntry
	Notes notes.FileNotes
}

type pair struct {
	a, b string
}

// Build aggregates highlights across all documents into a node per distinct
// tag and an edge per co-occurring unordered tag pair. Output order is
// canonical (nodes by tag, edges by pair) so results are stable across runs.
func Build(docs []DocNotes) Data {
	refsByTag := map[string][]Ref{}
	weights := map[pair]int{}

	for _, doc := range docs {
		for _, h := range doc.Notes.Highlights {
			ref := Ref{
				URI:         doc.Entry.URI,
				FileName:    doc.Entry.Name,
				BlockIndex:  h.BlockIndex,
				Text:        h.HighlightedText,
				HighlightID: h.ID,
			}
			for _, tag := range h.Tags {
				refsByTag[tag] = append(refsByTag[tag], ref)
			}
			for i := 0; i < len(h.Tags); i++ {
				for j := i + 1; j < len(h.Tags); j++ {
					a, b := h.Tags[i], h.Tags[j]
					if b < a {
						a, b = b, a
					}
					weights[pair{a, b}]++
				}
			}
		}
	}

	nodes := make([]Node, 0, len(refsByTag))
	for tag, refs := range refsByTag {
		nodes = append(nodes, Node{Tag: tag, Count: len(refs), Refs: refs})
	}
	sort.Slice(nodes, func(i, j int) bool { return nodes[i].Tag < nodes[j].Tag })

	edges := make([]Edge, 0, len(weights))
	for p, w := range weights {
		edges = append(edges, Edge{Tag1: p.a, Tag2: p.b, Weight: w})
	}
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].Tag1 != edges[j].Tag1 {
			return edges[i].Tag1 < edges[j].Tag1
		}
		return edges[i].Tag2 < edges[j].Tag2
	})

	return Data{Nodes: nodes, Edges: edges}
}

// MaxCount returns the largest node count, at least 1.
func (d Data) MaxCount() int {
	max := 1
	for _, n := range d.Nodes {
		if n.Count > max {
			max = n.Count
		}
	}
	return max
}

// NodeIndex maps tags to node positions in d.Nodes.
func (d Data) NodeIndex() map[string]int {
	m := make(map[string]int, len(d.Nodes))
	for i, n := range d.Nodes {
		m[n.Tag] = i
	}
	return m
}
