// Package graph builds the pairwise similarity graph over skill nodes.
// Similarity is the sum of a category term, a name-token overlap term,
// and a permission overlap term; edges above the threshold are retained.
package graph

import (
	"slices"
	"strings"

	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"

	"github.com/skillscope/skillscope/pkg/model"
)

// Threshold is the minimum similarity for an edge to be retained
const Threshold = 0.3

// Similarity term weights
const (
	categoryMatchTerm    = 0.4
	categoryMismatchTerm = 0.1
	nameOverlapWeight    = 0.3
	permissionWeight     = 0.2
)

// SimilarityGraph is the retained-edge graph over a node set
type SimilarityGraph struct {
	g     *simple.WeightedUndirectedGraph
	ids   map[string]int64
	nodes map[int64]*model.SkillNode
	order []*model.SkillNode
	edges []model.SkillEdge
}

// Build computes similarity for every unordered node pair in input order,
// retains edges above the threshold, and records symmetric connections on
// the nodes themselves.
func Build(nodes []*model.SkillNode) *SimilarityGraph {
	sg := &SimilarityGraph{
		g:     simple.NewWeightedUndirectedGraph(0, 0),
		ids:   make(map[string]int64, len(nodes)),
		nodes: make(map[int64]*model.SkillNode, len(nodes)),
		order: nodes,
	}

	for i, node := range nodes {
		id := int64(i)
		sg.ids[node.ID] = id
		sg.nodes[id] = node
		sg.g.AddNode(simple.Node(id))
		node.Connections = []string{}
	}

	for i := 0; i < len(nodes); i++ {
		for j := i + 1; j < len(nodes); j++ {
			sim := Similarity(nodes[i], nodes[j])
			if sim <= Threshold {
				continue
			}
			// Clamp only at weight assignment; pathological overlap can
			// push the raw sum above 1
			if sim > 1 {
				sim = 1
			}

			sg.g.SetWeightedEdge(sg.g.NewWeightedEdge(simple.Node(int64(i)), simple.Node(int64(j)), sim))
			sg.edges = append(sg.edges, model.SkillEdge{
				Source: nodes[i].ID,
				Target: nodes[j].ID,
				Weight: sim,
			})

			nodes[i].Connections = append(nodes[i].Connections, nodes[j].ID)
			nodes[j].Connections = append(nodes[j].Connections, nodes[i].ID)
		}
	}

	for _, node := range nodes {
		node.ConnectionCount = len(node.Connections)
	}

	return sg
}

// Edges returns retained edges in creation order
func (sg *SimilarityGraph) Edges() []model.SkillEdge {
	return sg.edges
}

// Nodes returns the node set in input order
func (sg *SimilarityGraph) Nodes() []*model.SkillNode {
	return sg.order
}

// Components returns groups of node ids connected by edges of at least
// minWeight. Groups and their members are ordered by input position;
// singleton groups are omitted.
func (sg *SimilarityGraph) Components(minWeight float64) [][]string {
	filtered := simple.NewUndirectedGraph()
	for id := range sg.nodes {
		filtered.AddNode(simple.Node(id))
	}
	for _, e := range sg.edges {
		if e.Weight < minWeight {
			continue
		}
		from := simple.Node(sg.ids[e.Source])
		to := simple.Node(sg.ids[e.Target])
		filtered.SetEdge(filtered.NewEdge(from, to))
	}

	var out [][]string
	for _, component := range topo.ConnectedComponents(filtered) {
		if len(component) < 2 {
			continue
		}
		ids := make([]int64, 0, len(component))
		for _, n := range component {
			ids = append(ids, n.ID())
		}
		slices.Sort(ids)
		group := make([]string, 0, len(ids))
		for _, id := range ids {
			group = append(group, sg.nodes[id].ID)
		}
		out = append(out, group)
	}

	// Node ids equal input positions, so ordering groups by their first
	// member keeps output deterministic
	slices.SortFunc(out, func(a, b []string) int {
		return int(sg.ids[a[0]] - sg.ids[b[0]])
	})
	return out
}

// Similarity computes the raw (unclamped) similarity of two nodes
func Similarity(a, b *model.SkillNode) float64 {
	sim := categoryMismatchTerm
	if a.Category == b.Category {
		sim = categoryMatchTerm
	}
	sim += nameOverlapWeight * nameTokenOverlap(a.Name, b.Name)
	sim += permissionWeight * jaccard(a.Vulnerability.Permissions, b.Vulnerability.Permissions)
	return sim
}

// nameTokenOverlap scores shared name tokens. Tokens from the shorter
// name match against identical or substring-related tokens in the other;
// the match count is normalized by the longer token list.
func nameTokenOverlap(name1, name2 string) float64 {
	t1 := tokenize(name1)
	t2 := tokenize(name2)
	if len(t1) == 0 || len(t2) == 0 {
		return 0
	}

	shorter, longer := t1, t2
	if len(t2) < len(t1) {
		shorter, longer = t2, t1
	}

	matches := 0
	for _, tok := range shorter {
		for _, other := range longer {
			if tok == other || strings.Contains(other, tok) || strings.Contains(tok, other) {
				matches++
				break
			}
		}
	}

	return float64(matches) / float64(len(longer))
}

// tokenize splits a name on whitespace, hyphens, and underscores,
// case-folded
func tokenize(name string) []string {
	return strings.FieldsFunc(strings.ToLower(name), func(r rune) bool {
		return r == ' ' || r == '\t' || r == '-' || r == '_'
	})
}

// jaccard computes the Jaccard index of two permission sets; empty sets
// yield 0
func jaccard(a, b []string) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 0
	}

	setA := make(map[string]bool, len(a))
	for _, p := range a {
		setA[p] = true
	}

	union := make(map[string]bool, len(a)+len(b))
	for p := range setA {
		union[p] = true
	}
	intersection := 0
	for _, p := range b {
		if setA[p] {
			intersection++
		}
		union[p] = true
	}

	return float64(intersection) / float64(len(union))
}
