// Package metrics derives portfolio-level statistics from the similarity
// graph: the top similar pairs, the mean edge weight, and per-category
// token coverage.
package metrics

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/skillscope/skillscope/pkg/model"
)

// topPairCount limits the similarity listing exposed to consumers
const topPairCount = 20

// Aggregate computes the portfolio metrics from nodes and retained edges
func Aggregate(nodes []*model.SkillNode, edges []model.SkillEdge) model.VizMetrics {
	density := clusterDensity(edges)

	return model.VizMetrics{
		CosineSimilarities: topPairs(nodes, edges),
		ClusterDensity:     density,
		// Same value as clusterDensity; kept as a distinct field for
		// consumers that read it as an overlap measure
		OverlapCoefficient: density,
		UniquenessIndex:    round2(1 - density*0.5),
		CoverageScores:     coverageScores(nodes),
	}
}

// topPairs returns the top edges by weight descending, ties broken by
// encounter order, exposed with display names.
func topPairs(nodes []*model.SkillNode, edges []model.SkillEdge) []model.SimilarityPair {
	names := make(map[string]string, len(nodes))
	for _, n := range nodes {
		names[n.ID] = n.Name
	}

	sorted := make([]model.SkillEdge, len(edges))
	copy(sorted, edges)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Weight > sorted[j].Weight
	})

	if len(sorted) > topPairCount {
		sorted = sorted[:topPairCount]
	}

	pairs := make([]model.SimilarityPair, 0, len(sorted))
	for _, e := range sorted {
		pairs = append(pairs, model.SimilarityPair{
			Skill1:     names[e.Source],
			Skill2:     names[e.Target],
			Similarity: e.Weight,
		})
	}
	return pairs
}

// clusterDensity is the mean edge weight, 0 when there are no edges
func clusterDensity(edges []model.SkillEdge) float64 {
	if len(edges) == 0 {
		return 0
	}
	weights := make([]float64, 0, len(edges))
	for _, e := range edges {
		weights = append(weights, e.Weight)
	}
	return stat.Mean(weights, nil)
}

// coverageScores maps each category to its rounded share of the total
// token mass
func coverageScores(nodes []*model.SkillNode) map[string]float64 {
	scores := make(map[string]float64)
	total := 0
	perCategory := make(map[string]int)
	for _, n := range nodes {
		total += n.Tokens
		perCategory[n.Category] += n.Tokens
	}
	if total == 0 {
		return scores
	}
	for category, tokens := range perCategory {
		scores[category] = math.Round(100 * float64(tokens) / float64(total))
	}
	return scores
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
