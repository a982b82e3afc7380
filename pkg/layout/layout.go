// Package layout assigns 3-D positions to skill nodes and rebuilds the
// per-category clusters. The structure is deterministic: categories take
// evenly divided angle slices and radius is biased by connectivity. Only
// the jitter term is random, and it sits behind a seedable interface so
// tests can disable it.
package layout

import (
	"math"
	"math/rand"
	"strings"

	"github.com/skillscope/skillscope/pkg/model"
)

// Jitter produces small random offsets for the layout
type Jitter interface {
	// Offset returns a value in [-scale, scale]
	Offset(scale float64) float64
}

type randJitter struct {
	rng *rand.Rand
}

func (j *randJitter) Offset(scale float64) float64 {
	return (j.rng.Float64()*2 - 1) * scale
}

// NewJitter returns a seeded jitter source
func NewJitter(seed int64) Jitter {
	return &randJitter{rng: rand.New(rand.NewSource(seed))}
}

type noJitter struct{}

func (noJitter) Offset(float64) float64 { return 0 }

// NoJitter disables the random term entirely
var NoJitter Jitter = noJitter{}

// Apply positions every node in place. Categories claim angle slices in
// first-seen order; within a category, radius shrinks with connectivity
// (hubs sit near the cluster center) and y fans members around zero.
func Apply(nodes []*model.SkillNode, jitter Jitter) {
	if len(nodes) == 0 {
		return
	}
	if jitter == nil {
		jitter = NoJitter
	}

	byCategory := groupByCategory(nodes)

	maxConnections := 0
	for _, node := range nodes {
		if node.ConnectionCount > maxConnections {
			maxConnections = node.ConnectionCount
		}
	}

	for catIndex, group := range byCategory {
		angle := 2 * math.Pi * float64(catIndex) / float64(len(byCategory))

		for i, node := range group.nodes {
			ratio := 0.0
			if maxConnections > 0 {
				ratio = float64(node.ConnectionCount) / float64(maxConnections)
			}
			radius := 2 + (1-ratio)*4 + jitter.Offset(0.5)

			node.X = math.Cos(angle)*radius + jitter.Offset(0.4)
			node.Z = math.Sin(angle)*radius + jitter.Offset(0.4)
			node.Y = (float64(i)-float64(len(group.nodes)-1)/2)*0.8 + jitter.Offset(0.3)
		}
	}
}

// BuildClusters rebuilds the cluster set wholesale: one cluster per
// distinct category, centroid at the mean member position, density as
// the member share of the whole portfolio.
func BuildClusters(nodes []*model.SkillNode) []*model.SkillCluster {
	if len(nodes) == 0 {
		return nil
	}

	var clusters []*model.SkillCluster
	for _, group := range groupByCategory(nodes) {
		cluster := &model.SkillCluster{
			ID:       "cluster-" + group.category,
			Name:     displayName(group.category),
			Category: group.category,
			Color:    CategoryColor(group.category),
		}

		var sumX, sumY, sumZ float64
		for _, node := range group.nodes {
			cluster.Skills = append(cluster.Skills, node.ID)
			sumX += node.X
			sumY += node.Y
			sumZ += node.Z
		}

		n := float64(len(group.nodes))
		cluster.Centroid = model.Position{X: sumX / n, Y: sumY / n, Z: sumZ / n}
		cluster.Density = n / float64(len(nodes))

		clusters = append(clusters, cluster)
	}

	return clusters
}

type categoryGroup struct {
	category string
	nodes    []*model.SkillNode
}

// groupByCategory groups nodes preserving first-seen category order
func groupByCategory(nodes []*model.SkillNode) []categoryGroup {
	index := make(map[string]int)
	var groups []categoryGroup
	for _, node := range nodes {
		i, ok := index[node.Category]
		if !ok {
			i = len(groups)
			index[node.Category] = i
			groups = append(groups, categoryGroup{category: node.Category})
		}
		groups[i].nodes = append(groups[i].nodes, node)
	}
	return groups
}

func displayName(category string) string {
	if category == "" {
		return ""
	}
	return strings.ToUpper(category[:1]) + category[1:]
}
