// Package analysis runs the full skill portfolio pipeline: normalize,
// resolve, score, build the similarity graph, lay out, aggregate, and
// recommend. Every stage is a pure function over its inputs; the only
// nondeterminism is the layout jitter, which callers can seed or disable.
package analysis

import (
	"math/rand"
	"strconv"
	"time"

	"github.com/skillscope/skillscope/pkg/catalog"
	"github.com/skillscope/skillscope/pkg/graph"
	"github.com/skillscope/skillscope/pkg/health"
	"github.com/skillscope/skillscope/pkg/layout"
	"github.com/skillscope/skillscope/pkg/metrics"
	"github.com/skillscope/skillscope/pkg/model"
	"github.com/skillscope/skillscope/pkg/parser"
	"github.com/skillscope/skillscope/pkg/recommend"
	"github.com/skillscope/skillscope/pkg/risk"
)

// Options configures one analysis run. Zero values select the default
// catalog and a time-seeded jitter.
type Options struct {
	Catalog catalog.Catalog
	Jitter  layout.Jitter
}

// Analyze parses raw skill input and runs the full pipeline
func Analyze(raw string, opts Options) *model.AnalysisResult {
	return AnalyzeRefs(parser.Parse(raw), opts)
}

// AnalyzeRefs runs the pipeline on already-normalized references
func AnalyzeRefs(refs []model.SkillReference, opts Options) *model.AnalysisResult {
	cat := opts.Catalog
	if cat == nil {
		cat = catalog.Default()
	}

	nodes, unknownNames := buildNodes(cat.ResolveAll(refs))
	return BuildResult(nodes, unknownNames, opts.Jitter)
}

// BuildResult runs the post-resolution stages over prepared nodes. The
// share decoder uses it directly when a payload carries full metadata.
func BuildResult(nodes []*model.SkillNode, unknownNames []string, jitter layout.Jitter) *model.AnalysisResult {
	if jitter == nil {
		jitter = layout.NewJitter(time.Now().UnixNano())
	}

	normalizeSizes(nodes)

	sg := graph.Build(nodes)
	layout.Apply(nodes, jitter)
	clusters := layout.BuildClusters(nodes)

	viz := metrics.Aggregate(nodes, sg.Edges())
	recs := recommend.Generate(nodes, unknownNames)
	score := health.Score(nodes)

	categories := make(map[string]bool)
	outdated := 0
	critical := 0
	for _, n := range nodes {
		categories[n.Category] = true
		if n.IsOutdated() {
			outdated++
		}
		if n.Vulnerability.Level == model.RiskCritical {
			critical++
		}
	}

	return &model.AnalysisResult{
		ID:        NewResultID(),
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
		Data: model.GraphData{
			Nodes:    nodes,
			Edges:    sg.Edges(),
			Clusters: clusters,
			Metrics:  viz,
		},
		Recommendations: recs,
		Summary: model.Summary{
			TotalSkills:           len(nodes),
			UnknownSkills:         len(unknownNames),
			OutdatedCount:         outdated,
			CriticalSecurityCount: critical,
			CategoryCount:         len(categories),
			HealthScore:           score,
		},
	}
}

// buildNodes turns resolved references into nodes, scoring risk and
// classifying health as it goes. Unknown names are collected for the
// diagnosis pass.
func buildNodes(resolved []catalog.ResolvedSkill) ([]*model.SkillNode, []string) {
	nodes := make([]*model.SkillNode, 0, len(resolved))
	var unknownNames []string

	for _, r := range resolved {
		assessment := risk.Score(risk.Input{
			Permissions:          r.Meta.Permissions,
			TrustSource:          r.Meta.TrustSource,
			HandlesSensitiveData: r.Meta.HandlesSensitiveData,
			Version:              r.Ref.Version,
			LatestVersion:        r.Meta.LatestVersion,
		})

		node := &model.SkillNode{
			ID:            r.ID,
			Name:          r.Meta.Name,
			Category:      r.Meta.Category,
			Tokens:        r.Meta.EstimatedTokens,
			Version:       r.Ref.Version,
			LatestVersion: r.Meta.LatestVersion,
			Health:        model.HealthHealthy,
			Vulnerability: model.Vulnerability{
				Score:                assessment.Score,
				Level:                assessment.Level,
				Permissions:          r.Meta.Permissions,
				TrustSource:          r.Meta.TrustSource,
				HandlesSensitiveData: r.Meta.HandlesSensitiveData,
			},
			Unknown: r.Unknown,
		}
		if node.IsOutdated() {
			node.Health = model.HealthNeedsUpdate
		}

		if r.Unknown {
			unknownNames = append(unknownNames, r.Ref.Name)
		}

		nodes = append(nodes, node)
	}

	return nodes, unknownNames
}

// normalizeSizes scales node size into [0.2, 1.0] against the portfolio
// maximum token count
func normalizeSizes(nodes []*model.SkillNode) {
	maxTokens := 0
	for _, n := range nodes {
		if n.Tokens > maxTokens {
			maxTokens = n.Tokens
		}
	}

	for _, n := range nodes {
		if maxTokens == 0 {
			n.Size = 0.2
			continue
		}
		n.Size = 0.2 + 0.8*float64(n.Tokens)/float64(maxTokens)
	}
}

// NewResultID generates a result id of the form
// sr_<base36 millis>_<base36 random>. Stable for the life of the result.
func NewResultID() string {
	ts := strconv.FormatInt(time.Now().UnixMilli(), 36)
	suffix := strconv.FormatInt(rand.Int63n(1<<31), 36)
	return "sr_" + ts + "_" + suffix
}
