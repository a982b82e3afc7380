// Package health folds outdated counts, risk distribution, and category
// coverage into a single 0-100 portfolio score. Score is pure and
// order-independent over the node list.
package health

import (
	"math"

	"github.com/skillscope/skillscope/pkg/model"
)

// Score computes the portfolio health score, clamped to [0,100] and
// rounded to one decimal.
func Score(nodes []*model.SkillNode) float64 {
	score := 100.0

	categories := make(map[string]bool)
	for _, n := range nodes {
		categories[n.Category] = true

		if n.IsOutdated() {
			score -= 3
		}

		switch n.Vulnerability.Level {
		case model.RiskCritical:
			score -= 10
		case model.RiskHigh:
			score -= 5
		case model.RiskMedium:
			score -= 2
		}
	}

	if !categories["security"] {
		score -= 15
	}
	if !categories["development"] {
		score -= 5
	}

	if len(categories) >= 5 {
		score += 5
	}
	if len(categories) >= 7 {
		score += 5
	}

	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	return math.Round(score*10) / 10
}
