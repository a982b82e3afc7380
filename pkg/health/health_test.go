package health

import (
	"math/rand"
	"testing"

	"github.com/skillscope/skillscope/pkg/model"
)

func healthy(id, category string) *model.SkillNode {
	return &model.SkillNode{
		ID: id, Category: category, Health: model.HealthHealthy,
		Vulnerability: model.Vulnerability{Level: model.RiskLow},
	}
}

func TestScoreFullCoverage(t *testing.T) {
	nodes := []*model.SkillNode{
		healthy("a", "security"),
		healthy("b", "development"),
	}

	if got := Score(nodes); got != 100 {
		t.Errorf("Expected 100, got %v", got)
	}
}

func TestScoreOutdatedPenalty(t *testing.T) {
	n := healthy("a", "security")
	n.Version = "1.0.0"
	n.LatestVersion = "1.1.0"
	nodes := []*model.SkillNode{n, healthy("b", "development")}

	if got := Score(nodes); got != 97 {
		t.Errorf("Expected 97 (one outdated), got %v", got)
	}
}

func TestScoreRiskPenalties(t *testing.T) {
	tests := []struct {
		level model.RiskLevel
		want  float64
	}{
		{model.RiskCritical, 90},
		{model.RiskHigh, 95},
		{model.RiskMedium, 98},
		{model.RiskLow, 100},
	}

	for _, tt := range tests {
		risky := healthy("a", "security")
		risky.Vulnerability.Level = tt.level
		nodes := []*model.SkillNode{risky, healthy("b", "development")}

		if got := Score(nodes); got != tt.want {
			t.Errorf("Level %s: expected %v, got %v", tt.level, tt.want, got)
		}
	}
}

func TestScoreMissingSecurityCostsFifteen(t *testing.T) {
	with := []*model.SkillNode{
		healthy("a", "development"),
		healthy("b", "security"),
	}
	without := []*model.SkillNode{
		healthy("a", "development"),
		healthy("b", "data"),
	}

	if diff := Score(with) - Score(without); diff != 15 {
		t.Errorf("Missing security should cost exactly 15, diff was %v", diff)
	}
}

func TestScoreMissingDevelopmentCostsFive(t *testing.T) {
	nodes := []*model.SkillNode{healthy("a", "security")}

	if got := Score(nodes); got != 95 {
		t.Errorf("Expected 95 (no development), got %v", got)
	}
}

func TestScoreCategoryBreadthBonus(t *testing.T) {
	five := []*model.SkillNode{
		healthy("a", "security"),
		healthy("b", "development"),
		healthy("c", "data"),
		healthy("d", "devops"),
		healthy("e", "documents"),
	}
	if got := Score(five); got != 100 {
		t.Errorf("Five categories should clamp to 100, got %v", got)
	}

	// Drop development: 100 - 5 + 5 = 100... use a risky node to see the bonus
	risky := healthy("f", "research")
	risky.Vulnerability.Level = model.RiskCritical
	six := append(five, risky)
	// -10 critical +5 breadth (>=5) = 95
	if got := Score(six); got != 95 {
		t.Errorf("Expected 95, got %v", got)
	}

	seven := append(six, healthy("g", "communication"), healthy("h", "utility"))
	// -10 critical +5 +5 = 100
	if got := Score(seven); got != 100 {
		t.Errorf("Expected 100 with seven categories, got %v", got)
	}
}

func TestScoreOrderIndependent(t *testing.T) {
	nodes := []*model.SkillNode{
		healthy("a", "security"),
		healthy("b", "development"),
		healthy("c", "data"),
	}
	nodes[1].Vulnerability.Level = model.RiskHigh
	nodes[2].Version = "1.0.0"
	nodes[2].LatestVersion = "2.0.0"

	want := Score(nodes)

	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 20; i++ {
		shuffled := make([]*model.SkillNode, len(nodes))
		copy(shuffled, nodes)
		rng.Shuffle(len(shuffled), func(a, b int) {
			shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
		})

		if got := Score(shuffled); got != want {
			t.Fatalf("Score depends on node order: %v vs %v", got, want)
		}
	}
}

func TestScoreBounds(t *testing.T) {
	var nodes []*model.SkillNode
	for i := 0; i < 30; i++ {
		n := healthy("n", "utility")
		n.Vulnerability.Level = model.RiskCritical
		nodes = append(nodes, n)
	}

	got := Score(nodes)
	if got < 0 || got > 100 {
		t.Errorf("Score out of bounds: %v", got)
	}
	if got != 0 {
		t.Errorf("Expected clamp to 0, got %v", got)
	}
}
