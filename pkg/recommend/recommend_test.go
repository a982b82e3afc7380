package recommend

import (
	"strings"
	"testing"

	"github.com/skillscope/skillscope/pkg/model"
)

func securityNode() *model.SkillNode {
	return &model.SkillNode{
		ID: "prompt-guard", Name: "Prompt Guard", Category: "security",
		Health: model.HealthHealthy,
		Vulnerability: model.Vulnerability{
			Level:       model.RiskLow,
			TrustSource: model.TrustOfficial,
		},
	}
}

func TestGenerateSecurityPresenceSuccess(t *testing.T) {
	recs := Generate([]*model.SkillNode{securityNode()}, nil)

	if !hasDiagnosis(recs, model.SeveritySuccess, "Security coverage") {
		t.Error("Expected success diagnosis for security presence")
	}
	if hasDiagnosis(recs, model.SeverityError, "No security skills") {
		t.Error("Security-present and security-absent diagnoses are mutually exclusive")
	}
}

func TestGenerateMissingCategoryInstalls(t *testing.T) {
	recs := Generate([]*model.SkillNode{securityNode()}, nil)

	var skills []string
	for _, item := range recs.Install {
		skills = append(skills, item.Skill)
	}
	// data and devops are absent; security is present
	if !containsStr(skills, "sql-query") || !containsStr(skills, "docker-basics") {
		t.Errorf("Expected sql-query and docker-basics installs, got %v", skills)
	}
	if containsStr(skills, "prompt-guard") {
		t.Error("Should not suggest installing a present category's skill")
	}
}

func TestGenerateSecurityAbsent(t *testing.T) {
	n := &model.SkillNode{ID: "docx", Category: "documents", Health: model.HealthHealthy}
	recs := Generate([]*model.SkillNode{n}, nil)

	if !hasDiagnosis(recs, model.SeverityError, "No security skills") {
		t.Error("Expected error diagnosis for missing security category")
	}
	found := false
	for _, item := range recs.Install {
		if item.Skill == "prompt-guard" && item.Priority == model.PriorityHigh {
			found = true
		}
	}
	if !found {
		t.Error("Expected high-priority prompt-guard install")
	}
}

func TestGenerateDominantCategoryWarning(t *testing.T) {
	nodes := []*model.SkillNode{
		{ID: "a", Category: "development"},
		{ID: "b", Category: "development"},
		{ID: "c", Category: "development"},
		{ID: "d", Category: "data"},
	}

	recs := Generate(nodes, nil)

	if !hasDiagnosis(recs, model.SeverityWarning, "concentrated") {
		t.Error("Expected concentration warning for 3/4 development")
	}
}

func TestGenerateUpdateItems(t *testing.T) {
	nodes := []*model.SkillNode{
		{ID: "prompt-guard", Category: "security", Version: "2.8.0", LatestVersion: "3.0.0", Health: model.HealthNeedsUpdate},
		{ID: "docx", Category: "documents", Version: "1.5.0", LatestVersion: "1.6.0", Health: model.HealthNeedsUpdate},
	}

	recs := Generate(nodes, nil)

	if len(recs.Update) != 2 {
		t.Fatalf("Expected 2 update items, got %d", len(recs.Update))
	}
	first := recs.Update[0]
	if first.From != "v2.8.0" || first.To != "v3.0.0" {
		t.Errorf("Expected v2.8.0 -> v3.0.0, got %s -> %s", first.From, first.To)
	}
	if first.Reason != "Major update with new features" {
		t.Errorf("Major bump reason wrong: %s", first.Reason)
	}
	if recs.Update[1].Reason != "Bug fixes and improvements" {
		t.Errorf("Minor bump reason wrong: %s", recs.Update[1].Reason)
	}
	if hasDiagnosis(recs, model.SeveritySuccess, "up to date") {
		t.Error("Up-to-date success must not fire alongside update items")
	}
}

func TestGenerateSecurityItems(t *testing.T) {
	n := &model.SkillNode{
		ID: "sketchy", Category: "utility",
		Health: model.HealthNeedsUpdate,
		Vulnerability: model.Vulnerability{
			Level:                model.RiskCritical,
			TrustSource:          model.TrustUnknown,
			Permissions:          []string{model.PermCodeExecution, model.PermFilesystem},
			HandlesSensitiveData: true,
		},
		Version: "1.0.0", LatestVersion: "2.0.0",
	}

	recs := Generate([]*model.SkillNode{n}, nil)

	if len(recs.Security) != 1 {
		t.Fatalf("Expected 1 security item, got %d", len(recs.Security))
	}
	item := recs.Security[0]
	for _, want := range []string{"unknown source", "code execution", "filesystem access", "outdated", "handles sensitive data"} {
		if !strings.Contains(item.Reason, want) {
			t.Errorf("Reason missing %q: %s", want, item.Reason)
		}
	}
	if item.Action != "Update to v2.0.0" {
		t.Errorf("Outdated node should get update action, got %s", item.Action)
	}
	if hasDiagnosis(recs, model.SeveritySuccess, "No critical security") {
		t.Error("No-issues success must not fire alongside security items")
	}
}

func TestGenerateLowRiskNoSecurityItem(t *testing.T) {
	recs := Generate([]*model.SkillNode{securityNode()}, nil)

	if len(recs.Security) != 0 {
		t.Errorf("Expected no security items, got %d", len(recs.Security))
	}
	if !hasDiagnosis(recs, model.SeveritySuccess, "No critical security") {
		t.Error("Expected no-issues success diagnosis")
	}
	if !hasDiagnosis(recs, model.SeveritySuccess, "up to date") {
		t.Error("Expected up-to-date success diagnosis")
	}
}

func TestGenerateUnknownNames(t *testing.T) {
	recs := Generate(nil, []string{"one", "two", "three", "four"})

	found := false
	for _, d := range recs.Diagnosis {
		if d.Severity == model.SeverityWarning && strings.Contains(d.Message, "unrecognized") {
			found = true
			if !strings.Contains(d.Message, "one, two, three, ...") {
				t.Errorf("Expected first 3 names plus ellipsis, got %s", d.Message)
			}
			if strings.Contains(d.Message, "four") {
				t.Errorf("Fourth name should be elided: %s", d.Message)
			}
		}
	}
	if !found {
		t.Error("Expected unrecognized-names warning")
	}
}

func TestGenerateRemoveAlwaysEmpty(t *testing.T) {
	recs := Generate([]*model.SkillNode{securityNode()}, []string{"x"})

	if len(recs.Remove) != 0 {
		t.Errorf("Core generator must not populate remove, got %d items", len(recs.Remove))
	}
}

func hasDiagnosis(recs model.Recommendations, severity model.Severity, fragment string) bool {
	for _, d := range recs.Diagnosis {
		if d.Severity == severity && strings.Contains(d.Message, fragment) {
			return true
		}
	}
	return false
}

func containsStr(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
