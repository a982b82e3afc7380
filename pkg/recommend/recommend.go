// Package recommend turns catalog gaps, outdated versions, and risk
// scores into categorized action items. Generate is deterministic; the
// looser duplicate-removal heuristic lives in SuggestRemovals and runs
// as a separate enrichment pass.
package recommend

import (
	"fmt"
	"strings"

	"github.com/skillscope/skillscope/pkg/model"
	"github.com/skillscope/skillscope/pkg/risk"
)

// gapRemediation maps an absent category to the install suggestion that
// fills it
type gapRemediation struct {
	category string
	skill    string
	priority model.Priority
	reason   string
}

var gapRemediations = []gapRemediation{
	{"data", "sql-query", model.PriorityHigh, "No data skills installed; sql-query covers the most common need"},
	{"devops", "docker-basics", model.PriorityMedium, "No devops skills installed; docker-basics is the usual starting point"},
	{"security", "prompt-guard", model.PriorityHigh, "No security skills installed; prompt-guard screens for prompt injection"},
}

// Generate evaluates every rule independently; all applicable rules fire.
// Order within each list is insertion order. The remove list is always
// empty here; removals come from SuggestRemovals.
func Generate(nodes []*model.SkillNode, unknownNames []string) model.Recommendations {
	recs := model.Recommendations{
		Diagnosis: []model.DiagnosisItem{},
		Install:   []model.InstallItem{},
		Remove:    []model.RemoveItem{},
		Update:    []model.UpdateItem{},
		Security:  []model.SecurityItem{},
	}

	counts := make(map[string]int)
	for _, n := range nodes {
		counts[n.Category]++
	}

	if category, count := dominantCategory(nodes, counts); category != "" {
		recs.Diagnosis = append(recs.Diagnosis, model.DiagnosisItem{
			Severity: model.SeverityWarning,
			Message:  fmt.Sprintf("Portfolio is concentrated: %d of %d skills are %s", count, len(nodes), category),
		})
	}

	for _, gap := range gapRemediations {
		if counts[gap.category] > 0 {
			continue
		}
		if gap.category == "security" {
			recs.Diagnosis = append(recs.Diagnosis, model.DiagnosisItem{
				Severity: model.SeverityError,
				Message:  "No security skills installed",
			})
		}
		recs.Install = append(recs.Install, model.InstallItem{
			Skill:    gap.skill,
			Priority: gap.priority,
			Reason:   gap.reason,
		})
	}

	if counts["security"] > 0 {
		recs.Diagnosis = append(recs.Diagnosis, model.DiagnosisItem{
			Severity: model.SeveritySuccess,
			Message:  "Security coverage present",
		})
	}

	for _, n := range nodes {
		if !n.IsOutdated() {
			continue
		}
		recs.Update = append(recs.Update, model.UpdateItem{
			Skill:  n.ID,
			From:   "v" + n.Version,
			To:     "v" + n.LatestVersion,
			Reason: updateReason(n.Version, n.LatestVersion),
		})
	}

	for _, n := range nodes {
		level := n.Vulnerability.Level
		if level != model.RiskHigh && level != model.RiskCritical {
			continue
		}
		recs.Security = append(recs.Security, model.SecurityItem{
			Skill:  n.ID,
			Level:  level,
			Reason: securityReason(n),
			Action: securityAction(n),
		})
	}

	if len(unknownNames) > 0 {
		listed := unknownNames
		suffix := ""
		if len(listed) > 3 {
			listed = listed[:3]
			suffix = ", ..."
		}
		recs.Diagnosis = append(recs.Diagnosis, model.DiagnosisItem{
			Severity: model.SeverityWarning,
			Message:  fmt.Sprintf("%d unrecognized skill(s): %s%s", len(unknownNames), strings.Join(listed, ", "), suffix),
		})
	}

	if len(recs.Update) == 0 {
		recs.Diagnosis = append(recs.Diagnosis, model.DiagnosisItem{
			Severity: model.SeveritySuccess,
			Message:  "All skill versions are up to date",
		})
	}
	if len(recs.Security) == 0 {
		recs.Diagnosis = append(recs.Diagnosis, model.DiagnosisItem{
			Severity: model.SeveritySuccess,
			Message:  "No critical security issues detected",
		})
	}

	return recs
}

// dominantCategory returns a category holding more than half of the
// portfolio, if any
func dominantCategory(nodes []*model.SkillNode, counts map[string]int) (string, int) {
	total := len(nodes)
	if total == 0 {
		return "", 0
	}
	// first-seen order keeps the result stable
	seen := make(map[string]bool)
	for _, n := range nodes {
		if seen[n.Category] {
			continue
		}
		seen[n.Category] = true
		if count := counts[n.Category]; count*2 > total {
			return n.Category, count
		}
	}
	return "", 0
}

func updateReason(version, latest string) string {
	v, okV := risk.ParseVersion(version)
	l, okL := risk.ParseVersion(latest)
	if okV && okL && l.Major > v.Major {
		return "Major update with new features"
	}
	return "Bug fixes and improvements"
}

// securityReason concatenates the concrete risk drivers for one node
func securityReason(n *model.SkillNode) string {
	var parts []string

	switch n.Vulnerability.TrustSource {
	case model.TrustCommunity:
		parts = append(parts, "community-sourced")
	case model.TrustUnknown:
		parts = append(parts, "unknown source")
	}

	for _, perm := range n.Vulnerability.Permissions {
		switch perm {
		case model.PermCodeExecution:
			parts = append(parts, "code execution")
		case model.PermFilesystem:
			parts = append(parts, "filesystem access")
		}
	}

	if n.Health == model.HealthNeedsUpdate {
		parts = append(parts, "outdated")
	}
	if n.Vulnerability.HandlesSensitiveData {
		parts = append(parts, "handles sensitive data")
	}

	if len(parts) == 0 {
		return "elevated risk score"
	}
	return strings.Join(parts, ", ")
}

func securityAction(n *model.SkillNode) string {
	if n.IsOutdated() {
		return "Update to v" + n.LatestVersion
	}
	switch n.Vulnerability.TrustSource {
	case model.TrustCommunity:
		return "Review the skill source before continued use"
	case model.TrustUnknown:
		return "Verify the skill's provenance"
	default:
		return "Review the granted permissions"
	}
}
