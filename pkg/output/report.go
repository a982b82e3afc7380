// Package output renders an analysis result as a colorized console
// report.
package output

import (
	"fmt"

	"github.com/fatih/color"

	"github.com/skillscope/skillscope/pkg/model"
)

// PrintReport prints the portfolio report for one analysis result
func PrintReport(result *model.AnalysisResult) {
	bold := color.New(color.Bold)
	red := color.New(color.FgRed)
	green := color.New(color.FgGreen)
	yellow := color.New(color.FgYellow)
	cyan := color.New(color.FgCyan)

	bold.Println("Skillscope - Portfolio Report")
	bold.Println("=============================")
	fmt.Printf("Skills: %d (%d categories)\n", result.Summary.TotalSkills, result.Summary.CategoryCount)
	if result.Summary.UnknownSkills > 0 {
		yellow.Printf("Unrecognized: %d\n", result.Summary.UnknownSkills)
	}

	scoreColor := green
	if result.Summary.HealthScore < 80 {
		scoreColor = yellow
	}
	if result.Summary.HealthScore < 50 {
		scoreColor = red
	}
	scoreColor.Printf("Health score: %.1f/100\n", result.Summary.HealthScore)
	fmt.Println()

	for _, d := range result.Recommendations.Diagnosis {
		switch d.Severity {
		case model.SeverityError:
			red.Printf("  ✗ %s\n", d.Message)
		case model.SeverityWarning:
			yellow.Printf("  ! %s\n", d.Message)
		default:
			green.Printf("  ✓ %s\n", d.Message)
		}
	}
	fmt.Println()

	if len(result.Recommendations.Update) > 0 {
		bold.Println("UPDATES:")
		for _, u := range result.Recommendations.Update {
			yellow.Printf("  %s %s -> %s\n", u.Skill, u.From, u.To)
			fmt.Printf("    %s\n", u.Reason)
		}
		fmt.Println()
	}

	if len(result.Recommendations.Security) > 0 {
		red.Println("SECURITY:")
		for _, s := range result.Recommendations.Security {
			red.Printf("  %s [%s]\n", s.Skill, s.Level)
			fmt.Printf("    Reason: %s\n", s.Reason)
			fmt.Printf("    Action: %s\n", s.Action)
		}
		fmt.Println()
	}

	if len(result.Recommendations.Install) > 0 {
		bold.Println("SUGGESTED INSTALLS:")
		for _, i := range result.Recommendations.Install {
			cyan.Printf("  %s (%s)\n", i.Skill, i.Priority)
			fmt.Printf("    %s\n", i.Reason)
		}
		fmt.Println()
	}

	if len(result.Recommendations.Remove) > 0 {
		bold.Println("POSSIBLE DUPLICATES:")
		for _, r := range result.Recommendations.Remove {
			yellow.Printf("  %s: %s\n", r.Skill, r.Reason)
		}
		fmt.Println()
	}

	if pairs := result.Data.Metrics.CosineSimilarities; len(pairs) > 0 {
		bold.Println("MOST SIMILAR SKILLS:")
		limit := 5
		if len(pairs) < limit {
			limit = len(pairs)
		}
		for _, p := range pairs[:limit] {
			fmt.Printf("  %s <-> %s (%.2f)\n", p.Skill1, p.Skill2, p.Similarity)
		}
		fmt.Println()
	}

	fmt.Printf("Uniqueness index: %.2f\n", result.Data.Metrics.UniquenessIndex)
}
