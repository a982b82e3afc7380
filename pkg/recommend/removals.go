package recommend

import (
	"fmt"
	"strings"

	"github.com/skillscope/skillscope/pkg/model"
)

// variantSuffixes are stripped before near-duplicate comparison
var variantSuffixes = []string{"pro", "plus", "lite", "mini", "old", "new", "v2", "v3", "2", "3"}

// SuggestRemovals is the looser duplicate-detection pass. It compares
// suffix-stripped names within the same category and suggests removing
// the less-connected node of each near-duplicate pair. It enriches the
// core recommendations and is intentionally not part of Generate.
func SuggestRemovals(nodes []*model.SkillNode) []model.RemoveItem {
	var items []model.RemoveItem
	suggested := make(map[string]bool)

	for i := 0; i < len(nodes); i++ {
		for j := i + 1; j < len(nodes); j++ {
			a, b := nodes[i], nodes[j]
			if a.Category != b.Category {
				continue
			}

			strippedA := stripVariantSuffix(a.ID)
			strippedB := stripVariantSuffix(b.ID)
			if strippedA != strippedB && levenshtein(strippedA, strippedB) > 2 {
				continue
			}

			// Keep the better-connected node; on a tie, keep the earlier one
			drop, keep := b, a
			if a.ConnectionCount < b.ConnectionCount {
				drop, keep = a, b
			}
			if suggested[drop.ID] {
				continue
			}
			suggested[drop.ID] = true
			items = append(items, model.RemoveItem{
				Skill:  drop.ID,
				Reason: fmt.Sprintf("Near-duplicate of %s", keep.ID),
			})
		}
	}

	return items
}

// stripVariantSuffix removes one trailing variant token, e.g.
// "docx-pro" -> "docx"
func stripVariantSuffix(id string) string {
	idx := strings.LastIndex(id, "-")
	if idx <= 0 {
		return id
	}
	suffix := id[idx+1:]
	for _, v := range variantSuffixes {
		if suffix == v {
			return id[:idx]
		}
	}
	return id
}

// levenshtein computes the edit distance between two strings
func levenshtein(a, b string) int {
	if a == b {
		return 0
	}
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}

	return prev[len(b)]
}
