package recommend

import (
	"testing"

	"github.com/skillscope/skillscope/pkg/model"
)

func TestSuggestRemovalsVariantSuffix(t *testing.T) {
	nodes := []*model.SkillNode{
		{ID: "docx", Category: "documents", ConnectionCount: 3},
		{ID: "docx-pro", Category: "documents", ConnectionCount: 1},
	}

	items := SuggestRemovals(nodes)

	if len(items) != 1 {
		t.Fatalf("Expected 1 removal, got %d", len(items))
	}
	if items[0].Skill != "docx-pro" {
		t.Errorf("Less-connected variant should be dropped, got %s", items[0].Skill)
	}
}

func TestSuggestRemovalsLevenshtein(t *testing.T) {
	nodes := []*model.SkillNode{
		{ID: "web-search", Category: "research", ConnectionCount: 2},
		{ID: "web-serch", Category: "research", ConnectionCount: 0},
	}

	items := SuggestRemovals(nodes)

	if len(items) != 1 {
		t.Fatalf("Expected 1 removal for near-identical names, got %d", len(items))
	}
	if items[0].Skill != "web-serch" {
		t.Errorf("Expected web-serch dropped, got %s", items[0].Skill)
	}
}

func TestSuggestRemovalsIgnoresCrossCategory(t *testing.T) {
	nodes := []*model.SkillNode{
		{ID: "docx", Category: "documents"},
		{ID: "docx-pro", Category: "utility"},
	}

	if items := SuggestRemovals(nodes); len(items) != 0 {
		t.Errorf("Cross-category pairs must not be suggested, got %v", items)
	}
}

func TestSuggestRemovalsNeverBothSides(t *testing.T) {
	nodes := []*model.SkillNode{
		{ID: "docx", Category: "documents", ConnectionCount: 1},
		{ID: "docx-pro", Category: "documents", ConnectionCount: 1},
	}

	items := SuggestRemovals(nodes)

	if len(items) != 1 {
		t.Fatalf("Expected exactly 1 removal, got %d", len(items))
	}
}

func TestSuggestRemovalsDistinctNames(t *testing.T) {
	nodes := []*model.SkillNode{
		{ID: "sql-query", Category: "data"},
		{ID: "data-viz", Category: "data"},
	}

	if items := SuggestRemovals(nodes); len(items) != 0 {
		t.Errorf("Distinct skills must not be suggested, got %v", items)
	}
}

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"abc", "abc", 0},
		{"abc", "abd", 1},
		{"abc", "", 3},
		{"kitten", "sitting", 3},
	}

	for _, tt := range tests {
		if got := levenshtein(tt.a, tt.b); got != tt.want {
			t.Errorf("levenshtein(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}
