package catalog

import (
	"testing"

	"github.com/skillscope/skillscope/pkg/model"
)

func TestCanonicalID(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Prompt Guard", "prompt-guard"},
		{"sql_query", "sql-query"},
		{"Already-Canonical", "already-canonical"},
		{"weird!!chars##here", "weird-chars-here"},
		{"  trailing  ", "trailing"},
		{"dots.and.spaces mix", "dots-and-spaces-mix"},
	}

	for _, tt := range tests {
		if got := CanonicalID(tt.in); got != tt.want {
			t.Errorf("CanonicalID(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestResolveKnown(t *testing.T) {
	cat := Default()

	resolved := cat.Resolve(model.SkillReference{Name: "prompt-guard", Version: "2.8.0"})

	if resolved.Unknown {
		t.Fatal("prompt-guard should resolve against the default catalog")
	}
	if resolved.Meta.Category != "security" {
		t.Errorf("Expected category security, got %s", resolved.Meta.Category)
	}
	if resolved.Meta.LatestVersion != "3.0.0" {
		t.Errorf("Expected latest 3.0.0, got %s", resolved.Meta.LatestVersion)
	}
	if resolved.Ref.Version != "2.8.0" {
		t.Errorf("Reference version should be preserved, got %s", resolved.Ref.Version)
	}
}

func TestResolveAlias(t *testing.T) {
	cat := Default()

	resolved := cat.Resolve(model.SkillReference{Name: "k8s"})

	if resolved.Unknown {
		t.Fatal("alias k8s should resolve")
	}
	if resolved.ID != "k8s-deploy" {
		t.Errorf("Expected canonical id k8s-deploy, got %s", resolved.ID)
	}
}

func TestResolveUnknownDefaults(t *testing.T) {
	cat := Catalog{}

	resolved := cat.Resolve(model.SkillReference{Name: "Mystery Skill!"})

	if !resolved.Unknown {
		t.Fatal("Expected unknown resolution")
	}
	if resolved.ID != "mystery-skill" {
		t.Errorf("Expected synthesized id mystery-skill, got %s", resolved.ID)
	}
	if resolved.Meta.Category != UnknownCategory {
		t.Errorf("Expected default category %s, got %s", UnknownCategory, resolved.Meta.Category)
	}
	if resolved.Meta.EstimatedTokens != UnknownTokens {
		t.Errorf("Expected default tokens %d, got %d", UnknownTokens, resolved.Meta.EstimatedTokens)
	}
	if resolved.Meta.TrustSource != model.TrustUnknown {
		t.Errorf("Expected trust unknown, got %s", resolved.Meta.TrustSource)
	}
}

func TestResolveAllPreservesOrder(t *testing.T) {
	cat := Default()
	refs := []model.SkillReference{
		{Name: "docx"},
		{Name: "nonexistent"},
		{Name: "sql-query"},
	}

	resolved := cat.ResolveAll(refs)

	if len(resolved) != 3 {
		t.Fatalf("Expected 3 resolutions, got %d", len(resolved))
	}
	if resolved[0].ID != "docx" || resolved[2].ID != "sql-query" {
		t.Errorf("Resolution order not preserved: %s, %s", resolved[0].ID, resolved[2].ID)
	}
	if !resolved[1].Unknown {
		t.Error("Middle reference should be unknown")
	}
}
