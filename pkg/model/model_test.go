package model

import "testing"

func TestIsOutdated(t *testing.T) {
	cases := []struct {
		name    string
		version string
		latest  string
		want    bool
	}{
		{"both set and different", "1.0.0", "2.0.0", true},
		{"both set and equal", "2.0.0", "2.0.0", false},
		{"no pinned version", "", "2.0.0", false},
		{"no latest known", "1.0.0", "", false},
		{"neither known", "", "", false},
	}

	for _, tc := range cases {
		n := SkillNode{Version: tc.version, LatestVersion: tc.latest}
		if got := n.IsOutdated(); got != tc.want {
			t.Errorf("%s: IsOutdated() = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestCategoriesFirstSeenOrder(t *testing.T) {
	r := AnalysisResult{Data: GraphData{Nodes: []*SkillNode{
		{ID: "a", Category: "data"},
		{ID: "b", Category: "security"},
		{ID: "c", Category: "data"},
		{ID: "d", Category: "documents"},
	}}}

	got := r.Categories()
	want := []string{"data", "security", "documents"}
	if len(got) != len(want) {
		t.Fatalf("Expected %d categories, got %v", len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Category %d: got %s, want %s", i, got[i], want[i])
		}
	}
}

func TestNodeLookup(t *testing.T) {
	r := AnalysisResult{Data: GraphData{Nodes: []*SkillNode{
		{ID: "docx"},
		{ID: "xlsx"},
	}}}

	if n := r.Node("xlsx"); n == nil || n.ID != "xlsx" {
		t.Errorf("Node(xlsx) = %v", n)
	}
	if n := r.Node("missing"); n != nil {
		t.Errorf("Node(missing) should be nil, got %v", n)
	}
}
