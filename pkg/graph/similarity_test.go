package graph

import (
	"testing"

	"github.com/skillscope/skillscope/pkg/model"
)

func node(id, name, category string, perms ...string) *model.SkillNode {
	return &model.SkillNode{
		ID:       id,
		Name:     name,
		Category: category,
		Vulnerability: model.Vulnerability{
			Permissions: perms,
		},
	}
}

func TestBuildRetainsOverlappingNames(t *testing.T) {
	nodes := []*model.SkillNode{
		node("docx", "docx", "documents"),
		node("docx-pro", "docx-pro", "documents"),
	}

	sg := Build(nodes)

	edges := sg.Edges()
	if len(edges) != 1 {
		t.Fatalf("Expected 1 edge, got %d", len(edges))
	}
	if edges[0].Weight <= Threshold {
		t.Errorf("Expected weight > %v, got %v", Threshold, edges[0].Weight)
	}
	if edges[0].Source != "docx" || edges[0].Target != "docx-pro" {
		t.Errorf("Edge orientation should follow input order, got %s -> %s", edges[0].Source, edges[0].Target)
	}
}

func TestBuildConnectionsAreSymmetric(t *testing.T) {
	nodes := []*model.SkillNode{
		node("a", "data loader", "data", model.PermNetwork),
		node("b", "data writer", "data", model.PermNetwork),
		node("c", "unrelated", "security"),
	}

	sg := Build(nodes)

	for _, e := range sg.Edges() {
		src := findNode(t, nodes, e.Source)
		tgt := findNode(t, nodes, e.Target)
		if !contains(src.Connections, e.Target) {
			t.Errorf("%s missing connection to %s", e.Source, e.Target)
		}
		if !contains(tgt.Connections, e.Source) {
			t.Errorf("%s missing connection to %s", e.Target, e.Source)
		}
	}

	for _, n := range nodes {
		if n.ConnectionCount != len(n.Connections) {
			t.Errorf("%s: connectionCount %d != len(connections) %d", n.ID, n.ConnectionCount, len(n.Connections))
		}
	}
}

func TestBuildNoEdgeBelowThreshold(t *testing.T) {
	// Different categories, disjoint names, no permissions: 0.1 total
	nodes := []*model.SkillNode{
		node("a", "alpha", "data"),
		node("b", "zeta", "security"),
	}

	sg := Build(nodes)

	if len(sg.Edges()) != 0 {
		t.Errorf("Expected no edges, got %d", len(sg.Edges()))
	}
	if nodes[0].ConnectionCount != 0 {
		t.Errorf("Expected no connections, got %d", nodes[0].ConnectionCount)
	}
}

func TestSimilarityCategoryTerms(t *testing.T) {
	same := Similarity(node("a", "alpha", "data"), node("b", "zeta", "data"))
	if same != 0.4 {
		t.Errorf("Same category, no other overlap: expected 0.4, got %v", same)
	}

	diff := Similarity(node("a", "alpha", "data"), node("b", "zeta", "devops"))
	if diff != 0.1 {
		t.Errorf("Different category: expected 0.1, got %v", diff)
	}
}

func TestSimilarityPermissionJaccard(t *testing.T) {
	a := node("a", "alpha", "data", model.PermFilesystem, model.PermNetwork)
	b := node("b", "zeta", "data", model.PermNetwork)

	// 0.4 category + 0.2 * (1/2 jaccard) = 0.5
	sim := Similarity(a, b)
	if sim < 0.499 || sim > 0.501 {
		t.Errorf("Expected 0.5, got %v", sim)
	}
}

func TestSimilarityIdenticalNames(t *testing.T) {
	a := node("a", "sql query", "data")
	b := node("b", "sql_query", "data")

	// 0.4 + 0.3*1.0 = 0.7
	sim := Similarity(a, b)
	if sim < 0.699 || sim > 0.701 {
		t.Errorf("Expected 0.7, got %v", sim)
	}
}

func TestWeightClampedToOne(t *testing.T) {
	a := node("a", "same name", "data", model.PermFilesystem)
	b := node("b", "same name", "data", model.PermFilesystem)

	sg := Build([]*model.SkillNode{a, b})

	edges := sg.Edges()
	if len(edges) != 1 {
		t.Fatalf("Expected 1 edge, got %d", len(edges))
	}
	if edges[0].Weight > 1 {
		t.Errorf("Weight must be clamped to 1, got %v", edges[0].Weight)
	}
}

func TestComponents(t *testing.T) {
	nodes := []*model.SkillNode{
		node("docx", "docx", "documents"),
		node("docx-pro", "docx-pro", "documents"),
		node("web-search", "web search", "research"),
	}

	sg := Build(nodes)
	groups := sg.Components(0.5)

	if len(groups) != 1 {
		t.Fatalf("Expected 1 component, got %d", len(groups))
	}
	if len(groups[0]) != 2 || groups[0][0] != "docx" || groups[0][1] != "docx-pro" {
		t.Errorf("Unexpected component: %v", groups[0])
	}
}

func findNode(t *testing.T, nodes []*model.SkillNode, id string) *model.SkillNode {
	t.Helper()
	for _, n := range nodes {
		if n.ID == id {
			return n
		}
	}
	t.Fatalf("node %s not found", id)
	return nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
