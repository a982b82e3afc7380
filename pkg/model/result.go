package model

// Severity grades a diagnosis item
type Severity string

const (
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
	SeveritySuccess Severity = "success"
)

// Priority grades an install recommendation
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// DiagnosisItem is a portfolio-level observation
type DiagnosisItem struct {
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
}

// InstallItem suggests a catalog skill to add
type InstallItem struct {
	Skill    string   `json:"skill"`
	Priority Priority `json:"priority"`
	Reason   string   `json:"reason"`
}

// RemoveItem suggests a skill to drop
type RemoveItem struct {
	Skill  string `json:"skill"`
	Reason string `json:"reason"`
}

// UpdateItem flags an outdated skill
type UpdateItem struct {
	Skill  string `json:"skill"`
	From   string `json:"from"`
	To     string `json:"to"`
	Reason string `json:"reason"`
}

// SecurityItem flags a high-risk skill with suggested action
type SecurityItem struct {
	Skill  string    `json:"skill"`
	Level  RiskLevel `json:"level"`
	Reason string    `json:"reason"`
	Action string    `json:"action"`
}

// Recommendations holds the five independent recommendation lists.
// Order within each list is insertion order.
type Recommendations struct {
	Diagnosis []DiagnosisItem `json:"diagnosis"`
	Install   []InstallItem   `json:"install"`
	Remove    []RemoveItem    `json:"remove"`
	Update    []UpdateItem    `json:"update"`
	Security  []SecurityItem  `json:"security"`
}

// Summary carries the headline portfolio numbers
type Summary struct {
	TotalSkills           int     `json:"totalSkills"`
	UnknownSkills         int     `json:"unknownSkills"`
	OutdatedCount         int     `json:"outdatedCount"`
	CriticalSecurityCount int     `json:"criticalSecurityCount"`
	CategoryCount         int     `json:"categoryCount"`
	HealthScore           float64 `json:"healthScore"` // 0-100, one decimal
}

// GraphData is the typed graph handed to the presentation layer
type GraphData struct {
	Nodes    []*SkillNode    `json:"nodes"`
	Edges    []SkillEdge     `json:"edges"`
	Clusters []*SkillCluster `json:"clusters"`
	Metrics  VizMetrics      `json:"metrics"`
}

// AnalysisResult is the root aggregate produced by one analysis run.
// ID and CreatedAt are set once at creation and never mutated.
type AnalysisResult struct {
	ID              string          `json:"id"`
	CreatedAt       string          `json:"createdAt"` // RFC3339
	Data            GraphData       `json:"data"`
	Recommendations Recommendations `json:"recommendations"`
	Summary         Summary         `json:"summary"`
}

// Node returns the node with the given id, or nil
func (r *AnalysisResult) Node(id string) *SkillNode {
	for _, n := range r.Data.Nodes {
		if n.ID == id {
			return n
		}
	}
	return nil
}

// Categories returns the distinct categories in first-seen node order
func (r *AnalysisResult) Categories() []string {
	seen := make(map[string]bool)
	var cats []string
	for _, n := range r.Data.Nodes {
		if !seen[n.Category] {
			seen[n.Category] = true
			cats = append(cats, n.Category)
		}
	}
	return cats
}
