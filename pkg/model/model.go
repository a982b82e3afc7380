package model

// HealthStatus classifies a skill node for triage
type HealthStatus string

const (
	HealthHealthy      HealthStatus = "healthy"
	HealthNeedsUpdate  HealthStatus = "needsUpdate"
	HealthUnused       HealthStatus = "unused"
	HealthShouldRemove HealthStatus = "shouldRemove"
)

// RiskLevel is the four-bucket classification of a vulnerability score
type RiskLevel string

const (
	RiskLow      RiskLevel = "low"
	RiskMedium   RiskLevel = "medium"
	RiskHigh     RiskLevel = "high"
	RiskCritical RiskLevel = "critical"
)

// TrustSource indicates where a skill's metadata was declared
type TrustSource string

const (
	TrustOfficial  TrustSource = "official"
	TrustVerified  TrustSource = "verified"
	TrustCommunity TrustSource = "community"
	TrustUnknown   TrustSource = "unknown"
)

// Permission names used in skill metadata and risk scoring
const (
	PermFilesystem    = "filesystem"
	PermCodeExecution = "code-execution"
	PermNetwork       = "network"
)

// SkillReference is a normalized input reference, produced by the parser
// and consumed by the catalog resolver. Not persisted.
type SkillReference struct {
	Name    string `json:"name"`
	Version string `json:"version,omitempty"`
	Path    string `json:"path,omitempty"`
}

// Vulnerability holds the heuristic risk assessment for one skill
type Vulnerability struct {
	Score                float64     `json:"score"` // 0-100
	Level                RiskLevel   `json:"level"`
	Permissions          []string    `json:"permissions,omitempty"`
	TrustSource          TrustSource `json:"trustSource"`
	HandlesSensitiveData bool        `json:"handlesSensitiveData"`
}

// SkillNode is the canonical unit of analysis
type SkillNode struct {
	ID       string `json:"id"`   // canonical, lowercase, [a-z0-9-] only
	Name     string `json:"name"` // display name
	Category string `json:"category"`

	// Spatial position, assigned by the layout engine
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`

	Tokens int     `json:"tokens"`
	Size   float64 `json:"size"` // 0.2-1.0, normalized against portfolio max tokens

	Connections     []string `json:"connections"` // neighbor ids, always symmetric
	ConnectionCount int      `json:"connectionCount"`

	Version       string `json:"version,omitempty"`
	LatestVersion string `json:"latestVersion,omitempty"`

	Health        HealthStatus  `json:"health"`
	Vulnerability Vulnerability `json:"vulnerability"`

	// True when the reference did not resolve against the catalog
	Unknown bool `json:"unknown,omitempty"`
}

// IsOutdated returns true if both versions are present and differ
func (n *SkillNode) IsOutdated() bool {
	return n.Version != "" && n.LatestVersion != "" && n.Version != n.LatestVersion
}

// SkillEdge is a similarity edge between two nodes. Undirected in meaning;
// source precedes target in input order and no reverse duplicate exists.
type SkillEdge struct {
	Source string  `json:"source"`
	Target string  `json:"target"`
	Weight float64 `json:"weight"` // (0,1]
}

// Position is a point in the layout space
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// SkillCluster aggregates the nodes of one category
type SkillCluster struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Category string   `json:"category"`
	Skills   []string `json:"skills"` // member node ids
	Centroid Position `json:"centroid"`
	Density  float64  `json:"density"` // member count / total node count
	Color    string   `json:"color"`
}

// SimilarityPair is one entry of the top-similarity listing
type SimilarityPair struct {
	Skill1     string  `json:"skill1"`
	Skill2     string  `json:"skill2"`
	Similarity float64 `json:"similarity"`
}

// VizMetrics holds portfolio-wide derived numbers
type VizMetrics struct {
	CosineSimilarities []SimilarityPair   `json:"cosineSimilarities"` // top 20 edges by weight
	ClusterDensity     float64            `json:"clusterDensity"`     // mean edge weight
	OverlapCoefficient float64            `json:"overlapCoefficient"` // same value, distinct field
	UniquenessIndex    float64            `json:"uniquenessIndex"`    // 1 - overlap*0.5, 2 decimals
	CoverageScores     map[string]float64 `json:"coverageScores"`     // category -> % of token mass
}
