// Package risk computes the heuristic vulnerability score for a skill
// from its declared metadata. It is a scorer over declarations, not a
// security auditor.
package risk

import (
	"strconv"
	"strings"

	"github.com/skillscope/skillscope/pkg/model"
)

// Assessment is the scored output for one skill
type Assessment struct {
	Score float64
	Level model.RiskLevel
}

// Input carries the declared metadata the scorer reads
type Input struct {
	Permissions          []string
	TrustSource          model.TrustSource
	HandlesSensitiveData bool
	Version              string
	LatestVersion        string
}

// Score applies the additive model: permissions, version gap, trust
// source, and sensitive-data handling each contribute independently.
// The result is clamped to [0,100].
func Score(in Input) Assessment {
	score := 0.0

	for _, perm := range in.Permissions {
		switch perm {
		case model.PermFilesystem:
			score += 10
		case model.PermCodeExecution:
			score += 10
		case model.PermNetwork:
			score += 5
		}
	}

	score += versionGapContribution(in.Version, in.LatestVersion)

	switch in.TrustSource {
	case model.TrustUnknown:
		score += 25
	case model.TrustCommunity:
		score += 15
	case model.TrustVerified:
		score += 5
	case model.TrustOfficial:
		// no contribution
	}

	if in.HandlesSensitiveData {
		score += 15
	}

	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	return Assessment{Score: score, Level: Level(score)}
}

// Level maps a score onto the four risk buckets. The thresholds are the
// basis for every downstream risk-graded consumer and must not drift.
func Level(score float64) model.RiskLevel {
	switch {
	case score <= 25:
		return model.RiskLow
	case score <= 50:
		return model.RiskMedium
	case score <= 75:
		return model.RiskHigh
	default:
		return model.RiskCritical
	}
}

// versionGapContribution scores the distance between installed and latest
// version. Unparseable or missing versions contribute nothing.
func versionGapContribution(version, latest string) float64 {
	v, okV := ParseVersion(version)
	l, okL := ParseVersion(latest)
	if !okV || !okL || v == l {
		return 0
	}

	switch {
	case l.Major > v.Major:
		return 25
	case l.Major == v.Major && l.Minor > v.Minor:
		return 15
	default:
		return 5
	}
}

// Version is a parsed semantic version
type Version struct {
	Major, Minor, Patch int
}

// ParseVersion parses "1.2.3" or "v1.2.3". Missing minor/patch components
// default to zero; anything non-numeric fails.
func ParseVersion(s string) (Version, bool) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "v")
	if s == "" {
		return Version{}, false
	}

	parts := strings.Split(s, ".")
	if len(parts) > 3 {
		return Version{}, false
	}

	var nums [3]int
	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil || n < 0 {
			return Version{}, false
		}
		nums[i] = n
	}

	return Version{Major: nums[0], Minor: nums[1], Patch: nums[2]}, true
}
