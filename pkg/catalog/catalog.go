// Package catalog provides the static skill metadata table and the
// resolver that maps input references onto it. The table is an explicit,
// injectable value so tests can run against synthetic catalogs.
package catalog

import (
	"strings"

	"github.com/skillscope/skillscope/pkg/model"
)

// SkillMeta is the declared metadata for one known skill
type SkillMeta struct {
	Name                 string            `json:"name"`
	Category             string            `json:"category"`
	EstimatedTokens      int               `json:"estimatedTokens"`
	LatestVersion        string            `json:"latestVersion"`
	Permissions          []string          `json:"permissions,omitempty"`
	TrustSource          model.TrustSource `json:"trustSource"`
	HandlesSensitiveData bool              `json:"handlesSensitiveData"`
	Aliases              []string          `json:"aliases,omitempty"`
	Description          string            `json:"description,omitempty"`
}

// Catalog is a read-only mapping from canonical skill id to metadata
type Catalog map[string]SkillMeta

// Defaults applied to references that resolve to nothing
const (
	UnknownCategory = "utility"
	UnknownTokens   = 500
)

// CanonicalID lowercases a name and replaces every run of characters
// outside [a-z0-9-] with a single hyphen.
func CanonicalID(name string) string {
	lower := strings.ToLower(strings.TrimSpace(name))
	var b strings.Builder
	lastHyphen := false
	for _, r := range lower {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen && b.Len() > 0 {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	return strings.TrimRight(b.String(), "-")
}

// ResolvedSkill pairs a reference with its catalog metadata. Unknown is
// true when the name mapped to nothing; the metadata then holds the
// placeholder defaults so the rest of the pipeline stays uniform.
type ResolvedSkill struct {
	ID      string
	Ref     model.SkillReference
	Meta    SkillMeta
	Unknown bool
}

// Resolve looks a reference up by canonical id, then by alias.
func (c Catalog) Resolve(ref model.SkillReference) ResolvedSkill {
	id := CanonicalID(ref.Name)

	if meta, ok := c[id]; ok {
		return ResolvedSkill{ID: id, Ref: ref, Meta: meta}
	}

	for catalogID, meta := range c {
		for _, alias := range meta.Aliases {
			if CanonicalID(alias) == id {
				return ResolvedSkill{ID: catalogID, Ref: ref, Meta: meta}
			}
		}
	}

	return ResolvedSkill{
		ID:  id,
		Ref: ref,
		Meta: SkillMeta{
			Name:            ref.Name,
			Category:        UnknownCategory,
			EstimatedTokens: UnknownTokens,
			TrustSource:     model.TrustUnknown,
		},
		Unknown: true,
	}
}

// ResolveAll resolves every reference in order
func (c Catalog) ResolveAll(refs []model.SkillReference) []ResolvedSkill {
	resolved := make([]ResolvedSkill, 0, len(refs))
	for _, ref := range refs {
		resolved = append(resolved, c.Resolve(ref))
	}
	return resolved
}
