// Package parser normalizes free-form skill input into typed references.
// Input may be a structured array, plain names, name@version pairs,
// directory-listing output, or filesystem paths.
package parser

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/skillscope/skillscope/pkg/model"
)

// lsRowPattern matches a unix permission-style directory listing row,
// e.g. "drwxr-xr-x  3 user group 4096 Jan  1 12:00 skill-name"
var lsRowPattern = regexp.MustCompile(`^[-dlbcps][rwxstST-]{9}[+@.]?\s+\d+\s+\S+\s+\S+\s+\d+\s+\S+\s+\S+\s+\S+\s+(.+)$`)

// versionSuffixPattern matches "name v1.2.3" style version suffixes
var versionSuffixPattern = regexp.MustCompile(`^(.+?)\s+v(\d+\.\d+\.\d+)$`)

// Parse turns raw skill input text into a de-duplicated list of references.
// It never fails: unparseable lines degrade to best-effort name-only
// references, and only exact duplicates (case-insensitive on name) are
// dropped.
func Parse(raw string) []model.SkillReference {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil
	}

	if strings.HasPrefix(trimmed, "[") {
		if refs, ok := parseArray(trimmed); ok {
			return dedupe(refs)
		}
		// fall through to line mode
	}

	var refs []model.SkillReference
	for _, line := range strings.Split(trimmed, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "total") {
			continue
		}
		refs = append(refs, classifyLine(line))
	}
	return dedupe(refs)
}

// parseArray handles structured input: a JSON array of strings or of
// {name, version, path} objects.
func parseArray(raw string) ([]model.SkillReference, bool) {
	var names []string
	if err := json.Unmarshal([]byte(raw), &names); err == nil {
		var refs []model.SkillReference
		for _, name := range names {
			name = strings.TrimSpace(name)
			if name == "" {
				continue
			}
			refs = append(refs, classifyLine(name))
		}
		return refs, true
	}

	var objs []model.SkillReference
	if err := json.Unmarshal([]byte(raw), &objs); err == nil {
		var refs []model.SkillReference
		for _, ref := range objs {
			ref.Name = strings.TrimSpace(ref.Name)
			if ref.Name == "" {
				continue
			}
			refs = append(refs, ref)
		}
		return refs, true
	}

	return nil, false
}

// classifyLine classifies a single surviving line, in priority order:
// directory-listing row, version suffix, path, plain name.
func classifyLine(line string) model.SkillReference {
	if m := lsRowPattern.FindStringSubmatch(line); m != nil {
		return classifyLine(strings.TrimSpace(m[1]))
	}

	if at := strings.LastIndex(line, "@"); at > 0 {
		return model.SkillReference{
			Name:    strings.TrimSpace(line[:at]),
			Version: strings.TrimSpace(line[at+1:]),
		}
	}

	if m := versionSuffixPattern.FindStringSubmatch(line); m != nil {
		return model.SkillReference{
			Name:    strings.TrimSpace(m[1]),
			Version: m[2],
		}
	}

	if strings.Contains(line, "/") {
		segments := strings.Split(strings.TrimRight(line, "/"), "/")
		name := segments[len(segments)-1]
		return model.SkillReference{Name: name, Path: line}
	}

	return model.SkillReference{Name: line}
}

// dedupe drops later duplicates, case-insensitive on name; first wins
func dedupe(refs []model.SkillReference) []model.SkillReference {
	seen := make(map[string]bool)
	var out []model.SkillReference
	for _, ref := range refs {
		key := strings.ToLower(ref.Name)
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, ref)
	}
	return out
}
