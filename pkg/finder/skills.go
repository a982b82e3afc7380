// Package finder discovers installed skills on disk and turns them into
// the raw text the input normalizer consumes.
package finder

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ReadInput reads skill input from a path: a file's contents verbatim,
// or a directory rendered as one skill entry per line.
func ReadInput(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("reading skill input %s: %w", path, err)
	}

	if !info.IsDir() {
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("reading skill input %s: %w", path, err)
		}
		return string(data), nil
	}

	entries, err := FindSkillEntries(path)
	if err != nil {
		return "", err
	}
	return strings.Join(entries, "\n"), nil
}

// FindSkillEntries lists the skills installed under a directory. Each
// immediate subdirectory is one skill; a subdirectory containing a
// SKILL.md marker still counts by name alone. Hidden entries are
// skipped.
func FindSkillEntries(dir string) ([]string, error) {
	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("listing skills in %s: %w", dir, err)
	}

	var skills []string
	for _, entry := range dirEntries {
		name := entry.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}
		if entry.IsDir() {
			skills = append(skills, name)
			continue
		}
		// Loose files named like skills (e.g. "web-search.md") count too
		if ext := filepath.Ext(name); ext == ".md" || ext == ".skill" {
			skills = append(skills, strings.TrimSuffix(name, ext))
		}
	}

	return skills, nil
}
