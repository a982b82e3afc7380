// Package share encodes an analysis result into a compact, versioned,
// URL-safe string and decodes it back. Decoding never panics; corrupt
// input yields a nil result and an error the caller surfaces as
// "link may be corrupted".
package share

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/skillscope/skillscope/pkg/analysis"
	"github.com/skillscope/skillscope/pkg/layout"
	"github.com/skillscope/skillscope/pkg/logging"
	"github.com/skillscope/skillscope/pkg/model"
	"github.com/skillscope/skillscope/pkg/risk"
)

// FormatVersion is the current envelope version. A mismatch on decode
// warns and proceeds; it does not fail.
const FormatVersion = 1

// envelope is the minimal persisted form of a result
type envelope struct {
	V int             `json:"v"`
	I string          `json:"i"`
	T int64           `json:"t"`
	S json.RawMessage `json:"s"`
}

// richEntry is the producer-supplied metadata variant of a skill entry.
// Payloads carrying these skip catalog resolution on decode.
type richEntry struct {
	ID            string `json:"id"`
	Name          string `json:"name,omitempty"`
	Category      string `json:"category,omitempty"`
	Tokens        int    `json:"tokens,omitempty"`
	Version       string `json:"version,omitempty"`
	LatestVersion string `json:"latestVersion,omitempty"`
}

// Encode serializes a result into the v1 envelope: JSON, percent-encoded,
// then base64.
func Encode(result *model.AnalysisResult) (string, error) {
	entries := make([]string, 0, len(result.Data.Nodes))
	for _, n := range result.Data.Nodes {
		entry := n.ID
		if n.Version != "" {
			entry += "@" + n.Version
		}
		entries = append(entries, entry)
	}

	createdAt, err := time.Parse(time.RFC3339, result.CreatedAt)
	if err != nil {
		return "", fmt.Errorf("result has malformed createdAt: %w", err)
	}

	payload, err := json.Marshal(struct {
		V int      `json:"v"`
		I string   `json:"i"`
		T int64    `json:"t"`
		S []string `json:"s"`
	}{
		V: FormatVersion,
		I: result.ID,
		T: createdAt.UnixMilli(),
		S: entries,
	})
	if err != nil {
		return "", fmt.Errorf("encoding share envelope: %w", err)
	}

	return base64.StdEncoding.EncodeToString([]byte(url.QueryEscape(string(payload)))), nil
}

// Decode reverses Encode. String entries re-run the full analysis
// pipeline; rich metadata entries reconstruct nodes directly. Any
// parse failure returns a nil result and an error.
func Decode(encoded string, opts analysis.Options) (*model.AnalysisResult, error) {
	raw, err := decodeBase64(encoded)
	if err != nil {
		return nil, fmt.Errorf("share string is not valid base64: %w", err)
	}

	unescaped, err := url.QueryUnescape(string(raw))
	if err != nil {
		// Payloads from encoders that skip percent-encoding decode as-is
		unescaped = string(raw)
	}

	var env envelope
	if err := json.Unmarshal([]byte(unescaped), &env); err != nil {
		return nil, fmt.Errorf("share envelope is not valid JSON: %w", err)
	}
	if len(env.S) == 0 {
		return nil, fmt.Errorf("share envelope has no skill entries")
	}
	if env.V != FormatVersion {
		logging.Warn("share format version mismatch", "got", env.V, "want", FormatVersion)
	}

	// Tagged-variant decode: richer typed schema first, simple strings
	// as the fallback
	var rich []richEntry
	if err := json.Unmarshal(env.S, &rich); err == nil {
		return resultFromMetadata(rich, opts.Jitter), nil
	}

	var entries []string
	if err := json.Unmarshal(env.S, &entries); err != nil {
		return nil, fmt.Errorf("share envelope entries are neither strings nor metadata objects: %w", err)
	}

	refs := make([]model.SkillReference, 0, len(entries))
	for _, entry := range entries {
		refs = append(refs, splitEntry(entry))
	}
	return analysis.AnalyzeRefs(refs, opts), nil
}

// resultFromMetadata rebuilds nodes from producer-supplied metadata,
// skipping catalog resolution. Declared permissions and trust are not
// carried in this format, so risk falls back to the medium default.
func resultFromMetadata(entries []richEntry, jitter layout.Jitter) *model.AnalysisResult {
	nodes := make([]*model.SkillNode, 0, len(entries))
	for _, e := range entries {
		name := e.Name
		if name == "" {
			name = e.ID
		}
		category := e.Category
		if category == "" {
			category = "utility"
		}
		tokens := e.Tokens
		if tokens == 0 {
			tokens = 500
		}

		node := &model.SkillNode{
			ID:            e.ID,
			Name:          name,
			Category:      category,
			Tokens:        tokens,
			Version:       e.Version,
			LatestVersion: e.LatestVersion,
			Health:        model.HealthHealthy,
			Vulnerability: model.Vulnerability{
				Score:       40,
				Level:       risk.Level(40),
				TrustSource: model.TrustUnknown,
			},
		}
		if node.IsOutdated() {
			node.Health = model.HealthNeedsUpdate
		}
		nodes = append(nodes, node)
	}

	return analysis.BuildResult(nodes, nil, jitter)
}

// splitEntry splits "<id>[@version]" into a reference
func splitEntry(entry string) model.SkillReference {
	if at := strings.LastIndex(entry, "@"); at > 0 {
		return model.SkillReference{Name: entry[:at], Version: entry[at+1:]}
	}
	return model.SkillReference{Name: entry}
}

// decodeBase64 tries base64url first, then standard base64
func decodeBase64(s string) ([]byte, error) {
	s = strings.TrimSpace(s)
	urlSafe := strings.NewReplacer("-", "+", "_", "/").Replace(s)
	if b, err := base64.StdEncoding.DecodeString(pad(urlSafe)); err == nil {
		return b, nil
	}
	return base64.StdEncoding.DecodeString(pad(s))
}

// pad restores stripped base64 padding
func pad(s string) string {
	if m := len(s) % 4; m != 0 {
		return s + strings.Repeat("=", 4-m)
	}
	return s
}
