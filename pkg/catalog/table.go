package catalog

import "github.com/skillscope/skillscope/pkg/model"

// Default returns the built-in skill catalog. Callers may pass their own
// Catalog instead; nothing in the engine reads this table implicitly.
func Default() Catalog {
	return Catalog{
		"code-review": {
			Name:            "Code Review",
			Category:        "development",
			EstimatedTokens: 1200,
			LatestVersion:   "2.1.0",
			Permissions:     []string{model.PermFilesystem},
			TrustSource:     model.TrustOfficial,
			Aliases:         []string{"review", "pr-review"},
			Description:     "Reviews diffs for defects and style issues",
		},
		"test-runner": {
			Name:            "Test Runner",
			Category:        "development",
			EstimatedTokens: 900,
			LatestVersion:   "1.4.2",
			Permissions:     []string{model.PermFilesystem, model.PermCodeExecution},
			TrustSource:     model.TrustOfficial,
			Aliases:         []string{"tests"},
			Description:     "Runs project test suites and summarizes failures",
		},
		"git-workflow": {
			Name:            "Git Workflow",
			Category:        "development",
			EstimatedTokens: 800,
			LatestVersion:   "3.0.1",
			Permissions:     []string{model.PermFilesystem, model.PermCodeExecution},
			TrustSource:     model.TrustOfficial,
			Aliases:         []string{"git"},
			Description:     "Branching, commits, and merge conflict handling",
		},
		"sql-query": {
			Name:                 "SQL Query",
			Category:             "data",
			EstimatedTokens:      1100,
			LatestVersion:        "2.3.0",
			Permissions:          []string{model.PermNetwork},
			TrustSource:          model.TrustVerified,
			HandlesSensitiveData: true,
			Aliases:              []string{"sql"},
			Description:          "Writes and explains SQL against live schemas",
		},
		"data-viz": {
			Name:            "Data Visualization",
			Category:        "data",
			EstimatedTokens: 1500,
			LatestVersion:   "1.8.0",
			Permissions:     []string{model.PermFilesystem},
			TrustSource:     model.TrustVerified,
			Aliases:         []string{"charts", "dataviz"},
			Description:     "Builds charts and dashboards from tabular data",
		},
		"docker-basics": {
			Name:            "Docker Basics",
			Category:        "devops",
			EstimatedTokens: 700,
			LatestVersion:   "1.2.0",
			Permissions:     []string{model.PermCodeExecution},
			TrustSource:     model.TrustOfficial,
			Aliases:         []string{"docker"},
			Description:     "Container builds, images, and compose files",
		},
		"k8s-deploy": {
			Name:            "Kubernetes Deploy",
			Category:        "devops",
			EstimatedTokens: 1600,
			LatestVersion:   "2.0.0",
			Permissions:     []string{model.PermCodeExecution, model.PermNetwork},
			TrustSource:     model.TrustVerified,
			Aliases:         []string{"kubernetes", "k8s"},
			Description:     "Manifests, rollouts, and cluster debugging",
		},
		"prompt-guard": {
			Name:            "Prompt Guard",
			Category:        "security",
			EstimatedTokens: 600,
			LatestVersion:   "3.0.0",
			Permissions:     []string{model.PermCodeExecution},
			TrustSource:     model.TrustOfficial,
			Aliases:         []string{"promptguard"},
			Description:     "Screens prompts for injection and exfiltration",
		},
		"secrets-scan": {
			Name:                 "Secrets Scanner",
			Category:             "security",
			EstimatedTokens:      550,
			LatestVersion:        "1.1.0",
			Permissions:          []string{model.PermFilesystem},
			TrustSource:          model.TrustVerified,
			HandlesSensitiveData: true,
			Aliases:              []string{"secrets"},
			Description:          "Finds credentials committed to repositories",
		},
		"web-search": {
			Name:            "Web Search",
			Category:        "research",
			EstimatedTokens: 450,
			LatestVersion:   "2.5.1",
			Permissions:     []string{model.PermNetwork},
			TrustSource:     model.TrustOfficial,
			Aliases:         []string{"search"},
			Description:     "Searches the web and extracts cited answers",
		},
		"pdf-extract": {
			Name:            "PDF Extract",
			Category:        "documents",
			EstimatedTokens: 950,
			LatestVersion:   "1.3.0",
			Permissions:     []string{model.PermFilesystem},
			TrustSource:     model.TrustCommunity,
			Aliases:         []string{"pdf"},
			Description:     "Extracts text and tables from PDF files",
		},
		"docx": {
			Name:            "Word Documents",
			Category:        "documents",
			EstimatedTokens: 850,
			LatestVersion:   "1.6.0",
			Permissions:     []string{model.PermFilesystem},
			TrustSource:     model.TrustOfficial,
			Description:     "Reads and writes .docx files",
		},
		"xlsx": {
			Name:            "Spreadsheets",
			Category:        "documents",
			EstimatedTokens: 900,
			LatestVersion:   "1.5.0",
			Permissions:     []string{model.PermFilesystem},
			TrustSource:     model.TrustOfficial,
			Aliases:         []string{"excel"},
			Description:     "Reads and writes .xlsx workbooks",
		},
		"api-client": {
			Name:            "API Client",
			Category:        "utility",
			EstimatedTokens: 650,
			LatestVersion:   "2.2.0",
			Permissions:     []string{model.PermNetwork},
			TrustSource:     model.TrustCommunity,
			Aliases:         []string{"http-client"},
			Description:     "Calls REST APIs and shapes responses",
		},
		"slack-notify": {
			Name:            "Slack Notify",
			Category:        "communication",
			EstimatedTokens: 400,
			LatestVersion:   "1.0.2",
			Permissions:     []string{model.PermNetwork},
			TrustSource:     model.TrustCommunity,
			Aliases:         []string{"slack"},
			Description:     "Posts formatted messages to Slack channels",
		},
	}
}
