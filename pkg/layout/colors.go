package layout

// Category color table shared with the presentation layer. The engine
// stores the resolved hex string on the cluster and nothing else.
var categoryColors = map[string]string{
	"development":   "#4f8ef7",
	"data":          "#34c77b",
	"devops":        "#f7a44f",
	"security":      "#e5484d",
	"research":      "#a06ee1",
	"documents":     "#e1b84f",
	"communication": "#4fd2e1",
	"utility":       "#9aa0a6",
}

const defaultColor = "#9aa0a6"

// CategoryColor resolves a category to its display color
func CategoryColor(category string) string {
	if color, ok := categoryColors[category]; ok {
		return color
	}
	return defaultColor
}
