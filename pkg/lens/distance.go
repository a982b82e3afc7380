// Package lens computes view-level derivations over an analysis result
// for interactive dashboard highlighting. It only reads the result;
// filtering operates on these derived copies.
package lens

import (
	"github.com/skillscope/skillscope/pkg/model"
)

// Unreachable marks nodes with no path to any selected node
const Unreachable = -1

// Distances computes the shortest hop count from every node to the
// nearest selected node over the similarity edges. Unreachable nodes
// (and all nodes, when nothing is selected) map to Unreachable.
func Distances(data *model.GraphData, selected []string) map[string]int {
	distances := make(map[string]int, len(data.Nodes))
	for _, n := range data.Nodes {
		distances[n.ID] = Unreachable
	}

	if len(selected) == 0 {
		return distances
	}

	adjacency := make(map[string][]string, len(data.Nodes))
	for _, e := range data.Edges {
		adjacency[e.Source] = append(adjacency[e.Source], e.Target)
		adjacency[e.Target] = append(adjacency[e.Target], e.Source)
	}

	// Multi-source BFS from the selected set
	var queue []string
	for _, id := range selected {
		if _, ok := distances[id]; !ok {
			continue
		}
		distances[id] = 0
		queue = append(queue, id)
	}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for _, neighbor := range adjacency[current] {
			if distances[neighbor] != Unreachable {
				continue
			}
			distances[neighbor] = distances[current] + 1
			queue = append(queue, neighbor)
		}
	}

	return distances
}
