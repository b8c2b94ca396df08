package wordgraph

import (
	"sort"

	"github.com/agnivade/levenshtein"
	mapsutil "github.com/projectdiscovery/utils/maps"
)

// MaxSuggestDistance is the maximum edit distance of a suggested word
var MaxSuggestDistance = 2

// Suggest returns up to limit graph words that look like word.
// It is meant for words that are not in graph, ex: "quik" -> "quick".
//
// ALGORITHM:
//  1. Words extending word as a prefix are collected from the radix index
//  2. Words within MaxSuggestDistance edits are collected
//  3. Candidates are ranked by edit distance, then by graph order
func Suggest(g *Graph, word string, limit int) []string {
	if word == "" || limit <= 0 || g.IsEmpty() {
		return nil
	}
	candidates := map[string]int{}
	g.trie.WalkPrefix(word, func(s string, _ interface{}) bool {
		if s != word {
			candidates[s] = levenshtein.ComputeDistance(word, s)
		}
		return false
	})
	for _, node := range g.order {
		if node == word {
			continue
		}
		if _, ok := candidates[node]; ok {
			continue
		}
		if d := levenshtein.ComputeDistance(word, node); d <= MaxSuggestDistance {
			candidates[node] = d
		}
	}
	if len(candidates) == 0 {
		return nil
	}

	position := make(map[string]int, len(g.order))
	for i, node := range g.order {
		position[node] = i
	}
	suggestions := mapsutil.GetKeys(candidates)
	sort.Slice(suggestions, func(i, j int) bool {
		di, dj := candidates[suggestions[i]], candidates[suggestions[j]]
		if di != dj {
			return di < dj
		}
		return position[suggestions[i]] < position[suggestions[j]]
	})
	if len(suggestions) > limit {
		suggestions = suggestions[:limit]
	}
	return suggestions
}
