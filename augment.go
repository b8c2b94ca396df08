package wordgraph

import (
	"math/rand"
	"strings"
)

// AugmentText expands text by inserting one bridge word between every
// adjacent pair of words that has at least one bridge in graph.
// Bridge is picked uniformly at random using rng (time seeded if nil).
// Original words are always preserved in order, words are only ever inserted.
//
// EXAMPLE (graph built from "the quick fox the lazy fox"):
//
//	Input:  "the fox"
//	Output: "the quick fox" or "the lazy fox"
func AugmentText(g *Graph, text string, rng *rand.Rand) (string, error) {
	words := Tokenize(text)
	if len(words) == 0 {
		return "", ErrEmptyText
	}
	rng = orDefaultRand(rng)
	result := make([]string, 0, 2*len(words)-1)
	for i := 0; i < len(words)-1; i++ {
		word1, word2 := words[i], words[i+1]
		result = append(result, word1)
		bridge := FindBridgeWords(g, word1, word2)
		if bridge.Status == Bridges {
			result = append(result, bridge.Words[rng.Intn(len(bridge.Words))])
		}
	}
	result = append(result, words[len(words)-1])
	return strings.Join(result, " "), nil
}
