package wordgraph

import sliceutil "github.com/projectdiscovery/utils/slice"

// BridgeStatus describes outcome of a bridge word query
type BridgeStatus int

const (
	// OperandMissing means word1 or word2 is not present in graph
	OperandMissing BridgeStatus = iota
	// NoBridge means both words exist but nothing connects them
	NoBridge
	// Bridges means at least one bridge word was found
	Bridges
)

// String returns a readable name of the status
func (s BridgeStatus) String() string {
	switch s {
	case OperandMissing:
		return "operand-missing"
	case NoBridge:
		return "no-bridge"
	case Bridges:
		return "bridges"
	}
	return "unknown"
}

// BridgeResult is the result of a bridge word query
type BridgeResult struct {
	Word1  string
	Word2  string
	Status BridgeStatus
	// Words contains bridge words in word1's neighbour order.
	// It is nil unless Status is Bridges.
	Words []string
	// Missing lists operands absent from graph when Status is OperandMissing
	Missing []string
}

// FindBridgeWords returns all words w3 such that edges word1 -> w3 and
// w3 -> word2 both exist. Edge weights do not matter, only existence.
// Both words are expected to be lowercase already.
func FindBridgeWords(g *Graph, word1, word2 string) *BridgeResult {
	res := &BridgeResult{Word1: word1, Word2: word2}
	for _, w := range []string{word1, word2} {
		if !g.HasNode(w) {
			res.Missing = append(res.Missing, w)
		}
	}
	if len(res.Missing) > 0 {
		// word1 == word2 would otherwise be reported twice
		res.Missing = sliceutil.Dedupe(res.Missing)
		res.Status = OperandMissing
		return res
	}
	for _, w3 := range g.Neighbors(word1) {
		if g.HasEdge(w3, word2) {
			res.Words = append(res.Words, w3)
		}
	}
	if len(res.Words) == 0 {
		res.Status = NoBridge
		return res
	}
	res.Status = Bridges
	return res
}
