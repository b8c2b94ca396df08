package wordgraph

import (
	"math/rand"
	"strings"
	"time"

	"github.com/projectdiscovery/gologger"
	errorutil "github.com/projectdiscovery/utils/errors"
)

// DefaultSuggestions is the number of suggestions returned by Analyzer.Suggest
var DefaultSuggestions = 3

// Analyzer Options
type Options struct {
	// Text is the source text used to build the graph
	Text string
	// Seed of random source used by augmentation, random target
	// selection and random walks (0 = seeded from current time)
	Seed int64
	// Rand when set is used as is and Seed is ignored
	Rand *rand.Rand
}

// Analyzer owns a word graph built from a single text and answers
// queries over it. It is not safe for concurrent use.
type Analyzer struct {
	Options *Options
	graph   *Graph
	rng     *rand.Rand
}

// New builds the word graph of opts.Text and returns new analyzer instance
func New(opts *Options) (*Analyzer, error) {
	if opts == nil {
		return nil, errorutil.NewWithTag("wordgraph", "analyzer options cannot be nil")
	}
	rng := opts.Rand
	if rng == nil {
		seed := opts.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		rng = rand.New(rand.NewSource(seed))
	}
	a := &Analyzer{
		Options: opts,
		graph:   BuildGraph(opts.Text),
		rng:     rng,
	}
	gologger.Verbose().Msgf("Built graph with %d words and %d edges", a.graph.NodeCount(), a.graph.EdgeCount())
	return a, nil
}

// Graph returns the analyzed graph
func (a *Analyzer) Graph() *Graph {
	return a.graph
}

// BridgeWords finds bridge words from word1 to word2
func (a *Analyzer) BridgeWords(word1, word2 string) *BridgeResult {
	return FindBridgeWords(a.graph, normalize(word1), normalize(word2))
}

// Augment inserts random bridge words into text
func (a *Analyzer) Augment(text string) (string, error) {
	return AugmentText(a.graph, text, a.rng)
}

// ShortestPath returns shortest path from word1 to word2 along with the
// target word. If word2 is empty a random reachable target is chosen.
func (a *Analyzer) ShortestPath(word1, word2 string) (string, *Path, error) {
	word1, word2 = normalize(word1), normalize(word2)
	if word2 == "" {
		return ShortestPathToRandom(a.graph, word1, a.rng)
	}
	path, err := ShortestPath(a.graph, word1, word2)
	if err != nil {
		return word2, nil, err
	}
	return word2, path, nil
}

// RandomWalk performs a random walk over graph
func (a *Analyzer) RandomWalk() ([]string, error) {
	return RandomWalk(a.graph, a.rng)
}

// Suggest returns graph words similar to word
func (a *Analyzer) Suggest(word string) []string {
	return Suggest(a.graph, normalize(word), DefaultSuggestions)
}

// normalize lowercases a query word and strips surrounding whitespace
func normalize(word string) string {
	return strings.ToLower(strings.TrimSpace(word))
}
