package runner

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/projectdiscovery/gologger"
	errorutil "github.com/projectdiscovery/utils/errors"
	"github.com/projectdiscovery/wordgraph"
)

// Runner executes queries requested on the command line against
// the graph built from input text
type Runner struct {
	options  *Options
	analyzer *wordgraph.Analyzer
	messages wordgraph.Messages
	output   io.Writer
}

// New creates a runner writing results to output
func New(options *Options, output io.Writer) (*Runner, error) {
	if options == nil {
		return nil, errorutil.NewWithTag("wordgraph", "runner options cannot be nil")
	}
	if output == nil {
		return nil, errorutil.NewWithTag("wordgraph", "output destination cannot be nil")
	}
	cfg := wordgraph.DefaultConfig
	if options.MessagesConfig != "" {
		custom, err := wordgraph.NewConfig(options.MessagesConfig)
		if err != nil {
			return nil, errorutil.NewWithTag("wordgraph", "failed to read %v file got: %v", options.MessagesConfig, err)
		}
		cfg = *custom
	}
	analyzer, err := wordgraph.New(&wordgraph.Options{
		Text: options.source,
		Seed: int64(options.Seed),
	})
	if err != nil {
		return nil, err
	}
	return &Runner{
		options:  options,
		analyzer: analyzer,
		messages: cfg.Messages,
		output:   output,
	}, nil
}

// Run executes all requested queries in a fixed order.
// Query failures are reported as results and do not stop other queries.
func (r *Runner) Run() error {
	g := r.analyzer.Graph()
	gologger.Info().Msgf("Loaded graph with %d words and %d edges", g.NodeCount(), g.EdgeCount())

	if r.options.ShowGraph || !r.options.hasQuery() {
		r.showGraph()
	}
	if len(r.options.Bridge) == 2 {
		r.bridgeWords(r.options.Bridge[0], r.options.Bridge[1])
	}
	if r.options.Generate != "" {
		r.generate(r.options.Generate)
	}
	if len(r.options.ShortestPath) > 0 {
		word2 := ""
		if len(r.options.ShortestPath) == 2 {
			word2 = r.options.ShortestPath[1]
		}
		r.shortestPath(r.options.ShortestPath[0], word2)
	}
	if r.options.RandomWalk {
		return r.randomWalk()
	}
	return nil
}

func (r *Runner) showGraph() {
	for _, edge := range r.analyzer.Graph().Edges() {
		r.result(fmt.Sprintf("%v -> %v (%d)", edge.From, edge.To, edge.Weight))
	}
}

func (r *Runner) bridgeWords(word1, word2 string) {
	res := r.analyzer.BridgeWords(word1, word2)
	r.result(r.messages.Bridge(res))
	for _, missing := range res.Missing {
		r.suggest(missing)
	}
}

func (r *Runner) generate(text string) {
	generated, err := r.analyzer.Augment(text)
	if err != nil {
		gologger.Warning().Msgf("could not generate new text from %q: %v", text, err)
		return
	}
	r.result(r.messages.Render(r.messages.NewText, "text", generated))
}

func (r *Runner) shortestPath(word1, word2 string) {
	word1 = strings.ToLower(strings.TrimSpace(word1))
	target, path, err := r.analyzer.ShortestPath(word1, word2)
	switch {
	case err == nil:
		r.result(r.messages.ShortestPath(word1, target, path))
	case target == "" && errors.Is(err, wordgraph.ErrWordNotFound):
		r.result(r.messages.Render(r.messages.MissingWord, "word", word1))
		r.suggest(word1)
	case errors.Is(err, wordgraph.ErrNoReachableTarget):
		r.result(r.messages.Render(r.messages.NoTarget, "word1", word1))
	default:
		// missing words and unreachable targets are reported alike
		r.result(r.messages.Render(r.messages.NoPath, "word1", word1, "word2", target))
		if errors.Is(err, wordgraph.ErrWordNotFound) {
			for _, w := range []string{word1, target} {
				if !r.analyzer.Graph().HasNode(w) {
					r.suggest(w)
				}
			}
		}
	}
}

func (r *Runner) randomWalk() error {
	walk, err := r.analyzer.RandomWalk()
	if err != nil {
		gologger.Warning().Msgf("could not perform random walk: %v", err)
		return nil
	}
	r.result(r.messages.Render(r.messages.Walk, "walk", strings.Join(walk, " ")))

	file, err := os.Create(r.options.WalkOutput)
	if err != nil {
		return errorutil.NewWithTag("wordgraph", "failed to create %v got: %v", r.options.WalkOutput, err)
	}
	defer file.Close()
	if err := wordgraph.WriteWalk(file, walk); err != nil {
		return errorutil.NewWithTag("wordgraph", "failed to write random walk to %v got: %v", r.options.WalkOutput, err)
	}
	gologger.Info().Msg(r.messages.Render(r.messages.WalkSaved, "file", r.options.WalkOutput))
	return nil
}

// suggest writes words similar to a missing query word if there are any
func (r *Runner) suggest(word string) {
	if suggestions := r.analyzer.Suggest(word); len(suggestions) > 0 {
		r.result(r.messages.Render(r.messages.Suggestion, "words", strings.Join(suggestions, ", ")))
	}
}

// result writes a single result line to output
func (r *Runner) result(line string) {
	if _, err := fmt.Fprintln(r.output, line); err != nil {
		gologger.Error().Msgf("failed to write result got %v", err)
	}
}
