package runner

import (
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/projectdiscovery/goflags"
	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/gologger/levels"
	errorutil "github.com/projectdiscovery/utils/errors"
	fileutil "github.com/projectdiscovery/utils/file"
	updateutils "github.com/projectdiscovery/utils/update"
)

// DefaultWalkOutput is the file random walks are saved to
const DefaultWalkOutput = "random_walk.txt"

type Options struct {
	Input              string              // Input text file
	Text               string              // Inline input text
	Bridge             goflags.StringSlice // word1,word2 to find bridge words for
	Generate           string              // Text to augment with bridge words
	ShortestPath       goflags.StringSlice // word1[,word2] to find shortest path for
	RandomWalk         bool
	ShowGraph          bool
	WalkOutput         string
	Config             string
	MessagesConfig     string
	GenerateConfig     string // file to write default messages config to
	Seed               int
	DisableUpdateCheck bool
	Verbose            bool
	Silent             bool
	MaxSize            int
	// internal/unexported fields
	source string // text the graph is built from
}

func ParseFlags() *Options {
	var maxFileSize string
	opts := &Options{}
	flagSet := goflags.NewFlagSet()
	flagSet.SetDescription(`Word adjacency graph builder and explorer for free-form text.`)

	flagSet.CreateGroup("input", "Input",
		flagSet.StringVarP(&opts.Input, "input", "i", "", "text file to build the word graph from (file, stdin)"),
		flagSet.StringVarP(&opts.Text, "text", "t", "", "inline text to build the word graph from"),
		flagSet.StringVarP(&maxFileSize, "max-size", "ms", "", "max input text size (kb, mb, gb, tb) (default mb)"),
	)

	flagSet.CreateGroup("query", "Query",
		flagSet.StringSliceVarP(&opts.Bridge, "bridge", "b", nil, "find bridge words between two words (comma-separated, ex: -b 'the,fox')", goflags.CommaSeparatedStringSliceOptions),
		flagSet.StringVarP(&opts.Generate, "generate", "g", "", "generate new text by inserting bridge words into given text"),
		flagSet.StringSliceVarP(&opts.ShortestPath, "shortest-path", "sp", nil, "find shortest path between two words, random target if only one word is given (comma-separated)", goflags.CommaSeparatedStringSliceOptions),
		flagSet.BoolVarP(&opts.RandomWalk, "random-walk", "rw", false, "perform a random walk over the graph"),
		flagSet.BoolVar(&opts.ShowGraph, "graph", false, "list all edges of the graph"),
	)

	flagSet.CreateGroup("output", "Output",
		flagSet.StringVarP(&opts.WalkOutput, "walk-output", "o", DefaultWalkOutput, "file to save random walk to"),
		flagSet.BoolVarP(&opts.Verbose, "verbose", "v", false, "display verbose output"),
		flagSet.BoolVar(&opts.Silent, "silent", false, "display results only"),
		flagSet.CallbackVar(printVersion, "version", "display wordgraph version"),
	)

	flagSet.CreateGroup("config", "Config",
		flagSet.StringVar(&opts.Config, "config", "", `wordgraph cli config file (default '$HOME/.config/wordgraph/config.yaml')`),
		flagSet.StringVarP(&opts.MessagesConfig, "messages", "mc", "", `wordgraph messages config file (default '$HOME/.config/wordgraph/messages_`+version+`.yaml')`),
		flagSet.IntVar(&opts.Seed, "seed", 0, "seed for random choices (default 0 = random)"),
		flagSet.StringVarP(&opts.GenerateConfig, "generate-config", "gc", "", "write default messages config to given file and exit"),
	)

	flagSet.CreateGroup("update", "Update",
		flagSet.CallbackVarP(GetUpdateCallback(), "update", "up", "update wordgraph to latest version"),
		flagSet.BoolVarP(&opts.DisableUpdateCheck, "disable-update-check", "duc", false, "disable automatic wordgraph update check"),
	)

	if err := flagSet.Parse(); err != nil {
		gologger.Fatal().Msgf("Could not read flags: %s\n", err)
	}

	if opts.Config != "" {
		if err := flagSet.MergeConfigFile(opts.Config); err != nil {
			gologger.Error().Msgf("failed to read config file got %v", err)
		}
	}

	if opts.Silent {
		gologger.DefaultLogger.SetMaxLevel(levels.LevelSilent)
	} else if opts.Verbose {
		gologger.DefaultLogger.SetMaxLevel(levels.LevelVerbose)
	}
	showBanner()

	if !opts.DisableUpdateCheck {
		latestVersion, err := updateutils.GetVersionCheckCallback("wordgraph")()
		if err != nil {
			if opts.Verbose {
				gologger.Error().Msgf("wordgraph version check failed: %v", err.Error())
			}
		} else {
			gologger.Info().Msgf("Current wordgraph version %v %v", version, updateutils.GetVersionDescription(version, latestVersion))
		}
	}

	if opts.GenerateConfig != "" {
		if err := generateConfig(opts.GenerateConfig); err != nil {
			gologger.Fatal().Msgf("failed to generate messages config got %v", err)
		}
		gologger.Info().Msgf("Messages config written to %v", opts.GenerateConfig)
		os.Exit(0)
	}

	opts.MaxSize = math.MaxInt
	if len(maxFileSize) > 0 {
		maxSize, err := convertFileSizeToBytes(maxFileSize)
		if err != nil {
			gologger.Fatal().Msgf("Could not parse max-size: %s\n", err)
		}
		opts.MaxSize = maxSize
	}

	if err := opts.loadSource(); err != nil {
		gologger.Fatal().Msgf("wordgraph: %v", err)
	}
	if err := opts.validate(); err != nil {
		gologger.Fatal().Msgf("wordgraph: %v", err)
	}
	return opts
}

// loadSource reads text the graph is built from.
// Inline text takes precedence over input file which takes precedence over stdin.
func (o *Options) loadSource() error {
	switch {
	case o.Text != "":
		o.source = o.Text
	case o.Input != "":
		if !fileutil.FileExists(o.Input) {
			return errorutil.New("input file %v does not exist", o.Input)
		}
		info, err := os.Stat(o.Input)
		if err != nil {
			return err
		}
		if info.Size() > int64(o.MaxSize) {
			return errorutil.New("input file %v exceeds max-size (%v > %v bytes)", o.Input, info.Size(), o.MaxSize)
		}
		bin, err := os.ReadFile(o.Input)
		if err != nil {
			return err
		}
		o.source = string(bin)
	case fileutil.HasStdin():
		// read one byte past the limit so oversized input is detected below
		limit := int64(o.MaxSize)
		if limit < math.MaxInt64 {
			limit++
		}
		bin, err := io.ReadAll(io.LimitReader(os.Stdin, limit))
		if err != nil {
			return errorutil.New("failed to read input from stdin got %v", err)
		}
		o.source = string(bin)
	default:
		return errorutil.New("no input found")
	}
	if len(o.source) > o.MaxSize {
		return errorutil.New("input text exceeds max-size (%v > %v bytes)", len(o.source), o.MaxSize)
	}
	return nil
}

// validate checks query flags
func (o *Options) validate() error {
	if len(o.Bridge) > 0 && len(o.Bridge) != 2 {
		return errorutil.New("bridge requires exactly two words got %v", len(o.Bridge))
	}
	if len(o.ShortestPath) > 2 {
		return errorutil.New("shortest-path accepts at most two words got %v", len(o.ShortestPath))
	}
	if len(o.ShortestPath) > 0 && strings.TrimSpace(o.ShortestPath[0]) == "" {
		return errorutil.New("shortest-path requires a source word")
	}
	if o.RandomWalk && o.WalkOutput == "" {
		return errorutil.New("walk-output cannot be empty")
	}
	return nil
}

// hasQuery returns true if any query was requested
func (o *Options) hasQuery() bool {
	return len(o.Bridge) > 0 || o.Generate != "" || len(o.ShortestPath) > 0 || o.RandomWalk || o.ShowGraph
}

func printVersion() {
	gologger.Info().Msgf("Current version: %s", version)
	os.Exit(0)
}

func convertFileSizeToBytes(maxFileSize string) (int, error) {
	maxFileSize = strings.ToLower(maxFileSize)
	// default to mb
	if size, err := strconv.Atoi(maxFileSize); err == nil {
		if size < 0 {
			return 0, errorutil.New("max-size cannot be negative")
		}
		return size * 1024 * 1024, nil
	}
	if len(maxFileSize) < 3 {
		return 0, errorutil.New("invalid max-size value")
	}
	sizeUnit := maxFileSize[len(maxFileSize)-2:]
	size, err := strconv.Atoi(maxFileSize[:len(maxFileSize)-2])
	if err != nil {
		return 0, err
	}
	if size < 0 {
		return 0, errorutil.New("max-size cannot be negative")
	}
	switch sizeUnit {
	case "kb":
		return size * 1024, nil
	case "mb":
		return size * 1024 * 1024, nil
	case "gb":
		return size * 1024 * 1024 * 1024, nil
	case "tb":
		return size * 1024 * 1024 * 1024 * 1024, nil
	}
	return 0, errorutil.New("Unsupported max-size unit")
}
