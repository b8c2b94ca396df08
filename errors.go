package wordgraph

import "github.com/projectdiscovery/utils/errkit"

var (
	// ErrWordNotFound is returned when a query word is not a node of the graph
	ErrWordNotFound = errkit.New("word not found in graph")
	// ErrNoPath is returned when both words exist but target is unreachable
	ErrNoPath = errkit.New("no path between words")
	// ErrNoReachableTarget is returned when no other node is reachable from source
	ErrNoReachableTarget = errkit.New("no reachable target from word")
	// ErrEmptyGraph is returned by queries that need at least one node
	ErrEmptyGraph = errkit.New("graph is empty")
	// ErrEmptyText is returned when text to augment contains no words
	ErrEmptyText = errkit.New("text contains no words")
)
