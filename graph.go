package wordgraph

import (
	"github.com/armon/go-radix"
)

// Edge is a directed word adjacency with its occurrence count
type Edge struct {
	From   string
	To     string
	Weight int
}

// adjacency holds outgoing edges of a single node.
// order keeps neighbours in the order their edge was first seen.
type adjacency struct {
	order   []string
	weights map[string]int
}

// Graph is a directed weighted word-adjacency graph.
// A Graph is built once from a token stream and never mutated afterwards.
type Graph struct {
	order []string              // nodes in order of first appearance
	adj   map[string]*adjacency // node -> outgoing edges
	edges int
	trie  *radix.Tree // node index used for prefix lookups
}

// BuildGraph tokenizes text and builds its word-adjacency graph
func BuildGraph(text string) *Graph {
	return NewGraph(Tokenize(text))
}

// NewGraph builds a graph from a token sequence.
//
// ALGORITHM:
//  1. Every token becomes a node (a lone token is an isolated node)
//  2. For every consecutive pair (t[i], t[i+1]) the weight of edge
//     t[i] -> t[i+1] is incremented, creating it with weight 1 if absent
func NewGraph(tokens []string) *Graph {
	g := &Graph{
		order: make([]string, 0),
		adj:   make(map[string]*adjacency),
		trie:  radix.New(),
	}
	for i, token := range tokens {
		g.addNode(token)
		if i > 0 {
			g.addEdge(tokens[i-1], token)
		}
	}
	return g
}

func (g *Graph) addNode(word string) {
	if _, ok := g.adj[word]; ok {
		return
	}
	g.adj[word] = &adjacency{weights: make(map[string]int)}
	g.order = append(g.order, word)
	g.trie.Insert(word, nil)
}

func (g *Graph) addEdge(from, to string) {
	a := g.adj[from]
	if _, ok := a.weights[to]; !ok {
		a.order = append(a.order, to)
		g.edges++
	}
	a.weights[to]++
}

// HasNode returns true if word is a node of the graph
func (g *Graph) HasNode(word string) bool {
	_, ok := g.adj[word]
	return ok
}

// HasEdge returns true if the directed edge from -> to exists
func (g *Graph) HasEdge(from, to string) bool {
	return g.Weight(from, to) > 0
}

// Weight returns weight of edge from -> to or 0 if it does not exist
func (g *Graph) Weight(from, to string) int {
	a, ok := g.adj[from]
	if !ok {
		return 0
	}
	return a.weights[to]
}

// Neighbors returns outgoing neighbours of word in enumeration order.
// The returned slice is a copy and can be modified by the caller.
func (g *Graph) Neighbors(word string) []string {
	a, ok := g.adj[word]
	if !ok || len(a.order) == 0 {
		return nil
	}
	return append([]string(nil), a.order...)
}

// Nodes returns all nodes in order of first appearance
func (g *Graph) Nodes() []string {
	return append([]string(nil), g.order...)
}

// Edges returns all edges grouped by source node in enumeration order
func (g *Graph) Edges() []Edge {
	edges := make([]Edge, 0, g.edges)
	for _, from := range g.order {
		a := g.adj[from]
		for _, to := range a.order {
			edges = append(edges, Edge{From: from, To: to, Weight: a.weights[to]})
		}
	}
	return edges
}

// NodeCount returns number of distinct words in the graph
func (g *Graph) NodeCount() int {
	return len(g.order)
}

// EdgeCount returns number of distinct directed edges in the graph
func (g *Graph) EdgeCount() int {
	return g.edges
}

// IsEmpty returns true if graph has no nodes
func (g *Graph) IsEmpty() bool {
	return len(g.order) == 0
}

// outDegree returns number of outgoing neighbours without copying them
func (g *Graph) outDegree(word string) int {
	a, ok := g.adj[word]
	if !ok {
		return 0
	}
	return len(a.order)
}

// neighborAt returns the nth outgoing neighbour of word
func (g *Graph) neighborAt(word string, n int) string {
	return g.adj[word].order[n]
}
