package wordgraph

import (
	"io"
	"math/rand"
	"strings"
	"time"
)

// orDefaultRand returns rng or a new time seeded source if rng is nil
func orDefaultRand(rng *rand.Rand) *rand.Rand {
	if rng != nil {
		return rng
	}
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

// walkEdge identifies a traversed directed edge
type walkEdge struct {
	from string
	to   string
}

// RandomWalk walks the graph from a uniformly chosen start node.
// At every step a uniformly chosen outgoing neighbour is visited; the walk
// stops at a node without outgoing edges or right before an edge would be
// traversed a second time. Every directed edge is traversed at most once,
// so the walk always terminates. A nil rng uses a time seeded source.
func RandomWalk(g *Graph, rng *rand.Rand) ([]string, error) {
	if g.IsEmpty() {
		return nil, ErrEmptyGraph
	}
	rng = orDefaultRand(rng)
	current := g.order[rng.Intn(len(g.order))]
	walk := []string{current}
	visited := map[walkEdge]struct{}{}
	for {
		degree := g.outDegree(current)
		if degree == 0 {
			break
		}
		next := g.neighborAt(current, rng.Intn(degree))
		edge := walkEdge{from: current, to: next}
		if _, ok := visited[edge]; ok {
			break
		}
		visited[edge] = struct{}{}
		walk = append(walk, next)
		current = next
	}
	return walk, nil
}

// WriteWalk writes walk as space separated words without a trailing newline
func WriteWalk(w io.Writer, walk []string) error {
	_, err := io.WriteString(w, strings.Join(walk, " "))
	return err
}
