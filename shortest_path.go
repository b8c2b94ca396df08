package wordgraph

import (
	"container/heap"
	"fmt"
	"math/rand"

	"github.com/projectdiscovery/gologger"
)

// Path is a walk between two words along existing edges
type Path struct {
	// Length is the sum of weights of all traversed edges
	Length int
	// Words is the node sequence from source to target (inclusive)
	Words []string
}

// pqItem is an entry of the dijkstra frontier
type pqItem struct {
	word     string
	distance int
}

// priorityQueue is a min-heap of frontier entries ordered by distance
type priorityQueue []pqItem

func (pq priorityQueue) Len() int            { return len(pq) }
func (pq priorityQueue) Less(i, j int) bool  { return pq[i].distance < pq[j].distance }
func (pq priorityQueue) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *priorityQueue) Push(x interface{}) { *pq = append(*pq, x.(pqItem)) }
func (pq *priorityQueue) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}

// ShortestPath returns the minimum total weight path from word1 to word2
// using Dijkstra's algorithm with edge weight as traversal cost.
// Note: frequently adjacent words are therefore costlier to traverse.
//
// ErrWordNotFound is returned if either word is missing from graph and
// ErrNoPath if word2 cannot be reached from word1.
func ShortestPath(g *Graph, word1, word2 string) (*Path, error) {
	for _, w := range []string{word1, word2} {
		if !g.HasNode(w) {
			return nil, fmt.Errorf("%w: %v", ErrWordNotFound, w)
		}
	}

	distances := map[string]int{word1: 0}
	parent := map[string]string{word1: word1}
	done := map[string]struct{}{}

	pq := &priorityQueue{{word: word1, distance: 0}}
	for pq.Len() > 0 {
		current := heap.Pop(pq).(pqItem)
		if _, ok := done[current.word]; ok {
			// stale entry left behind by lazy decrease-key
			continue
		}
		done[current.word] = struct{}{}

		if current.word == word2 {
			return &Path{Length: current.distance, Words: buildPath(parent, word1, word2)}, nil
		}

		a := g.adj[current.word]
		for _, neighbor := range a.order {
			newDist := current.distance + a.weights[neighbor]
			if oldDist, seen := distances[neighbor]; !seen || newDist < oldDist {
				distances[neighbor] = newDist
				parent[neighbor] = current.word
				heap.Push(pq, pqItem{word: neighbor, distance: newDist})
			}
		}
	}
	return nil, fmt.Errorf("%w: %v -> %v", ErrNoPath, word1, word2)
}

// buildPath walks parent links back from target and reverses them
func buildPath(parent map[string]string, source, target string) []string {
	path := []string{target}
	for node := target; node != source; {
		node = parent[node]
		path = append(path, node)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// Reachable returns all nodes reachable from word (excluding word itself
// unless it lies on a cycle) in breadth-first order
func Reachable(g *Graph, word string) []string {
	if !g.HasNode(word) {
		return nil
	}
	visited := map[string]struct{}{}
	reachable := []string{}
	queue := []string{word}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		for _, neighbor := range g.adj[current].order {
			if _, ok := visited[neighbor]; ok {
				continue
			}
			visited[neighbor] = struct{}{}
			reachable = append(reachable, neighbor)
			queue = append(queue, neighbor)
		}
	}
	return reachable
}

// ShortestPathToRandom picks a random target reachable from word1 and
// returns it together with the shortest path to it.
//
// Targets are sampled only among nodes reachable from word1 (other than
// word1 itself) so the call always terminates: ErrNoReachableTarget is
// returned when word1 cannot reach any other node. A nil rng uses a time
// seeded source.
func ShortestPathToRandom(g *Graph, word1 string, rng *rand.Rand) (string, *Path, error) {
	if !g.HasNode(word1) {
		return "", nil, fmt.Errorf("%w: %v", ErrWordNotFound, word1)
	}
	candidates := make([]string, 0)
	for _, w := range Reachable(g, word1) {
		if w != word1 {
			candidates = append(candidates, w)
		}
	}
	gologger.Debug().Msgf("%d nodes reachable from %v", len(candidates), word1)
	if len(candidates) == 0 {
		return "", nil, fmt.Errorf("%w: %v", ErrNoReachableTarget, word1)
	}
	target := candidates[orDefaultRand(rng).Intn(len(candidates))]
	path, err := ShortestPath(g, word1, target)
	if err != nil {
		return "", nil, err
	}
	return target, path, nil
}
