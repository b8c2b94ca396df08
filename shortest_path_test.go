package wordgraph

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"
)

func TestShortestPath(t *testing.T) {
	t.Run("word not in graph", func(t *testing.T) {
		g := BuildGraph("hello world")
		p, err := ShortestPath(g, "hello", "universe")
		require.ErrorIs(t, err, ErrWordNotFound)
		require.Nil(t, p)

		_, err = ShortestPath(g, "universe", "hello")
		require.ErrorIs(t, err, ErrWordNotFound)
	})

	t.Run("path exists", func(t *testing.T) {
		g := BuildGraph("hello world this is a test")
		p, err := ShortestPath(g, "hello", "test")
		require.Nil(t, err)
		require.Equal(t, 5, p.Length)
		require.Equal(t, []string{"hello", "world", "this", "is", "a", "test"}, p.Words)
	})

	t.Run("no path", func(t *testing.T) {
		g := BuildGraph("hello world. test case.")
		p, err := ShortestPath(g, "case", "hello")
		require.ErrorIs(t, err, ErrNoPath)
		require.NotErrorIs(t, err, ErrWordNotFound)
		require.Nil(t, p)
	})

	t.Run("same word", func(t *testing.T) {
		g := BuildGraph("hello world")
		p, err := ShortestPath(g, "hello", "hello")
		require.Nil(t, err)
		require.Equal(t, 0, p.Length)
		require.Equal(t, []string{"hello"}, p.Words)
	})

	t.Run("frequent edges cost more", func(t *testing.T) {
		// a -> b has weight 3 while a -> c -> b costs 2
		g := BuildGraph("a b a b a b a c b")
		require.Equal(t, 3, g.Weight("a", "b"))
		p, err := ShortestPath(g, "a", "b")
		require.Nil(t, err)
		require.Equal(t, 2, p.Length)
		require.Equal(t, []string{"a", "c", "b"}, p.Words)
	})

	t.Run("isolated node", func(t *testing.T) {
		g := BuildGraph("hello")
		p, err := ShortestPath(g, "hello", "hello")
		require.Nil(t, err)
		require.Equal(t, []string{"hello"}, p.Words)
	})
}

func TestShortestPathMatchesGonum(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for round := 0; round < 50; round++ {
		tokens := make([]string, rng.Intn(40))
		for i := range tokens {
			tokens[i] = vocabulary[rng.Intn(len(vocabulary))]
		}
		g := NewGraph(tokens)

		// self loops never shorten a path with positive weights
		oracle := simple.NewWeightedDirectedGraph(0, math.Inf(1))
		ids := map[string]int64{}
		for i, node := range g.Nodes() {
			ids[node] = int64(i)
			oracle.AddNode(simple.Node(i))
		}
		for _, e := range g.Edges() {
			if e.From == e.To {
				continue
			}
			oracle.SetWeightedEdge(simple.WeightedEdge{F: simple.Node(ids[e.From]), T: simple.Node(ids[e.To]), W: float64(e.Weight)})
		}

		for _, from := range g.Nodes() {
			shortest := path.DijkstraFrom(simple.Node(ids[from]), oracle)
			for _, to := range g.Nodes() {
				_, weight := shortest.To(ids[to])
				p, err := ShortestPath(g, from, to)
				if math.IsInf(weight, 1) {
					require.ErrorIs(t, err, ErrNoPath, "%v -> %v", from, to)
					continue
				}
				require.Nil(t, err, "%v -> %v", from, to)
				require.Equal(t, int(weight), p.Length, "%v -> %v", from, to)
				require.Equal(t, from, p.Words[0])
				require.Equal(t, to, p.Words[len(p.Words)-1])

				// reported length is the sum of traversed weights
				sum := 0
				for i := 0; i+1 < len(p.Words); i++ {
					w := g.Weight(p.Words[i], p.Words[i+1])
					require.Positive(t, w)
					sum += w
				}
				require.Equal(t, p.Length, sum)
			}
		}
	}
}

func TestReachable(t *testing.T) {
	g := BuildGraph("a b c. d e. c a")
	// tokens: a b c d e c a
	require.Equal(t, []string{"b", "c", "d", "a", "e"}, Reachable(g, "a"))
	require.Empty(t, Reachable(BuildGraph("a b"), "b"))
	require.Nil(t, Reachable(g, "missing"))
}

func TestShortestPathToRandom(t *testing.T) {
	t.Run("random reachable target", func(t *testing.T) {
		g := BuildGraph("hello world this is a test")
		rng := newTestRand()
		seen := map[string]struct{}{}
		for i := 0; i < 100; i++ {
			target, p, err := ShortestPathToRandom(g, "world", rng)
			require.Nil(t, err)
			require.NotEqual(t, "world", target)
			require.Equal(t, "world", p.Words[0])
			require.Equal(t, target, p.Words[len(p.Words)-1])
			seen[target] = struct{}{}
		}
		// this, is, a, test
		require.Len(t, seen, 4)
	})

	t.Run("dead end terminates", func(t *testing.T) {
		g := BuildGraph("hello world")
		_, p, err := ShortestPathToRandom(g, "world", newTestRand())
		require.ErrorIs(t, err, ErrNoReachableTarget)
		require.Nil(t, p)
	})

	t.Run("only self loop", func(t *testing.T) {
		g := BuildGraph("echo echo")
		_, _, err := ShortestPathToRandom(g, "echo", newTestRand())
		require.ErrorIs(t, err, ErrNoReachableTarget)
	})

	t.Run("word not in graph", func(t *testing.T) {
		g := BuildGraph("hello world")
		_, _, err := ShortestPathToRandom(g, "universe", newTestRand())
		require.ErrorIs(t, err, ErrWordNotFound)
	})
}
