package wordgraph

import (
	"bytes"
	"errors"
	"math/rand"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"
)

func TestRandomWalk(t *testing.T) {
	t.Run("empty graph", func(t *testing.T) {
		walk, err := RandomWalk(BuildGraph(""), newTestRand())
		require.ErrorIs(t, err, ErrEmptyGraph)
		require.Nil(t, walk)
	})

	t.Run("isolated node", func(t *testing.T) {
		walk, err := RandomWalk(BuildGraph("hello"), newTestRand())
		require.Nil(t, err)
		require.Equal(t, []string{"hello"}, walk)
	})

	t.Run("single edge", func(t *testing.T) {
		g := BuildGraph("hello world")
		rng := newTestRand()
		for i := 0; i < 20; i++ {
			walk, err := RandomWalk(g, rng)
			require.Nil(t, err)
			require.Contains(t, [][]string{{"hello", "world"}, {"world"}}, walk)
		}
	})

	t.Run("self loop is traversed once", func(t *testing.T) {
		walk, err := RandomWalk(BuildGraph("a a a"), newTestRand())
		require.Nil(t, err)
		require.Equal(t, []string{"a", "a"}, walk)
	})

	t.Run("cycle stops before repeating edge", func(t *testing.T) {
		g := BuildGraph("a b c a")
		rng := newTestRand()
		for i := 0; i < 20; i++ {
			walk, err := RandomWalk(g, rng)
			require.Nil(t, err)
			require.Len(t, walk, 4)
			require.Equal(t, walk[0], walk[3])
		}
	})

	t.Run("same seed same walk", func(t *testing.T) {
		g := BuildGraph("to explore strange new worlds to seek out new life and new civilizations")
		first, err := RandomWalk(g, rand.New(rand.NewSource(99)))
		require.Nil(t, err)
		second, err := RandomWalk(g, rand.New(rand.NewSource(99)))
		require.Nil(t, err)
		require.Equal(t, first, second)
	})
}

func TestRandomWalkInvariants(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("walk follows edges and never repeats one", prop.ForAll(
		func(indexes []int, seed int64) bool {
			g := NewGraph(wordsOf(indexes))
			walk, err := RandomWalk(g, rand.New(rand.NewSource(seed)))
			if g.IsEmpty() {
				return errors.Is(err, ErrEmptyGraph)
			}
			if err != nil || len(walk) == 0 || len(walk) > g.EdgeCount()+1 {
				return false
			}
			traversed := map[Edge]struct{}{}
			for i := 0; i+1 < len(walk); i++ {
				edge := Edge{From: walk[i], To: walk[i+1]}
				if !g.HasEdge(edge.From, edge.To) {
					return false
				}
				if _, ok := traversed[edge]; ok {
					return false
				}
				traversed[edge] = struct{}{}
			}
			// walk ends at a dead end or next to an already traversed edge
			last := walk[len(walk)-1]
			neighbors := g.Neighbors(last)
			if len(neighbors) == 0 {
				return true
			}
			for _, n := range neighbors {
				if _, ok := traversed[Edge{From: last, To: n}]; ok {
					return true
				}
			}
			return false
		},
		gen.SliceOf(gen.IntRange(0, len(vocabulary)-1)),
		gen.Int64(),
	))

	properties.TestingRun(t)
}

func TestWriteWalk(t *testing.T) {
	var buff bytes.Buffer
	require.Nil(t, WriteWalk(&buff, []string{"to", "explore", "strange"}))
	require.Equal(t, "to explore strange", buff.String())

	buff.Reset()
	require.Nil(t, WriteWalk(&buff, []string{"hello"}))
	require.Equal(t, "hello", buff.String())
}

func TestRandomSourceNil(t *testing.T) {
	g := BuildGraph("the quick fox the lazy fox")

	walk, err := RandomWalk(g, nil)
	require.Nil(t, err)
	require.NotEmpty(t, walk)

	generated, err := AugmentText(g, "the fox", nil)
	require.Nil(t, err)
	require.Contains(t, []string{"the quick fox", "the lazy fox"}, generated)

	target, path, err := ShortestPathToRandom(g, "quick", nil)
	require.Nil(t, err)
	require.Equal(t, target, path.Words[len(path.Words)-1])
}
