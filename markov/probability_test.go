package markov_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/markovwalk/markov"
)

func TestSelectionProbabilities_FanOut(t *testing.T) {
	l, ok := buildFanOut().Link(2)
	require.True(t, ok)

	// [5,10,15], W=30: t∈[0,10)→5, t∈[10,15)→10, t∈[15,30)→15.
	assert.InDeltaSlice(t, []float64{10.0 / 30, 5.0 / 30, 15.0 / 30}, l.SelectionProbabilities(), 1e-12)
}

func TestSelectionProbabilities_EqualWeights(t *testing.T) {
	g := markov.NewGraph[string]()
	g.NewEdge("s").Towards(1, "a").Towards(1, "b")

	l, _ := g.Link("s")
	// W=2: t=0 falls back to "a", t=1 is claimed by the last weight-1 choice "b".
	assert.InDeltaSlice(t, []float64{0.5, 0.5}, l.SelectionProbabilities(), 1e-12)
}

func TestSelectionProbabilities_Degenerate(t *testing.T) {
	g := markov.NewGraph[string]()
	g.Connect("empty")
	g.NewEdge("zero").Towards(0, "a")
	g.NewEdge("neg").Towards(-2, "a").Towards(1, "b")

	for _, s := range []string{"empty", "zero", "neg"} {
		l, _ := g.Link(s)
		assert.Nil(t, l.SelectionProbabilities(), s)
	}
}

// TestSelectionProbabilities_MatchesChoose enumerates every threshold through
// Choose and compares the empirical split with the closed form.
func TestSelectionProbabilities_MatchesChoose(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	for round := 0; round < 30; round++ {
		g := markov.NewGraph[int]()
		e := g.NewEdge(-1)
		n := 1 + rng.Intn(8)
		for i := 0; i < n; i++ {
			e.Towards(rng.Int63n(12)-2, i)
		}
		l, _ := g.Link(-1)
		w := l.TotalWeight()
		if w <= 0 {
			continue
		}

		counts := make(map[int]int)
		for th := int64(0); th < w; th++ {
			sample := (float64(th) + 0.5) / float64(w)
			tr := g.NewTraversal(-1, func() float64 { return sample })
			v, ok := tr.Choose()
			require.True(t, ok)
			counts[v]++
		}

		probs := l.SelectionProbabilities()
		var sum float64
		for i, c := range l.Choices() {
			assert.InDelta(t, float64(counts[c.Value])/float64(w), probs[i], 1e-9, "round %d choice %v", round, c)
			sum += probs[i]
		}
		assert.InDelta(t, 1.0, sum, 1e-9)
	}
}
