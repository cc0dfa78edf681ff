package markov_test

import (
	"bytes"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/markovwalk/markov"
)

// TestTraversal_Choose_FanOut locks in the threshold scan on 2 → {5,10,15}.
func TestTraversal_Choose_FanOut(t *testing.T) {
	tests := []struct {
		name   string
		sample float64
		want   int
	}{
		{"zero returns lightest", 0.0, 5},
		{"threshold 12 returns middle", 0.4, 10},
		{"threshold 27 returns heaviest", 0.9, 15},
		{"threshold 9 falls back to lightest", 0.3, 5},
		{"threshold 15 hits heaviest exactly", 0.5, 15},
		{"out of range above", 3.0, 15},
		{"out of range below", -1.0, 5},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			tr := markov.NewTraversal(buildFanOut(), 2, constant(tc.sample))

			got, ok := tr.Choose()
			require.True(t, ok)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, tc.want, tr.Current())
			assert.Equal(t, 1, tr.Steps())
		})
	}
}

// TestTraversal_Choose_NotCumulative pins the own-weight comparison on weights
// where a cumulative draw would disagree.
func TestTraversal_Choose_NotCumulative(t *testing.T) {
	g := markov.NewGraph[string]()
	g.NewEdge(StateStart).
		Towards(3, "a").
		Towards(4, "b").
		Towards(5, "c") // total 12

	// threshold = floor(0.5*12) = 6: own weights 3,4,5 are all <= 6 → "c".
	// A cumulative draw (3,7,12) would pick "b".
	tr := g.NewTraversal(StateStart, constant(0.5))
	got, ok := tr.Choose()
	require.True(t, ok)
	assert.Equal(t, "c", got)
}

func TestTraversal_Choose_AbsentState(t *testing.T) {
	calls := 0
	tr := markov.NewTraversal(buildFanOut(), 30, counting(constant(0.9), &calls))

	got, ok := tr.Choose()
	assert.False(t, ok)
	assert.Equal(t, 0, got)
	assert.Equal(t, 30, tr.Current())
	assert.Equal(t, 0, calls, "no sample is drawn for an absent state")
	assert.Equal(t, 0, tr.Steps())
}

func TestTraversal_Choose_EmptyLink(t *testing.T) {
	calls := 0
	g := markov.NewGraph[string]()
	g.Connect(StateEnd) // declared terminal: empty Link
	require.True(t, g.HasState(StateEnd))

	tr := g.NewTraversal(StateEnd, counting(constant(0.5), &calls))
	got, ok := tr.Choose()
	assert.False(t, ok)
	assert.Equal(t, "", got)
	assert.Equal(t, StateEnd, tr.Current())
	assert.Equal(t, 1, calls, "the sample is drawn before the empty scan")
}

func TestTraversal_Choose_SingleZeroWeight(t *testing.T) {
	g := markov.NewGraph[string]()
	g.NewEdge(StateStart).Towards(0, StateEnd)

	tr := g.NewTraversal(StateStart, constant(0.5))
	got, ok := tr.Choose()
	require.True(t, ok)
	assert.Equal(t, StateEnd, got)
}

func TestTraversal_Choose_DrawsOncePerCall(t *testing.T) {
	calls := 0
	g := markov.NewGraph[string]()
	g.NewEdge("a").Towards(1, "b")
	g.NewEdge("b").Towards(1, "a")
	tr := g.NewTraversal("a", counting(constant(0), &calls))

	for i := 0; i < 5; i++ {
		_, ok := tr.Choose()
		require.True(t, ok)
	}
	assert.Equal(t, 5, calls)
}

func TestTraversal_Choose_AlwaysZeroPicksLightest(t *testing.T) {
	g := buildDungeon()
	tr := g.NewTraversal(StateStart, constant(0))

	// Start → Corner(1) → Corridor(1) → End(5) → stop.
	assert.Equal(t, []string{StateCorner, StateCorridor, StateEnd}, tr.Walk(0))
	assert.Equal(t, StateEnd, tr.Current())
}

func TestTraversal_Choose_NegativeWeights(t *testing.T) {
	g := markov.NewGraph[string]()
	g.NewEdge(StateStart).
		Towards(-10, "neg").
		Towards(4, "pos") // total -6

	// threshold = floor(0.5 * -6) = -3: -10 <= -3, 4 > -3 → "neg".
	tr := g.NewTraversal(StateStart, constant(0.5))
	got, ok := tr.Choose()
	require.True(t, ok)
	assert.Equal(t, "neg", got)
}

func TestTraversal_IndependentCursors(t *testing.T) {
	g := buildFanOut()
	low := g.NewTraversal(2, constant(0))
	high := g.NewTraversal(2, constant(0.9))

	a, _ := low.Choose()
	b, _ := high.Choose()
	assert.Equal(t, 5, a)
	assert.Equal(t, 15, b)
	assert.Same(t, g, low.Graph())
	assert.Same(t, g, high.Graph())
}

func TestTraversal_Walk(t *testing.T) {
	g := markov.NewGraph[string]()
	g.NewEdge("a").Towards(1, "b")
	g.NewEdge("b").Towards(1, "c")

	tr := g.NewTraversal("a", constant(0))
	assert.Equal(t, []string{"b", "c"}, tr.Walk(0))

	tr.Reset("a")
	assert.Equal(t, 0, tr.Steps())
	assert.Equal(t, []string{"b"}, tr.Walk(1))
	assert.Nil(t, tr.Walk(-1))
	assert.Equal(t, "b", tr.Current())
}

func TestTraversal_Walk_CycleBounded(t *testing.T) {
	g := markov.NewGraph[string]()
	g.NewEdge("a").Towards(1, "b")
	g.NewEdge("b").Towards(1, "a")

	tr := g.NewTraversal("a", constant(0.7))
	path := tr.Walk(6)
	assert.Equal(t, []string{"b", "a", "b", "a", "b", "a"}, path)
	assert.Equal(t, 6, tr.Steps())
}

func TestTraversal_Hooks(t *testing.T) {
	type step struct {
		from, to  string
		threshold int64
	}
	var steps []step
	var terminal []string

	g := buildDungeon()
	tr := g.NewTraversal(StateStart, constant(0),
		markov.WithOnStep(func(from, to string, th int64) { steps = append(steps, step{from, to, th}) }),
		markov.WithOnTerminal(func(at string) { terminal = append(terminal, at) }),
		markov.WithOnStep[string](nil), // ignored
	)
	tr.Walk(0)

	assert.Equal(t, []step{
		{StateStart, StateCorner, 0},
		{StateCorner, StateCorridor, 0},
		{StateCorridor, StateEnd, 0},
	}, steps)
	assert.Equal(t, []string{StateEnd}, terminal)
}

func TestTraversal_Logger(t *testing.T) {
	var buf bytes.Buffer
	log := logrus.New()
	log.SetOutput(&buf)
	log.SetLevel(logrus.DebugLevel)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true, DisableColors: true})

	tr := buildFanOut().NewTraversal(2, constant(0.4), markov.WithLogger[int](log))
	tr.Choose()
	tr.Choose()

	out := buf.String()
	assert.Contains(t, out, "markov: step")
	assert.Contains(t, out, "from=2")
	assert.Contains(t, out, "to=10")
	assert.Contains(t, out, "threshold=12")
	assert.Contains(t, out, "total_weight=30")
	assert.Contains(t, out, "markov: no next state")
	assert.Contains(t, out, "at=10")
}

func TestNewTraversal_Panics(t *testing.T) {
	assert.Panics(t, func() { markov.NewTraversal[string](nil, StateStart, constant(0)) })
	assert.Panics(t, func() { markov.NewGraph[string]().NewTraversal(StateStart, nil) })
}

func TestTraversal_String(t *testing.T) {
	g := markov.NewGraph[string]()
	g.NewEdge("a").Towards(1, "b")
	tr := g.NewTraversal("a", constant(0))

	assert.Equal(t, "Traversal{current: a, steps: 0, graph: Graph{\n  a {total=1 [1→b]}\n}}", tr.String())
}
