package split

import (
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"

	"convopairs/pkg/corpus"
)

func makePairs(n int) []corpus.DialoguePair {
	pairs := make([]corpus.DialoguePair, n)
	for i := range pairs {
		pairs[i] = corpus.DialoguePair{
			Prompt:   fmt.Sprintf("p%d", i),
			Response: fmt.Sprintf("r%d", i),
		}
	}
	return pairs
}

func TestPairsConservation(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	for _, n := range []int{0, 1, 2, 3, 10, 101} {
		for _, fraction := range []float64{0, 0.1, 0.25, 0.5, 0.9, 1} {
			train, test := Pairs(makePairs(n), fraction, rng)
			require.Equal(t, n, len(train)+len(test), "n=%d fraction=%v", n, fraction)

			// No pair lost or duplicated.
			seen := make(map[string]bool, n)
			for _, p := range append(append([]corpus.DialoguePair{}, train...), test...) {
				require.False(t, seen[p.Prompt], "duplicate %v (n=%d fraction=%v)", p, n, fraction)
				seen[p.Prompt] = true
			}
			require.Len(t, seen, n)
		}
	}
}

func TestPairsKeepsOriginalOrder(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 7))
	pairs := makePairs(50)
	train, test := Pairs(pairs, 0.3, rng)

	position := make(map[string]int, len(pairs))
	for i, p := range pairs {
		position[p.Prompt] = i
	}
	for _, subset := range [][]corpus.DialoguePair{train, test} {
		for i := 1; i < len(subset); i++ {
			require.Less(t, position[subset[i-1].Prompt], position[subset[i].Prompt],
				"subset must keep ascending original order")
		}
	}
}

func TestPairsAlignmentPreserved(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 4))
	train, test := Pairs(makePairs(20), 0.5, rng)
	for _, subset := range [][]corpus.DialoguePair{train, test} {
		for _, p := range subset {
			require.Equal(t, "r"+p.Prompt[1:], p.Response, "prompt/response columns must stay aligned")
		}
	}
}

func TestPairsExtremes(t *testing.T) {
	rng := rand.New(rand.NewPCG(9, 9))

	train, test := Pairs(makePairs(10), 0, rng)
	require.Len(t, train, 10)
	require.Empty(t, test)

	train, test = Pairs(makePairs(10), 1, rng)
	require.Empty(t, train)
	require.Len(t, test, 10)

	// round(0.5*3) == 2
	train, test = Pairs(makePairs(3), 0.5, rng)
	require.Len(t, test, 2)
	require.Len(t, train, 1)
}

func TestPairsDeterministicWithSeed(t *testing.T) {
	a1, b1 := Pairs(makePairs(40), 0.25, rand.New(rand.NewPCG(11, 11)))
	a2, b2 := Pairs(makePairs(40), 0.25, rand.New(rand.NewPCG(11, 11)))
	require.Equal(t, a1, a2)
	require.Equal(t, b1, b2)
}
