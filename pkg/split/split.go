// Package split partitions dialogue pairs into train and test subsets.
package split

import (
	"math"
	"math/rand/v2"
	"sort"

	"convopairs/pkg/corpus"
)

// Pairs samples round(testFraction*len(pairs)) distinct indices uniformly
// at random without replacement as the test set; the remaining indices form
// the train set. Both subsets keep ascending original order, so
// prompt/response alignment and relative ordering survive the split, and
// len(train)+len(test) == len(pairs) always holds.
//
// rng may be nil, in which case the shared global source is used. Pass a
// seeded *rand.Rand for reproducible splits.
func Pairs(pairs []corpus.DialoguePair, testFraction float64, rng *rand.Rand) (train, test []corpus.DialoguePair) {
	n := len(pairs)
	k := int(math.Round(testFraction * float64(n)))
	if k < 0 {
		k = 0
	}
	if k > n {
		k = n
	}

	perm := randPerm(rng, n)
	testIdx := perm[:k]
	sort.Ints(testIdx)

	inTest := make(map[int]bool, k)
	for _, i := range testIdx {
		inTest[i] = true
	}

	train = make([]corpus.DialoguePair, 0, n-k)
	test = make([]corpus.DialoguePair, 0, k)
	for i, p := range pairs {
		if inTest[i] {
			test = append(test, p)
		} else {
			train = append(train, p)
		}
	}
	return train, test
}

func randPerm(rng *rand.Rand, n int) []int {
	if rng != nil {
		return rng.Perm(n)
	}
	return rand.Perm(n)
}
