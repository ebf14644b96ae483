package catalog

import "time"

// Selector kinds recorded for a run.
const (
	SelectorAll       = "all"
	SelectorCharacter = "character"
	SelectorYear      = "year"
)

// Run is one recorded extraction: which corpus, how the pairs were
// selected, how many landed where.
type Run struct {
	ID            string
	Corpus        string
	SelectorKind  string
	SelectorValue string
	PairCount     int
	TrainCount    int
	TestCount     int
	OutputDir     string
	CreatedAt     time.Time
}
