package corpus

import "context"

// Line is a single utterance from the line table.
type Line struct {
	ID          string // numeric string, leading "L" stripped on parse
	CharacterID string
	MovieID     string
	Text        string
}

// Character maps a speaker name to its corpus ID.
type Character struct {
	ID   string
	Name string
}

// Movie carries the metadata needed for year filtering. Year is kept as the
// raw string from the metadata table; filtering compares only its first
// three characters (decade granularity).
type Movie struct {
	ID   string
	Year string
}

// Conversation is one dialogue exchange: line IDs in record order.
type Conversation []string

// DialoguePair is a prompt/response pair of utterance texts.
type DialoguePair struct {
	Prompt   string
	Response string
}

// CharacterCount is an entry in the most-common-characters ranking.
type CharacterCount struct {
	ID    string
	Count int
}

// Source is one corpus variant. Ensure provisions the local data directory
// (a no-op when it already exists); Pairs extracts the variant's full
// prompt/response pair set. Variants with richer selectors (Cornell's
// by-character and by-year filters) expose them on their concrete type.
type Source interface {
	Ensure(ctx context.Context) error
	Pairs() ([]DialoguePair, error)
}
