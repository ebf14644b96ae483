package corpus

import "strings"

// Index holds the in-memory view of a loaded corpus. It is built once by
// NewIndex and read-only afterwards; the extraction methods allocate fresh
// result slices per call.
//
// Go maps do not iterate in insertion order, so the index keeps explicit
// order slices beside the line and prev-line maps. Extraction order is part
// of the contract: ByCharacter and ByYear walk the line table in file order,
// All walks the prev-line index in first-insertion order.
type Index struct {
	lines     map[string]Line
	lineOrder []string

	chars  map[string]string // lower-cased name -> character ID, first wins
	movies map[string]Movie

	conversations []Conversation

	prev      map[string]string // line ID -> immediately preceding line ID
	prevOrder []string
}

// NewIndex builds all lookup maps from parsed table rows.
//
// Collision semantics are load-bearing: a character name seen twice keeps
// its first ID, while a line ID appearing in several conversations keeps the
// predecessor from the last conversation (the mapping is overwritten in
// place, preserving the key's original position).
func NewIndex(lines []Line, chars []Character, movies []Movie, conversations []Conversation) *Index {
	ix := &Index{
		lines:         make(map[string]Line, len(lines)),
		chars:         make(map[string]string, len(chars)),
		movies:        make(map[string]Movie, len(movies)),
		conversations: conversations,
		prev:          make(map[string]string),
	}
	for _, l := range lines {
		if _, seen := ix.lines[l.ID]; !seen {
			ix.lineOrder = append(ix.lineOrder, l.ID)
		}
		ix.lines[l.ID] = l
	}
	for _, c := range chars {
		key := strings.ToLower(c.Name)
		if _, seen := ix.chars[key]; !seen {
			ix.chars[key] = c.ID
		}
	}
	for _, m := range movies {
		ix.movies[m.ID] = m
	}
	for _, conv := range conversations {
		for i := 1; i < len(conv); i++ {
			ix.setPrev(conv[i], conv[i-1])
		}
	}
	return ix
}

func (ix *Index) setPrev(id, prevID string) {
	if _, seen := ix.prev[id]; !seen {
		ix.prevOrder = append(ix.prevOrder, id)
	}
	ix.prev[id] = prevID
}

// Line returns the line with the given ID.
func (ix *Index) Line(id string) (Line, bool) {
	l, ok := ix.lines[id]
	return l, ok
}

// Lines reports the number of lines in the table.
func (ix *Index) Lines() int { return len(ix.lineOrder) }

// CharacterID resolves a character name to its ID, case-insensitively.
// An unknown name yields the empty string, which downstream extraction
// treats as an empty selection rather than an error.
func (ix *Index) CharacterID(name string) string {
	return ix.chars[strings.ToLower(name)]
}

// Movie returns the movie with the given ID.
func (ix *Index) Movie(id string) (Movie, bool) {
	m, ok := ix.movies[id]
	return m, ok
}

// Conversations returns the parsed conversation ID sequences.
func (ix *Index) Conversations() []Conversation { return ix.conversations }

// PrevLine returns the ID of the line immediately preceding id in its
// conversation. The first line of a conversation has no entry.
func (ix *Index) PrevLine(id string) (string, bool) {
	p, ok := ix.prev[id]
	return p, ok
}
