package corpus

import (
	"fmt"
	"sort"
)

// ByCharacter returns one pair per line spoken by charID that has a
// predecessor in its conversation, in line-table order. An empty or unknown
// charID yields an empty result.
func (ix *Index) ByCharacter(charID string) ([]DialoguePair, error) {
	if charID == "" {
		return nil, nil
	}
	var pairs []DialoguePair
	for _, id := range ix.lineOrder {
		line := ix.lines[id]
		if line.CharacterID != charID {
			continue
		}
		prevID, ok := ix.prev[id]
		if !ok {
			continue
		}
		prevLine, ok := ix.lines[prevID]
		if !ok {
			return nil, fmt.Errorf("conversation references %q: %w", prevID, ErrLineMissing)
		}
		pairs = append(pairs, DialoguePair{Prompt: prevLine.Text, Response: line.Text})
	}
	return pairs, nil
}

// ByYear pairs the lines of all movies whose year matches year at decade
// granularity (first three characters). The matched lines are flattened in
// file order and paired strictly by position: even indices prompt, odd
// indices respond, ignoring conversation boundaries. An odd trailing line
// is dropped.
func (ix *Index) ByYear(year string) []DialoguePair {
	prefix := yearPrefix(year)
	if prefix == "" {
		return nil
	}
	matched := make(map[string]bool)
	for id, m := range ix.movies {
		if yearPrefix(m.Year) == prefix {
			matched[id] = true
		}
	}
	var texts []string
	for _, id := range ix.lineOrder {
		if line := ix.lines[id]; matched[line.MovieID] {
			texts = append(texts, line.Text)
		}
	}
	var pairs []DialoguePair
	for i := 0; i+1 < len(texts); i += 2 {
		pairs = append(pairs, DialoguePair{Prompt: texts[i], Response: texts[i+1]})
	}
	return pairs
}

// All returns one pair for every entry in the prev-line index, in
// first-insertion order.
func (ix *Index) All() ([]DialoguePair, error) {
	pairs := make([]DialoguePair, 0, len(ix.prevOrder))
	for _, id := range ix.prevOrder {
		line, ok := ix.lines[id]
		if !ok {
			return nil, fmt.Errorf("conversation references %q: %w", id, ErrLineMissing)
		}
		prevLine, ok := ix.lines[ix.prev[id]]
		if !ok {
			return nil, fmt.Errorf("conversation references %q: %w", ix.prev[id], ErrLineMissing)
		}
		pairs = append(pairs, DialoguePair{Prompt: prevLine.Text, Response: line.Text})
	}
	return pairs, nil
}

// MostCommonCharacters ranks character IDs by how many lines they speak in
// the line table. Ties keep first-seen order. n <= 0 or n beyond the number
// of distinct characters returns the full ranking.
func (ix *Index) MostCommonCharacters(n int) []CharacterCount {
	counts := make(map[string]int)
	var order []string
	for _, id := range ix.lineOrder {
		charID := ix.lines[id].CharacterID
		if _, seen := counts[charID]; !seen {
			order = append(order, charID)
		}
		counts[charID]++
	}
	ranking := make([]CharacterCount, 0, len(order))
	for _, charID := range order {
		ranking = append(ranking, CharacterCount{ID: charID, Count: counts[charID]})
	}
	sort.SliceStable(ranking, func(i, j int) bool { return ranking[i].Count > ranking[j].Count })
	if n > 0 && n < len(ranking) {
		ranking = ranking[:n]
	}
	return ranking
}

// yearPrefix truncates a year string to the three characters used for
// decade-level matching.
func yearPrefix(year string) string {
	if len(year) > 3 {
		return year[:3]
	}
	return year
}
