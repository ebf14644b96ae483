package corpus

import (
	"fmt"
	"io"
	"regexp"
	"strings"
)

// fieldSep separates record fields in every Cornell table.
const fieldSep = "+++$+++"

// idToken matches the numeric part of a line ID inside a conversation row's
// final field. The on-disk format quotes L-prefixed IDs ('L194'); the line
// table is keyed by the numeric part, so extracting digit runs yields
// matching keys for both formats.
var idToken = regexp.MustCompile(`\d+`)

// lineID normalizes a raw line-table ID field: whitespace trimmed, leading
// "L" stripped.
func lineID(field string) string {
	return strings.TrimPrefix(strings.TrimSpace(field), "L")
}

// parseLineTable reads movie_lines.txt rows:
//
//	L1045 +++$+++ u0 +++$+++ m0 +++$+++ BIANCA +++$+++ They do not!
//
// The final field is free text and may itself be empty.
func parseLineTable(r io.Reader, policy DecodePolicy, name string) ([]Line, error) {
	var out []Line
	sc := newScanner(r, policy)
	lineno := 0
	for sc.Scan() {
		lineno++
		raw, err := decodeLine(sc.Text(), policy, name, lineno)
		if err != nil {
			return nil, err
		}
		if strings.TrimSpace(raw) == "" {
			continue
		}
		fields := strings.Split(raw, fieldSep)
		if len(fields) < 3 {
			return nil, fmt.Errorf("%s:%d: expected at least 3 fields, got %d", name, lineno, len(fields))
		}
		out = append(out, Line{
			ID:          lineID(fields[0]),
			CharacterID: strings.TrimSpace(fields[1]),
			MovieID:     strings.TrimSpace(fields[2]),
			Text:        strings.TrimSpace(fields[len(fields)-1]),
		})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	return out, nil
}

// parseCharacterTable reads movie_characters_metadata.txt rows:
//
//	u0 +++$+++ BIANCA +++$+++ m0 +++$+++ 10 things i hate about you +++$+++ f +++$+++ 4
func parseCharacterTable(r io.Reader, policy DecodePolicy, name string) ([]Character, error) {
	var out []Character
	sc := newScanner(r, policy)
	lineno := 0
	for sc.Scan() {
		lineno++
		raw, err := decodeLine(sc.Text(), policy, name, lineno)
		if err != nil {
			return nil, err
		}
		if strings.TrimSpace(raw) == "" {
			continue
		}
		fields := strings.Split(raw, fieldSep)
		if len(fields) < 2 {
			return nil, fmt.Errorf("%s:%d: expected at least 2 fields, got %d", name, lineno, len(fields))
		}
		out = append(out, Character{
			ID:   strings.TrimSpace(fields[0]),
			Name: strings.TrimSpace(fields[1]),
		})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	return out, nil
}

// parseMovieTable reads movie_titles_metadata.txt rows:
//
//	m0 +++$+++ 10 things i hate about you +++$+++ 1999 +++$+++ 6.90 +++$+++ 62847 +++$+++ ['comedy']
//
// Only the ID and year are kept.
func parseMovieTable(r io.Reader, policy DecodePolicy, name string) ([]Movie, error) {
	var out []Movie
	sc := newScanner(r, policy)
	lineno := 0
	for sc.Scan() {
		lineno++
		raw, err := decodeLine(sc.Text(), policy, name, lineno)
		if err != nil {
			return nil, err
		}
		if strings.TrimSpace(raw) == "" {
			continue
		}
		fields := strings.Split(raw, fieldSep)
		if len(fields) < 3 {
			return nil, fmt.Errorf("%s:%d: expected at least 3 fields, got %d", name, lineno, len(fields))
		}
		out = append(out, Movie{
			ID:   strings.TrimSpace(fields[0]),
			Year: strings.TrimSpace(fields[2]),
		})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	return out, nil
}

// parseConversationTable reads movie_conversations.txt rows:
//
//	u0 +++$+++ u2 +++$+++ m0 +++$+++ ['L194', 'L195', 'L196', 'L197']
//
// Only the final field matters; the ID list is recovered by token
// extraction rather than list parsing.
func parseConversationTable(r io.Reader, policy DecodePolicy, name string) ([]Conversation, error) {
	var out []Conversation
	sc := newScanner(r, policy)
	lineno := 0
	for sc.Scan() {
		lineno++
		raw, err := decodeLine(sc.Text(), policy, name, lineno)
		if err != nil {
			return nil, err
		}
		if strings.TrimSpace(raw) == "" {
			continue
		}
		fields := strings.Split(raw, fieldSep)
		ids := idToken.FindAllString(fields[len(fields)-1], -1)
		out = append(out, Conversation(ids))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	return out, nil
}
