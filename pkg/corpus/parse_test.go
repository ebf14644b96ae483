package corpus

import (
	"errors"
	"strings"
	"testing"
)

func TestParseLineTable(t *testing.T) {
	input := "L1045 +++$+++ u0 +++$+++ m0 +++$+++ BIANCA +++$+++ They do not!\n" +
		"L1044 +++$+++ u2 +++$+++ m0 +++$+++ CAMERON +++$+++  They do to!  \n"
	lines, err := parseLineTable(strings.NewReader(input), DecodeLenient, "movie_lines.txt")
	if err != nil {
		t.Fatalf("parseLineTable: %v", err)
	}
	if len(lines) != 2 {
		t.Fatalf("got %d lines; want 2", len(lines))
	}
	want := Line{ID: "1045", CharacterID: "u0", MovieID: "m0", Text: "They do not!"}
	if lines[0] != want {
		t.Fatalf("lines[0] = %+v; want %+v", lines[0], want)
	}
	if lines[1].Text != "They do to!" {
		t.Fatalf("text not trimmed: %q", lines[1].Text)
	}
}

func TestParseLineTableShortRow(t *testing.T) {
	_, err := parseLineTable(strings.NewReader("L1 +++$+++ u0\n"), DecodeLenient, "movie_lines.txt")
	if err == nil {
		t.Fatal("expected error for a row with too few fields")
	}
}

func TestParseCharacterTable(t *testing.T) {
	input := "u0 +++$+++ BIANCA +++$+++ m0 +++$+++ 10 things i hate about you +++$+++ f +++$+++ 4\n"
	chars, err := parseCharacterTable(strings.NewReader(input), DecodeLenient, "movie_characters_metadata.txt")
	if err != nil {
		t.Fatalf("parseCharacterTable: %v", err)
	}
	if len(chars) != 1 || chars[0].ID != "u0" || chars[0].Name != "BIANCA" {
		t.Fatalf("got %+v", chars)
	}
}

func TestParseMovieTable(t *testing.T) {
	input := "m0 +++$+++ 10 things i hate about you +++$+++ 1999 +++$+++ 6.90 +++$+++ 62847 +++$+++ ['comedy']\n"
	movies, err := parseMovieTable(strings.NewReader(input), DecodeLenient, "movie_titles_metadata.txt")
	if err != nil {
		t.Fatalf("parseMovieTable: %v", err)
	}
	if len(movies) != 1 || movies[0].ID != "m0" || movies[0].Year != "1999" {
		t.Fatalf("got %+v", movies)
	}
}

func TestParseConversationTable(t *testing.T) {
	input := "u0 +++$+++ u2 +++$+++ m0 +++$+++ ['L194', 'L195', 'L196']\n" +
		"u0 +++$+++ u2 +++$+++ m0 +++$+++ ['L197', 'L198']\n"
	convos, err := parseConversationTable(strings.NewReader(input), DecodeLenient, "movie_conversations.txt")
	if err != nil {
		t.Fatalf("parseConversationTable: %v", err)
	}
	if len(convos) != 2 {
		t.Fatalf("got %d conversations; want 2", len(convos))
	}
	want := []string{"194", "195", "196"}
	for i, id := range want {
		if convos[0][i] != id {
			t.Fatalf("convos[0] = %v; want %v", convos[0], want)
		}
	}
	// L-prefixed and bare numeric tokens resolve to the same IDs.
	if convos[1][0] != "197" || convos[1][1] != "198" {
		t.Fatalf("convos[1] = %v", convos[1])
	}
}

func TestDecodeLenientDropsMalformedBytes(t *testing.T) {
	input := "L1 +++$+++ u0 +++$+++ m0 +++$+++ A +++$+++ caf\xe9 talk\n"
	lines, err := parseLineTable(strings.NewReader(input), DecodeLenient, "movie_lines.txt")
	if err != nil {
		t.Fatalf("parseLineTable: %v", err)
	}
	if lines[0].Text != "caf talk" {
		t.Fatalf("lenient decode produced %q; want the invalid byte dropped", lines[0].Text)
	}
}

func TestDecodeStrictFailsOnMalformedBytes(t *testing.T) {
	input := "L1 +++$+++ u0 +++$+++ m0 +++$+++ A +++$+++ caf\xe9 talk\n"
	_, err := parseLineTable(strings.NewReader(input), DecodeStrict, "movie_lines.txt")
	if !errors.Is(err, ErrMalformedText) {
		t.Fatalf("got %v; want ErrMalformedText", err)
	}
}

func TestDecodeWindows1252Transcodes(t *testing.T) {
	// 0xe9 is é in Windows-1252.
	input := "L1 +++$+++ u0 +++$+++ m0 +++$+++ A +++$+++ caf\xe9 talk\n"
	lines, err := parseLineTable(strings.NewReader(input), DecodeWindows1252, "movie_lines.txt")
	if err != nil {
		t.Fatalf("parseLineTable: %v", err)
	}
	if lines[0].Text != "café talk" {
		t.Fatalf("windows-1252 decode produced %q; want %q", lines[0].Text, "café talk")
	}
}

func TestParseDecodePolicy(t *testing.T) {
	cases := map[string]DecodePolicy{
		"":             DecodeLenient,
		"lenient":      DecodeLenient,
		"Strict":       DecodeStrict,
		"windows-1252": DecodeWindows1252,
		"cp1252":       DecodeWindows1252,
	}
	for in, want := range cases {
		got, err := ParseDecodePolicy(in)
		if err != nil || got != want {
			t.Fatalf("ParseDecodePolicy(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
	if _, err := ParseDecodePolicy("latin-9"); err == nil {
		t.Fatal("expected error for unknown policy")
	}
}
