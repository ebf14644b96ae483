package corpus

import "testing"

func TestPrevLineIndexRoundTrip(t *testing.T) {
	ix := NewIndex(
		[]Line{
			{ID: "1", CharacterID: "u0", Text: "a"},
			{ID: "2", CharacterID: "u1", Text: "b"},
			{ID: "3", CharacterID: "u0", Text: "c"},
		},
		nil, nil,
		[]Conversation{{"1", "2", "3"}},
	)

	if prev, ok := ix.PrevLine("2"); !ok || prev != "1" {
		t.Fatalf("PrevLine(2) = %q, %v; want 1, true", prev, ok)
	}
	if prev, ok := ix.PrevLine("3"); !ok || prev != "2" {
		t.Fatalf("PrevLine(3) = %q, %v; want 2, true", prev, ok)
	}
	if _, ok := ix.PrevLine("1"); ok {
		t.Fatal("first line of a conversation must have no prev entry")
	}
}

func TestPrevLineIndexLastConversationWins(t *testing.T) {
	// Line 2 appears as a response in both conversations; the second
	// conversation's predecessor must win.
	ix := NewIndex(
		[]Line{
			{ID: "1", Text: "a"},
			{ID: "2", Text: "b"},
			{ID: "9", Text: "z"},
		},
		nil, nil,
		[]Conversation{{"1", "2"}, {"9", "2"}},
	)

	prev, ok := ix.PrevLine("2")
	if !ok || prev != "9" {
		t.Fatalf("PrevLine(2) = %q, %v; want last conversation's 9", prev, ok)
	}

	// The overwrite must not duplicate the key in All's iteration.
	pairs, err := ix.All()
	if err != nil {
		t.Fatalf("All: %v", err)
	}
	if len(pairs) != 1 {
		t.Fatalf("All produced %d pairs; want 1", len(pairs))
	}
	if pairs[0].Prompt != "z" || pairs[0].Response != "b" {
		t.Fatalf("All produced %+v; want prompt z, response b", pairs[0])
	}
}

func TestCharacterLookup(t *testing.T) {
	ix := NewIndex(nil,
		[]Character{
			{ID: "u0", Name: "BIANCA"},
			{ID: "u99", Name: "bianca"}, // duplicate name, first wins
			{ID: "u1", Name: "CAMERON"},
		},
		nil, nil)

	if got := ix.CharacterID("Bianca"); got != "u0" {
		t.Fatalf("CharacterID(Bianca) = %q; want first-seen u0", got)
	}
	if got := ix.CharacterID("cameron"); got != "u1" {
		t.Fatalf("CharacterID(cameron) = %q; want u1", got)
	}
	if got := ix.CharacterID("nobody"); got != "" {
		t.Fatalf("CharacterID(nobody) = %q; want empty", got)
	}
}

func TestDuplicateLineIDKeepsOnePosition(t *testing.T) {
	ix := NewIndex(
		[]Line{
			{ID: "1", Text: "first"},
			{ID: "2", Text: "middle"},
			{ID: "1", Text: "second"},
		},
		nil, nil, nil)

	if ix.Lines() != 2 {
		t.Fatalf("Lines() = %d; want 2 distinct IDs", ix.Lines())
	}
	l, ok := ix.Line("1")
	if !ok || l.Text != "second" {
		t.Fatalf("Line(1) = %+v, %v; want the later row's text", l, ok)
	}
}
