package lama

import (
	"errors"
	"math/rand"
	"testing"
)

func TestNewDeck_FullBuild(t *testing.T) {
	deck := NewDeck(rand.New(rand.NewSource(1)))

	want := CopiesPerRank * (MaxRank + 1)
	if deck.Len() != want {
		t.Fatalf("deck has %d cards, want %d", deck.Len(), want)
	}

	counts := make(map[int]int)
	for !deck.IsEmpty() {
		card, err := deck.Draw()
		if err != nil {
			t.Fatalf("unexpected draw error: %v", err)
		}
		counts[card.Rank()]++
	}
	for rank := Lama; rank <= MaxRank; rank++ {
		if counts[rank] != CopiesPerRank {
			t.Errorf("rank %d appears %d times, want %d", rank, counts[rank], CopiesPerRank)
		}
	}
}

func TestDeck_DrawOrder(t *testing.T) {
	deck, err := LoadDeck("2 6 0")
	if err != nil {
		t.Fatalf("LoadDeck: %v", err)
	}
	for _, want := range []int{0, 6, 2} {
		card, err := deck.Draw()
		if err != nil {
			t.Fatalf("Draw: %v", err)
		}
		if card.Rank() != want {
			t.Errorf("drew rank %d, want %d", card.Rank(), want)
		}
	}
	if !deck.IsEmpty() {
		t.Error("deck should be empty after drawing every card")
	}
}

func TestDeck_DrawEmpty(t *testing.T) {
	deck, err := LoadDeck("")
	if err != nil {
		t.Fatalf("LoadDeck: %v", err)
	}
	if _, err := deck.Draw(); !errors.Is(err, ErrEmptyDeck) {
		t.Errorf("expected ErrEmptyDeck, got %v", err)
	}
}

func TestDeck_SaveLoadRoundTrip(t *testing.T) {
	for _, text := range []string{"2 6 0", "0 0 0 0", "", "1"} {
		deck, err := LoadDeck(text)
		if err != nil {
			t.Fatalf("LoadDeck(%q): %v", text, err)
		}
		if got := deck.Save(); got != text {
			t.Errorf("round trip of %q gave %q", text, got)
		}
	}
}

func TestLoadDeck_Malformed(t *testing.T) {
	for _, text := range []string{"2 x 0", "9", "1 2 -3"} {
		if _, err := LoadDeck(text); !errors.Is(err, ErrParse) {
			t.Errorf("LoadDeck(%q): expected ErrParse, got %v", text, err)
		}
	}
}

func TestDeck_ShuffleDeterministic(t *testing.T) {
	first := NewDeck(rand.New(rand.NewSource(42)))
	second := NewDeck(rand.New(rand.NewSource(42)))
	if first.Save() != second.Save() {
		t.Error("same seed should give the same shuffle")
	}

	other := NewDeck(rand.New(rand.NewSource(43)))
	if first.Save() == other.Save() {
		t.Error("different seeds should give a different shuffle")
	}
}
