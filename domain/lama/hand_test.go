package lama

import (
	"errors"
	"testing"
)

func mustHand(t *testing.T, text string) *Hand {
	t.Helper()
	hand, err := LoadHand(text)
	if err != nil {
		t.Fatalf("LoadHand(%q): %v", text, err)
	}
	return hand
}

func TestHand_AddRemove(t *testing.T) {
	hand := NewHand()
	if !hand.IsEmpty() {
		t.Fatal("new hand should be empty")
	}

	three := mustCard(t, 3)
	hand.AddCard(three)
	if hand.Len() != 1 || !hand.Contains(three) {
		t.Fatalf("hand after add: %q", hand.Save())
	}

	if err := hand.RemoveCard(three); err != nil {
		t.Fatalf("RemoveCard: %v", err)
	}
	if !hand.IsEmpty() {
		t.Error("hand should be empty after removal")
	}
}

func TestHand_RemoveMissing(t *testing.T) {
	hand := mustHand(t, "3 6")
	if err := hand.RemoveCard(mustCard(t, 5)); !errors.Is(err, ErrCardNotFound) {
		t.Errorf("expected ErrCardNotFound, got %v", err)
	}
	if hand.Save() != "3 6" {
		t.Errorf("hand changed by failed removal: %q", hand.Save())
	}
}

func TestHand_RemoveOneCopyOnly(t *testing.T) {
	hand := mustHand(t, "4 4 2")
	if err := hand.RemoveCard(mustCard(t, 4)); err != nil {
		t.Fatalf("RemoveCard: %v", err)
	}
	if hand.Save() != "4 2" {
		t.Errorf("hand after removing one 4: %q", hand.Save())
	}
}

func TestHand_PlayableCards(t *testing.T) {
	hand := mustHand(t, "3 4 0 1 6")

	playable := hand.PlayableCards(mustCard(t, 3))
	if got := saveCards(playable); got != "3 4" {
		t.Errorf("playable on 3: %q, want %q", got, "3 4")
	}

	playable = hand.PlayableCards(mustCard(t, 6))
	if got := saveCards(playable); got != "0 6" {
		t.Errorf("playable on 6: %q, want %q", got, "0 6")
	}

	playable = hand.PlayableCards(mustCard(t, Lama))
	if got := saveCards(playable); got != "0 1" {
		t.Errorf("playable on Lama: %q, want %q", got, "0 1")
	}
}

func TestHand_Score(t *testing.T) {
	cases := []struct {
		hand string
		want int
	}{
		{"", 0},
		{"0", 10},
		{"0 0", 20},
		{"3 3", 0},
		{"3 3 5", 5},
		{"1 2 3 4 5 6", 21},
		{"0 6 6", 10},
	}
	for _, c := range cases {
		if got := mustHand(t, c.hand).Score(); got != c.want {
			t.Errorf("Score(%q) = %d, want %d", c.hand, got, c.want)
		}
	}
}

func TestHand_SaveLoadRoundTrip(t *testing.T) {
	for _, text := range []string{"", "3 6", "0 0 1"} {
		if got := mustHand(t, text).Save(); got != text {
			t.Errorf("round trip of %q gave %q", text, got)
		}
	}
}

func TestHand_Sorted(t *testing.T) {
	hand := mustHand(t, "6 0 3 1")
	if got := saveCards(hand.Sorted()); got != "0 1 3 6" {
		t.Errorf("Sorted gave %q", got)
	}
	// sorting must not disturb the stored order
	if hand.Save() != "6 0 3 1" {
		t.Errorf("Sorted mutated the hand: %q", hand.Save())
	}
}
