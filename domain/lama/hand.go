package lama

import (
	"errors"
	"fmt"
	"sort"
)

// ErrCardNotFound indicates removing a card the hand does not hold.
var ErrCardNotFound = errors.New("card not in hand")

// Hand is the collection of cards owned by exactly one player. A card in a
// hand is never simultaneously in a deck or on the discard pile; cards
// move between containers, they are never duplicated.
type Hand struct {
	cards []Card
}

// NewHand creates a hand holding the given cards. Every hand gets its own
// backing storage.
func NewHand(cards ...Card) *Hand {
	return &Hand{cards: append([]Card(nil), cards...)}
}

// AddCard appends a card to the hand.
func (h *Hand) AddCard(card Card) {
	h.cards = append(h.cards, card)
}

// RemoveCard removes one copy of card from the hand. Removing a card the
// hand does not hold returns ErrCardNotFound; callers decide whether that
// is fatal.
func (h *Hand) RemoveCard(card Card) error {
	for i, c := range h.cards {
		if c == card {
			h.cards = append(h.cards[:i], h.cards[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrCardNotFound, card.Save())
}

// Contains reports whether the hand holds at least one copy of card.
func (h *Hand) Contains(card Card) bool {
	for _, c := range h.cards {
		if c == card {
			return true
		}
	}
	return false
}

// PlayableCards returns the cards that may legally be placed on top.
func (h *Hand) PlayableCards(top Card) []Card {
	var playable []Card
	for _, c := range h.cards {
		if c.CanPlayOn(top) {
			playable = append(playable, c)
		}
	}
	return playable
}

// Score sums the penalty of every card, using the hand itself as the
// duplicate context.
func (h *Hand) Score() int {
	total := 0
	for _, c := range h.cards {
		total += c.Score(h.cards)
	}
	return total
}

// IsEmpty reports whether the hand holds no cards.
func (h *Hand) IsEmpty() bool {
	return len(h.cards) == 0
}

// Len returns the number of cards in the hand.
func (h *Hand) Len() int {
	return len(h.cards)
}

// Cards returns a copy of the hand's contents in insertion order.
func (h *Hand) Cards() []Card {
	return append([]Card(nil), h.cards...)
}

// Sorted returns a copy of the hand ordered by rank, for display.
func (h *Hand) Sorted() []Card {
	cards := h.Cards()
	sort.Slice(cards, func(i, j int) bool { return cards[i].Less(cards[j]) })
	return cards
}

// Clear removes every card from the hand.
func (h *Hand) Clear() {
	h.cards = nil
}

// Save serializes the hand as space-separated rank tokens. An empty hand
// saves as the empty string.
func (h *Hand) Save() string {
	return saveCards(h.cards)
}

// LoadHand parses a hand from space-separated rank tokens.
func LoadHand(text string) (*Hand, error) {
	cards, err := loadCards(text)
	if err != nil {
		return nil, fmt.Errorf("load hand: %w", err)
	}
	return &Hand{cards: cards}, nil
}
