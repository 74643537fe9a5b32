package lama

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
)

// ErrEmptyDeck indicates a draw from a deck with no cards left.
var ErrEmptyDeck = errors.New("deck is empty")

// Deck is an ordered stack of cards. Draw removes from the end of the
// slice.
type Deck struct {
	cards []Card
}

// NewDeck builds a full deck, CopiesPerRank copies of every rank, shuffled
// with the provided random source. A deck lives for exactly one round.
func NewDeck(rng *rand.Rand) *Deck {
	cards := make([]Card, 0, CopiesPerRank*(MaxRank+1))
	for rank := Lama; rank <= MaxRank; rank++ {
		for i := 0; i < CopiesPerRank; i++ {
			cards = append(cards, Card{rank: rank})
		}
	}
	deck := &Deck{cards: cards}
	deck.Shuffle(rng)
	return deck
}

// Shuffle permutes the deck in place. The random source is explicit so
// tests can force deterministic sequences.
func (d *Deck) Shuffle(rng *rand.Rand) {
	rng.Shuffle(len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
}

// Draw removes and returns the top card. Drawing from an empty deck
// returns ErrEmptyDeck, never a sentinel card.
func (d *Deck) Draw() (Card, error) {
	if len(d.cards) == 0 {
		return Card{}, ErrEmptyDeck
	}
	card := d.cards[len(d.cards)-1]
	d.cards = d.cards[:len(d.cards)-1]
	return card, nil
}

// IsEmpty reports whether the deck has no cards left.
func (d *Deck) IsEmpty() bool {
	return len(d.cards) == 0
}

// Len returns the number of cards left in the deck.
func (d *Deck) Len() int {
	return len(d.cards)
}

// Save serializes the deck as space-separated rank tokens. The last token
// is the first card drawn.
func (d *Deck) Save() string {
	return saveCards(d.cards)
}

// LoadDeck parses a deck from space-separated rank tokens. An empty string
// loads an empty deck.
func LoadDeck(text string) (*Deck, error) {
	cards, err := loadCards(text)
	if err != nil {
		return nil, fmt.Errorf("load deck: %w", err)
	}
	return &Deck{cards: cards}, nil
}

func saveCards(cards []Card) string {
	tokens := make([]string, len(cards))
	for i, c := range cards {
		tokens[i] = c.Save()
	}
	return strings.Join(tokens, " ")
}

func loadCards(text string) ([]Card, error) {
	fields := strings.Fields(text)
	cards := make([]Card, 0, len(fields))
	for _, token := range fields {
		card, err := LoadCard(token)
		if err != nil {
			return nil, err
		}
		cards = append(cards, card)
	}
	return cards, nil
}
