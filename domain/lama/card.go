package lama

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/pterm/pterm"
)

// Card rank constants. Ranks run from MinRank to MaxRank, plus the wild
// Lama rank which bridges the two ends of the range.
const (
	Lama    = 0
	MinRank = 1
	MaxRank = 6
)

// CopiesPerRank is how many copies of each rank a fresh deck holds.
const CopiesPerRank = 8

// lamaPenalty is the fixed penalty for holding a Lama at round end.
const lamaPenalty = 10

// ErrInvalidCard indicates a rank outside the playable set.
var ErrInvalidCard = errors.New("invalid card rank")

// ErrParse indicates a malformed persisted card token.
var ErrParse = errors.New("malformed card token")

// Card represents a playing card identified solely by its rank.
// Duplicate ranks are indistinguishable and interchangeable, so cards are
// copied freely by value and never mutated.
type Card struct {
	rank int
}

// NewCard creates a new Card with validation.
//
// Rank must be MinRank..MaxRank or Lama; anything else returns
// ErrInvalidCard.
func NewCard(rank int) (Card, error) {
	if rank < Lama || rank > MaxRank {
		return Card{}, fmt.Errorf("%w: %d", ErrInvalidCard, rank)
	}
	return Card{rank: rank}, nil
}

// Rank returns the rank value of the Card.
func (c Card) Rank() int {
	return c.rank
}

// IsLama reports whether the card is the wild Lama card.
func (c Card) IsLama() bool {
	return c.rank == Lama
}

// Less orders cards by rank. Ordering is for display and sorting only; it
// has no bearing on play legality.
func (c Card) Less(other Card) bool {
	return c.rank < other.rank
}

// CanPlayOn reports whether c may legally be placed on top of other:
// equal rank, the next rank up, a Lama on the highest rank or on a Lama,
// or the lowest rank (and a Lama) on a Lama.
func (c Card) CanPlayOn(other Card) bool {
	if c.rank == other.rank || c.rank == other.rank+1 {
		return true
	}
	if c.rank == Lama {
		return other.rank == MaxRank || other.rank == Lama
	}
	if other.rank == Lama {
		return c.rank == MinRank || c.rank == Lama
	}
	return false
}

// Score returns the penalty for holding c given the full hand contents.
// A Lama always scores the fixed penalty. A non-wild rank scores zero when
// it appears more than once in hand, otherwise its face value. The result
// depends on the current hand snapshot, so it must be recomputed whenever
// the hand changes.
func (c Card) Score(hand []Card) int {
	if c.rank == Lama {
		return lamaPenalty
	}
	count := 0
	for _, h := range hand {
		if h.rank == c.rank {
			count++
		}
	}
	if count > 1 {
		return 0
	}
	return c.rank
}

// Save returns the persisted token for the card.
func (c Card) Save() string {
	return strconv.Itoa(c.rank)
}

// LoadCard parses a persisted rank token. Non-numeric or out-of-range
// tokens return ErrParse; a malformed token never coerces to a default
// card.
func LoadCard(text string) (Card, error) {
	rank, err := strconv.Atoi(text)
	if err != nil {
		return Card{}, fmt.Errorf("%w: %q", ErrParse, text)
	}
	card, err := NewCard(rank)
	if err != nil {
		return Card{}, fmt.Errorf("%w: %q", ErrParse, text)
	}
	return card, nil
}

// String returns a human-readable representation of the Card for terminal
// display, with the Lama highlighted.
func (c Card) String() string {
	if c.rank == Lama {
		return pterm.LightRed("L")
	}
	return strconv.Itoa(c.rank)
}
