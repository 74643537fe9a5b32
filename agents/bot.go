// Package agents provides the concrete PlayerAgent implementations and
// the closed registry of persistable agent kinds.
package agents

import (
	"math/rand"

	"github.com/luca-patrignani/lama/domain/lama"
	"github.com/luca-patrignani/lama/random"
)

// quitScore is the hand penalty at or below which the bot locks in and
// quits the round instead of drawing.
const quitScore = 6

// Bot is a computer player picking uniformly among its playable cards.
type Bot struct {
	rng *rand.Rand
}

// NewBot returns a bot deciding with rng. A nil rng falls back to a
// crypto-seeded source.
func NewBot(rng *rand.Rand) *Bot {
	if rng == nil {
		seed, err := random.NewSeed()
		if err != nil {
			seed = 1
		}
		rng = rand.New(rand.NewSource(seed))
	}
	return &Bot{rng: rng}
}

// ChooseCard picks a random playable card, declining when none exists.
func (b *Bot) ChooseCard(hand *lama.Hand, top lama.Card) (lama.Card, bool) {
	playable := hand.PlayableCards(top)
	if len(playable) == 0 {
		return lama.Card{}, false
	}
	return playable[b.rng.Intn(len(playable))], true
}

// ChooseToPlay always plays a drawn card that is playable.
func (b *Bot) ChooseToPlay(top, candidate lama.Card) bool {
	return true
}

// ChooseQuit quits once the remaining hand penalty is small enough to be
// worth locking in.
func (b *Bot) ChooseQuit(hand *lama.Hand, top lama.Card) bool {
	return hand.Score() <= quitScore
}

// InformCardDrawn is a no-op; the bot keeps no memory of other players.
func (b *Bot) InformCardDrawn(player *lama.Player, card lama.Card) {}

// InformCardPlayed is a no-op.
func (b *Bot) InformCardPlayed(player *lama.Player, card lama.Card) {}

// Kind returns the persisted kind token for bots.
func (b *Bot) Kind() string {
	return KindBot
}
