package lama

import "fmt"

// GameState is the shared table state: players in turn order, the deck,
// the top of the discard pile and whose turn it is. It is owned and
// mutated exclusively by the engine's current step.
type GameState struct {
	Players []*Player
	Deck    *Deck
	Top     Card
	current int
	// Resumed marks state restored from storage. It suppresses the deal
	// for the first round so the persisted hands are played out.
	Resumed bool
}

// NewGameState creates table state with the given players, deck and
// exposed top card. Turn order is the player list order.
func NewGameState(players []*Player, deck *Deck, top Card) *GameState {
	return &GameState{Players: players, Deck: deck, Top: top}
}

// CurrentPlayerIndex returns the index of the player whose turn it is.
func (g *GameState) CurrentPlayerIndex() int {
	return g.current
}

// CurrentPlayer returns the player whose turn it is.
func (g *GameState) CurrentPlayer() *Player {
	return g.Players[g.current]
}

// NextPlayer advances the turn to the next player, wrapping around.
func (g *GameState) NextPlayer() {
	g.current = (g.current + 1) % len(g.Players)
}

// DrawCard moves the top card of the deck into the current player's hand
// and returns it. An empty deck returns ErrEmptyDeck.
func (g *GameState) DrawCard() (Card, error) {
	card, err := g.Deck.Draw()
	if err != nil {
		return Card{}, err
	}
	g.CurrentPlayer().Hand.AddCard(card)
	return card, nil
}

// PlayCard moves card from the current player's hand onto the discard
// pile, replacing the top.
func (g *GameState) PlayCard(card Card) error {
	if !card.CanPlayOn(g.Top) {
		return fmt.Errorf("cannot play %s on %s", card.Save(), g.Top.Save())
	}
	if err := g.CurrentPlayer().Hand.RemoveCard(card); err != nil {
		return err
	}
	g.Top = card
	return nil
}

// DealCards deals n cards to every player in turn order. Dealing stops
// quietly once the deck runs out; the round proceeds with whatever was
// distributable.
func (g *GameState) DealCards(n int) {
	for i := 0; i < n; i++ {
		for _, p := range g.Players {
			card, err := g.Deck.Draw()
			if err != nil {
				return
			}
			p.Hand.AddCard(card)
		}
	}
}

// AllQuit reports whether every player has opted out of the round.
func (g *GameState) AllQuit() bool {
	for _, p := range g.Players {
		if !p.Quit {
			return false
		}
	}
	return true
}

// ResetQuit clears every player's quit flag at round start.
func (g *GameState) ResetQuit() {
	for _, p := range g.Players {
		p.Quit = false
	}
}
