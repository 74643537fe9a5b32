package lama

import "fmt"

// Player holds the state of one participant across the whole match. The
// name is the stable identity and must be unique among participants.
type Player struct {
	Name  string
	Hand  *Hand
	Score int
	// Quit is set once the player has opted out of further play within
	// the current round. It resets at round start and is never persisted.
	Quit bool
}

// NewPlayer creates a player with an empty hand and a zero score.
func NewPlayer(name string) *Player {
	return &Player{Name: name, Hand: NewHand()}
}

// String renders the player for logs and prompts.
func (p *Player) String() string {
	return fmt.Sprintf("%s(%d): %s", p.Name, p.Score, p.Hand.Save())
}
