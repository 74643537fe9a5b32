package lama

// PlayerAgent makes the decisions for one participant. Concrete agents
// (bots, interactive humans) live outside the engine; the engine depends
// only on this interface. Calls are synchronous and block the engine until
// a decision is returned.
type PlayerAgent interface {
	// ChooseCard picks a card from hand to play on top. Returning
	// ok=false declines to play. A card outside the playable set is
	// ignored by the engine and treated as declining.
	ChooseCard(hand *Hand, top Card) (card Card, ok bool)

	// ChooseToPlay decides whether to play the candidate card that was
	// just drawn.
	ChooseToPlay(top, candidate Card) bool

	// ChooseQuit decides whether to quit the round when nothing in hand
	// is playable.
	ChooseQuit(hand *Hand, top Card) bool

	// InformCardDrawn notifies the agent that player drew a card.
	InformCardDrawn(player *Player, card Card)

	// InformCardPlayed notifies the agent that player played card.
	InformCardPlayed(player *Player, card Card)

	// Kind returns the persisted agent kind token, used to restore the
	// agent from a saved match.
	Kind() string
}

// AgentFactory builds a PlayerAgent for a restored player. A registry of
// factories keyed by kind token is the closed set of loadable agents.
type AgentFactory func(name string) PlayerAgent
