package lama

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"math/rand"
)

// playerDocument is the persisted form of one player.
type playerDocument struct {
	Name  string `json:"name"`
	Hand  string `json:"hand"`
	Score int    `json:"score"`
	Kind  string `json:"kind"`
}

// gameDocument is the persisted form of a match. The layout is the
// save-file contract: card containers are space-separated rank tokens.
type gameDocument struct {
	Top                string           `json:"top"`
	Deck               string           `json:"deck"`
	CurrentPlayerIndex int              `json:"current_player_index"`
	Players            []playerDocument `json:"players"`
}

// Save serializes the current state to the persisted document. Loading the
// result restores an equal state, including empty hands and an empty deck.
func (e *GameEngine) Save() ([]byte, error) {
	doc := gameDocument{
		Top:                e.state.Top.Save(),
		Deck:               e.state.Deck.Save(),
		CurrentPlayerIndex: e.state.CurrentPlayerIndex(),
	}
	for i, p := range e.state.Players {
		doc.Players = append(doc.Players, playerDocument{
			Name:  p.Name,
			Hand:  p.Hand.Save(),
			Score: p.Score,
			Kind:  e.agents[i].Kind(),
		})
	}
	return json.MarshalIndent(doc, "", "    ")
}

// LoadGameEngine restores an engine from a persisted document. The
// registry is the closed set of agent kinds; a document naming an unknown
// kind fails the load. Restored state is marked resumed so the first round
// plays the persisted hands instead of dealing.
func LoadGameEngine(data []byte, registry map[string]AgentFactory, rng *rand.Rand, logger *slog.Logger) (*GameEngine, error) {
	var doc gameDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}

	top, err := LoadCard(doc.Top)
	if err != nil {
		return nil, fmt.Errorf("load top: %w", err)
	}
	deck, err := LoadDeck(doc.Deck)
	if err != nil {
		return nil, err
	}

	players := make([]*Player, 0, len(doc.Players))
	agents := make([]PlayerAgent, 0, len(doc.Players))
	for _, pd := range doc.Players {
		factory, ok := registry[pd.Kind]
		if !ok {
			return nil, fmt.Errorf("unknown agent kind %q for player %q", pd.Kind, pd.Name)
		}
		hand, err := LoadHand(pd.Hand)
		if err != nil {
			return nil, fmt.Errorf("player %q: %w", pd.Name, err)
		}
		players = append(players, &Player{Name: pd.Name, Hand: hand, Score: pd.Score})
		agents = append(agents, factory(pd.Name))
	}

	if doc.CurrentPlayerIndex < 0 || doc.CurrentPlayerIndex >= len(players) {
		return nil, fmt.Errorf("current player index %d out of range", doc.CurrentPlayerIndex)
	}

	state := NewGameState(players, deck, top)
	state.current = doc.CurrentPlayerIndex
	state.Resumed = true
	return NewGameEngine(state, agents, rng, logger)
}
