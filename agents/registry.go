package agents

import (
	"math/rand"

	"github.com/luca-patrignani/lama/domain/lama"
)

// Persisted agent kind tokens. These are the values the save file's "kind"
// field may hold.
const (
	KindBot   = "Bot"
	KindHuman = "Human"
)

// NewRegistry builds the closed table of agent kinds a saved match may
// name. Loading a document with a kind outside this table fails with a
// clear error instead of guessing. Bots decide with rng, so a resumed
// match replays the same seeded source that shuffles the deck.
func NewRegistry(rng *rand.Rand) map[string]lama.AgentFactory {
	return map[string]lama.AgentFactory{
		KindBot:   func(name string) lama.PlayerAgent { return NewBot(rng) },
		KindHuman: func(name string) lama.PlayerAgent { return NewHuman(name) },
	}
}

// Kinds lists the registered kind tokens in a stable order, for prompts.
func Kinds() []string {
	return []string{KindBot, KindHuman}
}
