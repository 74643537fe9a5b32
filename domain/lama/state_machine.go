package lama

import (
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/google/uuid"
)

// GamePhase identifies a step of the round/turn state machine.
type GamePhase string

const (
	PhaseBeginRound      GamePhase = "begin_round"
	PhaseChooseCard      GamePhase = "choose_card"
	PhaseDrawExtra       GamePhase = "draw_extra"
	PhaseChooseCardAgain GamePhase = "choose_card_again"
	PhaseNextPlayer      GamePhase = "next_player"
	PhaseEndRound        GamePhase = "end_round"
	PhaseDetermineWinner GamePhase = "determine_winner"
	PhaseDeclareWinner   GamePhase = "declare_winner"
	// PhaseGameEnd is terminal; the run loop exits.
	PhaseGameEnd GamePhase = "game_end"
)

const (
	// InitialHandSize cards are dealt to every player at round start.
	InitialHandSize = 6
	// ScoreThreshold is the cumulative penalty at which the match moves
	// on to determining the overall winner.
	ScoreThreshold = 40
)

// GameEngine drives a match round by round, turn by turn. Each step reads
// the current phase, applies the rules, consults the relevant agent,
// mutates the game state and picks the next phase. Domain rule violations
// inside a step resolve to the conservative branch (skip, quit, no-op) and
// never escape.
type GameEngine struct {
	state  *GameState
	agents []PlayerAgent // parallel to state.Players
	phase  GamePhase
	rng    *rand.Rand
	logger *slog.Logger
	bus    *EventBus

	roundID string
	winner  int
}

// NewGameEngine creates an engine over state. Agents are matched to
// players by position.
func NewGameEngine(state *GameState, agents []PlayerAgent, rng *rand.Rand, logger *slog.Logger) (*GameEngine, error) {
	if len(agents) != len(state.Players) {
		return nil, fmt.Errorf("%d agents for %d players", len(agents), len(state.Players))
	}
	if len(state.Players) == 0 {
		return nil, fmt.Errorf("no players")
	}
	return &GameEngine{
		state:  state,
		agents: agents,
		phase:  PhaseBeginRound,
		rng:    rng,
		logger: logger,
		bus:    &EventBus{},
		winner: -1,
	}, nil
}

// State returns the table state the engine drives.
func (e *GameEngine) State() *GameState {
	return e.state
}

// Phase returns the current phase.
func (e *GameEngine) Phase() GamePhase {
	return e.phase
}

// Events returns the engine's outbound event bus.
func (e *GameEngine) Events() *EventBus {
	return e.bus
}

// Winner returns the index of the winning player, or -1 while the match
// is still running.
func (e *GameEngine) Winner() int {
	return e.winner
}

// Step executes a single phase transition. Calling Step after the match
// has ended is a no-op.
func (e *GameEngine) Step() {
	switch e.phase {
	case PhaseBeginRound:
		e.phase = e.beginRound()
	case PhaseChooseCard:
		e.phase = e.chooseCard()
	case PhaseDrawExtra:
		e.phase = e.drawExtra()
	case PhaseChooseCardAgain:
		e.phase = e.chooseCardAgain()
	case PhaseNextPlayer:
		e.phase = e.nextPlayer()
	case PhaseEndRound:
		e.phase = e.endRound()
	case PhaseDetermineWinner:
		e.phase = e.determineWinner()
	case PhaseDeclareWinner:
		e.phase = e.declareWinner()
	case PhaseGameEnd:
	}
}

// Run drives the match until it ends.
func (e *GameEngine) Run() {
	for e.phase != PhaseGameEnd {
		e.Step()
	}
}

func (e *GameEngine) beginRound() GamePhase {
	e.roundID = uuid.NewString()
	if e.state.Resumed {
		// Play out the hands that were persisted mid-round.
		e.state.Resumed = false
		e.logger.Info("round resumed from storage", "round", e.roundID,
			"player", e.state.CurrentPlayer().Name)
		return PhaseChooseCard
	}
	e.state.ResetQuit()
	if e.state.CurrentPlayer().Hand.IsEmpty() {
		e.state.Deck = NewDeck(e.rng)
		e.state.DealCards(InitialHandSize)
		if top, err := e.state.Deck.Draw(); err == nil {
			e.state.Top = top
		}
		e.logger.Info("round started", "round", e.roundID, "top", e.state.Top.Save())
	}
	return PhaseChooseCard
}

func (e *GameEngine) chooseCard() GamePhase {
	player := e.state.CurrentPlayer()
	if player.Quit {
		return PhaseNextPlayer
	}

	playable := player.Hand.PlayableCards(e.state.Top)
	agent := e.agents[e.state.CurrentPlayerIndex()]

	if len(playable) == 0 {
		if agent.ChooseQuit(player.Hand, e.state.Top) {
			player.Quit = true
			e.logger.Info("player quit the round", "player", player.Name)
			return PhaseNextPlayer
		}
		return PhaseDrawExtra
	}

	card, ok := agent.ChooseCard(player.Hand, e.state.Top)
	if !ok {
		e.logger.Info("player skipped a turn", "player", player.Name)
		return PhaseDrawExtra
	}
	if !containsCard(playable, card) {
		e.logger.Warn("agent chose a card outside the playable set",
			"player", player.Name, "card", card.Save())
		return PhaseDrawExtra
	}

	e.playCard(player, card)
	return PhaseNextPlayer
}

func (e *GameEngine) drawExtra() GamePhase {
	player := e.state.CurrentPlayer()
	card, err := e.state.DrawCard()
	if err != nil {
		// No card to draw: the player sits out the rest of the round.
		player.Quit = true
		e.logger.Info("deck empty, player sits out", "player", player.Name)
		return PhaseNextPlayer
	}

	for _, a := range e.agents {
		a.InformCardDrawn(player, card)
	}
	e.bus.Publish(CardDrawn{Card: card, PlayerIndex: e.state.CurrentPlayerIndex()})
	return PhaseChooseCardAgain
}

func (e *GameEngine) chooseCardAgain() GamePhase {
	player := e.state.CurrentPlayer()
	playable := player.Hand.PlayableCards(e.state.Top)
	if len(playable) == 0 {
		return PhaseNextPlayer
	}

	candidate := playable[0]
	agent := e.agents[e.state.CurrentPlayerIndex()]
	if agent.ChooseToPlay(e.state.Top, candidate) {
		e.playCard(player, candidate)
	} else {
		e.logger.Info("player kept the drawn card", "player", player.Name)
	}
	return PhaseNextPlayer
}

func (e *GameEngine) nextPlayer() GamePhase {
	if e.state.CurrentPlayer().Hand.IsEmpty() {
		e.logger.Info("player went out", "player", e.state.CurrentPlayer().Name)
		return PhaseEndRound
	}
	if e.state.AllQuit() {
		e.logger.Info("every player quit the round")
		return PhaseEndRound
	}
	e.state.NextPlayer()
	return PhaseChooseCard
}

func (e *GameEngine) endRound() GamePhase {
	for _, p := range e.state.Players {
		penalty := p.Hand.Score()
		p.Score += penalty
		p.Hand.Clear()
		e.logger.Info("round scored", "round", e.roundID,
			"player", p.Name, "penalty", penalty, "total", p.Score)
	}
	e.state.Deck = NewDeck(e.rng)
	for _, p := range e.state.Players {
		if p.Score >= ScoreThreshold {
			return PhaseDetermineWinner
		}
	}
	return PhaseBeginRound
}

func (e *GameEngine) determineWinner() GamePhase {
	// Lowest score wins. Players still below the threshold are preferred;
	// ties resolve to the first such player in turn order.
	winner := -1
	for i, p := range e.state.Players {
		if p.Score >= ScoreThreshold {
			continue
		}
		if winner == -1 || p.Score < e.state.Players[winner].Score {
			winner = i
		}
	}
	if winner == -1 {
		for i, p := range e.state.Players {
			if winner == -1 || p.Score < e.state.Players[winner].Score {
				winner = i
			}
		}
	}
	e.winner = winner
	return PhaseDeclareWinner
}

func (e *GameEngine) declareWinner() GamePhase {
	player := e.state.Players[e.winner]
	e.logger.Info("winner declared", "player", player.Name, "score", player.Score)
	e.bus.Publish(WinnerDeclared{PlayerIndex: e.winner})
	return PhaseGameEnd
}

// playCard moves a vetted card from the player's hand onto the pile and
// sends out the notifications.
func (e *GameEngine) playCard(player *Player, card Card) {
	if err := e.state.PlayCard(card); err != nil {
		e.logger.Warn("play rejected", "player", player.Name, "error", err)
		return
	}
	e.logger.Info("card played", "player", player.Name, "card", card.Save())
	for _, a := range e.agents {
		a.InformCardPlayed(player, card)
	}
	e.bus.Publish(CardPlayed{Card: card, PlayerIndex: e.state.CurrentPlayerIndex()})
}

func containsCard(cards []Card, card Card) bool {
	for _, c := range cards {
		if c == card {
			return true
		}
	}
	return false
}
