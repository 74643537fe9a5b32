package agents

import (
	"github.com/pterm/pterm"

	"github.com/luca-patrignani/lama/domain/lama"
)

const drawOption = "draw a card"

// Human prompts a person at the terminal for every decision. Prompts block
// the engine until answered.
type Human struct {
	name string
}

// NewHuman returns an interactive agent for the named player.
func NewHuman(name string) *Human {
	return &Human{name: name}
}

// ChooseCard shows the playable cards and lets the player pick one or draw
// instead.
func (h *Human) ChooseCard(hand *lama.Hand, top lama.Card) (lama.Card, bool) {
	playable := hand.PlayableCards(top)
	if len(playable) == 0 {
		return lama.Card{}, false
	}

	pterm.Info.Printfln("%s, your hand: %s (top card %s)", h.name, formatCards(hand.Sorted()), top)
	options := make([]string, 0, len(playable)+1)
	for _, c := range playable {
		options = append(options, c.Save())
	}
	options = append(options, drawOption)

	choice, err := pterm.DefaultInteractiveSelect.
		WithOptions(options).
		WithDefaultText("Choose a card to play").
		Show()
	if err != nil || choice == drawOption {
		return lama.Card{}, false
	}
	card, err := lama.LoadCard(choice)
	if err != nil {
		return lama.Card{}, false
	}
	return card, true
}

// ChooseToPlay asks whether to play the card just drawn.
func (h *Human) ChooseToPlay(top, candidate lama.Card) bool {
	ok, _ := pterm.DefaultInteractiveConfirm.
		WithDefaultText(pterm.Sprintf("%s, play the drawn %s on %s?", h.name, candidate, top)).
		Show()
	return ok
}

// ChooseQuit asks whether to sit out the rest of the round.
func (h *Human) ChooseQuit(hand *lama.Hand, top lama.Card) bool {
	pterm.Info.Printfln("%s, nothing in %s plays on %s", h.name, formatCards(hand.Sorted()), top)
	ok, _ := pterm.DefaultInteractiveConfirm.
		WithDefaultText("Quit the round?").
		Show()
	return ok
}

// InformCardDrawn announces another player's draw.
func (h *Human) InformCardDrawn(player *lama.Player, card lama.Card) {
	if player.Name == h.name {
		pterm.Info.Printfln("You drew %s", card)
		return
	}
	pterm.Info.Printfln("%s has drawn a card", player.Name)
}

// InformCardPlayed announces a play.
func (h *Human) InformCardPlayed(player *lama.Player, card lama.Card) {
	pterm.Info.Printfln("%s has played %s", player.Name, card)
}

// Kind returns the persisted kind token for interactive players.
func (h *Human) Kind() string {
	return KindHuman
}

func formatCards(cards []lama.Card) string {
	s := ""
	for i, c := range cards {
		if i > 0 {
			s += " "
		}
		s += c.String()
	}
	return s
}
