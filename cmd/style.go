package main

import (
	"strconv"

	"github.com/pterm/pterm"

	"github.com/luca-patrignani/lama/domain/lama"
)

// renderEvent returns the presentation-layer subscriber for engine events.
// It reads the shared state for names and counts but never mutates it.
func renderEvent(state *lama.GameState) func(lama.Event) {
	return func(event lama.Event) {
		switch ev := event.(type) {
		case lama.CardPlayed:
			player := state.Players[ev.PlayerIndex]
			pterm.DefaultBox.
				WithTitle(pterm.LightYellow("|PLAY|")).
				WithTitleTopCenter().
				Println(pterm.Sprintf("%s played %s", player.Name, ev.Card))
		case lama.CardDrawn:
			player := state.Players[ev.PlayerIndex]
			pterm.Println(pterm.Sprintf("%s drew a card (%d in hand)", player.Name, player.Hand.Len()))
		case lama.WinnerDeclared:
			player := state.Players[ev.PlayerIndex]
			pterm.DefaultBox.
				WithTitle(pterm.LightGreen("|WINNER|")).
				WithTitleTopCenter().
				WithHorizontalPadding(4).
				Println(pterm.Sprintf("%s wins with %d points", pterm.LightCyan(player.Name), player.Score))
		}
	}
}

// renderScoreboard prints the final standings.
func renderScoreboard(state *lama.GameState, winner int) {
	rows := pterm.TableData{{"Player", "Score"}}
	for i, p := range state.Players {
		name := p.Name
		if i == winner {
			name = pterm.LightGreen(name + " *")
		}
		rows = append(rows, []string{name, strconv.Itoa(p.Score)})
	}
	if err := pterm.DefaultTable.WithHasHeader().WithData(rows).Render(); err != nil {
		pterm.Error.Println(err)
	}
}
