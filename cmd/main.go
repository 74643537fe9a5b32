package main

import (
	"flag"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"strconv"
	"unicode"

	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"

	"github.com/luca-patrignani/lama/agents"
	"github.com/luca-patrignani/lama/application"
	"github.com/luca-patrignani/lama/domain/lama"
	"github.com/luca-patrignani/lama/random"
)

func main() {
	cfg, err := parseEnv()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	saveFlag := flag.String("save", cfg.SaveFile, "save file path (loaded when it exists)")
	seedFlag := flag.Int64("seed", cfg.Seed, "random seed, 0 for a fresh one")
	flag.Parse()

	// Create a new slog logger backed by the default PTerm logger.
	handler := pterm.NewSlogHandler(&pterm.DefaultLogger)
	logger := slog.New(handler)

	seed := *seedFlag
	if seed == 0 {
		seed, err = random.NewSeed()
		if err != nil {
			logger.Error(err.Error())
			os.Exit(1)
		}
	}
	rng := rand.New(rand.NewSource(seed))

	pterm.Print("\n")
	title, err := pterm.DefaultBigText.WithLetters(
		putils.LettersFromStringWithStyle("L", pterm.FgRed.ToStyle()),
		putils.LettersFromStringWithStyle("ama", pterm.FgDarkGray.ToStyle()),
	).Srender()
	if err != nil {
		logger.Error(err.Error())
	}
	pterm.Print(title)

	orchestrator, err := application.LoadOrNew(*saveFlag, agents.NewRegistry(rng), func() (*lama.GameEngine, error) {
		return newGame(rng, logger)
	}, rng, logger)
	if err != nil {
		logger.Error(err.Error())
		os.Exit(1)
	}

	engine := orchestrator.Engine()
	engine.Events().Subscribe(renderEvent(engine.State()))

	if err := orchestrator.Run(); err != nil {
		logger.Error(err.Error())
		os.Exit(1)
	}

	renderScoreboard(engine.State(), engine.Winner())
}

// newGame runs the interactive setup flow and builds a fresh match.
func newGame(rng *rand.Rand, logger *slog.Logger) (*lama.GameEngine, error) {
	count := requestPlayerCount()
	names := requestPlayerNames(count)

	players := make([]*lama.Player, 0, count)
	playerAgents := make([]lama.PlayerAgent, 0, count)
	for _, name := range names {
		players = append(players, lama.NewPlayer(name))
		playerAgents = append(playerAgents, requestAgent(name, rng))
	}

	deck := lama.NewDeck(rng)
	top, err := deck.Draw()
	if err != nil {
		return nil, err
	}
	state := lama.NewGameState(players, deck, top)
	// Deal here so the first round plays, and the first snapshot persists,
	// this deck rather than a rebuilt one.
	state.DealCards(lama.InitialHandSize)
	return lama.NewGameEngine(state, playerAgents, rng, logger)
}

func requestPlayerCount() int {
	for {
		answer, _ := pterm.DefaultInteractiveTextInput.
			WithDefaultText("How many players?").Show()
		count, err := strconv.Atoi(answer)
		if err == nil && count > 0 {
			return count
		}
		pterm.Warning.Println("Please enter a positive number.")
	}
}

func requestPlayerNames(count int) []string {
	names := make([]string, 0, count)
	for len(names) < count {
		name, _ := pterm.DefaultInteractiveTextInput.
			WithDefaultText(pterm.Sprintf("Name of player %d", len(names)+1)).Show()
		if !isAlphabetic(name) {
			pterm.Warning.Println("Names must contain letters only.")
			continue
		}
		names = append(names, name)
	}
	return names
}

func requestAgent(name string, rng *rand.Rand) lama.PlayerAgent {
	kind, _ := pterm.DefaultInteractiveSelect.
		WithOptions(agents.Kinds()).
		WithDefaultText(pterm.Sprintf("Player type for %s", name)).
		Show()
	if kind == agents.KindBot {
		return agents.NewBot(rng)
	}
	return agents.NewHuman(name)
}

func isAlphabetic(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
