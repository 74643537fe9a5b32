package agents

import (
	"math/rand"
	"testing"

	"github.com/luca-patrignani/lama/domain/lama"
)

func mustHand(t *testing.T, text string) *lama.Hand {
	t.Helper()
	hand, err := lama.LoadHand(text)
	if err != nil {
		t.Fatalf("LoadHand(%q): %v", text, err)
	}
	return hand
}

func mustCard(t *testing.T, rank int) lama.Card {
	t.Helper()
	card, err := lama.NewCard(rank)
	if err != nil {
		t.Fatalf("NewCard(%d): %v", rank, err)
	}
	return card
}

func TestBot_ChooseCard_AlwaysPlayable(t *testing.T) {
	bot := NewBot(rand.New(rand.NewSource(7)))
	hand := mustHand(t, "1 3 4 0 6")
	top := mustCard(t, 3)

	for i := 0; i < 50; i++ {
		card, ok := bot.ChooseCard(hand, top)
		if !ok {
			t.Fatal("bot declined with playable cards in hand")
		}
		if !card.CanPlayOn(top) {
			t.Fatalf("bot chose unplayable %s on %s", card.Save(), top.Save())
		}
	}
}

func TestBot_ChooseCard_DeclinesWithoutPlayable(t *testing.T) {
	bot := NewBot(rand.New(rand.NewSource(7)))
	hand := mustHand(t, "1 2")
	top := mustCard(t, 5)

	if _, ok := bot.ChooseCard(hand, top); ok {
		t.Fatal("bot claimed a play with nothing playable")
	}
}

func TestBot_ChooseQuit_SmallHandLocksIn(t *testing.T) {
	bot := NewBot(rand.New(rand.NewSource(7)))
	top := mustCard(t, 3)

	if !bot.ChooseQuit(mustHand(t, "1 2 3"), top) {
		t.Error("penalty 6 should quit")
	}
	if bot.ChooseQuit(mustHand(t, "1 2 4"), top) {
		t.Error("penalty 7 should keep playing")
	}
	if bot.ChooseQuit(mustHand(t, "0"), top) {
		t.Error("a lone wild card is worth 10, should keep playing")
	}
}

func TestBot_NilRNGStillDecides(t *testing.T) {
	bot := NewBot(nil)
	card, ok := bot.ChooseCard(mustHand(t, "4"), mustCard(t, 4))
	if !ok || card.Rank() != 4 {
		t.Errorf("bot with default rng chose %v %v", card, ok)
	}
	if !bot.ChooseToPlay(mustCard(t, 4), card) {
		t.Error("bot should always play a playable drawn card")
	}
	if bot.Kind() != KindBot {
		t.Errorf("Kind = %q", bot.Kind())
	}
}
