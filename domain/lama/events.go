package lama

// Event is a discrete notification emitted by the engine for an external
// presentation layer. Delivery is fire-and-forget: the engine does not
// wait for or depend on consumption.
type Event interface {
	event()
}

// CardPlayed is emitted when a card lands on the discard pile.
type CardPlayed struct {
	Card        Card
	PlayerIndex int
}

// CardDrawn is emitted when a player draws from the deck.
type CardDrawn struct {
	Card        Card
	PlayerIndex int
}

// WinnerDeclared is emitted once the overall winner is known.
type WinnerDeclared struct {
	PlayerIndex int
}

func (CardPlayed) event()     {}
func (CardDrawn) event()      {}
func (WinnerDeclared) event() {}

// EventBus fans events out to subscribers in subscription order. It is
// not safe for concurrent use; the engine is single-threaded.
type EventBus struct {
	subscribers []func(Event)
}

// Subscribe registers a callback for every published event.
func (b *EventBus) Subscribe(fn func(Event)) {
	b.subscribers = append(b.subscribers, fn)
}

// Publish delivers event to every subscriber.
func (b *EventBus) Publish(event Event) {
	for _, fn := range b.subscribers {
		fn(event)
	}
}
