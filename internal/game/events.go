package game

import (
	"time"

	"github.com/lox/blackjack/internal/deck"
)

// EventType identifies a round event
type EventType string

const (
	EventTypeRoundStart   EventType = "round_start"
	EventTypeCardDealt    EventType = "card_dealt"
	EventTypeDealerReveal EventType = "dealer_reveal"
	EventTypeRoundEnd     EventType = "round_end"
)

// String returns the string representation of the event type
func (et EventType) String() string {
	return string(et)
}

// Event is anything the engine reports while playing a round
type Event interface {
	EventType() EventType
	Timestamp() time.Time
}

// RoundStartEvent is published when a fresh deck is opened for a round
type RoundStartEvent struct {
	RoundID   string
	timestamp time.Time
}

func (e RoundStartEvent) EventType() EventType { return EventTypeRoundStart }
func (e RoundStartEvent) Timestamp() time.Time { return e.timestamp }

// CardDealtEvent is published for every card leaving the deck. Total is
// the recipient's full hand value after the card; renderers must not show
// it for the dealer while Hidden cards are face down.
type CardDealtEvent struct {
	RoundID   string
	To        Side
	Card      deck.Card
	Hidden    bool
	Total     int
	timestamp time.Time
}

func (e CardDealtEvent) EventType() EventType { return EventTypeCardDealt }
func (e CardDealtEvent) Timestamp() time.Time { return e.timestamp }

// DealerRevealEvent is published when the player stands and the dealer's
// hidden card is turned over
type DealerRevealEvent struct {
	RoundID   string
	Card      deck.Card
	Total     int
	timestamp time.Time
}

func (e DealerRevealEvent) EventType() EventType { return EventTypeDealerReveal }
func (e DealerRevealEvent) Timestamp() time.Time { return e.timestamp }

// RoundEndEvent is published once per round when it becomes terminal
type RoundEndEvent struct {
	RoundID     string
	Outcome     Outcome
	PlayerTotal int
	DealerTotal int
	timestamp   time.Time
}

func (e RoundEndEvent) EventType() EventType { return EventTypeRoundEnd }
func (e RoundEndEvent) Timestamp() time.Time { return e.timestamp }

// EventSubscriber can subscribe to round events
type EventSubscriber interface {
	OnEvent(event Event)
}

// SubscriberFunc adapts a plain function to EventSubscriber
type SubscriberFunc func(Event)

// OnEvent calls f(event)
func (f SubscriberFunc) OnEvent(event Event) { f(event) }

// EventBus manages event publishing and subscription
type EventBus interface {
	Subscribe(subscriber EventSubscriber)
	Unsubscribe(subscriber EventSubscriber)
	Publish(event Event)
}

// SimpleEventBus is a synchronous in-memory event bus. Subscribers run on
// the publishing goroutine, in subscription order.
type SimpleEventBus struct {
	subscribers []EventSubscriber
}

// NewEventBus creates a new event bus
func NewEventBus() *SimpleEventBus {
	return &SimpleEventBus{
		subscribers: make([]EventSubscriber, 0),
	}
}

// Subscribe adds a subscriber to receive events
func (bus *SimpleEventBus) Subscribe(subscriber EventSubscriber) {
	bus.subscribers = append(bus.subscribers, subscriber)
}

// Unsubscribe removes a subscriber. SubscriberFunc values cannot be
// compared and are ignored.
func (bus *SimpleEventBus) Unsubscribe(subscriber EventSubscriber) {
	if _, ok := subscriber.(SubscriberFunc); ok {
		return
	}
	for i, sub := range bus.subscribers {
		if _, ok := sub.(SubscriberFunc); ok {
			continue
		}
		if sub == subscriber {
			bus.subscribers = append(bus.subscribers[:i], bus.subscribers[i+1:]...)
			break
		}
	}
}

// Publish sends an event to all subscribers
func (bus *SimpleEventBus) Publish(event Event) {
	for _, subscriber := range bus.subscribers {
		subscriber.OnEvent(event)
	}
}
