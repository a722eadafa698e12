package domain

import "time"

// Event is a domain lifecycle notification. Payloads are plain records;
// subscribers must not mutate them.
type Event interface {
	// EventName returns the event name, e.g. "product.created"
	EventName() string

	// OccurredAt returns when the originating mutation happened
	OccurredAt() time.Time
}

// ProductCreated is published once when a product is constructed.
type ProductCreated struct {
	ID    ProductID
	Name  string
	Price Money
	At    time.Time
}

// EventName implements Event.
func (ProductCreated) EventName() string { return "product.created" }

// OccurredAt implements Event.
func (e ProductCreated) OccurredAt() time.Time { return e.At }

// ProductUpdated is published when a single product field changes.
type ProductUpdated struct {
	ID    ProductID
	Field string
	Old   any
	New   any
	At    time.Time
}

// EventName implements Event.
func (ProductUpdated) EventName() string { return "product.updated" }

// OccurredAt implements Event.
func (e ProductUpdated) OccurredAt() time.Time { return e.At }

// StockChanged is published on every stock mutation, including SetStock.
type StockChanged struct {
	ID       ProductID
	OldStock int
	NewStock int
	Delta    int
	At       time.Time
}

// EventName implements Event.
func (StockChanged) EventName() string { return "product.stock_changed" }

// OccurredAt implements Event.
func (e StockChanged) OccurredAt() time.Time { return e.At }

// Handler receives published events. A panicking handler is recovered by the
// bus; the mutation that triggered the event is never rolled back.
type Handler func(Event)

// EventBus is a synchronous in-process publish/subscribe sink. Handlers run
// in registration order on the publishing goroutine. The bus is not safe for
// concurrent use; callers serialize access at the boundary, the same way they
// serialize mutations on products and carts.
type EventBus struct {
	nextToken int
	handlers  []subscription
}

type subscription struct {
	token   int
	handler Handler
}

// NewEventBus creates an empty bus. One instance per process or per test;
// never a package-level singleton.
func NewEventBus() *EventBus {
	return &EventBus{}
}

// Subscribe registers a handler and returns a token for Unsubscribe.
func (b *EventBus) Subscribe(h Handler) int {
	b.nextToken++
	b.handlers = append(b.handlers, subscription{token: b.nextToken, handler: h})
	return b.nextToken
}

// Unsubscribe removes the handler registered under token. Unknown tokens are
// a no-op.
func (b *EventBus) Unsubscribe(token int) {
	for i, sub := range b.handlers {
		if sub.token == token {
			b.handlers = append(b.handlers[:i], b.handlers[i+1:]...)
			return
		}
	}
}

// Publish delivers the event to every subscriber in registration order.
// Delivery is fire-and-forget: a subscriber panic is swallowed so the
// remaining subscribers still run.
func (b *EventBus) Publish(event Event) {
	for _, sub := range b.handlers {
		invoke(sub.handler, event)
	}
}

func invoke(h Handler, event Event) {
	defer func() {
		_ = recover()
	}()
	h(event)
}
