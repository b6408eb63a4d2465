// Copyright (c) 2026 Keymaster Team
// Keyeditor - keyboard key assignment editor
// This source code is licensed under the MIT license found in the LICENSE file.
package panel

import "fmt"

// EventKind classifies a user interaction.
type EventKind int

const (
	EventClick EventKind = iota
	EventSelect
	EventOpen
	EventClose
)

func (k EventKind) String() string {
	switch k {
	case EventClick:
		return "click"
	case EventSelect:
		return "select"
	case EventOpen:
		return "open"
	case EventClose:
		return "close"
	}
	return fmt.Sprintf("EventKind(%d)", int(k))
}

// Event is a user interaction with the control Target. Value carries the
// chosen option of select events.
type Event struct {
	Kind   EventKind
	Target string
	Value  string
}

// Click returns a click event on target.
func Click(target string) Event { return Event{Kind: EventClick, Target: target} }

// Select returns a select event choosing value in target.
func Select(target, value string) Event { return Event{Kind: EventSelect, Target: target, Value: value} }

// Open returns a dropdown open event.
func Open(target string) Event { return Event{Kind: EventOpen, Target: target} }

// Close returns a dropdown close event.
func Close(target string) Event { return Event{Kind: EventClose, Target: target} }

// Handler reacts to an event.
type Handler func(Event) error

// Subscription identifies one bound handler.
type Subscription struct {
	id     uint64
	target string
}

// Bus routes events to the handlers subscribed for their target.
type Bus struct {
	next     uint64
	handlers map[string]map[uint64]Handler
	order    map[string][]uint64
}

// NewBus returns an empty Bus.
func NewBus() *Bus {
	return &Bus{
		handlers: map[string]map[uint64]Handler{},
		order:    map[string][]uint64{},
	}
}

// Subscribe binds h to target.
func (b *Bus) Subscribe(target string, h Handler) Subscription {
	b.next++
	if b.handlers[target] == nil {
		b.handlers[target] = map[uint64]Handler{}
	}
	b.handlers[target][b.next] = h
	b.order[target] = append(b.order[target], b.next)
	return Subscription{id: b.next, target: target}
}

// Unsubscribe removes a binding. Unknown subscriptions are ignored.
func (b *Bus) Unsubscribe(sub Subscription) {
	hs, ok := b.handlers[sub.target]
	if !ok {
		return
	}
	delete(hs, sub.id)
	ids := b.order[sub.target]
	for i, id := range ids {
		if id == sub.id {
			b.order[sub.target] = append(ids[:i:i], ids[i+1:]...)
			break
		}
	}
	if len(hs) == 0 {
		delete(b.handlers, sub.target)
		delete(b.order, sub.target)
	}
}

// Dispatch calls every handler bound to ev.Target in subscription order and
// reports whether any was bound. Handlers may (un)subscribe while running;
// the set of handlers called is fixed when Dispatch starts.
func (b *Bus) Dispatch(ev Event) (bool, error) {
	ids := append([]uint64(nil), b.order[ev.Target]...)
	if len(ids) == 0 {
		return false, nil
	}
	hs := b.handlers[ev.Target]
	calls := make([]Handler, 0, len(ids))
	for _, id := range ids {
		calls = append(calls, hs[id])
	}
	for _, h := range calls {
		if err := h(ev); err != nil {
			return true, err
		}
	}
	return true, nil
}

// Len returns the number of bound handlers.
func (b *Bus) Len() int {
	n := 0
	for _, hs := range b.handlers {
		n += len(hs)
	}
	return n
}

// Bound reports how many handlers are bound to target.
func (b *Bus) Bound(target string) int {
	return len(b.handlers[target])
}
