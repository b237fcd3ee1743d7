// Package events defines the normalized input events consumed by the toolkit
// and the queue external producers use to hand them into the frame loop.
package events

import (
	"sync"
	"time"

	"github.com/lumina-ui/lumina/pkg/graphics"
)

// Kind identifies the type of an input event.
type Kind int

const (
	KindPointerMove Kind = iota
	KindPointerDown
	KindPointerUp
	// KindScroll is a wheel or trackpad scroll at a pointer position.
	KindScroll
	KindKeyDown
	KindKeyUp
	// KindClick is synthesized by the dispatcher when a press and release
	// both land inside the same widget. It never arrives from the platform.
	KindClick
	// KindPointerEnter and KindPointerLeave are synthesized by the
	// dispatcher as the hovered widget changes.
	KindPointerEnter
	KindPointerLeave
)

// String returns a human-readable representation of the event kind.
func (k Kind) String() string {
	switch k {
	case KindPointerMove:
		return "pointer_move"
	case KindPointerDown:
		return "pointer_down"
	case KindPointerUp:
		return "pointer_up"
	case KindScroll:
		return "scroll"
	case KindKeyDown:
		return "key_down"
	case KindKeyUp:
		return "key_up"
	case KindClick:
		return "click"
	case KindPointerEnter:
		return "pointer_enter"
	case KindPointerLeave:
		return "pointer_leave"
	default:
		return "unknown"
	}
}

// IsPointer reports whether the event carries a pointer position.
func (k Kind) IsPointer() bool {
	switch k {
	case KindPointerMove, KindPointerDown, KindPointerUp, KindScroll,
		KindClick, KindPointerEnter, KindPointerLeave:
		return true
	default:
		return false
	}
}

// Event is a normalized input event. The input source guarantees
// monotonically increasing timestamps within one stream.
type Event struct {
	Kind      Kind
	Timestamp time.Time

	// Position is the pointer location in root coordinates, for pointer kinds.
	Position graphics.Offset

	// Delta is the scroll distance in logical pixels, for KindScroll.
	Delta graphics.Offset

	// Key is the logical key name, for key kinds (e.g. "a", "enter",
	// "backspace", "left").
	Key string

	// Rune is the text produced by a key press, zero when none.
	Rune rune
}

// Queue is the hand-off point between external event producers and the
// frame loop. Push may be called from any goroutine; Drain must only be
// called from the frame-loop thread.
type Queue struct {
	mu     sync.Mutex
	events []Event
}

// Push appends an event for the next frame.
func (q *Queue) Push(e Event) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.events = append(q.events, e)
}

// Drain removes and returns all pending events in arrival order.
func (q *Queue) Drain() []Event {
	q.mu.Lock()
	defer q.mu.Unlock()
	events := q.events
	q.events = nil
	return events
}

// Len returns the number of pending events.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.events)
}
