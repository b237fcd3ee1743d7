// Package reactive provides mutable cells and lazily derived computed cells.
//
// Cells are NOT thread-safe. Like the rest of the toolkit core they must only
// be accessed from the frame-loop thread; background goroutines hand values
// off via the engine's Dispatch.
//
// Equality policy: a write whose value equals the current value (by the
// equality chosen at construction) is a no-op for every cell type. Cells of
// comparable types use ==; cells of container or other non-comparable types
// must be built with NewCellFunc and an explicit equality function. The
// policy is never mixed per write.
package reactive

import (
	stderrors "errors"

	"github.com/lumina-ui/lumina/pkg/errors"
)

// Source is any cell a computed cell can depend on.
type Source interface {
	// Generation returns the monotonic change counter. It advances exactly
	// when the cell's value changes.
	Generation() uint64

	// resolve brings a lazily computed source up to date. No-op for plain cells.
	resolve()

	// dependencies returns the direct sources of a computed cell, nil for
	// plain cells. Used for cycle reachability checks at edge creation.
	dependencies() []Source

	// addSubscriber registers a no-argument notification callback.
	addSubscriber(fn func()) *Subscription
}

// Subscription is a handle to a registered callback. Disposing it removes
// exactly that registration; disposing twice is a no-op.
type Subscription struct {
	fn       func()
	disposed bool
	remove   func(*Subscription)
}

// Dispose removes the subscription. Idempotent. A subscription disposed
// during a notification pass will not be invoked later in that pass.
func (s *Subscription) Dispose() {
	if s == nil || s.disposed {
		return
	}
	s.disposed = true
	if s.remove != nil {
		s.remove(s)
		s.remove = nil
	}
	s.fn = nil
}

// Cell is a mutable holder of a value that notifies subscribers on change.
type Cell[T any] struct {
	value     T
	eq        func(a, b T) bool
	gen       uint64
	subs      []*Subscription
	disposed  bool
	notifying bool
	pending   []T
}

// NewCell creates a cell for a comparable value type. Writes are gated on ==.
func NewCell[T comparable](initial T) *Cell[T] {
	return &Cell[T]{
		value: initial,
		eq:    func(a, b T) bool { return a == b },
	}
}

// NewCellFunc creates a cell with an explicit equality function, for value
// types without a usable ==. A nil eq treats every write as a change.
func NewCellFunc[T any](initial T, eq func(a, b T) bool) *Cell[T] {
	return &Cell[T]{value: initial, eq: eq}
}

// Get returns the current value.
func (c *Cell[T]) Get() T {
	return c.value
}

// Generation returns the monotonic change counter.
func (c *Cell[T]) Generation() uint64 {
	return c.gen
}

// Set updates the value and synchronously notifies subscribers in
// subscription order before returning. An equal write is a no-op.
//
// A write issued from within a notification callback of this same cell is
// queued and processed after the outer notification completes, so callback
// chains run as a loop rather than growing the stack, and each change
// produces one consistent notification pass.
//
// Writing to a disposed cell reports and returns a KindDispose error and has
// no effect.
func (c *Cell[T]) Set(v T) error {
	if c.disposed {
		err := errors.New("reactive.Cell.Set", errors.KindDispose,
			stderrors.New("write to disposed cell"))
		errors.Report(err)
		return err
	}
	if c.notifying {
		c.pending = append(c.pending, v)
		return nil
	}
	c.apply(v)
	for len(c.pending) > 0 {
		next := c.pending[0]
		c.pending = c.pending[1:]
		if c.disposed {
			c.pending = nil
			break
		}
		c.apply(next)
	}
	return nil
}

func (c *Cell[T]) apply(v T) {
	if c.eq != nil && c.eq(c.value, v) {
		return
	}
	c.value = v
	c.gen++
	c.notify()
}

func (c *Cell[T]) notify() {
	c.notifying = true
	defer func() { c.notifying = false }()
	// Snapshot so callbacks that subscribe don't join this pass; disposed
	// entries are re-checked so mid-pass disposal removes pending delivery.
	snapshot := make([]*Subscription, len(c.subs))
	copy(snapshot, c.subs)
	for _, sub := range snapshot {
		if sub.disposed || sub.fn == nil {
			continue
		}
		sub.fn()
	}
}

// Subscribe registers a callback invoked after every value change.
// Callbacks run in subscription order.
func (c *Cell[T]) Subscribe(fn func()) *Subscription {
	return c.addSubscriber(fn)
}

func (c *Cell[T]) addSubscriber(fn func()) *Subscription {
	sub := &Subscription{fn: fn}
	sub.remove = func(s *Subscription) {
		for i, existing := range c.subs {
			if existing == s {
				c.subs = append(c.subs[:i], c.subs[i+1:]...)
				return
			}
		}
	}
	c.subs = append(c.subs, sub)
	return sub
}

// Dispose removes all subscriptions and any queued writes. Further writes
// fail with a KindDispose error; reads keep returning the last value.
func (c *Cell[T]) Dispose() {
	if c.disposed {
		return
	}
	c.disposed = true
	c.pending = nil
	for _, sub := range c.subs {
		sub.disposed = true
		sub.remove = nil
		sub.fn = nil
	}
	c.subs = nil
}

// IsDisposed reports whether the cell has been disposed.
func (c *Cell[T]) IsDisposed() bool {
	return c.disposed
}

func (c *Cell[T]) resolve() {}

func (c *Cell[T]) dependencies() []Source { return nil }
