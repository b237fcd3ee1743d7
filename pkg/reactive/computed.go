package reactive

import (
	stderrors "errors"

	"github.com/lumina-ui/lumina/pkg/errors"
)

// Computed is a read-only cell derived from one or more source cells.
//
// The derivation runs lazily: a read compares each source's generation
// counter against the generation recorded at the last computation and only
// re-derives when one has advanced. Source notifications are forwarded to
// this cell's own subscribers without triggering a recomputation; dependents
// learn they are potentially stale and re-read when they care.
type Computed[T any] struct {
	fn         func() T
	eq         func(a, b T) bool
	sources    []Source
	sourceSubs []*Subscription
	sourceGens []uint64
	cached     T
	valid      bool
	gen        uint64
	subs       []*Subscription
	disposed   bool
}

// NewComputed creates a computed cell for a comparable value type.
// The derivation function must be pure over the listed sources.
// Returns a KindCycle error if a source's dependency chain already reaches
// back to this cell; on failure no subscriptions are registered.
func NewComputed[T comparable](fn func() T, sources ...Source) (*Computed[T], error) {
	return newComputed(fn, func(a, b T) bool { return a == b }, sources)
}

// NewComputedFunc creates a computed cell with an explicit equality function
// gating generation advances. A nil eq treats every recomputation as a change.
func NewComputedFunc[T any](fn func() T, eq func(a, b T) bool, sources ...Source) (*Computed[T], error) {
	return newComputed(fn, eq, sources)
}

func newComputed[T any](fn func() T, eq func(a, b T) bool, sources []Source) (*Computed[T], error) {
	if fn == nil {
		return nil, errors.New("reactive.NewComputed", errors.KindUnknown,
			stderrors.New("derivation function required"))
	}
	c := &Computed[T]{fn: fn, eq: eq}
	for _, src := range sources {
		if err := c.AddSource(src); err != nil {
			c.Dispose()
			return nil, err
		}
	}
	return c, nil
}

// AddSource registers an additional dependency edge. The edge is rejected
// with a KindCycle error when src can already reach this cell through its
// own dependencies, leaving no partial registration behind. Duplicate
// sources are no-ops.
func (c *Computed[T]) AddSource(src Source) error {
	if c.disposed {
		err := errors.New("reactive.Computed.AddSource", errors.KindDispose,
			stderrors.New("edge added to disposed cell"))
		errors.Report(err)
		return err
	}
	if src == nil {
		return errors.New("reactive.Computed.AddSource", errors.KindUnknown,
			stderrors.New("nil source"))
	}
	for _, existing := range c.sources {
		if existing == src {
			return nil
		}
	}
	if reaches(src, c) {
		err := errors.New("reactive.Computed.AddSource", errors.KindCycle,
			stderrors.New("dependency cycle"))
		errors.Report(err)
		return err
	}
	sub := src.addSubscriber(c.forward)
	c.sources = append(c.sources, src)
	c.sourceSubs = append(c.sourceSubs, sub)
	c.sourceGens = append(c.sourceGens, 0)
	c.valid = false
	return nil
}

// reaches reports whether target is reachable from src through dependency
// edges, including src itself.
func reaches(src Source, target Source) bool {
	if src == target {
		return true
	}
	for _, dep := range src.dependencies() {
		if reaches(dep, target) {
			return true
		}
	}
	return false
}

// forward relays a source notification to this cell's subscribers without
// recomputing. Dependents re-read lazily.
func (c *Computed[T]) forward() {
	if c.disposed {
		return
	}
	snapshot := make([]*Subscription, len(c.subs))
	copy(snapshot, c.subs)
	for _, sub := range snapshot {
		if sub.disposed || sub.fn == nil {
			continue
		}
		sub.fn()
	}
}

// Get returns the current derived value, recomputing first if any source
// changed since the last computation. Stale computed sources are resolved
// depth-first, so the derivation always observes settled inputs.
func (c *Computed[T]) Get() T {
	c.resolve()
	return c.cached
}

func (c *Computed[T]) resolve() {
	if c.disposed {
		return
	}
	stale := !c.valid
	for i, src := range c.sources {
		src.resolve()
		if src.Generation() != c.sourceGens[i] {
			stale = true
		}
	}
	if !stale {
		return
	}
	value := c.fn()
	for i, src := range c.sources {
		c.sourceGens[i] = src.Generation()
	}
	changed := !c.valid || c.eq == nil || !c.eq(c.cached, value)
	c.cached = value
	c.valid = true
	if changed {
		c.gen++
	}
}

// Generation returns the monotonic change counter. It advances only when a
// recomputation produces a value unequal to the cached one.
func (c *Computed[T]) Generation() uint64 {
	return c.gen
}

// Subscribe registers a callback invoked whenever a source changes.
// The callback signals potential staleness; call Get to resolve it.
func (c *Computed[T]) Subscribe(fn func()) *Subscription {
	return c.addSubscriber(fn)
}

func (c *Computed[T]) addSubscriber(fn func()) *Subscription {
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

// Dispose unsubscribes from all sources and drops all subscribers.
func (c *Computed[T]) Dispose() {
	if c.disposed {
		return
	}
	c.disposed = true
	for _, sub := range c.sourceSubs {
		sub.Dispose()
	}
	c.sourceSubs = nil
	c.sources = nil
	c.sourceGens = nil
	for _, sub := range c.subs {
		sub.disposed = true
		sub.remove = nil
		sub.fn = nil
	}
	c.subs = nil
}

// IsDisposed reports whether the cell has been disposed.
func (c *Computed[T]) IsDisposed() bool {
	return c.disposed
}

func (c *Computed[T]) dependencies() []Source {
	return c.sources
}
