package libemitter

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"
)

// Emitter maps events (of type K) to ordered lists of listeners. Every listener
// receives an argument of type A and may produce a result of type R.
type Emitter[K comparable, A, R any] struct {
	listeners map[K][]*Listener[A, R]
	// events keeps keys in first-registration order
	events  []K
	lock    sync.RWMutex
	logger  Logger
	metrics *Metrics
}

// NewEmitter creates a new Emitter with an empty registration table and returns a pointer to it.
func NewEmitter[K comparable, A, R any](opts ...Option) *Emitter[K, A, R] {
	o := newOptions(opts...)

	return &Emitter[K, A, R]{
		listeners: make(map[K][]*Listener[A, R]),
		logger:    o.logger.WithField("component", "emitter"),
		metrics:   o.metrics,
	}
}

// track must be called with the write lock held.
func (e *Emitter[K, A, R]) track(event K) {
	if _, ok := e.listeners[event]; !ok {
		e.listeners[event] = nil
		e.events = append(e.events, event)
	}
}

// AddListener appends listener to the end of the event's listener list. A nil
// listener is ignored.
func (e *Emitter[K, A, R]) AddListener(event K, listener *Listener[A, R]) *Emitter[K, A, R] {
	if listener == nil {
		return e
	}

	e.lock.Lock()
	e.track(event)
	e.listeners[event] = append(e.listeners[event], listener)
	e.lock.Unlock()

	e.logger.
		WithField("event", event).
		WithField("listener", listener.ID()).
		Debug("listener added")

	return e
}

// On is an alias of AddListener.
func (e *Emitter[K, A, R]) On(event K, listener *Listener[A, R]) *Emitter[K, A, R] {
	return e.AddListener(event, listener)
}

// PrependListener inserts listener at the head of the event's listener list. A
// nil listener is ignored.
func (e *Emitter[K, A, R]) PrependListener(event K, listener *Listener[A, R]) *Emitter[K, A, R] {
	if listener == nil {
		return e
	}

	e.lock.Lock()
	e.track(event)
	current := e.listeners[event]
	bucket := make([]*Listener[A, R], 0, len(current)+1)
	bucket = append(bucket, listener)
	e.listeners[event] = append(bucket, current...)
	e.lock.Unlock()

	e.logger.
		WithField("event", event).
		WithField("listener", listener.ID()).
		Debug("listener prepended")

	return e
}

// Once registers a fresh wrapper around listener which removes itself from the
// event before its first and only invocation.
func (e *Emitter[K, A, R]) Once(event K, listener *Listener[A, R]) *Emitter[K, A, R] {
	if listener == nil {
		return e
	}
	return e.AddListener(event, e.onceWrapper(event, listener))
}

// PrependOnceListener is Once, inserting the wrapper at the head of the list.
func (e *Emitter[K, A, R]) PrependOnceListener(event K, listener *Listener[A, R]) *Emitter[K, A, R] {
	if listener == nil {
		return e
	}
	return e.PrependListener(event, e.onceWrapper(event, listener))
}

func (e *Emitter[K, A, R]) onceWrapper(event K, listener *Listener[A, R]) *Listener[A, R] {
	return listener.wrapOnce(func(self *Listener[A, R]) bool {
		return e.removeOne(event, self)
	})
}

// removeOne drops the first entry of listener for the event and reports
// whether there was one.
func (e *Emitter[K, A, R]) removeOne(event K, listener *Listener[A, R]) bool {
	e.lock.Lock()
	defer e.lock.Unlock()

	current := e.listeners[event]
	for i, l := range current {
		if l != listener {
			continue
		}
		kept := make([]*Listener[A, R], 0, len(current)-1)
		kept = append(kept, current[:i]...)
		e.listeners[event] = append(kept, current[i+1:]...)
		return true
	}
	return false
}

// RemoveListener removes every registration of listener for the event. Unknown
// events and listeners are ignored.
func (e *Emitter[K, A, R]) RemoveListener(event K, listener *Listener[A, R]) *Emitter[K, A, R] {
	e.lock.Lock()
	defer e.lock.Unlock()

	current, ok := e.listeners[event]
	if !ok || len(current) == 0 {
		return e
	}

	kept := make([]*Listener[A, R], 0, len(current))
	for _, l := range current {
		if l != listener {
			kept = append(kept, l)
		}
	}
	e.listeners[event] = kept

	return e
}

// RemoveAllListeners empties the event's listener list. The event stays known
// and keeps its position in EventNames.
func (e *Emitter[K, A, R]) RemoveAllListeners(event K) *Emitter[K, A, R] {
	e.lock.Lock()
	e.track(event)
	e.listeners[event] = []*Listener[A, R]{}
	e.lock.Unlock()

	e.logger.WithField("event", event).Debug("all listeners removed")

	return e
}

// Listeners returns a snapshot of the listeners registered for the event.
func (e *Emitter[K, A, R]) Listeners(event K) []*Listener[A, R] {
	return e.snapshot(event)
}

// AllListeners returns the listeners of every known event, visiting events in
// first-registration order and keeping per-event order.
func (e *Emitter[K, A, R]) AllListeners() []*Listener[A, R] {
	e.lock.RLock()
	defer e.lock.RUnlock()

	var n int
	for _, event := range e.events {
		n += len(e.listeners[event])
	}

	all := make([]*Listener[A, R], 0, n)
	for _, event := range e.events {
		all = append(all, e.listeners[event]...)
	}
	return all
}

// ListenerCount returns the number of listeners currently registered for the event.
func (e *Emitter[K, A, R]) ListenerCount(event K) int {
	e.lock.RLock()
	defer e.lock.RUnlock()

	return len(e.listeners[event])
}

// EventNames returns every known event, including those emptied by
// RemoveAllListeners, in first-registration order.
func (e *Emitter[K, A, R]) EventNames() []K {
	e.lock.RLock()
	defer e.lock.RUnlock()

	names := make([]K, len(e.events))
	copy(names, e.events)
	return names
}

func (e *Emitter[K, A, R]) snapshot(event K) []*Listener[A, R] {
	e.lock.RLock()
	defer e.lock.RUnlock()

	current := e.listeners[event]
	listeners := make([]*Listener[A, R], len(current))
	copy(listeners, current)
	return listeners
}

// Emit launches every listener registered for the event on its own goroutine
// and returns without waiting for them. Listener errors and panics are logged,
// never returned. Listeners run with a context that is not canceled along with ctx.
// Emit returns false when the event has no listeners.
func (e *Emitter[K, A, R]) Emit(ctx context.Context, event K, args A) bool {
	listeners := e.snapshot(event)
	if len(listeners) == 0 {
		return false
	}

	e.metrics.emitted(modeEmit)

	detached := context.WithoutCancel(ctx)
	for _, l := range listeners {
		if !l.acquire() {
			continue
		}
		go e.fire(detached, event, l, args)
	}

	return true
}

func (e *Emitter[K, A, R]) fire(ctx context.Context, event K, l *Listener[A, R], args A) {
	e.metrics.invoked(modeEmit)

	if _, err := l.invoke(ctx, args); err != nil {
		e.metrics.failed(modeEmit)
		e.logger.
			WithField("event", event).
			WithField("listener", l.ID()).
			Warnf("%s", WrapErrorListenerFailed(err, event, l.ID()))
	}
}

// EmitAndGetAllReturnValues runs every listener registered for the event
// concurrently, waits for all of them and returns their results in listener
// order. It returns a nil slice when the event has no listeners. If any listener
// fails, the first failure observed is returned and no results are.
func (e *Emitter[K, A, R]) EmitAndGetAllReturnValues(ctx context.Context, event K, args A) ([]ReturnValue[R], error) {
	listeners := e.snapshot(event)
	if len(listeners) == 0 {
		return nil, nil
	}

	e.metrics.emitted(modeCollect)

	var (
		g       errgroup.Group
		results = make([]ReturnValue[R], len(listeners))
	)

	for i, l := range listeners {
		if !l.acquire() {
			continue
		}
		g.Go(func() error {
			e.metrics.invoked(modeCollect)

			rv, err := l.invoke(ctx, args)
			if err != nil {
				e.metrics.failed(modeCollect)
				return err
			}
			results[i] = rv
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		e.logger.WithField("event", event).Debugf("collecting return values failed: %s", err)
		return nil, err
	}

	return results, nil
}

// EmitAndGetReturnValue behaves like EmitAndGetAllReturnValues and returns the
// first defined result in listener order. ok is false when no listener produced
// a value or the event has no listeners.
func (e *Emitter[K, A, R]) EmitAndGetReturnValue(ctx context.Context, event K, args A) (value R, ok bool, err error) {
	values, err := e.EmitAndGetAllReturnValues(ctx, event, args)
	if err != nil {
		return value, false, err
	}

	value, ok = FirstDefined(values)
	return value, ok, nil
}
