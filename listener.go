package libemitter

import (
	"context"

	"github.com/google/uuid"
)

type (
	// Handler is a listener body returning a value.
	Handler[A, R any] func(ctx context.Context, args A) (R, error)

	// VoidHandler is a listener body returning nothing.
	VoidHandler[A any] func(ctx context.Context, args A) error

	// Listener is the registration handle of a handler. Listeners are compared by
	// pointer identity, so registering the same *Listener twice creates two
	// entries and RemoveListener drops both.
	Listener[A, R any] struct {
		id   string
		call func(ctx context.Context, args A) (ReturnValue[R], error)

		// once listeners detach one of their entries from the emitter before
		// calling through. detach reports whether an entry was still registered.
		once   bool
		detach func() bool
	}
)

// NewListener creates a listener whose handler result is collected as a defined value.
func NewListener[A, R any](fn Handler[A, R]) *Listener[A, R] {
	return &Listener[A, R]{
		id: uuid.NewString(),
		call: func(ctx context.Context, args A) (ReturnValue[R], error) {
			v, err := fn(ctx, args)
			if err != nil {
				return ReturnValue[R]{}, err
			}
			return Defined(v), nil
		},
	}
}

// NewVoidListener creates a listener that contributes an undefined value to collected results.
func NewVoidListener[A, R any](fn VoidHandler[A]) *Listener[A, R] {
	return &Listener[A, R]{
		id: uuid.NewString(),
		call: func(ctx context.Context, args A) (ReturnValue[R], error) {
			return ReturnValue[R]{}, fn(ctx, args)
		},
	}
}

// ID returns a unique identifier for the listener, used in log fields.
func (l *Listener[A, R]) ID() string {
	return l.id
}

// IsOnce reports whether the listener was registered through Once or PrependOnceListener.
func (l *Listener[A, R]) IsOnce() bool {
	return l.once
}

// Call invokes the listener outside of an emission. A once listener first
// detaches one of its entries from the emitter, if any is left, and always
// calls through.
func (l *Listener[A, R]) Call(ctx context.Context, args A) (ReturnValue[R], error) {
	if l.once {
		l.detach()
	}
	return l.invoke(ctx, args)
}

func (l *Listener[A, R]) wrapOnce(detach func(*Listener[A, R]) bool) *Listener[A, R] {
	w := &Listener[A, R]{
		id:   uuid.NewString(),
		call: l.call,
		once: true,
	}
	w.detach = func() bool { return detach(w) }
	return w
}

// acquire must run synchronously in the emitting goroutine, before the
// handler is scheduled. Each snapshot entry of a once listener claims one
// registered entry; an entry already claimed by an overlapping emission is
// skipped. Adding the listener again re-arms it.
func (l *Listener[A, R]) acquire() bool {
	if !l.once {
		return true
	}
	return l.detach()
}

func (l *Listener[A, R]) invoke(ctx context.Context, args A) (rv ReturnValue[R], err error) {
	defer func() {
		if r := recover(); r != nil {
			rv = ReturnValue[R]{}
			err = panicError(l.id, r)
		}
	}()

	return l.call(ctx, args)
}
