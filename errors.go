package libemitter

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	ErrListenerPanic = errors.New("listener panicked")
)

// ErrListenerFailed describes a listener failure swallowed by a fire-and-forget emission.
type ErrListenerFailed struct {
	err      error
	event    any
	listener string
}

func (e ErrListenerFailed) Error() string {
	return fmt.Sprintf("listener %s failed on event %v: %s", e.listener, e.event, e.err)
}

func (e ErrListenerFailed) Unwrap() error { return e.err }

func WrapErrorListenerFailed(err error, event any, listener string) *ErrListenerFailed {
	if err == nil {
		return nil
	}
	return &ErrListenerFailed{
		err:      err,
		event:    event,
		listener: listener,
	}
}

func panicError(listener string, recovered any) error {
	if err, ok := recovered.(error); ok {
		return errors.Wrapf(ErrListenerPanic, "listener %s: %s", listener, err)
	}
	return errors.Wrapf(ErrListenerPanic, "listener %s: %v", listener, recovered)
}
