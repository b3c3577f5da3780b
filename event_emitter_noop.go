package libemitter

import "context"

type (
	// Publisher is the fire-and-forget side of an emitter, for components that
	// only need to notify.
	Publisher[K comparable, A any] interface {
		// Emit launches every listener of the event and reports whether there was any.
		Emit(ctx context.Context, event K, args A) bool
	}

	// Requester is the collect-and-await side of an emitter.
	Requester[K comparable, A, R any] interface {
		// EmitAndGetAllReturnValues waits for every listener of the event and returns their results in order.
		EmitAndGetAllReturnValues(ctx context.Context, event K, args A) ([]ReturnValue[R], error)

		// EmitAndGetReturnValue waits for every listener of the event and returns the first defined result.
		EmitAndGetReturnValue(ctx context.Context, event K, args A) (R, bool, error)
	}

	// NoopEmitter satisfies Publisher and Requester as if no listener was ever registered.
	NoopEmitter[K comparable, A, R any] struct{}
)

var (
	_ Publisher[string, any]      = (*Emitter[string, any, any])(nil)
	_ Requester[string, any, any] = (*Emitter[string, any, any])(nil)
	_ Publisher[string, any]      = NoopEmitter[string, any, any]{}
	_ Requester[string, any, any] = NoopEmitter[string, any, any]{}
)

func (NoopEmitter[K, A, R]) Emit(context.Context, K, A) bool { return false }

func (NoopEmitter[K, A, R]) EmitAndGetAllReturnValues(context.Context, K, A) ([]ReturnValue[R], error) {
	return nil, nil
}

func (NoopEmitter[K, A, R]) EmitAndGetReturnValue(context.Context, K, A) (r R, ok bool, err error) {
	return
}
