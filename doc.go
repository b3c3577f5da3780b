// Package libemitter implements an in-process, typed publish/subscribe
// registry. Listeners are registered against event names and triggered either
// fire-and-forget or by awaiting all of them and collecting their results.
//
//	type greet struct{ Name string }
//
//	e := libemitter.NewEmitter[string, greet, string]()
//	hello := libemitter.NewListener[greet, string](func(ctx context.Context, g greet) (string, error) {
//		return "hello " + g.Name, nil
//	})
//	e.On("greet", hello).Once("greet", hello)
//
//	e.Emit(ctx, "greet", greet{Name: "ana"}) // true, listeners run on their own goroutines
//	msg, ok, err := e.EmitAndGetReturnValue(ctx, "greet", greet{Name: "bob"})
//
// Go functions cannot be compared, so a *Listener is both the registration and
// the key passed to RemoveListener.
package libemitter
