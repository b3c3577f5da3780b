package libemitter

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type mockHandler[A, R any] struct {
	mock.Mock

	tapHandle func(A)
}

func (m *mockHandler[A, R]) Handle(ctx context.Context, args A) (R, error) {
	if m.tapHandle != nil {
		defer m.tapHandle(args)
	}
	ret := m.Called(args)

	var r R
	if v := ret.Get(0); v != nil {
		r = v.(R)
	}
	return r, ret.Error(1)
}

func (m *mockHandler[A, R]) listener() *Listener[A, R] {
	return NewListener[A, R](m.Handle)
}
