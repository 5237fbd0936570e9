package email

import (
	"context"
	"sync"

	"github.com/istpublications/intake-backend/internal/domain"
)

var _ transport = &transportMock{}

type transportMock struct {
	DeliverFunc func(ctx context.Context, msg domain.OutgoingEmail) error

	calls struct {
		Deliver []struct {
			Ctx context.Context
			Msg domain.OutgoingEmail
		}
	}
	lockDeliver sync.RWMutex
}

func (mock *transportMock) Deliver(ctx context.Context, msg domain.OutgoingEmail) error {
	if mock.DeliverFunc == nil {
		panic("transportMock.DeliverFunc: method is nil but transport.Deliver was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Msg domain.OutgoingEmail
	}{
		Ctx: ctx,
		Msg: msg,
	}
	mock.lockDeliver.Lock()
	mock.calls.Deliver = append(mock.calls.Deliver, callInfo)
	mock.lockDeliver.Unlock()
	return mock.DeliverFunc(ctx, msg)
}

func (mock *transportMock) DeliverCalls() []struct {
	Ctx context.Context
	Msg domain.OutgoingEmail
} {
	mock.lockDeliver.RLock()
	calls := mock.calls.Deliver
	mock.lockDeliver.RUnlock()
	return calls
}
