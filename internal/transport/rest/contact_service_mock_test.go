package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/istpublications/intake-backend/internal/domain"
	"github.com/istpublications/intake-backend/internal/service/contact"
)

var _ contactService = &contactServiceMock{}

type contactServiceMock struct {
	CreateFunc func(ctx context.Context, input contact.CreateInput) (*domain.ContactMessage, error)
	ReplyFunc  func(ctx context.Context, id uuid.UUID, input contact.ReplyInput) (*domain.EmailLog, error)

	calls struct {
		Create []struct {
			Ctx   context.Context
			Input contact.CreateInput
		}
		Reply []struct {
			Ctx   context.Context
			ID    uuid.UUID
			Input contact.ReplyInput
		}
	}
	lockCreate sync.RWMutex
	lockReply  sync.RWMutex
}

func (mock *contactServiceMock) Create(ctx context.Context, input contact.CreateInput) (*domain.ContactMessage, error) {
	if mock.CreateFunc == nil {
		panic("contactServiceMock.CreateFunc: method is nil but contactService.Create was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input contact.CreateInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, input)
}

func (mock *contactServiceMock) CreateCalls() []struct {
	Ctx   context.Context
	Input contact.CreateInput
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *contactServiceMock) Reply(ctx context.Context, id uuid.UUID, input contact.ReplyInput) (*domain.EmailLog, error) {
	if mock.ReplyFunc == nil {
		panic("contactServiceMock.ReplyFunc: method is nil but contactService.Reply was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		ID    uuid.UUID
		Input contact.ReplyInput
	}{
		Ctx:   ctx,
		ID:    id,
		Input: input,
	}
	mock.lockReply.Lock()
	mock.calls.Reply = append(mock.calls.Reply, callInfo)
	mock.lockReply.Unlock()
	return mock.ReplyFunc(ctx, id, input)
}

func (mock *contactServiceMock) ReplyCalls() []struct {
	Ctx   context.Context
	ID    uuid.UUID
	Input contact.ReplyInput
} {
	mock.lockReply.RLock()
	calls := mock.calls.Reply
	mock.lockReply.RUnlock()
	return calls
}
