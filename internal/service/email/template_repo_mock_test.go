package email

import (
	"context"
	"sync"

	"github.com/istpublications/intake-backend/internal/domain"
)

var _ templateRepo = &templateRepoMock{}

type templateRepoMock struct {
	GetActiveByTypeFunc func(ctx context.Context, t domain.EmailType) (*domain.EmailTemplate, error)
	UpsertByNameFunc    func(ctx context.Context, t *domain.EmailTemplate) (*domain.EmailTemplate, error)
	ListFunc            func(ctx context.Context) ([]domain.EmailTemplate, error)

	calls struct {
		GetActiveByType []struct {
			Ctx context.Context
			T   domain.EmailType
		}
		UpsertByName []struct {
			Ctx context.Context
			T   *domain.EmailTemplate
		}
		List []struct {
			Ctx context.Context
		}
	}
	lockGetActiveByType sync.RWMutex
	lockUpsertByName    sync.RWMutex
	lockList            sync.RWMutex
}

func (mock *templateRepoMock) GetActiveByType(ctx context.Context, t domain.EmailType) (*domain.EmailTemplate, error) {
	if mock.GetActiveByTypeFunc == nil {
		panic("templateRepoMock.GetActiveByTypeFunc: method is nil but templateRepo.GetActiveByType was just called")
	}
	callInfo := struct {
		Ctx context.Context
		T   domain.EmailType
	}{
		Ctx: ctx,
		T:   t,
	}
	mock.lockGetActiveByType.Lock()
	mock.calls.GetActiveByType = append(mock.calls.GetActiveByType, callInfo)
	mock.lockGetActiveByType.Unlock()
	return mock.GetActiveByTypeFunc(ctx, t)
}

func (mock *templateRepoMock) GetActiveByTypeCalls() []struct {
	Ctx context.Context
	T   domain.EmailType
} {
	mock.lockGetActiveByType.RLock()
	calls := mock.calls.GetActiveByType
	mock.lockGetActiveByType.RUnlock()
	return calls
}

func (mock *templateRepoMock) UpsertByName(ctx context.Context, t *domain.EmailTemplate) (*domain.EmailTemplate, error) {
	if mock.UpsertByNameFunc == nil {
		panic("templateRepoMock.UpsertByNameFunc: method is nil but templateRepo.UpsertByName was just called")
	}
	callInfo := struct {
		Ctx context.Context
		T   *domain.EmailTemplate
	}{
		Ctx: ctx,
		T:   t,
	}
	mock.lockUpsertByName.Lock()
	mock.calls.UpsertByName = append(mock.calls.UpsertByName, callInfo)
	mock.lockUpsertByName.Unlock()
	return mock.UpsertByNameFunc(ctx, t)
}

func (mock *templateRepoMock) UpsertByNameCalls() []struct {
	Ctx context.Context
	T   *domain.EmailTemplate
} {
	mock.lockUpsertByName.RLock()
	calls := mock.calls.UpsertByName
	mock.lockUpsertByName.RUnlock()
	return calls
}

func (mock *templateRepoMock) List(ctx context.Context) ([]domain.EmailTemplate, error) {
	if mock.ListFunc == nil {
		panic("templateRepoMock.ListFunc: method is nil but templateRepo.List was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx)
}

func (mock *templateRepoMock) ListCalls() []struct {
	Ctx context.Context
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}
