package rest

import (
	"context"
	"sync"

	"github.com/istpublications/intake-backend/internal/domain"
	"github.com/istpublications/intake-backend/internal/service/submission"
)

var _ submissionService = &submissionServiceMock{}

type submissionServiceMock struct {
	CreateFunc   func(ctx context.Context, input submission.CreateInput) (*domain.Submission, error)
	SaveStepFunc func(ctx context.Context, id string, input submission.StepInput) (*domain.Submission, error)
	FinalizeFunc func(ctx context.Context, id string) (*domain.Submission, error)
	GetFunc      func(ctx context.Context, id string) (*domain.Submission, error)
	NotifyFunc   func(ctx context.Context, id string, input submission.NotifyInput) (*domain.EmailLog, error)

	calls struct {
		Create []struct {
			Ctx   context.Context
			Input submission.CreateInput
		}
		SaveStep []struct {
			Ctx   context.Context
			ID    string
			Input submission.StepInput
		}
		Finalize []struct {
			Ctx context.Context
			ID  string
		}
		Get []struct {
			Ctx context.Context
			ID  string
		}
		Notify []struct {
			Ctx   context.Context
			ID    string
			Input submission.NotifyInput
		}
	}
	lockCreate   sync.RWMutex
	lockSaveStep sync.RWMutex
	lockFinalize sync.RWMutex
	lockGet      sync.RWMutex
	lockNotify   sync.RWMutex
}

func (mock *submissionServiceMock) Create(ctx context.Context, input submission.CreateInput) (*domain.Submission, error) {
	if mock.CreateFunc == nil {
		panic("submissionServiceMock.CreateFunc: method is nil but submissionService.Create was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input submission.CreateInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, input)
}

func (mock *submissionServiceMock) CreateCalls() []struct {
	Ctx   context.Context
	Input submission.CreateInput
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *submissionServiceMock) SaveStep(ctx context.Context, id string, input submission.StepInput) (*domain.Submission, error) {
	if mock.SaveStepFunc == nil {
		panic("submissionServiceMock.SaveStepFunc: method is nil but submissionService.SaveStep was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		ID    string
		Input submission.StepInput
	}{
		Ctx:   ctx,
		ID:    id,
		Input: input,
	}
	mock.lockSaveStep.Lock()
	mock.calls.SaveStep = append(mock.calls.SaveStep, callInfo)
	mock.lockSaveStep.Unlock()
	return mock.SaveStepFunc(ctx, id, input)
}

func (mock *submissionServiceMock) SaveStepCalls() []struct {
	Ctx   context.Context
	ID    string
	Input submission.StepInput
} {
	mock.lockSaveStep.RLock()
	calls := mock.calls.SaveStep
	mock.lockSaveStep.RUnlock()
	return calls
}

func (mock *submissionServiceMock) Finalize(ctx context.Context, id string) (*domain.Submission, error) {
	if mock.FinalizeFunc == nil {
		panic("submissionServiceMock.FinalizeFunc: method is nil but submissionService.Finalize was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  string
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockFinalize.Lock()
	mock.calls.Finalize = append(mock.calls.Finalize, callInfo)
	mock.lockFinalize.Unlock()
	return mock.FinalizeFunc(ctx, id)
}

func (mock *submissionServiceMock) FinalizeCalls() []struct {
	Ctx context.Context
	ID  string
} {
	mock.lockFinalize.RLock()
	calls := mock.calls.Finalize
	mock.lockFinalize.RUnlock()
	return calls
}

func (mock *submissionServiceMock) Get(ctx context.Context, id string) (*domain.Submission, error) {
	if mock.GetFunc == nil {
		panic("submissionServiceMock.GetFunc: method is nil but submissionService.Get was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  string
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, id)
}

func (mock *submissionServiceMock) GetCalls() []struct {
	Ctx context.Context
	ID  string
} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *submissionServiceMock) Notify(ctx context.Context, id string, input submission.NotifyInput) (*domain.EmailLog, error) {
	if mock.NotifyFunc == nil {
		panic("submissionServiceMock.NotifyFunc: method is nil but submissionService.Notify was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		ID    string
		Input submission.NotifyInput
	}{
		Ctx:   ctx,
		ID:    id,
		Input: input,
	}
	mock.lockNotify.Lock()
	mock.calls.Notify = append(mock.calls.Notify, callInfo)
	mock.lockNotify.Unlock()
	return mock.NotifyFunc(ctx, id, input)
}

func (mock *submissionServiceMock) NotifyCalls() []struct {
	Ctx   context.Context
	ID    string
	Input submission.NotifyInput
} {
	mock.lockNotify.RLock()
	calls := mock.calls.Notify
	mock.lockNotify.RUnlock()
	return calls
}
