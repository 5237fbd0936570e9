package email

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/istpublications/intake-backend/internal/domain"
)

var _ logRepo = &logRepoMock{}

type logRepoMock struct {
	CreateFunc             func(ctx context.Context, l *domain.EmailLog) error
	MarkSentFunc           func(ctx context.Context, id uuid.UUID, at time.Time) (*domain.EmailLog, error)
	MarkFailedFunc         func(ctx context.Context, id uuid.UUID, reason string, at time.Time) (*domain.EmailLog, error)
	IncrementRetryFunc     func(ctx context.Context, id uuid.UUID, maxRetries int, at time.Time) (*domain.EmailLog, error)
	MarkOpenedFunc         func(ctx context.Context, id uuid.UUID, at time.Time) (*domain.EmailLog, error)
	ListFailedForRetryFunc func(ctx context.Context, maxRetries int, limit int) ([]domain.EmailLog, error)
	CountsFunc             func(ctx context.Context, dayStart time.Time) (domain.EmailCounts, error)
	ListBySubmissionFunc   func(ctx context.Context, submissionID string) ([]domain.EmailLog, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			L   *domain.EmailLog
		}
		MarkSent []struct {
			Ctx context.Context
			ID  uuid.UUID
			At  time.Time
		}
		MarkFailed []struct {
			Ctx    context.Context
			ID     uuid.UUID
			Reason string
			At     time.Time
		}
		IncrementRetry []struct {
			Ctx        context.Context
			ID         uuid.UUID
			MaxRetries int
			At         time.Time
		}
		MarkOpened []struct {
			Ctx context.Context
			ID  uuid.UUID
			At  time.Time
		}
		ListFailedForRetry []struct {
			Ctx        context.Context
			MaxRetries int
			Limit      int
		}
		Counts []struct {
			Ctx      context.Context
			DayStart time.Time
		}
		ListBySubmission []struct {
			Ctx          context.Context
			SubmissionID string
		}
	}
	lockCreate             sync.RWMutex
	lockMarkSent           sync.RWMutex
	lockMarkFailed         sync.RWMutex
	lockIncrementRetry     sync.RWMutex
	lockMarkOpened         sync.RWMutex
	lockListFailedForRetry sync.RWMutex
	lockCounts             sync.RWMutex
	lockListBySubmission   sync.RWMutex
}

func (mock *logRepoMock) Create(ctx context.Context, l *domain.EmailLog) error {
	if mock.CreateFunc == nil {
		panic("logRepoMock.CreateFunc: method is nil but logRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		L   *domain.EmailLog
	}{
		Ctx: ctx,
		L:   l,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, l)
}

func (mock *logRepoMock) CreateCalls() []struct {
	Ctx context.Context
	L   *domain.EmailLog
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *logRepoMock) MarkSent(ctx context.Context, id uuid.UUID, at time.Time) (*domain.EmailLog, error) {
	if mock.MarkSentFunc == nil {
		panic("logRepoMock.MarkSentFunc: method is nil but logRepo.MarkSent was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
		At  time.Time
	}{
		Ctx: ctx,
		ID:  id,
		At:  at,
	}
	mock.lockMarkSent.Lock()
	mock.calls.MarkSent = append(mock.calls.MarkSent, callInfo)
	mock.lockMarkSent.Unlock()
	return mock.MarkSentFunc(ctx, id, at)
}

func (mock *logRepoMock) MarkSentCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
	At  time.Time
} {
	mock.lockMarkSent.RLock()
	calls := mock.calls.MarkSent
	mock.lockMarkSent.RUnlock()
	return calls
}

func (mock *logRepoMock) MarkFailed(ctx context.Context, id uuid.UUID, reason string, at time.Time) (*domain.EmailLog, error) {
	if mock.MarkFailedFunc == nil {
		panic("logRepoMock.MarkFailedFunc: method is nil but logRepo.MarkFailed was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		ID     uuid.UUID
		Reason string
		At     time.Time
	}{
		Ctx:    ctx,
		ID:     id,
		Reason: reason,
		At:     at,
	}
	mock.lockMarkFailed.Lock()
	mock.calls.MarkFailed = append(mock.calls.MarkFailed, callInfo)
	mock.lockMarkFailed.Unlock()
	return mock.MarkFailedFunc(ctx, id, reason, at)
}

func (mock *logRepoMock) MarkFailedCalls() []struct {
	Ctx    context.Context
	ID     uuid.UUID
	Reason string
	At     time.Time
} {
	mock.lockMarkFailed.RLock()
	calls := mock.calls.MarkFailed
	mock.lockMarkFailed.RUnlock()
	return calls
}

func (mock *logRepoMock) IncrementRetry(ctx context.Context, id uuid.UUID, maxRetries int, at time.Time) (*domain.EmailLog, error) {
	if mock.IncrementRetryFunc == nil {
		panic("logRepoMock.IncrementRetryFunc: method is nil but logRepo.IncrementRetry was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		ID         uuid.UUID
		MaxRetries int
		At         time.Time
	}{
		Ctx:        ctx,
		ID:         id,
		MaxRetries: maxRetries,
		At:         at,
	}
	mock.lockIncrementRetry.Lock()
	mock.calls.IncrementRetry = append(mock.calls.IncrementRetry, callInfo)
	mock.lockIncrementRetry.Unlock()
	return mock.IncrementRetryFunc(ctx, id, maxRetries, at)
}

func (mock *logRepoMock) IncrementRetryCalls() []struct {
	Ctx        context.Context
	ID         uuid.UUID
	MaxRetries int
	At         time.Time
} {
	mock.lockIncrementRetry.RLock()
	calls := mock.calls.IncrementRetry
	mock.lockIncrementRetry.RUnlock()
	return calls
}

func (mock *logRepoMock) MarkOpened(ctx context.Context, id uuid.UUID, at time.Time) (*domain.EmailLog, error) {
	if mock.MarkOpenedFunc == nil {
		panic("logRepoMock.MarkOpenedFunc: method is nil but logRepo.MarkOpened was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
		At  time.Time
	}{
		Ctx: ctx,
		ID:  id,
		At:  at,
	}
	mock.lockMarkOpened.Lock()
	mock.calls.MarkOpened = append(mock.calls.MarkOpened, callInfo)
	mock.lockMarkOpened.Unlock()
	return mock.MarkOpenedFunc(ctx, id, at)
}

func (mock *logRepoMock) MarkOpenedCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
	At  time.Time
} {
	mock.lockMarkOpened.RLock()
	calls := mock.calls.MarkOpened
	mock.lockMarkOpened.RUnlock()
	return calls
}

func (mock *logRepoMock) ListFailedForRetry(ctx context.Context, maxRetries int, limit int) ([]domain.EmailLog, error) {
	if mock.ListFailedForRetryFunc == nil {
		panic("logRepoMock.ListFailedForRetryFunc: method is nil but logRepo.ListFailedForRetry was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		MaxRetries int
		Limit      int
	}{
		Ctx:        ctx,
		MaxRetries: maxRetries,
		Limit:      limit,
	}
	mock.lockListFailedForRetry.Lock()
	mock.calls.ListFailedForRetry = append(mock.calls.ListFailedForRetry, callInfo)
	mock.lockListFailedForRetry.Unlock()
	return mock.ListFailedForRetryFunc(ctx, maxRetries, limit)
}

func (mock *logRepoMock) ListFailedForRetryCalls() []struct {
	Ctx        context.Context
	MaxRetries int
	Limit      int
} {
	mock.lockListFailedForRetry.RLock()
	calls := mock.calls.ListFailedForRetry
	mock.lockListFailedForRetry.RUnlock()
	return calls
}

func (mock *logRepoMock) Counts(ctx context.Context, dayStart time.Time) (domain.EmailCounts, error) {
	if mock.CountsFunc == nil {
		panic("logRepoMock.CountsFunc: method is nil but logRepo.Counts was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		DayStart time.Time
	}{
		Ctx:      ctx,
		DayStart: dayStart,
	}
	mock.lockCounts.Lock()
	mock.calls.Counts = append(mock.calls.Counts, callInfo)
	mock.lockCounts.Unlock()
	return mock.CountsFunc(ctx, dayStart)
}

func (mock *logRepoMock) CountsCalls() []struct {
	Ctx      context.Context
	DayStart time.Time
} {
	mock.lockCounts.RLock()
	calls := mock.calls.Counts
	mock.lockCounts.RUnlock()
	return calls
}

func (mock *logRepoMock) ListBySubmission(ctx context.Context, submissionID string) ([]domain.EmailLog, error) {
	if mock.ListBySubmissionFunc == nil {
		panic("logRepoMock.ListBySubmissionFunc: method is nil but logRepo.ListBySubmission was just called")
	}
	callInfo := struct {
		Ctx          context.Context
		SubmissionID string
	}{
		Ctx:          ctx,
		SubmissionID: submissionID,
	}
	mock.lockListBySubmission.Lock()
	mock.calls.ListBySubmission = append(mock.calls.ListBySubmission, callInfo)
	mock.lockListBySubmission.Unlock()
	return mock.ListBySubmissionFunc(ctx, submissionID)
}

func (mock *logRepoMock) ListBySubmissionCalls() []struct {
	Ctx          context.Context
	SubmissionID string
} {
	mock.lockListBySubmission.RLock()
	calls := mock.calls.ListBySubmission
	mock.lockListBySubmission.RUnlock()
	return calls
}
