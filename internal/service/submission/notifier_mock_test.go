package submission

import (
	"context"
	"sync"

	"github.com/istpublications/intake-backend/internal/domain"
)

var _ notifier = &notifierMock{}

type notifierMock struct {
	SendSubmissionConfirmationFunc func(ctx context.Context, sub *domain.Submission) (*domain.EmailLog, error)
	SendAdminNotificationFunc      func(ctx context.Context, sub *domain.Submission) (*domain.EmailLog, error)
	SendReviewUpdateFunc           func(ctx context.Context, sub *domain.Submission, status string, comments string) (*domain.EmailLog, error)
	SendAcceptanceFunc             func(ctx context.Context, sub *domain.Submission) (*domain.EmailLog, error)
	SendRejectionFunc              func(ctx context.Context, sub *domain.Submission, reason string) (*domain.EmailLog, error)

	calls struct {
		SendSubmissionConfirmation []struct {
			Ctx context.Context
			Sub *domain.Submission
		}
		SendAdminNotification []struct {
			Ctx context.Context
			Sub *domain.Submission
		}
		SendReviewUpdate []struct {
			Ctx      context.Context
			Sub      *domain.Submission
			Status   string
			Comments string
		}
		SendAcceptance []struct {
			Ctx context.Context
			Sub *domain.Submission
		}
		SendRejection []struct {
			Ctx    context.Context
			Sub    *domain.Submission
			Reason string
		}
	}
	lockSendSubmissionConfirmation sync.RWMutex
	lockSendAdminNotification      sync.RWMutex
	lockSendReviewUpdate           sync.RWMutex
	lockSendAcceptance             sync.RWMutex
	lockSendRejection              sync.RWMutex
}

func (mock *notifierMock) SendSubmissionConfirmation(ctx context.Context, sub *domain.Submission) (*domain.EmailLog, error) {
	if mock.SendSubmissionConfirmationFunc == nil {
		panic("notifierMock.SendSubmissionConfirmationFunc: method is nil but notifier.SendSubmissionConfirmation was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Sub *domain.Submission
	}{
		Ctx: ctx,
		Sub: sub,
	}
	mock.lockSendSubmissionConfirmation.Lock()
	mock.calls.SendSubmissionConfirmation = append(mock.calls.SendSubmissionConfirmation, callInfo)
	mock.lockSendSubmissionConfirmation.Unlock()
	return mock.SendSubmissionConfirmationFunc(ctx, sub)
}

func (mock *notifierMock) SendSubmissionConfirmationCalls() []struct {
	Ctx context.Context
	Sub *domain.Submission
} {
	mock.lockSendSubmissionConfirmation.RLock()
	calls := mock.calls.SendSubmissionConfirmation
	mock.lockSendSubmissionConfirmation.RUnlock()
	return calls
}

func (mock *notifierMock) SendAdminNotification(ctx context.Context, sub *domain.Submission) (*domain.EmailLog, error) {
	if mock.SendAdminNotificationFunc == nil {
		panic("notifierMock.SendAdminNotificationFunc: method is nil but notifier.SendAdminNotification was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Sub *domain.Submission
	}{
		Ctx: ctx,
		Sub: sub,
	}
	mock.lockSendAdminNotification.Lock()
	mock.calls.SendAdminNotification = append(mock.calls.SendAdminNotification, callInfo)
	mock.lockSendAdminNotification.Unlock()
	return mock.SendAdminNotificationFunc(ctx, sub)
}

func (mock *notifierMock) SendAdminNotificationCalls() []struct {
	Ctx context.Context
	Sub *domain.Submission
} {
	mock.lockSendAdminNotification.RLock()
	calls := mock.calls.SendAdminNotification
	mock.lockSendAdminNotification.RUnlock()
	return calls
}

func (mock *notifierMock) SendReviewUpdate(ctx context.Context, sub *domain.Submission, status string, comments string) (*domain.EmailLog, error) {
	if mock.SendReviewUpdateFunc == nil {
		panic("notifierMock.SendReviewUpdateFunc: method is nil but notifier.SendReviewUpdate was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		Sub      *domain.Submission
		Status   string
		Comments string
	}{
		Ctx:      ctx,
		Sub:      sub,
		Status:   status,
		Comments: comments,
	}
	mock.lockSendReviewUpdate.Lock()
	mock.calls.SendReviewUpdate = append(mock.calls.SendReviewUpdate, callInfo)
	mock.lockSendReviewUpdate.Unlock()
	return mock.SendReviewUpdateFunc(ctx, sub, status, comments)
}

func (mock *notifierMock) SendReviewUpdateCalls() []struct {
	Ctx      context.Context
	Sub      *domain.Submission
	Status   string
	Comments string
} {
	mock.lockSendReviewUpdate.RLock()
	calls := mock.calls.SendReviewUpdate
	mock.lockSendReviewUpdate.RUnlock()
	return calls
}

func (mock *notifierMock) SendAcceptance(ctx context.Context, sub *domain.Submission) (*domain.EmailLog, error) {
	if mock.SendAcceptanceFunc == nil {
		panic("notifierMock.SendAcceptanceFunc: method is nil but notifier.SendAcceptance was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Sub *domain.Submission
	}{
		Ctx: ctx,
		Sub: sub,
	}
	mock.lockSendAcceptance.Lock()
	mock.calls.SendAcceptance = append(mock.calls.SendAcceptance, callInfo)
	mock.lockSendAcceptance.Unlock()
	return mock.SendAcceptanceFunc(ctx, sub)
}

func (mock *notifierMock) SendAcceptanceCalls() []struct {
	Ctx context.Context
	Sub *domain.Submission
} {
	mock.lockSendAcceptance.RLock()
	calls := mock.calls.SendAcceptance
	mock.lockSendAcceptance.RUnlock()
	return calls
}

func (mock *notifierMock) SendRejection(ctx context.Context, sub *domain.Submission, reason string) (*domain.EmailLog, error) {
	if mock.SendRejectionFunc == nil {
		panic("notifierMock.SendRejectionFunc: method is nil but notifier.SendRejection was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Sub    *domain.Submission
		Reason string
	}{
		Ctx:    ctx,
		Sub:    sub,
		Reason: reason,
	}
	mock.lockSendRejection.Lock()
	mock.calls.SendRejection = append(mock.calls.SendRejection, callInfo)
	mock.lockSendRejection.Unlock()
	return mock.SendRejectionFunc(ctx, sub, reason)
}

func (mock *notifierMock) SendRejectionCalls() []struct {
	Ctx    context.Context
	Sub    *domain.Submission
	Reason string
} {
	mock.lockSendRejection.RLock()
	calls := mock.calls.SendRejection
	mock.lockSendRejection.RUnlock()
	return calls
}
