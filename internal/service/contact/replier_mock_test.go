package contact

import (
	"context"
	"sync"

	"github.com/istpublications/intake-backend/internal/domain"
)

var _ replier = &replierMock{}

type replierMock struct {
	SendContactReplyFunc func(ctx context.Context, msg *domain.ContactMessage, subjectLine string, reply string) (*domain.EmailLog, error)

	calls struct {
		SendContactReply []struct {
			Ctx         context.Context
			Msg         *domain.ContactMessage
			SubjectLine string
			Reply       string
		}
	}
	lockSendContactReply sync.RWMutex
}

func (mock *replierMock) SendContactReply(ctx context.Context, msg *domain.ContactMessage, subjectLine string, reply string) (*domain.EmailLog, error) {
	if mock.SendContactReplyFunc == nil {
		panic("replierMock.SendContactReplyFunc: method is nil but replier.SendContactReply was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		Msg         *domain.ContactMessage
		SubjectLine string
		Reply       string
	}{
		Ctx:         ctx,
		Msg:         msg,
		SubjectLine: subjectLine,
		Reply:       reply,
	}
	mock.lockSendContactReply.Lock()
	mock.calls.SendContactReply = append(mock.calls.SendContactReply, callInfo)
	mock.lockSendContactReply.Unlock()
	return mock.SendContactReplyFunc(ctx, msg, subjectLine, reply)
}

func (mock *replierMock) SendContactReplyCalls() []struct {
	Ctx         context.Context
	Msg         *domain.ContactMessage
	SubjectLine string
	Reply       string
} {
	mock.lockSendContactReply.RLock()
	calls := mock.calls.SendContactReply
	mock.lockSendContactReply.RUnlock()
	return calls
}
