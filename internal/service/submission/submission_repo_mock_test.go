package submission

import (
	"context"
	"sync"

	"github.com/istpublications/intake-backend/internal/domain"
)

var _ submissionRepo = &submissionRepoMock{}

type submissionRepoMock struct {
	NextSequenceFunc            func(ctx context.Context, year int) (int64, error)
	CreateFunc                  func(ctx context.Context, s *domain.Submission) error
	GetForUpdateFunc            func(ctx context.Context, id string) (*domain.Submission, error)
	GetByIDFunc                 func(ctx context.Context, id string) (*domain.Submission, error)
	UpdateProgressFunc          func(ctx context.Context, s *domain.Submission) error
	AppendEventFunc             func(ctx context.Context, id string, ev domain.SubmissionEvent) error
	UpsertAgreementsFunc        func(ctx context.Context, id string, a domain.Agreements) error
	UpsertMetadataFunc          func(ctx context.Context, id string, m domain.Metadata) error
	ReplaceFilesFunc            func(ctx context.Context, id string, files []domain.SubmissionFile) error
	ReplaceReviewersFunc        func(ctx context.Context, id string, reviewers []domain.Reviewer) error
	UpsertFinalConfirmationFunc func(ctx context.Context, id string, c domain.FinalConfirmation) error

	calls struct {
		NextSequence []struct {
			Ctx  context.Context
			Year int
		}
		Create []struct {
			Ctx context.Context
			S   *domain.Submission
		}
		GetForUpdate []struct {
			Ctx context.Context
			ID  string
		}
		GetByID []struct {
			Ctx context.Context
			ID  string
		}
		UpdateProgress []struct {
			Ctx context.Context
			S   *domain.Submission
		}
		AppendEvent []struct {
			Ctx context.Context
			ID  string
			Ev  domain.SubmissionEvent
		}
		UpsertAgreements []struct {
			Ctx context.Context
			ID  string
			A   domain.Agreements
		}
		UpsertMetadata []struct {
			Ctx context.Context
			ID  string
			M   domain.Metadata
		}
		ReplaceFiles []struct {
			Ctx   context.Context
			ID    string
			Files []domain.SubmissionFile
		}
		ReplaceReviewers []struct {
			Ctx       context.Context
			ID        string
			Reviewers []domain.Reviewer
		}
		UpsertFinalConfirmation []struct {
			Ctx context.Context
			ID  string
			C   domain.FinalConfirmation
		}
	}
	lockNextSequence            sync.RWMutex
	lockCreate                  sync.RWMutex
	lockGetForUpdate            sync.RWMutex
	lockGetByID                 sync.RWMutex
	lockUpdateProgress          sync.RWMutex
	lockAppendEvent             sync.RWMutex
	lockUpsertAgreements        sync.RWMutex
	lockUpsertMetadata          sync.RWMutex
	lockReplaceFiles            sync.RWMutex
	lockReplaceReviewers        sync.RWMutex
	lockUpsertFinalConfirmation sync.RWMutex
}

func (mock *submissionRepoMock) NextSequence(ctx context.Context, year int) (int64, error) {
	if mock.NextSequenceFunc == nil {
		panic("submissionRepoMock.NextSequenceFunc: method is nil but submissionRepo.NextSequence was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Year int
	}{
		Ctx:  ctx,
		Year: year,
	}
	mock.lockNextSequence.Lock()
	mock.calls.NextSequence = append(mock.calls.NextSequence, callInfo)
	mock.lockNextSequence.Unlock()
	return mock.NextSequenceFunc(ctx, year)
}

func (mock *submissionRepoMock) NextSequenceCalls() []struct {
	Ctx  context.Context
	Year int
} {
	mock.lockNextSequence.RLock()
	calls := mock.calls.NextSequence
	mock.lockNextSequence.RUnlock()
	return calls
}

func (mock *submissionRepoMock) Create(ctx context.Context, s *domain.Submission) error {
	if mock.CreateFunc == nil {
		panic("submissionRepoMock.CreateFunc: method is nil but submissionRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		S   *domain.Submission
	}{
		Ctx: ctx,
		S:   s,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, s)
}

func (mock *submissionRepoMock) CreateCalls() []struct {
	Ctx context.Context
	S   *domain.Submission
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *submissionRepoMock) GetForUpdate(ctx context.Context, id string) (*domain.Submission, error) {
	if mock.GetForUpdateFunc == nil {
		panic("submissionRepoMock.GetForUpdateFunc: method is nil but submissionRepo.GetForUpdate was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  string
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockGetForUpdate.Lock()
	mock.calls.GetForUpdate = append(mock.calls.GetForUpdate, callInfo)
	mock.lockGetForUpdate.Unlock()
	return mock.GetForUpdateFunc(ctx, id)
}

func (mock *submissionRepoMock) GetForUpdateCalls() []struct {
	Ctx context.Context
	ID  string
} {
	mock.lockGetForUpdate.RLock()
	calls := mock.calls.GetForUpdate
	mock.lockGetForUpdate.RUnlock()
	return calls
}

func (mock *submissionRepoMock) GetByID(ctx context.Context, id string) (*domain.Submission, error) {
	if mock.GetByIDFunc == nil {
		panic("submissionRepoMock.GetByIDFunc: method is nil but submissionRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  string
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *submissionRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  string
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *submissionRepoMock) UpdateProgress(ctx context.Context, s *domain.Submission) error {
	if mock.UpdateProgressFunc == nil {
		panic("submissionRepoMock.UpdateProgressFunc: method is nil but submissionRepo.UpdateProgress was just called")
	}
	callInfo := struct {
		Ctx context.Context
		S   *domain.Submission
	}{
		Ctx: ctx,
		S:   s,
	}
	mock.lockUpdateProgress.Lock()
	mock.calls.UpdateProgress = append(mock.calls.UpdateProgress, callInfo)
	mock.lockUpdateProgress.Unlock()
	return mock.UpdateProgressFunc(ctx, s)
}

func (mock *submissionRepoMock) UpdateProgressCalls() []struct {
	Ctx context.Context
	S   *domain.Submission
} {
	mock.lockUpdateProgress.RLock()
	calls := mock.calls.UpdateProgress
	mock.lockUpdateProgress.RUnlock()
	return calls
}

func (mock *submissionRepoMock) AppendEvent(ctx context.Context, id string, ev domain.SubmissionEvent) error {
	if mock.AppendEventFunc == nil {
		panic("submissionRepoMock.AppendEventFunc: method is nil but submissionRepo.AppendEvent was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  string
		Ev  domain.SubmissionEvent
	}{
		Ctx: ctx,
		ID:  id,
		Ev:  ev,
	}
	mock.lockAppendEvent.Lock()
	mock.calls.AppendEvent = append(mock.calls.AppendEvent, callInfo)
	mock.lockAppendEvent.Unlock()
	return mock.AppendEventFunc(ctx, id, ev)
}

func (mock *submissionRepoMock) AppendEventCalls() []struct {
	Ctx context.Context
	ID  string
	Ev  domain.SubmissionEvent
} {
	mock.lockAppendEvent.RLock()
	calls := mock.calls.AppendEvent
	mock.lockAppendEvent.RUnlock()
	return calls
}

func (mock *submissionRepoMock) UpsertAgreements(ctx context.Context, id string, a domain.Agreements) error {
	if mock.UpsertAgreementsFunc == nil {
		panic("submissionRepoMock.UpsertAgreementsFunc: method is nil but submissionRepo.UpsertAgreements was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  string
		A   domain.Agreements
	}{
		Ctx: ctx,
		ID:  id,
		A:   a,
	}
	mock.lockUpsertAgreements.Lock()
	mock.calls.UpsertAgreements = append(mock.calls.UpsertAgreements, callInfo)
	mock.lockUpsertAgreements.Unlock()
	return mock.UpsertAgreementsFunc(ctx, id, a)
}

func (mock *submissionRepoMock) UpsertAgreementsCalls() []struct {
	Ctx context.Context
	ID  string
	A   domain.Agreements
} {
	mock.lockUpsertAgreements.RLock()
	calls := mock.calls.UpsertAgreements
	mock.lockUpsertAgreements.RUnlock()
	return calls
}

func (mock *submissionRepoMock) UpsertMetadata(ctx context.Context, id string, m domain.Metadata) error {
	if mock.UpsertMetadataFunc == nil {
		panic("submissionRepoMock.UpsertMetadataFunc: method is nil but submissionRepo.UpsertMetadata was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  string
		M   domain.Metadata
	}{
		Ctx: ctx,
		ID:  id,
		M:   m,
	}
	mock.lockUpsertMetadata.Lock()
	mock.calls.UpsertMetadata = append(mock.calls.UpsertMetadata, callInfo)
	mock.lockUpsertMetadata.Unlock()
	return mock.UpsertMetadataFunc(ctx, id, m)
}

func (mock *submissionRepoMock) UpsertMetadataCalls() []struct {
	Ctx context.Context
	ID  string
	M   domain.Metadata
} {
	mock.lockUpsertMetadata.RLock()
	calls := mock.calls.UpsertMetadata
	mock.lockUpsertMetadata.RUnlock()
	return calls
}

func (mock *submissionRepoMock) ReplaceFiles(ctx context.Context, id string, files []domain.SubmissionFile) error {
	if mock.ReplaceFilesFunc == nil {
		panic("submissionRepoMock.ReplaceFilesFunc: method is nil but submissionRepo.ReplaceFiles was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		ID    string
		Files []domain.SubmissionFile
	}{
		Ctx:   ctx,
		ID:    id,
		Files: files,
	}
	mock.lockReplaceFiles.Lock()
	mock.calls.ReplaceFiles = append(mock.calls.ReplaceFiles, callInfo)
	mock.lockReplaceFiles.Unlock()
	return mock.ReplaceFilesFunc(ctx, id, files)
}

func (mock *submissionRepoMock) ReplaceFilesCalls() []struct {
	Ctx   context.Context
	ID    string
	Files []domain.SubmissionFile
} {
	mock.lockReplaceFiles.RLock()
	calls := mock.calls.ReplaceFiles
	mock.lockReplaceFiles.RUnlock()
	return calls
}

func (mock *submissionRepoMock) ReplaceReviewers(ctx context.Context, id string, reviewers []domain.Reviewer) error {
	if mock.ReplaceReviewersFunc == nil {
		panic("submissionRepoMock.ReplaceReviewersFunc: method is nil but submissionRepo.ReplaceReviewers was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		ID        string
		Reviewers []domain.Reviewer
	}{
		Ctx:       ctx,
		ID:        id,
		Reviewers: reviewers,
	}
	mock.lockReplaceReviewers.Lock()
	mock.calls.ReplaceReviewers = append(mock.calls.ReplaceReviewers, callInfo)
	mock.lockReplaceReviewers.Unlock()
	return mock.ReplaceReviewersFunc(ctx, id, reviewers)
}

func (mock *submissionRepoMock) ReplaceReviewersCalls() []struct {
	Ctx       context.Context
	ID        string
	Reviewers []domain.Reviewer
} {
	mock.lockReplaceReviewers.RLock()
	calls := mock.calls.ReplaceReviewers
	mock.lockReplaceReviewers.RUnlock()
	return calls
}

func (mock *submissionRepoMock) UpsertFinalConfirmation(ctx context.Context, id string, c domain.FinalConfirmation) error {
	if mock.UpsertFinalConfirmationFunc == nil {
		panic("submissionRepoMock.UpsertFinalConfirmationFunc: method is nil but submissionRepo.UpsertFinalConfirmation was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  string
		C   domain.FinalConfirmation
	}{
		Ctx: ctx,
		ID:  id,
		C:   c,
	}
	mock.lockUpsertFinalConfirmation.Lock()
	mock.calls.UpsertFinalConfirmation = append(mock.calls.UpsertFinalConfirmation, callInfo)
	mock.lockUpsertFinalConfirmation.Unlock()
	return mock.UpsertFinalConfirmationFunc(ctx, id, c)
}

func (mock *submissionRepoMock) UpsertFinalConfirmationCalls() []struct {
	Ctx context.Context
	ID  string
	C   domain.FinalConfirmation
} {
	mock.lockUpsertFinalConfirmation.RLock()
	calls := mock.calls.UpsertFinalConfirmation
	mock.lockUpsertFinalConfirmation.RUnlock()
	return calls
}
