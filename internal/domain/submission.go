package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Step bounds of the intake workflow. Steps 1..5 carry payloads; step 6 is
// the ready-to-finalize state.
const (
	FirstStep        = 1
	LastPayloadStep  = 5
	FinalStep        = 6
	MaxReviewers     = 2
	MaxFileSizeBytes = 10 * 1024 * 1024
)

// Submission is the aggregate root of one article intake.
//
// Invariant: Locked <=> Status == SUBMITTED <=> CurrentStep == FinalStep
// (after finalization). CurrentStep only grows, one step at a time.
type Submission struct {
	ID          string
	AuthorName  string
	AuthorEmail string
	CurrentStep int
	Status      SubmissionStatus
	Locked      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
	SubmittedAt *time.Time

	Agreements        *Agreements
	Metadata          *Metadata
	Files             []SubmissionFile
	Reviewers         []Reviewer
	FinalConfirmation *FinalConfirmation
	Events            []SubmissionEvent
}

// NewSubmission returns a fresh DRAFT@1 submission.
func NewSubmission(id, authorName, authorEmail string, now time.Time) *Submission {
	return &Submission{
		ID:          id,
		AuthorName:  authorName,
		AuthorEmail: authorEmail,
		CurrentStep: FirstStep,
		Status:      SubmissionStatusDraft,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// CheckCanSave reports whether step n may be saved right now.
// Lock is checked before ordering so a locked submission always reports
// ErrSubmissionLocked regardless of the target step.
func (s *Submission) CheckCanSave(n int) error {
	if s.Locked {
		return fmt.Errorf("submission %s: %w", s.ID, ErrSubmissionLocked)
	}
	if s.CurrentStep < n {
		return &StepOrderError{Requested: n, Current: s.CurrentStep}
	}
	return nil
}

// Advance records a successful save of step n. The counter never moves
// backwards and never passes FinalStep.
func (s *Submission) Advance(n int, now time.Time) {
	next := n + 1
	if next > FinalStep {
		next = FinalStep
	}
	if next > s.CurrentStep {
		s.CurrentStep = next
	}
	s.UpdatedAt = now
}

// Finalize moves a ready submission into the terminal locked state.
func (s *Submission) Finalize(now time.Time) error {
	if s.Locked {
		return fmt.Errorf("submission %s: %w", s.ID, ErrAlreadyLocked)
	}
	if s.CurrentStep < FinalStep {
		return fmt.Errorf("submission %s at step %d: %w", s.ID, s.CurrentStep, ErrPremisesNotMet)
	}
	s.Status = SubmissionStatusSubmitted
	s.Locked = true
	s.SubmittedAt = &now
	s.UpdatedAt = now
	return nil
}

// IsConsistent reports whether the lock/status/step invariant holds.
func (s *Submission) IsConsistent() bool {
	if s.CurrentStep < FirstStep || s.CurrentStep > FinalStep {
		return false
	}
	if s.Locked != (s.Status == SubmissionStatusSubmitted) {
		return false
	}
	if s.Locked && s.CurrentStep != FinalStep {
		return false
	}
	return true
}

// Title returns the article title if step 2 has been saved.
func (s *Submission) Title() string {
	if s.Metadata == nil {
		return ""
	}
	return s.Metadata.Title
}

// FormatSubmissionID builds the PREFIX-YEAR-SEQ identifier.
func FormatSubmissionID(prefix string, year int, seq int64) string {
	return fmt.Sprintf("%s-%d-%05d", prefix, year, seq)
}

// Agreements is the step 1 sub-record.
type Agreements struct {
	AgreesToCopyright    bool
	AgreesToPrivacy      bool
	AgreesToPolicies     bool
	CorrespondingContact bool
	EditorComments       *string
	UpdatedAt            time.Time
}

// Metadata is the step 2 sub-record.
type Metadata struct {
	Title     string
	Abstract  string
	Keywords  []string
	Category  Category
	UpdatedAt time.Time
}

// SubmissionFile is one step 3 file-metadata entry. Binary content lives in
// external storage referenced by StorageKey.
type SubmissionFile struct {
	ID         uuid.UUID
	Position   int
	FileName   string
	FileType   FileType
	FileSize   int64
	StorageKey *string
	UploadedAt time.Time
}

// Reviewer is one step 4 suggested-reviewer entry.
type Reviewer struct {
	ID          uuid.UUID
	Position    int
	Prefix      ReviewerPrefix
	FullName    string
	Email       string
	Department  string
	Affiliation string
	CreatedAt   time.Time
}

// FinalConfirmation is the step 5 sub-record.
type FinalConfirmation struct {
	FinalAgreesCopyright bool
	FinalAgreesPrivacy   bool
	ConfirmsSubmission   bool
	UpdatedAt            time.Time
}

// SubmissionEvent is an immutable entry of the submission trail.
type SubmissionEvent struct {
	ID        uuid.UUID
	Action    SubmissionAction
	Step      *int
	CreatedAt time.Time
}
