package domain

import (
	"time"

	"github.com/google/uuid"
)

// MaxEmailRetries is the hard ceiling on EmailLog.RetryCount.
const MaxEmailRetries = 5

// EmailTemplate is an admin-edited, typed subject/body pattern.
type EmailTemplate struct {
	ID        uuid.UUID
	Name      string
	Type      EmailType
	Subject   string
	BodyHTML  string
	BodyText  *string
	Variables map[string]string
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// RenderedEmail is the output of rendering a template.
// BodyText is nil when the template has no plain-text pattern.
type RenderedEmail struct {
	Subject  string
	BodyHTML string
	BodyText *string
}

// EmailLog is one record of a delivery attempt and its outcome.
type EmailLog struct {
	ID           uuid.UUID
	Recipient    string
	Sender       string
	Subject      string
	Type         EmailType
	SubmissionID *string
	Status       EmailStatus
	SentAt       *time.Time
	FailedReason *string
	ReadCount    int
	RetryCount   int
	TemplateID   *uuid.UUID
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsRetryEligible reports whether the retry driver may pick this entry.
func (l *EmailLog) IsRetryEligible(maxRetries int) bool {
	return l.Status == EmailStatusFailed && l.RetryCount < maxRetries
}

// EmailStats summarises the delivery log.
type EmailStats struct {
	TotalSent    int
	TotalFailed  int
	TotalPending int
	TodaySent    int
	FailureRate  float64
}

// EmailCounts are the raw counters FailureRate is derived from.
type EmailCounts struct {
	Sent      int
	Failed    int
	Pending   int
	TodaySent int
}

// OutgoingEmail is what the pipeline hands to a transport. Text is always
// set; it falls back to a plain copy of HTML when the template has none.
type OutgoingEmail struct {
	From    string
	To      string
	Subject string
	HTML    string
	Text    string
}
