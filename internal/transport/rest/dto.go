package rest

import (
	"time"

	"github.com/istpublications/intake-backend/internal/domain"
)

type submissionResponse struct {
	ID                string                     `json:"id"`
	AuthorName        string                     `json:"author_name"`
	AuthorEmail       string                     `json:"author_email"`
	CurrentStep       int                        `json:"current_step"`
	Status            string                     `json:"status"`
	IsLocked          bool                       `json:"is_locked"`
	CreatedAt         time.Time                  `json:"created_at"`
	UpdatedAt         time.Time                  `json:"updated_at"`
	SubmittedAt       *time.Time                 `json:"submitted_at,omitempty"`
	Agreements        *agreementsResponse        `json:"agreements,omitempty"`
	Metadata          *metadataResponse          `json:"metadata,omitempty"`
	Files             []fileResponse             `json:"files"`
	Reviewers         []reviewerResponse         `json:"reviewers"`
	FinalConfirmation *finalConfirmationResponse `json:"final_confirmation,omitempty"`
	Events            []eventResponse            `json:"events,omitempty"`
}

type agreementsResponse struct {
	AgreesToCopyright    bool    `json:"agrees_to_copyright"`
	AgreesToPrivacy      bool    `json:"agrees_to_privacy"`
	AgreesToPolicies     bool    `json:"agrees_to_policies"`
	CorrespondingContact bool    `json:"corresponding_contact"`
	EditorComments       *string `json:"editor_comments,omitempty"`
}

type metadataResponse struct {
	Title    string   `json:"title"`
	Abstract string   `json:"abstract"`
	Keywords []string `json:"keywords"`
	Category string   `json:"category"`
}

type fileResponse struct {
	ID         string    `json:"id"`
	FileName   string    `json:"file_name"`
	FileType   string    `json:"file_type"`
	FileSize   int64     `json:"file_size"`
	StorageKey *string   `json:"storage_key,omitempty"`
	UploadedAt time.Time `json:"uploaded_at"`
}

type reviewerResponse struct {
	ID          string `json:"id"`
	Prefix      string `json:"prefix"`
	FullName    string `json:"full_name"`
	Email       string `json:"email"`
	Department  string `json:"department"`
	Affiliation string `json:"affiliation"`
}

type finalConfirmationResponse struct {
	FinalAgreesCopyright bool `json:"final_agrees_copyright"`
	FinalAgreesPrivacy   bool `json:"final_agrees_privacy"`
	ConfirmsSubmission   bool `json:"confirms_submission"`
}

type eventResponse struct {
	Action    string    `json:"action"`
	Step      *int      `json:"step,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func toSubmissionResponse(s *domain.Submission) *submissionResponse {
	resp := &submissionResponse{
		ID:          s.ID,
		AuthorName:  s.AuthorName,
		AuthorEmail: s.AuthorEmail,
		CurrentStep: s.CurrentStep,
		Status:      s.Status.String(),
		IsLocked:    s.Locked,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
		SubmittedAt: s.SubmittedAt,
		Files:       make([]fileResponse, 0, len(s.Files)),
		Reviewers:   make([]reviewerResponse, 0, len(s.Reviewers)),
	}
	if a := s.Agreements; a != nil {
		resp.Agreements = &agreementsResponse{
			AgreesToCopyright:    a.AgreesToCopyright,
			AgreesToPrivacy:      a.AgreesToPrivacy,
			AgreesToPolicies:     a.AgreesToPolicies,
			CorrespondingContact: a.CorrespondingContact,
			EditorComments:       a.EditorComments,
		}
	}
	if m := s.Metadata; m != nil {
		resp.Metadata = &metadataResponse{
			Title:    m.Title,
			Abstract: m.Abstract,
			Keywords: m.Keywords,
			Category: m.Category.String(),
		}
	}
	for _, f := range s.Files {
		resp.Files = append(resp.Files, fileResponse{
			ID:         f.ID.String(),
			FileName:   f.FileName,
			FileType:   f.FileType.String(),
			FileSize:   f.FileSize,
			StorageKey: f.StorageKey,
			UploadedAt: f.UploadedAt,
		})
	}
	for _, r := range s.Reviewers {
		resp.Reviewers = append(resp.Reviewers, reviewerResponse{
			ID:          r.ID.String(),
			Prefix:      r.Prefix.String(),
			FullName:    r.FullName,
			Email:       r.Email,
			Department:  r.Department,
			Affiliation: r.Affiliation,
		})
	}
	if c := s.FinalConfirmation; c != nil {
		resp.FinalConfirmation = &finalConfirmationResponse{
			FinalAgreesCopyright: c.FinalAgreesCopyright,
			FinalAgreesPrivacy:   c.FinalAgreesPrivacy,
			ConfirmsSubmission:   c.ConfirmsSubmission,
		}
	}
	for _, e := range s.Events {
		resp.Events = append(resp.Events, eventResponse{
			Action:    e.Action.String(),
			Step:      e.Step,
			CreatedAt: e.CreatedAt,
		})
	}
	return resp
}

type emailLogResponse struct {
	ID           string     `json:"id"`
	Recipient    string     `json:"recipient"`
	Subject      string     `json:"subject"`
	Type         string     `json:"email_type"`
	SubmissionID *string    `json:"submission_id,omitempty"`
	Status       string     `json:"status"`
	SentAt       *time.Time `json:"sent_at,omitempty"`
	FailedReason *string    `json:"failed_reason,omitempty"`
	RetryCount   int        `json:"retry_count"`
	CreatedAt    time.Time  `json:"created_at"`
}

func toEmailLogResponse(l *domain.EmailLog) *emailLogResponse {
	return &emailLogResponse{
		ID:           l.ID.String(),
		Recipient:    l.Recipient,
		Subject:      l.Subject,
		Type:         l.Type.String(),
		SubmissionID: l.SubmissionID,
		Status:       l.Status.String(),
		SentAt:       l.SentAt,
		FailedReason: l.FailedReason,
		RetryCount:   l.RetryCount,
		CreatedAt:    l.CreatedAt,
	}
}

type emailStatsResponse struct {
	TotalSent    int     `json:"total_sent"`
	TotalFailed  int     `json:"total_failed"`
	TotalPending int     `json:"total_pending"`
	TodaySent    int     `json:"today_sent"`
	FailureRate  float64 `json:"failure_rate"`
}

type contactResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     *string   `json:"phone,omitempty"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}

func toContactResponse(m *domain.ContactMessage) *contactResponse {
	return &contactResponse{
		ID:        m.ID.String(),
		Name:      m.Name,
		Email:     m.Email,
		Phone:     m.Phone,
		Subject:   m.Subject.String(),
		Message:   m.Message,
		IsRead:    m.IsRead,
		CreatedAt: m.CreatedAt,
	}
}
