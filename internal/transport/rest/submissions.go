package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/istpublications/intake-backend/internal/domain"
	"github.com/istpublications/intake-backend/internal/service/submission"
)

type submissionService interface {
	Create(ctx context.Context, input submission.CreateInput) (*domain.Submission, error)
	SaveStep(ctx context.Context, id string, input submission.StepInput) (*domain.Submission, error)
	Finalize(ctx context.Context, id string) (*domain.Submission, error)
	Get(ctx context.Context, id string) (*domain.Submission, error)
	Notify(ctx context.Context, id string, input submission.NotifyInput) (*domain.EmailLog, error)
}

// SubmissionHandler serves the step-gated submission endpoints.
type SubmissionHandler struct {
	svc submissionService
	log *slog.Logger
}

// NewSubmissionHandler creates a SubmissionHandler.
func NewSubmissionHandler(svc submissionService, logger *slog.Logger) *SubmissionHandler {
	return &SubmissionHandler{svc: svc, log: logger.With("handler", "submission")}
}

type createSubmissionRequest struct {
	AuthorName  string `json:"author_name"`
	AuthorEmail string `json:"author_email"`
}

type agreementsRequest struct {
	AgreesToCopyright    bool    `json:"agrees_to_copyright"`
	AgreesToPrivacy      bool    `json:"agrees_to_privacy"`
	AgreesToPolicies     bool    `json:"agrees_to_policies"`
	CorrespondingContact bool    `json:"corresponding_contact"`
	EditorComments       *string `json:"editor_comments"`
}

type metadataRequest struct {
	Title    string `json:"title"`
	Abstract string `json:"abstract"`
	Keywords string `json:"keywords"`
	Category string `json:"category"`
}

type fileRequest struct {
	FileName   string  `json:"file_name"`
	FileType   string  `json:"file_type"`
	FileSize   int64   `json:"file_size"`
	StorageKey *string `json:"storage_key"`
}

type filesRequest struct {
	Files []fileRequest `json:"files"`
}

type reviewerRequest struct {
	Prefix      string `json:"prefix"`
	FullName    string `json:"full_name"`
	Email       string `json:"email"`
	Department  string `json:"department"`
	Affiliation string `json:"affiliation"`
}

type reviewersRequest struct {
	Reviewers []reviewerRequest `json:"reviewers"`
}

type finalConfirmationRequest struct {
	FinalAgreesCopyright bool `json:"final_agrees_copyright"`
	FinalAgreesPrivacy   bool `json:"final_agrees_privacy"`
	ConfirmsSubmission   bool `json:"confirms_submission"`
}

type notifyRequest struct {
	Kind         string `json:"kind"`
	ReviewStatus string `json:"review_status"`
	Comments     string `json:"comments"`
	Reason       string `json:"reason"`
}

// Create handles POST /api/submissions.
func (h *SubmissionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createSubmissionRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	sub, err := h.svc.Create(r.Context(), submission.CreateInput{
		AuthorName:  req.AuthorName,
		AuthorEmail: req.AuthorEmail,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, envelope{
		Success:    true,
		Message:    "Submission created",
		Submission: toSubmissionResponse(sub),
	})
}

// SaveStep handles POST /api/submissions/{id}/step/{n} for n in 1..5.
func (h *SubmissionHandler) SaveStep(w http.ResponseWriter, r *http.Request) {
	n, err := strconv.Atoi(r.PathValue("n"))
	if err != nil || n < domain.FirstStep || n >= domain.FinalStep {
		writeError(w, http.StatusNotFound, "unknown step")
		return
	}

	input, err := decodeStep(r, n)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	sub, err := h.svc.SaveStep(r.Context(), r.PathValue("id"), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, envelope{
		Success:    true,
		Message:    "Step " + strconv.Itoa(n) + " saved",
		Submission: toSubmissionResponse(sub),
	})
}

// Finalize handles POST /api/submissions/{id}/step/6/finalize.
func (h *SubmissionHandler) Finalize(w http.ResponseWriter, r *http.Request) {
	sub, err := h.svc.Finalize(r.Context(), r.PathValue("id"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, envelope{
		Success:    true,
		Message:    "Submission finalized",
		Submission: toSubmissionResponse(sub),
	})
}

// Get handles GET /api/submissions/{id}.
func (h *SubmissionHandler) Get(w http.ResponseWriter, r *http.Request) {
	sub, err := h.svc.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, envelope{Success: true, Submission: toSubmissionResponse(sub)})
}

// Notify handles POST /api/admin/submissions/{id}/notifications.
func (h *SubmissionHandler) Notify(w http.ResponseWriter, r *http.Request) {
	var req notifyRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	entry, err := h.svc.Notify(r.Context(), r.PathValue("id"), submission.NotifyInput{
		Kind:         req.Kind,
		ReviewStatus: req.ReviewStatus,
		Comments:     req.Comments,
		Reason:       req.Reason,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, envelope{
		Success: entry.Status != domain.EmailStatusFailed,
		Message: "Notification " + entry.Status.String(),
		Data:    toEmailLogResponse(entry),
	})
}

// decodeStep reads the body for step n into its service input.
func decodeStep(r *http.Request, n int) (submission.StepInput, error) {
	switch n {
	case 1:
		var req agreementsRequest
		if err := decodeJSON(r, &req); err != nil {
			return nil, err
		}
		return submission.AgreementsInput{
			AgreesToCopyright:    req.AgreesToCopyright,
			AgreesToPrivacy:      req.AgreesToPrivacy,
			AgreesToPolicies:     req.AgreesToPolicies,
			CorrespondingContact: req.CorrespondingContact,
			EditorComments:       req.EditorComments,
		}, nil
	case 2:
		var req metadataRequest
		if err := decodeJSON(r, &req); err != nil {
			return nil, err
		}
		return submission.MetadataInput{
			Title:    req.Title,
			Abstract: req.Abstract,
			Keywords: req.Keywords,
			Category: domain.Category(req.Category),
		}, nil
	case 3:
		var req filesRequest
		if err := decodeJSON(r, &req); err != nil {
			return nil, err
		}
		files := make([]submission.FileInput, len(req.Files))
		for i, f := range req.Files {
			files[i] = submission.FileInput{
				FileName:   f.FileName,
				FileType:   domain.FileType(f.FileType),
				FileSize:   f.FileSize,
				StorageKey: f.StorageKey,
			}
		}
		return submission.FilesInput{Files: files}, nil
	case 4:
		var req reviewersRequest
		if err := decodeJSON(r, &req); err != nil {
			return nil, err
		}
		reviewers := make([]submission.ReviewerInput, len(req.Reviewers))
		for i, rv := range req.Reviewers {
			reviewers[i] = submission.ReviewerInput{
				Prefix:      domain.ReviewerPrefix(rv.Prefix),
				FullName:    rv.FullName,
				Email:       rv.Email,
				Department:  rv.Department,
				Affiliation: rv.Affiliation,
			}
		}
		return submission.ReviewersInput{Reviewers: reviewers}, nil
	default:
		var req finalConfirmationRequest
		if err := decodeJSON(r, &req); err != nil {
			return nil, err
		}
		return submission.FinalConfirmationInput{
			FinalAgreesCopyright: req.FinalAgreesCopyright,
			FinalAgreesPrivacy:   req.FinalAgreesPrivacy,
			ConfirmsSubmission:   req.ConfirmsSubmission,
		}, nil
	}
}
