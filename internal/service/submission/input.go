package submission

import (
	"context"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/istpublications/intake-backend/internal/domain"
)

// Fixed rule-set bounds.
const (
	MinTitleLen          = 5
	MaxTitleLen          = 300
	MinAbstractWords     = 150
	MaxAbstractWords     = 200
	MinKeywords          = 2
	MaxKeywords          = 10
	MinNameLen           = 3
	MaxNameLen           = 255
	MaxInstitutionLen    = 200
	MaxEditorCommentsLen = 2000
)

var (
	// Permissive local@domain.tld check, not RFC 5322.
	emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	markupTag    = regexp.MustCompile(`<\s*/?\s*[a-zA-Z][^>]*>`)
)

// CreateInput starts a new submission.
type CreateInput struct {
	AuthorName  string
	AuthorEmail string
}

// Validate checks all fields and collects all errors.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError
	errs = checkName(errs, "author_name", i.AuthorName)
	errs = checkEmail(errs, "author_email", i.AuthorEmail)
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// StepInput is the payload of one of steps 1..5.
type StepInput interface {
	Step() int
	Validate() error
	persist(ctx context.Context, repo submissionRepo, id string, now time.Time) error
}

// AgreementsInput is the step 1 payload.
type AgreementsInput struct {
	AgreesToCopyright    bool
	AgreesToPrivacy      bool
	AgreesToPolicies     bool
	CorrespondingContact bool
	EditorComments       *string
}

func (AgreementsInput) Step() int { return 1 }

// Validate checks all fields and collects all errors.
func (i AgreementsInput) Validate() error {
	var errs []domain.FieldError
	errs = checkTrue(errs, "agrees_to_copyright", i.AgreesToCopyright)
	errs = checkTrue(errs, "agrees_to_privacy", i.AgreesToPrivacy)
	errs = checkTrue(errs, "agrees_to_policies", i.AgreesToPolicies)
	if i.EditorComments != nil && utf8.RuneCountInString(*i.EditorComments) > MaxEditorCommentsLen {
		errs = append(errs, domain.FieldError{Field: "editor_comments", Message: fmt.Sprintf("max %d characters", MaxEditorCommentsLen)})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func (i AgreementsInput) persist(ctx context.Context, repo submissionRepo, id string, now time.Time) error {
	return repo.UpsertAgreements(ctx, id, domain.Agreements{
		AgreesToCopyright:    i.AgreesToCopyright,
		AgreesToPrivacy:      i.AgreesToPrivacy,
		AgreesToPolicies:     i.AgreesToPolicies,
		CorrespondingContact: i.CorrespondingContact,
		EditorComments:       trimOrNil(i.EditorComments),
		UpdatedAt:            now,
	})
}

// MetadataInput is the step 2 payload. Keywords is a comma-separated list.
type MetadataInput struct {
	Title    string
	Abstract string
	Keywords string
	Category domain.Category
}

func (MetadataInput) Step() int { return 2 }

// Validate checks all fields and collects all errors.
func (i MetadataInput) Validate() error {
	var errs []domain.FieldError

	title := strings.TrimSpace(i.Title)
	if n := utf8.RuneCountInString(title); n < MinTitleLen || n > MaxTitleLen {
		errs = append(errs, domain.FieldError{Field: "title", Message: fmt.Sprintf("must be %d-%d characters", MinTitleLen, MaxTitleLen)})
	}
	if markupTag.MatchString(title) {
		errs = append(errs, domain.FieldError{Field: "title", Message: "must not contain markup"})
	}

	if n := WordCount(i.Abstract); n < MinAbstractWords || n > MaxAbstractWords {
		errs = append(errs, domain.FieldError{Field: "abstract", Message: fmt.Sprintf("must be %d-%d words, got %d", MinAbstractWords, MaxAbstractWords, n)})
	}
	if markupTag.MatchString(i.Abstract) {
		errs = append(errs, domain.FieldError{Field: "abstract", Message: "must not contain markup"})
	}

	keywords := SplitKeywords(i.Keywords)
	switch {
	case len(keywords) < MinKeywords:
		errs = append(errs, domain.FieldError{Field: "keywords", Message: fmt.Sprintf("at least %d keywords required", MinKeywords)})
	case len(keywords) > MaxKeywords:
		errs = append(errs, domain.FieldError{Field: "keywords", Message: fmt.Sprintf("at most %d keywords allowed", MaxKeywords)})
	}
	for _, k := range keywords {
		if k == "" {
			errs = append(errs, domain.FieldError{Field: "keywords", Message: "keywords must not be empty"})
			break
		}
	}

	if !i.Category.IsValid() {
		errs = append(errs, domain.FieldError{Field: "category", Message: "invalid category"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func (i MetadataInput) persist(ctx context.Context, repo submissionRepo, id string, now time.Time) error {
	return repo.UpsertMetadata(ctx, id, domain.Metadata{
		Title:     strings.TrimSpace(i.Title),
		Abstract:  strings.TrimSpace(i.Abstract),
		Keywords:  SplitKeywords(i.Keywords),
		Category:  i.Category,
		UpdatedAt: now,
	})
}

// FileInput describes one uploaded manuscript file. FileType may be empty,
// in which case it is taken from the file name extension.
type FileInput struct {
	FileName   string
	FileType   domain.FileType
	FileSize   int64
	StorageKey *string
}

func (f FileInput) resolvedType() domain.FileType {
	if f.FileType != "" {
		return f.FileType
	}
	ext := strings.TrimPrefix(filepath.Ext(strings.TrimSpace(f.FileName)), ".")
	return domain.FileType(strings.ToLower(ext))
}

// FilesInput is the step 3 payload.
type FilesInput struct {
	Files []FileInput
}

func (FilesInput) Step() int { return 3 }

// Validate checks all fields and collects all errors.
func (i FilesInput) Validate() error {
	if len(i.Files) == 0 {
		return domain.NewValidationError("files", "at least one file required")
	}

	var errs []domain.FieldError
	for n, f := range i.Files {
		prefix := fmt.Sprintf("files[%d].", n)
		if strings.TrimSpace(f.FileName) == "" {
			errs = append(errs, domain.FieldError{Field: prefix + "file_name", Message: "required"})
		}
		if f.FileSize <= 0 || f.FileSize > domain.MaxFileSizeBytes {
			errs = append(errs, domain.FieldError{Field: prefix + "file_size", Message: "must be between 1 byte and 10MB"})
		}
		if !f.resolvedType().IsValid() {
			errs = append(errs, domain.FieldError{Field: prefix + "file_type", Message: "must be pdf, docx or rtf"})
		}
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func (i FilesInput) persist(ctx context.Context, repo submissionRepo, id string, now time.Time) error {
	files := make([]domain.SubmissionFile, len(i.Files))
	for n, f := range i.Files {
		files[n] = domain.SubmissionFile{
			ID:         uuid.New(),
			Position:   n + 1,
			FileName:   strings.TrimSpace(f.FileName),
			FileType:   f.resolvedType(),
			FileSize:   f.FileSize,
			StorageKey: trimOrNil(f.StorageKey),
			UploadedAt: now,
		}
	}
	return repo.ReplaceFiles(ctx, id, files)
}

// ReviewerInput describes one suggested reviewer.
type ReviewerInput struct {
	Prefix      domain.ReviewerPrefix
	FullName    string
	Email       string
	Department  string
	Affiliation string
}

// ReviewersInput is the step 4 payload.
type ReviewersInput struct {
	Reviewers []ReviewerInput
}

func (ReviewersInput) Step() int { return 4 }

// Validate checks all fields and collects all errors.
func (i ReviewersInput) Validate() error {
	if len(i.Reviewers) == 0 || len(i.Reviewers) > domain.MaxReviewers {
		return domain.NewValidationError("reviewers", fmt.Sprintf("between 1 and %d reviewers required", domain.MaxReviewers))
	}

	var errs []domain.FieldError
	for n, r := range i.Reviewers {
		prefix := fmt.Sprintf("reviewers[%d].", n)
		if !r.Prefix.IsValid() {
			errs = append(errs, domain.FieldError{Field: prefix + "prefix", Message: "must be Dr, Prof, Mr or Ms"})
		}
		errs = checkName(errs, prefix+"full_name", r.FullName)
		errs = checkEmail(errs, prefix+"email", r.Email)
		errs = checkInstitution(errs, prefix+"department", r.Department)
		errs = checkInstitution(errs, prefix+"affiliation", r.Affiliation)
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func (i ReviewersInput) persist(ctx context.Context, repo submissionRepo, id string, now time.Time) error {
	reviewers := make([]domain.Reviewer, len(i.Reviewers))
	for n, r := range i.Reviewers {
		reviewers[n] = domain.Reviewer{
			ID:          uuid.New(),
			Position:    n + 1,
			Prefix:      r.Prefix,
			FullName:    strings.TrimSpace(r.FullName),
			Email:       strings.TrimSpace(r.Email),
			Department:  strings.TrimSpace(r.Department),
			Affiliation: strings.TrimSpace(r.Affiliation),
			CreatedAt:   now,
		}
	}
	return repo.ReplaceReviewers(ctx, id, reviewers)
}

// FinalConfirmationInput is the step 5 payload.
type FinalConfirmationInput struct {
	FinalAgreesCopyright bool
	FinalAgreesPrivacy   bool
	ConfirmsSubmission   bool
}

func (FinalConfirmationInput) Step() int { return 5 }

// Validate checks all fields and collects all errors.
func (i FinalConfirmationInput) Validate() error {
	var errs []domain.FieldError
	errs = checkTrue(errs, "final_agrees_copyright", i.FinalAgreesCopyright)
	errs = checkTrue(errs, "final_agrees_privacy", i.FinalAgreesPrivacy)
	errs = checkTrue(errs, "confirms_submission", i.ConfirmsSubmission)
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func (i FinalConfirmationInput) persist(ctx context.Context, repo submissionRepo, id string, now time.Time) error {
	return repo.UpsertFinalConfirmation(ctx, id, domain.FinalConfirmation{
		FinalAgreesCopyright: i.FinalAgreesCopyright,
		FinalAgreesPrivacy:   i.FinalAgreesPrivacy,
		ConfirmsSubmission:   i.ConfirmsSubmission,
		UpdatedAt:            now,
	})
}

// Decision mail kinds accepted by Notify.
const (
	NotifyReviewUpdate = "review_update"
	NotifyAcceptance   = "acceptance"
	NotifyRejection    = "rejection"
)

// NotifyInput asks for an editorial decision email.
type NotifyInput struct {
	Kind         string
	ReviewStatus string
	Comments     string
	Reason       string
}

// Validate checks all fields and collects all errors.
func (i NotifyInput) Validate() error {
	switch i.Kind {
	case NotifyReviewUpdate:
		if strings.TrimSpace(i.ReviewStatus) == "" {
			return domain.NewValidationError("review_status", "required")
		}
	case NotifyAcceptance, NotifyRejection:
	default:
		return domain.NewValidationError("kind", "must be review_update, acceptance or rejection")
	}
	return nil
}

// WordCount splits on whitespace.
func WordCount(s string) int {
	return len(strings.Fields(s))
}

// SplitKeywords splits a comma-separated list and trims each entry. Empty
// entries are kept so the caller can reject them.
func SplitKeywords(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	for n := range parts {
		parts[n] = strings.TrimSpace(parts[n])
	}
	return parts
}

func checkTrue(errs []domain.FieldError, field string, v bool) []domain.FieldError {
	if !v {
		errs = append(errs, domain.FieldError{Field: field, Message: "must be accepted"})
	}
	return errs
}

func checkName(errs []domain.FieldError, field, v string) []domain.FieldError {
	if n := utf8.RuneCountInString(strings.TrimSpace(v)); n < MinNameLen || n > MaxNameLen {
		errs = append(errs, domain.FieldError{Field: field, Message: fmt.Sprintf("must be %d-%d characters", MinNameLen, MaxNameLen)})
	}
	return errs
}

func checkEmail(errs []domain.FieldError, field, v string) []domain.FieldError {
	if !emailPattern.MatchString(strings.TrimSpace(v)) {
		errs = append(errs, domain.FieldError{Field: field, Message: "invalid email address"})
	}
	return errs
}

func checkInstitution(errs []domain.FieldError, field, v string) []domain.FieldError {
	v = strings.TrimSpace(v)
	switch {
	case v == "":
		errs = append(errs, domain.FieldError{Field: field, Message: "required"})
	case utf8.RuneCountInString(v) > MaxInstitutionLen:
		errs = append(errs, domain.FieldError{Field: field, Message: fmt.Sprintf("max %d characters", MaxInstitutionLen)})
	}
	return errs
}

// trimOrNil trims whitespace. Returns nil if result is empty.
func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	if t == "" {
		return nil
	}
	return &t
}
