// Package submission implements the submission aggregate repository using
// PostgreSQL. The aggregate spans the submissions header table and one table
// per step payload.
package submission

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/istpublications/intake-backend/internal/adapter/postgres"
	"github.com/istpublications/intake-backend/internal/domain"
)

const entity = "submission"

var headerColumns = []string{
	"id", "author_name", "author_email", "current_step", "status",
	"is_locked", "created_at", "updated_at", "submitted_at",
}

// Repo provides submission persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new submission repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

func (r *Repo) q(ctx context.Context) postgres.Querier {
	return postgres.QuerierFromCtx(ctx, r.db)
}

// ---------------------------------------------------------------------------
// Header
// ---------------------------------------------------------------------------

// NextSequence atomically allocates the next per-year sequence number.
// Concurrent callers never receive the same value for the same year.
func (r *Repo) NextSequence(ctx context.Context, year int) (int64, error) {
	var seq int64
	err := r.q(ctx).QueryRow(ctx, `
		INSERT INTO submission_sequences (year, last_value) VALUES ($1, 1)
		ON CONFLICT (year) DO UPDATE SET last_value = submission_sequences.last_value + 1
		RETURNING last_value`, year).Scan(&seq)
	if err != nil {
		return 0, postgres.MapError(err, "submission_sequence", fmt.Sprint(year))
	}
	return seq, nil
}

// Create inserts a new submission header.
func (r *Repo) Create(ctx context.Context, s *domain.Submission) error {
	query, args, err := postgres.Builder().
		Insert("submissions").
		Columns(headerColumns...).
		Values(s.ID, s.AuthorName, s.AuthorEmail, s.CurrentStep, string(s.Status),
			s.Locked, s.CreatedAt, s.UpdatedAt, s.SubmittedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert submission: %w", err)
	}

	if _, err := r.q(ctx).Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, entity, s.ID)
	}
	return nil
}

// GetForUpdate loads the submission header and takes a row lock held until
// the surrounding transaction ends. Must be called inside TxManager.RunInTx.
func (r *Repo) GetForUpdate(ctx context.Context, id string) (*domain.Submission, error) {
	return r.getHeader(ctx, id, "FOR UPDATE")
}

// UpdateProgress persists the step counter, status, and lock flag.
func (r *Repo) UpdateProgress(ctx context.Context, s *domain.Submission) error {
	query, args, err := postgres.Builder().
		Update("submissions").
		Set("current_step", s.CurrentStep).
		Set("status", string(s.Status)).
		Set("is_locked", s.Locked).
		Set("submitted_at", s.SubmittedAt).
		Set("updated_at", s.UpdatedAt).
		Where(squirrel.Eq{"id": s.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update submission: %w", err)
	}

	tag, err := r.q(ctx).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, entity, s.ID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s %s: %w", entity, s.ID, domain.ErrNotFound)
	}
	return nil
}

// GetByID loads the full aggregate: header, every saved step payload, and
// the event trail.
func (r *Repo) GetByID(ctx context.Context, id string) (*domain.Submission, error) {
	s, err := r.getHeader(ctx, id, "")
	if err != nil {
		return nil, err
	}

	if s.Agreements, err = r.getAgreements(ctx, id); err != nil {
		return nil, err
	}
	if s.Metadata, err = r.getMetadata(ctx, id); err != nil {
		return nil, err
	}
	if s.Files, err = r.listFiles(ctx, id); err != nil {
		return nil, err
	}
	if s.Reviewers, err = r.listReviewers(ctx, id); err != nil {
		return nil, err
	}
	if s.FinalConfirmation, err = r.getFinalConfirmation(ctx, id); err != nil {
		return nil, err
	}
	if s.Events, err = r.listEvents(ctx, id); err != nil {
		return nil, err
	}
	return s, nil
}

func (r *Repo) getHeader(ctx context.Context, id, suffix string) (*domain.Submission, error) {
	b := postgres.Builder().
		Select(headerColumns...).
		From("submissions").
		Where(squirrel.Eq{"id": id})
	if suffix != "" {
		b = b.Suffix(suffix)
	}
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select submission: %w", err)
	}

	var row headerRow
	if err := pgxscan.Get(ctx, r.q(ctx), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, entity, id)
	}
	return row.toDomain(), nil
}

// ---------------------------------------------------------------------------
// Step payloads
// ---------------------------------------------------------------------------

// UpsertAgreements writes the step 1 record, replacing any earlier save.
func (r *Repo) UpsertAgreements(ctx context.Context, id string, a domain.Agreements) error {
	query, args, err := postgres.Builder().
		Insert("submission_agreements").
		Columns("submission_id", "agrees_to_copyright", "agrees_to_privacy", "agrees_to_policies",
			"corresponding_contact", "editor_comments", "updated_at").
		Values(id, a.AgreesToCopyright, a.AgreesToPrivacy, a.AgreesToPolicies,
			a.CorrespondingContact, a.EditorComments, a.UpdatedAt).
		Suffix(`ON CONFLICT (submission_id) DO UPDATE SET
			agrees_to_copyright = EXCLUDED.agrees_to_copyright,
			agrees_to_privacy = EXCLUDED.agrees_to_privacy,
			agrees_to_policies = EXCLUDED.agrees_to_policies,
			corresponding_contact = EXCLUDED.corresponding_contact,
			editor_comments = EXCLUDED.editor_comments,
			updated_at = EXCLUDED.updated_at`).
		ToSql()
	if err != nil {
		return fmt.Errorf("build upsert agreements: %w", err)
	}
	return r.exec(ctx, id, query, args)
}

// UpsertMetadata writes the step 2 record, replacing any earlier save.
func (r *Repo) UpsertMetadata(ctx context.Context, id string, m domain.Metadata) error {
	query, args, err := postgres.Builder().
		Insert("submission_metadata").
		Columns("submission_id", "title", "abstract", "keywords", "category", "updated_at").
		Values(id, m.Title, m.Abstract, m.Keywords, string(m.Category), m.UpdatedAt).
		Suffix(`ON CONFLICT (submission_id) DO UPDATE SET
			title = EXCLUDED.title,
			abstract = EXCLUDED.abstract,
			keywords = EXCLUDED.keywords,
			category = EXCLUDED.category,
			updated_at = EXCLUDED.updated_at`).
		ToSql()
	if err != nil {
		return fmt.Errorf("build upsert metadata: %w", err)
	}
	return r.exec(ctx, id, query, args)
}

// ReplaceFiles swaps the step 3 collection for files.
func (r *Repo) ReplaceFiles(ctx context.Context, id string, files []domain.SubmissionFile) error {
	if err := r.deleteChildren(ctx, "submission_files", id); err != nil {
		return err
	}
	if len(files) == 0 {
		return nil
	}

	b := postgres.Builder().
		Insert("submission_files").
		Columns("id", "submission_id", "position", "file_name", "file_type", "file_size", "storage_key", "uploaded_at")
	for _, f := range files {
		b = b.Values(f.ID, id, f.Position, f.FileName, string(f.FileType), f.FileSize, f.StorageKey, f.UploadedAt)
	}
	query, args, err := b.ToSql()
	if err != nil {
		return fmt.Errorf("build insert files: %w", err)
	}
	return r.exec(ctx, id, query, args)
}

// ReplaceReviewers swaps the step 4 collection for reviewers.
func (r *Repo) ReplaceReviewers(ctx context.Context, id string, reviewers []domain.Reviewer) error {
	if err := r.deleteChildren(ctx, "submission_reviewers", id); err != nil {
		return err
	}
	if len(reviewers) == 0 {
		return nil
	}

	b := postgres.Builder().
		Insert("submission_reviewers").
		Columns("id", "submission_id", "position", "prefix", "full_name", "email", "department", "affiliation", "created_at")
	for _, rv := range reviewers {
		b = b.Values(rv.ID, id, rv.Position, string(rv.Prefix), rv.FullName, rv.Email, rv.Department, rv.Affiliation, rv.CreatedAt)
	}
	query, args, err := b.ToSql()
	if err != nil {
		return fmt.Errorf("build insert reviewers: %w", err)
	}
	return r.exec(ctx, id, query, args)
}

// UpsertFinalConfirmation writes the step 5 record, replacing any earlier save.
func (r *Repo) UpsertFinalConfirmation(ctx context.Context, id string, c domain.FinalConfirmation) error {
	query, args, err := postgres.Builder().
		Insert("submission_final_confirmations").
		Columns("submission_id", "final_agrees_copyright", "final_agrees_privacy", "confirms_submission", "updated_at").
		Values(id, c.FinalAgreesCopyright, c.FinalAgreesPrivacy, c.ConfirmsSubmission, c.UpdatedAt).
		Suffix(`ON CONFLICT (submission_id) DO UPDATE SET
			final_agrees_copyright = EXCLUDED.final_agrees_copyright,
			final_agrees_privacy = EXCLUDED.final_agrees_privacy,
			confirms_submission = EXCLUDED.confirms_submission,
			updated_at = EXCLUDED.updated_at`).
		ToSql()
	if err != nil {
		return fmt.Errorf("build upsert final confirmation: %w", err)
	}
	return r.exec(ctx, id, query, args)
}

// AppendEvent adds an entry to the submission trail.
func (r *Repo) AppendEvent(ctx context.Context, id string, ev domain.SubmissionEvent) error {
	query, args, err := postgres.Builder().
		Insert("submission_events").
		Columns("id", "submission_id", "action", "step", "created_at").
		Values(ev.ID, id, string(ev.Action), ev.Step, ev.CreatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert event: %w", err)
	}
	return r.exec(ctx, id, query, args)
}

func (r *Repo) deleteChildren(ctx context.Context, table, id string) error {
	query, args, err := postgres.Builder().
		Delete(table).
		Where(squirrel.Eq{"submission_id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete %s: %w", table, err)
	}
	return r.exec(ctx, id, query, args)
}

func (r *Repo) exec(ctx context.Context, id, query string, args []any) error {
	if _, err := r.q(ctx).Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, entity, id)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Step payload reads
// ---------------------------------------------------------------------------

func (r *Repo) getAgreements(ctx context.Context, id string) (*domain.Agreements, error) {
	var row agreementsRow
	ok, err := r.getOptional(ctx, &row, id, "submission_agreements",
		"agrees_to_copyright", "agrees_to_privacy", "agrees_to_policies",
		"corresponding_contact", "editor_comments", "updated_at")
	if err != nil || !ok {
		return nil, err
	}
	return &domain.Agreements{
		AgreesToCopyright:    row.AgreesToCopyright,
		AgreesToPrivacy:      row.AgreesToPrivacy,
		AgreesToPolicies:     row.AgreesToPolicies,
		CorrespondingContact: row.CorrespondingContact,
		EditorComments:       row.EditorComments,
		UpdatedAt:            row.UpdatedAt,
	}, nil
}

func (r *Repo) getMetadata(ctx context.Context, id string) (*domain.Metadata, error) {
	var row metadataRow
	ok, err := r.getOptional(ctx, &row, id, "submission_metadata",
		"title", "abstract", "keywords", "category", "updated_at")
	if err != nil || !ok {
		return nil, err
	}
	return &domain.Metadata{
		Title:     row.Title,
		Abstract:  row.Abstract,
		Keywords:  row.Keywords,
		Category:  domain.Category(row.Category),
		UpdatedAt: row.UpdatedAt,
	}, nil
}

func (r *Repo) getFinalConfirmation(ctx context.Context, id string) (*domain.FinalConfirmation, error) {
	var row finalRow
	ok, err := r.getOptional(ctx, &row, id, "submission_final_confirmations",
		"final_agrees_copyright", "final_agrees_privacy", "confirms_submission", "updated_at")
	if err != nil || !ok {
		return nil, err
	}
	return &domain.FinalConfirmation{
		FinalAgreesCopyright: row.FinalAgreesCopyright,
		FinalAgreesPrivacy:   row.FinalAgreesPrivacy,
		ConfirmsSubmission:   row.ConfirmsSubmission,
		UpdatedAt:            row.UpdatedAt,
	}, nil
}

// getOptional scans a single 1:1 child row. A missing row is not an error.
func (r *Repo) getOptional(ctx context.Context, dst any, id, table string, columns ...string) (bool, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"submission_id": id}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build select %s: %w", table, err)
	}

	if err := pgxscan.Get(ctx, r.q(ctx), dst, query, args...); err != nil {
		if pgxscan.NotFound(err) {
			return false, nil
		}
		return false, postgres.MapError(err, entity, id)
	}
	return true, nil
}

func (r *Repo) listFiles(ctx context.Context, id string) ([]domain.SubmissionFile, error) {
	query, args, err := postgres.Builder().
		Select("id", "position", "file_name", "file_type", "file_size", "storage_key", "uploaded_at").
		From("submission_files").
		Where(squirrel.Eq{"submission_id": id}).
		OrderBy("position ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select files: %w", err)
	}

	var rows []fileRow
	if err := pgxscan.Select(ctx, r.q(ctx), &rows, query, args...); err != nil {
		return nil, postgres.MapError(err, entity, id)
	}

	files := make([]domain.SubmissionFile, len(rows))
	for i, row := range rows {
		files[i] = domain.SubmissionFile{
			ID:         row.ID,
			Position:   row.Position,
			FileName:   row.FileName,
			FileType:   domain.FileType(row.FileType),
			FileSize:   row.FileSize,
			StorageKey: row.StorageKey,
			UploadedAt: row.UploadedAt,
		}
	}
	return files, nil
}

func (r *Repo) listReviewers(ctx context.Context, id string) ([]domain.Reviewer, error) {
	query, args, err := postgres.Builder().
		Select("id", "position", "prefix", "full_name", "email", "department", "affiliation", "created_at").
		From("submission_reviewers").
		Where(squirrel.Eq{"submission_id": id}).
		OrderBy("position ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select reviewers: %w", err)
	}

	var rows []reviewerRow
	if err := pgxscan.Select(ctx, r.q(ctx), &rows, query, args...); err != nil {
		return nil, postgres.MapError(err, entity, id)
	}

	reviewers := make([]domain.Reviewer, len(rows))
	for i, row := range rows {
		reviewers[i] = domain.Reviewer{
			ID:          row.ID,
			Position:    row.Position,
			Prefix:      domain.ReviewerPrefix(row.Prefix),
			FullName:    row.FullName,
			Email:       row.Email,
			Department:  row.Department,
			Affiliation: row.Affiliation,
			CreatedAt:   row.CreatedAt,
		}
	}
	return reviewers, nil
}

func (r *Repo) listEvents(ctx context.Context, id string) ([]domain.SubmissionEvent, error) {
	query, args, err := postgres.Builder().
		Select("id", "action", "step", "created_at").
		From("submission_events").
		Where(squirrel.Eq{"submission_id": id}).
		OrderBy("created_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select events: %w", err)
	}

	var rows []eventRow
	if err := pgxscan.Select(ctx, r.q(ctx), &rows, query, args...); err != nil {
		return nil, postgres.MapError(err, entity, id)
	}

	events := make([]domain.SubmissionEvent, len(rows))
	for i, row := range rows {
		events[i] = domain.SubmissionEvent{
			ID:        row.ID,
			Action:    domain.SubmissionAction(row.Action),
			Step:      row.Step,
			CreatedAt: row.CreatedAt,
		}
	}
	return events, nil
}

// ---------------------------------------------------------------------------
// Row types
// ---------------------------------------------------------------------------

type headerRow struct {
	ID          string     `db:"id"`
	AuthorName  string     `db:"author_name"`
	AuthorEmail string     `db:"author_email"`
	CurrentStep int        `db:"current_step"`
	Status      string     `db:"status"`
	IsLocked    bool       `db:"is_locked"`
	CreatedAt   time.Time  `db:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at"`
	SubmittedAt *time.Time `db:"submitted_at"`
}

func (row headerRow) toDomain() *domain.Submission {
	return &domain.Submission{
		ID:          row.ID,
		AuthorName:  row.AuthorName,
		AuthorEmail: row.AuthorEmail,
		CurrentStep: row.CurrentStep,
		Status:      domain.SubmissionStatus(row.Status),
		Locked:      row.IsLocked,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
		SubmittedAt: row.SubmittedAt,
	}
}

type agreementsRow struct {
	AgreesToCopyright    bool      `db:"agrees_to_copyright"`
	AgreesToPrivacy      bool      `db:"agrees_to_privacy"`
	AgreesToPolicies     bool      `db:"agrees_to_policies"`
	CorrespondingContact bool      `db:"corresponding_contact"`
	EditorComments       *string   `db:"editor_comments"`
	UpdatedAt            time.Time `db:"updated_at"`
}

type metadataRow struct {
	Title     string    `db:"title"`
	Abstract  string    `db:"abstract"`
	Keywords  []string  `db:"keywords"`
	Category  string    `db:"category"`
	UpdatedAt time.Time `db:"updated_at"`
}

type fileRow struct {
	ID         uuid.UUID `db:"id"`
	Position   int       `db:"position"`
	FileName   string    `db:"file_name"`
	FileType   string    `db:"file_type"`
	FileSize   int64     `db:"file_size"`
	StorageKey *string   `db:"storage_key"`
	UploadedAt time.Time `db:"uploaded_at"`
}

type reviewerRow struct {
	ID          uuid.UUID `db:"id"`
	Position    int       `db:"position"`
	Prefix      string    `db:"prefix"`
	FullName    string    `db:"full_name"`
	Email       string    `db:"email"`
	Department  string    `db:"department"`
	Affiliation string    `db:"affiliation"`
	CreatedAt   time.Time `db:"created_at"`
}

type finalRow struct {
	FinalAgreesCopyright bool      `db:"final_agrees_copyright"`
	FinalAgreesPrivacy   bool      `db:"final_agrees_privacy"`
	ConfirmsSubmission   bool      `db:"confirms_submission"`
	UpdatedAt            time.Time `db:"updated_at"`
}

type eventRow struct {
	ID        uuid.UUID `db:"id"`
	Action    string    `db:"action"`
	Step      *int      `db:"step"`
	CreatedAt time.Time `db:"created_at"`
}
