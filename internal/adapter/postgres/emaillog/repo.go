// Package emaillog implements the email delivery log repository using
// PostgreSQL.
package emaillog

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/istpublications/intake-backend/internal/adapter/postgres"
	"github.com/istpublications/intake-backend/internal/domain"
)

const entity = "email_log"

var columns = []string{
	"id", "recipient", "sender", "subject", "type", "submission_id", "status",
	"sent_at", "failed_reason", "read_count", "retry_count", "template_id",
	"created_at", "updated_at",
}

// Repo provides email log persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new email log repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

func (r *Repo) q(ctx context.Context) postgres.Querier {
	return postgres.QuerierFromCtx(ctx, r.db)
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new log entry as given (normally PENDING).
func (r *Repo) Create(ctx context.Context, l *domain.EmailLog) error {
	query, args, err := postgres.Builder().
		Insert("email_logs").
		Columns(columns...).
		Values(l.ID, l.Recipient, l.Sender, l.Subject, string(l.Type), l.SubmissionID, string(l.Status),
			l.SentAt, l.FailedReason, l.ReadCount, l.RetryCount, l.TemplateID,
			l.CreatedAt, l.UpdatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert email_log: %w", err)
	}

	if _, err := r.q(ctx).Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, entity, l.ID.String())
	}
	return nil
}

// MarkSent transitions a PENDING or RETRYING entry to SENT and stamps sent_at.
// Any other current status yields domain.ErrConflict.
func (r *Repo) MarkSent(ctx context.Context, id uuid.UUID, at time.Time) (*domain.EmailLog, error) {
	return r.transition(ctx, id, postgres.Builder().
		Update("email_logs").
		Set("status", string(domain.EmailStatusSent)).
		Set("sent_at", at).
		Set("failed_reason", nil).
		Set("updated_at", at).
		Where(squirrel.Eq{"id": id, "status": deliverableStatuses()}))
}

// MarkFailed transitions a PENDING or RETRYING entry to FAILED with reason.
// Any other current status yields domain.ErrConflict.
func (r *Repo) MarkFailed(ctx context.Context, id uuid.UUID, reason string, at time.Time) (*domain.EmailLog, error) {
	return r.transition(ctx, id, postgres.Builder().
		Update("email_logs").
		Set("status", string(domain.EmailStatusFailed)).
		Set("failed_reason", reason).
		Set("updated_at", at).
		Where(squirrel.Eq{"id": id, "status": deliverableStatuses()}))
}

// IncrementRetry moves a FAILED entry below the ceiling to RETRYING and adds
// one to retry_count. The guard in the WHERE clause makes overlapping retry
// runs increment each entry at most once; a lost race yields domain.ErrConflict.
func (r *Repo) IncrementRetry(ctx context.Context, id uuid.UUID, maxRetries int, at time.Time) (*domain.EmailLog, error) {
	return r.transition(ctx, id, postgres.Builder().
		Update("email_logs").
		Set("status", string(domain.EmailStatusRetrying)).
		Set("retry_count", squirrel.Expr("retry_count + 1")).
		Set("updated_at", at).
		Where(squirrel.Eq{"id": id, "status": string(domain.EmailStatusFailed)}).
		Where(squirrel.Lt{"retry_count": maxRetries}))
}

// MarkOpened adds one to read_count and moves SENT or OPENED entries to
// OPENED. Other statuses, CLICKED included, are kept.
func (r *Repo) MarkOpened(ctx context.Context, id uuid.UUID, at time.Time) (*domain.EmailLog, error) {
	return r.transition(ctx, id, postgres.Builder().
		Update("email_logs").
		Set("read_count", squirrel.Expr("read_count + 1")).
		Set("status", squirrel.Expr("CASE WHEN status IN (?, ?) THEN ? ELSE status END",
			string(domain.EmailStatusSent), string(domain.EmailStatusOpened), string(domain.EmailStatusOpened))).
		Set("updated_at", at).
		Where(squirrel.Eq{"id": id}))
}

// transition runs a guarded UPDATE ... RETURNING. Zero affected rows means
// either the entry is missing (ErrNotFound) or the guard rejected it
// (ErrConflict).
func (r *Repo) transition(ctx context.Context, id uuid.UUID, b squirrel.UpdateBuilder) (*domain.EmailLog, error) {
	query, args, err := b.Suffix("RETURNING " + strings.Join(columns, ", ")).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update email_log: %w", err)
	}

	var row logRow
	err = pgxscan.Get(ctx, r.q(ctx), &row, query, args...)
	if err == nil {
		return row.toDomain(), nil
	}
	if !pgxscan.NotFound(err) {
		return nil, postgres.MapError(err, entity, id.String())
	}

	if _, getErr := r.GetByID(ctx, id); getErr != nil {
		return nil, getErr
	}
	return nil, fmt.Errorf("%s %s: status transition rejected: %w", entity, id, domain.ErrConflict)
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns the log entry with the given id.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.EmailLog, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From("email_logs").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select email_log: %w", err)
	}

	var row logRow
	if err := pgxscan.Get(ctx, r.q(ctx), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, entity, id.String())
	}
	return row.toDomain(), nil
}

// ListFailedForRetry returns FAILED entries with retry_count below maxRetries,
// oldest first. limit <= 0 means no limit.
func (r *Repo) ListFailedForRetry(ctx context.Context, maxRetries, limit int) ([]domain.EmailLog, error) {
	b := postgres.Builder().
		Select(columns...).
		From("email_logs").
		Where(squirrel.Eq{"status": string(domain.EmailStatusFailed)}).
		Where(squirrel.Lt{"retry_count": maxRetries}).
		OrderBy("created_at ASC", "id ASC")
	if limit > 0 {
		b = b.Limit(uint64(limit))
	}
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select failed email_logs: %w", err)
	}

	var rows []logRow
	if err := pgxscan.Select(ctx, r.q(ctx), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list failed email_logs: %w", err)
	}

	logs := make([]domain.EmailLog, len(rows))
	for i, row := range rows {
		logs[i] = *row.toDomain()
	}
	return logs, nil
}

// ListBySubmission returns every entry tied to a submission, newest first.
func (r *Repo) ListBySubmission(ctx context.Context, submissionID string) ([]domain.EmailLog, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From("email_logs").
		Where(squirrel.Eq{"submission_id": submissionID}).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select email_logs by submission: %w", err)
	}

	var rows []logRow
	if err := pgxscan.Select(ctx, r.q(ctx), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list email_logs for %s: %w", submissionID, err)
	}

	logs := make([]domain.EmailLog, len(rows))
	for i, row := range rows {
		logs[i] = *row.toDomain()
	}
	return logs, nil
}

// Counts returns the raw counters for EmailStats. TodaySent counts SENT
// entries created in [dayStart, dayStart+24h).
func (r *Repo) Counts(ctx context.Context, dayStart time.Time) (domain.EmailCounts, error) {
	var c countsRow
	err := pgxscan.Get(ctx, r.q(ctx), &c, `
		SELECT
			count(*) FILTER (WHERE status = 'SENT')    AS sent,
			count(*) FILTER (WHERE status = 'FAILED')  AS failed,
			count(*) FILTER (WHERE status = 'PENDING') AS pending,
			count(*) FILTER (WHERE status = 'SENT' AND created_at >= $1 AND created_at < $2) AS today_sent
		FROM email_logs`, dayStart, dayStart.Add(24*time.Hour))
	if err != nil {
		return domain.EmailCounts{}, fmt.Errorf("count email_logs: %w", err)
	}
	return domain.EmailCounts{
		Sent:      int(c.Sent),
		Failed:    int(c.Failed),
		Pending:   int(c.Pending),
		TodaySent: int(c.TodaySent),
	}, nil
}

// ---------------------------------------------------------------------------
// Mapping helpers
// ---------------------------------------------------------------------------

func deliverableStatuses() []string {
	return []string{string(domain.EmailStatusPending), string(domain.EmailStatusRetrying)}
}

type logRow struct {
	ID           uuid.UUID  `db:"id"`
	Recipient    string     `db:"recipient"`
	Sender       string     `db:"sender"`
	Subject      string     `db:"subject"`
	Type         string     `db:"type"`
	SubmissionID *string    `db:"submission_id"`
	Status       string     `db:"status"`
	SentAt       *time.Time `db:"sent_at"`
	FailedReason *string    `db:"failed_reason"`
	ReadCount    int        `db:"read_count"`
	RetryCount   int        `db:"retry_count"`
	TemplateID   *uuid.UUID `db:"template_id"`
	CreatedAt    time.Time  `db:"created_at"`
	UpdatedAt    time.Time  `db:"updated_at"`
}

func (row logRow) toDomain() *domain.EmailLog {
	return &domain.EmailLog{
		ID:           row.ID,
		Recipient:    row.Recipient,
		Sender:       row.Sender,
		Subject:      row.Subject,
		Type:         domain.EmailType(row.Type),
		SubmissionID: row.SubmissionID,
		Status:       domain.EmailStatus(row.Status),
		SentAt:       row.SentAt,
		FailedReason: row.FailedReason,
		ReadCount:    row.ReadCount,
		RetryCount:   row.RetryCount,
		TemplateID:   row.TemplateID,
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
	}
}

type countsRow struct {
	Sent      int64 `db:"sent"`
	Failed    int64 `db:"failed"`
	Pending   int64 `db:"pending"`
	TodaySent int64 `db:"today_sent"`
}
