// Package contact implements the contact message repository using PostgreSQL.
package contact

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

const entity = "contact_message"

var columns = []string{"id", "name", "email", "phone", "subject", "message", "is_read", "created_at"}

// Repo provides contact message persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new contact repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

func (r *Repo) q(ctx context.Context) postgres.Querier {
	return postgres.QuerierFromCtx(ctx, r.db)
}

// Create inserts a contact message.
func (r *Repo) Create(ctx context.Context, m *domain.ContactMessage) error {
	query, args, err := postgres.Builder().
		Insert("contact_messages").
		Columns(columns...).
		Values(m.ID, m.Name, m.Email, m.Phone, string(m.Subject), m.Message, m.IsRead, m.CreatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert contact_message: %w", err)
	}

	if _, err := r.q(ctx).Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, entity, m.ID.String())
	}
	return nil
}

// GetByID returns the message with the given id.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.ContactMessage, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From("contact_messages").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select contact_message: %w", err)
	}

	var row messageRow
	if err := pgxscan.Get(ctx, r.q(ctx), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, entity, id.String())
	}
	return row.toDomain(), nil
}

// MarkRead flags the message as handled.
func (r *Repo) MarkRead(ctx context.Context, id uuid.UUID) error {
	query, args, err := postgres.Builder().
		Update("contact_messages").
		Set("is_read", true).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update contact_message: %w", err)
	}

	tag, err := r.q(ctx).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, entity, id.String())
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
	}
	return nil
}

type messageRow struct {
	ID        uuid.UUID `db:"id"`
	Name      string    `db:"name"`
	Email     string    `db:"email"`
	Phone     *string   `db:"phone"`
	Subject   string    `db:"subject"`
	Message   string    `db:"message"`
	IsRead    bool      `db:"is_read"`
	CreatedAt time.Time `db:"created_at"`
}

func (row messageRow) toDomain() *domain.ContactMessage {
	return &domain.ContactMessage{
		ID:        row.ID,
		Name:      row.Name,
		Email:     row.Email,
		Phone:     row.Phone,
		Subject:   domain.ContactSubject(row.Subject),
		Message:   row.Message,
		IsRead:    row.IsRead,
		CreatedAt: row.CreatedAt,
	}
}
