// Package emailtemplate implements the email template repository using
// PostgreSQL.
package emailtemplate

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

const entity = "email_template"

var columns = []string{
	"id", "name", "type", "subject", "body_html", "body_text",
	"variables", "is_active", "created_at", "updated_at",
}

// Repo provides template persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new template repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

func (r *Repo) q(ctx context.Context) postgres.Querier {
	return postgres.QuerierFromCtx(ctx, r.db)
}

// GetActiveByType returns the active template for an email type. When
// several are active the most recently created one wins.
func (r *Repo) GetActiveByType(ctx context.Context, t domain.EmailType) (*domain.EmailTemplate, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From("email_templates").
		Where(squirrel.Eq{"type": string(t), "is_active": true}).
		OrderBy("created_at DESC", "id DESC").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select email_template: %w", err)
	}

	var row templateRow
	if err := pgxscan.Get(ctx, r.q(ctx), &row, query, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, fmt.Errorf("%s %s: %w", entity, t, domain.ErrTemplateNotFound)
		}
		return nil, postgres.MapError(err, entity, string(t))
	}
	return row.toDomain(), nil
}

// List returns every template, oldest first.
func (r *Repo) List(ctx context.Context) ([]domain.EmailTemplate, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From("email_templates").
		OrderBy("created_at ASC", "name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list email_templates: %w", err)
	}

	var rows []templateRow
	if err := pgxscan.Select(ctx, r.q(ctx), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list email_templates: %w", err)
	}

	out := make([]domain.EmailTemplate, len(rows))
	for i, row := range rows {
		out[i] = *row.toDomain()
	}
	return out, nil
}

// UpsertByName inserts a template or, when the name exists, overwrites its
// content. The stored id and created_at are kept on conflict.
func (r *Repo) UpsertByName(ctx context.Context, t *domain.EmailTemplate) (*domain.EmailTemplate, error) {
	vars := t.Variables
	if vars == nil {
		vars = map[string]string{}
	}

	query, args, err := postgres.Builder().
		Insert("email_templates").
		Columns(columns...).
		Values(t.ID, t.Name, string(t.Type), t.Subject, t.BodyHTML, t.BodyText,
			vars, t.IsActive, t.CreatedAt, t.UpdatedAt).
		Suffix(`ON CONFLICT (name) DO UPDATE SET
			type = EXCLUDED.type,
			subject = EXCLUDED.subject,
			body_html = EXCLUDED.body_html,
			body_text = EXCLUDED.body_text,
			variables = EXCLUDED.variables,
			is_active = EXCLUDED.is_active,
			updated_at = EXCLUDED.updated_at
		RETURNING ` + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build upsert email_template: %w", err)
	}

	var row templateRow
	if err := pgxscan.Get(ctx, r.q(ctx), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, entity, t.Name)
	}
	return row.toDomain(), nil
}

type templateRow struct {
	ID        uuid.UUID         `db:"id"`
	Name      string            `db:"name"`
	Type      string            `db:"type"`
	Subject   string            `db:"subject"`
	BodyHTML  string            `db:"body_html"`
	BodyText  *string           `db:"body_text"`
	Variables map[string]string `db:"variables"`
	IsActive  bool              `db:"is_active"`
	CreatedAt time.Time         `db:"created_at"`
	UpdatedAt time.Time         `db:"updated_at"`
}

func (row templateRow) toDomain() *domain.EmailTemplate {
	return &domain.EmailTemplate{
		ID:        row.ID,
		Name:      row.Name,
		Type:      domain.EmailType(row.Type),
		Subject:   row.Subject,
		BodyHTML:  row.BodyHTML,
		BodyText:  row.BodyText,
		Variables: row.Variables,
		IsActive:  row.IsActive,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}
