// Package subject implements the read-only HSC subject catalog repository.
package subject

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	postgres "github.com/kikiarya/hsc-planner/internal/adapter/postgres"
	"github.com/kikiarya/hsc-planner/internal/domain"
)

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Repo provides subject catalog reads backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new subject repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

func (r *Repo) selectBuilder() squirrel.SelectBuilder {
	return psql.Select("code", "name", "category", "units").From("subjects")
}

// List returns the catalog ordered by category then code. A nil category
// returns every subject.
func (r *Repo) List(ctx context.Context, category *domain.SubjectCategory) ([]domain.Subject, error) {
	b := r.selectBuilder().OrderBy("category", "code")
	if category != nil {
		b = b.Where(squirrel.Eq{"category": category.String()})
	}

	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list subjects: %w", err)
	}

	var rows []subjectRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, postgres.MapError(err, "subjects", "catalog")
	}

	out := make([]domain.Subject, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

// GetByCode returns one subject. Returns domain.ErrNotFound for unknown codes.
func (r *Repo) GetByCode(ctx context.Context, code string) (*domain.Subject, error) {
	query, args, err := r.selectBuilder().Where(squirrel.Eq{"code": code}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get subject: %w", err)
	}

	var row subjectRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, fmt.Errorf("subject %s: %w", code, domain.ErrNotFound)
		}
		return nil, postgres.MapError(err, "subject", code)
	}
	s := row.toDomain()
	return &s, nil
}

type subjectRow struct {
	Code     string `db:"code"`
	Name     string `db:"name"`
	Category string `db:"category"`
	Units    int    `db:"units"`
}

func (r subjectRow) toDomain() domain.Subject {
	return domain.Subject{
		Code:     r.Code,
		Name:     r.Name,
		Category: domain.SubjectCategory(r.Category),
		Units:    r.Units,
	}
}
