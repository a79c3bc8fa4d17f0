// Package selection implements the subject selection repository using PostgreSQL.
// Rows are unique per (user_id, subject_code, subject_name); duplicates
// surface as domain.ErrAlreadyExists.
package selection

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/kikiarya/hsc-planner/internal/adapter/postgres"
	"github.com/kikiarya/hsc-planner/internal/domain"
)

const table = "selections"

var columns = []string{
	"id", "user_id", "subject_code", "subject_name", "category", "reason", "created_at",
}

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Repo provides selection persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new selection repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ListByUser returns the user's selections in creation order.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Selection, error) {
	query, args, err := psql.Select(columns...).
		From(table).
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("created_at", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list selections: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, "selections of user", userID)
	}
	defer rows.Close()

	out := make([]domain.Selection, 0)
	for rows.Next() {
		sel, err := scanSelection(rows)
		if err != nil {
			return nil, postgres.MapError(err, "selections of user", userID)
		}
		out = append(out, sel)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "selections of user", userID)
	}

	return out, nil
}

// CountByUser returns how many selections the user holds.
func (r *Repo) CountByUser(ctx context.Context, userID uuid.UUID) (int, error) {
	query, args, err := psql.Select("count(*)").
		From(table).
		Where(squirrel.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count selections: %w", err)
	}

	var n int
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, postgres.MapError(err, "selections of user", userID)
	}
	return n, nil
}

// ExistsByKey reports whether the user already holds the (code, name) pair.
func (r *Repo) ExistsByKey(ctx context.Context, userID uuid.UUID, code, name string) (bool, error) {
	query, args, err := psql.Select("1").
		From(table).
		Where(squirrel.Eq{"user_id": userID, "subject_code": code, "subject_name": name}).
		Limit(1).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build selection exists: %w", err)
	}

	var one int
	err = postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...).Scan(&one)
	switch {
	case errors.Is(err, pgx.ErrNoRows):
		return false, nil
	case err != nil:
		return false, postgres.MapError(err, "selection", code+"/"+name)
	}
	return true, nil
}

// LockUser takes a transaction-scoped advisory lock on the user's selections.
// Concurrent creates for the same user queue behind it until commit, which
// keeps a count-then-insert cap exact. Outside a transaction the lock is
// released as soon as the statement ends.
func (r *Repo) LockUser(ctx context.Context, userID uuid.UUID) error {
	query, args, err := psql.Select().
		Column(squirrel.Expr("pg_advisory_xact_lock(hashtextextended(?, 0))", table+":"+userID.String())).
		ToSql()
	if err != nil {
		return fmt.Errorf("build lock selections: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "selections of user", userID)
	}
	return nil
}

// Create inserts sel and returns the stored row with its server-assigned ID
// and timestamp.
func (r *Repo) Create(ctx context.Context, sel domain.Selection) (*domain.Selection, error) {
	var category *string
	if sel.Category != nil {
		c := sel.Category.String()
		category = &c
	}

	query, args, err := psql.Insert(table).
		Columns("user_id", "subject_code", "subject_name", "category", "reason").
		Values(sel.UserID, sel.SubjectCode, sel.SubjectName, category, sel.Reason).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert selection: %w", err)
	}

	created, err := scanSelection(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "selection", sel.SubjectCode+"/"+sel.SubjectName)
	}
	return &created, nil
}

// Delete removes a selection owned by userID.
// Returns domain.ErrNotFound if the row does not exist or belongs to another user.
func (r *Repo) Delete(ctx context.Context, userID, id uuid.UUID) error {
	query, args, err := psql.Delete(table).
		Where(squirrel.Eq{"id": id, "user_id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete selection: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "selection", id)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "selection", id)
	}
	return nil
}

func scanSelection(row pgx.Row) (domain.Selection, error) {
	var (
		sel      domain.Selection
		category *string
	)
	if err := row.Scan(
		&sel.ID, &sel.UserID, &sel.SubjectCode, &sel.SubjectName,
		&category, &sel.Reason, &sel.CreatedAt,
	); err != nil {
		return domain.Selection{}, err
	}
	if category != nil {
		c := domain.SubjectCategory(*category)
		sel.Category = &c
	}
	return sel, nil
}
