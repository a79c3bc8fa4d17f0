package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kikiarya/hsc-planner/internal/domain"
)

// SeedSelection inserts a selection for userID with the given natural key.
func SeedSelection(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, code, name string) domain.Selection {
	t.Helper()

	sel := domain.Selection{
		ID:          uuid.New(),
		UserID:      userID,
		SubjectCode: code,
		SubjectName: name,
		CreatedAt:   time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO selections (id, user_id, subject_code, subject_name, created_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		sel.ID, sel.UserID, sel.SubjectCode, sel.SubjectName, sel.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedSelection insert: %v", err)
	}

	return sel
}
